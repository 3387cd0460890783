package sectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ftlview/internal/data"
)

func names(b Bucket) []string {
	out := make([]string, 0, len(b.Sectors))
	for _, s := range b.Sectors {
		out = append(out, s.Name)
	}
	return out
}

func TestScenarioUniqueHostileOrdering(t *testing.T) {
	buckets := Partition([]data.Sector{
		{ID: "Z", Name: "Zeta", Unique: "true", ColorType: data.ColorHostile},
		{ID: "A", Name: "Alpha", Unique: "true", ColorType: data.ColorHostile},
	})

	require.Len(t, buckets, 1)
	assert.Equal(t, BucketKey{Unique: true, Color: data.ColorHostile}, buckets[0].Key)
	assert.Equal(t, []string{"Alpha", "Zeta"}, names(buckets[0]))
}

func TestPartitionIsExhaustiveAndDisjoint(t *testing.T) {
	input := []data.Sector{
		{ID: "1", Name: "Civ", Unique: "true", ColorType: data.ColorCivilian},
		{ID: "2", Name: "Neb", ColorType: data.ColorNebula},
		{ID: "3", Name: "Odd", Unique: "TRUE", ColorType: "PURPLE"},
		{ID: "4", Name: "Plain"},
		{ID: "5", Name: "Hidden", Unique: "true", ColorType: data.ColorSecret},
		{ID: "6", Name: "Hidden 2", Unique: "false", ColorType: data.ColorSecret},
	}

	buckets := Partition(input)
	seen := map[string]BucketKey{}
	for _, b := range buckets {
		assert.NotEmpty(t, b.Sectors)
		for _, s := range b.Sectors {
			_, dup := seen[s.ID]
			assert.False(t, dup, "sector %s in two buckets", s.ID)
			seen[s.ID] = b.Key
			assert.Equal(t, KeyOf(s), b.Key)
		}
	}
	assert.Len(t, seen, len(input))

	// "TRUE" is not "true" and unknown colours go to other
	assert.Equal(t, BucketKey{Unique: false, Color: ""}, seen["3"])
	assert.Equal(t, BucketKey{Unique: false, Color: ""}, seen["4"])
	assert.Equal(t, BucketKey{Unique: true, Color: data.ColorSecret}, seen["5"])
}

func TestBucketOrderFollowsKeys(t *testing.T) {
	buckets := Partition([]data.Sector{
		{Name: "b", ColorType: data.ColorNeutral},
		{Name: "a", Unique: "true"},
		{Name: "c", Unique: "true", ColorType: data.ColorCivilian},
	})
	require.Len(t, buckets, 3)
	assert.Equal(t, "unique/CIVILIAN", buckets[0].Key.ID())
	assert.Equal(t, "unique/OTHER", buckets[1].Key.ID())
	assert.Equal(t, "standard/NEUTRAL", buckets[2].Key.ID())
	assert.Len(t, Keys(), 12)
}

func TestSortIsLocaleAwareAndStable(t *testing.T) {
	buckets := Partition([]data.Sector{
		{ID: "1", Name: "zebra"},
		{ID: "2", Name: "Apple"},
		{ID: "3", Name: "apple"},
		{ID: "4", Name: "Éclair"},
		{ID: "5", Name: "Dup"},
		{ID: "6", Name: "Dup"},
	})
	require.Len(t, buckets, 1)
	got := names(buckets[0])
	assert.Equal(t, "zebra", got[len(got)-1])
	assert.Less(t, indexOf(got, "Dup"), indexOf(got, "Éclair"))

	var dupIDs []string
	for _, s := range buckets[0].Sectors {
		if s.Name == "Dup" {
			dupIDs = append(dupIDs, s.ID)
		}
	}
	assert.Equal(t, []string{"5", "6"}, dupIDs)
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

func TestTitlesAndCollapse(t *testing.T) {
	assert.Equal(t, "Hazardous Nebulae", BucketKey{Color: data.ColorNebula}.Title())
	assert.Equal(t, "Other", BucketKey{Unique: true}.Title())
	assert.Equal(t, "Unique Sectors", BucketKey{Unique: true}.Group())

	state := NewCollapseState()
	secret := BucketKey{Unique: true, Color: data.ColorSecret}
	hostile := BucketKey{Color: data.ColorHostile}
	assert.True(t, state.Collapsed(secret))
	assert.False(t, state.Collapsed(hostile))

	assert.False(t, state.Toggle(secret))
	assert.True(t, state.Toggle(hostile))
	assert.False(t, state.Collapsed(secret))
}
