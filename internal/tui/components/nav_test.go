package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ftlview/internal/data"
	"ftlview/internal/sectors"
	"ftlview/internal/theme"
)

func testSectors() []data.Sector {
	return []data.Sector{
		{ID: "S_ZULU", Name: "Zulu", ColorType: data.ColorHostile},
		{ID: "S_ALPHA", Name: "Alpha", ColorType: data.ColorHostile},
		{ID: "S_HIDDEN", Name: "Hidden", Unique: "true", ColorType: data.ColorSecret},
		{ID: "S_ODD", Name: "Odd", ColorType: "PURPLE"},
	}
}

func TestBuildNavNodes(t *testing.T) {
	buckets := sectors.Partition(testSectors())
	root := BuildNavNodes(buckets, sectors.NewCollapseState(), "S_ZULU", theme.Current())

	groups := root.GetChildren()
	require.Len(t, groups, 2)
	assert.Contains(t, groups[0].GetText(), "Unique Sectors")
	assert.Contains(t, groups[1].GetText(), "Standard Sectors")

	secret := groups[0].GetChildren()[0]
	assert.Equal(t, sectors.BucketKey{Unique: true, Color: data.ColorSecret}, secret.GetReference())
	assert.Contains(t, secret.GetText(), "▶")
	assert.Contains(t, secret.GetText(), "(1)", "collapsed buckets keep their count")
	assert.Empty(t, secret.GetChildren())

	standard := groups[1].GetChildren()
	require.Len(t, standard, 2)
	hostile := standard[0]
	assert.Contains(t, hostile.GetText(), "▼")
	require.Len(t, hostile.GetChildren(), 2)
	first := hostile.GetChildren()[0].GetReference().(*data.Sector)
	assert.Equal(t, "Alpha", first.Name)
	assert.Contains(t, hostile.GetChildren()[1].GetText(), theme.Current().PanelColors().SelectedBg.String(),
		"the selected sector is highlighted")

	other := standard[1]
	assert.Contains(t, other.GetText(), "Other")
}

func TestNavComponentToggleAndSelect(t *testing.T) {
	nc := NewNavComponent()
	var selected *data.Sector
	nc.SetSelectHandler(func(s *data.Sector) { selected = s })
	nc.SetSectors(testSectors())

	cur := nc.GetView().GetCurrentNode()
	require.NotNil(t, cur)
	key, ok := cur.GetReference().(sectors.BucketKey)
	require.True(t, ok, "cursor starts on the first bucket")
	assert.True(t, key.Unique)

	nc.activate(cur)
	assert.Len(t, nc.GetView().GetCurrentNode().GetChildren(), 1, "secret bucket opened")
	assert.Equal(t, key, nc.GetView().GetCurrentNode().GetReference(), "cursor kept across rebuild")

	hidden := nc.GetView().GetCurrentNode().GetChildren()[0]
	nc.activate(hidden)
	require.NotNil(t, selected)
	assert.Equal(t, "S_HIDDEN", selected.ID)
}

func TestBucketLine(t *testing.T) {
	b := sectors.Bucket{Key: sectors.BucketKey{Color: data.ColorNebula}, Sectors: make([]*data.Sector, 3)}
	th := theme.Current()
	assert.Contains(t, BucketLine(b, false, th), "▼")
	assert.Contains(t, BucketLine(b, true, th), "▶")
	assert.Contains(t, BucketLine(b, false, th), "NEBULA")
	assert.Contains(t, BucketLine(b, false, th), "(3)")
}

func TestOverviewSetBuckets(t *testing.T) {
	oc := NewOverviewComponent()
	all := testSectors()
	all[1].Weapons = []data.ItemRef{{Name: "laser1"}}
	oc.SetBuckets(sectors.Partition(all))

	// Unique heading, secret heading, Hidden, Standard heading, hostile heading, Alpha, Zulu, other heading, Odd
	assert.Nil(t, oc.SectorAt(0))
	assert.Nil(t, oc.SectorAt(1))
	require.NotNil(t, oc.SectorAt(2))
	assert.Equal(t, "S_HIDDEN", oc.SectorAt(2).ID)
	require.NotNil(t, oc.SectorAt(5))
	assert.Equal(t, "S_ALPHA", oc.SectorAt(5).ID)
	assert.Equal(t, "S_ODD", oc.SectorAt(8).ID)
	assert.Nil(t, oc.SectorAt(9))
	assert.Nil(t, oc.SectorAt(-1))

	row, _ := oc.table.GetSelection()
	assert.Equal(t, 2, row, "first sector row is selected")
	assert.Equal(t, "1 items, 0 events", oc.table.GetCell(5, 2).Text)
}
