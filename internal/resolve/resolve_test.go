package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ftlview/internal/data"
)

func testBlueprints() data.Blueprints {
	return data.Blueprints{
		Weapons: []data.Weapon{
			{Name: "LASER_BURST_1", Title: "Burst Laser I"},
			{Name: "LASER_BURST_1", Title: "Shadowed duplicate"},
			{Name: "NO_TITLE"},
		},
		Crew: []data.Crew{
			{Name: "human", Title: "Human"},
			{Name: "rock", Title: "Rockman", AnimationData: &data.AnimationData{Sheet: "rock"}},
		},
		Augments: []data.Augment{{Name: "SCRAP_COLLECTOR", Title: "Scrap Recovery Arm"}},
		Drones: []data.Drone{
			{Name: "BOARDER", Title: "Boarding Drone", CrewBlueprint: "human"},
			{Name: "ROCK_DRONE", CrewBlueprint: "rock"},
			{Name: "DEFENSE_1", Title: "Defense Drone I"},
		},
		ShipBlueprints: []data.ShipBlueprint{{Name: "PIRATE_AUTO", Class: "Pirate Cruiser"}, {Name: "NAMELESS"}},
	}
}

func TestTitleRoundTrip(t *testing.T) {
	r := New(testBlueprints())

	tests := []struct {
		cat  Category
		key  string
		want string
	}{
		{Weapon, "LASER_BURST_1", "Burst Laser I"},
		{Weapon, "NO_TITLE", "NO_TITLE"},
		{Weapon, "MISSING", "MISSING"},
		{Crew, "human", "Human"},
		{Augment, "SCRAP_COLLECTOR", "Scrap Recovery Arm"},
		{Drone, "DEFENSE_1", "Defense Drone I"},
		{Ship, "PIRATE_AUTO", "Pirate Cruiser"},
		{Ship, "NAMELESS", "NAMELESS"},
		{Category(42), "x", "x"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Title(tt.cat, tt.key), "%s/%s", tt.cat, tt.key)
	}
}

func TestLookupTypes(t *testing.T) {
	r := New(testBlueprints())

	rec, ok := r.Lookup(Weapon, "LASER_BURST_1")
	require.True(t, ok)
	w, isWeapon := rec.(*data.Weapon)
	require.True(t, isWeapon)
	assert.Equal(t, "Burst Laser I", w.Title)

	rec, ok = r.Lookup(Ship, "PIRATE_AUTO")
	require.True(t, ok)
	assert.IsType(t, &data.ShipBlueprint{}, rec)

	_, ok = r.Lookup(Crew, "zoltan")
	assert.False(t, ok)
}

func TestDroneCrewAnimation(t *testing.T) {
	r := New(testBlueprints())

	ad := r.DroneCrewAnimation("BOARDER")
	require.NotNil(t, ad)
	assert.Equal(t, "people/human_base.png", ad.AnimSheetPath)

	ad = r.DroneCrewAnimation("ROCK_DRONE")
	require.NotNil(t, ad)
	assert.Equal(t, "rock", ad.Sheet)

	assert.Nil(t, r.DroneCrewAnimation("DEFENSE_1"))
	assert.Nil(t, r.DroneCrewAnimation("UNKNOWN"))
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories {
		got, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	_, err := ParseCategory("hat")
	assert.Error(t, err)
}
