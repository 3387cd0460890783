package theme

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ftlview/internal/data"
	"ftlview/internal/resolve"
)

func TestThemeManager(t *testing.T) {
	tm := NewThemeManager()
	assert.Equal(t, "telix", tm.Current().Name())
	assert.Equal(t, []string{"hull", "telix"}, tm.Available())

	require.NoError(t, tm.SetTheme("hull"))
	assert.Equal(t, "hull", tm.Current().Name())

	err := tm.SetTheme("missing")
	assert.EqualError(t, err, "theme 'missing' not found")
	assert.Equal(t, "hull", tm.Current().Name(), "failed switch keeps the theme")
}

func TestSectorColorsAreDistinct(t *testing.T) {
	for _, th := range []Theme{NewTelixTheme(), NewHullTheme()} {
		seen := make(map[tcell.Color]data.ColorType)
		for _, c := range []data.ColorType{data.ColorCivilian, data.ColorNeutral, data.ColorHostile, data.ColorNebula, data.ColorSecret, ""} {
			col := th.SectorColor(c)
			prev, dup := seen[col]
			assert.False(t, dup, "%s: %q and %q share a colour", th.Name(), prev, c)
			seen[col] = c
		}
		assert.Equal(t, th.SectorColor(""), th.SectorColor("PURPLE"), "unknown types fall back")
	}
}

func TestCategoryColors(t *testing.T) {
	th := NewTelixTheme()
	seen := make(map[tcell.Color]bool)
	for _, c := range resolve.Categories {
		seen[th.CategoryColor(c)] = true
	}
	assert.Len(t, seen, len(resolve.Categories))
}

func TestHullOverridesOnlyWhatDiffers(t *testing.T) {
	hull, telix := NewHullTheme(), NewTelixTheme()
	assert.Equal(t, telix.TreeColors(), hull.TreeColors())
	assert.Equal(t, telix.DefaultColors(), hull.DefaultColors())
	assert.NotEqual(t, telix.TabColors(), hull.TabColors())
}

func TestTelixPalette(t *testing.T) {
	tests := []struct {
		name    string
		color   tcell.Color
		r, g, b int32
	}{
		{"black", DOSBlack, 0, 0, 0},
		{"dark blue", DOSBlue, 0, 0, 128},
		{"light gray", DOSLightGray, 192, 192, 192},
		{"bright red", DOSLightRed, 255, 0, 0},
		{"white", DOSWhite, 255, 255, 255},
	}
	for _, tt := range tests {
		r, g, b := tt.color.RGB()
		assert.Equal(t, [3]int32{tt.r, tt.g, tt.b}, [3]int32{r, g, b}, tt.name)
	}
}

func TestColorize(t *testing.T) {
	out := Colorize(DOSYellow, "[System event]")
	assert.Contains(t, out, DOSYellow.String())
	assert.NotContains(t, out, "][System event]", "brackets in text are escaped")
	assert.Contains(t, ColorizeBg(DOSWhite, DOSRed, "Weapons (2)"), "Weapons (2)")
}
