package theme

import (
	"github.com/gdamore/tcell/v2"

	"ftlview/internal/data"
	"ftlview/internal/resolve"
)

// Standard ANSI 16-color palette using correct hex values
// This ensures consistent colors regardless of terminal color scheme
var (
	DOSBlack     = tcell.NewHexColor(0x000000)
	DOSRed       = tcell.NewHexColor(0x800000)
	DOSGreen     = tcell.NewHexColor(0x008000)
	DOSBrown     = tcell.NewHexColor(0x808000)
	DOSBlue      = tcell.NewHexColor(0x000080)
	DOSMagenta   = tcell.NewHexColor(0x800080)
	DOSCyan      = tcell.NewHexColor(0x008080)
	DOSLightGray = tcell.NewHexColor(0xC0C0C0)

	DOSDarkGray     = tcell.NewHexColor(0x808080)
	DOSLightRed     = tcell.NewHexColor(0xFF0000)
	DOSLightGreen   = tcell.NewHexColor(0x00FF00)
	DOSYellow       = tcell.NewHexColor(0xFFFF00)
	DOSLightBlue    = tcell.NewHexColor(0x0000FF)
	DOSLightMagenta = tcell.NewHexColor(0xFF00FF)
	DOSLightCyan    = tcell.NewHexColor(0x00FFFF)
	DOSWhite        = tcell.NewHexColor(0xFFFFFF)
)

// TelixTheme implements the classic Telix DOS terminal theme
type TelixTheme struct{}

// NewTelixTheme creates a new Telix theme instance
func NewTelixTheme() *TelixTheme {
	return &TelixTheme{}
}

// Name returns the theme name
func (t *TelixTheme) Name() string {
	return "telix"
}

// DefaultColors returns the default color scheme
func (t *TelixTheme) DefaultColors() DefaultColors {
	return DefaultColors{
		Background: DOSBlack,
		Foreground: DOSLightGray,
		Waiting:    DOSDarkGray,
		Muted:      DOSDarkGray,
	}
}

// DialogColors returns the dialog color scheme
func (t *TelixTheme) DialogColors() DialogColors {
	return DialogColors{
		Background: DOSBlue,      // Main dialog background
		Foreground: DOSWhite,     // Text and values
		Border:     DOSWhite,     // Border lines
		Title:      DOSWhite,     // Dialog title
		Label:      DOSLightCyan, // Field labels
		SelectedBg: DOSWhite,
		SelectedFg: DOSBlack,
		ButtonBg:   DOSLightGray,
		ButtonFg:   DOSBlack,
	}
}

// TabColors returns the tab bar color scheme
func (t *TelixTheme) TabColors() TabColors {
	return TabColors{
		Background: DOSBlue,
		Foreground: DOSLightGray,
		ActiveBg:   DOSRed, // Red background for the active tab (like the menu bar)
		ActiveFg:   DOSWhite,
		Separator:  DOSDarkGray,
	}
}

// StatusColors returns the header and status bar color scheme
func (t *TelixTheme) StatusColors() StatusColors {
	return StatusColors{
		Background:  DOSBlue,
		Foreground:  DOSLightGray,
		HighlightBg: DOSRed,
		HighlightFg: DOSWhite,
		ErrorBg:     DOSRed,
		ErrorFg:     DOSWhite,
		ToggleOnFg:  DOSLightGreen,
		ToggleOffFg: DOSDarkGray,
	}
}

// PanelColors returns the panel color scheme
func (t *TelixTheme) PanelColors() PanelColors {
	return PanelColors{
		Background:  DOSBlack,
		Foreground:  DOSLightGray,
		Border:      DOSLightGray,
		Title:       DOSLightGray,
		HeaderBg:    DOSBlack,
		HeaderFg:    DOSYellow,
		SelectedBg:  DOSLightGray,
		SelectedFg:  DOSBlack,
		FocusBorder: DOSWhite,
	}
}

// TreeColors returns the event tree color scheme
func (t *TelixTheme) TreeColors() TreeColors {
	return TreeColors{
		Event:     DOSWhite,
		Ship:      DOSLightRed,
		Quest:     DOSYellow,
		Text:      DOSLightGray,
		Highlight: DOSBrown,
	}
}

// BorderStyle returns the border styling
func (t *TelixTheme) BorderStyle() BorderStyle {
	return BorderStyle{
		Color:      DOSLightGray,
		TitleColor: DOSLightGray,
		Padding:    0,
	}
}

// SectorColor maps sector colour types onto the DOS palette
func (t *TelixTheme) SectorColor(c data.ColorType) tcell.Color {
	switch c {
	case data.ColorCivilian:
		return DOSLightGreen
	case data.ColorNeutral:
		return DOSLightGray
	case data.ColorHostile:
		return DOSLightRed
	case data.ColorNebula:
		return DOSLightMagenta
	case data.ColorSecret:
		return DOSYellow
	}
	return DOSDarkGray
}

// CategoryColor maps item categories onto the DOS palette
func (t *TelixTheme) CategoryColor(c resolve.Category) tcell.Color {
	switch c {
	case resolve.Weapon:
		return DOSLightRed
	case resolve.Crew:
		return DOSLightGreen
	case resolve.Augment:
		return DOSLightCyan
	case resolve.Drone:
		return DOSYellow
	case resolve.Ship:
		return DOSLightMagenta
	}
	return DOSLightGray
}

// HullTheme is a dark theme in the game's own hull colours. It only
// overrides what differs from Telix.
type HullTheme struct {
	TelixTheme
}

var (
	hullSteel  = tcell.NewHexColor(0x2B3036)
	hullPlate  = tcell.NewHexColor(0x515A63)
	hullOrange = tcell.NewHexColor(0xE57E25)
	hullText   = tcell.NewHexColor(0xEBF5F5)
)

func NewHullTheme() *HullTheme {
	return &HullTheme{}
}

func (t *HullTheme) Name() string {
	return "hull"
}

func (t *HullTheme) DialogColors() DialogColors {
	c := t.TelixTheme.DialogColors()
	c.Background = hullSteel
	c.Foreground = hullText
	c.Border = hullOrange
	c.Title = hullOrange
	c.Label = hullOrange
	return c
}

func (t *HullTheme) TabColors() TabColors {
	return TabColors{
		Background: hullSteel,
		Foreground: hullText,
		ActiveBg:   hullOrange,
		ActiveFg:   DOSBlack,
		Separator:  hullPlate,
	}
}

func (t *HullTheme) StatusColors() StatusColors {
	c := t.TelixTheme.StatusColors()
	c.Background = hullSteel
	c.Foreground = hullText
	c.HighlightBg = hullOrange
	c.HighlightFg = DOSBlack
	return c
}

func (t *HullTheme) PanelColors() PanelColors {
	c := t.TelixTheme.PanelColors()
	c.Border = hullPlate
	c.FocusBorder = hullOrange
	c.SelectedBg = hullOrange
	c.HeaderFg = hullOrange
	return c
}
