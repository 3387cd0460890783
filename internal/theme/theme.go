package theme

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"

	"ftlview/internal/data"
	"ftlview/internal/resolve"
)

// DialogColors defines color scheme for dialogs and modals
type DialogColors struct {
	Background tcell.Color
	Foreground tcell.Color
	Border     tcell.Color
	Title      tcell.Color
	Label      tcell.Color // Field labels in the item grid
	SelectedBg tcell.Color
	SelectedFg tcell.Color
	ButtonBg   tcell.Color
	ButtonFg   tcell.Color
}

// TabColors defines color scheme for the detail tab bar
type TabColors struct {
	Background tcell.Color
	Foreground tcell.Color
	ActiveBg   tcell.Color
	ActiveFg   tcell.Color
	Separator  tcell.Color
}

// DefaultColors defines default text colors for general use
type DefaultColors struct {
	Background tcell.Color
	Foreground tcell.Color
	Waiting    tcell.Color // Color for "Loading..." messages
	Muted      tcell.Color // Empty tab messages, suppressed events
}

// StatusColors defines color scheme for the header and status bars
type StatusColors struct {
	Background  tcell.Color
	Foreground  tcell.Color
	HighlightBg tcell.Color
	HighlightFg tcell.Color
	ErrorBg     tcell.Color
	ErrorFg     tcell.Color
	ToggleOnFg  tcell.Color
	ToggleOffFg tcell.Color
}

// PanelColors defines color scheme for navigation and detail panels
type PanelColors struct {
	Background  tcell.Color
	Foreground  tcell.Color
	Border      tcell.Color
	Title       tcell.Color
	HeaderBg    tcell.Color
	HeaderFg    tcell.Color
	SelectedBg  tcell.Color
	SelectedFg  tcell.Color
	FocusBorder tcell.Color
}

// TreeColors defines color scheme for the event tree
type TreeColors struct {
	Event     tcell.Color
	Ship      tcell.Color
	Quest     tcell.Color
	Text      tcell.Color
	Highlight tcell.Color // Quest highlighted after a jump
}

// BorderStyle defines border styling options
type BorderStyle struct {
	Color      tcell.Color
	TitleColor tcell.Color
	Padding    int
}

// Theme interface defines all theming properties
type Theme interface {
	// Name returns the theme name
	Name() string

	// Color schemes for different components
	DefaultColors() DefaultColors
	DialogColors() DialogColors
	TabColors() TabColors
	StatusColors() StatusColors
	PanelColors() PanelColors
	TreeColors() TreeColors

	// Border styling
	BorderStyle() BorderStyle

	// SectorColor is the badge colour of a sector colour type; unknown
	// types get the panel foreground.
	SectorColor(c data.ColorType) tcell.Color

	// CategoryColor is the tag colour of an item category.
	CategoryColor(c resolve.Category) tcell.Color
}

// ThemeManager manages theme selection and application
type ThemeManager struct {
	currentTheme Theme
	themes       map[string]Theme
}

// NewThemeManager creates a new theme manager
func NewThemeManager() *ThemeManager {
	tm := &ThemeManager{
		themes: make(map[string]Theme),
	}

	tm.RegisterTheme(NewTelixTheme())
	tm.RegisterTheme(NewHullTheme())

	tm.SetTheme("telix")

	return tm
}

// RegisterTheme registers a new theme
func (tm *ThemeManager) RegisterTheme(theme Theme) {
	tm.themes[theme.Name()] = theme
}

// SetTheme sets the current theme by name
func (tm *ThemeManager) SetTheme(name string) error {
	if theme, exists := tm.themes[name]; exists {
		tm.currentTheme = theme
		return nil
	}
	return fmt.Errorf("theme '%s' not found", name)
}

// Current returns the current theme
func (tm *ThemeManager) Current() Theme {
	return tm.currentTheme
}

// Available returns the sorted list of theme names
func (tm *ThemeManager) Available() []string {
	names := make([]string, 0, len(tm.themes))
	for name := range tm.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Global theme manager instance
var defaultThemeManager = NewThemeManager()

// GetThemeManager returns the global theme manager
func GetThemeManager() *ThemeManager {
	return defaultThemeManager
}

// Current returns the current theme from the global manager
func Current() Theme {
	return defaultThemeManager.Current()
}
