package theme

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ThemedComponents provides convenience factory functions for creating themed components
// while still allowing manual styling using theme properties
type ThemedComponents struct {
	theme Theme
}

// NewThemedComponents creates a new themed components factory
func NewThemedComponents(theme Theme) *ThemedComponents {
	return &ThemedComponents{theme: theme}
}

// NewTextView creates a new text view with theme applied
func (tc *ThemedComponents) NewTextView() *tview.TextView {
	textView := tview.NewTextView()
	colors := tc.theme.DefaultColors()
	border := tc.theme.BorderStyle()

	textView.SetBackgroundColor(colors.Background)
	textView.SetTextColor(colors.Foreground)
	textView.SetBorderColor(border.Color)
	textView.SetTitleColor(border.TitleColor)

	return textView
}

// NewTable creates a new selectable table with theme applied
func (tc *ThemedComponents) NewTable() *tview.Table {
	table := tview.NewTable()
	colors := tc.theme.PanelColors()

	table.SetBackgroundColor(colors.Background)
	table.SetBorderColor(colors.Border)
	table.SetTitleColor(colors.Title)
	table.SetSelectedStyle(tcell.StyleDefault.
		Background(colors.SelectedBg).
		Foreground(colors.SelectedFg))

	return table
}

// NewTreeView creates a new tree view styled like a side panel
func (tc *ThemedComponents) NewTreeView() *tview.TreeView {
	tree := tview.NewTreeView()
	colors := tc.theme.PanelColors()
	border := tc.theme.BorderStyle()

	tree.SetBackgroundColor(colors.Background)
	tree.SetBorderColor(colors.Border)
	tree.SetTitleColor(colors.Title)
	tree.SetGraphicsColor(colors.Border)
	tree.SetBorder(true)
	tree.SetBorderPadding(border.Padding, border.Padding, border.Padding, border.Padding)

	return tree
}

// NewFlex creates a new flex with theme applied (typically for overlays)
func (tc *ThemedComponents) NewFlex() *tview.Flex {
	flex := tview.NewFlex()
	flex.SetBackgroundColor(tc.theme.DefaultColors().Background)
	return flex
}

// NewStatusBar creates a new text view styled for status bars
func (tc *ThemedComponents) NewStatusBar() *tview.TextView {
	textView := tview.NewTextView()
	colors := tc.theme.StatusColors()

	textView.SetBackgroundColor(colors.Background)
	textView.SetTextColor(colors.Foreground)
	textView.SetDynamicColors(true)

	return textView
}

// NewTabBar creates a new text view styled for the tab bar
func (tc *ThemedComponents) NewTabBar() *tview.TextView {
	textView := tview.NewTextView()
	colors := tc.theme.TabColors()

	textView.SetBackgroundColor(colors.Background)
	textView.SetTextColor(colors.Foreground)
	textView.SetDynamicColors(true)
	textView.SetWrap(false)

	return textView
}

// NewPanelView creates a new text view styled for side panels
func (tc *ThemedComponents) NewPanelView() *tview.TextView {
	textView := tview.NewTextView()
	colors := tc.theme.PanelColors()
	border := tc.theme.BorderStyle()

	textView.SetBackgroundColor(colors.Background)
	textView.SetTextColor(colors.Foreground)
	textView.SetBorderColor(colors.Border)
	textView.SetTitleColor(colors.Title)
	textView.SetBorder(true)
	textView.SetBorderPadding(border.Padding, border.Padding, border.Padding, border.Padding)

	return textView
}

// NewDialogView creates a text view styled as a dialog body
func (tc *ThemedComponents) NewDialogView() *tview.TextView {
	textView := tview.NewTextView()
	colors := tc.theme.DialogColors()

	textView.SetBackgroundColor(colors.Background)
	textView.SetTextColor(colors.Foreground)
	textView.SetBorderColor(colors.Border)
	textView.SetTitleColor(colors.Title)
	textView.SetBorder(true)
	textView.SetDynamicColors(true)
	textView.SetWrap(true)
	textView.SetWordWrap(true)

	return textView
}

// Global factory instance using current theme
var defaultFactory = &ThemedComponents{}

// updateDefaultFactory updates the global factory with current theme
func updateDefaultFactory() {
	defaultFactory.theme = defaultThemeManager.Current()
}

// Convenience functions using global theme
func NewTextView() *tview.TextView {
	updateDefaultFactory()
	return defaultFactory.NewTextView()
}

func NewTable() *tview.Table {
	updateDefaultFactory()
	return defaultFactory.NewTable()
}

func NewTreeView() *tview.TreeView {
	updateDefaultFactory()
	return defaultFactory.NewTreeView()
}

func NewFlex() *tview.Flex {
	updateDefaultFactory()
	return defaultFactory.NewFlex()
}

func NewStatusBar() *tview.TextView {
	updateDefaultFactory()
	return defaultFactory.NewStatusBar()
}

func NewTabBar() *tview.TextView {
	updateDefaultFactory()
	return defaultFactory.NewTabBar()
}

func NewPanelView() *tview.TextView {
	updateDefaultFactory()
	return defaultFactory.NewPanelView()
}

func NewDialogView() *tview.TextView {
	updateDefaultFactory()
	return defaultFactory.NewDialogView()
}

// Colorize wraps text in a tview colour tag. The text is escaped so
// literal brackets survive.
func Colorize(c tcell.Color, text string) string {
	return fmt.Sprintf("[%s]%s[-]", c.String(), tview.Escape(text))
}

// ColorizeBg is Colorize with a background colour.
func ColorizeBg(fg, bg tcell.Color, text string) string {
	return fmt.Sprintf("[%s:%s]%s[-:-]", fg.String(), bg.String(), tview.Escape(text))
}
