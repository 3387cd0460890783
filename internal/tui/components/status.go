package components

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"ftlview/internal/theme"
)

// AppTitle is shown in the header bar.
const AppTitle = "FTL Multiverse - Sectors Viewer"

// HideCommonLabel names the rarity filter toggle.
const HideCommonLabel = "Show only non-purchasable items"

// LoadState is the data loading phase shown in the status bar.
type LoadState int

const (
	StateLoading LoadState = iota
	StateLoaded
	StateFailed
)

// StatusComponent manages the bottom status bar
type StatusComponent struct {
	wrapper *tview.TextView
	state   LoadState
	sectors int
	err     string
	message string
	help    string
}

// NewStatusComponent creates a new status bar component
func NewStatusComponent() *StatusComponent {
	sc := &StatusComponent{wrapper: theme.NewStatusBar()}
	sc.UpdateStatus()
	return sc
}

// GetWrapper returns the status bar TextView
func (sc *StatusComponent) GetWrapper() *tview.TextView {
	return sc.wrapper
}

// SetLoading shows the loading indicator
func (sc *StatusComponent) SetLoading() {
	sc.state = StateLoading
	sc.err = ""
	sc.UpdateStatus()
}

// SetLoaded shows the number of sectors loaded
func (sc *StatusComponent) SetLoaded(sectors int) {
	sc.state = StateLoaded
	sc.sectors = sectors
	sc.err = ""
	sc.UpdateStatus()
}

// SetError shows a load failure
func (sc *StatusComponent) SetError(err error) {
	sc.state = StateFailed
	sc.err = err.Error()
	sc.UpdateStatus()
}

// SetMessage shows a transient message next to the state; empty clears it
func (sc *StatusComponent) SetMessage(msg string) {
	sc.message = msg
	sc.UpdateStatus()
}

// SetHelp sets the key help shown on the right
func (sc *StatusComponent) SetHelp(help string) {
	sc.help = help
	sc.UpdateStatus()
}

// Text returns the status line as displayed
func (sc *StatusComponent) Text() string {
	return sc.wrapper.GetText(false)
}

// UpdateStatus updates the status bar display
func (sc *StatusComponent) UpdateStatus() {
	sc.wrapper.SetText(StatusText(sc.state, sc.sectors, sc.err, sc.message, sc.help, theme.Current()))
}

// StatusText renders the status line.
func StatusText(state LoadState, sectors int, errText, message, help string, th theme.Theme) string {
	colors := th.StatusColors()
	var b strings.Builder
	b.WriteString(" ")
	switch state {
	case StateLoading:
		b.WriteString(theme.Colorize(th.DefaultColors().Waiting, "Loading sector data..."))
	case StateLoaded:
		b.WriteString(fmt.Sprintf("%d sectors", sectors))
	case StateFailed:
		b.WriteString(theme.ColorizeBg(colors.ErrorFg, colors.ErrorBg, "Error: "+errText))
	}
	if message != "" {
		b.WriteString(" | ")
		b.WriteString(theme.Colorize(colors.HighlightFg, message))
	}
	if help != "" {
		b.WriteString(" | ")
		b.WriteString(tview.Escape(help))
	}
	return b.String()
}

// HeaderComponent is the title bar with the rarity filter toggle
type HeaderComponent struct {
	wrapper    *tview.TextView
	hideCommon bool
}

// NewHeaderComponent creates the header bar
func NewHeaderComponent() *HeaderComponent {
	hc := &HeaderComponent{wrapper: theme.NewStatusBar()}
	hc.Update()
	return hc
}

// GetWrapper returns the header TextView
func (hc *HeaderComponent) GetWrapper() *tview.TextView {
	return hc.wrapper
}

// SetHideCommon updates the toggle state
func (hc *HeaderComponent) SetHideCommon(on bool) {
	hc.hideCommon = on
	hc.Update()
}

// Update redraws the header
func (hc *HeaderComponent) Update() {
	hc.wrapper.SetText(HeaderBarText(hc.hideCommon, theme.Current()))
}

// HeaderBarText renders the title and the toggle checkbox.
func HeaderBarText(hideCommon bool, th theme.Theme) string {
	colors := th.StatusColors()
	box := theme.Colorize(colors.ToggleOffFg, "[ ]")
	if hideCommon {
		box = theme.Colorize(colors.ToggleOnFg, "[x]")
	}
	return " " + theme.Colorize(colors.HighlightFg, AppTitle) + "    " + box + " " + HideCommonLabel + " (h)"
}
