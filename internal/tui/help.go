package tui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"ftlview/internal/tui/components"
	"ftlview/internal/tui/handlers"
)

const pageHelp = "help"

// HelpText lists the bindings of the browse and modal modes followed by
// the build information.
func HelpText(ih *handlers.InputHandler, version, commit, date string) string {
	var b strings.Builder
	b.WriteString(components.AppTitle + " - Keyboard Shortcuts\n\n")

	sections := []struct {
		title string
		mode  handlers.InputMode
	}{
		{"Browsing", handlers.InputModeBrowse},
		{"Item details", handlers.InputModeModal},
	}
	for _, s := range sections {
		b.WriteString(s.title + ":\n")
		for _, sc := range ih.Shortcuts(s.mode).Shortcuts() {
			if sc.Description == "" {
				continue
			}
			fmt.Fprintf(&b, "%s = %s\n", sc.Key, sc.Description)
		}
		b.WriteString("\n")
	}
	b.WriteString("Enter = Open sector, item or quest\n")
	b.WriteString("Space = Expand or collapse event\n\n")
	fmt.Fprintf(&b, "Version: %s (commit %s, built %s)", version, commit, date)
	return b.String()
}

// SetVersionInfo sets the build information shown in the help dialog
func (va *ViewerApp) SetVersionInfo(version, commit, date string) {
	va.version = version
	va.commit = commit
	va.date = date
}

func (va *ViewerApp) showHelp() {
	if va.helpVisible || va.modalVisible {
		return
	}
	va.lastFocus = va.app.GetFocus()
	help := tview.NewModal().
		SetText(HelpText(va.inputHandler, va.version, va.commit, va.date)).
		AddButtons([]string{"Close"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			va.closeHelp()
		})
	va.helpVisible = true
	va.pages.AddPage(pageHelp, help, false, true)
	va.inputHandler.SetInputMode(handlers.InputModeModal)
	va.app.SetFocus(help)
}

func (va *ViewerApp) closeHelp() {
	if !va.helpVisible {
		return
	}
	va.helpVisible = false
	va.pages.RemovePage(pageHelp)
	va.inputHandler.SetInputMode(handlers.InputModeBrowse)
	if va.lastFocus != nil {
		va.app.SetFocus(va.lastFocus)
	}
}
