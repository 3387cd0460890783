package components

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"ftlview/internal/data"
	"ftlview/internal/detail"
	"ftlview/internal/theme"
)

const (
	pageTable  = "table"
	pageEvents = "events"
	pageEmpty  = "empty"
)

// DetailComponent shows the selected sector: header, tab bar and the
// active tab's table or event tree.
type DetailComponent struct {
	wrapper *tview.Flex
	header  *tview.TextView
	tabBar  *tview.TextView
	pages   *tview.Pages
	table   *tview.Table
	empty   *tview.TextView
	events  *EventTreeComponent

	panel *detail.Panel
	rows  []detail.Row
	onRow func(detail.Row)
}

// NewDetailComponent creates the detail view around an event tree view
func NewDetailComponent(events *EventTreeComponent) *DetailComponent {
	header := theme.NewTextView()
	header.SetDynamicColors(true)

	table := theme.NewTable()
	table.SetSelectable(true, false)
	table.SetFixed(1, 0)

	empty := theme.NewTextView()
	empty.SetDynamicColors(true)
	empty.SetTextAlign(tview.AlignCenter)

	pages := tview.NewPages()
	pages.AddPage(pageTable, table, true, true)
	pages.AddPage(pageEvents, events.GetView(), true, false)
	pages.AddPage(pageEmpty, empty, true, false)

	tabBar := theme.NewTabBar()

	wrapper := theme.NewFlex().SetDirection(tview.FlexRow).
		AddItem(header, 3, 0, false).
		AddItem(tabBar, 1, 0, false).
		AddItem(pages, 0, 1, true)
	wrapper.SetBorder(true).SetTitle(" Sector ")

	dc := &DetailComponent{
		wrapper: wrapper,
		header:  header,
		tabBar:  tabBar,
		pages:   pages,
		table:   table,
		empty:   empty,
		events:  events,
	}
	table.SetSelectedFunc(func(row, column int) {
		dc.selectRow(row)
	})
	return dc
}

// GetWrapper returns the detail flex
func (dc *DetailComponent) GetWrapper() *tview.Flex {
	return dc.wrapper
}

// SetRowHandler sets the callback for Enter on a table row
func (dc *DetailComponent) SetRowHandler(onRow func(detail.Row)) {
	dc.onRow = onRow
}

// SetPanel shows a new sector panel
func (dc *DetailComponent) SetPanel(p *detail.Panel) {
	dc.panel = p
	dc.header.SetText(HeaderText(p.Sector(), theme.Current()))
	dc.wrapper.SetTitle(" " + p.Sector().Name + " ")
	dc.Refresh()
}

// Panel returns the panel on display, nil before a sector is selected
func (dc *DetailComponent) Panel() *detail.Panel {
	return dc.panel
}

// Focusable is the primitive that should receive focus for the active tab
func (dc *DetailComponent) Focusable() tview.Primitive {
	if dc.panel != nil && dc.panel.Active() == detail.TabEvents {
		return dc.events.GetView()
	}
	return dc.table
}

// Refresh redraws the tab bar and the active tab, e.g. after a filter change
func (dc *DetailComponent) Refresh() {
	if dc.panel == nil {
		return
	}
	th := theme.Current()
	dc.tabBar.SetText(TabBarText(dc.panel, th))

	tab := dc.panel.Active()
	if tab == detail.TabEvents {
		if dc.panel.Count(tab) == 0 {
			dc.showEmpty(tab, th)
			return
		}
		dc.pages.SwitchToPage(pageEvents)
		return
	}

	dc.rows = dc.panel.Rows(tab)
	if len(dc.rows) == 0 {
		dc.showEmpty(tab, th)
		return
	}
	dc.fillTable(tab, th)
	dc.pages.SwitchToPage(pageTable)
}

func (dc *DetailComponent) showEmpty(tab detail.Tab, th theme.Theme) {
	dc.rows = nil
	dc.empty.SetText("\n" + theme.Colorize(th.DefaultColors().Muted, tab.Empty()))
	dc.pages.SwitchToPage(pageEmpty)
}

func (dc *DetailComponent) fillTable(tab detail.Tab, th theme.Theme) {
	colors := th.PanelColors()
	dc.table.Clear()
	for col, h := range tab.Headers() {
		dc.table.SetCell(0, col, tview.NewTableCell(h).
			SetTextColor(colors.HeaderFg).
			SetBackgroundColor(colors.HeaderBg).
			SetSelectable(false).
			SetExpansion(1))
	}
	for i, row := range dc.rows {
		for col, text := range row.Cells {
			cell := tview.NewTableCell(tview.Escape(text)).
				SetTextColor(colors.Foreground).
				SetExpansion(1)
			if col == 0 && row.IsItem {
				cell.SetTextColor(th.CategoryColor(row.Category))
			}
			dc.table.SetCell(i+1, col, cell)
		}
	}
	dc.table.Select(1, 0)
	dc.table.ScrollToBeginning()
}

func (dc *DetailComponent) selectRow(row int) {
	i := row - 1
	if i < 0 || i >= len(dc.rows) || dc.onRow == nil {
		return
	}
	dc.onRow(dc.rows[i])
}

// HeaderText renders the sector badges: ID, uniqueness, colour type,
// sector types and alternate names.
func HeaderText(s *data.Sector, th theme.Theme) string {
	colors := th.PanelColors()
	var b strings.Builder
	b.WriteString(theme.Colorize(colors.HeaderFg, s.Name))
	b.WriteString("\n")

	badges := []string{"ID: " + tview.Escape(s.ID)}
	if s.IsUnique() {
		badges = append(badges, "Unique")
	}
	if s.ColorType != "" {
		badges = append(badges, theme.Colorize(th.SectorColor(s.ColorType), string(s.ColorType)))
	}
	b.WriteString(strings.Join(badges, "  "))
	b.WriteString("\n")

	var meta []string
	if len(s.SectorTypes) > 0 {
		meta = append(meta, "Types: "+tview.Escape(data.JoinList(s.SectorTypes)))
	}
	if len(s.AlternateNames) > 0 {
		meta = append(meta, "Alternate Names: "+tview.Escape(data.JoinList(s.AlternateNames)))
	}
	b.WriteString(strings.Join(meta, "  "))
	return b.String()
}

// TabBarText renders "1 Weapons (n) | 2 Crew (n) ..." with the active
// tab highlighted.
func TabBarText(p *detail.Panel, th theme.Theme) string {
	colors := th.TabColors()
	parts := make([]string, 0, len(detail.Tabs))
	for i, tab := range detail.Tabs {
		label := fmt.Sprintf(" %d %s ", i+1, p.TabTitle(tab))
		if tab == p.Active() {
			parts = append(parts, theme.ColorizeBg(colors.ActiveFg, colors.ActiveBg, label))
		} else {
			parts = append(parts, tview.Escape(label))
		}
	}
	return strings.Join(parts, theme.Colorize(colors.Separator, "|"))
}
