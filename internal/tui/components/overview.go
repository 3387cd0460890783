package components

import (
	"strconv"

	"github.com/rivo/tview"

	"ftlview/internal/data"
	"ftlview/internal/sectors"
	"ftlview/internal/theme"
)

// OverviewDescription is shown above the sector listing.
const OverviewDescription = "Select any sector to view detailed information about available weapons, crew, augments, and more."

// OverviewComponent lists every sector by group and colour. It is shown
// while no sector is selected.
type OverviewComponent struct {
	wrapper *tview.Flex
	table   *tview.Table
	sectors []*data.Sector // by table row, nil for headings

	onSelect func(*data.Sector)
}

// NewOverviewComponent creates the overview page
func NewOverviewComponent() *OverviewComponent {
	intro := theme.NewTextView()
	intro.SetDynamicColors(true)
	intro.SetWordWrap(true)
	intro.SetText(theme.Colorize(theme.Current().PanelColors().HeaderFg, "FTL Multiverse Sectors") + "\n" + OverviewDescription)

	table := theme.NewTable()
	table.SetSelectable(true, false)

	wrapper := theme.NewFlex().SetDirection(tview.FlexRow).
		AddItem(intro, 3, 0, false).
		AddItem(table, 0, 1, true)
	wrapper.SetBorder(true).SetTitle(" Overview ")

	oc := &OverviewComponent{wrapper: wrapper, table: table}
	table.SetSelectedFunc(func(row, column int) {
		if s := oc.SectorAt(row); s != nil && oc.onSelect != nil {
			oc.onSelect(s)
		}
	})
	return oc
}

// GetWrapper returns the overview flex
func (oc *OverviewComponent) GetWrapper() *tview.Flex {
	return oc.wrapper
}

// Focusable is the primitive that takes focus on the overview
func (oc *OverviewComponent) Focusable() tview.Primitive {
	return oc.table
}

// SetSelectHandler sets the callback for choosing a sector
func (oc *OverviewComponent) SetSelectHandler(onSelect func(*data.Sector)) {
	oc.onSelect = onSelect
}

// SectorAt returns the sector on table row, nil for headings
func (oc *OverviewComponent) SectorAt(row int) *data.Sector {
	if row < 0 || row >= len(oc.sectors) {
		return nil
	}
	return oc.sectors[row]
}

// SetBuckets fills the listing. Every bucket gets a heading row followed
// by its sectors with their item and event counts.
func (oc *OverviewComponent) SetBuckets(buckets []sectors.Bucket) {
	th := theme.Current()
	colors := th.PanelColors()

	oc.table.Clear()
	oc.sectors = oc.sectors[:0]
	row := 0
	heading := func(text string) {
		oc.table.SetCell(row, 0, tview.NewTableCell(text).SetSelectable(false))
		oc.sectors = append(oc.sectors, nil)
		row++
	}

	group := ""
	for _, b := range buckets {
		if b.Key.Group() != group {
			group = b.Key.Group()
			heading(theme.Colorize(colors.HeaderFg, group))
		}
		heading("  " + BucketBadge(b.Key, th) + " " + tview.Escape(b.Key.Title()) + " (" + strconv.Itoa(len(b.Sectors)) + ")")
		for _, s := range b.Sectors {
			oc.table.SetCell(row, 0, tview.NewTableCell("    "+tview.Escape(s.Name)).SetExpansion(1))
			oc.table.SetCell(row, 1, tview.NewTableCell(tview.Escape(s.ID)).SetTextColor(th.DefaultColors().Muted))
			oc.table.SetCell(row, 2, tview.NewTableCell(itemSummary(s)).SetAlign(tview.AlignRight))
			oc.sectors = append(oc.sectors, s)
			row++
		}
	}
	for i, sec := range oc.sectors {
		if sec != nil {
			oc.table.Select(i, 0)
			break
		}
	}
}

func itemSummary(s *data.Sector) string {
	items := len(s.Weapons) + len(s.Crew) + len(s.Augments) + len(s.Drones)
	return strconv.Itoa(items) + " items, " + strconv.Itoa(len(s.Events)) + " events"
}
