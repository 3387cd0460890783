package components

import (
	"fmt"

	"github.com/rivo/tview"

	"ftlview/internal/data"
	"ftlview/internal/sectors"
	"ftlview/internal/theme"
)

// NavComponent is the sector navigation tree: Unique/Standard groups,
// one foldable bucket per colour type, sectors sorted by name.
type NavComponent struct {
	view     *tview.TreeView
	buckets  []sectors.Bucket
	collapse *sectors.CollapseState

	selectedID string
	onSelect   func(*data.Sector)
}

// NewNavComponent creates the navigation panel
func NewNavComponent() *NavComponent {
	view := theme.NewTreeView()
	view.SetTitle(" Sectors ")
	view.SetTopLevel(1)

	nc := &NavComponent{
		view:     view,
		collapse: sectors.NewCollapseState(),
	}
	view.SetSelectedFunc(nc.activate)
	view.SetRoot(tview.NewTreeNode("").SetSelectable(false))
	return nc
}

// GetView returns the tree view primitive
func (nc *NavComponent) GetView() *tview.TreeView {
	return nc.view
}

// SetSelectHandler sets the callback for choosing a sector
func (nc *NavComponent) SetSelectHandler(onSelect func(*data.Sector)) {
	nc.onSelect = onSelect
}

// SetSectors partitions all sectors into buckets and rebuilds the tree
func (nc *NavComponent) SetSectors(all []data.Sector) {
	nc.buckets = sectors.Partition(all)
	nc.Refresh()
	nc.view.SetCurrentNode(firstSelectable(nc.view.GetRoot()))
}

// Buckets returns the current partition
func (nc *NavComponent) Buckets() []sectors.Bucket {
	return nc.buckets
}

// SetSelected marks the sector shown in the detail panel
func (nc *NavComponent) SetSelected(id string) {
	nc.selectedID = id
	nc.Refresh()
}

// Refresh rebuilds the tview nodes, keeping the cursor where it was
func (nc *NavComponent) Refresh() {
	var currentRef interface{}
	if cur := nc.view.GetCurrentNode(); cur != nil {
		currentRef = cur.GetReference()
	}

	root := BuildNavNodes(nc.buckets, nc.collapse, nc.selectedID, theme.Current())
	nc.view.SetRoot(root)

	if currentRef == nil {
		return
	}
	root.Walk(func(node, parent *tview.TreeNode) bool {
		if sameNavRef(node.GetReference(), currentRef) {
			nc.view.SetCurrentNode(node)
			return false
		}
		return true
	})
}

func sameNavRef(a, b interface{}) bool {
	switch av := a.(type) {
	case sectors.BucketKey:
		bv, ok := b.(sectors.BucketKey)
		return ok && av == bv
	case *data.Sector:
		bv, ok := b.(*data.Sector)
		return ok && av.ID == bv.ID
	}
	return false
}

func (nc *NavComponent) activate(node *tview.TreeNode) {
	switch ref := node.GetReference().(type) {
	case sectors.BucketKey:
		nc.collapse.Toggle(ref)
		nc.Refresh()
	case *data.Sector:
		if nc.onSelect != nil {
			nc.onSelect(ref)
		}
	}
}

// BuildNavNodes renders the buckets. Bucket rows reference their
// sectors.BucketKey, sector rows their *data.Sector. Collapsed buckets
// keep their header and count but list no sectors.
func BuildNavNodes(buckets []sectors.Bucket, collapse *sectors.CollapseState, selectedID string, th theme.Theme) *tview.TreeNode {
	root := tview.NewTreeNode("Sectors").SetSelectable(false)
	colors := th.PanelColors()

	groups := make(map[string]*tview.TreeNode)
	for _, b := range buckets {
		group, ok := groups[b.Key.Group()]
		if !ok {
			group = tview.NewTreeNode(theme.Colorize(colors.HeaderFg, b.Key.Group())).SetSelectable(false)
			groups[b.Key.Group()] = group
			root.AddChild(group)
		}

		collapsed := collapse.Collapsed(b.Key)
		header := tview.NewTreeNode(BucketLine(b, collapsed, th)).
			SetReference(b.Key).
			SetSelectable(true)
		group.AddChild(header)
		if collapsed {
			continue
		}
		for _, s := range b.Sectors {
			text := tview.Escape(s.Name)
			if s.ID == selectedID {
				text = theme.ColorizeBg(colors.SelectedFg, colors.SelectedBg, s.Name)
			}
			header.AddChild(tview.NewTreeNode(text).SetReference(s).SetSelectable(true))
		}
	}
	return root
}

// BucketLine is the header of a bucket: fold marker, colour badge and count.
func BucketLine(b sectors.Bucket, collapsed bool, th theme.Theme) string {
	marker := "▼"
	if collapsed {
		marker = "▶"
	}
	return fmt.Sprintf("%s %s (%d)", marker, BucketBadge(b.Key, th), len(b.Sectors))
}

// BucketBadge is the coloured colour-type name, "Other" for the rest.
func BucketBadge(k sectors.BucketKey, th theme.Theme) string {
	badge := "Other"
	if k.Color != "" {
		badge = string(k.Color)
	}
	return theme.Colorize(th.SectorColor(k.Color), badge)
}
