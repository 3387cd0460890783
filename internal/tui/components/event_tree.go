package components

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"ftlview/internal/eventtree"
	"ftlview/internal/resolve"
	"ftlview/internal/theme"
)

// TextWidth is the wrap width of expanded event text.
const TextWidth = 100

// EventTreeComponent shows one sector's event tree. The tview nodes are
// rebuilt from the view-model after every change; selection is restored
// by node path.
type EventTreeComponent struct {
	view *tview.TreeView
	tree *eventtree.Tree

	highlight string
}

// NewEventTreeComponent creates the event tree view
func NewEventTreeComponent() *EventTreeComponent {
	view := theme.NewTreeView()
	view.SetBorder(false)
	view.SetTopLevel(1)

	etc := &EventTreeComponent{view: view}
	view.SetSelectedFunc(etc.activate)
	view.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == ' ' {
			etc.toggleCurrent()
			return nil
		}
		return event
	})
	return etc
}

// GetView returns the tree view primitive
func (etc *EventTreeComponent) GetView() *tview.TreeView {
	return etc.view
}

// SetTree replaces the displayed tree
func (etc *EventTreeComponent) SetTree(t *eventtree.Tree) {
	etc.tree = t
	etc.highlight = ""
	etc.Refresh()
	etc.view.SetCurrentNode(firstSelectable(etc.view.GetRoot()))
}

// SetHighlight marks the quest with anchor; an empty anchor clears it.
func (etc *EventTreeComponent) SetHighlight(anchor string) {
	etc.highlight = anchor
	etc.Refresh()
}

// Refresh rebuilds the tview nodes and keeps the cursor on the same path.
func (etc *EventTreeComponent) Refresh() {
	current := selectedPath(etc.view.GetCurrentNode())
	root := BuildTreeNodes(etc.tree, etc.highlight, theme.Current())
	etc.view.SetRoot(root)
	if current != "" {
		if n := findPath(root, current); n != nil {
			etc.view.SetCurrentNode(n)
		}
	}
}

// Locate reveals the quest node with anchor and moves the cursor to it.
// Only quests whose parent has been built can be found.
func (etc *EventTreeComponent) Locate(anchor string) bool {
	if etc.tree == nil {
		return false
	}
	n, ok := etc.tree.FindAnchor(anchor)
	if !ok {
		return false
	}
	etc.tree.Reveal(n.Path)
	etc.Refresh()
	if tn := findPath(etc.view.GetRoot(), n.Path); tn != nil {
		etc.view.SetCurrentNode(tn)
	}
	return true
}

func (etc *EventTreeComponent) activate(tn *tview.TreeNode) {
	if etc.tree == nil {
		return
	}
	switch ref := tn.GetReference().(type) {
	case *eventtree.Node:
		etc.tree.ActivateLabel(ref)
		if ref.Kind != eventtree.KindShip {
			etc.Refresh()
		}
	case eventtree.Tag:
		etc.tree.ActivateTag(ref)
	}
}

func (etc *EventTreeComponent) toggleCurrent() {
	if etc.tree == nil {
		return
	}
	current := etc.view.GetCurrentNode()
	if current == nil {
		return
	}
	if n, ok := current.GetReference().(*eventtree.Node); ok {
		if etc.tree.Toggle(n.Path) {
			etc.Refresh()
		}
	}
}

// BuildTreeNodes converts the visible part of t into tview nodes. Event
// rows reference their *eventtree.Node, tag rows their eventtree.Tag;
// text and section rows are not selectable.
func BuildTreeNodes(t *eventtree.Tree, highlight string, th theme.Theme) *tview.TreeNode {
	root := tview.NewTreeNode("Events").SetSelectable(false)
	if t == nil {
		return root
	}
	for _, n := range t.Roots {
		root.AddChild(buildNode(t, n, highlight, th))
	}
	return root
}

func buildNode(t *eventtree.Tree, n *eventtree.Node, highlight string, th theme.Theme) *tview.TreeNode {
	collapsed := t.Collapsed(n)
	tn := tview.NewTreeNode(NodeLine(n, collapsed, n.Anchor != "" && n.Anchor == highlight, th)).
		SetReference(n).
		SetSelectable(true)
	if collapsed || (!n.Expandable() && n.Text == "") {
		return tn
	}

	colors := th.TreeColors()
	muted := th.DefaultColors().Muted
	for _, line := range WrapText(n.Text, TextWidth) {
		color := colors.Text
		if n.Suppressed {
			color = muted
		}
		tn.AddChild(tview.NewTreeNode(theme.Colorize(color, line)).SetSelectable(false))
	}
	if !n.Expandable() {
		return tn
	}

	children := t.Children(n)
	section(tn, children, eventtree.KindEvent, "Choices/Events:", t, highlight, th)
	section(tn, children, eventtree.KindShip, "Ships:", t, highlight, th)
	for _, g := range n.Tags {
		header := tview.NewTreeNode(theme.Colorize(muted, GroupTitle(g.Category)+":")).SetSelectable(false)
		for _, tag := range g.Tags {
			header.AddChild(tview.NewTreeNode(theme.Colorize(th.CategoryColor(tag.Category), "• "+tag.Title)).
				SetReference(tag).
				SetSelectable(true))
		}
		tn.AddChild(header)
	}
	section(tn, children, eventtree.KindQuest, "Quest Events:", t, highlight, th)
	return tn
}

func section(parent *tview.TreeNode, children []*eventtree.Node, kind eventtree.Kind, title string, t *eventtree.Tree, highlight string, th theme.Theme) {
	var header *tview.TreeNode
	for _, c := range children {
		if c.Kind != kind {
			continue
		}
		if header == nil {
			header = tview.NewTreeNode(theme.Colorize(th.DefaultColors().Muted, title)).SetSelectable(false)
			parent.AddChild(header)
		}
		header.AddChild(buildNode(t, c, highlight, th))
	}
}

// NodeLine is the header row of a node: collapse marker, label and, while
// collapsed, the text preview.
func NodeLine(n *eventtree.Node, collapsed, highlighted bool, th theme.Theme) string {
	var b strings.Builder
	switch {
	case !n.Expandable():
		b.WriteString("  ")
	case collapsed:
		b.WriteString("▶ ")
	default:
		b.WriteString("▼ ")
	}

	colors := th.TreeColors()
	labelColor := colors.Event
	switch n.Kind {
	case eventtree.KindShip:
		labelColor = colors.Ship
	case eventtree.KindQuest:
		labelColor = colors.Quest
	}
	if n.Suppressed {
		labelColor = th.DefaultColors().Muted
	}
	label := n.Label
	if n.Kind == eventtree.KindQuest && n.Name != "" && n.Name != n.Label {
		label += " (" + n.Name + ")"
	}
	if highlighted {
		b.WriteString(theme.ColorizeBg(labelColor, colors.Highlight, label))
	} else {
		b.WriteString(theme.Colorize(labelColor, label))
	}

	if collapsed && n.Text != "" {
		b.WriteString("  ")
		b.WriteString(theme.Colorize(th.DefaultColors().Muted, n.Preview()))
	}
	return b.String()
}

// GroupTitle is the plural section heading of a tag category.
func GroupTitle(c resolve.Category) string {
	switch c {
	case resolve.Weapon:
		return "Weapons"
	case resolve.Crew:
		return "Crew"
	case resolve.Augment:
		return "Augments"
	case resolve.Drone:
		return "Drones"
	}
	return "Ships"
}

// WrapText breaks text into lines of at most width runes at spaces,
// keeping explicit line breaks. Words longer than width are split.
func WrapText(text string, width int) []string {
	if text == "" {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		var line []rune
		for _, w := range words {
			word := []rune(w)
			for len(word) > width {
				if len(line) > 0 {
					lines = append(lines, string(line))
					line = nil
				}
				lines = append(lines, string(word[:width]))
				word = word[width:]
			}
			if len(word) == 0 {
				continue
			}
			switch {
			case len(line) == 0:
				line = word
			case len(line)+1+len(word) <= width:
				line = append(append(line, ' '), word...)
			default:
				lines = append(lines, string(line))
				line = word
			}
		}
		if len(line) > 0 {
			lines = append(lines, string(line))
		}
	}
	return lines
}

func selectedPath(tn *tview.TreeNode) string {
	if tn == nil {
		return ""
	}
	if n, ok := tn.GetReference().(*eventtree.Node); ok {
		return n.Path
	}
	return ""
}

func findPath(root *tview.TreeNode, path string) *tview.TreeNode {
	var found *tview.TreeNode
	root.Walk(func(node, parent *tview.TreeNode) bool {
		if found != nil {
			return false
		}
		if n, ok := node.GetReference().(*eventtree.Node); ok && n.Path == path {
			found = node
			return false
		}
		return true
	})
	return found
}

func firstSelectable(root *tview.TreeNode) *tview.TreeNode {
	if root == nil {
		return nil
	}
	var found *tview.TreeNode
	root.Walk(func(node, parent *tview.TreeNode) bool {
		if found != nil {
			return false
		}
		if node.GetReference() != nil {
			found = node
			return false
		}
		return true
	})
	return found
}
