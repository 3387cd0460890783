// Package eventtree turns a sector's nested events into a collapsible
// display tree. Collapse state lives in the Tree, keyed by node path, and
// never touches the dataset.
package eventtree

import (
	"strconv"
	"strings"

	"ftlview/internal/data"
	"ftlview/internal/log"
	"ftlview/internal/resolve"
)

// SuppressedMarker is the placeholder text of events stripped by the exporter.
const SuppressedMarker = "[System event - removed for brevity]"

// PreviewLength is the number of characters shown while a node is collapsed.
const PreviewLength = 100

// Kind of a display node
type Kind int

const (
	KindEvent Kind = iota
	KindShip
	KindQuest
)

// Tag is one resolved item grant
type Tag struct {
	Category resolve.Category
	Key      string
	Title    string
}

// TagGroup is the tag list of one category, in source order.
type TagGroup struct {
	Category resolve.Category
	Tags     []Tag
}

// Selection is emitted when an item tag or a ship label is activated.
type Selection struct {
	Category resolve.Category
	Key      string
}

// Node is a display node. Children are built on first expansion.
type Node struct {
	Path  string
	Level int
	Kind  Kind

	Label string
	Name  string
	Text  string

	// ShipKey is the blueprint a ship node's label opens.
	ShipKey string
	// Anchor is set on quest nodes ("quest-" + event name).
	Anchor string

	Suppressed bool
	Tags       []TagGroup

	src      source
	children []*Node
	built    bool
}

// source is the uniform shape events, ships and quests are read through.
type source struct {
	events []*data.EventNode
	ships  []data.ShipPlacement
	quests []data.Quest
	grants data.Grants
}

func (s *source) expandable() bool {
	return len(s.events) > 0 || len(s.ships) > 0 || len(s.quests) > 0 || !s.grants.Empty()
}

// Expandable reports whether the node has any child collection.
func (n *Node) Expandable() bool {
	return n.src.expandable()
}

// Foldable reports whether toggling the node changes what is shown: it
// has children, or its text is cut in the preview. Leaves with long text
// fold without drawing a marker.
func (n *Node) Foldable() bool {
	return n.Expandable() || len([]rune(n.Text)) > PreviewLength
}

// Preview is the text shown while collapsed.
func (n *Node) Preview() string {
	return Preview(n.Text)
}

// Preview truncates text to PreviewLength characters with a trailing "...".
func Preview(text string) string {
	r := []rune(text)
	if len(r) <= PreviewLength {
		return text
	}
	return string(r[:PreviewLength]) + "..."
}

// Suppressed reports whether text carries the exporter's removal marker.
func Suppressed(text string) bool {
	return strings.Contains(text, SuppressedMarker)
}

// Tree owns the display nodes of one sector and their collapse state.
type Tree struct {
	Roots []*Node

	resolver *resolve.Resolver
	// collapsed overrides the level-based default per node path
	collapsed map[string]bool
	built     map[string]*Node
	anchors   map[string]*Node
	listener  func(Selection)
}

// Build creates the root nodes for events. Roots start expanded, so their
// children are built too; deeper levels wait until they are opened.
func Build(events []*data.EventNode, r *resolve.Resolver) *Tree {
	t := &Tree{
		resolver:  r,
		collapsed: make(map[string]bool),
		built:     make(map[string]*Node),
		anchors:   make(map[string]*Node),
	}
	for i, e := range events {
		if e == nil {
			continue
		}
		t.Roots = append(t.Roots, t.eventNode(e, strconv.Itoa(i), 0))
	}
	for _, root := range t.Roots {
		t.Children(root)
	}
	return t
}

// OnSelect registers the listener for tag and ship activations.
func (t *Tree) OnSelect(fn func(Selection)) {
	t.listener = fn
}

// Collapsed reports the node's collapse state. Nodes below the root
// level start collapsed.
func (t *Tree) Collapsed(n *Node) bool {
	if c, ok := t.collapsed[n.Path]; ok {
		return c
	}
	return n.Level > 0
}

// Toggle flips the collapse state of the node at path only. Descendants
// keep their own state. Returns false if the path is unknown or the
// node is not foldable.
func (t *Tree) Toggle(path string) bool {
	n, ok := t.built[path]
	if !ok || !n.Foldable() {
		return false
	}
	t.collapsed[path] = !t.Collapsed(n)
	if !t.collapsed[path] && n.Expandable() {
		t.Children(n)
	}
	return true
}

// ActivateLabel handles a click on a node header. Ship labels select the
// ship blueprint; every other label toggles the node.
func (t *Tree) ActivateLabel(n *Node) {
	if n.Kind == KindShip {
		t.emit(Selection{Category: resolve.Ship, Key: n.ShipKey})
		return
	}
	t.Toggle(n.Path)
}

// ActivateTag selects the tag's blueprint. Collapse state is not touched.
func (t *Tree) ActivateTag(tag Tag) {
	t.emit(Selection{Category: tag.Category, Key: tag.Key})
}

func (t *Tree) emit(sel Selection) {
	log.Debug("event tree selection", "category", sel.Category, "key", sel.Key)
	if t.listener != nil {
		t.listener(sel)
	}
}

// Node returns a built node by path.
func (t *Tree) Node(path string) (*Node, bool) {
	n, ok := t.built[path]
	return n, ok
}

// FindAnchor returns the quest node with the given anchor, if it has
// been built. Unopened subtrees are not searched.
func (t *Tree) FindAnchor(anchor string) (*Node, bool) {
	n, ok := t.anchors[anchor]
	return n, ok
}

// Reveal expands every ancestor of the node at path so it becomes visible.
func (t *Tree) Reveal(path string) {
	for p := parentPath(path); p != ""; p = parentPath(p) {
		if n, ok := t.built[p]; ok && t.Collapsed(n) {
			t.Toggle(p)
		}
	}
}

func parentPath(path string) string {
	parts := strings.Split(path, "/")
	if len(parts) < 3 {
		return ""
	}
	return strings.Join(parts[:len(parts)-2], "/")
}

// Children returns the child nodes in display order: events, ships,
// then quests. They are built once and cached.
func (t *Tree) Children(n *Node) []*Node {
	if n.built {
		return n.children
	}
	n.built = true

	level := n.Level + 1
	for i, e := range n.src.events {
		if e == nil {
			continue
		}
		n.children = append(n.children, t.eventNode(e, childPath(n.Path, "events", i), level))
	}
	for i := range n.src.ships {
		n.children = append(n.children, t.shipNode(&n.src.ships[i], childPath(n.Path, "ships", i), level))
	}
	for i := range n.src.quests {
		n.children = append(n.children, t.questNode(&n.src.quests[i], childPath(n.Path, "quests", i), level))
	}
	return n.children
}

// Visible flattens the tree in display order, skipping the contents of
// collapsed nodes.
func (t *Tree) Visible() []*Node {
	var out []*Node
	var walk func(nodes []*Node)
	walk = func(nodes []*Node) {
		for _, n := range nodes {
			out = append(out, n)
			if n.Expandable() && !t.Collapsed(n) {
				walk(t.Children(n))
			}
		}
	}
	walk(t.Roots)
	return out
}

func childPath(parent, kind string, i int) string {
	return parent + "/" + kind + "/" + strconv.Itoa(i)
}

func (t *Tree) eventNode(e *data.EventNode, path string, level int) *Node {
	n := &Node{
		Path:  path,
		Level: level,
		Kind:  KindEvent,
		Label: e.Label(),
		Name:  e.Name,
		Text:  e.Text,
		src: source{
			events: e.Events,
			ships:  e.Ships,
			quests: e.Quests,
			grants: e.Grants,
		},
	}
	return t.register(n)
}

// shipNode is keyed by index path; a placement without a name still gets
// a stable identity.
func (t *Tree) shipNode(s *data.ShipPlacement, path string, level int) *Node {
	n := &Node{
		Path:    path,
		Level:   level,
		Kind:    KindShip,
		Label:   s.Name,
		Name:    s.Name,
		ShipKey: s.BlueprintKey(),
		src: source{
			events: s.Events,
			grants: s.Grants,
		},
	}
	if s.AutoBlueprint != "" {
		n.Text = "Auto Blueprint: " + s.AutoBlueprint
	}
	return t.register(n)
}

func (t *Tree) questNode(q *data.Quest, path string, level int) *Node {
	n := &Node{
		Path:   path,
		Level:  level,
		Kind:   KindQuest,
		Label:  q.EventName,
		Name:   q.Name,
		Text:   q.Text,
		Anchor: q.Anchor(),
		src: source{
			events: q.Events,
			ships:  q.Ships,
			grants: q.Grants,
		},
	}
	n = t.register(n)
	// first quest with a given event name owns the anchor
	if _, dup := t.anchors[n.Anchor]; !dup {
		t.anchors[n.Anchor] = n
	}
	return n
}

func (t *Tree) register(n *Node) *Node {
	n.Suppressed = Suppressed(n.Text)
	n.Tags = t.tags(&n.src.grants)
	t.built[n.Path] = n
	return n
}

func (t *Tree) tags(g *data.Grants) []TagGroup {
	var groups []TagGroup
	add := func(c resolve.Category, refs []data.ItemRef) {
		if len(refs) == 0 {
			return
		}
		group := TagGroup{Category: c, Tags: make([]Tag, 0, len(refs))}
		for _, ref := range refs {
			group.Tags = append(group.Tags, Tag{Category: c, Key: ref.Name, Title: t.title(c, ref.Name)})
		}
		groups = append(groups, group)
	}
	add(resolve.Weapon, g.Weapons)
	add(resolve.Crew, g.Crew)
	add(resolve.Augment, g.Augments)
	add(resolve.Drone, g.Drones)
	return groups
}

func (t *Tree) title(c resolve.Category, key string) string {
	if t.resolver == nil {
		return key
	}
	return t.resolver.Title(c, key)
}
