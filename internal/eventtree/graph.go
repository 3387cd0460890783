package eventtree

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dominikbraun/graph"
	"github.com/goccy/go-graphviz"

	"ftlview/internal/log"
)

// Vertex is one event, ship or quest in an exported graph.
type Vertex struct {
	ID    string
	Label string
	Kind  Kind
	Tags  []TagGroup
}

// GraphOptions control how the display tree is folded into a graph.
type GraphOptions struct {
	// MergeByLabel folds nodes sharing a label into one vertex. Edges that
	// would close a loop are skipped and counted in GraphStats.
	MergeByLabel bool
}

// GraphStats summarises an export.
type GraphStats struct {
	Vertices     int
	Edges        int
	SkippedLoops int
}

// Graph builds a directed acyclic graph of the fully expanded tree.
// Collapse state is not changed, but every subtree gets built.
func Graph(t *Tree, opts GraphOptions) (graph.Graph[string, Vertex], GraphStats, error) {
	g := graph.New(func(v Vertex) string { return v.ID }, graph.Directed(), graph.Acyclic(), graph.PreventCycles())
	var stats GraphStats

	id := func(n *Node) string {
		if opts.MergeByLabel && n.Label != "" {
			return n.Label
		}
		return n.Path
	}

	var walk func(parent *Node, nodes []*Node) error
	walk = func(parent *Node, nodes []*Node) error {
		for _, n := range nodes {
			v := Vertex{ID: id(n), Label: n.Label, Kind: n.Kind, Tags: n.Tags}
			err := g.AddVertex(v)
			switch {
			case err == nil:
				stats.Vertices++
			case errors.Is(err, graph.ErrVertexAlreadyExists):
			default:
				return fmt.Errorf("failed to add vertex %s: %w", v.ID, err)
			}

			if parent != nil {
				err := g.AddEdge(id(parent), v.ID)
				switch {
				case err == nil:
					stats.Edges++
				case errors.Is(err, graph.ErrEdgeAlreadyExists):
				case errors.Is(err, graph.ErrEdgeCreatesCycle):
					stats.SkippedLoops++
					log.Debug("skipping event loop", "from", id(parent), "to", v.ID)
					continue
				default:
					return fmt.Errorf("failed to add edge %s -> %s: %w", id(parent), v.ID, err)
				}
			}

			if err := walk(n, t.Children(n)); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(nil, t.Roots); err != nil {
		return nil, stats, err
	}
	return g, stats, nil
}

// Format is an export format understood by RenderGraph.
type Format string

const (
	FormatDOT Format = "dot"
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatDOT, FormatPNG, FormatSVG:
		return f, nil
	}
	return "", fmt.Errorf("unsupported graph format %q", s)
}

var kindFill = map[Kind]string{
	KindEvent: "lightblue",
	KindShip:  "lightcoral",
	KindQuest: "gold",
}

// RenderGraph lays out g with graphviz dot and writes it to w.
func RenderGraph(ctx context.Context, g graph.Graph[string, Vertex], format Format, w io.Writer) error {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("failed to create graphviz instance: %w", err)
	}
	defer gv.Close()

	gvGraph, err := gv.Graph()
	if err != nil {
		return fmt.Errorf("failed to create graphviz graph: %w", err)
	}
	defer gvGraph.Close()

	gvGraph.SetLayout("dot")
	gvGraph.Set("rankdir", "LR")

	adjacency, err := g.AdjacencyMap()
	if err != nil {
		return fmt.Errorf("failed to get adjacency map: %w", err)
	}

	// sorted so DOT output is deterministic
	ids := make([]string, 0, len(adjacency))
	for id := range adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	gvNodes := make(map[string]*graphviz.Node, len(ids))
	for i, id := range ids {
		v, err := g.Vertex(id)
		if err != nil {
			continue
		}
		node, err := gvGraph.CreateNodeByName(fmt.Sprintf("n%d", i))
		if err != nil {
			continue
		}
		node.SetLabel(vertexLabel(v))
		node.SetFillColor(kindFill[v.Kind])
		node.SetShape("box")
		node.SetStyle("filled,rounded")
		node.SetFontSize(12.0)
		gvNodes[id] = node
	}

	for _, src := range ids {
		targets := make([]string, 0, len(adjacency[src]))
		for dst := range adjacency[src] {
			targets = append(targets, dst)
		}
		sort.Strings(targets)
		for _, dst := range targets {
			from, ok1 := gvNodes[src]
			to, ok2 := gvNodes[dst]
			if !ok1 || !ok2 {
				continue
			}
			edge, err := gvGraph.CreateEdgeByName("", from, to)
			if err != nil {
				continue
			}
			edge.SetDir("forward")
		}
	}

	if err := gv.Render(ctx, gvGraph, graphviz.Format(format), w); err != nil {
		return fmt.Errorf("failed to render %s: %w", format, err)
	}
	return nil
}

func vertexLabel(v Vertex) string {
	var b strings.Builder
	b.WriteString(v.Label)
	for _, group := range v.Tags {
		titles := make([]string, 0, len(group.Tags))
		for _, tag := range group.Tags {
			titles = append(titles, tag.Title)
		}
		fmt.Fprintf(&b, "\n%s: %s", group.Category, strings.Join(titles, ", "))
	}
	return b.String()
}
