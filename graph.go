package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"ftlview/internal/data"
	"ftlview/internal/eventtree"
	"ftlview/internal/resolve"
	"ftlview/internal/sectors"
)

var (
	graphFormat string
	graphOut    string
	graphMerge  bool
)

var graphCmd = &cobra.Command{
	Use:   "graph <sector-id>",
	Short: "Export a sector's event tree as a graph",
	Long: `Export the fully expanded event tree of one sector with graphviz.

The format defaults to the extension of --out, or dot when writing to stdout.
With --merge, events sharing a label become one vertex; edges that would
close a loop are dropped.`,
	Args: cobra.ExactArgs(1),
	RunE: runGraph,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List sectors grouped by uniqueness and colour",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	graphCmd.Flags().StringVarP(&graphFormat, "format", "f", "", "output format: dot, png or svg")
	graphCmd.Flags().StringVarP(&graphOut, "out", "o", "", "output file (default stdout)")
	graphCmd.Flags().BoolVar(&graphMerge, "merge", false, "merge events with the same label")
}

func loadStore(ctx context.Context) (*data.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	ds, err := data.NewLoader().Load(ctx, cfg.DataSource)
	if err != nil {
		return nil, err
	}
	return data.NewStore(ds), nil
}

func runGraph(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := graphOutputFormat(graphFormat, graphOut)
	if err != nil {
		return err
	}

	store, err := loadStore(ctx)
	if err != nil {
		return err
	}
	sector, ok := store.Sector(args[0])
	if !ok {
		return fmt.Errorf("sector %q not found", args[0])
	}

	tree := eventtree.Build(sector.Events, resolve.New(store.Blueprints()))
	g, stats, err := eventtree.Graph(tree, eventtree.GraphOptions{MergeByLabel: graphMerge})
	if err != nil {
		return err
	}

	render := func(w io.Writer) error {
		return eventtree.RenderGraph(ctx, g, format, w)
	}
	if graphOut == "" {
		err = render(cmd.OutOrStdout())
	} else {
		err = writeGraphFile(graphOut, render)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d vertices, %d edges, %d loops skipped\n",
		sector.ID, stats.Vertices, stats.Edges, stats.SkippedLoops)
	return nil
}

func writeGraphFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return writeBuffered(f, render)
}

// writeBuffered renders into wc, then flushes and closes it. The first
// error wins; wc is closed in every case.
func writeBuffered(wc io.WriteCloser, render func(io.Writer) error) error {
	bw := bufio.NewWriter(wc)
	err := render(bw)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := wc.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("failed to write graph: %w", err)
	}
	return nil
}

// graphOutputFormat picks the explicit format, else the output extension,
// else dot.
func graphOutputFormat(format, out string) (eventtree.Format, error) {
	if format != "" {
		return eventtree.ParseFormat(format)
	}
	if ext := strings.TrimPrefix(filepath.Ext(out), "."); ext != "" {
		return eventtree.ParseFormat(ext)
	}
	return eventtree.FormatDOT, nil
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	store, err := loadStore(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	group := ""
	for _, b := range sectors.Partition(store.Sectors()) {
		if b.Key.Group() != group {
			group = b.Key.Group()
			fmt.Fprintln(out, group)
		}
		fmt.Fprintf(out, "  %s (%d)\n", b.Key.Title(), len(b.Sectors))
		for _, s := range b.Sectors {
			fmt.Fprintf(out, "    %-32s %s\n", s.Name, s.ID)
		}
	}
	return nil
}
