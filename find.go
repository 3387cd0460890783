package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ftlview/internal/catalog"
	"ftlview/internal/resolve"
)

var findCmd = &cobra.Command{
	Use:   "find <category> <key>",
	Short: "List the sectors that offer an item",
	Long: `List every sector whose store tables or events offer an item.

Category is one of weapon, crew, augment, drone or ship; key is the
blueprint name, e.g. "find weapon LASER_BURST_1".`,
	Args: cobra.ExactArgs(2),
	RunE: runFind,
}

func runFind(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cat, err := resolve.ParseCategory(args[0])
	if err != nil {
		return err
	}
	key := args[1]

	store, err := loadStore(ctx)
	if err != nil {
		return err
	}
	c, err := catalog.Open(ctx)
	if err != nil {
		return err
	}
	defer c.Close()
	if err := c.Index(ctx, store.Sectors()); err != nil {
		return err
	}

	offers, err := c.SectorsOffering(ctx, cat, key)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	title := resolve.New(store.Blueprints()).Title(cat, key)
	if len(offers) == 0 {
		fmt.Fprintf(out, "%s is not offered in any sector\n", title)
		return nil
	}
	fmt.Fprintf(out, "%s (%s)\n", title, cat)
	for _, o := range offers {
		where := "store"
		if o.Source == catalog.SourceEvent {
			where = "event reward"
		}
		rarity := ""
		if o.Rarity.Set() {
			rarity = "rarity " + o.Rarity.String()
		}
		fmt.Fprintf(out, "  %-32s %-16s %-12s %s\n", o.SectorName, o.SectorID, where, rarity)
	}
	return nil
}
