// Package catalog indexes which sectors stock or grant each item, in an
// in-memory SQLite database.
package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"ftlview/internal/data"
	"ftlview/internal/log"
	"ftlview/internal/resolve"
)

// Where an item reference was found.
const (
	SourceSector = "sector" // the sector's own item tables
	SourceEvent  = "event"  // an event, ship or quest grant inside the sector
)

const schema = `
CREATE TABLE sector_items (
	sector_id   TEXT NOT NULL,
	sector_name TEXT NOT NULL,
	category    TEXT NOT NULL,
	item        TEXT NOT NULL,
	rarity      REAL,
	source      TEXT NOT NULL
);
CREATE INDEX idx_sector_items_item ON sector_items (category, item);
`

// Offer is one sector in which an item appears.
type Offer struct {
	SectorID   string
	SectorName string
	// Rarity is the lowest rarity the sector lists the item with. It is
	// unset for event grants and for entries without a rarity.
	Rarity data.Stat
	Source string
}

// Catalog is the item index
type Catalog struct {
	db *sql.DB
}

// Open creates an empty in-memory index.
func Open(ctx context.Context) (*Catalog, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	// every connection to :memory: is its own database
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create catalog schema: %w", err)
	}
	return &Catalog{db: db}, nil
}

type row struct {
	category resolve.Category
	item     string
	rarity   any // float64, or nil for NULL
	source   string
}

// Index adds every sector's item tables and event grants.
func (c *Catalog) Index(ctx context.Context, sectors []data.Sector) error {
	defer log.Timed("index catalog", "sectors", len(sectors))()

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin catalog transaction: %w", err)
	}
	defer tx.Rollback()

	total := 0
	for i := range sectors {
		rows := sectorRows(&sectors[i])
		if len(rows) == 0 {
			continue
		}

		insert := squirrel.Insert("sector_items").
			Columns("sector_id", "sector_name", "category", "item", "rarity", "source")
		for _, r := range rows {
			insert = insert.Values(sectors[i].ID, sectors[i].Name, r.category.String(), r.item, r.rarity, r.source)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build catalog insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to index sector %s: %w", sectors[i].ID, err)
		}
		total += len(rows)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit catalog: %w", err)
	}
	log.Debug("catalog indexed", "rows", total)
	return nil
}

func sectorRows(s *data.Sector) []row {
	var rows []row
	addRefs := func(c resolve.Category, refs []data.ItemRef, source string) {
		for _, ref := range refs {
			if ref.Name == "" {
				continue
			}
			var rarity any
			if v, ok := ref.Rarity.Get(); ok && source == SourceSector {
				rarity = v
			}
			rows = append(rows, row{category: c, item: ref.Name, rarity: rarity, source: source})
		}
	}
	addGrants := func(g *data.Grants) {
		addRefs(resolve.Weapon, g.Weapons, SourceEvent)
		addRefs(resolve.Crew, g.Crew, SourceEvent)
		addRefs(resolve.Augment, g.Augments, SourceEvent)
		addRefs(resolve.Drone, g.Drones, SourceEvent)
	}

	addRefs(resolve.Weapon, s.Weapons, SourceSector)
	addRefs(resolve.Crew, s.Crew, SourceSector)
	addRefs(resolve.Augment, s.Augments, SourceSector)
	addRefs(resolve.Drone, s.Drones, SourceSector)

	var walkEvents func(events []*data.EventNode)
	var walkShips func(ships []data.ShipPlacement)
	var walkQuests func(quests []data.Quest)
	walkShips = func(ships []data.ShipPlacement) {
		for i := range ships {
			if key := ships[i].BlueprintKey(); key != "" {
				rows = append(rows, row{category: resolve.Ship, item: key, source: SourceEvent})
			}
			addGrants(&ships[i].Grants)
			walkEvents(ships[i].Events)
		}
	}
	walkQuests = func(quests []data.Quest) {
		for i := range quests {
			addGrants(&quests[i].Grants)
			walkEvents(quests[i].Events)
			walkShips(quests[i].Ships)
		}
	}
	walkEvents = func(events []*data.EventNode) {
		for _, e := range events {
			if e == nil {
				continue
			}
			addGrants(&e.Grants)
			walkEvents(e.Events)
			walkShips(e.Ships)
			walkQuests(e.Quests)
		}
	}

	walkEvents(s.Events)
	walkQuests(s.Quests)
	return rows
}

// SectorsOffering lists the sectors in which the item appears, ordered
// by sector name. An unknown item yields an empty list.
func (c *Catalog) SectorsOffering(ctx context.Context, cat resolve.Category, key string) ([]Offer, error) {
	query, args, err := squirrel.Select("sector_id", "sector_name", "MIN(rarity)", "source").
		From("sector_items").
		Where(squirrel.Eq{"category": cat.String(), "item": key}).
		GroupBy("sector_id", "sector_name", "source").
		OrderBy("sector_name", "sector_id", "source DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog query: %w", err)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer rows.Close()

	var offers []Offer
	for rows.Next() {
		var o Offer
		var rarity sql.NullFloat64
		if err := rows.Scan(&o.SectorID, &o.SectorName, &rarity, &o.Source); err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}
		if rarity.Valid {
			o.Rarity = data.NewStat(rarity.Float64)
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

// Close releases the database.
func (c *Catalog) Close() error {
	return c.db.Close()
}
