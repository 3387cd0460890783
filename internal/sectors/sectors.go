// Package sectors groups sectors into the navigation buckets.
package sectors

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"ftlview/internal/data"
)

// BucketKey identifies one of the twelve navigation buckets. Color is
// empty for the "other" bucket.
type BucketKey struct {
	Unique bool
	Color  data.ColorType
}

var colorOrder = []data.ColorType{
	data.ColorCivilian,
	data.ColorNeutral,
	data.ColorHostile,
	data.ColorNebula,
	data.ColorSecret,
	"",
}

// Keys returns all twelve bucket keys in display order: unique buckets
// first, each group ordered by colour with "other" last.
func Keys() []BucketKey {
	keys := make([]BucketKey, 0, 2*len(colorOrder))
	for _, unique := range []bool{true, false} {
		for _, c := range colorOrder {
			keys = append(keys, BucketKey{Unique: unique, Color: c})
		}
	}
	return keys
}

// KeyOf is the bucket a sector belongs to. Colour strings outside the
// five known values land in "other".
func KeyOf(s *data.Sector) BucketKey {
	k := BucketKey{Unique: s.IsUnique()}
	if s.ColorType.Known() {
		k.Color = s.ColorType
	}
	return k
}

// Title is the heading shown for the bucket's colour.
func (k BucketKey) Title() string {
	switch k.Color {
	case data.ColorCivilian:
		return "Peaceful / Allied"
	case data.ColorNeutral:
		return "Neutral Territory"
	case data.ColorHostile:
		return "Hostile Territory"
	case data.ColorNebula:
		return "Hazardous Nebulae"
	case data.ColorSecret:
		return "Secret Sectors"
	}
	return "Other"
}

// Group is the "Unique Sectors" / "Standard Sectors" heading.
func (k BucketKey) Group() string {
	if k.Unique {
		return "Unique Sectors"
	}
	return "Standard Sectors"
}

// ID is a stable identifier usable as a map key in views.
func (k BucketKey) ID() string {
	group := "standard"
	if k.Unique {
		group = "unique"
	}
	color := string(k.Color)
	if color == "" {
		color = "OTHER"
	}
	return group + "/" + color
}

// DefaultCollapsed is true only for the secret buckets.
func (k BucketKey) DefaultCollapsed() bool {
	return k.Color == data.ColorSecret
}

// Bucket is a non-empty, sorted group of sectors.
type Bucket struct {
	Key     BucketKey
	Sectors []*data.Sector
}

// Partition assigns every sector to exactly one bucket and sorts each
// bucket by name using English collation. Ties keep their input order.
// Empty buckets are omitted.
func Partition(sectors []data.Sector) []Bucket {
	grouped := make(map[BucketKey][]*data.Sector)
	for i := range sectors {
		k := KeyOf(&sectors[i])
		grouped[k] = append(grouped[k], &sectors[i])
	}

	col := collate.New(language.English)
	var out []Bucket
	for _, k := range Keys() {
		members := grouped[k]
		if len(members) == 0 {
			continue
		}
		sort.SliceStable(members, func(i, j int) bool {
			return col.CompareString(members[i].Name, members[j].Name) < 0
		})
		out = append(out, Bucket{Key: k, Sectors: members})
	}
	return out
}

// CollapseState tracks which buckets the user has folded. It is
// presentation state only and starts from DefaultCollapsed.
type CollapseState struct {
	overrides map[BucketKey]bool
}

func NewCollapseState() *CollapseState {
	return &CollapseState{overrides: make(map[BucketKey]bool)}
}

func (c *CollapseState) Collapsed(k BucketKey) bool {
	if v, ok := c.overrides[k]; ok {
		return v
	}
	return k.DefaultCollapsed()
}

// Toggle flips the bucket and returns its new state.
func (c *CollapseState) Toggle(k BucketKey) bool {
	c.overrides[k] = !c.Collapsed(k)
	return c.overrides[k]
}
