// Package resolve maps (category, key) references found in sectors and
// events to blueprint records.
package resolve

import (
	"fmt"
	"strings"

	"ftlview/internal/data"
)

// Category of a blueprint reference
type Category int

const (
	Weapon Category = iota
	Crew
	Augment
	Drone
	Ship
)

// Categories lists the item categories in display order.
var Categories = []Category{Weapon, Crew, Augment, Drone, Ship}

func (c Category) String() string {
	switch c {
	case Weapon:
		return "weapon"
	case Crew:
		return "crew"
	case Augment:
		return "augment"
	case Drone:
		return "drone"
	case Ship:
		return "ship"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// ParseCategory is the inverse of Category.String, case-insensitive.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// Resolver indexes the blueprint tables once so lookups are O(1).
type Resolver struct {
	bp    data.Blueprints
	index [Ship + 1]map[string]int
}

// New builds the per-category indexes. When two records share a key the
// first one wins.
func New(bp data.Blueprints) *Resolver {
	r := &Resolver{bp: bp}
	r.index[Weapon] = indexBy(len(bp.Weapons), func(i int) string { return bp.Weapons[i].Name })
	r.index[Crew] = indexBy(len(bp.Crew), func(i int) string { return bp.Crew[i].Name })
	r.index[Augment] = indexBy(len(bp.Augments), func(i int) string { return bp.Augments[i].Name })
	r.index[Drone] = indexBy(len(bp.Drones), func(i int) string { return bp.Drones[i].Name })
	r.index[Ship] = indexBy(len(bp.ShipBlueprints), func(i int) string { return bp.ShipBlueprints[i].Name })
	return r
}

func indexBy(n int, key func(int) string) map[string]int {
	m := make(map[string]int, n)
	for i := 0; i < n; i++ {
		k := key(i)
		if _, dup := m[k]; !dup {
			m[k] = i
		}
	}
	return m
}

func (r *Resolver) position(c Category, key string) (int, bool) {
	if c < Weapon || c > Ship {
		return 0, false
	}
	i, ok := r.index[c][key]
	return i, ok
}

// Lookup returns the record for key. The concrete type is the matching
// *data.Weapon, *data.Crew, *data.Augment, *data.Drone or *data.ShipBlueprint.
func (r *Resolver) Lookup(c Category, key string) (data.Record, bool) {
	i, ok := r.position(c, key)
	if !ok {
		return nil, false
	}
	switch c {
	case Weapon:
		return &r.bp.Weapons[i], true
	case Crew:
		return &r.bp.Crew[i], true
	case Augment:
		return &r.bp.Augments[i], true
	case Drone:
		return &r.bp.Drones[i], true
	case Ship:
		return &r.bp.ShipBlueprints[i], true
	}
	return nil, false
}

// Title is the display title for a reference. A missing record or an
// empty title falls back to the key itself.
func (r *Resolver) Title(c Category, key string) string {
	rec, ok := r.Lookup(c, key)
	if !ok {
		return key
	}
	if t := rec.DisplayTitle(); t != "" {
		return t
	}
	return key
}

func (r *Resolver) Weapon(key string) (*data.Weapon, bool) {
	i, ok := r.position(Weapon, key)
	if !ok {
		return nil, false
	}
	return &r.bp.Weapons[i], true
}

func (r *Resolver) Crew(key string) (*data.Crew, bool) {
	i, ok := r.position(Crew, key)
	if !ok {
		return nil, false
	}
	return &r.bp.Crew[i], true
}

func (r *Resolver) Augment(key string) (*data.Augment, bool) {
	i, ok := r.position(Augment, key)
	if !ok {
		return nil, false
	}
	return &r.bp.Augments[i], true
}

func (r *Resolver) Drone(key string) (*data.Drone, bool) {
	i, ok := r.position(Drone, key)
	if !ok {
		return nil, false
	}
	return &r.bp.Drones[i], true
}

func (r *Resolver) Ship(key string) (*data.ShipBlueprint, bool) {
	i, ok := r.position(Ship, key)
	if !ok {
		return nil, false
	}
	return &r.bp.ShipBlueprints[i], true
}

// CrewAnimation is the crew race's animation data, or the synthesized
// walk cycle when the record has none or does not exist.
func (r *Resolver) CrewAnimation(crewKey string) *data.AnimationData {
	if c, ok := r.Crew(crewKey); ok && c.AnimationData != nil {
		return c.AnimationData
	}
	return data.FallbackCrewAnimation(crewKey)
}

// DroneCrewAnimation maps a crew drone to its crew race's walk cycle.
// Drones without a crew blueprint have no animation and return nil.
func (r *Resolver) DroneCrewAnimation(droneKey string) *data.AnimationData {
	d, ok := r.Drone(droneKey)
	if !ok || d.CrewBlueprint == "" {
		return nil
	}
	return r.CrewAnimation(d.CrewBlueprint)
}
