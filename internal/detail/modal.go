package detail

import (
	"context"
	"fmt"
	"math"

	"ftlview/internal/anim"
	"ftlview/internal/catalog"
	"ftlview/internal/data"
	"ftlview/internal/eventtree"
	"ftlview/internal/log"
	"ftlview/internal/resolve"
)

// Field is a "Label: value" line of the modal grid.
type Field struct {
	Label string
	Value string
}

// Section is a titled block below the grid.
type Section struct {
	Title string
	Lines []string
}

// Modal is the item detail dialog content.
type Modal struct {
	Category resolve.Category
	Key      string
	Title    string
	Fields   []Field
	Sections []Section
	Record   data.Record

	// Animation is the sprite preview, nil when there is none.
	Animation *anim.Plan
	// Images are static image layers, drawn bottom first.
	Images []string
}

// Offers looks up the sectors that stock an item.
type Offers interface {
	SectorsOffering(ctx context.Context, cat resolve.Category, key string) ([]catalog.Offer, error)
}

// Select opens the modal for a selection. Unknown keys return false and
// leave the panel unchanged.
func (p *Panel) Select(ctx context.Context, sel eventtree.Selection) (*Modal, bool) {
	m, ok := BuildModal(p.resolver, sel.Category, sel.Key)
	if !ok {
		log.Debug("selection has no blueprint", "category", sel.Category, "key", sel.Key)
		return nil, false
	}
	if p.offers != nil {
		offers, err := p.offers.SectorsOffering(ctx, sel.Category, sel.Key)
		if err != nil {
			log.Warn("catalog lookup failed", "category", sel.Category, "key", sel.Key, "error", err)
		} else if len(offers) > 0 {
			m.Sections = append(m.Sections, foundIn(offers))
		}
	}
	return m, true
}

// SelectRow opens the modal for an item row.
func (p *Panel) SelectRow(ctx context.Context, row Row) (*Modal, bool) {
	if !row.IsItem {
		return nil, false
	}
	return p.Select(ctx, eventtree.Selection{Category: row.Category, Key: row.Key})
}

func foundIn(offers []catalog.Offer) Section {
	s := Section{Title: "Found In"}
	for _, o := range offers {
		line := fmt.Sprintf("%s (%s)", o.SectorName, o.SectorID)
		if o.Source == catalog.SourceEvent {
			line += ", event reward"
		} else if o.Rarity.Set() {
			line += ", rarity " + o.Rarity.String()
		}
		s.Lines = append(s.Lines, line)
	}
	return s
}

// BuildModal lays out the record of (c, key).
func BuildModal(r *resolve.Resolver, c resolve.Category, key string) (*Modal, bool) {
	rec, ok := r.Lookup(c, key)
	if !ok {
		return nil, false
	}
	m := &Modal{Category: c, Key: key, Record: rec}
	switch v := rec.(type) {
	case *data.Weapon:
		weaponModal(m, v)
	case *data.Crew:
		crewModal(m, v, r)
	case *data.Augment:
		augmentModal(m, v)
	case *data.Drone:
		droneModal(m, v, r)
	case *data.ShipBlueprint:
		shipModal(m, v)
	}
	return m, true
}

func titleOr(title, name string) string {
	if title != "" {
		return title
	}
	return name
}

func (m *Modal) field(label, value string) {
	m.Fields = append(m.Fields, Field{Label: label, Value: value})
}

// always shows the stat, "-" when absent
func (m *Modal) stat(label string, s data.Stat) {
	m.field(label, s.String())
}

// shows the stat only when it is set and non-zero
func (m *Modal) truthy(label string, s data.Stat) {
	if s.Truthy() {
		m.field(label, s.String())
	}
}

// shows the stat when present, zero included
func (m *Modal) defined(label string, s data.Stat) {
	if s.Set() {
		m.field(label, s.String())
	}
}

func (m *Modal) text(label, value string) {
	if value != "" {
		m.field(label, value)
	}
}

func (m *Modal) section(title string, lines ...string) {
	var kept []string
	for _, l := range lines {
		if l != "" {
			kept = append(kept, l)
		}
	}
	if len(kept) > 0 {
		m.Sections = append(m.Sections, Section{Title: title, Lines: kept})
	}
}

func weaponModal(m *Modal, w *data.Weapon) {
	m.Title = titleOr(w.Title, w.Name)

	typ := w.Type
	if typ == "" {
		typ = "-"
	}
	m.field("Type", typ)
	m.stat("Damage", w.Damage)
	m.stat("Shots", w.Shots)
	m.stat("Power", w.Power)
	m.stat("Cooldown", w.Cooldown)
	m.stat("Cost", w.Cost)
	m.stat("Rarity", w.Rarity)
	m.stat("Fire Chance", w.FireChance)
	m.stat("Breach Chance", w.BreachChance)

	m.truthy("Missiles", w.Missiles)
	m.truthy("Stun Chance", w.StunChance)
	m.truthy("Crew Damage", w.PersDamage)
	m.truthy("Speed", w.Speed)
	m.truthy("Length", w.Length)
	m.truthy("Hull Bust", w.HullBust)
	m.truthy("Ion Damage", w.Ion)
	m.truthy("System Damage", w.SysDamage)
	m.truthy("Lockdown", w.Lockdown)
	m.truthy("Radius", w.Radius)
	m.truthy("Stun Duration", w.Stun)
	m.truthy("Spin", w.Spin)
	m.truthy("Charge Levels", w.ChargeLevels)
	if w.DroneTargetable.Set() {
		m.field("Drone Targetable", data.YesNo(w.DroneTargetable.Truthy()))
	}

	m.section("Description", w.Desc)
	m.section("Tooltip", w.Tooltip)
	if w.Boost != nil {
		m.section("Boost", fmt.Sprintf("Type: %s, Amount: %s, Count: %s", w.Boost.Type, w.Boost.Amount, w.Boost.Count))
	}
	if len(w.Projectiles) > 0 {
		lines := make([]string, 0, len(w.Projectiles))
		for _, proj := range w.Projectiles {
			lines = append(lines, fmt.Sprintf("Count: %s, Type: %s, Fake: %s", proj.Count, proj.Type, data.YesNo(proj.Fake.Truthy())))
		}
		m.section("Projectiles", lines...)
	}

	if plan, ok := anim.WeaponPlan(w.AnimationData); ok {
		m.Animation = &plan
	}
}

func crewModal(m *Modal, c *data.Crew, r *resolve.Resolver) {
	m.Title = titleOr(c.Title, c.Name)
	m.stat("Cost", c.Cost)
	m.stat("Rarity", c.Rarity)
	m.truthy("Blueprint Cost", c.BP)

	m.section("Short Name", c.Short)
	m.section("Description", c.Desc)
	m.section("Powers", c.PowerList...)

	if plan, ok := anim.WalkPlan(anim.KindCrew, r.CrewAnimation(c.Name)); ok {
		m.Animation = &plan
	}
}

func augmentModal(m *Modal, a *data.Augment) {
	m.Title = titleOr(a.Title, a.Name)
	m.defined("Cost", a.Cost)
	m.defined("Rarity", a.Rarity)
	if a.Stackable.Set() {
		m.field("Stackable", data.YesNo(a.Stackable.Truthy()))
	}
	m.defined("Blueprint Cost", a.BP)
	if v, ok := a.Value.Get(); ok {
		m.field("Effect Value", EffectPercent(v))
	}
	m.section("Description", a.Desc)
}

// EffectPercent renders an augment's fractional value as a whole percentage.
func EffectPercent(v float64) string {
	return fmt.Sprintf("%.0f%%", math.Round(v*100))
}

func droneModal(m *Modal, d *data.Drone, r *resolve.Resolver) {
	m.Title = titleOr(d.Title, d.Name)
	m.text("Type", d.Type)
	m.defined("Power", d.Power)
	m.defined("Cost", d.Cost)
	m.defined("Rarity", d.Rarity)
	m.defined("Cooldown", d.Cooldown)
	m.defined("Speed", d.Speed)
	m.defined("Dodge", d.Dodge)
	m.defined("Blueprint Cost", d.BP)
	m.defined("Level", d.Level)
	m.text("Target", d.Target)
	if d.Locked.Set() {
		m.field("Locked", data.YesNo(d.Locked.Truthy()))
	}
	m.text("Weapon", d.WeaponBlueprint)
	m.text("Image", d.DroneImage)
	m.text("Icon", d.IconImage)

	m.section("Short Name", d.Short)
	m.section("Description", d.Desc)
	m.section("Tip", d.Tip)

	m.Images = DroneImages(d)
	if plan, ok := anim.WalkPlan(anim.KindDrone, r.DroneCrewAnimation(d.Name)); ok {
		m.Animation = &plan
	}
}

func shipModal(m *Modal, s *data.ShipBlueprint) {
	m.Title = titleOr(s.Class, s.Name)
	m.field("Name", s.Name)
	m.text("Layout", s.Layout)
	m.truthy("Max Sector", s.MaxSector)
	m.truthy("Hull", s.Health)
	m.truthy("Max Power", s.MaxPower)
	m.truthy("Weapon Slots", s.WeaponSlots)
	m.truthy("Drone Slots", s.DroneSlots)
	m.text("Boarding AI", s.BoardingAI)

	if cc := s.CrewCount; cc != nil {
		m.section("Crew", fmt.Sprintf("%s %s (Max: %s)", statOr(cc.Amount, ""), cc.Class, statOr(cc.Max, "")))
	}
	if len(s.SystemList) > 0 {
		lines := make([]string, 0, len(s.SystemList))
		for _, sys := range s.SystemList {
			lines = append(lines, fmt.Sprintf("%s: Power: %s/%s (Room: %s)", sys.Name, statOr(sys.Power, ""), statOr(sys.Max, ""), statOr(sys.Room, "")))
		}
		m.section("Systems", lines...)
	}
	if wl := s.WeaponList; wl != nil {
		lines := []string{fmt.Sprintf("Missiles: %s, Count: %s", statOr(wl.Missiles, "0"), statOr(wl.Count, "0"))}
		if wl.Load != "" {
			lines = append(lines, "Loads from: "+wl.Load)
		}
		m.section("Weapon Loadout", lines...)
	}
	if dl := s.DroneList; dl != nil {
		m.section("Drone Loadout", fmt.Sprintf("Drones: %s, Count: %s", statOr(dl.Drones, "0"), statOr(dl.Count, "0")))
	}
	m.section("Augments", s.Augments...)
}

func statOr(s data.Stat, def string) string {
	if !s.Set() {
		return def
	}
	return s.String()
}

// DroneImagePath is a drone image layer; suffix is on, off, base or gun.
func DroneImagePath(image, suffix string) string {
	return "img/ship/drones/" + image + "_" + suffix + ".png"
}

// DroneImages lists the static layers of a drone: combat drones show
// their "on" image, defense drones a base with the gun on top.
func DroneImages(d *data.Drone) []string {
	if d.DroneImage == "" {
		return nil
	}
	switch d.Type {
	case data.DroneTypeCombat:
		return []string{DroneImagePath(d.DroneImage, "on")}
	case data.DroneTypeDefense:
		return []string{DroneImagePath(d.DroneImage, "base"), DroneImagePath(d.DroneImage, "gun")}
	}
	return nil
}
