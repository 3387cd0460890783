// Package detail is the view-model of the sector detail panel: tabs,
// the rarity filter, item modals and the quest deep link.
package detail

import (
	"strconv"
	"time"

	"ftlview/internal/data"
	"ftlview/internal/resolve"
)

// Tab of the detail panel
type Tab int

const (
	TabWeapons Tab = iota
	TabCrew
	TabAugments
	TabDrones
	TabShips
	TabQuests
	TabEvents
)

// Tabs in display order.
var Tabs = []Tab{TabWeapons, TabCrew, TabAugments, TabDrones, TabShips, TabQuests, TabEvents}

func (t Tab) Label() string {
	switch t {
	case TabWeapons:
		return "Weapons"
	case TabCrew:
		return "Crew"
	case TabAugments:
		return "Augments"
	case TabDrones:
		return "Drones"
	case TabShips:
		return "Ship Unlocks"
	case TabQuests:
		return "Quests"
	case TabEvents:
		return "Event Tree"
	}
	return ""
}

// Empty is the message shown when the tab has no rows.
func (t Tab) Empty() string {
	switch t {
	case TabWeapons:
		return "No weapons available in this sector"
	case TabCrew:
		return "No crew available in this sector"
	case TabAugments:
		return "No augments available in this sector"
	case TabDrones:
		return "No drones available in this sector"
	case TabShips:
		return "No ship unlocks available in this sector"
	case TabQuests:
		return "No quests available in this sector"
	case TabEvents:
		return "No events available in this sector"
	}
	return ""
}

// Headers are the table columns of the tab. The event tree has none.
func (t Tab) Headers() []string {
	switch t {
	case TabWeapons:
		return []string{"Weapon", "Rarity"}
	case TabCrew:
		return []string{"Crew", "Rarity"}
	case TabAugments:
		return []string{"Augment", "Rarity"}
	case TabDrones:
		return []string{"Drone", "Rarity"}
	case TabShips:
		return []string{"Name", "Class", "Ship Name", "Title", "Silent"}
	case TabQuests:
		return []string{"Event Name", "Name"}
	}
	return nil
}

// Filtered reports whether the rarity filter applies to the tab.
func (t Tab) Filtered() bool {
	return t <= TabDrones
}

func (t Tab) category() resolve.Category {
	switch t {
	case TabCrew:
		return resolve.Crew
	case TabAugments:
		return resolve.Augment
	case TabDrones:
		return resolve.Drone
	}
	return resolve.Weapon
}

// Options is the read-only configuration every view receives.
type Options struct {
	// HideCommon keeps only rarity 0 (non-purchasable) items.
	HideCommon bool
}

// FilterRarity applies the hide-common filter. The input is never
// modified and filtering twice gives the same result.
func FilterRarity(refs []data.ItemRef, hideCommon bool) []data.ItemRef {
	if !hideCommon {
		return refs
	}
	out := make([]data.ItemRef, 0, len(refs))
	for _, r := range refs {
		if r.NonPurchasable() {
			out = append(out, r)
		}
	}
	return out
}

// Row is one table row. Item rows open a modal; quest rows link into
// the event tree.
type Row struct {
	Cells []string

	Category resolve.Category
	Key      string
	IsItem   bool

	QuestEvent string
}

// AfterFunc schedules f after d. It matches time.AfterFunc so tests can
// substitute a manual clock.
type AfterFunc func(d time.Duration, f func()) Timer

// Timer is the part of *time.Timer the panel uses.
type Timer interface {
	Stop() bool
}

// StdAfterFunc adapts time.AfterFunc.
func StdAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// HighlightDuration is how long a quest stays highlighted after a jump.
const HighlightDuration = 2 * time.Second

// Panel is the detail view-model of one sector.
type Panel struct {
	sector   *data.Sector
	resolver *resolve.Resolver
	opts     Options
	active   Tab

	offers Offers
	after  AfterFunc

	highlight string
	timer     Timer
	// OnHighlightEnd runs when a quest highlight expires.
	OnHighlightEnd func(anchor string)
}

// New creates the panel for sector with the weapons tab active.
func New(sector *data.Sector, r *resolve.Resolver, opts Options) *Panel {
	return &Panel{
		sector:   sector,
		resolver: r,
		opts:     opts,
		active:   TabWeapons,
		after:    StdAfterFunc,
	}
}

// SetAfterFunc replaces the timer used for quest highlights.
func (p *Panel) SetAfterFunc(f AfterFunc) {
	p.after = f
}

// SetOffers attaches the "found in" lookup used by item modals.
func (p *Panel) SetOffers(o Offers) {
	p.offers = o
}

func (p *Panel) Sector() *data.Sector { return p.sector }

func (p *Panel) Options() Options { return p.opts }

// SetOptions swaps the configuration, e.g. when hide-common is toggled.
func (p *Panel) SetOptions(opts Options) {
	p.opts = opts
}

func (p *Panel) Active() Tab { return p.active }

func (p *Panel) SetActive(t Tab) {
	if t >= TabWeapons && t <= TabEvents {
		p.active = t
	}
}

func (p *Panel) refs(t Tab) []data.ItemRef {
	switch t {
	case TabWeapons:
		return p.sector.Weapons
	case TabCrew:
		return p.sector.Crew
	case TabAugments:
		return p.sector.Augments
	case TabDrones:
		return p.sector.Drones
	}
	return nil
}

// Count is the number shown in the tab label.
func (p *Panel) Count(t Tab) int {
	switch t {
	case TabShips:
		return len(p.sector.ShipUnlocks)
	case TabQuests:
		return len(p.sector.Quests)
	case TabEvents:
		return len(p.sector.Events)
	}
	return len(FilterRarity(p.refs(t), p.opts.HideCommon))
}

// Counts returns Count for every tab.
func (p *Panel) Counts() map[Tab]int {
	out := make(map[Tab]int, len(Tabs))
	for _, t := range Tabs {
		out[t] = p.Count(t)
	}
	return out
}

// TabTitle is "Label (count)".
func (p *Panel) TabTitle(t Tab) string {
	return t.Label() + " (" + strconv.Itoa(p.Count(t)) + ")"
}

// Rows builds the table rows of tab t. The event tree tab has none.
func (p *Panel) Rows(t Tab) []Row {
	switch t {
	case TabShips:
		rows := make([]Row, 0, len(p.sector.ShipUnlocks))
		for _, s := range p.sector.ShipUnlocks {
			rows = append(rows, Row{Cells: []string{s.Name, s.Class, s.ShipName, s.Title, data.YesNo(s.Silent.Truthy())}})
		}
		return rows
	case TabQuests:
		rows := make([]Row, 0, len(p.sector.Quests))
		for _, q := range p.sector.Quests {
			rows = append(rows, Row{Cells: []string{q.EventName, q.Name}, QuestEvent: q.EventName})
		}
		return rows
	case TabEvents:
		return nil
	}

	cat := t.category()
	refs := FilterRarity(p.refs(t), p.opts.HideCommon)
	rows := make([]Row, 0, len(refs))
	for _, ref := range refs {
		title := p.resolver.Title(cat, ref.Name)
		if cat == resolve.Crew {
			title = ref.DisplayName(title)
		}
		rows = append(rows, Row{
			Cells:    []string{title, ref.Rarity.String()},
			Category: cat,
			Key:      ref.Name,
			IsItem:   true,
		})
	}
	return rows
}

// Highlighted is the quest anchor currently highlighted, if any.
func (p *Panel) Highlighted() string {
	return p.highlight
}

// ScrollToQuest switches to the event tree and, if locate finds the
// quest's anchor, highlights it for HighlightDuration. A missing anchor
// is a no-op beyond the tab switch.
func (p *Panel) ScrollToQuest(eventName string, locate func(anchor string) bool) bool {
	p.active = TabEvents
	anchor := data.QuestAnchor(eventName)
	if locate == nil || !locate(anchor) {
		return false
	}

	if p.timer != nil {
		p.timer.Stop()
	}
	p.highlight = anchor
	p.timer = p.after(HighlightDuration, func() {
		if p.highlight != anchor {
			return
		}
		p.highlight = ""
		p.timer = nil
		if p.OnHighlightEnd != nil {
			p.OnHighlightEnd(anchor)
		}
	})
	return true
}

// Close stops a pending highlight timer.
func (p *Panel) Close() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.highlight = ""
}
