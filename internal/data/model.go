package data

import (
	"encoding/json"
	"strings"
)

// ColorType classifies a sector's territory
type ColorType string

const (
	ColorCivilian ColorType = "CIVILIAN"
	ColorNeutral  ColorType = "NEUTRAL"
	ColorHostile  ColorType = "HOSTILE"
	ColorNebula   ColorType = "NEBULA"
	ColorSecret   ColorType = "SECRET"
)

// Known reports whether c is one of the five named colour types.
func (c ColorType) Known() bool {
	switch c {
	case ColorCivilian, ColorNeutral, ColorHostile, ColorNebula, ColorSecret:
		return true
	}
	return false
}

// Dataset is the whole full-data.json document
type Dataset struct {
	Sectors    []Sector   `json:"sectors"`
	Blueprints Blueprints `json:"blueprints"`
}

// Sector is one region of the sector tree
type Sector struct {
	ID             string       `json:"ID"`
	Name           string       `json:"name"`
	Unique         string       `json:"unique"`
	ColorType      ColorType    `json:"colorType"`
	SectorTypes    []string     `json:"sectorTypes"`
	AlternateNames []string     `json:"alternateNames"`
	Weapons        []ItemRef    `json:"weapons"`
	Crew           []ItemRef    `json:"crew"`
	Augments       []ItemRef    `json:"augments"`
	Drones         []ItemRef    `json:"drones"`
	ShipUnlocks    []ShipUnlock `json:"shipUnlocks"`
	Quests         []Quest      `json:"quests"`
	Events         []*EventNode `json:"events"`
}

// IsUnique is a string comparison on purpose: the source field is a
// string and only the exact value "true" marks a unique sector.
func (s *Sector) IsUnique() bool {
	return s.Unique == "true"
}

// ItemRef is a rarity-weighted reference to a blueprint. Rarity 0 marks
// an item that cannot be bought.
type ItemRef struct {
	Name     string
	Rarity   Stat
	CrewName string
}

// UnmarshalJSON accepts Name/name and tolerates non-numeric rarities.
func (r *ItemRef) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		// not an object: leave the zero value
		return nil
	}
	r.Name = stringField(raw, "Name", "name")
	r.CrewName = stringField(raw, "crewName")
	if v, ok := raw["rarity"]; ok {
		_ = r.Rarity.UnmarshalJSON(v)
	}
	return nil
}

// NonPurchasable reports a rarity of exactly 0. Missing or unreadable
// rarities do not count.
func (r ItemRef) NonPurchasable() bool {
	v, ok := r.Rarity.Get()
	return ok && v == 0
}

// DisplayName renders a crew reference as "CrewName (title)" when the
// reference names a specific crew member.
func (r ItemRef) DisplayName(title string) string {
	if r.CrewName == "" {
		return title
	}
	return r.CrewName + " (" + title + ")"
}

// ShipUnlock is an entry of a sector's ship unlock table
type ShipUnlock struct {
	Name     string `json:"Name"`
	Class    string `json:"Class"`
	ShipName string `json:"ShipName"`
	Title    string `json:"Title"`
	Silent   Stat   `json:"Silent"`
}

// stringField returns the first key present as a JSON string.
func stringField(raw map[string]json.RawMessage, keys ...string) string {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err == nil && s != "" {
			return s
		}
	}
	return ""
}

// YesNo renders a flag the way the detail views show booleans.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// JoinList is the ", " join used for sector types and alternate names.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}
