package data

import (
	"bytes"
	"encoding/json"
)

// Grants are the item rewards attached to an event, ship or quest.
type Grants struct {
	Weapons  []ItemRef
	Crew     []ItemRef
	Augments []ItemRef
	Drones   []ItemRef
}

// Empty reports whether no grant list is populated.
func (g *Grants) Empty() bool {
	return len(g.Weapons) == 0 && len(g.Crew) == 0 && len(g.Augments) == 0 && len(g.Drones) == 0
}

func (g *Grants) decode(raw map[string]json.RawMessage) {
	g.Weapons = decodeList[ItemRef](raw, "weapons", "Weapons")
	g.Crew = decodeList[ItemRef](raw, "crew", "Crew")
	g.Augments = decodeList[ItemRef](raw, "augments", "Augments")
	g.Drones = decodeList[ItemRef](raw, "drones", "Drones")
}

// EventNode is a narrative event. The source document spells the same
// fields in two casings; both are folded into this one shape on decode.
type EventNode struct {
	ID     string
	Name   string
	Text   string
	Events []*EventNode
	Ships  []ShipPlacement
	Quests []Quest
	Grants
}

// UnmarshalJSON normalises the lowercase and capitalised spellings.
// Lowercase events come first, followed by the capitalised list.
func (e *EventNode) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		// not an object: leave the zero value
		return nil
	}
	e.ID = stringField(raw, "id")
	e.Name = stringField(raw, "Name", "name")
	e.Text = stringField(raw, "text", "Text")
	e.Events = append(decodeList[*EventNode](raw, "events"), decodeList[*EventNode](raw, "Events")...)
	e.Ships = decodeList[ShipPlacement](raw, "Ships", "ships")
	e.Quests = decodeList[Quest](raw, "quests", "Quests")
	e.Grants.decode(raw)
	return nil
}

// Label is the header shown for the node: its id, else its name.
func (e *EventNode) Label() string {
	if e.ID != "" {
		return e.ID
	}
	return e.Name
}

// HasChildren reports whether any child collection is populated.
func (e *EventNode) HasChildren() bool {
	return len(e.Events) > 0 || len(e.Ships) > 0 || len(e.Quests) > 0 || !e.Grants.Empty()
}

// ShipPlacement is a ship encountered during an event
type ShipPlacement struct {
	Name          string
	AutoBlueprint string
	Events        []*EventNode
	Grants
}

func (s *ShipPlacement) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		// not an object: leave the zero value
		return nil
	}
	s.Name = stringField(raw, "Name", "name")
	s.AutoBlueprint = stringField(raw, "AutoBlueprint", "autoBlueprint")
	s.Events = append(decodeList[*EventNode](raw, "events"), decodeList[*EventNode](raw, "Events")...)
	s.Grants.decode(raw)
	return nil
}

// BlueprintKey is the ship blueprint the placement refers to.
func (s *ShipPlacement) BlueprintKey() string {
	if s.AutoBlueprint != "" {
		return s.AutoBlueprint
	}
	return s.Name
}

// Quest is a quest reference, rendered as an event node
type Quest struct {
	EventName string
	Name      string
	Text      string
	Events    []*EventNode
	Ships     []ShipPlacement
	Grants
}

func (q *Quest) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		// not an object: leave the zero value
		return nil
	}
	q.EventName = stringField(raw, "EventName", "eventName")
	q.Name = stringField(raw, "Name", "name")
	q.Text = stringField(raw, "Text", "text")
	q.Events = append(decodeList[*EventNode](raw, "events"), decodeList[*EventNode](raw, "Events")...)
	q.Ships = decodeList[ShipPlacement](raw, "Ships", "ships")
	q.Grants.decode(raw)
	return nil
}

// Anchor is the stable quest identifier used to deep-link into the event tree.
func (q *Quest) Anchor() string {
	return QuestAnchor(q.EventName)
}

// QuestAnchor builds the anchor for a quest event name.
func QuestAnchor(eventName string) string {
	return "quest-" + eventName
}

// decodeList reads the first present key as a JSON array. Elements that
// are not objects are dropped so one bad node never hides its siblings.
func decodeList[T any](raw map[string]json.RawMessage, keys ...string) []T {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok {
			continue
		}
		var elems []json.RawMessage
		if err := json.Unmarshal(v, &elems); err != nil {
			continue
		}
		out := make([]T, 0, len(elems))
		for _, el := range elems {
			if el = bytes.TrimSpace(el); len(el) == 0 || el[0] != '{' {
				continue
			}
			var item T
			if err := json.Unmarshal(el, &item); err != nil {
				continue
			}
			out = append(out, item)
		}
		if len(out) == 0 {
			return nil
		}
		return out
	}
	return nil
}
