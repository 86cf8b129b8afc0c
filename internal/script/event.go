// Package script defines the data-driven vocabulary of cutscenes and idle
// behavior: events, scripts and behavior steps as they appear in map data.
package script

// =============================================================================
// EVENT VOCABULARY
// =============================================================================
//
// A Script is an ordered list of events executed strictly one after another.
// Events are tagged by their "type" field:
//
//   textMessage  {text, faceHero?}      wait for the dialogue to be dismissed
//   walk         {who?, direction}      step one tile (who defaults to "hero")
//   stand        {who?, direction, ticks} face a direction and wait
//   changeMap    {map}                  replace the current map, ends the script
//
// Any other type decodes successfully and is skipped by the interpreter, so
// newer map data keeps working with an older runtime.
//
// JSON:
//   { "type": "walk", "who": "npcB", "direction": "left" }
//   { "type": "stand", "who": "npcB", "direction": "up", "ticks": 30 }
//   { "type": "textMessage", "text": "You can't be in there!", "faceHero": "npcA" }
//   { "type": "changeMap", "map": "Street" }

import "github.com/samdwyer/overworld/internal/grid"

// EventType tags the kind of an Event.
type EventType string

const (
	EventTextMessage EventType = "textMessage"
	EventWalk        EventType = "walk"
	EventStand       EventType = "stand"
	EventChangeMap   EventType = "changeMap"
)

// HeroID is the id of the single player-controlled entity on every map.
const HeroID = "hero"

// Event is one step of a cutscene. Only the fields relevant to Type are set.
type Event struct {
	Type      EventType      `json:"type" yaml:"type"`
	Who       string         `json:"who,omitempty" yaml:"who,omitempty"`
	Direction grid.Direction `json:"direction,omitempty" yaml:"direction,omitempty"`
	Ticks     int            `json:"ticks,omitempty" yaml:"ticks,omitempty"`
	Text      string         `json:"text,omitempty" yaml:"text,omitempty"`
	FaceHero  string         `json:"faceHero,omitempty" yaml:"faceHero,omitempty"`
	Map       string         `json:"map,omitempty" yaml:"map,omitempty"`
}

// Subject returns the id of the entity the event addresses, defaulting to the hero.
func (e Event) Subject() string {
	if e.Who == "" {
		return HeroID
	}
	return e.Who
}

// Script is an ordered sequence of events.
type Script struct {
	Events []Event `json:"events" yaml:"events"`
}

// Len returns the number of events in the script.
func (s Script) Len() int {
	return len(s.Events)
}

// Convenience constructors, mostly for tests and inline scripts.

// TextMessage builds a textMessage event.
func TextMessage(text, faceHero string) Event {
	return Event{Type: EventTextMessage, Text: text, FaceHero: faceHero}
}

// Walk builds a walk event.
func Walk(who string, dir grid.Direction) Event {
	return Event{Type: EventWalk, Who: who, Direction: dir}
}

// Stand builds a stand event.
func Stand(who string, dir grid.Direction, ticks int) Event {
	return Event{Type: EventStand, Who: who, Direction: dir, Ticks: ticks}
}

// ChangeMap builds a changeMap event.
func ChangeMap(name string) Event {
	return Event{Type: EventChangeMap, Map: name}
}

// New builds a script from events.
func New(events ...Event) Script {
	return Script{Events: events}
}
