package gamedata

import (
	"fmt"

	"github.com/samdwyer/overworld/internal/gameerr"
	"github.com/samdwyer/overworld/internal/grid"
	"github.com/samdwyer/overworld/internal/script"
)

// MapDef is one map record from the registry.
type MapDef struct {
	Name     string       `json:"name" yaml:"name"`
	LowerSrc string       `json:"lowerSrc" yaml:"lowerSrc"`
	UpperSrc string       `json:"upperSrc" yaml:"upperSrc"`
	Entities []EntityDef  `json:"entities" yaml:"entities"`
	Walls    []grid.Coord `json:"walls" yaml:"walls"`
	Triggers []TriggerDef `json:"triggers" yaml:"triggers"`
}

// EntityDef places a person on a map.
type EntityDef struct {
	ID               string            `json:"id" yaml:"id"`
	Position         grid.Coord        `json:"position" yaml:"position"`
	Direction        grid.Direction    `json:"direction,omitempty" yaml:"direction,omitempty"`
	PlayerControlled bool              `json:"isPlayerControlled,omitempty" yaml:"isPlayerControlled,omitempty"`
	Src              string            `json:"src,omitempty" yaml:"src,omitempty"`
	Color            string            `json:"color,omitempty" yaml:"color,omitempty"` // hex, used by terminal rendering
	BehaviorLoop     []script.Behavior `json:"behaviorLoop,omitempty" yaml:"behaviorLoop,omitempty"`
	Talking          []script.Script   `json:"talking,omitempty" yaml:"talking,omitempty"`
}

// TriggerDef maps a tile to the scripts stepping on it can start. Only the
// first script is ever used.
type TriggerDef struct {
	At      grid.Coord      `json:"at" yaml:"at"`
	Scripts []script.Script `json:"scripts" yaml:"scripts"`
}

// MapsFile represents the structure of maps.json.
type MapsFile struct {
	Maps []MapDef `json:"maps" yaml:"maps"`
}

// Validate checks the structural invariants the runtime relies on: unique
// entity ids, exactly one player-controlled hero, and well-formed idle steps.
func (m *MapDef) Validate() error {
	if m.Name == "" {
		return gameerr.Config("validate", "", fmt.Errorf("%w: map without a name", gameerr.ErrInvalidData))
	}

	seen := make(map[string]bool, len(m.Entities))
	heroes := 0
	for _, e := range m.Entities {
		if e.ID == "" {
			return m.invalid("entity without an id")
		}
		if seen[e.ID] {
			return m.invalid("duplicate entity id %q", e.ID)
		}
		seen[e.ID] = true

		if e.PlayerControlled {
			if e.ID != script.HeroID {
				return m.invalid("player-controlled entity %q must have id %q", e.ID, script.HeroID)
			}
			heroes++
		}
		for i, step := range e.BehaviorLoop {
			switch step.Type {
			case script.BehaviorStand, script.BehaviorWalk:
			default:
				return m.invalid("entity %q behavior %d: unknown type %q", e.ID, i, step.Type)
			}
			if !step.Direction.Valid() {
				return m.invalid("entity %q behavior %d: missing direction", e.ID, i)
			}
		}
	}
	if !seen[script.HeroID] || heroes != 1 {
		return gameerr.Config("validate", m.Name, fmt.Errorf("%w: %w", gameerr.ErrInvalidData, gameerr.ErrMissingHero))
	}

	for _, t := range m.Triggers {
		if len(t.Scripts) == 0 {
			return m.invalid("trigger at %s has no scripts", t.At)
		}
	}
	return nil
}

func (m *MapDef) invalid(format string, args ...any) error {
	return gameerr.Config("validate", m.Name, fmt.Errorf("%w: %s", gameerr.ErrInvalidData, fmt.Sprintf(format, args...)))
}

// LoadMaps loads map definitions from the embedded maps.json file.
func LoadMaps() ([]MapDef, error) {
	file, err := Load[MapsFile]("maps.json")
	if err != nil {
		return nil, err
	}
	return file.Maps, nil
}
