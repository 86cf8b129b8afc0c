package world

import (
	"github.com/samdwyer/overworld/internal/gamedata"
	"github.com/samdwyer/overworld/internal/grid"
	"github.com/samdwyer/overworld/internal/script"
)

// TriggerIndex maps tiles to footstep cutscenes. It is built once when a map
// loads and never changes afterwards.
type TriggerIndex struct {
	spaces map[grid.Coord][]script.Script
}

// NewTriggerIndex indexes trigger definitions by tile. Later definitions for
// the same tile append to the earlier ones' scripts.
func NewTriggerIndex(defs []gamedata.TriggerDef) *TriggerIndex {
	ti := &TriggerIndex{spaces: make(map[grid.Coord][]script.Script, len(defs))}
	for _, def := range defs {
		ti.spaces[def.At] = append(ti.spaces[def.At], def.Scripts...)
	}
	return ti
}

// Lookup returns the script for an exact tile match. Only the first script
// registered for the tile is ever returned.
func (ti *TriggerIndex) Lookup(c grid.Coord) (script.Script, bool) {
	scripts := ti.spaces[c]
	if len(scripts) == 0 {
		return script.Script{}, false
	}
	return scripts[0], true
}

// Len returns the number of trigger tiles.
func (ti *TriggerIndex) Len() int {
	return len(ti.spaces)
}

// Each calls fn for every trigger tile, in no particular order.
func (ti *TriggerIndex) Each(fn func(c grid.Coord)) {
	for c := range ti.spaces {
		fn(c)
	}
}
