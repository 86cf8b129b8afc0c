package world

import (
	"context"

	"github.com/samdwyer/overworld/internal/cutscene"
	"github.com/samdwyer/overworld/internal/grid"
)

// TriggerEvaluator decides once per tick whether the hero's situation should
// start a cutscene.
//
// Footstep triggers fire when the hero has arrived on a new tile since the
// previous evaluation, so standing on a trigger (for example the spawn tile
// after a map change) does not fire it again. Action triggers fire on the
// action intent while the hero is standing still. Tiles the hero reaches
// while a cutscene is running never count as footsteps.
type TriggerEvaluator struct {
	current *Map
	run     *cutscene.Interpreter // most recent cutscene seen on current
	last    grid.Coord
}

// Evaluate checks m against the hero's position and facing and starts at
// most one cutscene. It returns whether one started.
func (te *TriggerEvaluator) Evaluate(ctx context.Context, m *Map, action bool) (bool, error) {
	hero, err := m.Hero()
	if err != nil {
		return false, err
	}
	if te.current != m || te.run != m.Cutscene() {
		// New map, or a cutscene ran since the last evaluation and may
		// have moved the hero.
		te.current = m
		te.run = m.Cutscene()
		te.last = hero.Position
	}

	moved := hero.Position != te.last
	te.last = hero.Position
	if m.CutsceneActive() {
		return false, nil
	}

	if moved {
		started, err := m.CheckForFootstepCutscene(ctx)
		if err != nil || started {
			return started, err
		}
	}
	if action && !hero.IsWalking() {
		return m.CheckForActionCutscene(ctx, hero.Facing)
	}
	return false, nil
}

// Baseline records the hero's current tile on m as already visited. Called
// when a map is loaded so its spawn tile never counts as a footstep.
func (te *TriggerEvaluator) Baseline(m *Map) {
	te.current = m
	te.run = m.Cutscene()
	if hero, err := m.Hero(); err == nil {
		te.last = hero.Position
	}
}
