package world

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/overworld/internal/grid"
	"github.com/samdwyer/overworld/internal/script"
)

func walkHero(t *testing.T, m *Map, dir grid.Direction) {
	t.Helper()
	moved, err := m.MoveHero(dir)
	require.NoError(t, err)
	require.True(t, moved)
	for i := 0; i < grid.WalkTicks; i++ {
		require.NoError(t, m.Update(context.Background()))
	}
}

func TestEvaluatorSpawnTileDoesNotFire(t *testing.T) {
	h := newHall(t)
	require.NoError(t, h.m.PlaceEntity("hero", grid.At(7, 10)))

	var te TriggerEvaluator
	te.Baseline(h.m)

	started, err := te.Evaluate(context.Background(), h.m, false)
	require.NoError(t, err)
	assert.False(t, started)
	assert.False(t, h.m.CutsceneActive())
}

func TestEvaluatorFirstSightOfMapIsBaseline(t *testing.T) {
	h := newHall(t)
	require.NoError(t, h.m.PlaceEntity("hero", grid.At(7, 10)))

	var te TriggerEvaluator
	started, err := te.Evaluate(context.Background(), h.m, false)
	require.NoError(t, err)
	assert.False(t, started)
}

func TestEvaluatorFootstepFiresOnArrival(t *testing.T) {
	h := newHall(t)
	ctx := context.Background()

	var te TriggerEvaluator
	te.Baseline(h.m)

	walkHero(t, h.m, grid.Down)

	started, err := te.Evaluate(ctx, h.m, false)
	require.NoError(t, err)
	assert.True(t, started)
	assert.True(t, h.m.CutsceneActive())

	// Standing still on the trigger does not fire it again.
	require.NoError(t, h.m.Update(ctx))
	require.False(t, h.m.CutsceneActive())
	started, err = te.Evaluate(ctx, h.m, false)
	require.NoError(t, err)
	assert.False(t, started)
}

func TestEvaluatorActionRequiresStandingHero(t *testing.T) {
	h := newHall(t)
	ctx := context.Background()

	var te TriggerEvaluator
	te.Baseline(h.m)

	started, err := te.Evaluate(ctx, h.m, false)
	require.NoError(t, err)
	assert.False(t, started, "no action, no trigger")

	started, err = te.Evaluate(ctx, h.m, true)
	require.NoError(t, err)
	assert.True(t, started)
}

func TestEvaluatorActionIgnoredWhileWalking(t *testing.T) {
	h := newHall(t)
	ctx := context.Background()

	var te TriggerEvaluator
	te.Baseline(h.m)

	hero, _ := h.m.Hero()
	moved, err := h.m.MoveHero(grid.Down)
	require.NoError(t, err)
	require.True(t, moved)
	hero.Face(grid.Right)

	started, err := te.Evaluate(ctx, h.m, true)
	require.NoError(t, err)
	assert.False(t, started)
}

func TestEvaluatorNothingStartsDuringCutscene(t *testing.T) {
	h := newHall(t)
	ctx := context.Background()

	var te TriggerEvaluator
	te.Baseline(h.m)
	require.NoError(t, h.m.PlaceEntity("hero", grid.At(7, 10)))
	require.True(t, h.m.StartCutscene(ctx, h.m.Entities()[1].Talking[1]))
	first := h.m.Cutscene()

	started, err := te.Evaluate(ctx, h.m, true)
	require.NoError(t, err)
	assert.False(t, started)
	assert.Same(t, first, h.m.Cutscene())
}

func TestEvaluatorIgnoresTileReachedDuringCutscene(t *testing.T) {
	h := newHall(t)
	ctx := context.Background()

	var te TriggerEvaluator
	te.Baseline(h.m)

	require.True(t, h.m.StartCutscene(ctx, script.New(script.Walk("hero", grid.Down))))
	for i := 0; h.m.CutsceneActive(); i++ {
		require.Less(t, i, 100)
		require.NoError(t, h.m.Update(ctx))
	}
	hero, _ := h.m.Hero()
	require.Equal(t, grid.At(7, 10), hero.Position, "scripted walk ends on the trigger tile")

	for i := 0; i < 5; i++ {
		started, err := te.Evaluate(ctx, h.m, false)
		require.NoError(t, err)
		assert.False(t, started)
		require.NoError(t, h.m.Update(ctx))
	}
	assert.Empty(t, h.maps.names)

	// Stepping off and back on fires as usual.
	walkHero(t, h.m, grid.Right)
	started, err := te.Evaluate(ctx, h.m, false)
	require.NoError(t, err)
	assert.False(t, started)
	walkHero(t, h.m, grid.Left)
	started, err = te.Evaluate(ctx, h.m, false)
	require.NoError(t, err)
	assert.True(t, started)
}
