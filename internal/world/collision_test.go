package world

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samdwyer/overworld/internal/gamedata"
	"github.com/samdwyer/overworld/internal/grid"
	"github.com/samdwyer/overworld/internal/script"
)

func TestCollisionAddRemoveRoundTrip(t *testing.T) {
	ci := NewCollisionIndex()
	coords := []grid.Coord{grid.At(0, 0), grid.At(7, 6), grid.At(-3, 12)}

	for _, c := range coords {
		assert.False(t, ci.IsBlocked(c))
		ci.Add(c)
		ci.Add(c) // idempotent
		assert.True(t, ci.IsBlocked(c))
	}
	assert.Equal(t, len(coords), ci.Len())

	for _, c := range coords {
		ci.Remove(c)
		ci.Remove(c) // idempotent
		assert.False(t, ci.IsBlocked(c))
	}
	assert.Zero(t, ci.Len())
}

func TestCollisionMove(t *testing.T) {
	for _, dir := range grid.Directions {
		from := grid.At(5, 5)
		ci := NewCollisionIndex(from)

		ci.Move(from, dir)
		assert.False(t, ci.IsBlocked(from), "origin cleared moving %s", dir)
		assert.True(t, ci.IsBlocked(from.Next(dir)), "destination blocked moving %s", dir)
		assert.Equal(t, 1, ci.Len())
	}
}

func TestCollisionMoveFromUnblockedTile(t *testing.T) {
	ci := NewCollisionIndex()
	ci.Move(grid.At(1, 1), grid.Right)
	assert.True(t, ci.IsBlocked(grid.At(2, 1)))
	assert.Equal(t, 1, ci.Len())
}

func TestIsSpaceTaken(t *testing.T) {
	ci := NewCollisionIndex(grid.At(8, 9))

	assert.True(t, ci.IsSpaceTaken(grid.At(7, 9), grid.Right))
	assert.False(t, ci.IsSpaceTaken(grid.At(7, 9), grid.Left))
	assert.False(t, ci.IsSpaceTaken(grid.At(8, 9), grid.Up), "a wall does not block leaving it")
}

func TestTriggerLookupExactMatch(t *testing.T) {
	toMuseum := script.New(script.ChangeMap("Museum"))
	other := script.New(script.ChangeMap("Lab"))
	ti := NewTriggerIndex([]gamedata.TriggerDef{
		{At: grid.At(5, 9), Scripts: []script.Script{toMuseum, other}},
	})

	s, ok := ti.Lookup(grid.At(5, 9))
	assert.True(t, ok)
	assert.Equal(t, toMuseum, s, "first script wins")

	for _, near := range []grid.Coord{grid.At(5, 10), grid.At(4, 9), grid.At(6, 8)} {
		_, ok := ti.Lookup(near)
		assert.False(t, ok, "no proximity match at %s", near)
	}
	assert.Equal(t, 1, ti.Len())
}
