package world

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/overworld/internal/grid"
)

// CollisionIndex is the mutable set of blocked tiles on a map. Membership is
// plain presence; there are no weights or costs.
type CollisionIndex struct {
	walls mapset.Set[grid.Coord]
}

// NewCollisionIndex creates an index blocking the given tiles.
func NewCollisionIndex(walls ...grid.Coord) *CollisionIndex {
	ci := &CollisionIndex{walls: mapset.New[grid.Coord]()}
	for _, c := range walls {
		ci.walls.Put(c)
	}
	return ci
}

// IsBlocked reports whether c is a wall.
func (ci *CollisionIndex) IsBlocked(c grid.Coord) bool {
	return ci.walls.Has(c)
}

// Add blocks c. Adding an existing wall is a no-op.
func (ci *CollisionIndex) Add(c grid.Coord) {
	ci.walls.Put(c)
}

// Remove unblocks c. Removing an absent wall is a no-op.
func (ci *CollisionIndex) Remove(c grid.Coord) {
	ci.walls.Remove(c)
}

// Move removes the wall at from and adds one a step away in dir. The two
// mutations are not atomic; from does not need to have been blocked.
func (ci *CollisionIndex) Move(from grid.Coord, dir grid.Direction) {
	ci.Remove(from)
	ci.Add(from.Next(dir))
}

// IsSpaceTaken reports whether the tile one step from pos in dir is blocked.
// It is the only collision query made before any movement.
func (ci *CollisionIndex) IsSpaceTaken(pos grid.Coord, dir grid.Direction) bool {
	return ci.IsBlocked(pos.Next(dir))
}

// Len returns the number of blocked tiles.
func (ci *CollisionIndex) Len() int {
	return ci.walls.Size()
}

// Each calls fn for every blocked tile, in no particular order.
func (ci *CollisionIndex) Each(fn func(c grid.Coord)) {
	ci.walls.Each(fn)
}
