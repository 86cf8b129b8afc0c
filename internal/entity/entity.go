// Package entity provides the positioned, directed actors that live on an
// overworld map: the hero and the NPCs.
package entity

import (
	"github.com/samdwyer/overworld/internal/grid"
	"github.com/samdwyer/overworld/internal/script"
)

// Walls is the collision view an entity needs to move.
type Walls interface {
	IsSpaceTaken(pos grid.Coord, dir grid.Direction) bool
	AddWall(c grid.Coord)
	RemoveWall(c grid.Coord)
	MoveWall(from grid.Coord, dir grid.Direction)
}

// Config describes an entity as placed by map data.
type Config struct {
	ID               string
	Position         grid.Coord
	Facing           grid.Direction // defaults to down
	PlayerControlled bool
	Sprite           string
	Color            string
	Idle             []script.Behavior
	Talking          []script.Script
}

// Entity is a person on the map. Its position always names a whole tile; a
// walk in progress commits the new position only once it completes.
type Entity struct {
	ID               string
	Position         grid.Coord
	Facing           grid.Direction
	PlayerControlled bool
	Sprite           string
	Color            string
	Idle             []script.Behavior
	Talking          []script.Script

	// Motion
	walkDir       grid.Direction
	walkRemaining int

	// Idle scheduling
	idle idleState
}

// New creates an entity from its configuration.
func New(cfg Config) *Entity {
	facing := cfg.Facing
	if !facing.Valid() {
		facing = grid.Down
	}
	return &Entity{
		ID:               cfg.ID,
		Position:         cfg.Position,
		Facing:           facing,
		PlayerControlled: cfg.PlayerControlled,
		Sprite:           cfg.Sprite,
		Color:            cfg.Color,
		Idle:             cfg.Idle,
		Talking:          cfg.Talking,
	}
}

// Mount claims the entity's tile in the wall set so others cannot walk into it.
func (e *Entity) Mount(w Walls) {
	w.AddWall(e.Position)
}

// IsHero reports whether this is the player-controlled hero.
func (e *Entity) IsHero() bool {
	return e.ID == script.HeroID
}

// HasDialogue reports whether talking to the entity starts a cutscene.
func (e *Entity) HasDialogue() bool {
	return len(e.Talking) > 0
}

// Face turns the entity without moving it.
func (e *Entity) Face(dir grid.Direction) {
	if dir.Valid() {
		e.Facing = dir
	}
}

// Ahead returns the tile directly in front of the entity.
func (e *Entity) Ahead() grid.Coord {
	return e.Position.Next(e.Facing)
}

// IsWalking reports whether a tile step is in progress.
func (e *Entity) IsWalking() bool {
	return e.walkRemaining > 0
}

// StartWalk turns the entity toward dir and, if the destination is free,
// reserves it and begins a step. It returns false when the tile is blocked or
// the entity is already mid-step; a blocked walk still turns the entity.
func (e *Entity) StartWalk(dir grid.Direction, w Walls) bool {
	if e.IsWalking() || !dir.Valid() {
		return false
	}
	e.Facing = dir
	if w.IsSpaceTaken(e.Position, dir) {
		return false
	}
	w.MoveWall(e.Position, dir)
	e.walkDir = dir
	e.walkRemaining = grid.WalkTicks
	return true
}

// AdvanceWalk moves an in-progress step forward by one tick and reports
// whether the entity arrived on its new tile during this tick.
func (e *Entity) AdvanceWalk() bool {
	if !e.IsWalking() {
		return false
	}
	e.walkRemaining--
	if e.walkRemaining > 0 {
		return false
	}
	e.Position = e.Position.Next(e.walkDir)
	return true
}

// WalkProgress returns how many ticks of the current step have elapsed,
// or 0 when standing.
func (e *Entity) WalkProgress() int {
	if !e.IsWalking() {
		return 0
	}
	return grid.WalkTicks - e.walkRemaining
}

// Frame returns the sprite animation frame: 0 while standing, alternating
// 1 and 2 through a step.
func (e *Entity) Frame() int {
	if !e.IsWalking() {
		return 0
	}
	if e.WalkProgress() < grid.WalkTicks/2 {
		return 1
	}
	return 2
}

// Teleport moves the entity and its wall to c, cancelling any step in
// progress. Used for map placement, not for scripted movement.
func (e *Entity) Teleport(c grid.Coord, w Walls) {
	if e.IsWalking() {
		// The step already moved the wall to the destination.
		w.RemoveWall(e.Position.Next(e.walkDir))
		e.walkRemaining = 0
	} else {
		w.RemoveWall(e.Position)
	}
	e.Position = c
	w.AddWall(c)
}
