package entity

import (
	"github.com/samdwyer/overworld/internal/grid"
	"github.com/samdwyer/overworld/internal/script"
)

type idlePhase int

const (
	idleReady    idlePhase = iota // next step starts on the following tick
	idleStanding                  // holding a facing for a duration
	idleWalking                   // a step is in flight
	idleBlocked                   // walk target was taken, waiting to retry
)

type idleState struct {
	index int
	phase idlePhase
	wait  int
}

func (s *idleState) advance(steps int) {
	s.index++
	if s.index >= steps {
		s.index = 0
	}
	s.phase = idleReady
	s.wait = 0
}

// Update runs one tick for the entity: it advances any step in progress and,
// unless paused, drives the idle behavior loop. It reports whether the entity
// arrived on a new tile this tick.
//
// paused is true for the whole duration of a cutscene. Steps already in
// flight still finish so positions stay tile aligned.
func (e *Entity) Update(w Walls, paused bool) bool {
	arrived := e.AdvanceWalk()
	if arrived && e.idle.phase == idleWalking {
		e.idle.advance(len(e.Idle))
	}

	if paused || e.PlayerControlled || len(e.Idle) == 0 || e.IsWalking() {
		return arrived
	}

	switch e.idle.phase {
	case idleReady:
		e.beginIdleStep(w)
	case idleStanding:
		e.idle.wait--
		if e.idle.wait <= 0 {
			e.idle.advance(len(e.Idle))
		}
	case idleBlocked:
		e.idle.wait--
		if e.idle.wait <= 0 {
			e.idle.phase = idleReady
		}
	}
	return arrived
}

func (e *Entity) beginIdleStep(w Walls) {
	step := e.Idle[e.idle.index]
	switch step.Type {
	case script.BehaviorStand:
		e.Face(step.Direction)
		e.idle.phase = idleStanding
		e.idle.wait = max(step.Ticks, 1)
	case script.BehaviorWalk:
		if e.StartWalk(step.Direction, w) {
			e.idle.phase = idleWalking
			return
		}
		// Hold position and try the same step again shortly.
		e.idle.phase = idleBlocked
		e.idle.wait = grid.RetryTicks
	default:
		e.idle.advance(len(e.Idle))
	}
}

// ResetIdle restarts the idle loop from its first step. Called for every
// entity when a cutscene ends.
func (e *Entity) ResetIdle() {
	e.idle = idleState{}
}

// IdleIndex returns the index of the idle step currently running or about to run.
func (e *Entity) IdleIndex() int {
	return e.idle.index
}
