package cutscene

import (
	"context"
	"fmt"

	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/gameerr"
	"github.com/samdwyer/overworld/internal/grid"
	"github.com/samdwyer/overworld/internal/script"
)

type stepResult int

const (
	stepPending stepResult = iota
	stepDone
	stepBlocked
	stepTerminate
)

// step is an event in flight. tick is called once per frame until it stops
// returning stepPending.
type step interface {
	tick(ctx context.Context) (stepResult, error)
}

// handler resolves an event's references and returns its step. Types absent
// from the table are skipped by the interpreter.
type handler func(in *Interpreter, ev script.Event) (step, error)

var handlers = map[script.EventType]handler{
	script.EventTextMessage: newTextStep,
	script.EventWalk:        newWalkStep,
	script.EventStand:       newStandStep,
	script.EventChangeMap:   newChangeMapStep,
}

// -----------------------------------------------------------------------------
// textMessage

type textStep struct {
	dialogue Dialogue
	msg      Message
	opened   bool
}

func newTextStep(in *Interpreter, ev script.Event) (step, error) {
	if in.env.Dialogue == nil {
		return nil, gameerr.Config("textMessage", "", fmt.Errorf("%w: no dialogue display", gameerr.ErrInvalidData))
	}
	if ev.FaceHero != "" {
		speaker, err := in.env.Stage.Entity(ev.FaceHero)
		if err != nil {
			return nil, err
		}
		hero, err := in.env.Stage.Hero()
		if err != nil {
			return nil, err
		}
		speaker.Face(hero.Facing.Opposite())
	}
	return &textStep{
		dialogue: in.env.Dialogue,
		msg:      Message{Text: ev.Text, Speaker: ev.FaceHero},
	}, nil
}

func (s *textStep) tick(context.Context) (stepResult, error) {
	if !s.opened {
		s.dialogue.Open(s.msg)
		s.opened = true
		return stepPending, nil
	}
	if s.dialogue.Dismissed() {
		return stepDone, nil
	}
	return stepPending, nil
}

// -----------------------------------------------------------------------------
// walk

type walkStep struct {
	who     *entity.Entity
	dir     grid.Direction
	walls   entity.Walls
	started bool
}

func newWalkStep(in *Interpreter, ev script.Event) (step, error) {
	who, err := in.env.Stage.Entity(ev.Subject())
	if err != nil {
		return nil, err
	}
	if !ev.Direction.Valid() {
		return nil, gameerr.Config("walk", ev.Subject(), fmt.Errorf("%w: direction %q", gameerr.ErrInvalidData, ev.Direction))
	}
	return &walkStep{who: who, dir: ev.Direction, walls: in.env.Stage}, nil
}

func (s *walkStep) tick(context.Context) (stepResult, error) {
	if !s.started {
		// Let a step already in flight (an interrupted idle walk) land first.
		if s.who.IsWalking() {
			return stepPending, nil
		}
		s.started = true
		if !s.who.StartWalk(s.dir, s.walls) {
			return stepBlocked, nil
		}
		return stepPending, nil
	}
	if s.who.IsWalking() {
		return stepPending, nil
	}
	return stepDone, nil
}

// -----------------------------------------------------------------------------
// stand

type standStep struct {
	who       *entity.Entity
	dir       grid.Direction
	remaining int
	started   bool
}

func newStandStep(in *Interpreter, ev script.Event) (step, error) {
	who, err := in.env.Stage.Entity(ev.Subject())
	if err != nil {
		return nil, err
	}
	if !ev.Direction.Valid() {
		return nil, gameerr.Config("stand", ev.Subject(), fmt.Errorf("%w: direction %q", gameerr.ErrInvalidData, ev.Direction))
	}
	return &standStep{who: who, dir: ev.Direction, remaining: max(ev.Ticks, 1)}, nil
}

func (s *standStep) tick(context.Context) (stepResult, error) {
	if !s.started {
		s.who.Face(s.dir)
		s.started = true
	}
	s.remaining--
	if s.remaining > 0 {
		return stepPending, nil
	}
	return stepDone, nil
}

// -----------------------------------------------------------------------------
// changeMap

type changeMapStep struct {
	maps MapChanger
	name string
}

func newChangeMapStep(in *Interpreter, ev script.Event) (step, error) {
	if ev.Map == "" {
		return nil, gameerr.Config("changeMap", "", fmt.Errorf("%w: missing map name", gameerr.ErrInvalidData))
	}
	if in.env.Maps == nil {
		return nil, gameerr.Config("changeMap", ev.Map, fmt.Errorf("%w: no map registry", gameerr.ErrUnknownMap))
	}
	return &changeMapStep{maps: in.env.Maps, name: ev.Map}, nil
}

func (s *changeMapStep) tick(ctx context.Context) (stepResult, error) {
	if err := s.maps.ChangeMap(ctx, s.name); err != nil {
		if !gameerr.IsConfig(err) && !gameerr.IsInvariant(err) {
			err = gameerr.Config("changeMap", s.name, err)
		}
		return stepPending, err
	}
	return stepTerminate, nil
}
