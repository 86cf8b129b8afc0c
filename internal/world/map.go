// Package world holds the state of a loaded overworld map: its entities, the
// wall set, the footstep triggers and the cutscene that may be running on it.
package world

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/overworld/internal/cutscene"
	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/gamedata"
	"github.com/samdwyer/overworld/internal/gameerr"
	"github.com/samdwyer/overworld/internal/grid"
	"github.com/samdwyer/overworld/internal/script"
	"github.com/samdwyer/overworld/internal/telemetry"
)

// Options wires a map to the collaborators its cutscenes need.
type Options struct {
	Logger   *zap.Logger
	Dialogue cutscene.Dialogue
	Maps     cutscene.MapChanger
}

// Map is the aggregate state of one loaded map. It is built from a registry
// record and thrown away wholesale when a cutscene changes maps.
//
// At most one cutscene runs at a time: cutsceneActive is set for the whole
// span between StartCutscene and the run completing, and while it is set no
// entity starts a new idle step.
type Map struct {
	Name     string
	LowerSrc string
	UpperSrc string

	entities []*entity.Entity // definition order; iteration order for triggers
	byID     map[string]*entity.Entity
	walls    *CollisionIndex
	triggers *TriggerIndex

	cutsceneActive bool
	cutscene       *cutscene.Interpreter

	opts   Options
	logger *zap.Logger
}

// New builds a map from its record. Every entity is mounted, claiming its
// tile in the wall set.
func New(ctx context.Context, def *gamedata.MapDef, opts Options) (*Map, error) {
	_, span := telemetry.Tracer("map").Start(ctx, "map.load")
	defer span.End()

	if err := def.Validate(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Map{
		Name:     def.Name,
		LowerSrc: def.LowerSrc,
		UpperSrc: def.UpperSrc,
		entities: make([]*entity.Entity, 0, len(def.Entities)),
		byID:     make(map[string]*entity.Entity, len(def.Entities)),
		walls:    NewCollisionIndex(def.Walls...),
		triggers: NewTriggerIndex(def.Triggers),
		opts:     opts,
		logger:   logger.With(zap.String("map", def.Name)),
	}

	for _, ed := range def.Entities {
		e := entity.New(entity.Config{
			ID:               ed.ID,
			Position:         ed.Position,
			Facing:           ed.Direction,
			PlayerControlled: ed.PlayerControlled,
			Sprite:           ed.Src,
			Color:            ed.Color,
			Idle:             ed.BehaviorLoop,
			Talking:          ed.Talking,
		})
		e.Mount(m)
		m.entities = append(m.entities, e)
		m.byID[e.ID] = e
	}

	span.SetAttributes(
		attribute.String("map.name", m.Name),
		attribute.Int("map.entities", len(m.entities)),
		attribute.Int("map.walls", m.walls.Len()),
		attribute.Int("map.triggers", m.triggers.Len()),
	)
	m.logger.Debug("map loaded",
		zap.Int("entities", len(m.entities)),
		zap.Int("walls", m.walls.Len()),
		zap.Int("triggers", m.triggers.Len()),
	)
	return m, nil
}

// Entity resolves an entity id, returning a ConfigError when it is absent.
func (m *Map) Entity(id string) (*entity.Entity, error) {
	e, ok := m.byID[id]
	if !ok {
		return nil, gameerr.Config("entity", id, fmt.Errorf("%w on map %s", gameerr.ErrUnknownEntity, m.Name))
	}
	return e, nil
}

// Hero returns the player-controlled entity. A map without one violates a
// runtime invariant.
func (m *Map) Hero() (*entity.Entity, error) {
	e, ok := m.byID[script.HeroID]
	if !ok {
		return nil, gameerr.Invariant("hero", fmt.Errorf("%w: %s", gameerr.ErrMissingHero, m.Name))
	}
	return e, nil
}

// Entities returns every entity in definition order.
func (m *Map) Entities() []*entity.Entity {
	return m.entities
}

// Walls returns the map's collision index.
func (m *Map) Walls() *CollisionIndex {
	return m.walls
}

// Triggers returns the map's footstep triggers.
func (m *Map) Triggers() *TriggerIndex {
	return m.triggers
}

// IsSpaceTaken reports whether the tile one step from pos in dir is blocked.
func (m *Map) IsSpaceTaken(pos grid.Coord, dir grid.Direction) bool {
	return m.walls.IsSpaceTaken(pos, dir)
}

// AddWall blocks c.
func (m *Map) AddWall(c grid.Coord) {
	m.walls.Add(c)
}

// RemoveWall unblocks c.
func (m *Map) RemoveWall(c grid.Coord) {
	m.walls.Remove(c)
}

// MoveWall moves the wall at from one step in dir.
func (m *Map) MoveWall(from grid.Coord, dir grid.Direction) {
	m.walls.Move(from, dir)
}

// CutsceneActive reports whether a cutscene is running.
func (m *Map) CutsceneActive() bool {
	return m.cutsceneActive
}

// Cutscene returns the current or most recent cutscene run, or nil.
func (m *Map) Cutscene() *cutscene.Interpreter {
	return m.cutscene
}

// StartCutscene begins running s. Callers check CutsceneActive first; a call
// while a cutscene is already running is rejected and returns false.
func (m *Map) StartCutscene(ctx context.Context, s script.Script) bool {
	if m.cutsceneActive {
		return false
	}
	m.cutsceneActive = true
	m.cutscene = cutscene.New(s, cutscene.Env{
		Stage:    m,
		Dialogue: m.opts.Dialogue,
		Maps:     m.opts.Maps,
		Logger:   m.logger,
	})
	m.cutscene.Start(ctx)
	return true
}

// endCutscene clears the cutscene flag and restarts every idle loop from its
// first step.
func (m *Map) endCutscene() {
	m.cutsceneActive = false
	for _, e := range m.entities {
		e.ResetIdle()
	}
}

// CheckForActionCutscene starts the first dialogue of the entity standing
// one tile ahead of the hero in heroFacing. The first entity on that tile in
// definition order is the only candidate.
func (m *Map) CheckForActionCutscene(ctx context.Context, heroFacing grid.Direction) (bool, error) {
	hero, err := m.Hero()
	if err != nil {
		return false, err
	}
	if m.cutsceneActive {
		return false, nil
	}

	ahead := hero.Position.Next(heroFacing)
	for _, e := range m.entities {
		if e.Position != ahead {
			continue
		}
		if !e.HasDialogue() {
			return false, nil
		}
		m.logger.Debug("action cutscene", zap.String("entity", e.ID))
		return m.StartCutscene(ctx, e.Talking[0]), nil
	}
	return false, nil
}

// CheckForFootstepCutscene starts the trigger script on the hero's tile, if any.
func (m *Map) CheckForFootstepCutscene(ctx context.Context) (bool, error) {
	hero, err := m.Hero()
	if err != nil {
		return false, err
	}
	if m.cutsceneActive {
		return false, nil
	}

	s, ok := m.triggers.Lookup(hero.Position)
	if !ok {
		return false, nil
	}
	m.logger.Debug("footstep cutscene", zap.Stringer("at", hero.Position))
	return m.StartCutscene(ctx, s), nil
}

// MoveHero starts a one tile step for the hero. Player input is ignored
// while a cutscene runs or a step is already in flight; a blocked step only
// turns the hero.
func (m *Map) MoveHero(dir grid.Direction) (bool, error) {
	hero, err := m.Hero()
	if err != nil {
		return false, err
	}
	if m.cutsceneActive || hero.IsWalking() {
		return false, nil
	}
	return hero.StartWalk(dir, m), nil
}

// PlaceEntity teleports an entity, and the wall it occupies, to c.
func (m *Map) PlaceEntity(id string, c grid.Coord) error {
	e, err := m.Entity(id)
	if err != nil {
		return err
	}
	e.Teleport(c, m)
	return nil
}

// Update advances the map by one tick: the running cutscene first, then
// every entity. An error from the cutscene means it aborted; the map itself
// is still usable.
func (m *Map) Update(ctx context.Context) error {
	var err error
	if m.cutsceneActive {
		var state cutscene.State
		state, err = m.cutscene.Tick(ctx)
		if state == cutscene.StateComplete {
			m.endCutscene()
		}
	}

	for _, e := range m.entities {
		e.Update(m, m.cutsceneActive)
	}
	return err
}
