package game

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/samdwyer/overworld/internal/cutscene"
	"github.com/samdwyer/overworld/internal/gamedata"
	"github.com/samdwyer/overworld/internal/gameerr"
	"github.com/samdwyer/overworld/internal/grid"
	"github.com/samdwyer/overworld/internal/telemetry"
	"github.com/samdwyer/overworld/internal/world"
)

// Intent is one tick of player input.
type Intent struct {
	Move   grid.Direction // "" when no direction is held
	Action bool
}

// Overworld owns the current map and swaps it when a cutscene asks for a
// different one. It is the MapChanger handed to every map it loads.
type Overworld struct {
	registry *gamedata.MapRegistry
	current  *world.Map
	dialogue *cutscene.DialogueBox
	triggers world.TriggerEvaluator
	logger   *zap.Logger
	changes  int
}

// NewOverworld loads cfg.StartMap from the registry.
func NewOverworld(ctx context.Context, cfg Config, registry *gamedata.MapRegistry, logger *zap.Logger) (*Overworld, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	o := &Overworld{
		registry: registry,
		dialogue: cutscene.NewDialogueBox(),
		logger:   logger,
	}
	if err := o.ChangeMap(ctx, cfg.StartMap); err != nil {
		return nil, err
	}
	return o, nil
}

// ChangeMap discards the current map and builds name from its registry
// record. On failure the current map is kept.
func (o *Overworld) ChangeMap(ctx context.Context, name string) error {
	ctx, span := telemetry.Tracer("game").Start(ctx, "map.change",
		trace.WithAttributes(attribute.String("map.to", name)))
	defer span.End()

	from := ""
	if o.current != nil {
		from = o.current.Name
		span.SetAttributes(attribute.String("map.from", from))
	}

	def, err := o.registry.Lookup(name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	m, err := world.New(ctx, def, world.Options{
		Logger:   o.logger,
		Dialogue: o.dialogue,
		Maps:     o,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	o.current = m
	o.triggers.Baseline(m)
	o.dialogue.Dismiss()
	o.changes++
	o.logger.Info("map changed", zap.String("from", from), zap.String("to", name))
	return nil
}

// Update runs one tick. While a cutscene is running the action intent only
// dismisses dialogue. Otherwise triggers are evaluated against the hero's
// settled position before movement input can start the next step.
func (o *Overworld) Update(ctx context.Context, in Intent) error {
	m := o.current
	if m.CutsceneActive() {
		if in.Action {
			o.dialogue.Dismiss()
		}
		return m.Update(ctx)
	}

	started, err := o.triggers.Evaluate(ctx, m, in.Action)
	if err != nil {
		return err
	}
	if !started && in.Move != "" {
		if _, err := m.MoveHero(in.Move); err != nil {
			return err
		}
	}
	return m.Update(ctx)
}

// Map returns the map currently loaded.
func (o *Overworld) Map() *world.Map {
	return o.current
}

// Dialogue returns the dialogue box shared by every map.
func (o *Overworld) Dialogue() *cutscene.DialogueBox {
	return o.dialogue
}

// State reports whether the overworld is exploring or running a cutscene.
func (o *Overworld) State() State {
	if o.current.CutsceneActive() {
		return StateCutscene
	}
	return StateExplore
}

// MapChanges counts successful map loads, the start map included.
func (o *Overworld) MapChanges() int {
	return o.changes
}

// Fatal reports whether err must stop the game. Configuration problems in map
// data are logged and play continues; a broken runtime invariant is not
// recoverable.
func Fatal(err error) bool {
	if err == nil {
		return false
	}
	if gameerr.IsInvariant(err) {
		return true
	}
	if gameerr.IsConfig(err) {
		return false
	}
	return !errors.Is(err, context.Canceled)
}
