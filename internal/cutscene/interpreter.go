// Package cutscene interprets scripts: ordered event lists that move
// entities, show dialogue and change maps while the rest of the map is paused.
//
// The interpreter never blocks. The game loop calls Tick once per frame and
// each event reports whether it is still pending; the next event only starts
// on the tick after the previous one resolved.
package cutscene

import (
	"context"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/script"
	"github.com/samdwyer/overworld/internal/telemetry"
)

// State is the lifecycle of one cutscene run.
type State int

const (
	// StateIdle is a run that has not been started.
	StateIdle State = iota
	// StateRunning is a run with events left to execute.
	StateRunning
	// StateComplete is a run that drained its script, hit a changeMap, or aborted.
	StateComplete
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Outcome records how a single event resolved.
type Outcome string

const (
	OutcomeDone       Outcome = "done"
	OutcomeSkipped    Outcome = "skipped"    // unrecognized event type
	OutcomeBlocked    Outcome = "blocked"    // walk into a taken tile, position held
	OutcomeTerminated Outcome = "terminated" // changeMap ended the script
	OutcomeFailed     Outcome = "failed"
)

// Record is the resolution of one event, in execution order.
type Record struct {
	Index   int
	Type    script.EventType
	Subject string
	Outcome Outcome
}

// Stage is the map the cutscene plays on.
type Stage interface {
	entity.Walls
	// Entity resolves an id, returning a ConfigError when it is absent.
	Entity(id string) (*entity.Entity, error)
	// Hero returns the hero, or an InvariantError when the map has none.
	Hero() (*entity.Entity, error)
}

// MapChanger replaces the current map. It is implemented by whatever owns
// the map, never by the map itself.
type MapChanger interface {
	ChangeMap(ctx context.Context, name string) error
}

// Env bundles the collaborators a run needs.
type Env struct {
	Stage    Stage
	Dialogue Dialogue
	Maps     MapChanger
	Logger   *zap.Logger
}

// Interpreter executes one script against a stage.
type Interpreter struct {
	script script.Script
	env    Env
	logger *zap.Logger
	runID  ulid.ULID

	state   State
	index   int
	current step
	records []Record
	err     error

	span      trace.Span
	eventSpan trace.Span
}

// New prepares a run of s. Nothing happens until Start.
func New(s script.Script, env Env) *Interpreter {
	logger := env.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	runID := ulid.Make()
	return &Interpreter{
		script: s,
		env:    env,
		runID:  runID,
		logger: logger.With(zap.String("run", runID.String())),
		state:  StateIdle,
	}
}

// Start moves an idle run to running. Starting twice is a no-op.
func (in *Interpreter) Start(ctx context.Context) {
	if in.state != StateIdle {
		return
	}
	_, in.span = telemetry.Tracer("cutscene").Start(ctx, "cutscene.run",
		trace.WithAttributes(
			attribute.String("cutscene.run_id", in.runID.String()),
			attribute.Int("cutscene.events", in.script.Len()),
		),
	)
	in.state = StateRunning
	in.logger.Debug("cutscene started", zap.Int("events", in.script.Len()))
}

// Tick advances the run by one frame and returns the resulting state. A
// non-nil error means the run aborted; the state is then StateComplete.
func (in *Interpreter) Tick(ctx context.Context) (State, error) {
	if in.state != StateRunning {
		return in.state, nil
	}
	if in.span != nil {
		ctx = trace.ContextWithSpan(ctx, in.span)
	}

	if in.current == nil {
		if in.index >= in.script.Len() {
			in.finish()
			return in.state, nil
		}
		ev := in.script.Events[in.index]
		_, in.eventSpan = telemetry.Tracer("cutscene").Start(ctx, "cutscene.event",
			trace.WithAttributes(
				attribute.Int("event.index", in.index),
				attribute.String("event.type", string(ev.Type)),
			),
		)

		h, ok := handlers[ev.Type]
		if !ok {
			in.logger.Warn("skipping unrecognized event",
				zap.Int("index", in.index),
				zap.String("type", string(ev.Type)),
			)
			return in.resolve(ev, OutcomeSkipped), nil
		}
		st, err := h(in, ev)
		if err != nil {
			return in.fail(ev, err)
		}
		in.current = st
	}

	ev := in.script.Events[in.index]
	res, err := in.current.tick(ctx)
	if err != nil {
		return in.fail(ev, err)
	}
	switch res {
	case stepPending:
		return in.state, nil
	case stepBlocked:
		in.logger.Debug("walk blocked, holding position",
			zap.Int("index", in.index),
			zap.String("who", ev.Subject()),
		)
		return in.resolve(ev, OutcomeBlocked), nil
	case stepTerminate:
		return in.resolve(ev, OutcomeTerminated), nil
	default:
		return in.resolve(ev, OutcomeDone), nil
	}
}

// resolve closes out the current event. A terminating event, or the last
// event, completes the run immediately; otherwise the run yields until the
// next tick.
func (in *Interpreter) resolve(ev script.Event, outcome Outcome) State {
	in.records = append(in.records, Record{
		Index:   in.index,
		Type:    ev.Type,
		Subject: ev.Subject(),
		Outcome: outcome,
	})
	if in.eventSpan != nil {
		in.eventSpan.SetAttributes(attribute.String("event.outcome", string(outcome)))
		in.eventSpan.End()
		in.eventSpan = nil
	}
	in.current = nil
	in.index++

	if outcome == OutcomeTerminated || in.index >= in.script.Len() {
		in.finish()
	}
	return in.state
}

func (in *Interpreter) fail(ev script.Event, err error) (State, error) {
	in.logger.Error("cutscene aborted",
		zap.Int("index", in.index),
		zap.String("type", string(ev.Type)),
		zap.Error(err),
	)
	if in.eventSpan != nil {
		in.eventSpan.RecordError(err)
		in.eventSpan.SetStatus(codes.Error, err.Error())
	}
	if in.span != nil {
		in.span.RecordError(err)
		in.span.SetStatus(codes.Error, err.Error())
	}
	in.err = err
	in.resolve(ev, OutcomeFailed)
	in.finish()
	return in.state, err
}

func (in *Interpreter) finish() {
	if in.state == StateComplete {
		return
	}
	in.state = StateComplete
	if in.span != nil {
		in.span.SetAttributes(
			attribute.Int("cutscene.resolved", len(in.records)),
			attribute.Bool("cutscene.aborted", in.err != nil),
		)
		in.span.End()
	}
	in.logger.Debug("cutscene complete", zap.Int("resolved", len(in.records)))
}

// State returns the current lifecycle state.
func (in *Interpreter) State() State {
	return in.state
}

// Index returns the index of the event running or about to run.
func (in *Interpreter) Index() int {
	return in.index
}

// Completed returns how many events have resolved so far.
func (in *Interpreter) Completed() int {
	return len(in.records)
}

// Records returns the resolution of every event so far, in order.
func (in *Interpreter) Records() []Record {
	return in.records
}

// Err returns the error that aborted the run, if any.
func (in *Interpreter) Err() error {
	return in.err
}

// RunID identifies this run in logs and traces.
func (in *Interpreter) RunID() ulid.ULID {
	return in.runID
}

// Subject returns the id of the entity addressed by the in-flight event, or
// "" when no event is in flight.
func (in *Interpreter) Subject() string {
	if in.current == nil || in.index >= in.script.Len() {
		return ""
	}
	return in.script.Events[in.index].Subject()
}
