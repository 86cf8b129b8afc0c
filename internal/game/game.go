package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/overworld/internal/gamedata"
	"github.com/samdwyer/overworld/internal/grid"
	"github.com/samdwyer/overworld/internal/telemetry"
	"github.com/samdwyer/overworld/internal/ui"
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	registry *gamedata.MapRegistry
	logger   *zap.Logger

	screen    *ui.Screen
	renderer  *ui.Renderer
	overworld *Overworld

	intent  Intent
	running bool
}

// New creates a new game instance on the terminal.
func New(cfg Config, registry *gamedata.MapRegistry, logger *zap.Logger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(cfg, registry, logger, screen), nil
}

// NewWithScreen creates a game drawing to an already initialized screen.
func NewWithScreen(cfg Config, registry *gamedata.MapRegistry, logger *zap.Logger, screen *ui.Screen) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Game{
		cfg:      cfg,
		registry: registry,
		logger:   logger,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		running:  true,
	}
}

// Run executes the main game loop until the player quits, ctx is cancelled or
// an unrecoverable error occurs.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	if err := g.init(ctx); err != nil {
		return err
	}

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go g.pollEvents(events, done)

	ticker := time.NewTicker(g.cfg.TickInterval())
	defer ticker.Stop()

	g.render()
	for g.running {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			g.handleEvent(ev)
		case <-ticker.C:
			if err := g.tick(ctx); err != nil {
				return err
			}
			g.render()
		}
	}
	return nil
}

func (g *Game) init(ctx context.Context) error {
	ctx, span := telemetry.Tracer("game").Start(ctx, "game.init")
	defer span.End()

	o, err := NewOverworld(ctx, g.cfg, g.registry, g.logger)
	if err != nil {
		span.RecordError(err)
		return err
	}
	g.overworld = o
	span.SetAttributes(
		attribute.String("map.start", g.cfg.StartMap),
		attribute.Int("registry.maps", g.registry.Count()),
		attribute.Int("tick_rate", g.cfg.TickRate),
	)
	return nil
}

// pollEvents forwards terminal events until the screen is finalized or the
// loop exits.
func (g *Game) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// tick applies the input gathered since the previous tick. Map data problems
// are logged and the game keeps running on the current map.
func (g *Game) tick(ctx context.Context) error {
	in := g.intent
	g.intent = Intent{}

	err := g.overworld.Update(ctx, in)
	if err == nil {
		return nil
	}
	if Fatal(err) {
		g.logger.Error("stopping on unrecoverable error", zap.Error(err))
		return err
	}
	g.logger.Warn("continuing after map data error", zap.String("map", g.overworld.Map().Name), zap.Error(err))
	return nil
}

func (g *Game) render() {
	g.renderer.Render(ui.View{
		Map:      g.overworld.Map(),
		Dialogue: g.overworld.Dialogue(),
	})
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent records keyboard input into the pending intent.
func (g *Game) handleKeyEvent(ev *tcell.EventKey) {
	g.applyKey(ev.Key(), ev.Rune())
}

func (g *Game) applyKey(key tcell.Key, ch rune) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.intent.Move = grid.Up
	case tcell.KeyDown:
		g.intent.Move = grid.Down
	case tcell.KeyLeft:
		g.intent.Move = grid.Left
	case tcell.KeyRight:
		g.intent.Move = grid.Right
	case tcell.KeyEnter:
		g.intent.Action = true

	case tcell.KeyRune:
		switch ch {
		case 'q', 'Q':
			g.running = false
		case ' ', 'z', 'Z':
			g.intent.Action = true
		case 'w', 'k':
			g.intent.Move = grid.Up
		case 's', 'j':
			g.intent.Move = grid.Down
		case 'a', 'h':
			g.intent.Move = grid.Left
		case 'd', 'l':
			g.intent.Move = grid.Right
		}
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
