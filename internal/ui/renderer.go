package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/overworld/internal/cutscene"
	"github.com/samdwyer/overworld/internal/entity"
	"github.com/samdwyer/overworld/internal/gamedata"
	"github.com/samdwyer/overworld/internal/grid"
	"github.com/samdwyer/overworld/internal/world"
)

// PanelHeight is the number of rows at the bottom of the screen reserved for
// the status line and the dialogue box.
const PanelHeight = 6

// dialogueRows is how many wrapped lines of a message fit in the panel,
// leaving the status line and the continue hint.
const dialogueRows = PanelHeight - 2

// View is everything the renderer draws in one frame.
type View struct {
	Map      *world.Map
	Dialogue *cutscene.DialogueBox
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// CameraOffset returns the map coordinate drawn at the top-left cell of a
// w by h viewport centred on hero.
func CameraOffset(hero grid.Coord, w, h int) grid.Coord {
	return grid.At(hero.X-w/2, hero.Y-h/2)
}

// Render draws the map around the hero, then the status line and any open
// dialogue.
func (r *Renderer) Render(v View) {
	r.screen.Clear()
	w, h := r.screen.Size()
	viewH := max(h-PanelHeight, 1)

	m := v.Map
	var origin grid.Coord
	if hero, err := m.Hero(); err == nil {
		origin = CameraOffset(hero.Position, w, viewH)
	}

	toScreen := func(c grid.Coord) (int, int, bool) {
		x, y := c.X-origin.X, c.Y-origin.Y
		return x, y, x >= 0 && x < w && y >= 0 && y < viewH
	}

	floor := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for y := 0; y < viewH; y++ {
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, '·', floor)
		}
	}

	trigger := tcell.StyleDefault.Foreground(tcell.ColorOlive)
	m.Triggers().Each(func(c grid.Coord) {
		if x, y, ok := toScreen(c); ok {
			r.screen.SetContent(x, y, '+', trigger)
		}
	})

	wall := tcell.StyleDefault.Foreground(tcell.ColorGray)
	m.Walls().Each(func(c grid.Coord) {
		if x, y, ok := toScreen(c); ok {
			r.screen.SetContent(x, y, '#', wall)
		}
	})

	for _, e := range m.Entities() {
		if x, y, ok := toScreen(e.Position); ok {
			r.screen.SetContent(x, y, Glyph(e), entityStyle(e))
		}
	}

	r.renderStatus(m, w, viewH)
	if v.Dialogue != nil {
		if msg, open := v.Dialogue.Current(); open {
			r.renderDialogue(msg, w, viewH+1, min(dialogueRows, h-viewH-2))
		}
	}

	r.screen.Show()
}

// Glyph returns the character drawn for an entity: the hero is '@', everyone
// else points the way they face.
func Glyph(e *entity.Entity) rune {
	if e.IsHero() {
		return '@'
	}
	switch e.Facing {
	case grid.Up:
		return '^'
	case grid.Left:
		return '<'
	case grid.Right:
		return '>'
	default:
		return 'v'
	}
}

func entityStyle(e *entity.Entity) tcell.Style {
	style := tcell.StyleDefault.Foreground(gamedata.EntityColor(e.Color))
	if e.IsHero() {
		style = style.Bold(true)
	}
	return style
}

func (r *Renderer) renderStatus(m *world.Map, w, y int) {
	status := fmt.Sprintf("%s  %d entities", m.Name, len(m.Entities()))
	if m.CutsceneActive() {
		status += "  (cutscene)"
	}
	r.RenderMessage(status, y, tcell.StyleDefault.Foreground(tcell.ColorSilver), w)
}

func (r *Renderer) renderDialogue(msg cutscene.Message, w, y, rows int) {
	text := msg.Text
	if msg.Speaker != "" {
		text = msg.Speaker + ": " + text
	}
	rows = max(rows, 1)
	lines := WrapText(text, w)
	if len(lines) > rows {
		// Only on terminals too small for the panel.
		lines = lines[:rows]
		last := []rune(lines[rows-1])
		if len(last) >= w {
			last = last[:len(last)-1]
		}
		lines[rows-1] = string(last) + "…"
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	for i, line := range lines {
		r.RenderMessage(line, y+i, style, w)
	}
	r.RenderMessage("[space] continue", y+rows, tcell.StyleDefault.Foreground(tcell.ColorDarkGray), w)
}

// RenderMessage writes msg on row y, clipped to w columns.
func (r *Renderer) RenderMessage(msg string, y int, style tcell.Style, w int) {
	x := 0
	for _, ch := range msg {
		if x >= w {
			return
		}
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}
