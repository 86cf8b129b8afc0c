package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/overworld/internal/cutscene"
	"github.com/samdwyer/overworld/internal/gamedata"
	"github.com/samdwyer/overworld/internal/grid"
	"github.com/samdwyer/overworld/internal/world"
)

func newSimScreen(t *testing.T, w, h int) *Screen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	require.NoError(t, err)
	sim.SetSize(w, h)
	t.Cleanup(screen.Close)
	return screen
}

func loadMuseum(t *testing.T) *world.Map {
	t.Helper()
	reg, err := gamedata.LoadMapRegistry()
	require.NoError(t, err)
	def, err := reg.Lookup("Museum")
	require.NoError(t, err)
	m, err := world.New(context.Background(), def, world.Options{})
	require.NoError(t, err)
	return m
}

func rowText(s *Screen, y, n int) string {
	out := make([]rune, 0, n)
	for x := 0; x < n; x++ {
		r, _ := s.Content(x, y)
		out = append(out, r)
	}
	return string(out)
}

func TestCameraOffset(t *testing.T) {
	tests := []struct {
		hero grid.Coord
		w, h int
		want grid.Coord
	}{
		{grid.At(5, 10), 40, 16, grid.At(-15, 2)},
		{grid.At(0, 0), 2, 2, grid.At(-1, -1)},
		{grid.At(30, 30), 81, 25, grid.At(-10, 18)},
	}

	for _, tt := range tests {
		if got := CameraOffset(tt.hero, tt.w, tt.h); got != tt.want {
			t.Errorf("CameraOffset(%v, %d, %d) = %v, want %v", tt.hero, tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRenderCentresHero(t *testing.T) {
	screen := newSimScreen(t, 40, 20)
	m := loadMuseum(t)

	NewRenderer(screen).Render(View{Map: m})

	// viewport is 40x14, hero at 5,10 lands in the middle
	r, style := screen.Content(20, 7)
	assert.Equal(t, '@', r)
	_, _, attrs := style.Decompose()
	assert.NotZero(t, attrs&tcell.AttrBold)

	npcA, err := m.Entity("npcA")
	require.NoError(t, err)
	r, _ = screen.Content(22, 6)
	assert.Equal(t, Glyph(npcA), r)

	assert.Contains(t, rowText(screen, 14, 40), "Museum")
}

func TestRenderDialogue(t *testing.T) {
	screen := newSimScreen(t, 40, 20)
	m := loadMuseum(t)
	box := cutscene.NewDialogueBox()
	box.Open(cutscene.Message{Text: "Hello there", Speaker: "npcA"})

	NewRenderer(screen).Render(View{Map: m, Dialogue: box})
	assert.Contains(t, rowText(screen, 15, 40), "npcA: Hello there")
	assert.Contains(t, rowText(screen, 19, 40), "continue")

	box.Dismiss()
	NewRenderer(screen).Render(View{Map: m, Dialogue: box})
	assert.NotContains(t, rowText(screen, 15, 40), "Hello there")
}

func TestRenderDialogueWrapsLongMessages(t *testing.T) {
	screen := newSimScreen(t, 40, 20)
	m := loadMuseum(t)
	long := "But over time different groups of animals evolve to suit to their enviorment and become different species."
	require.Greater(t, len(long), 80)

	box := cutscene.NewDialogueBox()
	box.Open(cutscene.Message{Text: long})
	NewRenderer(screen).Render(View{Map: m, Dialogue: box})

	var rows []string
	for y := 15; y < 15+dialogueRows; y++ {
		if row := strings.TrimSpace(rowText(screen, y, 40)); row != "" {
			rows = append(rows, row)
		}
	}
	assert.Greater(t, len(rows), 1)
	assert.Equal(t, long, strings.Join(rows, " "))
}

func TestGlyph(t *testing.T) {
	m := loadMuseum(t)
	hero, err := m.Hero()
	require.NoError(t, err)
	assert.Equal(t, '@', Glyph(hero))

	npcB, err := m.Entity("npcB")
	require.NoError(t, err)
	for dir, want := range map[grid.Direction]rune{grid.Up: '^', grid.Down: 'v', grid.Left: '<', grid.Right: '>'} {
		npcB.Face(dir)
		assert.Equal(t, want, Glyph(npcB), "facing %s", dir)
	}
}
