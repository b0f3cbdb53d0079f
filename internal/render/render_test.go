package render

import (
	"context"
	"strings"
	"testing"

	"dungeoncrawl/assets"
	"dungeoncrawl/internal/config"
	"dungeoncrawl/internal/game"
	"dungeoncrawl/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T) tcell.Screen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, ss.Init())
	ss.SetSize(80, 30)
	t.Cleanup(ss.Fini)
	return ss
}

// row returns the text drawn on screen row y.
func row(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		mainc, _, _, _ := s.GetContent(x, y)
		if mainc == 0 {
			mainc = ' '
		}
		b.WriteRune(mainc)
	}
	return b.String()
}

func screenText(s tcell.Screen) string {
	_, h := s.Size()
	rows := make([]string, h)
	for y := range rows {
		rows[y] = row(s, y)
	}
	return strings.Join(rows, "\n")
}

func TestCameraPinsSmallMaps(t *testing.T) {
	c := NewCamera(80, 20)
	c.Follow(gamemap.Point{X: 7, Y: 7}, 15, 15)
	assert.Equal(t, 0, c.OffsetX)
	assert.Equal(t, 0, c.OffsetY)

	sx, sy, ok := c.WorldToScreen(gamemap.Point{X: 3, Y: 4})
	assert.True(t, ok)
	assert.Equal(t, 6, sx)
	assert.Equal(t, 4, sy)
	assert.Equal(t, gamemap.Point{X: 3, Y: 4}, c.ScreenToWorld(7, 4))
}

func TestCameraFollowsLargeMaps(t *testing.T) {
	c := NewCamera(20, 10)
	c.Follow(gamemap.Point{X: 50, Y: 50}, 100, 100)
	assert.Equal(t, 45, c.OffsetX)
	assert.Equal(t, 45, c.OffsetY)

	c.Follow(gamemap.Point{X: 99, Y: 0}, 100, 100)
	assert.Equal(t, 90, c.OffsetX, "clamped to the right edge")
	assert.Equal(t, 0, c.OffsetY)

	_, _, ok := c.WorldToScreen(gamemap.Point{X: 0, Y: 0})
	assert.False(t, ok)
}

func TestThemeCycles(t *testing.T) {
	assert.Equal(t, Themes[0], ThemeFor(1))
	assert.Equal(t, Themes[1], ThemeFor(2))
	assert.Equal(t, Themes[0], ThemeFor(len(Themes)+1))
	assert.Equal(t, Themes[0], ThemeFor(0))
}

func TestDrawMainMenu(t *testing.T) {
	ss := newSimScreen(t)
	e, err := game.New(context.Background(), config.Default())
	require.NoError(t, err)

	NewRenderer(ss).Draw(e, Overlay{})
	text := screenText(ss)
	assert.Contains(t, text, assets.Title)
	assert.Contains(t, text, "Begin New Game")
	assert.Contains(t, text, "Quit")
	assert.NotContains(t, text, "Load Game")
}

func TestDrawGame(t *testing.T) {
	ss := newSimScreen(t)
	e, err := game.New(context.Background(), config.Default())
	require.NoError(t, err)
	_, err = e.Advance(context.Background(), game.MenuConfirm{})
	require.NoError(t, err)

	r := NewRenderer(ss)
	r.Draw(e, Overlay{})
	text := screenText(ss)
	assert.Contains(t, text, "HP: 30 / 30")
	assert.Contains(t, text, "Depth: 1")
	assert.Contains(t, text, assets.Welcome)

	pos, ok := e.PlayerPos()
	require.True(t, ok)
	sx, sy, ok := r.camera.WorldToScreen(pos)
	require.True(t, ok)
	mainc, _, _, _ := ss.GetContent(sx, sy)
	assert.Equal(t, []rune(assets.GlyphPlayer)[0], mainc, "the player is drawn over the floor")
}

func TestDrawInventory(t *testing.T) {
	ss := newSimScreen(t)
	e, err := game.New(context.Background(), config.Default())
	require.NoError(t, err)
	ctx := context.Background()
	_, err = e.Advance(ctx, game.MenuConfirm{})
	require.NoError(t, err)
	_, err = e.Advance(ctx, game.OpenInventory{})
	require.NoError(t, err)

	NewRenderer(ss).Draw(e, Overlay{})
	text := screenText(ss)
	assert.Contains(t, text, "Inventory")
	assert.Contains(t, text, "(empty)")
	assert.Contains(t, text, "ESC to cancel")
}
