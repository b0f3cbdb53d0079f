// Package render draws an Engine onto a tcell screen: the map, entities in
// draw order, the status panel, the message log and the menus.
package render

import (
	"dungeoncrawl/internal/game"
	"dungeoncrawl/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Overlay is front-end state drawn over the game.
type Overlay struct {
	Cursor *gamemap.Point // targeting cursor
	Mouse  *gamemap.Point // hovered tile, for tooltips and path preview
}

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{screen: screen, camera: NewCamera(w, h)}
}

// ScreenToWorld maps a screen cell to the world tile drawn there during the
// last frame.
func (r *Renderer) ScreenToWorld(sx, sy int) gamemap.Point {
	return r.camera.ScreenToWorld(sx, sy)
}

// Draw renders one complete frame.
func (r *Renderer) Draw(e *game.Engine, o Overlay) {
	r.screen.Clear()
	defer r.screen.Show()

	state := e.State()
	if _, ok := state.(game.MainMenu); ok || !e.InGame() {
		r.drawMainMenu(e)
		return
	}

	w, h := r.screen.Size()
	hudRows := e.LogLines() + 2
	r.camera.ViewWidth, r.camera.ViewHeight = w, max(h-hudRows, 1)

	m := e.Map()
	if pos, ok := e.PlayerPos(); ok {
		r.camera.Follow(pos, m.Width, m.Height)
	}
	r.drawMap(m, ThemeFor(e.Depth()))
	r.drawEntities(e.Renderables(), m)

	switch state.(type) {
	case game.AwaitingInput:
		if o.Mouse != nil && m.InBounds(o.Mouse.X, o.Mouse.Y) && m.Revealed[m.IndexOf(*o.Mouse)] {
			r.highlight(e.PathTo(*o.Mouse), tcell.ColorDarkSlateGray)
		}
	case game.ShowTargeting:
		r.highlight(e.TargetCells(), tcell.ColorNavy)
		if o.Cursor != nil {
			r.highlight([]gamemap.Point{*o.Cursor}, tcell.ColorTeal)
		}
	case game.ShowInventory:
		r.drawItemMenu("Inventory", e.Backpack())
	case game.ShowDropItem:
		r.drawItemMenu("Drop Which Item?", e.Backpack())
	}
	if o.Mouse != nil && m.InBounds(o.Mouse.X, o.Mouse.Y) && m.Visible[m.IndexOf(*o.Mouse)] {
		if name, ok := e.NameAt(*o.Mouse); ok {
			r.drawTooltip(*o.Mouse, name)
		}
	}
	r.drawHUD(e, h-hudRows)
}

// drawMap renders visible and remembered tiles.
func (r *Renderer) drawMap(m *gamemap.Map, theme TileSet) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	for i, t := range m.Tiles {
		visible := m.Visible[i]
		if !visible && !m.Revealed[i] {
			continue
		}
		sx, sy, ok := r.camera.WorldToScreen(m.PointOf(i))
		if !ok {
			continue
		}

		var glyph string
		switch {
		case t == gamemap.TileDownStairs:
			glyph = theme.Stairs
		case t == gamemap.TileWall && visible:
			glyph = theme.Wall
		case t == gamemap.TileWall:
			glyph = theme.DimWall
		case visible:
			glyph = theme.Floor
		default:
			glyph = theme.DimFloor
		}
		r.putGlyph(sx, sy, glyph, style)
	}
}

// drawEntities draws entities standing on visible tiles. ds is already in
// draw order, so later entries cover earlier ones.
func (r *Renderer) drawEntities(ds []game.Drawable, m *gamemap.Map) {
	for _, d := range ds {
		if !m.InBounds(d.Pos.X, d.Pos.Y) || !m.Visible[m.IndexOf(d.Pos)] {
			continue
		}
		sx, sy, ok := r.camera.WorldToScreen(d.Pos)
		if !ok {
			continue
		}
		style := tcell.StyleDefault.
			Foreground(d.Renderable.FGColor).
			Background(tcell.ColorBlack)
		r.putGlyph(sx, sy, d.Renderable.Glyph, style)
	}
}

// highlight recolours the background of the given tiles.
func (r *Renderer) highlight(ps []gamemap.Point, bg tcell.Color) {
	for _, p := range ps {
		sx, sy, ok := r.camera.WorldToScreen(p)
		if !ok {
			continue
		}
		for x := sx; x < sx+2; x++ {
			mainc, combc, style, _ := r.screen.GetContent(x, sy)
			r.screen.SetContent(x, sy, mainc, combc, style.Background(bg))
		}
	}
}

func (r *Renderer) drawTooltip(p gamemap.Point, text string) {
	sx, sy, ok := r.camera.WorldToScreen(p)
	if !ok {
		return
	}
	w, _ := r.screen.Size()
	x := sx + 3
	if x+runewidth.StringWidth(text)+2 > w {
		x = sx - runewidth.StringWidth(text) - 3
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
	r.drawText(max(x, 0), sy, " "+text+" ", style)
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	r.screen.SetContent(x, y, runes[0], runes[1:], style)
	if runewidth.StringWidth(glyph) < 2 {
		// Narrow glyphs still fill the two-column tile.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// drawText writes text starting at (x, y) and returns the column after it.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x += max(runewidth.RuneWidth(ch), 1)
	}
	return x
}
