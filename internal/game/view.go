package game

import (
	"sort"

	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamemap"
)

// Drawable is one entity as the renderer sees it.
type Drawable struct {
	ID         ecs.EntityID
	Pos        gamemap.Point
	Renderable component.Renderable
}

func (e *Engine) State() RunState     { return e.state }
func (e *Engine) Depth() int          { return e.depth }
func (e *Engine) Player() ecs.EntityID { return e.player }

// LogLines is the number of messages the log panel shows.
func (e *Engine) LogLines() int { return e.cfg.LogLines }

// PlayerPos returns where the player stands.
func (e *Engine) PlayerPos() (gamemap.Point, bool) {
	if e.world == nil {
		return gamemap.Point{}, false
	}
	return e.env().PlayerPos()
}

// InGame reports whether a world exists to be drawn.
func (e *Engine) InGame() bool { return e.world != nil }

// Map returns the current level. Callers must not modify it.
func (e *Engine) Map() *gamemap.Map { return e.gmap }

// Renderables returns every placed entity with a Renderable, sorted by
// draw order and then by entity.
func (e *Engine) Renderables() []Drawable {
	if e.world == nil {
		return nil
	}
	w := e.world
	ids := w.Query(component.CPosition, component.CRenderable)
	out := make([]Drawable, 0, len(ids))
	for _, id := range ids {
		out = append(out, Drawable{
			ID:         id,
			Pos:        w.Get(id, component.CPosition).(component.Position).Point(),
			Renderable: w.Get(id, component.CRenderable).(component.Renderable),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Renderable.RenderOrder < out[j].Renderable.RenderOrder
	})
	return out
}

// Stats returns the player's combat stats.
func (e *Engine) Stats() (component.CombatStats, bool) {
	if e.world == nil {
		return component.CombatStats{}, false
	}
	c := e.world.Get(e.player, component.CCombatStats)
	if c == nil {
		return component.CombatStats{}, false
	}
	return c.(component.CombatStats), true
}

// NameAt returns the name of the first named entity on p, for tooltips.
func (e *Engine) NameAt(p gamemap.Point) (string, bool) {
	if e.gmap == nil || !e.gmap.InBounds(p.X, p.Y) {
		return "", false
	}
	for _, id := range e.world.Query(component.CPosition, component.CName) {
		if e.world.Get(id, component.CPosition).(component.Position).Point() == p {
			return e.world.Get(id, component.CName).(component.Name).Name, true
		}
	}
	return "", false
}

// Messages returns the newest n log lines, newest first. With n <= 0 the
// configured display size is used.
func (e *Engine) Messages(n int) []string {
	if e.log == nil {
		return nil
	}
	if n <= 0 {
		n = e.cfg.LogLines
	}
	return e.log.Recent(n)
}

// Notice is a message for the main menu, such as a failed load. It is
// cleared by the next menu command.
func (e *Engine) Notice() string { return e.notice }

// Dead reports whether the player has run out of hit points.
func (e *Engine) Dead() bool {
	s, ok := e.Stats()
	return ok && s.HP < 1
}

// PathTo returns the walkable path from the player to p, start excluded.
func (e *Engine) PathTo(p gamemap.Point) []gamemap.Point {
	if e.gmap == nil || !e.gmap.InBounds(p.X, p.Y) {
		return nil
	}
	pos, ok := e.env().PlayerPos()
	if !ok {
		return nil
	}
	path, ok := e.gmap.ShortestPath(e.gmap.IndexOf(pos), e.gmap.IndexOf(p))
	if !ok || len(path) < 2 {
		return nil
	}
	out := make([]gamemap.Point, 0, len(path)-1)
	for _, idx := range path[1:] {
		out = append(out, e.gmap.PointOf(idx))
	}
	return out
}

// MenuOptions lists the main menu entries. Load is offered only when a
// save exists.
func (e *Engine) MenuOptions() []MenuSelection {
	if e.hasSave {
		return []MenuSelection{NewGame, LoadGame, Quit}
	}
	return []MenuSelection{NewGame, Quit}
}
