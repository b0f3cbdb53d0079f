package system

import (
	"dungeoncrawl/internal/component"
)

// Visibility recomputes every dirty viewshed. The player's viewshed also
// drives the map's visible and revealed flags.
func Visibility(env *Env) {
	m := env.mustMap()
	w := env.World
	for _, id := range w.Query(component.CViewshed, component.CPosition) {
		vs := w.Get(id, component.CViewshed).(component.Viewshed)
		if !vs.Dirty {
			continue
		}
		pos := w.Get(id, component.CPosition).(component.Position)
		vs.VisibleTiles = m.FieldOfView(pos.Point(), vs.Range)
		vs.Dirty = false
		w.Add(id, vs)

		if w.Has(id, component.CPlayer) {
			m.ClearVisible()
			for _, p := range vs.VisibleTiles {
				idx := m.IndexOf(p)
				m.Revealed[idx] = true
				m.Visible[idx] = true
			}
		}
	}
}
