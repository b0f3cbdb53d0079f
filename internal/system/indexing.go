package system

import (
	"dungeoncrawl/internal/component"
)

// MapIndexing rebuilds the blocked flags and per-tile occupant lists from
// scratch. It is the only writer of those arrays besides monster movement
// within a single AI pass.
func MapIndexing(env *Env) {
	m := env.mustMap()
	m.ResetIndex()
	for _, id := range env.World.Query(component.CPosition) {
		pos := env.World.Get(id, component.CPosition).(component.Position)
		if !m.InBounds(pos.X, pos.Y) {
			continue
		}
		idx := m.Index(pos.X, pos.Y)
		if env.World.Has(id, component.CBlocksTile) {
			m.Blocked[idx] = true
		}
		m.TileContent[idx] = append(m.TileContent[idx], id)
	}
}
