package system

import (
	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/ecs"

	"go.uber.org/zap"
)

// TickConfusion spends one turn of id's confusion and reports whether id may
// act this turn. Unconfused entities always may. The confusion is removed,
// and the entity acts, once the remaining count drops below 1.
func TickConfusion(env *Env, id ecs.EntityID) bool {
	w := env.World
	c := w.Get(id, component.CConfusion)
	if c == nil {
		return true
	}
	conf := c.(component.Confusion)
	conf.Turns--
	if conf.Turns < 1 {
		w.Remove(id, component.CConfusion)
		return true
	}
	w.Add(id, conf)
	env.logger().Debug("still confused",
		zap.String("name", nameOf(w, id)),
		zap.Stringer("entity", id),
		zap.Int("turns", conf.Turns))
	return false
}

// Confuse attaches or overwrites a confusion of the given length.
func Confuse(w *ecs.World, id ecs.EntityID, turns int) {
	w.Add(id, component.Confusion{Turns: turns})
}
