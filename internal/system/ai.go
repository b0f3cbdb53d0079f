package system

import (
	"dungeoncrawl/internal/component"

	"go.uber.org/zap"
)

// MonsterAI lets every living monster that can see the player act once:
// attack when in melee range, otherwise take one step along the shortest
// path. Callers run it only on the monster turn.
func MonsterAI(env *Env) {
	m := env.mustMap()
	w := env.World
	playerPos, ok := env.PlayerPos()
	if !ok {
		return
	}
	playerIdx := m.IndexOf(playerPos)

	for _, id := range w.Query(component.CMonster, component.CViewshed, component.CPosition) {
		if stats, ok := w.Get(id, component.CCombatStats).(component.CombatStats); ok && stats.HP < 1 {
			continue
		}
		if !TickConfusion(env, id) {
			continue
		}
		vs := w.Get(id, component.CViewshed).(component.Viewshed)
		if !vs.Sees(playerPos) {
			continue
		}
		pos := w.Get(id, component.CPosition).(component.Position)

		dist := m.Distance(m.IndexOf(pos.Point()), playerIdx)
		if dist <= env.Rules.ShoutDistance {
			env.logger().Debug("shouts insults", zap.String("name", nameOf(w, id)), zap.Stringer("entity", id))
		}
		if dist < env.Rules.MeleeRange {
			w.Add(id, component.WantsToMelee{Target: env.Player})
			continue
		}

		path, found := m.ShortestPath(m.IndexOf(pos.Point()), playerIdx)
		if !found || len(path) < 2 {
			continue
		}
		m.Blocked[m.IndexOf(pos.Point())] = false
		next := m.PointOf(path[1])
		w.Add(id, component.Position{X: next.X, Y: next.Y})
		m.Blocked[path[1]] = true
		vs.Dirty = true
		w.Add(id, vs)
	}
}
