package system

import (
	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/ecs"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall, blocker or out-of-bounds
	MoveAttack                    // bumped a combatant; a melee intent was recorded
)

func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "ok"
	case MoveBlocked:
		return "blocked"
	case MoveAttack:
		return "attack"
	}
	return "unknown"
}

// TryMove attempts to move entity id by (dx, dy). Bumping into anything with
// combat stats records a WantsToMelee on the mover instead of moving.
// Returns the outcome and, for MoveAttack, the target.
func TryMove(env *Env, id ecs.EntityID, dx, dy int) (MoveResult, ecs.EntityID) {
	m := env.mustMap()
	w := env.World
	posComp := w.Get(id, component.CPosition)
	if posComp == nil {
		return MoveBlocked, ecs.NilEntity
	}
	pos := posComp.(component.Position)
	nx, ny := pos.X+dx, pos.Y+dy
	if !m.InBounds(nx, ny) {
		return MoveBlocked, ecs.NilEntity
	}

	for _, other := range m.TileContent[m.Index(nx, ny)] {
		if other == id || !w.Has(other, component.CCombatStats) {
			continue
		}
		w.Add(id, component.WantsToMelee{Target: other})
		return MoveAttack, other
	}

	if m.Blocked[m.Index(nx, ny)] {
		return MoveBlocked, ecs.NilEntity
	}

	w.Add(id, component.Position{X: nx, Y: ny})
	if c := w.Get(id, component.CViewshed); c != nil {
		vs := c.(component.Viewshed)
		vs.Dirty = true
		w.Add(id, vs)
	}
	return MoveOK, ecs.NilEntity
}
