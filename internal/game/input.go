package game

import (
	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/gamemap"
	"dungeoncrawl/internal/system"

	"go.uber.org/zap"
)

// playerInput turns one command into the state that follows AwaitingInput.
func (e *Engine) playerInput(cmd Command) RunState {
	switch cmd.(type) {
	case Move, Wait, Pickup, OpenInventory, OpenDrop, Descend:
		if e.Dead() {
			return AwaitingInput{}
		}
		if !system.TickConfusion(e.env(), e.player) {
			e.log.Add("You are confused!")
			return PlayerTurn{}
		}
	}

	switch c := cmd.(type) {
	case Move:
		env := e.env()
		// Monsters moved since the last index rebuild.
		system.MapIndexing(env)
		res, target := system.TryMove(env, e.player, c.DX, c.DY)
		if res == system.MoveAttack {
			e.logger.Debug("player attacks", zap.Stringer("target", target))
		}
		return PlayerTurn{}
	case Wait:
		e.skipTurn()
		return PlayerTurn{}
	case Pickup:
		e.pickup()
		return PlayerTurn{}
	case OpenInventory:
		return ShowInventory{}
	case OpenDrop:
		return ShowDropItem{}
	case Descend:
		if e.onStairs() {
			return NextLevel{}
		}
		e.log.Add("There is no way down from here.")
		return AwaitingInput{}
	case Save:
		if e.store == nil {
			e.log.Add("Saving is not available.")
			return AwaitingInput{}
		}
		return SaveGame{}
	}
	return AwaitingInput{}
}

// skipTurn heals the player by one point when no monster is in view either
// way: none inside the player's viewshed, and none whose viewshed holds the
// player's tile.
func (e *Engine) skipTurn() {
	w := e.world
	pos, ok := e.env().PlayerPos()
	if !ok {
		return
	}
	system.MapIndexing(e.env())
	if c := w.Get(e.player, component.CViewshed); c != nil {
		for _, p := range c.(component.Viewshed).VisibleTiles {
			for _, id := range e.gmap.TileContent[e.gmap.IndexOf(p)] {
				if w.Has(id, component.CMonster) {
					return
				}
			}
		}
	}
	for _, id := range w.Query(component.CMonster, component.CViewshed) {
		if w.Get(id, component.CViewshed).(component.Viewshed).Sees(pos) {
			return
		}
	}

	c := w.Get(e.player, component.CCombatStats)
	if c == nil {
		return
	}
	stats := c.(component.CombatStats)
	stats.HP = min(stats.HP+1, stats.MaxHP)
	w.Add(e.player, stats)
}

// pickup queues a pickup of the first item lying on the player's tile.
func (e *Engine) pickup() {
	w := e.world
	pos, ok := e.env().PlayerPos()
	if !ok {
		return
	}
	for _, id := range w.Query(component.CItem, component.CPosition) {
		if w.Get(id, component.CPosition).(component.Position).Point() == pos {
			w.Add(e.player, component.WantsToPickupItem{CollectedBy: e.player, Item: id})
			return
		}
	}
	e.log.Add("There is nothing here to pick up.")
}

func (e *Engine) onStairs() bool {
	pos, ok := e.env().PlayerPos()
	if !ok {
		return false
	}
	return e.gmap.TileAt(pos.X, pos.Y) == gamemap.TileDownStairs
}
