package system

import (
	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamemap"
)

// ResolveTargets returns the entities a use of item by user affects. With no
// target point that is the user alone. A point without an area of effect
// hits the first combatant standing there. An area effect hits every
// occupant of every tile in the field of view of radius around the point.
func ResolveTargets(env *Env, user, item ecs.EntityID, target *gamemap.Point) []ecs.EntityID {
	if target == nil {
		return []ecs.EntityID{user}
	}
	m := env.mustMap()
	w := env.World
	if !m.InBounds(target.X, target.Y) {
		return nil
	}

	aoe := w.Get(item, component.CAreaOfEffect)
	if aoe == nil {
		for _, id := range m.TileContent[m.IndexOf(*target)] {
			if w.Has(id, component.CCombatStats) {
				return []ecs.EntityID{id}
			}
		}
		return nil
	}

	var targets []ecs.EntityID
	for _, p := range m.FieldOfView(*target, aoe.(component.AreaOfEffect).Radius) {
		targets = append(targets, m.TileContent[m.IndexOf(p)]...)
	}
	return targets
}

// ItemUsage applies every WantsToUseItem: healing, then damage, then
// confusion, each to every resolved target. Consumables are deleted after
// use.
func ItemUsage(env *Env) {
	w := env.World
	for _, id := range w.Query(component.CWantsToUseItem) {
		intent := w.Get(id, component.CWantsToUseItem).(component.WantsToUseItem)
		if !w.Alive(intent.Item) {
			continue
		}
		targets := ResolveTargets(env, id, intent.Item, intent.Target)
		itemName := nameOf(w, intent.Item)
		byPlayer := id == env.Player

		if c := w.Get(intent.Item, component.CProvidesHealing); c != nil {
			heal := c.(component.ProvidesHealing).Amount
			for _, t := range targets {
				sc := w.Get(t, component.CCombatStats)
				if sc == nil {
					continue
				}
				stats := sc.(component.CombatStats)
				stats.HP = min(stats.MaxHP, stats.HP+heal)
				w.Add(t, stats)
				if byPlayer {
					env.Log.Addf("You drink the %s, healing %d hp.", itemName, heal)
				}
			}
		}

		if c := w.Get(intent.Item, component.CInflictsDamage); c != nil {
			dmg := c.(component.InflictsDamage).Amount
			for _, t := range targets {
				if !w.Has(t, component.CCombatStats) {
					continue
				}
				InflictDamage(w, t, dmg)
				if byPlayer {
					env.Log.Addf("You used the %s on %s, inflicting %d damage.", itemName, nameOf(w, t), dmg)
				}
			}
		}

		if c := w.Get(intent.Item, component.CConfusion); c != nil {
			turns := c.(component.Confusion).Turns
			for _, t := range targets {
				// Confusion on an item would turn it into a confusion scroll.
				if !w.Has(t, component.CCombatStats) {
					continue
				}
				Confuse(w, t, turns)
				if byPlayer {
					env.Log.Addf("You used the %s on %s, causing %d turns of confusion.", itemName, nameOf(w, t), turns)
				}
			}
		}

		if w.Has(intent.Item, component.CConsumable) {
			w.Delete(intent.Item)
		}
	}
	w.Clear(component.CWantsToUseItem)
}
