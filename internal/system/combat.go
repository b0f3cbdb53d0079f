package system

import (
	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/ecs"

	"go.uber.org/zap"
)

// MeleeDamage is the damage an attack deals: power minus defense, never
// negative.
func MeleeDamage(attacker, defender component.CombatStats) int {
	return max(0, attacker.Power-defender.Defense)
}

// InflictDamage queues amount on target's SufferDamage for this tick.
func InflictDamage(w *ecs.World, target ecs.EntityID, amount int) {
	var sd component.SufferDamage
	if c := w.Get(target, component.CSufferDamage); c != nil {
		sd = c.(component.SufferDamage)
	}
	sd.Amounts = append(sd.Amounts, amount)
	w.Add(target, sd)
}

// MeleeCombat resolves every WantsToMelee from a living attacker against a
// living target, then drops all melee intents.
func MeleeCombat(env *Env) {
	w := env.World
	for _, id := range w.Query(component.CWantsToMelee, component.CCombatStats) {
		stats := w.Get(id, component.CCombatStats).(component.CombatStats)
		if stats.HP <= 0 {
			continue
		}
		intent := w.Get(id, component.CWantsToMelee).(component.WantsToMelee)
		tc := w.Get(intent.Target, component.CCombatStats)
		if tc == nil {
			continue
		}
		target := tc.(component.CombatStats)
		if target.HP <= 0 {
			continue
		}

		attacker, defender := nameOf(w, id), nameOf(w, intent.Target)
		dmg := MeleeDamage(stats, target)
		if dmg == 0 {
			env.Log.Addf("%s is unable to hurt %s", attacker, defender)
			continue
		}
		InflictDamage(w, intent.Target, dmg)
		env.Log.Addf("%s hits %s, for %d hp.", attacker, defender, dmg)
	}
	w.Clear(component.CWantsToMelee)
}

// Damage folds every pending SufferDamage into hp. Hp may go negative; the
// death sweep at the start of the next pass removes the dead.
func Damage(env *Env) {
	w := env.World
	for _, id := range w.Query(component.CSufferDamage, component.CCombatStats) {
		stats := w.Get(id, component.CCombatStats).(component.CombatStats)
		stats.HP -= w.Get(id, component.CSufferDamage).(component.SufferDamage).Total()
		w.Add(id, stats)
	}
	w.Clear(component.CSufferDamage)
}

// DeleteTheDead deletes every non-player combatant with hp below 1. A dead
// player stays in the world.
func DeleteTheDead(env *Env) {
	w := env.World
	for _, id := range w.Query(component.CCombatStats) {
		stats := w.Get(id, component.CCombatStats).(component.CombatStats)
		if stats.HP >= 1 {
			continue
		}
		if w.Has(id, component.CPlayer) {
			env.logger().Debug("You are dead.", zap.Stringer("entity", id))
			continue
		}
		if w.Has(id, component.CName) {
			env.Log.Addf("%s is dead", nameOf(w, id))
		}
		w.Delete(id)
	}
}
