package system

import (
	"dungeoncrawl/internal/component"
)

// Pickup moves every requested item from the map into its collector's
// backpack.
func Pickup(env *Env) {
	w := env.World
	for _, id := range w.Query(component.CWantsToPickupItem) {
		intent := w.Get(id, component.CWantsToPickupItem).(component.WantsToPickupItem)
		if !w.Alive(intent.Item) || !w.Has(intent.Item, component.CPosition) {
			continue
		}
		w.Remove(intent.Item, component.CPosition)
		w.Add(intent.Item, component.InBackpack{Owner: intent.CollectedBy})
		if intent.CollectedBy == env.Player {
			env.Log.Addf("You pick up the %s.", nameOf(w, intent.Item))
		}
	}
	w.Clear(component.CWantsToPickupItem)
}

// ItemDrop places every requested item at its dropper's feet.
func ItemDrop(env *Env) {
	w := env.World
	for _, id := range w.Query(component.CWantsToDropItem, component.CPosition) {
		intent := w.Get(id, component.CWantsToDropItem).(component.WantsToDropItem)
		if !w.Alive(intent.Item) {
			continue
		}
		pos := w.Get(id, component.CPosition).(component.Position)
		w.Remove(intent.Item, component.CInBackpack)
		w.Add(intent.Item, pos)
		if id == env.Player {
			env.Log.Addf("You drop the %s.", nameOf(w, intent.Item))
		}
	}
	w.Clear(component.CWantsToDropItem)
}
