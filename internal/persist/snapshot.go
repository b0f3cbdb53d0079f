// Package persist saves and restores a whole game: the entity store with
// its slot generations, the map, the turn state and the message log.
package persist

import (
	"fmt"
	"time"

	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamemap"

	"github.com/google/uuid"
)

// Version is the snapshot format version written by this build.
const Version = 1

type Snapshot struct {
	Version int       `json:"version"`
	RunID   uuid.UUID `json:"run_id"`
	SavedAt time.Time `json:"saved_at"`
	Seed    int64     `json:"seed"`
	Depth   int       `json:"depth"`

	Player ecs.EntityID `json:"player"`
	State  State        `json:"state"`
	Log    []string     `json:"log"`
	Map    *gamemap.Map `json:"map"`

	// Generations holds one entry per entity slot so restored handles keep
	// their identity. Free is the reclaimed slot list in reuse order, so new
	// entities after a reload get the handles they would have got anyway.
	Generations []uint32 `json:"generations"`
	Free        []uint32 `json:"free"`
	Entities    []Entity `json:"entities"`
}

// State records the turn state a game was saved in.
type State struct {
	Kind  string       `json:"kind"`
	Range int          `json:"range,omitempty"`
	Item  ecs.EntityID `json:"item,omitempty"`
}

// Entity is one live entity and every component it carries.
type Entity struct {
	ID ecs.EntityID `json:"id"`

	Position        *component.Position          `json:"position,omitempty"`
	Renderable      *component.Renderable        `json:"renderable,omitempty"`
	Player          *component.Player            `json:"player,omitempty"`
	Monster         *component.Monster           `json:"monster,omitempty"`
	BlocksTile      *component.BlocksTile        `json:"blocks_tile,omitempty"`
	Item            *component.Item              `json:"item,omitempty"`
	Consumable      *component.Consumable        `json:"consumable,omitempty"`
	Name            *component.Name              `json:"name,omitempty"`
	Viewshed        *component.Viewshed          `json:"viewshed,omitempty"`
	CombatStats     *component.CombatStats       `json:"combat_stats,omitempty"`
	SufferDamage    *component.SufferDamage      `json:"suffer_damage,omitempty"`
	WantsToMelee    *component.WantsToMelee      `json:"wants_to_melee,omitempty"`
	WantsToPickup   *component.WantsToPickupItem `json:"wants_to_pickup,omitempty"`
	WantsToUseItem  *component.WantsToUseItem    `json:"wants_to_use_item,omitempty"`
	WantsToDropItem *component.WantsToDropItem   `json:"wants_to_drop_item,omitempty"`
	InBackpack      *component.InBackpack        `json:"in_backpack,omitempty"`
	ProvidesHealing *component.ProvidesHealing   `json:"provides_healing,omitempty"`
	Ranged          *component.Ranged            `json:"ranged,omitempty"`
	InflictsDamage  *component.InflictsDamage    `json:"inflicts_damage,omitempty"`
	AreaOfEffect    *component.AreaOfEffect      `json:"area_of_effect,omitempty"`
	Confusion       *component.Confusion         `json:"confusion,omitempty"`
}

// CaptureEntities records every live entity of w in slot order.
func CaptureEntities(w *ecs.World) ([]Entity, error) {
	ids := w.Entities()
	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		e := Entity{ID: id}
		for _, c := range w.Components(id) {
			switch c := c.(type) {
			case component.Position:
				e.Position = &c
			case component.Renderable:
				e.Renderable = &c
			case component.Player:
				e.Player = &c
			case component.Monster:
				e.Monster = &c
			case component.BlocksTile:
				e.BlocksTile = &c
			case component.Item:
				e.Item = &c
			case component.Consumable:
				e.Consumable = &c
			case component.Name:
				e.Name = &c
			case component.Viewshed:
				e.Viewshed = &c
			case component.CombatStats:
				e.CombatStats = &c
			case component.SufferDamage:
				e.SufferDamage = &c
			case component.WantsToMelee:
				e.WantsToMelee = &c
			case component.WantsToPickupItem:
				e.WantsToPickup = &c
			case component.WantsToUseItem:
				e.WantsToUseItem = &c
			case component.WantsToDropItem:
				e.WantsToDropItem = &c
			case component.InBackpack:
				e.InBackpack = &c
			case component.ProvidesHealing:
				e.ProvidesHealing = &c
			case component.Ranged:
				e.Ranged = &c
			case component.InflictsDamage:
				e.InflictsDamage = &c
			case component.AreaOfEffect:
				e.AreaOfEffect = &c
			case component.Confusion:
				e.Confusion = &c
			default:
				return nil, fmt.Errorf("persist: entity %v: component type %d is not serializable", id, c.Type())
			}
		}
		out = append(out, e)
	}
	return out, nil
}

// Components returns the entity's components in type order.
func (e Entity) Components() []ecs.Component {
	var out []ecs.Component
	add := func(ok bool, c ecs.Component) {
		if ok {
			out = append(out, c)
		}
	}
	add(e.Position != nil, deref(e.Position))
	add(e.Renderable != nil, deref(e.Renderable))
	add(e.Player != nil, deref(e.Player))
	add(e.Monster != nil, deref(e.Monster))
	add(e.BlocksTile != nil, deref(e.BlocksTile))
	add(e.Item != nil, deref(e.Item))
	add(e.Consumable != nil, deref(e.Consumable))
	add(e.Name != nil, deref(e.Name))
	add(e.Viewshed != nil, deref(e.Viewshed))
	add(e.CombatStats != nil, deref(e.CombatStats))
	add(e.SufferDamage != nil, deref(e.SufferDamage))
	add(e.WantsToMelee != nil, deref(e.WantsToMelee))
	add(e.WantsToPickup != nil, deref(e.WantsToPickup))
	add(e.WantsToUseItem != nil, deref(e.WantsToUseItem))
	add(e.WantsToDropItem != nil, deref(e.WantsToDropItem))
	add(e.InBackpack != nil, deref(e.InBackpack))
	add(e.ProvidesHealing != nil, deref(e.ProvidesHealing))
	add(e.Ranged != nil, deref(e.Ranged))
	add(e.InflictsDamage != nil, deref(e.InflictsDamage))
	add(e.AreaOfEffect != nil, deref(e.AreaOfEffect))
	add(e.Confusion != nil, deref(e.Confusion))
	return out
}

// deref yields the zero value for nil so Components can build its argument
// list unconditionally.
func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// RestoreWorld rebuilds the entity store recorded in s.
func RestoreWorld(s *Snapshot) (*ecs.World, error) {
	ids := make([]ecs.EntityID, len(s.Entities))
	for i, e := range s.Entities {
		ids[i] = e.ID
	}
	w, err := ecs.Restore(s.Generations, ids, s.Free)
	if err != nil {
		return nil, fmt.Errorf("persist: %w", err)
	}
	for _, e := range s.Entities {
		for _, c := range e.Components() {
			w.Add(e.ID, c)
		}
	}
	if !w.Has(s.Player, component.CPlayer) {
		return nil, fmt.Errorf("persist: player %v missing from snapshot", s.Player)
	}
	return w, nil
}
