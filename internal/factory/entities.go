// Package factory spawns the player, monsters and items.
package factory

import (
	"math/rand"

	"dungeoncrawl/assets"
	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// Tuning holds the stat blocks and spawn limits.
type Tuning struct {
	Player            component.CombatStats
	Monster           component.CombatStats
	SightRange        int
	MonsterSightRange int
	MaxMonsters       int
	MaxItems          int
}

// DefaultTuning returns the standard stat blocks.
func DefaultTuning() Tuning {
	return Tuning{
		Player:            component.CombatStats{MaxHP: 30, HP: 30, Defense: 2, Power: 5},
		Monster:           component.CombatStats{MaxHP: 16, HP: 16, Defense: 1, Power: 3},
		SightRange:        8,
		MonsterSightRange: 8,
		MaxMonsters:       4,
		MaxItems:          2,
	}
}

// NewPlayer creates the player entity at p.
func NewPlayer(w *ecs.World, p gamemap.Point, t Tuning) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Player{})
	w.Add(id, component.Position{X: p.X, Y: p.Y})
	w.Add(id, component.Renderable{
		Glyph:       assets.GlyphPlayer,
		FGColor:     tcell.ColorYellow,
		BGColor:     tcell.ColorDefault,
		RenderOrder: 100,
	})
	w.Add(id, component.Name{Name: "Player"})
	w.Add(id, component.Viewshed{Range: t.SightRange, Dirty: true})
	w.Add(id, t.Player)
	return id
}

// NewMonster creates a monster from def at p.
func NewMonster(w *ecs.World, def assets.MonsterDef, p gamemap.Point, t Tuning) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Monster{})
	w.Add(id, component.Position{X: p.X, Y: p.Y})
	w.Add(id, component.Renderable{
		Glyph:       def.Glyph,
		FGColor:     def.Color,
		BGColor:     tcell.ColorDefault,
		RenderOrder: 10,
	})
	w.Add(id, component.Name{Name: def.Name})
	w.Add(id, component.Viewshed{Range: t.MonsterSightRange, Dirty: true})
	w.Add(id, component.BlocksTile{})
	w.Add(id, t.Monster)
	return id
}

// NewItem creates a consumable item from def at p.
func NewItem(w *ecs.World, def assets.ItemDef, p gamemap.Point) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Item{})
	w.Add(id, component.Position{X: p.X, Y: p.Y})
	w.Add(id, component.Renderable{
		Glyph:       def.Glyph,
		FGColor:     def.Color,
		BGColor:     tcell.ColorDefault,
		RenderOrder: 2,
	})
	w.Add(id, component.Name{Name: def.Name})
	w.Add(id, component.Consumable{})
	if def.Healing > 0 {
		w.Add(id, component.ProvidesHealing{Amount: def.Healing})
	}
	if def.Range > 0 {
		w.Add(id, component.Ranged{Range: def.Range})
	}
	if def.Damage > 0 {
		w.Add(id, component.InflictsDamage{Amount: def.Damage})
	}
	if def.Radius > 0 {
		w.Add(id, component.AreaOfEffect{Radius: def.Radius})
	}
	if def.ConfusionTurns > 0 {
		w.Add(id, component.Confusion{Turns: def.ConfusionTurns})
	}
	return id
}

// RandomMonster spawns a uniformly chosen monster at p.
func RandomMonster(w *ecs.World, p gamemap.Point, t Tuning, rng *rand.Rand) ecs.EntityID {
	return NewMonster(w, assets.Monsters[rng.Intn(len(assets.Monsters))], p, t)
}

// RandomItem spawns a uniformly chosen item at p.
func RandomItem(w *ecs.World, p gamemap.Point, rng *rand.Rand) ecs.EntityID {
	return NewItem(w, assets.Items[rng.Intn(len(assets.Items))], p)
}
