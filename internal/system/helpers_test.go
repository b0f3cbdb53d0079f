package system

import (
	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamelog"
	"dungeoncrawl/internal/gamemap"
)

// openMap creates a w×h map whose border is wall and interior is floor.
func openMap(w, h int) *gamemap.Map {
	m := gamemap.New(w, h, 1)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			m.Set(x, y, gamemap.TileFloor)
		}
	}
	m.ResetIndex()
	return m
}

// newEnv builds an Env on a 20×20 open map with a player at (px, py).
func newEnv(px, py int) *Env {
	w := ecs.NewWorld()
	player := w.CreateEntity()
	w.Add(player, component.Player{})
	w.Add(player, component.Name{Name: "Player"})
	w.Add(player, component.Position{X: px, Y: py})
	w.Add(player, component.Viewshed{Range: 8, Dirty: true})
	w.Add(player, component.CombatStats{MaxHP: 30, HP: 30, Defense: 2, Power: 5})
	return &Env{
		World:  w,
		Map:    openMap(20, 20),
		Log:    gamelog.New(),
		Player: player,
		Rules:  DefaultRules(),
	}
}

func addMonster(env *Env, name string, x, y int) ecs.EntityID {
	id := env.World.CreateEntity()
	env.World.Add(id, component.Monster{})
	env.World.Add(id, component.Name{Name: name})
	env.World.Add(id, component.Position{X: x, Y: y})
	env.World.Add(id, component.BlocksTile{})
	env.World.Add(id, component.Viewshed{Range: 8, Dirty: true})
	env.World.Add(id, component.CombatStats{MaxHP: 16, HP: 16, Defense: 1, Power: 3})
	return id
}

func addItem(env *Env, name string, x, y int, comps ...ecs.Component) ecs.EntityID {
	id := env.World.CreateEntity()
	env.World.Add(id, component.Item{})
	env.World.Add(id, component.Name{Name: name})
	env.World.Add(id, component.Position{X: x, Y: y})
	for _, c := range comps {
		env.World.Add(id, c)
	}
	return id
}

func stats(env *Env, id ecs.EntityID) component.CombatStats {
	return env.World.Get(id, component.CCombatStats).(component.CombatStats)
}

func position(env *Env, id ecs.EntityID) component.Position {
	return env.World.Get(id, component.CPosition).(component.Position)
}
