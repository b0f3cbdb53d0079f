package game

import (
	"context"
	"testing"

	"dungeoncrawl/assets"
	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/config"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/factory"
	"dungeoncrawl/internal/gamelog"
	"dungeoncrawl/internal/gamemap"

	"github.com/stretchr/testify/require"
)

// arena returns an engine waiting for input on a 20×20 walled room with
// the player at (5, 5) and viewsheds already computed.
func arena(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := New(context.Background(), config.Default(), opts...)
	require.NoError(t, err)

	m := gamemap.New(20, 20, 1)
	for y := 1; y < 19; y++ {
		for x := 1; x < 19; x++ {
			m.Set(x, y, gamemap.TileFloor)
		}
	}
	m.Rooms = []gamemap.Rect{gamemap.NewRect(0, 0, 18, 18)}
	m.ResetIndex()

	e.world = ecs.NewWorld()
	e.gmap = m
	e.log = gamelog.New()
	e.depth = 1
	e.seed = 7
	e.player = factory.NewPlayer(e.world, gamemap.Point{X: 5, Y: 5}, e.cfg.Tuning())
	e.state = AwaitingInput{}
	return e
}

// settle runs one pass so viewsheds and the tile index are current.
func settle(e *Engine) { e.runSystems(false) }

func orc(e *Engine, x, y int) ecs.EntityID {
	return factory.NewMonster(e.world, assets.Monsters[0], gamemap.Point{X: x, Y: y}, e.cfg.Tuning())
}

func item(t *testing.T, e *Engine, name string, x, y int) ecs.EntityID {
	t.Helper()
	def, ok := assets.ItemByName(name)
	require.True(t, ok, name)
	return factory.NewItem(e.world, def, gamemap.Point{X: x, Y: y})
}

// carried puts a new item straight into the player's backpack.
func carried(t *testing.T, e *Engine, name string) ecs.EntityID {
	t.Helper()
	id := item(t, e, name, 0, 0)
	e.world.Remove(id, component.CPosition)
	e.world.Add(id, component.InBackpack{Owner: e.player})
	return id
}

func pt(x, y int) gamemap.Point { return gamemap.Point{X: x, Y: y} }

func hp(e *Engine, id ecs.EntityID) int {
	return e.world.Get(id, component.CCombatStats).(component.CombatStats).HP
}

func setHP(e *Engine, id ecs.EntityID, v int) {
	s := e.world.Get(id, component.CCombatStats).(component.CombatStats)
	s.HP = v
	e.world.Add(id, s)
}

func playerAt(e *Engine) gamemap.Point {
	return e.world.Get(e.player, component.CPosition).(component.Position).Point()
}

func tick(t *testing.T, e *Engine, cmd Command) RunState {
	t.Helper()
	s, err := e.Tick(context.Background(), cmd)
	require.NoError(t, err)
	return s
}

func advance(t *testing.T, e *Engine, cmd Command) RunState {
	t.Helper()
	s, err := e.Advance(context.Background(), cmd)
	require.NoError(t, err)
	return s
}
