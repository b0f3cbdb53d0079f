package system

import (
	"testing"

	"dungeoncrawl/internal/component"

	"github.com/stretchr/testify/assert"
)

func TestRunSystemsMonstersOnlyActOnTheirTurn(t *testing.T) {
	env := newEnv(3, 3)
	orc := addMonster(env, "Orc", 8, 3)

	RunSystems(env, false)
	assert.Equal(t, component.Position{X: 8, Y: 3}, position(env, orc))

	RunSystems(env, true)
	assert.Equal(t, component.Position{X: 7, Y: 3}, position(env, orc))
}

func TestRunSystemsKillsNextPass(t *testing.T) {
	env := newEnv(3, 3)
	orc := addMonster(env, "Orc", 4, 3)
	env.World.Add(orc, component.CombatStats{MaxHP: 16, HP: 3, Defense: 0, Power: 3})
	env.World.Add(env.Player, component.WantsToMelee{Target: orc})

	RunSystems(env, false)
	assert.Equal(t, -2, stats(env, orc).HP)
	assert.True(t, env.World.Alive(orc), "killed this pass, swept next pass")

	RunSystems(env, false)
	assert.False(t, env.World.Alive(orc))
	assert.Empty(t, env.Map.TileContent[env.Map.Index(4, 3)])
	assert.Equal(t, []string{"Orc is dead", "Player hits Orc, for 5 hp."}, env.Log.Recent(2))
}

func TestRunSystemsWithoutMapPanics(t *testing.T) {
	env := newEnv(3, 3)
	env.Map = nil
	assert.Panics(t, func() { RunSystems(env, false) })
}

func TestSweepClearsTheDeadAndTheirTiles(t *testing.T) {
	env := newEnv(3, 3)
	orc := addMonster(env, "Orc", 4, 3)
	MapIndexing(env)
	env.World.Add(orc, component.CombatStats{MaxHP: 16, HP: 0, Defense: 1, Power: 3})

	Sweep(env)
	assert.False(t, env.World.Alive(orc))
	assert.Zero(t, env.World.Pending())
	assert.Empty(t, env.Map.TileContent[env.Map.Index(4, 3)])
	assert.False(t, env.Map.Blocked[env.Map.Index(4, 3)])
	assert.Equal(t, "Orc is dead", env.Log.Last())
}
