package system

import (
	"testing"

	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamemap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// prepare runs the passes that feed the AI.
func prepare(env *Env) {
	MapIndexing(env)
	Visibility(env)
}

func TestMonsterAIAttacksAdjacentPlayer(t *testing.T) {
	env := newEnv(5, 5)
	orc := addMonster(env, "Orc", 6, 6)
	prepare(env)

	MonsterAI(env)

	intent := env.World.Get(orc, component.CWantsToMelee)
	require.NotNil(t, intent)
	assert.Equal(t, env.Player, intent.(component.WantsToMelee).Target)
	assert.Equal(t, component.Position{X: 6, Y: 6}, position(env, orc), "attackers do not move")
}

func TestMonsterAIStepsTowardPlayer(t *testing.T) {
	env := newEnv(3, 3)
	orc := addMonster(env, "Orc", 8, 3)
	prepare(env)

	MonsterAI(env)

	pos := position(env, orc)
	assert.Equal(t, component.Position{X: 7, Y: 3}, pos)
	assert.False(t, env.Map.Blocked[env.Map.Index(8, 3)], "old tile unblocked")
	assert.True(t, env.Map.Blocked[env.Map.Index(7, 3)], "new tile blocked")
	assert.True(t, env.World.Get(orc, component.CViewshed).(component.Viewshed).Dirty)
	assert.False(t, env.World.Has(orc, component.CWantsToMelee))
}

func TestMonsterAIAdjacentAttackDoesNotStopOthers(t *testing.T) {
	env := newEnv(5, 5)
	addMonster(env, "Orc", 5, 6)
	far := addMonster(env, "Goblin", 10, 5)
	prepare(env)

	MonsterAI(env)
	assert.Equal(t, component.Position{X: 9, Y: 5}, position(env, far))
}

func TestMonsterAIIgnoresUnseenPlayer(t *testing.T) {
	env := newEnv(2, 2)
	for y := 1; y < 19; y++ {
		env.Map.Set(10, y, gamemap.TileWall)
	}
	orc := addMonster(env, "Orc", 15, 2)
	prepare(env)

	MonsterAI(env)
	assert.Equal(t, component.Position{X: 15, Y: 2}, position(env, orc))
}

func TestMonsterAIConfusedSkips(t *testing.T) {
	env := newEnv(5, 5)
	orc := addMonster(env, "Orc", 6, 5)
	Confuse(env.World, orc, 2)
	prepare(env)

	MonsterAI(env)
	assert.False(t, env.World.Has(orc, component.CWantsToMelee), "confused monster loses its turn")
	assert.Equal(t, 1, env.World.Get(orc, component.CConfusion).(component.Confusion).Turns)

	MonsterAI(env)
	assert.False(t, env.World.Has(orc, component.CConfusion))
	assert.True(t, env.World.Has(orc, component.CWantsToMelee), "cured monster acts the same tick")
}

func TestMonsterAIBlockedPathStays(t *testing.T) {
	env := newEnv(2, 2)
	// Seal the player into the corner; the orc sees over nothing but walls.
	for _, p := range [][2]int{{1, 3}, {2, 3}, {3, 3}, {3, 2}, {3, 1}} {
		env.Map.Set(p[0], p[1], gamemap.TileWall)
	}
	orc := addMonster(env, "Orc", 6, 6)
	prepare(env)
	// Force line of sight so only pathing can fail.
	vs := env.World.Get(orc, component.CViewshed).(component.Viewshed)
	vs.VisibleTiles = append(vs.VisibleTiles, position(env, env.Player).Point())
	env.World.Add(orc, vs)

	MonsterAI(env)
	assert.Equal(t, component.Position{X: 6, Y: 6}, position(env, orc))
}

func TestMonsterAIDeadMonsterDoesNotAct(t *testing.T) {
	env := newEnv(5, 5)
	walker := addMonster(env, "Orc", 9, 5)
	biter := addMonster(env, "Goblin", 6, 5)
	prepare(env)
	for _, id := range []ecs.EntityID{walker, biter} {
		s := stats(env, id)
		s.HP = -4
		env.World.Add(id, s)
	}

	MonsterAI(env)
	assert.Equal(t, component.Position{X: 9, Y: 5}, position(env, walker))
	assert.False(t, env.World.Has(biter, component.CWantsToMelee))
}
