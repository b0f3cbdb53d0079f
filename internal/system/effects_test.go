package system

import (
	"testing"

	"dungeoncrawl/internal/component"

	"github.com/stretchr/testify/assert"
)

func TestTickConfusionCountdown(t *testing.T) {
	env := newEnv(3, 3)
	orc := addMonster(env, "Orc", 5, 5)
	Confuse(env.World, orc, 3)

	// 3 -> 2, 2 -> 1: still confused. 1 -> 0: cured and acts.
	assert.False(t, TickConfusion(env, orc))
	assert.False(t, TickConfusion(env, orc))
	assert.True(t, TickConfusion(env, orc))
	assert.False(t, env.World.Has(orc, component.CConfusion))
	assert.True(t, TickConfusion(env, orc), "unconfused entities always act")
}

func TestConfuseOverwrites(t *testing.T) {
	env := newEnv(3, 3)
	Confuse(env.World, env.Player, 2)
	Confuse(env.World, env.Player, 5)
	assert.Equal(t, 5, env.World.Get(env.Player, component.CConfusion).(component.Confusion).Turns)
}
