package system

import (
	"testing"

	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/gamemap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibilityRecomputesDirty(t *testing.T) {
	env := newEnv(5, 5)
	Visibility(env)

	vs := env.World.Get(env.Player, component.CViewshed).(component.Viewshed)
	assert.False(t, vs.Dirty)
	assert.True(t, vs.Sees(gamemap.Point{X: 5, Y: 5}))
	assert.True(t, vs.Sees(gamemap.Point{X: 8, Y: 5}))
	assert.True(t, env.Map.Visible[env.Map.Index(8, 5)])
	assert.True(t, env.Map.Revealed[env.Map.Index(8, 5)])
}

func TestVisibilityIdempotentWhenClean(t *testing.T) {
	env := newEnv(5, 5)
	Visibility(env)
	before := env.World.Get(env.Player, component.CViewshed).(component.Viewshed)
	visible := append([]bool(nil), env.Map.Visible...)

	// Moving the position without marking dirty must not trigger a recompute.
	env.World.Add(env.Player, component.Position{X: 15, Y: 15})
	Visibility(env)

	after := env.World.Get(env.Player, component.CViewshed).(component.Viewshed)
	assert.Equal(t, before, after)
	assert.Equal(t, visible, env.Map.Visible)
}

func TestVisibilityRevealedPersists(t *testing.T) {
	env := newEnv(2, 2)
	Visibility(env)
	require.True(t, env.Map.Visible[env.Map.Index(3, 3)])

	env.World.Add(env.Player, component.Position{X: 17, Y: 17})
	env.World.Add(env.Player, component.Viewshed{Range: 2, Dirty: true})
	Visibility(env)

	assert.False(t, env.Map.Visible[env.Map.Index(3, 3)], "old tile should no longer be visible")
	assert.True(t, env.Map.Revealed[env.Map.Index(3, 3)], "old tile stays revealed")
	assert.True(t, env.Map.Visible[env.Map.Index(17, 17)])
}

func TestVisibilityMonsterDoesNotTouchMapFlags(t *testing.T) {
	env := newEnv(2, 2)
	env.World.Add(env.Player, component.Viewshed{Range: 1})
	orc := addMonster(env, "Orc", 15, 15)
	Visibility(env)

	vs := env.World.Get(orc, component.CViewshed).(component.Viewshed)
	assert.NotEmpty(t, vs.VisibleTiles)
	assert.False(t, env.Map.Revealed[env.Map.Index(15, 15)])
}
