package system

import (
	"testing"

	"dungeoncrawl/internal/component"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickupAndDropRoundTrip(t *testing.T) {
	env := newEnv(3, 3)
	potion := addItem(env, "Health Potion", 3, 3)

	env.World.Add(env.Player, component.WantsToPickupItem{CollectedBy: env.Player, Item: potion})
	Pickup(env)

	assert.False(t, env.World.Has(potion, component.CPosition))
	bp := env.World.Get(potion, component.CInBackpack)
	require.NotNil(t, bp)
	assert.Equal(t, env.Player, bp.(component.InBackpack).Owner)
	assert.Equal(t, "You pick up the Health Potion.", env.Log.Last())
	assert.Empty(t, env.World.Query(component.CWantsToPickupItem))

	// Walk elsewhere, then drop.
	env.World.Add(env.Player, component.Position{X: 7, Y: 8})
	env.World.Add(env.Player, component.WantsToDropItem{Item: potion})
	ItemDrop(env)

	assert.False(t, env.World.Has(potion, component.CInBackpack))
	assert.Equal(t, component.Position{X: 7, Y: 8}, position(env, potion))
	assert.Equal(t, "You drop the Health Potion.", env.Log.Last())
	assert.Empty(t, env.World.Query(component.CWantsToDropItem))
}

func TestPickupByMonsterIsSilent(t *testing.T) {
	env := newEnv(3, 3)
	orc := addMonster(env, "Orc", 5, 5)
	potion := addItem(env, "Health Potion", 5, 5)
	env.World.Add(orc, component.WantsToPickupItem{CollectedBy: orc, Item: potion})

	Pickup(env)

	assert.Equal(t, orc, env.World.Get(potion, component.CInBackpack).(component.InBackpack).Owner)
	assert.Empty(t, env.Log.Entries())
}

func TestPickupOfVanishedItemIsNoop(t *testing.T) {
	env := newEnv(3, 3)
	potion := addItem(env, "Health Potion", 3, 3)
	env.World.Delete(potion)
	env.World.Add(env.Player, component.WantsToPickupItem{CollectedBy: env.Player, Item: potion})

	Pickup(env)
	assert.Empty(t, env.Log.Entries())
	assert.Empty(t, env.World.Query(component.CWantsToPickupItem))
}
