package component

import "dungeoncrawl/internal/ecs"

const (
	CPlayer     ecs.ComponentType = 3
	CMonster    ecs.ComponentType = 4
	CBlocksTile ecs.ComponentType = 5
	CItem       ecs.ComponentType = 6
	CConsumable ecs.ComponentType = 7
	CName       ecs.ComponentType = 8
)

// Player marks the player-controlled entity.
type Player struct{}

func (Player) Type() ecs.ComponentType { return CPlayer }

// Monster marks an AI-driven hostile.
type Monster struct{}

func (Monster) Type() ecs.ComponentType { return CMonster }

// BlocksTile marks an entity that occupies its tile (blocks movement).
type BlocksTile struct{}

func (BlocksTile) Type() ecs.ComponentType { return CBlocksTile }

// Item marks something that can be picked up.
type Item struct{}

func (Item) Type() ecs.ComponentType { return CItem }

// Consumable items are deleted after one use.
type Consumable struct{}

func (Consumable) Type() ecs.ComponentType { return CConsumable }

type Name struct {
	Name string `json:"name"`
}

func (Name) Type() ecs.ComponentType { return CName }
