package component

import "dungeoncrawl/internal/ecs"

const (
	CInBackpack      ecs.ComponentType = 16
	CProvidesHealing ecs.ComponentType = 17
	CRanged          ecs.ComponentType = 18
	CInflictsDamage  ecs.ComponentType = 19
	CAreaOfEffect    ecs.ComponentType = 20
)

// InBackpack replaces Position while an item is carried. The owner is a plain
// handle and may outlive or predecease the item.
type InBackpack struct {
	Owner ecs.EntityID `json:"owner"`
}

func (InBackpack) Type() ecs.ComponentType { return CInBackpack }

type ProvidesHealing struct {
	Amount int `json:"amount"`
}

func (ProvidesHealing) Type() ecs.ComponentType { return CProvidesHealing }

// Ranged items ask for a target point within Range tiles.
type Ranged struct {
	Range int `json:"range"`
}

func (Ranged) Type() ecs.ComponentType { return CRanged }

type InflictsDamage struct {
	Amount int `json:"amount"`
}

func (InflictsDamage) Type() ecs.ComponentType { return CInflictsDamage }

type AreaOfEffect struct {
	Radius int `json:"radius"`
}

func (AreaOfEffect) Type() ecs.ComponentType { return CAreaOfEffect }
