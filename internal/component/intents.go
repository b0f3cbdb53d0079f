package component

import (
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamemap"
)

// Intents are written by input translation or AI and consumed, then cleared,
// by exactly one system pass.
const (
	CWantsToMelee      ecs.ComponentType = 12
	CWantsToPickupItem ecs.ComponentType = 13
	CWantsToUseItem    ecs.ComponentType = 14
	CWantsToDropItem   ecs.ComponentType = 15
)

type WantsToMelee struct {
	Target ecs.EntityID `json:"target"`
}

func (WantsToMelee) Type() ecs.ComponentType { return CWantsToMelee }

type WantsToPickupItem struct {
	CollectedBy ecs.EntityID `json:"collected_by"`
	Item        ecs.EntityID `json:"item"`
}

func (WantsToPickupItem) Type() ecs.ComponentType { return CWantsToPickupItem }

// WantsToUseItem with a nil Target applies the item to its user.
type WantsToUseItem struct {
	Item   ecs.EntityID   `json:"item"`
	Target *gamemap.Point `json:"target,omitempty"`
}

func (WantsToUseItem) Type() ecs.ComponentType { return CWantsToUseItem }

type WantsToDropItem struct {
	Item ecs.EntityID `json:"item"`
}

func (WantsToDropItem) Type() ecs.ComponentType { return CWantsToDropItem }
