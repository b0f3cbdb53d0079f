package component

import "dungeoncrawl/internal/ecs"

const CConfusion ecs.ComponentType = 21

// Confusion prevents its holder from acting until Turns runs out. On an item
// it describes the confusion the item inflicts.
type Confusion struct {
	Turns int `json:"turns"`
}

func (Confusion) Type() ecs.ComponentType { return CConfusion }
