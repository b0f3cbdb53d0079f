package component

import "dungeoncrawl/internal/ecs"

const (
	CCombatStats  ecs.ComponentType = 10
	CSufferDamage ecs.ComponentType = 11
)

type CombatStats struct {
	MaxHP   int `json:"max_hp"`
	HP      int `json:"hp"`
	Defense int `json:"defense"`
	Power   int `json:"power"`
}

func (CombatStats) Type() ecs.ComponentType { return CCombatStats }

// SufferDamage collects every hit an entity takes during one tick. The damage
// system folds the total into HP and clears it.
type SufferDamage struct {
	Amounts []int `json:"amounts"`
}

func (SufferDamage) Type() ecs.ComponentType { return CSufferDamage }

// Total sums all pending hits.
func (s SufferDamage) Total() int {
	total := 0
	for _, a := range s.Amounts {
		total += a
	}
	return total
}
