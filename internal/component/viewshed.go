package component

import (
	"slices"

	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamemap"
)

const CViewshed ecs.ComponentType = 9

// Viewshed is the set of tiles an entity can currently see. Dirty viewsheds
// are recomputed by the visibility system.
type Viewshed struct {
	VisibleTiles []gamemap.Point `json:"visible"`
	Range        int             `json:"range"`
	Dirty        bool            `json:"dirty"`
}

func (Viewshed) Type() ecs.ComponentType { return CViewshed }

// Sees reports whether p is among the visible tiles.
func (v Viewshed) Sees(p gamemap.Point) bool {
	return slices.Contains(v.VisibleTiles, p)
}
