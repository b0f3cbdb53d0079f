package component

import (
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamemap"
)

const CPosition ecs.ComponentType = 1

// Position places an entity on the map. Items in a backpack have none.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (Position) Type() ecs.ComponentType { return CPosition }

// Point converts the position to a map point.
func (p Position) Point() gamemap.Point { return gamemap.Point{X: p.X, Y: p.Y} }
