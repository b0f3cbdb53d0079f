package generate

import (
	"math/rand"

	"dungeoncrawl/internal/gamemap"
)

// carveL digs an L-shaped tunnel from a to b. A coin flip picks whether the
// horizontal or the vertical leg comes first.
func carveL(m *gamemap.Map, a, b gamemap.Point, rng *rand.Rand) {
	if rng.Intn(2) == 1 {
		carveH(m, a.X, b.X, a.Y)
		carveV(m, a.Y, b.Y, b.X)
	} else {
		carveV(m, a.Y, b.Y, a.X)
		carveH(m, a.X, b.X, b.Y)
	}
}

func carveH(m *gamemap.Map, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if m.InBounds(x, y) {
			m.Set(x, y, gamemap.TileFloor)
		}
	}
}

func carveV(m *gamemap.Map, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if m.InBounds(x, y) {
			m.Set(x, y, gamemap.TileFloor)
		}
	}
}
