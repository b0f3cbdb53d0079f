package generate

import (
	"fmt"
	"math/rand"

	"dungeoncrawl/internal/gamemap"
)

// Layout selects the room placement algorithm.
type Layout uint8

const (
	LayoutRooms Layout = iota // rejection-sampled rooms chained by corridors
	LayoutBSP                 // binary space partition
)

// ParseLayout maps a config name to a Layout.
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "", "rooms":
		return LayoutRooms, nil
	case "bsp":
		return LayoutBSP, nil
	}
	return 0, fmt.Errorf("unknown layout %q", s)
}

// Config drives procedural generation for one level. Room sizes are drawn
// from the inclusive range [MinRoomSize, MaxRoomSize].
type Config struct {
	Width, Height int
	MaxRooms      int
	MinRoomSize   int
	MaxRoomSize   int
	Layout        Layout
}

// Generate builds a level at the given depth. The same config, seed and
// depth always yield the same map. The player starts at Rooms[0].Center().
func Generate(cfg Config, depth int, rng *rand.Rand) *gamemap.Map {
	var m *gamemap.Map
	switch cfg.Layout {
	case LayoutBSP:
		m = bsp(cfg, depth, rng)
	default:
		m = roomsAndCorridors(cfg, depth, rng)
	}
	placeStairs(m)
	m.ResetIndex()
	return m
}

// placeStairs puts the way down in the middle of the last room. A one-room
// level has no stairs.
func placeStairs(m *gamemap.Map) {
	if len(m.Rooms) < 2 {
		return
	}
	c := m.Rooms[len(m.Rooms)-1].Center()
	m.Set(c.X, c.Y, gamemap.TileDownStairs)
}

func roomSize(cfg Config, rng *rand.Rand) int {
	if cfg.MaxRoomSize <= cfg.MinRoomSize {
		return cfg.MinRoomSize
	}
	return cfg.MinRoomSize + rng.Intn(cfg.MaxRoomSize-cfg.MinRoomSize+1)
}

// applyRoom carves the interior of r to floor.
func applyRoom(m *gamemap.Map, r gamemap.Rect) {
	for y := r.Y1 + 1; y <= r.Y2; y++ {
		for x := r.X1 + 1; x <= r.X2; x++ {
			if m.InBounds(x, y) {
				m.Set(x, y, gamemap.TileFloor)
			}
		}
	}
}
