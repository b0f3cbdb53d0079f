package generate

import (
	"math/rand"

	"dungeoncrawl/internal/gamemap"
)

// roomsAndCorridors places rooms at random until MaxRooms fit without
// overlapping, linking each new room to the previous one. Placement retries
// forever; config validation guarantees a room can always fit.
func roomsAndCorridors(cfg Config, depth int, rng *rand.Rand) *gamemap.Map {
	m := gamemap.New(cfg.Width, cfg.Height, depth)

	for len(m.Rooms) < cfg.MaxRooms {
		w := roomSize(cfg, rng)
		h := roomSize(cfg, rng)
		x := rng.Intn(cfg.Width - w - 1)
		y := rng.Intn(cfg.Height - h - 1)
		room := gamemap.NewRect(x, y, w, h)

		overlaps := false
		for _, other := range m.Rooms {
			if room.Intersects(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		applyRoom(m, room)
		if n := len(m.Rooms); n > 0 {
			prev := m.Rooms[n-1].Center()
			next := room.Center()
			carveL(m, prev, next, rng)
		}
		m.Rooms = append(m.Rooms, room)
	}
	return m
}
