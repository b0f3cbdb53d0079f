package factory

import (
	"math/rand"

	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamemap"
)

// SpawnRooms fills every room except the first, where the player starts.
func SpawnRooms(w *ecs.World, m *gamemap.Map, t Tuning, rng *rand.Rand) []ecs.EntityID {
	var out []ecs.EntityID
	for _, room := range m.Rooms[min(1, len(m.Rooms)):] {
		out = append(out, SpawnRoom(w, m, room, t, rng)...)
	}
	return out
}

// SpawnRoom places 0..MaxMonsters monsters on distinct floor tiles and
// 0..MaxItems items on distinct interior tiles of room.
func SpawnRoom(w *ecs.World, m *gamemap.Map, room gamemap.Rect, t Tuning, rng *rand.Rand) []ecs.EntityID {
	floor := func(p gamemap.Point) bool { return m.TileAt(p.X, p.Y) == gamemap.TileFloor }
	monsters := spawnPoints(room, rng.Intn(t.MaxMonsters+1), rng, floor)
	items := spawnPoints(room, rng.Intn(t.MaxItems+1), rng, nil)

	var out []ecs.EntityID
	for _, p := range monsters {
		out = append(out, RandomMonster(w, p, t, rng))
	}
	for _, p := range items {
		out = append(out, RandomItem(w, p, rng))
	}
	return out
}

// spawnPoints picks n distinct interior points of room accepted by ok,
// fewer when the room cannot hold that many.
func spawnPoints(room gamemap.Rect, n int, rng *rand.Rand, ok func(gamemap.Point) bool) []gamemap.Point {
	w, h := room.X2-room.X1, room.Y2-room.Y1
	if w < 1 || h < 1 {
		return nil
	}
	capacity := 0
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			if ok == nil || ok(gamemap.Point{X: x, Y: y}) {
				capacity++
			}
		}
	}
	n = min(n, capacity)
	seen := make(map[gamemap.Point]bool, n)
	points := make([]gamemap.Point, 0, n)
	for len(points) < n {
		p := gamemap.Point{X: room.X1 + 1 + rng.Intn(w), Y: room.Y1 + 1 + rng.Intn(h)}
		if seen[p] || (ok != nil && !ok(p)) {
			continue
		}
		seen[p] = true
		points = append(points, p)
	}
	return points
}
