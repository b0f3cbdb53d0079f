package generate

import (
	"math/rand"

	"dungeoncrawl/internal/gamemap"
)

// bspLeaf is a node in the BSP tree.
type bspLeaf struct {
	X, Y, W, H  int
	left, right *bspLeaf
	room        *gamemap.Rect
}

func (l *bspLeaf) isLeaf() bool { return l.left == nil && l.right == nil }

// split divides the leaf into two children, returning false when either half
// would be too small to hold a room.
func (l *bspLeaf) split(minLeaf int, rng *rand.Rand) bool {
	// Horizontal when taller, vertical when wider, random when square.
	splitH := rng.Intn(2) == 0
	if l.W > l.H {
		splitH = false
	} else if l.H > l.W {
		splitH = true
	}

	size := l.W
	if splitH {
		size = l.H
	}
	if size < minLeaf*2 {
		return false
	}
	cut := minLeaf + rng.Intn(size-minLeaf*2+1)

	if splitH {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: l.W, H: cut}
		l.right = &bspLeaf{X: l.X, Y: l.Y + cut, W: l.W, H: l.H - cut}
	} else {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: cut, H: l.H}
		l.right = &bspLeaf{X: l.X + cut, Y: l.Y, W: l.W - cut, H: l.H}
	}
	return true
}

// createRooms places one room inside every terminal leaf, depth first.
func (l *bspLeaf) createRooms(m *gamemap.Map, cfg Config, rng *rand.Rand) {
	if !l.isLeaf() {
		l.left.createRooms(m, cfg, rng)
		l.right.createRooms(m, cfg, rng)
		return
	}
	// A room of size s occupies s+1 columns (x1..x2) and needs a wall beyond x2.
	w := min(roomSize(cfg, rng), l.W-2)
	h := min(roomSize(cfg, rng), l.H-2)
	if w < 1 || h < 1 {
		return
	}
	x := l.X + rng.Intn(l.W-w-1)
	y := l.Y + rng.Intn(l.H-h-1)
	room := gamemap.NewRect(x, y, w, h)
	l.room = &room
	applyRoom(m, room)
	m.Rooms = append(m.Rooms, room)
}

// anyRoom returns a room from this subtree, preferring the left side.
func (l *bspLeaf) anyRoom() *gamemap.Rect {
	if l.room != nil || l.isLeaf() {
		return l.room
	}
	if r := l.left.anyRoom(); r != nil {
		return r
	}
	return l.right.anyRoom()
}

// connect carves a corridor between the two halves of every split.
func (l *bspLeaf) connect(m *gamemap.Map, rng *rand.Rand) {
	if l.isLeaf() {
		return
	}
	l.left.connect(m, rng)
	l.right.connect(m, rng)
	a, b := l.left.anyRoom(), l.right.anyRoom()
	if a == nil || b == nil {
		return
	}
	carveL(m, a.Center(), b.Center(), rng)
}

// bsp partitions the map breadth first until MaxRooms leaves exist or no
// leaf can be split further, then fills each leaf with a room.
func bsp(cfg Config, depth int, rng *rand.Rand) *gamemap.Map {
	m := gamemap.New(cfg.Width, cfg.Height, depth)
	root := &bspLeaf{X: 0, Y: 0, W: cfg.Width, H: cfg.Height}

	minLeaf := cfg.MinRoomSize + 2
	leaves := []*bspLeaf{root}
	for len(leaves) < cfg.MaxRooms {
		var next []*bspLeaf
		grew := false
		for i, leaf := range leaves {
			if len(next)+len(leaves)-i < cfg.MaxRooms && leaf.split(minLeaf, rng) {
				next = append(next, leaf.left, leaf.right)
				grew = true
				continue
			}
			next = append(next, leaf)
		}
		leaves = next
		if !grew {
			break
		}
	}

	root.createRooms(m, cfg, rng)
	root.connect(m, rng)
	return m
}
