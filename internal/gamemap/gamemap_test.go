package gamemap

import (
	"testing"

	"dungeoncrawl/internal/ecs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openMap creates a w×h map that is entirely passable floor.
func openMap(w, h int) *Map {
	m := New(w, h, 1)
	for i := range m.Tiles {
		m.Tiles[i] = TileFloor
	}
	m.ResetIndex()
	return m
}

func TestInBounds(t *testing.T) {
	m := New(10, 8, 1)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		got := m.InBounds(c.x, c.y)
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestIndexRoundTrip(t *testing.T) {
	m := New(7, 5, 1)
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			idx := m.Index(x, y)
			assert.Equal(t, y*7+x, idx)
			assert.Equal(t, Point{x, y}, m.PointOf(idx))
		}
	}
}

func TestIsWalkable(t *testing.T) {
	m := New(5, 5, 1)
	// all walls initially
	if m.IsWalkable(2, 2) {
		t.Error("wall tile should not be walkable")
	}
	m.Set(2, 2, TileFloor)
	m.ResetIndex()
	if !m.IsWalkable(2, 2) {
		t.Error("floor tile should be walkable")
	}
	m.Blocked[m.Index(2, 2)] = true
	if m.IsWalkable(2, 2) {
		t.Error("blocked floor should not be walkable")
	}
	// out of bounds
	if m.IsWalkable(-1, 0) {
		t.Error("out-of-bounds should not be walkable")
	}
}

func TestResetIndex(t *testing.T) {
	m := openMap(4, 4)
	m.Set(0, 0, TileWall)
	m.Set(1, 0, TileDownStairs)
	m.Blocked[5] = true
	m.TileContent[5] = append(m.TileContent[5], ecs.EntityID(1))

	m.ResetIndex()
	assert.True(t, m.Blocked[0], "walls block")
	assert.False(t, m.Blocked[1], "stairs do not block")
	assert.False(t, m.Blocked[5])
	assert.Empty(t, m.TileContent[5])
}

func TestRectCenter(t *testing.T) {
	r := Rect{X1: 0, Y1: 0, X2: 4, Y2: 4}
	assert.Equal(t, Point{2, 2}, r.Center())
	assert.Equal(t, Rect{X1: 2, Y1: 3, X2: 6, Y2: 8}, NewRect(2, 3, 4, 5))
}

func TestRectIntersects(t *testing.T) {
	a := Rect{0, 0, 4, 4}
	b := Rect{3, 3, 7, 7}
	c := Rect{5, 5, 9, 9}
	if !a.Intersects(b) {
		t.Error("a and b should intersect")
	}
	if a.Intersects(c) {
		t.Error("a and c should not intersect")
	}
}

func TestIsTransparent(t *testing.T) {
	cases := []struct {
		name string
		tile TileType
		x, y int
		want bool
	}{
		{"wall is opaque", TileWall, 2, 2, false},
		{"floor is transparent", TileFloor, 2, 2, true},
		{"stairs are transparent", TileDownStairs, 2, 2, true},
		{"out-of-bounds x=-1", TileWall, -1, 0, false},
		{"out-of-bounds y=-1", TileWall, 0, -1, false},
		{"out-of-bounds beyond width", TileWall, 10, 2, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := New(5, 5, 1)
			if m.InBounds(tc.x, tc.y) {
				m.Set(tc.x, tc.y, tc.tile)
			}
			if got := m.IsTransparent(tc.x, tc.y); got != tc.want {
				t.Errorf("IsTransparent(%d,%d) = %v; want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestValidateRebuildsIndex(t *testing.T) {
	m := &Map{Width: 3, Height: 2, Tiles: make([]TileType, 6)}
	require.NoError(t, m.Validate())
	assert.Len(t, m.Blocked, 6)
	assert.Len(t, m.TileContent, 6)
	assert.Len(t, m.Revealed, 6)

	bad := &Map{Width: 3, Height: 2, Tiles: make([]TileType, 5)}
	assert.Error(t, bad.Validate())
	assert.Error(t, (&Map{}).Validate())
}

func TestDigest(t *testing.T) {
	a := openMap(6, 6)
	b := openMap(6, 6)
	assert.Equal(t, a.Digest(), b.Digest())
	b.Set(3, 3, TileWall)
	assert.NotEqual(t, a.Digest(), b.Digest())
	b.Set(3, 3, TileFloor)
	b.Rooms = append(b.Rooms, NewRect(1, 1, 2, 2))
	assert.NotEqual(t, a.Digest(), b.Digest())
}
