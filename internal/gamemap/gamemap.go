package gamemap

import (
	"encoding/binary"
	"fmt"

	"dungeoncrawl/internal/ecs"

	"github.com/cespare/xxhash/v2"
)

// Point is a grid coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Rect is an axis-aligned rectangle used for rooms. The carved interior is
// (X1, X2] × (Y1, Y2].
type Rect struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// NewRect builds a rectangle from its corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Map holds the tile grid of one dungeon level plus the per-tick spatial
// index. Every per-tile slice is indexed row-major by Index.
type Map struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Depth  int `json:"depth"`

	Tiles    []TileType `json:"tiles"`
	Rooms    []Rect     `json:"rooms"`
	Revealed []bool     `json:"revealed"`
	Visible  []bool     `json:"visible"`

	// Rebuilt every tick by the indexing system; not persisted.
	Blocked     []bool           `json:"-"`
	TileContent [][]ecs.EntityID `json:"-"`
}

// New creates a Map filled with walls.
func New(width, height, depth int) *Map {
	n := width * height
	m := &Map{
		Width:  width,
		Height: height,
		Depth:  depth,
		Tiles:  make([]TileType, n),
	}
	m.allocState()
	return m
}

func (m *Map) allocState() {
	n := m.Width * m.Height
	if len(m.Revealed) != n {
		m.Revealed = make([]bool, n)
	}
	if len(m.Visible) != n {
		m.Visible = make([]bool, n)
	}
	m.Blocked = make([]bool, n)
	m.TileContent = make([][]ecs.EntityID, n)
	m.ResetIndex()
}

// Validate checks the slice lengths of a decoded map and rebuilds the
// transient index arrays.
func (m *Map) Validate() error {
	n := m.Width * m.Height
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("gamemap: bad dimensions %dx%d", m.Width, m.Height)
	}
	if len(m.Tiles) != n {
		return fmt.Errorf("gamemap: %d tiles for %dx%d map", len(m.Tiles), m.Width, m.Height)
	}
	if (m.Revealed != nil && len(m.Revealed) != n) || (m.Visible != nil && len(m.Visible) != n) {
		return fmt.Errorf("gamemap: visibility arrays do not match %dx%d", m.Width, m.Height)
	}
	m.allocState()
	return nil
}

// Index converts (x, y) to a row-major tile index.
func (m *Map) Index(x, y int) int { return y*m.Width + x }

// IndexOf converts a point to a tile index.
func (m *Map) IndexOf(p Point) int { return m.Index(p.X, p.Y) }

// PointOf converts a tile index back to its coordinate.
func (m *Map) PointOf(idx int) Point {
	return Point{X: idx % m.Width, Y: idx / m.Width}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// TileAt returns the tile at (x, y). Panics if out of bounds.
func (m *Map) TileAt(x, y int) TileType {
	return m.Tiles[m.Index(x, y)]
}

// Set replaces the tile at (x, y).
func (m *Map) Set(x, y int, t TileType) {
	m.Tiles[m.Index(x, y)] = t
}

// IsWalkable returns true when (x, y) is in bounds and not blocked.
func (m *Map) IsWalkable(x, y int) bool {
	return m.InBounds(x, y) && !m.Blocked[m.Index(x, y)]
}

// IsTransparent returns true when (x, y) is in bounds and does not block sight.
func (m *Map) IsTransparent(x, y int) bool {
	return m.InBounds(x, y) && !m.TileAt(x, y).Opaque()
}

// ResetIndex sets every tile's blocked flag back to its terrain value and
// empties all occupant lists.
func (m *Map) ResetIndex() {
	for i, t := range m.Tiles {
		m.Blocked[i] = t == TileWall
		m.TileContent[i] = m.TileContent[i][:0]
	}
}

// ClearVisible drops every visible flag, leaving revealed tiles untouched.
func (m *Map) ClearVisible() {
	clear(m.Visible)
}

// Digest hashes the terrain and room layout. Two maps generated from the
// same seed and config have equal digests.
func (m *Map) Digest() uint64 {
	h := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[:4], uint32(m.Width))
	binary.LittleEndian.PutUint32(buf[4:], uint32(m.Height))
	_, _ = h.Write(buf[:])
	for _, t := range m.Tiles {
		_, _ = h.Write([]byte{byte(t)})
	}
	for _, r := range m.Rooms {
		for _, v := range [4]int{r.X1, r.Y1, r.X2, r.Y2} {
			binary.LittleEndian.PutUint32(buf[:4], uint32(v))
			_, _ = h.Write(buf[:4])
		}
	}
	return h.Sum64()
}
