package render

import "dungeoncrawl/internal/gamemap"

// Camera translates between world and screen coordinates. Each world tile
// is two terminal columns wide because emoji are double width.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // columns
	ViewHeight int // rows
}

// NewCamera returns a camera with the given viewport in terminal cells.
func NewCamera(viewW, viewH int) *Camera {
	return &Camera{ViewWidth: viewW, ViewHeight: viewH}
}

// Follow centres the camera on p. A map that fits the viewport on an axis
// is pinned to the top left instead so it does not scroll.
func (c *Camera) Follow(p gamemap.Point, mapW, mapH int) {
	tilesW := c.ViewWidth / 2
	if mapW <= tilesW {
		c.OffsetX = 0
	} else {
		c.OffsetX = clamp(p.X-tilesW/2, 0, mapW-tilesW)
	}
	if mapH <= c.ViewHeight {
		c.OffsetY = 0
	} else {
		c.OffsetY = clamp(p.Y-c.ViewHeight/2, 0, mapH-c.ViewHeight)
	}
}

// WorldToScreen converts a world point to a screen cell. ok is false when
// the cell falls outside the viewport.
func (c *Camera) WorldToScreen(p gamemap.Point) (sx, sy int, ok bool) {
	sx = (p.X - c.OffsetX) * 2
	sy = p.Y - c.OffsetY
	ok = sx >= 0 && sx+1 < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts a screen cell back to a world point.
func (c *Camera) ScreenToWorld(sx, sy int) gamemap.Point {
	return gamemap.Point{X: sx/2 + c.OffsetX, Y: sy + c.OffsetY}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
