package gamemap

// octant transform matrices.
// For each octant, a (dx, dy) sweep pair maps to a world offset via:
//   worldX = cx + dx*xx + dy*xy
//   worldY = cy + dx*yx + dy*yy
// where dx sweeps horizontally within the row and dy is the fixed row index.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// FieldOfView returns every in-bounds tile visible from origin within radius,
// in row-major order. Walls stop sight but are themselves visible. The origin
// need not be walkable.
func (m *Map) FieldOfView(origin Point, radius int) []Point {
	seen := make([]bool, len(m.Tiles))
	light := func(x, y int) {
		if m.InBounds(x, y) {
			seen[m.Index(x, y)] = true
		}
	}
	light(origin.X, origin.Y)
	for _, o := range octants {
		m.castLight(light, origin.X, origin.Y, 1, 1.0, 0.0, radius, o[0], o[1], o[2], o[3])
	}

	var out []Point
	for i, ok := range seen {
		if ok {
			out = append(out, m.PointOf(i))
		}
	}
	return out
}

// castLight scans one octant with recursive shadowcasting.
//   - j is the current row (distance from origin along the main axis)
//   - dy = -j is fixed for the entire inner sweep
//   - dx sweeps from -j to 0
//   - lSlope = (dx - 0.5) / (dy + 0.5)   rSlope = (dx + 0.5) / (dy - 0.5)
func (m *Map) castLight(light func(x, y int), cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := radius * radius
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := cx + dx*xx + dy*xy
			wy := cy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if dx*dx+dy*dy <= radiusSq {
				light(wx, wy)
			}

			opaque := !m.IsTransparent(wx, wy)

			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < radius {
				blocked = true
				m.castLight(light, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
