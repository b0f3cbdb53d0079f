package gamemap

// TileType identifies the type of a map tile. Tiles do not change after
// generation.
type TileType int

const (
	TileWall TileType = iota
	TileFloor
	TileDownStairs
)

func (t TileType) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileDownStairs:
		return "down_stairs"
	}
	return "unknown"
}

// Opaque reports whether the tile blocks line of sight.
func (t TileType) Opaque() bool { return t == TileWall }
