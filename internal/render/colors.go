package render

import "dungeoncrawl/assets"

// TileSet holds the glyphs used to draw one level's terrain. Emoji carry
// their own colours, so remembered tiles use distinct dim glyphs rather
// than a tinted foreground.
type TileSet struct {
	Wall     string
	Floor    string
	Stairs   string
	DimWall  string
	DimFloor string
}

// Themes cycle with depth: level 1 uses Themes[0], level 2 Themes[1] and
// so on, wrapping around.
var Themes = []TileSet{
	{Wall: "🧱", Floor: "🟫", Stairs: assets.GlyphStairsDown, DimWall: "🌑", DimFloor: "🔲"},
	{Wall: "🪨", Floor: "⬛", Stairs: assets.GlyphStairsDown, DimWall: "🌑", DimFloor: "🔲"},
	{Wall: "🧊", Floor: "🟦", Stairs: assets.GlyphStairsDown, DimWall: "🌑", DimFloor: "🔲"},
	{Wall: "🍄", Floor: "🟩", Stairs: assets.GlyphStairsDown, DimWall: "🌑", DimFloor: "🔲"},
}

// ThemeFor returns the tile set of the given depth.
func ThemeFor(depth int) TileSet {
	if depth < 1 {
		depth = 1
	}
	return Themes[(depth-1)%len(Themes)]
}
