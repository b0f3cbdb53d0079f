package assets

import "github.com/gdamore/tcell/v2"

// Emoji constants used as entity and tile glyphs.
const (
	GlyphPlayer     = "🧙"
	GlyphOrc        = "👹"
	GlyphGoblin     = "👺"
	GlyphPotion     = "🧪"
	GlyphMissile    = "📜"
	GlyphFireball   = "🔥"
	GlyphConfusion  = "🌀"
	GlyphStairsDown = "🔽"
	GlyphCorpse     = "💀"
)

// MonsterDef is the template a monster is spawned from.
type MonsterDef struct {
	Name  string
	Glyph string
	Color tcell.Color
}

// Monsters is the bestiary. Spawning picks one uniformly.
var Monsters = []MonsterDef{
	{Name: "Orc", Glyph: GlyphOrc, Color: tcell.ColorRed},
	{Name: "Goblin", Glyph: GlyphGoblin, Color: tcell.ColorRed},
}

// Welcome is the first line of every new game's message log.
const Welcome = "Welcome to the Dungeon Crawl"

// Title is shown at the top of the main menu.
const Title = "Dungeon Crawl"
