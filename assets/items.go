package assets

import "github.com/gdamore/tcell/v2"

// ItemDef is the template an item is spawned from. Zero fields mean the
// effect is absent.
type ItemDef struct {
	Name           string
	Glyph          string
	Color          tcell.Color
	Healing        int
	Range          int
	Damage         int
	Radius         int
	ConfusionTurns int
}

// Items is the loot table in roll order.
var Items = []ItemDef{
	{Name: "Health Potion", Glyph: GlyphPotion, Color: tcell.ColorFuchsia, Healing: 8},
	{Name: "Fireball Scroll", Glyph: GlyphFireball, Color: tcell.ColorOrange, Range: 6, Damage: 20, Radius: 3},
	{Name: "Confusion Scroll", Glyph: GlyphConfusion, Color: tcell.ColorPink, Range: 6, Radius: 3, ConfusionTurns: 4},
	{Name: "Magic Missile Scroll", Glyph: GlyphMissile, Color: tcell.ColorAqua, Range: 6, Damage: 8},
}

// ItemByName returns the template with the given name.
func ItemByName(name string) (ItemDef, bool) {
	for _, d := range Items {
		if d.Name == name {
			return d, true
		}
	}
	return ItemDef{}, false
}
