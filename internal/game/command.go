package game

import "dungeoncrawl/internal/gamemap"

// Command is one player request, produced by the input layer.
type Command interface{ command() }

type (
	// Move steps the player by (DX, DY), attacking whatever stands there.
	Move struct{ DX, DY int }
	// Wait skips the turn, healing 1 hp when no monster is in sight.
	Wait struct{}
	// Pickup picks up the item under the player.
	Pickup        struct{}
	OpenInventory struct{}
	OpenDrop      struct{}
	Descend       struct{}
	Save          struct{}
	// SelectItem picks the Index-th entry of Backpack in an item menu.
	SelectItem struct{ Index int }
	Cancel     struct{}
	// Target confirms a cell while targeting.
	Target      struct{ Point gamemap.Point }
	MenuMove    struct{ Delta int }
	MenuConfirm struct{}
)

func (Move) command()          {}
func (Wait) command()          {}
func (Pickup) command()        {}
func (OpenInventory) command() {}
func (OpenDrop) command()      {}
func (Descend) command()       {}
func (Save) command()          {}
func (SelectItem) command()    {}
func (Cancel) command()        {}
func (Target) command()        {}
func (MenuMove) command()      {}
func (MenuConfirm) command()   {}
