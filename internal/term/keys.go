// Package term is the terminal front end: it turns tcell events into game
// commands and runs the frame loop.
package term

import (
	"dungeoncrawl/internal/game"

	"github.com/gdamore/tcell/v2"
)

// direction maps a movement key to a step, ok is false for other keys.
func direction(ev *tcell.EventKey) (dx, dy int, ok bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return 0, -1, true
	case tcell.KeyDown:
		return 0, 1, true
	case tcell.KeyLeft:
		return -1, 0, true
	case tcell.KeyRight:
		return 1, 0, true
	case tcell.KeyHome:
		return -1, -1, true
	case tcell.KeyPgUp:
		return 1, -1, true
	case tcell.KeyEnd:
		return -1, 1, true
	case tcell.KeyPgDn:
		return 1, 1, true
	case tcell.KeyRune:
	default:
		return 0, 0, false
	}
	switch ev.Rune() {
	case 'w', 'W', 'k', '8':
		return 0, -1, true
	case 's', 'S', 'j', '2':
		return 0, 1, true
	case 'a', 'A', 'h', '4':
		return -1, 0, true
	case 'd', 'D', 'l', '6':
		return 1, 0, true
	case 'y', 'Y', '7':
		return -1, -1, true
	case 'u', 'U', '9':
		return 1, -1, true
	case 'b', 'B', '1':
		return -1, 1, true
	case 'n', 'N', '3':
		return 1, 1, true
	}
	return 0, 0, false
}

// PlayKey maps a key pressed while the game waits for a move.
func PlayKey(ev *tcell.EventKey) game.Command {
	if dx, dy, ok := direction(ev); ok {
		return game.Move{DX: dx, DY: dy}
	}
	switch ev.Key() {
	case tcell.KeyEscape:
		return game.Save{}
	case tcell.KeyRune:
	default:
		return nil
	}
	switch ev.Rune() {
	case ' ', '5':
		return game.Wait{}
	case 'g', 'G', ',':
		return game.Pickup{}
	case 'e', 'E', 'i', 'I':
		return game.OpenInventory{}
	case 'q', 'Q':
		return game.OpenDrop{}
	case '.', '>':
		return game.Descend{}
	}
	return nil
}

// MenuKey maps a key pressed in the main menu.
func MenuKey(ev *tcell.EventKey) game.Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.MenuMove{Delta: -1}
	case tcell.KeyDown:
		return game.MenuMove{Delta: 1}
	case tcell.KeyEnter:
		return game.MenuConfirm{}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W', 'k':
			return game.MenuMove{Delta: -1}
		case 's', 'S', 'j':
			return game.MenuMove{Delta: 1}
		}
	}
	return nil
}

// ItemKey maps a key pressed in an item menu: a letter chooses the item
// listed under it, escape closes the menu.
func ItemKey(ev *tcell.EventKey) game.Command {
	if ev.Key() == tcell.KeyEscape {
		return game.Cancel{}
	}
	if ev.Key() == tcell.KeyRune {
		if r := ev.Rune(); r >= 'a' && r <= 'z' {
			return game.SelectItem{Index: int(r - 'a')}
		}
	}
	return nil
}
