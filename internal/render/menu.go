package render

import (
	"fmt"

	"dungeoncrawl/assets"
	"dungeoncrawl/internal/game"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

func (r *Renderer) drawMainMenu(e *game.Engine) {
	_, h := r.screen.Size()
	y := h/2 - 3
	r.drawCentered(y, assets.Title, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	y += 2

	var sel game.MenuSelection
	if s, ok := e.State().(game.MainMenu); ok {
		sel = s.Selection
	}
	for _, opt := range e.MenuOptions() {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		if opt == sel {
			style = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
		}
		r.drawCentered(y, opt.String(), style)
		y++
	}
	if n := e.Notice(); n != "" {
		r.drawCentered(y+1, n, tcell.StyleDefault.Foreground(tcell.ColorRed))
	}
	r.drawCentered(h-2, "↑/↓ choose   Enter confirm", tcell.StyleDefault.Foreground(tcell.ColorGray))
}

// drawItemMenu draws a boxed list of backpack items keyed a, b, c...
func (r *Renderer) drawItemMenu(title string, items []game.BackpackItem) {
	lines := make([]string, 0, len(items))
	for i, it := range items {
		if i >= 26 {
			break
		}
		lines = append(lines, fmt.Sprintf("(%c) %s", 'a'+i, it.Name))
	}
	if len(lines) == 0 {
		lines = append(lines, "(empty)")
	}

	width := runewidth.StringWidth(title) + 4
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l)+4)
	}
	sw, sh := r.screen.Size()
	x0 := max((sw-width)/2, 0)
	y0 := max((sh-len(lines)-2)/2, 0)

	border := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	r.drawBox(x0, y0, width, len(lines)+2, border)
	r.drawText(x0+2, y0, title, tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack))
	for i, l := range lines {
		r.drawText(x0+2, y0+1+i, l, border)
	}
	r.drawText(x0+2, y0+len(lines)+1, "ESC to cancel", tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack))
}

func (r *Renderer) drawBox(x, y, w, h int, style tcell.Style) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			ch := ' '
			switch {
			case (j == y || j == y+h-1) && (i == x || i == x+w-1):
				ch = '+'
			case j == y || j == y+h-1:
				ch = '─'
			case i == x || i == x+w-1:
				ch = '│'
			}
			r.screen.SetContent(i, j, ch, nil, style)
		}
	}
}

func (r *Renderer) drawCentered(y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	r.drawText(max((w-runewidth.StringWidth(text))/2, 0), y, text, style)
}
