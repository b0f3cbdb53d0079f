package render

import (
	"fmt"
	"strings"

	"dungeoncrawl/assets"
	"dungeoncrawl/internal/game"

	"github.com/gdamore/tcell/v2"
)

const hpBarWidth = 20

// drawHUD renders the status line and the message log from row y down.
func (r *Renderer) drawHUD(e *game.Engine, y int) {
	r.drawHLine(y, tcell.ColorGray)

	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := r.drawText(0, y+1, fmt.Sprintf("Depth: %d  ", e.Depth()), white)
	if s, ok := e.Stats(); ok {
		x = r.drawText(x, y+1, fmt.Sprintf("HP: %d / %d ", s.HP, s.MaxHP), tcell.StyleDefault.Foreground(tcell.ColorYellow))
		filled := 0
		if s.MaxHP > 0 {
			filled = max(0, min(hpBarWidth, s.HP*hpBarWidth/s.MaxHP))
		}
		x = r.drawText(x, y+1, strings.Repeat("█", filled), tcell.StyleDefault.Foreground(tcell.ColorRed))
		x = r.drawText(x, y+1, strings.Repeat("░", hpBarWidth-filled), tcell.StyleDefault.Foreground(tcell.ColorMaroon))
	}
	if e.Dead() {
		r.drawText(x+2, y+1, assets.GlyphCorpse+" You are dead.", tcell.StyleDefault.Foreground(tcell.ColorRed))
	}

	// Newest message on top.
	for i, msg := range e.Messages(0) {
		style := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
		if i > 0 {
			style = tcell.StyleDefault.Foreground(tcell.ColorGray)
		}
		r.drawText(0, y+2+i, msg, style)
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}
