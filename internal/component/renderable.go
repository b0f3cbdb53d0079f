package component

import (
	"dungeoncrawl/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 2

// Renderable is drawn by the presentation layer in ascending RenderOrder.
type Renderable struct {
	Glyph       string      `json:"glyph"`
	FGColor     tcell.Color `json:"fg"`
	BGColor     tcell.Color `json:"bg"`
	RenderOrder int         `json:"order"`
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
