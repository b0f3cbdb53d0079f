package term

import (
	"context"
	"errors"

	"dungeoncrawl/internal/game"
	"dungeoncrawl/internal/gamemap"
	"dungeoncrawl/internal/render"

	"github.com/gdamore/tcell/v2"
)

// UI couples an engine with a screen and the front-end state the engine
// does not own: the targeting cursor and the mouse position.
type UI struct {
	screen   tcell.Screen
	engine   *game.Engine
	renderer *render.Renderer

	cursor *gamemap.Point
	mouse  *gamemap.Point
}

// New wraps an initialised screen.
func New(screen tcell.Screen, engine *game.Engine) *UI {
	screen.EnableMouse()
	return &UI{screen: screen, engine: engine, renderer: render.NewRenderer(screen)}
}

// Run draws frames and feeds input to the engine until the player quits,
// ctx is cancelled or the screen stops delivering events. Quitting from
// the menu returns nil.
func (u *UI) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go u.screen.ChannelEvents(events, quit)

	if _, err := u.engine.Advance(ctx, nil); err != nil {
		return err
	}
	for {
		u.draw()
		var ev tcell.Event
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e, ok := <-events:
			if !ok {
				return nil
			}
			ev = e
		}
		cmd := u.Handle(ev)
		if cmd == nil {
			continue
		}
		if _, err := u.engine.Advance(ctx, cmd); err != nil {
			if errors.Is(err, game.ErrQuit) {
				return nil
			}
			return err
		}
	}
}

func (u *UI) draw() {
	u.syncCursor()
	u.renderer.Draw(u.engine, render.Overlay{Cursor: u.cursor, Mouse: u.mouse})
}

// Handle translates one event into a command for the current state. It
// returns nil when the event only changes front-end state.
func (u *UI) Handle(ev tcell.Event) game.Command {
	state := u.engine.State()
	u.syncCursor()

	switch ev := ev.(type) {
	case *tcell.EventResize:
		u.screen.Sync()
		return nil
	case *tcell.EventMouse:
		x, y := ev.Position()
		p := u.renderer.ScreenToWorld(x, y)
		u.mouse = &p
		if ev.Buttons()&tcell.Button1 == 0 {
			return nil
		}
		switch state.(type) {
		case game.ShowTargeting:
			return game.Target{Point: p}
		case game.ShowInventory, game.ShowDropItem:
			return game.Cancel{}
		}
		return nil
	case *tcell.EventKey:
		switch state.(type) {
		case game.MainMenu:
			return MenuKey(ev)
		case game.AwaitingInput:
			return PlayKey(ev)
		case game.ShowInventory, game.ShowDropItem:
			return ItemKey(ev)
		case game.ShowTargeting:
			return u.targetKey(ev)
		}
	}
	return nil
}

// syncCursor starts the targeting cursor on the player and drops it once
// targeting ends.
func (u *UI) syncCursor() {
	if _, ok := u.engine.State().(game.ShowTargeting); !ok {
		u.cursor = nil
		return
	}
	if u.cursor == nil {
		if p, ok := u.engine.PlayerPos(); ok {
			u.cursor = &p
		}
	}
}

// targetKey moves the targeting cursor with the movement keys and fires
// on enter.
func (u *UI) targetKey(ev *tcell.EventKey) game.Command {
	switch ev.Key() {
	case tcell.KeyEscape:
		return game.Cancel{}
	case tcell.KeyEnter:
		if u.cursor != nil {
			return game.Target{Point: *u.cursor}
		}
		return nil
	}
	if dx, dy, ok := direction(ev); ok && u.cursor != nil {
		p := gamemap.Point{X: u.cursor.X + dx, Y: u.cursor.Y + dy}
		if m := u.engine.Map(); m != nil && m.InBounds(p.X, p.Y) {
			u.cursor = &p
		}
	}
	return nil
}
