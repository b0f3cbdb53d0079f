package term

import (
	"context"
	"errors"
	"testing"

	"dungeoncrawl/internal/config"
	"dungeoncrawl/internal/game"
	"dungeoncrawl/internal/persist"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }
func runeKey(r rune) *tcell.EventKey  { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestPlayKey(t *testing.T) {
	cases := []struct {
		name string
		ev   *tcell.EventKey
		want game.Command
	}{
		{"arrow up", key(tcell.KeyUp), game.Move{DX: 0, DY: -1}},
		{"arrow left", key(tcell.KeyLeft), game.Move{DX: -1}},
		{"wasd", runeKey('d'), game.Move{DX: 1}},
		{"diagonal y", runeKey('y'), game.Move{DX: -1, DY: -1}},
		{"diagonal n", runeKey('n'), game.Move{DX: 1, DY: 1}},
		{"numpad", runeKey('3'), game.Move{DX: 1, DY: 1}},
		{"space waits", runeKey(' '), game.Wait{}},
		{"numpad 5 waits", runeKey('5'), game.Wait{}},
		{"pickup", runeKey('g'), game.Pickup{}},
		{"inventory", runeKey('e'), game.OpenInventory{}},
		{"drop", runeKey('q'), game.OpenDrop{}},
		{"descend", runeKey('.'), game.Descend{}},
		{"escape saves", key(tcell.KeyEscape), game.Save{}},
		{"unbound", runeKey('z'), nil},
		{"unbound key", key(tcell.KeyTab), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PlayKey(tc.ev))
		})
	}
}

func TestMenuAndItemKeys(t *testing.T) {
	assert.Equal(t, game.MenuMove{Delta: -1}, MenuKey(key(tcell.KeyUp)))
	assert.Equal(t, game.MenuMove{Delta: 1}, MenuKey(runeKey('s')))
	assert.Equal(t, game.MenuConfirm{}, MenuKey(key(tcell.KeyEnter)))
	assert.Nil(t, MenuKey(runeKey('x')))

	assert.Equal(t, game.SelectItem{Index: 0}, ItemKey(runeKey('a')))
	assert.Equal(t, game.SelectItem{Index: 2}, ItemKey(runeKey('c')))
	assert.Equal(t, game.Cancel{}, ItemKey(key(tcell.KeyEscape)))
	assert.Nil(t, ItemKey(runeKey('A')))
}

func newUI(t *testing.T) *UI {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, ss.Init())
	ss.SetSize(80, 30)
	t.Cleanup(ss.Fini)
	e, err := game.New(context.Background(), config.Default())
	require.NoError(t, err)
	return New(ss, e)
}

func TestHandleFollowsState(t *testing.T) {
	u := newUI(t)
	ctx := context.Background()

	assert.Equal(t, game.MenuConfirm{}, u.Handle(key(tcell.KeyEnter)))
	_, err := u.engine.Advance(ctx, game.MenuConfirm{})
	require.NoError(t, err)

	assert.Equal(t, game.Move{DX: 1}, u.Handle(runeKey('d')))
	assert.Nil(t, u.Handle(tcell.NewEventResize(80, 30)))
}

func TestTargetingCursor(t *testing.T) {
	u := newUI(t)
	ctx := context.Background()
	_, err := u.engine.Advance(ctx, game.MenuConfirm{})
	require.NoError(t, err)
	start, ok := u.engine.PlayerPos()
	require.True(t, ok)

	u.cursor = nil
	u.syncCursor()
	assert.Nil(t, u.cursor, "no cursor outside targeting")

	cmd := u.targetKey(key(tcell.KeyEnter))
	assert.Nil(t, cmd, "enter without a cursor does nothing")

	p := start
	u.cursor = &p
	assert.Nil(t, u.targetKey(runeKey('d')))
	assert.Equal(t, start.X+1, u.cursor.X)
	assert.Equal(t, game.Target{Point: *u.cursor}, u.targetKey(key(tcell.KeyEnter)))
	assert.Equal(t, game.Cancel{}, u.targetKey(key(tcell.KeyEscape)))
}

func TestRunQuitsFromMenu(t *testing.T) {
	ss := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, ss.Init())
	ss.SetSize(80, 30)
	e, err := game.New(context.Background(), config.Default())
	require.NoError(t, err)
	u := New(ss, e)

	done := make(chan error, 1)
	go func() { done <- u.Run(context.Background()) }()
	ss.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	ss.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	assert.NoError(t, <-done)
	ss.Fini()
}

// flakyStore fails the first save and keeps later ones in memory.
type flakyStore struct {
	attempts int
	saved    *persist.Snapshot
}

func (f *flakyStore) Save(_ context.Context, s *persist.Snapshot) error {
	f.attempts++
	if f.attempts == 1 {
		return errors.New("disk full")
	}
	f.saved = s
	return nil
}

func (f *flakyStore) Load(context.Context) (*persist.Snapshot, error) {
	if f.saved == nil {
		return nil, persist.ErrNoSave
	}
	return f.saved, nil
}

func (f *flakyStore) Exists(context.Context) (bool, error) { return f.saved != nil, nil }
func (f *flakyStore) Close() error                         { return nil }

func (f *flakyStore) Delete(context.Context) error {
	f.saved = nil
	return nil
}

func TestRunSurvivesFailedSave(t *testing.T) {
	ss := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, ss.Init())
	ss.SetSize(80, 30)
	store := &flakyStore{}
	e, err := game.New(context.Background(), config.Default(), game.WithStore(store))
	require.NoError(t, err)
	u := New(ss, e)

	done := make(chan error, 1)
	go func() { done <- u.Run(context.Background()) }()
	ss.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)  // new game
	ss.InjectKey(tcell.KeyEscape, 0, tcell.ModNone) // save fails, play goes on
	ss.InjectKey(tcell.KeyEscape, 0, tcell.ModNone) // save lands on the menu
	ss.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	ss.InjectKey(tcell.KeyEnter, 0, tcell.ModNone) // quit
	assert.NoError(t, <-done)
	ss.Fini()

	assert.Equal(t, 2, store.attempts)
	assert.NotNil(t, store.saved)
	assert.Contains(t, e.Messages(0), "The game could not be saved.")
}
