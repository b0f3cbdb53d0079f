// Package game drives the turn state machine: it owns the world, the map
// and the message log, feeds player commands into the systems and decides
// which state follows each tick.
package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"dungeoncrawl/internal/config"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamelog"
	"dungeoncrawl/internal/gamemap"
	"dungeoncrawl/internal/persist"
	"dungeoncrawl/internal/system"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrQuit is returned by Tick when the player chooses Quit in the main menu.
var ErrQuit = errors.New("game: quit")

// Engine is one single-player game. It is not safe for concurrent use.
type Engine struct {
	cfg    config.Config
	store  persist.Store
	logger *zap.Logger
	now    func() time.Time

	world  *ecs.World
	gmap   *gamemap.Map
	log    *gamelog.Log
	player ecs.EntityID
	state  RunState
	depth  int
	seed   int64
	runID  uuid.UUID

	hasSave bool
	notice  string
}

// Option configures an Engine.
type Option func(*Engine)

// WithStore enables saving and loading.
func WithStore(s persist.Store) Option {
	return func(e *Engine) { e.store = s }
}

// WithLogger sets the diagnostic logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithClock overrides the time source used to stamp saves.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New returns an engine sitting in the main menu.
func New(ctx context.Context, cfg config.Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	e := &Engine{
		cfg:    cfg,
		logger: zap.NewNop(),
		now:    time.Now,
		state:  MainMenu{Selection: NewGame},
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.refreshSave(ctx); err != nil {
		return nil, err
	}
	return e, nil
}

// Tick advances the state machine by exactly one step. cmd may be nil when
// there is no input this frame. The returned state is the new current one.
// Storage failures are reported to the player; the only error is ErrQuit.
func (e *Engine) Tick(ctx context.Context, cmd Command) (RunState, error) {
	next, err := e.step(ctx, cmd)
	if next != nil {
		if next.Kind() != e.state.Kind() {
			e.logger.Debug("state", zap.String("from", e.state.Kind()), zap.String("to", next.Kind()))
		}
		e.state = next
	}
	return e.state, err
}

// Advance applies cmd and keeps ticking until the engine waits for input
// again.
func (e *Engine) Advance(ctx context.Context, cmd Command) (RunState, error) {
	s, err := e.Tick(ctx, cmd)
	for err == nil && !WantsInput(s) {
		if err = ctx.Err(); err != nil {
			break
		}
		s, err = e.Tick(ctx, nil)
	}
	return s, err
}

func (e *Engine) step(ctx context.Context, cmd Command) (RunState, error) {
	switch s := e.state.(type) {
	case MainMenu:
		return e.mainMenu(ctx, s, cmd)
	case PreRun:
		e.runSystems(false)
		return AwaitingInput{}, nil
	case AwaitingInput:
		if cmd == nil {
			return s, nil
		}
		return e.playerInput(cmd), nil
	case PlayerTurn:
		e.runSystems(false)
		return MonsterTurn{}, nil
	case MonsterTurn:
		e.runSystems(true)
		system.Sweep(e.env())
		return AwaitingInput{}, nil
	case ShowInventory:
		return e.inventoryMenu(cmd), nil
	case ShowDropItem:
		return e.dropMenu(cmd), nil
	case ShowTargeting:
		return e.targeting(s, cmd), nil
	case SaveGame:
		if err := e.save(ctx); err != nil {
			e.logger.Error("save failed", zap.Error(err))
			e.log.Add("The game could not be saved.")
			return AwaitingInput{}, nil
		}
		return MainMenu{Selection: LoadGame}, nil
	case NextLevel:
		e.nextLevel()
		return PreRun{}, nil
	}
	panic(fmt.Sprintf("game: unknown state %T", e.state))
}

func (e *Engine) mainMenu(ctx context.Context, s MainMenu, cmd Command) (RunState, error) {
	if cmd != nil {
		e.notice = ""
	}
	switch c := cmd.(type) {
	case MenuMove:
		opts := e.MenuOptions()
		cur := 0
		for i, o := range opts {
			if o == s.Selection {
				cur = i
			}
		}
		cur = ((cur+c.Delta)%len(opts) + len(opts)) % len(opts)
		return MainMenu{Selection: opts[cur]}, nil
	case MenuConfirm:
		switch s.Selection {
		case NewGame:
			e.newGame()
			return PreRun{}, nil
		case LoadGame:
			if !e.hasSave {
				return s, nil
			}
			if err := e.load(ctx); err != nil {
				e.logger.Error("load failed", zap.Error(err))
				e.notice = "The saved game could not be loaded."
				if err := e.refreshSave(ctx); err != nil {
					e.logger.Warn("save lookup failed", zap.Error(err))
				}
				return MainMenu{Selection: NewGame}, nil
			}
			return AwaitingInput{}, nil
		case Quit:
			return s, ErrQuit
		}
	}
	return s, nil
}

// env binds the current level for one system pass.
func (e *Engine) env() *system.Env {
	return &system.Env{
		World:  e.world,
		Map:    e.gmap,
		Log:    e.log,
		Player: e.player,
		Rules:  e.cfg.SystemRules(),
		Logger: e.logger,
	}
}

func (e *Engine) runSystems(monsterTurn bool) {
	system.RunSystems(e.env(), monsterTurn)
}

// levelRNG seeds generation and spawning for one depth.
func (e *Engine) levelRNG(depth int) *rand.Rand {
	return rand.New(rand.NewSource(e.seed + int64(depth-1)))
}

func (e *Engine) refreshSave(ctx context.Context) error {
	e.hasSave = false
	if e.store == nil {
		return nil
	}
	ok, err := e.store.Exists(ctx)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	e.hasSave = ok
	return nil
}
