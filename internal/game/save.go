package game

import (
	"context"
	"fmt"

	"dungeoncrawl/internal/gamelog"
	"dungeoncrawl/internal/persist"

	"go.uber.org/zap"
)

// Snapshot captures the running game. A game captured while saving is
// recorded as waiting for input.
func (e *Engine) Snapshot() (*persist.Snapshot, error) {
	if e.world == nil {
		return nil, fmt.Errorf("game: no game in progress")
	}
	state := e.state
	switch state.(type) {
	case SaveGame, MainMenu:
		state = AwaitingInput{}
	}
	if e.world.Pending() > 0 {
		return nil, fmt.Errorf("game: snapshot with %d deletions pending", e.world.Pending())
	}
	ents, err := persist.CaptureEntities(e.world)
	if err != nil {
		return nil, err
	}
	return &persist.Snapshot{
		Version:     persist.Version,
		RunID:       e.runID,
		SavedAt:     e.now().UTC(),
		Seed:        e.seed,
		Depth:       e.depth,
		Player:      e.player,
		State:       stateOf(state),
		Log:         e.log.Entries(),
		Map:         e.gmap,
		Generations: e.world.Generations(),
		Free:        e.world.FreeSlots(),
		Entities:    ents,
	}, nil
}

// Restore replaces the running game with s, including its recorded state.
func (e *Engine) Restore(s *persist.Snapshot) error {
	w, err := persist.RestoreWorld(s)
	if err != nil {
		return err
	}
	state, err := stateFrom(s.State)
	if err != nil {
		return err
	}
	e.world = w
	e.gmap = s.Map
	e.log = gamelog.New(s.Log...)
	e.player = s.Player
	e.depth = s.Depth
	e.seed = s.Seed
	e.runID = s.RunID
	e.state = state
	return nil
}

func (e *Engine) save(ctx context.Context) error {
	s, err := e.Snapshot()
	if err != nil {
		return err
	}
	if err := e.store.Save(ctx, s); err != nil {
		return fmt.Errorf("game: save: %w", err)
	}
	e.hasSave = true
	e.logger.Info("saved", zap.Stringer("run", e.runID), zap.Int("depth", e.depth))
	return nil
}

// load restores the saved game and deletes it: there is one save per run.
func (e *Engine) load(ctx context.Context) error {
	s, err := e.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("game: load: %w", err)
	}
	if err := e.Restore(s); err != nil {
		return fmt.Errorf("game: load: %w", err)
	}
	e.hasSave = false
	if err := e.store.Delete(ctx); err != nil {
		e.hasSave = true
		e.logger.Warn("could not delete loaded save", zap.Error(err))
	}
	e.logger.Info("loaded", zap.Stringer("run", e.runID), zap.Int("depth", e.depth))
	return nil
}

func stateFrom(s persist.State) (RunState, error) {
	switch s.Kind {
	case MainMenu{}.Kind():
		return MainMenu{Selection: LoadGame}, nil
	case PreRun{}.Kind():
		return PreRun{}, nil
	case AwaitingInput{}.Kind():
		return AwaitingInput{}, nil
	case PlayerTurn{}.Kind():
		return PlayerTurn{}, nil
	case MonsterTurn{}.Kind():
		return MonsterTurn{}, nil
	case ShowInventory{}.Kind():
		return ShowInventory{}, nil
	case ShowDropItem{}.Kind():
		return ShowDropItem{}, nil
	case ShowTargeting{}.Kind():
		return ShowTargeting{Range: s.Range, Item: s.Item}, nil
	case SaveGame{}.Kind():
		return SaveGame{}, nil
	case NextLevel{}.Kind():
		return NextLevel{}, nil
	}
	return nil, fmt.Errorf("game: unknown state %q", s.Kind)
}

// stateOf is the inverse of stateFrom.
func stateOf(s RunState) persist.State {
	out := persist.State{Kind: s.Kind()}
	if t, ok := s.(ShowTargeting); ok {
		out.Range, out.Item = t.Range, t.Item
	}
	return out
}
