package game

import (
	"time"

	"dungeoncrawl/assets"
	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/factory"
	"dungeoncrawl/internal/gamelog"
	"dungeoncrawl/internal/gamemap"
	"dungeoncrawl/internal/generate"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// newGame starts a fresh run at depth 1. A zero seed picks one from the
// clock.
func (e *Engine) newGame() {
	e.seed = e.cfg.Seed
	if e.seed == 0 {
		e.seed = time.Now().UnixNano()
	}
	e.runID = uuid.New()
	e.depth = 1
	e.world = ecs.NewWorld()
	e.log = gamelog.New(assets.Welcome)
	e.gmap = e.generateLevel(func(start gamemap.Point) {
		e.player = factory.NewPlayer(e.world, start, e.cfg.Tuning())
	})
	e.logger.Info("new game",
		zap.Stringer("run", e.runID),
		zap.Int64("seed", e.seed),
		zap.Uint64("layout", e.gmap.Digest()))
}

// generateLevel builds the map for e.depth, hands the first room's centre
// to place and then populates the other rooms.
func (e *Engine) generateLevel(place func(start gamemap.Point)) *gamemap.Map {
	rng := e.levelRNG(e.depth)
	m := generate.Generate(e.cfg.Generator(), e.depth, rng)
	place(m.Rooms[0].Center())
	spawned := factory.SpawnRooms(e.world, m, e.cfg.Tuning(), rng)
	e.logger.Debug("level generated",
		zap.Int("depth", e.depth),
		zap.Int("rooms", len(m.Rooms)),
		zap.Int("entities", len(spawned)))
	return m
}

// nextLevel keeps the player and everything they carry, discards the rest
// and moves the player into a new level one deeper at full health.
func (e *Engine) nextLevel() {
	w := e.world
	for _, id := range w.Entities() {
		if id == e.player {
			continue
		}
		if c := w.Get(id, component.CInBackpack); c != nil && c.(component.InBackpack).Owner == e.player {
			continue
		}
		w.Delete(id)
	}
	w.Maintain()

	e.depth++
	e.gmap = e.generateLevel(func(start gamemap.Point) {
		w.Add(e.player, component.Position{X: start.X, Y: start.Y})
	})
	if c := w.Get(e.player, component.CViewshed); c != nil {
		vs := c.(component.Viewshed)
		vs.Dirty = true
		w.Add(e.player, vs)
	}
	e.log.Add("You descend to the next level, and take a moment to heal.")
	if c := w.Get(e.player, component.CCombatStats); c != nil {
		stats := c.(component.CombatStats)
		stats.HP = stats.MaxHP
		w.Add(e.player, stats)
	}
	e.logger.Info("descended", zap.Stringer("run", e.runID), zap.Int("depth", e.depth))
}
