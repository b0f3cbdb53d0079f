// Package system holds the per-tick simulation passes. Every system reads and
// mutates the world through an Env and runs strictly in Pipeline order.
package system

import (
	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamelog"
	"dungeoncrawl/internal/gamemap"

	"go.uber.org/zap"
)

// Rules are the tunable distances used by combat and AI.
type Rules struct {
	MeleeRange    float64 // monsters attack when strictly closer than this
	ShoutDistance float64 // monsters shout when at most this far away
}

// DefaultRules returns the standard tuning.
func DefaultRules() Rules {
	return Rules{MeleeRange: 1.5, ShoutDistance: 2.0}
}

// Env bundles the state shared by all systems during one tick.
type Env struct {
	World  *ecs.World
	Map    *gamemap.Map
	Log    *gamelog.Log
	Player ecs.EntityID
	Rules  Rules
	Logger *zap.Logger
}

func (e *Env) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

func (e *Env) mustMap() *gamemap.Map {
	if e.Map == nil {
		panic("system: pipeline run without a map")
	}
	return e.Map
}

// PlayerPos returns the player's current position.
func (e *Env) PlayerPos() (gamemap.Point, bool) {
	c := e.World.Get(e.Player, component.CPosition)
	if c == nil {
		return gamemap.Point{}, false
	}
	return c.(component.Position).Point(), true
}

// nameOf returns the entity's display name, or "something" when it has none.
func nameOf(w *ecs.World, id ecs.EntityID) string {
	if c := w.Get(id, component.CName); c != nil {
		return c.(component.Name).Name
	}
	return "something"
}
