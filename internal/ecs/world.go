package ecs

import (
	"cmp"
	"fmt"
	"slices"
)

type slot struct {
	gen    uint32
	alive  bool
	doomed bool
}

// World is the central entity registry and component store.
//
// Deletion is deferred: Delete hides an entity from every lookup immediately,
// but its slot and components are only reclaimed by Maintain.
type World struct {
	slots      []slot
	free       []uint32
	doomed     []EntityID
	components map[ComponentType]map[EntityID]Component
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		components: make(map[ComponentType]map[EntityID]Component),
	}
}

// CreateEntity mints a new entity ID and marks it alive.
func (w *World) CreateEntity() EntityID {
	if n := len(w.free); n > 0 {
		idx := w.free[n-1]
		w.free = w.free[:n-1]
		s := &w.slots[idx]
		s.alive = true
		return makeID(idx, s.gen)
	}
	idx := uint32(len(w.slots))
	w.slots = append(w.slots, slot{gen: 1, alive: true})
	return makeID(idx, 1)
}

// live reports whether id names the current occupant of its slot, including
// entities marked for deletion but not yet reclaimed.
func (w *World) live(id EntityID) bool {
	i := id.Index()
	if id == NilEntity || int(i) >= len(w.slots) {
		return false
	}
	s := w.slots[i]
	return s.alive && s.gen == id.Generation()
}

// Alive reports whether the entity exists and has not been deleted.
func (w *World) Alive(id EntityID) bool {
	return w.live(id) && !w.slots[id.Index()].doomed
}

// Delete marks the entity for removal. It disappears from Get, Has and Query
// at once; its storage is released at the next Maintain.
func (w *World) Delete(id EntityID) {
	if !w.Alive(id) {
		return
	}
	w.slots[id.Index()].doomed = true
	w.doomed = append(w.doomed, id)
}

// Pending returns the number of entities waiting for Maintain.
func (w *World) Pending() int { return len(w.doomed) }

// Maintain reclaims every entity marked by Delete and returns how many were
// removed. It is the synchronization point run once per pipeline pass.
func (w *World) Maintain() int {
	n := len(w.doomed)
	for _, id := range w.doomed {
		for _, store := range w.components {
			delete(store, id)
		}
		s := &w.slots[id.Index()]
		s.alive = false
		s.doomed = false
		s.gen++
		w.free = append(w.free, id.Index())
	}
	w.doomed = w.doomed[:0]
	return n
}

// Add attaches a component to an entity, replacing any previous component of
// the same type. Adding to an entity that does not exist is a programming
// error and panics.
func (w *World) Add(id EntityID, c Component) {
	if !w.live(id) {
		panic(fmt.Sprintf("ecs: add %T to unknown entity %v", c, id))
	}
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	w.components[t][id] = c
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	store := w.components[t]
	if store == nil || !w.Alive(id) {
		return nil
	}
	return store[id]
}

// Remove detaches a component from an entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	if store := w.components[t]; store != nil {
		delete(store, id)
	}
}

// Clear detaches the given component type from every entity.
func (w *World) Clear(t ComponentType) {
	delete(w.components, t)
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Query returns all alive entities that have every listed component type,
// ordered by slot index.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Use the smallest store as the candidate set.
	smallest := types[0]
	for _, t := range types[1:] {
		if len(w.components[t]) < len(w.components[smallest]) {
			smallest = t
		}
	}
	store := w.components[smallest]
	if store == nil {
		return nil
	}
	var result []EntityID
	for id := range store {
		if !w.Alive(id) {
			continue
		}
		match := true
		for _, t := range types {
			if t == smallest {
				continue
			}
			if !w.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	sortByIndex(result)
	return result
}

// Entities returns every alive entity ordered by slot index.
func (w *World) Entities() []EntityID {
	var ids []EntityID
	for i, s := range w.slots {
		if s.alive && !s.doomed {
			ids = append(ids, makeID(uint32(i), s.gen))
		}
	}
	return ids
}

// Components returns every component attached to id, ordered by type.
func (w *World) Components(id EntityID) []Component {
	if !w.Alive(id) {
		return nil
	}
	var out []Component
	for _, store := range w.components {
		if c, ok := store[id]; ok {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b Component) int { return cmp.Compare(a.Type(), b.Type()) })
	return out
}

// Generations returns the current generation of every slot. Together with
// Entities it is enough to rebuild a World whose handles resolve identically.
func (w *World) Generations() []uint32 {
	gens := make([]uint32, len(w.slots))
	for i, s := range w.slots {
		gens[i] = s.gen
	}
	return gens
}

// FreeSlots returns the reclaimed slots in reuse order: the last entry is
// handed out first. Pending deletions are not included until Maintain.
func (w *World) FreeSlots() []uint32 {
	return append([]uint32{}, w.free...)
}

// Restore rebuilds a World from a slot generation table, the set of
// entities that were alive and the free list. Every slot that is not live
// must appear in free exactly once. Components are re-attached by the
// caller.
func Restore(generations []uint32, live []EntityID, free []uint32) (*World, error) {
	w := NewWorld()
	w.slots = make([]slot, len(generations))
	for i, g := range generations {
		if g == 0 {
			return nil, fmt.Errorf("ecs: slot %d has zero generation", i)
		}
		w.slots[i].gen = g
	}
	for _, id := range live {
		i := id.Index()
		if int(i) >= len(w.slots) || w.slots[i].gen != id.Generation() {
			return nil, fmt.Errorf("ecs: entity %v does not match slot table", id)
		}
		if w.slots[i].alive {
			return nil, fmt.Errorf("ecs: entity %v listed twice", id)
		}
		w.slots[i].alive = true
	}
	if len(live)+len(free) != len(w.slots) {
		return nil, fmt.Errorf("ecs: %d live and %d free entries for %d slots", len(live), len(free), len(w.slots))
	}
	seen := make([]bool, len(w.slots))
	for _, i := range free {
		if int(i) >= len(w.slots) || w.slots[i].alive || seen[i] {
			return nil, fmt.Errorf("ecs: free slot %d is invalid", i)
		}
		seen[i] = true
	}
	w.free = append(w.free, free...)
	return w, nil
}

func sortByIndex(ids []EntityID) {
	slices.SortFunc(ids, func(a, b EntityID) int { return cmp.Compare(a.Index(), b.Index()) })
}
