package game

import (
	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamemap"
)

// BackpackItem is one entry of the item menus.
type BackpackItem struct {
	ID   ecs.EntityID
	Name string
}

// Backpack lists the items the player carries, in entity order.
func (e *Engine) Backpack() []BackpackItem {
	if e.world == nil {
		return nil
	}
	w := e.world
	var out []BackpackItem
	for _, id := range w.Query(component.CItem, component.CInBackpack) {
		if w.Get(id, component.CInBackpack).(component.InBackpack).Owner != e.player {
			continue
		}
		name := "item"
		if c := w.Get(id, component.CName); c != nil {
			name = c.(component.Name).Name
		}
		out = append(out, BackpackItem{ID: id, Name: name})
	}
	return out
}

// selected resolves a SelectItem command against the backpack.
func (e *Engine) selected(cmd Command) (ecs.EntityID, bool) {
	c, ok := cmd.(SelectItem)
	if !ok {
		return ecs.NilEntity, false
	}
	items := e.Backpack()
	if c.Index < 0 || c.Index >= len(items) {
		return ecs.NilEntity, false
	}
	return items[c.Index].ID, true
}

func (e *Engine) inventoryMenu(cmd Command) RunState {
	if _, ok := cmd.(Cancel); ok {
		return AwaitingInput{}
	}
	item, ok := e.selected(cmd)
	if !ok {
		return ShowInventory{}
	}
	if c := e.world.Get(item, component.CRanged); c != nil {
		return ShowTargeting{Range: c.(component.Ranged).Range, Item: item}
	}
	e.world.Add(e.player, component.WantsToUseItem{Item: item})
	return PlayerTurn{}
}

func (e *Engine) dropMenu(cmd Command) RunState {
	if _, ok := cmd.(Cancel); ok {
		return AwaitingInput{}
	}
	item, ok := e.selected(cmd)
	if !ok {
		return ShowDropItem{}
	}
	e.world.Add(e.player, component.WantsToDropItem{Item: item})
	return PlayerTurn{}
}

func (e *Engine) targeting(s ShowTargeting, cmd Command) RunState {
	if _, ok := cmd.(Cancel); ok {
		return AwaitingInput{}
	}
	cells := e.targetCells(s.Range)
	if len(cells) == 0 {
		e.log.Add("There is nothing in range.")
		return AwaitingInput{}
	}
	c, ok := cmd.(Target)
	if !ok {
		return s
	}
	for _, p := range cells {
		if p == c.Point {
			pt := p
			e.world.Add(e.player, component.WantsToUseItem{Item: s.Item, Target: &pt})
			return PlayerTurn{}
		}
	}
	return s
}

// TargetCells returns the cells a target may be chosen from while the
// engine is targeting, and nil otherwise.
func (e *Engine) TargetCells() []gamemap.Point {
	s, ok := e.state.(ShowTargeting)
	if !ok {
		return nil
	}
	return e.targetCells(s.Range)
}

// targetCells keeps the player's visible tiles within rng of the player.
func (e *Engine) targetCells(rng int) []gamemap.Point {
	pos, ok := e.env().PlayerPos()
	if !ok {
		return nil
	}
	c := e.world.Get(e.player, component.CViewshed)
	if c == nil {
		return nil
	}
	var out []gamemap.Point
	for _, p := range c.(component.Viewshed).VisibleTiles {
		if gamemap.Distance(pos, p) <= float64(rng) {
			out = append(out, p)
		}
	}
	return out
}
