package game

import "dungeoncrawl/internal/ecs"

// RunState is the turn state machine. Each variant carries its own data.
type RunState interface {
	// Kind is the stable name of the state, as stored in save files.
	Kind() string
	runState()
}

// MenuSelection is the highlighted main menu entry.
type MenuSelection uint8

const (
	NewGame MenuSelection = iota
	LoadGame
	Quit
)

func (s MenuSelection) String() string {
	switch s {
	case NewGame:
		return "Begin New Game"
	case LoadGame:
		return "Load Game"
	case Quit:
		return "Quit"
	}
	return "?"
}

type (
	MainMenu      struct{ Selection MenuSelection }
	PreRun        struct{}
	AwaitingInput struct{}
	PlayerTurn    struct{}
	MonsterTurn   struct{}
	ShowInventory struct{}
	ShowDropItem  struct{}
	// ShowTargeting waits for a target cell within Range of the player for
	// the backpack item Item.
	ShowTargeting struct {
		Range int
		Item  ecs.EntityID
	}
	SaveGame  struct{}
	NextLevel struct{}
)

func (MainMenu) Kind() string      { return "main_menu" }
func (PreRun) Kind() string        { return "pre_run" }
func (AwaitingInput) Kind() string { return "awaiting_input" }
func (PlayerTurn) Kind() string    { return "player_turn" }
func (MonsterTurn) Kind() string   { return "monster_turn" }
func (ShowInventory) Kind() string { return "show_inventory" }
func (ShowDropItem) Kind() string  { return "show_drop_item" }
func (ShowTargeting) Kind() string { return "show_targeting" }
func (SaveGame) Kind() string      { return "save_game" }
func (NextLevel) Kind() string     { return "next_level" }

func (MainMenu) runState()      {}
func (PreRun) runState()        {}
func (AwaitingInput) runState() {}
func (PlayerTurn) runState()    {}
func (MonsterTurn) runState()   {}
func (ShowInventory) runState() {}
func (ShowDropItem) runState()  {}
func (ShowTargeting) runState() {}
func (SaveGame) runState()      {}
func (NextLevel) runState()     {}

// WantsInput reports whether s only changes in response to a command.
// States that do not are advanced by plain ticks.
func WantsInput(s RunState) bool {
	switch s.(type) {
	case MainMenu, AwaitingInput, ShowInventory, ShowDropItem, ShowTargeting:
		return true
	}
	return false
}
