package system

// RunSystems runs one full pass: the death sweep, then every system in
// fixed order, then the deletion sync point. MonsterAI only runs when
// monsterTurn is set.
func RunSystems(env *Env, monsterTurn bool) {
	DeleteTheDead(env)
	MapIndexing(env)
	Visibility(env)
	MeleeCombat(env)
	Damage(env)
	Pickup(env)
	ItemUsage(env)
	ItemDrop(env)
	if monsterTurn {
		MonsterAI(env)
	}
	env.World.Maintain()
}

// Sweep removes combatants killed during the last pass and refreshes the
// tile index so nothing dead is drawn, targeted or bumped into.
func Sweep(env *Env) {
	DeleteTheDead(env)
	if env.World.Pending() == 0 {
		return
	}
	env.World.Maintain()
	MapIndexing(env)
}
