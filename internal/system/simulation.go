package system

import (
	"time"

	"github.com/l1jgo/bestiary/internal/core/event"
	coresys "github.com/l1jgo/bestiary/internal/core/system"
	"github.com/l1jgo/bestiary/internal/persist"
)

// Simulation drives a Fight on the phase runner until the player leaves,
// the monsters are gone or the turn limit is reached.
type Simulation struct {
	fight   *Fight
	runner  *coresys.Runner
	cleanup *CleanupSystem
	persist *PersistenceSystem
	unwatch func()
}

// Outcome summarizes a finished simulation.
type Outcome struct {
	Turns      int
	PlayerDead bool
	DiedFrom   string
	Slain      int
	Left       int // monsters still standing
}

// NewSimulation registers the systems of a fight. Lore changes are routed
// through the event bus to the persistence system until Close; store may
// be nil.
func NewSimulation(f *Fight, spells *SpellSystem, store persist.LoreStore, persistInterval int) *Simulation {
	if f.Bus == nil {
		f.Bus = event.NewBus()
	}
	bus := f.Bus
	s := &Simulation{
		fight:   f,
		runner:  coresys.NewRunner(),
		cleanup: NewCleanupSystem(f),
		persist: NewPersistenceSystem(f.Lore, store, bus, f.Log, persistInterval),
	}
	s.runner.Register(NewEventDispatchSystem(bus))
	s.runner.Register(NewMonsterTurnSystem(f, NewMeleeSystem(f.Log), spells))
	s.runner.Register(NewRegenSystem(f))
	s.runner.Register(s.persist)
	s.runner.Register(s.cleanup)
	s.unwatch = f.Lore.Watch(func(raceID int) {
		event.Emit(bus, event.LoreChanged{RaceID: raceID})
	})
	return s
}

// Close stops routing lore changes to the simulation's bus.
func (s *Simulation) Close() {
	s.unwatch()
}

// Step runs one tick.
func (s *Simulation) Step(dt time.Duration) {
	s.runner.Tick(dt)
}

// Run ticks until the fight is over or maxTurns have passed, then saves
// all lore. onTurn, when set, is called after every tick.
func (s *Simulation) Run(maxTurns int, dt time.Duration, onTurn func(turn int)) Outcome {
	p := s.fight.Arena.Player
	turns := 0
	for turns < maxTurns && !p.Leaving && s.fight.Arena.MonsterCount() > 0 {
		s.Step(dt)
		turns++
		if onTurn != nil {
			onTurn(turns)
		}
	}
	// deliver the last tick's events, then flush everything
	s.runner.TickPhase(coresys.PhasePreUpdate, dt)
	s.persist.SaveAll()
	return Outcome{
		Turns:      turns,
		PlayerDead: p.Dead,
		DiedFrom:   p.DiedFrom,
		Slain:      s.cleanup.Slain,
		Left:       s.fight.Arena.MonsterCount(),
	}
}
