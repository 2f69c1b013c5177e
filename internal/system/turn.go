package system

import (
	"time"

	"go.uber.org/zap"

	coresys "github.com/l1jgo/bestiary/internal/core/system"
	"github.com/l1jgo/bestiary/internal/data"
	"github.com/l1jgo/bestiary/internal/world"
)

// MonsterTurnSystem gives every awake monster one action per tick: an
// innate attack or a spell at the race's frequency, otherwise a melee
// round when adjacent or a step toward the player. Phase 1 (Update).
type MonsterTurnSystem struct {
	fight  *Fight
	melee  *MeleeSystem
	spells *SpellSystem
	seen   map[int32]bool
}

func NewMonsterTurnSystem(f *Fight, melee *MeleeSystem, spells *SpellSystem) *MonsterTurnSystem {
	return &MonsterTurnSystem{fight: f, melee: melee, spells: spells, seen: make(map[int32]bool)}
}

func (s *MonsterTurnSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *MonsterTurnSystem) Update(_ time.Duration) {
	p := s.fight.Arena.Player
	for _, m := range s.fight.Arena.Monsters() {
		if p.Leaving {
			return
		}
		if m.Dead || m.Sleeping() {
			continue
		}
		s.act(s.fight.Context(m))
	}
}

// act resolves one monster's turn.
func (s *MonsterTurnSystem) act(cc *CombatContext) {
	m := cc.Monster
	race := m.Race
	visible := cc.visible()
	if visible && !s.seen[m.ID] {
		s.seen[m.ID] = true
		s.fight.Lore.RecordSighting(race.ID)
	}

	if s.tryCast(cc, race.FreqInnate, true, visible) || s.tryCast(cc, race.FreqSpell, false, visible) {
		return
	}
	switch {
	case m.Timed[data.MonAfraid] > 0:
	case s.fight.Arena.Adjacent(m):
		s.melee.ResolveRound(cc)
	case !race.Flags.Has(data.RFNeverMove):
		s.fight.Arena.StepToward(m)
	}
}

// tryCast casts a spell of the given kind with a 1 in freq chance.
func (s *MonsterTurnSystem) tryCast(cc *CombatContext, freq int, innate, seen bool) bool {
	if s.spells == nil || freq <= 0 || !cc.RNG.OneIn(freq) {
		return false
	}
	id, ok := s.spells.Choose(cc, innate)
	if !ok {
		return false
	}
	cc.Log.Debug("monster casts",
		zap.String("race", cc.Monster.Race.Name),
		zap.Stringer("spell", id))
	return s.spells.Cast(cc, id, seen)
}

// world.Arena is the grid simulations run on.
var _ Grid = (*world.Arena)(nil)
