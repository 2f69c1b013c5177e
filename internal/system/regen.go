package system

import (
	"time"

	coresys "github.com/l1jgo/bestiary/internal/core/system"
	"github.com/l1jgo/bestiary/internal/data"
	"github.com/l1jgo/bestiary/internal/world"
)

// RegenSystem runs down timed effects once per tick: the player's statuses
// (poison and cuts bite first) and the monsters' sleep, haste, confusion,
// fear and stun. Phase 2 (PostUpdate).
type RegenSystem struct {
	fight *Fight
}

func NewRegenSystem(f *Fight) *RegenSystem {
	return &RegenSystem{fight: f}
}

func (s *RegenSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *RegenSystem) Update(_ time.Duration) {
	p := s.fight.Arena.Player
	if !p.Dead {
		for _, msg := range p.TickTimed() {
			s.fight.Msg.Add(msg)
		}
	}
	for _, m := range s.fight.Arena.Monsters() {
		s.tickMonster(m)
	}
}

func (s *RegenSystem) tickMonster(m *world.Monster) {
	for t := data.MonsterTimed(0); t < data.MonsterTimedCount; t++ {
		if m.Timed[t] == 0 {
			continue
		}
		m.Timed[t]--
		if m.Timed[t] > 0 || !m.Visible {
			continue
		}
		name := m.Desc(world.DescCapital)
		switch t {
		case data.MonSleep:
			s.fight.Msg.Addf("%s wakes up.", name)
		case data.MonFast:
			s.fight.Msg.Addf("%s is no longer fast.", name)
		case data.MonAfraid:
			s.fight.Msg.Addf("%s recovers its courage.", name)
		}
	}
}
