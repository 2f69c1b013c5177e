package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/l1jgo/bestiary/internal/core/event"
	coresys "github.com/l1jgo/bestiary/internal/core/system"
	"github.com/l1jgo/bestiary/internal/world"
)

// CleanupSystem takes dead monsters off the board at tick end, counting
// the kill and the loot they drop. Phase 4 (Cleanup).
type CleanupSystem struct {
	fight *Fight
	Slain int
}

func NewCleanupSystem(f *Fight) *CleanupSystem {
	return &CleanupSystem{fight: f}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	for _, m := range s.fight.Arena.Dead() {
		race := m.Race
		s.fight.Lore.RecordKill(race.ID)
		if m.Visible {
			gold := 0
			if m.Gold > 0 {
				gold = 1
			}
			s.fight.Lore.RecordDrop(race.ID, len(m.Carried), gold)
			s.fight.Msg.Addf("%s dies.", m.Desc(world.DescCapital))
		}
		s.fight.Log.Debug("monster slain", zap.String("race", race.Name), zap.Int32("id", m.ID))
		if s.fight.Bus != nil {
			event.Emit(s.fight.Bus, event.MonsterSlain{RaceID: race.ID, MonsterID: m.ID})
		}
		s.fight.Arena.RemoveMonster(m)
		s.Slain++
	}
}
