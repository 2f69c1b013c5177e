package system

import (
	"go.uber.org/zap"

	"github.com/l1jgo/bestiary/internal/core/event"
	"github.com/l1jgo/bestiary/internal/core/rng"
	"github.com/l1jgo/bestiary/internal/lore"
	"github.com/l1jgo/bestiary/internal/world"
)

// Fight is the state every system of a running simulation shares.
type Fight struct {
	Arena  *world.Arena
	RNG    *rng.Rand
	Lore   *lore.Tracker
	Memory *world.Memory
	Msg    *world.MessageLog
	Bus    *event.Bus
	Log    *zap.Logger
}

// Context builds the combat context for monster m acting this turn.
func (f *Fight) Context(m *world.Monster) *CombatContext {
	return &CombatContext{
		Player:    f.Arena.Player,
		Monster:   m,
		RNG:       f.RNG,
		Grid:      f.Arena,
		Lore:      f.Lore,
		Knowledge: f.Memory,
		Msg:       f.Msg,
		Log:       f.Log,
		Bus:       f.Bus,
	}
}
