package world

import (
	"github.com/l1jgo/bestiary/internal/core/rng"
	"github.com/l1jgo/bestiary/internal/data"
)

// Memory records what monsters learn about the player in combat, for use
// by their spell choice. It is separate from the player's lore about them.
type Memory struct {
	Enabled bool
	rng     *rng.Rand
}

// NewMemory returns an enabled memory drawing from r.
func NewMemory(r *rng.Rand) *Memory {
	return &Memory{Enabled: true, rng: r}
}

// Learn teaches m that the player has flag f. Stupid monsters never learn
// and ordinary ones only half the time.
func (mem *Memory) Learn(m *Monster, f data.PlayerFlag) {
	if !mem.Enabled || m == nil || f == data.PFNone {
		return
	}
	if m.Race.Flags.Has(data.RFStupid) {
		return
	}
	if !m.Race.Flags.Has(data.RFSmart) && mem.rng.OneIn(2) {
		return
	}
	m.Smart.On(f)
}

// Knows reports whether m has learned f.
func (mem *Memory) Knows(m *Monster, f data.PlayerFlag) bool {
	return m != nil && f != data.PFNone && m.Smart.Has(f)
}
