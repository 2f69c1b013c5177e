package world

import (
	"sync/atomic"

	"github.com/l1jgo/bestiary/internal/core/grammar"
	"github.com/l1jgo/bestiary/internal/data"
)

// monsterIDCounter generates unique monster object IDs.
var monsterIDCounter atomic.Int32

func init() {
	monsterIDCounter.Store(200_000)
}

// NextMonsterID returns a unique object ID for a monster instance.
func NextMonsterID() int32 {
	return monsterIDCounter.Add(1)
}

// Monster holds runtime data for a live monster.
// Accessed only from the combat goroutine, so no locks.
type Monster struct {
	ID    int32 // unique object ID (from NextMonsterID)
	Race  *data.Race
	HP    int
	MaxHP int
	Speed int
	X, Y  int

	Timed [data.MonsterTimedCount]int

	Visible bool
	Dead    bool

	// Smart is what this monster has learned about the player.
	Smart data.PlayerFlags

	// Carried is loot picked up or stolen; dropped on death.
	Carried []*InvItem
	Gold    int
}

// NewMonster creates a monster of race r with average hit points.
func NewMonster(r *data.Race) *Monster {
	hp := max(r.HP, 1)
	return &Monster{
		ID:      NextMonsterID(),
		Race:    r,
		HP:      hp,
		MaxHP:   hp,
		Speed:   r.Speed,
		Visible: true,
	}
}

// DescMode selects how a monster is named in a message.
type DescMode int

const (
	DescDefinite   DescMode = iota // "the kobold"
	DescIndefinite                 // "a kobold"
	DescCapital                    // "The kobold"
)

// Desc names the monster for a message. Unseen monsters are "it".
func (m *Monster) Desc(mode DescMode) string {
	var s string
	switch {
	case !m.Visible && mode != DescIndefinite:
		s = "it"
	case m.Race.Unique():
		s = m.Race.Name
	case mode == DescIndefinite:
		s = grammar.Article(m.Race.Name) + " " + m.Race.Name
	default:
		s = "the " + m.Race.Name
	}
	if mode == DescCapital {
		return grammar.Capitalize(s)
	}
	return s
}

// Heal restores hit points up to the maximum.
func (m *Monster) Heal(n int) {
	m.HP = min(m.HP+max(n, 0), m.MaxHP)
}

// Sleeping reports whether the monster is asleep.
func (m *Monster) Sleeping() bool {
	return m.Timed[data.MonSleep] > 0
}

// Wake clears sleep. It returns true if the monster was asleep.
func (m *Monster) Wake() bool {
	if m.Timed[data.MonSleep] == 0 {
		return false
	}
	m.Timed[data.MonSleep] = 0
	return true
}

// Carry adds an item to the monster's loot.
func (m *Monster) Carry(it *InvItem) {
	m.Carried = append(m.Carried, it)
}

// TakeDamage hurts the monster and reports whether it died.
func (m *Monster) TakeDamage(dam int) bool {
	if m.Dead || dam <= 0 {
		return false
	}
	m.HP -= dam
	if m.HP < 0 {
		m.Dead = true
	}
	return m.Dead
}
