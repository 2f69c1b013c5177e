package world

import "github.com/l1jgo/bestiary/internal/data"

// Stat values run from 3 to StatMax; values above 18 stand for 18/xx.
const (
	StatMin = 3
	StatMax = 118
)

// Skills are the derived player abilities combat consults.
type Skills struct {
	Save        int // percent chance to resist a saving-throw effect
	TheftSafety int // dexterity part of the theft save
	Melee       int // base melee skill
	ToHit       int // to-hit bonus from stats
}

// SkillCalc derives skills and level from the raw character. The Lua
// scripting engine implements it.
type SkillCalc interface {
	PlayerSkills(level int, stats [data.StatCount]int) Skills
	LevelFromExp(exp int) int
}

// Player holds in-memory data for the character under attack.
// Accessed only from the combat goroutine; no locks needed.
type Player struct {
	Name     string
	Level    int
	MaxLevel int
	Exp      int
	MaxExp   int
	HP       int
	MaxHP    int
	SP       int // spell points
	MaxSP    int
	Gold     int
	Food     int

	Stats    [data.StatCount]int // current values
	MaxStats [data.StatCount]int // undrained values

	BaseAC int
	ToA    int

	Intrinsic data.PlayerFlags // race and class flags
	Noticed   data.PlayerFlags // flags the player has seen in action

	Timed  [data.TimedEffectCount]int
	Skills Skills

	Inv   *Inventory
	Equip Equipment // value type, zero-initialized = all slots empty

	X, Y  int
	Depth int

	Dead     bool
	DiedFrom string
	Leaving  bool // left the fight: level teleport or death

	rules SkillCalc
}

// NewPlayer creates a level 1 character with average stats.
func NewPlayer(name string) *Player {
	p := &Player{
		Name:     name,
		Level:    1,
		MaxLevel: 1,
		HP:       20,
		MaxHP:    20,
		Food:     5000,
		Inv:      NewInventory(),
	}
	for s := range p.Stats {
		p.Stats[s] = 15
		p.MaxStats[s] = 15
	}
	return p
}

// Recalc derives skills and level through rules. A nil rules keeps the
// current values.
func (p *Player) Recalc(rules SkillCalc) {
	if rules == nil {
		return
	}
	p.rules = rules
	p.Level = max(rules.LevelFromExp(p.Exp), 1)
	p.MaxLevel = max(p.MaxLevel, p.Level)
	p.Skills = rules.PlayerSkills(p.Level, p.Stats)
}

// Flags returns every flag the player has, intrinsic and worn.
func (p *Player) Flags() data.PlayerFlags {
	return p.Intrinsic.Union(p.Equip.Stats().Flags)
}

// Has reports whether the player has flag f.
func (p *Player) Has(f data.PlayerFlag) bool {
	if f == data.PFNone {
		return false
	}
	return p.Flags().Has(f)
}

// Notice marks flag f as seen in action.
func (p *Player) Notice(f data.PlayerFlag) {
	if f != data.PFNone {
		p.Noticed.On(f)
	}
}

// ArmourClass returns the base and magical armour class.
func (p *Player) ArmourClass() (ac, toA int) {
	st := p.Equip.Stats()
	return p.BaseAC + st.AC, p.ToA + st.ToA
}

// TotalAC returns the armour class monsters attack against.
func (p *Player) TotalAC() int {
	ac, toA := p.ArmourClass()
	return ac + toA
}

// TakeHit removes dam hit points. Falling below zero kills the player; the
// killer text is recorded once. It returns true if the player died.
func (p *Player) TakeHit(dam int, killer string) bool {
	if p.Dead || dam <= 0 {
		return false
	}
	p.HP -= dam
	if p.HP >= 0 {
		return false
	}
	p.Dead = true
	p.Leaving = true
	p.DiedFrom = killer
	return true
}

// Heal restores hit points up to the maximum.
func (p *Player) Heal(n int) {
	p.HP = min(p.HP+max(n, 0), p.MaxHP)
}

// DrainStat lowers stat s. A permanent drain lowers the maximum as well.
// It returns false if the stat was already at its floor.
func (p *Player) DrainStat(s data.Stat, permanent bool) bool {
	cur := p.Stats[s]
	if cur <= StatMin {
		return false
	}
	switch {
	case cur > 28:
		cur -= 10
	case cur > 18:
		cur = 18
	default:
		cur--
	}
	p.Stats[s] = cur
	if permanent {
		p.MaxStats[s] = min(p.MaxStats[s], cur)
	}
	p.refresh()
	return true
}

// RestoreStat brings stat s back to its maximum.
func (p *Player) RestoreStat(s data.Stat) bool {
	if p.Stats[s] >= p.MaxStats[s] {
		return false
	}
	p.Stats[s] = p.MaxStats[s]
	p.refresh()
	return true
}

// SwapStats exchanges two stats, current and maximum values alike.
func (p *Player) SwapStats(a, b data.Stat) {
	p.Stats[a], p.Stats[b] = p.Stats[b], p.Stats[a]
	p.MaxStats[a], p.MaxStats[b] = p.MaxStats[b], p.MaxStats[a]
	p.refresh()
}

// LoseExp drains experience. The maximum is kept so it can be restored.
func (p *Player) LoseExp(n int) {
	if n <= 0 {
		return
	}
	p.Exp = max(p.Exp-n, 0)
	p.refresh()
}

// GainExp adds experience and raises the maximum as needed.
func (p *Player) GainExp(n int) {
	p.Exp += max(n, 0)
	p.MaxExp = max(p.MaxExp, p.Exp)
	p.refresh()
}

// DrainMana removes up to n spell points and returns how many were taken.
func (p *Player) DrainMana(n int) int {
	n = min(max(n, 0), p.SP)
	p.SP -= n
	return n
}

// refresh recomputes the derived values after a change.
func (p *Player) refresh() {
	p.Recalc(p.rules)
}
