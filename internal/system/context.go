package system

import (
	"go.uber.org/zap"

	"github.com/l1jgo/bestiary/internal/core/event"
	"github.com/l1jgo/bestiary/internal/core/rng"
	"github.com/l1jgo/bestiary/internal/data"
	"github.com/l1jgo/bestiary/internal/lore"
	"github.com/l1jgo/bestiary/internal/world"
)

// Grid is the dungeon a fight plays out in. world.Arena implements it.
type Grid interface {
	Adjacent(m *world.Monster) bool
	MonsterVisible(m *world.Monster) bool
	// Earthquake reports whether the player was moved.
	Earthquake(x, y, radius int) bool
	TeleportPlayer(dist int) bool
	TeleportPlayerTo(x, y int) bool
	// TeleportPlayerLevel reports true when the player went up.
	TeleportPlayerLevel() bool
	TeleportMonster(m *world.Monster, dist int) bool
	Summon(caster *world.Monster, kind data.SummonKind, count int) int
	CreateTraps(x, y int) int
	Darken(x, y int)
	Aggravate(caster *world.Monster) int
}

// PlayerLore is what the player learns about monster races.
// lore.Tracker implements it.
type PlayerLore interface {
	RecordBlowObserved(raceID, slot int)
	RecordPlayerDeath(raceID int)
	RecordSpell(raceID int, id data.SpellID, innate bool)
	ObserveFlag(raceID int, f data.RaceFlag)
	Get(raceID int) lore.Record
}

// MonsterKnowledge is what monsters learn about the player.
// world.Memory implements it.
type MonsterKnowledge interface {
	Learn(m *world.Monster, f data.PlayerFlag)
	Knows(m *world.Monster, f data.PlayerFlag) bool
}

// CombatContext carries everything one monster's action needs. Nothing in
// the resolvers reaches for global state.
type CombatContext struct {
	Player    *world.Player
	Monster   *world.Monster
	RNG       *rng.Rand
	Grid      Grid
	Lore      PlayerLore
	Knowledge MonsterKnowledge
	Msg       *world.MessageLog
	Log       *zap.Logger
	Bus       *event.Bus // optional
}

func (cc *CombatContext) msg(format string, args ...any) {
	cc.Msg.Addf(format, args...)
}

// name is the capitalized monster name for the start of a message.
func (cc *CombatContext) name() string {
	return cc.Monster.Desc(world.DescCapital)
}

// visible refreshes and returns whether the player sees the monster.
func (cc *CombatContext) visible() bool {
	cc.Monster.Visible = cc.Grid.MonsterVisible(cc.Monster)
	return cc.Monster.Visible
}

// learn teaches the monster a player flag, when a memory is wired.
func (cc *CombatContext) learn(f data.PlayerFlag) {
	if cc.Knowledge != nil {
		cc.Knowledge.Learn(cc.Monster, f)
	}
}

// notice reveals a player flag and teaches it to the monster.
func (cc *CombatContext) notice(f data.PlayerFlag) {
	cc.Player.Notice(f)
	cc.learn(f)
}

// killed finishes a player death caused by the monster. The lore death
// counter moves exactly once per death.
func (cc *CombatContext) killed() {
	race := cc.Monster.Race
	cc.Lore.RecordPlayerDeath(race.ID)
	cc.Log.Info("player killed",
		zap.String("race", race.Name),
		zap.String("died_from", cc.Player.DiedFrom))
	if cc.Bus != nil {
		event.Emit(cc.Bus, event.PlayerKilled{RaceID: race.ID, MonsterID: cc.Monster.ID, DiedFrom: cc.Player.DiedFrom})
	}
}

// hurt applies damage from the monster, naming it as the killer. It
// returns true if this blow killed the player.
func (cc *CombatContext) hurt(dam int) bool {
	return cc.Player.TakeHit(dam, cc.Monster.Desc(world.DescIndefinite))
}

// has reports whether the player has f, noticing it and teaching the
// monster when so.
func (cc *CombatContext) has(f data.PlayerFlag) bool {
	if !cc.Player.Has(f) {
		return false
	}
	cc.notice(f)
	return true
}

// saved rolls the player's saving throw.
func (cc *CombatContext) saved() bool {
	return cc.RNG.Int0(100) < cc.Player.Skills.Save
}

var statLoss = [data.StatCount]string{"weak", "stupid", "naive", "clumsy", "sickly"}

// drainStat lowers a player stat with the usual narration. A sustainable
// drain is stopped by the matching sustain. It reports whether the player
// noticed anything.
func (cc *CombatContext) drainStat(s data.Stat, sustainable, permanent bool) bool {
	if sustainable && cc.has(s.Sustain()) {
		cc.msg("You feel very %s for a moment, but the feeling passes.", statLoss[s])
		return true
	}
	if !cc.Player.DrainStat(s, permanent) {
		return false
	}
	cc.msg("You feel very %s.", statLoss[s])
	return true
}

// drainExp removes experience, softened by hold life.
func (cc *CombatContext) drainExp(d int) {
	if cc.has(data.PFHoldLife) {
		cc.msg("You feel your life slipping away!")
		cc.Player.LoseExp(d / 10)
		return
	}
	cc.msg("You feel your life draining away!")
	cc.Player.LoseExp(d)
}
