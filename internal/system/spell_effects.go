package system

import (
	"fmt"

	"github.com/l1jgo/bestiary/internal/combat"
	"github.com/l1jgo/bestiary/internal/core/event"
	"github.com/l1jgo/bestiary/internal/data"
	"github.com/l1jgo/bestiary/internal/world"
)

// specialHandler applies a one-shot spell side effect. dam is the damage
// the spell dealt after resistance.
type specialHandler func(cc *CombatContext, row *data.SpellEffect, dam int)

var specialHandlers = [data.SpecialCount]specialHandler{
	data.SpecialNone:          func(*CombatContext, *data.SpellEffect, int) {},
	data.SpecialInvDamage:     specialInvDamage,
	data.SpecialTeleport:      specialTeleport,
	data.SpecialTeleportTo:    specialTeleportTo,
	data.SpecialTeleportLevel: specialTeleportLevel,
	data.SpecialTeleportSelf:  specialTeleportSelf,
	data.SpecialBlink:         specialBlink,
	data.SpecialDrainLife:     specialDrainLife,
	data.SpecialDrainStat:     specialDrainStat,
	data.SpecialSwapStat:      specialSwapStat,
	data.SpecialDrainAll:      specialDrainAll,
	data.SpecialDisenchant:    specialDisenchant,
	data.SpecialDrainMana:     specialDrainMana,
	data.SpecialHeal:          specialHeal,
	data.SpecialHaste:         specialHaste,
	data.SpecialSummon:        specialSummon,
	data.SpecialCreateTraps:   specialCreateTraps,
	data.SpecialDarkness:      specialDarkness,
	data.SpecialAggravate:     specialAggravate,
}

func init() {
	for s, h := range specialHandlers {
		if h == nil {
			panic(fmt.Sprintf("system: no handler for special %s", data.Special(s)))
		}
	}
}

func specialInvDamage(cc *CombatContext, row *data.SpellEffect, dam int) {
	chance := combat.SpellInventoryPower(dam, row.Base.Base)
	for _, msg := range cc.Player.InvenDamage(row.Element, chance, cc.RNG) {
		cc.msg("%s", msg)
	}
}

// specialTeleport moves the player Base grids away. A nonzero MBonus makes
// it level dependent: it only works when 1dMBonus beats the player level.
func specialTeleport(cc *CombatContext, row *data.SpellEffect, _ int) {
	if row.Dam.MBonus > 0 && cc.RNG.Int1(row.Dam.MBonus) <= cc.Player.Level {
		return
	}
	cc.Grid.TeleportPlayer(max(row.Base.Base, 1))
}

func specialTeleportTo(cc *CombatContext, _ *data.SpellEffect, _ int) {
	cc.Grid.TeleportPlayerTo(cc.Monster.X, cc.Monster.Y)
}

func specialTeleportLevel(cc *CombatContext, _ *data.SpellEffect, _ int) {
	if cc.Grid.TeleportPlayerLevel() {
		cc.msg("You rise up through the ceiling.")
	} else {
		cc.msg("You sink through the floor.")
	}
}

// monsterMoved teleports the caster and announces the move.
func monsterMoved(cc *CombatContext, dist int) {
	m := cc.Monster
	if cc.Grid.TeleportMonster(m, dist) && cc.Bus != nil {
		event.Emit(cc.Bus, event.MonsterBlinked{MonsterID: m.ID, X: m.X, Y: m.Y})
	}
}

func specialTeleportSelf(cc *CombatContext, row *data.SpellEffect, _ int) {
	dist := row.Base.Base
	if dist <= 0 {
		dist = 2*world.MaxSight + 5
	}
	monsterMoved(cc, dist)
}

func specialBlink(cc *CombatContext, row *data.SpellEffect, _ int) {
	monsterMoved(cc, max(row.Base.Base, 1))
}

// specialDrainLife drains Base + exp*Sides/100*2 experience.
func specialDrainLife(cc *CombatContext, row *data.SpellEffect, _ int) {
	cc.drainExp(row.Base.Base + cc.Player.Exp*row.Base.Sides/100*2)
}

// specialDrainStat lowers the stat in Base (-1 picks one at random).
// MBonus 2 makes the loss permanent and ignores sustains.
func specialDrainStat(cc *CombatContext, row *data.SpellEffect, _ int) {
	s := data.Stat(row.Base.Base)
	if s < 0 || s >= data.StatCount {
		s = data.Stat(cc.RNG.Int0(int(data.StatCount)))
	}
	permanent := row.Dam.MBonus == 2
	cc.drainStat(s, !permanent, permanent)
}

func specialSwapStat(cc *CombatContext, _ *data.SpellEffect, _ int) {
	a := data.Stat(cc.RNG.Int0(int(data.StatCount)))
	b := data.Stat(cc.RNG.Int0(int(data.StatCount)))
	cc.msg("Your body starts to scramble...")
	cc.Player.SwapStats(a, b)
}

func specialDrainAll(cc *CombatContext, _ *data.SpellEffect, _ int) {
	cc.msg("You're not as powerful as you used to be...")
	for s := data.Stat(0); s < data.StatCount; s++ {
		cc.Player.DrainStat(s, false)
	}
}

func specialDisenchant(cc *CombatContext, _ *data.SpellEffect, _ int) {
	if msg, ok := cc.Player.Disenchant(cc.RNG); ok {
		cc.msg("%s", msg)
	}
}

// specialDrainMana takes up to 1d(rlev)/2+1 mana and heals the caster six
// hit points for each. A smart caster remembers a player with no mana.
func specialDrainMana(cc *CombatContext, _ *data.SpellEffect, _ int) {
	m, p := cc.Monster, cc.Player
	if p.SP <= 0 {
		cc.msg("The draining fails.")
		if m.Race.Flags.Has(data.RFSmart) {
			cc.learn(data.PFNoMana)
		}
		return
	}
	drained := p.DrainMana(cc.RNG.Int1(combat.EffectiveLevel(m.Race))/2 + 1)
	cc.msg("Your mind is drained!")
	if m.HP < m.MaxHP {
		m.Heal(6 * drained)
		if m.Visible {
			cc.msg("%s appears healthier.", cc.name())
		}
	}
}

// specialHeal restores six hit points per caster level and steadies a
// frightened caster.
func specialHeal(cc *CombatContext, _ *data.SpellEffect, _ int) {
	m := cc.Monster
	m.Heal(6 * combat.EffectiveLevel(m.Race))
	if m.Visible {
		if m.HP >= m.MaxHP {
			cc.msg("%s looks completely healed!", cc.name())
		} else {
			cc.msg("%s looks healthier.", cc.name())
		}
	}
	if m.Timed[data.MonAfraid] > 0 {
		m.Timed[data.MonAfraid] = 0
		if m.Visible {
			cc.msg("%s recovers its courage.", cc.name())
		}
	}
}

func specialHaste(cc *CombatContext, row *data.SpellEffect, _ int) {
	m := cc.Monster
	if m.Timed[data.MonFast] == 0 && m.Visible {
		cc.msg("%s starts moving faster.", cc.name())
	}
	m.Timed[data.MonFast] += max(row.Base.Base, 1)
}

// specialSummon calls up to Base.Dice d Base.Sides monsters of the kind in
// Base.Base.
func specialSummon(cc *CombatContext, row *data.SpellEffect, _ int) {
	kind := data.SummonKind(row.Base.Base)
	n := cc.Grid.Summon(cc.Monster, kind, cc.RNG.Dice(row.Base.Dice, row.Base.Sides))
	if n > 0 && cc.Player.Timed[data.TimedBlind] > 0 {
		if n == 1 {
			cc.msg("You hear something appear nearby.")
		} else {
			cc.msg("You hear many things appear nearby.")
		}
	}
}

func specialCreateTraps(cc *CombatContext, _ *data.SpellEffect, _ int) {
	if cc.Grid.CreateTraps(cc.Player.X, cc.Player.Y) > 0 && cc.Player.Timed[data.TimedBlind] > 0 {
		cc.msg("You hear a grinding sound.")
	}
}

func specialDarkness(cc *CombatContext, _ *data.SpellEffect, _ int) {
	cc.Grid.Darken(cc.Player.X, cc.Player.Y)
	if cc.Player.Timed[data.TimedBlind] == 0 {
		cc.msg("Darkness surrounds you.")
	}
}

func specialAggravate(cc *CombatContext, _ *data.SpellEffect, _ int) {
	cc.Grid.Aggravate(cc.Monster)
	cc.msg("You hear a sudden stirring in the distance!")
}
