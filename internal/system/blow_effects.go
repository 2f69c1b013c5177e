package system

import (
	"fmt"

	"github.com/l1jgo/bestiary/internal/combat"
	"github.com/l1jgo/bestiary/internal/data"
	"github.com/l1jgo/bestiary/internal/world"
)

// blowHandler applies the effect of a landed blow.
type blowHandler func(b *blowState)

var blowHandlers = [data.BlowEffectCount]blowHandler{
	data.EffectNone:     blowNone,
	data.EffectHurt:     blowHurt,
	data.EffectPoison:   blowTimed(data.TimedPoisoned, data.PFResPois, 5, 1),
	data.EffectUnBonus:  blowUnBonus,
	data.EffectUnPower:  blowUnPower,
	data.EffectEatGold:  blowEatGold,
	data.EffectEatItem:  blowEatItem,
	data.EffectEatFood:  blowEatFood,
	data.EffectEatLight: blowEatLight,
	data.EffectAcid:     blowElement(data.ElemAcid, "You are covered in acid!"),
	data.EffectElec:     blowElement(data.ElemElec, "You are struck by electricity!"),
	data.EffectFire:     blowElement(data.ElemFire, "You are enveloped in flames!"),
	data.EffectCold:     blowElement(data.ElemCold, "You are covered with frost!"),
	data.EffectBlind:    blowTimed(data.TimedBlind, data.PFResBlind, 10, 1),
	data.EffectConfuse:  blowTimed(data.TimedConfused, data.PFResConf, 3, 1),
	data.EffectTerrify:  blowTerrify,
	data.EffectParalyze: blowParalyze,
	data.EffectLoseStr:  blowLoseStat(data.StatStr),
	data.EffectLoseInt:  blowLoseStat(data.StatInt),
	data.EffectLoseWis:  blowLoseStat(data.StatWis),
	data.EffectLoseDex:  blowLoseStat(data.StatDex),
	data.EffectLoseCon:  blowLoseStat(data.StatCon),
	data.EffectLoseAll:  blowLoseAll,
	data.EffectShatter:  blowShatter,
	data.EffectExp10:    blowExp(10, 95),
	data.EffectExp20:    blowExp(20, 90),
	data.EffectExp40:    blowExp(40, 75),
	data.EffectExp80:    blowExp(80, 50),
	data.EffectHallu:    blowTimed(data.TimedImage, data.PFResChaos, 3, 2),
}

func init() {
	for e, h := range blowHandlers {
		if h == nil {
			panic(fmt.Sprintf("system: no handler for blow effect %s", data.BlowEffect(e)))
		}
	}
}

// applyBlowEffect dispatches the blow to its effect handler. An effect the
// tables do not know does nothing and deals no damage.
func applyBlowEffect(b *blowState) {
	if !b.blow.Effect.Valid() {
		b.dam = 0
		return
	}
	blowHandlers[b.blow.Effect](b)
}

func blowNone(b *blowState) {
	b.obvious = true
	b.dam = 0
}

func blowHurt(b *blowState) {
	b.obvious = true
	b.dam = combat.ArmourReduce(b.dam, b.ac)
	b.hurt(b.dam)
}

// blowTimed hurts and then inflicts a status lasting base + 1d(rlev/div)
// turns unless the player has the protecting flag.
func blowTimed(eff data.TimedEffect, protect data.PlayerFlag, base, div int) blowHandler {
	return func(b *blowState) {
		cc := b.cc
		b.hurt(b.dam)
		if cc.has(protect) {
			cc.msg("You resist the effects!")
			b.obvious = true
			return
		}
		if ok, msg := cc.Player.IncTimed(eff, base+cc.RNG.Int1(max(b.rlev/div, 1)), false); ok {
			cc.msg("%s", msg)
			b.obvious = true
		}
	}
}

func blowUnBonus(b *blowState) {
	cc := b.cc
	b.hurt(b.dam)
	if cc.has(data.PFResDisen) {
		cc.msg("You resist the effects!")
		b.obvious = true
		return
	}
	if msg, ok := cc.Player.Disenchant(cc.RNG); ok {
		cc.msg("%s", msg)
		b.obvious = true
	}
}

// blowUnPower drains charges from a wand or staff in the pack and feeds
// them to the monster.
func blowUnPower(b *blowState) {
	cc := b.cc
	b.hurt(b.dam)
	for try := 0; try < 10; try++ {
		it := cc.Player.Inv.Slot(cc.RNG.Int0(world.MaxPackSize))
		if it == nil || !it.HasCharges() {
			continue
		}
		drained := min(it.Charges, b.rlev/(it.Level+2)+1)
		cc.msg("Energy drains from your pack!")
		b.obvious = true
		cc.Monster.Heal(b.rlev * drained)
		it.Charges -= drained
		return
	}
	cc.msg("Nothing was drained.")
}

// theftSaved rolls the dexterity and level save against thieves. The
// paralysed get none.
func theftSaved(cc *CombatContext) bool {
	p := cc.Player
	if p.Timed[data.TimedParalyzed] > 0 {
		return false
	}
	return cc.RNG.Int0(100) < p.Skills.TheftSafety+p.Level
}

func blowEatGold(b *blowState) {
	cc := b.cc
	p := cc.Player
	b.hurt(b.dam)
	b.obvious = true
	if theftSaved(cc) {
		cc.msg("You quickly protect your money pouch!")
		if cc.RNG.Int0(3) != 0 {
			b.blinked = true
		}
		return
	}
	gold := combat.StolenGold(p.Gold, cc.RNG)
	p.Gold -= gold
	switch {
	case gold <= 0:
		cc.msg("Nothing was stolen.")
	case p.Gold > 0:
		cc.msg("Your purse feels lighter.")
		cc.msg("%d coins were stolen!", gold)
	default:
		cc.msg("Your purse feels lighter.")
		cc.msg("All of your coins were stolen!")
	}
	cc.Monster.Gold += gold
	b.blinked = true
}

func blowEatItem(b *blowState) {
	cc := b.cc
	inv := cc.Player.Inv
	b.hurt(b.dam)
	if theftSaved(cc) {
		cc.msg("You grab hold of your backpack!")
		b.blinked = true
		b.obvious = true
		return
	}
	for try := 0; try < 10; try++ {
		i := cc.RNG.Int0(world.MaxPackSize)
		it := inv.Slot(i)
		if it == nil || it.Artifact {
			continue
		}
		cc.msg("%s was stolen!", yourItem(it))
		cc.Monster.Carry(inv.TakeOne(i))
		b.obvious = true
		b.blinked = true
		return
	}
	cc.msg("Nothing was stolen.")
}

func blowEatFood(b *blowState) {
	cc := b.cc
	inv := cc.Player.Inv
	b.hurt(b.dam)
	for try := 0; try < 10; try++ {
		i := cc.RNG.Int0(world.MaxPackSize)
		it := inv.Slot(i)
		if it == nil || it.Kind != world.KindFood {
			continue
		}
		cc.msg("%s was eaten!", yourItem(it))
		inv.TakeOne(i)
		b.obvious = true
		return
	}
	cc.msg("Nothing was eaten.")
}

func blowEatLight(b *blowState) {
	cc := b.cc
	b.hurt(b.dam)
	light := cc.Player.Equip.Light()
	if light == nil {
		cc.msg("Nothing was drained.")
		return
	}
	if light.Turns <= 0 || light.Artifact {
		cc.msg("Your light is unaffected.")
		return
	}
	light.Turns = max(light.Turns-(250+cc.RNG.Int1(250)), 1)
	if cc.Player.Timed[data.TimedBlind] == 0 {
		cc.msg("Your light dims!")
		b.obvious = true
	}
}

// yourItem names one unit of a pack stack at the start of a message.
func yourItem(it *world.InvItem) string {
	if it.Count > 1 {
		return "One of your " + it.Name
	}
	return "Your " + it.Name
}

// blowElement deals elemental damage adjusted by the player's resistance.
// Armour may soak half of an acid blow, and whatever is not immune may
// lose pack items.
func blowElement(elem data.Element, text string) blowHandler {
	return func(b *blowState) {
		cc := b.cc
		p := cc.Player
		info := elem.Info()
		b.obvious = true
		cc.msg("%s", text)

		level := combat.ResistLevelFor(elem, p.Flags())
		switch level {
		case combat.Immune:
			cc.notice(info.Immune)
		case combat.Resistant:
			cc.notice(info.Resist)
		}
		dam := b.dam
		if elem == data.ElemAcid && level != combat.Immune {
			if msg, ok := p.MinusAC(cc.RNG); ok {
				cc.msg("%s", msg)
				dam = (dam + 1) / 2
			}
		}
		dam = combat.AdjustDamage(elem, dam, level, resistRoll(cc, info, level))
		b.hurt(dam)
		if level == combat.Immune {
			return
		}
		for _, msg := range p.InvenDamage(elem, combat.MeleeInventoryPower(b.dam), cc.RNG) {
			cc.msg("%s", msg)
		}
	}
}

// resistRoll draws the variable part of a resist denominator, only when
// one is needed.
func resistRoll(cc *CombatContext, info *data.ElementInfo, level combat.ResistLevel) int {
	if level != combat.Resistant || info.DenomDice == 0 {
		return 0
	}
	return cc.RNG.Int1(info.DenomDice)
}

func blowTerrify(b *blowState) {
	cc := b.cc
	b.hurt(b.dam)
	switch {
	case cc.has(data.PFResFear):
		cc.msg("You stand your ground!")
		b.obvious = true
	case cc.saved():
		cc.msg("You stand your ground!")
		b.obvious = true
	default:
		if ok, msg := cc.Player.IncTimed(data.TimedAfraid, 3+cc.RNG.Int1(b.rlev), false); ok {
			cc.msg("%s", msg)
			b.obvious = true
		}
	}
}

// blowParalyze always deals at least one point of damage.
func blowParalyze(b *blowState) {
	cc := b.cc
	b.dam = max(b.dam, 1)
	b.hurt(b.dam)
	switch {
	case cc.has(data.PFFreeAct):
		cc.msg("You are unaffected!")
		b.obvious = true
	case cc.saved():
		cc.msg("You resist the effects!")
		b.obvious = true
	default:
		if ok, msg := cc.Player.IncTimed(data.TimedParalyzed, 3+cc.RNG.Int1(b.rlev), false); ok {
			cc.msg("%s", msg)
			b.obvious = true
		}
	}
}

func blowLoseStat(s data.Stat) blowHandler {
	return func(b *blowState) {
		b.hurt(b.dam)
		if b.cc.drainStat(s, true, false) {
			b.obvious = true
		}
	}
}

func blowLoseAll(b *blowState) {
	b.hurt(b.dam)
	for s := data.Stat(0); s < data.StatCount; s++ {
		if b.cc.drainStat(s, true, false) {
			b.obvious = true
		}
	}
}

// blowShatter hits like HURT and shakes the ground on a heavy blow. A
// player thrown clear ends the round.
func blowShatter(b *blowState) {
	b.obvious = true
	b.dam = combat.ArmourReduce(b.dam, b.ac)
	b.hurt(b.dam)
	if b.dam > 23 {
		m := b.cc.Monster
		if b.cc.Grid.Earthquake(m.X, m.Y, 8) {
			b.doBreak = true
		}
	}
}

// blowExp drains experience. Hold life saves pct percent of the time and
// otherwise cuts the loss to a tenth.
func blowExp(dice, pct int) blowHandler {
	return func(b *blowState) {
		cc := b.cc
		p := cc.Player
		b.obvious = true
		b.hurt(b.dam)
		if p.Has(data.PFHoldLife) && cc.RNG.Int0(100) < pct {
			cc.notice(data.PFHoldLife)
			cc.msg("You keep hold of your life force!")
			return
		}
		cc.drainExp(cc.RNG.Dice(dice, 6) + (p.Exp/100)*2)
	}
}
