package world

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/l1jgo/bestiary/internal/core/rng"
	"github.com/l1jgo/bestiary/internal/data"
)

func TestTakeHitKillsBelowZero(t *testing.T) {
	p := NewPlayer("Tester")
	p.HP = 10

	assert.False(t, p.TakeHit(10, "a kobold"))
	assert.Equal(t, 0, p.HP)
	assert.False(t, p.Dead)

	assert.True(t, p.TakeHit(1, "a jackal"))
	assert.True(t, p.Dead)
	assert.True(t, p.Leaving)
	assert.Equal(t, "a jackal", p.DiedFrom)

	// the first killer is kept
	assert.False(t, p.TakeHit(5, "a kobold"))
	assert.Equal(t, "a jackal", p.DiedFrom)
}

func TestDrainAndRestoreStat(t *testing.T) {
	p := NewPlayer("Tester")

	assert.True(t, p.DrainStat(data.StatStr, false))
	assert.Equal(t, 14, p.Stats[data.StatStr])
	assert.Equal(t, 15, p.MaxStats[data.StatStr])
	assert.True(t, p.RestoreStat(data.StatStr))
	assert.Equal(t, 15, p.Stats[data.StatStr])
	assert.False(t, p.RestoreStat(data.StatStr))

	p.Stats[data.StatDex], p.MaxStats[data.StatDex] = 48, 48
	assert.True(t, p.DrainStat(data.StatDex, true))
	assert.Equal(t, 38, p.Stats[data.StatDex])
	assert.Equal(t, 38, p.MaxStats[data.StatDex])

	p.Stats[data.StatCon] = 25
	p.DrainStat(data.StatCon, false)
	assert.Equal(t, 18, p.Stats[data.StatCon])

	p.Stats[data.StatWis] = StatMin
	assert.False(t, p.DrainStat(data.StatWis, false))
}

func TestSwapStatsAndExperience(t *testing.T) {
	p := NewPlayer("Tester")
	p.Stats[data.StatStr], p.MaxStats[data.StatStr] = 18, 18
	p.SwapStats(data.StatStr, data.StatInt)
	assert.Equal(t, 15, p.Stats[data.StatStr])
	assert.Equal(t, 18, p.MaxStats[data.StatInt])

	p.GainExp(100)
	p.LoseExp(40)
	assert.Equal(t, 60, p.Exp)
	assert.Equal(t, 100, p.MaxExp)
	p.LoseExp(500)
	assert.Equal(t, 0, p.Exp)
}

func TestIncTimedRespectsProtection(t *testing.T) {
	p := NewPlayer("Tester")

	changed, msg := p.IncTimed(data.TimedConfused, 5, true)
	assert.True(t, changed)
	assert.Equal(t, "You are confused!", msg)
	changed, msg = p.IncTimed(data.TimedConfused, 5, true)
	assert.True(t, changed)
	assert.Equal(t, "You are more confused!", msg)
	assert.Equal(t, 10, p.Timed[data.TimedConfused])

	p.Intrinsic.On(data.PFResConf)
	changed, msg = p.IncTimed(data.TimedConfused, 5, true)
	assert.False(t, changed)
	assert.Empty(t, msg)
	assert.True(t, p.Noticed.Has(data.PFResConf))

	// unchecked increases ignore the protection
	changed, _ = p.IncTimed(data.TimedConfused, 5, false)
	assert.True(t, changed)
	assert.Equal(t, 15, p.Timed[data.TimedConfused])
	assert.Equal(t, data.PFResConf, TimedProtection(data.TimedConfused))
}

func TestTickTimed(t *testing.T) {
	p := NewPlayer("Tester")
	p.HP = 10
	p.Timed[data.TimedPoisoned] = 1
	p.Timed[data.TimedCut] = 150
	p.Timed[data.TimedFast] = 3

	msgs := p.TickTimed()
	assert.Equal(t, []string{"You are no longer poisoned."}, msgs)
	assert.Equal(t, 7, p.HP, "1 poison plus 2 bleeding")
	assert.Equal(t, 149, p.Timed[data.TimedCut])
	assert.Equal(t, 2, p.Timed[data.TimedFast])
	assert.Equal(t, "You feel yourself slow down.", p.ClearTimed(data.TimedFast))
}

func TestArmourAndWornFlags(t *testing.T) {
	p := NewPlayer("Tester")
	p.BaseAC, p.ToA = 2, 1
	armour := &InvItem{Name: "Soft leather armour", Kind: KindArmour, Count: 1, AC: 8, ToA: 2}
	armour.Flags.On(data.PFResFire)
	p.Equip.Set(SlotBody, armour)
	p.Equip.Set(SlotWeapon, &InvItem{Name: "Dagger", Kind: KindWeapon, Count: 1, AC: 5, ToH: 3})

	ac, toA := p.ArmourClass()
	assert.Equal(t, 10, ac, "weapon AC does not count")
	assert.Equal(t, 3, toA)
	assert.Equal(t, 13, p.TotalAC())
	assert.True(t, p.Has(data.PFResFire))
	assert.False(t, p.Has(data.PFNone))
	assert.Equal(t, 3, p.Equip.Stats().ToH)
}

func TestHealAndDrainMana(t *testing.T) {
	p := NewPlayer("Tester")
	p.HP = 5
	p.Heal(100)
	assert.Equal(t, p.MaxHP, p.HP)

	p.SP = 4
	assert.Equal(t, 4, p.DrainMana(10))
	assert.Equal(t, 0, p.SP)
}

func TestMinusAC(t *testing.T) {
	p := NewPlayer("Tester")
	body := &InvItem{Name: "Soft leather armour", Kind: KindArmour, Count: 1, AC: 8, ToA: 3}
	p.Equip.Set(SlotBody, body)

	msg, hit := p.MinusAC(rng.NewSequence(0))
	assert.True(t, hit)
	assert.Equal(t, "Your Soft leather armour is damaged!", msg)
	assert.Equal(t, 2, body.ToA)

	body.Ignore = data.ElemAcid
	msg, hit = p.MinusAC(rng.NewSequence(0))
	assert.True(t, hit)
	assert.Equal(t, "Your Soft leather armour is unaffected!", msg)
	assert.Equal(t, 2, body.ToA)

	// the cloak slot is empty
	_, hit = p.MinusAC(rng.NewSequence(1))
	assert.False(t, hit)
}

func TestDisenchant(t *testing.T) {
	p := NewPlayer("Tester")
	dagger := &InvItem{Name: "Dagger", Kind: KindWeapon, Count: 1, ToH: 3, ToD: 7}
	p.Equip.Set(SlotWeapon, dagger)

	msg, ok := p.Disenchant(rng.NewSequence(0, 50))
	assert.True(t, ok)
	assert.Equal(t, "Your Dagger was disenchanted!", msg)
	assert.Equal(t, 2, dagger.ToH)
	assert.Equal(t, 6, dagger.ToD)

	dagger.Artifact = true
	msg, ok = p.Disenchant(rng.NewSequence(0, 10))
	assert.True(t, ok)
	assert.Equal(t, "Your Dagger resists disenchantment!", msg)
	assert.Equal(t, 2, dagger.ToH)
}

func TestInvenDamage(t *testing.T) {
	p := NewPlayer("Tester")
	p.Inv.AddItem(&InvItem{Name: "Potions of Cure Light Wounds", Kind: KindPotion, Count: 3})
	p.Inv.AddItem(&InvItem{Name: "Flask of oil", Kind: KindFlask, Count: 1})
	p.Inv.AddItem(&InvItem{Name: "Phial", Kind: KindPotion, Count: 1, Artifact: true})
	p.Inv.AddItem(&InvItem{Name: "Ration", Kind: KindFood, Count: 2})

	assert.Nil(t, p.InvenDamage(data.ElemCold, 0, rng.New(1)))

	msgs := p.InvenDamage(data.ElemCold, 10000, rng.New(1))
	assert.Equal(t, []string{
		"All of your Potions of Cure Light Wounds were destroyed!",
		"Your Flask of oil was destroyed!",
	}, msgs)
	assert.Equal(t, 2, p.Inv.Size())
}
