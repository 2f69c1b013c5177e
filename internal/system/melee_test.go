package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l1jgo/bestiary/internal/core/event"
	"github.com/l1jgo/bestiary/internal/core/rng"
	"github.com/l1jgo/bestiary/internal/data"
	"github.com/l1jgo/bestiary/internal/world"
)

const (
	raceKobold     = 3
	raceCutpurse   = 5
	raceShrieker   = 6
	raceWormtongue = 9
)

func TestNeverBlowRaceDoesNotAttack(t *testing.T) {
	tb := loadTables(t)
	f := newFight(t, tb, tb.races.Get(raceShrieker), rng.NewSequence())

	assert.False(t, NewMeleeSystem(nil).ResolveRound(f.cc))
	assert.Empty(t, f.cc.Msg.Lines())
}

func TestHurtBlowNarratesAndTeachesLore(t *testing.T) {
	tb := loadTables(t)
	// hit, 1d8 rolls 5, coin keeps the cut, no critical
	f := newFight(t, tb, tb.races.Get(raceKobold), rng.NewSequence(0, 4, 99))

	require.True(t, NewMeleeSystem(nil).ResolveRound(f.cc))
	assert.Equal(t, []string{"The Kobold hits you."}, f.cc.Msg.Lines())
	assert.Equal(t, 95, f.cc.Player.HP)
	assert.EqualValues(t, 1, f.tracker.Get(raceKobold).Blows[0])
}

func TestVisibleMissIsNarrated(t *testing.T) {
	tb := loadTables(t)
	f := newFight(t, tb, tb.races.Get(raceKobold), rng.NewSequence(13))

	NewMeleeSystem(nil).ResolveRound(f.cc)
	assert.Equal(t, []string{"The Kobold misses you."}, f.cc.Msg.Lines())
	assert.Equal(t, 100, f.cc.Player.HP)
	assert.Zero(t, f.tracker.Get(raceKobold).Blows[0])
}

func TestCriticalAppliesCutOrStunNeverBoth(t *testing.T) {
	tb := loadTables(t)
	race := raceWithBlows(t, tb, raceKobold, data.Blow{Method: data.MethodHit, Effect: data.EffectHurt, Dice: 1, Sides: 20})

	// hit, perfect 20, coin, no supercharge, duration roll
	stun := newFight(t, tb, race, rng.NewSequence(0, 19, 10, 50, 0))
	NewMeleeSystem(nil).ResolveRound(stun.cc)
	assert.Equal(t, 31, stun.cc.Player.Timed[data.TimedStun])
	assert.Zero(t, stun.cc.Player.Timed[data.TimedCut])

	cut := newFight(t, tb, race, rng.NewSequence(0, 19, 60, 50, 0))
	NewMeleeSystem(nil).ResolveRound(cut.cc)
	assert.Equal(t, 51, cut.cc.Player.Timed[data.TimedCut])
	assert.Zero(t, cut.cc.Player.Timed[data.TimedStun])

	for seed := int64(1); seed <= 300; seed++ {
		f := newFight(t, tb, race, rng.New(seed))
		NewMeleeSystem(nil).ResolveRound(f.cc)
		p := f.cc.Player
		assert.False(t, p.Timed[data.TimedCut] > 0 && p.Timed[data.TimedStun] > 0, "seed %d", seed)
	}
}

func TestGoldTheft(t *testing.T) {
	tb := loadTables(t)
	race := raceWithBlows(t, tb, raceCutpurse, data.Blow{Method: data.MethodTouch, Effect: data.EffectEatGold})

	// hit, failed save, 1d25 rolls 5
	f := newFight(t, tb, race, rng.NewSequence(0, 99, 4))
	f.cc.Player.Gold = 1000
	NewMeleeSystem(nil).ResolveRound(f.cc)

	assert.Equal(t, 895, f.cc.Player.Gold)
	assert.Equal(t, 105, f.cc.Monster.Gold)
	assert.True(t, f.cc.Msg.Contains("105 coins were stolen!"))
	assert.True(t, f.cc.Msg.Contains("There is a puff of smoke!"))
}

func TestGoldTheftConservesGold(t *testing.T) {
	tb := loadTables(t)
	race := raceWithBlows(t, tb, raceCutpurse, data.Blow{Method: data.MethodTouch, Effect: data.EffectEatGold})
	for seed := int64(1); seed <= 200; seed++ {
		f := newFight(t, tb, race, rng.New(seed))
		f.cc.Player.Gold = 1000
		NewMeleeSystem(nil).ResolveRound(f.cc)

		stolen := f.cc.Monster.Gold
		assert.Equal(t, 1000, f.cc.Player.Gold+stolen, "seed %d", seed)
		if stolen > 0 {
			assert.GreaterOrEqual(t, stolen, 101)
			assert.LessOrEqual(t, stolen, 125)
		}
	}
}

func TestTheftSave(t *testing.T) {
	tb := loadTables(t)
	race := raceWithBlows(t, tb, raceCutpurse, data.Blow{Method: data.MethodTouch, Effect: data.EffectEatGold})

	f := newFight(t, tb, race, rng.NewSequence(0, 0, 0))
	f.cc.Player.Gold = 1000
	f.cc.Player.Skills.TheftSafety = 100
	NewMeleeSystem(nil).ResolveRound(f.cc)
	assert.Equal(t, 1000, f.cc.Player.Gold)
	assert.True(t, f.cc.Msg.Contains("You quickly protect your money pouch!"))
	assert.False(t, f.cc.Msg.Contains("puff of smoke"))

	// the paralysed get no save
	f = newFight(t, tb, race, rng.NewSequence(0, 4))
	f.cc.Player.Gold = 1000
	f.cc.Player.Skills.TheftSafety = 100
	f.cc.Player.Timed[data.TimedParalyzed] = 5
	NewMeleeSystem(nil).ResolveRound(f.cc)
	assert.Equal(t, 895, f.cc.Player.Gold)
}

func TestItemTheft(t *testing.T) {
	tb := loadTables(t)
	race := raceWithBlows(t, tb, raceWormtongue, data.Blow{Method: data.MethodTouch, Effect: data.EffectEatItem})

	f := newFight(t, tb, race, rng.NewSequence(0, 99, 0))
	f.cc.Player.Inv.AddItem(&world.InvItem{Name: "Potion of Speed", Kind: world.KindPotion, Count: 1})
	NewMeleeSystem(nil).ResolveRound(f.cc)

	assert.True(t, f.cc.Msg.Contains("Your Potion of Speed was stolen!"))
	assert.Zero(t, f.cc.Player.Inv.Size())
	require.Len(t, f.cc.Monster.Carried, 1)
	assert.Equal(t, "Potion of Speed", f.cc.Monster.Carried[0].Name)
}

func TestItemTheftSkipsArtifacts(t *testing.T) {
	tb := loadTables(t)
	race := raceWithBlows(t, tb, raceWormtongue, data.Blow{Method: data.MethodTouch, Effect: data.EffectEatItem})

	f := newFight(t, tb, race, rng.NewSequence(0, 99))
	f.cc.Player.Inv.AddItem(&world.InvItem{Name: "Phial", Kind: world.KindLight, Count: 1, Artifact: true})
	NewMeleeSystem(nil).ResolveRound(f.cc)

	assert.True(t, f.cc.Msg.Contains("Nothing was stolen."))
	assert.Equal(t, 1, f.cc.Player.Inv.Size())
	assert.False(t, f.cc.Msg.Contains("puff of smoke"))
}

func TestProtectionFromEvilRepels(t *testing.T) {
	tb := loadTables(t)
	f := newFight(t, tb, tb.races.Get(raceKobold), rng.NewSequence(0, 99))
	f.cc.Player.Level = 30
	f.cc.Player.Timed[data.TimedProtEvil] = 10

	NewMeleeSystem(nil).ResolveRound(f.cc)
	assert.Equal(t, []string{"The Kobold is repelled."}, f.cc.Msg.Lines())
	assert.Equal(t, 100, f.cc.Player.HP)
	assert.True(t, f.tracker.Get(raceKobold).Flags.Has(data.RFEvil))
}

func TestPlayerDeathCountedOnce(t *testing.T) {
	tb := loadTables(t)
	// hit for 8 on a player with no hit points left
	f := newFight(t, tb, tb.races.Get(raceKobold), rng.NewSequence(0, 7, 99, 99))
	f.cc.Bus = event.NewBus()
	f.cc.Player.HP = 0

	NewMeleeSystem(nil).ResolveRound(f.cc)
	assert.True(t, f.cc.Player.Dead)
	assert.Equal(t, "a Kobold", f.cc.Player.DiedFrom)
	assert.EqualValues(t, 1, f.tracker.Get(raceKobold).Deaths)
	assert.Equal(t, 1, f.cc.Bus.Pending())

	// a dead player has left: no more blows and no second death
	NewMeleeSystem(nil).ResolveRound(f.cc)
	assert.EqualValues(t, 1, f.tracker.Get(raceKobold).Deaths)
	assert.Equal(t, 1, f.cc.Bus.Pending())
}

func TestUnknownBlowsAreHarmless(t *testing.T) {
	tb := loadTables(t)
	race := raceWithBlows(t, tb, raceKobold,
		data.Blow{Method: data.MethodUnknown, Effect: data.EffectHurt, Dice: 1, Sides: 4},
		data.Blow{Method: data.MethodTouch, Effect: data.EffectUnknown, Dice: 2, Sides: 6},
	)
	f := newFight(t, tb, race, rng.NewSequence(0, 0, 3, 3))

	NewMeleeSystem(nil).ResolveRound(f.cc)
	assert.Equal(t, []string{"The Kobold does something weird.", "The Kobold touches you."}, f.cc.Msg.Lines())
	assert.Equal(t, 100, f.cc.Player.HP)
}

func TestElementalBlowRespectsResistance(t *testing.T) {
	tb := loadTables(t)
	race := raceWithBlows(t, tb, raceKobold, data.Blow{Method: data.MethodTouch, Effect: data.EffectFire, Dice: 1, Sides: 30})

	f := newFight(t, tb, race, rng.NewSequence(0, 29))
	f.cc.Player.Intrinsic.On(data.PFResFire)
	NewMeleeSystem(nil).ResolveRound(f.cc)
	assert.Equal(t, 90, f.cc.Player.HP)
	assert.True(t, f.cc.Msg.Contains("You are enveloped in flames!"))
	assert.True(t, f.cc.Player.Noticed.Has(data.PFResFire))

	f = newFight(t, tb, race, rng.NewSequence(0, 29))
	f.cc.Player.Intrinsic.On(data.PFImFire)
	NewMeleeSystem(nil).ResolveRound(f.cc)
	assert.Equal(t, 100, f.cc.Player.HP)
}

func TestExperienceDrain(t *testing.T) {
	tb := loadTables(t)
	race := raceWithBlows(t, tb, raceKobold, data.Blow{Method: data.MethodTouch, Effect: data.EffectExp80})

	f := newFight(t, tb, race, rng.NewSequence(0, 0))
	f.cc.Player.Exp, f.cc.Player.MaxExp = 1000, 1000
	f.cc.Player.Intrinsic.On(data.PFHoldLife)
	NewMeleeSystem(nil).ResolveRound(f.cc)
	assert.True(t, f.cc.Msg.Contains("You keep hold of your life force!"))
	assert.Equal(t, 1000, f.cc.Player.Exp)

	// every d6 rolls 1: 80 + 1000/100*2
	f = newFight(t, tb, race, rng.NewSequence(0))
	f.cc.Player.Exp, f.cc.Player.MaxExp = 1000, 1000
	NewMeleeSystem(nil).ResolveRound(f.cc)
	assert.True(t, f.cc.Msg.Contains("You feel your life draining away!"))
	assert.Equal(t, 900, f.cc.Player.Exp)
	assert.Equal(t, 1000, f.cc.Player.MaxExp)
}

func TestShatterThrowsPlayerAndEndsRound(t *testing.T) {
	tb := loadTables(t)
	race := raceWithBlows(t, tb, raceKobold,
		data.Blow{Method: data.MethodHit, Effect: data.EffectShatter, Dice: 1, Sides: 30},
		data.Blow{Method: data.MethodHit, Effect: data.EffectHurt, Dice: 1, Sides: 1},
	)
	// hit for 30, quake moves the player diagonally, cut with no supercharge
	f := newFight(t, tb, race, rng.NewSequence(0, 29, 2, 2, 99, 99, 0))
	x, y := f.cc.Player.X, f.cc.Player.Y

	NewMeleeSystem(nil).ResolveRound(f.cc)
	assert.Equal(t, 70, f.cc.Player.HP)
	assert.Equal(t, x+1, f.cc.Player.X)
	assert.Equal(t, y+1, f.cc.Player.Y)
}

func TestEveryBlowEffectHasAHandler(t *testing.T) {
	for e := data.BlowEffect(0); e < data.BlowEffectCount; e++ {
		assert.NotNil(t, blowHandlers[e], e.String())
	}
}

func TestProtectedStatusBlowsAreResisted(t *testing.T) {
	tb := loadTables(t)
	cases := []struct {
		effect  data.BlowEffect
		protect data.PlayerFlag
		timed   data.TimedEffect
	}{
		{data.EffectPoison, data.PFResPois, data.TimedPoisoned},
		{data.EffectBlind, data.PFResBlind, data.TimedBlind},
		{data.EffectConfuse, data.PFResConf, data.TimedConfused},
		{data.EffectHallu, data.PFResChaos, data.TimedImage},
	}
	for _, tc := range cases {
		t.Run(tc.effect.String(), func(t *testing.T) {
			race := raceWithBlows(t, tb, raceKobold, data.Blow{Method: data.MethodTouch, Effect: tc.effect, Dice: 1, Sides: 1})
			f := newFight(t, tb, race, rng.NewSequence())
			f.cc.Player.Intrinsic.On(tc.protect)

			NewMeleeSystem(nil).ResolveRound(f.cc)
			assert.Equal(t, []string{"The Kobold touches you.", "You resist the effects!"}, f.cc.Msg.Lines())
			assert.Zero(t, f.cc.Player.Timed[tc.timed])
			assert.True(t, f.cc.Player.Noticed.Has(tc.protect))
			assert.EqualValues(t, 1, f.tracker.Get(raceKobold).Blows[0])
		})
	}
}

func TestDisenchantBlowIsResisted(t *testing.T) {
	tb := loadTables(t)
	race := raceWithBlows(t, tb, raceKobold, data.Blow{Method: data.MethodTouch, Effect: data.EffectUnBonus})
	f := newFight(t, tb, race, rng.NewSequence())
	dagger := &world.InvItem{Name: "Dagger", Kind: world.KindWeapon, Count: 1, ToH: 3}
	f.cc.Player.Equip.Set(world.SlotWeapon, dagger)
	f.cc.Player.Intrinsic.On(data.PFResDisen)

	NewMeleeSystem(nil).ResolveRound(f.cc)
	assert.Equal(t, []string{"The Kobold touches you.", "You resist the effects!"}, f.cc.Msg.Lines())
	assert.Equal(t, 3, dagger.ToH)
}

func TestDrainingBlowsWithNothingToTake(t *testing.T) {
	tb := loadTables(t)
	cases := []struct {
		effect data.BlowEffect
		want   string
	}{
		{data.EffectUnPower, "Nothing was drained."},
		{data.EffectEatFood, "Nothing was eaten."},
		{data.EffectEatLight, "Nothing was drained."},
	}
	for _, tc := range cases {
		t.Run(tc.effect.String(), func(t *testing.T) {
			race := raceWithBlows(t, tb, raceKobold, data.Blow{Method: data.MethodTouch, Effect: tc.effect})
			f := newFight(t, tb, race, rng.NewSequence())

			NewMeleeSystem(nil).ResolveRound(f.cc)
			assert.Equal(t, []string{"The Kobold touches you.", tc.want}, f.cc.Msg.Lines())
			assert.Equal(t, 100, f.cc.Player.HP)
		})
	}
}

func TestEatLightSparesArtifacts(t *testing.T) {
	tb := loadTables(t)
	race := raceWithBlows(t, tb, raceKobold, data.Blow{Method: data.MethodTouch, Effect: data.EffectEatLight})
	f := newFight(t, tb, race, rng.NewSequence())
	phial := &world.InvItem{Name: "Phial", Kind: world.KindLight, Count: 1, Turns: 1000, Artifact: true}
	f.cc.Player.Equip.Set(world.SlotLight, phial)

	NewMeleeSystem(nil).ResolveRound(f.cc)
	assert.Equal(t, []string{"The Kobold touches you.", "Your light is unaffected."}, f.cc.Msg.Lines())
	assert.Equal(t, 1000, phial.Turns)
}
