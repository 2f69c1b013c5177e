package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l1jgo/bestiary/internal/core/rng"
	"github.com/l1jgo/bestiary/internal/data"
)

const (
	raceNoviceMage = 8
	raceBabyBlue   = 11
	raceNexusHound = 20
	raceDread      = 22
)

func newSpells(tb tables) *SpellSystem {
	return NewSpellSystem(tb.spells, tb.effects, nil)
}

func TestSeenCastIsNarratedAndRemembered(t *testing.T) {
	tb := loadTables(t)
	f := newFight(t, tb, tb.races.Get(raceShrieker), rng.New(1))

	require.True(t, newSpells(tb).Cast(f.cc, data.SpellShriek, true))
	assert.Equal(t, []string{
		"The Shrieker mushroom patch makes a high-pitched shriek.",
		"You hear a sudden stirring in the distance!",
	}, f.cc.Msg.Lines())

	rec := f.tracker.Get(raceShrieker)
	assert.True(t, rec.Spells.Has(data.SpellShriek))
	assert.EqualValues(t, 1, rec.CastInnate)
}

func TestUnseenCastTeachesNothing(t *testing.T) {
	tb := loadTables(t)
	f := newFight(t, tb, tb.races.Get(raceShrieker), rng.New(1))

	newSpells(tb).Cast(f.cc, data.SpellShriek, false)
	assert.Equal(t, "Something makes a high-pitched shriek.", f.cc.Msg.Lines()[0])
	assert.False(t, f.tracker.Get(raceShrieker).Spells.Has(data.SpellShriek))
}

func TestMissingSpellRow(t *testing.T) {
	tb := loadTables(t)
	f := newFight(t, tb, tb.races.Get(raceKobold), rng.New(1))
	assert.False(t, newSpells(tb).Cast(f.cc, data.SpellCount, true))
	assert.Empty(t, f.cc.Msg.Lines())
}

func TestArrowCanMiss(t *testing.T) {
	tb := loadTables(t)
	f := newFight(t, tb, tb.races.Get(raceKobold), rng.NewSequence(13))

	newSpells(tb).Cast(f.cc, data.SpellArrow1, true)
	assert.True(t, f.cc.Msg.Contains("misses you."))
	assert.Equal(t, 100, f.cc.Player.HP)
}

func TestUnseenMissNamesNobody(t *testing.T) {
	tb := loadTables(t)
	f := newFight(t, tb, tb.races.Get(raceKobold), rng.NewSequence(13))

	newSpells(tb).Cast(f.cc, data.SpellArrow1, false)
	lines := f.cc.Msg.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "It misses you.", lines[1])
	assert.False(t, f.cc.Msg.Contains("Kobold"))
}

func TestTimedSideEffect(t *testing.T) {
	tb := loadTables(t)

	// failed save, 1d4 rolls 2
	f := newFight(t, tb, tb.races.Get(raceNoviceMage), rng.NewSequence(50, 1))
	newSpells(tb).Cast(f.cc, data.SpellConf, true)
	assert.Equal(t, 5, f.cc.Player.Timed[data.TimedConfused])
	assert.True(t, f.cc.Msg.Contains("You are confused!"))

	saved := newFight(t, tb, tb.races.Get(raceNoviceMage), rng.NewSequence(50))
	saved.cc.Player.Skills.Save = 100
	newSpells(tb).Cast(saved.cc, data.SpellConf, true)
	assert.Zero(t, saved.cc.Player.Timed[data.TimedConfused])
	assert.True(t, saved.cc.Msg.Contains("You avoid the effect!"))

	resisted := newFight(t, tb, tb.races.Get(raceNoviceMage), rng.New(1))
	resisted.cc.Player.Intrinsic.On(data.PFResConf)
	newSpells(tb).Cast(resisted.cc, data.SpellConf, true)
	assert.Zero(t, resisted.cc.Player.Timed[data.TimedConfused])
	assert.True(t, resisted.cc.Msg.Contains("You resist the effect!"))
	assert.True(t, resisted.cc.Player.Noticed.Has(data.PFResConf))
}

func TestBreathIsResisted(t *testing.T) {
	tb := loadTables(t)
	race := tb.races.Get(raceBabyBlue)

	plain := newFight(t, tb, race, rng.New(1))
	newSpells(tb).Cast(plain.cc, data.SpellBrElec, true)
	assert.Equal(t, 100-race.HP/3, plain.cc.Player.HP)

	resist := newFight(t, tb, race, rng.New(1))
	resist.cc.Player.Intrinsic.On(data.PFResElec)
	newSpells(tb).Cast(resist.cc, data.SpellBrElec, true)
	assert.Equal(t, 100-race.HP/3/3, resist.cc.Player.HP)

	immune := newFight(t, tb, race, rng.New(1))
	immune.cc.Player.Intrinsic.On(data.PFImElec)
	newSpells(tb).Cast(immune.cc, data.SpellBrElec, true)
	assert.Equal(t, 100, immune.cc.Player.HP)
	assert.True(t, immune.cc.Msg.Contains("You resist the effect!"))
}

func TestSpellKillCountsOnce(t *testing.T) {
	tb := loadTables(t)
	// failed save, then every die rolls 1: 15 damage
	f := newFight(t, tb, tb.races.Get(raceNoviceMage), rng.NewSequence(99))
	f.cc.Player.HP = 10

	newSpells(tb).Cast(f.cc, data.SpellCause4, true)
	p := f.cc.Player
	assert.True(t, p.Dead)
	assert.Equal(t, "a Novice mage", p.DiedFrom)
	assert.Zero(t, p.Timed[data.TimedCut], "side effects stop once the player is dead")
	assert.EqualValues(t, 1, f.tracker.Get(raceNoviceMage).Deaths)
}

func TestDrainManaFailureIsLearned(t *testing.T) {
	tb := loadTables(t)
	f := newFight(t, tb, tb.races.Get(raceWormtongue), rng.New(1))
	f.cc.Player.SP = 0

	newSpells(tb).Cast(f.cc, data.SpellDrainMana, true)
	assert.True(t, f.cc.Msg.Contains("The draining fails."))
	assert.True(t, f.cc.Knowledge.Knows(f.cc.Monster, data.PFNoMana))
}

func TestDrainManaHealsCaster(t *testing.T) {
	tb := loadTables(t)
	// 1d40 rolls 20: 11 points wanted, 10 available
	f := newFight(t, tb, tb.races.Get(raceDread), rng.NewSequence(19))
	f.cc.Player.SP = 10
	f.cc.Monster.HP = 10

	newSpells(tb).Cast(f.cc, data.SpellDrainMana, true)
	assert.Zero(t, f.cc.Player.SP)
	assert.Equal(t, 70, f.cc.Monster.HP)
	assert.True(t, f.cc.Msg.Contains("Your mind is drained!"))
	assert.True(t, f.cc.Msg.Contains("appears healthier."))
}

func TestHealAndHaste(t *testing.T) {
	tb := loadTables(t)
	f := newFight(t, tb, tb.races.Get(raceNoviceMage), rng.New(1))
	m := f.cc.Monster
	m.HP = 1
	m.Timed[data.MonAfraid] = 5
	s := newSpells(tb)

	s.Cast(f.cc, data.SpellHeal, true)
	assert.Equal(t, m.MaxHP, m.HP)
	assert.Zero(t, m.Timed[data.MonAfraid])
	assert.True(t, f.cc.Msg.Contains("looks completely healed!"))
	assert.True(t, f.cc.Msg.Contains("recovers its courage."))

	s.Cast(f.cc, data.SpellHaste, true)
	assert.Equal(t, 50, m.Timed[data.MonFast])
}

func TestNexusBreathPicksOneSideEffect(t *testing.T) {
	tb := loadTables(t)
	s := newSpells(tb)
	plan := s.plans[data.SpellBrNexus]
	require.NotNil(t, plan)
	assert.Empty(t, plan.always)
	assert.Equal(t, 4, plan.chance.Len())
	assert.Equal(t, 10, plan.chance.Total())
}

func TestChooseSkipsKnownUselessSpells(t *testing.T) {
	tb := loadTables(t)
	s := newSpells(tb)

	f := newFight(t, tb, tb.races.Get(raceBabyBlue), rng.New(3))
	id, ok := s.Choose(f.cc, true)
	require.True(t, ok)
	assert.Equal(t, data.SpellBrElec, id)
	_, ok = s.Choose(f.cc, false)
	assert.False(t, ok, "no magic spells")

	f.cc.Monster.Smart.On(data.PFImElec)
	_, ok = s.Choose(f.cc, true)
	assert.False(t, ok, "breathing lightning at an immune player is pointless")

	race := *tb.races.Get(raceDread)
	race.Spells = data.SpellSet{}
	race.Spells.On(data.SpellDrainMana)
	race.Spells.On(data.SpellBlink)
	dread := newFight(t, tb, &race, rng.New(5))
	dread.cc.Monster.Smart.On(data.PFNoMana)
	for i := 0; i < 20; i++ {
		id, ok := s.Choose(dread.cc, false)
		require.True(t, ok)
		assert.Equal(t, data.SpellBlink, id)
	}
}

func TestCastFiresEveryAlwaysRowAndOneChanceRow(t *testing.T) {
	tb := loadTables(t)
	plan := &spellPlan{
		spell: &data.Spell{ID: data.SpellConf, Verb: "gestures", BlindVerb: "mumbles", Hit: 100},
		always: []data.SpellEffect{
			{Name: "BLIND", Timed: true, Status: data.TimedBlind, Base: rng.Value{Base: 3}},
			{Name: "CONFUSED", Timed: true, Status: data.TimedConfused, Base: rng.Value{Base: 4}},
		},
	}
	chance := []data.TimedEffect{data.TimedAfraid, data.TimedPoisoned, data.TimedImage}
	names := []string{"AFRAID", "POISONED", "IMAGE"}
	for i, status := range chance {
		row := data.SpellEffect{Name: names[i], Timed: true, Status: status, Chance: i + 1, Base: rng.Value{Base: 5}}
		plan.chance.Add(row, row.Chance)
	}

	picked := map[data.TimedEffect]int{}
	for seed := int64(1); seed <= 60; seed++ {
		s := newSpells(tb)
		s.plans[data.SpellConf] = plan
		f := newFight(t, tb, tb.races.Get(raceNoviceMage), rng.New(seed))

		require.True(t, s.Cast(f.cc, data.SpellConf, true))
		p := f.cc.Player
		assert.Equal(t, 3, p.Timed[data.TimedBlind], "seed %d", seed)
		assert.Equal(t, 4, p.Timed[data.TimedConfused], "seed %d", seed)
		fired := 0
		for _, status := range chance {
			if p.Timed[status] > 0 {
				assert.Equal(t, 5, p.Timed[status])
				picked[status]++
				fired++
			}
		}
		assert.Equal(t, 1, fired, "seed %d", seed)
	}
	assert.Len(t, picked, len(chance))
}
