package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l1jgo/bestiary/internal/core/rng"
)

func TestEmbeddedTablesLoadClean(t *testing.T) {
	tables, err := LoadTables("", "", "")
	require.NoError(t, err)
	assert.Empty(t, tables.Warnings())
	assert.Equal(t, int(SpellCount), tables.Spells.Count(), "every catalog spell has a row")
	assert.Greater(t, tables.Races.Count(), 20)
	assert.Greater(t, tables.Effects.Count(), 50)
}

func TestParseDice(t *testing.T) {
	cases := []struct {
		in   string
		want rng.Value
	}{
		{"12", rng.Value{Base: 12}},
		{"3d8", rng.Value{Dice: 3, Sides: 8}},
		{"10+3d8", rng.Value{Base: 10, Dice: 3, Sides: 8}},
		{"1d40m35", rng.Value{Dice: 1, Sides: 40, MBonus: 35}},
		{"m2", rng.Value{MBonus: 2}},
		{"-1", rng.Value{Base: -1}},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			d, err := ParseDice(c.in)
			require.NoError(t, err)
			assert.Equal(t, c.want, d.Value())
		})
	}

	for _, bad := range []string{"", "d8", "3d", "x"} {
		_, err := ParseDice(bad)
		assert.Error(t, err, bad)
	}
}

func TestRaceTableFind(t *testing.T) {
	races, err := LoadRaceTable("")
	require.NoError(t, err)

	grip, err := races.Find("1")
	require.NoError(t, err)
	assert.True(t, grip.Unique())
	assert.Equal(t, 1, grip.MaxNum)
	assert.Equal(t, 1, grip.BlowCount())
	assert.Equal(t, Blow{Method: MethodBite, Effect: EffectHurt, Dice: 1, Sides: 6}, grip.Blows[0])

	kobold, err := races.Find("KOBOLD")
	require.NoError(t, err)
	assert.Equal(t, 110, kobold.Speed, "speed defaults to normal")

	byPrefix, err := races.Find("wormtongue")
	require.NoError(t, err)
	assert.Equal(t, 9, byPrefix.ID)
	assert.True(t, byPrefix.Spells.Has(SpellBoCold))

	_, err = races.Find("balrog")
	assert.ErrorIs(t, err, ErrUnknownRace)
	_, err = races.Find("999")
	assert.ErrorIs(t, err, ErrUnknownRace)
}

func TestRaceTableDegradesUnknownNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "races.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
races:
  - id: 7
    name: Odd thing
    level: 5
    blows:
      - {method: WIGGLE, effect: HURT, dice: 1d4}
      - {method: HIT, effect: TICKLE, dice: 2d4}
      - {method: HIT, effect: HURT, dice: 1d2}
    flags: [EVIL, GLOWING]
    spells: [BO_FIRE, SING]
`), 0o644))

	races, err := LoadRaceTable(path)
	require.NoError(t, err)
	r := races.Get(7)
	require.NotNil(t, r)

	assert.Equal(t, MethodUnknown, r.Blows[0].Method)
	assert.Equal(t, EffectUnknown, r.Blows[1].Effect)
	assert.Equal(t, 3, r.BlowCount(), "unknown methods do not end the blow list")
	assert.True(t, r.Flags.Has(RFEvil))
	assert.Equal(t, 1, r.Flags.Count())
	assert.True(t, r.Spells.Has(SpellBoFire))
	assert.Len(t, races.Warnings(), 4)
	assert.Nil(t, r.Blows[0].Method.Info())
	assert.Equal(t, 0, r.Blows[1].Effect.Power())
}

func TestRaceTableRejectsDuplicateIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "races.yaml")
	require.NoError(t, os.WriteFile(path, []byte("races:\n  - {id: 1, name: a}\n  - {id: 1, name: b}\n"), 0o644))
	_, err := LoadRaceTable(path)
	assert.ErrorContains(t, err, "duplicate id 1")
}

func TestSpellRows(t *testing.T) {
	spells, err := LoadSpellTable("")
	require.NoError(t, err)

	br := spells.Get(SpellBrFire)
	require.NotNil(t, br)
	assert.True(t, br.HPBased())
	assert.Equal(t, 3, br.Div)
	assert.Equal(t, 1600, br.Cap)
	assert.Equal(t, ElemFire, br.Element)
	assert.True(t, br.Type.Is(TypeBreath|TypeInnate))

	ball := spells.Get(SpellBaAcid)
	require.NotNil(t, ball)
	assert.True(t, ball.ScaleSides)
	assert.Equal(t, rng.Value{Base: 15}, ball.Base)
	assert.Equal(t, rng.Value{Dice: 1, Sides: 300}, ball.RlevDam)

	bolt := spells.Get(SpellBoAcid)
	require.NotNil(t, bolt)
	assert.False(t, bolt.ScaleSides)
	assert.Equal(t, 100, bolt.Hit)

	arrow := spells.Get(SpellArrow1)
	require.NotNil(t, arrow)
	assert.Equal(t, 40, arrow.Hit)

	assert.False(t, spells.Get(SpellHeal).Damaging())
	assert.Nil(t, spells.Get(SpellNone))
}

func TestSpellEffectsMatch(t *testing.T) {
	effects, err := LoadSpellEffectTable("")
	require.NoError(t, err)

	nexus := effects.For(SpellBrNexus, ElemNexus)
	require.Len(t, nexus, 4)
	total := 0
	for _, e := range nexus {
		total += e.Chance
	}
	assert.Equal(t, 10, total)

	summon := effects.For(SpellSKin, ElemNone)
	require.Len(t, summon, 1)
	assert.Equal(t, SpecialSummon, summon[0].Special)
	assert.Equal(t, int(SummonKin), summon[0].Base.Base)
	assert.Equal(t, 6, summon[0].Base.Dice)

	smash := effects.For(SpellBrainSmash, ElemNone)
	assert.Len(t, smash, 4)

	assert.Empty(t, effects.For(SpellBoMana, ElemMana))
}

func TestSpellEffectRejectsBadRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "effects.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
effects:
  - {name: ok, element: FIRE, special: INV_DAM, base: "5"}
  - {name: nothing, element: FIRE}
  - {name: both, element: FIRE, timed: BLIND, special: HEAL}
  - {name: nomatch, timed: BLIND}
  - {name: badspell, spell: FIREWORKS, timed: BLIND}
`), 0o644))
	effects, err := LoadSpellEffectTable(path)
	require.NoError(t, err)
	assert.Equal(t, 1, effects.Count())
	assert.Len(t, effects.Warnings(), 4)
}

func TestSummonMatches(t *testing.T) {
	races, err := LoadRaceTable("")
	require.NoError(t, err)
	spider := races.Get(4)
	grip := races.Get(1)
	fang := races.Get(2)
	dragon := races.Get(11)

	assert.True(t, SummonSpider.Matches(spider, nil))
	assert.False(t, SummonSpider.Matches(dragon, nil))
	assert.True(t, SummonDragon.Matches(dragon, nil))
	assert.False(t, SummonAnimal.Matches(grip, nil), "uniques only answer unique summons")
	assert.True(t, SummonUnique.Matches(grip, nil))
	assert.True(t, SummonKin.Matches(fang, grip))
	assert.False(t, SummonKin.Matches(grip, grip))
}

func TestElementTable(t *testing.T) {
	for e := Element(0); e < ElementCount; e++ {
		info := e.Info()
		assert.NotEmpty(t, info.Name)
		if info.Num > 0 {
			assert.NotZero(t, info.Resist, e.String())
			assert.Positive(t, info.DenomBase, e.String())
		}
	}
	assert.Panics(t, func() { Element(-1).Info() })
	fire, ok := ElementByName("FIRE")
	require.True(t, ok)
	assert.Equal(t, ElemFire, fire)
}
