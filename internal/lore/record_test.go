package lore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l1jgo/bestiary/internal/data"
)

func testRaces(t *testing.T) *data.RaceTable {
	t.Helper()
	races, err := data.LoadRaceTable("")
	require.NoError(t, err)
	return races
}

func TestCountersSaturate(t *testing.T) {
	var rec Record
	for i := 0; i < 1000; i++ {
		rec.AddBlow(0)
		rec.AddWake()
		rec.AddCast(true)
	}
	assert.Equal(t, uint8(MaxByte), rec.Blows[0])
	assert.Equal(t, uint8(MaxByte), rec.Wake)
	assert.Equal(t, uint8(MaxByte), rec.CastInnate)
	assert.Zero(t, rec.CastSpell)

	rec.Sights = MaxShort - 1
	rec.AddSighting()
	rec.AddSighting()
	assert.Equal(t, uint16(MaxShort), rec.Sights)

	rec.TKills = MaxShort
	rec.AddKill()
	assert.Equal(t, uint16(MaxShort), rec.TKills)
	assert.Equal(t, uint16(1), rec.PKills)
}

func TestAddBlowIgnoresBadSlot(t *testing.T) {
	var rec Record
	rec.AddBlow(-1)
	rec.AddBlow(data.MaxBlows)
	assert.Equal(t, [data.MaxBlows]uint8{}, rec.Blows)
}

func TestNoteDropKeepsLargest(t *testing.T) {
	var rec Record
	rec.NoteDrop(3, 1)
	rec.NoteDrop(1, 4)
	rec.NoteDrop(-5, 900)
	assert.Equal(t, uint8(3), rec.DropItem)
	assert.Equal(t, uint8(MaxByte), rec.DropGold)
}

func TestLearnSplitsPresentAndAbsent(t *testing.T) {
	kobold := testRaces(t).Get(3)
	var rec Record
	rec.Learn(kobold, data.RFEvil)
	rec.Learn(kobold, data.RFImFire)
	assert.True(t, rec.Flags.Has(data.RFEvil))
	assert.True(t, rec.Absent.Has(data.RFImFire))
	assert.False(t, rec.Flags.Has(data.RFImFire))
}

func TestClampRestoresInvariants(t *testing.T) {
	kobold := testRaces(t).Get(3)
	rec := Record{RaceID: 3}
	rec.Flags.On(data.RFDragon)
	rec.Flags.On(data.RFEvil)
	rec.Absent.On(data.RFImPois)
	rec.Spells.On(data.SpellBrFire)
	rec.Blows[2] = 9

	assert.True(t, rec.Clamp(kobold))
	assert.False(t, rec.Flags.Has(data.RFDragon))
	assert.True(t, rec.Flags.Has(data.RFEvil))
	assert.False(t, rec.Absent.Has(data.RFImPois))
	assert.True(t, rec.Spells.Empty())
	assert.Zero(t, rec.Blows[2])
	assert.False(t, rec.Clamp(kobold), "second clamp is a no-op")
}

func TestCheatKnowsEverything(t *testing.T) {
	races := testRaces(t)
	kobold := races.Get(3)
	rec := Record{RaceID: 3, Deaths: 2, PKills: 1}.Cheat(kobold)

	assert.Equal(t, kobold.Flags, rec.Flags)
	assert.True(t, rec.Absent.Inter(kobold.Flags).Empty())
	assert.Equal(t, uint16(2), rec.Deaths)
	assert.Equal(t, uint16(MaxShort), rec.TKills)
	assert.Equal(t, uint8(MaxByte), rec.Blows[0])
	assert.Zero(t, rec.Blows[1], "kobolds have one blow")
	assert.Equal(t, uint8(1), rec.DropItem)
	assert.Equal(t, uint8(1), rec.DropGold)
	assert.True(t, IsArmorKnown(kobold, rec))
	assert.True(t, IsDamageKnown(kobold, rec, 0))
}

func TestArmorKnownThresholds(t *testing.T) {
	races := testRaces(t)
	kobold := races.Get(3) // level 2: 304/6 = 50
	rec := Record{TKills: 50}
	assert.False(t, IsArmorKnown(kobold, rec))
	rec.TKills = 51
	assert.True(t, IsArmorKnown(kobold, rec))

	grip := races.Get(1) // unique level 2: 304/(38+2) = 7
	rec.TKills = 7
	assert.False(t, IsArmorKnown(grip, rec))
	rec.TKills = 8
	assert.True(t, IsArmorKnown(grip, rec))
}

func TestDamageKnownThresholds(t *testing.T) {
	races := testRaces(t)
	kobold := races.Get(3) // 6*a >= 80*8
	var rec Record
	rec.Blows[0] = 106
	assert.False(t, IsDamageKnown(kobold, rec, 0))
	rec.Blows[0] = 107
	assert.True(t, IsDamageKnown(kobold, rec, 0))
	assert.False(t, IsDamageKnown(kobold, rec, 9))

	grip := races.Get(1) // 6*2*a >= 80*6
	rec.Blows[0] = 40
	assert.True(t, IsDamageKnown(grip, rec, 0))
	rec.Blows[0] = 39
	assert.False(t, IsDamageKnown(grip, rec, 0))
}

func TestKnownFlagsAfterFirstKill(t *testing.T) {
	kobold := testRaces(t).Get(3)
	var rec Record
	known := KnownFlags(kobold, rec)
	assert.True(t, known.Has(data.RFMale), "obvious on sight")
	assert.False(t, known.Has(data.RFEvil))

	rec.AddKill()
	known = KnownFlags(kobold, rec)
	assert.True(t, known.Has(data.RFEvil))
	assert.False(t, known.Has(data.RFImPois))
	assert.True(t, known.SubsetOf(kobold.Flags))
}
