package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l1jgo/bestiary/internal/core/rng"
	"github.com/l1jgo/bestiary/internal/data"
)

const (
	raceGrip   = 1
	raceFang   = 2
	raceKobold = 3
)

func newTestArena(t *testing.T) (*Arena, *data.RaceTable) {
	t.Helper()
	races, err := data.LoadRaceTable("")
	require.NoError(t, err)
	return NewArena(41, 41, NewPlayer("Tester"), races, rng.New(1)), races
}

func TestAddMonsterFindsFreeGrid(t *testing.T) {
	a, races := newTestArena(t)
	p := a.Player
	assert.Equal(t, 20, p.X)

	first := NewMonster(races.Get(raceKobold))
	require.True(t, a.AddMonster(first, p.X+1, p.Y))
	assert.False(t, a.IsFree(p.X+1, p.Y))

	second := NewMonster(races.Get(raceKobold))
	require.True(t, a.AddMonster(second, p.X+1, p.Y))
	assert.LessOrEqual(t, Distance(second.X, second.Y, p.X+1, p.Y), 3)
	assert.False(t, second.X == first.X && second.Y == first.Y)
	assert.False(t, second.X == p.X && second.Y == p.Y)

	assert.Equal(t, 2, a.CountRace(raceKobold))
	assert.Len(t, a.NearbyMonsters(p.X, p.Y, 4), 2)
	assert.Same(t, first, a.GetMonster(first.ID))
	assert.False(t, a.IsFree(-1, 0))
}

func TestRemoveMonsterDropsLoot(t *testing.T) {
	a, races := newTestArena(t)
	m := NewMonster(races.Get(raceKobold))
	require.True(t, a.AddMonster(m, 25, 20))
	m.Carry(&InvItem{Name: "Dagger", Kind: KindWeapon, Count: 1})
	m.Gold = 40

	assert.True(t, m.TakeDamage(m.HP+1))
	assert.Zero(t, a.MonsterCount())
	assert.Len(t, a.Dead(), 1)

	a.RemoveMonster(m)
	assert.Empty(t, a.Dead())
	assert.True(t, a.IsFree(25, 20))
	ground := a.Ground()
	require.Len(t, ground, 2)
	assert.Equal(t, "Dagger", ground[0].Item.Name)
	assert.Equal(t, 40, ground[1].Gold)

	// removing twice is harmless
	a.RemoveMonster(m)
	assert.Len(t, a.Ground(), 2)
}

func TestStepToward(t *testing.T) {
	a, races := newTestArena(t)
	m := NewMonster(races.Get(raceKobold))
	require.True(t, a.AddMonster(m, 23, 18))

	assert.True(t, a.StepToward(m))
	assert.Equal(t, 22, m.X)
	assert.Equal(t, 19, m.Y)
	assert.True(t, a.StepToward(m))
	assert.True(t, a.Adjacent(m))
	assert.False(t, a.StepToward(m), "the player's grid is never free")
}

func TestSummonKinRespectsUniqueLimit(t *testing.T) {
	a, races := newTestArena(t)
	grip := NewMonster(races.Get(raceGrip))
	require.True(t, a.AddMonster(grip, 22, 20))

	assert.Equal(t, 1, a.Summon(grip, data.SummonKin, 3))
	assert.Equal(t, 1, a.CountRace(raceFang))
	assert.Zero(t, a.Summon(grip, data.SummonKin, 1))
}

func TestAggravateWakesAndHastens(t *testing.T) {
	a, races := newTestArena(t)
	caster := NewMonster(races.Get(raceKobold))
	sleeper := NewMonster(races.Get(raceKobold))
	require.True(t, a.AddMonster(caster, 22, 20))
	require.True(t, a.AddMonster(sleeper, 30, 20))
	sleeper.Timed[data.MonSleep] = 50

	assert.Equal(t, 1, a.Aggravate(caster))
	assert.False(t, sleeper.Sleeping())
	assert.Equal(t, 25, sleeper.Timed[data.MonFast])
	assert.Zero(t, caster.Timed[data.MonFast])
}

func TestTeleports(t *testing.T) {
	a, races := newTestArena(t)
	p := a.Player

	require.True(t, a.TeleportPlayer(10))
	assert.NotEqual(t, [2]int{20, 20}, [2]int{p.X, p.Y})
	assert.LessOrEqual(t, Distance(p.X, p.Y, 20, 20), 10)

	m := NewMonster(races.Get(raceKobold))
	require.True(t, a.AddMonster(m, 5, 5))
	require.True(t, a.TeleportPlayerTo(m.X, m.Y))
	assert.True(t, a.Adjacent(m))

	require.True(t, a.TeleportMonster(m, 8))
	assert.False(t, a.IsFree(m.X, m.Y))

	assert.False(t, a.TeleportPlayerLevel(), "from the surface the only way is down")
	assert.Equal(t, 1, p.Depth)
	assert.True(t, p.Leaving)
}

func TestTrapsAndEarthquake(t *testing.T) {
	a, races := newTestArena(t)
	p := a.Player
	assert.Equal(t, 8, a.CreateTraps(p.X, p.Y))
	assert.Zero(t, a.CreateTraps(p.X, p.Y))

	m := NewMonster(races.Get(raceKobold))
	require.True(t, a.AddMonster(m, p.X+2, p.Y))
	a.Earthquake(p.X, p.Y, 3)
	assert.Zero(t, a.TrapCount())
	assert.Less(t, m.HP, m.MaxHP)
}

func TestMonsterVisibility(t *testing.T) {
	a, races := newTestArena(t)
	m := NewMonster(races.Get(raceKobold))
	require.True(t, a.AddMonster(m, 30, 20))
	assert.True(t, a.MonsterVisible(m))

	a.MaxSight = 5
	assert.False(t, a.MonsterVisible(m))
	a.MaxSight = MaxSight

	a.Player.Timed[data.TimedBlind] = 3
	assert.False(t, a.MonsterVisible(m))
}

func TestMonsterDesc(t *testing.T) {
	_, races := newTestArena(t)
	m := NewMonster(races.Get(raceKobold))
	assert.Equal(t, "The Kobold", m.Desc(DescCapital))
	assert.Equal(t, "a Kobold", m.Desc(DescIndefinite))

	m.Visible = false
	assert.Equal(t, "It", m.Desc(DescCapital))

	grip := NewMonster(races.Get(raceGrip))
	assert.Equal(t, "Grip, Farmer Maggot's Dog", grip.Desc(DescDefinite))
}

func TestMemoryLearning(t *testing.T) {
	_, races := newTestArena(t)
	kobold := NewMonster(races.Get(raceKobold))

	NewMemory(rng.NewSequence(0)).Learn(kobold, data.PFResFire)
	assert.False(t, kobold.Smart.Has(data.PFResFire), "ordinary monsters learn half the time")

	mem := NewMemory(rng.NewSequence(1))
	mem.Learn(kobold, data.PFResFire)
	assert.True(t, mem.Knows(kobold, data.PFResFire))

	stupid := &data.Race{ID: 999, Name: "Rock lizard"}
	stupid.Flags.On(data.RFStupid)
	lizard := NewMonster(stupid)
	NewMemory(rng.NewSequence(1)).Learn(lizard, data.PFResFire)
	assert.False(t, lizard.Smart.Has(data.PFResFire))

	off := NewMemory(rng.NewSequence(1))
	off.Enabled = false
	off.Learn(lizard, data.PFResCold)
	assert.False(t, off.Knows(lizard, data.PFResCold))
}

func TestMessageLog(t *testing.T) {
	log := NewMessageLog()
	var echoed []string
	log.Echo = func(s string) { echoed = append(echoed, s) }
	log.Add("The Kobold hits you.")
	log.Add("")
	log.Addf("You have %d hit points left.", 3)

	assert.True(t, log.Contains("hits you"))
	assert.Equal(t, echoed, log.Lines())
	assert.Len(t, log.Drain(), 2)
	assert.Empty(t, log.Lines())
}
