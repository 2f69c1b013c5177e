package system

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/l1jgo/bestiary/internal/core/rng"
	"github.com/l1jgo/bestiary/internal/data"
	"github.com/l1jgo/bestiary/internal/lore"
	"github.com/l1jgo/bestiary/internal/world"
)

type tables struct {
	races   *data.RaceTable
	spells  *data.SpellTable
	effects *data.SpellEffectTable
}

func loadTables(t *testing.T) tables {
	t.Helper()
	races, err := data.LoadRaceTable("")
	require.NoError(t, err)
	spells, err := data.LoadSpellTable("")
	require.NoError(t, err)
	effects, err := data.LoadSpellEffectTable("")
	require.NoError(t, err)
	return tables{races: races, spells: spells, effects: effects}
}

// raceWithBlows copies a stock race and replaces its blows. The copy keeps
// the stock id so lore still records against it.
func raceWithBlows(t *testing.T, tb tables, id int, blows ...data.Blow) *data.Race {
	t.Helper()
	r := *tb.races.Get(id)
	r.Blows = [data.MaxBlows]data.Blow{}
	copy(r.Blows[:], blows)
	return &r
}

type fight struct {
	cc      *CombatContext
	arena   *world.Arena
	tracker *lore.Tracker
}

// newFight puts a sturdy level 1 player next to a monster of race.
func newFight(t *testing.T, tb tables, race *data.Race, r *rng.Rand) *fight {
	t.Helper()
	p := world.NewPlayer("Tester")
	p.HP, p.MaxHP = 100, 100
	arena := world.NewArena(40, 40, p, tb.races, r)
	m := world.NewMonster(race)
	require.True(t, arena.AddMonster(m, p.X+1, p.Y))
	tracker := lore.NewTracker(tb.races)
	return &fight{
		cc: &CombatContext{
			Player:    p,
			Monster:   m,
			RNG:       r,
			Grid:      arena,
			Lore:      tracker,
			Knowledge: world.NewMemory(r),
			Msg:       world.NewMessageLog(),
			Log:       zap.NewNop(),
		},
		arena:   arena,
		tracker: tracker,
	}
}
