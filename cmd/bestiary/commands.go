package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/l1jgo/bestiary/internal/core/event"
	"github.com/l1jgo/bestiary/internal/core/rng"
	"github.com/l1jgo/bestiary/internal/lore"
	"github.com/l1jgo/bestiary/internal/recall"
	"github.com/l1jgo/bestiary/internal/system"
	"github.com/l1jgo/bestiary/internal/world"
)

const (
	arenaSize    = 41
	spawnDist    = 3
	defaultTick  = 100 * time.Millisecond
	playerName   = "Adventurer"
	saveDeadline = 10 * time.Second
)

func (a *app) races() error {
	for _, r := range a.tables.Races.All() {
		rec := a.tracker.Get(r.ID)
		fmt.Fprintf(a.out, "%4d  %s  lvl %-3d  kills %-4d  %s\n",
			r.ID, styled(recall.ColorFromGlyph(r.Color), r.Glyph), r.Level, rec.TKills, r.Name)
	}
	return nil
}

// player builds the character recall and simulations measure against.
func (a *app) player() *world.Player {
	p := world.NewPlayer(playerName)
	p.Exp = a.rules.ExpForLevel(a.cfg.Rules.PlayerLevel)
	p.MaxExp = p.Exp
	p.Recalc(a.rules)
	return p
}

func (a *app) options(p *world.Player) recall.Options {
	return recall.Options{
		Player: p,
		Colors: recall.AttackColors(p, a.tables.Spells),
		Spells: a.tables.Spells,
	}
}

func (a *app) recall(query string) error {
	race, err := a.tables.Races.Find(query)
	if err != nil {
		return err
	}
	text := recall.Header(race)
	text.Add("\n", recall.White)
	text.Append(recall.Describe(race, a.tracker.Get(race.ID), a.options(a.player())))
	fmt.Fprintln(a.out, text.Render(styled, a.cfg.Spoiler.Width))
	return nil
}

func (a *app) spoilers(path string) error {
	opts := a.options(a.player())
	if err := recall.DumpSpoilerFile(path, a.tables.Races, a.tracker, opts, a.cfg.Spoiler.Width); err != nil {
		return err
	}
	a.log.Info("spoilers written", zap.String("path", path), zap.Int("races", a.tables.Races.Count()))
	return nil
}

func (a *app) simulate(query string, args []string) error {
	race, err := a.tables.Races.Find(query)
	if err != nil {
		return err
	}
	rounds := a.cfg.Simulate.Rounds
	if len(args) > 0 {
		if rounds, err = strconv.Atoi(args[0]); err != nil || rounds <= 0 {
			return fmt.Errorf("bad round count %q", args[0])
		}
	}

	seed := a.cfg.Rules.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rng.New(seed)

	p := a.player()
	p.HP, p.MaxHP = a.cfg.Simulate.PlayerHP, a.cfg.Simulate.PlayerHP
	arena := world.NewArena(arenaSize, arenaSize, p, a.tables.Races, r)
	if a.cfg.Rules.MaxSight > 0 {
		arena.MaxSight = a.cfg.Rules.MaxSight
	}
	m := world.NewMonster(race)
	if !arena.AddMonster(m, p.X+spawnDist, p.Y) {
		return fmt.Errorf("no room for %s", race.Name)
	}

	msg := world.NewMessageLog()
	msg.Echo = func(line string) { fmt.Fprintln(a.out, line) }
	bus := event.NewBus()
	event.Subscribe(bus, func(e event.PlayerKilled) {
		a.log.Info("player killed", zap.String("by", e.DiedFrom))
	})

	f := &system.Fight{
		Arena:  arena,
		RNG:    r,
		Lore:   a.tracker,
		Memory: world.NewMemory(r),
		Msg:    msg,
		Bus:    bus,
		Log:    a.log,
	}
	spells := system.NewSpellSystem(a.tables.Spells, a.tables.Effects, a.log)
	sim := system.NewSimulation(f, spells, a.store, a.cfg.Simulate.PersistInterval)
	defer sim.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dt := a.cfg.Simulate.TickRate
	if dt <= 0 {
		dt = defaultTick
	}
	a.log.Info("simulation started",
		zap.String("race", race.Name), zap.Int("rounds", rounds), zap.Int64("seed", seed))
	out := sim.Run(rounds, dt, func(int) {
		if ctx.Err() != nil {
			// interrupted: leave the fight so lore still gets saved
			p.Leaving = true
			return
		}
		if a.cfg.Simulate.TickRate > 0 {
			time.Sleep(a.cfg.Simulate.TickRate)
		}
	})

	fmt.Fprintf(a.out, "\nAfter %d turns: ", out.Turns)
	switch {
	case out.PlayerDead:
		fmt.Fprintf(a.out, "you were killed by %s.\n", out.DiedFrom)
	case out.Slain > 0:
		fmt.Fprintf(a.out, "%d slain, %d left standing.\n", out.Slain, out.Left)
	case p.Leaving:
		fmt.Fprintln(a.out, "you left the fight.")
	default:
		fmt.Fprintf(a.out, "you have %d of %d hit points left.\n", p.HP, p.MaxHP)
	}
	fmt.Fprintln(a.out)
	return a.recall(strconv.Itoa(race.ID))
}

func (a *app) cheat(query string) error {
	if query == "all" {
		a.tracker.CheatAll()
		return a.save(a.tracker.Records())
	}
	race, err := a.tables.Races.Find(query)
	if err != nil {
		return err
	}
	a.tracker.CheatFill(race.ID)
	return a.save([]lore.Record{a.tracker.Get(race.ID)})
}

func (a *app) wipe(args []string) error {
	if len(args) == 0 {
		a.tracker.WipeAll()
		return a.save(a.tracker.Records())
	}
	race, err := a.tables.Races.Find(args[0])
	if err != nil {
		return err
	}
	a.tracker.Wipe(race.ID)
	return a.save([]lore.Record{a.tracker.Get(race.ID)})
}

// save writes recs to the store, if there is one.
func (a *app) save(recs []lore.Record) error {
	if a.store == nil {
		a.log.Warn("lore storage disabled, change not kept")
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveDeadline)
	defer cancel()
	if err := a.store.Save(ctx, recs); err != nil {
		return fmt.Errorf("save lore: %w", err)
	}
	a.log.Info("lore saved", zap.Int("races", len(recs)))
	return nil
}
