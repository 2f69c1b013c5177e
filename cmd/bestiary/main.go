package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/l1jgo/bestiary/internal/config"
	"github.com/l1jgo/bestiary/internal/data"
	"github.com/l1jgo/bestiary/internal/lore"
	"github.com/l1jgo/bestiary/internal/persist"
	"github.com/l1jgo/bestiary/internal/scripting"
)

const usage = `usage: bestiary [-config path] <command> [args]

commands:
  races                     list every race
  recall <race>             show what is known about a race
  spoilers [path]           write full descriptions of every race
  simulate <race> [rounds]  let a monster fight the player and learn from it
  cheat <race|all>          learn everything about a race
  wipe [race]               forget a race, or everything
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// app is the state shared by the commands.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	tables  *data.Tables
	rules   *scripting.Engine
	tracker *lore.Tracker
	store   persist.LoreStore // nil when lore is kept in memory
	out     io.Writer
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("bestiary", flag.ContinueOnError)
	cfgPath := fs.String("config", config.Path(), "config file")
	fs.Usage = func() { fmt.Fprint(fs.Output(), usage) }
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("no command given")
	}

	// 1. Load config
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// 3. Load static tables
	tables, err := data.LoadTables(cfg.Data.Races, cfg.Data.Spells, cfg.Data.SpellEffects)
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}
	for _, w := range tables.Warnings() {
		log.Warn("data problem", zap.String("detail", w))
	}
	log.Debug("tables loaded",
		zap.Int("races", tables.Races.Count()),
		zap.Int("spells", tables.Spells.Count()),
		zap.Int("spell_effects", tables.Effects.Count()))

	// 4. Lua rules
	rules, err := scripting.NewEngine(cfg.Scripts.Dir, log)
	if err != nil {
		return fmt.Errorf("scripting: %w", err)
	}
	defer rules.Close()

	// 5. Lore and its storage
	a := &app{
		cfg:     cfg,
		log:     log,
		tables:  tables,
		rules:   rules,
		tracker: lore.NewTracker(tables.Races),
		out:     out,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := persist.Open(ctx, cfg, log)
	switch {
	case errors.Is(err, persist.ErrNoStore):
		log.Debug("lore storage disabled, keeping lore in memory")
	case err != nil:
		return fmt.Errorf("open lore storage: %w", err)
	default:
		defer store.Close()
		a.store = store
		recs, err := store.Load(ctx)
		if err != nil {
			return fmt.Errorf("load lore: %w", err)
		}
		n := a.tracker.Restore(recs)
		log.Info("lore restored", zap.String("driver", cfg.Storage.Driver), zap.Int("races", n))
	}
	if cfg.Rules.CheatKnow {
		a.tracker.CheatAll()
	}

	return a.dispatch(fs.Arg(0), fs.Args()[1:])
}

func (a *app) dispatch(cmd string, args []string) error {
	switch cmd {
	case "races":
		return a.races()
	case "recall":
		if len(args) != 1 {
			return errors.New("usage: recall <race>")
		}
		return a.recall(args[0])
	case "spoilers":
		path := a.cfg.Spoiler.Output
		if len(args) > 0 {
			path = args[0]
		}
		return a.spoilers(path)
	case "simulate":
		if len(args) < 1 || len(args) > 2 {
			return errors.New("usage: simulate <race> [rounds]")
		}
		return a.simulate(args[0], args[1:])
	case "cheat":
		if len(args) != 1 {
			return errors.New("usage: cheat <race|all>")
		}
		return a.cheat(args[0])
	case "wipe":
		if len(args) > 1 {
			return errors.New("usage: wipe [race]")
		}
		return a.wipe(args)
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
