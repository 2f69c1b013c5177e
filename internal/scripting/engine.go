package scripting

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/l1jgo/bestiary/internal/data"
	"github.com/l1jgo/bestiary/internal/world"
)

//go:embed scripts
var builtin embed.FS

// scriptDirs are loaded in order; later files override earlier globals.
var scriptDirs = []string{"core", "character"}

// Engine wraps a single gopher-lua VM for rules that are tuned in Lua.
// Single-goroutine access only.
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine, loads the built-in scripts and then any
// scripts found in overrideDir (empty means built-ins only).
func NewEngine(overrideDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	// Set API version global
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}

	for _, sub := range scriptDirs {
		if err := e.loadBuiltin(path.Join("scripts", sub)); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load builtin %s scripts: %w", sub, err)
		}
	}
	if overrideDir != "" {
		for _, sub := range scriptDirs {
			if err := e.loadDir(filepath.Join(overrideDir, sub)); err != nil {
				vm.Close()
				return nil, fmt.Errorf("load %s scripts: %w", sub, err)
			}
		}
	}

	return e, nil
}

// loadBuiltin runs the embedded .lua files of one directory.
func (e *Engine) loadBuiltin(dir string) error {
	entries, err := fs.ReadDir(builtin, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".lua" {
			continue
		}
		p := path.Join(dir, entry.Name())
		src, err := builtin.ReadFile(p)
		if err != nil {
			return err
		}
		if err := e.vm.DoString(string(src)); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
		e.log.Debug("loaded builtin lua script", zap.String("file", p))
	}
	return nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		p := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", p))
	}
	return nil
}

// PlayerSkills calls the Lua player_skills function. It implements
// world.SkillCalc.
func (e *Engine) PlayerSkills(level int, stats [data.StatCount]int) world.Skills {
	fn := e.vm.GetGlobal("player_skills")
	if fn == lua.LNil {
		e.log.Error("lua function player_skills not found")
		return world.Skills{}
	}

	t := e.vm.NewTable()
	t.RawSetString("level", lua.LNumber(level))
	t.RawSetString("str", lua.LNumber(stats[data.StatStr]))
	t.RawSetString("int", lua.LNumber(stats[data.StatInt]))
	t.RawSetString("wis", lua.LNumber(stats[data.StatWis]))
	t.RawSetString("dex", lua.LNumber(stats[data.StatDex]))
	t.RawSetString("con", lua.LNumber(stats[data.StatCon]))

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		e.log.Error("lua player_skills error", zap.Error(err))
		return world.Skills{}
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		e.log.Error("lua player_skills returned non-table")
		return world.Skills{}
	}

	return world.Skills{
		Save:        lInt(rt, "save"),
		TheftSafety: lInt(rt, "theft_safety"),
		Melee:       lInt(rt, "melee"),
		ToHit:       lInt(rt, "to_hit"),
	}
}

// LevelFromExp calls Lua level_from_exp(exp).
func (e *Engine) LevelFromExp(exp int) int {
	return e.callIntFunc("level_from_exp", exp)
}

// ExpForLevel calls Lua exp_for_level(level).
func (e *Engine) ExpForLevel(level int) int {
	return e.callIntFunc("exp_for_level", level)
}

// StatIndex calls Lua stat_index(v).
func (e *Engine) StatIndex(v int) int {
	return e.callIntFunc("stat_index", v)
}

// lInt reads an integer field from a Lua table.
func lInt(t *lua.LTable, key string) int {
	return int(lua.LVAsNumber(t.RawGetString(key)))
}

// callIntFunc calls a Lua function with int args and returns an int result.
func (e *Engine) callIntFunc(name string, args ...int) int {
	fn := e.vm.GetGlobal(name)
	if fn == lua.LNil {
		e.log.Error("lua function not found", zap.String("name", name))
		return 0
	}

	lArgs := make([]lua.LValue, len(args))
	for i, a := range args {
		lArgs[i] = lua.LNumber(a)
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lArgs...); err != nil {
		e.log.Error("lua call error", zap.String("func", name), zap.Error(err))
		return 0
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)
	return int(lua.LVAsNumber(result))
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
