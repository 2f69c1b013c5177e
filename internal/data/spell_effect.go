package data

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/l1jgo/bestiary/internal/core/rng"
)

// SpellEffect is a side effect attached to a spell or to an element.
//
// Base and Dam are overloaded per effect kind:
//   - timed: duration = Base + DamCalc(Dam.Dice, Dam.Sides*dam/100), capped
//     at Dam.MBonus when nonzero.
//   - InvDamage: Base.Base is the power in 10000 per point of damage.
//   - Teleport: Base.Base is the distance; Dam.MBonus > 0 filters by player
//     level (applies only when 1dM > player level).
//   - DrainLife: Base.Base + exp*Base.Sides/100*2 experience.
//   - DrainStat: Base.Base is the stat, -1 for a random one; Dam.MBonus 2
//     makes the loss permanent and ignores sustains.
//   - Summon: Base.Base is the SummonKind; Base.Dice d Base.Sides is the count.
type SpellEffect struct {
	Name    string
	Spell   SpellID // SpellNone for element rows
	Element Element // ElemNone for spell rows
	Timed   bool
	Status  TimedEffect
	Special Special
	Save    bool
	Resist  PlayerFlag // PFNone when nothing else suppresses it
	Chance  int        // weight within the chance pool, 0 = always fires
	Base    rng.Value
	Dam     rng.Value
}

// Matches reports whether the row applies to spell id with element elem.
func (e *SpellEffect) Matches(id SpellID, elem Element) bool {
	if e.Spell != SpellNone {
		return e.Spell == id
	}
	return e.Element != ElemNone && e.Element == elem
}

type spellEffectYAML struct {
	Name    string `yaml:"name"`
	Spell   string `yaml:"spell"`
	Element string `yaml:"element"`
	Timed   string `yaml:"timed"`
	Special string `yaml:"special"`
	Save    bool   `yaml:"save"`
	Resist  string `yaml:"resist"`
	Chance  int    `yaml:"chance"`
	Base    Dice   `yaml:"base"`
	Dam     Dice   `yaml:"dam"`
	Summon  string `yaml:"summon"`
}

type spellEffectListFile struct {
	Effects []spellEffectYAML `yaml:"effects"`
}

// SpellEffectTable holds every side-effect row in table order.
type SpellEffectTable struct {
	effects  []SpellEffect
	warnings []string
}

// LoadSpellEffectTable loads side effects from a YAML file. An empty path
// loads the embedded defaults. Malformed rows are dropped with a warning.
func LoadSpellEffectTable(path string) (*SpellEffectTable, error) {
	raw, err := readTable(path, "spell_effects.yaml")
	if err != nil {
		return nil, fmt.Errorf("read spell_effects: %w", err)
	}
	var f spellEffectListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse spell_effects: %w", err)
	}
	t := &SpellEffectTable{effects: make([]SpellEffect, 0, len(f.Effects))}
	for i := range f.Effects {
		if e, ok := t.build(&f.Effects[i]); ok {
			t.effects = append(t.effects, e)
		}
	}
	return t, nil
}

func (t *SpellEffectTable) build(row *spellEffectYAML) (SpellEffect, bool) {
	bad := func(format string, args ...any) (SpellEffect, bool) {
		t.warnings = append(t.warnings, fmt.Sprintf("effect %s: ", row.Name)+fmt.Sprintf(format, args...))
		return SpellEffect{}, false
	}
	e := SpellEffect{
		Name:   row.Name,
		Spell:  SpellNone,
		Save:   row.Save,
		Chance: row.Chance,
		Base:   row.Base.Value(),
		Dam:    row.Dam.Value(),
	}
	var ok bool
	if row.Spell != "" {
		if e.Spell, ok = spellByName[strings.ToUpper(row.Spell)]; !ok {
			return bad("unknown spell %q", row.Spell)
		}
	}
	if row.Element != "" {
		if e.Element, ok = elementByName[strings.ToUpper(row.Element)]; !ok {
			return bad("unknown element %q", row.Element)
		}
	}
	if e.Spell == SpellNone && e.Element == ElemNone {
		return bad("matches neither a spell nor an element")
	}
	switch {
	case row.Timed != "" && row.Special != "":
		return bad("both timed and special")
	case row.Timed != "":
		e.Timed = true
		if e.Status, ok = timedByName[strings.ToUpper(row.Timed)]; !ok {
			return bad("unknown timed effect %q", row.Timed)
		}
	case row.Special != "":
		if e.Special, ok = specialByName[strings.ToUpper(row.Special)]; !ok {
			return bad("unknown special %q", row.Special)
		}
	default:
		return bad("no effect")
	}
	if row.Resist != "" {
		if e.Resist, ok = playerFlagByName[strings.ToUpper(row.Resist)]; !ok {
			return bad("unknown resist %q", row.Resist)
		}
	}
	if row.Summon != "" {
		kind, ok := summonByName[strings.ToUpper(row.Summon)]
		if !ok {
			return bad("unknown summon kind %q", row.Summon)
		}
		e.Base.Base = int(kind)
	}
	if e.Chance < 0 {
		return bad("negative chance")
	}
	return e, true
}

// For returns the rows that apply to spell id with element elem, in table
// order.
func (t *SpellEffectTable) For(id SpellID, elem Element) []SpellEffect {
	var out []SpellEffect
	for i := range t.effects {
		if t.effects[i].Matches(id, elem) {
			out = append(out, t.effects[i])
		}
	}
	return out
}

// Count returns the number of loaded rows.
func (t *SpellEffectTable) Count() int {
	return len(t.effects)
}

// Warnings returns the data problems found while loading.
func (t *SpellEffectTable) Warnings() []string {
	return t.warnings
}
