package data

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/l1jgo/bestiary/internal/core/rng"
)

// Spell is one row of the monster spell table.
type Spell struct {
	ID        SpellID
	Type      SpellType
	Desc      string // recall phrase: "fire bolts", "acid"
	Verb      string // "casts a fire bolt"
	BlindVerb string // "mumbles"
	Hit       int    // 100 always hits, 0 never
	Save      bool
	Element   Element
	Div       int // >0: damage is caster hp / Div, capped at Cap
	Cap       int
	Base      rng.Value
	RlevDam   rng.Value // level-scaled part in percent of rlev
	// ScaleSides makes rlev scale the dice sides of RlevDam instead of the
	// dice count.
	ScaleSides bool
}

// HPBased reports whether damage comes from caster hit points.
func (s *Spell) HPBased() bool {
	return s.Div > 0
}

// Damaging reports whether the spell can deal damage at all.
func (s *Spell) Damaging() bool {
	return s.Div > 0 || !s.Base.IsZero() || !s.RlevDam.IsZero()
}

type spellYAML struct {
	Name      string   `yaml:"name"`
	Type      []string `yaml:"type"`
	Desc      string   `yaml:"desc"`
	Verb      string   `yaml:"verb"`
	BlindVerb string   `yaml:"blind_verb"`
	Hit       *int     `yaml:"hit"`
	Save      bool     `yaml:"save"`
	Element   string   `yaml:"element"`
	Div       int      `yaml:"div"`
	Cap       int      `yaml:"cap"`
	Base      Dice     `yaml:"base"`
	RlevDam   Dice     `yaml:"rlev_dam"`
	Scale     string   `yaml:"scale"` // "dice" (default) or "sides"
}

type spellListFile struct {
	Spells []spellYAML `yaml:"spells"`
}

// SpellTable holds the spell rows indexed by id.
type SpellTable struct {
	spells   [SpellCount]*Spell
	count    int
	warnings []string
}

// LoadSpellTable loads spells from a YAML file. An empty path loads the
// embedded defaults. Rows with unknown names are skipped with a warning.
func LoadSpellTable(path string) (*SpellTable, error) {
	raw, err := readTable(path, "spells.yaml")
	if err != nil {
		return nil, fmt.Errorf("read spells: %w", err)
	}
	var f spellListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse spells: %w", err)
	}
	t := &SpellTable{}
	for i := range f.Spells {
		row := &f.Spells[i]
		id, ok := spellByName[strings.ToUpper(row.Name)]
		if !ok {
			t.warnf("unknown spell %q", row.Name)
			continue
		}
		warn := func(msg string) { t.warnf("spell %s: %s", id, msg) }
		s := &Spell{
			ID:         id,
			Desc:       row.Desc,
			Verb:       row.Verb,
			BlindVerb:  row.BlindVerb,
			Hit:        100,
			Save:       row.Save,
			Div:        row.Div,
			Cap:        row.Cap,
			Base:       row.Base.Value(),
			RlevDam:    row.RlevDam.Value(),
			ScaleSides: strings.EqualFold(row.Scale, "sides"),
		}
		if row.Hit != nil {
			s.Hit = *row.Hit
		}
		for _, name := range row.Type {
			bit, ok := spellTypeNames[strings.ToUpper(name)]
			if !ok {
				warn(fmt.Sprintf("unknown type %q", name))
				continue
			}
			s.Type |= bit
		}
		if row.Element != "" {
			if s.Element, ok = elementByName[strings.ToUpper(row.Element)]; !ok {
				warn(fmt.Sprintf("unknown element %q", row.Element))
				s.Element = ElemNone
			}
		}
		if s.Div > 0 && s.Cap <= 0 {
			warn("div without cap")
		}
		if t.spells[id] == nil {
			t.count++
		}
		t.spells[id] = s
	}
	return t, nil
}

func (t *SpellTable) warnf(format string, args ...any) {
	t.warnings = append(t.warnings, fmt.Sprintf(format, args...))
}

// Get returns the row for id, or nil when the table has none.
func (t *SpellTable) Get(id SpellID) *Spell {
	if !id.Valid() {
		return nil
	}
	return t.spells[id]
}

// Count returns the number of loaded spells.
func (t *SpellTable) Count() int {
	return t.count
}

// Warnings returns the data problems found while loading.
func (t *SpellTable) Warnings() []string {
	return t.warnings
}

// Missing returns the ids in set that have no table row.
func (t *SpellTable) Missing(set SpellSet) []SpellID {
	var out []SpellID
	set.Each(func(id SpellID) {
		if t.Get(id) == nil {
			out = append(out, id)
		}
	})
	return out
}
