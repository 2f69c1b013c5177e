package data

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownRace is returned by lookups that match no race.
var ErrUnknownRace = errors.New("unknown race")

// Race is the static definition of a monster race.
type Race struct {
	ID         int
	Name       string
	Glyph      string
	Color      string
	Text       string
	Level      int
	Rarity     int
	Speed      int // 110 is normal speed
	AC         int
	HP         int // average hit points
	Sleep      int
	AAF        int // awareness radius in grids
	Exp        int // experience per level of the race
	FreqInnate int // 1 in N chance to use an innate attack, 0 = never
	FreqSpell  int // 1 in N chance to cast, 0 = never
	MaxNum     int
	Blows      [MaxBlows]Blow
	Flags      RaceFlags
	Spells     SpellSet
}

// Unique reports whether the race is a unique.
func (r *Race) Unique() bool {
	return r.Flags.Has(RFUnique)
}

// BlowCount returns the number of slots before the first empty method.
func (r *Race) BlowCount() int {
	for i, b := range r.Blows {
		if b.Method == MethodNone {
			return i
		}
	}
	return MaxBlows
}

// InnateSpells returns the race's innate spells, given the spell table.
func (r *Race) InnateSpells(spells *SpellTable) SpellSet {
	var out SpellSet
	r.Spells.Each(func(id SpellID) {
		if s := spells.Get(id); s != nil && s.Type.Is(TypeInnate) {
			out.On(id)
		}
	})
	return out
}

type raceBlowYAML struct {
	Method string `yaml:"method"`
	Effect string `yaml:"effect"`
	Dice   Dice   `yaml:"dice"`
}

type raceYAML struct {
	ID         int            `yaml:"id"`
	Name       string         `yaml:"name"`
	Glyph      string         `yaml:"glyph"`
	Color      string         `yaml:"color"`
	Text       string         `yaml:"text"`
	Level      int            `yaml:"level"`
	Rarity     int            `yaml:"rarity"`
	Speed      int            `yaml:"speed"`
	AC         int            `yaml:"ac"`
	HP         int            `yaml:"hp"`
	Sleep      int            `yaml:"sleep"`
	AAF        int            `yaml:"aaf"`
	Exp        int            `yaml:"exp"`
	FreqInnate int            `yaml:"innate_freq"`
	FreqSpell  int            `yaml:"spell_freq"`
	MaxNum     int            `yaml:"max_num"`
	Blows      []raceBlowYAML `yaml:"blows"`
	Flags      []string       `yaml:"flags"`
	Spells     []string       `yaml:"spells"`
}

type raceListFile struct {
	Races []raceYAML `yaml:"races"`
}

// RaceTable holds every race indexed by id.
type RaceTable struct {
	races    map[int]*Race
	order    []*Race
	warnings []string
}

// LoadRaceTable loads races from a YAML file. An empty path loads the
// embedded defaults. Unknown names in a row are recorded as warnings; an
// unknown blow method or effect is kept as MethodUnknown/EffectUnknown.
func LoadRaceTable(path string) (*RaceTable, error) {
	raw, err := readTable(path, "races.yaml")
	if err != nil {
		return nil, fmt.Errorf("read races: %w", err)
	}
	var f raceListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse races: %w", err)
	}
	t := &RaceTable{races: make(map[int]*Race, len(f.Races))}
	for i := range f.Races {
		row := &f.Races[i]
		if _, dup := t.races[row.ID]; dup {
			return nil, fmt.Errorf("parse races: duplicate id %d", row.ID)
		}
		r := t.build(row)
		t.races[r.ID] = r
		t.order = append(t.order, r)
	}
	sort.Slice(t.order, func(i, j int) bool { return t.order[i].ID < t.order[j].ID })
	return t, nil
}

func (t *RaceTable) build(row *raceYAML) *Race {
	warn := func(msg string) {
		t.warnings = append(t.warnings, fmt.Sprintf("race %d (%s): %s", row.ID, row.Name, msg))
	}
	r := &Race{
		ID:         row.ID,
		Name:       row.Name,
		Glyph:      row.Glyph,
		Color:      row.Color,
		Text:       strings.TrimSpace(row.Text),
		Level:      row.Level,
		Rarity:     row.Rarity,
		Speed:      row.Speed,
		AC:         row.AC,
		HP:         row.HP,
		Sleep:      row.Sleep,
		AAF:        row.AAF,
		Exp:        row.Exp,
		FreqInnate: row.FreqInnate,
		FreqSpell:  row.FreqSpell,
		MaxNum:     row.MaxNum,
	}
	if r.Speed == 0 {
		r.Speed = 110
	}
	if len(row.Blows) > MaxBlows {
		warn(fmt.Sprintf("%d blows, keeping %d", len(row.Blows), MaxBlows))
		row.Blows = row.Blows[:MaxBlows]
	}
	for i, b := range row.Blows {
		m, ok := methodByName[strings.ToUpper(b.Method)]
		if !ok {
			warn(fmt.Sprintf("unknown blow method %q", b.Method))
			m = MethodUnknown
		}
		e := EffectNone
		if b.Effect != "" {
			if e, ok = blowEffectByName[strings.ToUpper(b.Effect)]; !ok {
				warn(fmt.Sprintf("unknown blow effect %q", b.Effect))
				e = EffectUnknown
			}
		}
		r.Blows[i] = Blow{Method: m, Effect: e, Dice: b.Dice.Dice, Sides: b.Dice.Sides}
	}
	for _, f := range parseNames(row.Flags, raceFlagByName, "flag", warn) {
		r.Flags.On(f)
	}
	for _, s := range parseNames(row.Spells, spellByName, "spell", warn) {
		r.Spells.On(s)
	}
	if r.Unique() && r.MaxNum != 1 {
		r.MaxNum = 1
	}
	for hurt, im := range VulnerabilityCancels {
		if r.Flags.Has(hurt) && r.Flags.Has(im) {
			warn(fmt.Sprintf("%s contradicts %s", hurt, im))
		}
	}
	return r
}

// Get returns a race by id, or nil if not found.
func (t *RaceTable) Get(id int) *Race {
	return t.races[id]
}

// Find resolves an id or a case-insensitive name (exact first, then prefix).
func (t *RaceTable) Find(query string) (*Race, error) {
	if id, err := strconv.Atoi(query); err == nil {
		if r := t.races[id]; r != nil {
			return r, nil
		}
		return nil, fmt.Errorf("%w: %d", ErrUnknownRace, id)
	}
	q := strings.ToLower(strings.TrimSpace(query))
	var prefix *Race
	for _, r := range t.order {
		name := strings.ToLower(r.Name)
		if name == q {
			return r, nil
		}
		if prefix == nil && strings.HasPrefix(name, q) {
			prefix = r
		}
	}
	if prefix != nil {
		return prefix, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRace, query)
}

// All returns every race ordered by id.
func (t *RaceTable) All() []*Race {
	return t.order
}

// Count returns the number of loaded races.
func (t *RaceTable) Count() int {
	return len(t.races)
}

// Warnings returns the data problems found while loading.
func (t *RaceTable) Warnings() []string {
	return t.warnings
}
