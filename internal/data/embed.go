package data

import (
	"embed"
	"os"
	"path"
)

//go:embed yaml/*.yaml
var defaults embed.FS

// readTable reads path, or the embedded default named name when path is empty.
func readTable(p, name string) ([]byte, error) {
	if p == "" {
		return defaults.ReadFile(path.Join("yaml", name))
	}
	return os.ReadFile(p)
}

// Tables bundles every static table the engine needs.
type Tables struct {
	Races   *RaceTable
	Spells  *SpellTable
	Effects *SpellEffectTable
}

// LoadTables loads the three tables. Empty paths use the embedded defaults.
func LoadTables(racesPath, spellsPath, effectsPath string) (*Tables, error) {
	races, err := LoadRaceTable(racesPath)
	if err != nil {
		return nil, err
	}
	spells, err := LoadSpellTable(spellsPath)
	if err != nil {
		return nil, err
	}
	effects, err := LoadSpellEffectTable(effectsPath)
	if err != nil {
		return nil, err
	}
	return &Tables{Races: races, Spells: spells, Effects: effects}, nil
}

// Warnings collects the load warnings of every table.
func (t *Tables) Warnings() []string {
	var out []string
	out = append(out, t.Races.Warnings()...)
	out = append(out, t.Spells.Warnings()...)
	out = append(out, t.Effects.Warnings()...)
	for _, r := range t.Races.All() {
		for _, id := range t.Spells.Missing(r.Spells) {
			out = append(out, "race "+r.Name+": no spell row for "+id.String())
		}
	}
	return out
}
