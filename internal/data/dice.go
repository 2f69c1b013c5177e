package data

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/l1jgo/bestiary/internal/core/rng"
)

// Dice is a random value as written in the tables: "B", "XdY", "B+XdY",
// optionally suffixed with "mM" for the m_bonus field. A YAML mapping with
// base/dice/sides/m_bonus keys is accepted too.
type Dice rng.Value

// ParseDice parses the string form of a random value.
func ParseDice(s string) (Dice, error) {
	var d Dice
	rest := strings.TrimSpace(s)
	if rest == "" {
		return d, fmt.Errorf("bad dice %q", s)
	}
	num := func(p string) (int, bool) {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		return n, err == nil
	}
	var ok bool
	if i := strings.IndexByte(rest, 'm'); i >= 0 {
		if d.MBonus, ok = num(rest[i+1:]); !ok {
			return Dice{}, fmt.Errorf("bad dice %q", s)
		}
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, 'd'); i >= 0 {
		dice := rest
		if j := strings.IndexByte(rest, '+'); j >= 0 {
			if d.Base, ok = num(rest[:j]); !ok {
				return Dice{}, fmt.Errorf("bad dice %q", s)
			}
			dice = rest[j+1:]
			i -= j + 1
		}
		if d.Dice, ok = num(dice[:i]); !ok {
			return Dice{}, fmt.Errorf("bad dice %q", s)
		}
		if d.Sides, ok = num(dice[i+1:]); !ok {
			return Dice{}, fmt.Errorf("bad dice %q", s)
		}
		return d, nil
	}
	if strings.TrimSpace(rest) != "" {
		if d.Base, ok = num(rest); !ok {
			return Dice{}, fmt.Errorf("bad dice %q", s)
		}
	}
	return d, nil
}

func (d *Dice) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		parsed, err := ParseDice(n.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		*d = parsed
		return nil
	case yaml.MappingNode:
		var m struct {
			Base   int `yaml:"base"`
			Dice   int `yaml:"dice"`
			Sides  int `yaml:"sides"`
			MBonus int `yaml:"m_bonus"`
		}
		if err := n.Decode(&m); err != nil {
			return err
		}
		*d = Dice{Base: m.Base, Dice: m.Dice, Sides: m.Sides, MBonus: m.MBonus}
		return nil
	}
	return fmt.Errorf("line %d: dice must be a string or mapping", n.Line)
}

// Value converts d to the rng form.
func (d Dice) Value() rng.Value {
	return rng.Value(d)
}

func (d Dice) String() string {
	v := rng.Value(d)
	switch {
	case v.Dice == 0:
		return strconv.Itoa(v.Base)
	case v.Base == 0:
		return fmt.Sprintf("%dd%d", v.Dice, v.Sides)
	}
	return fmt.Sprintf("%d+%dd%d", v.Base, v.Dice, v.Sides)
}
