package combat

import (
	"github.com/l1jgo/bestiary/internal/core/rng"
	"github.com/l1jgo/bestiary/internal/data"
)

// SpellDamage evaluates the damage of s cast by a monster with hp hit points
// at effective level rlev. Hit-point based spells ignore rlev; the others
// ignore hp.
func SpellDamage(s *data.Spell, hp, rlev int, aspect rng.Aspect, r *rng.Rand) int {
	if s == nil {
		return 0
	}
	if s.Div > 0 {
		dam := max(hp, 0) / s.Div
		if s.Cap > 0 && dam > s.Cap {
			dam = s.Cap
		}
		return dam
	}
	rlev = max(rlev, 1)
	dam := r.Calc(s.Base, aspect)
	dam += rlev * s.RlevDam.Base / 100
	if s.ScaleSides {
		dam += r.DamCalc(s.RlevDam.Dice, rlev*s.RlevDam.Sides/100, aspect)
	} else {
		dam += r.DamCalc(rlev*s.RlevDam.Dice/100, s.RlevDam.Sides, aspect)
	}
	return dam
}

// EffectiveLevel is the race level used by power formulas, floored at 1.
func EffectiveLevel(r *data.Race) int {
	return max(r.Level, 1)
}
