// Package combat holds the pure attack and damage rules shared by monster
// melee, monster spells and player missiles.
package combat

import (
	"fmt"

	"github.com/l1jgo/bestiary/internal/data"
)

// ResistLevel is how well a target withstands an element.
type ResistLevel int

const (
	Vulnerable ResistLevel = iota
	Normal
	Resistant
	Immune
)

var resistNames = [...]string{"vulnerable", "normal", "resistant", "immune"}

func (l ResistLevel) String() string {
	if l < Vulnerable || l > Immune {
		return fmt.Sprintf("ResistLevel(%d)", int(l))
	}
	return resistNames[l]
}

// AdjustDamage scales dam for a target at the given resist level.
//
// roll is the variable part of the resist denominator for elements that
// have one; it is clamped to [1, DenomDice] and ignored otherwise. Callers
// draw it with rng.Int1(elem.Info().DenomDice).
//
// Panics on an invalid element or level.
func AdjustDamage(elem data.Element, dam int, level ResistLevel, roll int) int {
	info := elem.Info()
	if dam < 0 {
		dam = 0
	}
	switch level {
	case Immune:
		return 0
	case Vulnerable:
		return dam * 4 / 3
	case Normal:
		return dam
	case Resistant:
		if info.Num == 0 {
			return dam
		}
		denom := info.DenomBase
		if info.DenomDice > 0 {
			denom += min(max(roll, 1), info.DenomDice)
		}
		return dam * info.Num / denom
	}
	panic(fmt.Sprintf("combat: invalid resist level %d", int(level)))
}

// ResistLevelFor derives the resist level of a player with flags against
// elem. Resistance and vulnerability together cancel out.
func ResistLevelFor(elem data.Element, flags data.PlayerFlags) ResistLevel {
	info := elem.Info()
	if info.Immune != data.PFNone && flags.Has(info.Immune) {
		return Immune
	}
	res := info.Resist != data.PFNone && flags.Has(info.Resist)
	vuln := info.Vuln != data.PFNone && flags.Has(info.Vuln)
	switch {
	case res && vuln:
		return Normal
	case res:
		return Resistant
	case vuln:
		return Vulnerable
	}
	return Normal
}

// ArmourReduce applies the melee armour reduction to damage:
// dam - dam*min(ac, 240)/400.
func ArmourReduce(dam, ac int) int {
	ac = min(max(ac, 0), 240)
	return dam - dam*ac/400
}

// MeleeInventoryPower is the chance in 10000 for each vulnerable item to be
// destroyed by an elemental blow of the given damage.
func MeleeInventoryPower(dam int) int {
	switch {
	case dam < 30:
		return 100
	case dam < 60:
		return 200
	}
	return 300
}

// SpellInventoryPower is the item destruction chance in 10000 of a
// projected element: min(dam*perPoint, 300).
func SpellInventoryPower(dam, perPoint int) int {
	return min(dam*perPoint, 300)
}
