package combat

import "github.com/l1jgo/bestiary/internal/core/rng"

// TestHit resolves an attack of the given chance against ac. 12% of rolls
// always hit and 5% always miss; unseen targets halve the chance.
func TestHit(chance, ac int, visible bool, r *rng.Rand) bool {
	k := r.Int0(100)
	if k < 17 {
		return k < 12
	}
	if !visible {
		chance /= 2
	}
	if chance < 9 {
		chance = 9
	}
	return r.Int0(chance) >= ac*2/3
}

// CheckHit resolves a monster attack of the given power at the given level.
func CheckHit(ac, power, level int, r *rng.Rand) bool {
	return TestHit(power+level*3, ac, true, r)
}

// MeleeHitChance is the percent chance shown in recall for the player
// hitting a target of armour ac with the given skill and to-hit bonus.
func MeleeHitChance(skill, toHit, ac int) int {
	chance := skill + toHit*3
	if chance < 9 {
		chance = 9
	}
	pct := 12 + 83*(chance-ac*2/3)/chance
	if pct < 12 {
		pct = 12
	}
	return pct
}

// Breakable is an object whose breakage on use can be rolled.
type Breakable interface {
	IsArtifact() bool
	// IsThrowingWeapon reports a thrown weapon that is neither ammunition
	// nor explosive.
	IsThrowingWeapon() bool
	BreakagePercent() int
}

// BreakageChance is the percent chance that a fired or thrown object breaks.
func BreakageChance(obj Breakable, hitTarget bool) int {
	if obj.IsArtifact() {
		return 0
	}
	perc := obj.BreakagePercent()
	if obj.IsThrowingWeapon() {
		perc = 1
	}
	if !hitTarget {
		return perc * perc / 100
	}
	return perc
}
