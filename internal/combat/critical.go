package combat

import "github.com/l1jgo/bestiary/internal/core/rng"

// CriticalTier rates a melee roll of dam on dice d sides. It is zero unless
// dam reaches 95% of the maximum; low rolls may still be discarded, perfect
// rolls gain a tier, and heavy hits can keep supercharging.
func CriticalTier(dice, sides, dam int, r *rng.Rand) int {
	total := dice * sides
	if dam*20 < total*19 {
		return 0
	}
	if dam < 20 && r.Int0(100) >= dam {
		return 0
	}
	bonus := 0
	if dam >= total {
		bonus++
	}
	if dam >= 20 {
		for r.Int0(100) < 2 {
			bonus++
		}
	}
	switch {
	case dam > 45:
		return 6 + bonus
	case dam > 33:
		return 5 + bonus
	case dam > 25:
		return 4 + bonus
	case dam > 18:
		return 3 + bonus
	case dam > 11:
		return 2 + bonus
	}
	return 1 + bonus
}

// CutDuration maps a critical tier to cut turns.
func CutDuration(tier int, r *rng.Rand) int {
	switch tier {
	case 0:
		return 0
	case 1:
		return r.Int1(5)
	case 2:
		return r.Int1(5) + 5
	case 3:
		return r.Int1(20) + 20
	case 4:
		return r.Int1(50) + 50
	case 5:
		return r.Int1(100) + 100
	case 6:
		return 300
	}
	return 500
}

// StunDuration maps a critical tier to stun turns.
func StunDuration(tier int, r *rng.Rand) int {
	switch tier {
	case 0:
		return 0
	case 1:
		return r.Int1(5)
	case 2:
		return r.Int1(10) + 10
	case 3:
		return r.Int1(20) + 20
	case 4:
		return r.Int1(30) + 30
	case 5:
		return r.Int1(40) + 40
	case 6:
		return 100
	}
	return 200
}
