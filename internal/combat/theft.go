package combat

import "github.com/l1jgo/bestiary/internal/core/rng"

// MaxStolenGold caps a single theft.
const MaxStolenGold = 5000

// StolenGold is the amount a thief takes from a purse of au gold: a tenth
// plus 1d25, at least 2, never more than MaxStolenGold or the purse.
func StolenGold(au int, r *rng.Rand) int {
	gold := max(au/10+r.Int1(25), 2)
	return max(min(gold, MaxStolenGold, au), 0)
}
