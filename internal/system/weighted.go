package system

import "github.com/l1jgo/bestiary/internal/core/rng"

// WeightedTable picks one entry with probability proportional to its weight.
// Built once; picking is a binary search over cumulative weights.
type WeightedTable[T any] struct {
	items []T
	cum   []int
	total int
}

// Add appends an entry. Non-positive weights are ignored.
func (w *WeightedTable[T]) Add(item T, weight int) {
	if weight <= 0 {
		return
	}
	w.total += weight
	w.items = append(w.items, item)
	w.cum = append(w.cum, w.total)
}

// Len returns the number of entries.
func (w *WeightedTable[T]) Len() int {
	return len(w.items)
}

// Total returns the sum of the weights.
func (w *WeightedTable[T]) Total() int {
	return w.total
}

// Pick draws one entry. ok is false for an empty table.
func (w *WeightedTable[T]) Pick(r *rng.Rand) (item T, ok bool) {
	if w.total == 0 {
		return item, false
	}
	roll := r.Int0(w.total)
	lo, hi := 0, len(w.cum)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if roll < w.cum[mid] {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return w.items[lo], true
}
