package rng

import "math/rand"

// Source yields uniform ints in [0, n). *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Aspect selects how a random value is evaluated.
type Aspect int

const (
	Randomise Aspect = iota
	Minimise
	Maximise
	Average
)

// Value is a random value of the form Base + Dice d Sides. MBonus is carried
// along for tables that overload it (caps, filters, switches); Calc ignores it.
type Value struct {
	Base   int
	Dice   int
	Sides  int
	MBonus int
}

// IsZero reports whether every field is zero.
func (v Value) IsZero() bool {
	return v == Value{}
}

// Rand draws game randomness from a Source. Not safe for concurrent use;
// each combat context owns one.
type Rand struct {
	src Source
}

// New returns a Rand seeded deterministically.
func New(seed int64) *Rand {
	return &Rand{src: rand.New(rand.NewSource(seed))}
}

// FromSource wraps an arbitrary Source.
func FromSource(src Source) *Rand {
	return &Rand{src: src}
}

// Int0 returns a value in [0, n). n <= 0 yields 0.
func (r *Rand) Int0(n int) int {
	if n <= 0 {
		return 0
	}
	return r.src.Intn(n)
}

// Int1 returns a value in [1, n]. n <= 0 yields 0.
func (r *Rand) Int1(n int) int {
	if n <= 0 {
		return 0
	}
	return r.src.Intn(n) + 1
}

// Dice rolls num dice of the given sides and sums them.
func (r *Rand) Dice(num, sides int) int {
	if num <= 0 || sides <= 0 {
		return 0
	}
	sum := 0
	for i := 0; i < num; i++ {
		sum += r.Int1(sides)
	}
	return sum
}

// Percent reports whether a d100 roll lands under p.
func (r *Rand) Percent(p int) bool {
	return r.Int0(100) < p
}

// OneIn reports a 1 in n chance.
func (r *Rand) OneIn(n int) bool {
	return r.Int0(n) == 0
}

// Spread returns a value in [base-spread, base+spread].
func (r *Rand) Spread(base, spread int) int {
	if spread <= 0 {
		return base
	}
	return base - spread + r.Int0(2*spread+1)
}

// DamCalc evaluates num d sides under the given aspect.
func (r *Rand) DamCalc(num, sides int, aspect Aspect) int {
	if num <= 0 || sides <= 0 {
		return 0
	}
	switch aspect {
	case Maximise:
		return num * sides
	case Minimise:
		return num
	case Average:
		return num * (sides + 1) / 2
	default:
		return r.Dice(num, sides)
	}
}

// Calc evaluates v under the given aspect.
func (r *Rand) Calc(v Value, aspect Aspect) int {
	return v.Base + r.DamCalc(v.Dice, v.Sides, aspect)
}

// Roll evaluates v randomly.
func (r *Rand) Roll(v Value) int {
	return r.Calc(v, Randomise)
}

// Max returns the largest value v can produce.
func (v Value) Max() int {
	if v.Dice <= 0 || v.Sides <= 0 {
		return v.Base
	}
	return v.Base + v.Dice*v.Sides
}

// Min returns the smallest value v can produce.
func (v Value) Min() int {
	if v.Dice <= 0 || v.Sides <= 0 {
		return v.Base
	}
	return v.Base + v.Dice
}
