package bitflag

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// Size is the number of flags a Set can hold.
const Size = 192

const words = Size / 64

// Set is a fixed-size bit set keyed by an integer flag type.
// The zero value is empty and ready to use.
type Set[T ~int] [words]uint64

// Of returns a set holding the given flags.
func Of[T ~int](flags ...T) Set[T] {
	var s Set[T]
	for _, f := range flags {
		s.On(f)
	}
	return s
}

// Upto returns a set holding every flag in [0, n).
func Upto[T ~int](n T) Set[T] {
	var s Set[T]
	for f := T(0); f < n; f++ {
		s.On(f)
	}
	return s
}

func check(f int) {
	if f < 0 || f >= Size {
		panic(fmt.Sprintf("bitflag: flag %d out of range", f))
	}
}

// Has reports whether f is set.
func (s Set[T]) Has(f T) bool {
	check(int(f))
	return s[f/64]&(1<<(uint(f)%64)) != 0
}

// On sets f.
func (s *Set[T]) On(f T) {
	check(int(f))
	s[f/64] |= 1 << (uint(f) % 64)
}

// Off clears f.
func (s *Set[T]) Off(f T) {
	check(int(f))
	s[f/64] &^= 1 << (uint(f) % 64)
}

// Any reports whether at least one of flags is set.
func (s Set[T]) Any(flags ...T) bool {
	for _, f := range flags {
		if s.Has(f) {
			return true
		}
	}
	return false
}

func (s Set[T]) Inter(o Set[T]) Set[T] {
	for i := range s {
		s[i] &= o[i]
	}
	return s
}

func (s Set[T]) Union(o Set[T]) Set[T] {
	for i := range s {
		s[i] |= o[i]
	}
	return s
}

// Diff returns s with every flag of o removed.
func (s Set[T]) Diff(o Set[T]) Set[T] {
	for i := range s {
		s[i] &^= o[i]
	}
	return s
}

// SubsetOf reports whether every flag of s is also in o.
func (s Set[T]) SubsetOf(o Set[T]) bool {
	for i := range s {
		if s[i]&^o[i] != 0 {
			return false
		}
	}
	return true
}

func (s Set[T]) Empty() bool {
	return s == Set[T]{}
}

func (s Set[T]) Count() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

// Each calls fn for every set flag in ascending order.
func (s Set[T]) Each(fn func(T)) {
	for i, w := range s {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			fn(T(i*64 + b))
			w &^= 1 << uint(b)
		}
	}
}

// Flags returns the set flags in ascending order.
func (s Set[T]) Flags() []T {
	out := make([]T, 0, s.Count())
	s.Each(func(f T) { out = append(out, f) })
	return out
}

// MarshalBinary encodes the set as little-endian words.
func (s Set[T]) MarshalBinary() ([]byte, error) {
	buf := make([]byte, words*8)
	for i, w := range s {
		binary.LittleEndian.PutUint64(buf[i*8:], w)
	}
	return buf, nil
}

// UnmarshalBinary decodes a set written by MarshalBinary. Shorter input
// leaves the missing high words empty.
func (s *Set[T]) UnmarshalBinary(data []byte) error {
	if len(data)%8 != 0 || len(data) > words*8 {
		return fmt.Errorf("bitflag: invalid encoded length %d", len(data))
	}
	*s = Set[T]{}
	for i := 0; i*8 < len(data); i++ {
		s[i] = binary.LittleEndian.Uint64(data[i*8:])
	}
	return nil
}
