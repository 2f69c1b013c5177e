package rng

// Sequence is a Source that replays fixed draws in order, clamped into the
// requested range. Once exhausted it keeps returning Fallback (clamped).
// Used to force specific outcomes in combat tests and replays.
type Sequence struct {
	Draws    []int
	Fallback int
	pos      int
}

// NewSequence returns a Rand replaying draws.
func NewSequence(draws ...int) *Rand {
	return FromSource(&Sequence{Draws: draws})
}

func (s *Sequence) Intn(n int) int {
	v := s.Fallback
	if s.pos < len(s.Draws) {
		v = s.Draws[s.pos]
		s.pos++
	}
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

// Used returns the number of draws consumed so far.
func (s *Sequence) Used() int {
	return s.pos
}
