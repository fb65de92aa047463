package testutil

import (
	"time"
)

// SequenceRand replays a fixed list of picks. Each value is reduced
// modulo n so the same sequence works for lists of any length. After the
// sequence is exhausted it starts over.
type SequenceRand struct {
	Picks []int
	next  int
}

func NewSequenceRand(picks ...int) *SequenceRand {
	return &SequenceRand{Picks: picks}
}

func (s *SequenceRand) IntN(n int) int {
	if len(s.Picks) == 0 || n <= 0 {
		return 0
	}
	v := s.Picks[s.next%len(s.Picks)]
	s.next++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Calls reports how many picks have been consumed.
func (s *SequenceRand) Calls() int { return s.next }

// FixedClock returns a clock that always reports the given calendar date at noon UTC.
func FixedClock(year int, month time.Month, day int) func() time.Time {
	t := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}
