package booking

import (
	"fmt"
	"sync"
)

// numberPrefix is the brand prefix on every booking number.
const numberPrefix = "JY"

// seedSequence is where a fresh process starts counting from.
const seedSequence = 1000

// Sequence issues booking numbers of the form JY-<year>-<6-digit seq>.
// The counter advances once per issued number, so callers must only ask
// for a number after validation and the availability check have passed.
// Uniqueness holds per process unless re-seeded from persisted state.
type Sequence struct {
	mu   sync.Mutex
	last int64
}

func NewSequence() *Sequence {
	return &Sequence{last: seedSequence}
}

// Reseed moves the counter forward to last if it is ahead of the current
// position. Used at startup to continue from the store's highest issued
// sequence.
func (s *Sequence) Reseed(last int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if last > s.last {
		s.last = last
	}
}

func (s *Sequence) Next(year int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last++
	return fmt.Sprintf("%s-%d-%06d", numberPrefix, year, s.last)
}
