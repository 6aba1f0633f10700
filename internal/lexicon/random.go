// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

package lexicon

import (
	"math/rand"
	"sync"
	"time"
)

// RandomSource draws uniform integers in [0, n). *rand.Rand satisfies it,
// though only LockedSource is safe to share between goroutines.
type RandomSource interface {
	Intn(n int) int
}

// LockedSource is a mutex-guarded math/rand source safe for concurrent use.
type LockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLockedSource returns a source seeded with seed. A zero seed uses the
// current time.
func NewLockedSource(seed int64) *LockedSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &LockedSource{
		rng: rand.New(rand.NewSource(seed)), //nolint:gosec // math/rand is fine for mood shuffling
	}
}

// Intn returns a uniform integer in [0, n).
func (s *LockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// defaultSource backs Resolve calls that pass a nil source.
var defaultSource RandomSource = NewLockedSource(0)
