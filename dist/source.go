package dist

import (
	"math/rand"
	"sync"
	"time"
)

// LockedSource is a seeded uniform source guarded by a mutex, so one
// stream can be shared between concurrently running samplers.
type LockedSource struct {
	rnd *rand.Rand
	mu  sync.Mutex
}

// NewLockedSource seeds a source. A zero seed falls back to the current
// time.
func NewLockedSource(seed int64) *LockedSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &LockedSource{rnd: rand.New(rand.NewSource(seed)), mu: sync.Mutex{}}
}

func (s *LockedSource) Float64() float64 {
	s.mu.Lock()
	v := s.rnd.Float64()
	s.mu.Unlock()
	return v
}

// Seed rewinds the stream to a fixed state.
func (s *LockedSource) Seed(seed int64) {
	s.mu.Lock()
	s.rnd.Seed(seed)
	s.mu.Unlock()
}
