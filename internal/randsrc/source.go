// Package randsrc provides the single random source shared by every generator.
package randsrc

import (
	"math/rand"
	"sync"
	"time"
)

// Source is a seedable math/rand source that is safe for concurrent use.
// Generators, faker and uuid generation all draw from the same Source so a
// fixed seed reproduces a run.
type Source struct {
	mu   sync.Mutex
	src  rand.Source64
	seed int64
}

// New creates a Source with an explicit seed
func New(seed int64) *Source {
	return &Source{src: rand.NewSource(seed).(rand.Source64), seed: seed}
}

// NewFromClock creates a Source seeded from the wall clock, for runs that do
// not need to be reproduced
func NewFromClock() *Source {
	return New(time.Now().UnixNano())
}

// InitialSeed returns the seed the source was created with or last reset to
func (s *Source) InitialSeed() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seed
}

// Int63 implements rand.Source
func (s *Source) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

// Uint64 implements rand.Source64
func (s *Source) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

// Seed implements rand.Source
func (s *Source) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
	s.seed = seed
}

// Derive returns an independent Source whose seed is drawn from this one.
// Workers that want their own stream use it instead of sharing.
func (s *Source) Derive() *Source {
	return New(s.Int63())
}

// Rand wraps the source in a *rand.Rand. Everything except Read is safe for
// concurrent use because the only state lives in the locked source.
func (s *Source) Rand() *rand.Rand {
	return rand.New(s)
}

// Read fills p from the source. It implements io.Reader without the buffered
// state of rand.Rand.Read, so it is safe for concurrent use.
func (s *Source) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 8 {
		v := s.Uint64()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
	return len(p), nil
}
