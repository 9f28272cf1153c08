package services

import (
	"math/rand/v2"
	"sync"
)

// RandomSource supplies the bounded random values fallback builders use.
type RandomSource interface {
	IntN(n int) int
	Float64() float64
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandomSource returns a goroutine-safe source seeded with seed.
func NewRandomSource(seed uint64) RandomSource {
	return &lockedRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// between returns base + rand[0,span) as a whole number.
func between(rng RandomSource, base, span int) int {
	return base + rng.IntN(span)
}
