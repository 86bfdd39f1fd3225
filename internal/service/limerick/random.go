package limerick

import (
	"math/rand/v2"
	"sync"
)

// Random is the source of every uniform choice the composer makes.
// Implementations must return a value in [0, n) for n > 0.
type Random interface {
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int { return rand.IntN(n) }

// DefaultRandom returns a goroutine-safe source backed by the math/rand/v2
// top-level generator.
func DefaultRandom() Random { return globalRandom{} }

// NewSeededRandom returns a deterministic source. It is safe for concurrent
// use, but interleaved callers make the sequence order-dependent.
func NewSeededRandom(seed uint64) Random {
	return &lockedRandom{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type lockedRandom struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRandom) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// pick returns a uniformly chosen element of words. words must be non-empty.
func pick(rnd Random, words []string) string {
	return words[rnd.IntN(len(words))]
}
