package random

import (
	"log"
	"math/rand/v2"
	"sync"
	"time"
)

// Generator yields uniformly distributed bounded integers. It is safe for
// concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator returns a generator whose sequence is fixed by seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))}
}

// Number returns a value in [0, max). It returns 0 when max <= 0.
func (g *Generator) Number(max int) int {
	if max <= 0 {
		return 0
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.IntN(max)
}

var defaultGenerator = sync.OnceValue(func() *Generator {
	seed, err := NewSeed()
	if err != nil {
		log.Printf("random: falling back to clock seed: %v", err)
		seed = time.Now().UnixNano()
	}
	return NewGenerator(seed)
})

// RandomNumber returns a value in [0, max) from the process-wide generator,
// so RandomNumber(1) is always 0. It returns 0 when max <= 0.
func RandomNumber(max int) int {
	return defaultGenerator().Number(max)
}
