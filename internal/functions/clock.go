package functions

import (
	crand "crypto/rand"
	"math/rand/v2"
	"time"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// Random supplies entropy for uuid and random_number. Implementations used
// with a shared Registry must be safe for concurrent use.
type Random interface {
	Read(p []byte) (int, error)
	IntN(n int) int
}

type systemRandom struct{}

func (systemRandom) Read(p []byte) (int, error) { return crand.Read(p) }

func (systemRandom) IntN(n int) int { return rand.IntN(n) }

// SystemRandom is backed by crypto/rand and the runtime-seeded math/rand/v2.
var SystemRandom Random = systemRandom{}

// SeededRandom returns a deterministic source for tests.
func SeededRandom(seed uint64) Random {
	return &seeded{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type seeded struct {
	r *rand.Rand
}

func (s *seeded) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(s.r.Uint32())
	}

	return len(p), nil
}

func (s *seeded) IntN(n int) int { return s.r.IntN(n) }
