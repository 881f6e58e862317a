package random

import (
	"encoding/binary"
	"sync"

	"lukechampine.com/frand"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// String generates a random string of the given length from the given alphabet
	String(length int, alphabet string) string
}

// FastRandom implements Random using frand. A nil rng draws from the
// package-level generator, which is already safe for concurrent use.
type FastRandom struct {
	mu  sync.Mutex
	rng *frand.RNG
}

// New creates an unseeded FastRandom
func New() *FastRandom {
	return &FastRandom{}
}

// NewSeeded creates a FastRandom whose sequence is fixed by seed
func NewSeeded(seed uint64) *FastRandom {
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, seed)
	return &FastRandom{rng: frand.NewCustom(key, 1024, 12)}
}

// Intn returns a random int in [0, n)
func (r *FastRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if r.rng == nil {
		return frand.Intn(n)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

// String generates a random string of the given length from the given alphabet
func (r *FastRandom) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		result[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(result)
}
