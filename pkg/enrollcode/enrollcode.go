// Package enrollcode generates the short codes handed to students on
// enrollment. Codes are 4 characters drawn uniformly from A-Z0-9; uniqueness
// is not guaranteed here — the database unique constraint on the code column
// is the source of truth, and callers regenerate on a collision.
package enrollcode

import (
	"math/rand"
	"sync"
	"time"
)

const (
	// Length is the number of characters in a generated code.
	Length = 4

	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Generator produces enrollment codes from its own seeded random source.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New creates a generator seeded from the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed creates a generator with a fixed seed. Used in tests.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Generate returns a new 4-character code.
func (g *Generator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	b := make([]byte, Length)
	for i := range b {
		b[i] = alphabet[g.rnd.Intn(len(alphabet))]
	}
	return string(b)
}

// IsValid reports whether s has the shape of an enrollment code.
func IsValid(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
