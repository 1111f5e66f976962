// Package random provides seeded, bounded random numbers.
//
// Seeds come from crypto/rand; the numbers themselves come from a
// math/rand/v2 PCG generator so callers can replay a sequence from a seed.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
