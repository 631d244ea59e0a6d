package main

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// newSeed returns a random non-zero seed from crypto/rand.
func newSeed() (int64, error) {
	var b [8]byte
	for {
		if _, err := crand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("read random seed: %w", err)
		}
		// Positive so it survives being pasted back as --seed.
		if seed := int64(binary.LittleEndian.Uint64(b[:]) >> 1); seed != 0 {
			return seed, nil
		}
	}
}
