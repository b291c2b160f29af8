// Package random generates seeds for reproducible quest generation.
//
// Seeds come from crypto/rand so that two runs started in the same
// nanosecond still differ. Zero is reserved by callers to mean "pick a
// seed", so NewSeed never returns it.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// NewSeed returns a non-zero random seed.
func NewSeed() (int64, error) {
	return newSeed(crand.Reader)
}

func newSeed(r io.Reader) (int64, error) {
	var b [8]byte
	for {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, fmt.Errorf("read random seed: %w", err)
		}
		if seed := int64(binary.LittleEndian.Uint64(b[:])); seed != 0 {
			return seed, nil
		}
	}
}
