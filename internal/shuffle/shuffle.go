// Package shuffle regenerates a per-attempt question/option order on demand.
// The order is a pure function of a seed string, so nothing shuffled is ever
// persisted: rendering the same attempt twice yields the same order.
package shuffle

import (
	"crypto/sha256"
	"encoding/binary"
	"strconv"
)

// Float maps (seed, index) to a value in [0, 1): the first 4 bytes of
// sha256(seed + index) read big-endian, divided by 2^32.
func Float(seed string, index int) float64 {
	sum := sha256.Sum256([]byte(seed + strconv.Itoa(index)))
	return float64(binary.BigEndian.Uint32(sum[:4])) / (1 << 32)
}

// Slice returns a Fisher-Yates permutation of items keyed by seed. The input
// is not modified; identical (items, seed) always produce identical output.
func Slice[T any](items []T, seed string) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i >= 1; i-- {
		j := int(Float(seed, i) * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Seed derives the option-order seed for one question within one attempt.
func Seed(attemptID, questionID string) string {
	return attemptID + ":" + questionID
}
