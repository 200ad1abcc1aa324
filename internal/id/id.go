// Package id assigns stable, type-prefixed integer identifiers to accounts.
package id

import (
	"errors"
	"fmt"
)

// ErrInvalidPrefix is returned for a prefix outside 1-9 or a negative
// current maximum.
var ErrInvalidPrefix = errors.New("invalid id prefix")

// Next returns the smallest integer strictly greater than currentMax whose
// leading decimal digit equals prefix. currentMax is the highest existing id
// within the prefix group. Ids are dense within a hundred run: after 199 the
// next id with prefix 1 is 1000, not 200, so two groups never collide.
func Next(currentMax int64, prefix int) (int64, error) {
	if prefix < 1 || prefix > 9 {
		return 0, fmt.Errorf("%w: prefix %d", ErrInvalidPrefix, prefix)
	}
	if currentMax < 0 {
		return 0, fmt.Errorf("%w: current maximum %d", ErrInvalidPrefix, currentMax)
	}

	candidate := currentMax + 1
	if leadingDigit(candidate) == int64(prefix) {
		return candidate, nil
	}
	n := int64(prefix)
	for n <= candidate {
		n *= 10
	}
	return n, nil
}

func leadingDigit(n int64) int64 {
	for n >= 10 {
		n /= 10
	}
	return n
}
