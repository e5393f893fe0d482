// Copyright 2026 The slotpool Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slotpool

import "math/bits"

// FindLastSet returns the position of the most significant set bit in v,
// or -1 if v is zero.
func FindLastSet(v uint64) int {
	if v == 0 {
		return -1
	}
	return bits.Len64(v) - 1
}

// CountTrailingZeros returns the position of the least significant set bit
// in v, or -1 if v is zero. Descent through a Pyramid never calls this on a
// zero block: the caller always checks the parent block for non-zero first.
func CountTrailingZeros(v uint64) int {
	if v == 0 {
		return -1
	}
	return bits.TrailingZeros64(v)
}

// Log2Envelope returns the smallest k such that 1<<k >= v. By convention
// Log2Envelope(0) and Log2Envelope(1) are both 0.
func Log2Envelope(v uint64) uint {
	if v <= 1 {
		return 0
	}
	last := uint(FindLastSet(v))
	if v&(v-1) != 0 {
		return last + 1
	}
	return last
}
