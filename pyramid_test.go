// Copyright 2026 The slotpool Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slotpool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jteichrieb/slotpool"
)

func TestPyramid_LowestSet(t *testing.T) {
	p := slotpool.NewPyramid(8, false)

	_, ok := p.Lowest()
	require.False(t, ok)

	p.Set(42, true)
	idx, ok := p.Lowest()
	require.True(t, ok)
	assert.Equal(t, uint64(42), idx)

	p.Set(42, false)
	_, ok = p.Lowest()
	assert.False(t, ok)
}

func TestPyramid_SetAll(t *testing.T) {
	p := slotpool.NewPyramid(7, true)

	assert.True(t, p.Get(0))
	assert.True(t, p.Get(42))
	assert.True(t, p.Get(127))

	p.SetAll(false)
	for _, idx := range []uint64{0, 42, 127} {
		assert.False(t, p.Get(idx))
	}
	_, ok := p.Lowest()
	assert.False(t, ok)
}

// TestPyramid_GrowPreservesState drains all 64 indices from a pyramid
// initialized all-set, then grows it; the exhausted low range must stay
// exhausted and the newly introduced range must come up at state_init.
func TestPyramid_GrowPreservesState(t *testing.T) {
	p := slotpool.NewPyramid(6, true)

	for i := 0; i < 64; i++ {
		idx, ok := p.PopFirst()
		require.True(t, ok)
		require.Equal(t, uint64(i), idx)
	}
	_, ok := p.Lowest()
	require.False(t, ok)

	p.IncreaseSize()

	idx, ok := p.Lowest()
	require.True(t, ok)
	assert.Equal(t, uint64(64), idx)
}

func TestPyramid_PopFirstOrder(t *testing.T) {
	p := slotpool.NewPyramid(6, false)
	p.Set(5, true)
	p.Set(3, true)
	p.Set(40, true)

	var order []uint64
	for {
		idx, ok := p.PopFirst()
		if !ok {
			break
		}
		order = append(order, idx)
	}
	assert.Equal(t, []uint64{3, 5, 40}, order)
}

func TestPyramid_SummaryInvariantAfterMutations(t *testing.T) {
	p := slotpool.NewPyramid(8, false)
	for _, idx := range []uint64{1, 17, 33, 200, 255} {
		p.Set(idx, true)
	}
	p.Set(17, false)

	want := map[uint64]bool{1: true, 17: false, 33: true, 200: true, 255: true}
	for idx, expect := range want {
		assert.Equalf(t, expect, p.Get(idx), "index %d", idx)
	}
}

func TestPyramid_IndexOutOfRangePanics(t *testing.T) {
	p := slotpool.NewPyramid(4, false)
	assert.Panics(t, func() { p.Get(16) })
	assert.Panics(t, func() { p.Set(16, true) })
}

func TestPyramid_GrowAcrossHeightBoundary(t *testing.T) {
	// 16 bits is exactly one block: height 1. Growing to 32 bits
	// introduces a second row, exercising the height-increase fixup path.
	p := slotpool.NewPyramid(4, false)
	p.Set(5, true)

	p.IncreaseSize()

	assert.True(t, p.Get(5))
	idx, ok := p.Lowest()
	require.True(t, ok)
	assert.Equal(t, uint64(5), idx)
}
