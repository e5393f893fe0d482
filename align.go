// Copyright 2026 The slotpool Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slotpool

import "unsafe"

// cacheLineAlignedMem returns a byte slice of the given size whose starting
// address is aligned to CacheLineSize. Pyramid uses this for its single
// contiguous store so that the hot top rows of small pyramids don't share a
// cache line with unrelated heap data.
func cacheLineAlignedMem(size int) []byte {
	align := uintptr(CacheLineSize)
	p := make([]byte, uintptr(size)+align-1)
	base := unsafe.Pointer(unsafe.SliceData(p))
	offset := ((uintptr(base)+align-1)/align)*align - uintptr(base)
	return unsafe.Slice((*byte)(unsafe.Add(base, offset)), size)
}

// alignedBlockSlice returns a cache-line-aligned view of n pyramid blocks
// backed by a single contiguous allocation.
func alignedBlockSlice(n int) []pyramidBlock {
	const blockBytes = int(unsafe.Sizeof(pyramidBlock(0)))
	buf := cacheLineAlignedMem(n * blockBytes)
	return unsafe.Slice((*pyramidBlock)(unsafe.Pointer(unsafe.SliceData(buf))), n)
}
