// Copyright 2026 The slotpool Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package slotpool provides three single-owner data structures for
// building generational, stable-handle object pools: Ring, Pyramid and
// Pool.
//
// # Ring
//
// Ring is a power-of-two capacity FIFO. Rotation is pure bitmask
// arithmetic on a start cursor; there is no node graph and no modulo.
//
//	r := slotpool.NewRing[int](4) // capacity 16
//	r.Put(1)
//	r.DynamicPut(2) // grows automatically once full
//	v := r.PopBack() // oldest element first
//
// # Pyramid
//
// Pyramid is a hierarchical OR-summarized bitmap. Each row summarizes the
// row below it in fixed-width blocks, so the lowest set bit can be found
// in O(height) instead of a linear scan.
//
//	p := slotpool.NewPyramid(8, false)
//	p.Set(42, true)
//	idx, ok := p.Lowest() // idx == 42
//
// # Pool
//
// Pool is a chunked slot allocator built on Ring and Pyramid: IDs are
// small integers stable across the lifetime of the value they name, and
// the free-ID pyramid guarantees the lowest freed ID is reused first.
//
//	pool, err := slotpool.NewPool[float64](slotpool.Settings{
//	    ElementsPerCluster: 64,
//	})
//	id := pool.Alloc()
//	pool.Set(id, 3.14)
//	v, _ := pool.Get(id)
//	pool.Free(id)
//
// # Concurrency
//
// None of these types are safe for concurrent use. Every operation
// assumes sole access by its owner and runs to completion without
// suspending or blocking; callers needing shared access must add their
// own synchronization.
//
// # Failure model
//
// Precondition violations (popping an empty Ring, indexing a Pyramid out
// of range) are programmer errors and panic. Runtime-observable misuse
// reachable from untrusted callers (bad Pool settings, an unknown ID) is
// reported through the sentinel errors in errors.go instead.
package slotpool
