// Copyright 2026 The slotpool Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slotpool

import "github.com/jteichrieb/slotpool/internal"

// CacheLineSize is the CPU L1 cache line size for the current architecture.
// It is used to align the single contiguous allocation backing Pyramid so
// that small pyramids don't false-share a cache line with unrelated data.
const CacheLineSize = internal.CacheLineSize

// noCopy is a sentinel used to prevent copying of the primitives in this
// package. Ring, Pyramid and Pool all own a contiguous backing allocation;
// copying the struct would alias that allocation between two owners.
//
// Embed by value and never dereference; go vet's copylocks check flags any
// accidental copy through its Lock/Unlock methods.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
