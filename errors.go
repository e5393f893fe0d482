// Copyright 2026 The slotpool Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slotpool

import "errors"

// Sentinel errors returned by Pool. Callers classify errors with errors.Is;
// NewPool and the per-ID accessors return these values unwrapped.
var (
	// ErrInvalidElementSize is returned by NewPool when the element type T
	// has zero size (e.g. struct{}).
	ErrInvalidElementSize = errors.New("slotpool: invalid element size")
	// ErrInvalidElementsPerCluster is returned by NewPool when
	// Settings.ElementsPerCluster is not positive, or its power-of-two
	// envelope would not fit densely addressable IDs.
	ErrInvalidElementsPerCluster = errors.New("slotpool: invalid elements per cluster")
	// ErrInvalidID is returned by Free, Get, GetPtr and Set when the given
	// ID was never allocated, or has since been freed.
	ErrInvalidID = errors.New("slotpool: invalid id")
)
