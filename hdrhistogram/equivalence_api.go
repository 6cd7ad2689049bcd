// Copyright 2026 The HdrGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hdrhistogram

// SizeOfEquivalentRangeForValue returns the width, in raw value units, of
// v's equivalence class.
func (h *Histogram[C]) SizeOfEquivalentRangeForValue(v uint64) uint64 {
	return h.sizeOfEquivalentRangeForValue(v)
}

// LowestEquivalentForValue returns the smallest value equivalent to v.
func (h *Histogram[C]) LowestEquivalentForValue(v uint64) uint64 {
	return h.lowestEquivalentForValue(v)
}

// HighestEquivalentForValue returns the largest value equivalent to v.
func (h *Histogram[C]) HighestEquivalentForValue(v uint64) uint64 {
	return h.highestEquivalentForValue(v)
}

// MedianEquivalentForValue returns the midpoint of v's equivalence class.
func (h *Histogram[C]) MedianEquivalentForValue(v uint64) uint64 {
	return h.medianEquivalentForValue(v)
}

// NextNonEquivalentForValue returns the smallest value not equivalent to v.
func (h *Histogram[C]) NextNonEquivalentForValue(v uint64) uint64 {
	return h.nextNonEquivalentForValue(v)
}

// EquivalentRangeForValue returns the inclusive [lowest, highest] bounds
// of v's equivalence class.
func (h *Histogram[C]) EquivalentRangeForValue(v uint64) (lo, hi uint64) {
	return h.equivalentRangeForValue(v)
}

// ValuesAreEquivalent reports whether a and b map to the same
// counts-array slot.
func (h *Histogram[C]) ValuesAreEquivalent(a, b uint64) bool {
	return h.valuesAreEquivalent(a, b)
}
