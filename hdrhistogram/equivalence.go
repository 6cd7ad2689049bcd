// Copyright 2026 The HdrGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hdrhistogram

// sizeOfEquivalentRangeForValue returns the width, in raw value units, of
// the equivalence class containing v: all values in that class map to the
// same counts-array slot. SPEC_FULL.md §4.3.
func (g *geometry) sizeOfEquivalentRangeForValue(v uint64) uint64 {
	b := g.bucketIndexForValue(v)
	s := g.subBucketIndexForValue(v, b)
	adjustedBucket := b
	if s >= g.subBucketCount {
		adjustedBucket = b + 1
	}
	return uint64(1) << (uint64(g.unitMagnitude) + uint64(adjustedBucket))
}

// lowestEquivalentForValue returns the smallest value in v's equivalence
// class.
func (g *geometry) lowestEquivalentForValue(v uint64) uint64 {
	b := g.bucketIndexForValue(v)
	s := g.subBucketIndexForValue(v, b)
	return uint64(s) << (uint64(b) + uint64(g.unitMagnitude))
}

// nextNonEquivalentForValue returns the smallest value that is not
// equivalent to v.
func (g *geometry) nextNonEquivalentForValue(v uint64) uint64 {
	return g.lowestEquivalentForValue(v) + g.sizeOfEquivalentRangeForValue(v)
}

// highestEquivalentForValue returns the largest value in v's equivalence
// class.
func (g *geometry) highestEquivalentForValue(v uint64) uint64 {
	return g.nextNonEquivalentForValue(v) - 1
}

// medianEquivalentForValue returns the midpoint of v's equivalence class.
func (g *geometry) medianEquivalentForValue(v uint64) uint64 {
	return g.lowestEquivalentForValue(v) + g.sizeOfEquivalentRangeForValue(v)>>1
}

// equivalentRangeForValue returns the inclusive [lowest, highest] bounds
// of v's equivalence class.
func (g *geometry) equivalentRangeForValue(v uint64) (lo, hi uint64) {
	return g.lowestEquivalentForValue(v), g.highestEquivalentForValue(v)
}

// valuesAreEquivalent reports whether a and b map to the same counts-array
// slot.
func (g *geometry) valuesAreEquivalent(a, b uint64) bool {
	return g.lowestEquivalentForValue(a) == g.lowestEquivalentForValue(b)
}
