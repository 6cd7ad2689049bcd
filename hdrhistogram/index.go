// Copyright 2026 The HdrGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hdrhistogram

import "math/bits"

// bucketIndexForValue returns the bucket index b such that v falls within
// bucket b's sub-bucket range. Values that fit entirely within bucket 0's
// resolution map to 0. SPEC_FULL.md §4.2.
func (g *geometry) bucketIndexForValue(v uint64) uint32 {
	// ctlz(v | subBucketMask) never exceeds leadingZeroCountBase because
	// subBucketMask always has at least one set bit below bit 63.
	return uint32(int32(g.leadingZeroCountBase) - int32(bits.LeadingZeros64(v|g.subBucketMask)))
}

// subBucketIndexForValue returns the linear slot within bucket b that v
// falls into. Always in [0, subBucketCount); for b > 0 always in
// [subBucketHalfCount, subBucketCount).
func (g *geometry) subBucketIndexForValue(v uint64, b uint32) uint32 {
	return uint32(v >> (uint64(b) + uint64(g.unitMagnitude)))
}

// countsIndexFor maps a (bucket, sub-bucket) pair to a flat counts-array
// index. The subtraction underflows harmlessly for b == 0 because bucket
// 0 alone is given the lower half of slots.
func (g *geometry) countsIndexFor(b, s uint32) int {
	idx := (int64(b)+1)<<g.subBucketHalfCountMagnitude + int64(s) - int64(g.subBucketHalfCount)
	return int(idx)
}

// countsIndexForValue is the composition bucketIndexForValue →
// subBucketIndexForValue → countsIndexFor, used on every record and query.
func (g *geometry) countsIndexForValue(v uint64) int {
	b := g.bucketIndexForValue(v)
	s := g.subBucketIndexForValue(v, b)
	return g.countsIndexFor(b, s)
}

// valueFromIndex is the inverse of countsIndexFor: it returns a
// representative (lowest-equivalent) value for the counts-array slot i.
func (g *geometry) valueFromIndex(i int) uint64 {
	b := int64(i>>g.subBucketHalfCountMagnitude) - 1
	s := int64(uint32(i)&(g.subBucketHalfCount-1)) + int64(g.subBucketHalfCount)
	if b < 0 {
		b = 0
		s -= int64(g.subBucketHalfCount)
	}
	return uint64(s) << (uint64(b) + uint64(g.unitMagnitude))
}
