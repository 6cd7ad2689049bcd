// Copyright 2026 The HdrGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hdrhistogram

import (
	"math/bits"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Counter is any fixed-width unsigned integer usable as the counts-array
// element type. Narrower widths trade memory for saturation risk: counts
// wrap silently on overflow (see Histogram.Record), while totalCount is
// always tracked at full 64-bit width.
type Counter interface {
	constraints.Unsigned
}

// MaxSignificantDigits is the largest value of significantDigits that
// newGeometry accepts; larger values are rejected at construction.
const MaxSignificantDigits = 5

// geometry holds the immutable (outside of auto-resize) layout derived
// from (lowestDiscernibleValue, highestTrackableValue, significantDigits).
// Field names mirror the data model table in SPEC_FULL.md §3.
type geometry struct {
	lowestDiscernibleValue      uint64
	highestTrackableValue       uint64
	significantDigits           int
	unitMagnitude               uint8
	subBucketHalfCountMagnitude uint8
	subBucketCount              uint32
	subBucketHalfCount          uint32
	subBucketMask               uint64
	bucketCount                 uint32
	leadingZeroCountBase        uint8
}

// countsArrayLength returns (bucketCount+1)*subBucketHalfCount, the flat
// counts-array length for the current bucketCount.
func (g *geometry) countsArrayLength() int {
	return int(g.bucketCount+1) * int(g.subBucketHalfCount)
}

// newGeometry computes the layout for (lowest, highest, significantDigits),
// validating the preconditions from SPEC_FULL.md §7.
func newGeometry(lowest, highest uint64, significantDigits int) (geometry, error) {
	if lowest < 1 {
		return geometry{}, errors.Newf("lowestDiscernibleValue must be >= 1, got %d", lowest)
	}
	if significantDigits < 0 || significantDigits > MaxSignificantDigits {
		return geometry{}, errors.Newf("significantDigits must be in [0, %d], got %d", MaxSignificantDigits, significantDigits)
	}
	if highest < 2*lowest {
		return geometry{}, errors.Newf("highestTrackableValue (%d) must be >= 2*lowestDiscernibleValue (%d)", highest, 2*lowest)
	}

	unitMagnitude := uint8(bits.Len64(lowest) - 1)

	largestValueWithSingleUnitResolution := uint64(2) * pow10(significantDigits)
	subBucketCountMagnitude := ceilLog2(largestValueWithSingleUnitResolution)
	subBucketHalfCountMagnitude := subBucketCountMagnitude
	if subBucketHalfCountMagnitude < 1 {
		subBucketHalfCountMagnitude = 1
	}
	subBucketHalfCountMagnitude--

	if int(unitMagnitude)+int(subBucketHalfCountMagnitude) > 61 {
		return geometry{}, errors.Newf(
			"unitMagnitude (%d) + subBucketHalfCountMagnitude (%d) exceeds 61; lower significantDigits or lowestDiscernibleValue",
			unitMagnitude, subBucketHalfCountMagnitude)
	}

	subBucketCount := uint32(1) << (subBucketHalfCountMagnitude + 1)
	subBucketHalfCount := subBucketCount / 2
	subBucketMask := uint64(subBucketCount-1) << unitMagnitude
	leadingZeroCountBase := uint8(64) - unitMagnitude - (subBucketHalfCountMagnitude + 1)

	bucketCount := bucketsNeededToCoverValue(highest, subBucketCount, unitMagnitude)

	return geometry{
		lowestDiscernibleValue:      lowest,
		highestTrackableValue:       highest,
		significantDigits:           significantDigits,
		unitMagnitude:               unitMagnitude,
		subBucketHalfCountMagnitude: subBucketHalfCountMagnitude,
		subBucketCount:              subBucketCount,
		subBucketHalfCount:          subBucketHalfCount,
		subBucketMask:               subBucketMask,
		bucketCount:                 bucketCount,
		leadingZeroCountBase:        leadingZeroCountBase,
	}, nil
}

// bucketsNeededToCoverValue returns the smallest bucket count B >= 1 such
// that (subBucketCount << (B-1)) << unitMagnitude > highest, per
// SPEC_FULL.md §4.1.
// It saturates rather than overflowing a 64-bit shift.
func bucketsNeededToCoverValue(highest uint64, subBucketCount uint32, unitMagnitude uint8) uint32 {
	const maxBeforeDoublingOverflows = uint64(1) << 63

	smallestUntrackable := uint64(subBucketCount) << unitMagnitude
	var bucketsNeeded uint32 = 1
	for smallestUntrackable <= highest {
		if smallestUntrackable >= maxBeforeDoublingOverflows {
			// One more doubling would overflow uint64; any representable
			// highest is already covered by this bucket count.
			bucketsNeeded++
			break
		}
		smallestUntrackable <<= 1
		bucketsNeeded++
	}
	return bucketsNeeded
}

// ceilLog2 returns ceil(log2(x)) for x >= 1.
func ceilLog2(x uint64) uint8 {
	if x <= 1 {
		return 0
	}
	return uint8(bits.Len64(x - 1))
}

// pow10 returns 10^n for small non-negative n, as used for the
// significant-digits-to-resolution conversion (n is at most
// MaxSignificantDigits).
func pow10(n int) uint64 {
	result := uint64(1)
	for i := 0; i < n; i++ {
		result *= 10
	}
	return result
}
