// Copyright 2026 The HdrGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hdrhistogram

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Histogram counts samples drawn from [0, highestTrackableValue] with a
// relative error bound of 10^-significantDigits, in fixed memory. See the
// package doc comment for the high-level contract.
//
// The zero value is not usable; construct with New, NewAutoResizing, or
// NewDefault.
type Histogram[C Counter] struct {
	geometry
	autoResize      bool
	counts          []C
	totalCount      uint64
	maxValue        uint64
	minNonZeroValue uint64
}

// New constructs a Histogram tracking values in
// [lowestDiscernibleValue, highestTrackableValue] with the given number of
// significant decimal digits of resolution. It does not auto-resize:
// recording a value beyond the range of the counts array fails (see
// Record).
func New[C Counter](lowestDiscernibleValue, highestTrackableValue uint64, significantDigits int) (*Histogram[C], error) {
	g, err := newGeometry(lowestDiscernibleValue, highestTrackableValue, significantDigits)
	if err != nil {
		return nil, errors.Wrap(err, "constructing histogram")
	}
	h := &Histogram[C]{
		geometry:        g,
		counts:          make([]C, g.countsArrayLength()),
		minNonZeroValue: math.MaxUint64,
	}
	return h, nil
}

// NewAutoResizing constructs a Histogram that starts tracking
// [1, 2] and grows its counts array as larger values are recorded. See
// Histogram.Record.
func NewAutoResizing[C Counter](significantDigits int) (*Histogram[C], error) {
	h, err := New[C](1, 2, significantDigits)
	if err != nil {
		return nil, err
	}
	h.autoResize = true
	return h, nil
}

// NewDefault constructs an auto-resizing Histogram with three significant
// decimal digits of resolution, a reasonable default for latency
// measurement.
func NewDefault[C Counter]() (*Histogram[C], error) {
	return NewAutoResizing[C](3)
}

// AutoResize reports whether recording a value beyond the range of the
// current counts array grows the array rather than failing.
func (h *Histogram[C]) AutoResize() bool { return h.autoResize }

// LowestDiscernibleValue returns the L the histogram was constructed with.
func (h *Histogram[C]) LowestDiscernibleValue() uint64 { return h.lowestDiscernibleValue }

// HighestTrackableValue returns the current H, which may have grown past
// its construction-time value under auto-resize.
func (h *Histogram[C]) HighestTrackableValue() uint64 { return h.highestTrackableValue }

// SignificantFigures returns the number of significant decimal digits of
// resolution the histogram was constructed with.
func (h *Histogram[C]) SignificantFigures() int { return h.significantDigits }

// UnitMagnitude returns floor(log2(LowestDiscernibleValue)).
func (h *Histogram[C]) UnitMagnitude() uint8 { return h.unitMagnitude }

// BucketCount returns the current number of logarithmic buckets.
func (h *Histogram[C]) BucketCount() uint32 { return h.bucketCount }

// SubBucketCount returns the number of linear slots within each bucket.
func (h *Histogram[C]) SubBucketCount() uint32 { return h.subBucketCount }

// CountsArrayLength returns the current length of the flat counts array.
func (h *Histogram[C]) CountsArrayLength() int { return len(h.counts) }

// TotalCount returns the number of values recorded so far.
func (h *Histogram[C]) TotalCount() uint64 { return h.totalCount }

// Record records a single occurrence of v. It returns false without
// modifying the histogram if v's counts-array index lies past the end of
// the array and auto-resize is disabled. The array's last bucket can
// reach above HighestTrackableValue, so values slightly above it may
// still be recorded.
func (h *Histogram[C]) Record(v uint64) bool {
	return h.RecordN(v, 1)
}

// RecordN records n occurrences of v. See Record.
func (h *Histogram[C]) RecordN(v uint64, n C) bool {
	idx := h.countsIndexForValue(v)
	if idx < 0 {
		return false
	}
	if idx >= len(h.counts) {
		if !h.autoResize {
			return false
		}
		if !h.growToCover(v) {
			return false
		}
		idx = h.countsIndexForValue(v)
		if idx < 0 || idx >= len(h.counts) {
			return false
		}
	}
	h.counts[idx] += n
	h.totalCount += uint64(n)
	if v > h.maxValue {
		h.maxValue = v
	}
	if v > 0 && v < h.minNonZeroValue {
		h.minNonZeroValue = v
	}
	return true
}

// RecordCorrectedValue records v once, then backfills the synthetic
// samples a load generator would have produced had it not stalled:
// v-expectedInterval, v-2*expectedInterval, ... down to the smallest such
// value that is still >= expectedInterval. This corrects for coordinated
// omission. See
// SPEC_FULL.md §4.4.
func (h *Histogram[C]) RecordCorrectedValue(v, expectedInterval uint64) bool {
	return h.RecordCorrectedValueN(v, 1, expectedInterval)
}

// RecordCorrectedValueN is RecordCorrectedValue with an explicit count.
func (h *Histogram[C]) RecordCorrectedValueN(v uint64, n C, expectedInterval uint64) bool {
	if !h.RecordN(v, n) {
		return false
	}
	if expectedInterval == 0 || v <= expectedInterval {
		return true
	}
	for stallValue := v - expectedInterval; stallValue >= expectedInterval; stallValue -= expectedInterval {
		if !h.RecordN(stallValue, n) {
			return false
		}
	}
	return true
}

// Reset zeroes every counter and the running min/max/total statistics. It
// does not shrink the counts array.
func (h *Histogram[C]) Reset() {
	for i := range h.counts {
		h.counts[i] = 0
	}
	h.totalCount = 0
	h.maxValue = 0
	h.minNonZeroValue = math.MaxUint64
}

// growToCover extends the counts array, if necessary, so that v's index
// falls within it, and updates highestTrackableValue accordingly. It
// never shrinks the array. Returns false only if growth would require a
// bucket count the 32-bit bucketCount field cannot represent.
func (h *Histogram[C]) growToCover(v uint64) bool {
	newBucketCount := bucketsNeededToCoverValue(v, h.subBucketCount, h.unitMagnitude)
	if newBucketCount <= h.bucketCount {
		newBucketCount = h.bucketCount + 1
	}
	newLength := int(newBucketCount+1) * int(h.subBucketHalfCount)
	if newLength <= 0 {
		return false
	}
	if newLength > len(h.counts) {
		grown := make([]C, newLength)
		copy(grown, h.counts)
		h.counts = grown
	}
	h.bucketCount = newBucketCount
	h.highestTrackableValue = h.highestEquivalentForValue(v)
	return true
}

// Copy returns a deep copy of h at identical geometry. It does not
// implement a cross-geometry merge; see SPEC_FULL.md's Open Question
// notes on the unimplemented add/merge operation.
func (h *Histogram[C]) Copy() *Histogram[C] {
	dup := &Histogram[C]{
		geometry:        h.geometry,
		autoResize:      h.autoResize,
		counts:          make([]C, len(h.counts)),
		totalCount:      h.totalCount,
		maxValue:        h.maxValue,
		minNonZeroValue: h.minNonZeroValue,
	}
	copy(dup.counts, h.counts)
	return dup
}

// Equals reports whether h and other have identical
// (lowestDiscernibleValue, significantDigits, totalCount, max, minNonZero)
// and equal counts at every value with nonzero count in either. They may
// differ in counts-array length because of auto-resize. SPEC_FULL.md §3
// invariant 6.
func (h *Histogram[C]) Equals(other *Histogram[C]) bool {
	if h.lowestDiscernibleValue != other.lowestDiscernibleValue ||
		h.significantDigits != other.significantDigits ||
		h.totalCount != other.totalCount ||
		h.maxValue != other.maxValue ||
		h.minNonZeroValue != other.minNonZeroValue {
		return false
	}
	it := h.RecordedValues()
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		if other.CountForValue(v.Value) != v.Count {
			return false
		}
	}
	return true
}
