// Copyright 2026 The HdrGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hdrhistogram

// IterationValue is one step emitted by any of the histogram's iterators.
// Field meanings follow SPEC_FULL.md §4.5.
type IterationValue struct {
	// Value is the representative value for this step (meaning varies by
	// iterator; see each iterator's doc comment).
	Value uint64
	// PrevValue is the Value emitted by the previous step, or 0 for the
	// first.
	PrevValue uint64
	// Count is the raw counter at exactly this step's counts-array slot
	// (not cumulative).
	Count uint64
	// Percentile is 100*totalCountToThisValue/totalCount at this step.
	Percentile float64
	// PercentileLevelIteratedTo is the iterator-specific target level
	// (for PercentileIterator, the percentile threshold that triggered
	// this step; for the others, equal to Percentile).
	PercentileLevelIteratedTo float64
	// CountAddedInThisIterationStep is the number of values accounted
	// for since the previous step (may span multiple counts-array slots
	// for the linear/logarithmic/percentile iterators).
	CountAddedInThisIterationStep uint64
	// TotalCountToThisValue is the cumulative count of all values at or
	// below Value.
	TotalCountToThisValue uint64
	// TotalValueToThisValue is the cumulative sum of (count * highest
	// equivalent value) for every slot visited up to and including this
	// step.
	TotalValueToThisValue uint64
}

// cursor is the shared traversal state used by every iterator
// specialization. It is composed by value into each concrete iterator
// type, per the design note in SPEC_FULL.md §9(a).
type cursor[C Counter] struct {
	h *Histogram[C]

	currentIndex             int
	currentValueAtIndex      uint64
	nextValueAtIndex         uint64
	prevValueIteratedTo      uint64
	totalCountToPrevIndex    uint64
	totalCountToCurrentIndex uint64
	totalValueToCurrentIndex uint64
	countAtThisValue         uint64
	freshSubBucket           bool
	arrayTotalCount          uint64
}

func newCursor[C Counter](h *Histogram[C]) cursor[C] {
	return cursor[C]{
		h:                    h,
		currentValueAtIndex:  0,
		nextValueAtIndex:     uint64(1) << h.unitMagnitude,
		freshSubBucket:       true,
		arrayTotalCount:      h.totalCount,
	}
}

// exhaustedSubBuckets reports whether currentIndex has run past the end
// of the counts array.
func (c *cursor[C]) exhaustedSubBuckets() bool {
	return c.currentIndex >= len(c.h.counts)
}

// cursorHasNext reports whether there is more recorded mass to account
// for: the base "hasNext" every specialization builds on.
func (c *cursor[C]) cursorHasNext() bool {
	return c.totalCountToCurrentIndex < c.arrayTotalCount
}

// moveNext accumulates the current slot's count into the running totals
// exactly once per visit to a fresh sub-bucket.
func (c *cursor[C]) moveNext() {
	if c.freshSubBucket {
		count := uint64(c.h.counts[c.currentIndex])
		c.countAtThisValue = count
		c.totalCountToCurrentIndex += count
		c.totalValueToCurrentIndex += count * c.h.highestEquivalentForValue(c.currentValueAtIndex)
		c.freshSubBucket = false
	}
}

// incrementSubBucket advances to the next counts-array slot.
func (c *cursor[C]) incrementSubBucket() {
	c.currentIndex++
	if c.currentIndex < len(c.h.counts) {
		c.currentValueAtIndex = c.h.valueFromIndex(c.currentIndex)
		c.nextValueAtIndex = c.h.valueFromIndex(c.currentIndex + 1)
	}
	c.freshSubBucket = true
}

// currentPercentile returns 100*totalCountToCurrentIndex/arrayTotalCount,
// or 0 if the histogram is empty.
func (c *cursor[C]) currentPercentile() float64 {
	if c.arrayTotalCount == 0 {
		return 0
	}
	return 100 * float64(c.totalCountToCurrentIndex) / float64(c.arrayTotalCount)
}

// snapshot builds the IterationValue for a step ending at value, with the
// given percentileLevelIteratedTo, then leaves totalCountToPrevIndex and
// prevValueIteratedTo for the caller to commit via commitPrev.
func (c *cursor[C]) snapshot(value uint64, percentileLevelIteratedTo float64) IterationValue {
	return IterationValue{
		Value:                         value,
		PrevValue:                     c.prevValueIteratedTo,
		Count:                         c.countAtThisValue,
		Percentile:                    c.currentPercentile(),
		PercentileLevelIteratedTo:     percentileLevelIteratedTo,
		CountAddedInThisIterationStep: c.totalCountToCurrentIndex - c.totalCountToPrevIndex,
		TotalCountToThisValue:         c.totalCountToCurrentIndex,
		TotalValueToThisValue:         c.totalValueToCurrentIndex,
	}
}

// commitPrev records value as the PrevValue baseline for the next step.
func (c *cursor[C]) commitPrev(value uint64) {
	c.totalCountToPrevIndex = c.totalCountToCurrentIndex
	c.prevValueIteratedTo = value
}
