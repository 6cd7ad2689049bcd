// Copyright 2026 The HdrGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hdrhistogram

import "math"

// PercentileIterator walks the histogram emitting one IterationValue per
// percentile tick, with ticks spaced so that the distance to 100% halves
// every ticksPerHalfDistance steps — dense near the tail, sparse near the
// median. For a non-empty histogram it always emits a final step at the
// 100th percentile; an empty histogram yields no steps. See
// SPEC_FULL.md §4.5.1.
type PercentileIterator[C Counter] struct {
	cursor[C]
	ticksPerHalfDistance       uint32
	percentileLevelToIterateTo float64
	reachedLastRecordedValue   bool
}

// Percentiles returns a PercentileIterator over h. ticksPerHalfDistance
// must be >= 1; the report package defaults it to 5.
func (h *Histogram[C]) Percentiles(ticksPerHalfDistance uint32) *PercentileIterator[C] {
	if ticksPerHalfDistance == 0 {
		ticksPerHalfDistance = 1
	}
	return &PercentileIterator[C]{
		cursor:               newCursor(h),
		ticksPerHalfDistance: ticksPerHalfDistance,
	}
}

func (it *PercentileIterator[C]) hasNext() bool {
	if it.cursorHasNext() {
		return true
	}
	if it.arrayTotalCount > 0 && !it.reachedLastRecordedValue {
		it.percentileLevelToIterateTo = 100
		it.reachedLastRecordedValue = true
		return true
	}
	return false
}

func (it *PercentileIterator[C]) reachedIterationLevel() bool {
	return it.countAtThisValue > 0 && it.currentPercentile() >= it.percentileLevelToIterateTo
}

func (it *PercentileIterator[C]) advance() {
	if it.percentileLevelToIterateTo == 100 {
		return
	}
	reportingTicks := float64(it.ticksPerHalfDistance) *
		math.Pow(2, math.Floor(math.Log2(100/(100-it.percentileLevelToIterateTo)))+1)
	it.percentileLevelToIterateTo += 100 / reportingTicks
}

// Next returns the next percentile step, or (IterationValue{}, false) once
// the terminal 100% tick has been emitted.
func (it *PercentileIterator[C]) Next() (IterationValue, bool) {
	for it.hasNext() {
		for !it.exhaustedSubBuckets() {
			it.moveNext()
			if it.reachedIterationLevel() {
				value := it.h.highestEquivalentForValue(it.currentValueAtIndex)
				emit := it.snapshot(value, it.percentileLevelToIterateTo)
				it.advance()
				it.commitPrev(value)
				return emit, true
			}
			it.incrementSubBucket()
		}
		break
	}
	return IterationValue{}, false
}
