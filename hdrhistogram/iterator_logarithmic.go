// Copyright 2026 The HdrGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hdrhistogram

import "math"

// LogarithmicIterator walks the histogram in exponentially growing steps:
// the first step covers valueUnitsInFirstBucket raw value units, and each
// subsequent step's width is multiplied by logBase. See SPEC_FULL.md
// §4.5.3.
type LogarithmicIterator[C Counter] struct {
	cursor[C]
	valueUnitsInFirstBucket               float64
	logBase                               float64
	nextValueReportingLevel               float64
	currentStepHighestValueReportingLevel uint64
	currentStepLowestValueReportingLevel  uint64
}

// LogarithmicBucketValues returns a LogarithmicIterator over h.
// valueUnitsInFirstBucket and logBase must both be > 0 and logBase must be
// > 1 for the iteration to terminate.
func (h *Histogram[C]) LogarithmicBucketValues(valueUnitsInFirstBucket float64, logBase float64) *LogarithmicIterator[C] {
	if valueUnitsInFirstBucket <= 0 {
		valueUnitsInFirstBucket = 1
	}
	it := &LogarithmicIterator[C]{
		cursor:                  newCursor(h),
		valueUnitsInFirstBucket: valueUnitsInFirstBucket,
		logBase:                 logBase,
		nextValueReportingLevel: valueUnitsInFirstBucket,
	}
	it.currentStepHighestValueReportingLevel = floorMinusOne(it.nextValueReportingLevel)
	it.currentStepLowestValueReportingLevel = h.lowestEquivalentForValue(it.currentStepHighestValueReportingLevel)
	return it
}

// floorMinusOne returns max(floor(x)-1, 0) as a uint64, guarding against
// underflow when x is less than 1.
func floorMinusOne(x float64) uint64 {
	floored := math.Floor(x)
	if floored < 1 {
		return 0
	}
	return uint64(floored) - 1
}

func (it *LogarithmicIterator[C]) hasNext() bool {
	if it.cursorHasNext() {
		return true
	}
	nextLevel := it.h.lowestEquivalentForValue(uint64(math.Floor(it.nextValueReportingLevel)))
	return nextLevel < it.nextValueAtIndex
}

func (it *LogarithmicIterator[C]) reachedIterationLevel() bool {
	return it.currentValueAtIndex >= it.currentStepLowestValueReportingLevel ||
		it.currentIndex >= len(it.h.counts)-1
}

func (it *LogarithmicIterator[C]) advance() {
	it.nextValueReportingLevel *= it.logBase
	it.currentStepHighestValueReportingLevel = floorMinusOne(it.nextValueReportingLevel)
	it.currentStepLowestValueReportingLevel = it.h.lowestEquivalentForValue(it.currentStepHighestValueReportingLevel)
}

// Next returns the next logarithmic-bucket step, or (IterationValue{},
// false) once exhausted.
func (it *LogarithmicIterator[C]) Next() (IterationValue, bool) {
	for it.hasNext() {
		for !it.exhaustedSubBuckets() {
			it.moveNext()
			if it.reachedIterationLevel() {
				value := it.currentStepHighestValueReportingLevel
				emit := it.snapshot(value, it.currentPercentile())
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
