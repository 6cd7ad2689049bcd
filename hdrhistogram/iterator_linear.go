// Copyright 2026 The HdrGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hdrhistogram

// LinearIterator walks the histogram in fixed-width steps of
// valueUnitsPerBucket raw value units, emitting one IterationValue per
// step even for steps that contain no recorded values. See SPEC_FULL.md
// §4.5.2.
type LinearIterator[C Counter] struct {
	cursor[C]
	valueUnitsPerBucket                   uint64
	currentStepHighestValueReportingLevel uint64
	currentStepLowestValueReportingLevel  uint64
}

// LinearBucketValues returns a LinearIterator over h with the given step
// width, in raw value units. valueUnitsPerBucket must be >= 1.
func (h *Histogram[C]) LinearBucketValues(valueUnitsPerBucket uint64) *LinearIterator[C] {
	if valueUnitsPerBucket == 0 {
		valueUnitsPerBucket = 1
	}
	it := &LinearIterator[C]{
		cursor:              newCursor(h),
		valueUnitsPerBucket: valueUnitsPerBucket,
	}
	it.currentStepHighestValueReportingLevel = valueUnitsPerBucket - 1
	it.currentStepLowestValueReportingLevel = h.lowestEquivalentForValue(it.currentStepHighestValueReportingLevel)
	return it
}

func (it *LinearIterator[C]) hasNext() bool {
	return it.cursorHasNext() || it.currentStepHighestValueReportingLevel < it.nextValueAtIndex
}

func (it *LinearIterator[C]) reachedIterationLevel() bool {
	return it.currentValueAtIndex >= it.currentStepLowestValueReportingLevel ||
		it.currentIndex >= len(it.h.counts)-1
}

func (it *LinearIterator[C]) advance() {
	it.currentStepHighestValueReportingLevel += it.valueUnitsPerBucket
	it.currentStepLowestValueReportingLevel = it.h.lowestEquivalentForValue(it.currentStepHighestValueReportingLevel)
}

// Next returns the next linear-bucket step, or (IterationValue{}, false)
// once the histogram's recorded range (plus any in-flight widening steps)
// is exhausted.
func (it *LinearIterator[C]) Next() (IterationValue, bool) {
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
