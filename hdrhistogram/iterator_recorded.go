// Copyright 2026 The HdrGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hdrhistogram

// RecordedValuesIterator walks only the counts-array slots with a nonzero
// counter, emitting each exactly once in ascending order. Value is the
// highest value equivalent to the slot's representative value. See
// SPEC_FULL.md §4.5.4.
type RecordedValuesIterator[C Counter] struct {
	cursor[C]
	visitedIndex int
}

// RecordedValues returns a RecordedValuesIterator over h.
func (h *Histogram[C]) RecordedValues() *RecordedValuesIterator[C] {
	return &RecordedValuesIterator[C]{
		cursor:       newCursor(h),
		visitedIndex: -1,
	}
}

func (it *RecordedValuesIterator[C]) hasNext() bool {
	return it.cursorHasNext()
}

func (it *RecordedValuesIterator[C]) reachedIterationLevel() bool {
	return it.countAtThisValue != 0 && it.visitedIndex != it.currentIndex
}

func (it *RecordedValuesIterator[C]) advance() {
	it.visitedIndex = it.currentIndex
}

// Next returns the next nonzero slot, or (IterationValue{}, false) once
// every recorded value has been emitted.
func (it *RecordedValuesIterator[C]) Next() (IterationValue, bool) {
	for it.hasNext() {
		for !it.exhaustedSubBuckets() {
			it.moveNext()
			if it.reachedIterationLevel() {
				value := it.h.highestEquivalentForValue(it.currentValueAtIndex)
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
