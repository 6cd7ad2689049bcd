// Copyright 2026 The HdrGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hdrhistogram

// AllValuesIterator walks every counts-array slot exactly once in
// ascending order, regardless of whether it holds a nonzero counter. See
// SPEC_FULL.md §4.5.5.
type AllValuesIterator[C Counter] struct {
	cursor[C]
	visitedIndex int
}

// AllValues returns an AllValuesIterator over h.
func (h *Histogram[C]) AllValues() *AllValuesIterator[C] {
	return &AllValuesIterator[C]{
		cursor:       newCursor(h),
		visitedIndex: -1,
	}
}

func (it *AllValuesIterator[C]) hasNext() bool {
	return it.currentIndex < len(it.h.counts)-1
}

func (it *AllValuesIterator[C]) reachedIterationLevel() bool {
	return it.visitedIndex != it.currentIndex
}

func (it *AllValuesIterator[C]) advance() {
	it.visitedIndex = it.currentIndex
}

// Next returns the next slot, recorded or not, or (IterationValue{},
// false) once every slot has been emitted.
func (it *AllValuesIterator[C]) Next() (IterationValue, bool) {
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
