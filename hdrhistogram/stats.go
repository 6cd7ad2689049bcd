// Copyright 2026 The HdrGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hdrhistogram

import "math"

// Min returns 0 if the value 0 has been recorded (counts-array slot 0 is
// nonzero), or if the histogram is empty; otherwise it returns the smallest recorded nonzero
// raw value. Note this differs from MinNonZeroValue, which snaps to the
// equivalence class's lowest bound. SPEC_FULL.md §4.6.
func (h *Histogram[C]) Min() uint64 {
	if h.totalCount == 0 || h.counts[0] > 0 {
		return 0
	}
	return h.minNonZeroValue
}

// Max returns 0 if nothing has been recorded; otherwise the highest
// equivalent value of the largest recorded raw value.
func (h *Histogram[C]) Max() uint64 {
	if h.maxValue == 0 {
		return 0
	}
	return h.highestEquivalentForValue(h.maxValue)
}

// MinNonZeroValue returns the lowest equivalent value of the smallest
// recorded nonzero raw value, or math.MaxUint64 if none has been
// recorded.
func (h *Histogram[C]) MinNonZeroValue() uint64 {
	if h.minNonZeroValue == math.MaxUint64 {
		return math.MaxUint64
	}
	return h.lowestEquivalentForValue(h.minNonZeroValue)
}

// Mean returns the arithmetic mean of all recorded values, computed from
// the counts array (not from raw samples, which are not retained), or 0
// if the histogram is empty.
func (h *Histogram[C]) Mean() float64 {
	if h.totalCount == 0 {
		return 0
	}
	var sum float64
	it := h.RecordedValues()
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		sum += float64(h.medianEquivalentForValue(v.Value)) * float64(v.Count)
	}
	return sum / float64(h.totalCount)
}

// StdDeviation returns the population standard deviation of all recorded
// values, or 0 if the histogram is empty.
func (h *Histogram[C]) StdDeviation() float64 {
	if h.totalCount == 0 {
		return 0
	}
	mean := h.Mean()
	var sumSquaredDeviation float64
	it := h.RecordedValues()
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		deviation := float64(h.medianEquivalentForValue(v.Value)) - mean
		sumSquaredDeviation += deviation * deviation * float64(v.Count)
	}
	return math.Sqrt(sumSquaredDeviation / float64(h.totalCount))
}

// Median returns ValueAtPercentile(50).
func (h *Histogram[C]) Median() uint64 {
	return h.ValueAtPercentile(50)
}

// ValueAtPercentile returns the highest equivalent value such that
// percentile% of recorded values are at or below it (or, for percentile
// == 0, the lowest equivalent value of the smallest recorded value). It
// returns 0 for an empty histogram. SPEC_FULL.md §4.6.
func (h *Histogram[C]) ValueAtPercentile(percentile float64) uint64 {
	if h.totalCount == 0 {
		return 0
	}
	requested := percentile
	adjusted := math.Nextafter(requested, math.Inf(-1))
	if adjusted < 0 {
		adjusted = 0
	}
	if adjusted > 100 {
		adjusted = 100
	}
	threshold := math.Ceil(adjusted * float64(h.totalCount) / 100)
	if threshold < 1 {
		threshold = 1
	}
	var runningTotal uint64
	for i, c := range h.counts {
		runningTotal += uint64(c)
		if float64(runningTotal) >= threshold {
			v := h.valueFromIndex(i)
			if requested == 0 {
				return h.lowestEquivalentForValue(v)
			}
			return h.highestEquivalentForValue(v)
		}
	}
	return 0
}

// PercentileAtOrBelowValue returns the percentage of recorded values that
// are at or below v, or 100 for an empty histogram.
func (h *Histogram[C]) PercentileAtOrBelowValue(v uint64) float64 {
	if h.totalCount == 0 {
		return 100
	}
	targetIndex := h.countsIndexForValue(v)
	if targetIndex < 0 {
		targetIndex = 0
	}
	if targetIndex >= len(h.counts) {
		targetIndex = len(h.counts) - 1
	}
	var sum uint64
	for i := 0; i <= targetIndex; i++ {
		sum += uint64(h.counts[i])
	}
	return 100 * float64(sum) / float64(h.totalCount)
}

// Count returns the number of recorded values in the inclusive range
// [lo, hi].
func (h *Histogram[C]) Count(lo, hi uint64) uint64 {
	loIndex := h.countsIndexForValue(lo)
	if loIndex < 0 {
		loIndex = 0
	}
	hiIndex := h.countsIndexForValue(hi)
	if hiIndex >= len(h.counts) {
		hiIndex = len(h.counts) - 1
	}
	if hiIndex < loIndex {
		return 0
	}
	var sum uint64
	for i := loIndex; i <= hiIndex; i++ {
		sum += uint64(h.counts[i])
	}
	return sum
}

// CountForValue returns the raw counter at v's equivalence class, or 0 if
// v falls outside the counts array.
func (h *Histogram[C]) CountForValue(v uint64) uint64 {
	idx := h.countsIndexForValue(v)
	if idx < 0 || idx >= len(h.counts) {
		return 0
	}
	return uint64(h.counts[idx])
}

// EstimatedFootprintInBytes estimates the histogram's memory footprint:
// a fixed overhead plus the counts array at its current capacity.
// SPEC_FULL.md §4.6.
func (h *Histogram[C]) EstimatedFootprintInBytes() int {
	var zero C
	return 512 + cap(h.counts)*int(sizeOfCounter(zero))
}
