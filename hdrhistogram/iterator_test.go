// Copyright 2026 The HdrGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hdrhistogram

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinearIteratorWidening(t *testing.T) {
	h, err := New[uint64](1, math.MaxUint64, 3)
	require.NoError(t, err)

	for _, v := range []uint64{1, 2047, 2048, 2049, 4095, 4096, 4097, 4098, 4099, 4100} {
		require.True(t, h.Record(v))
	}

	it := h.LinearBucketValues(1)
	countsByStepIndex := map[int]uint64{}
	steps := 0
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		countsByStepIndex[steps] = v.Count
		steps++
	}

	require.Equal(t, uint64(0), countsByStepIndex[0])
	require.Equal(t, uint64(1), countsByStepIndex[1])
	require.Equal(t, uint64(1), countsByStepIndex[2047])
	require.Equal(t, uint64(2), countsByStepIndex[2048])
	require.Equal(t, uint64(4), countsByStepIndex[4096])
	require.Equal(t, uint64(1), countsByStepIndex[4100])
	require.Equal(t, 4104, steps)
}

func TestPercentileIteratorCadence(t *testing.T) {
	h, err := New[uint64](1, 10_000, 3)
	require.NoError(t, err)
	for v := uint64(1); v <= 10; v++ {
		require.True(t, h.Record(v))
	}

	it := h.Percentiles(2)
	var levels []float64
	var values []uint64
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		levels = append(levels, v.PercentileLevelIteratedTo)
		values = append(values, v.Value)
	}

	wantLevels := []float64{0, 25, 50, 62.5, 75, 81.25, 87.5, 90.625, 100}
	wantValues := []uint64{1, 3, 5, 7, 8, 9, 9, 10, 10}

	require.Len(t, levels, len(wantLevels))
	for i := range wantLevels {
		require.InDelta(t, wantLevels[i], levels[i], 0.001, "level at step %d", i)
	}
	require.Equal(t, wantValues, values)
}

func TestRecordedValuesIteratorSkipsEmptySlots(t *testing.T) {
	h, err := New[uint64](1, 100_000, 3)
	require.NoError(t, err)
	require.True(t, h.Record(10))
	require.True(t, h.Record(10))
	require.True(t, h.Record(5000))

	it := h.RecordedValues()
	var total uint64
	n := 0
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		total += v.Count
		n++
	}
	require.Equal(t, 2, n)
	require.Equal(t, uint64(3), total)
}

func TestAllValuesIteratorVisitsEverySlotOnce(t *testing.T) {
	h, err := New[uint64](1, 1000, 3)
	require.NoError(t, err)
	require.True(t, h.Record(10))

	it := h.AllValues()
	seen := map[int]bool{}
	n := 0
	for {
		_, ok := it.Next()
		if !ok {
			break
		}
		seen[n] = true
		n++
	}
	require.Equal(t, h.CountsArrayLength(), n)
}

func TestLogarithmicIteratorWithUnitFirstBucket(t *testing.T) {
	h, err := New[uint64](1, 100_000, 3)
	require.NoError(t, err)
	for v := uint64(1); v <= 1000; v++ {
		require.True(t, h.Record(v))
	}

	it := h.LogarithmicBucketValues(1, 2)
	var last uint64
	steps := 0
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		require.GreaterOrEqual(t, v.Value, last)
		last = v.Value
		steps++
		require.Less(t, steps, 100000, "iteration must terminate")
	}
	require.Greater(t, steps, 0)
}
