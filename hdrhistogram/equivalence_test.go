// Copyright 2026 The HdrGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hdrhistogram

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEquivalenceRangeInvariants(t *testing.T) {
	h, err := New[uint64](1, 3600000000000, 3)
	require.NoError(t, err)

	for _, v := range []uint64{1, 100, 100000, 99999999} {
		lo := h.LowestEquivalentForValue(v)
		hi := h.HighestEquivalentForValue(v)
		require.LessOrEqual(t, lo, v)
		require.GreaterOrEqual(t, hi, v)

		size := h.SizeOfEquivalentRangeForValue(v)
		require.Equal(t, hi-lo+1, size)

		med := h.MedianEquivalentForValue(v)
		require.GreaterOrEqual(t, med, lo)
		require.LessOrEqual(t, med, hi)

		next := h.NextNonEquivalentForValue(v)
		require.Equal(t, hi+1, next)

		require.True(t, h.ValuesAreEquivalent(v, lo))
		require.True(t, h.ValuesAreEquivalent(v, hi))
		require.False(t, h.ValuesAreEquivalent(lo, next))
	}
}

func TestEquivalentRangeForValueMatchesAccessors(t *testing.T) {
	h, err := New[uint64](1, 100000, 3)
	require.NoError(t, err)

	lo, hi := h.EquivalentRangeForValue(12345)
	require.Equal(t, h.LowestEquivalentForValue(12345), lo)
	require.Equal(t, h.HighestEquivalentForValue(12345), hi)
}
