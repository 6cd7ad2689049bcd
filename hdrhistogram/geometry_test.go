// Copyright 2026 The HdrGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hdrhistogram

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGeometryValidation(t *testing.T) {
	testCases := []struct {
		desc              string
		lowest            uint64
		highest           uint64
		significantDigits int
		wantErr           bool
	}{
		{desc: "lowest zero rejected", lowest: 0, highest: 100, significantDigits: 3, wantErr: true},
		{desc: "significantDigits negative rejected", lowest: 1, highest: 100, significantDigits: -1, wantErr: true},
		{desc: "significantDigits above max rejected", lowest: 1, highest: 100, significantDigits: MaxSignificantDigits + 1, wantErr: true},
		{desc: "highest below 2x lowest rejected", lowest: 10, highest: 15, significantDigits: 3, wantErr: true},
		{desc: "typical latency histogram accepted", lowest: 1, highest: 3600000000, significantDigits: 3, wantErr: false},
		{desc: "highest exactly 2x lowest accepted", lowest: 10, highest: 20, significantDigits: 2, wantErr: false},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := newGeometry(tc.lowest, tc.highest, tc.significantDigits)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestBucketsNeededToCoverValue(t *testing.T) {
	g, err := newGeometry(1, 3600000000000, 3)
	require.NoError(t, err)
	require.Greater(t, g.bucketCount, uint32(0))
	require.GreaterOrEqual(t, g.highestTrackableValue, uint64(3600000000000))
}

func TestAutoResizeGrowsBucketCount(t *testing.T) {
	h, err := NewAutoResizing[uint64](3)
	require.NoError(t, err)
	before := h.BucketCount()
	require.True(t, h.Record(1<<40))
	after := h.BucketCount()
	require.Greater(t, after, before)
}

func TestCeilLog2(t *testing.T) {
	require.Equal(t, uint8(0), ceilLog2(0))
	require.Equal(t, uint8(0), ceilLog2(1))
	require.Equal(t, uint8(1), ceilLog2(2))
	require.Equal(t, uint8(2), ceilLog2(3))
	require.Equal(t, uint8(2), ceilLog2(4))
	require.Equal(t, uint8(8), ceilLog2(200))
}

func TestPow10(t *testing.T) {
	require.Equal(t, uint64(1), pow10(0))
	require.Equal(t, uint64(1000), pow10(3))
	require.Equal(t, uint64(100000), pow10(5))
}
