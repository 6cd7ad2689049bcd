// Copyright 2026 The HdrGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hdrgo/hdrhistogram/hdrhistogram"
)

func newTestHistogram(t *testing.T) *hdrhistogram.Histogram[uint64] {
	t.Helper()
	h, err := hdrhistogram.New[uint64](1, 3_600_000_000, 3)
	require.NoError(t, err)
	for v := uint64(1); v <= 1000; v++ {
		require.True(t, h.Record(v))
	}
	return h
}

func TestOutputPercentileDistributionPlainText(t *testing.T) {
	h := newTestHistogram(t)
	var buf bytes.Buffer

	require.NoError(t, OutputPercentileDistribution(&buf, h, 1, 5, PlainText))

	out := buf.String()
	require.Contains(t, out, "Value")
	require.Contains(t, out, "Percentile")
	require.Contains(t, out, "TotalCount")
	require.Contains(t, out, "#Mean:")
	require.Contains(t, out, "#TotalCount:")
	require.Contains(t, out, "#BucketCount:")
	require.Contains(t, out, "#SubBucketCount:")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Greater(t, len(lines), 2)
}

func TestOutputPercentileDistributionCSV(t *testing.T) {
	h := newTestHistogram(t)
	var buf bytes.Buffer

	require.NoError(t, OutputPercentileDistribution(&buf, h, 1, 5, CSV))

	out := buf.String()
	require.Contains(t, out, "Value,Percentile,TotalCount,1/(1-Percentile)")
	require.Contains(t, out, "Infinity")
	require.Contains(t, out, "#Mean,")
}

func TestOutputPercentileDistributionEmptyHistogram(t *testing.T) {
	h, err := hdrhistogram.New[uint64](1, 1000, 3)
	require.NoError(t, err)
	var buf bytes.Buffer

	require.NoError(t, OutputPercentileDistribution(&buf, h, 1, 5, PlainText))
	require.Contains(t, buf.String(), "#TotalCount: 0")
}

func TestOutputPercentileDistributionAppliesScale(t *testing.T) {
	h := newTestHistogram(t)
	var unscaled, scaled bytes.Buffer

	require.NoError(t, OutputPercentileDistribution(&unscaled, h, 1, 5, CSV))
	require.NoError(t, OutputPercentileDistribution(&scaled, h, 1000, 5, CSV))

	require.NotEqual(t, unscaled.String(), scaled.String())
}
