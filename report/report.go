// Copyright 2026 The HdrGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/hdrgo/hdrhistogram/hdrhistogram"
)

// Format selects the output encoding for OutputPercentileDistribution.
type Format int

const (
	// PlainText renders four right-aligned, human-readable columns.
	PlainText Format = iota
	// CSV renders the same data comma-separated, one row per line.
	CSV
)

// DefaultTicksPerHalfDistance is the cadence OutputPercentileDistribution
// uses when the caller passes 0.
const DefaultTicksPerHalfDistance = 5

const (
	valueColumnWidth      = 12
	percentileColumnWidth = 14
	totalCountColumnWidth = 10
)

// OutputPercentileDistribution writes h's percentile distribution to w.
// scale divides every reported Value (e.g. pass 1e6 to print
// nanosecond-denominated values in milliseconds); pass 1 for no scaling.
// ticksPerHalfDistance of 0 uses DefaultTicksPerHalfDistance. See
// SPEC_FULL.md §4.7 for the exact column layout.
func OutputPercentileDistribution[C hdrhistogram.Counter](w io.Writer, h *hdrhistogram.Histogram[C], scale float64, ticksPerHalfDistance uint32, format Format) error {
	if scale <= 0 {
		scale = 1
	}
	if ticksPerHalfDistance == 0 {
		ticksPerHalfDistance = DefaultTicksPerHalfDistance
	}

	switch format {
	case CSV:
		return writeCSV(w, h, scale, ticksPerHalfDistance)
	default:
		return writePlainText(w, h, scale, ticksPerHalfDistance)
	}
}

func writePlainText[C hdrhistogram.Counter](w io.Writer, h *hdrhistogram.Histogram[C], scale float64, ticksPerHalfDistance uint32) error {
	decimals := h.SignificantFigures()

	header := fmt.Sprintf("%s%s%s%s\n",
		tablewriter.PadLeft("Value", " ", valueColumnWidth),
		tablewriter.PadLeft("Percentile", " ", percentileColumnWidth),
		tablewriter.PadLeft("TotalCount", " ", totalCountColumnWidth),
		" 1/(1-Percentile)")
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}

	it := h.Percentiles(ticksPerHalfDistance)
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		valueCell := tablewriter.PadLeft(formatFixed(float64(v.Value)/scale, decimals), " ", valueColumnWidth)
		percentileCell := tablewriter.PadLeft(formatFixed(v.Percentile/100, 12), " ", percentileColumnWidth)
		countCell := tablewriter.PadLeft(strconv.FormatUint(v.TotalCountToThisValue, 10), " ", totalCountColumnWidth)

		var inverseCell string
		if v.PercentileLevelIteratedTo >= 100 {
			inverseCell = ""
		} else {
			inverseCell = fmt.Sprintf(" %.2f", 1/(1-v.PercentileLevelIteratedTo/100))
		}

		if _, err := fmt.Fprintf(w, "%s%s%s%s\n", valueCell, percentileCell, countCell, inverseCell); err != nil {
			return err
		}
	}

	return writeFooter(w, h, scale, decimals, footerLine)
}

func writeCSV[C hdrhistogram.Counter](w io.Writer, h *hdrhistogram.Histogram[C], scale float64, ticksPerHalfDistance uint32) error {
	decimals := h.SignificantFigures()
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Value", "Percentile", "TotalCount", "1/(1-Percentile)"}); err != nil {
		return err
	}

	it := h.Percentiles(ticksPerHalfDistance)
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		inverse := "Infinity"
		if v.PercentileLevelIteratedTo < 100 {
			inverse = strconv.FormatFloat(1/(1-v.PercentileLevelIteratedTo/100), 'f', 2, 64)
		}
		row := []string{
			formatFixed(float64(v.Value)/scale, decimals),
			formatFixed(v.Percentile/100, 12),
			strconv.FormatUint(v.TotalCountToThisValue, 10),
			inverse,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	return writeFooter(w, h, scale, decimals, func(label, value string) string {
		return fmt.Sprintf("#%s,%s\n", label, value)
	})
}

// footerLine renders a plain-text footer entry. label is left unpadded to
// match the teacher's footer style for comment/summary lines.
func footerLine(label, value string) string {
	return fmt.Sprintf("#%s: %s\n", label, value)
}

func writeFooter[C hdrhistogram.Counter](w io.Writer, h *hdrhistogram.Histogram[C], scale float64, decimals int, line func(label, value string) string) error {
	footer := line("Mean", formatFixed(h.Mean()/scale, decimals)) +
		line("StdDeviation", formatFixed(h.StdDeviation()/scale, decimals)) +
		line("Max", formatFixed(float64(h.Max())/scale, decimals)) +
		line("TotalCount", strconv.FormatUint(h.TotalCount(), 10)) +
		line("BucketCount", strconv.FormatUint(uint64(h.BucketCount()), 10)) +
		line("SubBucketCount", strconv.FormatUint(uint64(h.SubBucketCount()), 10))
	_, err := io.WriteString(w, footer)
	return err
}

// formatFixed renders v with exactly decimals digits after the point,
// never switching to scientific notation, matching the fixed-width
// vsnprintf-style formatting the column layout requires.
func formatFixed(v float64, decimals int) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "Infinity"
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
