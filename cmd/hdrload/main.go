// Copyright 2026 The HdrGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// hdrload is an example program demonstrating the hdrhistogram package: it
// feeds a synthetic stalled load generator's latencies through
// RecordCorrectedValue and prints the resulting percentile distribution.
// It is not part of the library proper; see SPEC_FULL.md's note on the
// example program being out of core scope.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hdrgo/hdrhistogram/hdrhistogram"
	"github.com/hdrgo/hdrhistogram/report"
)

type runConfig struct {
	samples             int
	expectedIntervalMs  int64
	highestTrackableMs  int64
	significantDigits   int
	ticksPerHalfDist    uint32
	csv                 bool
	seed                int64
}

func defaultRunConfig() runConfig {
	return runConfig{
		samples:            100_000,
		expectedIntervalMs: 10,
		highestTrackableMs: 3_600_000,
		significantDigits:  3,
		ticksPerHalfDist:   5,
		seed:               1,
	}
}

func main() {
	if err := makeHdrloadCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func makeHdrloadCommand() *cobra.Command {
	config := defaultRunConfig()
	command := &cobra.Command{
		Use:   "hdrload",
		Short: "generate synthetic latency samples and print their percentile distribution",
		Long: `hdrload simulates a load generator subject to coordinated omission: whenever
the simulated response time exceeds the expected sampling interval, the
generator would have skipped issuing requests during the stall. hdrload
corrects for this using RecordCorrectedValue and reports the resulting
latency distribution in the HDR percentile format.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(config)
		},
	}

	command.Flags().IntVar(&config.samples, "samples", config.samples, "number of latency samples to generate")
	command.Flags().Int64Var(&config.expectedIntervalMs, "expected-interval-ms", config.expectedIntervalMs, "expected sampling interval, in milliseconds, used for coordinated-omission correction")
	command.Flags().Int64Var(&config.highestTrackableMs, "highest-trackable-ms", config.highestTrackableMs, "highest trackable latency, in milliseconds")
	command.Flags().IntVar(&config.significantDigits, "significant-digits", config.significantDigits, "number of significant decimal digits of resolution")
	command.Flags().Uint32Var(&config.ticksPerHalfDist, "ticks-per-half-distance", config.ticksPerHalfDist, "percentile iterator cadence")
	command.Flags().BoolVar(&config.csv, "csv", config.csv, "emit the distribution as CSV instead of plain text")
	command.Flags().Int64Var(&config.seed, "seed", config.seed, "random seed for the synthetic latency generator")

	return command
}

func run(config runConfig) error {
	h, err := hdrhistogram.New[uint64](1, uint64(config.highestTrackableMs), config.significantDigits)
	if err != nil {
		return errors.Wrap(err, "constructing histogram")
	}

	rng := rand.New(rand.NewSource(config.seed))
	for i := 0; i < config.samples; i++ {
		latencyMs := uint64(syntheticLatencyMs(rng))
		if !h.RecordCorrectedValue(latencyMs, uint64(config.expectedIntervalMs)) {
			return errors.Newf("latency sample %d (%dms) exceeds highest trackable value", i, latencyMs)
		}
	}

	fmt.Fprintf(os.Stdout, "# recorded %s samples, footprint %s\n",
		humanize.Comma(int64(h.TotalCount())),
		humanize.IBytes(uint64(h.EstimatedFootprintInBytes())))

	format := report.PlainText
	if config.csv {
		format = report.CSV
	}
	return report.OutputPercentileDistribution(os.Stdout, h, 1, config.ticksPerHalfDist, format)
}

// syntheticLatencyMs models a server that's usually fast but occasionally
// stalls for a long GC pause, producing the kind of long tail coordinated
// omission correction is meant to fix.
func syntheticLatencyMs(rng *rand.Rand) float64 {
	if rng.Float64() < 0.001 {
		return 500 + rng.Float64()*2000
	}
	return 1 + rng.ExpFloat64()*3
}
