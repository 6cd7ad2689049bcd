// Copyright 2026 The HdrGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report formats a Histogram's percentile distribution as
// plain text or CSV, per SPEC_FULL.md §4.7. It is an external
// collaborator of the hdrhistogram package: it consumes only the
// public percentile-iterator and statistics surface, never the
// package's internal fields.
package report
