// Copyright 2026 The HdrGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hdrhistogram implements a fixed-memory histogram that counts
// samples drawn from a wide integer domain while holding a configurable
// relative error bound across the whole range.
//
// A Histogram is built once with a lowest discernible value, a highest
// trackable value, and a number of significant decimal digits of
// precision. Recording a value is allocation-free and runs in a handful
// of instructions; extracting any percentile afterward never rescans raw
// samples, only the fixed counts array.
//
// The type is generic over the counter width (Counter), trading memory
// for headroom against counter saturation; totalCount is always tracked
// at full 64-bit width regardless of the chosen counter type.
//
// A Histogram is not safe for concurrent mutation. It is meant to be
// owned by a single writer; readers that need a stable snapshot should
// coordinate externally (see Copy).
package hdrhistogram
