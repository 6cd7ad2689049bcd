// Copyright 2026 The HdrGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hdrhistogram

import "unsafe"

// sizeOfCounter returns sizeof(C) in bytes, used by EstimatedFootprintInBytes.
func sizeOfCounter[C Counter](zero C) uintptr {
	return unsafe.Sizeof(zero)
}
