// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// Warps returns the number of warps (work groups of compute threads)
// that is sufficient to compute n elements, given specified number
// of threads per this dimension.
// It just rounds up to nearest even multiple of n divided by threads:
// (n + threads - 1) / threads.
func Warps(n, threads int) int {
	if n <= 0 || threads <= 0 {
		return 0
	}
	return (n + threads - 1) / threads
}
