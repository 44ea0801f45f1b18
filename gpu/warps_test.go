// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarps(t *testing.T) {
	assert.Equal(t, 1, Warps(1, 64))
	assert.Equal(t, 1, Warps(64, 64))
	assert.Equal(t, 2, Warps(65, 64))
	assert.Equal(t, 10, Warps(10, 1))
	assert.Equal(t, 0, Warps(0, 64))
	assert.Equal(t, 0, Warps(10, 0))
}
