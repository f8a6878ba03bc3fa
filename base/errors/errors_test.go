// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("boom")
	assert.Equal(t, err, Log(err))
}

func TestLog1(t *testing.T) {
	assert.Equal(t, 3, Log1(3, nil))
	assert.Equal(t, 0, Log1(0, New("boom")))
	assert.Equal(t, "x", Ignore1("x", New("boom")))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("boom")) })
}

func TestWrap(t *testing.T) {
	base := New("base")
	wrapped := fmt.Errorf("outer: %w", base)
	assert.True(t, Is(wrapped, base))
	assert.True(t, Is(Join(nil, wrapped), base))
}
