// Copyright 2013 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package csprng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pad(b ...byte) counter {
	var c counter
	copy(c[:], b)
	return c
}

var counterTestData = []struct {
	input, expected counter
}{
	{pad(0), pad(1)},
	{pad(1), pad(2)},
	{pad(255), pad(0, 1)},
	{pad(0, 0), pad(1, 0)},
	{pad(1, 0), pad(2, 0)},
	{pad(255, 0), pad(0, 1)},
	{pad(255, 1), pad(0, 2)},
	{pad(255, 255), pad(0, 0, 1)},
	{pad(255, 255, 0), pad(0, 0, 1)},
}

func TestCounter(t *testing.T) {
	for _, tc := range counterTestData {
		actual := tc.input
		actual.incr()
		assert.Equal(t, tc.expected, actual, "%v + 1", tc.input)
	}
}

func TestCounterWraparound(t *testing.T) {
	var c counter
	for i := range c {
		c[i] = 0xff
	}
	c.incr()
	assert.Equal(t, counter{}, c, "full wraparound must land back on all zeros")
}
