// Copyright 2013 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package csprng

// counter is a 128-bit little-endian integer used as the CTR-mode input
// block. It is fixed-size so the generator never allocates for it.
type counter [BlockSize]byte

// incr adds 1 to c by treating it as a little endian big int. Wraparound is
// permitted: incrementing the all-0xff counter yields the all-zero counter
// and generation continues without stalling.
func (c *counter) incr() {
	for i := range c {
		c[i]++
		if c[i] != 0 {
			return
		}
	}
	// Overflowed: already all zero from the wraparound above.
}
