// Copyright 2013 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package csprng

// All the page (p.) references below are to Cryptography Engineering,
// N. Ferguson, B. Schneier, T. Kohno, ISBN 978-0-470-47424-2, which describes
// this construction.

// generator is the counter-mode output stream keyed by the engine's current
// 256-bit key. It is AES-256 in CTR mode over a little-endian 128-bit
// counter, re-keyed from its own output after every request it serves.
//
// generator never derives its own key from scratch: the reseed controller
// computes the full reseed digest (optionally mixing in the prior key) and
// hands generator.reseed a finished key directly. The generator's own
// internal rekey step (after serving a request) is the only place it
// mutates key on its own.
type generator struct {
	newCipher func(key []byte) (cipherBlock, error)

	key     [KeySize]byte
	counter counter

	// scratch holds one block of cipher output and is reused across calls to
	// avoid allocating on every partial-block read.
	scratch [BlockSize]byte
}

func newGenerator(newCipher func(key []byte) (cipherBlock, error)) generator {
	return generator{newCipher: newCipher}
}

// reseed overwrites the generator's key with newKey. The counter is
// deliberately left untouched: it must keep advancing across the engine's
// lifetime, including across reseeds, so CTR-mode input blocks never repeat.
func (g *generator) reseed(newKey [KeySize]byte) {
	zero(g.key[:])
	g.key = newKey
}

// generateBlocks fills out with CTR-mode output under c, advancing the
// counter by one block at a time. Full blocks are encrypted directly into
// out; a trailing partial block is encrypted into scratch first, then only
// the bytes actually needed are copied out.
func (g *generator) generateBlocks(c cipherBlock, out []byte) {
	s := c.BlockSize()
	fullBlocks := len(out) / s
	for i := 0; i < fullBlocks; i++ {
		b := i * s
		c.Encrypt(out[b:b+s], g.counter[:])
		g.counter.incr()
	}
	if rem := len(out) % s; rem != 0 {
		c.Encrypt(g.scratch[:], g.counter[:])
		copy(out[fullBlocks*s:], g.scratch[:rem])
		g.counter.incr()
	}
}

// read serves exactly len(out) bytes of pseudo-random output into out, then
// performs the forward-secrecy rekey: two more blocks are generated and
// concatenated to become the new key, so the key that served this request
// is gone once read returns. Zero-length requests are a documented no-op —
// they do not touch key or counter.
func (g *generator) read(out []byte) error {
	if len(out) == 0 {
		return nil
	}
	c, err := g.newCipher(g.key[:])
	if err != nil {
		// The only possible failure is a bad key size, which cannot happen
		// given the engine's own invariants: the key is always KeySize bytes.
		panic(err)
	}
	g.generateBlocks(c, out)

	var nextKey [KeySize]byte
	g.generateBlocks(c, nextKey[:])
	zero(g.key[:])
	g.key = nextKey
	zero(nextKey[:])
	return nil
}
