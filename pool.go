package csprng

import (
	"encoding/binary"
	"hash"
)

// pool is one of the 32 entropy accumulators. It wraps a streaming hash and
// nothing else: it does not track its own byte count, since the engine
// credits entropy differently depending on whether a write came through the
// filtered per-source path or the trusted raw-bytes path, so that
// bookkeeping lives in Engine.
type pool struct {
	hash.Hash
}

func newPool(newHash func() hash.Hash) pool {
	return pool{Hash: newHash()}
}

// absorbSample feeds one accepted machine-word sample into the pool as a
// fixed little-endian byte image. The pools only need collision resistance,
// not a portable wire format, so any consistent encoding would do.
func (p pool) absorbSample(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = p.Write(buf[:])
}

// finalize produces the pool's digest and reinitializes it for the next
// accumulation cycle, using newHash to build the fresh streaming state.
func (p *pool) finalize(newHash func() hash.Hash) []byte {
	digest := p.Sum(nil)
	p.Hash = newHash()
	return digest
}
