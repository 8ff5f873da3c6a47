package csprng

// maybeReseed is the reseed controller gate, called at the end of every
// absorb. It does nothing until pool 0 has accumulated at least MinSamples
// entropy units. There is deliberately no additional wall-clock debounce:
// the reseed gate is a pure function of accumulated samples (see DESIGN.md
// for the reasoning behind dropping a time-based throttle).
func (e *Engine) maybeReseed() {
	if e.samples < MinSamples {
		return
	}
	e.reseed()
}

// reseed drains the schedule-selected subset of pools into a fresh hash
// context, finalizes it into the new key, and resets samples to zero. The
// schedule is a mask-accumulating loop: pool i contributes on reseed r
// exactly when the low i bits of r are all clear (r is a multiple of 2**i),
// and the loop stops examining pools the instant that fails.
func (e *Engine) reseed() {
	e.reseedCount++

	h := e.cfg.NewHash()
	if e.seeded {
		h.Write(e.gen.key[:])
	}

	// Pool 0 always contributes.
	digest := e.pools[0].finalize(e.cfg.NewHash)
	h.Write(digest)
	zero(digest)

	mask := 0
	for i := 1; i < NumPools; i++ {
		mask = mask<<1 | 1
		if e.reseedCount&uint64(mask) != 0 {
			break
		}
		digest := e.pools[i].finalize(e.cfg.NewHash)
		h.Write(digest)
		zero(digest)
	}

	var newKey [KeySize]byte
	sum := h.Sum(nil)
	copy(newKey[:], sum)
	zero(sum)
	e.gen.reseed(newKey)
	zero(newKey[:])

	e.samples = 0
	e.seeded = true
}
