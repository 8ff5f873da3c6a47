package csprng

import (
	"fmt"
	"sync"
)

// Engine is the only externally visible object in this package. It owns
// all accumulator and generator state for one logical random number
// generator instance and is safe for concurrent use: every public method
// takes a single mutex for its full body, giving the engine a single-lock
// concurrency model rather than splitting accumulator and generator state
// behind separate locks.
//
// The zero Engine is not ready for use; construct one with NewEngine.
type Engine struct {
	mu  sync.Mutex
	cfg Config

	sources   int
	deriv     []noveltyFilter // len(deriv) == sources
	poolIndex []int           // len(poolIndex) == sources

	pools   [NumPools]pool
	samples uint64

	reseedCount uint64
	seeded      bool

	gen generator
}

// NewEngine constructs a fresh, unseeded Engine for the given number of
// entropy sources. sources must be at least 1; a smaller value is a
// constructor-time error, not a panic, since it is a
// configuration mistake rather than a runtime invariant violation.
func NewEngine(sources int, opts ...Option) (*Engine, error) {
	if sources < 1 {
		return nil, fmt.Errorf("csprng: sources must be at least 1, got %d", sources)
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Engine{
		cfg:       cfg,
		sources:   sources,
		deriv:     make([]noveltyFilter, sources),
		poolIndex: make([]int, sources),
		gen:       newGenerator(cfg.NewCipher),
	}
	for i := range e.pools {
		e.pools[i] = newPool(cfg.NewHash)
	}
	return e, nil
}

// IsSeeded reports whether the engine has completed at least one reseed.
// GetBytes is only valid once this returns true.
func (e *Engine) IsSeeded() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.seeded
}

// Update absorbs a batch of raw machine-word samples attributed to source.
// Samples are run through the per-source novelty filter in array order;
// accepted samples are routed round-robin into the pool schedule for that
// source, and a reseed is attempted after each sample is absorbed.
//
// source outside [0, sources) is a programmer error: a caller that doesn't
// know its own source count has a bug worth crashing loudly for, so this
// panics rather than returning an error.
func (e *Engine) Update(source int, samples []uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if source < 0 || source >= e.sources {
		panic(&badSourceError{source: source, count: len(samples)})
	}

	for _, v := range samples {
		e.absorb(source, v)
	}
}

// absorb runs the novelty filter for source against v and, on accept,
// writes v's little-endian byte image into the pool currently assigned to
// source, advancing that source's pool cursor, and then runs the reseed
// gate. Rejected samples leave the cursor untouched.
func (e *Engine) absorb(source int, v uint64) {
	if !e.deriv[source].accept(v) {
		return
	}
	p := e.poolIndex[source]
	e.pools[p].absorbSample(v)
	if p == 0 {
		e.samples++
	}
	e.poolIndex[source] = (p + 1) % NumPools
	e.maybeReseed()
}

// PutBytes injects raw, trusted entropy directly into pool 0, bypassing the
// novelty filter entirely. Each byte is credited as a full 8 bits of
// entropy toward the reseed threshold, since the caller — not a
// filter-worthy hardware sample source — is vouching for its quality.
func (e *Engine) PutBytes(data []byte) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(data) == 0 {
		return
	}
	_, _ = e.pools[0].Write(data)
	e.samples += uint64(len(data)) * 8
	e.maybeReseed()
}

// GetBytes fills out with pseudo-random output drawn from the generator. It
// returns ErrNotSeeded, leaving the engine's state unchanged, if called
// before the first reseed completes. A request for zero bytes is a no-op
// and succeeds even before seeding.
func (e *Engine) GetBytes(out []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(out) == 0 {
		return nil
	}
	if !e.seeded {
		return ErrNotSeeded
	}
	return e.gen.read(out)
}
