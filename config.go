package csprng

import (
	"crypto/aes"
	"crypto/sha256"
	"hash"
)

// Config holds the tunable, non-secret parameters used to construct an
// Engine. The zero Config is not valid on its own; use DefaultConfig or
// NewEngine's variadic Option arguments to build one.
type Config struct {
	// NewHash constructs the streaming hash used for every entropy pool and
	// for the reseed digest chain. Defaults to sha256.New. Overriding this
	// is intended for tests that want a cheaper or instrumented hash; the
	// primitive contract (256-bit digest) must still hold.
	NewHash func() hash.Hash

	// NewCipher constructs the block cipher key schedule from a key of
	// KeySize bytes. Defaults to aes.NewCipher. Overriding this is intended
	// for tests only; production use must keep AES-256.
	NewCipher func(key []byte) (cipherBlock, error)
}

// cipherBlock is the minimal surface the generator needs from a block
// cipher key schedule: encrypt exactly one block in place.
type cipherBlock interface {
	BlockSize() int
	Encrypt(dst, src []byte)
}

// DefaultConfig returns a Config wired to the required primitives: SHA-256
// pools/digests and AES-256 counter-mode encryption.
func DefaultConfig() Config {
	return Config{
		NewHash: sha256.New,
		NewCipher: func(key []byte) (cipherBlock, error) {
			return aes.NewCipher(key)
		},
	}
}

// Option mutates a Config in place. Options are applied in order, so a
// later option overrides an earlier one for the same field.
type Option func(*Config)

// WithHash overrides the streaming hash constructor used for pools and the
// reseed digest chain. Intended for tests that want a deterministic or
// cheap stand-in; production code should leave this at the default.
func WithHash(newHash func() hash.Hash) Option {
	return func(c *Config) { c.NewHash = newHash }
}

// withCipher overrides the block cipher constructor used by the output
// generator. Unexported: cipherBlock is an internal seam, so this option
// is only reachable from the package's own tests, not from callers.
func withCipher(newCipher func(key []byte) (cipherBlock, error)) Option {
	return func(c *Config) { c.NewCipher = newCipher }
}
