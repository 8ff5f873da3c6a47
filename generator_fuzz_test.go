package csprng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// FuzzEngineGetBytes checks that GetBytes never panics across arbitrary
// request sizes and seed states, returning ErrNotSeeded for a non-empty
// request on an unseeded engine and no error otherwise.
func FuzzEngineGetBytes(f *testing.F) {
	f.Add(0, false)
	f.Add(1, true)
	f.Add(16, true)
	f.Add(17, true)
	f.Add(4096, true)

	f.Fuzz(func(t *testing.T, n int, seed bool) {
		if n < 0 || n > 1<<20 {
			t.Skip()
		}
		e, err := NewEngine(1)
		if err != nil {
			t.Fatal(err)
		}
		if seed {
			e.PutBytes(make([]byte, 32))
		}

		out := make([]byte, n)
		err = e.GetBytes(out)
		if !e.IsSeeded() && n > 0 {
			assert.ErrorIs(t, err, ErrNotSeeded)
			return
		}
		assert.NoError(t, err)
	})
}
