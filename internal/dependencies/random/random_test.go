package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCryptoRandomIntnInRange(t *testing.T) {
	r := New()
	for range 200 {
		n := r.Intn(10)
		require.GreaterOrEqual(t, n, 0)
		require.Less(t, n, 10)
	}
	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, 0, r.Intn(-3))
}

func TestSeededRandomIsDeterministic(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for range 50 {
		assert.Equal(t, a.Intn(100), b.Intn(100))
		assert.Equal(t, a.Bool(), b.Bool())
	}
}

func TestSeededRandomProducesBothBools(t *testing.T) {
	r := NewSeeded(7)
	seen := map[bool]bool{}
	for range 100 {
		seen[r.Bool()] = true
	}
	assert.True(t, seen[true])
	assert.True(t, seen[false])
}

func TestSeededRandomIntnInRange(t *testing.T) {
	r := NewSeeded(99)
	for n := 1; n <= 10; n++ {
		for range 20 {
			v := r.Intn(n)
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, n)
		}
	}
	assert.Equal(t, 0, r.Intn(0))
}
