package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedRunIDGenerator_ReturnsSameID(t *testing.T) {
	gen := NewFixedRunIDGenerator("run-123")

	assert.Equal(t, "run-123", gen.Generate())
	assert.Equal(t, "run-123", gen.Generate())
}

func TestFixedRunIDGenerator_EmptyDefault(t *testing.T) {
	gen := NewFixedRunIDGenerator("")
	assert.Equal(t, DefaultRunID, gen.Generate())
}

func TestNewSeededRand_Reproducible(t *testing.T) {
	r1 := NewSeededRand(42)
	r2 := NewSeededRand(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, r1.Uint64(), r2.Uint64())
	}
}

func TestNewSeededRand_SeedsDiffer(t *testing.T) {
	a := NewSeededRand(1).Uint64()
	b := NewSeededRand(2).Uint64()
	assert.NotEqual(t, a, b)
}
