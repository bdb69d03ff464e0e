//go:build unit

package hash

import (
	"github.com/gostonefire/gemindex/gem"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestDoubleHashAlgorithm_GetTableSize(t *testing.T) {
	t.Run("rounds table size up to nearest prime", func(t *testing.T) {
		// Prepare
		h := NewDoubleHashAlgorithm(10)

		// Execute
		tableSize := h.GetTableSize()

		// Check
		assert.Equal(t, int64(11), tableSize, "correct tableSize value")
	})
}

func TestDoubleHashAlgorithm_HashFunc1(t *testing.T) {
	t.Run("creates a valid home slot for every field", func(t *testing.T) {
		// Prepare
		h := NewDoubleHashAlgorithm(211)
		keys := []gem.Attribute{gem.ID(0), gem.ID(-42), gem.ID(123456789), gem.Color("#FF0000"), gem.Intensity(254)}

		for _, key := range keys {
			// Execute
			slot := h.HashFunc1(key)

			// Check
			assert.GreaterOrEqual(t, slot, int64(0), "slot not below zero")
			assert.Less(t, slot, int64(211), "slot below table size")
			assert.Equal(t, slot, h.HashFunc1(key), "same key gives same slot")
		}
	})

	t.Run("hashes numbers regardless of field", func(t *testing.T) {
		// Prepare
		h := NewDoubleHashAlgorithm(211)

		// Execute & Check
		assert.Equal(t, h.HashFunc1(gem.ID(76)), h.HashFunc1(gem.Intensity(76)), "numbers hashed the same regardless of field")
	})
}

func TestDoubleHashAlgorithm_ProbeIteration(t *testing.T) {
	t.Run("visits every slot once", func(t *testing.T) {
		for _, size := range []int64{2, 3, 7, 211} {
			// Prepare
			h := NewDoubleHashAlgorithm(size)
			tableSize := h.GetTableSize()

			for home := int64(0); home < tableSize; home++ {
				visited := make(map[int64]bool)

				// Execute
				for i := int64(0); i < tableSize; i++ {
					visited[h.ProbeIteration(home, i)] = true
				}

				// Check
				assert.Equal(t, home, h.ProbeIteration(home, 0), "first iteration is home slot")
				assert.Len(t, visited, int(tableSize), "every slot visited")
			}
		}
	})
}
