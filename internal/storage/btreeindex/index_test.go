//go:build unit

package btreeindex

import (
	"errors"
	"github.com/gostonefire/gemindex/crt"
	"github.com/gostonefire/gemindex/gem"
	"github.com/stretchr/testify/assert"
	"math/rand"
	"testing"
)

func TestNewIndex(t *testing.T) {
	t.Run("keeps every occupied record", func(t *testing.T) {
		// Prepare
		records := []gem.Gem{gem.New(9, "#FF0000"), {}, gem.New(2, "#00FF00"), gem.New(9, "#0000FF")}

		// Execute
		index := NewIndex(records, 0)

		// Check
		assert.Equal(t, 3, index.Len(), "duplicates kept and empty records left out")

		ids := make([]int64, 0)
		index.Ascend(func(record gem.Gem) bool {
			ids = append(ids, record.ID)
			return true
		})
		assert.Equal(t, []int64{2, 9, 9}, ids, "ascending identifier order")
	})
}

func TestIndex_Get(t *testing.T) {
	t.Run("finds every record", func(t *testing.T) {
		// Prepare
		records := make([]gem.Gem, 0)
		for _, i := range rand.Perm(2000) {
			records = append(records, gem.New(int64(i*3), "#FFFFFF"))
		}
		index := NewIndex(records, 4)

		for i := int64(0); i < 2000; i++ {
			// Execute
			r, steps, err := index.Get(i * 3)

			// Check
			assert.NoErrorf(t, err, "gets record %d", i*3)
			assert.Equal(t, i*3, r.ID, "correct record")
			assert.Greater(t, steps, int64(0), "comparisons counted")
		}
	})

	t.Run("returns the first inserted duplicate", func(t *testing.T) {
		// Prepare
		index := NewIndex([]gem.Gem{gem.New(5, "#FF0000"), gem.New(5, "#000000")}, 0)

		// Execute
		r, _, err := index.Get(5)

		// Check
		assert.NoError(t, err, "gets record")
		assert.Equal(t, "#FF0000", r.Color, "first inserted record")
	})

	t.Run("reports absent records", func(t *testing.T) {
		// Prepare
		index := NewIndex([]gem.Gem{gem.New(2, "#FFFFFF"), gem.New(4, "#FFFFFF")}, 0)

		for _, id := range []int64{1, 3, 5} {
			// Execute
			_, _, err := index.Get(id)

			// Check
			assert.Truef(t, errors.Is(err, crt.NoRecordFound{}), "no record found for %d", id)
		}
	})

	t.Run("handles empty snapshot", func(t *testing.T) {
		// Prepare
		index := NewIndex(nil, 0)

		// Execute
		_, steps, err := index.Get(1)

		// Check
		assert.True(t, errors.Is(err, crt.NoRecordFound{}), "no record found")
		assert.Zero(t, steps, "no comparisons")
	})
}
