package hash

import (
	"github.com/gostonefire/gemindex/gem"
	"github.com/gostonefire/gemindex/internal/utils"
)

// LinearProbingHashAlgorithm - The internally used slot selection algorithm. It hashes each field of a gem in
// its own way and steps one slot at a time when probing:
//   - identifier: |id| mod tableSize
//   - color: sum of the character codes mod tableSize
//   - intensity: intensity mod tableSize
//
// The table size is always rounded up to the nearest prime.
type LinearProbingHashAlgorithm struct {
	tableSize int64
}

// NewLinearProbingHashAlgorithm - Returns a pointer to a new LinearProbingHashAlgorithm instance
// with the table size rounded up to the nearest prime
func NewLinearProbingHashAlgorithm(tableSize int64) *LinearProbingHashAlgorithm {
	ha := &LinearProbingHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to the nearest prime not lower than the requested size.
func (L *LinearProbingHashAlgorithm) SetTableSize(tableSize int64) {
	L.tableSize = utils.NextPrime(tableSize)
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (L *LinearProbingHashAlgorithm) GetTableSize() int64 {
	return L.tableSize
}

// HashFunc1 - Given an attribute it generates a home slot between 0 and table size - 1
func (L *LinearProbingHashAlgorithm) HashFunc1(key gem.Attribute) int64 {
	switch key.Field {
	case gem.FieldColor:
		return L.HashColor(key.Text)
	case gem.FieldIntensity:
		return L.HashIntensity(key.Number)
	default:
		return L.HashID(key.Number)
	}
}

// HashID - Returns the home slot for an identifier
func (L *LinearProbingHashAlgorithm) HashID(id int64) int64 {
	if id < 0 {
		id = -id
	}
	return L.normalize(id % L.tableSize)
}

// HashColor - Returns the home slot for a color, based on the sum of its character codes
func (L *LinearProbingHashAlgorithm) HashColor(color string) int64 {
	var sum int64
	for i := 0; i < len(color); i++ {
		sum += int64(color[i])
	}
	return sum % L.tableSize
}

// HashIntensity - Returns the home slot for an intensity value
func (L *LinearProbingHashAlgorithm) HashIntensity(intensity int64) int64 {
	return L.normalize(intensity % L.tableSize)
}

// ProbeIteration - Implements Linear Probing
func (L *LinearProbingHashAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 {
	return (hf1Value + iteration%L.tableSize) % L.tableSize
}

// normalize - Moves a remainder into 0 -> table size - 1, the remainder of the most negative
// identifier stays negative even after taking its absolute value
func (L *LinearProbingHashAlgorithm) normalize(h int64) int64 {
	if h < 0 {
		h += L.tableSize
	}
	return h
}
