package hash

import (
	"encoding/binary"
	"github.com/gostonefire/gemindex/gem"
	"github.com/gostonefire/gemindex/internal/utils"
	"hash/crc32"
)

// DoubleHashAlgorithm - An alternative slot selection algorithm using crc32.ChecksumIEEE over the attribute value
// to get the home slot, and a second step size derived from the home slot when probing. Since the table size is
// always a prime and the step is between 1 and table size - 1, a probe sequence visits every slot exactly once.
type DoubleHashAlgorithm struct {
	tableSize int64
}

// NewDoubleHashAlgorithm - Returns a pointer to a new DoubleHashAlgorithm instance
func NewDoubleHashAlgorithm(tableSize int64) *DoubleHashAlgorithm {
	ha := &DoubleHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to its nearest higher prime number, which allows the algorithm to
// iterate over the entirety of the tables slots once and only once.
func (D *DoubleHashAlgorithm) SetTableSize(tableSize int64) {
	D.tableSize = utils.NextPrime(tableSize)
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (D *DoubleHashAlgorithm) GetTableSize() int64 {
	return D.tableSize
}

// HashFunc1 - Given an attribute it generates a home slot between 0 and table size - 1
func (D *DoubleHashAlgorithm) HashFunc1(key gem.Attribute) int64 {
	k := int64(crc32.ChecksumIEEE(attributeBytes(key)))
	return k % D.tableSize
}

// ProbeIteration - Returns the slot to visit in the given iteration, stepping from the home slot with a step size
// of 1 + hf1Value mod (table size - 1)
func (D *DoubleHashAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 {
	if D.tableSize < 3 {
		return (hf1Value + iteration) % D.tableSize
	}

	step := 1 + hf1Value%(D.tableSize-1)
	return (hf1Value + (iteration%D.tableSize)*step) % D.tableSize
}

// attributeBytes - Returns the bytes hashed for an attribute, numbers as 8 bytes big endian and colors as is
func attributeBytes(key gem.Attribute) []byte {
	if key.Field == gem.FieldColor {
		return []byte(key.Text)
	}

	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(key.Number))
	return b
}
