package hashfunc

import "github.com/gostonefire/gemindex/gem"

// HashAlgorithm - Interface that permits a user of the gem tables to supply a custom slot selection
// algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when a table is created and every time the table is rehashed. The implementation may round the
	// size up (for instance to a prime), and must then report the rounded value from GetTableSize.
	//   - tableSize is the requested number of slots
	SetTableSize(tableSize int64)

	// GetTableSize - Returns the table size the implemented hash functions are supporting
	GetTableSize() int64

	// HashFunc1 - Given an attribute it generates a home slot between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	HashFunc1(key gem.Attribute) int64

	// ProbeIteration - Returns the slot to visit in a given iteration of a probe sequence that started at the
	// home slot hf1Value. Iteration 0 must return the home slot itself.
	ProbeIteration(hf1Value, iteration int64) int64
}
