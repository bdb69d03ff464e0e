package btreeindex

import (
	"github.com/google/btree"
	"github.com/gostonefire/gemindex/crt"
	"github.com/gostonefire/gemindex/gem"
	"math"
)

// DefaultDegree - B-tree degree used when a degree lower than 2 is given
const DefaultDegree int = 32

// entry - One record in the tree. The sequence number keeps records sharing an identifier apart.
type entry struct {
	record gem.Gem
	seq    int64
}

// Index - A snapshot of gems held in a B-tree ordered by identifier. It is an ordered baseline to compare the
// hash tables and the binary search against, and counts every key comparison the tree makes.
type Index struct {
	tree        *btree.BTreeG[entry]
	comparisons int64
}

// NewIndex - Returns a pointer to a new Index holding a copy of records. Empty slots are left out.
//   - records is the set to build from
//   - degree is the B-tree degree, DefaultDegree is used if it is lower than 2
func NewIndex(records []gem.Gem, degree int) *Index {
	if degree <= 1 {
		degree = DefaultDegree
	}

	idx := &Index{}
	idx.tree = btree.NewG[entry](degree, func(a, b entry) bool {
		idx.comparisons++
		if a.record.ID != b.record.ID {
			return a.record.ID < b.record.ID
		}
		return a.seq < b.seq
	})

	for i, r := range records {
		if r.Occupied {
			idx.tree.ReplaceOrInsert(entry{record: r, seq: int64(i)})
		}
	}

	return idx
}

// Get - Looks up the first record, in insertion order, with the given identifier.
//   - id is the identifier to look for
//
// It returns:
//   - record is a copy of the matching gem if found
//   - steps is the number of key comparisons the tree made
//   - err is of type crt.NoRecordFound if there was no match
func (I *Index) Get(id int64) (record gem.Gem, steps int64, err error) {
	I.comparisons = 0

	var found bool
	pivot := entry{record: gem.Gem{ID: id}, seq: math.MinInt64}
	I.tree.AscendGreaterOrEqual(pivot, func(item entry) bool {
		if item.record.ID == id {
			record = item.record
			found = true
		}
		return false
	})

	steps = I.comparisons
	if !found {
		err = crt.NoRecordFound{}
	}

	return
}

// Ascend - Calls fn for every record in identifier order until fn returns false
func (I *Index) Ascend(fn func(record gem.Gem) bool) {
	I.tree.Ascend(func(item entry) bool {
		return fn(item.record)
	})
}

// Len - Returns the number of records in the snapshot
func (I *Index) Len() int {
	return I.tree.Len()
}
