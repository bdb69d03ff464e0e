package binarysearch

import (
	"github.com/gostonefire/gemindex/crt"
	"github.com/gostonefire/gemindex/gem"
	"sort"
)

// Index - A snapshot of gems kept sorted ascending by identifier. It is built once and never follows later
// changes to the records it was built from.
type Index struct {
	records []gem.Gem
}

// NewIndex - Returns a pointer to a new Index holding a sorted copy of records. Empty slots are left out.
// Records sharing an identifier are all kept, in no particular order among themselves.
func NewIndex(records []gem.Gem) *Index {
	sorted := make([]gem.Gem, 0, len(records))
	for _, r := range records {
		if r.Occupied {
			sorted = append(sorted, r)
		}
	}

	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	return &Index{records: sorted}
}

// Get - Binary search for a record with the given identifier.
//   - id is the identifier to look for
//
// It returns:
//   - record is a copy of a matching gem if found
//   - steps is the number of midpoint comparisons made
//   - err is of type crt.NoRecordFound if there was no match
func (I *Index) Get(id int64) (record gem.Gem, steps int64, err error) {
	low, high := 0, len(I.records)-1

	for low <= high {
		steps++
		mid := low + (high-low)/2

		switch {
		case I.records[mid].ID == id:
			record = I.records[mid]
			return
		case I.records[mid].ID < id:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	err = crt.NoRecordFound{}
	return
}

// ScanColor - Walks through every record and collects those with the given color. The sort order gives
// nothing to go on here.
//
// It returns:
//   - records is a slice of copies of the matching gems, in identifier order
//   - steps is the number of records visited, which is always Len
func (I *Index) ScanColor(color string) (records []gem.Gem, steps int64) {
	records = make([]gem.Gem, 0)
	match := gem.Color(color)
	for _, r := range I.records {
		steps++
		if match.Matches(r) {
			records = append(records, r)
		}
	}

	return
}

// Len - Returns the number of records in the snapshot
func (I *Index) Len() int {
	return len(I.records)
}
