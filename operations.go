package gemindex

import (
	"errors"
	"fmt"
	"github.com/gostonefire/gemindex/crt"
	"github.com/gostonefire/gemindex/gem"
	"io"
	"time"
)

// Method names reported in results
const (
	MethodHash   = "hash"
	MethodBinary = "binary"
	MethodBTree  = "btree"
	MethodScan   = "scan"
	MethodProbe  = "probe"
)

// LookupResult - Outcome of one identifier lookup
//   - Method is MethodHash, MethodBinary or MethodBTree
//   - Record is the gem found, only valid if Found is true
//   - Found tells whether a gem with the identifier was found
//   - Steps is the number of slots visited, midpoint comparisons or key comparisons depending on Method
//   - Elapsed is the wall clock time of the lookup
type LookupResult struct {
	Method  string
	Record  gem.Gem
	Found   bool
	Steps   int64
	Elapsed time.Duration
}

// IDLookup - Outcome of looking up one identifier with every strategy
type IDLookup struct {
	ID     int64
	Hash   LookupResult
	Binary LookupResult
	BTree  LookupResult
}

// ScanResult - Outcome of searching for every gem with a given attribute value
//   - Method is MethodScan for a full walk or MethodProbe for a probe sequence walk
//   - Records are the matching gems
//   - Steps is the number of slots or records visited
//   - Elapsed is the wall clock time of the search
type ScanResult struct {
	Method  string
	Records []gem.Gem
	Steps   int64
	Elapsed time.Duration
}

// ColorSearch - Outcome of searching for a color in the color table and in the sorted snapshot
type ColorSearch struct {
	Color  string
	Hash   ScanResult
	Binary ScanResult
}

// LookupByID - Looks up an identifier in the identifier table, with binary search in the sorted snapshot and in
// the B-tree snapshot. An identifier that is not found is reported through the Found flags, not as an error.
//   - id is the identifier to look for
//
// It returns:
//   - lookup holds one LookupResult per strategy
//   - err is a standard error if any of the lookups failed for another reason than not finding the identifier
func (C *Catalog) LookupByID(id int64) (lookup IDLookup, err error) {
	lookup.ID = id

	lookup.Hash, err = C.lookup(MethodHash, func() (gem.Gem, int64, error) { return C.ids.Get(id) })
	if err != nil {
		return
	}

	lookup.Binary, err = C.lookup(MethodBinary, func() (gem.Gem, int64, error) { return C.sorted.Get(id) })
	if err != nil {
		return
	}

	lookup.BTree, err = C.lookup(MethodBTree, func() (gem.Gem, int64, error) { return C.tree.Get(id) })

	return
}

// ScanByColor - Searches the color table and the sorted snapshot for every gem with the given color.
// With crt.PlaceByField the color table is searched along the probe sequence of the color, otherwise every slot
// is visited.
func (C *Catalog) ScanByColor(color string) (search ColorSearch, err error) {
	search.Color = color

	search.Hash, err = C.search(C.colors.Field(), gem.Color(color))
	if err != nil {
		return
	}

	start := C.now()
	records, steps := C.sorted.ScanColor(color)
	search.Binary = ScanResult{Method: MethodScan, Records: records, Steps: steps, Elapsed: C.now().Sub(start)}

	return
}

// ScanByIntensity - Searches the intensity table for every gem with the given intensity.
// With crt.PlaceByField the table is searched along the probe sequence of the intensity, otherwise every slot
// is visited.
func (C *Catalog) ScanByIntensity(intensity int64) (result ScanResult, err error) {
	return C.search(C.intensities.Field(), gem.Intensity(intensity))
}

// UpdateColor - Sets a new color on the gem with the given identifier in the identifier table. The color and
// intensity tables and the snapshots keep the old color.
//
// It returns:
//   - steps is the number of slots visited to find the gem
//   - err is of type crt.NoRecordFound if the identifier is not in the table
func (C *Catalog) UpdateColor(id int64, color string) (steps int64, err error) {
	return C.ids.UpdateColor(id, color)
}

// ApplyLightning - Gives the gem with the given identifier a random color read from rnd.
//
// It returns:
//   - record is the gem as it is after the update
//   - steps is the number of slots visited to find the gem
//   - err is of type crt.NoRecordFound if the identifier is not in the table, or a standard error
func (C *Catalog) ApplyLightning(id int64, rnd io.Reader) (record gem.Gem, steps int64, err error) {
	color, err := gem.RandomColor(rnd)
	if err != nil {
		return
	}

	steps, err = C.ids.UpdateColor(id, color)
	if err != nil {
		return
	}

	record, _, err = C.ids.Get(id)

	return
}

// lookup - Runs and times one identifier lookup, turning crt.NoRecordFound into Found = false
func (C *Catalog) lookup(method string, get func() (gem.Gem, int64, error)) (result LookupResult, err error) {
	start := C.now()
	record, steps, err := get()
	result = LookupResult{Method: method, Record: record, Steps: steps, Elapsed: C.now().Sub(start)}

	if errors.Is(err, crt.NoRecordFound{}) {
		err = nil
		return
	}
	if err != nil {
		err = fmt.Errorf("error while looking up id with %s: %w", method, err)
		return
	}

	result.Found = true

	return
}

// search - Runs and times a search for value in the table queried by field
func (C *Catalog) search(field gem.Field, value gem.Attribute) (result ScanResult, err error) {
	table := C.tables()[field]

	start := C.now()
	if C.placement == crt.PlaceByField {
		result.Method = MethodProbe
		result.Records, result.Steps, err = table.Probe(value)
	} else {
		result.Method = MethodScan
		result.Records, result.Steps = table.Scan(value)
	}
	result.Elapsed = C.now().Sub(start)

	if err != nil {
		err = fmt.Errorf("error while searching %s table: %w", table.Name(), err)
	}

	return
}
