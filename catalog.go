package gemindex

import (
	"errors"
	"fmt"
	"github.com/gostonefire/gemindex/crt"
	"github.com/gostonefire/gemindex/gem"
	"github.com/gostonefire/gemindex/hashfunc"
	"github.com/gostonefire/gemindex/internal/model"
	"github.com/gostonefire/gemindex/internal/storage/binarysearch"
	"github.com/gostonefire/gemindex/internal/storage/btreeindex"
	"github.com/gostonefire/gemindex/internal/storage/openaddressing"
	"io"
	"time"
)

// PairSource - Interface for anything producing (id, color) pairs to ingest, such as a line delimited JSON reader.
// Next returns io.EOF when there are no more pairs.
type PairSource interface {
	Next() (id int64, color string, err error)
}

// CatalogConf - Is a struct used in the call to NewCatalog holding configuration for the tables and snapshots.
//   - InitialCapacity is the requested number of slots in each hash table, it must be positive
//   - Placement decides whether the color and intensity tables position records by identifier or by their own field
//   - BTreeDegree is the degree of the B-tree snapshot, a value lower than 2 gives a default
//   - HashAlgorithm is an optional factory giving one custom hash algorithm per table, nil gives the internal
type CatalogConf struct {
	InitialCapacity int64
	Placement       crt.Placement
	BTreeDegree     int
	HashAlgorithm   func() hashfunc.HashAlgorithm
}

// TableStat - Statistics on the usage of one hash table
//   - Name is one of "ids", "colors" or "intensities"
//   - Records is the number of occupied slots
//   - Capacity is the total number of slots
//   - LoadFactorPercent is Records / Capacity * 100
//   - CollisionProbes is the number of probe steps since creation or the last rehash
//   - FreeSlots is Capacity - Records
//   - Resizes is the number of rehashes so far
type TableStat struct {
	Name              string
	Records           int64
	Capacity          int64
	LoadFactorPercent float64
	CollisionProbes   int64
	FreeSlots         int64
	Resizes           int64
}

// Slot - One occupied slot of the identifier table with its position
type Slot struct {
	Index int64
	Gem   gem.Gem
}

// Catalog - Owns one hash table per indexed field, all holding their own copies of the same gems, plus a sorted
// snapshot and a B-tree snapshot of the gems for comparison. Updates go to the identifier table only and are
// never propagated to the other tables or to the snapshots.
type Catalog struct {
	ids         *openaddressing.OATable
	colors      *openaddressing.OATable
	intensities *openaddressing.OATable
	records     []gem.Gem
	sorted      *binarysearch.Index
	tree        *btreeindex.Index
	placement   crt.Placement
	btreeDegree int
	now         func() time.Time
}

// NewCatalog - Returns a new, empty catalog.
//   - catalogConf is a CatalogConf struct with table and snapshot configuration
//
// It returns:
//   - catalog is a pointer to the created Catalog
//   - err is of type crt.InvalidCapacity if the initial capacity is not positive, or a standard error
func NewCatalog(catalogConf CatalogConf) (catalog *Catalog, err error) {
	if catalogConf.InitialCapacity <= 0 {
		err = crt.InvalidCapacity{}
		return
	}

	catalog = &Catalog{
		placement:   catalogConf.Placement,
		btreeDegree: catalogConf.BTreeDegree,
		now:         time.Now,
	}

	tables := []struct {
		table **openaddressing.OATable
		name  string
		field gem.Field
	}{
		{table: &catalog.ids, name: "ids", field: gem.FieldID},
		{table: &catalog.colors, name: "colors", field: gem.FieldColor},
		{table: &catalog.intensities, name: "intensities", field: gem.FieldIntensity},
	}

	for _, t := range tables {
		tableConf := model.TableConf{
			Name:            t.name,
			InitialCapacity: catalogConf.InitialCapacity,
			Field:           t.field,
			Placement:       catalogConf.Placement,
		}
		if catalogConf.HashAlgorithm != nil {
			tableConf.HashAlgorithm = catalogConf.HashAlgorithm()
		}

		*t.table, err = openaddressing.NewOATable(tableConf)
		if err != nil {
			catalog = nil
			err = fmt.Errorf("error while creating %s table: %w", t.name, err)
			return
		}
	}

	catalog.Snapshot()

	return
}

// Add - Creates a gem from id and color, deriving its intensity, and inserts a copy into every table. The gem is
// also kept for the next Snapshot. Duplicate identifiers are accepted.
//
// Tables are filled in order ids, colors, intensities and nothing is rolled back. If an insert fails the tables
// before it keep the gem while the later tables and the snapshot source do not, so the identifier table can run
// ahead of its siblings. Inserts only fail when a table invariant is broken (crt.TableFull, crt.ProbingAlgorithm or
// a failed rehash), and Ingest stops at the first such error, which the gemcodex command treats as fatal.
func (C *Catalog) Add(id int64, color string) (err error) {
	record := gem.New(id, color)

	for _, table := range C.tables() {
		err = table.Insert(record)
		if err != nil {
			err = fmt.Errorf("error while inserting id %d into %s table: %w", id, table.Name(), err)
			return
		}
	}

	C.records = append(C.records, record)

	return
}

// Ingest - Adds every pair from source and then rebuilds the snapshots.
//
// It returns:
//   - n is the number of gems added
//   - err is any error from the source other than io.EOF, or from inserting into a table
func (C *Catalog) Ingest(source PairSource) (n int, err error) {
	for {
		var id int64
		var color string
		id, color, err = source.Next()
		if errors.Is(err, io.EOF) {
			err = nil
			break
		}
		if err != nil {
			err = fmt.Errorf("error while reading gems: %w", err)
			break
		}

		err = C.Add(id, color)
		if err != nil {
			break
		}
		n++
	}

	C.Snapshot()
	algorithm := "custom"
	if C.ids.InternalAlgorithm() {
		algorithm = "linear probing"
	}
	tracer().Infof("ingested %d gems into %d slots per field using %s", n, C.ids.Capacity(), algorithm)

	return
}

// Snapshot - Rebuilds the sorted and the B-tree snapshots from the gems as they were added. Color updates made
// after the gems were added are not part of the snapshots.
func (C *Catalog) Snapshot() {
	C.sorted = binarysearch.NewIndex(C.records)
	C.tree = btreeindex.NewIndex(C.records, C.btreeDegree)
}

// Len - Returns the number of gems added
func (C *Catalog) Len() int {
	return len(C.records)
}

// Placement - Returns how the color and intensity tables position their records
func (C *Catalog) Placement() crt.Placement {
	return C.placement
}

// Stats - Returns statistics for the identifier, color and intensity tables, in that order
func (C *Catalog) Stats() (stats []TableStat) {
	for _, table := range C.tables() {
		stats = append(stats, toTableStat(table.Stat()))
	}

	return
}

// Slots - Returns up to limit occupied slots of the identifier table in slot order, zero or lower gives all
func (C *Catalog) Slots(limit int) (slots []Slot) {
	slots = make([]Slot, 0)
	for _, s := range C.ids.Occupied(limit) {
		slots = append(slots, Slot{Index: s.Index, Gem: s.Gem})
	}

	return
}

// tables - Returns the identifier, color and intensity tables
func (C *Catalog) tables() []*openaddressing.OATable {
	return []*openaddressing.OATable{C.ids, C.colors, C.intensities}
}

// toTableStat - Converts internal table statistics to the exported form
func toTableStat(s model.TableStat) TableStat {
	return TableStat{
		Name:              s.Name,
		Records:           s.Records,
		Capacity:          s.Capacity,
		LoadFactorPercent: s.LoadFactorPercent,
		CollisionProbes:   s.CollisionProbes,
		FreeSlots:         s.FreeSlots,
		Resizes:           s.Resizes,
	}
}
