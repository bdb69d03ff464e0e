//go:build integration

package gemindex

import (
	"errors"
	"fmt"
	"github.com/gostonefire/gemindex/crt"
	"github.com/gostonefire/gemindex/gem"
	"github.com/gostonefire/gemindex/hashfunc"
	"github.com/gostonefire/gemindex/internal/hash"
	"github.com/gostonefire/gemindex/internal/utils"
	"github.com/stretchr/testify/assert"
	"io"
	"testing"
)

// slicePairSource - PairSource over fixed slices, optionally failing after the last pair
type slicePairSource struct {
	ids    []int64
	colors []string
	index  int
	err    error
}

func (S *slicePairSource) Next() (id int64, color string, err error) {
	if S.index >= len(S.ids) {
		if S.err != nil {
			return 0, "", S.err
		}
		return 0, "", io.EOF
	}
	id, color = S.ids[S.index], S.colors[S.index]
	S.index++
	return
}

func newPairSource(n int64) *slicePairSource {
	source := &slicePairSource{}
	for i := int64(1); i <= n; i++ {
		source.ids = append(source.ids, i)
		source.colors = append(source.colors, testColor(i))
	}
	return source
}

func testColor(i int64) string {
	return fmt.Sprintf("#%02X%02X%02X", (i*5)%256, (i*11)%256, (i*17)%256)
}

func TestNewCatalog(t *testing.T) {
	t.Run("creates empty catalog", func(t *testing.T) {
		// Execute
		catalog, err := NewCatalog(CatalogConf{InitialCapacity: 211})

		// Check
		assert.NoError(t, err, "creates catalog")
		assert.Zero(t, catalog.Len(), "no gems")
		assert.Equal(t, crt.PlaceByID, catalog.Placement(), "default placement")

		stats := catalog.Stats()
		assert.Len(t, stats, 3, "one stat per table")
		assert.Equal(t, []string{"ids", "colors", "intensities"}, []string{stats[0].Name, stats[1].Name, stats[2].Name}, "table names")
		for _, s := range stats {
			assert.Equal(t, int64(211), s.Capacity, "initial capacity")
			assert.Equal(t, int64(211), s.FreeSlots, "all slots free")
		}

		lookup, err := catalog.LookupByID(1)
		assert.NoError(t, err, "looks up in empty catalog")
		assert.False(t, lookup.Hash.Found || lookup.Binary.Found || lookup.BTree.Found, "nothing found")
	})

	t.Run("fails on non positive capacity", func(t *testing.T) {
		for _, capacity := range []int64{0, -3} {
			// Execute
			catalog, err := NewCatalog(CatalogConf{InitialCapacity: capacity})

			// Check
			assert.Nil(t, catalog, "no catalog")
			assert.Truef(t, errors.Is(err, crt.InvalidCapacity{}), "invalid capacity error for %d", capacity)
		}
	})

	t.Run("uses custom hash algorithms", func(t *testing.T) {
		// Prepare
		var created int
		factory := func() hashfunc.HashAlgorithm {
			created++
			return hash.NewLinearProbingHashAlgorithm(1)
		}

		// Execute
		catalog, err := NewCatalog(CatalogConf{InitialCapacity: 20, HashAlgorithm: factory})

		// Check
		assert.NoError(t, err, "creates catalog")
		assert.Equal(t, 3, created, "one algorithm per table")
		assert.Equal(t, int64(23), catalog.Stats()[0].Capacity, "custom algorithm sized table")
	})

	t.Run("finds every gem with double hashing", func(t *testing.T) {
		// Prepare
		factory := func() hashfunc.HashAlgorithm { return hash.NewDoubleHashAlgorithm(1) }
		catalog, err := NewCatalog(CatalogConf{InitialCapacity: 11, Placement: crt.PlaceByField, HashAlgorithm: factory})
		assert.NoError(t, err, "creates catalog")

		// Execute
		_, err = catalog.Ingest(newPairSource(500))

		// Check
		assert.NoError(t, err, "ingests pairs")
		for i := int64(1); i <= 500; i++ {
			lookup, err := catalog.LookupByID(i)
			assert.NoError(t, err, "looks up id")
			assert.Truef(t, lookup.Hash.Found, "finds id %d", i)
		}

		search, err := catalog.ScanByColor(testColor(7))
		assert.NoError(t, err, "searches color")
		assert.Equal(t, MethodProbe, search.Hash.Method, "probe search")
		assert.Equal(t, len(search.Binary.Records), len(search.Hash.Records), "probe finds same gems as snapshot scan")
	})
}

func TestCatalog_Ingest(t *testing.T) {
	t.Run("inserts every pair into every table", func(t *testing.T) {
		// Prepare
		catalog, err := NewCatalog(CatalogConf{InitialCapacity: 211})
		assert.NoError(t, err, "creates catalog")

		// Execute
		n, err := catalog.Ingest(newPairSource(148))

		// Check
		assert.NoError(t, err, "ingests pairs")
		assert.Equal(t, 148, n, "number of pairs")
		assert.Equal(t, 148, catalog.Len(), "every gem kept")
		for _, s := range catalog.Stats() {
			assert.Equalf(t, int64(148), s.Records, "records in %s table", s.Name)
			assert.Equalf(t, int64(431), s.Capacity, "%s table rehashed once", s.Name)
			assert.Equalf(t, int64(1), s.Resizes, "one resize of %s table", s.Name)
			assert.Equalf(t, int64(431-148), s.FreeSlots, "free slots of %s table", s.Name)
			assert.InDelta(t, utils.Percent(148, 431), s.LoadFactorPercent, 1e-9, "load factor")
		}
	})

	t.Run("stops on source error", func(t *testing.T) {
		// Prepare
		catalog, err := NewCatalog(CatalogConf{InitialCapacity: 11})
		assert.NoError(t, err, "creates catalog")
		source := newPairSource(3)
		source.err = fmt.Errorf("broken source")

		// Execute
		n, err := catalog.Ingest(source)

		// Check
		assert.Error(t, err, "source error returned")
		assert.Equal(t, 3, n, "pairs before error ingested")

		lookup, err := catalog.LookupByID(2)
		assert.NoError(t, err, "looks up id")
		assert.True(t, lookup.Binary.Found, "snapshot built from ingested pairs")
	})

	t.Run("stops when a table refuses a gem", func(t *testing.T) {
		// Prepare
		var created int
		factory := func() hashfunc.HashAlgorithm {
			created++
			if created == 2 {
				return &stuckHashAlgorithm{}
			}
			return hash.NewLinearProbingHashAlgorithm(1)
		}
		catalog, err := NewCatalog(CatalogConf{InitialCapacity: 11, HashAlgorithm: factory})
		assert.NoError(t, err, "creates catalog")

		// Execute
		n, err := catalog.Ingest(newPairSource(5))

		// Check
		assert.True(t, errors.Is(err, crt.TableFull{}), "table full error")
		assert.Equal(t, 1, n, "gems before the failure ingested")
		assert.Equal(t, 1, catalog.Len(), "failed gem not kept for snapshots")

		stats := catalog.Stats()
		assert.Equal(t, int64(2), stats[0].Records, "identifier table holds the failed gem")
		assert.Equal(t, int64(1), stats[1].Records, "color table stopped at the failure")
		assert.Equal(t, int64(1), stats[2].Records, "intensity table never reached")

		lookup, err := catalog.LookupByID(2)
		assert.NoError(t, err, "looks up id")
		assert.True(t, lookup.Hash.Found, "identifier table ahead of its siblings")
		assert.False(t, lookup.Binary.Found, "snapshot without the failed gem")
	})
}

func TestCatalog_Slots(t *testing.T) {
	t.Run("lists identifier table slots", func(t *testing.T) {
		// Prepare
		catalog, err := NewCatalog(CatalogConf{InitialCapacity: 211})
		assert.NoError(t, err, "creates catalog")
		_, err = catalog.Ingest(newPairSource(30))
		assert.NoError(t, err, "ingests pairs")

		// Execute
		limited := catalog.Slots(10)
		all := catalog.Slots(0)

		// Check
		assert.Len(t, limited, 10, "limited slots")
		assert.Len(t, all, 30, "all slots")
		for _, s := range limited {
			assert.Equal(t, s.Index, s.Gem.ID, "identifier in its home slot")
		}
	})
}

// stuckHashAlgorithm - Hash algorithm sending every key to slot 0 and never moving on
type stuckHashAlgorithm struct {
	tableSize int64
}

func (S *stuckHashAlgorithm) SetTableSize(tableSize int64)           { S.tableSize = utils.NextPrime(tableSize) }
func (S *stuckHashAlgorithm) GetTableSize() int64                    { return S.tableSize }
func (S *stuckHashAlgorithm) HashFunc1(_ gem.Attribute) int64        { return 0 }
func (S *stuckHashAlgorithm) ProbeIteration(hf1Value, _ int64) int64 { return hf1Value }
