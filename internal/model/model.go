package model

import (
	"github.com/gostonefire/gemindex/crt"
	"github.com/gostonefire/gemindex/gem"
	"github.com/gostonefire/gemindex/hashfunc"
)

// TableConf - Is a struct to be passed in the call to NewOATable and contains configuration that affects
// table layout and processing.
//   - Name is used in traces and statistics to tell tables apart
//   - InitialCapacity is the requested number of slots, it is rounded up by the hash algorithm
//   - Field is the gem field that the table is queried by
//   - Placement decides whether records are positioned by identifier hash or by hash of Field
//   - HashAlgorithm is the hash function(s) to use, nil gives the internal linear probing algorithm
type TableConf struct {
	Name            string
	InitialCapacity int64
	Field           gem.Field
	Placement       crt.Placement
	HashAlgorithm   hashfunc.HashAlgorithm
}

// TableStat - Statistics on the usage of a table
//   - Name is the table name given in TableConf
//   - Records is the number of occupied slots
//   - Capacity is the total number of slots
//   - LoadFactorPercent is Records / Capacity * 100
//   - CollisionProbes is the number of probe steps taken since creation or the last rehash
//   - FreeSlots is Capacity - Records
//   - Resizes is the number of times the table has been rehashed
type TableStat struct {
	Name              string
	Records           int64
	Capacity          int64
	LoadFactorPercent float64
	CollisionProbes   int64
	FreeSlots         int64
	Resizes           int64
}

// Slot - Represents one occupied slot together with its position in the table
type Slot struct {
	Index int64
	Gem   gem.Gem
}
