package openaddressing

import (
	"fmt"
	"github.com/gostonefire/gemindex/crt"
	"github.com/gostonefire/gemindex/gem"
	"github.com/gostonefire/gemindex/hashfunc"
	"github.com/gostonefire/gemindex/internal/hash"
	"github.com/gostonefire/gemindex/internal/model"
	"github.com/gostonefire/gemindex/internal/utils"
	"github.com/npillmayer/schuko/tracing"
)

// OATable - Represents an in-memory implementation of the Open Addressing Collision Resolution Technique using
// linear probing. It holds a fixed size array of slots where each slot holds at most one gem. In case of a collision,
// it probes through the table looking for an empty slot. The table is rehashed into a larger prime capacity before
// an insertion would bring the load factor to MaxLoadFactor, so it never runs full.
//
// A table never deletes records and never checks for duplicate keys. A duplicate is stored in a slot further along
// the probe sequence and is shadowed by the first record with the same key.
type OATable struct {
	name              string
	field             gem.Field
	placement         crt.Placement
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
	slots             []gem.Gem
	capacity          int64
	nOccupied         int64
	collisionProbes   int64
	resizes           int64
}

// NewOATable - Returns a pointer to a new instance of an Open Addressing table.
//   - tableConf is a model.TableConf struct providing configuration parameters affecting table layout
//
// It returns:
//   - oaTable which is a pointer to the created instance
//   - err which is of type crt.InvalidCapacity if the initial capacity is not positive, or a standard error
func NewOATable(tableConf model.TableConf) (oaTable *OATable, err error) {
	if tableConf.InitialCapacity <= 0 {
		err = crt.InvalidCapacity{}
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if tableConf.HashAlgorithm == nil {
		tableConf.HashAlgorithm = hash.NewLinearProbingHashAlgorithm(tableConf.InitialCapacity)
		internalAlg = true
	} else {
		tableConf.HashAlgorithm.SetTableSize(tableConf.InitialCapacity)
	}

	capacity := tableConf.HashAlgorithm.GetTableSize()
	if capacity < tableConf.InitialCapacity {
		err = fmt.Errorf("hash algorithm table size %d is lower than requested capacity %d", capacity, tableConf.InitialCapacity)
		return
	}

	oaTable = &OATable{
		name:              tableConf.Name,
		field:             tableConf.Field,
		placement:         tableConf.Placement,
		hashAlgorithm:     tableConf.HashAlgorithm,
		internalAlgorithm: internalAlg,
		slots:             make([]gem.Gem, capacity),
		capacity:          capacity,
	}

	return
}

// Insert - Adds a copy of the gem to the table, rehashing first if the insertion would bring the load factor to
// or above MaxLoadFactor. No check for an existing record with the same key is made.
//   - record is the gem to add, it is stored as occupied regardless of its Occupied flag
//
// It returns:
//   - err is of type crt.TableFull if no free slot was found within one full probe cycle, which means an
//     invariant has been broken, or a standard error if the rehash failed
func (Q *OATable) Insert(record gem.Gem) (err error) {
	if float64(Q.nOccupied+1)/float64(Q.capacity) >= MaxLoadFactor {
		err = Q.rehash()
		if err != nil {
			err = fmt.Errorf("error while rehashing table %s: %w", Q.name, err)
			tracer().Errorf("%s", err)
			return
		}
	}

	slot, probes, err := Q.probingForSet(Q.slots, Q.placementKey(record))
	Q.collisionProbes += probes
	if err != nil {
		tracer().Errorf("table %s: no free slot for id %d among %d slots: %s", Q.name, record.ID, Q.capacity, err)
		return
	}

	record.Occupied = true
	Q.slots[slot] = record
	Q.nOccupied++

	return
}

// Get - Gets the first record along the probe sequence of the given identifier.
//   - id is the identifier to look for
//
// It returns:
//   - record is a copy of the matching gem if found
//   - steps is the number of slots visited, the home slot included
//   - err is of type crt.NoRecordFound if there was no match, or crt.ProbingAlgorithm if the table is not
//     positioned by identifier
func (Q *OATable) Get(id int64) (record gem.Gem, steps int64, err error) {
	slot, steps, err := Q.find(gem.ID(id))
	if err != nil {
		return
	}

	record = Q.slots[slot]

	return
}

// UpdateColor - Sets a new color, and by that a new intensity, on the first record along the probe sequence of
// the given identifier. Only this table's copy of the record is changed.
//   - id is the identifier of the record to update
//   - color is the new color on the form #RRGGBB, a malformed color gives intensity 0
//
// It returns:
//   - steps is the number of slots visited while looking for the record
//   - err is of type crt.NoRecordFound if there was no match, or crt.ProbingAlgorithm if the table is not
//     positioned by identifier
func (Q *OATable) UpdateColor(id int64, color string) (steps int64, err error) {
	slot, steps, err := Q.find(gem.ID(id))
	if err != nil {
		return
	}

	Q.slots[slot].SetColor(color)

	return
}

// Scan - Walks through every slot of the table, in slot order, and collects the occupied ones whose field
// matches value. It does not depend on how records are positioned, hence it is valid for every table.
//   - value is the attribute to match, it may refer to any field
//
// It returns:
//   - records is a slice of copies of the matching gems, in slot order
//   - steps is the number of slots visited, which is always the capacity
func (Q *OATable) Scan(value gem.Attribute) (records []gem.Gem, steps int64) {
	records = make([]gem.Gem, 0)
	for i := int64(0); i < Q.capacity; i++ {
		steps++
		if value.Matches(Q.slots[i]) {
			records = append(records, Q.slots[i])
		}
	}

	return
}

// Probe - Collects every record matching value along the probe sequence from the home slot of value up to the
// first empty slot. This is only valid when the table positions records by the hash of value.Field.
//   - value is the attribute to match
//
// It returns:
//   - records is a slice of copies of the matching gems, in probe order
//   - steps is the number of slots visited, the home slot included
//   - err is of type crt.ProbingAlgorithm if the table is positioned by another field
func (Q *OATable) Probe(value gem.Attribute) (records []gem.Gem, steps int64, err error) {
	if !Q.positionedBy(value.Field) {
		err = fmt.Errorf("table %s is positioned by %s, not %s: %w", Q.name, Q.placementField(), value.Field, crt.ProbingAlgorithm{})
		return
	}

	records = make([]gem.Gem, 0)
	hf1Value := Q.hashAlgorithm.HashFunc1(value)
	for i := int64(0); i < Q.capacity; i++ {
		var probe int64
		probe, err = Q.probeIteration(hf1Value, i)
		if err != nil {
			return
		}

		steps++
		if !Q.slots[probe].Occupied {
			return
		}
		if value.Matches(Q.slots[probe]) {
			records = append(records, Q.slots[probe])
		}
	}

	return
}

// Occupied - Returns up to limit occupied slots in slot order, a limit of zero or lower returns all of them
func (Q *OATable) Occupied(limit int) (slots []model.Slot) {
	slots = make([]model.Slot, 0)
	for i := int64(0); i < Q.capacity; i++ {
		if limit > 0 && len(slots) >= limit {
			break
		}
		if Q.slots[i].Occupied {
			slots = append(slots, model.Slot{Index: i, Gem: Q.slots[i]})
		}
	}

	return
}

// Stat - Returns statistics on the table usage
func (Q *OATable) Stat() (tableStat model.TableStat) {
	tableStat = model.TableStat{
		Name:              Q.name,
		Records:           Q.nOccupied,
		Capacity:          Q.capacity,
		LoadFactorPercent: utils.Percent(Q.nOccupied, Q.capacity),
		CollisionProbes:   Q.collisionProbes,
		FreeSlots:         Q.capacity - Q.nOccupied,
		Resizes:           Q.resizes,
	}

	return
}

// Name - Returns the table name
func (Q *OATable) Name() string {
	return Q.name
}

// Field - Returns the field the table is queried by
func (Q *OATable) Field() gem.Field {
	return Q.field
}

// Capacity - Returns the current number of slots
func (Q *OATable) Capacity() int64 {
	return Q.capacity
}

// Len - Returns the number of occupied slots
func (Q *OATable) Len() int64 {
	return Q.nOccupied
}

// InternalAlgorithm - Returns true if the table uses the internal linear probing hash algorithm
func (Q *OATable) InternalAlgorithm() bool {
	return Q.internalAlgorithm
}

// tracer writes to trace with key 'gemindex'
func tracer() tracing.Trace {
	return tracing.Select("gemindex")
}
