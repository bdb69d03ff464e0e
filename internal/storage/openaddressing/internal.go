package openaddressing

import (
	"fmt"
	"github.com/gostonefire/gemindex/crt"
	"github.com/gostonefire/gemindex/gem"
)

// find - Is the Probing Collision Resolution Technique algorithm for getting a record.
// It returns the slot of the first occupied record matching key along the probe sequence of key.
func (Q *OATable) find(key gem.Attribute) (slot int64, steps int64, err error) {
	if !Q.positionedBy(key.Field) {
		err = fmt.Errorf("table %s is positioned by %s, not %s: %w", Q.name, Q.placementField(), key.Field, crt.ProbingAlgorithm{})
		return
	}

	hf1Value := Q.hashAlgorithm.HashFunc1(key)

	for i := int64(0); i < Q.capacity; i++ {
		slot, err = Q.probeIteration(hf1Value, i)
		if err != nil {
			return
		}

		steps++
		if !Q.slots[slot].Occupied {
			err = crt.NoRecordFound{}
			return
		}
		if key.Matches(Q.slots[slot]) {
			return
		}
	}

	// A full cycle without reaching an empty slot
	err = crt.NoRecordFound{}
	return
}

// probingForSet - Is the Probing Collision Resolution Technique algorithm for finding a free slot for a record.
// The slots are given explicitly so that the same algorithm serves a rehash into a new slot array.
// It returns the free slot and the number of occupied slots passed on the way.
func (Q *OATable) probingForSet(slots []gem.Gem, key gem.Attribute) (slot int64, probes int64, err error) {
	hf1Value := Q.hashAlgorithm.HashFunc1(key)
	capacity := int64(len(slots))

	for i := int64(0); i < capacity; i++ {
		slot, err = Q.probeIteration(hf1Value, i)
		if err != nil {
			return
		}

		if !slots[slot].Occupied {
			return
		}
		probes++
	}

	err = crt.TableFull{}
	return
}

// probeIteration - Returns the slot for a probe iteration, making sure the hash algorithm stays within the table
func (Q *OATable) probeIteration(hf1Value, iteration int64) (slot int64, err error) {
	slot = Q.hashAlgorithm.ProbeIteration(hf1Value, iteration)
	if slot < 0 || slot >= Q.hashAlgorithm.GetTableSize() {
		err = fmt.Errorf("probe %d outside table of %d slots: %w", slot, Q.hashAlgorithm.GetTableSize(), crt.ProbingAlgorithm{})
	}

	return
}

// rehash - Moves every record into a new slot array of capacity NextPrime(growthFactor * capacity), placing each
// record by its home slot under the new capacity. Record count and collision probes start over from zero.
// The table is left untouched if anything fails.
func (Q *OATable) rehash() (err error) {
	oldCapacity := Q.capacity

	Q.hashAlgorithm.SetTableSize(growthFactor * oldCapacity)
	newCapacity := Q.hashAlgorithm.GetTableSize()
	if newCapacity <= oldCapacity {
		Q.hashAlgorithm.SetTableSize(oldCapacity)
		err = fmt.Errorf("hash algorithm did not grow table beyond %d slots", oldCapacity)
		return
	}

	newSlots := make([]gem.Gem, newCapacity)
	var nOccupied, collisionProbes int64

	for _, record := range Q.slots {
		if !record.Occupied {
			continue
		}

		var slot, probes int64
		slot, probes, err = Q.probingForSet(newSlots, Q.placementKey(record))
		collisionProbes += probes
		if err != nil {
			Q.hashAlgorithm.SetTableSize(oldCapacity)
			return
		}

		newSlots[slot] = record
		nOccupied++
	}

	Q.slots = newSlots
	Q.capacity = newCapacity
	Q.nOccupied = nOccupied
	Q.collisionProbes = collisionProbes
	Q.resizes++

	tracer().Infof("table %s rehashed from %d to %d slots holding %d records", Q.name, oldCapacity, newCapacity, nOccupied)

	return
}

// placementField - Returns the field whose hash positions records in this table
func (Q *OATable) placementField() gem.Field {
	if Q.placement == crt.PlaceByField {
		return Q.field
	}
	return gem.FieldID
}

// positionedBy - Returns true if a probe sequence for a value of field is valid in this table
func (Q *OATable) positionedBy(field gem.Field) bool {
	return Q.placementField() == field
}

// placementKey - Returns the attribute of record that decides its home slot
func (Q *OATable) placementKey(record gem.Gem) gem.Attribute {
	return record.Attribute(Q.placementField())
}
