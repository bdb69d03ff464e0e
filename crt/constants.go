package crt

// Placement - Decides which hash function positions records in a table
type Placement int

// PlaceByID - Every table positions records by the identifier hash regardless of which field it is queried by.
// Color and intensity tables can then only be searched by a full scan.
const PlaceByID Placement = 0

// PlaceByField - A table positions records by the hash of the field it is queried by, which makes probe
// sequence lookups valid for color and intensity tables as well.
const PlaceByField Placement = 1

// String - Returns the placement name as used in configuration
func (P Placement) String() string {
	if P == PlaceByField {
		return "field"
	}
	return "id"
}
