/*
Package gemindex indexes colored gems by identifier, color and intensity and compares search strategies over them.

Every gem is stored in three open addressing hash tables, one per field, each table owning its own copy of the
gem. Collisions are resolved by linear probing unless another hashfunc.HashAlgorithm is given in CatalogConf. Tables are sized by prime numbers and rehashed into roughly double the capacity before an
insertion would bring the load factor to 0.7. For comparison the same gems are kept in a snapshot sorted by
identifier, searched by binary search, and in a B-tree snapshot.

By default every table positions its records by the identifier hash, so the color and intensity tables can only
be searched by walking every slot. Configuring crt.PlaceByField positions records by the hash of the field each
table is queried by, which makes probe sequence searches valid for those tables too.

The intensity of a gem is a luma approximation derived from its #RRGGBB color and is recomputed whenever the
color changes. Malformed colors give intensity 0.
*/
package gemindex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gemindex'
func tracer() tracing.Trace {
	return tracing.Select("gemindex")
}
