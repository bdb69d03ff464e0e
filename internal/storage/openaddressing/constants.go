package openaddressing

// MaxLoadFactor - Ceiling for Records / Capacity. An insertion that would bring the load factor to or above
// this value rehashes the table first.
const MaxLoadFactor float64 = 0.7

// growthFactor - The requested capacity on rehash is the current capacity times this factor
const growthFactor int64 = 2
