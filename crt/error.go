package crt

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// TableFull - Custom error to inform that no free slot could be found within one full cycle of probes.
// The load factor ceiling is supposed to make this impossible, so seeing it means an invariant was broken.
type TableFull struct {
	msg string
}

// Error - Used to notify that the table is full
func (E TableFull) Error() string {
	if E.msg == "" {
		return "table full"
	}
	return E.msg
}

// ProbingAlgorithm - Custom error to inform that a probe sequence was requested that is not valid for the table layout
type ProbingAlgorithm struct {
	msg string
}

// Error - Used to notify that probing can not be used
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "probing not valid for table layout"
	}
	return P.msg
}

// InvalidCapacity - Custom error to inform that a requested initial capacity was not a positive value
type InvalidCapacity struct {
	msg string
}

// Error - Used to notify that the initial capacity is invalid
func (I InvalidCapacity) Error() string {
	if I.msg == "" {
		return "initial capacity must be a positive value higher than 0 (zero)"
	}
	return I.msg
}
