package jsonl

import (
	"bufio"
	"encoding/json"
	"fmt"
	"github.com/npillmayer/schuko/tracing"
	"io"
	"strings"
)

// line - One input line on the form {"id": <int>, "cor": "#RRGGBB"}
type line struct {
	ID    *int64  `json:"id"`
	Color *string `json:"cor"`
}

// Reader - Reads (id, color) pairs from line delimited JSON. Blank lines are ignored and malformed lines are
// reported to OnError and skipped, they never stop the reading.
type Reader struct {
	scanner *bufio.Scanner
	lineNo  int
	skipped int
	// OnError - Called with the line number, the raw line and the reason for every skipped line.
	// The default traces the problem.
	OnError func(lineNo int, raw string, err error)
}

// NewReader - Returns a pointer to a new Reader over r
func NewReader(r io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(r),
		OnError: func(lineNo int, raw string, err error) {
			tracer().Errorf("error while processing line %d: %s (line: %s)", lineNo, err, raw)
		},
	}
}

// Next - Returns the next well-formed pair, or io.EOF when the input is exhausted
func (R *Reader) Next() (id int64, color string, err error) {
	for R.scanner.Scan() {
		R.lineNo++
		raw := strings.TrimSpace(R.scanner.Text())
		if raw == "" {
			continue
		}

		var l line
		err = json.Unmarshal([]byte(raw), &l)
		if err == nil && (l.ID == nil || l.Color == nil) {
			err = fmt.Errorf(`line must have both "id" and "cor"`)
		}
		if err != nil {
			R.skipped++
			if R.OnError != nil {
				R.OnError(R.lineNo, raw, err)
			}
			err = nil
			continue
		}

		id, color = *l.ID, *l.Color
		return
	}

	err = R.scanner.Err()
	if err != nil {
		err = fmt.Errorf("error while reading line %d: %w", R.lineNo+1, err)
		return
	}

	err = io.EOF
	return
}

// Skipped - Returns the number of malformed lines skipped so far
func (R *Reader) Skipped() int {
	return R.skipped
}

// tracer writes to trace with key 'gemindex'
func tracer() tracing.Trace {
	return tracing.Select("gemindex")
}
