package console

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/gostonefire/gemindex"
	"github.com/gostonefire/gemindex/crt"
	"github.com/gostonefire/gemindex/gem"
	"github.com/npillmayer/schuko/tracing"
	"io"
	"strconv"
)

// Menu options
const (
	optionExit      = "0"
	optionLookupID  = "1"
	optionColor     = "2"
	optionIntensity = "3"
	optionLightning = "4"
	optionStats     = "5"
	optionShowTable = "6"
)

// DefaultShowLimit - Number of slots listed by the show table option unless changed with SetShowLimit
const DefaultShowLimit = 10

const title = "=== GEM CODEX ==="

// Console - Interactive menu over a catalog. Input is read as whitespace separated tokens, so an option and its
// argument may be given on the same line.
type Console struct {
	catalog   *gemindex.Catalog
	scanner   *bufio.Scanner
	out       io.Writer
	rnd       io.Reader
	showLimit int
}

// New - Returns a pointer to a new Console.
//   - catalog is the catalog to query
//   - in is where options and arguments are read from
//   - out is where menus and results are written to
//   - rnd is the source of random bytes for new colors
func New(catalog *gemindex.Catalog, in io.Reader, out io.Writer, rnd io.Reader) *Console {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	return &Console{
		catalog:   catalog,
		scanner:   scanner,
		out:       out,
		rnd:       rnd,
		showLimit: DefaultShowLimit,
	}
}

// SetShowLimit - Sets the number of slots listed by the show table option, zero or lower lists all
func (C *Console) SetShowLimit(limit int) {
	C.showLimit = limit
}

// Run - Shows the menu and runs options until the exit option is chosen or the input ends.
//
// It returns:
//   - err is a standard error if the input could not be read or a catalog operation failed for another reason
//     than a missing gem
func (C *Console) Run() (err error) {
	for {
		C.menu()

		option, ok := C.token()
		if !ok {
			C.printf("\n")
			break
		}

		switch option {
		case optionExit:
			C.printf("Leaving the codex...\n")
			return
		case optionLookupID:
			err = C.lookupID()
		case optionColor:
			err = C.searchColor()
		case optionIntensity:
			err = C.searchIntensity()
		case optionLightning:
			err = C.lightning()
		case optionStats:
			C.stats()
		case optionShowTable:
			C.showTable()
		default:
			C.printf("Invalid option: %s\n", option)
		}

		if err != nil {
			tracer().Errorf("%s", err)
			return
		}
	}

	err = C.scanner.Err()

	return
}

// menu - Prints the menu and the prompt
func (C *Console) menu() {
	C.printf("\n%s\n", title)
	C.printf("1. Look up gem by id\n")
	C.printf("2. Search gems by color\n")
	C.printf("3. Search gems by intensity\n")
	C.printf("4. Strike gem with lightning (new color)\n")
	C.printf("5. Show statistics\n")
	if C.showLimit > 0 {
		C.printf("6. Show table (first %d gems)\n", C.showLimit)
	} else {
		C.printf("6. Show table\n")
	}
	C.printf("0. Exit\n")
	C.printf("Choose an option: ")
}

func (C *Console) lookupID() (err error) {
	id, ok := C.readInt("Enter the gem id: ")
	if !ok {
		return
	}

	lookup, err := C.catalog.LookupByID(id)
	if err != nil {
		return
	}

	C.printf("\n=== Lookup by id: %d ===\n", id)
	if lookup.Hash.Found {
		C.printf("Gem found!\n")
		C.printf("ID: %d\n", lookup.Hash.Record.ID)
		C.printf("Color: %s\n", lookup.Hash.Record.Color)
		C.printf("Intensity: %d\n", lookup.Hash.Record.Intensity)
	} else {
		C.printf("Gem not found!\n")
	}

	for _, r := range []gemindex.LookupResult{lookup.Hash, lookup.Binary, lookup.BTree} {
		C.printf("%-6s time: %d microseconds, steps: %d, found: %t\n", r.Method, r.Elapsed.Microseconds(), r.Steps, r.Found)
	}

	return
}

func (C *Console) searchColor() (err error) {
	color, ok := C.readToken("Enter the color (format #RRGGBB): ")
	if !ok {
		return
	}

	search, err := C.catalog.ScanByColor(color)
	if err != nil {
		return
	}

	C.printf("\n=== Search by color: %s ===\n", color)
	C.printScanResult(search.Hash)
	C.printf("sorted snapshot %s time: %d microseconds, steps: %d, gems: %d\n",
		search.Binary.Method, search.Binary.Elapsed.Microseconds(), search.Binary.Steps, len(search.Binary.Records))

	return
}

func (C *Console) searchIntensity() (err error) {
	intensity, ok := C.readInt("Enter the intensity (0-255): ")
	if !ok {
		return
	}

	result, err := C.catalog.ScanByIntensity(intensity)
	if err != nil {
		return
	}

	C.printf("\n=== Search by intensity: %d ===\n", intensity)
	C.printScanResult(result)

	return
}

func (C *Console) lightning() (err error) {
	id, ok := C.readInt("Enter the id of the gem to strike: ")
	if !ok {
		return
	}

	C.printf("\n=== Striking gem id: %d ===\n", id)
	record, steps, err := C.catalog.ApplyLightning(id, C.rnd)
	if errors.Is(err, crt.NoRecordFound{}) {
		C.printf("Gem not found!\n")
		err = nil
		return
	}
	if err != nil {
		return
	}

	C.printf("Gem id %d changed color to %s\n", record.ID, record.Color)
	C.printf("Steps to update: %d\n", steps)
	C.printf("New intensity: %d\n", record.Intensity)

	return
}

func (C *Console) stats() {
	for _, s := range C.catalog.Stats() {
		C.printf("\n=== Statistics of the %s table ===\n", s.Name)
		C.printf("Gems: %d\n", s.Records)
		C.printf("Capacity: %d\n", s.Capacity)
		C.printf("Load factor: %.2f%%\n", s.LoadFactorPercent)
		C.printf("Collision probes (since creation or last rehash): %d\n", s.CollisionProbes)
		C.printf("Free slots: %d\n", s.FreeSlots)
		C.printf("Resizes: %d\n", s.Resizes)
	}
}

func (C *Console) showTable() {
	C.printf("\n=== Identifier table ===\n")
	for _, s := range C.catalog.Slots(C.showLimit) {
		C.printf("Slot %d: %s\n", s.Index, s.Gem)
	}

	if total := C.catalog.Len(); C.showLimit > 0 && total > C.showLimit {
		C.printf("... (showing only the first %d of %d gems)\n", C.showLimit, total)
	}
}

// printScanResult - Prints the gems and the cost of a hash table search
func (C *Console) printScanResult(result gemindex.ScanResult) {
	C.printf("Gems found: %d\n", len(result.Records))
	for _, r := range result.Records {
		C.printf("%s\n", gemLine(r))
	}
	C.printf("hash table %s time: %d microseconds, steps: %d\n", result.Method, result.Elapsed.Microseconds(), result.Steps)
}

// readInt - Prompts for and reads an integer, printing a notice if the token is not one
func (C *Console) readInt(prompt string) (value int64, ok bool) {
	token, ok := C.readToken(prompt)
	if !ok {
		return
	}

	value, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		C.printf("Not an integer: %s\n", token)
		ok = false
	}

	return
}

// readToken - Prompts for and reads the next token
func (C *Console) readToken(prompt string) (token string, ok bool) {
	C.printf("%s", prompt)
	return C.token()
}

func (C *Console) token() (token string, ok bool) {
	if !C.scanner.Scan() {
		return
	}

	return C.scanner.Text(), true
}

func (C *Console) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(C.out, format, a...)
}

func gemLine(g gem.Gem) string {
	return fmt.Sprintf("ID: %d, Color: %s, Intensity: %d", g.ID, g.Color, g.Intensity)
}

func tracer() tracing.Trace {
	return tracing.Select("gemindex")
}
