package conf

import (
	"errors"
	"fmt"
	"github.com/gostonefire/gemindex/crt"
	"github.com/gostonefire/gemindex/hashfunc"
	"github.com/gostonefire/gemindex/internal/hash"
	"gopkg.in/yaml.v3"
	"io/fs"
	"os"
)

// DefaultConfigFiles - Files looked for, in order, when no config path is given
var DefaultConfigFiles = []string{"configs/gemindex.yaml", "gemindex.yaml"}

// Config - Configuration of a gem catalog
//   - InitialCapacity is the requested number of slots in each hash table
//   - DataFile is the line delimited JSON file to load gems from
//   - Placement is either "id" or "field", see crt.PlaceByID and crt.PlaceByField
//   - BTreeDegree is the degree of the ordered B-tree baseline
//   - ShowLimit is the number of slots listed when showing a table
//   - Probing is either "linear" or "double", the slot selection algorithm of every table
//   - TraceLevel is "error", "info" or "debug", the level of the gemindex tracer
//   - TraceDestination is where traces go, "Stderr", "Stdout" or a file URI, empty means Stderr
type Config struct {
	InitialCapacity  int64  `yaml:"initial_capacity"`
	DataFile         string `yaml:"data_file"`
	Placement        string `yaml:"placement"`
	BTreeDegree      int    `yaml:"btree_degree"`
	ShowLimit        int    `yaml:"show_limit"`
	Probing          string `yaml:"probing"`
	TraceLevel       string `yaml:"trace_level"`
	TraceDestination string `yaml:"trace_destination"`
}

// Probing algorithms
const (
	ProbingLinear = "linear"
	ProbingDouble = "double"
)

// Default - Returns a Config with every value set to its default
func Default() *Config {
	return &Config{
		InitialCapacity: 211,
		DataFile:        "gemas.jsonl",
		Placement:       crt.PlaceByID.String(),
		BTreeDegree:     32,
		ShowLimit:       10,
		Probing:         ProbingLinear,
		TraceLevel:      TraceLevelError,
	}
}

// Load - Reads configuration from configPath on top of the defaults. If configPath is empty the
// DefaultConfigFiles are tried, and if none of them exists the defaults are returned as is.
func Load(configPath string) (cfg *Config, err error) {
	cfg = Default()

	if configPath == "" {
		for _, p := range DefaultConfigFiles {
			var data []byte
			data, err = os.ReadFile(p)
			if errors.Is(err, fs.ErrNotExist) {
				err = nil
				continue
			}
			if err != nil {
				err = fmt.Errorf("error while reading config file %s: %w", p, err)
				return
			}
			err = cfg.parse(data)
			return
		}
		return
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		err = fmt.Errorf("error while reading config file %s: %w", configPath, err)
		return
	}

	err = cfg.parse(data)

	return
}

// PlacementValue - Returns the configured placement as a crt.Placement
func (C *Config) PlacementValue() (placement crt.Placement, err error) {
	switch C.Placement {
	case "", crt.PlaceByID.String():
		placement = crt.PlaceByID
	case crt.PlaceByField.String():
		placement = crt.PlaceByField
	default:
		err = fmt.Errorf("unknown placement %q, should be %q or %q", C.Placement, crt.PlaceByID, crt.PlaceByField)
	}

	return
}

// Validate - Checks that the configuration can be used to build a catalog
func (C *Config) Validate() (err error) {
	if C.InitialCapacity <= 0 {
		err = crt.InvalidCapacity{}
		return
	}

	_, err = C.PlacementValue()
	if err != nil {
		return
	}

	_, err = C.HashAlgorithm()
	if err != nil {
		return
	}

	_, err = C.TraceLevelValue()

	return
}

// HashAlgorithm - Returns a factory for the configured probing algorithm, nil means the internal linear probing
func (C *Config) HashAlgorithm() (factory func() hashfunc.HashAlgorithm, err error) {
	switch C.Probing {
	case "", ProbingLinear:
	case ProbingDouble:
		factory = func() hashfunc.HashAlgorithm { return hash.NewDoubleHashAlgorithm(1) }
	default:
		err = fmt.Errorf("unknown probing %q, should be %q or %q", C.Probing, ProbingLinear, ProbingDouble)
	}

	return
}

// parse - Unmarshals YAML data into the config and validates the result
func (C *Config) parse(data []byte) (err error) {
	err = yaml.Unmarshal(data, C)
	if err != nil {
		err = fmt.Errorf("error while parsing config: %w", err)
		return
	}

	err = C.Validate()

	return
}
