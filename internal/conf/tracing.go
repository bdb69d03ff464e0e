package conf

import (
	"fmt"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"strconv"
	"strings"
)

// TraceKey - Key of the tracer every gemindex package selects
const TraceKey = "gemindex"

// Trace levels
const (
	TraceLevelError = "error"
	TraceLevelInfo  = "info"
	TraceLevelDebug = "debug"
)

const traceLevelPrefix = "tracelevel"

// TraceLevelValue - Returns the configured trace level as a tracing.TraceLevel
func (C *Config) TraceLevelValue() (level tracing.TraceLevel, err error) {
	switch strings.ToLower(C.TraceLevel) {
	case "", TraceLevelError:
		level = tracing.LevelError
	case TraceLevelInfo:
		level = tracing.LevelInfo
	case TraceLevelDebug:
		level = tracing.LevelDebug
	default:
		err = fmt.Errorf("unknown trace level %q, should be %q, %q or %q", C.TraceLevel, TraceLevelError, TraceLevelInfo, TraceLevelDebug)
	}

	return
}

// SetupTracing - Installs a trace2go root tracer using the given adapter, registered under adapterKey, as the
// global trace selector. The gemindex tracer gets the configured trace level and destination.
// The returned teardown detaches the selector again.
func (C *Config) SetupTracing(adapterKey string, adapter tracing.Adapter) (teardown func(), err error) {
	level, err := C.TraceLevelValue()
	if err != nil {
		return
	}

	settings := traceSettings{
		"tracing.adapter":                 adapterKey,
		traceLevelPrefix + ".root":        level.String(),
		traceLevelPrefix + "." + TraceKey: level.String(),
	}
	if C.TraceDestination != "" {
		settings["tracing.destination"] = C.TraceDestination
	}

	tracing.RegisterTraceAdapter(adapterKey, adapter, true)
	err = trace2go.ConfigureRoot(settings, traceLevelPrefix, trace2go.ReplaceTracers(true))
	if err != nil {
		err = fmt.Errorf("error while configuring tracing: %w", err)
		return
	}
	tracing.SetTraceSelector(trace2go.Selector())

	teardown = trace2go.Teardown

	return
}

// traceSettings - Flat key value settings handed to trace2go
type traceSettings map[string]string

func (T traceSettings) InitDefaults() {}

func (T traceSettings) IsSet(key string) bool {
	_, ok := T[key]
	return ok
}

func (T traceSettings) GetString(key string) string {
	return T[key]
}

func (T traceSettings) GetInt(key string) int {
	i, _ := strconv.Atoi(T[key])
	return i
}

func (T traceSettings) GetBool(key string) bool {
	b, _ := strconv.ParseBool(T[key])
	return b
}

func (T traceSettings) IsInteractive() bool {
	return false
}
