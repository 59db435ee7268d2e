package sink

import (
	"errors"
	"fmt"

	"github.com/GriffinCanCode/dataprocessor/internal/shared/types"
)

// ErrNoSink is returned when no sink is registered for an output policy
var ErrNoSink = errors.New("no sink registered")

// Registry maps output policies to sinks
type Registry struct {
	sinks map[types.OutputPolicy]Sink
}

// NewRegistry creates a registry with the console on stdout and a text file at resultPath
func NewRegistry(resultPath string) *Registry {
	r := NewEmptyRegistry()
	r.Register(types.OutputConsole, Console{})
	r.Register(types.OutputTextFile, TextFile{Path: resultPath})
	return r
}

// NewEmptyRegistry creates a registry with no sinks
func NewEmptyRegistry() *Registry {
	return &Registry{sinks: make(map[types.OutputPolicy]Sink)}
}

// Register sets the sink for policy, replacing any previous one
func (r *Registry) Register(policy types.OutputPolicy, s Sink) {
	r.sinks[policy] = s
}

// Lookup returns the sink for policy
func (r *Registry) Lookup(policy types.OutputPolicy) (Sink, error) {
	s, ok := r.sinks[policy]
	if !ok || s == nil {
		return nil, fmt.Errorf("%w for output %s", ErrNoSink, policy)
	}
	return s, nil
}
