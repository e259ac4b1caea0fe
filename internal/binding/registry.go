// Package binding connects dashboard controls to the chart derivations that
// depend on them. Each output chart is registered once with the inputs it
// reads; a control change invokes exactly the outputs that declared it.
package binding

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"launchdash/internal/models"
)

// Control identifiers.
const (
	SiteInput    = "site-dropdown"
	PayloadInput = "payload-slider"
)

var (
	ErrUnknownOutput   = errors.New("unknown output")
	ErrDuplicateOutput = errors.New("output already registered")
	ErrInvalidCallback = errors.New("invalid callback")
)

// DeriveFunc computes a chart from the current filter state.
type DeriveFunc func(models.FilterState) models.ChartSpec

// Callback binds one output chart to the inputs it depends on.
type Callback struct {
	Output string
	Inputs []string
	Derive DeriveFunc
}

// Result is the outcome of one callback invocation.
type Result struct {
	Output string
	Spec   models.ChartSpec
}

// Observer is notified after every invocation.
type Observer func(output string, state models.FilterState, elapsed time.Duration)

// Registry holds callbacks in registration order.
type Registry struct {
	callbacks []Callback
	byOutput  map[string]int
	observer  Observer
}

// Option configures a Registry.
type Option func(*Registry)

// WithObserver installs an invocation observer.
func WithObserver(o Observer) Option {
	return func(r *Registry) { r.observer = o }
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{byOutput: make(map[string]int)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a callback. Each output may be bound only once.
func (r *Registry) Register(cb Callback) error {
	switch {
	case cb.Output == "":
		return fmt.Errorf("%w: empty output", ErrInvalidCallback)
	case len(cb.Inputs) == 0:
		return fmt.Errorf("%w: %s has no inputs", ErrInvalidCallback, cb.Output)
	case cb.Derive == nil:
		return fmt.Errorf("%w: %s has no derive function", ErrInvalidCallback, cb.Output)
	}
	if _, ok := r.byOutput[cb.Output]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateOutput, cb.Output)
	}

	cb.Inputs = slices.Clone(cb.Inputs)
	r.byOutput[cb.Output] = len(r.callbacks)
	r.callbacks = append(r.callbacks, cb)
	return nil
}

// Outputs lists every registered output in registration order.
func (r *Registry) Outputs() []string {
	out := make([]string, 0, len(r.callbacks))
	for _, cb := range r.callbacks {
		out = append(out, cb.Output)
	}
	return out
}

// Has reports whether output is registered.
func (r *Registry) Has(output string) bool {
	_, ok := r.byOutput[output]
	return ok
}

// Dependents returns the outputs that read any of the changed inputs. With
// no changed inputs every output is returned, which is the initial render.
func (r *Registry) Dependents(changed ...string) []string {
	if len(changed) == 0 {
		return r.Outputs()
	}
	var out []string
	for _, cb := range r.callbacks {
		for _, in := range cb.Inputs {
			if slices.Contains(changed, in) {
				out = append(out, cb.Output)
				break
			}
		}
	}
	return out
}

// Invoke runs the derivation bound to output.
func (r *Registry) Invoke(output string, state models.FilterState) (models.ChartSpec, error) {
	i, ok := r.byOutput[output]
	if !ok {
		return models.ChartSpec{}, fmt.Errorf("%w: %s", ErrUnknownOutput, output)
	}
	return r.invoke(r.callbacks[i], state), nil
}

// Update runs every callback affected by the changed inputs, one after the
// other, and returns their results in registration order.
func (r *Registry) Update(state models.FilterState, changed ...string) []Result {
	outputs := r.Dependents(changed...)
	results := make([]Result, 0, len(outputs))
	for _, output := range outputs {
		cb := r.callbacks[r.byOutput[output]]
		results = append(results, Result{Output: output, Spec: r.invoke(cb, state)})
	}
	return results
}

func (r *Registry) invoke(cb Callback, state models.FilterState) models.ChartSpec {
	start := time.Now()
	spec := cb.Derive(state)
	if r.observer != nil {
		r.observer(cb.Output, state, time.Since(start))
	}
	return spec
}
