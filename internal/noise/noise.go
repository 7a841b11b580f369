// Package noise provides seeded, deterministic 2D gradient noise fields.
//
// A field is immutable after construction: the backing permutation tables are
// built once from the seed and Sample performs read-only lookups, so a single
// field may be shared across goroutines without synchronization.
package noise

import (
	"fmt"
	"sort"
)

// Sampler is a continuous 2D scalar noise function. Equal inputs always yield
// equal outputs for the same instance, nearby inputs yield nearby outputs,
// and results stay in approximately [-1, 1].
type Sampler interface {
	Sample(x, y float64) float64
}

// Factory constructs a Sampler for the given seed.
type Factory func(seed uint32) Sampler

// DefaultAlgorithm is used when no algorithm name is given.
const DefaultAlgorithm = "perlin"

var algorithms = map[string]Factory{}

// Register adds a noise algorithm factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	algorithms[name] = f
}

// New constructs a Sampler by algorithm name. An empty name selects
// DefaultAlgorithm; an unknown name is an error.
func New(name string, seed uint32) (Sampler, error) {
	if name == "" {
		name = DefaultAlgorithm
	}
	f, ok := algorithms[name]
	if !ok {
		return nil, fmt.Errorf("unknown noise algorithm %q", name)
	}
	return f(seed), nil
}

// Names returns the registered algorithm names in sorted order.
func Names() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
