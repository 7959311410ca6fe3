package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/statespace"
	"github.com/aretw0/statespace/internal/config"
)

// Runner is a problem bound to its domain, ready to be searched.
type Runner interface {
	Solve(ctx context.Context, opts ...statespace.Option) (*Report, error)
}

// Factory builds a Runner from a validated problem spec.
type Factory func(spec *config.ProblemSpec) (Runner, error)

// Registry maps problem kinds to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Default returns a registry with every built-in domain registered.
func Default() *Registry {
	r := NewRegistry()
	r.Register(config.KindPuzzle, NewPuzzle)
	r.Register(config.KindBlocks, NewBlocks)
	r.Register(config.KindWaterJug, NewWaterJug)
	return r
}

// Register adds a factory to the registry.
// If a factory for the same kind exists, it is overwritten.
func (r *Registry) Register(kind string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[kind] = f
}

// Kinds lists the registered kinds in lexical order.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Build looks up the spec's kind and binds the spec to its domain.
// Returns config.ErrUnknownKind if no factory is registered.
func (r *Registry) Build(spec *config.ProblemSpec) (Runner, error) {
	r.mu.RLock()
	f, ok := r.factories[spec.Kind]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownKind, spec.Kind)
	}

	runner, err := f(spec)
	if err != nil {
		return nil, fmt.Errorf("problem %q: %w", spec.Name, err)
	}
	return runner, nil
}
