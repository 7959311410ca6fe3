package statespace

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/statespace/internal/search"
	"github.com/aretw0/statespace/pkg/domain"
	"go.opentelemetry.io/otel/trace"
)

// Version is the release of the statespace module.
const Version = "0.3.0"

// Option defines a functional option for configuring a search run.
type Option func(*search.Config)

// WithLogger sets a custom structured logger. Runs log nothing by default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *search.Config) {
		c.Logger = logger
	}
}

// WithLifecycleHooks registers observability hooks. Repeated calls accumulate.
func WithLifecycleHooks(hooks domain.Hooks) Option {
	return func(c *search.Config) {
		c.Hooks = c.Hooks.Merge(hooks)
	}
}

// WithMaxExpansions bounds the number of expanded configurations. Zero disables the bound.
func WithMaxExpansions(n int) Option {
	return func(c *search.Config) {
		c.MaxExpansions = n
	}
}

// WithTracerProvider sets the OpenTelemetry provider used for search spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *search.Config) {
		c.TracerProvider = tp
	}
}

// WithRunID fixes the run identifier instead of generating one.
func WithRunID(id string) Option {
	return func(c *search.Config) {
		c.RunID = id
	}
}

// WithSideways allows up to n consecutive equal-valued moves during hill climbing.
func WithSideways(n int) Option {
	return func(c *search.Config) {
		c.HillClimb.MaxSideways = n
	}
}

// WithRestarts enables n random restarts for hill climbing. Each restart starts from a random
// walk of walk moves away from the initial configuration (search.DefaultRestartWalk when walk <= 0).
func WithRestarts(n, walk int) Option {
	return func(c *search.Config) {
		c.HillClimb.Restarts = n
		c.HillClimb.RestartWalk = walk
	}
}

// WithSeed seeds the random restarts of hill climbing.
func WithSeed(seed int64) Option {
	return func(c *search.Config) {
		c.HillClimb.Seed = seed
	}
}

func configure(opts []Option) search.Config {
	var cfg search.Config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// BreadthFirst finds a shortest path (in moves) from p.Initial to the goal.
func BreadthFirst[S comparable](ctx context.Context, p domain.Problem[S], opts ...Option) (*domain.Result[S], error) {
	return search.BreadthFirst(ctx, configure(opts), p)
}

// AStar finds a least-cost path guided by p.Heuristic. The path is optimal when the heuristic is
// admissible and consistent.
func AStar[S comparable](ctx context.Context, p domain.Problem[S], opts ...Option) (*domain.Result[S], error) {
	return search.AStar(ctx, configure(opts), p)
}

// HillClimb runs steepest-ascent local search over p.Heuristic. It is neither complete nor
// optimal; a stall is reported as domain.StatusLocalOptimum with the partial path.
func HillClimb[S comparable](ctx context.Context, p domain.Problem[S], opts ...Option) (*domain.Result[S], error) {
	return search.HillClimb(ctx, configure(opts), p)
}

// Solve dispatches to the driver named by algorithm.
func Solve[S comparable](ctx context.Context, algorithm domain.Algorithm, p domain.Problem[S], opts ...Option) (*domain.Result[S], error) {
	switch algorithm {
	case domain.AlgorithmBreadthFirst:
		return BreadthFirst(ctx, p, opts...)
	case domain.AlgorithmAStar:
		return AStar(ctx, p, opts...)
	case domain.AlgorithmHillClimb:
		return HillClimb(ctx, p, opts...)
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAlgorithm, algorithm)
}
