package registry

import (
	"context"

	"github.com/aretw0/statespace"
	"github.com/aretw0/statespace/internal/config"
	"github.com/aretw0/statespace/pkg/domain"
)

// problemRunner binds a typed problem to the settings of its spec.
type problemRunner[S comparable] struct {
	spec      *config.ProblemSpec
	algorithm domain.Algorithm
	problem   domain.Problem[S]
	line      func(S) string
	grid      func(S) string
}

func newRunner[S comparable](spec *config.ProblemSpec, p domain.Problem[S], line, grid func(S) string) (Runner, error) {
	alg, err := domain.ParseAlgorithm(spec.Algorithm)
	if err != nil {
		return nil, err
	}
	if grid == nil {
		grid = line
	}
	return &problemRunner[S]{spec: spec, algorithm: alg, problem: p, line: line, grid: grid}, nil
}

// Solve runs the spec's algorithm. Options given here are applied after the spec's own settings.
func (r *problemRunner[S]) Solve(ctx context.Context, opts ...statespace.Option) (*Report, error) {
	all := []statespace.Option{
		statespace.WithMaxExpansions(r.spec.Limits.MaxExpansions),
		statespace.WithSideways(r.spec.Hill.Sideways),
		statespace.WithRestarts(r.spec.Hill.Restarts, r.spec.Hill.Walk),
		statespace.WithSeed(r.spec.Hill.Seed),
	}
	all = append(all, opts...)

	res, err := statespace.Solve(ctx, r.algorithm, r.problem, all...)
	if err != nil {
		return nil, err
	}

	rep := &Report{
		Name:        r.spec.Name,
		Kind:        r.spec.Kind,
		Description: r.spec.Description,
		Heuristic:   r.spec.Heuristic,
		RunID:       res.RunID,
		Algorithm:   res.Algorithm,
		Status:      res.Status,
		Path:        make([]string, len(res.Path)),
		Grids:       make([]string, len(res.Path)),
		Expanded:    res.Expanded,
		Generated:   res.Generated,
		Restarts:    res.Restarts,
		Duration:    res.Duration,
	}
	for i, s := range res.Path {
		rep.Path[i] = r.line(s)
		rep.Grids[i] = r.grid(s)
	}
	return rep, nil
}
