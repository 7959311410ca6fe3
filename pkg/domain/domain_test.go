package domain_test

import (
	"context"
	"testing"

	"github.com/aretw0/statespace/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseAlgorithm(t *testing.T) {
	tests := map[string]domain.Algorithm{
		"bfs":           domain.AlgorithmBreadthFirst,
		"breadth-first": domain.AlgorithmBreadthFirst,
		"astar":         domain.AlgorithmAStar,
		"a*":            domain.AlgorithmAStar,
		"hill":          domain.AlgorithmHillClimb,
		"hill-climbing": domain.AlgorithmHillClimb,
	}
	for in, want := range tests {
		got, err := domain.ParseAlgorithm(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := domain.ParseAlgorithm("dfs")
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)
}

func TestResult(t *testing.T) {
	var nilResult *domain.Result[int]
	assert.False(t, nilResult.Solved())
	assert.Zero(t, nilResult.Cost())
	assert.ErrorIs(t, nilResult.Err(), domain.ErrNoSolution)

	res := &domain.Result[int]{Status: domain.StatusSolved, Path: []int{3, 4, 5}}
	assert.True(t, res.Solved())
	assert.Equal(t, 2, res.Cost())
	last, ok := res.Last()
	assert.True(t, ok)
	assert.Equal(t, 5, last)
	assert.NoError(t, res.Err())

	empty := &domain.Result[int]{Status: domain.StatusNoSolution}
	_, ok = empty.Last()
	assert.False(t, ok)
}

func TestResult_Err(t *testing.T) {
	tests := map[domain.Status]error{
		domain.StatusSolved:       nil,
		domain.StatusNoSolution:   domain.ErrNoSolution,
		domain.StatusLocalOptimum: domain.ErrLocalOptimum,
		domain.StatusLimitReached: domain.ErrExpansionLimit,
	}
	for status, want := range tests {
		res := &domain.Result[string]{Status: status}
		if want == nil {
			assert.NoError(t, res.Err(), status)
			continue
		}
		assert.ErrorIs(t, res.Err(), want, status)
	}
}

func TestProblem(t *testing.T) {
	p := domain.Problem[int]{Goal: 3}
	assert.ErrorIs(t, p.Validate(false), domain.ErrInvalidProblem)

	p.Successors = func(x int) []int { return []int{x + 1} }
	assert.NoError(t, p.Validate(false))
	assert.ErrorIs(t, p.Validate(true), domain.ErrInvalidProblem)
	assert.Zero(t, p.Estimate(0), "no heuristic estimates zero")

	assert.True(t, p.Reached(3))
	assert.False(t, p.Reached(4))

	p.IsGoal = func(x int) bool { return x%2 == 0 }
	assert.True(t, p.Reached(4))
	assert.False(t, p.Reached(3))

	p.Heuristic = func(s, goal int) int { return goal - s }
	assert.NoError(t, p.Validate(true))
	assert.Equal(t, 2, p.Estimate(1))
	assert.Zero(t, domain.ZeroHeuristic(7, 3))
}

func TestHooks_Merge(t *testing.T) {
	var calls []string
	first := domain.Hooks{
		OnExpand: func(context.Context, *domain.ExpandEvent) { calls = append(calls, "first") },
	}
	second := domain.Hooks{
		OnExpand:    func(context.Context, *domain.ExpandEvent) { calls = append(calls, "second") },
		OnSearchEnd: func(context.Context, *domain.SearchEvent) { calls = append(calls, "end") },
	}

	merged := first.Merge(second)
	assert.Nil(t, merged.OnSearchStart)

	merged.OnExpand(context.Background(), &domain.ExpandEvent{})
	merged.OnSearchEnd(context.Background(), &domain.SearchEvent{})
	assert.Equal(t, []string{"first", "second", "end"}, calls)
}
