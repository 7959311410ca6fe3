package domain

import "fmt"

// SuccessorFunc returns every configuration reachable from s by exactly one legal move.
// The result does not need to be deduplicated and may contain s itself.
type SuccessorFunc[S comparable] func(s S) []S

// GoalTest reports whether s satisfies the goal.
type GoalTest[S comparable] func(s S) bool

// Heuristic estimates the remaining cost from s to goal. Lower is better.
type Heuristic[S comparable] func(s, goal S) int

// CompareFunc orders two configurations. It returns a negative number when a < b,
// zero when a == b and a positive number when a > b.
type CompareFunc[S comparable] func(a, b S) int

// Problem bundles everything a domain supplies to the search engine.
//
// S must be an immutable value type: the engine stores configurations as map keys and
// never copies them.
type Problem[S comparable] struct {
	// Initial is the configuration the search starts from.
	Initial S

	// Goal is the target configuration. It is passed to the Heuristic and, when IsGoal is nil,
	// used for the default equality goal test.
	Goal S

	// Successors generates the neighbours of a configuration. Required.
	Successors SuccessorFunc[S]

	// IsGoal overrides the default goal test (equality with Goal).
	IsGoal GoalTest[S]

	// Heuristic is required by informed and local search.
	Heuristic Heuristic[S]

	// Compare breaks ties between frontier entries of equal priority.
	// When nil, ties fall back to insertion order.
	Compare CompareFunc[S]
}

// Reached reports whether s satisfies the problem's goal test.
func (p Problem[S]) Reached(s S) bool {
	if p.IsGoal != nil {
		return p.IsGoal(s)
	}
	return s == p.Goal
}

// Estimate evaluates the heuristic for s against the goal.
// A problem without a heuristic estimates zero everywhere.
func (p Problem[S]) Estimate(s S) int {
	if p.Heuristic == nil {
		return 0
	}
	return p.Heuristic(s, p.Goal)
}

// Validate checks the problem can be searched. Informed search additionally requires a heuristic.
func (p Problem[S]) Validate(informed bool) error {
	if p.Successors == nil {
		return fmt.Errorf("%w: successor function is required", ErrInvalidProblem)
	}
	if informed && p.Heuristic == nil {
		return fmt.Errorf("%w: heuristic is required", ErrInvalidProblem)
	}
	return nil
}

// ZeroHeuristic estimates zero for every configuration.
// A* driven by it degenerates to uniform-cost search.
func ZeroHeuristic[S comparable](S, S) int {
	return 0
}
