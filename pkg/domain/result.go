package domain

import "time"

// Algorithm names a search strategy.
type Algorithm string

const (
	AlgorithmBreadthFirst Algorithm = "bfs"
	AlgorithmAStar        Algorithm = "astar"
	AlgorithmHillClimb    Algorithm = "hill"
)

// ParseAlgorithm resolves a user supplied algorithm name, accepting a few common aliases.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "bfs", "breadth-first", "breadth_first":
		return AlgorithmBreadthFirst, nil
	case "astar", "a*", "a-star":
		return AlgorithmAStar, nil
	case "hill", "hill-climbing", "hillclimb":
		return AlgorithmHillClimb, nil
	}
	return "", ErrUnknownAlgorithm
}

// Status is the outcome of a finished search.
type Status string

const (
	StatusSolved       Status = "solved"        // Goal reached
	StatusNoSolution   Status = "no_solution"   // Frontier exhausted
	StatusLocalOptimum Status = "local_optimum" // Hill climbing stalled before the goal
	StatusLimitReached Status = "limit_reached" // Expansion budget spent
)

// Result is the outcome of a search run.
type Result[S comparable] struct {
	// RunID correlates logs, hooks and spans of a single run.
	RunID     string
	Algorithm Algorithm
	Status    Status

	// Path lists configurations from the initial state to the last state reached, inclusive.
	// It is empty when a systematic search ends without the goal. Local search always reports
	// the partial path of its best attempt.
	Path []S

	// Expanded counts configurations whose successors were generated.
	Expanded int

	// Generated counts successors produced, duplicates included.
	Generated int

	// Restarts counts random restarts used by hill climbing.
	Restarts int

	Duration time.Duration
}

// Solved reports whether the goal was reached.
func (r *Result[S]) Solved() bool {
	return r != nil && r.Status == StatusSolved
}

// Cost is the number of moves on the path.
func (r *Result[S]) Cost() int {
	if r == nil || len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Last returns the final configuration on the path.
func (r *Result[S]) Last() (S, bool) {
	var zero S
	if r == nil || len(r.Path) == 0 {
		return zero, false
	}
	return r.Path[len(r.Path)-1], true
}

// Err maps a non-successful status to its sentinel error.
func (r *Result[S]) Err() error {
	if r == nil {
		return ErrNoSolution
	}
	switch r.Status {
	case StatusSolved:
		return nil
	case StatusLocalOptimum:
		return ErrLocalOptimum
	case StatusLimitReached:
		return ErrExpansionLimit
	default:
		return ErrNoSolution
	}
}
