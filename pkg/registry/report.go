package registry

import (
	"time"

	"github.com/aretw0/statespace/pkg/domain"
)

// Report is the outcome of a run with every configuration already rendered, so callers need no
// knowledge of the domain's state type.
type Report struct {
	Name        string
	Kind        string
	Description string
	Heuristic   string

	RunID     string
	Algorithm domain.Algorithm
	Status    domain.Status

	// Path holds the one-line form of each configuration, Grids the multi-line form.
	Path  []string
	Grids []string

	Expanded  int
	Generated int
	Restarts  int
	Duration  time.Duration
}

// Solved reports whether the goal was reached.
func (r *Report) Solved() bool {
	return r.Status == domain.StatusSolved
}

// Cost is the number of moves on the path.
func (r *Report) Cost() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Err maps a non-successful status to its sentinel error.
func (r *Report) Err() error {
	res := domain.Result[string]{Status: r.Status}
	return res.Err()
}
