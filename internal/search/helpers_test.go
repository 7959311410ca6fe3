package search_test

import (
	"github.com/aretw0/statespace/pkg/domain"
)

// lineProblem walks the integers 0..len(h)-1 one step at a time, from 0 to the last index,
// with h as the heuristic table. Successors are listed left neighbour first.
func lineProblem(h []int) domain.Problem[int] {
	goal := len(h) - 1
	return domain.Problem[int]{
		Initial: 0,
		Goal:    goal,
		Successors: func(x int) []int {
			var out []int
			if x > 0 {
				out = append(out, x-1)
			}
			if x < goal {
				out = append(out, x+1)
			}
			return out
		},
		Heuristic: func(x, _ int) int { return h[x] },
	}
}

func contains[S comparable](items []S, s S) bool {
	for _, it := range items {
		if it == s {
			return true
		}
	}
	return false
}
