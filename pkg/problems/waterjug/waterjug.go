// Package waterjug implements the two-jug measuring puzzle: fill, empty and pour between two
// unmarked jugs until a target amount is measured.
package waterjug

import (
	"errors"
	"fmt"

	"github.com/aretw0/statespace/pkg/domain"
)

// ErrInvalidState is returned for levels outside the jugs' capacities.
var ErrInvalidState = errors.New("invalid jug state")

// State holds the water level of jug A and jug B.
type State struct {
	A int `json:"a" yaml:"a" mapstructure:"a"`
	B int `json:"b" yaml:"b" mapstructure:"b"`
}

func (s State) String() string {
	return fmt.Sprintf("(%d,%d)", s.A, s.B)
}

// Jugs holds the two capacities.
type Jugs struct {
	CapA int `json:"cap_a" yaml:"cap_a" mapstructure:"cap_a"`
	CapB int `json:"cap_b" yaml:"cap_b" mapstructure:"cap_b"`
}

// Classic is the 4 and 3 litre pair.
var Classic = Jugs{CapA: 4, CapB: 3}

// Validate checks a state fits the jugs.
func (j Jugs) Validate(s State) error {
	if j.CapA <= 0 || j.CapB <= 0 {
		return fmt.Errorf("%w: capacities must be positive, got %d and %d", ErrInvalidState, j.CapA, j.CapB)
	}
	if s.A < 0 || s.A > j.CapA || s.B < 0 || s.B > j.CapB {
		return fmt.Errorf("%w: %s does not fit capacities (%d,%d)", ErrInvalidState, s, j.CapA, j.CapB)
	}
	return nil
}

// Successors applies the six production rules in order: fill A, fill B, empty A, empty B,
// pour A into B, pour B into A. A rule produces a successor only when its precondition holds.
func (j Jugs) Successors(s State) []State {
	out := make([]State, 0, 6)
	if s.A < j.CapA {
		out = append(out, State{A: j.CapA, B: s.B})
	}
	if s.B < j.CapB {
		out = append(out, State{A: s.A, B: j.CapB})
	}
	if s.A > 0 {
		out = append(out, State{A: 0, B: s.B})
	}
	if s.B > 0 {
		out = append(out, State{A: s.A, B: 0})
	}
	if s.A > 0 && s.B < j.CapB {
		t := min(s.A, j.CapB-s.B)
		out = append(out, State{A: s.A - t, B: s.B + t})
	}
	if s.B > 0 && s.A < j.CapA {
		t := min(s.B, j.CapA-s.A)
		out = append(out, State{A: s.A + t, B: s.B - t})
	}
	return out
}

// Distance is the total level difference to the goal. It only guides informed search; a single
// pour can close a large difference, so it is not admissible.
func Distance(s, goal State) int {
	return abs(s.A-goal.A) + abs(s.B-goal.B)
}

// NewProblem wires the jugs into a search problem without a heuristic.
func (j Jugs) NewProblem(initial, goal State) domain.Problem[State] {
	return domain.Problem[State]{
		Initial:    initial,
		Goal:       goal,
		Successors: j.Successors,
		Compare: func(a, b State) int {
			if a.A != b.A {
				return a.A - b.A
			}
			return a.B - b.B
		},
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
