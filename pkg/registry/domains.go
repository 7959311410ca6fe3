package registry

import (
	"errors"
	"fmt"
	"slices"

	"github.com/aretw0/statespace/internal/config"
	"github.com/aretw0/statespace/pkg/domain"
	"github.com/aretw0/statespace/pkg/problems/blocks"
	"github.com/aretw0/statespace/pkg/problems/puzzle"
	"github.com/aretw0/statespace/pkg/problems/waterjug"
)

var (
	// ErrUnknownHeuristic is returned when a heuristic name does not apply to the problem kind.
	ErrUnknownHeuristic = errors.New("unknown heuristic")
	// ErrUnreachable is returned when the goal provably cannot be reached from the initial state.
	ErrUnreachable = errors.New("goal unreachable")
)

// NewPuzzle binds an 8-puzzle spec. Boards are strings such as "123|405|786" or lists of rows.
// The goal defaults to puzzle.Goal.
func NewPuzzle(spec *config.ProblemSpec) (Runner, error) {
	initial, err := puzzleBoard(spec.Initial)
	if err != nil {
		return nil, fmt.Errorf("initial: %w", err)
	}
	goal := puzzle.Goal
	if spec.Goal != nil {
		if goal, err = puzzleBoard(spec.Goal); err != nil {
			return nil, fmt.Errorf("goal: %w", err)
		}
	}
	if !puzzle.Solvable(initial, goal) {
		return nil, fmt.Errorf("%w: inversion parity of %s differs from %s", ErrUnreachable, initial, goal)
	}

	var h domain.Heuristic[puzzle.Board]
	switch spec.Heuristic {
	case "", "manhattan":
		h = puzzle.Manhattan
	case "misplaced":
		h = puzzle.Misplaced
	case "zero":
		h = domain.ZeroHeuristic[puzzle.Board]
	default:
		return nil, fmt.Errorf("%w: %q for %s", ErrUnknownHeuristic, spec.Heuristic, spec.Kind)
	}

	return newRunner(spec, puzzle.NewProblem(initial, goal, h), puzzle.Board.String, puzzle.Board.Grid)
}

func puzzleBoard(raw any) (puzzle.Board, error) {
	if s, ok := raw.(string); ok {
		return puzzle.Parse(s)
	}
	var rows [][]int
	if err := config.Decode(raw, &rows); err != nil {
		return puzzle.Board{}, err
	}
	return puzzle.NewBoard(rows)
}

// NewBlocks binds a Blocks World spec. Worlds are strings such as "AB|C|" or lists of stacks,
// bottom to top. The goal is required and must hold the same blocks on the same number of stacks.
// The positional heuristic is rejected for A*, which would return paths longer than the shortest.
func NewBlocks(spec *config.ProblemSpec) (Runner, error) {
	initial, err := blocksWorld(spec.Initial)
	if err != nil {
		return nil, fmt.Errorf("initial: %w", err)
	}
	if spec.Goal == nil {
		return nil, fmt.Errorf("goal: %w: a goal world is required", blocks.ErrInvalidWorld)
	}
	goal, err := blocksWorld(spec.Goal)
	if err != nil {
		return nil, fmt.Errorf("goal: %w", err)
	}
	if !sameBlocks(initial, goal) {
		return nil, fmt.Errorf("%w: %s and %s differ in blocks or stacks", ErrUnreachable, initial, goal)
	}

	p := blocks.NewProblem(initial, goal)
	astar := spec.Algorithm == string(domain.AlgorithmAStar)
	switch spec.Heuristic {
	case "":
		if astar {
			p.Heuristic = domain.ZeroHeuristic[blocks.World]
		}
	case "positional":
		if astar {
			return nil, fmt.Errorf("%w: %q is not admissible, use it with hill or use zero for astar", ErrUnknownHeuristic, spec.Heuristic)
		}
	case "zero":
		p.Heuristic = domain.ZeroHeuristic[blocks.World]
	default:
		return nil, fmt.Errorf("%w: %q for %s", ErrUnknownHeuristic, spec.Heuristic, spec.Kind)
	}

	return newRunner(spec, p, blocks.World.String, nil)
}

func blocksWorld(raw any) (blocks.World, error) {
	if s, ok := raw.(string); ok {
		return blocks.Parse(s)
	}
	var stacks [][]string
	if err := config.Decode(raw, &stacks); err != nil {
		return blocks.World{}, err
	}
	return blocks.NewWorld(stacks)
}

func sameBlocks(a, b blocks.World) bool {
	as, bs := a.Stacks(), b.Stacks()
	if len(as) != len(bs) {
		return false
	}
	return slices.Equal(sortedBlocks(as), sortedBlocks(bs))
}

func sortedBlocks(stacks [][]string) []string {
	var all []string
	for _, s := range stacks {
		all = append(all, s...)
	}
	slices.Sort(all)
	return all
}

// NewWaterJug binds a water jug spec. States are {a, b} objects or [a, b] pairs; params may set
// cap_a and cap_b, defaulting to the 4 and 3 litre jugs.
func NewWaterJug(spec *config.ProblemSpec) (Runner, error) {
	jugs := waterjug.Classic
	if len(spec.Params) > 0 {
		if err := config.Decode(spec.Params, &jugs); err != nil {
			return nil, fmt.Errorf("params: %w", err)
		}
	}

	initial, err := jugState(jugs, spec.Initial)
	if err != nil {
		return nil, fmt.Errorf("initial: %w", err)
	}
	if spec.Goal == nil {
		return nil, fmt.Errorf("goal: %w: a goal state is required", waterjug.ErrInvalidState)
	}
	goal, err := jugState(jugs, spec.Goal)
	if err != nil {
		return nil, fmt.Errorf("goal: %w", err)
	}

	p := jugs.NewProblem(initial, goal)
	switch spec.Heuristic {
	case "":
	case "distance":
		p.Heuristic = waterjug.Distance
	case "zero":
		p.Heuristic = domain.ZeroHeuristic[waterjug.State]
	default:
		return nil, fmt.Errorf("%w: %q for %s", ErrUnknownHeuristic, spec.Heuristic, spec.Kind)
	}

	return newRunner(spec, p, waterjug.State.String, nil)
}

func jugState(jugs waterjug.Jugs, raw any) (waterjug.State, error) {
	var s waterjug.State
	if pair, ok := raw.([]any); ok {
		var levels []int
		if err := config.Decode(pair, &levels); err != nil {
			return s, err
		}
		if len(levels) != 2 {
			return s, fmt.Errorf("%w: expected [a, b], got %d values", waterjug.ErrInvalidState, len(levels))
		}
		s = waterjug.State{A: levels[0], B: levels[1]}
	} else if err := config.Decode(raw, &s); err != nil {
		return s, err
	}
	return s, jugs.Validate(s)
}
