package search

import (
	"context"
	"math/rand"

	"github.com/aretw0/statespace/pkg/domain"
)

// DefaultRestartWalk is the random walk length used when restarts are enabled without an
// explicit walk length.
const DefaultRestartWalk = 10

// HillClimbOptions selects the escape strategies of local search. The zero value is plain
// steepest-ascent: strict improvement only, no restarts.
type HillClimbOptions struct {
	// MaxSideways is the number of consecutive equal-valued moves allowed on a plateau.
	// Sideways moves never step onto a configuration already on the current path.
	MaxSideways int

	// Restarts is the number of random restarts attempted after a stall.
	Restarts int

	// RestartWalk is the number of random successor steps taken away from the initial
	// configuration before each restarted climb.
	RestartWalk int

	// Seed drives the restart walks, so runs are reproducible.
	Seed int64
}

func (o HillClimbOptions) normalized() HillClimbOptions {
	if o.MaxSideways < 0 {
		o.MaxSideways = 0
	}
	if o.Restarts < 0 {
		o.Restarts = 0
	}
	if o.RestartWalk <= 0 {
		o.RestartWalk = DefaultRestartWalk
	}
	return o
}

// attempt is the outcome of one climb.
type attempt[S comparable] struct {
	path   []S
	h      int
	solved bool
}

func (a attempt[S]) betterThan(b attempt[S]) bool {
	if a.solved != b.solved {
		return a.solved
	}
	return a.h < b.h
}

// HillClimb runs steepest-ascent hill climbing, minimising the heuristic.
//
// Each step moves to the successor with the lowest heuristic value, the first one in successor
// order on ties. The climb stops successfully once the goal test holds and stops with
// StatusLocalOptimum when no successor is strictly better (or, with sideways moves enabled, equal
// and unvisited). Neither completeness nor optimality is guaranteed.
//
// With restarts enabled, every stalled climb is followed by a new one starting at the end of a
// seeded random walk from the initial configuration. Paths always start at the initial
// configuration; the best attempt is reported.
func HillClimb[S comparable](ctx context.Context, cfg Config, p domain.Problem[S]) (*domain.Result[S], error) {
	if err := p.Validate(true); err != nil {
		return nil, err
	}
	ctx, r := begin(ctx, cfg, domain.AlgorithmHillClimb)

	opts := cfg.HillClimb.normalized()
	rng := rand.New(rand.NewSource(opts.Seed))

	var (
		best     attempt[S]
		restarts int
	)
	for i := 0; i <= opts.Restarts; i++ {
		start := []S{p.Initial}
		if i > 0 {
			restarts++
			start = randomWalk(rng, p, opts.RestartWalk)
			r.logger.DebugContext(ctx, "restarting climb", "restart", restarts, "walk_len", len(start)-1)
		}

		a, limited, err := climb(ctx, r, p, start, opts.MaxSideways)
		if err != nil {
			return nil, err
		}
		if i == 0 || a.betterThan(best) {
			best = a
		}
		if limited {
			return finish(ctx, r, domain.StatusLimitReached, compact(best.path), restarts), nil
		}
		if a.solved {
			break
		}
	}

	status := domain.StatusLocalOptimum
	if best.solved {
		status = domain.StatusSolved
	}
	return finish(ctx, r, status, compact(best.path), restarts), nil
}

// climb continues a path until the goal, a stall, or the expansion budget.
// limited is true when the budget stopped the climb.
func climb[S comparable](ctx context.Context, r *run, p domain.Problem[S], path []S, maxSideways int) (a attempt[S], limited bool, err error) {
	onPath := make(map[S]struct{}, len(path))
	for _, s := range path {
		onPath[s] = struct{}{}
	}

	cur := path[len(path)-1]
	curH := p.Estimate(cur)
	sideways := 0

	for {
		if p.Reached(cur) {
			return attempt[S]{path: path, h: curH, solved: true}, false, nil
		}

		admitted, err := r.admit(ctx)
		if err != nil {
			return a, false, err
		}
		if !admitted {
			return attempt[S]{path: path, h: curH}, true, nil
		}

		successors := p.Successors(cur)
		var parent any
		if len(path) > 1 {
			parent = path[len(path)-2]
		}
		r.expand(ctx, cur, parent, len(path)-1, curH, 0, len(successors))

		scores := make([]int, len(successors))
		bestIdx := -1
		for i, s := range successors {
			scores[i] = p.Estimate(s)
			if bestIdx < 0 || scores[i] < scores[bestIdx] {
				bestIdx = i
			}
		}
		if bestIdx < 0 {
			return attempt[S]{path: path, h: curH}, false, nil
		}

		next := successors[bestIdx]
		switch {
		case scores[bestIdx] < curH:
			sideways = 0
		case scores[bestIdx] == curH && sideways < maxSideways:
			idx := firstUnvisited(successors, scores, curH, onPath)
			if idx < 0 {
				return attempt[S]{path: path, h: curH}, false, nil
			}
			next = successors[idx]
			sideways++
		default:
			return attempt[S]{path: path, h: curH}, false, nil
		}

		cur, curH = next, p.Estimate(next)
		path = append(path, cur)
		onPath[cur] = struct{}{}
	}
}

func firstUnvisited[S comparable](successors []S, scores []int, h int, onPath map[S]struct{}) int {
	for i, s := range successors {
		if scores[i] != h {
			continue
		}
		if _, seen := onPath[s]; !seen {
			return i
		}
	}
	return -1
}

// randomWalk takes up to steps random moves from the initial configuration.
func randomWalk[S comparable](rng *rand.Rand, p domain.Problem[S], steps int) []S {
	path := []S{p.Initial}
	cur := p.Initial
	for i := 0; i < steps; i++ {
		successors := p.Successors(cur)
		if len(successors) == 0 {
			break
		}
		cur = successors[rng.Intn(len(successors))]
		path = append(path, cur)
	}
	return compact(path)
}
