package search

import (
	"context"

	"github.com/aretw0/statespace/pkg/domain"
	"github.com/aretw0/statespace/pkg/frontier"
)

// entry is a frontier item: f = g + h, seq is the insertion counter.
type entry struct {
	f    int
	seq  uint64
	node int
}

// AStar expands configurations in order of g + h.
//
// Configurations enter the closed set when they are expanded, not when they are pushed, so the
// same configuration may sit in the queue several times with different priorities. Entries
// popped for an already closed configuration are discarded, which guarantees no configuration
// is expanded twice. With a consistent heuristic the first expansion is already optimal.
//
// Ties on f are broken by Problem.Compare when set, then by insertion order.
func AStar[S comparable](ctx context.Context, cfg Config, p domain.Problem[S]) (*domain.Result[S], error) {
	if err := p.Validate(true); err != nil {
		return nil, err
	}
	ctx, r := begin(ctx, cfg, domain.AlgorithmAStar)

	var (
		nodes arena[S]
		seq   uint64
	)
	closed := make(map[S]struct{})
	queue := frontier.NewPriorityQueue(func(a, b entry) bool {
		if a.f != b.f {
			return a.f < b.f
		}
		if p.Compare != nil {
			if c := p.Compare(nodes.nodes[a.node].state, nodes.nodes[b.node].state); c != 0 {
				return c < 0
			}
		}
		return a.seq < b.seq
	})

	root := nodes.add(p.Initial, -1)
	queue.Push(entry{f: p.Estimate(p.Initial), seq: seq, node: root})

	for {
		e, ok := queue.Pop()
		if !ok {
			break
		}
		cur := nodes.at(e.node)
		if _, done := closed[cur.state]; done {
			continue
		}
		if p.Reached(cur.state) {
			return finish(ctx, r, domain.StatusSolved, nodes.path(e.node), 0), nil
		}

		admitted, err := r.admit(ctx)
		if err != nil {
			return nil, err
		}
		if !admitted {
			return finish[S](ctx, r, domain.StatusLimitReached, nil, 0), nil
		}

		closed[cur.state] = struct{}{}
		successors := p.Successors(cur.state)
		r.expand(ctx, cur.state, nodes.parentState(e.node), cur.depth, e.f, queue.Len(), len(successors))

		for _, s := range successors {
			if _, done := closed[s]; done {
				continue
			}
			child := nodes.add(s, e.node)
			seq++
			queue.Push(entry{
				f:    cur.depth + 1 + p.Estimate(s),
				seq:  seq,
				node: child,
			})
		}
	}

	return finish[S](ctx, r, domain.StatusNoSolution, nil, 0), nil
}
