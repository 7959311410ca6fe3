package search

import (
	"context"

	"github.com/aretw0/statespace/pkg/domain"
	"github.com/aretw0/statespace/pkg/frontier"
)

// BreadthFirst expands configurations in level order.
//
// A configuration is marked visited when it is pushed, so it is queued at most once.
// The goal test runs when a configuration is popped. Since every move costs one, the first goal
// popped lies on a shortest path.
func BreadthFirst[S comparable](ctx context.Context, cfg Config, p domain.Problem[S]) (*domain.Result[S], error) {
	if err := p.Validate(false); err != nil {
		return nil, err
	}
	ctx, r := begin(ctx, cfg, domain.AlgorithmBreadthFirst)

	var nodes arena[S]
	root := nodes.add(p.Initial, -1)
	visited := map[S]struct{}{p.Initial: {}}
	queue := frontier.NewQueue(root)

	for {
		i, ok := queue.Pop()
		if !ok {
			break
		}
		cur := nodes.at(i)
		if p.Reached(cur.state) {
			return finish(ctx, r, domain.StatusSolved, nodes.path(i), 0), nil
		}

		admitted, err := r.admit(ctx)
		if err != nil {
			return nil, err
		}
		if !admitted {
			return finish[S](ctx, r, domain.StatusLimitReached, nil, 0), nil
		}

		successors := p.Successors(cur.state)
		r.expand(ctx, cur.state, nodes.parentState(i), cur.depth, cur.depth, queue.Len(), len(successors))

		for _, s := range successors {
			if _, seen := visited[s]; seen {
				continue
			}
			visited[s] = struct{}{}
			queue.Push(nodes.add(s, i))
		}
	}

	return finish[S](ctx, r, domain.StatusNoSolution, nil, 0), nil
}
