package search

import "slices"

// node is an arena entry. parent is an index into the same arena, -1 for the initial state.
type node[S comparable] struct {
	state  S
	parent int
	depth  int
}

// arena owns every node created during a run. Parent links are indices, so pushing a node onto
// a frontier never copies a path.
type arena[S comparable] struct {
	nodes []node[S]
}

func (a *arena[S]) add(state S, parent int) int {
	depth := 0
	if parent >= 0 {
		depth = a.nodes[parent].depth + 1
	}
	a.nodes = append(a.nodes, node[S]{state: state, parent: parent, depth: depth})
	return len(a.nodes) - 1
}

func (a *arena[S]) at(i int) node[S] {
	return a.nodes[i]
}

// parentState returns the parent configuration of node i, or nil for the root.
func (a *arena[S]) parentState(i int) any {
	p := a.nodes[i].parent
	if p < 0 {
		return nil
	}
	return a.nodes[p].state
}

// path walks parent links from node i back to the root and returns root..i.
func (a *arena[S]) path(i int) []S {
	out := make([]S, 0, a.nodes[i].depth+1)
	for ; i >= 0; i = a.nodes[i].parent {
		out = append(out, a.nodes[i].state)
	}
	slices.Reverse(out)
	return out
}

// compact removes cycles from a path: when a configuration reappears, everything between its
// two occurrences is dropped.
func compact[S comparable](path []S) []S {
	out := make([]S, 0, len(path))
	index := make(map[S]int, len(path))
	for _, s := range path {
		if i, seen := index[s]; seen {
			for _, dropped := range out[i+1:] {
				delete(index, dropped)
			}
			out = out[:i+1]
			continue
		}
		index[s] = len(out)
		out = append(out, s)
	}
	return out
}
