package blocks

// Score is the positional heuristic. For every stack index present in both worlds it adds one per
// position holding the goal block, subtracts one per position holding another block, and
// subtracts the number of blocks piled above the goal stack's height. Higher is better.
func Score(w, goal World) int {
	start, target := w.Stacks(), goal.Stacks()
	score := 0
	for k := range start {
		if k >= len(target) {
			continue
		}
		s, g := start[k], target[k]
		for i := 0; i < min(len(s), len(g)); i++ {
			if s[i] == g[i] {
				score++
			} else {
				score--
			}
		}
		if len(s) > len(g) {
			score -= len(s) - len(g)
		}
	}
	return score
}

// Distance turns Score into a value to minimise: the goal's block count minus Score.
// It is never negative and is zero exactly when every goal position is matched with nothing
// extra on top, which for worlds with the goal's stack count means w equals goal.
//
// Distance can overestimate the number of moves left, so it is not admissible. It guides hill
// climbing only and must not be used where A* optimality is expected.
func Distance(w, goal World) int {
	total := 0
	for _, s := range goal.Stacks() {
		total += len(s)
	}
	return total - Score(w, goal)
}
