package puzzle

import "fmt"

// Manhattan sums, over every non-blank tile, the row and column distance between its position
// in b and in goal. Admissible and consistent for sliding tiles.
// Both boards must come from NewBoard or Parse; a tile outside 0..8 violates the board contract
// and panics, like BlankAt.
func Manhattan(b, goal Board) int {
	var pos [Size * Size][2]int
	for i, row := range goal {
		for j, v := range row {
			pos[checkTile(goal, v)] = [2]int{i, j}
		}
	}
	d := 0
	for i, row := range b {
		for j, v := range row {
			if checkTile(b, v) == Blank {
				continue
			}
			d += abs(i-pos[v][0]) + abs(j-pos[v][1])
		}
	}
	return d
}

func checkTile(b Board, v int) int {
	if v < 0 || v >= Size*Size {
		panic(fmt.Sprintf("puzzle: tile %d out of range in board %s", v, b))
	}
	return v
}

// Misplaced counts non-blank tiles that are not in their goal cell.
func Misplaced(b, goal Board) int {
	n := 0
	for i, row := range b {
		for j, v := range row {
			if v != Blank && v != goal[i][j] {
				n++
			}
		}
	}
	return n
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
