// Package puzzle implements the 8-puzzle: a 3x3 sliding-tile board with one blank cell.
package puzzle

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/aretw0/statespace/pkg/domain"
)

// Size is the board width and height.
const Size = 3

// Blank is the value of the empty cell.
const Blank = 0

// ErrInvalidBoard is returned for boards that are not a permutation of 0..8.
var ErrInvalidBoard = errors.New("invalid board")

// Board is an immutable board configuration, indexed [row][col].
type Board [Size][Size]int

// Goal is the conventional solved configuration.
var Goal = Board{
	{1, 2, 3},
	{4, 5, 6},
	{7, 8, 0},
}

// NewBoard builds a board from rows and checks it holds every tile exactly once.
func NewBoard(rows [][]int) (Board, error) {
	var b Board
	if len(rows) != Size {
		return b, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidBoard, Size, len(rows))
	}
	var seen [Size * Size]bool
	for i, row := range rows {
		if len(row) != Size {
			return b, fmt.Errorf("%w: row %d has %d cells", ErrInvalidBoard, i, len(row))
		}
		for j, v := range row {
			if v < 0 || v >= Size*Size {
				return b, fmt.Errorf("%w: tile %d out of range", ErrInvalidBoard, v)
			}
			if seen[v] {
				return b, fmt.Errorf("%w: tile %d appears twice", ErrInvalidBoard, v)
			}
			seen[v] = true
			b[i][j] = v
		}
	}
	return b, nil
}

// Parse reads a board written row by row, rows separated by '|', '/' or newlines.
// Cells may be separated by commas or spaces; '_' and '.' denote the blank.
func Parse(s string) (Board, error) {
	rawRows := strings.FieldsFunc(s, func(r rune) bool {
		return r == '|' || r == '/' || r == '\n'
	})
	rows := make([][]int, 0, len(rawRows))
	for _, raw := range rawRows {
		raw = strings.TrimSpace(raw)
		cells := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' })
		if len(cells) == 1 && len(cells[0]) == Size {
			cells = strings.Split(cells[0], "")
		}
		row := make([]int, 0, len(cells))
		for _, c := range cells {
			if c == "_" || c == "." {
				row = append(row, Blank)
				continue
			}
			v, err := strconv.Atoi(c)
			if err != nil {
				return Board{}, fmt.Errorf("%w: %q is not a tile", ErrInvalidBoard, c)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return NewBoard(rows)
}

// Rows returns the board as nested slices.
func (b Board) Rows() [][]int {
	rows := make([][]int, Size)
	for i := range b {
		rows[i] = append([]int(nil), b[i][:]...)
	}
	return rows
}

// String renders the board on one line, e.g. "123|405|786".
func (b Board) String() string {
	var sb strings.Builder
	for i, row := range b {
		if i > 0 {
			sb.WriteByte('|')
		}
		for _, v := range row {
			sb.WriteString(strconv.Itoa(v))
		}
	}
	return sb.String()
}

// Grid renders the board on Size lines with '_' for the blank.
func (b Board) Grid() string {
	var sb strings.Builder
	for i, row := range b {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if v == Blank {
				sb.WriteByte('_')
			} else {
				sb.WriteString(strconv.Itoa(v))
			}
		}
	}
	return sb.String()
}

// BlankAt locates the blank cell. A board without a blank violates the board contract and panics.
func (b Board) BlankAt() (row, col int) {
	for i, r := range b {
		for j, v := range r {
			if v == Blank {
				return i, j
			}
		}
	}
	panic("puzzle: board has no blank tile: " + b.String())
}

// moves lists the blank displacements in generation order: up, down, left, right.
var moves = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Successors slides the blank in every in-bounds direction.
func Successors(b Board) []Board {
	x, y := b.BlankAt()
	out := make([]Board, 0, len(moves))
	for _, mv := range moves {
		nx, ny := x+mv[0], y+mv[1]
		if nx < 0 || nx >= Size || ny < 0 || ny >= Size {
			continue
		}
		next := b
		next[x][y], next[nx][ny] = next[nx][ny], next[x][y]
		out = append(out, next)
	}
	return out
}

// Compare orders boards lexicographically, row by row.
func Compare(a, b Board) int {
	for i := range a {
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				if a[i][j] < b[i][j] {
					return -1
				}
				return 1
			}
		}
	}
	return 0
}

// Solvable reports whether goal is reachable from b. On an odd-width board a move never changes
// the parity of the tile inversion count, and boards of equal parity are mutually reachable.
func Solvable(b, goal Board) bool {
	return inversions(b)%2 == inversions(goal)%2
}

func inversions(b Board) int {
	tiles := make([]int, 0, Size*Size-1)
	for _, row := range b {
		for _, v := range row {
			if v != Blank {
				tiles = append(tiles, v)
			}
		}
	}
	n := 0
	for i := range tiles {
		for j := i + 1; j < len(tiles); j++ {
			if tiles[i] > tiles[j] {
				n++
			}
		}
	}
	return n
}

// Shuffle performs a random walk of steps moves starting at from. The result is always
// reachable from from, hence solvable.
func Shuffle(rng *rand.Rand, from Board, steps int) Board {
	b := from
	for i := 0; i < steps; i++ {
		next := Successors(b)
		b = next[rng.Intn(len(next))]
	}
	return b
}

// NewProblem wires the board functions into a search problem.
func NewProblem(initial, goal Board, h domain.Heuristic[Board]) domain.Problem[Board] {
	return domain.Problem[Board]{
		Initial:    initial,
		Goal:       goal,
		Successors: Successors,
		Heuristic:  h,
		Compare:    Compare,
	}
}
