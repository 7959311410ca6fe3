// Package tictactoe provides the open-line evaluation of a tic-tac-toe position and a one-ply
// move chooser built on it.
package tictactoe

import (
	"errors"
	"fmt"
	"strings"
)

// Mark is the content of a cell.
type Mark byte

const (
	Empty Mark = 0
	X     Mark = 'X'
	O     Mark = 'O'
)

func (m Mark) String() string {
	if m == Empty {
		return "."
	}
	return string(rune(m))
}

// Opponent returns the other player's mark.
func (m Mark) Opponent() Mark {
	if m == X {
		return O
	}
	return X
}

// ErrInvalidBoard is returned when a board string cannot be parsed.
var ErrInvalidBoard = errors.New("invalid board")

// Board is an immutable 3x3 position, indexed [row][col].
type Board [3][3]Mark

// lines lists the eight winning lines: three rows, three columns, two diagonals.
var lines = func() [8][3][2]int {
	var ls [8][3][2]int
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			ls[i][j] = [2]int{i, j}   // row i
			ls[3+i][j] = [2]int{j, i} // column i
		}
		ls[6][i] = [2]int{i, i}
		ls[7][i] = [2]int{i, 2 - i}
	}
	return ls
}()

// Parse reads rows separated by '|', '/' or newlines; '.', '_' and '-' are empty cells.
func Parse(s string) (Board, error) {
	var b Board
	rows := strings.FieldsFunc(s, func(r rune) bool {
		return r == '|' || r == '/' || r == '\n'
	})
	if len(rows) != 3 {
		return b, fmt.Errorf("%w: expected 3 rows, got %d", ErrInvalidBoard, len(rows))
	}
	for i, row := range rows {
		row = strings.ReplaceAll(strings.TrimSpace(row), " ", "")
		if len(row) != 3 {
			return b, fmt.Errorf("%w: row %d must have 3 cells", ErrInvalidBoard, i)
		}
		for j, c := range strings.ToUpper(row) {
			switch c {
			case 'X':
				b[i][j] = X
			case 'O':
				b[i][j] = O
			case '.', '_', '-':
				b[i][j] = Empty
			default:
				return b, fmt.Errorf("%w: unexpected cell %q", ErrInvalidBoard, c)
			}
		}
	}
	return b, nil
}

func (b Board) String() string {
	var sb strings.Builder
	for i, row := range b {
		if i > 0 {
			sb.WriteByte('|')
		}
		for _, m := range row {
			sb.WriteString(m.String())
		}
	}
	return sb.String()
}

// OpenLines counts the lines that hold no mark other than symbol.
func OpenLines(b Board, symbol Mark) int {
	n := 0
	for _, line := range lines {
		open := true
		for _, c := range line {
			if m := b[c[0]][c[1]]; m != Empty && m != symbol {
				open = false
				break
			}
		}
		if open {
			n++
		}
	}
	return n
}

// Evaluate is the player's open-line count minus the opponent's. Positive means the player is
// ahead.
func Evaluate(b Board, player, opponent Mark) int {
	return OpenLines(b, player) - OpenLines(b, opponent)
}

// Winner returns the mark holding a complete line, or Empty.
func Winner(b Board) Mark {
	for _, line := range lines {
		m := b[line[0][0]][line[0][1]]
		if m == Empty {
			continue
		}
		if b[line[1][0]][line[1][1]] == m && b[line[2][0]][line[2][1]] == m {
			return m
		}
	}
	return Empty
}

// Moves returns every board obtained by placing m on an empty cell, in row-major order.
func Moves(b Board, m Mark) []Board {
	var out []Board
	for i := range b {
		for j := range b[i] {
			if b[i][j] != Empty {
				continue
			}
			next := b
			next[i][j] = m
			out = append(out, next)
		}
	}
	return out
}

// Move is a cell chosen by BestMove together with the resulting evaluation.
type Move struct {
	Row, Col int
	Score    int
}

// BestMove picks the player's move one ply ahead: a winning move first, then a move that blocks
// an immediate opponent win, otherwise the move maximising Evaluate. Ties go to the first cell in
// row-major order. ok is false when the board is full or already won.
func BestMove(b Board, player Mark) (mv Move, ok bool) {
	if Winner(b) != Empty {
		return mv, false
	}
	opponent := player.Opponent()

	var threats []Move
	found := false
	for i := range b {
		for j := range b[i] {
			if b[i][j] != Empty {
				continue
			}
			next := b
			next[i][j] = player
			if Winner(next) == player {
				return Move{Row: i, Col: j, Score: Evaluate(next, player, opponent)}, true
			}
			block := b
			block[i][j] = opponent
			if Winner(block) == opponent {
				threats = append(threats, Move{Row: i, Col: j, Score: Evaluate(next, player, opponent)})
			}
			score := Evaluate(next, player, opponent)
			if !found || score > mv.Score {
				mv, found = Move{Row: i, Col: j, Score: score}, true
			}
		}
	}
	if len(threats) > 0 {
		return threats[0], true
	}
	return mv, found
}
