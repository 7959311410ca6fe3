package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/statespace/pkg/problems/tictactoe"
)

// ErrInvalidPlayer is returned when the player is not X or O.
var ErrInvalidPlayer = errors.New("player must be X or O")

// RunEval prints the open-line evaluation of a tic-tac-toe board from player's point of view,
// followed by the suggested move.
func RunEval(board, player string, opts Options) error {
	b, err := tictactoe.Parse(board)
	if err != nil {
		return err
	}
	var me tictactoe.Mark
	switch strings.ToUpper(strings.TrimSpace(player)) {
	case "X":
		me = tictactoe.X
	case "O":
		me = tictactoe.O
	default:
		return fmt.Errorf("%w, got %q", ErrInvalidPlayer, player)
	}
	opp := me.Opponent()

	out := opts.out()
	fmt.Fprintf(out, "board: %s\n", b)
	fmt.Fprintf(out, "open lines: %s=%d %s=%d\n", me, tictactoe.OpenLines(b, me), opp, tictactoe.OpenLines(b, opp))
	fmt.Fprintf(out, "evaluation: %d\n", tictactoe.Evaluate(b, me, opp))

	if w := tictactoe.Winner(b); w != tictactoe.Empty {
		fmt.Fprintf(out, "winner: %s\n", w)
		return nil
	}
	if mv, ok := tictactoe.BestMove(b, me); ok {
		fmt.Fprintf(out, "best move: row %d, col %d (evaluation %d)\n", mv.Row, mv.Col, mv.Score)
	} else {
		fmt.Fprintln(out, "best move: none")
	}
	return nil
}
