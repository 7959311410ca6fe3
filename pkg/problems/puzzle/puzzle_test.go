package puzzle_test

import (
	"math/rand"
	"testing"

	"github.com/aretw0/statespace/pkg/problems/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	want := puzzle.Board{{1, 2, 3}, {4, 0, 5}, {7, 8, 6}}
	for _, in := range []string{
		"123|405|786",
		"1 2 3 / 4 _ 5 / 7 8 6",
		"1,2,3\n4,.,5\n7,8,6",
	} {
		b, err := puzzle.Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, b, in)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{
		"123|456",
		"123|455|780",
		"123|4x6|780",
		"1234|560|78",
		"123|456|789",
	} {
		_, err := puzzle.Parse(in)
		assert.ErrorIs(t, err, puzzle.ErrInvalidBoard, in)
	}
}

func TestBoard_Rendering(t *testing.T) {
	b := puzzle.Board{{1, 2, 3}, {4, 0, 5}, {7, 8, 6}}
	assert.Equal(t, "123|405|786", b.String())
	assert.Equal(t, "1 2 3\n4 _ 5\n7 8 6", b.Grid())
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 0, 5}, {7, 8, 6}}, b.Rows())

	back, err := puzzle.NewBoard(b.Rows())
	require.NoError(t, err)
	assert.Equal(t, b, back)
}

func TestSuccessors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"center", "123|405|786", []string{"103|425|786", "123|485|706", "123|045|786", "123|450|786"}},
		{"corner", "123|456|780", []string{"123|450|786", "123|456|708"}},
		{"edge", "102|345|678", []string{"142|305|678", "012|345|678", "120|345|678"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := puzzle.Parse(tt.in)
			require.NoError(t, err)

			var got []string
			for _, s := range puzzle.Successors(b) {
				got = append(got, s.String())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBlankAt_PanicsWithoutBlank(t *testing.T) {
	b := puzzle.Board{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	assert.Panics(t, func() { b.BlankAt() })
}

func TestHeuristics(t *testing.T) {
	b, err := puzzle.Parse("123|405|786")
	require.NoError(t, err)

	assert.Equal(t, 2, puzzle.Manhattan(b, puzzle.Goal))
	assert.Equal(t, 2, puzzle.Misplaced(b, puzzle.Goal))
	assert.Zero(t, puzzle.Manhattan(puzzle.Goal, puzzle.Goal))
	assert.Zero(t, puzzle.Misplaced(puzzle.Goal, puzzle.Goal))

	far, err := puzzle.Parse("876|543|210")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, puzzle.Manhattan(far, puzzle.Goal), puzzle.Misplaced(far, puzzle.Goal))
}

func TestManhattan_PanicsOnTileOutOfRange(t *testing.T) {
	b := puzzle.Board{{1, 2, 3}, {4, 9, 6}, {7, 8, 0}}

	assert.PanicsWithValue(t, "puzzle: tile 9 out of range in board 123|496|780", func() {
		puzzle.Manhattan(b, puzzle.Goal)
	})
	assert.Panics(t, func() { puzzle.Manhattan(puzzle.Goal, b) })
}

func TestManhattan_Consistent(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	b := puzzle.Goal
	for i := 0; i < 200; i++ {
		for _, s := range puzzle.Successors(b) {
			diff := puzzle.Manhattan(b, puzzle.Goal) - puzzle.Manhattan(s, puzzle.Goal)
			assert.LessOrEqual(t, diff, 1)
			assert.GreaterOrEqual(t, diff, -1)
		}
		b = puzzle.Shuffle(rng, b, 1)
	}
}

func TestCompare(t *testing.T) {
	a, _ := puzzle.Parse("123|405|786")
	b, _ := puzzle.Parse("123|450|786")

	assert.Negative(t, puzzle.Compare(a, b))
	assert.Positive(t, puzzle.Compare(b, a))
	assert.Zero(t, puzzle.Compare(a, a))
}

func TestSolvable(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	assert.True(t, puzzle.Solvable(puzzle.Shuffle(rng, puzzle.Goal, 31), puzzle.Goal))

	swapped, err := puzzle.Parse("213|456|780")
	require.NoError(t, err)
	assert.False(t, puzzle.Solvable(swapped, puzzle.Goal))
}

func TestNewProblem(t *testing.T) {
	b, _ := puzzle.Parse("123|405|786")
	p := puzzle.NewProblem(b, puzzle.Goal, puzzle.Manhattan)

	assert.NoError(t, p.Validate(true))
	assert.Equal(t, 2, p.Estimate(b))
	assert.True(t, p.Reached(puzzle.Goal))
	assert.False(t, p.Reached(b))
}
