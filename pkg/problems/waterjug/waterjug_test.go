package waterjug_test

import (
	"testing"

	"github.com/aretw0/statespace/pkg/problems/waterjug"
	"github.com/stretchr/testify/assert"
)

func TestSuccessors(t *testing.T) {
	tests := []struct {
		in   waterjug.State
		want []waterjug.State
	}{
		{waterjug.State{A: 0, B: 0}, []waterjug.State{{A: 4, B: 0}, {A: 0, B: 3}}},
		{waterjug.State{A: 4, B: 0}, []waterjug.State{{A: 4, B: 3}, {A: 0, B: 0}, {A: 1, B: 3}}},
		{waterjug.State{A: 1, B: 3}, []waterjug.State{{A: 4, B: 3}, {A: 0, B: 3}, {A: 1, B: 0}, {A: 4, B: 0}}},
		{waterjug.State{A: 2, B: 2}, []waterjug.State{
			{A: 4, B: 2}, {A: 2, B: 3}, {A: 0, B: 2}, {A: 2, B: 0}, {A: 1, B: 3}, {A: 4, B: 0},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, waterjug.Classic.Successors(tt.in))
		})
	}
}

func TestSuccessors_StayWithinCapacity(t *testing.T) {
	j := waterjug.Jugs{CapA: 5, CapB: 2}
	for a := 0; a <= j.CapA; a++ {
		for b := 0; b <= j.CapB; b++ {
			s := waterjug.State{A: a, B: b}
			for _, next := range j.Successors(s) {
				assert.NoError(t, j.Validate(next), "%s -> %s", s, next)
				assert.Equal(t, s.A+s.B == next.A+next.B, isPour(s, next), "%s -> %s", s, next)
			}
		}
	}
}

// isPour reports whether the move conserved water by changing both jugs.
func isPour(s, next waterjug.State) bool {
	return s.A != next.A && s.B != next.B
}

func TestValidate(t *testing.T) {
	assert.NoError(t, waterjug.Classic.Validate(waterjug.State{A: 4, B: 3}))
	assert.ErrorIs(t, waterjug.Classic.Validate(waterjug.State{A: 5}), waterjug.ErrInvalidState)
	assert.ErrorIs(t, waterjug.Classic.Validate(waterjug.State{B: -1}), waterjug.ErrInvalidState)
	assert.ErrorIs(t, waterjug.Jugs{}.Validate(waterjug.State{}), waterjug.ErrInvalidState)
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 3, waterjug.Distance(waterjug.State{A: 4, B: 1}, waterjug.State{A: 2, B: 0}))
	assert.Zero(t, waterjug.Distance(waterjug.State{A: 2}, waterjug.State{A: 2}))
}

func TestNewProblem(t *testing.T) {
	p := waterjug.Classic.NewProblem(waterjug.State{A: 4}, waterjug.State{A: 2})

	assert.NoError(t, p.Validate(false))
	assert.Error(t, p.Validate(true), "water jug problems carry no heuristic")
	assert.True(t, p.Reached(waterjug.State{A: 2}))
	assert.False(t, p.Reached(waterjug.State{A: 2, B: 1}))
	assert.Equal(t, "(4,0)", p.Initial.String())
}
