package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArena_Path(t *testing.T) {
	var a arena[string]
	root := a.add("a", -1)
	b := a.add("b", root)
	c := a.add("c", b)
	a.add("x", root)

	assert.Equal(t, []string{"a", "b", "c"}, a.path(c))
	assert.Equal(t, []string{"a"}, a.path(root))
	assert.Equal(t, 2, a.at(c).depth)
	assert.Nil(t, a.parentState(root))
	assert.Equal(t, "b", a.parentState(c))
}

func TestCompact(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []int
	}{
		{"no loop", []int{0, 1, 2}, []int{0, 1, 2}},
		{"back and forth", []int{0, 1, 0, 1, 2}, []int{0, 1, 2}},
		{"nested loops", []int{0, 1, 2, 3, 2, 1, 4}, []int{0, 1, 4}},
		{"returns to start", []int{0, 1, 2, 0}, []int{0}},
		{"empty", []int{}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compact(tt.in))
		})
	}
}
