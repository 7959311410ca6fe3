// Package blocks implements Blocks World: labelled blocks piled on a fixed number of stacks,
// moved one top block at a time.
package blocks

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/statespace/pkg/domain"
)

const separator = "|"

// ErrInvalidWorld is returned for malformed stack layouts.
var ErrInvalidWorld = errors.New("invalid world")

// World is an immutable stack layout. Each stack is listed bottom to top.
// Blocks are single characters, which keeps the canonical encoding a plain string.
type World struct {
	key string
}

// NewWorld builds a world from stacks listed bottom to top.
func NewWorld(stacks [][]string) (World, error) {
	if len(stacks) == 0 {
		return World{}, fmt.Errorf("%w: at least one stack is required", ErrInvalidWorld)
	}
	seen := make(map[string]bool)
	parts := make([]string, len(stacks))
	for i, stack := range stacks {
		var sb strings.Builder
		for _, block := range stack {
			if utf8.RuneCountInString(block) != 1 || block == separator {
				return World{}, fmt.Errorf("%w: block %q must be a single character", ErrInvalidWorld, block)
			}
			if seen[block] {
				return World{}, fmt.Errorf("%w: block %q appears twice", ErrInvalidWorld, block)
			}
			seen[block] = true
			sb.WriteString(block)
		}
		parts[i] = sb.String()
	}
	return World{key: strings.Join(parts, separator)}, nil
}

// MustWorld is NewWorld for literals known to be valid. It panics on error.
func MustWorld(stacks ...[]string) World {
	w, err := NewWorld(stacks)
	if err != nil {
		panic(err)
	}
	return w
}

// Parse reads the canonical encoding, e.g. "AB|C|" for three stacks.
func Parse(s string) (World, error) {
	raw := strings.Split(s, separator)
	stacks := make([][]string, len(raw))
	for i, part := range raw {
		stacks[i] = strings.Split(part, "")
		if part == "" {
			stacks[i] = nil
		}
	}
	return NewWorld(stacks)
}

// Stacks returns the layout as fresh slices, bottom to top.
func (w World) Stacks() [][]string {
	raw := strings.Split(w.key, separator)
	out := make([][]string, len(raw))
	for i, part := range raw {
		if part != "" {
			out[i] = strings.Split(part, "")
		} else {
			out[i] = []string{}
		}
	}
	return out
}

// Key returns the canonical encoding.
func (w World) Key() string {
	return w.key
}

// String renders the world as a tuple of stacks, e.g. "(A B) (C) ()".
func (w World) String() string {
	stacks := w.Stacks()
	parts := make([]string, len(stacks))
	for i, s := range stacks {
		parts[i] = "(" + strings.Join(s, " ") + ")"
	}
	return strings.Join(parts, " ")
}

// Successors moves the top block of every non-empty stack onto every other stack.
// Order is source-major, destination-minor.
func Successors(w World) []World {
	stacks := w.Stacks()
	var out []World
	for i, src := range stacks {
		if len(src) == 0 {
			continue
		}
		block := src[len(src)-1]
		for j := range stacks {
			if i == j {
				continue
			}
			parts := make([]string, len(stacks))
			for k, s := range stacks {
				switch k {
				case i:
					parts[k] = strings.Join(s[:len(s)-1], "")
				case j:
					parts[k] = strings.Join(s, "") + block
				default:
					parts[k] = strings.Join(s, "")
				}
			}
			out = append(out, World{key: strings.Join(parts, separator)})
		}
	}
	return out
}

// NewProblem wires Blocks World into a search problem.
// The positional heuristic is attached as Distance for local search.
func NewProblem(initial, goal World) domain.Problem[World] {
	return domain.Problem[World]{
		Initial:    initial,
		Goal:       goal,
		Successors: Successors,
		Heuristic:  Distance,
		Compare: func(a, b World) int {
			return strings.Compare(a.key, b.key)
		},
	}
}
