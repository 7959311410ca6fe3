/*
Package statespace is a generic state-space search engine for puzzles and planning problems.

A problem is described by an initial configuration, a successor function and a goal test. The
engine explores the implicit graph those define and returns the sequence of configurations that
leads from the initial one to the goal.

# Concept

Configurations are plain comparable Go values (arrays, small structs, canonical strings). The
engine stores them in an arena with index parent links, so a solution path is rebuilt by walking
back from the goal once, never copied while searching.

Three drivers are provided:

  - BreadthFirst: complete, and optimal in number of moves.
  - AStar: expands in order of g + h. Optimal with an admissible and consistent heuristic.
  - HillClimb: steepest-ascent local search over the heuristic, with optional sideways moves and
    seeded random restarts. Neither complete nor optimal.

Domains ship under pkg/problems: the 8-puzzle, Blocks World, the water jug puzzle and a
tic-tac-toe position evaluator.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/statespace"
		"github.com/aretw0/statespace/pkg/problems/puzzle"
	)

	func main() {
		start, err := puzzle.Parse("123|405|786")
		if err != nil {
			log.Fatal(err)
		}

		p := puzzle.NewProblem(start, puzzle.Goal, puzzle.Manhattan)
		res, err := statespace.AStar(context.Background(), p, statespace.WithMaxExpansions(100000))
		if err != nil {
			log.Fatal(err)
		}
		if err := res.Err(); err != nil {
			log.Fatal(err)
		}

		for _, b := range res.Path {
			fmt.Println(b.Grid())
			fmt.Println()
		}
	}

A search that ends without the goal is not an error: the returned Result carries the Status
(no_solution, local_optimum or limit_reached) and Result.Err maps it to a sentinel error. Errors
are returned for invalid problems and cancelled contexts.
*/
package statespace
