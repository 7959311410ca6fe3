package domain

import "errors"

// ErrNoSolution is reported when the frontier is exhausted without reaching the goal.
var ErrNoSolution = errors.New("no solution")

// ErrLocalOptimum is reported when hill climbing stalls before reaching the goal.
var ErrLocalOptimum = errors.New("local optimum reached")

// ErrExpansionLimit is reported when a search spends its expansion budget.
var ErrExpansionLimit = errors.New("expansion limit reached")

// ErrInvalidProblem is returned when a problem lacks what the chosen algorithm needs.
var ErrInvalidProblem = errors.New("invalid problem")

// ErrUnknownAlgorithm is returned for unrecognised algorithm names.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")
