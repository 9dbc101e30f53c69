// Package tabu implements the tabu-search engine that drives a
// coloring.State toward zero conflicts at a fixed number of colors: a
// best-improvement search over the transfer and exchange neighborhoods,
// gated by a tabu table with aspiration, with diversification by random
// perturbation when progress stalls.
package tabu

import "errors"

// Sentinel errors for Config validation.
var (
	ErrNegativeAlpha        = errors.New("tabu: alpha must be non-negative")
	ErrNegativeBeta         = errors.New("tabu: beta must be non-negative")
	ErrNonPositiveMaxIter   = errors.New("tabu: max iterations must be positive")
	ErrNegativePerturbation = errors.New("tabu: perturbation strength must be non-negative")
)
