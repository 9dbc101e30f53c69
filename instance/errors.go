// Package instance defines Instance, the immutable graph model that
// coloring, tabu, and descent all read but never mutate, plus the text-format
// loader that builds one from a reader.
package instance

import "errors"

// Sentinel errors for instance construction and ingestion.
var (
	// ErrEmptyInstance indicates a non-positive vertex count.
	ErrEmptyInstance = errors.New("instance: vertex count must be positive")

	// ErrSelfLoop indicates an edge whose endpoints are equal, which makes
	// equitable coloring infeasible at any k.
	ErrSelfLoop = errors.New("instance: self-loop is not allowed")

	// ErrVertexRange indicates an edge endpoint outside [0,n).
	ErrVertexRange = errors.New("instance: edge endpoint out of range")

	// ErrBadHeader indicates the input file's first line is not two integers.
	ErrBadHeader = errors.New("instance: malformed instance header")

	// ErrBadEdgeLine indicates an edge line is not two integers.
	ErrBadEdgeLine = errors.New("instance: malformed edge line")
)
