// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." and callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed into a view builder.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrUnknownVertex indicates that a referenced key is not present
	// in the matrix's vertex index.
	ErrUnknownVertex = errors.New("matrix: unknown vertex")

	// ErrNegativeWeight signals a negative edge weight where distances are required.
	ErrNegativeWeight = errors.New("matrix: negative edge weight")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")
)
