// ABOUTME: Sentinel errors shared by the encoding and lookup stages
// ABOUTME: Both are recoverable; callers log and skip
package core

import "errors"

var (
	// ErrMissingGrid means no run of grid glyphs was found in a post
	ErrMissingGrid = errors.New("no emoji grid found")

	// ErrKeyNotFound means a puzzle id or word is absent from an index
	ErrKeyNotFound = errors.New("key not found")
)
