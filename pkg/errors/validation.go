package errors

import (
	"math"
	"unicode"
)

// maxNodeIDLength bounds node identifiers read from graph files.
const maxNodeIDLength = 256

// ValidateNodeID validates a node identifier.
//
// The validation rules are intentionally conservative:
//   - No empty ids
//   - No control characters (ids end up in DOT output and terminal tables)
//   - Maximum length of 256 characters
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidGraph, "node id cannot be empty")
	}

	if len(id) > maxNodeIDLength {
		return New(ErrCodeInvalidGraph, "node id too long (max %d characters)", maxNodeIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidGraph, "node id %q contains control characters", id)
		}
	}

	return nil
}

// ValidateWeight rejects weights that weighted algorithms cannot handle.
// Negative and NaN weights break the greedy invariants of Dijkstra and Kruskal.
func ValidateWeight(w float64) error {
	if math.IsNaN(w) {
		return New(ErrCodeInvalidParameter, "edge weight is NaN")
	}
	if w < 0 {
		return New(ErrCodeInvalidParameter, "negative edge weight %g", w)
	}
	return nil
}

// ValidateClusterCount rejects a cluster count of zero.
func ValidateClusterCount(k int) error {
	if k <= 0 {
		return New(ErrCodeInvalidParameter, "cluster count must be positive, got %d", k)
	}
	return nil
}
