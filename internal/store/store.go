// Package store keeps the game collection in memory.
//
// Stores know nothing about business rules: they filter, sort, look up and
// mutate their own collection and return copies so callers cannot reach the
// stored entries.
package store

import "github.com/google/uuid"

// IDGenerator returns a new unique entity id.
type IDGenerator func() string

// NewID generates a random UUID string.
func NewID() string {
	return uuid.NewString()
}
