// Package storage persists rendered diagrams so the API can serve them
// by ID after the render completes. The in-memory store backs tests and
// single-instance deployments; MongoStore backs multi-instance
// deployments.
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Diagram is a persisted render result.
type Diagram struct {
	ID          uuid.UUID `json:"id" bson:"_id"`
	CircuitHash string    `json:"circuit_hash" bson:"circuit_hash"`
	Format      string    `json:"format" bson:"format"`
	Data        []byte    `json:"data" bson:"data"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// Store persists diagrams. Implementations must be safe for concurrent
// use.
type Store interface {
	// Put saves a diagram, overwriting any existing record with the
	// same ID.
	Put(ctx context.Context, d Diagram) error

	// Get returns the diagram with the given ID, or a NOT_FOUND error.
	Get(ctx context.Context, id uuid.UUID) (Diagram, error)

	// List returns all stored diagrams, newest first.
	List(ctx context.Context) ([]Diagram, error)

	// Delete removes a diagram. Deleting an absent ID is not an error.
	Delete(ctx context.Context, id uuid.UUID) error

	// Close releases any underlying resources.
	Close(ctx context.Context) error
}
