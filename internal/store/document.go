// Package store abstracts the path-addressed document store backing the
// trip planner. The production implementation is Firebase Realtime Database;
// an in-memory implementation backs tests and local development.
package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Document is a path-addressed key-value document store. Paths are
// slash-separated, e.g. "tripPlans/<id>".
type Document interface {
	// GenerateID allocates a new unique child id under collection without
	// writing any data.
	GenerateID(ctx context.Context, collection string) (string, error)

	// Set writes value at path, replacing any existing record.
	Set(ctx context.Context, path string, value any) error

	// Get reads the record at path into out. Returns false (and no error)
	// when the path is absent.
	Get(ctx context.Context, path string, out any) (bool, error)

	// Update shallow-merges partial into the record at path: top-level keys
	// overwrite, unspecified keys are untouched.
	Update(ctx context.Context, path string, partial map[string]any) error

	// GetAll reads every record under collection, keyed by child id.
	GetAll(ctx context.Context, collection string) (map[string]json.RawMessage, error)
}

// StorageError wraps a failed store operation with its path for diagnosis.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
