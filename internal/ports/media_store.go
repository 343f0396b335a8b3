package ports

import (
	"context"
	"errors"
	"fmt"

	"github.com/mediashelf/mediashelf/internal/models"
)

// ErrNotFound is returned when an id (or, for delete, the record behind
// it) is absent from the catalog.
var ErrNotFound = errors.New("media not found")

// ErrAlreadyExists is returned when an insert collides with a live id.
var ErrAlreadyExists = errors.New("media id already in catalog")

// ValidationError reports a missing or empty required field on create.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing field: %s", e.Field)
}

// MediaStore owns the durable collection. Implementations must reload
// durable state before every operation so out-of-process writers are
// observed, and must write the full collection back on every mutation.
type MediaStore interface {
	// ListAll returns the whole collection keyed by id. Never fails on
	// an empty store.
	ListAll(ctx context.Context) (map[string]models.Media, error)

	// ListByCategory returns the subset whose category matches
	// case-insensitively. Unknown categories yield an empty map.
	ListByCategory(ctx context.Context, category string) (map[string]models.Media, error)

	// SearchByName returns entries whose name contains the query,
	// case-insensitively. No match yields an empty map, not an error.
	SearchByName(ctx context.Context, query string) (map[string]models.Media, error)

	// GetByID returns the single record for id, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Media, error)

	// Insert stores a record under its pre-assigned id and persists the
	// collection before returning.
	Insert(ctx context.Context, media models.Media) error

	// Delete removes the record for id and persists, or returns
	// ErrNotFound if the id is absent.
	Delete(ctx context.Context, id string) error
}
