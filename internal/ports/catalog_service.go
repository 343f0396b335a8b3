package ports

import (
	"context"

	"github.com/mediashelf/mediashelf/internal/models"
)

// Catalog event actions.
const (
	EventCreated = "created"
	EventDeleted = "deleted"
)

// CatalogEvent describes one catalog mutation, pushed to connected
// presentation clients.
type CatalogEvent struct {
	Action string        `json:"action"`
	ID     string        `json:"id"`
	Media  *models.Media `json:"media,omitempty"`
}

// CatalogService is the boundary-facing surface: validation and id
// assignment on top of the raw store, plus a change-event feed.
type CatalogService interface {
	ListAll(ctx context.Context) (map[string]models.Media, error)
	ListByCategory(ctx context.Context, category string) (map[string]models.Media, error)
	SearchByName(ctx context.Context, query string) (map[string]models.Media, error)
	GetByID(ctx context.Context, id string) (*models.Media, error)
	Create(ctx context.Context, req models.CreateMediaRequest) (*models.Media, error)
	Delete(ctx context.Context, id string) error

	// Events yields one CatalogEvent per successful mutation.
	Events() <-chan CatalogEvent
}
