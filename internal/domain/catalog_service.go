package domain

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/mediashelf/mediashelf/internal/models"
	"github.com/mediashelf/mediashelf/internal/ports"
)

// CatalogService fronts the raw store with the create policy: strict
// field validation, random-uuid id assignment (never derived from the
// collection size, so ids stay unique across delete/create cycles),
// and a change-event feed for connected clients.
type CatalogService struct {
	store    ports.MediaStore
	validate *validator.Validate
	events   chan ports.CatalogEvent
}

func NewCatalogService(store ports.MediaStore) *CatalogService {
	return &CatalogService{
		store:    store,
		validate: validator.New(),
		events:   make(chan ports.CatalogEvent, 100),
	}
}

func (c *CatalogService) Events() <-chan ports.CatalogEvent { return c.events }

// emit drops the event if no listener is keeping up. Event push is best
// effort; the catalog itself is the source of truth.
func (c *CatalogService) emit(ev ports.CatalogEvent) {
	select {
	case c.events <- ev:
	default:
	}
}

func (c *CatalogService) ListAll(ctx context.Context) (map[string]models.Media, error) {
	return c.store.ListAll(ctx)
}

func (c *CatalogService) ListByCategory(ctx context.Context, category string) (map[string]models.Media, error) {
	return c.store.ListByCategory(ctx, category)
}

func (c *CatalogService) SearchByName(ctx context.Context, query string) (map[string]models.Media, error) {
	return c.store.SearchByName(ctx, query)
}

func (c *CatalogService) GetByID(ctx context.Context, id string) (*models.Media, error) {
	return c.store.GetByID(ctx, id)
}

func (c *CatalogService) Create(ctx context.Context, req models.CreateMediaRequest) (*models.Media, error) {
	if err := c.validate.Struct(&req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return nil, &ports.ValidationError{Field: jsonFieldName(fieldErrs[0].Field())}
		}
		return nil, err
	}

	media := models.Media{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Author:          req.Author,
		PublicationDate: req.PublicationDate,
		Category:        req.Category,
	}

	if err := c.store.Insert(ctx, media); err != nil {
		return nil, err
	}

	c.emit(ports.CatalogEvent{Action: ports.EventCreated, ID: media.ID, Media: &media})
	return &media, nil
}

func (c *CatalogService) Delete(ctx context.Context, id string) error {
	if err := c.store.Delete(ctx, id); err != nil {
		return err
	}

	c.emit(ports.CatalogEvent{Action: ports.EventDeleted, ID: id})
	return nil
}

// jsonFieldName maps CreateMediaRequest struct field names to their
// wire names, so validation errors name the field the client sent.
func jsonFieldName(structField string) string {
	switch structField {
	case "Name":
		return "name"
	case "Author":
		return "author"
	case "PublicationDate":
		return "publication_date"
	case "Category":
		return "category"
	}
	return structField
}
