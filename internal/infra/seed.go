package infra

import (
	"context"
	"fmt"

	"github.com/mediashelf/mediashelf/internal/models"
	"github.com/mediashelf/mediashelf/internal/ports"
)

// SampleCatalog is the starter dataset offered to fresh installs.
var SampleCatalog = []models.CreateMediaRequest{
	{Name: "The Hobbit", Author: "J.R.R. Tolkien", PublicationDate: "1937", Category: "Book"},
	{Name: "Inception", Author: "Christopher Nolan", PublicationDate: "2010", Category: "Film"},
	{Name: "National Geographic", Author: "Various", PublicationDate: "2020-06", Category: "Magazine"},
}

// SeedSampleData inserts the sample catalog through the normal create
// path, but only when the store is empty. Returns how many records were
// added.
func SeedSampleData(ctx context.Context, catalog ports.CatalogService) (int, error) {
	existing, err := catalog.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("check catalog before seeding: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	for _, req := range SampleCatalog {
		if _, err := catalog.Create(ctx, req); err != nil {
			return 0, fmt.Errorf("seed %q: %w", req.Name, err)
		}
	}
	return len(SampleCatalog), nil
}
