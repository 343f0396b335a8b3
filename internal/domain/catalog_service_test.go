package domain

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/mediashelf/mediashelf/internal/infra"
	"github.com/mediashelf/mediashelf/internal/models"
	"github.com/mediashelf/mediashelf/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T) *CatalogService {
	t.Helper()
	store := infra.NewFileMediaStore(filepath.Join(t.TempDir(), "media.json"))
	return NewCatalogService(store)
}

func duneRequest() models.CreateMediaRequest {
	return models.CreateMediaRequest{
		Name:            "Dune",
		Author:          "Frank Herbert",
		PublicationDate: "1965",
		Category:        "Book",
	}
}

func TestCreateAssignsIDAndStoresFields(t *testing.T) {
	catalog := newTestCatalog(t)
	ctx := context.Background()

	media, err := catalog.Create(ctx, duneRequest())
	require.NoError(t, err)
	require.NotEmpty(t, media.ID)
	assert.Equal(t, "Dune", media.Name)
	assert.Equal(t, "Frank Herbert", media.Author)
	assert.Equal(t, "1965", media.PublicationDate)
	assert.Equal(t, "Book", media.Category)

	got, err := catalog.GetByID(ctx, media.ID)
	require.NoError(t, err)
	assert.Equal(t, *media, *got)
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.CreateMediaRequest)
		wantField string
	}{
		{name: "empty name", mutate: func(r *models.CreateMediaRequest) { r.Name = "" }, wantField: "name"},
		{name: "empty author", mutate: func(r *models.CreateMediaRequest) { r.Author = "" }, wantField: "author"},
		{name: "empty publication date", mutate: func(r *models.CreateMediaRequest) { r.PublicationDate = "" }, wantField: "publication_date"},
		{name: "empty category", mutate: func(r *models.CreateMediaRequest) { r.Category = "" }, wantField: "category"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			catalog := newTestCatalog(t)
			ctx := context.Background()

			req := duneRequest()
			tc.mutate(&req)

			_, err := catalog.Create(ctx, req)
			var vErr *ports.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.wantField, vErr.Field)

			// A rejected create must not touch the collection.
			all, err := catalog.ListAll(ctx)
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

// Ids must stay unique across interleaved delete/create cycles. With a
// count-derived id scheme this sequence would mint a duplicate.
func TestNoIDReuseAfterDelete(t *testing.T) {
	catalog := newTestCatalog(t)
	ctx := context.Background()

	first, err := catalog.Create(ctx, duneRequest())
	require.NoError(t, err)
	second, err := catalog.Create(ctx, duneRequest())
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	require.NoError(t, catalog.Delete(ctx, first.ID))

	third, err := catalog.Create(ctx, duneRequest())
	require.NoError(t, err)
	assert.NotEqual(t, second.ID, third.ID)

	all, err := catalog.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

// Concurrent creates against one store must all survive: the store
// serializes its read-modify-write cycle, so no writer can overwrite
// another's update, and every id must come out unique.
func TestConcurrentCreates(t *testing.T) {
	catalog := newTestCatalog(t)
	ctx := context.Background()

	const writers = 20

	var wg sync.WaitGroup
	ids := make(chan string, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			media, err := catalog.Create(ctx, duneRequest())
			if err != nil {
				t.Error(err)
				return
			}
			ids <- media.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[string]bool{}
	for id := range ids {
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	require.Len(t, seen, writers)

	all, err := catalog.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, writers)
}

func TestDeleteAbsentReturnsNotFound(t *testing.T) {
	catalog := newTestCatalog(t)

	err := catalog.Delete(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestMutationsEmitEvents(t *testing.T) {
	catalog := newTestCatalog(t)
	ctx := context.Background()

	media, err := catalog.Create(ctx, duneRequest())
	require.NoError(t, err)

	ev := <-catalog.Events()
	assert.Equal(t, ports.EventCreated, ev.Action)
	assert.Equal(t, media.ID, ev.ID)
	require.NotNil(t, ev.Media)
	assert.Equal(t, "Dune", ev.Media.Name)

	require.NoError(t, catalog.Delete(ctx, media.ID))

	ev = <-catalog.Events()
	assert.Equal(t, ports.EventDeleted, ev.Action)
	assert.Equal(t, media.ID, ev.ID)
	assert.Nil(t, ev.Media)
}

func TestFailedMutationsEmitNoEvent(t *testing.T) {
	catalog := newTestCatalog(t)
	ctx := context.Background()

	req := duneRequest()
	req.Name = ""
	_, err := catalog.Create(ctx, req)
	require.Error(t, err)

	err = catalog.Delete(ctx, "no-such-id")
	require.Error(t, err)

	select {
	case ev := <-catalog.Events():
		t.Fatalf("unexpected event %+v", ev)
	default:
	}
}
