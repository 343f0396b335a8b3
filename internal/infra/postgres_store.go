package infra

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mediashelf/mediashelf/internal/models"
	"github.com/mediashelf/mediashelf/internal/ports"
)

// PostgresMediaStore is the alternative storage driver, selected with
// storage_driver=postgres. Same contract as the file store; the
// database replaces the JSON file as durable storage.
type PostgresMediaStore struct {
	pool *pgxpool.Pool
}

func NewPostgresMediaStore(pool *pgxpool.Pool) *PostgresMediaStore {
	return &PostgresMediaStore{pool: pool}
}

// EnsureSchema creates the media table if it does not exist yet.
func (s *PostgresMediaStore) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS media (
			id               TEXT PRIMARY KEY,
			name             TEXT NOT NULL,
			author           TEXT NOT NULL,
			publication_date TEXT NOT NULL,
			category         TEXT NOT NULL
		)
	`
	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("ensure media schema: %w", err)
	}
	return nil
}

func (s *PostgresMediaStore) queryMedia(
	ctx context.Context, query string, args ...any,
) (map[string]models.Media, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query media: %w", err)
	}
	defer rows.Close()

	catalog := map[string]models.Media{}
	for rows.Next() {
		var m models.Media
		if err := rows.Scan(&m.ID, &m.Name, &m.Author, &m.PublicationDate, &m.Category); err != nil {
			return nil, fmt.Errorf("scan media row: %w", err)
		}
		catalog[m.ID] = m
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate media rows: %w", err)
	}
	return catalog, nil
}

func (s *PostgresMediaStore) ListAll(ctx context.Context) (map[string]models.Media, error) {
	return s.queryMedia(ctx, `
		SELECT id, name, author, publication_date, category
		FROM media
	`)
}

func (s *PostgresMediaStore) ListByCategory(ctx context.Context, category string) (map[string]models.Media, error) {
	return s.queryMedia(ctx, `
		SELECT id, name, author, publication_date, category
		FROM media
		WHERE LOWER(category) = LOWER($1)
	`, category)
}

func (s *PostgresMediaStore) SearchByName(ctx context.Context, query string) (map[string]models.Media, error) {
	return s.queryMedia(ctx, `
		SELECT id, name, author, publication_date, category
		FROM media
		WHERE name ILIKE '%' || $1 || '%'
	`, query)
}

func (s *PostgresMediaStore) GetByID(ctx context.Context, id string) (*models.Media, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, name, author, publication_date, category
		FROM media
		WHERE id = $1
	`, id)

	var m models.Media
	err := row.Scan(&m.ID, &m.Name, &m.Author, &m.PublicationDate, &m.Category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrNotFound
		}
		return nil, fmt.Errorf("get media by id: %w", err)
	}
	return &m, nil
}

func (s *PostgresMediaStore) Insert(ctx context.Context, media models.Media) error {
	query := `
		INSERT INTO media (id, name, author, publication_date, category)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.pool.Exec(ctx, query,
		media.ID, media.Name, media.Author, media.PublicationDate, media.Category,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 = unique_violation
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("insert media %s: %w", media.ID, ports.ErrAlreadyExists)
		}
		return fmt.Errorf("insert media: %w", err)
	}
	return nil
}

func (s *PostgresMediaStore) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM media WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete media: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	return nil
}
