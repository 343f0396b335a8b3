package infra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mediashelf/mediashelf/internal/models"
	"github.com/mediashelf/mediashelf/internal/ports"
)

// FileMediaStore persists the whole catalog as one JSON file: a map of
// id → record. Every operation re-reads the file first, so writers
// outside this process are observed; every mutation rewrites the whole
// file. The mutex serializes the read-modify-write cycle so two
// in-process mutations cannot lose each other's update.
type FileMediaStore struct {
	mu   sync.Mutex
	path string
}

func NewFileMediaStore(path string) *FileMediaStore {
	return &FileMediaStore{path: path}
}

// load reads the full catalog. A missing or empty file is an empty
// catalog, not an error.
func (s *FileMediaStore) load() (map[string]models.Media, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]models.Media{}, nil
		}
		return nil, fmt.Errorf("read media file %s: %w", s.path, err)
	}
	if len(raw) == 0 {
		return map[string]models.Media{}, nil
	}

	catalog := map[string]models.Media{}
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("decode media file %s: %w", s.path, err)
	}
	return catalog, nil
}

// save rewrites the full catalog via a temp file and rename, so a crash
// mid-write leaves the previous file intact.
func (s *FileMediaStore) save(catalog map[string]models.Media) error {
	raw, err := json.MarshalIndent(catalog, "", "    ")
	if err != nil {
		return fmt.Errorf("encode media catalog: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".media-*.json")
	if err != nil {
		return fmt.Errorf("create temp media file: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp media file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp media file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace media file %s: %w", s.path, err)
	}
	return nil
}

func (s *FileMediaStore) ListAll(_ context.Context) (map[string]models.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileMediaStore) ListByCategory(_ context.Context, category string) (map[string]models.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.load()
	if err != nil {
		return nil, err
	}

	filtered := map[string]models.Media{}
	for id, m := range catalog {
		if strings.EqualFold(m.Category, category) {
			filtered[id] = m
		}
	}
	return filtered, nil
}

func (s *FileMediaStore) SearchByName(_ context.Context, query string) (map[string]models.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.load()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	matched := map[string]models.Media{}
	for id, m := range catalog {
		if strings.Contains(strings.ToLower(m.Name), q) {
			matched[id] = m
		}
	}
	return matched, nil
}

func (s *FileMediaStore) GetByID(_ context.Context, id string) (*models.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.load()
	if err != nil {
		return nil, err
	}

	m, ok := catalog[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return &m, nil
}

func (s *FileMediaStore) Insert(_ context.Context, media models.Media) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.load()
	if err != nil {
		return err
	}
	if _, exists := catalog[media.ID]; exists {
		return fmt.Errorf("insert media %s: %w", media.ID, ports.ErrAlreadyExists)
	}

	catalog[media.ID] = media
	return s.save(catalog)
}

func (s *FileMediaStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := catalog[id]; !ok {
		return ports.ErrNotFound
	}

	delete(catalog, id)
	return s.save(catalog)
}
