package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/model"
)

// FileStore keeps the document in a single JSON file. A missing file means
// an empty patient list, not an error.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(ctx context.Context) ([]*model.Patient, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []*model.Patient{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load patient document: %w", err)
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode patient document: %w", err)
	}
	if doc.Patients == nil {
		doc.Patients = []*model.Patient{}
	}
	return doc.Patients, nil
}

// Save writes the whole document atomically: marshal, write to a sibling
// temp file, rename over the target. A failed save leaves the previous
// document intact.
func (s *FileStore) Save(ctx context.Context, patients []*model.Patient) error {
	raw, err := json.MarshalIndent(document{Patients: patients}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode patient document: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save patient document: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("save patient document: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("save patient document: %w", err)
	}
	return nil
}
