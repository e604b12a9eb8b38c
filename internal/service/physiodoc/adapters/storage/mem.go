package storage

import (
	"context"
	"sync"

	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/model"
)

// MemStore holds the document in memory. It backs tests and doubles as the
// reference behavior for the file store.
type MemStore struct {
	mu       sync.Mutex
	patients []*model.Patient
	saveErr  error
}

func NewMemStore() *MemStore {
	return &MemStore{patients: []*model.Patient{}}
}

// FailSavesWith makes every subsequent Save return err. Used to exercise the
// best-effort persistence path.
func (s *MemStore) FailSavesWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

func (s *MemStore) Load(ctx context.Context) ([]*model.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.patients, nil
}

func (s *MemStore) Save(ctx context.Context, patients []*model.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.patients = patients
	return nil
}
