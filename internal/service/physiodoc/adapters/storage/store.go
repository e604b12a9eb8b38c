// Package storage persists the patient list as one opaque document. Writes
// always replace the whole document; either the new state is written or the
// previous file is retained, there is no partial save.
package storage

import (
	"context"

	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/model"
)

// Store loads and persists the complete patient list.
type Store interface {
	Load(ctx context.Context) ([]*model.Patient, error)
	Save(ctx context.Context, patients []*model.Patient) error
}

// document is the persisted JSON shape. It matches the browser pilot's
// layout so exported documents stay interchangeable.
type document struct {
	Patients []*model.Patient `json:"patients"`
}
