// Package commands holds the state-changing operations of the documentation
// co-pilot. Every handler follows the same shape: load the patient document,
// mutate it, persist it. Persistence is best effort: a failed save is
// logged and reported to the user, but the in-memory state stays
// authoritative for the rest of the session and the operation still
// succeeds.
package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/adapters/storage"
	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/model"
)

var (
	ErrDiagnosisRequired  = errors.New("a principal diagnosis is required at registration")
	ErrInvalidSessionType = errors.New("session type must be initial or followup")
	ErrRatingOutOfRange   = errors.New("pain and function ratings must be between 0 and 10")
)

func findPatient(patients []*model.Patient, id uuid.UUID) (*model.Patient, error) {
	p, ok := model.FindPatient(patients, id)
	if !ok {
		return nil, model.ErrPatientNotFound
	}
	return p, nil
}

func findSession(p *model.Patient, id uuid.UUID) (*model.Session, error) {
	s, ok := p.Session(id)
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return s, nil
}

// persist writes the whole document back. Storage failures do not roll back
// the mutation; the user is warned that the change may not survive a reload.
func persist(ctx context.Context, store storage.Store, logger zerolog.Logger, patients []*model.Patient) {
	if err := store.Save(ctx, patients); err != nil {
		logger.Warn().Err(err).Msg("persist failed; changes may not survive a reload")
	}
}
