package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/adapters/storage"
	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/model"
)

// DeleteSessionCommand removes one session by explicit user action. Sessions
// are never deleted automatically; a patient may end up with zero sessions.
type DeleteSessionCommand struct {
	PatientID uuid.UUID
	SessionID uuid.UUID
}

type DeleteSessionResult struct {
	Remaining int
}

type DeleteSessionHandler interface {
	Handle(ctx context.Context, cmd DeleteSessionCommand) (DeleteSessionResult, error)
}

func NewDeleteSessionHandler(store storage.Store, logger zerolog.Logger) DeleteSessionHandler {
	return &deleteSessionCmdHandler{store: store, logger: logger}
}

type deleteSessionCmdHandler struct {
	store  storage.Store
	logger zerolog.Logger
}

func (h *deleteSessionCmdHandler) Handle(ctx context.Context, cmd DeleteSessionCommand) (DeleteSessionResult, error) {
	patients, err := h.store.Load(ctx)
	if err != nil {
		return DeleteSessionResult{}, err
	}
	patient, err := findPatient(patients, cmd.PatientID)
	if err != nil {
		return DeleteSessionResult{}, err
	}

	if !patient.RemoveSession(cmd.SessionID) {
		return DeleteSessionResult{}, model.ErrSessionNotFound
	}
	persist(ctx, h.store, h.logger, patients)

	return DeleteSessionResult{Remaining: len(patient.Sessions)}, nil
}
