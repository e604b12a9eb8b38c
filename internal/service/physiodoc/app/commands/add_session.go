package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/adapters/storage"
	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/model"
)

// AddSessionCommand opens another session for an existing patient. Type is
// chosen explicitly by the caller; an empty type means followup, since the
// initial assessment was created at registration.
type AddSessionCommand struct {
	PatientID uuid.UUID
	Type      model.SessionType
}

type AddSessionResult struct {
	Session *model.Session
}

type AddSessionHandler interface {
	Handle(ctx context.Context, cmd AddSessionCommand) (AddSessionResult, error)
}

func NewAddSessionHandler(store storage.Store, logger zerolog.Logger) AddSessionHandler {
	return &addSessionCmdHandler{store: store, logger: logger}
}

type addSessionCmdHandler struct {
	store  storage.Store
	logger zerolog.Logger
}

func (h *addSessionCmdHandler) Handle(ctx context.Context, cmd AddSessionCommand) (AddSessionResult, error) {
	t := cmd.Type
	if t == "" {
		t = model.SessionFollowUp
	}
	if !t.Valid() {
		return AddSessionResult{}, ErrInvalidSessionType
	}

	patients, err := h.store.Load(ctx)
	if err != nil {
		return AddSessionResult{}, err
	}
	patient, err := findPatient(patients, cmd.PatientID)
	if err != nil {
		return AddSessionResult{}, err
	}

	session := patient.AddSession(t)
	persist(ctx, h.store, h.logger, patients)

	return AddSessionResult{Session: session}, nil
}
