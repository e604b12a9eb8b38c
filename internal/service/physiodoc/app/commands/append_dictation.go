package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/adapters/storage"
	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/model"
)

// AppendDictationCommand is the only operation the speech-capture
// collaborator may invoke: append one recognized fragment to the current
// value of the named section. The core treats dictated text exactly like
// typed text.
type AppendDictationCommand struct {
	PatientID uuid.UUID
	SessionID uuid.UUID
	Section   model.Section
	Text      string
}

// AppendDictationResult carries the section's new value so the capture UI
// can mirror it.
type AppendDictationResult struct {
	Text string
}

type AppendDictationHandler interface {
	Handle(ctx context.Context, cmd AppendDictationCommand) (AppendDictationResult, error)
}

func NewAppendDictationHandler(store storage.Store, logger zerolog.Logger) AppendDictationHandler {
	return &appendDictationCmdHandler{store: store, logger: logger}
}

type appendDictationCmdHandler struct {
	store  storage.Store
	logger zerolog.Logger
}

func (h *appendDictationCmdHandler) Handle(ctx context.Context, cmd AppendDictationCommand) (AppendDictationResult, error) {
	patients, err := h.store.Load(ctx)
	if err != nil {
		return AppendDictationResult{}, err
	}
	patient, err := findPatient(patients, cmd.PatientID)
	if err != nil {
		return AppendDictationResult{}, err
	}
	session, err := findSession(patient, cmd.SessionID)
	if err != nil {
		return AppendDictationResult{}, err
	}

	if err := session.AppendSectionText(cmd.Section, cmd.Text); err != nil {
		return AppendDictationResult{}, err
	}
	persist(ctx, h.store, h.logger, patients)

	text, err := session.SectionText(cmd.Section)
	if err != nil {
		return AppendDictationResult{}, err
	}
	return AppendDictationResult{Text: text}, nil
}
