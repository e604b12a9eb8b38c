package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/adapters/storage"
	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/note"
)

// GenerateNoteCommand computes the severity score from the session's current
// ratings and complaint count, composes the note, and writes both back onto
// the session. This explicit action is the only path that overwrites a
// manually edited note.
type GenerateNoteCommand struct {
	PatientID uuid.UUID
	SessionID uuid.UUID
}

type GenerateNoteResult struct {
	Note  string
	Score int
	Band  note.Band
}

type GenerateNoteHandler interface {
	Handle(ctx context.Context, cmd GenerateNoteCommand) (GenerateNoteResult, error)
}

func NewGenerateNoteHandler(store storage.Store, composer *note.Composer, logger zerolog.Logger) GenerateNoteHandler {
	return &generateNoteCmdHandler{
		store:    store,
		composer: composer,
		logger:   logger,
	}
}

type generateNoteCmdHandler struct {
	store    storage.Store
	composer *note.Composer
	logger   zerolog.Logger
}

func (h *generateNoteCmdHandler) Handle(ctx context.Context, cmd GenerateNoteCommand) (GenerateNoteResult, error) {
	patients, err := h.store.Load(ctx)
	if err != nil {
		return GenerateNoteResult{}, err
	}
	patient, err := findPatient(patients, cmd.PatientID)
	if err != nil {
		return GenerateNoteResult{}, err
	}
	session, err := findSession(patient, cmd.SessionID)
	if err != nil {
		return GenerateNoteResult{}, err
	}

	// Score first, so the composed note reports the value being stored.
	score := note.CalculateScore(session.Pain, session.Function, len(session.Complaints))
	session.Score = &score

	text, err := h.composer.Compose(patient, session)
	if err != nil {
		return GenerateNoteResult{}, err
	}
	session.Note = text
	persist(ctx, h.store, h.logger, patients)

	return GenerateNoteResult{
		Note:  text,
		Score: score,
		Band:  note.BandFor(score),
	}, nil
}
