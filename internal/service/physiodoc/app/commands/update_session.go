package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime/types"
	"github.com/rs/zerolog"

	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/adapters/storage"
	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/model"
)

// UpdateSessionCommand applies field-level edits to one session. Nil fields
// are left untouched, so a single command carries anything from one slider
// move to a whole form. Sections replaces section texts wholesale; Note is
// the manual edit of the generated note, which only GenerateNote may
// overwrite afterwards.
type UpdateSessionCommand struct {
	PatientID uuid.UUID
	SessionID uuid.UUID

	Type       *model.SessionType
	Date       *types.Date
	Pain       *int
	Function   *int
	Complaints *[]string
	Measures   *[]string
	Sections   map[model.Section]string
	Note       *string
}

type UpdateSessionResult struct {
	Session *model.Session
}

type UpdateSessionHandler interface {
	Handle(ctx context.Context, cmd UpdateSessionCommand) (UpdateSessionResult, error)
}

func NewUpdateSessionHandler(store storage.Store, logger zerolog.Logger) UpdateSessionHandler {
	return &updateSessionCmdHandler{store: store, logger: logger}
}

type updateSessionCmdHandler struct {
	store  storage.Store
	logger zerolog.Logger
}

func (h *updateSessionCmdHandler) Handle(ctx context.Context, cmd UpdateSessionCommand) (UpdateSessionResult, error) {
	if err := validateUpdate(cmd); err != nil {
		return UpdateSessionResult{}, err
	}

	patients, err := h.store.Load(ctx)
	if err != nil {
		return UpdateSessionResult{}, err
	}
	patient, err := findPatient(patients, cmd.PatientID)
	if err != nil {
		return UpdateSessionResult{}, err
	}
	session, err := findSession(patient, cmd.SessionID)
	if err != nil {
		return UpdateSessionResult{}, err
	}

	if cmd.Type != nil {
		session.Type = *cmd.Type
	}
	if cmd.Date != nil {
		session.Date = *cmd.Date
	}
	if cmd.Pain != nil {
		session.Pain = *cmd.Pain
	}
	if cmd.Function != nil {
		session.Function = *cmd.Function
	}
	if cmd.Complaints != nil {
		session.SetComplaints(*cmd.Complaints)
	}
	if cmd.Measures != nil {
		session.SetMeasures(*cmd.Measures)
	}
	for sec, text := range cmd.Sections {
		if err := session.SetSectionText(sec, text); err != nil {
			return UpdateSessionResult{}, err
		}
	}
	if cmd.Note != nil {
		session.Note = *cmd.Note
	}

	persist(ctx, h.store, h.logger, patients)
	return UpdateSessionResult{Session: session}, nil
}

// validateUpdate rejects bad input before anything is mutated, so a failed
// command never leaves a half-applied edit behind.
func validateUpdate(cmd UpdateSessionCommand) error {
	if cmd.Type != nil && !cmd.Type.Valid() {
		return ErrInvalidSessionType
	}
	if cmd.Pain != nil && !model.ValidRating(*cmd.Pain) {
		return ErrRatingOutOfRange
	}
	if cmd.Function != nil && !model.ValidRating(*cmd.Function) {
		return ErrRatingOutOfRange
	}
	for sec := range cmd.Sections {
		if _, err := model.ParseSection(string(sec)); err != nil {
			return err
		}
	}
	return nil
}
