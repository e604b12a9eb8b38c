package app

import (
	"github.com/google/uuid"

	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/model"
)

// EditorState tracks which patient and session are currently open for
// editing. It is owned by whichever shell composes the UI and passed around
// explicitly; nothing in the domain reads it, and at most one session is
// selected at a time.
type EditorState struct {
	SelectedPatientID uuid.UUID
	SelectedSessionID uuid.UUID
}

// SelectPatient makes the patient current and selects their first session,
// or no session when the patient has none.
func (s *EditorState) SelectPatient(p *model.Patient) {
	s.SelectedPatientID = p.ID
	s.SelectedSessionID = uuid.Nil
	if len(p.Sessions) > 0 {
		s.SelectedSessionID = p.Sessions[0].ID
	}
}

// SelectSession makes the session current.
func (s *EditorState) SelectSession(id uuid.UUID) {
	s.SelectedSessionID = id
}

// HasSelection reports whether both a patient and a session are selected,
// the precondition for editing and note generation.
func (s *EditorState) HasSelection() bool {
	return s.SelectedPatientID != uuid.Nil && s.SelectedSessionID != uuid.Nil
}

// SessionDeleted moves the selection after a session was removed: to the
// patient's first remaining session, or to none.
func (s *EditorState) SessionDeleted(p *model.Patient, deleted uuid.UUID) {
	if s.SelectedSessionID != deleted {
		return
	}
	s.SelectedSessionID = uuid.Nil
	if len(p.Sessions) > 0 {
		s.SelectedSessionID = p.Sessions[0].ID
	}
}
