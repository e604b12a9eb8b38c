package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime/types"
)

// SessionType controls the note header wording only.
type SessionType string

const (
	SessionInitial  SessionType = "initial"
	SessionFollowUp SessionType = "followup"
)

// Valid reports whether t is one of the two known session types.
func (t SessionType) Valid() bool {
	return t == SessionInitial || t == SessionFollowUp
}

// DefaultRating is the pain/function value a fresh session starts with.
const DefaultRating = 5

// ValidRating reports whether v is on the 0-10 rating scale.
func ValidRating(v int) bool {
	return v >= 0 && v <= 10
}

// Session is one documented treatment encounter. Complaints and measures
// hold catalog identifiers; the free-text sections are independently
// optional. Score stays nil until a note has been generated for the session,
// and a persisted nil must stay distinct from a persisted 0.
type Session struct {
	ID         uuid.UUID   `json:"id"`
	Type       SessionType `json:"type"`
	Date       types.Date  `json:"date"`
	Complaints []string    `json:"complaints"`
	Measures   []string    `json:"measures"`
	Pain       int         `json:"pain"`
	Function   int         `json:"function"`

	AnamnesisText   string `json:"anamnesisText"`
	StatusText      string `json:"statusText"`
	DiagnosisText   string `json:"diagnosisText"`
	TherapyPlanText string `json:"therapyPlanText"`
	CourseText      string `json:"courseText"`
	EpicrisisText   string `json:"epicrisisText"`
	Transcript      string `json:"speechNotes"`

	Note  string `json:"note"`
	Score *int   `json:"score"`
}

// NewSession creates an empty session of the given type dated today.
func NewSession(t SessionType) *Session {
	return &Session{
		ID:         uuid.New(),
		Type:       t,
		Date:       types.Date{Time: time.Now().UTC().Truncate(24 * time.Hour)},
		Complaints: []string{},
		Measures:   []string{},
		Pain:       DefaultRating,
		Function:   DefaultRating,
	}
}

// SetComplaints replaces the complaint set, dropping duplicates while
// keeping first-seen order.
func (s *Session) SetComplaints(ids []string) {
	s.Complaints = dedupe(ids)
}

// SetMeasures replaces the measure set, dropping duplicates while keeping
// first-seen order.
func (s *Session) SetMeasures(ids []string) {
	s.Measures = dedupe(ids)
}

// ToggleComplaint adds the identifier when absent and removes it when
// present.
func (s *Session) ToggleComplaint(id string) {
	s.Complaints = toggle(s.Complaints, id)
}

// ToggleMeasure adds the identifier when absent and removes it when present.
func (s *Session) ToggleMeasure(id string) {
	s.Measures = toggle(s.Measures, id)
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func toggle(ids []string, id string) []string {
	for i, existing := range ids {
		if existing == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	return append(ids, id)
}
