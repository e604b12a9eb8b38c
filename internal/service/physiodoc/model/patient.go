package model

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("patient name must not be empty")
	ErrPatientNotFound = errors.New("patient not found")
	ErrSessionNotFound = errors.New("session not found")
)

// Diagnosis is a resolved diagnostic-code attachment. Code is mandatory;
// the labels are empty when the code never matched the catalog.
type Diagnosis struct {
	Code       string `json:"code"`
	ShortLabel string `json:"shortLabel,omitempty"`
	LongLabel  string `json:"longLabel,omitempty"`
}

// Patient is a registered individual. Sessions are owned exclusively by the
// patient: no session exists outside this slice and none is ever shared.
type Patient struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	BirthYear *int       `json:"birthYear,omitempty"`
	Diagnosis *Diagnosis `json:"diagnosis,omitempty"`
	Sessions  []*Session `json:"sessions"`
}

// NewPatient registers a patient and opens their initial session.
func NewPatient(name string, birthYear *int, diag *Diagnosis) (*Patient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Patient{
		ID:        uuid.New(),
		Name:      name,
		BirthYear: birthYear,
		Diagnosis: diag,
		Sessions:  []*Session{NewSession(SessionInitial)},
	}, nil
}

// AddSession appends a fresh session of the given type and returns it.
func (p *Patient) AddSession(t SessionType) *Session {
	s := NewSession(t)
	p.Sessions = append(p.Sessions, s)
	return s
}

// Session returns the session with the given id.
func (p *Patient) Session(id uuid.UUID) (*Session, bool) {
	for _, s := range p.Sessions {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// RemoveSession deletes the session with the given id and reports whether it
// existed. Sessions are only ever removed by explicit user action.
func (p *Patient) RemoveSession(id uuid.UUID) bool {
	for i, s := range p.Sessions {
		if s.ID == id {
			p.Sessions = append(p.Sessions[:i:i], p.Sessions[i+1:]...)
			return true
		}
	}
	return false
}

// FindPatient returns the patient with the given id from a loaded list.
func FindPatient(patients []*Patient, id uuid.UUID) (*Patient, bool) {
	for _, p := range patients {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}
