// Package queries holds the read-only operations of the documentation
// co-pilot. Handlers never mutate the patient document.
package queries

import (
	"context"

	"github.com/google/uuid"

	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/adapters/storage"
)

type ListPatientsQuery struct {
}

// PatientSummary is what the patient list renders per row.
type PatientSummary struct {
	ID            uuid.UUID
	Name          string
	BirthYear     *int
	DiagnosisCode string
	Sessions      int
}

type ListPatientsResult struct {
	Patients []PatientSummary
}

type ListPatientsQueryHandler interface {
	Handle(ctx context.Context, query ListPatientsQuery) (ListPatientsResult, error)
}

func NewListPatientsHandler(store storage.Store) ListPatientsQueryHandler {
	return &listPatientsQueryHandler{store: store}
}

type listPatientsQueryHandler struct {
	store storage.Store
}

func (h *listPatientsQueryHandler) Handle(ctx context.Context, query ListPatientsQuery) (ListPatientsResult, error) {
	patients, err := h.store.Load(ctx)
	if err != nil {
		return ListPatientsResult{}, err
	}

	summaries := make([]PatientSummary, 0, len(patients))
	for _, p := range patients {
		s := PatientSummary{
			ID:        p.ID,
			Name:      p.Name,
			BirthYear: p.BirthYear,
			Sessions:  len(p.Sessions),
		}
		if p.Diagnosis != nil {
			s.DiagnosisCode = p.Diagnosis.Code
		}
		summaries = append(summaries, s)
	}
	return ListPatientsResult{Patients: summaries}, nil
}
