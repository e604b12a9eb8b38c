package queries

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/adapters/storage"
	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/model"
)

type GetPatientQuery struct {
	PatientID uuid.UUID
}

// GetPatientResult returns the patient plus their sessions ordered newest
// first, the order the session list renders in.
type GetPatientResult struct {
	Patient  *model.Patient
	Sessions []*model.Session
}

type GetPatientQueryHandler interface {
	Handle(ctx context.Context, query GetPatientQuery) (GetPatientResult, error)
}

func NewGetPatientHandler(store storage.Store) GetPatientQueryHandler {
	return &getPatientQueryHandler{store: store}
}

type getPatientQueryHandler struct {
	store storage.Store
}

func (h *getPatientQueryHandler) Handle(ctx context.Context, query GetPatientQuery) (GetPatientResult, error) {
	patients, err := h.store.Load(ctx)
	if err != nil {
		return GetPatientResult{}, err
	}
	patient, ok := model.FindPatient(patients, query.PatientID)
	if !ok {
		return GetPatientResult{}, model.ErrPatientNotFound
	}

	sorted := make([]*model.Session, len(patient.Sessions))
	copy(sorted, patient.Sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Time.After(sorted[j].Date.Time)
	})

	return GetPatientResult{Patient: patient, Sessions: sorted}, nil
}
