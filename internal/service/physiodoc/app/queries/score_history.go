package queries

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime/types"

	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/adapters/storage"
	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/model"
)

// ScoreHistoryQuery feeds the score chart: one dated point per session that
// has a computed score and a date, oldest first. Sessions without a score
// are skipped, never reported as zero.
type ScoreHistoryQuery struct {
	PatientID uuid.UUID
}

type ScorePoint struct {
	Date  types.Date
	Score int
}

type ScoreHistoryResult struct {
	Points []ScorePoint
}

type ScoreHistoryQueryHandler interface {
	Handle(ctx context.Context, query ScoreHistoryQuery) (ScoreHistoryResult, error)
}

func NewScoreHistoryHandler(store storage.Store) ScoreHistoryQueryHandler {
	return &scoreHistoryQueryHandler{store: store}
}

type scoreHistoryQueryHandler struct {
	store storage.Store
}

func (h *scoreHistoryQueryHandler) Handle(ctx context.Context, query ScoreHistoryQuery) (ScoreHistoryResult, error) {
	patients, err := h.store.Load(ctx)
	if err != nil {
		return ScoreHistoryResult{}, err
	}
	patient, ok := model.FindPatient(patients, query.PatientID)
	if !ok {
		return ScoreHistoryResult{}, model.ErrPatientNotFound
	}

	points := []ScorePoint{}
	for _, s := range patient.Sessions {
		if s.Score == nil || s.Date.IsZero() {
			continue
		}
		points = append(points, ScorePoint{Date: s.Date, Score: *s.Score})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Time.Before(points[j].Date.Time)
	})

	return ScoreHistoryResult{Points: points}, nil
}
