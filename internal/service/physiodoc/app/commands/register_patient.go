package commands

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/adapters/storage"
	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/icd"
	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/model"
)

// RegisterPatientCommand creates a patient with their initial session.
// DiagnosisInput is whatever the user typed or picked from the suggestion
// list, e.g. "M54.5 Kreuzschmerz".
type RegisterPatientCommand struct {
	Name           string
	BirthYear      *int
	DiagnosisInput string
}

type RegisterPatientResult struct {
	Patient *model.Patient
}

type RegisterPatientHandler interface {
	Handle(ctx context.Context, cmd RegisterPatientCommand) (RegisterPatientResult, error)
}

func NewRegisterPatientHandler(store storage.Store, codes *icd.Catalog, logger zerolog.Logger) RegisterPatientHandler {
	return &registerPatientCmdHandler{
		store:  store,
		codes:  codes,
		logger: logger,
	}
}

type registerPatientCmdHandler struct {
	store  storage.Store
	codes  *icd.Catalog
	logger zerolog.Logger
}

func (h *registerPatientCmdHandler) Handle(ctx context.Context, cmd RegisterPatientCommand) (RegisterPatientResult, error) {
	input := strings.TrimSpace(cmd.DiagnosisInput)
	if input == "" {
		return RegisterPatientResult{}, ErrDiagnosisRequired
	}

	patient, err := model.NewPatient(cmd.Name, cmd.BirthYear, h.resolveDiagnosis(input))
	if err != nil {
		return RegisterPatientResult{}, err
	}

	patients, err := h.store.Load(ctx)
	if err != nil {
		return RegisterPatientResult{}, err
	}
	patients = append(patients, patient)
	persist(ctx, h.store, h.logger, patients)

	return RegisterPatientResult{Patient: patient}, nil
}

// resolveDiagnosis matches the input against the catalog; when nothing
// matches, the user's first token becomes the code and the labels stay
// empty.
func (h *registerPatientCmdHandler) resolveDiagnosis(input string) *model.Diagnosis {
	if match, ok := h.codes.Lookup(input); ok {
		return &model.Diagnosis{
			Code:       match.Code,
			ShortLabel: match.ShortLabel,
			LongLabel:  match.LongLabel,
		}
	}
	return &model.Diagnosis{Code: strings.Fields(input)[0]}
}
