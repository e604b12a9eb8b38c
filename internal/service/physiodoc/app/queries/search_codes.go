package queries

import (
	"context"

	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/icd"
)

// SearchDiagnosisCodesQuery backs the diagnosis autocomplete. Limit falls
// back to the handler's configured cap when zero.
type SearchDiagnosisCodesQuery struct {
	Term  string
	Limit int
}

type SearchDiagnosisCodesResult struct {
	Codes []icd.Code
}

type SearchDiagnosisCodesQueryHandler interface {
	Handle(ctx context.Context, query SearchDiagnosisCodesQuery) (SearchDiagnosisCodesResult, error)
}

func NewSearchDiagnosisCodesHandler(codes *icd.Catalog, defaultLimit int) SearchDiagnosisCodesQueryHandler {
	return &searchDiagnosisCodesQueryHandler{
		codes:        codes,
		defaultLimit: defaultLimit,
	}
}

type searchDiagnosisCodesQueryHandler struct {
	codes        *icd.Catalog
	defaultLimit int
}

func (h *searchDiagnosisCodesQueryHandler) Handle(ctx context.Context, query SearchDiagnosisCodesQuery) (SearchDiagnosisCodesResult, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = h.defaultLimit
	}
	return SearchDiagnosisCodesResult{Codes: h.codes.Search(query.Term, limit)}, nil
}
