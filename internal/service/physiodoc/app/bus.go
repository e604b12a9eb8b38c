package app

import (
	"context"

	commands2 "github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/app/commands"
	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/app/queries"
)

type CommandBus interface {
	RegisterPatient(ctx context.Context, cmd commands2.RegisterPatientCommand) (commands2.RegisterPatientResult, error)
	AddSession(ctx context.Context, cmd commands2.AddSessionCommand) (commands2.AddSessionResult, error)
	UpdateSession(ctx context.Context, cmd commands2.UpdateSessionCommand) (commands2.UpdateSessionResult, error)
	AppendDictation(ctx context.Context, cmd commands2.AppendDictationCommand) (commands2.AppendDictationResult, error)
	DeleteSession(ctx context.Context, cmd commands2.DeleteSessionCommand) (commands2.DeleteSessionResult, error)
	GenerateNote(ctx context.Context, cmd commands2.GenerateNoteCommand) (commands2.GenerateNoteResult, error)
}

type QueryBus interface {
	ListPatients(ctx context.Context, q queries.ListPatientsQuery) (queries.ListPatientsResult, error)
	GetPatient(ctx context.Context, q queries.GetPatientQuery) (queries.GetPatientResult, error)
	ScoreHistory(ctx context.Context, q queries.ScoreHistoryQuery) (queries.ScoreHistoryResult, error)
	SearchDiagnosisCodes(ctx context.Context, q queries.SearchDiagnosisCodesQuery) (queries.SearchDiagnosisCodesResult, error)
}

type commandBus struct {
	registerPatient commands2.RegisterPatientHandler
	addSession      commands2.AddSessionHandler
	updateSession   commands2.UpdateSessionHandler
	appendDictation commands2.AppendDictationHandler
	deleteSession   commands2.DeleteSessionHandler
	generateNote    commands2.GenerateNoteHandler
}

type queryBus struct {
	listPatients         queries.ListPatientsQueryHandler
	getPatient           queries.GetPatientQueryHandler
	scoreHistory         queries.ScoreHistoryQueryHandler
	searchDiagnosisCodes queries.SearchDiagnosisCodesQueryHandler
}

func NewCommandBus(
	register commands2.RegisterPatientHandler,
	add commands2.AddSessionHandler,
	update commands2.UpdateSessionHandler,
	dictate commands2.AppendDictationHandler,
	del commands2.DeleteSessionHandler,
	generate commands2.GenerateNoteHandler,
) CommandBus {
	return &commandBus{
		registerPatient: register,
		addSession:      add,
		updateSession:   update,
		appendDictation: dictate,
		deleteSession:   del,
		generateNote:    generate,
	}
}

func NewQueryBus(
	list queries.ListPatientsQueryHandler,
	get queries.GetPatientQueryHandler,
	history queries.ScoreHistoryQueryHandler,
	search queries.SearchDiagnosisCodesQueryHandler,
) QueryBus {
	return &queryBus{
		listPatients:         list,
		getPatient:           get,
		scoreHistory:         history,
		searchDiagnosisCodes: search,
	}
}

func (b *commandBus) RegisterPatient(ctx context.Context, cmd commands2.RegisterPatientCommand) (commands2.RegisterPatientResult, error) {
	return b.registerPatient.Handle(ctx, cmd)
}

func (b *commandBus) AddSession(ctx context.Context, cmd commands2.AddSessionCommand) (commands2.AddSessionResult, error) {
	return b.addSession.Handle(ctx, cmd)
}

func (b *commandBus) UpdateSession(ctx context.Context, cmd commands2.UpdateSessionCommand) (commands2.UpdateSessionResult, error) {
	return b.updateSession.Handle(ctx, cmd)
}

func (b *commandBus) AppendDictation(ctx context.Context, cmd commands2.AppendDictationCommand) (commands2.AppendDictationResult, error) {
	return b.appendDictation.Handle(ctx, cmd)
}

func (b *commandBus) DeleteSession(ctx context.Context, cmd commands2.DeleteSessionCommand) (commands2.DeleteSessionResult, error) {
	return b.deleteSession.Handle(ctx, cmd)
}

func (b *commandBus) GenerateNote(ctx context.Context, cmd commands2.GenerateNoteCommand) (commands2.GenerateNoteResult, error) {
	return b.generateNote.Handle(ctx, cmd)
}

func (b *queryBus) ListPatients(ctx context.Context, q queries.ListPatientsQuery) (queries.ListPatientsResult, error) {
	return b.listPatients.Handle(ctx, q)
}

func (b *queryBus) GetPatient(ctx context.Context, q queries.GetPatientQuery) (queries.GetPatientResult, error) {
	return b.getPatient.Handle(ctx, q)
}

func (b *queryBus) ScoreHistory(ctx context.Context, q queries.ScoreHistoryQuery) (queries.ScoreHistoryResult, error) {
	return b.scoreHistory.Handle(ctx, q)
}

func (b *queryBus) SearchDiagnosisCodes(ctx context.Context, q queries.SearchDiagnosisCodesQuery) (queries.SearchDiagnosisCodesResult, error) {
	return b.searchDiagnosisCodes.Handle(ctx, q)
}
