package service

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/Cleo-Systems/physio-docpilot/internal/service/config"
	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/adapters/storage"
	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/app"
	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/app/commands"
	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/app/queries"
	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/icd"
	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/model"
	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/note"
)

// Service wires the documentation co-pilot together: configuration, the
// local patient document, the catalogs, and the command/query buses the
// shell talks to.
type Service struct {
	Logger     zerolog.Logger
	Commands   app.CommandBus
	Queries    app.QueryBus
	Complaints []model.CatalogOption
	Measures   []model.CatalogOption
}

func NewPhysioDocService(cfg *config.Config) (*Service, error) {
	logger := newLogger(cfg.LogLevel)

	store := storage.NewFileStore(cfg.DataFile)

	codes := icd.DefaultCatalog()
	if cfg.CatalogFile != "" {
		loaded, err := icd.LoadCatalog(cfg.CatalogFile)
		if err != nil {
			return nil, err
		}
		codes = loaded
	}

	complaints := model.DefaultComplaintOptions()
	measures := model.DefaultMeasureOptions()
	composer := note.NewComposer(complaints, measures)

	cmdBus := app.NewCommandBus(
		commands.NewRegisterPatientHandler(store, codes, logger),
		commands.NewAddSessionHandler(store, logger),
		commands.NewUpdateSessionHandler(store, logger),
		commands.NewAppendDictationHandler(store, logger),
		commands.NewDeleteSessionHandler(store, logger),
		commands.NewGenerateNoteHandler(store, composer, logger),
	)

	queryBus := app.NewQueryBus(
		queries.NewListPatientsHandler(store),
		queries.NewGetPatientHandler(store),
		queries.NewScoreHistoryHandler(store),
		queries.NewSearchDiagnosisCodesHandler(codes, cfg.SuggestionLimit),
	)

	return &Service{
		Logger:     logger,
		Commands:   cmdBus,
		Queries:    queryBus,
		Complaints: complaints,
		Measures:   measures,
	}, nil
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
