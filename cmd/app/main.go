package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime/types"
	"github.com/spf13/cobra"

	"github.com/Cleo-Systems/physio-docpilot/internal/service"
	"github.com/Cleo-Systems/physio-docpilot/internal/service/config"
	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/adapters/dictation"
	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/app/commands"
	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/app/queries"
	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/model"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

var dataFile string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "physiodoc",
		Short:         "Clinical note co-pilot for physiotherapy practices",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&dataFile, "data", "", "path of the patient document (overrides DATA_FILE)")

	root.AddCommand(newPatientCmd())
	root.AddCommand(newSessionCmd())
	root.AddCommand(newNoteCmd())
	root.AddCommand(newICDCmd())
	root.AddCommand(newScoreCmd())
	root.AddCommand(newDictateCmd())
	return root
}

func setup() (*service.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dataFile != "" {
		cfg.DataFile = dataFile
	}
	return service.NewPhysioDocService(cfg)
}

func newPatientCmd() *cobra.Command {
	patient := &cobra.Command{Use: "patient", Short: "Manage patients"}

	var name, diagnosis string
	var year int
	register := &cobra.Command{
		Use:   "register",
		Short: "Register a patient; their initial session is created with them",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := setup()
			if err != nil {
				return err
			}
			reg := commands.RegisterPatientCommand{
				Name:           name,
				DiagnosisInput: diagnosis,
			}
			if cmd.Flags().Changed("year") {
				reg.BirthYear = &year
			}
			result, err := svc.Commands.RegisterPatient(cmd.Context(), reg)
			if err != nil {
				return err
			}
			p := result.Patient
			fmt.Printf("registered %s (%s)\n", p.Name, p.ID)
			fmt.Printf("initial session %s\n", p.Sessions[0].ID)
			return nil
		},
	}
	register.Flags().StringVar(&name, "name", "", "patient name (required)")
	register.Flags().IntVar(&year, "year", 0, "birth year")
	register.Flags().StringVar(&diagnosis, "diagnosis", "", "principal diagnosis, e.g. \"M54.5\" (required)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List registered patients",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := setup()
			if err != nil {
				return err
			}
			result, err := svc.Queries.ListPatients(cmd.Context(), queries.ListPatientsQuery{})
			if err != nil {
				return err
			}
			if len(result.Patients) == 0 {
				fmt.Println("no patients registered")
				return nil
			}
			for _, p := range result.Patients {
				meta := []string{}
				if p.BirthYear != nil {
					meta = append(meta, fmt.Sprintf("*%d", *p.BirthYear))
				}
				if p.DiagnosisCode != "" {
					meta = append(meta, "ICD-10: "+p.DiagnosisCode)
				}
				meta = append(meta, fmt.Sprintf("%d session(s)", p.Sessions))
				fmt.Printf("%s  %s  %s\n", p.ID, p.Name, strings.Join(meta, " · "))
			}
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show <patient-id>",
		Short: "Show a patient and their sessions, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := setup()
			if err != nil {
				return err
			}
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid patient id: %w", err)
			}
			result, err := svc.Queries.GetPatient(cmd.Context(), queries.GetPatientQuery{PatientID: id})
			if err != nil {
				return err
			}
			p := result.Patient
			fmt.Println(p.Name)
			if p.Diagnosis != nil {
				fmt.Printf("ICD-10: %s", p.Diagnosis.Code)
				if p.Diagnosis.ShortLabel != "" {
					fmt.Printf(" – %s", p.Diagnosis.ShortLabel)
				}
				fmt.Println()
			}
			for _, s := range result.Sessions {
				label := "Follow-up"
				if s.Type == model.SessionInitial {
					label = "Initial assessment"
				}
				score := "–"
				if s.Score != nil {
					score = fmt.Sprintf("score %d", *s.Score)
				}
				fmt.Printf("%s  %s  %s  %s\n", s.ID, s.Date.Format("02.01.2006"), label, score)
			}
			return nil
		},
	}

	patient.AddCommand(register, list, show)
	return patient
}

func newSessionCmd() *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Manage treatment sessions"}

	var sessionType string
	add := &cobra.Command{
		Use:   "add <patient-id>",
		Short: "Add a session (follow-up unless --type says otherwise)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := setup()
			if err != nil {
				return err
			}
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid patient id: %w", err)
			}
			result, err := svc.Commands.AddSession(cmd.Context(), commands.AddSessionCommand{
				PatientID: id,
				Type:      model.SessionType(sessionType),
			})
			if err != nil {
				return err
			}
			fmt.Printf("added session %s\n", result.Session.ID)
			return nil
		},
	}
	add.Flags().StringVar(&sessionType, "type", "", "session type: initial or followup")

	var (
		setType    string
		setDate    string
		pain       int
		function   int
		complaints []string
		measures   []string
		section    string
		text       string
		noteText   string
	)
	set := &cobra.Command{
		Use:   "set <patient-id> <session-id>",
		Short: "Edit session fields; only the flags given are changed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := setup()
			if err != nil {
				return err
			}
			patientID, sessionID, err := parseIDs(args)
			if err != nil {
				return err
			}
			update := commands.UpdateSessionCommand{PatientID: patientID, SessionID: sessionID}
			if cmd.Flags().Changed("type") {
				t := model.SessionType(setType)
				update.Type = &t
			}
			if cmd.Flags().Changed("date") {
				parsed, err := time.Parse("2006-01-02", setDate)
				if err != nil {
					return fmt.Errorf("invalid date %q, want YYYY-MM-DD: %w", setDate, err)
				}
				update.Date = &types.Date{Time: parsed}
			}
			if cmd.Flags().Changed("pain") {
				update.Pain = &pain
			}
			if cmd.Flags().Changed("function") {
				update.Function = &function
			}
			if cmd.Flags().Changed("complaints") {
				update.Complaints = &complaints
			}
			if cmd.Flags().Changed("measures") {
				update.Measures = &measures
			}
			if cmd.Flags().Changed("note") {
				update.Note = &noteText
			}
			if cmd.Flags().Changed("section") {
				sec, err := model.ParseSection(section)
				if err != nil {
					return err
				}
				update.Sections = map[model.Section]string{sec: text}
			}
			_, err = svc.Commands.UpdateSession(cmd.Context(), update)
			if err != nil {
				return err
			}
			fmt.Println("session updated")
			return nil
		},
	}
	set.Flags().StringVar(&setType, "type", "", "session type: initial or followup")
	set.Flags().StringVar(&setDate, "date", "", "session date, YYYY-MM-DD")
	set.Flags().IntVar(&pain, "pain", 0, "pain rating 0-10")
	set.Flags().IntVar(&function, "function", 0, "functional limitation rating 0-10")
	set.Flags().StringSliceVar(&complaints, "complaints", nil, "complaint ids, e.g. pain,stiffness")
	set.Flags().StringSliceVar(&measures, "measures", nil, "measure ids, e.g. mt,exercise")
	set.Flags().StringVar(&section, "section", "", "clinical section to set (requires --text)")
	set.Flags().StringVar(&text, "text", "", "text for --section")
	set.Flags().StringVar(&noteText, "note", "", "manual edit of the generated note")

	var appendSection, appendText string
	appendCmd := &cobra.Command{
		Use:   "append <patient-id> <session-id>",
		Short: "Append text to a clinical section, as dictation would",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := setup()
			if err != nil {
				return err
			}
			patientID, sessionID, err := parseIDs(args)
			if err != nil {
				return err
			}
			sec, err := model.ParseSection(appendSection)
			if err != nil {
				return err
			}
			result, err := svc.Commands.AppendDictation(cmd.Context(), commands.AppendDictationCommand{
				PatientID: patientID,
				SessionID: sessionID,
				Section:   sec,
				Text:      appendText,
			})
			if err != nil {
				return err
			}
			fmt.Println(result.Text)
			return nil
		},
	}
	appendCmd.Flags().StringVar(&appendSection, "section", string(model.SectionTranscript), "target clinical section")
	appendCmd.Flags().StringVar(&appendText, "text", "", "text to append")

	del := &cobra.Command{
		Use:   "delete <patient-id> <session-id>",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := setup()
			if err != nil {
				return err
			}
			patientID, sessionID, err := parseIDs(args)
			if err != nil {
				return err
			}
			result, err := svc.Commands.DeleteSession(cmd.Context(), commands.DeleteSessionCommand{
				PatientID: patientID,
				SessionID: sessionID,
			})
			if err != nil {
				return err
			}
			fmt.Printf("session deleted, %d remaining\n", result.Remaining)
			return nil
		},
	}

	session.AddCommand(add, set, appendCmd, del)
	return session
}

func newNoteCmd() *cobra.Command {
	note := &cobra.Command{Use: "note", Short: "Generate clinical notes"}

	generate := &cobra.Command{
		Use:   "generate <patient-id> <session-id>",
		Short: "Compute the severity score and compose the note",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := setup()
			if err != nil {
				return err
			}
			patientID, sessionID, err := parseIDs(args)
			if err != nil {
				return err
			}
			result, err := svc.Commands.GenerateNote(cmd.Context(), commands.GenerateNoteCommand{
				PatientID: patientID,
				SessionID: sessionID,
			})
			if err != nil {
				return err
			}
			fmt.Println(result.Note)
			return nil
		},
	}

	note.AddCommand(generate)
	return note
}

func newICDCmd() *cobra.Command {
	icdCmd := &cobra.Command{Use: "icd", Short: "Diagnostic code catalog"}

	var limit int
	search := &cobra.Command{
		Use:   "search <term>",
		Short: "Search the diagnostic-code catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := setup()
			if err != nil {
				return err
			}
			result, err := svc.Queries.SearchDiagnosisCodes(cmd.Context(), queries.SearchDiagnosisCodesQuery{
				Term:  args[0],
				Limit: limit,
			})
			if err != nil {
				return err
			}
			if len(result.Codes) == 0 {
				fmt.Println("no matches")
				return nil
			}
			for _, c := range result.Codes {
				fmt.Printf("%-8s %s", c.Code, c.ShortLabel)
				if c.LongLabel != "" {
					fmt.Printf(" – %s", c.LongLabel)
				}
				fmt.Println()
			}
			return nil
		},
	}
	search.Flags().IntVar(&limit, "limit", 0, "maximum number of suggestions")

	icdCmd.AddCommand(search)
	return icdCmd
}

func newScoreCmd() *cobra.Command {
	score := &cobra.Command{Use: "score", Short: "Severity score history"}

	history := &cobra.Command{
		Use:   "history <patient-id>",
		Short: "Print dated severity scores, oldest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := setup()
			if err != nil {
				return err
			}
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid patient id: %w", err)
			}
			result, err := svc.Queries.ScoreHistory(cmd.Context(), queries.ScoreHistoryQuery{PatientID: id})
			if err != nil {
				return err
			}
			if len(result.Points) == 0 {
				fmt.Println("no scores yet; generate a note first")
				return nil
			}
			for _, p := range result.Points {
				fmt.Printf("%s  %3d/100\n", p.Date.Format("02.01.2006"), p.Score)
			}
			return nil
		},
	}

	score.AddCommand(history)
	return score
}

func newDictateCmd() *cobra.Command {
	var section string
	dictate := &cobra.Command{
		Use:   "dictate <patient-id> <session-id>",
		Short: "Append stdin lines to a section, one fragment per line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := setup()
			if err != nil {
				return err
			}
			patientID, sessionID, err := parseIDs(args)
			if err != nil {
				return err
			}
			d := dictation.NewSession(svc.Commands, patientID, sessionID)
			if section != "" {
				sec, err := model.ParseSection(section)
				if err != nil {
					return err
				}
				d.SetTarget(sec)
			}
			return d.Feed(cmd.Context(), cmd.InOrStdin())
		},
	}
	dictate.Flags().StringVar(&section, "section", "", "target clinical section (default transcript)")
	return dictate
}

func parseIDs(args []string) (uuid.UUID, uuid.UUID, error) {
	patientID, err := uuid.Parse(args[0])
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid patient id: %w", err)
	}
	sessionID, err := uuid.Parse(args[1])
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid session id: %w", err)
	}
	return patientID, sessionID, nil
}
