package note

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/model"
)

var (
	ErrNoPatient = errors.New("note: patient is required")
	ErrNoSession = errors.New("note: session is required")
)

const (
	headerDateFormat = "02.01.2006"
	noDateLabel      = "no date"

	// closingClause ends every plan summary regardless of selected measures.
	closingClause = "Continuing therapy, adjusting load, home exercise program as needed."
)

// sectionBlocks fixes which free-text sections appear in the note and in
// which order. The transcript is deliberately absent: it is a raw dictation
// buffer, not documentation.
var sectionBlocks = []struct {
	section model.Section
	heading string
}{
	{model.SectionAnamnesis, "History / anamnesis:"},
	{model.SectionStatus, "Current findings / status:"},
	{model.SectionDiagnosis, "Diagnosis (physiotherapeutic / medical):"},
	{model.SectionTherapyPlan, "Therapy proposal / plan:"},
	{model.SectionCourse, "Course & documentation:"},
	{model.SectionEpicrisis, "Epicrisis / assessment / recommendation:"},
}

// Composer renders a patient+session pair into the formatted clinical note.
// The complaint and measure catalogs are injected so label sets can be
// versioned or localized without touching composition logic.
type Composer struct {
	complaints []model.CatalogOption
	measures   []model.CatalogOption
}

func NewComposer(complaints, measures []model.CatalogOption) *Composer {
	return &Composer{
		complaints: complaints,
		measures:   measures,
	}
}

// Compose builds the note text. It is pure: composing twice from identical
// field values yields byte-identical text, and nothing is written back to
// the session; persisting the result is the caller's decision. The score
// line reuses the session's stored score when present and computes one from
// the current ratings otherwise.
func (c *Composer) Compose(patient *model.Patient, session *model.Session) (string, error) {
	if patient == nil {
		return "", ErrNoPatient
	}
	if session == nil {
		return "", ErrNoSession
	}

	blocks := make([]string, 0, len(sectionBlocks)+5)
	blocks = append(blocks, headerLine(session))
	blocks = append(blocks, diagnosisLine(patient))

	for _, b := range sectionBlocks {
		text, err := session.SectionText(b.section)
		if err != nil {
			return "", err
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		blocks = append(blocks, b.heading+"\n"+text)
	}

	complaintLabels := c.labels(c.complaints, session.Complaints)
	blocks = append(blocks, subjectiveLine(complaintLabels, session.Pain, session.Function))
	blocks = append(blocks, planLine(c.labels(c.measures, session.Measures)))

	score := CalculateScore(session.Pain, session.Function, len(session.Complaints))
	if session.Score != nil {
		score = *session.Score
	}
	blocks = append(blocks, fmt.Sprintf("Severity score: %d/100 (%s).", score, BandFor(score).Label))

	return strings.Join(blocks, "\n\n"), nil
}

func (c *Composer) labels(options []model.CatalogOption, ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.LabelFor(options, id))
	}
	return out
}

func headerLine(session *model.Session) string {
	typeLabel := "Follow-up"
	if session.Type == model.SessionInitial {
		typeLabel = "Initial assessment"
	}
	dateLabel := noDateLabel
	if !session.Date.IsZero() {
		dateLabel = session.Date.Format(headerDateFormat)
	}
	return typeLabel + " on " + dateLabel
}

func diagnosisLine(patient *model.Patient) string {
	d := patient.Diagnosis
	if d == nil || d.Code == "" {
		return "Diagnosis code: not documented"
	}
	if d.ShortLabel == "" {
		return "Diagnosis code: " + d.Code
	}
	return fmt.Sprintf("Diagnosis code: %s – %s", d.Code, d.ShortLabel)
}

func subjectiveLine(complaintLabels []string, pain, function int) string {
	lead := "no leading complaints selected"
	if len(complaintLabels) > 0 {
		lead = "patient reports " + strings.Join(complaintLabels, ", ")
	}
	return fmt.Sprintf(
		"Subjective (summary): %s. Pain intensity currently %d/10, limitation in daily activities %d/10.",
		lead, pain, function,
	)
}

func planLine(measureLabels []string) string {
	lead := "symptom-oriented treatment today"
	if len(measureLabels) > 0 {
		lead = "performed today: " + strings.Join(measureLabels, ", ")
	}
	return fmt.Sprintf("Plan (summary): %s. %s", lead, closingClause)
}
