package note

import (
	"strings"
	"testing"
	"time"

	"github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/model"
)

func testComposer() *Composer {
	return NewComposer(model.DefaultComplaintOptions(), model.DefaultMeasureOptions())
}

func testPatient(t *testing.T) *model.Patient {
	t.Helper()
	p, err := model.NewPatient("Anna Muster", nil, &model.Diagnosis{
		Code:       "M54.5",
		ShortLabel: "Kreuzschmerz",
	})
	require.NoError(t, err)
	return p
}

func date(y int, m time.Month, d int) types.Date {
	return types.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func TestCompose_Scenario(t *testing.T) {
	p := testPatient(t)
	s := p.Sessions[0]
	s.Date = date(2026, time.March, 5)
	s.Pain = 7
	s.Function = 6
	s.SetComplaints([]string{"pain", "stiffness"})
	s.SetMeasures([]string{"mt"})

	text, err := testComposer().Compose(p, s)
	require.NoError(t, err)

	want := strings.Join([]string{
		"Initial assessment on 05.03.2026",
		"Diagnosis code: M54.5 – Kreuzschmerz",
		"Subjective (summary): patient reports Pain, Stiffness. Pain intensity currently 7/10, limitation in daily activities 6/10.",
		"Plan (summary): performed today: Manual therapy. Continuing therapy, adjusting load, home exercise program as needed.",
		"Severity score: 60/100 (moderate).",
	}, "\n\n")
	assert.Equal(t, want, text)
}

func TestCompose_AllSectionsEmptyStillHasFixedBlocks(t *testing.T) {
	p := testPatient(t)
	s := p.Sessions[0]
	s.Date = date(2026, time.March, 5)

	text, err := testComposer().Compose(p, s)
	require.NoError(t, err)

	blocks := strings.Split(text, "\n\n")
	require.Len(t, blocks, 5)
	assert.Contains(t, blocks[0], "Initial assessment on")
	assert.Contains(t, blocks[1], "Diagnosis code:")
	assert.Contains(t, blocks[2], "Subjective (summary):")
	assert.Contains(t, blocks[3], "Plan (summary):")
	assert.Contains(t, blocks[4], "Severity score:")
	// omitted sections leave no stray blank lines
	assert.NotContains(t, text, "\n\n\n")
}

func TestCompose_PopulatedSectionsInFixedOrder(t *testing.T) {
	p := testPatient(t)
	s := p.Sessions[0]
	s.Date = date(2026, time.March, 5)
	require.NoError(t, s.SetSectionText(model.SectionAnamnesis, "Pain since two weeks."))
	require.NoError(t, s.SetSectionText(model.SectionTherapyPlan, "Mobilization twice a week."))
	require.NoError(t, s.SetSectionText(model.SectionStatus, "   ")) // whitespace-only is absent

	text, err := testComposer().Compose(p, s)
	require.NoError(t, err)

	assert.Contains(t, text, "History / anamnesis:\nPain since two weeks.")
	assert.Contains(t, text, "Therapy proposal / plan:\nMobilization twice a week.")
	assert.NotContains(t, text, "Current findings / status:")
	assert.Less(t,
		strings.Index(text, "History / anamnesis:"),
		strings.Index(text, "Therapy proposal / plan:"))
}

func TestCompose_TranscriptNeverRendered(t *testing.T) {
	p := testPatient(t)
	s := p.Sessions[0]
	require.NoError(t, s.SetSectionText(model.SectionTranscript, "raw dictation buffer"))

	text, err := testComposer().Compose(p, s)
	require.NoError(t, err)
	assert.NotContains(t, text, "raw dictation buffer")
}

func TestCompose_HeaderVariants(t *testing.T) {
	p := testPatient(t)
	s := p.Sessions[0]
	s.Type = model.SessionFollowUp
	s.Date = types.Date{}

	text, err := testComposer().Compose(p, s)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "Follow-up on no date"))
}

func TestCompose_DiagnosisVariants(t *testing.T) {
	p := testPatient(t)
	s := p.Sessions[0]

	p.Diagnosis = nil
	text, err := testComposer().Compose(p, s)
	require.NoError(t, err)
	assert.Contains(t, text, "Diagnosis code: not documented")

	// unresolved code: raw token, no labels
	p.Diagnosis = &model.Diagnosis{Code: "X99.9"}
	text, err = testComposer().Compose(p, s)
	require.NoError(t, err)
	assert.Contains(t, text, "Diagnosis code: X99.9\n")
	assert.NotContains(t, text, "X99.9 –")
}

func TestCompose_GenericSummariesWithoutSelections(t *testing.T) {
	p := testPatient(t)
	s := p.Sessions[0]
	s.Pain = 3
	s.Function = 2

	text, err := testComposer().Compose(p, s)
	require.NoError(t, err)
	assert.Contains(t, text, "Subjective (summary): no leading complaints selected. Pain intensity currently 3/10, limitation in daily activities 2/10.")
	assert.Contains(t, text, "Plan (summary): symptom-oriented treatment today. Continuing therapy, adjusting load, home exercise program as needed.")
}

func TestCompose_UnknownCatalogIDsDegradeToRawID(t *testing.T) {
	p := testPatient(t)
	s := p.Sessions[0]
	s.SetComplaints([]string{"vertigo"})
	s.SetMeasures([]string{"ultrasound"})

	text, err := testComposer().Compose(p, s)
	require.NoError(t, err)
	assert.Contains(t, text, "patient reports vertigo.")
	assert.Contains(t, text, "performed today: ultrasound.")
}

func TestCompose_UsesStoredScoreWhenPresent(t *testing.T) {
	p := testPatient(t)
	s := p.Sessions[0]
	s.Pain = 10
	s.Function = 10
	stored := 12
	s.Score = &stored

	text, err := testComposer().Compose(p, s)
	require.NoError(t, err)
	assert.Contains(t, text, "Severity score: 12/100 (mild).")
}

func TestCompose_Idempotent(t *testing.T) {
	p := testPatient(t)
	s := p.Sessions[0]
	s.Date = date(2026, time.March, 5)
	s.SetComplaints([]string{"pain"})

	c := testComposer()
	first, err := c.Compose(p, s)
	require.NoError(t, err)
	second, err := c.Compose(p, s)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCompose_MissingArguments(t *testing.T) {
	c := testComposer()
	p := testPatient(t)

	_, err := c.Compose(nil, p.Sessions[0])
	assert.ErrorIs(t, err, ErrNoPatient)

	_, err = c.Compose(p, nil)
	assert.ErrorIs(t, err, ErrNoSession)
}
