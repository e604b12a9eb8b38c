package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession_Defaults(t *testing.T) {
	s := NewSession(SessionInitial)

	assert.NotEqual(t, s.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, SessionInitial, s.Type)
	assert.False(t, s.Date.IsZero())
	assert.Equal(t, DefaultRating, s.Pain)
	assert.Equal(t, DefaultRating, s.Function)
	assert.Empty(t, s.Complaints)
	assert.Empty(t, s.Measures)
	assert.Nil(t, s.Score)
	assert.Empty(t, s.Note)
}

func TestSession_SetComplaintsDedupes(t *testing.T) {
	s := NewSession(SessionInitial)
	s.SetComplaints([]string{"pain", "stiffness", "pain"})
	assert.Equal(t, []string{"pain", "stiffness"}, s.Complaints)
}

func TestSession_Toggle(t *testing.T) {
	s := NewSession(SessionInitial)
	s.ToggleComplaint("pain")
	s.ToggleComplaint("stiffness")
	assert.Equal(t, []string{"pain", "stiffness"}, s.Complaints)

	s.ToggleComplaint("pain")
	assert.Equal(t, []string{"stiffness"}, s.Complaints)

	s.ToggleMeasure("mt")
	s.ToggleMeasure("mt")
	assert.Empty(t, s.Measures)
}

func TestSection_GetSetAllSections(t *testing.T) {
	s := NewSession(SessionInitial)
	for _, sec := range Sections() {
		require.NoError(t, s.SetSectionText(sec, "text for "+string(sec)))
	}
	for _, sec := range Sections() {
		text, err := s.SectionText(sec)
		require.NoError(t, err)
		assert.Equal(t, "text for "+string(sec), text)
	}
}

func TestSection_UnknownRejected(t *testing.T) {
	s := NewSession(SessionInitial)

	_, err := ParseSection("bogus")
	assert.ErrorIs(t, err, ErrUnknownSection)

	err = s.SetSectionText(Section("bogus"), "x")
	assert.ErrorIs(t, err, ErrUnknownSection)

	_, err = s.SectionText(Section("bogus"))
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestSection_AppendJoinsWithSingleSpace(t *testing.T) {
	s := NewSession(SessionInitial)

	require.NoError(t, s.AppendSectionText(SectionAnamnesis, "  first fragment "))
	require.NoError(t, s.AppendSectionText(SectionAnamnesis, "second"))
	require.NoError(t, s.AppendSectionText(SectionAnamnesis, "   ")) // dropped

	text, err := s.SectionText(SectionAnamnesis)
	require.NoError(t, err)
	assert.Equal(t, "first fragment second", text)
}

func TestSession_JSONRoundTrip_ScoreNilDistinctFromZero(t *testing.T) {
	s := NewSession(SessionFollowUp)
	s.SetComplaints([]string{"pain"})
	require.NoError(t, s.SetSectionText(SectionStatus, "limited flexion"))

	// nil score must round-trip as null
	raw, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"score":null`)

	var nilScore Session
	require.NoError(t, json.Unmarshal(raw, &nilScore))
	assert.Nil(t, nilScore.Score)
	assert.Equal(t, s.ID, nilScore.ID)
	assert.Equal(t, s.Complaints, nilScore.Complaints)
	assert.Equal(t, "limited flexion", nilScore.StatusText)
	assert.Equal(t, s.Date.Format("2006-01-02"), nilScore.Date.Format("2006-01-02"))

	zero := 0
	s.Score = &zero
	raw, err = json.Marshal(s)
	require.NoError(t, err)

	var zeroScore Session
	require.NoError(t, json.Unmarshal(raw, &zeroScore))
	require.NotNil(t, zeroScore.Score)
	assert.Equal(t, 0, *zeroScore.Score)
}

func TestValidRating(t *testing.T) {
	assert.True(t, ValidRating(0))
	assert.True(t, ValidRating(10))
	assert.False(t, ValidRating(-1))
	assert.False(t, ValidRating(11))
}

func TestSessionType_Valid(t *testing.T) {
	assert.True(t, SessionInitial.Valid())
	assert.True(t, SessionFollowUp.Valid())
	assert.False(t, SessionType("checkup").Valid())
}
