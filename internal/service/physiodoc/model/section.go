package model

import (
	"errors"
	"fmt"
	"strings"
)

// Section selects one of the free-text clinical fields of a Session. Using a
// closed enum instead of raw field names keeps dictation routing exhaustive:
// every switch over sections is checked at compile time.
type Section string

const (
	SectionAnamnesis   Section = "anamnesis"
	SectionStatus      Section = "status"
	SectionDiagnosis   Section = "diagnosis"
	SectionTherapyPlan Section = "therapy_plan"
	SectionCourse      Section = "course"
	SectionEpicrisis   Section = "epicrisis"
	SectionTranscript  Section = "transcript"
)

var ErrUnknownSection = errors.New("unknown clinical section")

// Sections lists all clinical sections in document order. The transcript is
// last: it is a catch-all for dictation and never rendered into the note.
func Sections() []Section {
	return []Section{
		SectionAnamnesis,
		SectionStatus,
		SectionDiagnosis,
		SectionTherapyPlan,
		SectionCourse,
		SectionEpicrisis,
		SectionTranscript,
	}
}

// ParseSection converts user input into a Section.
func ParseSection(s string) (Section, error) {
	sec := Section(strings.ToLower(strings.TrimSpace(s)))
	switch sec {
	case SectionAnamnesis, SectionStatus, SectionDiagnosis,
		SectionTherapyPlan, SectionCourse, SectionEpicrisis, SectionTranscript:
		return sec, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
}

// SectionText returns the current text of the given section.
func (s *Session) SectionText(sec Section) (string, error) {
	switch sec {
	case SectionAnamnesis:
		return s.AnamnesisText, nil
	case SectionStatus:
		return s.StatusText, nil
	case SectionDiagnosis:
		return s.DiagnosisText, nil
	case SectionTherapyPlan:
		return s.TherapyPlanText, nil
	case SectionCourse:
		return s.CourseText, nil
	case SectionEpicrisis:
		return s.EpicrisisText, nil
	case SectionTranscript:
		return s.Transcript, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, sec)
}

// SetSectionText replaces the text of the given section.
func (s *Session) SetSectionText(sec Section, text string) error {
	switch sec {
	case SectionAnamnesis:
		s.AnamnesisText = text
	case SectionStatus:
		s.StatusText = text
	case SectionDiagnosis:
		s.DiagnosisText = text
	case SectionTherapyPlan:
		s.TherapyPlanText = text
	case SectionCourse:
		s.CourseText = text
	case SectionEpicrisis:
		s.EpicrisisText = text
	case SectionTranscript:
		s.Transcript = text
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSection, sec)
	}
	return nil
}

// AppendSectionText appends one recognized or typed fragment to the current
// value of the section, separated by a single space. Whitespace-only
// fragments are dropped. Fragments always land on the value as it is at the
// moment of the append, which is the only ordering guarantee the dictation
// boundary gets.
func (s *Session) AppendSectionText(sec Section, fragment string) error {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return nil
	}
	current, err := s.SectionText(sec)
	if err != nil {
		return err
	}
	current = strings.TrimSpace(current)
	if current == "" {
		return s.SetSectionText(sec, fragment)
	}
	return s.SetSectionText(sec, current+" "+fragment)
}
