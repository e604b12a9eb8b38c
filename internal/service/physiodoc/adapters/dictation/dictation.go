// Package dictation adapts a speech-capture collaborator to the core. The
// recognizer itself (start/stop, audio, interim results) lives outside; the
// only contract toward the core is "append recognized text to the active
// section", invoked once per final fragment in recognition order.
package dictation

import (
	"bufio"
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/app"
	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/app/commands"
	"github.com/Cleo-Systems/physio-docpilot/internal/service/physiodoc/model"
)

// Session routes recognized fragments into one treatment session. The target
// section can be switched between fragments; each fragment appends to the
// field's value as it is at that moment. A fresh Session targets the
// catch-all transcript.
type Session struct {
	bus       app.CommandBus
	patientID uuid.UUID
	sessionID uuid.UUID
	target    model.Section
}

func NewSession(bus app.CommandBus, patientID, sessionID uuid.UUID) *Session {
	return &Session{
		bus:       bus,
		patientID: patientID,
		sessionID: sessionID,
		target:    model.SectionTranscript,
	}
}

// SetTarget switches the section subsequent fragments are appended to.
func (d *Session) SetTarget(sec model.Section) {
	d.target = sec
}

func (d *Session) Target() model.Section {
	return d.target
}

// OnResult delivers one final recognized fragment.
func (d *Session) OnResult(ctx context.Context, text string) error {
	_, err := d.bus.AppendDictation(ctx, commands.AppendDictationCommand{
		PatientID: d.patientID,
		SessionID: d.sessionID,
		Section:   d.target,
		Text:      text,
	})
	return err
}

// Feed consumes newline-delimited fragments until EOF, standing in for a
// live recognizer when transcripts arrive from a pipe or file.
func (d *Session) Feed(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := d.OnResult(ctx, sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}
