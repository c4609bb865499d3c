package resilog

import (
	"fmt"

	"github.com/weedfreer/resilog/core"
	"github.com/weedfreer/resilog/handler"
	"github.com/weedfreer/resilog/handler/eventhandler"
)

// Opaque payloads attached to the switch and resume event records.
var (
	failoverPayload = []byte("Failed\x00to\x00access\x00rolling\x00log\x00file.\x00Logging\x00to\x00event\x00log\x00instead.")
	resumePayload   = []byte("Resuming\x00logging\x00to\x00rolling\x00log\x00file.")
)

// checkFileAccess probes the file path and drives the state machine:
// an unreachable path selects the event log, a reachable one selects
// the file. Selecting the state already in effect is a no-op.
func (s *Session) checkFileAccess() {
	if err := s.probe(s.filename); err != nil {
		s.failToEvent(err)
		return
	}
	s.resumeFile()
}

// failToEvent switches the session to the OS event log. It emits the
// switch notification exactly once per transition; repeated probe
// failures while already EventActive do nothing.
func (s *Session) failToEvent(cause error) {
	if s.state == EventActive {
		return
	}

	name := s.handlerName(handler.KindFile)
	switch s.registry.DetachByNameAndKind(name, handler.KindFile) {
	case handler.Removed, handler.NotFound:
	case handler.RemovalFailed:
		s.escalate(fmt.Sprintf("failed to remove file handler %q from the session", name))
		return
	}

	rep, err := s.eventReporter()
	if err != nil {
		// The file is gone and the event log cannot be opened: there
		// is a requirement to log and no possibility to log.
		s.escalate(fmt.Sprintf("log file unreachable and %v", err))
		return
	}

	eh, err := eventhandler.NewEventHandler(eventhandler.EventConfig{
		Reporter:  rep,
		Formatter: s.fmtr,
		EventID:   s.eventID,
		Category:  s.category,
	})
	if err != nil {
		s.escalate(fmt.Sprintf("failed to construct event handler: %v", err))
		return
	}
	if err := s.registry.Attach(handler.Named{
		Name:     s.handlerName(handler.KindEvent),
		Kind:     handler.KindEvent,
		MinLevel: s.level,
		Handler:  eh,
	}); err != nil {
		s.escalate(fmt.Sprintf("failed to attach event handler: %v", err))
		return
	}
	s.state = EventActive

	s.meta(core.WarnLevel,
		fmt.Sprintf("failed to access rolling log file, switching to OS event logging; check access and permissions at %s", s.filename),
		core.Err(cause))
	// Best-effort: the switch is also documented in the event log
	// itself, independent of the handler path.
	rep.Report(eventhandler.Record{
		EventID:  s.eventID,
		Category: s.category,
		Type:     eventhandler.Error,
		Lines: []string{
			"Failed to access rolling log file. Switching to OS event logging.",
			"Check access and permissions are available at: " + s.filename,
			"The following error was recorded: " + cause.Error(),
		},
		Payload: failoverPayload,
	})
}

// resumeFile switches the session back to the rotating file. The file
// sink is reconstructed first; only once that succeeds is the event
// handler detached, so a half-recovered path cannot leave the session
// sinkless.
func (s *Session) resumeFile() {
	if s.state == FileActive {
		return
	}

	fh, err := s.openFile()
	if err != nil {
		// The probe succeeded but the sink could not be rebuilt, so
		// access is intermittent. Stay on the event log; re-entering the
		// failover path is a no-op apart from carrying the new error.
		s.failToEvent(err)
		return
	}

	name := s.handlerName(handler.KindEvent)
	switch s.registry.DetachByNameAndKind(name, handler.KindEvent) {
	case handler.Removed, handler.NotFound:
	case handler.RemovalFailed:
		fh.Close()
		s.escalate(fmt.Sprintf("failed to remove event handler %q from the session", name))
		return
	}

	if err := s.registry.Attach(handler.Named{
		Name:     s.handlerName(handler.KindFile),
		Kind:     handler.KindFile,
		MinLevel: s.level,
		Handler:  fh,
	}); err != nil {
		fh.Close()
		s.escalate(fmt.Sprintf("failed to attach file handler: %v", err))
		return
	}
	s.state = FileActive

	if rep, err := s.eventReporter(); err == nil {
		rep.Report(eventhandler.Record{
			EventID:  s.eventID,
			Category: s.category,
			Type:     eventhandler.Information,
			Lines: []string{
				"Resuming logging to rolling log file.",
				"Check " + s.filename + " for further log data.",
			},
			Payload: resumePayload,
		})
	}
	s.meta(core.InfoLevel, "resuming logging to rolling log file at "+s.filename)
}

// eventReporter returns the session's event log connection, opening
// it on first need and caching it for the session's lifetime.
func (s *Session) eventReporter() (eventhandler.Reporter, error) {
	if s.reporter != nil {
		return s.reporter, nil
	}
	rep, err := s.openReporter()
	if err != nil {
		return nil, err
	}
	s.reporter = rep
	return rep, nil
}

// meta emits an internal record about the session itself through
// whatever handlers are currently attached.
func (s *Session) meta(level core.Level, msg string, fields ...core.Field) {
	entry := core.GetEntry()
	entry.Time = s.now()
	entry.Level = level
	entry.Message = msg
	if len(fields) > 0 {
		entry.Fields = append(entry.Fields, fields...)
	}
	entry.Caller = core.GetCaller(2)
	s.registry.Emit(entry)
	core.PutEntry(entry)
}
