package resilog

import (
	"fmt"
	"os"
	"time"

	"github.com/weedfreer/resilog/alert"
	"github.com/weedfreer/resilog/core"
	"github.com/weedfreer/resilog/formatter"
	"github.com/weedfreer/resilog/handler"
	"github.com/weedfreer/resilog/handler/consolehandler"
	"github.com/weedfreer/resilog/handler/eventhandler"
	"github.com/weedfreer/resilog/handler/filehandler"
)

// BackendState identifies which sink currently holds the log
type BackendState int8

const (
	// FileActive means records go to the rotating file
	FileActive BackendState = iota
	// EventActive means records go to the OS event log
	EventActive
)

// String returns the string representation of the state
func (s BackendState) String() string {
	switch s {
	case FileActive:
		return "file_active"
	case EventActive:
		return "event_active"
	default:
		return "unknown"
	}
}

// Session is a logging session that prefers a rotating file sink and
// fails over to the OS event log when the file becomes inaccessible,
// failing back once access is restored.
//
// A Session is not safe for concurrent use: the registry and backend
// state are mutated without synchronization around every log call.
// Callers with multiple goroutines must serialize externally or use
// one session per goroutine.
type Session struct {
	name     string
	level    core.Level
	filename string
	fmtr     formatter.Formatter
	registry *handler.Registry

	state    BackendState
	rotation filehandler.RotationPolicy

	eventSource string
	eventID     uint32
	category    uint16
	reporter    eventhandler.Reporter

	// seams, overridable in tests
	escalate     func(condition string)
	probe        func(name string) error
	openFile     func() (handler.Handler, error)
	openReporter func() (eventhandler.Reporter, error)
	now          func() time.Time
}

// New constructs a session. Configuration problems (missing paths,
// unknown level selector) are returned as errors; a file sink that
// cannot be opened is not an error; the session comes up in
// EventActive state instead, exactly as it would after a failover.
func New(cfg Config) (*Session, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	selector := cfg.Level
	if selector == "" {
		selector = "w"
	}
	level, err := core.ParseSelector(selector)
	if err != nil {
		return nil, fmt.Errorf("resilog: %w", err)
	}

	source := cfg.EventSource
	if source == "" {
		source = cfg.Name
	}

	s := &Session{
		name:        cfg.Name,
		level:       level,
		state:       FileActive,
		rotation:    cfg.Rotation,
		eventSource: source,
		eventID:     cfg.EventID,
		category:    cfg.Category,
		reporter:    cfg.Reporter,
		registry:    handler.NewRegistry(),
		escalate:    alert.NewEscalator(cfg.Presenter).Escalate,
		probe:       probeFile,
		now:         time.Now,
	}
	s.fmtr = formatter.NewTextFormatter(formatter.Config{Name: cfg.Name})
	s.filename = buildFilename(cfg, s.now())
	s.openFile = func() (handler.Handler, error) {
		return filehandler.NewFileHandler(filehandler.FileConfig{
			Filename:  s.filename,
			Formatter: s.fmtr,
			Rotation:  s.rotation,
		})
	}
	s.openReporter = func() (eventhandler.Reporter, error) {
		return eventhandler.NewReporter(s.eventSource)
	}

	if cfg.Console {
		s.registry.Attach(handler.Named{
			Name:     s.handlerName(handler.KindConsole),
			Kind:     handler.KindConsole,
			MinLevel: core.DebugLevel,
			Handler: consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
				Writer:    cfg.ConsoleWriter,
				Formatter: s.fmtr,
			}),
		})
	}

	fh, err := s.openFile()
	if err != nil {
		// No usable file at construction; come up on the event log.
		s.failToEvent(err)
		return s, nil
	}
	s.registry.Attach(handler.Named{
		Name:     s.handlerName(handler.KindFile),
		Kind:     handler.KindFile,
		MinLevel: s.level,
		Handler:  fh,
	})
	return s, nil
}

// handlerName forms the (base name, kind suffix) handler identity
func (s *Session) handlerName(kind handler.Kind) string {
	return s.name + kind.Suffix()
}

// probeFile checks that the log file path is writable by opening it
// for append and releasing it without writing.
func probeFile(name string) error {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}

// Log emits a record at the given level. The file path is probed
// before and after the write, so a sink that dies or recovers is
// switched no later than the next call; the record itself goes to
// whichever sink was active at probe time.
func (s *Session) Log(level core.Level, msg string, fields ...core.Field) {
	s.log(level, msg, fields)
}

// Debug logs a debug message
func (s *Session) Debug(msg string, fields ...core.Field) {
	s.log(core.DebugLevel, msg, fields)
}

// Info logs an info message
func (s *Session) Info(msg string, fields ...core.Field) {
	s.log(core.InfoLevel, msg, fields)
}

// Warn logs a warning message
func (s *Session) Warn(msg string, fields ...core.Field) {
	s.log(core.WarnLevel, msg, fields)
}

// Error logs an error message
func (s *Session) Error(msg string, fields ...core.Field) {
	s.log(core.ErrorLevel, msg, fields)
}

// Critical logs a critical message
func (s *Session) Critical(msg string, fields ...core.Field) {
	s.log(core.CriticalLevel, msg, fields)
}

// log probes the file path, emits the record, then probes again
func (s *Session) log(level core.Level, msg string, fields []core.Field) {
	s.checkFileAccess()

	entry := core.GetEntry()
	entry.Time = s.now()
	entry.Level = level
	entry.Message = msg
	if len(fields) > 0 {
		entry.Fields = append(entry.Fields, fields...)
	}
	entry.Caller = core.GetCaller(3)
	s.registry.Emit(entry)
	core.PutEntry(entry)

	s.checkFileAccess()
}

// State returns the currently authoritative sink
func (s *Session) State() BackendState {
	return s.state
}

// Filename returns the resolved live log file path
func (s *Session) Filename() string {
	return s.filename
}

// Level returns the session's configured minimum severity
func (s *Session) Level() core.Level {
	return s.level
}

// Close detaches every handler and releases the event log connection.
// The session must not be used afterwards.
func (s *Session) Close() error {
	err := s.registry.Close()
	if s.reporter != nil {
		if cerr := s.reporter.Close(); cerr != nil && err == nil {
			err = cerr
		}
		s.reporter = nil
	}
	return err
}
