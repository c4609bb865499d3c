package eventhandler

import (
	"errors"
	"strings"

	"github.com/weedfreer/resilog/core"
	"github.com/weedfreer/resilog/formatter"
	"github.com/weedfreer/resilog/handler"
)

// ErrEventLogUnavailable signals that the OS event log service cannot
// be opened under the requested source name. There is no further sink
// to fall back to; the session treats needing the event log and not
// having it as unrecoverable.
var ErrEventLogUnavailable = errors.New("OS event log unavailable")

// Type is the severity of an OS event record
type Type int8

const (
	// Information for normal operational events
	Information Type = iota
	// Warning for degraded-but-running events
	Warning
	// Error for failure events
	Error
)

// String returns the string representation of the type
func (t Type) String() string {
	switch t {
	case Information:
		return "INFORMATION"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Record is a single submission to the OS event log
type Record struct {
	// EventID is the numeric event identifier
	EventID uint32
	// Category is the numeric event category
	Category uint16
	// Type is the record severity
	Type Type
	// Lines is the ordered human-readable description
	Lines []string
	// Payload is an opaque binary attachment
	Payload []byte
}

// Reporter submits records to the OS event log. The concrete
// implementation is platform-bound (Windows event log, syslog
// elsewhere); NewReporter returns the one for the build target.
// Keeping it an interface keeps the failover machinery portable and
// lets tests capture records with a fake.
type Reporter interface {
	// Report submits one record
	Report(rec Record) error
	// Close releases the event log handle
	Close() error
}

// TypeForLevel maps an entry severity to the event record type
func TypeForLevel(level core.Level) Type {
	switch {
	case level >= core.ErrorLevel:
		return Error
	case level == core.WarnLevel:
		return Warning
	default:
		return Information
	}
}

// EventConfig holds configuration for the event handler
type EventConfig struct {
	// Reporter is the event log connection to submit through (required)
	Reporter Reporter
	// Formatter renders the description line (default: TextFormatter)
	Formatter formatter.Formatter
	// EventID tags every record (default 0)
	EventID uint32
	// Category tags every record (default 0)
	Category uint16
}

// EventHandler turns log entries into OS event records
type EventHandler struct {
	reporter Reporter
	fmtr     formatter.Formatter
	eventID  uint32
	category uint16
	stats    *handler.Stats
}

// NewEventHandler creates an event handler over an open reporter.
// The handler borrows the reporter: closing the handler does not
// close the reporter, because the session keeps reporting switch and
// resume notifications past the handler's lifetime.
func NewEventHandler(cfg EventConfig) (*EventHandler, error) {
	if cfg.Reporter == nil {
		return nil, errors.New("eventhandler: reporter is required")
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	return &EventHandler{
		reporter: cfg.Reporter,
		fmtr:     cfg.Formatter,
		eventID:  cfg.EventID,
		category: cfg.Category,
		stats:    handler.NewStats(),
	}, nil
}

// Handle submits an entry as one event record, with the formatted
// record as the description line.
func (h *EventHandler) Handle(entry *core.Entry) error {
	data, err := h.fmtr.Format(entry)
	if err != nil {
		return err
	}

	lines := []string{strings.TrimRight(string(data), "\n")}

	err = h.reporter.Report(Record{
		EventID:  h.eventID,
		Category: h.category,
		Type:     TypeForLevel(entry.Level),
		Lines:    lines,
		Payload:  []byte(entry.Message),
	})
	if err != nil {
		h.stats.IncrementError()
		return err
	}
	h.stats.IncrementProcessed()
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *EventHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close detaches from the borrowed reporter
func (h *EventHandler) Close() error {
	return nil
}
