//go:build !windows

package eventhandler

import (
	"fmt"
	"log/syslog"
	"strings"
)

// syslogReporter renders the OS event log as syslog on non-Windows
// targets. Event id and category have no syslog equivalent; they are
// folded into the message when non-zero.
type syslogReporter struct {
	w *syslog.Writer
}

// NewReporter opens a syslog connection tagged with the source name.
// Failure to reach the syslog service wraps ErrEventLogUnavailable.
func NewReporter(source string) (Reporter, error) {
	w, err := syslog.New(syslog.LOG_INFO|syslog.LOG_DAEMON, source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEventLogUnavailable, err)
	}
	return &syslogReporter{w: w}, nil
}

// Report submits one record at the matching syslog severity
func (r *syslogReporter) Report(rec Record) error {
	msg := strings.Join(rec.Lines, " | ")
	if rec.EventID != 0 || rec.Category != 0 {
		msg = fmt.Sprintf("[event=%d category=%d] %s", rec.EventID, rec.Category, msg)
	}

	switch rec.Type {
	case Warning:
		return r.w.Warning(msg)
	case Error:
		return r.w.Err(msg)
	default:
		return r.w.Info(msg)
	}
}

// Close closes the syslog connection
func (r *syslogReporter) Close() error {
	return r.w.Close()
}
