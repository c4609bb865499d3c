package consolehandler

import (
	"io"
	"os"
	"sync"

	"github.com/weedfreer/resilog/core"
	"github.com/weedfreer/resilog/formatter"
	"github.com/weedfreer/resilog/handler"
)

// ConsoleHandler writes log entries to a stream, normally stderr.
// The session attaches it as a mirror that stays active regardless of
// which failover sink currently holds the log.
type ConsoleHandler struct {
	writer          io.Writer
	fmtr            formatter.Formatter
	writerFormatter formatter.WriterFormatter
	mu              sync.Mutex
	stats           *handler.Stats
}

// ConsoleConfig holds configuration for the console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}

	h := &ConsoleHandler{
		writer: cfg.Writer,
		fmtr:   cfg.Formatter,
		stats:  handler.NewStats(),
	}
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	return h
}

// Handle formats and writes an entry
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	if h.writerFormatter != nil {
		h.mu.Lock()
		err := h.writerFormatter.FormatTo(entry, h.writer)
		h.mu.Unlock()
		if err == nil {
			h.stats.IncrementProcessed()
		} else {
			h.stats.IncrementError()
		}
		return err
	}

	data, err := h.fmtr.Format(entry)
	if err != nil {
		return err
	}

	h.mu.Lock()
	_, writeErr := h.writer.Write(data)
	h.mu.Unlock()

	if writeErr == nil {
		h.stats.IncrementProcessed()
	} else {
		h.stats.IncrementError()
	}
	return writeErr
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close is a no-op; the handler does not own its writer
func (h *ConsoleHandler) Close() error {
	return nil
}
