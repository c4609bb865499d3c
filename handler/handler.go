package handler

import (
	"github.com/weedfreer/resilog/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes a log entry
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// Kind identifies the sink a handler is attached to. It is a closed
// set: the failover pair (File, Event) plus the independent console
// mirror.
type Kind int8

const (
	// KindFile is the rotating file sink
	KindFile Kind = iota
	// KindEvent is the OS event log sink
	KindEvent
	// KindConsole is the always-on console mirror
	KindConsole
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindEvent:
		return "event"
	case KindConsole:
		return "console"
	default:
		return "unknown"
	}
}

// Suffix returns the handler-name suffix for the kind. Handler names
// are formed from the session's base handler name plus this suffix.
func (k Kind) Suffix() string {
	switch k {
	case KindFile:
		return "_RFH"
	case KindEvent:
		return "_EVT"
	case KindConsole:
		return "_STR"
	default:
		return ""
	}
}

// Named is a handler attached to a session under a (name, kind)
// identity, together with its minimum severity.
type Named struct {
	Name     string
	Kind     Kind
	MinLevel core.Level
	Handler  Handler
}
