package core

import "fmt"

// Level represents the severity level of a log entry
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages (default session level)
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// CriticalLevel for critical messages
	CriticalLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ParseSelector converts a single-letter level selector into a Level.
// The selectors mirror the session configuration surface:
//
//	d - debug, i - info, w - warning, e - error, c - critical
//
// Unrecognized selectors are rejected here, at configuration time,
// rather than at the first log call.
func ParseSelector(s string) (Level, error) {
	switch s {
	case "d", "D":
		return DebugLevel, nil
	case "i", "I":
		return InfoLevel, nil
	case "w", "W":
		return WarnLevel, nil
	case "e", "E":
		return ErrorLevel, nil
	case "c", "C":
		return CriticalLevel, nil
	default:
		return WarnLevel, fmt.Errorf("unknown level selector %q (want one of d, i, w, e, c)", s)
	}
}
