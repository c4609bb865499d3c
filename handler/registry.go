package handler

import (
	"errors"
	"fmt"
	"time"

	"github.com/weedfreer/resilog/core"
)

// ErrKindAttached is returned by Attach when a handler of the same
// kind is already attached.
var ErrKindAttached = errors.New("handler of this kind already attached")

// DetachStatus is the outcome of a DetachByNameAndKind call
type DetachStatus int

const (
	// Removed means the handler was found, closed and removed
	Removed DetachStatus = iota
	// NotFound means no handler with that identity is attached.
	// Callers switching sinks treat this the same as Removed: there
	// is nothing left to remove.
	NotFound
	// RemovalFailed means the handler was found but its close failed.
	// The session cannot guarantee single-sink exclusivity past this
	// point; it is the trigger for fatal escalation.
	RemovalFailed
)

// String returns the string representation of the status
func (s DetachStatus) String() string {
	switch s {
	case Removed:
		return "removed"
	case NotFound:
		return "not_found"
	case RemovalFailed:
		return "removal_failed"
	default:
		return "unknown"
	}
}

// Registry tracks the handlers currently attached to a logging
// session and enforces per-kind exclusivity.
//
// A Registry is not safe for concurrent use; the session model is
// single-threaded and callers must serialize externally.
type Registry struct {
	attached []Named
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Attach registers a handler under its (name, kind) identity. It
// fails if a handler of the same kind is already attached. The
// session never attaches without a preceding successful detach, but
// the registry enforces the invariant anyway.
func (r *Registry) Attach(n Named) error {
	if n.Handler == nil {
		return errors.New("attach: nil handler")
	}
	for _, a := range r.attached {
		if a.Kind == n.Kind {
			return fmt.Errorf("attach %q: %w (%s)", n.Name, ErrKindAttached, n.Kind)
		}
	}
	r.attached = append(r.attached, n)
	return nil
}

// DetachByNameAndKind removes the first handler matching name and
// kind, closing it. Every attempt emits a diagnostic record to the
// handlers that remain attached; the diagnostic write is best-effort
// and never participates in the failover loop.
func (r *Registry) DetachByNameAndKind(name string, kind Kind) DetachStatus {
	for i, a := range r.attached {
		if a.Name != name || a.Kind != kind {
			continue
		}
		if err := a.Handler.Close(); err != nil {
			r.logf(core.ErrorLevel,
				fmt.Sprintf("failed to remove %s handler %q while switching logging sinks", kind, name),
				core.Err(err))
			return RemovalFailed
		}
		r.attached = append(r.attached[:i], r.attached[i+1:]...)
		r.logf(core.DebugLevel,
			fmt.Sprintf("removed %s handler %q while switching logging sinks", kind, name))
		return Removed
	}
	r.logf(core.DebugLevel,
		fmt.Sprintf("no %s handler %q attached at time of switching logging sinks", kind, name))
	return NotFound
}

// Emit fans an entry out to every attached handler whose minimum
// severity admits it. Write errors are swallowed here: file
// unavailability is detected by the session's probes, not by write
// failures mid-call.
func (r *Registry) Emit(entry *core.Entry) {
	for _, a := range r.attached {
		if entry.Level < a.MinLevel {
			continue
		}
		_ = a.Handler.Handle(entry)
	}
}

// Attached reports whether a handler of the given kind is attached
func (r *Registry) Attached(kind Kind) bool {
	for _, a := range r.attached {
		if a.Kind == kind {
			return true
		}
	}
	return false
}

// Len returns the number of attached handlers
func (r *Registry) Len() int {
	return len(r.attached)
}

// Close closes every attached handler, keeping the first error
func (r *Registry) Close() error {
	var first error
	for _, a := range r.attached {
		if err := a.Handler.Close(); err != nil && first == nil {
			first = err
		}
	}
	r.attached = nil
	return first
}

// logf writes a registry diagnostic to whatever handlers remain
// attached, subject to their level filters.
func (r *Registry) logf(level core.Level, msg string, fields ...core.Field) {
	entry := core.GetEntry()
	entry.Time = time.Now()
	entry.Level = level
	entry.Message = msg
	entry.Fields = append(entry.Fields, fields...)
	entry.Caller = core.GetCaller(2)
	r.Emit(entry)
	core.PutEntry(entry)
}
