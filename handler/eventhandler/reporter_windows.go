//go:build windows

package eventhandler

import (
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"
)

// windowsReporter submits records through the Windows event log API.
// The registered source handle lives for the reporter's lifetime; the
// submitting user's SID is resolved from the live process token on
// every report, not cached.
type windowsReporter struct {
	source string
	handle windows.Handle
}

// NewReporter registers an event source and returns a reporter bound
// to it. Failure to register wraps ErrEventLogUnavailable.
func NewReporter(source string) (Reporter, error) {
	srcPtr, err := windows.UTF16PtrFromString(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEventLogUnavailable, err)
	}
	h, err := windows.RegisterEventSource(nil, srcPtr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEventLogUnavailable, err)
	}
	return &windowsReporter{source: source, handle: h}, nil
}

func eventType(t Type) uint16 {
	switch t {
	case Warning:
		return windows.EVENTLOG_WARNING_TYPE
	case Error:
		return windows.EVENTLOG_ERROR_TYPE
	default:
		return windows.EVENTLOG_INFORMATION_TYPE
	}
}

// Report submits one record tagged with the current process owner's SID
func (r *windowsReporter) Report(rec Record) error {
	var tok windows.Token
	err := windows.OpenProcessToken(windows.CurrentProcess(), windows.TOKEN_QUERY, &tok)
	if err != nil {
		return fmt.Errorf("open process token: %w", err)
	}
	defer tok.Close()

	user, err := tok.GetTokenUser()
	if err != nil {
		return fmt.Errorf("resolve token user: %w", err)
	}

	ptrs := make([]*uint16, 0, len(rec.Lines))
	for _, line := range rec.Lines {
		p, err := windows.UTF16PtrFromString(line)
		if err != nil {
			return fmt.Errorf("encode description line: %w", err)
		}
		ptrs = append(ptrs, p)
	}

	var strs **uint16
	if len(ptrs) > 0 {
		strs = &ptrs[0]
	}
	var data *byte
	if len(rec.Payload) > 0 {
		data = &rec.Payload[0]
	}

	err = windows.ReportEvent(
		r.handle,
		eventType(rec.Type),
		rec.Category,
		rec.EventID,
		uintptr(unsafe.Pointer(user.User.Sid)),
		uint16(len(ptrs)),
		uint32(len(rec.Payload)),
		strs,
		data,
	)
	runtime.KeepAlive(user)
	runtime.KeepAlive(ptrs)
	runtime.KeepAlive(rec.Payload)
	return err
}

// Close deregisters the event source
func (r *windowsReporter) Close() error {
	if r.handle == 0 {
		return nil
	}
	err := windows.DeregisterEventSource(r.handle)
	r.handle = 0
	return err
}
