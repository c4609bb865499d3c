package handler

import (
	"errors"
	"testing"

	"github.com/weedfreer/resilog/core"
)

// memHandler records the entries it handles
type memHandler struct {
	entries  []core.Entry
	closed   bool
	closeErr error
}

func (m *memHandler) Handle(e *core.Entry) error {
	cp := *e
	cp.Fields = append([]core.Field(nil), e.Fields...)
	m.entries = append(m.entries, cp)
	return nil
}

func (m *memHandler) Close() error {
	m.closed = true
	return m.closeErr
}

func TestRegistryAttachRejectsDuplicateKind(t *testing.T) {
	r := NewRegistry()

	if err := r.Attach(Named{Name: "a_RFH", Kind: KindFile, Handler: &memHandler{}}); err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	err := r.Attach(Named{Name: "b_RFH", Kind: KindFile, Handler: &memHandler{}})
	if !errors.Is(err, ErrKindAttached) {
		t.Errorf("Attach() error = %v, want ErrKindAttached", err)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestRegistryAttachRejectsNilHandler(t *testing.T) {
	r := NewRegistry()
	if err := r.Attach(Named{Name: "x", Kind: KindFile}); err == nil {
		t.Error("Attach() with nil handler expected error")
	}
}

func TestRegistryDetachRemoved(t *testing.T) {
	r := NewRegistry()
	h := &memHandler{}
	if err := r.Attach(Named{Name: "app_RFH", Kind: KindFile, Handler: h}); err != nil {
		t.Fatalf("Attach() error = %v", err)
	}

	st := r.DetachByNameAndKind("app_RFH", KindFile)
	if st != Removed {
		t.Errorf("DetachByNameAndKind() = %v, want Removed", st)
	}
	if !h.closed {
		t.Error("detached handler was not closed")
	}
	if r.Attached(KindFile) {
		t.Error("file handler still attached after detach")
	}
}

func TestRegistryDetachNotFound(t *testing.T) {
	r := NewRegistry()

	if st := r.DetachByNameAndKind("ghost_EVT", KindEvent); st != NotFound {
		t.Errorf("DetachByNameAndKind() = %v, want NotFound", st)
	}

	// Name matches but kind does not
	if err := r.Attach(Named{Name: "app", Kind: KindFile, Handler: &memHandler{}}); err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	if st := r.DetachByNameAndKind("app", KindEvent); st != NotFound {
		t.Errorf("DetachByNameAndKind() = %v, want NotFound", st)
	}
	if !r.Attached(KindFile) {
		t.Error("mismatched detach removed the file handler")
	}
}

func TestRegistryDetachRemovalFailed(t *testing.T) {
	r := NewRegistry()
	h := &memHandler{closeErr: errors.New("handle stuck")}
	if err := r.Attach(Named{Name: "app_EVT", Kind: KindEvent, Handler: h}); err != nil {
		t.Fatalf("Attach() error = %v", err)
	}

	if st := r.DetachByNameAndKind("app_EVT", KindEvent); st != RemovalFailed {
		t.Errorf("DetachByNameAndKind() = %v, want RemovalFailed", st)
	}
	// The handler stays attached; the caller escalates instead.
	if !r.Attached(KindEvent) {
		t.Error("handler removed despite failed close")
	}
}

func TestRegistryDetachDiagnosticGoesToRemaining(t *testing.T) {
	r := NewRegistry()
	console := &memHandler{}
	file := &memHandler{}
	if err := r.Attach(Named{Name: "app_STR", Kind: KindConsole, MinLevel: core.DebugLevel, Handler: console}); err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	if err := r.Attach(Named{Name: "app_RFH", Kind: KindFile, MinLevel: core.WarnLevel, Handler: file}); err != nil {
		t.Fatalf("Attach() error = %v", err)
	}

	r.DetachByNameAndKind("app_RFH", KindFile)

	if len(console.entries) != 1 {
		t.Fatalf("console received %d diagnostics, want 1", len(console.entries))
	}
	if console.entries[0].Level != core.DebugLevel {
		t.Errorf("diagnostic level = %v, want DebugLevel", console.entries[0].Level)
	}
	if len(file.entries) != 0 {
		t.Errorf("detached handler received %d diagnostics, want 0", len(file.entries))
	}
}

func TestRegistryEmitLevelFilter(t *testing.T) {
	r := NewRegistry()
	warnOnly := &memHandler{}
	all := &memHandler{}
	if err := r.Attach(Named{Name: "f", Kind: KindFile, MinLevel: core.WarnLevel, Handler: warnOnly}); err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	if err := r.Attach(Named{Name: "c", Kind: KindConsole, MinLevel: core.DebugLevel, Handler: all}); err != nil {
		t.Fatalf("Attach() error = %v", err)
	}

	for _, lvl := range []core.Level{core.DebugLevel, core.InfoLevel, core.WarnLevel, core.ErrorLevel, core.CriticalLevel} {
		e := core.GetEntry()
		e.Level = lvl
		e.Message = "m"
		r.Emit(e)
		core.PutEntry(e)
	}

	if len(warnOnly.entries) != 3 {
		t.Errorf("warn-filtered handler received %d entries, want 3", len(warnOnly.entries))
	}
	if len(all.entries) != 5 {
		t.Errorf("debug-filtered handler received %d entries, want 5", len(all.entries))
	}
}

func TestRegistryMutualExclusionSequence(t *testing.T) {
	r := NewRegistry()

	// FILE attached, swap to EVENT, swap back; at every step at most
	// one of the pair is attached.
	check := func(step string) {
		if r.Attached(KindFile) && r.Attached(KindEvent) {
			t.Fatalf("%s: both file and event handlers attached", step)
		}
	}

	if err := r.Attach(Named{Name: "a_RFH", Kind: KindFile, Handler: &memHandler{}}); err != nil {
		t.Fatal(err)
	}
	check("after file attach")

	if st := r.DetachByNameAndKind("a_RFH", KindFile); st != Removed {
		t.Fatalf("detach file = %v", st)
	}
	if err := r.Attach(Named{Name: "a_EVT", Kind: KindEvent, Handler: &memHandler{}}); err != nil {
		t.Fatal(err)
	}
	check("after switch to event")

	if st := r.DetachByNameAndKind("a_EVT", KindEvent); st != Removed {
		t.Fatalf("detach event = %v", st)
	}
	if err := r.Attach(Named{Name: "a_RFH", Kind: KindFile, Handler: &memHandler{}}); err != nil {
		t.Fatal(err)
	}
	check("after switch back to file")
}

func TestRegistryClose(t *testing.T) {
	r := NewRegistry()
	h1 := &memHandler{}
	h2 := &memHandler{closeErr: errors.New("nope")}
	if err := r.Attach(Named{Name: "a", Kind: KindConsole, Handler: h1}); err != nil {
		t.Fatal(err)
	}
	if err := r.Attach(Named{Name: "b", Kind: KindEvent, Handler: h2}); err != nil {
		t.Fatal(err)
	}

	if err := r.Close(); err == nil {
		t.Error("Close() expected first close error")
	}
	if !h1.closed || !h2.closed {
		t.Error("Close() did not close all handlers")
	}
	if r.Len() != 0 {
		t.Errorf("Len() after Close = %d, want 0", r.Len())
	}
}

func TestKindStringsAndSuffixes(t *testing.T) {
	tests := []struct {
		kind   Kind
		str    string
		suffix string
	}{
		{KindFile, "file", "_RFH"},
		{KindEvent, "event", "_EVT"},
		{KindConsole, "console", "_STR"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.str {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.str)
		}
		if got := tt.kind.Suffix(); got != tt.suffix {
			t.Errorf("Kind(%d).Suffix() = %q, want %q", tt.kind, got, tt.suffix)
		}
	}
}
