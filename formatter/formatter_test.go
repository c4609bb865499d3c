package formatter

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/weedfreer/resilog/core"
)

func testEntry() *core.Entry {
	return &core.Entry{
		Time:    time.Date(2024, 3, 1, 10, 15, 2, 114000000, time.UTC),
		Level:   core.WarnLevel,
		Message: "disk filling up",
		Caller:  core.CallerInfo{Line: 87, Defined: true},
	}
}

func TestTextFormatterShape(t *testing.T) {
	f := NewTextFormatter(Config{Name: "myapp"})

	data, err := f.Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	got := string(data)
	want := "2024-03-01 10:15:02,114 - [WARNING] - myapp - 87 - disk filling up\n"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestTextFormatterSeverityNames(t *testing.T) {
	f := NewTextFormatter(Config{Name: "s"})

	tests := []struct {
		level core.Level
		want  string
	}{
		{core.DebugLevel, "[DEBUG]"},
		{core.InfoLevel, "[INFO]"},
		{core.WarnLevel, "[WARNING]"},
		{core.ErrorLevel, "[ERROR]"},
		{core.CriticalLevel, "[CRITICAL]"},
	}

	for _, tt := range tests {
		e := testEntry()
		e.Level = tt.level
		data, err := f.Format(e)
		if err != nil {
			t.Fatalf("Format() error = %v", err)
		}
		if !strings.Contains(string(data), tt.want) {
			t.Errorf("level %v: output %q missing %q", tt.level, data, tt.want)
		}
	}
}

func TestTextFormatterDefaultTimestamp(t *testing.T) {
	f := NewTextFormatter(Config{Name: "s"})

	data, err := f.Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	// date, space, time, comma, three millisecond digits
	re := regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2},\d{3} - `)
	if !re.Match(data) {
		t.Errorf("timestamp prefix not matched in %q", data)
	}
}

func TestTextFormatterFields(t *testing.T) {
	f := NewTextFormatter(Config{Name: "s"})

	e := testEntry()
	e.Fields = []core.Field{
		core.String("path", "/var/log/app.log"),
		core.Err(errors.New("permission denied")),
	}

	data, err := f.Format(e)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	got := string(data)

	if !strings.Contains(got, "path=/var/log/app.log") {
		t.Errorf("output %q missing path field", got)
	}
	if !strings.Contains(got, "error=permission denied") {
		t.Errorf("output %q missing error field", got)
	}
}

func TestTextFormatterFormatTo(t *testing.T) {
	f := NewTextFormatter(Config{Name: "myapp"})

	var buf bytes.Buffer
	if err := f.FormatTo(testEntry(), &buf); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}

	direct, _ := f.Format(testEntry())
	if buf.String() != string(direct) {
		t.Errorf("FormatTo() = %q, Format() = %q; want identical", buf.String(), direct)
	}
}
