package resilog

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/weedfreer/resilog/alert"
	"github.com/weedfreer/resilog/handler/eventhandler"
	"github.com/weedfreer/resilog/handler/filehandler"
)

// Config holds the construction surface of a logging session
type Config struct {
	// Dir is the output directory for the log file; created if absent
	Dir string
	// BaseName is the log file's base name. The extension is
	// optional; ".log" is assumed when none is supplied.
	BaseName string
	// Name is the session name, printed in every record and used as
	// the base handler name
	Name string
	// Level is the minimum severity selector for the file and event
	// handlers: d (debug), i (info), w (warning), e (error),
	// c (critical). Empty selects "w"; anything else is rejected.
	Level string
	// Console mirrors all levels to a console stream handler that
	// stays attached across sink switches
	Console bool
	// ConsoleWriter overrides the mirror destination (default stderr)
	ConsoleWriter io.Writer
	// DatetimeSuffix appends _YYYY-MM-DD_HH-MM-SS to the file name
	// at construction time
	DatetimeSuffix bool
	// Rotation parameters for the file sink (zero values select
	// 20 MiB and 7 backups)
	Rotation filehandler.RotationPolicy
	// EventSource is the OS event log source name (default: Name)
	EventSource string
	// EventID tags every OS event record (default 0)
	EventID uint32
	// Category tags every OS event record (default 0)
	Category uint16
	// Reporter overrides the platform event log connection. Mostly
	// for tests; nil opens the platform reporter on first need.
	Reporter eventhandler.Reporter
	// Presenter overrides the platform alert presenter. Mostly for
	// tests; nil selects the platform presenter.
	Presenter alert.Presenter
}

func (cfg *Config) validate() error {
	if cfg.Dir == "" {
		return errors.New("resilog: Dir is required")
	}
	if cfg.BaseName == "" {
		return errors.New("resilog: BaseName is required")
	}
	if cfg.Name == "" {
		return errors.New("resilog: Name is required")
	}
	return nil
}

// datetimeSuffixFormat is the layout appended to the base name when
// DatetimeSuffix is set.
const datetimeSuffixFormat = "2006-01-02_15-04-05"

// buildFilename resolves the live log file path:
// {dir}/{base}{_datetime?}{.ext|.log}
func buildFilename(cfg Config, now time.Time) string {
	ext := filepath.Ext(cfg.BaseName)
	base := strings.TrimSuffix(cfg.BaseName, ext)
	if ext == "" {
		ext = ".log"
	}
	if cfg.DatetimeSuffix {
		base = base + "_" + now.Format(datetimeSuffixFormat)
	}
	return filepath.Join(cfg.Dir, base+ext)
}
