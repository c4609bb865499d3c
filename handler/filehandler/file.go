package filehandler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/weedfreer/resilog/core"
	"github.com/weedfreer/resilog/formatter"
	"github.com/weedfreer/resilog/handler"
)

// ErrFileUnavailable signals that the log file's directory cannot be
// created or the file cannot be opened for append. The session
// recovers from it by failing over to the OS event log; it is never
// surfaced to the calling application.
var ErrFileUnavailable = errors.New("log file unavailable")

// Rotation defaults: 20 MiB per file, the live file plus 7 backups.
const (
	DefaultMaxSize     = 20971520
	DefaultBackupCount = 7
)

// RotationPolicy holds the immutable rotation parameters
type RotationPolicy struct {
	// MaxSize is the size in bytes a file may reach before it is
	// rotated (default 20 MiB; 0 selects the default, negative
	// disables rotation)
	MaxSize int64
	// BackupCount is the number of rotated backups retained
	// (default 7; 0 selects the default, negative keeps none)
	BackupCount int
}

func (p RotationPolicy) withDefaults() RotationPolicy {
	if p.MaxSize == 0 {
		p.MaxSize = DefaultMaxSize
	}
	if p.BackupCount == 0 {
		p.BackupCount = DefaultBackupCount
	}
	return p
}

// FileConfig holds configuration for the file handler
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Rotation parameters (zero values select the defaults)
	Rotation RotationPolicy
}

// FileHandler writes formatted entries to a size-bounded rotating
// file. Writes are synchronous and unbuffered so that a record is
// durable before the log call returns.
type FileHandler struct {
	filename        string
	file            *os.File
	fmtr            formatter.Formatter
	writerFormatter formatter.WriterFormatter
	mu              sync.Mutex
	maxSize         int64
	backupCount     int
	currentSize     int64
	stats           *handler.Stats
}

// NewFileHandler opens (creating the directory and file as needed)
// a rotating file handler. All construction failures wrap
// ErrFileUnavailable.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("%w: filename is required", ErrFileUnavailable)
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	rot := cfg.Rotation.withDefaults()

	dir := filepath.Dir(cfg.Filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileUnavailable, err)
	}

	file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileUnavailable, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("%w: %v", ErrFileUnavailable, err)
	}

	h := &FileHandler{
		filename:    cfg.Filename,
		file:        file,
		fmtr:        cfg.Formatter,
		maxSize:     rot.MaxSize,
		backupCount: rot.BackupCount,
		currentSize: info.Size(),
		stats:       handler.NewStats(),
	}
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	return h, nil
}

// Filename returns the path of the live log file
func (h *FileHandler) Filename() string {
	return h.filename
}

// Handle formats and writes an entry, rotating first when the write
// would push the live file past its size bound.
func (h *FileHandler) Handle(entry *core.Entry) error {
	data, err := h.fmtr.Format(entry)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.rotateIfNeeded(int64(len(data))); err != nil {
		h.stats.IncrementError()
		return err
	}

	n, err := h.file.Write(data)
	h.currentSize += int64(n)
	if err != nil {
		h.stats.IncrementError()
		return err
	}
	h.stats.IncrementProcessed()
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close releases the file handle. Release is best-effort: the handle
// is detached during failover precisely when its target may already
// be gone, and a dying disk must read as file unavailability, not as
// a failed removal.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.file != nil {
		h.file.Sync()
		h.file.Close()
		h.file = nil
	}
	return nil
}
