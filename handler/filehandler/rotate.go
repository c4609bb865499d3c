package filehandler

import (
	"fmt"
	"os"
)

// rotateIfNeeded rotates when writing incoming bytes would push the
// live file past the size bound. Callers must hold h.mu.
func (h *FileHandler) rotateIfNeeded(incoming int64) error {
	if h.maxSize <= 0 {
		return nil
	}
	if h.currentSize == 0 || h.currentSize+incoming <= h.maxSize {
		return nil
	}
	return h.rotate()
}

// rotate retires the live file and reopens a fresh one. Backups keep
// numeric suffixes: the newest backup is {filename}.1, shifted up on
// each rotation, and {filename}.{backupCount} is discarded.
func (h *FileHandler) rotate() error {
	if err := h.file.Sync(); err != nil {
		return err
	}
	if err := h.file.Close(); err != nil {
		return err
	}

	if h.backupCount > 0 {
		// Drop the oldest backup, shift the rest up by one suffix.
		oldest := fmt.Sprintf("%s.%d", h.filename, h.backupCount)
		if err := os.Remove(oldest); err != nil && !os.IsNotExist(err) {
			return err
		}
		for i := h.backupCount - 1; i >= 1; i-- {
			src := fmt.Sprintf("%s.%d", h.filename, i)
			if _, err := os.Stat(src); err != nil {
				continue
			}
			dst := fmt.Sprintf("%s.%d", h.filename, i+1)
			if err := os.Rename(src, dst); err != nil {
				return err
			}
		}
		if err := os.Rename(h.filename, h.filename+".1"); err != nil {
			// Try to reopen the original so the handler remains usable.
			file, openErr := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if openErr != nil {
				return fmt.Errorf("rotation failed: %v, reopen failed: %v", err, openErr)
			}
			h.file = file
			return err
		}
	} else if err := os.Remove(h.filename); err != nil && !os.IsNotExist(err) {
		return err
	}

	file, err := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	h.file = file
	h.currentSize = 0
	return nil
}
