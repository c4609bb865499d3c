// Package filehandler implements the rotating file sink.
//
// A FileHandler appends formatted records to a single live file.
// When a write would push the file past RotationPolicy.MaxSize
// (default 20 MiB) the file is rotated: existing backups shift up by
// one numeric suffix, the live file becomes {filename}.1, and the
// backup beyond BackupCount (default 7) is discarded. At most
// BackupCount+1 files ever exist for a given base name.
//
// Construction fails with an error wrapping ErrFileUnavailable when
// the containing directory cannot be created or the file cannot be
// opened for append; the logging session reacts to that error by
// failing over to the OS event log.
package filehandler
