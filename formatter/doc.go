// Package formatter renders log entries into bytes.
//
// TextFormatter produces the session's line format:
//
//	2024-03-01 10:15:02,114 - [WARNING] - myapp - 87 - disk filling up
//
// i.e. timestamp (comma milliseconds), bracketed severity, session
// name, call-site line, message, followed by any key=value fields.
//
// Formatters that also implement WriterFormatter are written to
// directly by the handlers, skipping the intermediate byte slice.
// Internal buffers come from a shared sync.Pool; very large buffers
// are not returned to the pool.
package formatter
