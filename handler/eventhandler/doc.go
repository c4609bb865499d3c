// Package eventhandler implements the OS event log sink, the fallback
// half of the session's failover pair.
//
// The platform-bound part is confined to the Reporter interface: on
// Windows records go through RegisterEventSource/ReportEvent with the
// submitting user's SID resolved from the live process token on every
// call; elsewhere they go to syslog under the source name as tag.
// Everything above the Reporter, such as severity mapping and the
// handler itself, is portable and tested against a fake reporter.
//
// A Record carries the full event shape: numeric event id, category,
// severity type (INFORMATION, WARNING, ERROR), ordered description
// lines, and an opaque binary payload.
package eventhandler
