// Package handler provides the Handler interface, the handler Kind
// taxonomy, and the Registry that tracks which handlers a logging
// session currently owns.
//
// A session holds at most one handler per kind: the rotating file
// handler (KindFile) and the OS event log handler (KindEvent) form
// the failover pair and are mutually exclusive by construction; the
// console mirror (KindConsole) is independent and stays attached
// across sink switches.
//
// The Registry performs attachment and removal by explicit
// (name, kind) identity rather than by inspecting handler types.
// DetachByNameAndKind returns a three-valued DetachStatus; only
// RemovalFailed is fatal to the session, since it means exclusivity
// can no longer be guaranteed. Every detach attempt writes a
// best-effort diagnostic record through the handlers that remain
// attached.
//
// Handlers track written/error counts via the Stats type.
package handler
