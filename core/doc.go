// Package core defines the shared types used across the resilog
// session and its handlers.
//
// It provides the Level type with the five severities the session
// understands (DEBUG through CRITICAL, matching the names printed in
// the record format), the Entry type that represents a single log
// event, and the Field type for key-value pairs.
//
// Levels are selected in session configuration through single-letter
// selectors (d, i, w, e, c); ParseSelector rejects anything else so a
// misconfigured session fails at construction instead of at the first
// log call.
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and must return it with PutEntry once the handler has
// consumed it.
package core
