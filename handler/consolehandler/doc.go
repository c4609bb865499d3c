// Package consolehandler writes formatted entries to a stream,
// normally stderr.
//
// The session uses it as the optional console mirror: attached once
// at construction with DEBUG severity, independent of the failover
// pair, so an operator watching the terminal sees every record no
// matter which sink currently holds the log.
package consolehandler
