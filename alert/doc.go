// Package alert is the terminal failure path of a logging session.
//
// When the session cannot reconcile its sink state, for instance a handler
// removal failed or both the file and the OS event log are gone,
// further logging would be a lie. The Escalator surfaces that to an
// operator with one blocking notification (a modal MessageBox on
// Windows, stderr plus a terminal acknowledgment elsewhere) and then
// terminates the process with a failure status. No retries, no
// further log activity.
package alert
