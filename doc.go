// Package resilog is a resilient logging facade for long-running,
// unattended processes that must never lose the ability to log.
//
// A Session routes records to a size-bounded rotating file. Around
// every log call the file path is probed (opened for append and
// released); when the probe fails the session detaches the file
// handler and attaches an OS event log handler instead, and when the
// path becomes writable again it switches back. Each transition is
// documented once: a meta record through the attached handlers and a
// record in the OS event log itself.
//
//	sess, err := resilog.New(resilog.Config{
//	    Dir:      "logs",
//	    BaseName: "app",
//	    Name:     "myapp",
//	    Level:    "d",
//	    Console:  true,
//	})
//	if err != nil {
//	    // configuration problem; an unreachable file is NOT an
//	    // error; the session comes up on the event log instead
//	}
//	defer sess.Close()
//	sess.Info("service started")
//
// When the session cannot reconcile its handlers, because a removal fails
// or both sinks are unreachable, it escalates through the alert
// package: one blocking operator notification, then process exit.
// That is the only condition under which the facade terminates the
// process.
//
// Sessions are single-threaded by design. Probing, emitting and
// switching are not synchronized; concurrent callers must serialize
// externally or use one session each.
package resilog
