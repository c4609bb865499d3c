package alert

import (
	"fmt"
	"os"
	"path/filepath"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// Presenter shows a blocking, modal notification and returns once the
// operator acknowledges it. The concrete implementation is
// platform-bound; NewPresenter returns the one for the build target.
type Presenter interface {
	Present(title, message string)
}

// Escalator is the terminal failure path of a logging session. It is
// invoked when the session can no longer guarantee a working sink and
// must stop the process rather than run unlogged.
type Escalator struct {
	presenter Presenter
}

// NewEscalator creates an escalator over a presenter. A nil presenter
// selects the platform default.
func NewEscalator(p Presenter) *Escalator {
	if p == nil {
		p = NewPresenter()
	}
	return &Escalator{presenter: p}
}

// Escalate presents one blocking notification naming the condition
// and the process, waits for acknowledgment, then terminates the
// process with a failure status. It does not return.
func (e *Escalator) Escalate(condition string) {
	proc := filepath.Base(os.Args[0])
	message := fmt.Sprintf(
		"%s (pid %d) suffered an unrecoverable error while logging activity: %s. Check the OS event log for details. Closing process.",
		proc, os.Getpid(), condition,
	)
	e.presenter.Present("Logging failure", message)
	osExit(1)
}
