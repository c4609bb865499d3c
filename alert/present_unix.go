//go:build !windows

package alert

import (
	"bufio"
	"fmt"
	"os"
)

// ttyPresenter writes the notification to stderr and, when a
// controlling terminal exists, blocks until the operator presses
// Enter. Without a terminal there is nobody to wait for and the
// notification is fire-and-forget.
type ttyPresenter struct{}

// NewPresenter returns the platform presenter
func NewPresenter() Presenter {
	return ttyPresenter{}
}

func (ttyPresenter) Present(title, message string) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", title, message)

	tty, err := os.Open("/dev/tty")
	if err != nil {
		return
	}
	defer tty.Close()

	fmt.Fprint(os.Stderr, "press Enter to acknowledge: ")
	bufio.NewReader(tty).ReadString('\n')
}
