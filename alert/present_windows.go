//go:build windows

package alert

import (
	"golang.org/x/sys/windows"
)

// messageBoxPresenter shows a modal MessageBox with a single OK
// button. MessageBoxW blocks until the button is clicked, which is
// exactly the acknowledgment the escalation path wants.
type messageBoxPresenter struct{}

// NewPresenter returns the platform presenter
func NewPresenter() Presenter {
	return messageBoxPresenter{}
}

func (messageBoxPresenter) Present(title, message string) {
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return
	}
	textPtr, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return
	}
	windows.MessageBox(0, textPtr, titlePtr,
		windows.MB_OK|windows.MB_ICONERROR|windows.MB_SETFOREGROUND)
}
