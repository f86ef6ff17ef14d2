package cli

import (
	"errors"
	"syscall"
)

// Exit codes not provided by the OS error numbers.
const (
	ExitSuccess = 0
	ExitFailure = 255
)

// ExitCode maps an error to the process exit code: 0 on success, the
// underlying OS error number when one is available, 255 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return ExitFailure
}
