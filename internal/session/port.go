package session

import (
	"time"

	"go.bug.st/serial"
)

// Port is the minimal surface the session needs from a serial endpoint.
// go.bug.st/serial's Port satisfies it; tests substitute an in-memory
// implementation.
type Port interface {
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
	SetReadTimeout(t time.Duration) error
	Close() error
}

// Opener acquires exclusive access to a serial endpoint. It exists so
// tests can run a Session against a fake device.
type Opener func(name string, baud int) (Port, error)

// openSerial is the default Opener, backed by go.bug.st/serial.
func openSerial(name string, baud int) (Port, error) {
	return serial.Open(name, &serial.Mode{BaudRate: baud})
}
