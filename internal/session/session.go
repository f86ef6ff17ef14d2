// Package session owns the serial connection to the board. A Session is
// opened and closed around every single protocol exchange rather than
// held for the process lifetime: the board may reset between commands,
// and a stale handle would poison every later exchange.
//
// The link is a single exclusive half-duplex line. Writes go out in
// fixed-size chunks with a pacing delay so the board's receive buffer is
// never overrun; reads accumulate fixed-size chunks until a short read
// signals that the configured timeout fired with no more data pending.
package session

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/upyfs/upyfs/internal/logging"
	"github.com/upyfs/upyfs/internal/protocol"
)

// TransportError reports a failed open, read, write or close on the
// serial endpoint. It is fatal for the current exchange; there are no
// retries. Unwrap exposes the underlying error so callers can recover
// the OS error number.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("serial %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Settings configures a Session. Zero chunk sizes and delays fall back
// to the reference defaults supplied by the caller's config.
type Settings struct {
	Port        string
	Baud        int
	ReadTimeout time.Duration
	WriteChunk  int
	ReadChunk   int
	WriteDelay  time.Duration
}

// Session brackets one serial exchange with the device. It is owned by a
// single caller; there is no locking and no overlapping I/O.
type Session struct {
	settings Settings
	open     Opener
	port     Port
	log      *logging.Logger
}

// New creates a Session for the given settings. Nothing is opened until
// an exchange runs.
func New(settings Settings) *Session {
	return &Session{
		settings: settings,
		open:     openSerial,
		log:      logging.With("port", settings.Port),
	}
}

// Open acquires the serial endpoint at the configured baud rate and arms
// the read timeout.
func (s *Session) Open() error {
	port, err := s.open(s.settings.Port, s.settings.Baud)
	if err != nil {
		return &TransportError{Op: "open", Err: err}
	}
	if err := port.SetReadTimeout(s.settings.ReadTimeout); err != nil {
		port.Close()
		return &TransportError{Op: "open", Err: err}
	}
	s.port = port
	s.log.Debug("session opened", "baud", s.settings.Baud)
	return nil
}

// Close releases the serial endpoint.
func (s *Session) Close() error {
	if s.port == nil {
		return nil
	}
	err := s.port.Close()
	s.port = nil
	if err != nil {
		return &TransportError{Op: "close", Err: err}
	}
	s.log.Debug("session closed")
	return nil
}

// Write sends data in chunks of the configured write size, pausing after
// each chunk so the device can drain its receive buffer. The loop stops
// when a chunk transmits fewer bytes than the chunk size. When the data
// length is an exact multiple of the chunk size the final full chunk
// does not stop the loop; the following empty write reports zero bytes
// and ends it. That trailing empty write is the same boundary behavior
// the existing device tooling has.
func (s *Session) Write(data []byte) error {
	chunk := s.settings.WriteChunk
	written := chunk
	offset := 0
	for written == chunk {
		end := offset + chunk
		if end > len(data) {
			end = len(data)
		}
		var err error
		written, err = s.port.Write(data[offset:end])
		if err != nil {
			return &TransportError{Op: "write", Err: err}
		}
		if s.settings.WriteDelay > 0 {
			time.Sleep(s.settings.WriteDelay)
		}
		offset += written
		s.log.Debug("chunk written", "bytes", written, "offset", offset)
	}
	return nil
}

// Read accumulates output from the device until a read returns fewer
// bytes than the configured read chunk size, meaning the read timeout
// fired with nothing left to deliver. The result must decode as UTF-8;
// anything else is a protocol error.
func (s *Session) Read() (string, error) {
	chunk := s.settings.ReadChunk
	buf := make([]byte, chunk)
	var out []byte

	got := chunk
	for got == chunk {
		got = 0
		for got < chunk {
			n, err := s.port.Read(buf[got:])
			if err != nil {
				return "", &TransportError{Op: "read", Err: err}
			}
			if n == 0 {
				// Timeout fired, no more data pending.
				break
			}
			got += n
		}
		out = append(out, buf[:got]...)
		s.log.Debug("chunk read", "bytes", got)
	}

	if !utf8.Valid(out) {
		return "", protocol.ErrBadEncoding
	}
	return string(out), nil
}

// Exchange runs one complete request/response cycle: open, write the
// statement, read everything the device produces, close.
func (s *Session) Exchange(stmt string) (string, error) {
	if err := s.Open(); err != nil {
		return "", err
	}
	defer s.Close()

	if err := s.Write([]byte(stmt)); err != nil {
		return "", err
	}
	return s.Read()
}

// Send writes a statement without waiting for a response. Used for
// commands like restore that reboot the device and never answer.
func (s *Session) Send(stmt string) error {
	if err := s.Open(); err != nil {
		return err
	}
	defer s.Close()

	return s.Write([]byte(stmt))
}

// Transfer writes a statement sequence under a single open/close
// bracket. All statements of one file transfer share one bracket, and no
// read happens in between; the device's echoes are discarded when the
// endpoint closes.
func (s *Session) Transfer(stmts []string) error {
	if err := s.Open(); err != nil {
		return err
	}
	defer s.Close()

	for _, stmt := range stmts {
		if err := s.Write([]byte(stmt)); err != nil {
			return err
		}
	}
	return nil
}
