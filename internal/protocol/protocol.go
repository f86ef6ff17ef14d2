// Package protocol implements the host side of the wire contract with the
// MicroPython command module: rendering commands as interpreter statements
// and extracting result envelopes from the raw console stream.
//
// The device wraps every command's output between literal marker lines.
// Everything outside the markers (REPL prompts, statement echoes, partial
// lines) is noise and gets discarded by Extract. Device-side errors are
// reported as text inside the envelope; there is no out-of-band error
// channel.
package protocol

const (
	// BeginMarker and EndMarker delimit one command's result in the
	// device output. They must match cli_module's header and footer
	// byte for byte.
	BeginMarker = "##### BEGIN RESULTS #####"
	EndMarker   = "##### END RESULTS #####"

	// Terminator ends each line sent to the REPL. Every statement is
	// followed by an extra blank line to force execution.
	Terminator = "\r\n"
)

// ProtocolError reports a violation of the device's wire contract, such
// as a missing result marker or undecodable output. Protocol errors are
// fatal for the current command and never retried.
type ProtocolError string

func (e ProtocolError) Error() string { return string(e) }

const (
	// ErrNoResults means the device output contained no BEGIN marker.
	// An empty envelope is a success; a missing one never is.
	ErrNoResults = ProtocolError("no results found")

	// ErrIncomplete means a BEGIN marker was seen but no END marker
	// followed, usually because the read timeout fired before the
	// device finished.
	ErrIncomplete = ProtocolError("result incomplete")

	// ErrBadEncoding means the accumulated device output is not valid
	// UTF-8.
	ErrBadEncoding = ProtocolError("invalid utf-8 in device output")
)
