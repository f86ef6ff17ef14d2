package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/upyfs/upyfs/internal/config"
	"github.com/upyfs/upyfs/internal/protocol"
	"github.com/upyfs/upyfs/internal/session"
)

// Device is the session surface commands exchange statements through.
type Device interface {
	Exchange(stmt string) (string, error)
	Send(stmt string) error
	Transfer(stmts []string) error
}

// timeoutClass selects the per-class read timeout for an exchange. Short
// queries answer within a second; file transfers and whole-file dumps
// keep the device busy longer.
type timeoutClass int

const (
	classQuery timeoutClass = iota
	classTransfer
)

// openDevice dials a session for the given command class. It can be
// overridden in tests. Wired in init: dialSession reads the root
// command's flag set, and a declaration-time assignment would cycle
// through rootCmd back to this variable.
var openDevice func(timeoutClass) (Device, error)

func init() {
	openDevice = dialSession
}

func dialSession(class timeoutClass) (Device, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	if flagPort != "" {
		cfg.Serial.Port = flagPort
	}
	if rootCmd.PersistentFlags().Changed("baud") {
		cfg.Serial.Baud = flagBaud
	}
	if cfg.Serial.Port == "" {
		return nil, config.ValidationError{
			Field:   "serial.port",
			Message: "serial port is required (set --port or the config file)",
		}
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	timeout := timeoutFor(cfg, class)

	return session.New(session.Settings{
		Port:        cfg.Serial.Port,
		Baud:        cfg.Serial.Baud,
		ReadTimeout: timeout,
		WriteChunk:  cfg.Chunking.WriteSize,
		ReadChunk:   cfg.Chunking.ReadSize,
		WriteDelay:  cfg.Chunking.WriteDelay(),
	}), nil
}

func timeoutFor(cfg *config.Config, class timeoutClass) time.Duration {
	if flagTimeout > 0 {
		return flagTimeout
	}
	if class == classTransfer {
		return cfg.Timeouts.Transfer()
	}
	return cfg.Timeouts.Query()
}

// runQuery performs one encode-transmit-extract cycle and returns the
// envelope payload.
func runQuery(class timeoutClass, stmt string) (string, error) {
	dev, err := openDevice(class)
	if err != nil {
		return "", err
	}
	raw, err := dev.Exchange(stmt)
	if err != nil {
		return "", err
	}
	return protocol.Extract(raw)
}

// printPayload writes an envelope payload to stdout, trimming the blank
// lines the device wraps around it.
func printPayload(payload string) {
	fmt.Println(strings.TrimSpace(payload))
}
