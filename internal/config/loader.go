// Package config loads and validates the optional .upyfs.yaml file and
// supplies the transport defaults the reference device tooling uses.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default values for Config. Baud, chunk sizes and the write delay match
// the existing device tooling; changing them risks overrunning the
// board's receive buffer.
const (
	DefaultBaud            = 9600
	DefaultWriteChunk      = 256
	DefaultReadChunk       = 1000
	DefaultWriteDelayMS    = 100
	DefaultQuerySeconds    = 1.0
	DefaultTransferSeconds = 5.0
)

// FileName is the config file looked up in the working directory and
// then in the user's home directory.
const FileName = ".upyfs.yaml"

// ValidationError reports an invalid configuration value. It surfaces
// before any transport opens.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Message)
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// Default returns a Config with the reference defaults applied.
func Default() Config {
	return Config{
		Serial: Serial{Baud: DefaultBaud},
		Chunking: Chunking{
			WriteSize:    DefaultWriteChunk,
			ReadSize:     DefaultReadChunk,
			WriteDelayMS: DefaultWriteDelayMS,
		},
		Timeouts: Timeouts{
			QuerySeconds:    DefaultQuerySeconds,
			TransferSeconds: DefaultTransferSeconds,
		},
	}
}

// Load reads the config file at path. An empty path searches the working
// directory and then $HOME; a missing file yields the defaults, while an
// explicitly named file must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = findConfig()
		if path == "" {
			cfg := Default()
			return &cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			cfg := Default()
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// findConfig returns the first config file found in the search path, or
// an empty string.
func findConfig() string {
	candidates := []string{FileName}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, FileName))
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

// Validate checks that all config values are usable. The serial port may
// stay empty here; commands require it at dial time.
func Validate(cfg *Config) error {
	if cfg.Serial.Baud <= 0 {
		return ValidationError{Field: "serial.baud", Message: "must be positive"}
	}
	if cfg.Chunking.WriteSize <= 0 {
		return ValidationError{Field: "chunking.write_size", Message: "must be positive"}
	}
	if cfg.Chunking.ReadSize <= 0 {
		return ValidationError{Field: "chunking.read_size", Message: "must be positive"}
	}
	if cfg.Chunking.WriteDelayMS < 0 {
		return ValidationError{Field: "chunking.write_delay_ms", Message: "must not be negative"}
	}
	if cfg.Timeouts.QuerySeconds <= 0 {
		return ValidationError{Field: "timeouts.query_seconds", Message: "must be positive"}
	}
	if cfg.Timeouts.TransferSeconds <= 0 {
		return ValidationError{Field: "timeouts.transfer_seconds", Message: "must be positive"}
	}
	return nil
}
