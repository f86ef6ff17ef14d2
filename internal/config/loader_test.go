package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 9600, cfg.Serial.Baud)
	assert.Empty(t, cfg.Serial.Port)
	assert.Equal(t, 256, cfg.Chunking.WriteSize)
	assert.Equal(t, 1000, cfg.Chunking.ReadSize)
	assert.Equal(t, 100*time.Millisecond, cfg.Chunking.WriteDelay())
	assert.Equal(t, time.Second, cfg.Timeouts.Query())
	assert.Equal(t, 5*time.Second, cfg.Timeouts.Transfer())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
serial:
  port: /dev/ttyUSB0
  baud: 115200
timeouts:
  query_seconds: 2
  transfer_seconds: 30
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/dev/ttyUSB0", cfg.Serial.Port)
	assert.Equal(t, 115200, cfg.Serial.Baud)
	assert.Equal(t, 2*time.Second, cfg.Timeouts.Query())
	assert.Equal(t, 30*time.Second, cfg.Timeouts.Transfer())

	// Untouched sections keep their defaults.
	assert.Equal(t, 256, cfg.Chunking.WriteSize)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "serial: [not a mapping")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero baud", func(c *Config) { c.Serial.Baud = 0 }, "serial.baud"},
		{"negative baud", func(c *Config) { c.Serial.Baud = -9600 }, "serial.baud"},
		{"zero write chunk", func(c *Config) { c.Chunking.WriteSize = 0 }, "chunking.write_size"},
		{"zero read chunk", func(c *Config) { c.Chunking.ReadSize = 0 }, "chunking.read_size"},
		{"negative delay", func(c *Config) { c.Chunking.WriteDelayMS = -1 }, "chunking.write_delay_ms"},
		{"zero query timeout", func(c *Config) { c.Timeouts.QuerySeconds = 0 }, "timeouts.query_seconds"},
		{"zero transfer timeout", func(c *Config) { c.Timeouts.TransferSeconds = 0 }, "timeouts.transfer_seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := Validate(&cfg)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Contains(t, err.Error(), tt.field)
		})
	}

	cfg := Default()
	assert.NoError(t, Validate(&cfg))
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	path := writeConfig(t, `
serial:
  baud: -1
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}
