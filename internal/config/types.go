package config

import "time"

// Serial holds the transport settings for the board's console.
type Serial struct {
	Port string `yaml:"port"`
	Baud int    `yaml:"baud"`
}

// Chunking bounds single reads and writes on the serial line. The write
// delay gives the device time to drain its receive buffer between
// chunks.
type Chunking struct {
	WriteSize    int `yaml:"write_size"`
	ReadSize     int `yaml:"read_size"`
	WriteDelayMS int `yaml:"write_delay_ms"`
}

// WriteDelay returns the inter-chunk pacing delay.
func (c Chunking) WriteDelay() time.Duration {
	return time.Duration(c.WriteDelayMS) * time.Millisecond
}

// Timeouts holds per-command-class read timeouts. Query commands get
// short answers; transfers and recursive filesystem walks can keep the
// device busy for much longer, so they get their own bound.
type Timeouts struct {
	QuerySeconds    float64 `yaml:"query_seconds"`
	TransferSeconds float64 `yaml:"transfer_seconds"`
}

// Query returns the read timeout for short query exchanges.
func (t Timeouts) Query() time.Duration {
	return time.Duration(t.QuerySeconds * float64(time.Second))
}

// Transfer returns the read timeout for file transfers and other slow
// device-side operations.
func (t Timeouts) Transfer() time.Duration {
	return time.Duration(t.TransferSeconds * float64(time.Second))
}

// Config represents the .upyfs.yaml file.
type Config struct {
	Serial   Serial   `yaml:"serial"`
	Chunking Chunking `yaml:"chunking"`
	Timeouts Timeouts `yaml:"timeouts"`
}
