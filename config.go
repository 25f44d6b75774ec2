package serial

import (
	"io"
	"time"
)

// Config holds the configuration for opening a serial device
type Config struct {
	Exclusive bool // Claim exclusive ownership via TIOCEXCL
}

// Option is a functional option for configuring a serial device
type Option func(*Config) error

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		Exclusive: true,
	}
}

// WithExclusive controls whether the device is claimed for exclusive use.
// Exclusive ownership prevents another process from opening the port while
// a reset sequence is driving its control lines.
func WithExclusive(exclusive bool) Option {
	return func(c *Config) error {
		c.Exclusive = exclusive
		return nil
	}
}

// SequencerConfig holds the timing and output configuration for a Sequencer
type SequencerConfig struct {
	ArmDelay       time.Duration
	ResetHoldDelay time.Duration
	BootDelay      time.Duration
	Progress       io.Writer
}

// SequencerOption is a functional option for configuring a Sequencer
type SequencerOption func(*SequencerConfig) error

// DefaultSequencerConfig returns the timing the ESP32S3 boot-select
// hardware requires
func DefaultSequencerConfig() SequencerConfig {
	return SequencerConfig{
		ArmDelay:       ArmDelay,
		ResetHoldDelay: ResetHoldDelay,
		BootDelay:      BootDelay,
		Progress:       io.Discard,
	}
}

// WithArmDelay sets the settle time after the boot-select line is armed
func WithArmDelay(d time.Duration) SequencerOption {
	return func(c *SequencerConfig) error {
		if d < 0 {
			return ErrInvalidConfig
		}
		c.ArmDelay = d
		return nil
	}
}

// WithResetHoldDelay sets how long EN is held low
func WithResetHoldDelay(d time.Duration) SequencerOption {
	return func(c *SequencerConfig) error {
		if d < 0 {
			return ErrInvalidConfig
		}
		c.ResetHoldDelay = d
		return nil
	}
}

// WithBootDelay sets the wait after EN is released
func WithBootDelay(d time.Duration) SequencerOption {
	return func(c *SequencerConfig) error {
		if d < 0 {
			return ErrInvalidConfig
		}
		c.BootDelay = d
		return nil
	}
}

// WithProgress sets the writer that receives human-readable step progress
func WithProgress(w io.Writer) SequencerOption {
	return func(c *SequencerConfig) error {
		if w == nil {
			return ErrInvalidConfig
		}
		c.Progress = w
		return nil
	}
}
