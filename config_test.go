package serial

import (
	"io"
	"os"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if !config.Exclusive {
		t.Error("Expected Exclusive true by default")
	}
}

func TestWithExclusive(t *testing.T) {
	config := DefaultConfig()

	err := WithExclusive(false)(&config)
	if err != nil {
		t.Errorf("WithExclusive failed: %v", err)
	}
	if config.Exclusive {
		t.Error("Expected Exclusive false")
	}
}

func TestDefaultSequencerConfig(t *testing.T) {
	config := DefaultSequencerConfig()

	if config.ArmDelay != 50*time.Millisecond {
		t.Errorf("Expected ArmDelay 50ms, got %v", config.ArmDelay)
	}
	if config.ResetHoldDelay != 100*time.Millisecond {
		t.Errorf("Expected ResetHoldDelay 100ms, got %v", config.ResetHoldDelay)
	}
	if config.BootDelay != 200*time.Millisecond {
		t.Errorf("Expected BootDelay 200ms, got %v", config.BootDelay)
	}
	if config.Progress != io.Discard {
		t.Error("Expected Progress to default to io.Discard")
	}
}

func TestSequencerOptions(t *testing.T) {
	config := DefaultSequencerConfig()

	err := WithArmDelay(10 * time.Millisecond)(&config)
	if err != nil {
		t.Errorf("WithArmDelay failed: %v", err)
	}
	if config.ArmDelay != 10*time.Millisecond {
		t.Errorf("Expected ArmDelay 10ms, got %v", config.ArmDelay)
	}

	err = WithResetHoldDelay(20 * time.Millisecond)(&config)
	if err != nil {
		t.Errorf("WithResetHoldDelay failed: %v", err)
	}
	if config.ResetHoldDelay != 20*time.Millisecond {
		t.Errorf("Expected ResetHoldDelay 20ms, got %v", config.ResetHoldDelay)
	}

	err = WithBootDelay(30 * time.Millisecond)(&config)
	if err != nil {
		t.Errorf("WithBootDelay failed: %v", err)
	}
	if config.BootDelay != 30*time.Millisecond {
		t.Errorf("Expected BootDelay 30ms, got %v", config.BootDelay)
	}

	err = WithProgress(os.Stdout)(&config)
	if err != nil {
		t.Errorf("WithProgress failed: %v", err)
	}
	if config.Progress != os.Stdout {
		t.Error("Expected Progress os.Stdout")
	}
}

func TestInvalidSequencerOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  SequencerOption
	}{
		{"negative arm delay", WithArmDelay(-time.Millisecond)},
		{"negative reset hold delay", WithResetHoldDelay(-time.Millisecond)},
		{"negative boot delay", WithBootDelay(-time.Millisecond)},
		{"nil progress writer", WithProgress(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultSequencerConfig()
			err := tt.opt(&config)
			if err == nil {
				t.Fatal("Expected error")
			}
			if err != ErrInvalidConfig {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestNewSequencerRejectsInvalidOption(t *testing.T) {
	_, err := NewSequencer(&fakeLineController{}, WithArmDelay(-time.Second))
	if err != ErrInvalidConfig {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}
