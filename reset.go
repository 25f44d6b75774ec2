package serial

import (
	"fmt"
	"time"
)

// Reset sequence timing. The ESP32S3 strobe is EN low for 100ms with the
// boot-select level established 50ms beforehand and held until the chip
// has sampled it after release.
const (
	ArmDelay       = 50 * time.Millisecond
	ResetHoldDelay = 100 * time.Millisecond
	BootDelay      = 200 * time.Millisecond
)

// BootMode selects the boot-select line level during reset
type BootMode int

const (
	// BootNormal releases the chip into the user application
	BootNormal BootMode = iota
	// BootBootloader releases the chip into the ROM bootloader for flashing
	BootBootloader
)

func (m BootMode) String() string {
	if m == BootBootloader {
		return "bootloader"
	}
	return "normal"
}

// Sequencer drives the timed RTS/DTR sequence that hardware-resets an
// ESP32S3 behind a USB serial adapter.
//
// DTR drives the EN pin and RTS drives the boot-select pin, both inverted
// by the adapter (line set = pin low). Each step is a combined
// read-modify-write of both lines so the level established by an earlier
// step is never disturbed.
type Sequencer struct {
	lines  LineController
	config SequencerConfig

	// Replaceable so tests run with real assertions on the requested
	// delays instead of wall-clock sleeps.
	sleep func(time.Duration)
}

// NewSequencer returns a Sequencer driving the given line controller
func NewSequencer(lines LineController, opts ...SequencerOption) (*Sequencer, error) {
	config := DefaultSequencerConfig()
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	return &Sequencer{
		lines:  lines,
		config: config,
		sleep:  time.Sleep,
	}, nil
}

// Reset performs the three-step reset sequence.
//
// Step 1 arms the sequence: EN inactive, boot-select at the level for the
// requested mode. Step 2 pulls EN low. Step 3 releases EN, letting the chip
// boot with the level armed in step 1. Any line-control failure aborts the
// sequence immediately.
func (s *Sequencer) Reset(mode BootMode) error {
	fmt.Fprintln(s.config.Progress, "Step 1: Setting up reset sequence...")
	lines, err := s.lines.Lines()
	if err != nil {
		return fmt.Errorf("arm: %w", err)
	}
	lines.DTR = false // EN high
	lines.RTS = mode == BootBootloader
	if err := s.lines.SetLines(lines); err != nil {
		return fmt.Errorf("arm: %w", err)
	}
	s.sleep(s.config.ArmDelay)

	fmt.Fprintln(s.config.Progress, "Step 2: Pulling EN low to reset...")
	lines, err = s.lines.Lines()
	if err != nil {
		return fmt.Errorf("assert reset: %w", err)
	}
	lines.DTR = true // EN low, boot-select untouched
	if err := s.lines.SetLines(lines); err != nil {
		return fmt.Errorf("assert reset: %w", err)
	}
	s.sleep(s.config.ResetHoldDelay)

	fmt.Fprintln(s.config.Progress, "Step 3: Releasing EN to start...")
	lines, err = s.lines.Lines()
	if err != nil {
		return fmt.Errorf("release reset: %w", err)
	}
	lines.DTR = false // EN high, chip boots
	if err := s.lines.SetLines(lines); err != nil {
		return fmt.Errorf("release reset: %w", err)
	}
	s.sleep(s.config.BootDelay)

	return nil
}
