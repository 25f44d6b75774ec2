package serial

import (
	"errors"
	"testing"

	"golang.org/x/sys/unix"
)

func TestOpenNonExistentDevice(t *testing.T) {
	_, err := Open("/dev/nonexistent")
	if err == nil {
		t.Fatal("Expected error when opening non-existent device")
	}
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("Expected ErrDeviceNotFound, got %v", err)
	}
}

// TestClosedPort tests that methods return appropriate errors on closed ports
func TestClosedPort(t *testing.T) {
	p := &port{closed: true}

	t.Run("Close", func(t *testing.T) {
		if err := p.Close(); err != ErrPortClosed {
			t.Errorf("Close() on closed port error = %v, want %v", err, ErrPortClosed)
		}
	})

	t.Run("Lines", func(t *testing.T) {
		_, err := p.Lines()
		if err != ErrPortClosed {
			t.Errorf("Lines() on closed port error = %v, want %v", err, ErrPortClosed)
		}
	})

	t.Run("SetLines", func(t *testing.T) {
		err := p.SetLines(LineState{DTR: true})
		if err != ErrPortClosed {
			t.Errorf("SetLines() on closed port error = %v, want %v", err, ErrPortClosed)
		}
	})

	t.Run("ModemSignals", func(t *testing.T) {
		_, err := p.ModemSignals()
		if err != ErrPortClosed {
			t.Errorf("ModemSignals() on closed port error = %v, want %v", err, ErrPortClosed)
		}
	})
}

// TestMapOpenError tests errno to sentinel error mapping
func TestMapOpenError(t *testing.T) {
	tests := []struct {
		name     string
		errno    error
		expected error
	}{
		{"ENOENT", unix.ENOENT, ErrDeviceNotFound},
		{"ENODEV", unix.ENODEV, ErrDeviceNotFound},
		{"ENXIO", unix.ENXIO, ErrDeviceNotFound},
		{"EACCES", unix.EACCES, ErrPermissionDenied},
		{"EPERM", unix.EPERM, ErrPermissionDenied},
		{"EBUSY", unix.EBUSY, ErrDeviceInUse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapOpenError(tt.errno); got != tt.expected {
				t.Errorf("mapOpenError(%v) = %v, want %v", tt.errno, got, tt.expected)
			}
		})
	}

	// Unrecognized errnos pass through unchanged
	if got := mapOpenError(unix.EINTR); got != unix.EINTR {
		t.Errorf("mapOpenError(EINTR) = %v, want EINTR", got)
	}
}
