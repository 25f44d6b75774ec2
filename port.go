package serial

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

// Port represents an open serial device, reduced to the surface a hardware
// reset needs: modem line control and inspection. No data transfer.
type Port interface {
	Close() error

	// Modem signal control and monitoring
	Lines() (LineState, error)
	SetLines(LineState) error
	ModemSignals() (ModemSignals, error)
}

// port is the concrete implementation of the Port interface
type port struct {
	mu     sync.RWMutex
	fd     int
	closed bool
}

// Ensure port implements Port interface at compile time
var _ Port = (*port)(nil)

// Open opens a serial device for modem line control.
//
// The device is opened read/write without becoming the controlling terminal.
// Termios settings are left untouched: reconfiguring the port could glitch
// the very control lines the caller is about to sequence.
func Open(device string, opts ...Option) (Port, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	fd, err := unix.Open(device, unix.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", device, mapOpenError(err))
	}

	if config.Exclusive {
		if err := unix.IoctlSetInt(fd, unix.TIOCEXCL, 0); err != nil {
			unix.Close(fd)
			return nil, fmt.Errorf("failed to claim %s exclusively: %w", device, err)
		}
	}

	return &port{fd: fd}, nil
}

// mapOpenError converts open(2) errnos to the package sentinel errors
func mapOpenError(err error) error {
	switch {
	case errors.Is(err, unix.ENOENT), errors.Is(err, unix.ENODEV), errors.Is(err, unix.ENXIO):
		return ErrDeviceNotFound
	case errors.Is(err, unix.EACCES), errors.Is(err, unix.EPERM):
		return ErrPermissionDenied
	case errors.Is(err, unix.EBUSY):
		return ErrDeviceInUse
	default:
		return err
	}
}

// getModemStatus retrieves the full modem status word
func getModemStatus(fd int) (int, error) {
	return unix.IoctlGetInt(fd, unix.TIOCMGET)
}

// setModemStatus writes the full modem status word back
func setModemStatus(fd int, status int) error {
	return unix.IoctlSetPointerInt(fd, unix.TIOCMSET, status)
}

// Close closes the serial device
func (p *port) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPortClosed
	}

	err := unix.Close(p.fd)
	p.closed = true
	return err
}

// Lines returns the current state of the DTR and RTS output lines
func (p *port) Lines() (LineState, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return LineState{}, ErrPortClosed
	}

	status, err := getModemStatus(p.fd)
	if err != nil {
		return LineState{}, fmt.Errorf("%w: %v", ErrLineControl, err)
	}

	return linesFromStatus(status), nil
}

// SetLines sets both output lines in a single combined write.
//
// The status word is read fresh immediately before the write so that the
// non-line bits, and any line left at its current level by the caller, are
// carried over unchanged.
func (p *port) SetLines(lines LineState) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPortClosed
	}

	status, err := getModemStatus(p.fd)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLineControl, err)
	}

	if err := setModemStatus(p.fd, applyLines(status, lines)); err != nil {
		return fmt.Errorf("%w: %v", ErrLineControl, err)
	}

	return nil
}

// ModemSignals returns current state of all modem control signals
func (p *port) ModemSignals() (ModemSignals, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ModemSignals{}, ErrPortClosed
	}

	status, err := getModemStatus(p.fd)
	if err != nil {
		return ModemSignals{}, fmt.Errorf("%w: %v", ErrLineControl, err)
	}

	return signalsFromStatus(status), nil
}
