package serial

import "errors"

// Predefined error types for robust error handling
var (
	ErrDeviceNotFound   = errors.New("serial device not found")
	ErrPermissionDenied = errors.New("permission denied accessing serial device")
	ErrDeviceInUse      = errors.New("serial device already in use")
	ErrPortClosed       = errors.New("serial port is closed")
	ErrInvalidConfig    = errors.New("invalid serial configuration")

	// ErrLineControl wraps failures of the modem line get/set ioctls.
	// A failed line-control call aborts a reset sequence.
	ErrLineControl = errors.New("modem line control failed")
)
