package serial

import "golang.org/x/sys/unix"

// LineState represents the state of the two output control lines.
// On the RM-01 carrier the CH343 adapter wires DTR to the ESP32S3 EN pin
// and RTS to the boot-select pin (GPIO0). Both lines are inverted by the
// adapter: a set line drives the pin low.
type LineState struct {
	DTR bool // Data Terminal Ready (drives EN)
	RTS bool // Request To Send (drives boot select)
}

// ModemSignals represents modem control signal states
type ModemSignals struct {
	CTS bool // Clear To Send
	DSR bool // Data Set Ready
	RI  bool // Ring Indicator
	DCD bool // Data Carrier Detect
	RTS bool // Request To Send
	DTR bool // Data Terminal Ready
}

// LineController is the capability needed to drive a reset sequence:
// a combined read and a combined write of the DTR/RTS output lines.
// Port implements it against a real device; tests substitute a fake.
type LineController interface {
	Lines() (LineState, error)
	SetLines(LineState) error
}

// linesFromStatus extracts the output line states from a TIOCM status word
func linesFromStatus(status int) LineState {
	return LineState{
		DTR: status&unix.TIOCM_DTR != 0,
		RTS: status&unix.TIOCM_RTS != 0,
	}
}

// applyLines merges the desired output line states into a TIOCM status
// word, leaving every other bit untouched. The kernel call sets all lines
// from one bitmask, so the word must be carried over whole.
func applyLines(status int, lines LineState) int {
	status &^= unix.TIOCM_DTR | unix.TIOCM_RTS
	if lines.DTR {
		status |= unix.TIOCM_DTR
	}
	if lines.RTS {
		status |= unix.TIOCM_RTS
	}
	return status
}

// signalsFromStatus decodes all modem signals from a TIOCM status word
func signalsFromStatus(status int) ModemSignals {
	return ModemSignals{
		CTS: status&unix.TIOCM_CTS != 0,
		DSR: status&unix.TIOCM_DSR != 0,
		RI:  status&unix.TIOCM_RI != 0,
		DCD: status&unix.TIOCM_CAR != 0,
		RTS: status&unix.TIOCM_RTS != 0,
		DTR: status&unix.TIOCM_DTR != 0,
	}
}
