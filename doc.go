// Package serial performs hardware resets of an ESP32S3 behind a USB
// serial adapter by sequencing the adapter's DTR and RTS modem control
// lines.
//
// On the RM-01 carrier board the CH343 adapter wires DTR to the chip's EN
// (reset) pin and RTS to the boot-select pin (GPIO0). Both lines are
// inverted: asserting a line drives the pin low. Toggling the lines in a
// fixed timed sequence resets the chip into either the user application or
// the ROM bootloader.
//
// # Basic Usage
//
// Open the device and run a reset sequence:
//
//	port, err := serial.Open("/dev/ttyCH343USB0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	seq, err := serial.NewSequencer(port, serial.WithProgress(os.Stdout))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := seq.Reset(serial.BootBootloader); err != nil {
//	    log.Fatal(err)
//	}
//
// # Line Control
//
// Ports expose the combined modem line interface directly:
//
//	lines, err := port.Lines()
//	lines.DTR = false
//	lines.RTS = true
//	err = port.SetLines(lines)
//
// SetLines re-reads the full modem status word immediately before writing,
// so the kernel's single-bitmask set call never disturbs a line the caller
// left at its current level.
//
// # Error Handling
//
// Open failures map to sentinel errors usable with errors.Is:
//
//	ErrDeviceNotFound   // path does not name a device
//	ErrPermissionDenied // insufficient permissions
//	ErrDeviceInUse      // device claimed by another process
//
// Line-control failures wrap ErrLineControl and abort a running sequence.
//
// # Timing
//
// The sequence timing defaults to what the ESP32S3 boot-select hardware
// requires (50ms arm, 100ms reset hold, 200ms boot) and can be adjusted
// with functional options. Sequences are synchronous and not cancellable:
// the reset pulse timing depends on the delays running to completion.
package serial
