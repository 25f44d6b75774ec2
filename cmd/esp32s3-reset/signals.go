/*
Copyright © 2025 thomas-hiddenpeak
*/
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	serial "github.com/thomas-hiddenpeak/rm01ShellFlasher"
)

// signalsCmd represents the signals command
var signalsCmd = &cobra.Command{
	Use:   "signals <port>",
	Short: "Display current modem signal states",
	Long: `Display the current state of all modem control signals.

Useful for verifying the adapter wiring before running a reset: DTR should
drive the EN pin and RTS the boot-select pin.

Examples:
  esp32s3-reset signals /dev/ttyCH343USB0

Signal meanings:
  CTS - Clear To Send (input)
  DSR - Data Set Ready (input)
  RI  - Ring Indicator (input)
  DCD - Data Carrier Detect (input)
  RTS - Request To Send (output, boot select)
  DTR - Data Terminal Ready (output, EN)`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		portPath := args[0]

		// Read-only inspection; do not lock out a concurrent reset
		port, err := serial.Open(portPath, serial.WithExclusive(false))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening port: %v\n", err)
			os.Exit(-1)
		}
		defer port.Close()

		signals, err := port.ModemSignals()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading modem signals: %v\n", err)
			os.Exit(-1)
		}

		renderSignals(portPath, signals)
	},
}

var (
	signalHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("99"))

	signalHighStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	signalLowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// renderSignals prints all six signal states with styled output
func renderSignals(portPath string, signals serial.ModemSignals) {
	fmt.Println(signalHeaderStyle.Render(fmt.Sprintf("Modem Signals for %s", portPath)))
	fmt.Println()

	rows := []struct {
		label string
		state bool
	}{
		{"CTS (Clear To Send)", signals.CTS},
		{"DSR (Data Set Ready)", signals.DSR},
		{"RI  (Ring Indicator)", signals.RI},
		{"DCD (Data Carrier Detect)", signals.DCD},
		{"RTS (Request To Send)", signals.RTS},
		{"DTR (Data Terminal Ready)", signals.DTR},
	}

	for _, row := range rows {
		fmt.Printf("  %-27s %s\n", row.label+":", formatSignalState(row.state))
	}
}

func formatSignalState(state bool) string {
	if state {
		return signalHighStyle.Render("HIGH")
	}
	return signalLowStyle.Render("LOW")
}

func init() {
	rootCmd.AddCommand(signalsCmd)
}
