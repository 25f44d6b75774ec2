/*
Copyright © 2025 thomas-hiddenpeak
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	serial "github.com/thomas-hiddenpeak/rm01ShellFlasher"
)

var cfgFile string

// rootCmd performs the reset itself; the device path and optional
// bootloader literal are positional, matching the original tool surface
var rootCmd = &cobra.Command{
	Use:   "esp32s3-reset <serial_device> [bootloader]",
	Short: "Hardware-reset an ESP32S3 via RTS/DTR control lines",
	Long: `Hardware-reset an ESP32S3 by toggling the RTS and DTR control lines
of its USB serial adapter.

On the RM-01 carrier board the CH343 adapter wires DTR to the chip's EN
(reset) pin and RTS to the boot-select pin. The reset sequence pulses EN
low while holding boot-select at the level for the requested mode:

  esp32s3-reset /dev/ttyCH343USB0             # Normal boot
  esp32s3-reset /dev/ttyCH343USB0 bootloader  # Bootloader mode for flashing

Reset timing defaults (arm 50ms, reset hold 100ms, boot 200ms) can be
overridden from the config file under the "delays" section.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runReset(cmd, args))
	},
}

// parseBootMode validates the positional arguments. A second argument
// selects bootloader mode only when it is exactly the literal
// "bootloader"; any other value falls back to a normal-mode reset.
func parseBootMode(args []string) (serial.BootMode, bool) {
	switch {
	case len(args) == 1:
		return serial.BootNormal, true
	case len(args) == 2:
		if args[1] == "bootloader" {
			return serial.BootBootloader, true
		}
		return serial.BootNormal, true
	default:
		return serial.BootNormal, false
	}
}

func runReset(cmd *cobra.Command, args []string) int {
	mode, ok := parseBootMode(args)
	if !ok {
		// Usage errors go to stdout, before any device is touched
		fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
		return -1
	}
	devicePath := args[0]

	port, err := serial.Open(devicePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open serial device: %v\n", err)
		return -1
	}
	defer port.Close()

	seq, err := serial.NewSequencer(port,
		serial.WithProgress(os.Stdout),
		serial.WithArmDelay(viper.GetDuration("delays.arm")),
		serial.WithResetHoldDelay(viper.GetDuration("delays.reset_hold")),
		serial.WithBootDelay(viper.GetDuration("delays.boot")),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid reset configuration: %v\n", err)
		return -1
	}

	fmt.Printf("Resetting ESP32S3 into %s mode via RTS/DTR control...\n", mode)

	if err := seq.Reset(mode); err != nil {
		fmt.Fprintf(os.Stderr, "Reset sequence failed: %v\n", err)
		return -1
	}

	fmt.Println("Reset sequence completed!")
	if mode == serial.BootBootloader {
		fmt.Println("ESP32S3 should now be in bootloader mode for flashing.")
	} else {
		fmt.Println("ESP32S3 should now be running in normal mode.")
	}
	return 0
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	viper.SetDefault("delays.arm", serial.ArmDelay)
	viper.SetDefault("delays.reset_hold", serial.ResetHoldDelay)
	viper.SetDefault("delays.boot", serial.BootDelay)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigType("yaml")
			viper.SetConfigName(".esp32s3-reset")
		}
	}

	viper.SetEnvPrefix("esp32s3_reset")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.esp32s3-reset.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(-1)
	}
}
