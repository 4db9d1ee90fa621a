package main

import (
	"os"

	"github.com/daedaluz/bdiloader/internal/applog"
	"github.com/daedaluz/bdiloader/internal/config"
	"github.com/daedaluz/bdiloader/internal/linkerr"
	"github.com/spf13/cobra"
)

var (
	rootFlags   config.Root
	baudrateArg string
)

var rootCmd = &cobra.Command{
	Use:           "bdiloader",
	Short:         "Update firmware, CPLD logic and network configuration on an Abatron BDI debug probe",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootFlags.Port, "port", "p", config.DefaultPort, "communication port (serial device) or IP address")
	rootCmd.PersistentFlags().StringVarP(&baudrateArg, "baud", "b", "38", "baudrate code: 9, 19, 38, 57 or 115")
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.Start, "start", "s", false, "exit the loader and start firmware when done")
}

func resolveBaudrate() (int, error) {
	baud, err := config.Baudrate(baudrateArg)
	if err != nil {
		return 0, err
	}
	rootFlags.Baudrate = baud
	return baud, nil
}

// Execute runs the selected command and exits the process with the
// code ExitCode derives from whatever error it returned, mirroring
// main()'s exit(result) call.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		applog.Error("%v", err)
	}
	os.Exit(linkerr.ExitCode(err))
}
