package main

import (
	"fmt"

	"github.com/daedaluz/bdiloader/internal/applog"
	"github.com/daedaluz/bdiloader/internal/cpld"
	"github.com/daedaluz/bdiloader/internal/flashupdate"
	"github.com/daedaluz/bdiloader/internal/loader"
	"github.com/spf13/cobra"
)

var eraseCmd = &cobra.Command{
	Use:   "erase",
	Short: "Erase firmware and logic",
	RunE:  runErase,
}

func init() {
	rootCmd.AddCommand(eraseCmd)
}

func runErase(cmd *cobra.Command, args []string) error {
	baud, err := resolveBaudrate()
	if err != nil {
		return err
	}

	applog.Info("Connecting to BDI loader")
	cmds, version, err := connectLoader(rootFlags.Port, baud)
	if err != nil {
		return err
	}
	defer cmds.ExitLoader()

	if version.Family != loader.Family30 {
		applog.Info("Erasing CPLD")
		logic, err := cpld.New(cmds, version.Family)
		if err != nil {
			return err
		}
		if err := logic.EraseAndCheckDevice(); err != nil {
			applog.Error("Erasing CPLD failed: %v", err)
			return err
		}
	}

	applog.Info("Erasing all flash sectors")
	fw := flashupdate.New(cmds, version.Family)
	var progress func()
	if version.Family == loader.Family30 {
		progress = func() { fmt.Print(".") }
	}
	if err := fw.EraseAll(progress); err != nil {
		if version.Family == loader.Family30 {
			fmt.Println()
		}
		applog.Error("Erasing firmware failed: %v", err)
		return err
	}
	if version.Family == loader.Family30 {
		fmt.Println()
	}

	applog.Info("Erasing passed")
	return nil
}
