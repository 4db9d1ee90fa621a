package main

import (
	"os"

	"github.com/daedaluz/bdiloader/internal/applog"
	"github.com/daedaluz/bdiloader/internal/artifact"
	"github.com/daedaluz/bdiloader/internal/catalog"
	"github.com/daedaluz/bdiloader/internal/config"
	"github.com/daedaluz/bdiloader/internal/cpld"
	"github.com/daedaluz/bdiloader/internal/flashupdate"
	"github.com/daedaluz/bdiloader/internal/loader"
	"github.com/spf13/cobra"
)

var updateArgs struct {
	app string
	cpu string
	dir string
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update firmware and/or logic",
	RunE:  runUpdate,
}

func init() {
	updateCmd.Flags().StringVarP(&updateArgs.app, "app", "a", "GDB", "application type: STD, GDB, ADA, TOR or ACC")
	updateCmd.Flags().StringVarP(&updateArgs.cpu, "cpu", "t", "MPC800", "target CPU type")
	updateCmd.Flags().StringVarP(&updateArgs.dir, "dir", "d", ".", "directory with the firmware/logic files")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	baud, err := resolveBaudrate()
	if err != nil {
		return err
	}
	app, err := catalog.ParseApp(updateArgs.app)
	if err != nil {
		return err
	}
	cpu, err := catalog.ParseCPU(updateArgs.cpu)
	if err != nil {
		return err
	}
	fwParams := config.Firmware{App: app, CPU: cpu, Directory: updateArgs.dir}
	idx, err := catalog.Index(fwParams.App, fwParams.CPU)
	if err != nil {
		return err
	}

	applog.Info("Connecting to BDI loader")
	cmds, version, err := connectLoader(rootFlags.Port, baud)
	if err != nil {
		return err
	}
	defer cmds.ExitLoader()

	entry, err := catalog.Lookup(version.Family, idx)
	if err != nil {
		return err
	}

	fwHit, err := catalog.ResolveFirmware(version.Family, entry, fwParams.Directory)
	if err != nil {
		return err
	}
	updateFirmware := flashupdate.NeedsUpdate(version.Firmware, entry.FirmwareType, fwHit.Version, false)
	if !updateFirmware {
		applog.Info("Firmware is already up to date")
	}

	var logicHit artifact.Hit
	updateLogic := false
	if version.Family != loader.Family30 {
		logicHit, err = catalog.ResolveLogic(entry, fwParams.Directory)
		if err != nil {
			return err
		}
		updateLogic = cpld.NeedsUpdate(version.Logic, entry.LogicType, logicHit.Version, false)
		if !updateLogic {
			applog.Info("CPLD is already up to date")
		}
	}

	if updateLogic {
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

	if updateFirmware {
		applog.Info("Programming firmware with %s", fwHit.Path)
		fw := flashupdate.New(cmds, version.Family)
		if err := fw.EraseFirmwareSectors(); err != nil {
			applog.Error("Programming firmware failed: %v", err)
			return err
		}
		f, err := os.Open(fwHit.Path)
		if err != nil {
			return err
		}
		err = fw.ProgramFirmware(f)
		f.Close()
		if err != nil {
			applog.Error("Programming firmware failed: %v", err)
			return err
		}
	}

	if updateLogic {
		applog.Info("Programming CPLD with %s", logicHit.Path)
		logic, err := cpld.New(cmds, version.Family)
		if err != nil {
			return err
		}
		f, err := os.Open(logicHit.Path)
		if err != nil {
			return err
		}
		err = logic.Update(entry.LogicType+logicHit.Version, f)
		f.Close()
		if err != nil {
			applog.Error("Programming CPLD failed: %v", err)
			return err
		}
	}

	applog.Info("Programming passed")
	return nil
}
