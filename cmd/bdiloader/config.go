package main

import (
	"github.com/daedaluz/bdiloader/internal/applog"
	"github.com/daedaluz/bdiloader/internal/config"
	"github.com/daedaluz/bdiloader/internal/netconfig"
	"github.com/spf13/cobra"
)

var configArgs config.Network

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Program network configuration",
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().StringVarP(&configArgs.BDIIP, "bdi-ip", "i", "0.0.0.0", "BDI IP address, e.g. 100.100.100.100 (0.0.0.0 selects bootp)")
	configCmd.Flags().StringVarP(&configArgs.HostIP, "host-ip", "h", "255.255.255.255", "host IP address")
	configCmd.Flags().StringVarP(&configArgs.SubnetMask, "mask", "m", "255.255.255.255", "subnet mask")
	configCmd.Flags().StringVarP(&configArgs.GatewayIP, "gateway", "g", "255.255.255.255", "gateway IP address")
	configCmd.Flags().StringVarP(&configArgs.SetupFileName, "file", "f", "", "configuration file name")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
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

	eng, err := netconfig.New(cmds, version.Family)
	if err != nil {
		return err
	}

	applog.Info("Writing network configuration")
	if err := eng.WriteNetwork(version.Serial, configArgs.BDIIP, configArgs.SubnetMask, configArgs.GatewayIP, configArgs.HostIP, configArgs.SetupFileName); err != nil {
		applog.Error("Configuration failed: %v", err)
		return err
	}

	if netconfig.UsesSetupFile(configArgs.HostIP, configArgs.SetupFileName) {
		applog.Info("Writing host setup file %s", configArgs.SetupFileName)
		if err := eng.WriteHostSetup(configArgs.SetupFileName); err != nil {
			applog.Error("Configuration failed: %v", err)
			return err
		}
	}

	applog.Info("Configuration passed")
	return nil
}
