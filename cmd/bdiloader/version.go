package main

import (
	"fmt"

	"github.com/daedaluz/bdiloader/internal/applog"
	"github.com/daedaluz/bdiloader/internal/catalog"
	"github.com/daedaluz/bdiloader/internal/loader"
	"github.com/daedaluz/bdiloader/internal/netconfig"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Read current versions",
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
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

	printVersion(version)

	addrs, err := netconfig.FamilyAddresses(version.Family)
	if err != nil {
		if rootFlags.Start {
			return cmds.ExitLoader()
		}
		return nil
	}

	cnf, err := cmds.ReadMemory(addrs.Network, 104)
	if err != nil {
		applog.Error("Reading network configuration failed: %v", err)
		if rootFlags.Start {
			return cmds.ExitLoader()
		}
		return err
	}
	printNetworkRecord(cnf)

	if rootFlags.Start {
		return cmds.ExitLoader()
	}
	return nil
}

func printVersion(version loader.VersionInfo) {
	switch version.Family {
	case loader.FamilyHS:
		fmt.Println("BDI Type : BDI-HS")
	case loader.Family20:
		fmt.Printf("BDI Type : BDI2000 (SN: %s)\n", version.Serial)
	case loader.Family21:
		fmt.Printf("BDI Type : BDI2000 Rev.C (SN: %s)\n", version.Serial)
	case loader.Family10:
		fmt.Printf("BDI Type : BDI1000 (SN: %s)\n", version.Serial)
	case loader.Family30:
		fmt.Printf("BDI Type : BDI3000 (SN: %s)\n", version.Serial)
	default:
		fmt.Println("BDI Type : unknown")
	}

	fmt.Printf("Loader   : V%s\n", loader.FormatVersion(version.Loader))

	if version.Firmware != 0 {
		fmt.Printf("Firmware : V%s %s\n", loader.FormatVersion(version.Firmware&0xFF), catalog.FirmwareTypeName(version.FirmwareType()))
	} else {
		fmt.Println("Firmware : unknown")
	}

	if version.Family != loader.Family30 {
		if version.Logic != 0 {
			fmt.Printf("Logic    : V%s %s\n", loader.FormatVersion(version.Logic%1000), catalog.LogicTypeName(version.Logic))
		} else {
			fmt.Println("Logic    : unknown")
		}
	}
}

func printNetworkRecord(cnf []byte) {
	if len(cnf) < 104 {
		return
	}
	fmt.Printf("MAC      : %02x-%02x-%02x-%02x-%02x-%02x\n", cnf[0], cnf[1], cnf[2], cnf[3], cnf[4], cnf[5])
	fmt.Printf("IP Addr  : %d.%d.%d.%d\n", cnf[8], cnf[9], cnf[10], cnf[11])
	fmt.Printf("Subnet   : %d.%d.%d.%d\n", cnf[12], cnf[13], cnf[14], cnf[15])
	fmt.Printf("Gateway  : %d.%d.%d.%d\n", cnf[16], cnf[17], cnf[18], cnf[19])
	fmt.Printf("Host IP  : %d.%d.%d.%d\n", cnf[20], cnf[21], cnf[22], cnf[23])
	name := append([]byte{}, cnf[24:104]...)
	name[len(name)-1] = 0
	if i := indexZero(name); i >= 0 {
		name = name[:i]
	}
	fmt.Printf("Config   : %s\n", name)
}

func indexZero(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return -1
}
