// Package config turns the CLI's flags into the plain parameter
// struct bdisetup.c's main() builds from argv before dispatching to
// one of its four command handlers.
package config

import (
	"fmt"
	"net"

	"github.com/daedaluz/bdiloader/internal/catalog"
)

// Baudrate accepts the original tool's five abbreviated -b spellings
// and maps them onto the real bps value.
func Baudrate(arg string) (int, error) {
	switch arg {
	case "9":
		return 9600, nil
	case "19":
		return 19200, nil
	case "38":
		return 38400, nil
	case "57":
		return 57600, nil
	case "115":
		return 115200, nil
	default:
		return 0, fmt.Errorf("config: invalid baudrate %q (want 9, 19, 38, 57 or 115)", arg)
	}
}

// PortIsNetwork reports whether port names an IP address (datagram
// transport) rather than a serial device path, matching the
// original's "-p Port (/dev/ttyS0) or IP address" flag description.
func PortIsNetwork(port string) bool {
	return net.ParseIP(port) != nil
}

// Firmware carries the -u command's target selection and directory.
type Firmware struct {
	App       catalog.App
	CPU       catalog.CPU
	Directory string
}

// Network carries the -c command's address and setup file parameters.
type Network struct {
	BDIIP         string
	HostIP        string
	SubnetMask    string
	GatewayIP     string
	SetupFileName string
}

// Root carries the parameters common to every command.
type Root struct {
	Port     string
	Baudrate int
	Start    bool
}

// DefaultBaudrate is the original tool's default: 38400bps.
const DefaultBaudrate = 38400

// DefaultPort is the original tool's default serial device.
const DefaultPort = "/dev/ttyS0"
