package main

import (
	"fmt"

	"github.com/daedaluz/bdiloader/internal/config"
	"github.com/daedaluz/bdiloader/internal/link"
	"github.com/daedaluz/bdiloader/internal/loader"
)

// openChannel picks serial or datagram framing the way main() does,
// by testing whether -p's argument parses as an IP address.
func openChannel(port string) *link.Channel {
	if config.PortIsNetwork(port) {
		return link.NewDatagramChannel(port)
	}
	return link.NewSerialChannel(port)
}

// connectLoader opens port at baud and runs the BDI_ConnectLoader
// handshake, wrapping any failure the way every command's "Connecting
// to BDI loader failed" printf does.
func connectLoader(port string, baud int) (*loader.Commands, loader.VersionInfo, error) {
	ch := openChannel(port)
	cmds, version, err := loader.Connect(ch, baud)
	if err != nil {
		return nil, loader.VersionInfo{}, fmt.Errorf("connecting to BDI loader failed: %w", err)
	}
	return cmds, version, nil
}
