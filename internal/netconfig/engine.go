package netconfig

import (
	"bytes"
	"fmt"

	"github.com/daedaluz/bdiloader/internal/linkerr"
	"github.com/daedaluz/bdiloader/internal/loader"
)

// Engine drives BDI_UpdateConfig's two writes over an already-connected
// probe: the fixed network record, and, when a host setup file is in
// play, the compiled config/regdef blobs.
type Engine struct {
	cmds   *loader.Commands
	family loader.Family
	addrs  Addresses
}

// New builds an Engine bound to family's network/config/regdef
// addresses. Returns an error if the family has no network support
// (BDI-HS predates it entirely).
func New(cmds *loader.Commands, family loader.Family) (*Engine, error) {
	addrs, err := FamilyAddresses(family)
	if err != nil {
		return nil, err
	}
	return &Engine{cmds: cmds, family: family, addrs: addrs}, nil
}

// WriteNetwork erases the network sector, programs the 104-byte
// network record, and reads it back to confirm the write took.
func (e *Engine) WriteNetwork(serial, bdiIP, subnetMask, gateway, hostIP, setupFileName string) error {
	record, err := BuildNetworkRecord(serial, bdiIP, subnetMask, gateway, hostIP, setupFileName)
	if err != nil {
		return err
	}
	if err := e.cmds.EraseSector(e.addrs.Network); err != nil {
		return fmt.Errorf("netconfig: erase network sector %#x: %w", e.addrs.Network, err)
	}
	if _, err := e.cmds.ProgramFlash(e.addrs.Network, record, false); err != nil {
		return fmt.Errorf("netconfig: program network record: %w", err)
	}
	readBack, err := e.cmds.ReadMemory(e.addrs.Network, len(record))
	if err != nil {
		return fmt.Errorf("netconfig: read back network record: %w", err)
	}
	if !bytes.Equal(record, readBack) {
		return linkerr.New(linkerr.ErrFlashVerify, "network record readback does not match what was written")
	}
	return nil
}

// WriteHostSetup erases the config (and, for BDI3000, the regdef)
// sector, then programs the compiled setup file and every regdef file
// it references in MaxBlockSize chunks. Mirrors BDI_UpdateConfig's
// "host IP is the none sentinel and a setup file was given" path:
// BDI2000/2000 Rev.C share one combined blob's config sector, while
// BDI3000 carries config and regdef in separate sectors.
func (e *Engine) WriteHostSetup(setupPath string) error {
	if !e.addrs.HasConfig {
		return fmt.Errorf("netconfig: family %s has no host-resident config/regdef area", e.family)
	}

	config, err := BuildRomConfig(setupPath)
	if err != nil {
		return err
	}
	regdef, err := BuildRomRegdef(setupPath, config)
	if err != nil {
		return err
	}

	if err := e.cmds.EraseSector(e.addrs.Config); err != nil {
		return fmt.Errorf("netconfig: erase config sector %#x: %w", e.addrs.Config, err)
	}
	if e.family == loader.Family30 {
		if err := e.cmds.EraseSector(e.addrs.Regdef); err != nil {
			return fmt.Errorf("netconfig: erase regdef sector %#x: %w", e.addrs.Regdef, err)
		}
	}

	if err := e.programChunked(e.addrs.Config, config); err != nil {
		return fmt.Errorf("netconfig: program config: %w", err)
	}
	if err := e.programChunked(e.addrs.Regdef, regdef); err != nil {
		return fmt.Errorf("netconfig: program regdef: %w", err)
	}
	return nil
}

// programChunked writes data in loader.MaxBlockSize chunks, the way
// BDI_UpdateConfig's config/regdef program loops do, padding the
// final partial chunk with 0xFF so every PROGRAM_FLASH call carries a
// full block.
func (e *Engine) programChunked(addr uint32, data []byte) error {
	const chunk = loader.MaxBlockSize
	for len(data) > 0 {
		n := chunk
		var send []byte
		if len(data) >= chunk {
			send = data[:chunk]
		} else {
			send = make([]byte, chunk)
			copy(send, data)
			for i := len(data); i < chunk; i++ {
				send[i] = 0xFF
			}
			n = len(data)
		}
		if _, err := e.cmds.ProgramFlash(addr, send, false); err != nil {
			return err
		}
		addr += uint32(n)
		data = data[n:]
		if n < chunk {
			break
		}
	}
	return nil
}

