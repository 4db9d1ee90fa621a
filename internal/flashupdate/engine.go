// Package flashupdate programs and erases BDI firmware flash,
// grounded on original_source/bdisetup.c's BHS/B20/B10/B30_UpdateFirmware
// and BDI_EraseFirmwareLogic (spec.md §4.7).
package flashupdate

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/daedaluz/bdiloader/internal/linkerr"
	"github.com/daedaluz/bdiloader/internal/loader"
	"github.com/daedaluz/bdiloader/internal/srec"
	"github.com/sigurn/crc16"
)

// maxFirmwareVersionDelta is BDI_MAX_FW_VERSION: a currently loaded
// version whose delta from the catalog's base type exceeds this is
// treated as implausible (a different firmware family entirely), not
// as "newer than anything on disk".
const maxFirmwareVersionDelta = 255

var triggerPattern = []byte{0xAA, 0x55, 0x55, 0xAA}

// Engine programs flash for one connected device's family.
type Engine struct {
	cmds          *loader.Commands
	family        loader.Family
	bootLoaderCRC uint16
}

// New builds an Engine bound to an already-connected Commands set.
func New(cmds *loader.Commands, family loader.Family) *Engine {
	return &Engine{cmds: cmds, family: family}
}

// BootLoaderCRC returns the CRC-16/ARC computed by the last
// VerifyBootLoader call (BDI3000 only).
func (e *Engine) BootLoaderCRC() uint16 {
	return e.bootLoaderCRC
}

// NeedsUpdate mirrors BDI_UpdateFirmwareLogic's skip check: update
// unless forced, the loaded version has drifted implausibly far from
// the catalog's base type for this slot, or it is older than the
// newest artifact found on disk. currentVersion and baseType are the
// raw 16-bit words from VersionInfo/catalog.Entry; the subtraction
// intentionally relies on uint16 wraparound the way the original's
// WORD arithmetic does.
func NeedsUpdate(currentVersion, baseType, newestDelta uint16, force bool) bool {
	if force {
		return true
	}
	delta := currentVersion - baseType
	return delta > maxFirmwareVersionDelta || delta < newestDelta
}

// EraseFirmwareSectors erases the fixed sector list a firmware update
// wipes before writing, the same list *_UpdateFirmware uses.
func (e *Engine) EraseFirmwareSectors() error {
	lay, ok := layouts[e.family]
	if !ok {
		return fmt.Errorf("flashupdate: no layout for family %s", e.family)
	}
	for _, addr := range lay.eraseSectors {
		if err := e.cmds.EraseSector(addr); err != nil {
			return fmt.Errorf("flashupdate: erase sector %#x: %w", addr, err)
		}
	}
	return nil
}

// EraseAll performs the wider sweep BDI_EraseFirmwareLogic runs for
// the standalone erase command: the fixed sector list for HS/20/21/10,
// or BDI3000's config+loader+firmware sweep followed by the
// boot/loader CRC scan. progress is called once per sector erased
// (may be nil).
func (e *Engine) EraseAll(progress func()) error {
	if e.family != loader.Family30 {
		sectors, ok := eraseAllSectors[e.family]
		if !ok {
			return fmt.Errorf("flashupdate: no erase-all list for family %s", e.family)
		}
		for _, addr := range sectors {
			if err := e.cmds.EraseSector(addr); err != nil {
				return fmt.Errorf("flashupdate: erase sector %#x: %w", addr, err)
			}
			if progress != nil {
				progress()
			}
		}
		return nil
	}

	allSectors := append(append(b30ConfigSectors(), b30LoaderSectors()...), b30EraseAllFirmwareSectors()...)
	for _, addr := range allSectors {
		if err := e.cmds.EraseSector(addr); err != nil {
			return fmt.Errorf("flashupdate: erase sector %#x: %w", addr, err)
		}
		if progress != nil {
			progress()
		}
	}
	return e.VerifyBootLoader()
}

// VerifyBootLoader checks BDI3000's boot/loader region (0x00000 -
// 0x30000) for illegal data left by a previous run: the gaps between
// the boot header and the config sectors, and between the loader
// header and the unused loader sectors, must read back all-0xFF. It
// then computes a CRC-16/ARC over the whole region with the 8-byte
// serial-number field at offset 0x20 zeroed, matching
// B30_VerifyLoaderCode. A no-op for other families.
func (e *Engine) VerifyBootLoader() error {
	if e.family != loader.Family30 {
		return nil
	}
	const blockSize = loader.MaxBlockSize

	for addr := uint32(0x510); addr < 0x2000; addr += blockSize {
		data, err := e.cmds.ReadMemory(addr, blockSize)
		if err != nil {
			return err
		}
		if !allErased(data) {
			return linkerr.New(linkerr.ErrVerify, "unused boot sector region is not erased")
		}
	}

	loaderHeader, err := e.cmds.ReadMemory(0x10000, blockSize)
	if err != nil {
		return err
	}
	gapWords := binary.BigEndian.Uint32(loaderHeader[12:16])
	gapStart := uint32(0x10040) + 4*gapWords
	for addr := gapStart; addr < 0x30000; addr += blockSize {
		data, err := e.cmds.ReadMemory(addr, blockSize)
		if err != nil {
			return err
		}
		if !allErased(data) {
			return linkerr.New(linkerr.ErrVerify, "unused loader sector region is not erased")
		}
	}

	table := crc16.MakeTable(crc16.CRC16_ARC)
	var crc uint16
	for addr := uint32(0); addr < 0x30000; addr += blockSize {
		data, err := e.cmds.ReadMemory(addr, blockSize)
		if err != nil {
			return err
		}
		if addr == 0 {
			for i := 0x20; i < 0x28; i++ {
				data[i] = 0
			}
		}
		crc = crc16.Update(crc, data, table)
	}
	e.bootLoaderCRC = crc
	return nil
}

func allErased(data []byte) bool {
	for _, b := range data {
		if b != 0xFF {
			return false
		}
	}
	return true
}

// ProgramFirmware streams S-records from r and writes them to flash,
// then writes the firmware trigger word. BDI3000 coalesces
// contiguous runs into MaxBlockSize writes (B30_UpdateFirmware);
// other families program each record's bytes directly, the way
// BHS/B20/B10_UpdateFirmware do.
func (e *Engine) ProgramFirmware(r io.Reader) error {
	lay, ok := layouts[e.family]
	if !ok {
		return fmt.Errorf("flashupdate: no layout for family %s", e.family)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	if lay.coalesce {
		if err := e.programCoalesced(scanner, lay); err != nil {
			return err
		}
	} else {
		if err := e.programDirect(scanner, lay); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("flashupdate: reading firmware file: %w", err)
	}
	if lay.coalesce {
		if err := e.checkFirmwareHeader(lay); err != nil {
			return err
		}
	}
	if _, err := e.cmds.ProgramFlash(lay.firmwareAddr, triggerPattern, lay.wordCount); err != nil {
		return fmt.Errorf("flashupdate: write firmware trigger: %w", err)
	}
	return nil
}

func (e *Engine) programDirect(scanner *bufio.Scanner, lay layout) error {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rec, err := srec.Decode(line)
		if err != nil {
			return fmt.Errorf("flashupdate: decode S-record: %w", err)
		}
		if len(rec.Data) == 0 {
			continue
		}
		if _, err := e.cmds.ProgramFlash(rec.Address, rec.Data, lay.wordCount); err != nil {
			return fmt.Errorf("flashupdate: program %#x: %w", rec.Address, err)
		}
	}
	return nil
}

// programCoalesced groups contiguous S-record runs into writes of up
// to MaxBlockSize bytes, padding the final partial word with 0xFF,
// matching B30_UpdateFirmware's send buffer logic.
func (e *Engine) programCoalesced(scanner *bufio.Scanner, lay layout) error {
	send := make([]byte, 0, loader.MaxBlockSize)
	var baseAddr, nextAddr uint32
	flush := func() error {
		if len(send) == 0 {
			return nil
		}
		for len(send)&3 != 0 {
			send = append(send, 0xFF)
		}
		if _, err := e.cmds.ProgramFlash(baseAddr, send, false); err != nil {
			return fmt.Errorf("flashupdate: program %#x: %w", baseAddr, err)
		}
		send = send[:0]
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rec, err := srec.Decode(line)
		if err != nil {
			return fmt.Errorf("flashupdate: decode S-record: %w", err)
		}
		if len(rec.Data) == 0 {
			continue
		}
		if len(send) == 0 {
			baseAddr = rec.Address
			nextAddr = rec.Address
		} else if nextAddr != rec.Address || len(send)+len(rec.Data) > loader.MaxBlockSize {
			if err := flush(); err != nil {
				return err
			}
			baseAddr = rec.Address
			nextAddr = rec.Address
		}
		send = append(send, rec.Data...)
		nextAddr += uint32(len(rec.Data))
	}
	return flush()
}

// checkFirmwareHeader validates the 32-byte header B30_UpdateFirmware
// reads back after writing: a copy descriptor (source/dest/count/type)
// that must fall within the flash/RAM windows the loader uses to
// relocate firmware at boot.
func (e *Engine) checkFirmwareHeader(lay layout) error {
	header, err := e.cmds.ReadMemory(lay.firmwareAddr, 32)
	if err != nil {
		return fmt.Errorf("flashupdate: read firmware header: %w", err)
	}
	copySrc := binary.BigEndian.Uint32(header[4:8])
	copyDest := binary.BigEndian.Uint32(header[8:12])
	copyCount := binary.BigEndian.Uint32(header[12:16]) * 4
	copyType := binary.BigEndian.Uint32(header[24:28])
	if copySrc < 0x00100000 || copySrc+copyCount > 0x00400000 ||
		copyDest < 0x40000000 || copyDest+copyCount > 0x41000000 ||
		copyType&0xFFFF != 1 {
		return linkerr.New(linkerr.ErrFirmwareFile, "firmware file header is not plausible")
	}
	return nil
}
