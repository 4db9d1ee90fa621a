package flashupdate

import "github.com/daedaluz/bdiloader/internal/loader"

// layout is a device family's flash geometry for the firmware-update
// path: the base address firmware is written at (and the trigger
// word lands on), plus the fixed sector list erased before writing,
// taken from the per-family *_UpdateFirmware functions.
type layout struct {
	firmwareAddr uint32
	eraseSectors []uint32
	coalesce     bool // BDI3000 packs S-records into MaxBlockSize runs before writing
	wordCount    bool // BDI-HS's PROGRAM_FLASH counts words, not bytes
}

const (
	hsConfigAddr = 0x084000
	b30FirmwareAddr = 0x00100000
)

var layouts = map[loader.Family]layout{
	loader.FamilyHS: {
		firmwareAddr: 0x0A0000,
		eraseSectors: []uint32{hsConfigAddr, 0x0A0000, 0x0C0000, 0x0E0000},
		wordCount:    true,
	},
	loader.Family20: {
		firmwareAddr: 0x01040000,
		eraseSectors: []uint32{0x01040000, 0x01080000, 0x010C0000},
	},
	loader.Family21: {
		firmwareAddr: 0x01040000,
		eraseSectors: []uint32{0x01040000, 0x01080000, 0x010C0000},
	},
	loader.Family10: {
		firmwareAddr: 0x0A0000,
		eraseSectors: []uint32{0x0A0000, 0x0C0000, 0x0E0000},
	},
	loader.Family30: {
		firmwareAddr: b30FirmwareAddr,
		eraseSectors: firmwareSectors(b30FirmwareAddr, 16, 0x10000),
		coalesce:     true,
	},
}

// eraseAllSectors lists the sectors BDI_EraseFirmwareLogic wipes for
// the -e (erase) command, which is a wider sweep than the per-family
// firmware-update erase list above.
var eraseAllSectors = map[loader.Family][]uint32{
	loader.FamilyHS: {0x0A0000},
	loader.Family20: {0x01008000, 0x0100C000, 0x01010000, 0x01040000, 0x01080000, 0x010C0000},
	loader.Family21: {0x01008000, 0x0100C000, 0x01010000, 0x01040000, 0x01080000, 0x010C0000},
	loader.Family10: {0x084000, 0x086000, 0x088000, 0x0A0000, 0x0C0000, 0x0E0000},
}

func firmwareSectors(base uint32, count int, step uint32) []uint32 {
	sectors := make([]uint32, count)
	addr := base
	for i := range sectors {
		sectors[i] = addr
		addr += step
	}
	return sectors
}

// b30ConfigSectors and b30LoaderSectors are the BDI3000-only extra
// sweeps BDI_EraseFirmwareLogic performs before the 48 firmware
// sectors: 7 configuration sectors starting at 0x2000, then 13
// otherwise-unused loader sectors starting at 0x30000.
func b30ConfigSectors() []uint32 {
	return firmwareSectors(0x2000, 7, 0x2000)
}

func b30LoaderSectors() []uint32 {
	return firmwareSectors(0x30000, 13, 0x10000)
}

func b30EraseAllFirmwareSectors() []uint32 {
	return firmwareSectors(b30FirmwareAddr, 48, 0x10000)
}
