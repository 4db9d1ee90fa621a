package loader

import (
	"encoding/binary"
	"fmt"

	"github.com/daedaluz/bdiloader/internal/linkerr"
)

// Family identifies which of the five BDI device generations answered
// READ_VERSION.
type Family int

const (
	FamilyHS Family = iota
	Family20
	Family21
	Family10
	Family30
)

func (f Family) String() string {
	switch f {
	case FamilyHS:
		return "HS"
	case Family20:
		return "20"
	case Family21:
		return "21"
	case Family10:
		return "10"
	case Family30:
		return "30"
	default:
		return "unknown"
	}
}

// VersionInfo is the parsed READ_VERSION response (spec.md §3).
type VersionInfo struct {
	Family   Family
	Loader   uint16
	Firmware uint16
	Logic    uint16
	Serial   string
}

// parseVersion classifies the device family from the response length
// and decodes the fixed-layout fields that follow, matching
// BDI_ConnectLoader in the original source byte for byte.
func parseVersion(answer byte, raw []byte) (VersionInfo, error) {
	var v VersionInfo
	n := len(raw)
	switch n {
	case 7:
		v.Family = FamilyHS
	case 15, 17:
		v.Family = Family20
	case 23:
		v.Family = Family10
	case 21:
		v.Family = Family30
	default:
		return VersionInfo{}, linkerr.New(linkerr.ErrUnknownBDI, "unrecognized READ_VERSION response length")
	}

	if raw[0] != answer {
		return VersionInfo{}, linkerr.New(linkerr.ErrInvalidResponse, "READ_VERSION echoed wrong opcode")
	}
	v.Loader = binary.BigEndian.Uint16(raw[1:3])
	v.Firmware = binary.BigEndian.Uint16(raw[3:5])

	offset := 7
	if v.Family == Family30 {
		v.Logic = 0
		offset = 9 // skip the 4-byte BDI3000 CPLD UES field
	} else {
		v.Logic = binary.BigEndian.Uint16(raw[5:7])
	}

	// BDI-HS's 7-byte reply carries no serial number field at all.
	if v.Family != FamilyHS {
		v.Serial = string(raw[offset : offset+8])
	}

	if n == 17 {
		marker := raw[offset+8+1] // skip '-' separator
		if marker == 'C' {
			v.Family = Family21
		}
	}
	return v, nil
}

// FirmwareType extracts the firmware-type index encoded in the high
// bits of the 16-bit firmware version word. Encoding differs for
// BDI3000 (top byte is the type) versus older devices (top nibble,
// with a 0xC000-offset region used for a second type range).
func (v VersionInfo) FirmwareType() uint16 {
	if v.Family == Family30 {
		return v.Firmware >> 8
	}
	if v.Firmware < 0xC000 {
		return v.Firmware >> 12
	}
	return (v.Firmware - 0xC000) >> 8
}

// maxDisplayVersion is BDI_MAX_FW_VERSION, the ceiling BDI_Version2String
// checks before formatting: a value above this (or zero) prints as
// "unknown" rather than a bogus digit string.
const maxDisplayVersion = 255

// FormatVersion renders a raw version byte as "major.minor", the same
// digit-by-digit BCD-style split BDI_Version2String does.
func FormatVersion(version uint16) string {
	if version == 0 || version > maxDisplayVersion {
		return "unknown"
	}
	return fmt.Sprintf("%d.%02d", version/100, version%100)
}
