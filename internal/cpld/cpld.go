// Package cpld programs and verifies a probe's CPLD logic fuse array
// over the loader's ISP opcodes, grounded on original_source/bdisetup.c's
// ISP_* helpers and the per-family *_UpdateLogic functions (spec.md §4.6).
package cpld

import (
	"fmt"
	"io"
	"strings"

	"github.com/daedaluz/bdiloader/internal/jedec"
	"github.com/daedaluz/bdiloader/internal/linkerr"
	"github.com/daedaluz/bdiloader/internal/loader"
)

// deviceID is the JEDEC device ID byte ISP_READ_ID reports, checked
// against the family after an erase to catch a CPLD swap or a
// misidentified probe.
const (
	deviceID2096 byte = 0x13 // BDI2000/2000 Rev.C
	deviceID2032 byte = 0x15 // BDI-HS
	deviceID2064 byte = 0x12 // BDI1000
)

// maxLogicVersionDelta is BDI_MAX_LOGIC_VERSION: a type-stripped delta
// larger than this means a different logic family is loaded, which
// BDI_UpdateFirmwareLogic treats the same as "needs updating".
const maxLogicVersionDelta = 999

// NeedsUpdate reports whether a CPLD update should run, mirroring
// BDI_UpdateFirmwareLogic's updateLogic decision: always true when
// forced, otherwise true when the loaded version's type-stripped delta
// is implausibly large or older than the newest artifact on disk.
func NeedsUpdate(currentVersion, baseType, newestDelta uint16, force bool) bool {
	if force {
		return true
	}
	delta := currentVersion - baseType
	return delta > maxLogicVersionDelta || delta < newestDelta
}

func wantDeviceID(family loader.Family) (byte, error) {
	switch family {
	case loader.FamilyHS:
		return deviceID2032, nil
	case loader.Family20, loader.Family21:
		return deviceID2096, nil
	case loader.Family10:
		return deviceID2064, nil
	default:
		return 0, fmt.Errorf("cpld: family %s has no CPLD", family)
	}
}

func geometry(family loader.Family) (jedec.Geometry, error) {
	switch family {
	case loader.FamilyHS:
		return jedec.GeometryHS, nil
	case loader.Family20, loader.Family21:
		return jedec.Geometry2021, nil
	case loader.Family10:
		return jedec.Geometry10, nil
	default:
		return jedec.Geometry{}, fmt.Errorf("cpld: family %s has no CPLD", family)
	}
}

// Engine programs and verifies one connected device's CPLD.
type Engine struct {
	cmds   *loader.Commands
	family loader.Family
}

// New builds an Engine bound to an already-connected Commands set.
// Returns an error if the family has no CPLD (BDI3000 carries its
// logic inside the firmware image instead).
func New(cmds *loader.Commands, family loader.Family) (*Engine, error) {
	if _, err := geometry(family); err != nil {
		return nil, err
	}
	return &Engine{cmds: cmds, family: family}, nil
}

// EraseAndCheckDevice enables ISP mode, reads back the JEDEC device ID,
// bulk-erases the fuse array, then disables ISP mode and checks the
// device ID against the expected part for this family. Mirrors
// BDI_EraseFirmwareLogic's logic-erase block, which runs before the
// flash sectors are erased.
func (e *Engine) EraseAndCheckDevice() error {
	want, err := wantDeviceID(e.family)
	if err != nil {
		return err
	}
	if err := e.cmds.ISPEnable(true); err != nil {
		return err
	}
	id, idErr := e.cmds.ISPReadID()
	eraseErr := e.cmds.ISPErase()
	disableErr := e.cmds.ISPEnable(false)
	if idErr != nil {
		return idErr
	}
	if eraseErr != nil {
		return eraseErr
	}
	if disableErr != nil {
		return disableErr
	}
	if id != want {
		return linkerr.New(linkerr.ErrLogicDevice, "CPLD device ID does not match this probe family")
	}
	return nil
}

// buildUES renders the version-encoded User Electronic Signature bit
// string for this family, matching the *_UpdateLogic sprintf+encode
// pairs: BDI-HS packs a fixed "B3201E" prefix and a 4-digit decimal
// version into 10 hex nibbles; BDI2000/2000 Rev.C and BDI1000 instead
// ASCII-expand a "B6001E"/"B1001E" prefix plus a single version digit
// and a 3-digit remainder.
func (e *Engine) buildUES(version uint16) (string, error) {
	switch e.family {
	case loader.FamilyHS:
		return hex2UES(fmt.Sprintf("B3201E%04d", version)), nil
	case loader.Family20, loader.Family21:
		return ascii2UES(fmt.Sprintf("B6001E%c%03d", '0'+version/1000, version%1000), jedec.Geometry2021.UESBits/8), nil
	case loader.Family10:
		return ascii2UES(fmt.Sprintf("B1001E%c%03d", '0'+version/1000, version%1000), jedec.Geometry10.UESBits/8), nil
	default:
		return "", fmt.Errorf("cpld: family %s has no CPLD", e.family)
	}
}

var hexNibbleBits = map[byte]string{
	'0': "0000", '1': "0001", '2': "0010", '3': "0011",
	'4': "0100", '5': "0101", '6': "0110", '7': "0111",
	'8': "1000", '9': "1001", 'A': "1010", 'B': "1011",
	'C': "1100", 'D': "1101", 'E': "1110", 'F': "1111",
}

// hex2UES expands the first 10 characters of s into 40 bits, 4 per
// character, mapping anything that isn't a hex digit to "0000" the
// way the original's switch statement's default case does.
func hex2UES(s string) string {
	var b strings.Builder
	s = strings.ToUpper(s)
	for i := 0; i < 10; i++ {
		bits := "0000"
		if i < len(s) {
			if v, ok := hexNibbleBits[s[i]]; ok {
				bits = v
			}
		}
		b.WriteString(bits)
	}
	return b.String()
}

// ascii2UES expands the first nChars characters of s into 8 bits per
// character, MSB first, padding with zero bytes if s is shorter.
func ascii2UES(s string, nChars int) string {
	var b strings.Builder
	for i := 0; i < nChars; i++ {
		ch := byte(0)
		if i < len(s) {
			ch = s[i]
		}
		for j := 7; j >= 0; j-- {
			if ch&(1<<uint(j)) != 0 {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
	}
	return b.String()
}

// Update loads the fuse map from r, then runs the full program/verify
// sequence: ISP enable, program every row, program the UES, read back
// and compare every row against both its programmed and erased
// readout, read back and compare the UES, ISP disable. ISP mode is
// disabled on both the success and the failure path, matching
// BHS/B20/B10_UpdateLogic.
func (e *Engine) Update(version uint16, r io.Reader) error {
	geom, err := geometry(e.family)
	if err != nil {
		return err
	}
	fuseMap, err := jedec.Parse(r, geom)
	if err != nil {
		return linkerr.Wrap(linkerr.ErrLogicFile, "loading fuse map", err)
	}
	ues, err := e.buildUES(version)
	if err != nil {
		return err
	}

	result := e.runUpdate(fuseMap, ues, geom)
	disableErr := e.cmds.ISPEnable(false)
	if result != nil {
		return result
	}
	return disableErr
}

func (e *Engine) runUpdate(fuseMap *jedec.FuseMap, ues string, geom jedec.Geometry) error {
	if err := e.cmds.ISPEnable(true); err != nil {
		return err
	}

	for row, bits := range fuseMap.Rows {
		if err := e.cmds.ISPProgramLine(row, bits); err != nil {
			return err
		}
	}

	if err := e.cmds.ISPProgramUES(ues); err != nil {
		return err
	}

	for row, bits := range fuseMap.Rows {
		programmed, erased, err := e.cmds.ISPReadLine(row, geom.RowBits)
		if err != nil {
			return err
		}
		if programmed != bits || erased != bits {
			return linkerr.New(linkerr.ErrLogicVerify, "CPLD row readback does not match the fuse map")
		}
	}

	deviceUES, err := e.cmds.ISPReadUES(geom.UESBits)
	if err != nil {
		return err
	}
	if deviceUES != ues {
		return linkerr.New(linkerr.ErrLogicVerify, "CPLD UES readback does not match the expected signature")
	}
	return nil
}
