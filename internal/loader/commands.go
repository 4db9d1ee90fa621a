package loader

import (
	"encoding/binary"
	"time"

	"github.com/daedaluz/bdiloader/internal/link"
	"github.com/daedaluz/bdiloader/internal/linkerr"
)

// Commands is a thin typed wrapper over a link.Channel: every method
// serializes one opcode and its big-endian arguments, calls
// Transaction with a command-specific timeout, and parses the
// echo-of-opcode plus response fields (spec.md §4.4).
type Commands struct {
	ch *link.Channel
}

// New wraps an already-open Channel. The channel must be in STD frame
// mode; New sets that for the caller.
func New(ch *link.Channel) *Commands {
	ch.UseStdFrames()
	return &Commands{ch: ch}
}

func appendLong(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

func appendWord(buf []byte, v uint16) []byte {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	return append(buf, tmp[:]...)
}

// StartLoader sends START_LOADER and returns the raw reply so the
// caller (Connect) can tell a probe that is only now starting its
// loader (which echoes the opcode alone) from one already in it.
func (c *Commands) StartLoader() ([]byte, error) {
	buf := make([]byte, 256)
	n, err := c.ch.Transaction([]byte{byte(OpStartLoader)}, buf, DefaultExecTime*time.Millisecond)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// ExitLoader sends EXIT_LOADER, handing control back to the firmware
// or application the loader was bootstrapped from.
func (c *Commands) ExitLoader() error {
	buf := make([]byte, 32)
	_, err := c.ch.Transaction([]byte{byte(OpExitLoader)}, buf, 200*time.Millisecond)
	return err
}

// ReadVersion sends READ_VERSION and classifies the responding
// device's family from the reply length.
func (c *Commands) ReadVersion() (VersionInfo, error) {
	buf := make([]byte, 64)
	n, err := c.ch.Transaction([]byte{byte(OpReadVersion)}, buf, time.Second)
	if err != nil {
		return VersionInfo{}, err
	}
	return parseVersion(byte(OpReadVersion), buf[:n])
}

// ReadMemory reads up to MaxBlockSize bytes at addr. The response
// echoes a 6-byte address/count header before the payload, which
// ReadMemory strips.
func (c *Commands) ReadMemory(addr uint32, count int) ([]byte, error) {
	if count > MaxBlockSize {
		return nil, linkerr.New(linkerr.ErrInvalidParameter, "read exceeds max block size")
	}
	cmd := []byte{byte(OpReadMemory)}
	cmd = appendLong(cmd, addr)
	cmd = appendWord(cmd, uint16(count))
	buf := make([]byte, count+7)
	n, err := c.ch.Transaction(cmd, buf, time.Second)
	if err != nil {
		return nil, err
	}
	if n < 7 || buf[0] != byte(OpReadMemory) {
		return nil, linkerr.New(linkerr.ErrInvalidResponse, "read memory response malformed")
	}
	data := make([]byte, n-7)
	copy(data, buf[7:n])
	return data, nil
}

// EraseSector erases the flash sector containing addr, returning an
// ErrFlashErase error when the probe reports a non-zero error code.
func (c *Commands) EraseSector(addr uint32) error {
	cmd := []byte{byte(OpEraseFlash)}
	cmd = appendLong(cmd, addr)
	buf := make([]byte, 8)
	n, err := c.ch.Transaction(cmd, buf, 5*time.Second)
	if err != nil {
		return err
	}
	if n < 2 || buf[0] != byte(OpEraseFlash) {
		return linkerr.New(linkerr.ErrInvalidResponse, "erase sector response malformed")
	}
	if buf[1] != 0 {
		return linkerr.New(linkerr.ErrFlashErase, "probe reported erase failure")
	}
	return nil
}

// ProgramFlash writes data at addr. wordCount reports the unit the
// probe expects in the command's count field: true for word-counted
// devices (BDI-HS), false for byte-counted devices (BDI1000/2000/3000).
func (c *Commands) ProgramFlash(addr uint32, data []byte, wordCount bool) (errAddr uint32, err error) {
	count := len(data)
	unitCount := count
	if wordCount {
		unitCount = count / 2
	}
	cmd := []byte{byte(OpProgramFlash)}
	cmd = appendLong(cmd, addr)
	cmd = appendWord(cmd, uint16(unitCount))
	cmd = append(cmd, data...)
	buf := make([]byte, 8)
	n, err := c.ch.Transaction(cmd, buf, 10*time.Second)
	if err != nil {
		return 0, err
	}
	if n < 6 || buf[0] != byte(OpProgramFlash) {
		return 0, linkerr.New(linkerr.ErrInvalidResponse, "program flash response malformed")
	}
	errCode := buf[1]
	errAddr = binary.BigEndian.Uint32(buf[2:6])
	if errCode != 0 {
		return errAddr, linkerr.New(linkerr.ErrFlashProgram, "probe reported program failure")
	}
	return errAddr, nil
}

// ISPEnable enters (enable true) or leaves (enable false)
// in-system-programming mode for the CPLD.
func (c *Commands) ISPEnable(enable bool) error {
	arg := byte(0)
	if enable {
		arg = 1
	}
	buf := make([]byte, 4)
	_, err := c.ch.Transaction([]byte{byte(OpISPEnable), arg}, buf, 500*time.Millisecond)
	return err
}

// ISPReadID returns the CPLD's JEDEC device ID byte.
func (c *Commands) ISPReadID() (byte, error) {
	buf := make([]byte, 4)
	n, err := c.ch.Transaction([]byte{byte(OpISPReadID)}, buf, 500*time.Millisecond)
	if err != nil {
		return 0, err
	}
	if n < 2 {
		return 0, linkerr.New(linkerr.ErrInvalidResponse, "ISP read ID response malformed")
	}
	return buf[1], nil
}

// ISPReadLine reads fuse row index, returning both the programmed and
// the erased-state ASCII bit strings the probe reports.
func (c *Commands) ISPReadLine(row int, rowBits int) (programmed, erased string, err error) {
	cmd := []byte{byte(OpISPReadLine)}
	cmd = appendWord(cmd, uint16(row))
	buf := make([]byte, rowBits*2+4)
	n, werr := c.ch.Transaction(cmd, buf, time.Second)
	if werr != nil {
		return "", "", werr
	}
	if n < 1 || buf[0] != byte(OpISPReadLine) {
		return "", "", linkerr.New(linkerr.ErrInvalidResponse, "ISP read line response malformed")
	}
	body := buf[1:n]
	half := len(body) / 2
	return string(body[:half]), string(body[half:]), nil
}

// ISPProgramLine programs fuse row index with the given bit string.
func (c *Commands) ISPProgramLine(row int, bits string) error {
	cmd := []byte{byte(OpISPProgramLine)}
	cmd = appendWord(cmd, uint16(row))
	cmd = append(cmd, []byte(bits)...)
	buf := make([]byte, 4)
	_, err := c.ch.Transaction(cmd, buf, time.Second)
	return err
}

// ISPReadUES reads back the programmed User Electronic Signature.
func (c *Commands) ISPReadUES(uesBits int) (string, error) {
	buf := make([]byte, uesBits+4)
	n, err := c.ch.Transaction([]byte{byte(OpISPReadUES)}, buf, time.Second)
	if err != nil {
		return "", err
	}
	if n < 1 {
		return "", linkerr.New(linkerr.ErrInvalidResponse, "ISP read UES response malformed")
	}
	return string(buf[1:n]), nil
}

// ISPProgramUES programs the UES bit string.
func (c *Commands) ISPProgramUES(bits string) error {
	cmd := []byte{byte(OpISPProgramUES)}
	cmd = append(cmd, []byte(bits)...)
	buf := make([]byte, 4)
	_, err := c.ch.Transaction(cmd, buf, time.Second)
	return err
}

// ISPErase bulk-erases the CPLD's fuse array.
func (c *Commands) ISPErase() error {
	buf := make([]byte, 4)
	_, err := c.ch.Transaction([]byte{byte(OpISPErase)}, buf, 5*time.Second)
	return err
}
