// Package netconfig builds the network and host-resident configuration
// records BDI_UpdateConfig writes to a probe's flash: a fixed-size
// network record (IP addresses, MAC, TFTP setup file name) and,
// optionally, a compiled copy of a host setup file plus the register
// definition files it references (spec.md §4.8).
package netconfig

import (
	"encoding/binary"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/daedaluz/bdiloader/internal/linkerr"
	"github.com/daedaluz/bdiloader/internal/loader"
)

const (
	maxConfigSize  = 0x10000
	maxRegdefSize  = 0x10000
	maxRecordSize  = 104
	maxFileNameLen = 79
	inaddrNone     = 0xFFFFFFFF
)

// Addresses is a family's network/config/regdef flash base addresses.
// HasConfig reports whether this family supports embedding a compiled
// setup file (BDI1000 only carries the network record).
type Addresses struct {
	Network   uint32
	Config    uint32
	Regdef    uint32
	HasConfig bool
}

// FamilyAddresses returns the flash addresses BDI_UpdateConfig uses for
// family. BDI-HS has no network support at all (it predates Ethernet);
// BDI1000 has a network record but no host-resident config/regdef area.
func FamilyAddresses(family loader.Family) (Addresses, error) {
	switch family {
	case loader.Family20, loader.Family21:
		return Addresses{Network: 0x01008000, Config: 0x010C0000, Regdef: 0x010D0000, HasConfig: true}, nil
	case loader.Family10:
		return Addresses{Network: 0x00084000}, nil
	case loader.Family30:
		return Addresses{Network: 0x00006000, Config: 0x00200000, Regdef: 0x00210000, HasConfig: true}, nil
	default:
		return Addresses{}, fmt.Errorf("netconfig: family %s has no network configuration", family)
	}
}

// ParseIPMotorola parses a dotted-quad IPv4 address into the big-endian
// 32-bit word the probe's network record stores addresses as.
func ParseIPMotorola(s string) (uint32, bool) {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return 0, false
	}
	v4 := ip.To4()
	if v4 == nil {
		return 0, false
	}
	return binary.BigEndian.Uint32(v4), true
}

// UsesSetupFile reports whether a network update should also compile
// and program a host setup file: the original triggers this whenever
// the host IP is INADDR_NONE (unparseable, or 255.255.255.255) and a
// setup file name was given, which is how the CLI's "-h" flag is left
// at its default on purpose to mean "fetch configuration from this
// file instead of a fixed host IP".
func UsesSetupFile(hostIP, setupFileName string) bool {
	word, ok := ParseIPMotorola(hostIP)
	return (!ok || word == inaddrNone) && setupFileName != ""
}

// BuildNetworkRecord renders the fixed maxRecordSize-byte record
// BDI_UpdateConfig writes at a family's network base address: a fixed
// Abatron OUI, a MAC address BCD-packed from the first 6 digits of the
// device serial number, a gap, the probe's own IP/subnet/gateway, the
// host IP (or INADDR_NONE when hostIP doesn't parse), and the TFTP
// setup file name. configData is a 104-byte stack buffer in the
// original and only its leading fields are ever assigned; the tail
// byte beyond the name's terminating zero is whatever was already on
// the stack. Go has no equivalent of "uninitialized", so the tail here
// is zero-filled instead, which still produces a fixed 104-byte
// PROGRAM_FLASH/ReadMemory record either side can compare byte for
// byte.
func BuildNetworkRecord(serial, bdiIP, subnetMask, gateway, hostIP, setupFileName string) ([]byte, error) {
	if len(serial) < 6 {
		return nil, fmt.Errorf("netconfig: serial number %q is too short to derive a MAC address", serial)
	}
	bcd := func(hi, lo byte) byte {
		return (hi - '0') * 16 + (lo - '0')
	}

	buf := make([]byte, 0, maxRecordSize)
	buf = append(buf, 0x00, 0x0C, 0x01)
	buf = append(buf, bcd(serial[0], serial[1]), bcd(serial[2], serial[3]), bcd(serial[4], serial[5]))
	buf = append(buf, 0xFF, 0xFF)

	for _, addr := range []string{bdiIP, subnetMask, gateway} {
		word, ok := ParseIPMotorola(addr)
		if !ok {
			return nil, fmt.Errorf("netconfig: invalid IPv4 address %q", addr)
		}
		buf = appendWord32(buf, word)
	}
	hostWord := uint32(inaddrNone)
	if word, ok := ParseIPMotorola(hostIP); ok {
		hostWord = word
	}
	buf = appendWord32(buf, hostWord)

	name := setupFileName
	if len(name) > maxFileNameLen {
		name = name[:maxFileNameLen]
	}
	buf = append(buf, []byte(name)...)
	buf = append(buf, 0x00)

	if len(buf) > maxRecordSize {
		return nil, fmt.Errorf("netconfig: record size %d exceeds %d bytes", len(buf), maxRecordSize)
	}
	record := make([]byte, maxRecordSize)
	copy(record, buf)
	return record, nil
}

func appendWord32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

// BuildRomConfig reads a setup file from disk for programming into the
// probe's configuration flash area. Returns an error if the file is
// too large for the configuration area.
func BuildRomConfig(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, linkerr.Wrap(linkerr.ErrFileAccess, "reading setup file", err)
	}
	if len(raw) >= maxConfigSize {
		return nil, linkerr.New(linkerr.ErrFileAccess, "setup file exceeds the configuration area size")
	}
	return raw, nil
}

// BuildRomRegdef scans a setup file's "[REGS]" section for
//
//	#<core> FILE <path>
//
// entries and concatenates the referenced register-definition files,
// each preceded by a one-byte core marker (0x80 | core, masked to 6
// bits). A path beginning with '$' resolves relative to setupPath's
// directory, matching BuildFileName's behavior in the original; any
// other path is used as given.
func BuildRomRegdef(setupPath string, config []byte) ([]byte, error) {
	out := make([]byte, 0, 4096)
	inRegs := false

	for _, rawLine := range splitLines(config) {
		line := strings.TrimLeft(rawLine, " \t")
		if line == "" {
			continue
		}

		keyword, rest := nextToken(line)
		if strings.HasPrefix(keyword, "[") {
			inRegs = keyword == "[REGS]"
			continue
		}
		if !inRegs {
			continue
		}

		core := 0
		if strings.HasPrefix(line, "#") {
			// the core number directly follows the '#', e.g. "#2 FILE path"
			coreTok, after := nextToken(line[1:])
			core, _ = strconv.Atoi(coreTok)
			keyword, rest = nextToken(after)
		}
		if keyword != "FILE" {
			continue
		}
		pathTok, _ := nextToken(rest)
		if pathTok == "" {
			continue
		}

		regdefName := pathTok
		if strings.HasPrefix(pathTok, "$") {
			regdefName = filepath.Join(filepath.Dir(setupPath), pathTok[1:])
		}
		data, err := os.ReadFile(regdefName)
		if err != nil {
			return nil, linkerr.Wrap(linkerr.ErrFileAccess, "reading register definition file", err)
		}
		out = append(out, 0x80|byte(core&0x3F))
		out = append(out, data...)
		if len(out) >= maxRegdefSize {
			return nil, linkerr.New(linkerr.ErrFileAccess, "register definitions exceed the regdef area size")
		}
	}
	return out, nil
}

// splitLines breaks config into text lines on CR/LF, the way
// BDI_ExtractLine's control-character scan does, but over a slice of
// known length instead of hunting for a 0xFF sentinel in a fixed C
// buffer.
func splitLines(config []byte) []string {
	return strings.FieldsFunc(string(config), func(r rune) bool {
		return r == '\r' || r == '\n'
	})
}

// nextToken extracts one whitespace- or semicolon-delimited token from
// the front of s, honoring double-quoted tokens, mirroring
// BDI_ExtractString.
func nextToken(s string) (token, rest string) {
	s = strings.TrimLeft(s, " \t")
	if s == "" {
		return "", ""
	}
	if s[0] == '"' {
		s = s[1:]
		end := strings.IndexByte(s, '"')
		if end < 0 {
			return s, ""
		}
		return s[:end], s[end+1:]
	}
	end := strings.IndexAny(s, " ;")
	if end < 0 {
		return s, ""
	}
	return s[:end], s[end:]
}
