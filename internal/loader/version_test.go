package loader

import "testing"

func TestParseVersionHS(t *testing.T) {
	raw := []byte{0x01, 0x01, 0x02, 0x2A, 0x03, 0x01, 0x00}
	v, err := parseVersion(0x01, raw)
	if err != nil {
		t.Fatalf("parseVersion: %v", err)
	}
	if v.Family != FamilyHS {
		t.Fatalf("Family = %v, want FamilyHS", v.Family)
	}
	if v.Serial != "" {
		t.Fatalf("Serial = %q, want empty (BDI-HS carries no serial field)", v.Serial)
	}
}

func TestParseVersion20RevC(t *testing.T) {
	raw := make([]byte, 17)
	raw[0] = 0x01
	copy(raw[7:15], "12345678")
	raw[15] = '-'
	raw[16] = 'C'
	v, err := parseVersion(0x01, raw)
	if err != nil {
		t.Fatalf("parseVersion: %v", err)
	}
	if v.Family != Family21 {
		t.Fatalf("Family = %v, want Family21", v.Family)
	}
	if v.Serial != "12345678" {
		t.Fatalf("Serial = %q", v.Serial)
	}
}

func TestParseVersion30SkipsUES(t *testing.T) {
	raw := make([]byte, 21)
	raw[0] = 0x01
	copy(raw[9:17], "ABCDEFGH")
	v, err := parseVersion(0x01, raw)
	if err != nil {
		t.Fatalf("parseVersion: %v", err)
	}
	if v.Family != Family30 {
		t.Fatalf("Family = %v, want Family30", v.Family)
	}
	if v.Logic != 0 {
		t.Fatalf("Logic = %d, want 0 (BDI3000 has no CPLD)", v.Logic)
	}
	if v.Serial != "ABCDEFGH" {
		t.Fatalf("Serial = %q", v.Serial)
	}
}

func TestParseVersionUnrecognizedLength(t *testing.T) {
	if _, err := parseVersion(0x01, make([]byte, 5)); err == nil {
		t.Fatal("expected an error for an unrecognized response length")
	}
}

func TestParseVersionWrongEchoedOpcode(t *testing.T) {
	raw := make([]byte, 7)
	raw[0] = 0x99
	if _, err := parseVersion(0x01, raw); err == nil {
		t.Fatal("expected an error when the echoed opcode does not match")
	}
}

func TestFirmwareTypeBDI3000(t *testing.T) {
	v := VersionInfo{Family: Family30, Firmware: 0x1234}
	if got := v.FirmwareType(); got != 0x12 {
		t.Fatalf("FirmwareType() = %#x, want 0x12", got)
	}
}

func TestFirmwareTypeLowRange(t *testing.T) {
	v := VersionInfo{Family: Family20, Firmware: 0x3456}
	if got := v.FirmwareType(); got != 0x3 {
		t.Fatalf("FirmwareType() = %#x, want 0x3", got)
	}
}

func TestFirmwareTypeHighRange(t *testing.T) {
	v := VersionInfo{Family: Family20, Firmware: 0xC512}
	if got := v.FirmwareType(); got != 0x05 {
		t.Fatalf("FirmwareType() = %#x, want 0x05", got)
	}
}

func TestFormatVersion(t *testing.T) {
	cases := map[uint16]string{
		0:   "unknown",
		256: "unknown",
		5:   "0.05",
		123: "1.23",
		255: "2.55",
	}
	for in, want := range cases {
		if got := FormatVersion(in); got != want {
			t.Fatalf("FormatVersion(%d) = %q, want %q", in, got, want)
		}
	}
}
