package cpld

import (
	"strings"
	"testing"

	"github.com/daedaluz/bdiloader/internal/jedec"
	"github.com/daedaluz/bdiloader/internal/link"
	"github.com/daedaluz/bdiloader/internal/linktest"
	"github.com/daedaluz/bdiloader/internal/loader"
)

func newEngine(t *testing.T, family loader.Family, ft *linktest.FakeTransport) *Engine {
	t.Helper()
	ch := link.NewChannel(link.KindDatagram, ft)
	cmds := loader.New(ch)
	e, err := New(cmds, family)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestHex2UES(t *testing.T) {
	got := hex2UES("B3201E0042")
	want := "1011" + "0011" + "0010" + "0000" + "0001" + "1110" + "0000" + "0000" + "0100" + "0010"
	if got != want {
		t.Fatalf("hex2UES = %s, want %s", got, want)
	}
}

func TestHex2UESUnrecognizedCharMapsToZero(t *testing.T) {
	got := hex2UES("XXXXXXXXXX")
	if got != strings.Repeat("0000", 10) {
		t.Fatalf("hex2UES of unrecognized chars = %s, want all zero nibbles", got)
	}
}

func TestAscii2UES(t *testing.T) {
	got := ascii2UES("A", 2)
	// 'A' = 0x41 = 01000001, second char is padded with a zero byte.
	want := "01000001" + "00000000"
	if got != want {
		t.Fatalf("ascii2UES = %s, want %s", got, want)
	}
}

func TestNeedsUpdateForced(t *testing.T) {
	if !NeedsUpdate(100, 100, 500, true) {
		t.Fatal("forced update must always report true")
	}
}

func TestNeedsUpdateStaleAndCurrent(t *testing.T) {
	if !NeedsUpdate(0x0005, 0x0000, 20, false) {
		t.Fatal("expected update when loaded delta is older than the newest artifact")
	}
	if NeedsUpdate(0x0020, 0x0000, 20, false) {
		t.Fatal("expected no update when already at least as new as the newest artifact")
	}
}

func TestNeedsUpdateImplausibleDelta(t *testing.T) {
	if !NeedsUpdate(2000, 0, 0, false) {
		t.Fatal("expected update when delta exceeds the plausible logic-version range")
	}
}

func TestNewRejectsBDI3000(t *testing.T) {
	ch := link.NewChannel(link.KindDatagram, &linktest.FakeTransport{})
	cmds := loader.New(ch)
	if _, err := New(cmds, loader.Family30); err == nil {
		t.Fatal("expected an error: BDI3000 has no CPLD")
	}
}

func TestEraseAndCheckDeviceMismatch(t *testing.T) {
	ft := &linktest.FakeTransport{Replies: []linktest.ReplyFunc{
		linktest.Echo([]byte{byte(loader.OpISPEnable)}),
		linktest.Echo([]byte{byte(loader.OpISPReadID), deviceID2064}), // wrong ID for HS
		linktest.Echo([]byte{byte(loader.OpISPErase)}),
		linktest.Echo([]byte{byte(loader.OpISPEnable)}),
	}}
	e := newEngine(t, loader.FamilyHS, ft)
	err := e.EraseAndCheckDevice()
	if err == nil {
		t.Fatal("expected a device mismatch error")
	}
}

func TestEraseAndCheckDeviceMatch(t *testing.T) {
	ft := &linktest.FakeTransport{Replies: []linktest.ReplyFunc{
		linktest.Echo([]byte{byte(loader.OpISPEnable)}),
		linktest.Echo([]byte{byte(loader.OpISPReadID), deviceID2032}),
		linktest.Echo([]byte{byte(loader.OpISPErase)}),
		linktest.Echo([]byte{byte(loader.OpISPEnable)}),
	}}
	e := newEngine(t, loader.FamilyHS, ft)
	if err := e.EraseAndCheckDevice(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// fuseMapFixture builds synthetic JEDEC text for geom: each row's bits
// alternate 0/1, split across two lines the way the real files do, so
// jedec.Parse's bitRun-concatenation path is exercised the same way.
func fuseMapFixture(geom jedec.Geometry) string {
	var b strings.Builder
	b.WriteString("*L00000\n")
	rowBits := strings.Repeat("01", geom.RowBits/2)
	for row := 0; row < geom.Rows; row++ {
		half := geom.RowBits / 2
		b.WriteString(rowBits[:half])
		b.WriteString("*\n")
		b.WriteString(rowBits[half:])
		b.WriteString("*\n")
	}
	return b.String()
}

func TestUpdateFullSequence(t *testing.T) {
	geom := jedec.GeometryHS
	replies := []linktest.ReplyFunc{
		linktest.Echo([]byte{byte(loader.OpISPEnable)}),
	}
	rowBits := strings.Repeat("01", geom.RowBits/2)
	for row := 0; row < geom.Rows; row++ {
		replies = append(replies, linktest.Echo([]byte{byte(loader.OpISPProgramLine)}))
	}
	replies = append(replies, linktest.Echo([]byte{byte(loader.OpISPProgramUES)}))
	for row := 0; row < geom.Rows; row++ {
		payload := append([]byte{byte(loader.OpISPReadLine)}, []byte(rowBits+rowBits)...)
		replies = append(replies, linktest.Echo(payload))
	}
	ues := hex2UES("B3201E0001")
	replies = append(replies, linktest.Echo(append([]byte{byte(loader.OpISPReadUES)}, []byte(ues)...)))
	replies = append(replies, linktest.Echo([]byte{byte(loader.OpISPEnable)}))

	ft := &linktest.FakeTransport{Replies: replies}
	e := newEngine(t, loader.FamilyHS, ft)
	err := e.Update(1, strings.NewReader(fuseMapFixture(geom)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateRowMismatchFails(t *testing.T) {
	geom := jedec.GeometryHS
	replies := []linktest.ReplyFunc{
		linktest.Echo([]byte{byte(loader.OpISPEnable)}),
	}
	for row := 0; row < geom.Rows; row++ {
		replies = append(replies, linktest.Echo([]byte{byte(loader.OpISPProgramLine)}))
	}
	replies = append(replies, linktest.Echo([]byte{byte(loader.OpISPProgramUES)}))
	// First readback row reports all zeros: doesn't match the fixture's
	// alternating pattern, so verification should fail immediately.
	replies = append(replies, linktest.Echo(append([]byte{byte(loader.OpISPReadLine)}, []byte(strings.Repeat("0", geom.RowBits*2))...)))
	replies = append(replies, linktest.Echo([]byte{byte(loader.OpISPEnable)}))

	ft := &linktest.FakeTransport{Replies: replies}
	e := newEngine(t, loader.FamilyHS, ft)
	err := e.Update(1, strings.NewReader(fuseMapFixture(geom)))
	if err == nil {
		t.Fatal("expected a row verification error")
	}
}
