package srec

import (
	"strings"
	"testing"
)

func TestDecodeDataRecord(t *testing.T) {
	line := strings.ReplaceAll("S1130000 7C6F1B78 7C6E1B78 7C6D1B78 7C6C1B78 FA", " ", "")
	rec, err := Decode(line)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Address != 0x0000 {
		t.Fatalf("address = %#x, want 0", rec.Address)
	}
	if len(rec.Data) != 16 {
		t.Fatalf("data length = %d, want 16", len(rec.Data))
	}
}

func TestDecodeNonDataRecordsSkipped(t *testing.T) {
	for _, typ := range []byte{'0', '5', '7', '8', '9'} {
		line := "S" + string(typ) + "030000FC"
		rec, err := Decode(line)
		if err != nil {
			t.Fatalf("type S%c: unexpected error: %v", typ, err)
		}
		if len(rec.Data) != 0 {
			t.Fatalf("type S%c: expected zero-length data, got %v", typ, rec.Data)
		}
	}
}

func TestDecodeCorruptionFails(t *testing.T) {
	good := strings.ReplaceAll("S1130000 7C6F1B78 7C6E1B78 7C6D1B78 7C6C1B78 FA", " ", "")
	if _, err := Decode(good); err != nil {
		t.Fatalf("baseline record should decode cleanly: %v", err)
	}

	corruptAt := func(pos int, with byte) string {
		b := []byte(good)
		b[pos] = with
		return string(b)
	}

	cases := []int{2, 3, 4, 5, len(good) - 1, len(good) - 2}
	for _, pos := range cases {
		orig := good[pos]
		repl := byte('0')
		if orig == '0' {
			repl = '1'
		}
		corrupted := corruptAt(pos, repl)
		if _, err := Decode(corrupted); err == nil {
			t.Fatalf("corrupting byte at %d did not fail decode", pos)
		}
	}
}
