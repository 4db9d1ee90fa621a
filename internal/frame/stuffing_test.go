package frame

import (
	"bytes"
	"testing"
)

func decodeAll(t *testing.T, stuffed []byte) []byte {
	t.Helper()
	u := NewUnstuffer()
	for i, b := range stuffed {
		out, done, err := u.Feed(b)
		if err != nil {
			t.Fatalf("byte %d: unexpected error: %v", i, err)
		}
		if done {
			if i != len(stuffed)-1 {
				t.Fatalf("frame completed early at byte %d of %d", i, len(stuffed))
			}
			return out
		}
	}
	t.Fatal("frame never completed")
	return nil
}

func TestStuffRoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0x00},
		{0x10},
		{0x10, 0x10, 0x02, 0x03},
		bytes.Repeat([]byte{0xAA, 0x55}, 64),
		{0x01, 0x02, 0x03, 0xFF, 0x10, 0x00, 0x10},
	}
	for _, raw := range cases {
		stuffed := StuffEncode(raw)
		for i := 0; i+1 < len(stuffed); i++ {
			if stuffed[i] == dle {
				switch stuffed[i+1] {
				case dle:
					i++ // skip the second DLE of a doubled pair
				case stx, etx:
				default:
					t.Fatalf("raw %v: bare DLE not followed by DLE/STX/ETX at %d: %v", raw, i, stuffed)
				}
			}
		}
		got := decodeAll(t, stuffed)
		if !bytes.Equal(got, raw) {
			t.Fatalf("round trip mismatch: raw=%v stuffed=%v got=%v", raw, stuffed, got)
		}
	}
}

func TestUnstuffBadChecksum(t *testing.T) {
	raw := []byte{0x01, 0x02, 0x03}
	stuffed := StuffEncode(raw)
	stuffed[len(stuffed)-1] ^= 0xFF
	u := NewUnstuffer()
	var lastErr error
	for _, b := range stuffed {
		_, done, err := u.Feed(b)
		if err != nil {
			lastErr = err
			break
		}
		if done {
			t.Fatal("expected checksum failure, got successful decode")
		}
	}
	if lastErr != ErrChecksum {
		t.Fatalf("expected ErrChecksum, got %v", lastErr)
	}
}

func TestControlByteEncoding(t *testing.T) {
	for length := 0; length <= MaxPayload; length += 131 {
		f := Frame{Seq: 2, Type: Std, Payload: make([]byte, length)}
		raw, err := Encode(f)
		if err != nil {
			t.Fatalf("length %d: %v", length, err)
		}
		seq, typ, gotLen := Decode(raw[0], raw[1])
		if seq != 2 || typ != Std || gotLen != length {
			t.Fatalf("length %d: decode mismatch seq=%d type=%d len=%d", length, seq, typ, gotLen)
		}
	}
}

func TestFrameTypeValues(t *testing.T) {
	// spec: LNK=0, ATT=1<<3=8, STD=2<<3=16 as they appear in the control byte
	if (Frame{Type: Link}).Control() != 0 {
		t.Fatal("LNK control nonzero for empty payload")
	}
	if (Frame{Type: Att}).Control() != 0x08 {
		t.Fatalf("ATT control = %#x, want 0x08", Frame{Type: Att}.Control())
	}
	if (Frame{Type: Std}).Control() != 0x10 {
		t.Fatalf("STD control = %#x, want 0x10", Frame{Type: Std}.Control())
	}
}

func TestEncodeOverflow(t *testing.T) {
	_, err := Encode(Frame{Payload: make([]byte, MaxPayload+1)})
	if err == nil {
		t.Fatal("expected overflow error")
	}
}
