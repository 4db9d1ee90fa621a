package frame

import "fmt"

const (
	dle byte = 0x10
	stx byte = 0x02
	etx byte = 0x03
)

// ErrFormat is returned when the inbound byte stream does not match
// the DLE/STX...DLE/ETX/BCC envelope.
var ErrFormat = fmt.Errorf("frame: malformed framing")

// ErrOverflow is returned when an inbound frame's payload would
// exceed MaxPayload.
var ErrOverflow = fmt.Errorf("frame: payload overflow")

// ErrChecksum is returned when the trailing BCC does not match the
// XOR of the received control/length/payload bytes.
var ErrChecksum = fmt.Errorf("frame: bad checksum")

// StuffEncode wraps control+length+payload (as produced by Encode)
// with DLE STX ... DLE ETX BCC, doubling every DLE byte it meets
// (including the trailing BCC, should it equal DLE itself).
func StuffEncode(raw []byte) []byte {
	out := make([]byte, 0, len(raw)*2+5)
	out = append(out, dle, stx)
	var bcc byte
	for _, b := range raw {
		bcc ^= b
		out = append(out, b)
		if b == dle {
			out = append(out, dle)
		}
	}
	out = append(out, dle, etx, bcc)
	if bcc == dle {
		out = append(out, dle)
	}
	return out
}

const (
	stateWaitDLE = iota
	stateWaitSTX
	stateBody
	stateBodyEsc
	stateWantBCC
	stateMaybeBCCEsc
)

// Unstuffer incrementally reconstructs a DLE-stuffed frame from bytes
// fed one at a time by the serial transport's read loop.
type Unstuffer struct {
	state   int
	raw     []byte
	bccByte byte
}

// NewUnstuffer returns a fresh decoder ready to scan for DLE STX.
func NewUnstuffer() *Unstuffer {
	return &Unstuffer{state: stateWaitDLE}
}

// Feed consumes one received byte. It returns (raw, true, nil) once a
// complete, checksum-valid frame has been assembled; (nil, false,
// nil) while more bytes are needed; or a non-nil error on malformed
// framing. On error the caller should discard the Unstuffer and start
// over scanning for the next DLE STX.
func (u *Unstuffer) Feed(b byte) ([]byte, bool, error) {
	switch u.state {
	case stateWaitDLE:
		if b == dle {
			u.state = stateWaitSTX
		}
		return nil, false, nil

	case stateWaitSTX:
		switch b {
		case stx:
			u.state = stateBody
			u.raw = u.raw[:0]
		case dle:
			// stay put: DLE DLE while hunting for STX
		default:
			u.state = stateWaitDLE
			return nil, false, ErrFormat
		}
		return nil, false, nil

	case stateBody:
		if b == dle {
			u.state = stateBodyEsc
			return nil, false, nil
		}
		return nil, false, u.appendBody(b)

	case stateBodyEsc:
		switch b {
		case dle:
			u.state = stateBody
			return nil, false, u.appendBody(dle)
		case etx:
			u.state = stateWantBCC
			return nil, false, nil
		default:
			u.state = stateWaitDLE
			return nil, false, ErrFormat
		}

	case stateWantBCC:
		u.bccByte = b
		if b == dle {
			u.state = stateMaybeBCCEsc
			return nil, false, nil
		}
		u.state = stateWaitDLE
		return u.finish()

	case stateMaybeBCCEsc:
		// A BCC equal to DLE is itself doubled; consume the doubling
		// byte and complete regardless of what follows.
		u.state = stateWaitDLE
		return u.finish()
	}
	return nil, false, nil
}

func (u *Unstuffer) appendBody(b byte) error {
	u.raw = append(u.raw, b)
	if len(u.raw) > MaxPayload+2 {
		u.state = stateWaitDLE
		return ErrOverflow
	}
	return nil
}

func (u *Unstuffer) finish() ([]byte, bool, error) {
	var bcc byte
	for _, b := range u.raw {
		bcc ^= b
	}
	if bcc != u.bccByte {
		return nil, false, ErrChecksum
	}
	out := make([]byte, len(u.raw))
	copy(out, u.raw)
	return out, true, nil
}
