package link

import (
	"time"

	"github.com/daedaluz/bdiloader/internal/frame"
	"github.com/daedaluz/bdiloader/internal/linkerr"
	"github.com/daedaluz/bdiloader/serial"
)

// SerialDialer opens the named device at a requested baudrate.
type SerialDialer struct {
	Path string
}

func (d SerialDialer) Dial(baud int) (Transport, error) {
	port, err := serial.OpenBDI(d.Path, baud, 10*time.Millisecond)
	if err != nil {
		return nil, linkerr.Wrap(linkerr.ErrTransportOpen, "open serial port", err)
	}
	return &serialTransport{port: port, baud: baud}, nil
}

// serialTransport byte-stuffs every frame with DLE/STX...DLE/ETX/BCC
// and reads the wire one byte at a time, feeding an Unstuffer.
type serialTransport struct {
	port *serial.Port
	baud int
}

func (t *serialTransport) SendFrame(f frame.Frame) error {
	raw, err := frame.Encode(f)
	if err != nil {
		return linkerr.Wrap(linkerr.ErrOverflow, "encode frame", err)
	}
	stuffed := frame.StuffEncode(raw)
	for written := 0; written < len(stuffed); {
		n, err := t.port.Write(stuffed[written:])
		if err != nil {
			return linkerr.Wrap(linkerr.ErrTransmit, "write serial frame", err)
		}
		written += n
	}
	return nil
}

// WaitFrame reads bytes off the serial port until a full frame has
// been unstuffed or the deadline passes.
func (t *serialTransport) WaitFrame(timeout time.Duration) (frame.Frame, error) {
	u := frame.NewUnstuffer()
	deadline := time.Now().Add(timeout)
	buf := make([]byte, 1)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return frame.Frame{}, linkerr.New(linkerr.ErrTimeout, "serial frame wait timed out")
		}
		n, err := t.port.ReadTimeout(buf, remaining)
		if err != nil {
			return frame.Frame{}, linkerr.Wrap(linkerr.ErrTimeout, "read serial byte", err)
		}
		if n == 0 {
			continue
		}
		raw, done, err := u.Feed(buf[0])
		if err != nil {
			return frame.Frame{}, linkerr.Wrap(linkerr.ErrFormat, "unstuff serial frame", err)
		}
		if !done {
			continue
		}
		if len(raw) < 2 {
			return frame.Frame{}, linkerr.New(linkerr.ErrFormat, "serial frame too short")
		}
		seq, typ, length := frame.Decode(raw[0], raw[1])
		payload := raw[2:]
		if length != len(payload) {
			return frame.Frame{}, linkerr.New(linkerr.ErrFormat, "serial frame length mismatch")
		}
		return frame.Frame{Seq: seq, Type: typ, Payload: payload}, nil
	}
}

func (t *serialTransport) Close() error {
	return t.port.Close()
}

// writeBytes sends unframed bytes directly -- used only for the
// SLIP-escape nudge during baudrate search, which is not itself a
// link-layer frame.
func (t *serialTransport) writeBytes(data []byte) (int, error) {
	written := 0
	for written < len(data) {
		n, err := t.port.Write(data[written:])
		if err != nil {
			return written, linkerr.Wrap(linkerr.ErrTransmit, "write raw bytes", err)
		}
		written += n
	}
	return written, nil
}

// Reopen reconfigures the already-open port to a new baudrate without
// closing the underlying file descriptor, matching the original's
// re-program-in-place behavior after a confirmed LNK_SET_BAUDRATE.
func (t *serialTransport) Reopen(baud int) error {
	speed, ok := serial.SpeedFlag(baud)
	if !ok {
		return linkerr.New(linkerr.ErrSerialSetup, "unsupported baudrate")
	}
	if err := t.port.SetSpeed(speed); err != nil {
		return linkerr.Wrap(linkerr.ErrSerialSetup, "reprogram baudrate", err)
	}
	t.baud = baud
	return nil
}
