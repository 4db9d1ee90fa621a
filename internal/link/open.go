package link

import (
	"time"

	"github.com/daedaluz/bdiloader/internal/linkerr"
	"github.com/daedaluz/bdiloader/serial"
)

// slipEscape is the fixed two-byte nudge sent before each LNK_RESET
// attempt during baudrate search. The original sends this buffer
// uninitialized (SPEC_FULL.md §9, Open Question (b)); this
// implementation uses the documented deterministic choice.
var slipEscape = [2]byte{0xC0, 0xC0}

// Open negotiates the link. For serial it implements the baudrate
// search described in spec.md §4.3 as an explicit finite state
// machine: for each candidate rate, fastest first, dial at that rate,
// send the SLIP-escape nudge, send LNK_RESET, and listen for an echo.
// Once a rate echoes, it requests baud (the caller's preferred rate)
// via LNK_SET_BAUDRATE, re-reads the confirmed rate, reprograms the
// host to it, and re-sends LNK_RESET to confirm. For datagram it
// sends LNK_RESET up to six times with 500ms waits.
func (c *Channel) Open(baud int) error {
	c.sticky = nil
	c.retries = 0
	c.seq = 0
	c.frameType = 0

	switch c.Kind {
	case KindSerial:
		return c.openSerial(baud)
	case KindDatagram:
		return c.openDatagram()
	default:
		return linkerr.New(linkerr.ErrInvalidParameter, "unknown channel kind")
	}
}

func (c *Channel) openSerial(requested int) error {
	candidates := serial.Baudrates()
	var lastErr error
	for _, trying := range candidates {
		transport, err := c.dialer.Dial(trying)
		if err != nil {
			lastErr = err
			continue
		}
		c.transport = transport
		if _, werr := writeRaw(transport, slipEscape[:]); werr != nil {
			lastErr = werr
			transport.Close()
			c.transport = nil
			continue
		}
		time.Sleep(50 * time.Millisecond)
		if err := c.resetLink(300 * time.Millisecond); err != nil {
			lastErr = err
			transport.Close()
			c.transport = nil
			continue
		}

		// Echo confirmed at `trying`. Ask the probe to move to the
		// caller's requested rate.
		st := transport.(*serialTransport)
		confirmed, err := c.sendBaudSet(requested, 300*time.Millisecond)
		if err != nil {
			// Probe only understands the rate it's already at; settle there.
			c.Baud = trying
			c.connected = true
			return nil
		}
		if err := st.Reopen(confirmed); err != nil {
			c.transport.Close()
			c.transport = nil
			return linkerr.Wrap(linkerr.ErrSerialSetup, "reprogram host baudrate", err)
		}
		time.Sleep(300 * time.Millisecond)
		if err := c.resetLink(300 * time.Millisecond); err != nil {
			c.transport.Close()
			c.transport = nil
			return linkerr.Wrap(linkerr.ErrTimeout, "confirm link at new baudrate", err)
		}
		c.Baud = confirmed
		c.connected = true
		return nil
	}
	if lastErr == nil {
		lastErr = linkerr.New(linkerr.ErrTransportOpen, "no candidate baudrate available")
	}
	return linkerr.Wrap(linkerr.ErrTransportOpen, "baudrate search exhausted", lastErr)
}

func (c *Channel) openDatagram() error {
	transport, err := c.dialer.Dial(0)
	if err != nil {
		return err
	}
	c.transport = transport
	var lastErr error
	for attempt := 0; attempt < 6; attempt++ {
		if err := c.resetLink(500 * time.Millisecond); err == nil {
			c.connected = true
			return nil
		} else {
			lastErr = err
		}
	}
	transport.Close()
	c.transport = nil
	return linkerr.Wrap(linkerr.ErrSocketTimeout, "datagram link reset exhausted", lastErr)
}

func writeRaw(t Transport, data []byte) (int, error) {
	type rawWriter interface {
		writeBytes([]byte) (int, error)
	}
	if rw, ok := t.(rawWriter); ok {
		return rw.writeBytes(data)
	}
	return len(data), nil
}
