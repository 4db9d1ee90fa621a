package link

import (
	"time"

	"github.com/daedaluz/bdiloader/internal/frame"
	"github.com/daedaluz/bdiloader/internal/linkerr"
)

const maxSendAttempts = 5

// UseStdFrames switches the Channel's current frame type to STD; this
// is the type used by every Loader Command. Link-control operations
// (reset, baudrate set) instead build LNK frames directly.
func (c *Channel) UseStdFrames() {
	c.frameType = frame.Std
}

// Transaction sends cmd as a frame of the Channel's current frame
// type and waits for a matching reply, copying its payload into buf
// and returning the number of bytes copied. Implements spec.md §4.3's
// algorithm verbatim: ATT-triggered resends don't advance the
// sequence counter; sequence or length mismatches extend the
// command-time and resend; after maxSendAttempts the Channel gives up,
// and a STD-type exhaustion latches the sticky error.
func (c *Channel) Transaction(cmd []byte, buf []byte, commandTime time.Duration) (int, error) {
	if !c.connected || c.sticky != nil {
		if c.sticky != nil {
			return 0, c.sticky
		}
		return 0, linkerr.New(linkerr.ErrNotConnected, "channel not connected")
	}

	attempts := 0
	for attempts < maxSendAttempts {
		attempts++
		f := frame.Frame{Seq: c.seq, Type: c.frameType, Payload: cmd}
		timeout := c.transactionTimeout(len(cmd), commandTime)
		if err := c.transport.SendFrame(f); err != nil {
			c.retries++
			commandTime += 500 * time.Millisecond
			continue
		}
		reply, err := c.transport.WaitFrame(timeout)
		if err != nil {
			c.retries++
			commandTime += 500 * time.Millisecond
			continue
		}
		if reply.Type == frame.Att && len(reply.Payload) <= 1 {
			// Probe missed our frame: resend without advancing the counter.
			attempts--
			continue
		}
		if reply.Seq != c.seq {
			c.retries++
			commandTime += 500 * time.Millisecond
			continue
		}
		n := copy(buf, reply.Payload)
		if n != len(reply.Payload) {
			return 0, linkerr.New(linkerr.ErrAnswerTooBig, "reply larger than caller buffer")
		}
		c.seq = (c.seq + 1) & 0x03
		return n, nil
	}

	err := linkerr.New(linkerr.ErrNoResponse, "transaction exhausted retry budget")
	if c.frameType == frame.Std {
		c.sticky = err
	}
	return 0, err
}

// transactionTimeout computes the per-attempt deadline: for serial,
// a function of command length and baudrate; for datagram, a flat
// extra on top of commandTime.
func (c *Channel) transactionTimeout(cmdLen int, commandTime time.Duration) time.Duration {
	if c.Kind == KindSerial && c.Baud > 0 {
		ms := (cmdLen+1500)*10000/c.Baud + int(commandTime/time.Millisecond) + 200
		return time.Duration(ms) * time.Millisecond
	}
	return 100*time.Millisecond + commandTime
}
