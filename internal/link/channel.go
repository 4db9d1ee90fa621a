package link

import (
	"time"

	"github.com/daedaluz/bdiloader/internal/frame"
	"github.com/daedaluz/bdiloader/internal/linkerr"
)

// Kind discriminates the two transport variants a Channel can wrap.
type Kind int

const (
	KindSerial Kind = iota
	KindDatagram
)

// Channel is the transport-agnostic handle spec.md §3 describes: one
// connected Transport, the next outbound sequence counter, the
// current frame type in use, a retry counter for diagnostics, and a
// sticky error that once set rejects every further Transaction until
// the Channel is reopened. The reference implementation keeps a
// single process-wide Channel; here it is an owned value the caller
// threads through Loader Commands explicitly (see SPEC_FULL.md §9).
type Channel struct {
	Kind      Kind
	Baud      int
	transport Transport
	dialer    Dialer
	connected bool
	seq       byte
	frameType frame.Type
	retries   int
	sticky    error
}

// NewSerialChannel builds a Channel bound to a serial Dialer, not yet
// opened.
func NewSerialChannel(path string) *Channel {
	return &Channel{Kind: KindSerial, dialer: SerialDialer{Path: path}}
}

// NewDatagramChannel builds a Channel bound to a datagram Dialer, not
// yet opened.
func NewDatagramChannel(host string) *Channel {
	return &Channel{Kind: KindDatagram, dialer: DatagramDialer{Host: host}}
}

// NewChannel builds a Channel around an already-dialed Transport,
// skipping the dialer-driven baudrate search in Open. Used by tests
// and by callers that manage their own transport lifecycle.
func NewChannel(kind Kind, transport Transport) *Channel {
	return &Channel{Kind: kind, transport: transport, connected: true}
}

// Close releases the underlying transport and clears connected state.
// Per §5, this must run on every exit path including error paths.
func (c *Channel) Close() error {
	if c.transport == nil {
		return nil
	}
	err := c.transport.Close()
	c.transport = nil
	c.connected = false
	return err
}

// Retries reports the cumulative retry count since the Channel was
// last opened, for diagnostics only.
func (c *Channel) Retries() int {
	return c.retries
}

// resetLink sends a single LNK_RESET frame and waits for the probe's
// echo within the given timeout. Returns nil once an echo of any
// shape is observed: the caller (baudrate search or datagram Open)
// decides what the echo means.
func (c *Channel) resetLink(timeout time.Duration) error {
	f := frame.Frame{Seq: c.seq, Type: frame.Link, Payload: []byte{opLinkReset}}
	if err := c.transport.SendFrame(f); err != nil {
		return err
	}
	_, err := c.transport.WaitFrame(timeout)
	return err
}

const (
	opLinkReset       byte = 0x00
	opLinkSetBaudrate byte = 0x01
)

// sendBaudSet asks the probe to switch to the given decimal baudrate
// and returns the rate it actually confirmed.
func (c *Channel) sendBaudSet(baud int, timeout time.Duration) (int, error) {
	payload := []byte{opLinkSetBaudrate, byte(baud >> 24), byte(baud >> 16), byte(baud >> 8), byte(baud)}
	f := frame.Frame{Seq: c.seq, Type: frame.Link, Payload: payload}
	if err := c.transport.SendFrame(f); err != nil {
		return 0, err
	}
	reply, err := c.transport.WaitFrame(timeout)
	if err != nil {
		return 0, err
	}
	if len(reply.Payload) < 5 {
		return 0, linkerr.New(linkerr.ErrInvalidResponse, "short baudrate confirmation")
	}
	confirmed := int(reply.Payload[1])<<24 | int(reply.Payload[2])<<16 | int(reply.Payload[3])<<8 | int(reply.Payload[4])
	return confirmed, nil
}

// Connected reports whether Open has succeeded and Close has not yet
// been called.
func (c *Channel) Connected() bool {
	return c.connected
}

// StickyError returns the latched error, if any.
func (c *Channel) StickyError() error {
	return c.sticky
}
