// Package link implements the BDI loader's Link Session: baudrate
// negotiation, frame sequencing, retry, and the sticky-error latch,
// on top of either a serial or datagram Transport.
package link

import (
	"time"

	"github.com/daedaluz/bdiloader/internal/frame"
)

// Transport is the polymorphism point over the two wire carriers:
// serial (byte-stuffed, BCC-protected) and datagram (raw frames, no
// stuffing). Both present the same send/wait/close surface to Channel.
type Transport interface {
	SendFrame(f frame.Frame) error
	WaitFrame(timeout time.Duration) (frame.Frame, error)
	Close() error
}

// Dialer knows how to (re)open a Transport at a given decimal
// baudrate; only the serial transport uses the rate, but both
// implementations share the signature so Channel.Open can treat them
// uniformly during baudrate search.
type Dialer interface {
	Dial(baud int) (Transport, error)
}
