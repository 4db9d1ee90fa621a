// Package linktest provides a scripted link.Transport double shared
// by the Loader Command consumers' tests (flashupdate, cpld, netconfig),
// so each package doesn't reinvent a fake serial/datagram link.
package linktest

import (
	"fmt"
	"time"

	"github.com/daedaluz/bdiloader/internal/frame"
)

// ReplyFunc builds the frame a FakeTransport answers a sent frame
// with. Receiving the sent frame lets the script echo its Seq back,
// the way a real probe does.
type ReplyFunc func(sent frame.Frame) (frame.Frame, error)

// FakeTransport answers Transaction calls from a fixed script, one
// ReplyFunc per SendFrame/WaitFrame round trip, in order.
type FakeTransport struct {
	Sent    []frame.Frame
	Replies []ReplyFunc
	idx     int
}

func (t *FakeTransport) SendFrame(f frame.Frame) error {
	t.Sent = append(t.Sent, f)
	return nil
}

func (t *FakeTransport) WaitFrame(timeout time.Duration) (frame.Frame, error) {
	if t.idx >= len(t.Replies) {
		return frame.Frame{}, fmt.Errorf("linktest: no scripted reply for round %d", t.idx)
	}
	fn := t.Replies[t.idx]
	t.idx++
	return fn(t.Sent[len(t.Sent)-1])
}

func (t *FakeTransport) Close() error { return nil }

// Echo builds a ReplyFunc that answers with a fixed STD payload,
// ignoring the sent frame's content but matching its Seq.
func Echo(payload []byte) ReplyFunc {
	return func(sent frame.Frame) (frame.Frame, error) {
		return frame.Frame{Seq: sent.Seq, Type: frame.Std, Payload: payload}, nil
	}
}
