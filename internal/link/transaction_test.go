package link

import (
	"testing"
	"time"

	"github.com/daedaluz/bdiloader/internal/frame"
)

// fakeTransport lets tests script a sequence of replies (or errors)
// without touching real I/O.
type fakeTransport struct {
	replies []func(sent frame.Frame) (frame.Frame, error)
	sent    []frame.Frame
}

func (f *fakeTransport) SendFrame(fr frame.Frame) error {
	f.sent = append(f.sent, fr)
	return nil
}

func (f *fakeTransport) WaitFrame(time.Duration) (frame.Frame, error) {
	idx := len(f.sent) - 1
	if idx >= len(f.replies) {
		return frame.Frame{}, errNoScript
	}
	return f.replies[idx](f.sent[idx])
}

func (f *fakeTransport) Close() error { return nil }

var errNoScript = fakeErr("no scripted reply")

type fakeErr string

func (e fakeErr) Error() string { return string(e) }

func newTestChannel(t *fakeTransport) *Channel {
	c := &Channel{Kind: KindDatagram, Baud: 0}
	c.transport = t
	c.connected = true
	c.frameType = frame.Std
	return c
}

func TestTransactionSequenceIncrementsOncePerSTDFrame(t *testing.T) {
	ft := &fakeTransport{replies: []func(frame.Frame) (frame.Frame, error){
		func(sent frame.Frame) (frame.Frame, error) {
			return frame.Frame{Seq: sent.Seq, Type: frame.Std, Payload: []byte{0xAA}}, nil
		},
	}}
	c := newTestChannel(ft)
	buf := make([]byte, 8)
	n, err := c.Transaction([]byte{0x01}, buf, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 || buf[0] != 0xAA {
		t.Fatalf("unexpected reply payload: n=%d buf=%v", n, buf[:n])
	}
	if c.seq != 1 {
		t.Fatalf("sequence counter = %d, want 1", c.seq)
	}

	// second transaction should increment again, not reset
	n, err = c.Transaction([]byte{0x02}, buf, 0)
	if err != nil {
		t.Fatalf("unexpected error on 2nd transaction: %v", err)
	}
	_ = n
	if c.seq != 2 {
		t.Fatalf("sequence counter after 2nd transaction = %d, want 2", c.seq)
	}
}

func TestTransactionATTReplayDoesNotAdvanceCounter(t *testing.T) {
	calls := 0
	ft := &fakeTransport{replies: []func(frame.Frame) (frame.Frame, error){
		func(sent frame.Frame) (frame.Frame, error) {
			calls++
			if calls == 1 {
				return frame.Frame{Type: frame.Att, Payload: nil}, nil
			}
			return frame.Frame{Seq: sent.Seq, Type: frame.Std, Payload: []byte{0x01}}, nil
		},
		func(sent frame.Frame) (frame.Frame, error) {
			return frame.Frame{Seq: sent.Seq, Type: frame.Std, Payload: []byte{0x01}}, nil
		},
	}}
	c := newTestChannel(ft)
	buf := make([]byte, 4)
	startSeq := c.seq
	n, err := c.Transaction([]byte{0x01}, buf, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Fatalf("n = %d, want 1", n)
	}
	if c.seq != (startSeq+1)&0x03 {
		t.Fatalf("sequence counter incremented more than once across ATT replay: got %d", c.seq)
	}
}

func TestTransactionExhaustionLatchesStickyOnSTD(t *testing.T) {
	ft := &fakeTransport{replies: nil} // every WaitFrame call fails
	c := newTestChannel(ft)
	buf := make([]byte, 4)
	_, err := c.Transaction([]byte{0x01}, buf, 0)
	if err == nil {
		t.Fatal("expected error after exhausting retry budget")
	}
	if c.sticky == nil {
		t.Fatal("expected sticky error to be latched for STD frame exhaustion")
	}

	// A further Transaction must fail without performing I/O.
	sentBefore := len(ft.sent)
	_, err2 := c.Transaction([]byte{0x02}, buf, 0)
	if err2 == nil {
		t.Fatal("expected sticky error to reject subsequent transaction")
	}
	if len(ft.sent) != sentBefore {
		t.Fatalf("sticky channel performed I/O: sent count went from %d to %d", sentBefore, len(ft.sent))
	}
}
