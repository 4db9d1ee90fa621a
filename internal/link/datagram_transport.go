package link

import (
	"net"
	"time"

	"github.com/daedaluz/bdiloader/internal/frame"
	"github.com/daedaluz/bdiloader/internal/linkerr"
	"github.com/daedaluz/fdev/poll"
	"golang.org/x/sys/unix"
)

// DatagramPort is the probe's fixed UDP service port.
const DatagramPort = 2001

// DatagramDialer resolves a hostname/IP and connects a UDP socket to
// DatagramPort. The baud argument is accepted to satisfy Dialer but
// is meaningless for datagram transport.
type DatagramDialer struct {
	Host string
}

func (d DatagramDialer) Dial(int) (Transport, error) {
	addr, err := net.ResolveIPAddr("ip4", d.Host)
	if err != nil {
		return nil, linkerr.Wrap(linkerr.ErrSocket, "resolve host", err)
	}
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM, unix.IPPROTO_UDP)
	if err != nil {
		return nil, linkerr.Wrap(linkerr.ErrSocket, "create socket", err)
	}
	if err := unix.SetNonblock(fd, true); err != nil {
		unix.Close(fd)
		return nil, linkerr.Wrap(linkerr.ErrSocket, "set nonblocking", err)
	}
	var sa unix.SockaddrInet4
	copy(sa.Addr[:], addr.IP.To4())
	sa.Port = DatagramPort
	if err := unix.Connect(fd, &sa); err != nil {
		unix.Close(fd)
		return nil, linkerr.Wrap(linkerr.ErrSocket, "connect socket", err)
	}
	return &datagramTransport{fd: fd}, nil
}

// datagramTransport sends/receives raw (unstuffed) frames over a
// connected, non-blocking UDP socket, waiting for readiness with the
// teacher's poll.WaitInput before each non-blocking receive -- the
// Go-native analogue of the original's select()-then-recv() loop.
type datagramTransport struct {
	fd int
}

func (t *datagramTransport) SendFrame(f frame.Frame) error {
	raw, err := frame.Encode(f)
	if err != nil {
		return linkerr.Wrap(linkerr.ErrOverflow, "encode frame", err)
	}
	if err := unix.Send(t.fd, raw, 0); err != nil {
		return linkerr.Wrap(linkerr.ErrSocket, "send datagram", err)
	}
	return nil
}

func (t *datagramTransport) WaitFrame(timeout time.Duration) (frame.Frame, error) {
	deadline := time.Now().Add(timeout)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return frame.Frame{}, linkerr.New(linkerr.ErrSocketTimeout, "datagram wait timed out")
		}
		if err := poll.WaitInput(t.fd, remaining); err != nil {
			return frame.Frame{}, linkerr.Wrap(linkerr.ErrSocketTimeout, "datagram wait timed out", err)
		}
		buf := make([]byte, frame.MaxPayload+2)
		nread, _, err := unix.Recvfrom(t.fd, buf, 0)
		if err != nil {
			if err == unix.EAGAIN {
				continue
			}
			return frame.Frame{}, linkerr.Wrap(linkerr.ErrSocket, "recvfrom", err)
		}
		if nread < 2 {
			return frame.Frame{}, linkerr.New(linkerr.ErrFormat, "datagram frame too short")
		}
		raw := buf[:nread]
		seq, typ, length := frame.Decode(raw[0], raw[1])
		payload := raw[2:]
		if length != len(payload) {
			return frame.Frame{}, linkerr.New(linkerr.ErrFormat, "datagram frame length mismatch")
		}
		return frame.Frame{Seq: seq, Type: typ, Payload: payload}, nil
	}
}

func (t *datagramTransport) Close() error {
	return unix.Close(t.fd)
}
