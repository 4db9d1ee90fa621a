package serial

import (
	"fmt"
	"time"
)

// bdiBaudTable maps the probe's supported decimal baudrates to the
// termios speed constants used to program the host UART.
var bdiBaudTable = map[int]CFlag{
	9600:   B9600,
	19200:  B19200,
	38400:  B38400,
	57600:  B57600,
	115200: B115200,
}

// SpeedFlag looks up the termios speed constant for one of the
// probe's supported decimal baudrates.
func SpeedFlag(baud int) (CFlag, bool) {
	speed, ok := bdiBaudTable[baud]
	return speed, ok
}

// OpenBDI opens a serial device for BDI link traffic: 8N1, no flow
// control, raw mode, byte-granular reads bounded by readTimeout.
func OpenBDI(path string, baud int, readTimeout time.Duration) (*Port, error) {
	speed, ok := SpeedFlag(baud)
	if !ok {
		return nil, fmt.Errorf("unsupported baudrate %d", baud)
	}
	port, err := Open(path, NewOptions().SetReadTimeout(readTimeout))
	if err != nil {
		return nil, err
	}
	if err := port.SetSpeed(speed); err != nil {
		port.Close()
		return nil, err
	}
	return port, nil
}

// SetSpeed reconfigures the port's termios to the given baudrate,
// flushing pending I/O the way the reference loader does after every
// attribute change.
func (p *Port) SetSpeed(speed CFlag) error {
	attrs, err := p.GetAttr()
	if err != nil {
		return err
	}
	attrs.MakeRaw()
	attrs.Cflag &= ^(CSTOPB | PARENB | CRTSCTS)
	attrs.Iflag &= ^IXOFF
	attrs.Cflag |= CS8 | CLOCAL | CREAD
	attrs.SetSpeed(speed)
	attrs.Cc[VMIN] = 0
	attrs.Cc[VTIME] = 1
	if err := p.SetAttr(TCSANOW, attrs); err != nil {
		return err
	}
	return p.Flush(TCIOFLUSH)
}

// Baudrates lists the decimal rates the link layer will try during
// baudrate negotiation, fastest first as the 115200 setting is
// best-effort and falls back to 57600.
func Baudrates() []int {
	return []int{115200, 57600, 38400, 19200, 9600}
}
