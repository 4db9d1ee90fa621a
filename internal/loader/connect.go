package loader

import (
	"time"

	"github.com/daedaluz/bdiloader/internal/link"
	"github.com/daedaluz/bdiloader/internal/linkerr"
)

// Connect opens ch at baud, starts the loader, and reads its version,
// retrying the whole handshake up to three times the way
// BDI_ConnectLoader does. If START_LOADER echoes only its own opcode
// the loader was not yet active (the probe was still running its
// prior application); Connect then closes, waits 1s, and reopens
// before reading the version.
func Connect(ch *link.Channel, baud int) (*Commands, VersionInfo, error) {
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		if err := ch.Open(baud); err != nil {
			lastErr = err
			continue
		}
		cmds := New(ch)
		reply, err := cmds.StartLoader()
		if err != nil {
			ch.Close()
			lastErr = err
			continue
		}
		if len(reply) == 1 && reply[0] == byte(OpStartLoader) {
			ch.Close()
			time.Sleep(time.Second)
			if err := ch.Open(baud); err != nil {
				return nil, VersionInfo{}, err
			}
			cmds = New(ch)
		}
		version, err := cmds.ReadVersion()
		if err != nil {
			ch.Close()
			return nil, VersionInfo{}, err
		}
		return cmds, version, nil
	}
	if lastErr == nil {
		lastErr = linkerr.New(linkerr.ErrTransportOpen, "connect retries exhausted")
	}
	return nil, VersionInfo{}, lastErr
}
