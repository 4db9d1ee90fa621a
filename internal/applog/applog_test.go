package applog

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestInfoWritesFormattedMessage(t *testing.T) {
	var buf bytes.Buffer
	orig := infoLog
	infoLog = log.New(&buf, "", 0)
	defer func() { infoLog = orig }()

	Info("Programming firmware with %s", "b20copgd.102")
	if !strings.Contains(buf.String(), "Programming firmware with b20copgd.102") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestWarnAndErrorPrefixes(t *testing.T) {
	var wbuf, ebuf bytes.Buffer
	origWarn, origErr := warnLog, errLog
	warnLog = log.New(&wbuf, "warning: ", 0)
	errLog = log.New(&ebuf, "error: ", 0)
	defer func() { warnLog, errLog = origWarn, origErr }()

	Warn("CPLD is already up to date")
	Error("connecting to BDI loader failed (%d)", -5)

	if !strings.HasPrefix(wbuf.String(), "warning: ") {
		t.Fatalf("warn output missing prefix: %q", wbuf.String())
	}
	if !strings.Contains(ebuf.String(), "-5") {
		t.Fatalf("error output missing formatted arg: %q", ebuf.String())
	}
}
