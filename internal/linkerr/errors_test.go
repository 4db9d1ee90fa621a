package linkerr

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewMessage(t *testing.T) {
	e := New(ErrFlashErase, "erase failed")
	if e.Error() != "erase failed" {
		t.Fatalf("Error() = %q, want %q", e.Error(), "erase failed")
	}
}

func TestWrapMessageAndCause(t *testing.T) {
	cause := errors.New("device not responding")
	e := Wrap(ErrTimeout, "reading version", cause)
	want := "reading version: device not responding"
	if e.Error() != want {
		t.Fatalf("Error() = %q, want %q", e.Error(), want)
	}
	if !errors.Is(e, cause) {
		t.Fatal("expected errors.Is to unwrap to the cause")
	}
}

func TestWrapNilCauseReturnsNil(t *testing.T) {
	if Wrap(ErrTimeout, "msg", nil) != nil {
		t.Fatal("Wrap with a nil cause must return nil")
	}
}

func TestStickyClassifiesRetryExhaustion(t *testing.T) {
	sticky := []Code{ErrNoResponse, ErrTimeout, ErrFormat, ErrChecksum, ErrOverflow, ErrTransmit}
	for _, c := range sticky {
		if !Sticky(New(c, "")) {
			t.Fatalf("expected %v to be sticky", c)
		}
	}
	if Sticky(New(ErrInvalidParameter, "")) {
		t.Fatal("ErrInvalidParameter should not be sticky")
	}
	if Sticky(errors.New("plain error")) {
		t.Fatal("a non-linkerr error should never be sticky")
	}
}

func TestExitCode(t *testing.T) {
	if ExitCode(nil) != 0 {
		t.Fatal("ExitCode(nil) should be 0")
	}
	if ExitCode(New(ErrFlashErase, "x")) != int(ErrFlashErase) {
		t.Fatalf("ExitCode should forward the linkerr.Error's Code")
	}
	if ExitCode(errors.New("plain")) != 1 {
		t.Fatal("ExitCode of a non-linkerr error should be 1")
	}
}

func TestExitCodeUnwrapsFmtErrorfChain(t *testing.T) {
	wrapped := fmt.Errorf("netconfig: erase network sector: %w", New(ErrFlashErase, "erase failed"))
	if ExitCode(wrapped) != int(ErrFlashErase) {
		t.Fatalf("ExitCode should find the linkerr.Error behind a fmt.Errorf %%w chain")
	}
}
