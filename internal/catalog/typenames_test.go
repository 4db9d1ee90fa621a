package catalog

import "testing"

func TestFirmwareTypeNameKnownAndUnknown(t *testing.T) {
	if got := FirmwareTypeName(0); got != "Firmware for CPU32" {
		t.Fatalf("FirmwareTypeName(0) = %q", got)
	}
	if got := FirmwareTypeName(999); got != "unknown firmware type" {
		t.Fatalf("FirmwareTypeName(999) = %q, want fallback", got)
	}
}

func TestLogicTypeNameKnownAndUnknown(t *testing.T) {
	if got := LogicTypeName(1102); got != "MPC8xx/MPC5xx" {
		t.Fatalf("LogicTypeName(1102) = %q", got)
	}
	if got := LogicTypeName(65000); got != "unknown logic type" {
		t.Fatalf("LogicTypeName(65000) = %q, want fallback", got)
	}
}
