package config

import "testing"

func TestBaudrateKnownValues(t *testing.T) {
	cases := map[string]int{"9": 9600, "19": 19200, "38": 38400, "57": 57600, "115": 115200}
	for arg, want := range cases {
		got, err := Baudrate(arg)
		if err != nil {
			t.Fatalf("Baudrate(%q): %v", arg, err)
		}
		if got != want {
			t.Fatalf("Baudrate(%q) = %d, want %d", arg, got, want)
		}
	}
}

func TestBaudrateRejectsUnknown(t *testing.T) {
	if _, err := Baudrate("230"); err == nil {
		t.Fatal("expected an error for an unsupported baudrate code")
	}
}

func TestPortIsNetwork(t *testing.T) {
	if !PortIsNetwork("192.168.1.1") {
		t.Fatal("expected an IPv4 address to be treated as a network port")
	}
	if PortIsNetwork("/dev/ttyS0") {
		t.Fatal("expected a device path not to be treated as a network port")
	}
}
