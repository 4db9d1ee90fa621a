package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/daedaluz/bdiloader/internal/loader"
)

func TestIndexKnownCombinations(t *testing.T) {
	cases := []struct {
		app  App
		cpu  CPU
		want int
	}{
		{AppGDB, CPUMPC800, 13},
		{AppACC, CPUCPU32, 0},
		{AppADA, CPUMPC800, 3},
	}
	for _, c := range cases {
		got, err := Index(c.app, c.cpu)
		if err != nil {
			t.Fatalf("Index(%v, %v): %v", c.app, c.cpu, err)
		}
		if got != c.want {
			t.Fatalf("Index(%v, %v) = %d, want %d", c.app, c.cpu, got, c.want)
		}
	}
}

func TestIndexUnsupportedCombination(t *testing.T) {
	if _, err := Index(AppADA, CPUARM); err == nil {
		t.Fatal("expected error for ADA/ARM, which the original never shipped")
	}
}

func TestParseCPUAliases(t *testing.T) {
	for _, alias := range []string{"MPC500", "MPC800"} {
		cpu, err := ParseCPU(alias)
		if err != nil {
			t.Fatalf("ParseCPU(%q): %v", alias, err)
		}
		if cpu != CPUMPC800 {
			t.Fatalf("ParseCPU(%q) = %v, want CPUMPC800", alias, cpu)
		}
	}
	if _, err := ParseCPU("BOGUS"); err == nil {
		t.Fatal("expected error for unknown target type")
	}
}

func TestLookupEachFamily(t *testing.T) {
	families := []loader.Family{loader.FamilyHS, loader.Family20, loader.Family21, loader.Family10, loader.Family30}
	for _, f := range families {
		entry, err := Lookup(f, 0)
		if err != nil {
			t.Fatalf("Lookup(%v, 0): %v", f, err)
		}
		if !entry.Supported() {
			t.Fatalf("Lookup(%v, 0) unexpectedly unsupported", f)
		}
	}
}

func TestLookupOutOfRange(t *testing.T) {
	if _, err := Lookup(loader.FamilyHS, 51); err == nil {
		t.Fatal("expected error for out-of-range index")
	}
}

func TestHSMostSlotsUnsupported(t *testing.T) {
	entry, err := Lookup(loader.FamilyHS, 1)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if entry.Supported() {
		t.Fatal("BDI-HS slot 1 should be NOT_SUPP")
	}
}

func TestResolveFirmwareScansDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"B20C32FW.100", "B20C32FW.205"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	entry, err := Lookup(loader.Family20, 0)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	hit, err := ResolveFirmware(loader.Family20, entry, dir)
	if err != nil {
		t.Fatalf("ResolveFirmware: %v", err)
	}
	if hit.Version != 205 {
		t.Fatalf("version = %d, want 205", hit.Version)
	}
}

func TestResolveFirmwareNoMatch(t *testing.T) {
	dir := t.TempDir()
	entry, err := Lookup(loader.Family20, 0)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if _, err := ResolveFirmware(loader.Family20, entry, dir); err == nil {
		t.Fatal("expected an error when no artifact matches")
	}
}

func TestResolveFirmwareB30FullyQualifiedPath(t *testing.T) {
	entry, err := Lookup(loader.Family30, 0)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	path := "/some/dir/b30c32fw.123"
	hit, err := ResolveFirmware(loader.Family30, entry, path)
	if err != nil {
		t.Fatalf("ResolveFirmware: %v", err)
	}
	if hit.Path != path {
		t.Fatalf("path = %s, want %s", hit.Path, path)
	}
}

func TestLooksLikeQualifiedB30Path(t *testing.T) {
	if !looksLikeQualifiedB30Path("/x/b30c32fw.123") {
		t.Fatal("expected a match for a well-formed b30 path")
	}
	if looksLikeQualifiedB30Path("/x/shortdir") {
		t.Fatal("expected no match for a plain directory path")
	}
	if looksLikeQualifiedB30Path("b30tooshort") {
		t.Fatal("expected no match when the path is shorter than the fixed window")
	}
}

func TestResolveLogic(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "C32JED20.100"), []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	entry, err := Lookup(loader.Family20, 0)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	hit, err := ResolveLogic(entry, dir)
	if err != nil {
		t.Fatalf("ResolveLogic: %v", err)
	}
	if hit.Version != 100 {
		t.Fatalf("version = %d, want 100", hit.Version)
	}
}
