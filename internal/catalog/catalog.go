// Package catalog is the table-of-tables artifact index: for each
// device family and firmware-type slot it names the firmware and
// logic (CPLD) artifact basenames expected on disk, replacing the
// five parallel C arrays (BHS/B20/B21/B10/B30_SetupInfo) with one
// keyed table (spec.md §9 design note).
package catalog

import (
	"fmt"

	"github.com/daedaluz/bdiloader/internal/artifact"
	"github.com/daedaluz/bdiloader/internal/loader"
)

// Entry is one firmware-type slot: the type codes a freshly written
// artifact should report back, and the basenames (without directory
// or extension) used to locate it on disk.
type Entry struct {
	FirmwareType uint16
	LogicType    uint16
	FirmwareName string
	LogicName    string
}

// notSupp marks a slot the original tool never shipped artifacts for.
const notSupp = "NOT_SUPP"

// Supported reports whether e names real artifacts.
func (e Entry) Supported() bool {
	return e.FirmwareName != notSupp && e.FirmwareName != ""
}

// App is a debugger/application family, selected with -a.
type App int

const (
	AppGDB App = iota
	AppTOR
	AppADA
	AppACC // also selected by "STD"
)

// CPU is a target processor family, selected with -t.
type CPU int

const (
	CPUCPU32 CPU = iota
	CPUMPC800
	CPUPPC600
	CPUPPC400
	CPUARM
	CPUTRICORE
	CPUMCF
	CPUHC12
	CPUMCORE
	CPUMPC7450
	CPUR4K
	CPUXSCALE
	CPUR5K
	CPUMPC8500
	CPUARM11
	CPUMPC5500
	CPUPA6T
	CPUARMSWD
	CPUXLS
	CPUP4080
	CPUARMV8
	CPUSWDV8
	cpuCount
)

// cpuAliases maps every -t spelling accepted by the original tool
// onto the CPU it shares a firmware image with.
var cpuAliases = map[string]CPU{
	"CPU32": CPUCPU32,
	"PPC400": CPUPPC400,
	"MPC500": CPUMPC800, "MPC800": CPUMPC800,
	"PPC600": CPUPPC600, "PPC700": CPUPPC600,
	"MPC8200": CPUPPC600, "MPC8300": CPUPPC600, "MPC7400": CPUPPC600,
	"ARM": CPUARM,
	"TRICORE": CPUTRICORE,
	"MCF": CPUMCF,
	"HC12": CPUHC12,
	"MCORE": CPUMCORE,
	"MPC7450": CPUMPC7450, "MPC8641": CPUMPC7450,
	"MIPS32": CPUR4K, "MIPS": CPUR4K,
	"XSCALE": CPUXSCALE,
	"MIPS64": CPUR5K,
	"MPC8500": CPUMPC8500, "PQ3": CPUMPC8500, "P2020": CPUMPC8500, "P1020": CPUMPC8500,
	"ARM11": CPUARM11,
	"MPC5500": CPUMPC5500,
	"PA6T": CPUPA6T,
	"ARMSWD": CPUARMSWD,
	"XLS": CPUXLS, "XLR": CPUXLS,
	"P4080": CPUP4080, "QP4": CPUP4080, "P5020": CPUP4080, "QP5": CPUP4080, "P3041": CPUP4080, "QP3": CPUP4080,
	"ARMV8": CPUARMV8,
	"SWDV8": CPUSWDV8,
}

// appAliases maps every -a spelling accepted by the original tool.
var appAliases = map[string]App{
	"GDB": AppGDB,
	"ADA": AppADA,
	"TOR": AppTOR,
	"ACC": AppACC,
	"STD": AppACC,
}

// ParseCPU resolves a -t argument to a CPU, as BDI_UpdateFirmware does.
func ParseCPU(name string) (CPU, error) {
	cpu, ok := cpuAliases[name]
	if !ok {
		return 0, fmt.Errorf("catalog: unknown target type %q", name)
	}
	return cpu, nil
}

// ParseApp resolves a -a argument to an App.
func ParseApp(name string) (App, error) {
	app, ok := appAliases[name]
	if !ok {
		return 0, fmt.Errorf("catalog: unknown application type %q", name)
	}
	return app, nil
}

// appCPUToIndex is AppCpuToFw from the original source: -1 marks a
// combination no firmware was ever built for.
var appCPUToIndex = [4][cpuCount]int{
	AppGDB: {12, 13, 19, 22, 14, 24, 26, -1, 15, 29, 32, 35, 36, 39, 41, 44, 46, 48, 31, 23, 38, 50},
	AppTOR: {2, 4, 18, 21, 9, -1, 25, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	AppADA: {1, 3, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	AppACC: {0, 5, 17, 20, 10, 11, 6, 7, 8, 27, 30, 33, 42, 37, 40, 43, 45, 47, -1, 25, 34, 49},
}

// Index resolves the (app, cpu) pair to a table slot.
func Index(app App, cpu CPU) (int, error) {
	idx := appCPUToIndex[app][cpu]
	if idx < 0 {
		return 0, fmt.Errorf("catalog: no firmware combination for this application/target pair")
	}
	return idx, nil
}

// Lookup returns the slot for family at idx. idx is either the value
// from Index (selecting an artifact to install) or a FirmwareType()
// read back from the probe (identifying what is currently loaded).
func Lookup(family loader.Family, idx int) (Entry, error) {
	table, ok := tables[family]
	if !ok {
		return Entry{}, fmt.Errorf("catalog: no table for family %s", family)
	}
	if idx < 0 || idx >= len(table) {
		return Entry{}, fmt.Errorf("catalog: index %d out of range for family %s", idx, family)
	}
	return table[idx], nil
}

// qualifiedB30PathLen is the "b30xxxxx.nnn" shortcut's fixed window at
// the end of the path: 'b','3','0' as its first three characters and a
// '.' as its ninth, leaving a 3-character extension.
const qualifiedB30PathLen = 12

// looksLikeQualifiedB30Path reports whether path's last 12 characters
// match the original's inline check for a fully qualified BDI3000
// firmware file, letting a caller pass a file directly instead of a
// directory to scan.
func looksLikeQualifiedB30Path(path string) bool {
	if len(path) < qualifiedB30PathLen {
		return false
	}
	n := len(path)
	return path[n-12] == 'b' && path[n-11] == '3' && path[n-10] == '0' && path[n-4] == '.'
}

// ResolveFirmware finds the firmware artifact to program for family
// using entry's basename, scanning dir for the newest matching file.
// For BDI3000, dir is used directly as a fully qualified firmware
// file path when it matches looksLikeQualifiedB30Path, instead of
// being scanned as a directory.
func ResolveFirmware(family loader.Family, entry Entry, dir string) (artifact.Hit, error) {
	if family == loader.Family30 && looksLikeQualifiedB30Path(dir) {
		return artifact.Hit{Path: dir}, nil
	}
	hit, err := artifact.Newest(dir, entry.FirmwareName)
	if err != nil {
		return artifact.Hit{}, err
	}
	if hit.Version == 0 {
		return artifact.Hit{}, fmt.Errorf("catalog: no valid firmware file found in %s", dir)
	}
	return hit, nil
}

// ResolveLogic finds the JEDEC logic artifact to program for entry
// using its logic basename, scanning dir for the newest matching file.
func ResolveLogic(entry Entry, dir string) (artifact.Hit, error) {
	hit, err := artifact.Newest(dir, entry.LogicName)
	if err != nil {
		return artifact.Hit{}, err
	}
	if hit.Version == 0 {
		return artifact.Hit{}, fmt.Errorf("catalog: no valid JEDEC file found in %s", dir)
	}
	return hit, nil
}

var tables = map[loader.Family][]Entry{
	loader.FamilyHS: tableHS[:],
	loader.Family20: table20[:],
	loader.Family21: table21[:],
	loader.Family10: table10[:],
	loader.Family30: table30[:],
}

var tableHS = [51]Entry{
	{0x0000, 0x0000, "BDIHSFW", "C32JEDHS"},
	{0x1000, 0x0000, notSupp, notSupp},
	{0x2000, 0x0000, notSupp, notSupp},
	{0x3000, 0x0000, notSupp, notSupp},
	{0x4000, 0x0000, notSupp, notSupp},
	{0x5000, 0x1000, "BDIPPCFW", "PPCJEDHS"},
	{0x6000, 0x5000, "BDIMCFFW", "MCFJEDHS"},
	{0x7000, 0x3000, "BDIC12FW", "C12JEDHS"},
	{0x8000, 0x0000, notSupp, notSupp},
	{0x9000, 0x0000, notSupp, notSupp},
	{0xA000, 0x0000, notSupp, notSupp},
	{0xB000, 0x0000, notSupp, notSupp},
	{0xCC00, 0x0000, notSupp, notSupp},
	{0xCD00, 0x1000, notSupp, notSupp},
	{0xCE00, 0x8000, notSupp, notSupp},
	{0xCF00, 0x4000, notSupp, notSupp},
	{0xD000, 0x4000, notSupp, notSupp},
	{0xD100, 0x7000, notSupp, notSupp},
	{0xD200, 0x7000, notSupp, notSupp},
	{0xD300, 0x7000, notSupp, notSupp},
	{0xD400, 0x9000, notSupp, notSupp},
	{0xD500, 0x9000, notSupp, notSupp},
	{0xD600, 0x9000, notSupp, notSupp},
	{0xD700, 0x6000, notSupp, notSupp},
	{0xD800, 0x6000, notSupp, notSupp},
	{0xD900, 0x5000, notSupp, notSupp},
	{0xDA00, 0x5000, notSupp, notSupp},
	{0xDB00, 0x7000, notSupp, notSupp},
	{0xDC00, 0x7000, notSupp, notSupp},
	{0xDD00, 0x7000, notSupp, notSupp},
	{0xDE00, 0x7000, notSupp, notSupp},
	{0xDF00, 0x7000, notSupp, notSupp},
	{0xE000, 0x7000, notSupp, notSupp},
	{0xE100, 0x7000, notSupp, notSupp},
	{0xE200, 0x7000, notSupp, notSupp},
	{0xE300, 0x7000, notSupp, notSupp},
	{0xE300, 0x7000, notSupp, notSupp},
	{0xE200, 0x7000, notSupp, notSupp},
	{0xE300, 0x7000, notSupp, notSupp},
	{0xE300, 0x7000, notSupp, notSupp},
	{0xE300, 0x7000, notSupp, notSupp},
	{0xE300, 0x7000, notSupp, notSupp},
	{0xE300, 0x7000, notSupp, notSupp},
	{0xE300, 0x7000, notSupp, notSupp},
	{0xE300, 0x7000, notSupp, notSupp},
	{0xE300, 0x7000, notSupp, notSupp},
	{0xE300, 0x7000, notSupp, notSupp},
	{0xE300, 0x7000, notSupp, notSupp},
	{0xE300, 0x7000, notSupp, notSupp},
	{0xE300, 0x7000, notSupp, notSupp},
	{0xE300, 0x7000, notSupp, notSupp},
	{0xE300, 0x7000, notSupp, notSupp},
}

var table20 = [51]Entry{
	{0x0000, 0, "B20C32FW", "C32JED20"},
	{0x1000, 0, "B20C32AA", "C32JED20"},
	{0x2000, 0, "B20C32WR", "C32JED20"},
	{0x3000, 1000, "B20PPCAA", "PPCJED20"},
	{0x4000, 21000, "B20PPCWR", "PPCJWR20"},
	{0x5000, 1000, "B20PPCFW", "PPCJED20"},
	{0x6000, 5000, "B20MCFFW", "MCFJED20"},
	{0x7000, 3000, "B20C12FW", "C12JED20"},
	{0x8000, 4000, "B20MMCFW", "MMCJED20"},
	{0x9000, 8000, "B20ARMWR", "ARMJED20"},
	{0xA000, 8000, "B20ARMFW", "ARMJED20"},
	{0xB000, 6000, "B20TRIFW", "TRIJED20"},
	{0xCC00, 0, "B20C32GD", "C32JED20"},
	{0xCD00, 1000, "B20PPCGD", "PPCJED20"},
	{0xCE00, 8000, "B20ARMGD", "ARMJED20"},
	{0xCF00, 4000, "B20MMCGD", "MMCJED20"},
	{0xD000, 4000, "B20MMCWR", "MMCJED20"},
	{0xD100, 7000, "B20COPFW", "COPJED20"},
	{0xD200, 7000, "B20COPWR", "COPJED20"},
	{0xD300, 7000, "B20COPGD", "COPJED20"},
	{0xD400, 9000, "B20PP4FW", "PP4JED20"},
	{0xD500, 9000, "B20PP4WR", "PP4JED20"},
	{0xD600, 9000, "B20PP4GD", "PP4JED20"},
	{0xD700, 7000, "B20QP4GD", "COPJED20"},
	{0xD800, 6000, "B20TRIGD", "TRIJED20"},
	{0xD900, 7000, "B20QP4FW", "COPJED20"},
	{0xDA00, 5000, "B20MCFGD", "MCFJED20"},
	{0xDB00, 7000, "B20PWSFW", "COPJED20"},
	{0xDC00, 7000, "B20PWSWR", "COPJED20"},
	{0xDD00, 7000, "B20PWSGD", "COPJED20"},
	{0xDE00, 10000, "B20R4KFW", "R4KJED20"},
	{0xDF00, 10000, "B20XLSGD", "XLSJED20"},
	{0xE000, 10000, "B20R4KGD", "R4KJED20"},
	{0xE100, 11000, "B20XSCFW", "XSCJED20"},
	{0xE200, 8000, "B20AV8FW", "ARMJED20"},
	{0xE300, 11000, "B20XSCGD", "XSCJED20"},
	{0xE400, 10000, "B20R5KGD", "R5KJED20"},
	{0xE500, 7000, "B20PQ3FW", "COPJED20"},
	{0xE600, 8000, "B20AV8GD", "ARMJED20"},
	{0xE700, 7000, "B20PQ3GD", "COPJED20"},
	{0xE800, 8000, "B20A11FW", "ARMJED20"},
	{0xE900, 8000, "B20A11GD", "ARMJED20"},
	{0xEA00, 10000, "B20R5KFW", "R5KJED20"},
	{0xEB00, 12000, "B20P55FW", "P55JED20"},
	{0xEC00, 12000, "B20P55GD", "P55JED20"},
	{0xED00, 13000, "B20PA6FW", "PA6JED20"},
	{0xEE00, 13000, "B20PA6GD", "PA6JED20"},
	{0xEF00, 14000, "B20SWDFW", "SWDJED20"},
	{0xF000, 14000, "B20SWDGD", "SWDJED20"},
	{0xF100, 14000, "B20SV8FW", "SWDJED20"},
	{0xF200, 14000, "B20SV8GD", "SWDJED20"},
}

var table21 = [51]Entry{
	{0x0000, 0, "B20C32FW", "C32JED21"},
	{0x1000, 0, "B20C32AA", "C32JED21"},
	{0x2000, 0, "B20C32WR", "C32JED21"},
	{0x3000, 1000, "B20PPCAA", "PPCJED21"},
	{0x4000, 21000, "B20PPCWR", "PPCJWR21"},
	{0x5000, 1000, "B20PPCFW", "PPCJED21"},
	{0x6000, 5000, "B20MCFFW", "MCFJED21"},
	{0x7000, 3000, "B20C12FW", "C12JED21"},
	{0x8000, 4000, "B20MMCFW", "MMCJED21"},
	{0x9000, 8000, "B20ARMWR", "ARMJED21"},
	{0xA000, 8000, "B20ARMFW", "ARMJED21"},
	{0xB000, 6000, "B20TRIFW", "TRIJED21"},
	{0xCC00, 0, "B20C32GD", "C32JED21"},
	{0xCD00, 1000, "B20PPCGD", "PPCJED21"},
	{0xCE00, 8000, "B20ARMGD", "ARMJED21"},
	{0xCF00, 4000, "B20MMCGD", "MMCJED21"},
	{0xD000, 4000, "B20MMCWR", "MMCJED21"},
	{0xD100, 7000, "B20COPFW", "COPJED21"},
	{0xD200, 7000, "B20COPWR", "COPJED21"},
	{0xD300, 7000, "B20COPGD", "COPJED21"},
	{0xD400, 9000, "B20PP4FW", "PP4JED21"},
	{0xD500, 9000, "B20PP4WR", "PP4JED21"},
	{0xD600, 9000, "B20PP4GD", "PP4JED21"},
	{0xD700, 7000, "B20QP4GD", "COPJED21"},
	{0xD800, 6000, "B20TRIGD", "TRIJED21"},
	{0xD900, 7000, "B20QP4FW", "COPJED21"},
	{0xDA00, 5000, "B20MCFGD", "MCFJED21"},
	{0xDB00, 7000, "B20PWSFW", "COPJED21"},
	{0xDC00, 7000, "B20PWSWR", "COPJED21"},
	{0xDD00, 7000, "B20PWSGD", "COPJED21"},
	{0xDE00, 10000, "B20R4KFW", "R4KJED21"},
	{0xDF00, 10000, "B20XLSGD", "XLSJED21"},
	{0xE000, 10000, "B20R4KGD", "R4KJED21"},
	{0xE100, 11000, "B20XSCFW", "XSCJED21"},
	{0xE200, 8000, "B20AV8FW", "ARMJED21"},
	{0xE300, 11000, "B20XSCGD", "XSCJED21"},
	{0xE400, 10000, "B20R5KGD", "R5KJED21"},
	{0xE500, 7000, "B20PQ3FW", "COPJED21"},
	{0xE600, 8000, "B20AV8GD", "ARMJED21"},
	{0xE700, 7000, "B20PQ3GD", "COPJED21"},
	{0xE800, 8000, "B20A11FW", "ARMJED21"},
	{0xE900, 8000, "B20A11GD", "ARMJED21"},
	{0xEA00, 10000, "B20R5KFW", "R5KJED21"},
	{0xEB00, 12000, "B20P55FW", "P55JED21"},
	{0xEC00, 12000, "B20P55GD", "P55JED21"},
	{0xED00, 13000, "B20PA6FW", "PA6JED21"},
	{0xEE00, 13000, "B20PA6GD", "PA6JED21"},
	{0xEF00, 14000, "B20SWDFW", "SWDJED21"},
	{0xF000, 14000, "B20SWDGD", "SWDJED21"},
	{0xF100, 14000, "B20SV8FW", "SWDJED21"},
	{0xF200, 14000, "B20SV8GD", "SWDJED21"},
}

var table10 = [51]Entry{
	{0x0000, 0, "B10C32FW", "C32JED10"},
	{0x1000, 0, "B10C32AA", "C32JED10"},
	{0x2000, 0, "B10C32WR", "C32JED10"},
	{0x3000, 1000, "B10PPCAA", "PPCJED10"},
	{0x4000, 21000, "B10PPCWR", "PPCJWR10"},
	{0x5000, 1000, "B10PPCFW", "PPCJED10"},
	{0x6000, 5000, "B10MCFFW", "MCFJED10"},
	{0x7000, 3000, "B10C12FW", "C12JED10"},
	{0x8000, 4000, "B10MMCFW", "MMCJED10"},
	{0x9000, 8000, "B10ARMWR", "ARMJED10"},
	{0xA000, 8000, "B10ARMFW", "ARMJED10"},
	{0xB000, 6000, "B10TRIFW", "TRIJED10"},
	{0xCC00, 0, "B10C32GD", "C32JED10"},
	{0xCD00, 1000, "B10PPCGD", "PPCJED10"},
	{0xCE00, 8000, "B10ARMGD", "ARMJED10"},
	{0xCF00, 4000, "B10MMCGD", "MMCJED10"},
	{0xD000, 4000, "B10MMCWR", "MMCJED10"},
	{0xD100, 7000, "B10COPFW", "COPJED10"},
	{0xD200, 7000, "B10COPWR", "COPJED10"},
	{0xD300, 7000, "B10COPGD", "COPJED10"},
	{0xD400, 9000, "B10PP4FW", "PP4JED10"},
	{0xD500, 9000, "B10PP4WR", "PP4JED10"},
	{0xD600, 9000, "B10PP4GD", "PP4JED10"},
	{0xD700, 6000, notSupp, notSupp},
	{0xD800, 6000, "B10TRIGD", "TRIJED10"},
	{0xD900, 5000, notSupp, notSupp},
	{0xDA00, 5000, "B10MCFGD", "MCFJED10"},
	{0xDB00, 7000, "B10PWSFW", "COPJED10"},
	{0xDC00, 7000, "B10PWSWR", "COPJED10"},
	{0xDD00, 7000, "B10PWSGD", "COPJED10"},
	{0xDE00, 10000, "B10R4KFW", "R4KJED10"},
	{0xDF00, 10000, "B10XLSGD", "XLSJED10"},
	{0xE000, 10000, "B10R4KGD", "R4KJED10"},
	{0xE100, 11000, "B10XSCFW", "XSCJED10"},
	{0xE200, 11000, notSupp, notSupp},
	{0xE300, 11000, "B10XSCGD", "XSCJED10"},
	{0xE400, 10000, "B10R5KGD", "R5KJED10"},
	{0xE500, 7000, "B10PQ3FW", "COPJED10"},
	{0xE600, 7000, notSupp, notSupp},
	{0xE700, 7000, "B10PQ3GD", "COPJED10"},
	{0xE800, 8000, "B10A11FW", "ARMJED10"},
	{0xE900, 8000, "B10A11GD", "ARMJED10"},
	{0xEA00, 10000, "B10R5KFW", "R5KJED10"},
	{0xEB00, 12000, "B10P55FW", "P55JED10"},
	{0xEC00, 12000, "B10P55GD", "P55JED10"},
	{0xED00, 13000, "B10PA6FW", "PA6JED10"},
	{0xEE00, 13000, "B10PA6GD", "PA6JED10"},
	{0xEF00, 13000, "B10SWDFW", "SWDJED10"},
	{0xF000, 13000, "B10SWDGD", "SWDJED10"},
	{0xE300, 7000, notSupp, notSupp},
	{0xE300, 7000, notSupp, notSupp},
}

// table30 carries no logic (CPLD) artifacts: BDI3000 folds the CPLD
// image into the firmware image itself.
var table30 = [51]Entry{
	{0 << 8, 0, "B30C32FW", ""},
	{1 << 8, 0, "B30C32AA", ""},
	{2 << 8, 0, "B30C32WR", ""},
	{3 << 8, 0, "B30PPCAA", ""},
	{4 << 8, 0, "B30PPCWR", ""},
	{5 << 8, 0, "B30PPCFW", ""},
	{6 << 8, 0, "B30MCFFW", ""},
	{7 << 8, 0, "B30C12FW", ""},
	{8 << 8, 0, "B30MMCFW", ""},
	{9 << 8, 0, "B30ARMWR", ""},
	{10 << 8, 0, "B30ARMFW", ""},
	{11 << 8, 0, "B30TRIFW", ""},
	{12 << 8, 0, "B30C32GD", ""},
	{13 << 8, 0, "B30PPCGD", ""},
	{14 << 8, 0, "B30ARMGD", ""},
	{15 << 8, 0, "B30MMCGD", ""},
	{16 << 8, 0, "B30MMCWR", ""},
	{17 << 8, 0, "B30COPFW", ""},
	{18 << 8, 0, "B30COPWR", ""},
	{19 << 8, 0, "B30COPGD", ""},
	{20 << 8, 0, "B30PP4FW", ""},
	{21 << 8, 0, "B30PP4WR", ""},
	{22 << 8, 0, "B30PP4GD", ""},
	{23 << 8, 0, "B30QP4GD", ""},
	{24 << 8, 0, "B30TRIGD", ""},
	{25 << 8, 0, "B30QP4FW", ""},
	{26 << 8, 0, "B30MCFGD", ""},
	{27 << 8, 0, "B30PWSFW", ""},
	{28 << 8, 0, "B30PWSWR", ""},
	{29 << 8, 0, "B30PWSGD", ""},
	{30 << 8, 0, "B30R4KFW", ""},
	{31 << 8, 0, "B30XLSGD", ""},
	{32 << 8, 0, "B30R4KGD", ""},
	{33 << 8, 0, "B30XSCFW", ""},
	{34 << 8, 0, "B30AV8FW", ""},
	{35 << 8, 0, "B30XSCGD", ""},
	{36 << 8, 0, "B30R5KGD", ""},
	{37 << 8, 0, "B30PQ3FW", ""},
	{38 << 8, 0, "B30AV8GD", ""},
	{39 << 8, 0, "B30PQ3GD", ""},
	{40 << 8, 0, "B30A11FW", ""},
	{41 << 8, 0, "B30A11GD", ""},
	{42 << 8, 0, "B30R5KFW", ""},
	{43 << 8, 0, "B30P55FW", ""},
	{44 << 8, 0, "B30P55GD", ""},
	{45 << 8, 0, "B30PA6FW", ""},
	{46 << 8, 0, "B30PA6GD", ""},
	{47 << 8, 0, "B30SWDFW", ""},
	{48 << 8, 0, "B30SWDGD", ""},
	{49 << 8, 0, "B30SV8FW", ""},
	{50 << 8, 0, "B30SV8GD", ""},
}
