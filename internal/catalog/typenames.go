package catalog

// firmwareTypeNames mirrors bdisetup.c's FirmwareType[] table, indexed
// by the type nibble/byte FirmwareType() extracts from a version word.
var firmwareTypeNames = []string{
	"Firmware for CPU32",
	"bdiAda for CPU32",
	"bdiWind for CPU32",
	"bdiAda for MPC8xx",
	"bdiWind for MPC8xx",
	"Firmware for MPC8xx/MPC5xx",
	"Firmware for ColdFire",
	"Firmware for HC12",
	"Firmware for M-CORE",
	"bdiWind for ARM7/9",
	"Firmware for ARM7/9",
	"Firmware for TriCore",
	"bdiGDB for CPU32",
	"bdiGDB for MPC8xx/MPC5xx",
	"bdiGDB for ARM7/9",
	"bdiGDB for M-CORE",
	"bdiWind for M-CORE",
	"Firmware for PPC6xx/PPC7xx",
	"bdiWind for PPC6xx/PPC7xx",
	"bdiGDB for PPC6xx/PPC7xx",
	"Firmware for PPC400",
	"bdiWind for PPC400",
	"bdiGDB for PPC400",
	"bdiGDB for QorIQ P3/P4/P5/T1/T2/T4",
	"bdiGDB for TriCore",
	"Firmware for QorIQ P3/P4/P5/T1/T2/T4",
	"bdiGDB for ColdFire",
	"Firmware for MPC7450",
	"bdiWind for MPC7450",
	"bdiGDB for MPC7450",
	"Firmware for MIPS32",
	"bdiGDB for XLS/XLR",
	"bdiGDB for MIPS32",
	"Firmware for XScale",
	"Firmware for ARMV8",
	"bdiGDB for XScale",
	"bdiGDB for MIPS64",
	"Firmware for MPC85xx",
	"bdiGDB for ARMV8",
	"bdiGDB for MPC85xx",
	"Firmware for ARM11",
	"bdiGDB for ARM11",
	"Firmware for MIPS64",
	"Firmware for MPC5500",
	"bdiGDB for MPC5500",
	"Firmware for PA6T",
	"bdiGDB for PA6T",
	"Firmware for ARM-SWD",
	"bdiGDB for ARM-SWD",
	"Firmware for ARMV8-SWD",
	"bdiGDB for ARMV8-SWD",
}

// logicTypeNames mirrors bdisetup.c's LogicType[] table, indexed by
// version.logic/1000.
var logicTypeNames = []string{
	"CPU32/CPU16",
	"MPC8xx/MPC5xx",
	"ColdFire V2",
	"HC12",
	"M-CORE",
	"ColdFire",
	"TriCore",
	"PPC6xx/PPC7xx",
	"ARM",
	"PPC400",
	"MIPS32/MIPS64",
	"XScale",
	"MPC5500",
	"PA6T",
	"ARM-SWD",
	"unknown 15",
	"unknown 16",
	"unknown 17",
	"unknown 18",
	"unknown 19",
	"unknown 20",
	"MPC8xx spez. for Tornado",
}

// FirmwareTypeName describes the application/CPU combination encoded
// in t, the value loader.VersionInfo.FirmwareType returns.
func FirmwareTypeName(t uint16) string {
	if int(t) < len(firmwareTypeNames) {
		return firmwareTypeNames[t]
	}
	return "unknown firmware type"
}

// LogicTypeName describes the CPLD family encoded in a raw logic
// version word, grouped in thousands the way version.logic/1000 does.
func LogicTypeName(logic uint16) string {
	idx := logic / 1000
	if int(idx) < len(logicTypeNames) {
		return logicTypeNames[idx]
	}
	return "unknown logic type"
}
