package vocab

import "strings"

// DirectLocation is a special function register, mapped to its fixed
// direct address in 0x80..0xFF.
type DirectLocation struct {
	Name    string
	Address uint8
}

// sfrTable is the required SFR set from the 8051 memory map.
var sfrTable = map[string]uint8{
	"P0": 0x80, "SP": 0x81, "DPL": 0x82, "DPH": 0x83, "PCON": 0x87,
	"TCON": 0x88, "TMOD": 0x89, "TL0": 0x8A, "TL1": 0x8B, "TH0": 0x8C, "TH1": 0x8D,
	"P1": 0x90, "SCON": 0x98, "SBUF": 0x99,
	"P2": 0xA0, "IEN0": 0xA8, "IP0": 0xA9,
	"P3": 0xB0, "IEN1": 0xB8, "IP1": 0xB9,
	"IRCON": 0xC0, "CCEN": 0xC1, "CCL1": 0xC2, "CCH1": 0xC3, "CCL2": 0xC4, "CCH2": 0xC5,
	"CCL3": 0xC6, "CCH3": 0xC7, "T2CON": 0xC8, "CRCL": 0xCA, "CRCH": 0xCB, "TL2": 0xCC, "TH2": 0xCD,
	"PSW": 0xD0, "ADCON": 0xD8, "ADDAT": 0xD9, "DAPR": 0xDA, "P6": 0xDB,
	"ACC": 0xE0, "P4": 0xE8,
	"B": 0xF0, "P5": 0xF8,
}

// ParseDirectLocation matches an identifier case-insensitively against the
// SFR table.
func ParseDirectLocation(text string) (DirectLocation, bool) {
	addr, ok := sfrTable[strings.ToUpper(text)]
	if !ok {
		return DirectLocation{}, false
	}
	return DirectLocation{Name: strings.ToUpper(text), Address: addr}, true
}

// BitAddressable reports whether a direct address names a bit-addressable
// region: internal RAM 0x20..0x2F, or any SFR address (0x80 and up).
func BitAddressable(direct uint8) bool {
	return (direct >= 0x20 && direct < 0x30) || direct >= 0x80
}
