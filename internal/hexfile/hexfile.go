// Package hexfile renders resolved assembly output as Intel HEX text: one
// data record per input record, uppercase hex, LF line endings, no
// extended-address records.
package hexfile

import (
	"fmt"
	"strings"

	"github.com/retroenv/asm8051/internal/mir"
)

// Write renders records as Intel HEX text: a data record per entry,
// emitted in order, followed by the end-of-file record.
func Write(records []mir.Record) string {
	var b strings.Builder
	for _, r := range records {
		b.WriteString(dataRecord(r.Addr, r.Bytes))
	}
	b.WriteString(":00000001FF\n")
	return b.String()
}

// dataRecord formats one `:LLAAAA00DD...DDCC` line. The checksum is the
// two's-complement of the truncated-to-8-bit sum of every preceding byte
// field: count, address high, address low, record type, and data.
func dataRecord(addr uint16, data []byte) string {
	var b strings.Builder
	b.WriteByte(':')

	sum := byte(len(data))
	fmt.Fprintf(&b, "%02X", byte(len(data)))

	hi, lo := byte(addr>>8), byte(addr)
	sum += hi
	sum += lo
	fmt.Fprintf(&b, "%02X%02X", hi, lo)

	sum += 0x00 // record type: data
	b.WriteString("00")

	for _, d := range data {
		sum += d
		fmt.Fprintf(&b, "%02X", d)
	}

	checksum := -sum
	fmt.Fprintf(&b, "%02X\n", checksum)
	return b.String()
}
