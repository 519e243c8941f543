// Package archive implements the stored-method ZIP container used for DOCX
// packaging. Both the CRC-32 checksum and the record layout are produced from
// first principles so the output is a pure function of the entry list: no mod
// times, no compression, no platform-dependent fields.
package archive

import "sync"

// Reversed CRC-32 polynomial used by ZIP and PNG
const crcPolynomial = 0xEDB88320

// The lookup table is built once on first use and never mutated afterward.
var crcTable = sync.OnceValue(buildCRCTable)

func buildCRCTable() *[256]uint32 {
	var table [256]uint32
	for i := range table {
		crc := uint32(i)
		for k := 0; k < 8; k++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ crcPolynomial
			} else {
				crc >>= 1
			}
		}
		table[i] = crc
	}
	return &table
}

// Checksum computes the standard ZIP/PKWARE CRC-32 of data. Consumers
// validate this value per entry, so it must match the reference algorithm
// exactly: initial value 0xFFFFFFFF, table-driven update per byte, final
// complement.
func Checksum(data []byte) uint32 {
	table := crcTable()
	crc := uint32(0xFFFFFFFF)
	for _, b := range data {
		crc = (crc >> 8) ^ table[(crc^uint32(b))&0xFF]
	}
	return crc ^ 0xFFFFFFFF
}
