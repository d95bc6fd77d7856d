package stream

import (
	"hash/crc32"
	"sync"
)

// crcPolynomial is the IEEE 802.3 polynomial (0xEDB88320 in reversed/
// reflected form), the same one used by ZIP, gzip, and Ethernet FCS.
const crcPolynomial = 0xEDB88320

var (
	crcTableOnce sync.Once
	crcTable     *crc32.Table
)

// table returns the process-wide CRC-32 lookup table, built once on first
// use and never mutated afterward.
func table() *crc32.Table {
	crcTableOnce.Do(func() {
		crcTable = crc32.MakeTable(crcPolynomial)
	})
	return crcTable
}

// ComputeCRC32 computes the IEEE 802.3 CRC-32 (initial register
// 0xFFFFFFFF, final XOR 0xFFFFFFFF, byte-wise table-driven) of data.
func ComputeCRC32(data []byte) uint32 {
	return crc32.Checksum(data, table())
}
