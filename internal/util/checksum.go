package util

import (
	"encoding/binary"
	"hash/crc32"
)

// ChecksumSize is the encoded size of a checksum
const ChecksumSize = 4

var crc32Table = crc32.MakeTable(crc32.IEEE)

// ComputeChecksum computes a CRC32 (IEEE) checksum for the given data
func ComputeChecksum(data []byte) uint32 {
	return crc32.Checksum(data, crc32Table)
}

// ValidateChecksum validates data against an expected checksum
func ValidateChecksum(data []byte, expected uint32) bool {
	return ComputeChecksum(data) == expected
}

// EncodeChecksum returns the little-endian encoding of checksum
func EncodeChecksum(checksum uint32) []byte {
	buf := make([]byte, ChecksumSize)
	binary.LittleEndian.PutUint32(buf, checksum)
	return buf
}

// DecodeChecksum decodes a checksum written by EncodeChecksum. It reports
// false if buf has the wrong length.
func DecodeChecksum(buf []byte) (uint32, bool) {
	if len(buf) != ChecksumSize {
		return 0, false
	}
	return binary.LittleEndian.Uint32(buf), true
}
