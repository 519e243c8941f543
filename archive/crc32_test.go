package archive

import (
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum_ReferenceValue(t *testing.T) {
	// The canonical CRC-32 check value.
	assert.Equal(t, uint32(0xCBF43926), Checksum([]byte("123456789")))
}

func TestChecksum_Empty(t *testing.T) {
	assert.Equal(t, uint32(0), Checksum(nil))
	assert.Equal(t, uint32(0), Checksum([]byte{}))
}

func TestChecksum_MatchesStdlib(t *testing.T) {
	// hash/crc32 implements the same IEEE polynomial; use it as an
	// independent oracle over a spread of buffer shapes.
	inputs := [][]byte{
		[]byte("a"),
		[]byte("The quick brown fox jumps over the lazy dog"),
		{0x00, 0xFF, 0x00, 0xFF},
		make([]byte, 1024),
	}

	long := make([]byte, 4096)
	for i := range long {
		long[i] = byte(i * 31)
	}
	inputs = append(inputs, long)

	for _, in := range inputs {
		assert.Equal(t, crc32.ChecksumIEEE(in), Checksum(in), "input length %d", len(in))
	}
}
