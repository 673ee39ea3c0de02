package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeChecksum(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty data", data: []byte{}},
		{name: "simple data", data: []byte("hello world")},
		{name: "binary data", data: []byte{0x00, 0x01, 0x02, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Same input produces the same checksum
			assert.Equal(t, ComputeChecksum(tt.data), ComputeChecksum(tt.data))
		})
	}

	assert.Equal(t, uint32(0x0d4a1185), ComputeChecksum([]byte("hello world")))
}

func TestValidateChecksum(t *testing.T) {
	data := []byte("record snapshot")
	checksum := ComputeChecksum(data)

	assert.True(t, ValidateChecksum(data, checksum))
	assert.False(t, ValidateChecksum(data, checksum+1))
	assert.False(t, ValidateChecksum([]byte("record snapshoT"), checksum))
}

func TestEncodeDecodeChecksum(t *testing.T) {
	buf := EncodeChecksum(0x01020304)
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf)

	checksum, ok := DecodeChecksum(buf)
	require.True(t, ok)
	assert.Equal(t, uint32(0x01020304), checksum)

	_, ok = DecodeChecksum([]byte{0x01, 0x02})
	assert.False(t, ok)
}
