package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlignWord(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 0},
		{1, 8},
		{7, 8},
		{8, 8},
		{9, 16},
		{16, 16},
		{17, 24},
		{1024, 1024},
		{1025, 1032},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AlignWord(tt.in), "AlignWord(%d)", tt.in)
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	buf := make([]byte, 64)
	off := 16

	PutBlockSize(buf, off, 4096)
	PutNextRef(buf, off, 0x20)
	PutFree(buf, off, true)

	assert.Equal(t, uint32(4096), BlockSize(buf, off))
	assert.Equal(t, uint32(0x20), NextRef(buf, off))
	assert.True(t, IsFree(buf, off))

	PutFree(buf, off, false)
	assert.False(t, IsFree(buf, off))

	// Size and link survive flag updates.
	assert.Equal(t, uint32(4096), BlockSize(buf, off))
	assert.Equal(t, uint32(0x20), NextRef(buf, off))
}

func TestHeaderFieldsDoNotOverlap(t *testing.T) {
	buf := make([]byte, HeaderSize)

	PutBlockSize(buf, 0, 0xAAAAAAAA)
	PutNextRef(buf, 0, 0xBBBBBBBB)
	PutFree(buf, 0, true)

	assert.Equal(t, uint32(0xAAAAAAAA), BlockSize(buf, 0))
	assert.Equal(t, uint32(0xBBBBBBBB), NextRef(buf, 0))
	assert.True(t, IsFree(buf, 0))
}

func TestInvalidRefTerminatesList(t *testing.T) {
	buf := make([]byte, HeaderSize)
	PutNextRef(buf, 0, InvalidRef)
	assert.Equal(t, InvalidRef, NextRef(buf, 0))
}
