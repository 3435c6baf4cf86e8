package display

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferBufferAppend(t *testing.T) {
	var b TransferBuffer
	require.NoError(t, b.Append([]byte{0x00, 0xAE}))
	require.NoError(t, b.Append([]byte{0xD5}))
	assert.Equal(t, []byte{0x00, 0xAE, 0xD5}, b.Bytes())
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, TransferBufferSize, b.Cap())

	b.Reset()
	assert.Zero(t, b.Len())
	assert.Empty(t, b.Bytes())
}

func TestTransferBufferExactCapacity(t *testing.T) {
	var b TransferBuffer
	full := bytes.Repeat([]byte{0x5A}, TransferBufferSize)
	require.NoError(t, b.Append(full[:TransferBufferSize-1]))
	require.NoError(t, b.Append(full[:1]))
	assert.Equal(t, full, b.Bytes())
	assert.False(t, b.Overflowed())
}

func TestTransferBufferOverflowKeepsContents(t *testing.T) {
	var b TransferBuffer
	require.NoError(t, b.Append(bytes.Repeat([]byte{0x11}, 30)))

	err := b.Append([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrBufferOverflow)
	assert.True(t, b.Overflowed())
	assert.Equal(t, 30, b.Len(), "rejected append must not write")
	assert.Equal(t, bytes.Repeat([]byte{0x11}, 30), b.Bytes())

	// Still refused even though it would fit
	assert.ErrorIs(t, b.Append([]byte{4}), ErrBufferOverflow)
	assert.Equal(t, 30, b.Len())

	b.Reset()
	assert.False(t, b.Overflowed())
	assert.NoError(t, b.Append([]byte{4}))
}
