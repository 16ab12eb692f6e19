package cursor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdecc-go/aemcodec/pkg/cursor"
)

func TestWriterScalarRoundTrip(t *testing.T) {
	w := cursor.New(1 + 2 + 4 + 8 + 3)
	require.NoError(t, w.PutUint8(0x11))
	require.NoError(t, w.PutUint16(0x2233))
	require.NoError(t, w.PutUint32(0x44556677))
	require.NoError(t, w.PutUint64(0x8899aabbccddeeff))
	require.NoError(t, w.PutBytes([]byte{0x01, 0x02, 0x03}))
	assert.Equal(t, w.Capacity(), w.BytesWritten())
	assert.Equal(t, 0, w.Remaining())

	r := cursor.NewReader(w.Bytes())
	u8, err := r.Uint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x11), u8)

	u16, err := r.Uint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x2233), u16)

	u32, err := r.Uint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x44556677), u32)

	u64, err := r.Uint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x8899aabbccddeeff), u64)

	b, err := r.Bytes(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, b)
	assert.Equal(t, 0, r.Remaining())
}

func TestWriterCapacityExceeded(t *testing.T) {
	w := cursor.New(1)
	require.NoError(t, w.PutUint8(1))
	err := w.PutUint8(2)
	assert.ErrorIs(t, err, cursor.ErrCapacityExceeded)
}

func TestReaderTruncated(t *testing.T) {
	r := cursor.NewReader([]byte{0x01})
	_, err := r.Uint16()
	assert.ErrorIs(t, err, cursor.ErrTruncated)
}

func TestReaderSetPositionBadOffset(t *testing.T) {
	r := cursor.NewReader(make([]byte, 4))
	require.NoError(t, r.SetPosition(4))
	err := r.SetPosition(5)
	assert.ErrorIs(t, err, cursor.ErrBadOffset)
}

func TestReaderSetPositionThenRead(t *testing.T) {
	r := cursor.NewReader([]byte{0, 0, 0, 0, 0xaa, 0xbb})
	require.NoError(t, r.SetPosition(4))
	v, err := r.Uint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0xaabb), v)
}
