package aem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdecc-go/aemcodec/pkg/aem"
	"github.com/avdecc-go/aemcodec/pkg/cursor"
)

func TestFixedStringTrimsAtNUL(t *testing.T) {
	f := aem.NewFixedString("stream-input-1")
	assert.Equal(t, "stream-input-1", f.String())

	w := cursor.New(aem.FixedStringSize)
	require.NoError(t, f.Encode(w))

	var decoded aem.AvdeccFixedString
	require.NoError(t, decoded.Decode(cursor.NewReader(w.Bytes())))
	assert.Equal(t, "stream-input-1", decoded.String())
}

func TestFixedStringTruncatesOverlong(t *testing.T) {
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'a'
	}
	f := aem.NewFixedString(string(long))
	assert.LessOrEqual(t, len(f.String()), aem.FixedStringSize)
}

func TestUniqueIdentifierSentinel(t *testing.T) {
	assert.Equal(t, aem.UniqueIdentifier(0xffffffffffffffff), aem.UniqueIdentifierUninitialized)
}

func TestFlagsPreserveUnknownBits(t *testing.T) {
	f := aem.StreamInfoFlags(0x00800000 | uint32(aem.StreamInfoFlagStreamFormatValid))
	w := cursor.New(4)
	require.NoError(t, f.Encode(w))

	var decoded aem.StreamInfoFlags
	require.NoError(t, decoded.Decode(cursor.NewReader(w.Bytes())))
	assert.Equal(t, f, decoded)
	assert.True(t, decoded.Has(aem.StreamInfoFlagStreamFormatValid))
}

func TestMacAddressRoundTrip(t *testing.T) {
	mac := aem.MacAddress{0x00, 0x1b, 0x21, 0x11, 0x22, 0x33}
	w := cursor.New(6)
	require.NoError(t, mac.Encode(w))

	var decoded aem.MacAddress
	require.NoError(t, decoded.Decode(cursor.NewReader(w.Bytes())))
	assert.Equal(t, mac, decoded)
}
