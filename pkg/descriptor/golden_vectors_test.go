package descriptor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avdecc-go/aemcodec/pkg/aem"
	"github.com/avdecc-go/aemcodec/pkg/cursor"
)

// zeroName is a 64-byte all-zero AvdeccFixedString, used as filler in the
// vectors below so the interesting bytes start at a known, easy-to-count
// offset.
var zeroName = make([]byte, 64)

// These vectors are hand-assembled byte-for-byte from the field order in
// IEEE 1722.1's descriptor layouts rather than produced by this package's
// own Encode methods, so a field inserted at the wrong offset or left out
// entirely shows up as a decode mismatch instead of silently round-tripping.

func TestAudioUnitGoldenVector(t *testing.T) {
	buf := append([]byte{}, zeroName...)
	buf = append(buf, 0x00, 0x09) // localizedDescription = 9
	buf = append(buf, 0x00, 0x02) // clockDomainIndex = 2
	buf = append(buf, make([]byte, 31*2)...) // the 31 fields between clockDomainIndex and baseControlBlock
	buf = append(buf, 0x00, 0x03) // baseControlBlock (last of the 33 uint16 fields) = 3
	buf = append(buf, 0x00, 0x00, 0xbb, 0x80) // currentSamplingRate = 48000
	buf = append(buf, 0x00, 0x8c) // samplingRatesOffset
	buf = append(buf, 0x00, 0x01) // samplingRatesCount = 1
	require.Len(t, buf, AudioUnitFixedSize)

	var a AudioUnit
	require.NoError(t, a.DecodeFixed(cursor.NewReader(buf)))
	require.Equal(t, uint16(9), a.LocalizedDescription)
	require.Equal(t, uint16(2), a.ClockDomainIndex)
	require.Equal(t, uint16(3), a.BaseControlBlock)
	require.Equal(t, aem.SamplingRate(48000), a.CurrentSamplingRate)
	require.Equal(t, uint16(1), a.SamplingRatesCount)
}

func TestStreamGoldenVector(t *testing.T) {
	buf := append([]byte{}, zeroName...)
	buf = append(buf, 0x00, 0x02) // localizedDescription = 2
	buf = append(buf, 0x00, 0x01) // clockDomainIndex = 1
	buf = append(buf, 0x00, 0x00, 0x00, 0x01) // streamFlags = 1
	buf = append(buf, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88) // currentFormat
	buf = append(buf, 0x00, 0x7e) // formatsOffset (immediately after currentFormat)
	buf = append(buf, 0x00, 0x01) // numberOfFormats = 1
	buf = append(buf, make([]byte, 8+2)...) // backupTalker0
	buf = append(buf, make([]byte, 8+2)...) // backupTalker1
	buf = append(buf, make([]byte, 8+2)...) // backupTalker2
	buf = append(buf, make([]byte, 8+2)...) // backedupTalker
	buf = append(buf, 0x00, 0x05) // avbInterfaceIndex = 5
	buf = append(buf, 0x00, 0x00, 0x04, 0x00) // bufferLength = 1024
	require.Len(t, buf, StreamFixedSize)

	var s Stream
	require.NoError(t, s.DecodeFixed(cursor.NewReader(buf)))
	require.Equal(t, uint16(2), s.LocalizedDescription)
	require.Equal(t, uint16(1), s.ClockDomainIndex)
	require.Equal(t, aem.StreamFormat(0x1122334455667788), s.CurrentFormat)
	require.Equal(t, uint16(1), s.NumberOfFormats)
	require.Equal(t, uint16(5), s.AvbInterfaceIndex)
	require.Equal(t, uint32(1024), s.BufferLength)
}

func TestJackGoldenVector(t *testing.T) {
	buf := append([]byte{}, zeroName...)
	buf = append(buf, 0x00, 0x07) // localizedDescription = 7
	buf = append(buf, 0x00, 0x00, 0x00, 0x02) // jackFlags = JackFlagCaptive (bit 1)
	buf = append(buf, 0x00, 0x03) // jackType = 3
	buf = append(buf, 0x00, 0x01) // numberOfControls = 1
	buf = append(buf, 0x00, 0x00) // baseControl = 0
	require.Len(t, buf, JackFixedSize)

	var j Jack
	require.NoError(t, j.Decode(cursor.NewReader(buf)))
	require.Equal(t, uint16(7), j.LocalizedDescription)
	require.Equal(t, aem.JackFlagCaptive, j.JackFlags)
	require.Equal(t, uint16(3), j.JackType)
}

func TestAvbInterfaceGoldenVector(t *testing.T) {
	buf := append([]byte{}, zeroName...)
	buf = append(buf, 0x00, 0x03) // localizedDescription = 3
	buf = append(buf, 0x00, 0x11, 0x22, 0x33, 0x44, 0x55) // macAddress
	buf = append(buf, 0x00, 0x00, 0x00, 0x02) // interfaceFlags = GptpSupported (bit 1)
	buf = append(buf, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88) // clockIdentity
	buf = append(buf, 0xf8, 0x06) // priority1 = 248, clockClass = 6
	buf = append(buf, 0x00, 0x00) // offsetScaledLogVariance
	buf = append(buf, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00) // clockAccuracy..logPDelayInterval
	buf = append(buf, 0x00, 0x01) // portNumber = 1
	require.Len(t, buf, AvbInterfaceFixedSize)

	var a AvbInterface
	require.NoError(t, a.Decode(cursor.NewReader(buf)))
	require.Equal(t, uint16(3), a.LocalizedDescription)
	require.Equal(t, aem.MacAddress{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}, a.MacAddress)
	require.Equal(t, uint8(248), a.Priority1)
	require.Equal(t, uint8(6), a.ClockClass)
	require.Equal(t, uint16(1), a.PortNumber)
}

func TestClockSourceGoldenVector(t *testing.T) {
	buf := append([]byte{}, zeroName...)
	buf = append(buf, 0x00, 0x04) // localizedDescription = 4
	buf = append(buf, 0x00, 0x00, 0x00, 0x02) // clockSourceFlags = LocalID (bit 1)
	buf = append(buf, 0x00, 0x01) // clockSourceType = 1
	buf = append(buf, make([]byte, 8)...) // clockSourceIdentifier
	buf = append(buf, 0x00, 0x09) // clockSourceLocationType = DescriptorAvbInterface
	buf = append(buf, 0x00, 0x00) // clockSourceLocationIndex = 0
	require.Len(t, buf, ClockSourceFixedSize)

	var c ClockSource
	require.NoError(t, c.Decode(cursor.NewReader(buf)))
	require.Equal(t, uint16(4), c.LocalizedDescription)
	require.Equal(t, aem.ClockSourceFlagLocalID, c.ClockSourceFlags)
	require.Equal(t, uint16(1), c.ClockSourceType)
}

func TestMemoryObjectGoldenVector(t *testing.T) {
	buf := append([]byte{}, zeroName...)
	buf = append(buf, 0x00, 0x05) // localizedDescription = 5
	buf = append(buf, 0x00, 0x01) // memoryObjectType = 1
	buf = append(buf, 0x00, 0x00) // targetDescriptorType = DescriptorEntity
	buf = append(buf, 0x00, 0x00) // targetDescriptorIndex = 0
	buf = append(buf, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00) // startAddress = 0x1000
	buf = append(buf, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00) // maximumLength = 0x10000
	buf = append(buf, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00) // length = 4096
	require.Len(t, buf, MemoryObjectFixedSize)

	var m MemoryObject
	require.NoError(t, m.Decode(cursor.NewReader(buf)))
	require.Equal(t, uint16(5), m.LocalizedDescription)
	require.Equal(t, uint16(1), m.MemoryObjectType)
	require.Equal(t, uint64(0x1000), m.StartAddress)
}

func TestClockDomainGoldenVector(t *testing.T) {
	buf := append([]byte{}, zeroName...)
	buf = append(buf, 0x00, 0x06) // localizedDescription = 6
	buf = append(buf, 0x00, 0x01) // clockSourceIndex = 1
	buf = append(buf, 0x00, 0x48) // clockSourcesOffset
	buf = append(buf, 0x00, 0x02) // clockSourcesCount = 2
	require.Len(t, buf, ClockDomainFixedSize)

	var c ClockDomain
	require.NoError(t, c.DecodeFixed(cursor.NewReader(buf)))
	require.Equal(t, uint16(6), c.LocalizedDescription)
	require.Equal(t, aem.ClockSourceIndex(1), c.ClockSourceIndex)
	require.Equal(t, uint16(2), c.ClockSourcesCount)
}
