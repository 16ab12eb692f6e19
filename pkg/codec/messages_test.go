package codec

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avdecc-go/aemcodec/pkg/aem"
)

func TestAcquireEntityWireExample(t *testing.T) {
	// S1: flags=PERSISTENT, ownerID=0x0011223344556677, ENTITY/0.
	want, err := hex.DecodeString("00000001001122334455667700000000")
	require.NoError(t, err)

	v := AcquireEntity{
		Flags:           aem.AcquireFlagPersistent,
		OwnerID:         0x0011223344556677,
		DescriptorType:  aem.DescriptorEntity,
		DescriptorIndex: 0,
	}
	got, err := SerializeAcquireEntityCommand(v)
	require.NoError(t, err)
	require.Equal(t, want, got)

	back, err := DeserializeAcquireEntityCommand(got)
	require.NoError(t, err)
	require.Equal(t, v, back)
}

func TestAcquireEntityResponseSharesCommandSize(t *testing.T) {
	v := AcquireEntity{Flags: aem.AcquireFlagRelease, OwnerID: aem.UniqueIdentifierUninitialized}
	cmd, err := SerializeAcquireEntityCommand(v)
	require.NoError(t, err)
	resp, err := SerializeAcquireEntityResponse(v)
	require.NoError(t, err)
	require.Equal(t, len(cmd), len(resp))
	require.Equal(t, cmd, resp)
}

func TestAcquireEntityTruncated(t *testing.T) {
	_, err := DeserializeAcquireEntityCommand(make([]byte, AcquireEntitySize-1))
	require.ErrorIs(t, err, ErrTruncatedPayload)
}

func TestLockEntityRoundTrip(t *testing.T) {
	v := LockEntity{Flags: aem.LockFlagUnlock, LockedID: 42, DescriptorType: aem.DescriptorStreamInput, DescriptorIndex: 3}
	buf, err := SerializeLockEntityCommand(v)
	require.NoError(t, err)
	require.Len(t, buf, LockEntitySize)
	back, err := DeserializeLockEntityCommand(buf)
	require.NoError(t, err)
	require.Equal(t, v, back)
}

func TestReadDescriptorCommandWireExample(t *testing.T) {
	// S2: configIndex=1, STREAM_INPUT, descriptorIndex=2.
	want, err := hex.DecodeString("0001000000050002")
	require.NoError(t, err)

	v := ReadDescriptorCommand{ConfigurationIndex: 1, DescriptorType: aem.DescriptorStreamInput, DescriptorIndex: 2}
	got, err := SerializeReadDescriptorCommand(v)
	require.NoError(t, err)
	require.Equal(t, want, got)

	back, err := DeserializeReadDescriptorCommand(got)
	require.NoError(t, err)
	require.Equal(t, v, back)
}

func TestConfigurationRoundTripAndEmptyGetCommand(t *testing.T) {
	v := Configuration{ConfigurationIndex: 7}
	buf, err := SerializeSetConfigurationCommand(v)
	require.NoError(t, err)
	require.Len(t, buf, ConfigurationSize)
	back, err := DeserializeSetConfigurationCommand(buf)
	require.NoError(t, err)
	require.Equal(t, v, back)

	require.Empty(t, SerializeGetConfigurationCommand())
	require.NoError(t, DeserializeGetConfigurationCommand(nil))
	require.Error(t, DeserializeGetConfigurationCommand([]byte{0}))
}

func TestStreamFormatCommandVsGetCommandSizes(t *testing.T) {
	set := StreamFormat{DescriptorType: aem.DescriptorStreamOutput, DescriptorIndex: 1, StreamFormat: 0xdeadbeef}
	buf, err := SerializeSetStreamFormatCommand(set)
	require.NoError(t, err)
	require.Len(t, buf, StreamFormatSize)

	get := GetStreamFormatCommand{DescriptorType: aem.DescriptorStreamOutput, DescriptorIndex: 1}
	getBuf, err := SerializeGetStreamFormatCommand(get)
	require.NoError(t, err)
	require.Len(t, getBuf, GetStreamFormatCommandSize)

	// GET's response reuses SET's full layout.
	respBuf, err := SerializeGetStreamFormatResponse(set)
	require.NoError(t, err)
	require.Equal(t, buf, respBuf)
}

func TestStreamInfoVendorReservedBitRoundTrips(t *testing.T) {
	// S6: vendor-reserved flag bit 0x80000000 set, must survive round-trip.
	v := StreamInfo{
		DescriptorType:  aem.DescriptorStreamInput,
		DescriptorIndex: 0,
	}
	v.Info.StreamInfoFlags = aem.StreamInfoFlags(0x80000000)

	buf, err := SerializeSetStreamInfoCommand(v)
	require.NoError(t, err)
	require.Len(t, buf, StreamInfoSize)

	back, err := DeserializeSetStreamInfoCommand(buf)
	require.NoError(t, err)
	require.Equal(t, aem.StreamInfoFlags(0x80000000), back.Info.StreamInfoFlags)
	require.True(t, back.Info.StreamInfoFlags.Has(aem.StreamInfoFlags(0x80000000)))

	reencoded, err := SerializeSetStreamInfoCommand(back)
	require.NoError(t, err)
	require.Equal(t, buf, reencoded)
}

func TestNameSizeIsFieldDerived(t *testing.T) {
	require.Equal(t, 72, NameSize)
	require.Equal(t, 8, GetNameCommandSize)

	v := Name{
		DescriptorType:     aem.DescriptorEntity,
		DescriptorIndex:    0,
		NameIndex:          0,
		ConfigurationIndex: 0,
		Name:               aem.NewFixedString("preamp"),
	}
	buf, err := SerializeSetNameCommand(v)
	require.NoError(t, err)
	require.Len(t, buf, NameSize)

	back, err := DeserializeSetNameCommand(buf)
	require.NoError(t, err)
	require.Equal(t, "preamp", back.Name.String())
}

func TestSamplingRateRoundTrip(t *testing.T) {
	v := SamplingRate{DescriptorType: aem.DescriptorAudioUnit, DescriptorIndex: 0, SamplingRate: 48000}
	buf, err := SerializeSetSamplingRateCommand(v)
	require.NoError(t, err)
	back, err := DeserializeSetSamplingRateCommand(buf)
	require.NoError(t, err)
	require.Equal(t, v, back)
}

func TestClockSourceRoundTrip(t *testing.T) {
	v := ClockSource{DescriptorType: aem.DescriptorClockDomain, DescriptorIndex: 0, ClockSourceIndex: 2}
	buf, err := SerializeSetClockSourceCommand(v)
	require.NoError(t, err)
	require.Len(t, buf, ClockSourceSize)
	back, err := DeserializeSetClockSourceCommand(buf)
	require.NoError(t, err)
	require.Equal(t, v, back)
}

func TestStartStopStreamingShareLayout(t *testing.T) {
	v := StreamControl{DescriptorType: aem.DescriptorStreamInput, DescriptorIndex: 1}
	start, err := SerializeStartStreamingCommand(v)
	require.NoError(t, err)
	stop, err := SerializeStopStreamingCommand(v)
	require.NoError(t, err)
	require.Equal(t, start, stop)
}

func TestEmptyPayloadMessagesRejectNonEmpty(t *testing.T) {
	require.NoError(t, DeserializeEntityAvailable(nil))
	require.Error(t, DeserializeEntityAvailable([]byte{1}))
	require.NoError(t, DeserializeControllerAvailable(nil))
	require.Error(t, DeserializeControllerAvailable([]byte{1}))
}
