package descriptor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avdecc-go/aemcodec/pkg/aem"
	"github.com/avdecc-go/aemcodec/pkg/cursor"
)

func TestEntityRoundTrip(t *testing.T) {
	e := Entity{
		EntityID:             0x0011223344556677,
		EntityModelID:        0xaabbccddeeff0011,
		EntityCapabilities:   1,
		ConfigurationsCount:  1,
		CurrentConfiguration: 0,
		EntityName:           aem.NewFixedString("preamp"),
		GroupName:            aem.NewFixedString("studio"),
	}
	w := cursor.New(EntityFixedSize)
	require.NoError(t, e.Encode(w))
	require.Equal(t, EntityFixedSize, w.BytesWritten())

	var back Entity
	require.NoError(t, back.Decode(cursor.NewReader(w.Bytes())))
	require.Equal(t, e, back)
}

func TestJackRoundTrip(t *testing.T) {
	j := Jack{
		ObjectName:           aem.NewFixedString("Jack 1"),
		LocalizedDescription: 7,
		JackFlags:            aem.JackFlagCaptive,
		JackType:             3,
		NumberOfControls:     1,
		BaseControl:          0,
	}
	w := cursor.New(JackFixedSize)
	require.NoError(t, j.Encode(w))

	var back Jack
	require.NoError(t, back.Decode(cursor.NewReader(w.Bytes())))
	require.Equal(t, j, back)
}

func TestAvbInterfaceRoundTrip(t *testing.T) {
	a := AvbInterface{
		ObjectName:           aem.NewFixedString("eth0"),
		LocalizedDescription: 3,
		MacAddress:           aem.MacAddress{0x00, 0x11, 0x22, 0x33, 0x44, 0x55},
		InterfaceFlags:       aem.InterfaceFlagGptpSupported,
		ClockIdentity:        0x1122334455667788,
		Priority1:            248,
		ClockClass:           6,
		PortNumber:           1,
	}
	w := cursor.New(AvbInterfaceFixedSize)
	require.NoError(t, a.Encode(w))

	var back AvbInterface
	require.NoError(t, back.Decode(cursor.NewReader(w.Bytes())))
	require.Equal(t, a, back)
}

func TestClockSourceRoundTrip(t *testing.T) {
	c := ClockSource{
		ObjectName:               aem.NewFixedString("Internal"),
		LocalizedDescription:     4,
		ClockSourceFlags:         aem.ClockSourceFlagLocalID,
		ClockSourceType:          1,
		ClockSourceLocationType:  aem.DescriptorAvbInterface,
		ClockSourceLocationIndex: 0,
	}
	w := cursor.New(ClockSourceFixedSize)
	require.NoError(t, c.Encode(w))

	var back ClockSource
	require.NoError(t, back.Decode(cursor.NewReader(w.Bytes())))
	require.Equal(t, c, back)
}

func TestMemoryObjectRoundTrip(t *testing.T) {
	m := MemoryObject{
		ObjectName:            aem.NewFixedString("firmware.bin"),
		LocalizedDescription:  5,
		MemoryObjectType:      1,
		TargetDescriptorType:  aem.DescriptorEntity,
		TargetDescriptorIndex: 0,
		StartAddress:          0x1000,
		MaximumLength:         0x10000,
		Length:                4096,
	}
	w := cursor.New(MemoryObjectFixedSize)
	require.NoError(t, m.Encode(w))

	var back MemoryObject
	require.NoError(t, back.Decode(cursor.NewReader(w.Bytes())))
	require.Equal(t, m, back)
}

func TestLocaleAndStringsRoundTrip(t *testing.T) {
	l := Locale{LocaleID: aem.NewFixedString("en-US"), NumberOfStringDescriptors: 1, BaseStrings: 0}
	w := cursor.New(LocaleFixedSize)
	require.NoError(t, l.Encode(w))
	var backL Locale
	require.NoError(t, backL.Decode(cursor.NewReader(w.Bytes())))
	require.Equal(t, l, backL)

	var s Strings
	s.Values[0] = aem.NewFixedString("Preamp")
	s.Values[1] = aem.NewFixedString("Input 1")
	w2 := cursor.New(StringsFixedSize)
	require.NoError(t, s.Encode(w2))
	var backS Strings
	require.NoError(t, backS.Decode(cursor.NewReader(w2.Bytes())))
	require.Equal(t, s, backS)
}

func TestStreamPortRoundTrip(t *testing.T) {
	p := StreamPort{
		ClockDomainIndex: 0,
		PortFlags:        aem.PortFlagClockSyncSource,
		NumberOfControls: 0,
		NumberOfClusters: 2,
		BaseCluster:      0,
		NumberOfMaps:     1,
		BaseMap:          0,
	}
	w := cursor.New(StreamPortFixedSize)
	require.NoError(t, p.Encode(w))

	var back StreamPort
	require.NoError(t, back.Decode(cursor.NewReader(w.Bytes())))
	require.Equal(t, p, back)
}

func TestExternalAndInternalPortShareLayout(t *testing.T) {
	ext := ExternalPort{
		ClockDomainIndex: 0,
		PortFlags:        aem.PortFlagAsyncSampleRateConv,
		SignalType:       aem.DescriptorAudioCluster,
		SignalIndex:      1,
		BlockLatency:     10,
		JackIndex:        2,
	}
	w := cursor.New(ExternalPortFixedSize)
	require.NoError(t, ext.Encode(w))
	var backExt ExternalPort
	require.NoError(t, backExt.Decode(cursor.NewReader(w.Bytes())))
	require.Equal(t, ext, backExt)

	intp := InternalPort(ext)
	w2 := cursor.New(InternalPortFixedSize)
	require.NoError(t, intp.Encode(w2))
	require.Equal(t, w.Bytes(), w2.Bytes())
}

func TestAudioClusterRoundTrip(t *testing.T) {
	c := AudioCluster{
		ObjectName:   aem.NewFixedString("Cluster 0"),
		SignalType:   aem.DescriptorStreamPortInput,
		SignalIndex:  0,
		ChannelCount: 2,
		Format:       2,
	}
	w := cursor.New(AudioClusterFixedSize)
	require.NoError(t, c.Encode(w))

	var back AudioCluster
	require.NoError(t, back.Decode(cursor.NewReader(w.Bytes())))
	require.Equal(t, c, back)
}

func TestAudioMappingRoundTrip(t *testing.T) {
	m := AudioMapping{StreamIndex: 1, StreamChannel: 2, ClusterOffset: 3, ClusterChannel: 4}
	w := cursor.New(AudioMappingElementSize)
	require.NoError(t, m.Encode(w))

	var back AudioMapping
	require.NoError(t, back.Decode(cursor.NewReader(w.Bytes())))
	require.Equal(t, m, back)
}

func TestConfigurationFixedRoundTrip(t *testing.T) {
	c := Configuration{ObjectName: aem.NewFixedString("Configuration 0"), DescriptorCountsCount: 2}
	w := cursor.New(ConfigurationFixedSize)
	require.NoError(t, c.EncodeFixed(w))

	var back Configuration
	require.NoError(t, back.DecodeFixed(cursor.NewReader(w.Bytes())))
	require.Equal(t, c.ObjectName, back.ObjectName)
	require.Equal(t, c.DescriptorCountsCount, back.DescriptorCountsCount)
}

func TestAudioUnitFixedRoundTrip(t *testing.T) {
	a := AudioUnit{
		ObjectName:               aem.NewFixedString("Audio Unit"),
		LocalizedDescription:     9,
		NumberOfStreamInputPorts: 1,
		CurrentSamplingRate:      48000,
		SamplingRatesOffset:      uint16(AudioUnitFixedSize - 4),
		SamplingRatesCount:       2,
	}
	w := cursor.New(AudioUnitFixedSize)
	require.NoError(t, a.EncodeFixed(w))
	require.Equal(t, AudioUnitFixedSize, w.BytesWritten())

	var back AudioUnit
	require.NoError(t, back.DecodeFixed(cursor.NewReader(w.Bytes())))
	require.Equal(t, a.ObjectName, back.ObjectName)
	require.Equal(t, a.LocalizedDescription, back.LocalizedDescription)
	require.Equal(t, a.NumberOfStreamInputPorts, back.NumberOfStreamInputPorts)
	require.Equal(t, a.CurrentSamplingRate, back.CurrentSamplingRate)
	require.Equal(t, a.SamplingRatesOffset, back.SamplingRatesOffset)
	require.Equal(t, a.SamplingRatesCount, back.SamplingRatesCount)
}

func TestStreamFixedRoundTrip(t *testing.T) {
	s := Stream{
		ObjectName:           aem.NewFixedString("Stream 0"),
		LocalizedDescription: 2,
		StreamFlags:          aem.StreamFlagClockSyncSource,
		CurrentFormat:        0x1122334455667788,
		FormatsOffset:        uint16(StreamFixedSize - 4),
		NumberOfFormats:      1,
	}
	w := cursor.New(StreamFixedSize)
	require.NoError(t, s.EncodeFixed(w))
	require.Equal(t, StreamFixedSize, w.BytesWritten())

	var back Stream
	require.NoError(t, back.DecodeFixed(cursor.NewReader(w.Bytes())))
	require.Equal(t, s.ObjectName, back.ObjectName)
	require.Equal(t, s.LocalizedDescription, back.LocalizedDescription)
	require.Equal(t, s.CurrentFormat, back.CurrentFormat)
	require.Equal(t, s.FormatsOffset, back.FormatsOffset)
	require.Equal(t, s.NumberOfFormats, back.NumberOfFormats)
}

func TestAudioMapFixedRoundTrip(t *testing.T) {
	a := AudioMap{MappingsOffset: 4, NumberOfMappings: 3}
	w := cursor.New(AudioMapFixedSize)
	require.NoError(t, a.EncodeFixed(w))

	var back AudioMap
	require.NoError(t, back.DecodeFixed(cursor.NewReader(w.Bytes())))
	require.Equal(t, a.MappingsOffset, back.MappingsOffset)
	require.Equal(t, a.NumberOfMappings, back.NumberOfMappings)
}

func TestClockDomainFixedRoundTrip(t *testing.T) {
	c := ClockDomain{
		ObjectName:           aem.NewFixedString("Domain 0"),
		LocalizedDescription: 6,
		ClockSourceIndex:     1,
		ClockSourcesOffset:   uint16(ClockDomainFixedSize - 4),
		ClockSourcesCount:    2,
	}
	w := cursor.New(ClockDomainFixedSize)
	require.NoError(t, c.EncodeFixed(w))

	var back ClockDomain
	require.NoError(t, back.DecodeFixed(cursor.NewReader(w.Bytes())))
	require.Equal(t, c.ObjectName, back.ObjectName)
	require.Equal(t, c.LocalizedDescription, back.LocalizedDescription)
	require.Equal(t, c.ClockSourceIndex, back.ClockSourceIndex)
	require.Equal(t, c.ClockSourcesOffset, back.ClockSourcesOffset)
	require.Equal(t, c.ClockSourcesCount, back.ClockSourcesCount)
}

func TestStreamInfoRoundTrip(t *testing.T) {
	s := StreamInfo{
		StreamInfoFlags:        aem.StreamInfoFlagConnected,
		StreamFormat:           0x1122334455667788,
		StreamID:               0xaabbccddeeff0011,
		MsrpAccumulatedLatency: 500,
		StreamDestMac:          aem.MacAddress{0x91, 0xe0, 0xf0, 0x00, 0x01, 0x02},
		MsrpFailureCode:        0,
		StreamVlanID:           2,
	}
	w := cursor.New(StreamInfoFixedSize)
	require.NoError(t, s.Encode(w))
	require.Equal(t, StreamInfoFixedSize, w.BytesWritten())

	var back StreamInfo
	require.NoError(t, back.Decode(cursor.NewReader(w.Bytes())))
	require.Equal(t, s, back)
}
