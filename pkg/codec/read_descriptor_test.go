package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avdecc-go/aemcodec/pkg/aem"
	"github.com/avdecc-go/aemcodec/pkg/descriptor"
	"github.com/avdecc-go/aemcodec/pkg/diag"
)

func TestReadDescriptorEntityRoundTrip(t *testing.T) {
	h := CommonHeader{ConfigurationIndex: 0, DescriptorType: aem.DescriptorEntity, DescriptorIndex: 0}
	d := descriptor.Entity{
		EntityID:            0x0011223344556677,
		EntityName:          aem.NewFixedString("preamp"),
		ConfigurationsCount: 1,
	}
	buf, err := SerializeReadDescriptorEntityResponse(h, aem.StatusSuccess, d)
	require.NoError(t, err)
	require.Len(t, buf, EntityMinSize)

	gotH, gotD, err := DeserializeReadDescriptorEntityResponse(buf, aem.StatusSuccess, nil)
	require.NoError(t, err)
	require.Equal(t, h, gotH)
	require.Equal(t, d.EntityID, gotD.EntityID)
	require.Equal(t, "preamp", gotD.EntityName.String())
}

func TestReadDescriptorEntityStatusGateStopsAtCommonHeader(t *testing.T) {
	h := CommonHeader{ConfigurationIndex: 0, DescriptorType: aem.DescriptorEntity, DescriptorIndex: 0}
	buf, err := SerializeReadDescriptorEntityResponse(h, aem.StatusNoSuchDescriptor, descriptor.Entity{})
	require.NoError(t, err)
	require.Len(t, buf, CommonHeaderSize)

	gotH, gotD, err := DeserializeReadDescriptorEntityResponse(buf, aem.StatusNoSuchDescriptor, nil)
	require.NoError(t, err)
	require.Equal(t, h, gotH)
	require.Equal(t, descriptor.Entity{}, gotD)
}

func TestReadDescriptorAudioUnitOffsetReanchoring(t *testing.T) {
	// S3: sampling rates array placed immediately after the fixed body,
	// so the declared offset is CommonHeaderSize + AudioUnitFixedSize -
	// descriptorBaseOffset (0x0090).
	h := CommonHeader{ConfigurationIndex: 0, DescriptorType: aem.DescriptorAudioUnit, DescriptorIndex: 0}
	rates := []aem.SamplingRate{48000, 96000}
	d := descriptor.AudioUnit{
		ObjectName:             aem.NewFixedString("Audio Unit"),
		SamplingRatesOffset:    uint16(CommonHeaderSize + descriptor.AudioUnitFixedSize - descriptorBaseOffset),
		SamplingRatesCount:     uint16(len(rates)),
		SupportedSamplingRates: rates,
	}
	buf, err := SerializeReadDescriptorAudioUnitResponse(h, aem.StatusSuccess, d)
	require.NoError(t, err)

	gotH, gotD, err := DeserializeReadDescriptorAudioUnitResponse(buf, aem.StatusSuccess, nil)
	require.NoError(t, err)
	require.Equal(t, h, gotH)
	require.Equal(t, rates, gotD.SupportedSamplingRates)
}

func TestReadDescriptorAudioUnitBadOffsetOverlapsFixedBody(t *testing.T) {
	h := CommonHeader{ConfigurationIndex: 0, DescriptorType: aem.DescriptorAudioUnit, DescriptorIndex: 0}
	d := descriptor.AudioUnit{
		SamplingRatesOffset:    uint16(CommonHeaderSize + descriptor.AudioUnitFixedSize - descriptorBaseOffset),
		SamplingRatesCount:     1,
		SupportedSamplingRates: []aem.SamplingRate{48000},
	}
	buf, err := SerializeReadDescriptorAudioUnitResponse(h, aem.StatusSuccess, d)
	require.NoError(t, err)

	// Patch the on-wire SamplingRatesOffset field to 0: re-anchored (0+4)
	// lands inside the bytes already consumed by the fixed body.
	offsetFieldPos := CommonHeaderSize + descriptor.AudioUnitFixedSize - 4
	buf[offsetFieldPos] = 0
	buf[offsetFieldPos+1] = 0

	_, _, err = DeserializeReadDescriptorAudioUnitResponse(buf, aem.StatusSuccess, nil)
	require.ErrorIs(t, err, ErrBadOffset)
}

func TestReadDescriptorAudioUnitBadOffsetPastBufferEnd(t *testing.T) {
	h := CommonHeader{ConfigurationIndex: 0, DescriptorType: aem.DescriptorAudioUnit, DescriptorIndex: 0}
	d := descriptor.AudioUnit{
		SamplingRatesOffset:    uint16(CommonHeaderSize + descriptor.AudioUnitFixedSize - descriptorBaseOffset),
		SamplingRatesCount:     1,
		SupportedSamplingRates: []aem.SamplingRate{48000},
	}
	buf, err := SerializeReadDescriptorAudioUnitResponse(h, aem.StatusSuccess, d)
	require.NoError(t, err)

	// Patch the on-wire SamplingRatesOffset field so that, re-anchored, it
	// lands past the end of the buffer rather than merely truncating the
	// declared tail.
	offsetFieldPos := CommonHeaderSize + descriptor.AudioUnitFixedSize - 4
	farOffset := uint16(len(buf) + 100 - descriptorBaseOffset)
	buf[offsetFieldPos] = byte(farOffset >> 8)
	buf[offsetFieldPos+1] = byte(farOffset)

	_, _, err = DeserializeReadDescriptorAudioUnitResponse(buf, aem.StatusSuccess, nil)
	require.ErrorIs(t, err, ErrBadOffset)
}

func TestReadDescriptorConfigurationUnorderedMapping(t *testing.T) {
	// S4: descriptorCounts = {AUDIO_UNIT: 1, STREAM_INPUT: 2, STREAM_OUTPUT: 2}.
	h := CommonHeader{ConfigurationIndex: 0, DescriptorType: aem.DescriptorConfiguration, DescriptorIndex: 0}
	d := descriptor.Configuration{
		ObjectName:            aem.NewFixedString("Configuration 0"),
		DescriptorCountsCount: 3,
		DescriptorCounts: map[aem.DescriptorType]uint16{
			aem.DescriptorAudioUnit:    1,
			aem.DescriptorStreamInput:  2,
			aem.DescriptorStreamOutput: 2,
		},
	}
	keys := []aem.DescriptorType{aem.DescriptorAudioUnit, aem.DescriptorStreamInput, aem.DescriptorStreamOutput}
	buf, err := SerializeReadDescriptorConfigurationResponse(h, aem.StatusSuccess, d, keys)
	require.NoError(t, err)
	require.Len(t, buf, ConfigurationMinSize+3*descriptor.DescriptorCountElementSize)

	gotH, gotD, err := DeserializeReadDescriptorConfigurationResponse(buf, aem.StatusSuccess, nil)
	require.NoError(t, err)
	require.Equal(t, h, gotH)
	require.Equal(t, d.DescriptorCounts, gotD.DescriptorCounts)
}

func TestReadDescriptorConfigurationKeyCountMismatch(t *testing.T) {
	h := CommonHeader{DescriptorType: aem.DescriptorConfiguration}
	d := descriptor.Configuration{DescriptorCountsCount: 1, DescriptorCounts: map[aem.DescriptorType]uint16{aem.DescriptorAudioUnit: 1}}
	_, err := SerializeReadDescriptorConfigurationResponse(h, aem.StatusSuccess, d, nil)
	require.Error(t, err)
}

func TestReadDescriptorStreamOffsetReanchoring(t *testing.T) {
	h := CommonHeader{DescriptorType: aem.DescriptorStreamInput, DescriptorIndex: 0}
	formats := []aem.StreamFormat{0x1122334455667788}
	d := descriptor.Stream{
		ObjectName:      aem.NewFixedString("Stream 0"),
		FormatsOffset:   uint16(CommonHeaderSize + descriptor.StreamFixedSize - descriptorBaseOffset),
		NumberOfFormats: uint16(len(formats)),
		SupportedFormats: formats,
	}
	buf, err := SerializeReadDescriptorStreamResponse(h, aem.StatusSuccess, d)
	require.NoError(t, err)
	_, gotD, err := DeserializeReadDescriptorStreamResponse(buf, aem.StatusSuccess, nil)
	require.NoError(t, err)
	require.Equal(t, formats, gotD.SupportedFormats)
}

func TestReadDescriptorClockDomainTruncatedTail(t *testing.T) {
	h := CommonHeader{DescriptorType: aem.DescriptorClockDomain}
	d := descriptor.ClockDomain{
		ObjectName:         aem.NewFixedString("Domain 0"),
		ClockSourcesOffset: uint16(CommonHeaderSize + descriptor.ClockDomainFixedSize - descriptorBaseOffset),
		ClockSourcesCount:  2,
		ClockSources:       []aem.ClockSourceIndex{0, 1},
	}
	buf, err := SerializeReadDescriptorClockDomainResponse(h, aem.StatusSuccess, d)
	require.NoError(t, err)

	_, _, err = DeserializeReadDescriptorClockDomainResponse(buf[:len(buf)-1], aem.StatusSuccess, nil)
	require.ErrorIs(t, err, ErrTruncatedPayload)
}

func TestReadDescriptorTrailingBytesReportedToSink(t *testing.T) {
	h := CommonHeader{DescriptorType: aem.DescriptorEntity}
	d := descriptor.Entity{EntityName: aem.NewFixedString("x")}
	buf, err := SerializeReadDescriptorEntityResponse(h, aem.StatusSuccess, d)
	require.NoError(t, err)
	padded := append(buf, 0xff, 0xff)

	var got diag.Event
	sink := recordingSink{observe: func(e diag.Event) { got = e }}
	_, _, err = DeserializeReadDescriptorEntityResponse(padded, aem.StatusSuccess, sink)
	require.NoError(t, err)
	require.Equal(t, diag.KindTrailingBytes, got.Kind)
	require.Equal(t, len(padded), got.BufferLength)
	require.Equal(t, EntityMinSize, got.ConsumedBytes)
}

type recordingSink struct {
	observe func(diag.Event)
}

func (s recordingSink) Observe(e diag.Event) { s.observe(e) }
