package codec

import (
	"github.com/avdecc-go/aemcodec/pkg/aem"
	"github.com/avdecc-go/aemcodec/pkg/cursor"
	"github.com/avdecc-go/aemcodec/pkg/descriptor"
	"github.com/avdecc-go/aemcodec/pkg/diag"
)

// CommonHeaderSize is the size of the 8-byte header prefixing every
// READ_DESCRIPTOR response: {configurationIndex, reserved16,
// descriptorType, descriptorIndex}.
const CommonHeaderSize = 8

// descriptorBaseOffset is the width of the {configurationIndex, reserved16}
// prefix a base-relative variable-region offset is stated against. It is
// smaller than CommonHeaderSize: the descriptorType/descriptorIndex pair
// that follows it is part of the descriptor base, not the offset's
// reference point.
const descriptorBaseOffset = 4

// CommonHeader is the fixed prefix of every READ_DESCRIPTOR response.
type CommonHeader struct {
	ConfigurationIndex aem.ConfigurationIndex
	DescriptorType     aem.DescriptorType
	DescriptorIndex    aem.DescriptorIndex
}

func encodeCommonHeader(w *cursor.Writer, h CommonHeader) error {
	if err := h.ConfigurationIndex.Encode(w); err != nil {
		return err
	}
	if err := w.PutZeros(2); err != nil {
		return err
	}
	if err := h.DescriptorType.Encode(w); err != nil {
		return err
	}
	return h.DescriptorIndex.Encode(w)
}

func decodeCommonHeader(op string, buf []byte) (CommonHeader, error) {
	var h CommonHeader
	if len(buf) < CommonHeaderSize {
		return h, truncated(op, "commonHeader")
	}
	r := cursor.NewReader(buf)
	if err := h.ConfigurationIndex.Decode(r); err != nil {
		return CommonHeader{}, wrap(op, "configurationIndex", err)
	}
	if err := r.Skip(2); err != nil {
		return CommonHeader{}, wrap(op, "reserved16", err)
	}
	if err := h.DescriptorType.Decode(r); err != nil {
		return CommonHeader{}, wrap(op, "descriptorType", err)
	}
	if err := h.DescriptorIndex.Decode(r); err != nil {
		return CommonHeader{}, wrap(op, "descriptorIndex", err)
	}
	return h, nil
}

func sinkOrNoop(sink diag.Sink) diag.Sink {
	if sink == nil {
		return diag.NoopSink{}
	}
	return sink
}

// checkOffset re-anchors a base-relative offset to the buffer, verifies it
// does not overlap the bytes already consumed by the fixed header, and
// verifies it leaves room for count*elementSize bytes.
func checkOffset(op string, bufLen, bytesUsed int, declaredOffset uint16, count, elementSize int) (int, error) {
	reanchored := int(declaredOffset) + descriptorBaseOffset
	if reanchored < bytesUsed || reanchored > bufLen {
		return 0, badOffset(op, "offset")
	}
	needed := count * elementSize
	if bufLen-reanchored < needed {
		return 0, truncated(op, "variableTail")
	}
	return reanchored, nil
}

// ---- Entity (fixed, no variable tail) ----

// EntityMinSize is READ_DESCRIPTOR's minimum response length for ENTITY.
const EntityMinSize = CommonHeaderSize + descriptor.EntityFixedSize

// SerializeReadDescriptorEntityResponse encodes a READ_DESCRIPTOR response
// carrying an EntityDescriptor.
func SerializeReadDescriptorEntityResponse(h CommonHeader, status aem.AecpStatus, d descriptor.Entity) ([]byte, error) {
	const op = "READ_DESCRIPTOR.response[ENTITY]"
	if status != aem.StatusSuccess {
		w := cursor.New(CommonHeaderSize)
		if err := encodeCommonHeader(w, h); err != nil {
			return nil, wrap(op, "commonHeader", err)
		}
		return w.Bytes(), nil
	}
	w := cursor.New(EntityMinSize)
	if err := encodeCommonHeader(w, h); err != nil {
		return nil, wrap(op, "commonHeader", err)
	}
	if err := d.Encode(w); err != nil {
		return nil, wrap(op, "body", err)
	}
	return w.Bytes(), nil
}

// DeserializeReadDescriptorEntityResponse decodes a READ_DESCRIPTOR
// response carrying an EntityDescriptor. If status is not Success, only
// the common header is consumed and a zero-valued descriptor is returned.
func DeserializeReadDescriptorEntityResponse(buf []byte, status aem.AecpStatus, sink diag.Sink) (CommonHeader, descriptor.Entity, error) {
	const op = "READ_DESCRIPTOR.response[ENTITY]"
	h, err := decodeCommonHeader(op, buf)
	if err != nil {
		return CommonHeader{}, descriptor.Entity{}, err
	}
	if status != aem.StatusSuccess {
		return h, descriptor.Entity{}, nil
	}
	if len(buf) < EntityMinSize {
		return CommonHeader{}, descriptor.Entity{}, truncated(op, "body")
	}
	r := cursor.NewReader(buf)
	if err := r.SetPosition(CommonHeaderSize); err != nil {
		return CommonHeader{}, descriptor.Entity{}, wrap(op, "body", err)
	}
	var d descriptor.Entity
	if err := d.Decode(r); err != nil {
		return CommonHeader{}, descriptor.Entity{}, wrap(op, "body", err)
	}
	if r.Remaining() > 0 {
		sinkOrNoop(sink).Observe(diag.Event{Kind: diag.KindTrailingBytes, DescriptorType: h.DescriptorType, BufferLength: len(buf), ConsumedBytes: r.Position()})
	}
	return h, d, nil
}

// ---- Jack (fixed, no variable tail) ----

// JackMinSize is READ_DESCRIPTOR's minimum response length for JACK_INPUT/JACK_OUTPUT.
const JackMinSize = CommonHeaderSize + descriptor.JackFixedSize

// SerializeReadDescriptorJackResponse encodes a READ_DESCRIPTOR response
// carrying a JackDescriptor.
func SerializeReadDescriptorJackResponse(h CommonHeader, status aem.AecpStatus, d descriptor.Jack) ([]byte, error) {
	return serializeFixedDescriptorResponse("READ_DESCRIPTOR.response[JACK]", h, status, JackMinSize, d.Encode)
}

// DeserializeReadDescriptorJackResponse decodes a READ_DESCRIPTOR response
// carrying a JackDescriptor.
func DeserializeReadDescriptorJackResponse(buf []byte, status aem.AecpStatus, sink diag.Sink) (CommonHeader, descriptor.Jack, error) {
	var d descriptor.Jack
	h, err := deserializeFixedDescriptorResponse("READ_DESCRIPTOR.response[JACK]", buf, status, JackMinSize, sink, d.Decode)
	return h, d, err
}

// ---- AvbInterface (fixed, no variable tail) ----

// AvbInterfaceMinSize is READ_DESCRIPTOR's minimum response length for AVB_INTERFACE.
const AvbInterfaceMinSize = CommonHeaderSize + descriptor.AvbInterfaceFixedSize

// SerializeReadDescriptorAvbInterfaceResponse encodes a READ_DESCRIPTOR
// response carrying an AvbInterfaceDescriptor.
func SerializeReadDescriptorAvbInterfaceResponse(h CommonHeader, status aem.AecpStatus, d descriptor.AvbInterface) ([]byte, error) {
	return serializeFixedDescriptorResponse("READ_DESCRIPTOR.response[AVB_INTERFACE]", h, status, AvbInterfaceMinSize, d.Encode)
}

// DeserializeReadDescriptorAvbInterfaceResponse decodes a READ_DESCRIPTOR
// response carrying an AvbInterfaceDescriptor.
func DeserializeReadDescriptorAvbInterfaceResponse(buf []byte, status aem.AecpStatus, sink diag.Sink) (CommonHeader, descriptor.AvbInterface, error) {
	var d descriptor.AvbInterface
	h, err := deserializeFixedDescriptorResponse("READ_DESCRIPTOR.response[AVB_INTERFACE]", buf, status, AvbInterfaceMinSize, sink, d.Decode)
	return h, d, err
}

// ---- ClockSource (fixed, no variable tail) ----

// ClockSourceMinSize is READ_DESCRIPTOR's minimum response length for CLOCK_SOURCE.
const ClockSourceMinSize = CommonHeaderSize + descriptor.ClockSourceFixedSize

// SerializeReadDescriptorClockSourceResponse encodes a READ_DESCRIPTOR
// response carrying a ClockSourceDescriptor.
func SerializeReadDescriptorClockSourceResponse(h CommonHeader, status aem.AecpStatus, d descriptor.ClockSource) ([]byte, error) {
	return serializeFixedDescriptorResponse("READ_DESCRIPTOR.response[CLOCK_SOURCE]", h, status, ClockSourceMinSize, d.Encode)
}

// DeserializeReadDescriptorClockSourceResponse decodes a READ_DESCRIPTOR
// response carrying a ClockSourceDescriptor.
func DeserializeReadDescriptorClockSourceResponse(buf []byte, status aem.AecpStatus, sink diag.Sink) (CommonHeader, descriptor.ClockSource, error) {
	var d descriptor.ClockSource
	h, err := deserializeFixedDescriptorResponse("READ_DESCRIPTOR.response[CLOCK_SOURCE]", buf, status, ClockSourceMinSize, sink, d.Decode)
	return h, d, err
}

// ---- MemoryObject (fixed, no variable tail) ----

// MemoryObjectMinSize is READ_DESCRIPTOR's minimum response length for MEMORY_OBJECT.
const MemoryObjectMinSize = CommonHeaderSize + descriptor.MemoryObjectFixedSize

// SerializeReadDescriptorMemoryObjectResponse encodes a READ_DESCRIPTOR
// response carrying a MemoryObjectDescriptor.
func SerializeReadDescriptorMemoryObjectResponse(h CommonHeader, status aem.AecpStatus, d descriptor.MemoryObject) ([]byte, error) {
	return serializeFixedDescriptorResponse("READ_DESCRIPTOR.response[MEMORY_OBJECT]", h, status, MemoryObjectMinSize, d.Encode)
}

// DeserializeReadDescriptorMemoryObjectResponse decodes a READ_DESCRIPTOR
// response carrying a MemoryObjectDescriptor.
func DeserializeReadDescriptorMemoryObjectResponse(buf []byte, status aem.AecpStatus, sink diag.Sink) (CommonHeader, descriptor.MemoryObject, error) {
	var d descriptor.MemoryObject
	h, err := deserializeFixedDescriptorResponse("READ_DESCRIPTOR.response[MEMORY_OBJECT]", buf, status, MemoryObjectMinSize, sink, d.Decode)
	return h, d, err
}

// ---- Locale (fixed, no variable tail) ----

// LocaleMinSize is READ_DESCRIPTOR's minimum response length for LOCALE.
const LocaleMinSize = CommonHeaderSize + descriptor.LocaleFixedSize

// SerializeReadDescriptorLocaleResponse encodes a READ_DESCRIPTOR response
// carrying a LocaleDescriptor.
func SerializeReadDescriptorLocaleResponse(h CommonHeader, status aem.AecpStatus, d descriptor.Locale) ([]byte, error) {
	return serializeFixedDescriptorResponse("READ_DESCRIPTOR.response[LOCALE]", h, status, LocaleMinSize, d.Encode)
}

// DeserializeReadDescriptorLocaleResponse decodes a READ_DESCRIPTOR response
// carrying a LocaleDescriptor.
func DeserializeReadDescriptorLocaleResponse(buf []byte, status aem.AecpStatus, sink diag.Sink) (CommonHeader, descriptor.Locale, error) {
	var d descriptor.Locale
	h, err := deserializeFixedDescriptorResponse("READ_DESCRIPTOR.response[LOCALE]", buf, status, LocaleMinSize, sink, d.Decode)
	return h, d, err
}

// ---- Strings (fixed, no variable tail) ----

// StringsMinSize is READ_DESCRIPTOR's minimum response length for STRINGS.
const StringsMinSize = CommonHeaderSize + descriptor.StringsFixedSize

// SerializeReadDescriptorStringsResponse encodes a READ_DESCRIPTOR response
// carrying a StringsDescriptor.
func SerializeReadDescriptorStringsResponse(h CommonHeader, status aem.AecpStatus, d descriptor.Strings) ([]byte, error) {
	return serializeFixedDescriptorResponse("READ_DESCRIPTOR.response[STRINGS]", h, status, StringsMinSize, d.Encode)
}

// DeserializeReadDescriptorStringsResponse decodes a READ_DESCRIPTOR response
// carrying a StringsDescriptor.
func DeserializeReadDescriptorStringsResponse(buf []byte, status aem.AecpStatus, sink diag.Sink) (CommonHeader, descriptor.Strings, error) {
	var d descriptor.Strings
	h, err := deserializeFixedDescriptorResponse("READ_DESCRIPTOR.response[STRINGS]", buf, status, StringsMinSize, sink, d.Decode)
	return h, d, err
}

// ---- StreamPort (fixed, no variable tail) ----

// StreamPortMinSize is READ_DESCRIPTOR's minimum response length for
// STREAM_PORT_INPUT/STREAM_PORT_OUTPUT.
const StreamPortMinSize = CommonHeaderSize + descriptor.StreamPortFixedSize

// SerializeReadDescriptorStreamPortResponse encodes a READ_DESCRIPTOR
// response carrying a StreamPortDescriptor.
func SerializeReadDescriptorStreamPortResponse(h CommonHeader, status aem.AecpStatus, d descriptor.StreamPort) ([]byte, error) {
	return serializeFixedDescriptorResponse("READ_DESCRIPTOR.response[STREAM_PORT]", h, status, StreamPortMinSize, d.Encode)
}

// DeserializeReadDescriptorStreamPortResponse decodes a READ_DESCRIPTOR
// response carrying a StreamPortDescriptor.
func DeserializeReadDescriptorStreamPortResponse(buf []byte, status aem.AecpStatus, sink diag.Sink) (CommonHeader, descriptor.StreamPort, error) {
	var d descriptor.StreamPort
	h, err := deserializeFixedDescriptorResponse("READ_DESCRIPTOR.response[STREAM_PORT]", buf, status, StreamPortMinSize, sink, d.Decode)
	return h, d, err
}

// ---- ExternalPort / InternalPort (fixed, no variable tail, shared layout) ----

// ExternalPortMinSize is READ_DESCRIPTOR's minimum response length for
// EXTERNAL_PORT_INPUT/EXTERNAL_PORT_OUTPUT.
const ExternalPortMinSize = CommonHeaderSize + descriptor.ExternalPortFixedSize

// SerializeReadDescriptorExternalPortResponse encodes a READ_DESCRIPTOR
// response carrying an ExternalPortDescriptor.
func SerializeReadDescriptorExternalPortResponse(h CommonHeader, status aem.AecpStatus, d descriptor.ExternalPort) ([]byte, error) {
	return serializeFixedDescriptorResponse("READ_DESCRIPTOR.response[EXTERNAL_PORT]", h, status, ExternalPortMinSize, d.Encode)
}

// DeserializeReadDescriptorExternalPortResponse decodes a READ_DESCRIPTOR
// response carrying an ExternalPortDescriptor.
func DeserializeReadDescriptorExternalPortResponse(buf []byte, status aem.AecpStatus, sink diag.Sink) (CommonHeader, descriptor.ExternalPort, error) {
	var d descriptor.ExternalPort
	h, err := deserializeFixedDescriptorResponse("READ_DESCRIPTOR.response[EXTERNAL_PORT]", buf, status, ExternalPortMinSize, sink, d.Decode)
	return h, d, err
}

// InternalPortMinSize is READ_DESCRIPTOR's minimum response length for
// INTERNAL_PORT_INPUT/INTERNAL_PORT_OUTPUT; identical to ExternalPort's.
const InternalPortMinSize = CommonHeaderSize + descriptor.InternalPortFixedSize

// SerializeReadDescriptorInternalPortResponse encodes a READ_DESCRIPTOR
// response carrying an InternalPortDescriptor.
func SerializeReadDescriptorInternalPortResponse(h CommonHeader, status aem.AecpStatus, d descriptor.InternalPort) ([]byte, error) {
	return serializeFixedDescriptorResponse("READ_DESCRIPTOR.response[INTERNAL_PORT]", h, status, InternalPortMinSize, d.Encode)
}

// DeserializeReadDescriptorInternalPortResponse decodes a READ_DESCRIPTOR
// response carrying an InternalPortDescriptor.
func DeserializeReadDescriptorInternalPortResponse(buf []byte, status aem.AecpStatus, sink diag.Sink) (CommonHeader, descriptor.InternalPort, error) {
	var d descriptor.InternalPort
	h, err := deserializeFixedDescriptorResponse("READ_DESCRIPTOR.response[INTERNAL_PORT]", buf, status, InternalPortMinSize, sink, d.Decode)
	return h, d, err
}

// ---- AudioCluster (fixed, no variable tail) ----

// AudioClusterMinSize is READ_DESCRIPTOR's minimum response length for AUDIO_CLUSTER.
const AudioClusterMinSize = CommonHeaderSize + descriptor.AudioClusterFixedSize

// SerializeReadDescriptorAudioClusterResponse encodes a READ_DESCRIPTOR
// response carrying an AudioClusterDescriptor.
func SerializeReadDescriptorAudioClusterResponse(h CommonHeader, status aem.AecpStatus, d descriptor.AudioCluster) ([]byte, error) {
	return serializeFixedDescriptorResponse("READ_DESCRIPTOR.response[AUDIO_CLUSTER]", h, status, AudioClusterMinSize, d.Encode)
}

// DeserializeReadDescriptorAudioClusterResponse decodes a READ_DESCRIPTOR
// response carrying an AudioClusterDescriptor.
func DeserializeReadDescriptorAudioClusterResponse(buf []byte, status aem.AecpStatus, sink diag.Sink) (CommonHeader, descriptor.AudioCluster, error) {
	var d descriptor.AudioCluster
	h, err := deserializeFixedDescriptorResponse("READ_DESCRIPTOR.response[AUDIO_CLUSTER]", buf, status, AudioClusterMinSize, sink, d.Decode)
	return h, d, err
}

// serializeFixedDescriptorResponse and deserializeFixedDescriptorResponse
// are the one core codec shared by every pure-fixed-layout READ_DESCRIPTOR
// response (no offset/count variable tail): JACK, AVB_INTERFACE,
// CLOCK_SOURCE, MEMORY_OBJECT, LOCALE, STRINGS, STREAM_PORT, EXTERNAL_PORT,
// INTERNAL_PORT, AUDIO_CLUSTER.
func serializeFixedDescriptorResponse(op string, h CommonHeader, status aem.AecpStatus, minSize int, encode func(*cursor.Writer) error) ([]byte, error) {
	if status != aem.StatusSuccess {
		w := cursor.New(CommonHeaderSize)
		if err := encodeCommonHeader(w, h); err != nil {
			return nil, wrap(op, "commonHeader", err)
		}
		return w.Bytes(), nil
	}
	w := cursor.New(minSize)
	if err := encodeCommonHeader(w, h); err != nil {
		return nil, wrap(op, "commonHeader", err)
	}
	if err := encode(w); err != nil {
		return nil, wrap(op, "body", err)
	}
	return w.Bytes(), nil
}

func deserializeFixedDescriptorResponse(op string, buf []byte, status aem.AecpStatus, minSize int, sink diag.Sink, decode func(*cursor.Reader) error) (CommonHeader, error) {
	h, err := decodeCommonHeader(op, buf)
	if err != nil {
		return CommonHeader{}, err
	}
	if status != aem.StatusSuccess {
		return h, nil
	}
	if len(buf) < minSize {
		return CommonHeader{}, truncated(op, "body")
	}
	r := cursor.NewReader(buf)
	if err := r.SetPosition(CommonHeaderSize); err != nil {
		return CommonHeader{}, wrap(op, "body", err)
	}
	if err := decode(r); err != nil {
		return CommonHeader{}, wrap(op, "body", err)
	}
	if r.Remaining() > 0 {
		sinkOrNoop(sink).Observe(diag.Event{Kind: diag.KindTrailingBytes, DescriptorType: h.DescriptorType, BufferLength: len(buf), ConsumedBytes: r.Position()})
	}
	return h, nil
}

// ---- Configuration (variable: descriptorCounts, no offset field) ----

// ConfigurationMinSize is READ_DESCRIPTOR's minimum response length for
// CONFIGURATION.
const ConfigurationMinSize = CommonHeaderSize + descriptor.ConfigurationFixedSize

// SerializeReadDescriptorConfigurationResponse encodes a READ_DESCRIPTOR
// response carrying a ConfigurationDescriptor. The descriptorCounts
// mapping is written immediately after the fixed body, in the order given
// by keys (callers that need a specific wire order must pre-sort keys;
// order is not semantically meaningful — Go maps have none of their own).
func SerializeReadDescriptorConfigurationResponse(h CommonHeader, status aem.AecpStatus, d descriptor.Configuration, keys []aem.DescriptorType) ([]byte, error) {
	const op = "READ_DESCRIPTOR.response[CONFIGURATION]"
	if status != aem.StatusSuccess {
		w := cursor.New(CommonHeaderSize)
		if err := encodeCommonHeader(w, h); err != nil {
			return nil, wrap(op, "commonHeader", err)
		}
		return w.Bytes(), nil
	}
	if len(keys) != len(d.DescriptorCounts) {
		return nil, unknownValue(op, "descriptorCounts")
	}
	total := ConfigurationMinSize + len(keys)*descriptor.DescriptorCountElementSize
	if total > MaxAemPayload {
		return nil, &ProtocolError{Kind: KindCapacityExceeded, Op: op, Field: "descriptorCounts"}
	}
	w := cursor.New(total)
	if err := encodeCommonHeader(w, h); err != nil {
		return nil, wrap(op, "commonHeader", err)
	}
	if err := d.EncodeFixed(w); err != nil {
		return nil, wrap(op, "body", err)
	}
	for _, k := range keys {
		count, ok := d.DescriptorCounts[k]
		if !ok {
			return nil, unknownValue(op, "descriptorCounts")
		}
		if err := k.Encode(w); err != nil {
			return nil, wrap(op, "descriptorCounts.type", err)
		}
		if err := w.PutUint16(count); err != nil {
			return nil, wrap(op, "descriptorCounts.count", err)
		}
	}
	return w.Bytes(), nil
}

// DeserializeReadDescriptorConfigurationResponse decodes a READ_DESCRIPTOR
// response carrying a ConfigurationDescriptor.
func DeserializeReadDescriptorConfigurationResponse(buf []byte, status aem.AecpStatus, sink diag.Sink) (CommonHeader, descriptor.Configuration, error) {
	const op = "READ_DESCRIPTOR.response[CONFIGURATION]"
	h, err := decodeCommonHeader(op, buf)
	if err != nil {
		return CommonHeader{}, descriptor.Configuration{}, err
	}
	if status != aem.StatusSuccess {
		return h, descriptor.Configuration{}, nil
	}
	if len(buf) < ConfigurationMinSize {
		return CommonHeader{}, descriptor.Configuration{}, truncated(op, "body")
	}
	r := cursor.NewReader(buf)
	if err := r.SetPosition(CommonHeaderSize); err != nil {
		return CommonHeader{}, descriptor.Configuration{}, wrap(op, "body", err)
	}
	var d descriptor.Configuration
	if err := d.DecodeFixed(r); err != nil {
		return CommonHeader{}, descriptor.Configuration{}, wrap(op, "body", err)
	}
	needed := int(d.DescriptorCountsCount) * descriptor.DescriptorCountElementSize
	if r.Remaining() < needed {
		return CommonHeader{}, descriptor.Configuration{}, truncated(op, "descriptorCounts")
	}
	d.DescriptorCounts = make(map[aem.DescriptorType]uint16, d.DescriptorCountsCount)
	for i := 0; i < int(d.DescriptorCountsCount); i++ {
		var dt aem.DescriptorType
		if err := dt.Decode(r); err != nil {
			return CommonHeader{}, descriptor.Configuration{}, wrap(op, "descriptorCounts.type", err)
		}
		count, err := r.Uint16()
		if err != nil {
			return CommonHeader{}, descriptor.Configuration{}, wrap(op, "descriptorCounts.count", err)
		}
		d.DescriptorCounts[dt] = count
	}
	if r.Remaining() > 0 {
		sinkOrNoop(sink).Observe(diag.Event{Kind: diag.KindTrailingBytes, DescriptorType: h.DescriptorType, BufferLength: len(buf), ConsumedBytes: r.Position()})
	}
	return h, d, nil
}

// ---- AudioUnit (variable: supported sampling rates) ----

// AudioUnitMinSize is READ_DESCRIPTOR's minimum response length for
// AUDIO_UNIT.
const AudioUnitMinSize = CommonHeaderSize + descriptor.AudioUnitFixedSize

// SerializeReadDescriptorAudioUnitResponse encodes a READ_DESCRIPTOR
// response carrying an AudioUnitDescriptor. The sampling rates array is
// placed at d.SamplingRatesOffset, re-anchored against descriptorBaseOffset;
// callers normally set the offset to CommonHeaderSize + AudioUnitFixedSize -
// descriptorBaseOffset so the array immediately follows the fixed body.
func SerializeReadDescriptorAudioUnitResponse(h CommonHeader, status aem.AecpStatus, d descriptor.AudioUnit) ([]byte, error) {
	const op = "READ_DESCRIPTOR.response[AUDIO_UNIT]"
	if status != aem.StatusSuccess {
		w := cursor.New(CommonHeaderSize)
		if err := encodeCommonHeader(w, h); err != nil {
			return nil, wrap(op, "commonHeader", err)
		}
		return w.Bytes(), nil
	}
	if int(d.SamplingRatesCount) != len(d.SupportedSamplingRates) {
		return nil, unknownValue(op, "samplingRatesCount")
	}
	arrayStart := int(d.SamplingRatesOffset) + descriptorBaseOffset
	total := arrayStart + len(d.SupportedSamplingRates)*4
	if total > MaxAemPayload {
		return nil, &ProtocolError{Kind: KindCapacityExceeded, Op: op, Field: "supportedSamplingRates"}
	}
	w := cursor.New(total)
	if err := encodeCommonHeader(w, h); err != nil {
		return nil, wrap(op, "commonHeader", err)
	}
	if err := d.EncodeFixed(w); err != nil {
		return nil, wrap(op, "body", err)
	}
	if w.BytesWritten() < arrayStart {
		if err := w.PutZeros(arrayStart - w.BytesWritten()); err != nil {
			return nil, wrap(op, "padding", err)
		}
	}
	for _, rate := range d.SupportedSamplingRates {
		if err := rate.Encode(w); err != nil {
			return nil, wrap(op, "supportedSamplingRates", err)
		}
	}
	return w.Bytes(), nil
}

// DeserializeReadDescriptorAudioUnitResponse decodes a READ_DESCRIPTOR
// response carrying an AudioUnitDescriptor.
func DeserializeReadDescriptorAudioUnitResponse(buf []byte, status aem.AecpStatus, sink diag.Sink) (CommonHeader, descriptor.AudioUnit, error) {
	const op = "READ_DESCRIPTOR.response[AUDIO_UNIT]"
	h, err := decodeCommonHeader(op, buf)
	if err != nil {
		return CommonHeader{}, descriptor.AudioUnit{}, err
	}
	if status != aem.StatusSuccess {
		return h, descriptor.AudioUnit{}, nil
	}
	if len(buf) < AudioUnitMinSize {
		return CommonHeader{}, descriptor.AudioUnit{}, truncated(op, "body")
	}
	r := cursor.NewReader(buf)
	if err := r.SetPosition(CommonHeaderSize); err != nil {
		return CommonHeader{}, descriptor.AudioUnit{}, wrap(op, "body", err)
	}
	var d descriptor.AudioUnit
	if err := d.DecodeFixed(r); err != nil {
		return CommonHeader{}, descriptor.AudioUnit{}, wrap(op, "body", err)
	}
	arrayStart, err := checkOffset(op, len(buf), r.Position(), d.SamplingRatesOffset, int(d.SamplingRatesCount), 4)
	if err != nil {
		return CommonHeader{}, descriptor.AudioUnit{}, err
	}
	if err := r.SetPosition(arrayStart); err != nil {
		return CommonHeader{}, descriptor.AudioUnit{}, wrap(op, "supportedSamplingRates", err)
	}
	d.SupportedSamplingRates = make([]aem.SamplingRate, d.SamplingRatesCount)
	for i := range d.SupportedSamplingRates {
		if err := d.SupportedSamplingRates[i].Decode(r); err != nil {
			return CommonHeader{}, descriptor.AudioUnit{}, wrap(op, "supportedSamplingRates", err)
		}
	}
	if r.Remaining() > 0 {
		sinkOrNoop(sink).Observe(diag.Event{Kind: diag.KindTrailingBytes, DescriptorType: h.DescriptorType, BufferLength: len(buf), ConsumedBytes: r.Position()})
	}
	return h, d, nil
}

// ---- Stream (variable: supported formats) ----

// StreamMinSize is READ_DESCRIPTOR's minimum response length for
// STREAM_INPUT/STREAM_OUTPUT.
const StreamMinSize = CommonHeaderSize + descriptor.StreamFixedSize

// SerializeReadDescriptorStreamResponse encodes a READ_DESCRIPTOR response
// carrying a StreamDescriptor.
func SerializeReadDescriptorStreamResponse(h CommonHeader, status aem.AecpStatus, d descriptor.Stream) ([]byte, error) {
	const op = "READ_DESCRIPTOR.response[STREAM]"
	if status != aem.StatusSuccess {
		w := cursor.New(CommonHeaderSize)
		if err := encodeCommonHeader(w, h); err != nil {
			return nil, wrap(op, "commonHeader", err)
		}
		return w.Bytes(), nil
	}
	if int(d.NumberOfFormats) != len(d.SupportedFormats) {
		return nil, unknownValue(op, "numberOfFormats")
	}
	arrayStart := int(d.FormatsOffset) + descriptorBaseOffset
	total := arrayStart + len(d.SupportedFormats)*8
	if total > MaxAemPayload {
		return nil, &ProtocolError{Kind: KindCapacityExceeded, Op: op, Field: "supportedFormats"}
	}
	w := cursor.New(total)
	if err := encodeCommonHeader(w, h); err != nil {
		return nil, wrap(op, "commonHeader", err)
	}
	if err := d.EncodeFixed(w); err != nil {
		return nil, wrap(op, "body", err)
	}
	if w.BytesWritten() < arrayStart {
		if err := w.PutZeros(arrayStart - w.BytesWritten()); err != nil {
			return nil, wrap(op, "padding", err)
		}
	}
	for _, f := range d.SupportedFormats {
		if err := f.Encode(w); err != nil {
			return nil, wrap(op, "supportedFormats", err)
		}
	}
	return w.Bytes(), nil
}

// DeserializeReadDescriptorStreamResponse decodes a READ_DESCRIPTOR
// response carrying a StreamDescriptor.
func DeserializeReadDescriptorStreamResponse(buf []byte, status aem.AecpStatus, sink diag.Sink) (CommonHeader, descriptor.Stream, error) {
	const op = "READ_DESCRIPTOR.response[STREAM]"
	h, err := decodeCommonHeader(op, buf)
	if err != nil {
		return CommonHeader{}, descriptor.Stream{}, err
	}
	if status != aem.StatusSuccess {
		return h, descriptor.Stream{}, nil
	}
	if len(buf) < StreamMinSize {
		return CommonHeader{}, descriptor.Stream{}, truncated(op, "body")
	}
	r := cursor.NewReader(buf)
	if err := r.SetPosition(CommonHeaderSize); err != nil {
		return CommonHeader{}, descriptor.Stream{}, wrap(op, "body", err)
	}
	var d descriptor.Stream
	if err := d.DecodeFixed(r); err != nil {
		return CommonHeader{}, descriptor.Stream{}, wrap(op, "body", err)
	}
	arrayStart, err := checkOffset(op, len(buf), r.Position(), d.FormatsOffset, int(d.NumberOfFormats), 8)
	if err != nil {
		return CommonHeader{}, descriptor.Stream{}, err
	}
	if err := r.SetPosition(arrayStart); err != nil {
		return CommonHeader{}, descriptor.Stream{}, wrap(op, "supportedFormats", err)
	}
	d.SupportedFormats = make([]aem.StreamFormat, d.NumberOfFormats)
	for i := range d.SupportedFormats {
		if err := d.SupportedFormats[i].Decode(r); err != nil {
			return CommonHeader{}, descriptor.Stream{}, wrap(op, "supportedFormats", err)
		}
	}
	if r.Remaining() > 0 {
		sinkOrNoop(sink).Observe(diag.Event{Kind: diag.KindTrailingBytes, DescriptorType: h.DescriptorType, BufferLength: len(buf), ConsumedBytes: r.Position()})
	}
	return h, d, nil
}

// ---- AudioMap (variable: mappings) ----

// AudioMapMinSize is READ_DESCRIPTOR's minimum response length for
// AUDIO_MAP.
const AudioMapMinSize = CommonHeaderSize + descriptor.AudioMapFixedSize

// SerializeReadDescriptorAudioMapResponse encodes a READ_DESCRIPTOR
// response carrying an AudioMapDescriptor.
func SerializeReadDescriptorAudioMapResponse(h CommonHeader, status aem.AecpStatus, d descriptor.AudioMap) ([]byte, error) {
	const op = "READ_DESCRIPTOR.response[AUDIO_MAP]"
	if status != aem.StatusSuccess {
		w := cursor.New(CommonHeaderSize)
		if err := encodeCommonHeader(w, h); err != nil {
			return nil, wrap(op, "commonHeader", err)
		}
		return w.Bytes(), nil
	}
	if int(d.NumberOfMappings) != len(d.Mappings) {
		return nil, unknownValue(op, "numberOfMappings")
	}
	arrayStart := int(d.MappingsOffset) + descriptorBaseOffset
	total := arrayStart + len(d.Mappings)*descriptor.AudioMappingElementSize
	if total > MaxAemPayload {
		return nil, &ProtocolError{Kind: KindCapacityExceeded, Op: op, Field: "mappings"}
	}
	w := cursor.New(total)
	if err := encodeCommonHeader(w, h); err != nil {
		return nil, wrap(op, "commonHeader", err)
	}
	if err := d.EncodeFixed(w); err != nil {
		return nil, wrap(op, "body", err)
	}
	if w.BytesWritten() < arrayStart {
		if err := w.PutZeros(arrayStart - w.BytesWritten()); err != nil {
			return nil, wrap(op, "padding", err)
		}
	}
	for _, m := range d.Mappings {
		if err := m.Encode(w); err != nil {
			return nil, wrap(op, "mappings", err)
		}
	}
	return w.Bytes(), nil
}

// DeserializeReadDescriptorAudioMapResponse decodes a READ_DESCRIPTOR
// response carrying an AudioMapDescriptor.
func DeserializeReadDescriptorAudioMapResponse(buf []byte, status aem.AecpStatus, sink diag.Sink) (CommonHeader, descriptor.AudioMap, error) {
	const op = "READ_DESCRIPTOR.response[AUDIO_MAP]"
	h, err := decodeCommonHeader(op, buf)
	if err != nil {
		return CommonHeader{}, descriptor.AudioMap{}, err
	}
	if status != aem.StatusSuccess {
		return h, descriptor.AudioMap{}, nil
	}
	if len(buf) < AudioMapMinSize {
		return CommonHeader{}, descriptor.AudioMap{}, truncated(op, "body")
	}
	r := cursor.NewReader(buf)
	if err := r.SetPosition(CommonHeaderSize); err != nil {
		return CommonHeader{}, descriptor.AudioMap{}, wrap(op, "body", err)
	}
	var d descriptor.AudioMap
	if err := d.DecodeFixed(r); err != nil {
		return CommonHeader{}, descriptor.AudioMap{}, wrap(op, "body", err)
	}
	arrayStart, err := checkOffset(op, len(buf), r.Position(), d.MappingsOffset, int(d.NumberOfMappings), descriptor.AudioMappingElementSize)
	if err != nil {
		return CommonHeader{}, descriptor.AudioMap{}, err
	}
	if err := r.SetPosition(arrayStart); err != nil {
		return CommonHeader{}, descriptor.AudioMap{}, wrap(op, "mappings", err)
	}
	d.Mappings = make([]descriptor.AudioMapping, d.NumberOfMappings)
	for i := range d.Mappings {
		if err := d.Mappings[i].Decode(r); err != nil {
			return CommonHeader{}, descriptor.AudioMap{}, wrap(op, "mappings", err)
		}
	}
	if r.Remaining() > 0 {
		sinkOrNoop(sink).Observe(diag.Event{Kind: diag.KindTrailingBytes, DescriptorType: h.DescriptorType, BufferLength: len(buf), ConsumedBytes: r.Position()})
	}
	return h, d, nil
}

// ---- ClockDomain (variable: clock sources) ----

// ClockDomainMinSize is READ_DESCRIPTOR's minimum response length for
// CLOCK_DOMAIN.
const ClockDomainMinSize = CommonHeaderSize + descriptor.ClockDomainFixedSize

// SerializeReadDescriptorClockDomainResponse encodes a READ_DESCRIPTOR
// response carrying a ClockDomainDescriptor.
func SerializeReadDescriptorClockDomainResponse(h CommonHeader, status aem.AecpStatus, d descriptor.ClockDomain) ([]byte, error) {
	const op = "READ_DESCRIPTOR.response[CLOCK_DOMAIN]"
	if status != aem.StatusSuccess {
		w := cursor.New(CommonHeaderSize)
		if err := encodeCommonHeader(w, h); err != nil {
			return nil, wrap(op, "commonHeader", err)
		}
		return w.Bytes(), nil
	}
	if int(d.ClockSourcesCount) != len(d.ClockSources) {
		return nil, unknownValue(op, "clockSourcesCount")
	}
	arrayStart := int(d.ClockSourcesOffset) + descriptorBaseOffset
	total := arrayStart + len(d.ClockSources)*2
	if total > MaxAemPayload {
		return nil, &ProtocolError{Kind: KindCapacityExceeded, Op: op, Field: "clockSources"}
	}
	w := cursor.New(total)
	if err := encodeCommonHeader(w, h); err != nil {
		return nil, wrap(op, "commonHeader", err)
	}
	if err := d.EncodeFixed(w); err != nil {
		return nil, wrap(op, "body", err)
	}
	if w.BytesWritten() < arrayStart {
		if err := w.PutZeros(arrayStart - w.BytesWritten()); err != nil {
			return nil, wrap(op, "padding", err)
		}
	}
	for _, cs := range d.ClockSources {
		if err := cs.Encode(w); err != nil {
			return nil, wrap(op, "clockSources", err)
		}
	}
	return w.Bytes(), nil
}

// DeserializeReadDescriptorClockDomainResponse decodes a READ_DESCRIPTOR
// response carrying a ClockDomainDescriptor.
func DeserializeReadDescriptorClockDomainResponse(buf []byte, status aem.AecpStatus, sink diag.Sink) (CommonHeader, descriptor.ClockDomain, error) {
	const op = "READ_DESCRIPTOR.response[CLOCK_DOMAIN]"
	h, err := decodeCommonHeader(op, buf)
	if err != nil {
		return CommonHeader{}, descriptor.ClockDomain{}, err
	}
	if status != aem.StatusSuccess {
		return h, descriptor.ClockDomain{}, nil
	}
	if len(buf) < ClockDomainMinSize {
		return CommonHeader{}, descriptor.ClockDomain{}, truncated(op, "body")
	}
	r := cursor.NewReader(buf)
	if err := r.SetPosition(CommonHeaderSize); err != nil {
		return CommonHeader{}, descriptor.ClockDomain{}, wrap(op, "body", err)
	}
	var d descriptor.ClockDomain
	if err := d.DecodeFixed(r); err != nil {
		return CommonHeader{}, descriptor.ClockDomain{}, wrap(op, "body", err)
	}
	arrayStart, err := checkOffset(op, len(buf), r.Position(), d.ClockSourcesOffset, int(d.ClockSourcesCount), 2)
	if err != nil {
		return CommonHeader{}, descriptor.ClockDomain{}, err
	}
	if err := r.SetPosition(arrayStart); err != nil {
		return CommonHeader{}, descriptor.ClockDomain{}, wrap(op, "clockSources", err)
	}
	d.ClockSources = make([]aem.ClockSourceIndex, d.ClockSourcesCount)
	for i := range d.ClockSources {
		if err := d.ClockSources[i].Decode(r); err != nil {
			return CommonHeader{}, descriptor.ClockDomain{}, wrap(op, "clockSources", err)
		}
	}
	if r.Remaining() > 0 {
		sinkOrNoop(sink).Observe(diag.Event{Kind: diag.KindTrailingBytes, DescriptorType: h.DescriptorType, BufferLength: len(buf), ConsumedBytes: r.Position()})
	}
	return h, d, nil
}
