// Package codec implements the AEM command/response payload codecs: the
// fixed-layout pairs of §4.3, the READ_DESCRIPTOR response family of §4.4,
// and the audio-mapping messages of §4.5. Every Serialize function returns
// a buffer of exactly its message's declared size (or fails with
// CapacityExceeded); every Deserialize function either returns a fully
// populated result or a ProtocolError, never a partial one.
package codec

import (
	"github.com/avdecc-go/aemcodec/pkg/aem"
	"github.com/avdecc-go/aemcodec/pkg/cursor"
	"github.com/avdecc-go/aemcodec/pkg/descriptor"
)

// MaxAemPayload is the largest AEM command/response payload the standard
// allows inside one AECP PDU.
const MaxAemPayload = 524

// AcquireEntity carries {flags, ownerID, descriptorType, descriptorIndex}.
// The command and response share this exact layout: SerializeAcquireEntityResponse
// and DeserializeAcquireEntityResponse forward to the command's codec, so the
// two payload sizes can never diverge.
type AcquireEntity struct {
	Flags          aem.AcquireFlags
	OwnerID        aem.UniqueIdentifier
	DescriptorType aem.DescriptorType
	DescriptorIndex aem.DescriptorIndex
}

// AcquireEntitySize is the fixed wire size of AcquireEntity in both
// directions.
const AcquireEntitySize = 4 + 8 + 2 + 2

// SerializeAcquireEntityCommand encodes an ACQUIRE_ENTITY command payload.
func SerializeAcquireEntityCommand(v AcquireEntity) ([]byte, error) {
	return serializeAcquireEntity("ACQUIRE_ENTITY.command", v)
}

// DeserializeAcquireEntityCommand decodes an ACQUIRE_ENTITY command payload.
func DeserializeAcquireEntityCommand(buf []byte) (AcquireEntity, error) {
	return deserializeAcquireEntity("ACQUIRE_ENTITY.command", buf)
}

// SerializeAcquireEntityResponse encodes an ACQUIRE_ENTITY response
// payload. It is a thin forwarder to the command codec: the standard
// declares the two layouts equal.
func SerializeAcquireEntityResponse(v AcquireEntity) ([]byte, error) {
	return serializeAcquireEntity("ACQUIRE_ENTITY.response", v)
}

// DeserializeAcquireEntityResponse decodes an ACQUIRE_ENTITY response payload.
func DeserializeAcquireEntityResponse(buf []byte) (AcquireEntity, error) {
	return deserializeAcquireEntity("ACQUIRE_ENTITY.response", buf)
}

func serializeAcquireEntity(op string, v AcquireEntity) ([]byte, error) {
	w := cursor.New(AcquireEntitySize)
	if err := v.Flags.Encode(w); err != nil {
		return nil, wrap(op, "flags", err)
	}
	if err := v.OwnerID.Encode(w); err != nil {
		return nil, wrap(op, "ownerID", err)
	}
	if err := v.DescriptorType.Encode(w); err != nil {
		return nil, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Encode(w); err != nil {
		return nil, wrap(op, "descriptorIndex", err)
	}
	return w.Bytes(), nil
}

func deserializeAcquireEntity(op string, buf []byte) (AcquireEntity, error) {
	var v AcquireEntity
	if len(buf) < AcquireEntitySize {
		return v, truncated(op, "payload")
	}
	r := cursor.NewReader(buf)
	if err := v.Flags.Decode(r); err != nil {
		return AcquireEntity{}, wrap(op, "flags", err)
	}
	if err := v.OwnerID.Decode(r); err != nil {
		return AcquireEntity{}, wrap(op, "ownerID", err)
	}
	if err := v.DescriptorType.Decode(r); err != nil {
		return AcquireEntity{}, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Decode(r); err != nil {
		return AcquireEntity{}, wrap(op, "descriptorIndex", err)
	}
	return v, nil
}

// LockEntity carries {flags, lockedID, descriptorType, descriptorIndex}.
// Same request/response-equality treatment as AcquireEntity.
type LockEntity struct {
	Flags          aem.LockFlags
	LockedID       aem.UniqueIdentifier
	DescriptorType aem.DescriptorType
	DescriptorIndex aem.DescriptorIndex
}

// LockEntitySize is the fixed wire size of LockEntity in both directions.
const LockEntitySize = 4 + 8 + 2 + 2

// SerializeLockEntityCommand encodes a LOCK_ENTITY command payload.
func SerializeLockEntityCommand(v LockEntity) ([]byte, error) {
	return serializeLockEntity("LOCK_ENTITY.command", v)
}

// DeserializeLockEntityCommand decodes a LOCK_ENTITY command payload.
func DeserializeLockEntityCommand(buf []byte) (LockEntity, error) {
	return deserializeLockEntity("LOCK_ENTITY.command", buf)
}

// SerializeLockEntityResponse forwards to the command codec.
func SerializeLockEntityResponse(v LockEntity) ([]byte, error) {
	return serializeLockEntity("LOCK_ENTITY.response", v)
}

// DeserializeLockEntityResponse forwards to the command codec.
func DeserializeLockEntityResponse(buf []byte) (LockEntity, error) {
	return deserializeLockEntity("LOCK_ENTITY.response", buf)
}

func serializeLockEntity(op string, v LockEntity) ([]byte, error) {
	w := cursor.New(LockEntitySize)
	if err := v.Flags.Encode(w); err != nil {
		return nil, wrap(op, "flags", err)
	}
	if err := v.LockedID.Encode(w); err != nil {
		return nil, wrap(op, "lockedID", err)
	}
	if err := v.DescriptorType.Encode(w); err != nil {
		return nil, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Encode(w); err != nil {
		return nil, wrap(op, "descriptorIndex", err)
	}
	return w.Bytes(), nil
}

func deserializeLockEntity(op string, buf []byte) (LockEntity, error) {
	var v LockEntity
	if len(buf) < LockEntitySize {
		return v, truncated(op, "payload")
	}
	r := cursor.NewReader(buf)
	if err := v.Flags.Decode(r); err != nil {
		return LockEntity{}, wrap(op, "flags", err)
	}
	if err := v.LockedID.Decode(r); err != nil {
		return LockEntity{}, wrap(op, "lockedID", err)
	}
	if err := v.DescriptorType.Decode(r); err != nil {
		return LockEntity{}, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Decode(r); err != nil {
		return LockEntity{}, wrap(op, "descriptorIndex", err)
	}
	return v, nil
}

// ReadDescriptorCommand carries {configurationIndex, reserved16,
// descriptorType, descriptorIndex}.
type ReadDescriptorCommand struct {
	ConfigurationIndex aem.ConfigurationIndex
	DescriptorType     aem.DescriptorType
	DescriptorIndex    aem.DescriptorIndex
}

// ReadDescriptorCommandSize is the fixed wire size of ReadDescriptorCommand.
const ReadDescriptorCommandSize = 2 + 2 + 2 + 2

// SerializeReadDescriptorCommand encodes a READ_DESCRIPTOR command payload.
func SerializeReadDescriptorCommand(v ReadDescriptorCommand) ([]byte, error) {
	const op = "READ_DESCRIPTOR.command"
	w := cursor.New(ReadDescriptorCommandSize)
	if err := v.ConfigurationIndex.Encode(w); err != nil {
		return nil, wrap(op, "configurationIndex", err)
	}
	if err := w.PutZeros(2); err != nil {
		return nil, wrap(op, "reserved16", err)
	}
	if err := v.DescriptorType.Encode(w); err != nil {
		return nil, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Encode(w); err != nil {
		return nil, wrap(op, "descriptorIndex", err)
	}
	return w.Bytes(), nil
}

// DeserializeReadDescriptorCommand decodes a READ_DESCRIPTOR command payload.
func DeserializeReadDescriptorCommand(buf []byte) (ReadDescriptorCommand, error) {
	const op = "READ_DESCRIPTOR.command"
	var v ReadDescriptorCommand
	if len(buf) < ReadDescriptorCommandSize {
		return v, truncated(op, "payload")
	}
	r := cursor.NewReader(buf)
	if err := v.ConfigurationIndex.Decode(r); err != nil {
		return ReadDescriptorCommand{}, wrap(op, "configurationIndex", err)
	}
	if err := r.Skip(2); err != nil {
		return ReadDescriptorCommand{}, wrap(op, "reserved16", err)
	}
	if err := v.DescriptorType.Decode(r); err != nil {
		return ReadDescriptorCommand{}, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Decode(r); err != nil {
		return ReadDescriptorCommand{}, wrap(op, "descriptorIndex", err)
	}
	return v, nil
}

// Configuration carries {reserved16, configurationIndex}, used by
// SET_CONFIGURATION command/response and GET_CONFIGURATION response.
// GET_CONFIGURATION's command has no payload; see
// SerializeGetConfigurationCommand.
type Configuration struct {
	ConfigurationIndex aem.ConfigurationIndex
}

// ConfigurationSize is the fixed wire size of Configuration.
const ConfigurationSize = 2 + 2

// SerializeSetConfigurationCommand encodes a SET_CONFIGURATION command payload.
func SerializeSetConfigurationCommand(v Configuration) ([]byte, error) {
	return serializeConfiguration("SET_CONFIGURATION.command", v)
}

// DeserializeSetConfigurationCommand decodes a SET_CONFIGURATION command payload.
func DeserializeSetConfigurationCommand(buf []byte) (Configuration, error) {
	return deserializeConfiguration("SET_CONFIGURATION.command", buf)
}

// SerializeSetConfigurationResponse forwards to the SET command codec.
func SerializeSetConfigurationResponse(v Configuration) ([]byte, error) {
	return serializeConfiguration("SET_CONFIGURATION.response", v)
}

// DeserializeSetConfigurationResponse forwards to the SET command codec.
func DeserializeSetConfigurationResponse(buf []byte) (Configuration, error) {
	return deserializeConfiguration("SET_CONFIGURATION.response", buf)
}

// SerializeGetConfigurationCommand encodes GET_CONFIGURATION's empty command
// payload.
func SerializeGetConfigurationCommand() []byte { return []byte{} }

// DeserializeGetConfigurationCommand validates GET_CONFIGURATION's command
// payload is empty.
func DeserializeGetConfigurationCommand(buf []byte) error {
	if len(buf) != 0 {
		return unknownValue("GET_CONFIGURATION.command", "payload")
	}
	return nil
}

// SerializeGetConfigurationResponse encodes a GET_CONFIGURATION response payload.
func SerializeGetConfigurationResponse(v Configuration) ([]byte, error) {
	return serializeConfiguration("GET_CONFIGURATION.response", v)
}

// DeserializeGetConfigurationResponse decodes a GET_CONFIGURATION response payload.
func DeserializeGetConfigurationResponse(buf []byte) (Configuration, error) {
	return deserializeConfiguration("GET_CONFIGURATION.response", buf)
}

func serializeConfiguration(op string, v Configuration) ([]byte, error) {
	w := cursor.New(ConfigurationSize)
	if err := w.PutZeros(2); err != nil {
		return nil, wrap(op, "reserved16", err)
	}
	if err := v.ConfigurationIndex.Encode(w); err != nil {
		return nil, wrap(op, "configurationIndex", err)
	}
	return w.Bytes(), nil
}

func deserializeConfiguration(op string, buf []byte) (Configuration, error) {
	var v Configuration
	if len(buf) < ConfigurationSize {
		return v, truncated(op, "payload")
	}
	r := cursor.NewReader(buf)
	if err := r.Skip(2); err != nil {
		return Configuration{}, wrap(op, "reserved16", err)
	}
	if err := v.ConfigurationIndex.Decode(r); err != nil {
		return Configuration{}, wrap(op, "configurationIndex", err)
	}
	return v, nil
}

// StreamFormat carries {descriptorType, descriptorIndex[, streamFormat]}.
// SET_STREAM_FORMAT's command carries the format; GET_STREAM_FORMAT's
// command does not (use GetStreamFormatCommand). Both responses reuse the
// SET command's full layout.
type StreamFormat struct {
	DescriptorType  aem.DescriptorType
	DescriptorIndex aem.DescriptorIndex
	StreamFormat    aem.StreamFormat
}

// StreamFormatSize is the fixed wire size of StreamFormat.
const StreamFormatSize = 2 + 2 + 8

// GetStreamFormatCommand carries {descriptorType, descriptorIndex}.
type GetStreamFormatCommand struct {
	DescriptorType  aem.DescriptorType
	DescriptorIndex aem.DescriptorIndex
}

// GetStreamFormatCommandSize is the fixed wire size of GetStreamFormatCommand.
const GetStreamFormatCommandSize = 2 + 2

// SerializeSetStreamFormatCommand encodes a SET_STREAM_FORMAT command payload.
func SerializeSetStreamFormatCommand(v StreamFormat) ([]byte, error) {
	return serializeStreamFormat("SET_STREAM_FORMAT.command", v)
}

// DeserializeSetStreamFormatCommand decodes a SET_STREAM_FORMAT command payload.
func DeserializeSetStreamFormatCommand(buf []byte) (StreamFormat, error) {
	return deserializeStreamFormat("SET_STREAM_FORMAT.command", buf)
}

// SerializeSetStreamFormatResponse forwards to the SET command codec.
func SerializeSetStreamFormatResponse(v StreamFormat) ([]byte, error) {
	return serializeStreamFormat("SET_STREAM_FORMAT.response", v)
}

// DeserializeSetStreamFormatResponse forwards to the SET command codec.
func DeserializeSetStreamFormatResponse(buf []byte) (StreamFormat, error) {
	return deserializeStreamFormat("SET_STREAM_FORMAT.response", buf)
}

// SerializeGetStreamFormatCommand encodes a GET_STREAM_FORMAT command payload.
func SerializeGetStreamFormatCommand(v GetStreamFormatCommand) ([]byte, error) {
	const op = "GET_STREAM_FORMAT.command"
	w := cursor.New(GetStreamFormatCommandSize)
	if err := v.DescriptorType.Encode(w); err != nil {
		return nil, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Encode(w); err != nil {
		return nil, wrap(op, "descriptorIndex", err)
	}
	return w.Bytes(), nil
}

// DeserializeGetStreamFormatCommand decodes a GET_STREAM_FORMAT command payload.
func DeserializeGetStreamFormatCommand(buf []byte) (GetStreamFormatCommand, error) {
	const op = "GET_STREAM_FORMAT.command"
	var v GetStreamFormatCommand
	if len(buf) < GetStreamFormatCommandSize {
		return v, truncated(op, "payload")
	}
	r := cursor.NewReader(buf)
	if err := v.DescriptorType.Decode(r); err != nil {
		return GetStreamFormatCommand{}, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Decode(r); err != nil {
		return GetStreamFormatCommand{}, wrap(op, "descriptorIndex", err)
	}
	return v, nil
}

// SerializeGetStreamFormatResponse forwards to the SET command's layout.
func SerializeGetStreamFormatResponse(v StreamFormat) ([]byte, error) {
	return serializeStreamFormat("GET_STREAM_FORMAT.response", v)
}

// DeserializeGetStreamFormatResponse forwards to the SET command's layout.
func DeserializeGetStreamFormatResponse(buf []byte) (StreamFormat, error) {
	return deserializeStreamFormat("GET_STREAM_FORMAT.response", buf)
}

func serializeStreamFormat(op string, v StreamFormat) ([]byte, error) {
	w := cursor.New(StreamFormatSize)
	if err := v.DescriptorType.Encode(w); err != nil {
		return nil, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Encode(w); err != nil {
		return nil, wrap(op, "descriptorIndex", err)
	}
	if err := v.StreamFormat.Encode(w); err != nil {
		return nil, wrap(op, "streamFormat", err)
	}
	return w.Bytes(), nil
}

func deserializeStreamFormat(op string, buf []byte) (StreamFormat, error) {
	var v StreamFormat
	if len(buf) < StreamFormatSize {
		return v, truncated(op, "payload")
	}
	r := cursor.NewReader(buf)
	if err := v.DescriptorType.Decode(r); err != nil {
		return StreamFormat{}, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Decode(r); err != nil {
		return StreamFormat{}, wrap(op, "descriptorIndex", err)
	}
	if err := v.StreamFormat.Decode(r); err != nil {
		return StreamFormat{}, wrap(op, "streamFormat", err)
	}
	return v, nil
}

// StreamInfo carries {descriptorType, descriptorIndex} followed by the
// full StreamInfo body, for SET_STREAM_INFO's command and both directions'
// response. GET_STREAM_INFO's command is GetStreamInfoCommand.
type StreamInfo struct {
	DescriptorType  aem.DescriptorType
	DescriptorIndex aem.DescriptorIndex
	Info            descriptor.StreamInfo
}

// StreamInfoSize is the fixed wire size of StreamInfo.
const StreamInfoSize = 2 + 2 + descriptor.StreamInfoFixedSize

// GetStreamInfoCommand carries {descriptorType, descriptorIndex}.
type GetStreamInfoCommand struct {
	DescriptorType  aem.DescriptorType
	DescriptorIndex aem.DescriptorIndex
}

// GetStreamInfoCommandSize is the fixed wire size of GetStreamInfoCommand.
const GetStreamInfoCommandSize = 2 + 2

// SerializeSetStreamInfoCommand encodes a SET_STREAM_INFO command payload.
func SerializeSetStreamInfoCommand(v StreamInfo) ([]byte, error) {
	return serializeStreamInfo("SET_STREAM_INFO.command", v)
}

// DeserializeSetStreamInfoCommand decodes a SET_STREAM_INFO command payload.
func DeserializeSetStreamInfoCommand(buf []byte) (StreamInfo, error) {
	return deserializeStreamInfo("SET_STREAM_INFO.command", buf)
}

// SerializeSetStreamInfoResponse forwards to the SET command codec.
func SerializeSetStreamInfoResponse(v StreamInfo) ([]byte, error) {
	return serializeStreamInfo("SET_STREAM_INFO.response", v)
}

// DeserializeSetStreamInfoResponse forwards to the SET command codec.
func DeserializeSetStreamInfoResponse(buf []byte) (StreamInfo, error) {
	return deserializeStreamInfo("SET_STREAM_INFO.response", buf)
}

// SerializeGetStreamInfoCommand encodes a GET_STREAM_INFO command payload.
func SerializeGetStreamInfoCommand(v GetStreamInfoCommand) ([]byte, error) {
	const op = "GET_STREAM_INFO.command"
	w := cursor.New(GetStreamInfoCommandSize)
	if err := v.DescriptorType.Encode(w); err != nil {
		return nil, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Encode(w); err != nil {
		return nil, wrap(op, "descriptorIndex", err)
	}
	return w.Bytes(), nil
}

// DeserializeGetStreamInfoCommand decodes a GET_STREAM_INFO command payload.
func DeserializeGetStreamInfoCommand(buf []byte) (GetStreamInfoCommand, error) {
	const op = "GET_STREAM_INFO.command"
	var v GetStreamInfoCommand
	if len(buf) < GetStreamInfoCommandSize {
		return v, truncated(op, "payload")
	}
	r := cursor.NewReader(buf)
	if err := v.DescriptorType.Decode(r); err != nil {
		return GetStreamInfoCommand{}, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Decode(r); err != nil {
		return GetStreamInfoCommand{}, wrap(op, "descriptorIndex", err)
	}
	return v, nil
}

// SerializeGetStreamInfoResponse forwards to the SET command's layout.
func SerializeGetStreamInfoResponse(v StreamInfo) ([]byte, error) {
	return serializeStreamInfo("GET_STREAM_INFO.response", v)
}

// DeserializeGetStreamInfoResponse forwards to the SET command's layout.
func DeserializeGetStreamInfoResponse(buf []byte) (StreamInfo, error) {
	return deserializeStreamInfo("GET_STREAM_INFO.response", buf)
}

func serializeStreamInfo(op string, v StreamInfo) ([]byte, error) {
	w := cursor.New(StreamInfoSize)
	if err := v.DescriptorType.Encode(w); err != nil {
		return nil, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Encode(w); err != nil {
		return nil, wrap(op, "descriptorIndex", err)
	}
	if err := v.Info.Encode(w); err != nil {
		return nil, wrap(op, "streamInfo", err)
	}
	return w.Bytes(), nil
}

func deserializeStreamInfo(op string, buf []byte) (StreamInfo, error) {
	var v StreamInfo
	if len(buf) < StreamInfoSize {
		return v, truncated(op, "payload")
	}
	r := cursor.NewReader(buf)
	if err := v.DescriptorType.Decode(r); err != nil {
		return StreamInfo{}, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Decode(r); err != nil {
		return StreamInfo{}, wrap(op, "descriptorIndex", err)
	}
	if err := v.Info.Decode(r); err != nil {
		return StreamInfo{}, wrap(op, "streamInfo", err)
	}
	return v, nil
}

// Name carries {descriptorType, descriptorIndex, nameIndex,
// configurationIndex[, name64]}. SET_NAME's command and both directions'
// response carry the name; GET_NAME's command does not (use
// GetNameCommand).
type Name struct {
	DescriptorType     aem.DescriptorType
	DescriptorIndex    aem.DescriptorIndex
	NameIndex          uint16
	ConfigurationIndex aem.ConfigurationIndex
	Name               aem.AvdeccFixedString
}

// NameSize is the fixed wire size of Name.
const NameSize = 2 + 2 + 2 + 2 + aem.FixedStringSize

// GetNameCommand carries {descriptorType, descriptorIndex, nameIndex,
// configurationIndex}.
type GetNameCommand struct {
	DescriptorType     aem.DescriptorType
	DescriptorIndex    aem.DescriptorIndex
	NameIndex          uint16
	ConfigurationIndex aem.ConfigurationIndex
}

// GetNameCommandSize is the fixed wire size of GetNameCommand.
const GetNameCommandSize = 2 + 2 + 2 + 2

// SerializeSetNameCommand encodes a SET_NAME command payload.
func SerializeSetNameCommand(v Name) ([]byte, error) {
	return serializeName("SET_NAME.command", v)
}

// DeserializeSetNameCommand decodes a SET_NAME command payload.
func DeserializeSetNameCommand(buf []byte) (Name, error) {
	return deserializeName("SET_NAME.command", buf)
}

// SerializeSetNameResponse forwards to the SET command codec.
func SerializeSetNameResponse(v Name) ([]byte, error) {
	return serializeName("SET_NAME.response", v)
}

// DeserializeSetNameResponse forwards to the SET command codec.
func DeserializeSetNameResponse(buf []byte) (Name, error) {
	return deserializeName("SET_NAME.response", buf)
}

// SerializeGetNameCommand encodes a GET_NAME command payload.
func SerializeGetNameCommand(v GetNameCommand) ([]byte, error) {
	const op = "GET_NAME.command"
	w := cursor.New(GetNameCommandSize)
	if err := v.DescriptorType.Encode(w); err != nil {
		return nil, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Encode(w); err != nil {
		return nil, wrap(op, "descriptorIndex", err)
	}
	if err := w.PutUint16(v.NameIndex); err != nil {
		return nil, wrap(op, "nameIndex", err)
	}
	if err := v.ConfigurationIndex.Encode(w); err != nil {
		return nil, wrap(op, "configurationIndex", err)
	}
	return w.Bytes(), nil
}

// DeserializeGetNameCommand decodes a GET_NAME command payload.
func DeserializeGetNameCommand(buf []byte) (GetNameCommand, error) {
	const op = "GET_NAME.command"
	var v GetNameCommand
	if len(buf) < GetNameCommandSize {
		return v, truncated(op, "payload")
	}
	r := cursor.NewReader(buf)
	if err := v.DescriptorType.Decode(r); err != nil {
		return GetNameCommand{}, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Decode(r); err != nil {
		return GetNameCommand{}, wrap(op, "descriptorIndex", err)
	}
	var err error
	if v.NameIndex, err = r.Uint16(); err != nil {
		return GetNameCommand{}, wrap(op, "nameIndex", err)
	}
	if err := v.ConfigurationIndex.Decode(r); err != nil {
		return GetNameCommand{}, wrap(op, "configurationIndex", err)
	}
	return v, nil
}

// SerializeGetNameResponse forwards to the SET command's layout.
func SerializeGetNameResponse(v Name) ([]byte, error) {
	return serializeName("GET_NAME.response", v)
}

// DeserializeGetNameResponse forwards to the SET command's layout.
func DeserializeGetNameResponse(buf []byte) (Name, error) {
	return deserializeName("GET_NAME.response", buf)
}

func serializeName(op string, v Name) ([]byte, error) {
	w := cursor.New(NameSize)
	if err := v.DescriptorType.Encode(w); err != nil {
		return nil, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Encode(w); err != nil {
		return nil, wrap(op, "descriptorIndex", err)
	}
	if err := w.PutUint16(v.NameIndex); err != nil {
		return nil, wrap(op, "nameIndex", err)
	}
	if err := v.ConfigurationIndex.Encode(w); err != nil {
		return nil, wrap(op, "configurationIndex", err)
	}
	if err := v.Name.Encode(w); err != nil {
		return nil, wrap(op, "name", err)
	}
	return w.Bytes(), nil
}

func deserializeName(op string, buf []byte) (Name, error) {
	var v Name
	if len(buf) < NameSize {
		return v, truncated(op, "payload")
	}
	r := cursor.NewReader(buf)
	if err := v.DescriptorType.Decode(r); err != nil {
		return Name{}, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Decode(r); err != nil {
		return Name{}, wrap(op, "descriptorIndex", err)
	}
	var err error
	if v.NameIndex, err = r.Uint16(); err != nil {
		return Name{}, wrap(op, "nameIndex", err)
	}
	if err := v.ConfigurationIndex.Decode(r); err != nil {
		return Name{}, wrap(op, "configurationIndex", err)
	}
	if err := v.Name.Decode(r); err != nil {
		return Name{}, wrap(op, "name", err)
	}
	return v, nil
}

// SamplingRate carries {descriptorType, descriptorIndex[, samplingRate]}.
type SamplingRate struct {
	DescriptorType  aem.DescriptorType
	DescriptorIndex aem.DescriptorIndex
	SamplingRate    aem.SamplingRate
}

// SamplingRateSize is the fixed wire size of SamplingRate.
const SamplingRateSize = 2 + 2 + 4

// GetSamplingRateCommand carries {descriptorType, descriptorIndex}.
type GetSamplingRateCommand struct {
	DescriptorType  aem.DescriptorType
	DescriptorIndex aem.DescriptorIndex
}

// GetSamplingRateCommandSize is the fixed wire size of GetSamplingRateCommand.
const GetSamplingRateCommandSize = 2 + 2

// SerializeSetSamplingRateCommand encodes a SET_SAMPLING_RATE command payload.
func SerializeSetSamplingRateCommand(v SamplingRate) ([]byte, error) {
	return serializeSamplingRate("SET_SAMPLING_RATE.command", v)
}

// DeserializeSetSamplingRateCommand decodes a SET_SAMPLING_RATE command payload.
func DeserializeSetSamplingRateCommand(buf []byte) (SamplingRate, error) {
	return deserializeSamplingRate("SET_SAMPLING_RATE.command", buf)
}

// SerializeSetSamplingRateResponse forwards to the SET command codec.
func SerializeSetSamplingRateResponse(v SamplingRate) ([]byte, error) {
	return serializeSamplingRate("SET_SAMPLING_RATE.response", v)
}

// DeserializeSetSamplingRateResponse forwards to the SET command codec.
func DeserializeSetSamplingRateResponse(buf []byte) (SamplingRate, error) {
	return deserializeSamplingRate("SET_SAMPLING_RATE.response", buf)
}

// SerializeGetSamplingRateCommand encodes a GET_SAMPLING_RATE command payload.
func SerializeGetSamplingRateCommand(v GetSamplingRateCommand) ([]byte, error) {
	const op = "GET_SAMPLING_RATE.command"
	w := cursor.New(GetSamplingRateCommandSize)
	if err := v.DescriptorType.Encode(w); err != nil {
		return nil, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Encode(w); err != nil {
		return nil, wrap(op, "descriptorIndex", err)
	}
	return w.Bytes(), nil
}

// DeserializeGetSamplingRateCommand decodes a GET_SAMPLING_RATE command payload.
func DeserializeGetSamplingRateCommand(buf []byte) (GetSamplingRateCommand, error) {
	const op = "GET_SAMPLING_RATE.command"
	var v GetSamplingRateCommand
	if len(buf) < GetSamplingRateCommandSize {
		return v, truncated(op, "payload")
	}
	r := cursor.NewReader(buf)
	if err := v.DescriptorType.Decode(r); err != nil {
		return GetSamplingRateCommand{}, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Decode(r); err != nil {
		return GetSamplingRateCommand{}, wrap(op, "descriptorIndex", err)
	}
	return v, nil
}

// SerializeGetSamplingRateResponse forwards to the SET command's layout.
func SerializeGetSamplingRateResponse(v SamplingRate) ([]byte, error) {
	return serializeSamplingRate("GET_SAMPLING_RATE.response", v)
}

// DeserializeGetSamplingRateResponse forwards to the SET command's layout.
func DeserializeGetSamplingRateResponse(buf []byte) (SamplingRate, error) {
	return deserializeSamplingRate("GET_SAMPLING_RATE.response", buf)
}

func serializeSamplingRate(op string, v SamplingRate) ([]byte, error) {
	w := cursor.New(SamplingRateSize)
	if err := v.DescriptorType.Encode(w); err != nil {
		return nil, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Encode(w); err != nil {
		return nil, wrap(op, "descriptorIndex", err)
	}
	if err := v.SamplingRate.Encode(w); err != nil {
		return nil, wrap(op, "samplingRate", err)
	}
	return w.Bytes(), nil
}

func deserializeSamplingRate(op string, buf []byte) (SamplingRate, error) {
	var v SamplingRate
	if len(buf) < SamplingRateSize {
		return v, truncated(op, "payload")
	}
	r := cursor.NewReader(buf)
	if err := v.DescriptorType.Decode(r); err != nil {
		return SamplingRate{}, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Decode(r); err != nil {
		return SamplingRate{}, wrap(op, "descriptorIndex", err)
	}
	if err := v.SamplingRate.Decode(r); err != nil {
		return SamplingRate{}, wrap(op, "samplingRate", err)
	}
	return v, nil
}

// ClockSource carries {descriptorType, descriptorIndex, clockSourceIndex,
// reserved16}.
type ClockSource struct {
	DescriptorType   aem.DescriptorType
	DescriptorIndex  aem.DescriptorIndex
	ClockSourceIndex aem.ClockSourceIndex
}

// ClockSourceSize is the fixed wire size of ClockSource.
const ClockSourceSize = 2 + 2 + 2 + 2

// GetClockSourceCommand carries {descriptorType, descriptorIndex}.
type GetClockSourceCommand struct {
	DescriptorType  aem.DescriptorType
	DescriptorIndex aem.DescriptorIndex
}

// GetClockSourceCommandSize is the fixed wire size of GetClockSourceCommand.
const GetClockSourceCommandSize = 2 + 2

// SerializeSetClockSourceCommand encodes a SET_CLOCK_SOURCE command payload.
func SerializeSetClockSourceCommand(v ClockSource) ([]byte, error) {
	return serializeClockSource("SET_CLOCK_SOURCE.command", v)
}

// DeserializeSetClockSourceCommand decodes a SET_CLOCK_SOURCE command payload.
func DeserializeSetClockSourceCommand(buf []byte) (ClockSource, error) {
	return deserializeClockSource("SET_CLOCK_SOURCE.command", buf)
}

// SerializeSetClockSourceResponse forwards to the SET command codec.
func SerializeSetClockSourceResponse(v ClockSource) ([]byte, error) {
	return serializeClockSource("SET_CLOCK_SOURCE.response", v)
}

// DeserializeSetClockSourceResponse forwards to the SET command codec.
func DeserializeSetClockSourceResponse(buf []byte) (ClockSource, error) {
	return deserializeClockSource("SET_CLOCK_SOURCE.response", buf)
}

// SerializeGetClockSourceCommand encodes a GET_CLOCK_SOURCE command payload.
func SerializeGetClockSourceCommand(v GetClockSourceCommand) ([]byte, error) {
	const op = "GET_CLOCK_SOURCE.command"
	w := cursor.New(GetClockSourceCommandSize)
	if err := v.DescriptorType.Encode(w); err != nil {
		return nil, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Encode(w); err != nil {
		return nil, wrap(op, "descriptorIndex", err)
	}
	return w.Bytes(), nil
}

// DeserializeGetClockSourceCommand decodes a GET_CLOCK_SOURCE command payload.
func DeserializeGetClockSourceCommand(buf []byte) (GetClockSourceCommand, error) {
	const op = "GET_CLOCK_SOURCE.command"
	var v GetClockSourceCommand
	if len(buf) < GetClockSourceCommandSize {
		return v, truncated(op, "payload")
	}
	r := cursor.NewReader(buf)
	if err := v.DescriptorType.Decode(r); err != nil {
		return GetClockSourceCommand{}, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Decode(r); err != nil {
		return GetClockSourceCommand{}, wrap(op, "descriptorIndex", err)
	}
	return v, nil
}

// SerializeGetClockSourceResponse forwards to the SET command's layout.
func SerializeGetClockSourceResponse(v ClockSource) ([]byte, error) {
	return serializeClockSource("GET_CLOCK_SOURCE.response", v)
}

// DeserializeGetClockSourceResponse forwards to the SET command's layout.
func DeserializeGetClockSourceResponse(buf []byte) (ClockSource, error) {
	return deserializeClockSource("GET_CLOCK_SOURCE.response", buf)
}

func serializeClockSource(op string, v ClockSource) ([]byte, error) {
	w := cursor.New(ClockSourceSize)
	if err := v.DescriptorType.Encode(w); err != nil {
		return nil, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Encode(w); err != nil {
		return nil, wrap(op, "descriptorIndex", err)
	}
	if err := v.ClockSourceIndex.Encode(w); err != nil {
		return nil, wrap(op, "clockSourceIndex", err)
	}
	if err := w.PutZeros(2); err != nil {
		return nil, wrap(op, "reserved16", err)
	}
	return w.Bytes(), nil
}

func deserializeClockSource(op string, buf []byte) (ClockSource, error) {
	var v ClockSource
	if len(buf) < ClockSourceSize {
		return v, truncated(op, "payload")
	}
	r := cursor.NewReader(buf)
	if err := v.DescriptorType.Decode(r); err != nil {
		return ClockSource{}, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Decode(r); err != nil {
		return ClockSource{}, wrap(op, "descriptorIndex", err)
	}
	if err := v.ClockSourceIndex.Decode(r); err != nil {
		return ClockSource{}, wrap(op, "clockSourceIndex", err)
	}
	if err := r.Skip(2); err != nil {
		return ClockSource{}, wrap(op, "reserved16", err)
	}
	return v, nil
}

// StreamControl carries {descriptorType, descriptorIndex}, shared by
// START_STREAMING and STOP_STREAMING in both directions.
type StreamControl struct {
	DescriptorType  aem.DescriptorType
	DescriptorIndex aem.DescriptorIndex
}

// StreamControlSize is the fixed wire size of StreamControl.
const StreamControlSize = 2 + 2

// SerializeStartStreamingCommand encodes a START_STREAMING command payload.
func SerializeStartStreamingCommand(v StreamControl) ([]byte, error) {
	return serializeStreamControl("START_STREAMING.command", v)
}

// DeserializeStartStreamingCommand decodes a START_STREAMING command payload.
func DeserializeStartStreamingCommand(buf []byte) (StreamControl, error) {
	return deserializeStreamControl("START_STREAMING.command", buf)
}

// SerializeStartStreamingResponse forwards to the command codec.
func SerializeStartStreamingResponse(v StreamControl) ([]byte, error) {
	return serializeStreamControl("START_STREAMING.response", v)
}

// DeserializeStartStreamingResponse forwards to the command codec.
func DeserializeStartStreamingResponse(buf []byte) (StreamControl, error) {
	return deserializeStreamControl("START_STREAMING.response", buf)
}

// SerializeStopStreamingCommand encodes a STOP_STREAMING command payload.
func SerializeStopStreamingCommand(v StreamControl) ([]byte, error) {
	return serializeStreamControl("STOP_STREAMING.command", v)
}

// DeserializeStopStreamingCommand decodes a STOP_STREAMING command payload.
func DeserializeStopStreamingCommand(buf []byte) (StreamControl, error) {
	return deserializeStreamControl("STOP_STREAMING.command", buf)
}

// SerializeStopStreamingResponse forwards to the command codec.
func SerializeStopStreamingResponse(v StreamControl) ([]byte, error) {
	return serializeStreamControl("STOP_STREAMING.response", v)
}

// DeserializeStopStreamingResponse forwards to the command codec.
func DeserializeStopStreamingResponse(buf []byte) (StreamControl, error) {
	return deserializeStreamControl("STOP_STREAMING.response", buf)
}

func serializeStreamControl(op string, v StreamControl) ([]byte, error) {
	w := cursor.New(StreamControlSize)
	if err := v.DescriptorType.Encode(w); err != nil {
		return nil, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Encode(w); err != nil {
		return nil, wrap(op, "descriptorIndex", err)
	}
	return w.Bytes(), nil
}

func deserializeStreamControl(op string, buf []byte) (StreamControl, error) {
	var v StreamControl
	if len(buf) < StreamControlSize {
		return v, truncated(op, "payload")
	}
	r := cursor.NewReader(buf)
	if err := v.DescriptorType.Decode(r); err != nil {
		return StreamControl{}, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Decode(r); err != nil {
		return StreamControl{}, wrap(op, "descriptorIndex", err)
	}
	return v, nil
}

// SerializeEntityAvailable encodes ENTITY_AVAILABLE's empty payload
// (identical in both directions).
func SerializeEntityAvailable() []byte { return []byte{} }

// DeserializeEntityAvailable validates ENTITY_AVAILABLE's payload is empty.
func DeserializeEntityAvailable(buf []byte) error {
	if len(buf) != 0 {
		return unknownValue("ENTITY_AVAILABLE", "payload")
	}
	return nil
}

// SerializeControllerAvailable encodes CONTROLLER_AVAILABLE's empty
// payload (identical in both directions).
func SerializeControllerAvailable() []byte { return []byte{} }

// DeserializeControllerAvailable validates CONTROLLER_AVAILABLE's payload
// is empty.
func DeserializeControllerAvailable(buf []byte) error {
	if len(buf) != 0 {
		return unknownValue("CONTROLLER_AVAILABLE", "payload")
	}
	return nil
}
