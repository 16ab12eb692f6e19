package codec

import (
	"github.com/avdecc-go/aemcodec/pkg/aem"
	"github.com/avdecc-go/aemcodec/pkg/cursor"
	"github.com/avdecc-go/aemcodec/pkg/descriptor"
)

// AudioMappingElementSize is the on-wire size of one AudioMapping.
const AudioMappingElementSize = descriptor.AudioMappingElementSize

// encodeMappings and decodeMappings are the one core array codec shared by
// GET_AUDIO_MAP's response and ADD/REMOVE_AUDIO_MAPPINGS's command and
// response — the three payloads differ only in their fixed header.
func encodeMappings(w *cursor.Writer, mappings []descriptor.AudioMapping) error {
	for _, m := range mappings {
		if err := m.Encode(w); err != nil {
			return err
		}
	}
	return nil
}

func decodeMappings(r *cursor.Reader, count int) ([]descriptor.AudioMapping, error) {
	mappings := make([]descriptor.AudioMapping, count)
	for i := range mappings {
		if err := mappings[i].Decode(r); err != nil {
			return nil, err
		}
	}
	return mappings, nil
}

// GetAudioMapCommand carries GET_AUDIO_MAP's request.
type GetAudioMapCommand struct {
	DescriptorType  aem.DescriptorType
	DescriptorIndex aem.DescriptorIndex
	MapIndex        aem.MapIndex
}

// GetAudioMapCommandSize is GET_AUDIO_MAP's fixed command size.
const GetAudioMapCommandSize = 8

// SerializeGetAudioMapCommand encodes a GET_AUDIO_MAP command.
func SerializeGetAudioMapCommand(v GetAudioMapCommand) ([]byte, error) {
	const op = "GET_AUDIO_MAP.command"
	w := cursor.New(GetAudioMapCommandSize)
	if err := v.DescriptorType.Encode(w); err != nil {
		return nil, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Encode(w); err != nil {
		return nil, wrap(op, "descriptorIndex", err)
	}
	if err := v.MapIndex.Encode(w); err != nil {
		return nil, wrap(op, "mapIndex", err)
	}
	if err := w.PutZeros(2); err != nil {
		return nil, wrap(op, "reserved16", err)
	}
	return w.Bytes(), nil
}

// DeserializeGetAudioMapCommand decodes a GET_AUDIO_MAP command.
func DeserializeGetAudioMapCommand(buf []byte) (GetAudioMapCommand, error) {
	const op = "GET_AUDIO_MAP.command"
	if len(buf) < GetAudioMapCommandSize {
		return GetAudioMapCommand{}, truncated(op, "payload")
	}
	r := cursor.NewReader(buf)
	var v GetAudioMapCommand
	if err := v.DescriptorType.Decode(r); err != nil {
		return GetAudioMapCommand{}, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Decode(r); err != nil {
		return GetAudioMapCommand{}, wrap(op, "descriptorIndex", err)
	}
	if err := v.MapIndex.Decode(r); err != nil {
		return GetAudioMapCommand{}, wrap(op, "mapIndex", err)
	}
	return v, wrap(op, "reserved16", r.Skip(2))
}

// GetAudioMapResponse carries GET_AUDIO_MAP's response.
type GetAudioMapResponse struct {
	DescriptorType   aem.DescriptorType
	DescriptorIndex  aem.DescriptorIndex
	MapIndex         aem.MapIndex
	NumberOfMaps     uint16
	NumberOfMappings uint16
	Mappings         []descriptor.AudioMapping
}

// GetAudioMapResponseHeaderSize is GET_AUDIO_MAP's fixed response header
// size, before the mapping array.
const GetAudioMapResponseHeaderSize = 12

// SerializeGetAudioMapResponse encodes a GET_AUDIO_MAP response.
func SerializeGetAudioMapResponse(v GetAudioMapResponse) ([]byte, error) {
	const op = "GET_AUDIO_MAP.response"
	if int(v.NumberOfMappings) != len(v.Mappings) {
		return nil, unknownValue(op, "numberOfMappings")
	}
	total := GetAudioMapResponseHeaderSize + len(v.Mappings)*AudioMappingElementSize
	if total > MaxAemPayload {
		return nil, &ProtocolError{Kind: KindCapacityExceeded, Op: op, Field: "mapping"}
	}
	w := cursor.New(total)
	if err := v.DescriptorType.Encode(w); err != nil {
		return nil, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Encode(w); err != nil {
		return nil, wrap(op, "descriptorIndex", err)
	}
	if err := v.MapIndex.Encode(w); err != nil {
		return nil, wrap(op, "mapIndex", err)
	}
	if err := w.PutUint16(v.NumberOfMaps); err != nil {
		return nil, wrap(op, "numberOfMaps", err)
	}
	if err := w.PutUint16(v.NumberOfMappings); err != nil {
		return nil, wrap(op, "numberOfMappings", err)
	}
	if err := w.PutZeros(2); err != nil {
		return nil, wrap(op, "reserved16", err)
	}
	if err := encodeMappings(w, v.Mappings); err != nil {
		return nil, wrap(op, "mapping", err)
	}
	return w.Bytes(), nil
}

// DeserializeGetAudioMapResponse decodes a GET_AUDIO_MAP response. The
// fixed header (12 bytes) is the size precondition; the mapping array
// then requires numberOfMappings*8 further bytes.
func DeserializeGetAudioMapResponse(buf []byte) (GetAudioMapResponse, error) {
	const op = "GET_AUDIO_MAP.response"
	if len(buf) < GetAudioMapResponseHeaderSize {
		return GetAudioMapResponse{}, truncated(op, "header")
	}
	r := cursor.NewReader(buf)
	var v GetAudioMapResponse
	if err := v.DescriptorType.Decode(r); err != nil {
		return GetAudioMapResponse{}, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Decode(r); err != nil {
		return GetAudioMapResponse{}, wrap(op, "descriptorIndex", err)
	}
	if err := v.MapIndex.Decode(r); err != nil {
		return GetAudioMapResponse{}, wrap(op, "mapIndex", err)
	}
	var err error
	if v.NumberOfMaps, err = r.Uint16(); err != nil {
		return GetAudioMapResponse{}, wrap(op, "numberOfMaps", err)
	}
	if v.NumberOfMappings, err = r.Uint16(); err != nil {
		return GetAudioMapResponse{}, wrap(op, "numberOfMappings", err)
	}
	if err := r.Skip(2); err != nil {
		return GetAudioMapResponse{}, wrap(op, "reserved16", err)
	}
	needed := int(v.NumberOfMappings) * AudioMappingElementSize
	if r.Remaining() < needed {
		return GetAudioMapResponse{}, truncated(op, "mapping")
	}
	if v.Mappings, err = decodeMappings(r, int(v.NumberOfMappings)); err != nil {
		return GetAudioMapResponse{}, wrap(op, "mapping", err)
	}
	return v, nil
}

// AudioMappings carries the shared ADD/REMOVE_AUDIO_MAPPINGS layout, used
// identically by command and response in both directions.
type AudioMappings struct {
	DescriptorType   aem.DescriptorType
	DescriptorIndex  aem.DescriptorIndex
	NumberOfMappings uint16
	Mappings         []descriptor.AudioMapping
}

// AudioMappingsHeaderSize is ADD/REMOVE_AUDIO_MAPPINGS's fixed header size,
// before the mapping array.
const AudioMappingsHeaderSize = 8

func serializeAudioMappings(op string, v AudioMappings) ([]byte, error) {
	if int(v.NumberOfMappings) != len(v.Mappings) {
		return nil, unknownValue(op, "numberOfMappings")
	}
	total := AudioMappingsHeaderSize + len(v.Mappings)*AudioMappingElementSize
	if total > MaxAemPayload {
		return nil, &ProtocolError{Kind: KindCapacityExceeded, Op: op, Field: "mapping"}
	}
	w := cursor.New(total)
	if err := v.DescriptorType.Encode(w); err != nil {
		return nil, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Encode(w); err != nil {
		return nil, wrap(op, "descriptorIndex", err)
	}
	if err := w.PutUint16(v.NumberOfMappings); err != nil {
		return nil, wrap(op, "numberOfMappings", err)
	}
	if err := w.PutZeros(2); err != nil {
		return nil, wrap(op, "reserved16", err)
	}
	if err := encodeMappings(w, v.Mappings); err != nil {
		return nil, wrap(op, "mapping", err)
	}
	return w.Bytes(), nil
}

func deserializeAudioMappings(op string, buf []byte) (AudioMappings, error) {
	if len(buf) < AudioMappingsHeaderSize {
		return AudioMappings{}, truncated(op, "header")
	}
	r := cursor.NewReader(buf)
	var v AudioMappings
	if err := v.DescriptorType.Decode(r); err != nil {
		return AudioMappings{}, wrap(op, "descriptorType", err)
	}
	if err := v.DescriptorIndex.Decode(r); err != nil {
		return AudioMappings{}, wrap(op, "descriptorIndex", err)
	}
	var err error
	if v.NumberOfMappings, err = r.Uint16(); err != nil {
		return AudioMappings{}, wrap(op, "numberOfMappings", err)
	}
	if err := r.Skip(2); err != nil {
		return AudioMappings{}, wrap(op, "reserved16", err)
	}
	needed := int(v.NumberOfMappings) * AudioMappingElementSize
	if r.Remaining() < needed {
		return AudioMappings{}, truncated(op, "mapping")
	}
	if v.Mappings, err = decodeMappings(r, int(v.NumberOfMappings)); err != nil {
		return AudioMappings{}, wrap(op, "mapping", err)
	}
	return v, nil
}

// SerializeAddAudioMappingsCommand encodes an ADD_AUDIO_MAPPINGS command.
func SerializeAddAudioMappingsCommand(v AudioMappings) ([]byte, error) {
	return serializeAudioMappings("ADD_AUDIO_MAPPINGS.command", v)
}

// DeserializeAddAudioMappingsCommand decodes an ADD_AUDIO_MAPPINGS command.
func DeserializeAddAudioMappingsCommand(buf []byte) (AudioMappings, error) {
	return deserializeAudioMappings("ADD_AUDIO_MAPPINGS.command", buf)
}

// SerializeAddAudioMappingsResponse encodes an ADD_AUDIO_MAPPINGS response.
func SerializeAddAudioMappingsResponse(v AudioMappings) ([]byte, error) {
	return serializeAudioMappings("ADD_AUDIO_MAPPINGS.response", v)
}

// DeserializeAddAudioMappingsResponse decodes an ADD_AUDIO_MAPPINGS response.
func DeserializeAddAudioMappingsResponse(buf []byte) (AudioMappings, error) {
	return deserializeAudioMappings("ADD_AUDIO_MAPPINGS.response", buf)
}

// SerializeRemoveAudioMappingsCommand encodes a REMOVE_AUDIO_MAPPINGS command.
func SerializeRemoveAudioMappingsCommand(v AudioMappings) ([]byte, error) {
	return serializeAudioMappings("REMOVE_AUDIO_MAPPINGS.command", v)
}

// DeserializeRemoveAudioMappingsCommand decodes a REMOVE_AUDIO_MAPPINGS command.
func DeserializeRemoveAudioMappingsCommand(buf []byte) (AudioMappings, error) {
	return deserializeAudioMappings("REMOVE_AUDIO_MAPPINGS.command", buf)
}

// SerializeRemoveAudioMappingsResponse encodes a REMOVE_AUDIO_MAPPINGS response.
func SerializeRemoveAudioMappingsResponse(v AudioMappings) ([]byte, error) {
	return serializeAudioMappings("REMOVE_AUDIO_MAPPINGS.response", v)
}

// DeserializeRemoveAudioMappingsResponse decodes a REMOVE_AUDIO_MAPPINGS response.
func DeserializeRemoveAudioMappingsResponse(buf []byte) (AudioMappings, error) {
	return deserializeAudioMappings("REMOVE_AUDIO_MAPPINGS.response", buf)
}
