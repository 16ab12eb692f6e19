package aem

import "github.com/avdecc-go/aemcodec/pkg/cursor"

// DescriptorType identifies the kind of descriptor addressed by a command,
// or the kind of descriptor carried in a READ_DESCRIPTOR response.
type DescriptorType uint16

// Descriptor type domain, IEEE 1722.1 clause 7.2.
const (
	DescriptorEntity              DescriptorType = 0x0000
	DescriptorConfiguration       DescriptorType = 0x0001
	DescriptorAudioUnit           DescriptorType = 0x0002
	DescriptorVideoUnit           DescriptorType = 0x0003
	DescriptorSensorUnit          DescriptorType = 0x0004
	DescriptorStreamInput         DescriptorType = 0x0005
	DescriptorStreamOutput        DescriptorType = 0x0006
	DescriptorJackInput           DescriptorType = 0x0007
	DescriptorJackOutput          DescriptorType = 0x0008
	DescriptorAvbInterface        DescriptorType = 0x0009
	DescriptorClockSource         DescriptorType = 0x000a
	DescriptorMemoryObject        DescriptorType = 0x000b
	DescriptorLocale              DescriptorType = 0x000c
	DescriptorStrings             DescriptorType = 0x000d
	DescriptorStreamPortInput     DescriptorType = 0x000e
	DescriptorStreamPortOutput    DescriptorType = 0x000f
	DescriptorExternalPortInput   DescriptorType = 0x0010
	DescriptorExternalPortOutput  DescriptorType = 0x0011
	DescriptorInternalPortInput   DescriptorType = 0x0012
	DescriptorInternalPortOutput  DescriptorType = 0x0013
	DescriptorAudioCluster        DescriptorType = 0x0014
	DescriptorVideoCluster        DescriptorType = 0x0015
	DescriptorSensorCluster       DescriptorType = 0x0016
	DescriptorAudioMap            DescriptorType = 0x0017
	DescriptorVideoMap            DescriptorType = 0x0018
	DescriptorSensorMap           DescriptorType = 0x0019
	DescriptorControl             DescriptorType = 0x001a
	DescriptorSignalSelector      DescriptorType = 0x001b
	DescriptorMixer               DescriptorType = 0x001c
	DescriptorMatrix              DescriptorType = 0x001d
	DescriptorMatrixSignal        DescriptorType = 0x001e
	DescriptorSignalSplitter      DescriptorType = 0x001f
	DescriptorSignalCombiner      DescriptorType = 0x0020
	DescriptorSignalDemultiplexer DescriptorType = 0x0021
	DescriptorSignalMultiplexer   DescriptorType = 0x0022
	DescriptorSignalTranscoder    DescriptorType = 0x0023
	DescriptorClockDomain         DescriptorType = 0x0024
	DescriptorControlBlock        DescriptorType = 0x0025

	// DescriptorInvalid is the sentinel used until a decode succeeds.
	DescriptorInvalid DescriptorType = 0xffff
)

// Encode appends the descriptor type as a big-endian uint16.
func (d DescriptorType) Encode(w *cursor.Writer) error {
	return w.PutUint16(uint16(d))
}

// Decode reads a descriptor type. Any bit pattern is a valid DescriptorType
// on the wire (unknown descriptor types are round-tripped by callers that
// only need to compare or forward them); dispatch code that switches on the
// value is responsible for rejecting types it does not recognize.
func (d *DescriptorType) Decode(r *cursor.Reader) error {
	v, err := r.Uint16()
	if err != nil {
		return err
	}
	*d = DescriptorType(v)
	return nil
}

// DescriptorIndex identifies one instance of a DescriptorType within a
// configuration.
type DescriptorIndex uint16

// Encode appends the index as a big-endian uint16.
func (d DescriptorIndex) Encode(w *cursor.Writer) error {
	return w.PutUint16(uint16(d))
}

// Decode reads a descriptor index.
func (d *DescriptorIndex) Decode(r *cursor.Reader) error {
	v, err := r.Uint16()
	if err != nil {
		return err
	}
	*d = DescriptorIndex(v)
	return nil
}

// ConfigurationIndex identifies one configuration within an entity.
type ConfigurationIndex uint16

// Encode appends the index as a big-endian uint16.
func (c ConfigurationIndex) Encode(w *cursor.Writer) error {
	return w.PutUint16(uint16(c))
}

// Decode reads a configuration index.
func (c *ConfigurationIndex) Decode(r *cursor.Reader) error {
	v, err := r.Uint16()
	if err != nil {
		return err
	}
	*c = ConfigurationIndex(v)
	return nil
}

// ClockSourceIndex identifies a clock source within a clock domain.
type ClockSourceIndex uint16

// Encode appends the index as a big-endian uint16.
func (c ClockSourceIndex) Encode(w *cursor.Writer) error {
	return w.PutUint16(uint16(c))
}

// Decode reads a clock source index.
func (c *ClockSourceIndex) Decode(r *cursor.Reader) error {
	v, err := r.Uint16()
	if err != nil {
		return err
	}
	*c = ClockSourceIndex(v)
	return nil
}

// MapIndex counts a page of audio channel mappings within an audio map
// descriptor.
type MapIndex uint16

// Encode appends the index as a big-endian uint16.
func (m MapIndex) Encode(w *cursor.Writer) error {
	return w.PutUint16(uint16(m))
}

// Decode reads a map index.
func (m *MapIndex) Decode(r *cursor.Reader) error {
	v, err := r.Uint16()
	if err != nil {
		return err
	}
	*m = MapIndex(v)
	return nil
}
