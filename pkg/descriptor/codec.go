package descriptor

import (
	"github.com/avdecc-go/aemcodec/pkg/aem"
	"github.com/avdecc-go/aemcodec/pkg/cursor"
)

// Encode appends Entity's full fixed body.
func (e *Entity) Encode(w *cursor.Writer) error {
	for _, step := range []func() error{
		func() error { return e.EntityID.Encode(w) },
		func() error { return e.EntityModelID.Encode(w) },
		func() error { return w.PutUint32(e.EntityCapabilities) },
		func() error { return w.PutUint16(e.TalkerStreamSources) },
		func() error { return w.PutUint16(e.TalkerCapabilities) },
		func() error { return w.PutUint16(e.ListenerStreamSinks) },
		func() error { return w.PutUint16(e.ListenerCapabilities) },
		func() error { return w.PutUint32(e.ControllerCapabilities) },
		func() error { return w.PutUint32(e.AvailableIndex) },
		func() error { return e.AssociationID.Encode(w) },
		func() error { return e.EntityName.Encode(w) },
		func() error { return w.PutUint16(e.VendorNameString) },
		func() error { return w.PutUint16(e.ModelNameString) },
		func() error { return e.FirmwareVersion.Encode(w) },
		func() error { return e.GroupName.Encode(w) },
		func() error { return e.SerialNumber.Encode(w) },
		func() error { return w.PutUint16(e.ConfigurationsCount) },
		func() error { return e.CurrentConfiguration.Encode(w) },
	} {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads Entity's full fixed body.
func (e *Entity) Decode(r *cursor.Reader) error {
	var err error
	if err = e.EntityID.Decode(r); err != nil {
		return err
	}
	if err = e.EntityModelID.Decode(r); err != nil {
		return err
	}
	if e.EntityCapabilities, err = r.Uint32(); err != nil {
		return err
	}
	if e.TalkerStreamSources, err = r.Uint16(); err != nil {
		return err
	}
	if e.TalkerCapabilities, err = r.Uint16(); err != nil {
		return err
	}
	if e.ListenerStreamSinks, err = r.Uint16(); err != nil {
		return err
	}
	if e.ListenerCapabilities, err = r.Uint16(); err != nil {
		return err
	}
	if e.ControllerCapabilities, err = r.Uint32(); err != nil {
		return err
	}
	if e.AvailableIndex, err = r.Uint32(); err != nil {
		return err
	}
	if err = e.AssociationID.Decode(r); err != nil {
		return err
	}
	if err = e.EntityName.Decode(r); err != nil {
		return err
	}
	if e.VendorNameString, err = r.Uint16(); err != nil {
		return err
	}
	if e.ModelNameString, err = r.Uint16(); err != nil {
		return err
	}
	if err = e.FirmwareVersion.Decode(r); err != nil {
		return err
	}
	if err = e.GroupName.Decode(r); err != nil {
		return err
	}
	if err = e.SerialNumber.Decode(r); err != nil {
		return err
	}
	if e.ConfigurationsCount, err = r.Uint16(); err != nil {
		return err
	}
	return e.CurrentConfiguration.Decode(r)
}

// EncodeFixed appends Configuration's fixed body (objectName,
// localizedDescription, descriptorCountsCount); the caller writes the
// descriptorCounts array immediately after.
func (c *Configuration) EncodeFixed(w *cursor.Writer) error {
	if err := c.ObjectName.Encode(w); err != nil {
		return err
	}
	if err := w.PutUint16(c.LocalizedDescription); err != nil {
		return err
	}
	return w.PutUint16(c.DescriptorCountsCount)
}

// DecodeFixed reads Configuration's fixed body.
func (c *Configuration) DecodeFixed(r *cursor.Reader) error {
	if err := c.ObjectName.Decode(r); err != nil {
		return err
	}
	var err error
	if c.LocalizedDescription, err = r.Uint16(); err != nil {
		return err
	}
	c.DescriptorCountsCount, err = r.Uint16()
	return err
}

// EncodeFixed appends AudioUnit's fixed body up to (and including) the
// sampling-rates count/offset; the caller writes the sampling rate array
// separately at its re-anchored offset.
func (a *AudioUnit) EncodeFixed(w *cursor.Writer) error {
	if err := a.ObjectName.Encode(w); err != nil {
		return err
	}
	if err := w.PutUint16(a.LocalizedDescription); err != nil {
		return err
	}
	fields := []uint16{
		a.ClockDomainIndex,
		a.NumberOfStreamInputPorts, a.BaseStreamInputPort,
		a.NumberOfStreamOutputPorts, a.BaseStreamOutputPort,
		a.NumberOfExternalInputPorts, a.BaseExternalInputPort,
		a.NumberOfExternalOutputPorts, a.BaseExternalOutputPort,
		a.NumberOfInternalInputPorts, a.BaseInternalInputPort,
		a.NumberOfInternalOutputPorts, a.BaseInternalOutputPort,
		a.NumberOfControls, a.BaseControl,
		a.NumberOfSignalSelectors, a.BaseSignalSelector,
		a.NumberOfMixers, a.BaseMixer,
		a.NumberOfMatrices, a.BaseMatrix,
		a.NumberOfSplitters, a.BaseSplitter,
		a.NumberOfCombiners, a.BaseCombiner,
		a.NumberOfDemultiplexers, a.BaseDemultiplexer,
		a.NumberOfMultiplexers, a.BaseMultiplexer,
		a.NumberOfTranscoders, a.BaseTranscoder,
		a.NumberOfControlBlocks, a.BaseControlBlock,
	}
	for _, f := range fields {
		if err := w.PutUint16(f); err != nil {
			return err
		}
	}
	if err := a.CurrentSamplingRate.Encode(w); err != nil {
		return err
	}
	if err := w.PutUint16(a.SamplingRatesOffset); err != nil {
		return err
	}
	return w.PutUint16(a.SamplingRatesCount)
}

// DecodeFixed reads AudioUnit's fixed body.
func (a *AudioUnit) DecodeFixed(r *cursor.Reader) error {
	if err := a.ObjectName.Decode(r); err != nil {
		return err
	}
	var err error
	if a.LocalizedDescription, err = r.Uint16(); err != nil {
		return err
	}
	targets := []*uint16{
		&a.ClockDomainIndex,
		&a.NumberOfStreamInputPorts, &a.BaseStreamInputPort,
		&a.NumberOfStreamOutputPorts, &a.BaseStreamOutputPort,
		&a.NumberOfExternalInputPorts, &a.BaseExternalInputPort,
		&a.NumberOfExternalOutputPorts, &a.BaseExternalOutputPort,
		&a.NumberOfInternalInputPorts, &a.BaseInternalInputPort,
		&a.NumberOfInternalOutputPorts, &a.BaseInternalOutputPort,
		&a.NumberOfControls, &a.BaseControl,
		&a.NumberOfSignalSelectors, &a.BaseSignalSelector,
		&a.NumberOfMixers, &a.BaseMixer,
		&a.NumberOfMatrices, &a.BaseMatrix,
		&a.NumberOfSplitters, &a.BaseSplitter,
		&a.NumberOfCombiners, &a.BaseCombiner,
		&a.NumberOfDemultiplexers, &a.BaseDemultiplexer,
		&a.NumberOfMultiplexers, &a.BaseMultiplexer,
		&a.NumberOfTranscoders, &a.BaseTranscoder,
		&a.NumberOfControlBlocks, &a.BaseControlBlock,
	}
	for _, t := range targets {
		v, err := r.Uint16()
		if err != nil {
			return err
		}
		*t = v
	}
	if err = a.CurrentSamplingRate.Decode(r); err != nil {
		return err
	}
	if a.SamplingRatesOffset, err = r.Uint16(); err != nil {
		return err
	}
	a.SamplingRatesCount, err = r.Uint16()
	return err
}

// EncodeFixed appends Stream's fixed body up to (and including) the
// formats count/offset.
func (s *Stream) EncodeFixed(w *cursor.Writer) error {
	if err := s.ObjectName.Encode(w); err != nil {
		return err
	}
	if err := w.PutUint16(s.LocalizedDescription); err != nil {
		return err
	}
	if err := w.PutUint16(s.ClockDomainIndex); err != nil {
		return err
	}
	if err := s.StreamFlags.Encode(w); err != nil {
		return err
	}
	if err := s.CurrentFormat.Encode(w); err != nil {
		return err
	}
	if err := w.PutUint16(s.FormatsOffset); err != nil {
		return err
	}
	if err := w.PutUint16(s.NumberOfFormats); err != nil {
		return err
	}
	if err := s.BackupTalkerEntityID0.Encode(w); err != nil {
		return err
	}
	if err := w.PutUint16(s.BackupTalkerUniqueID0); err != nil {
		return err
	}
	if err := s.BackupTalkerEntityID1.Encode(w); err != nil {
		return err
	}
	if err := w.PutUint16(s.BackupTalkerUniqueID1); err != nil {
		return err
	}
	if err := s.BackupTalkerEntityID2.Encode(w); err != nil {
		return err
	}
	if err := w.PutUint16(s.BackupTalkerUniqueID2); err != nil {
		return err
	}
	if err := s.BackedupTalkerEntityID.Encode(w); err != nil {
		return err
	}
	if err := w.PutUint16(s.BackedupTalkerUniqueID); err != nil {
		return err
	}
	if err := w.PutUint16(s.AvbInterfaceIndex); err != nil {
		return err
	}
	return w.PutUint32(s.BufferLength)
}

// DecodeFixed reads Stream's fixed body.
func (s *Stream) DecodeFixed(r *cursor.Reader) error {
	if err := s.ObjectName.Decode(r); err != nil {
		return err
	}
	var err error
	if s.LocalizedDescription, err = r.Uint16(); err != nil {
		return err
	}
	if s.ClockDomainIndex, err = r.Uint16(); err != nil {
		return err
	}
	if err = s.StreamFlags.Decode(r); err != nil {
		return err
	}
	if err = s.CurrentFormat.Decode(r); err != nil {
		return err
	}
	if s.FormatsOffset, err = r.Uint16(); err != nil {
		return err
	}
	if s.NumberOfFormats, err = r.Uint16(); err != nil {
		return err
	}
	if err = s.BackupTalkerEntityID0.Decode(r); err != nil {
		return err
	}
	if s.BackupTalkerUniqueID0, err = r.Uint16(); err != nil {
		return err
	}
	if err = s.BackupTalkerEntityID1.Decode(r); err != nil {
		return err
	}
	if s.BackupTalkerUniqueID1, err = r.Uint16(); err != nil {
		return err
	}
	if err = s.BackupTalkerEntityID2.Decode(r); err != nil {
		return err
	}
	if s.BackupTalkerUniqueID2, err = r.Uint16(); err != nil {
		return err
	}
	if err = s.BackedupTalkerEntityID.Decode(r); err != nil {
		return err
	}
	if s.BackedupTalkerUniqueID, err = r.Uint16(); err != nil {
		return err
	}
	if s.AvbInterfaceIndex, err = r.Uint16(); err != nil {
		return err
	}
	s.BufferLength, err = r.Uint32()
	return err
}

// Encode appends Jack's full fixed body.
func (j *Jack) Encode(w *cursor.Writer) error {
	if err := j.ObjectName.Encode(w); err != nil {
		return err
	}
	if err := w.PutUint16(j.LocalizedDescription); err != nil {
		return err
	}
	if err := j.JackFlags.Encode(w); err != nil {
		return err
	}
	if err := w.PutUint16(j.JackType); err != nil {
		return err
	}
	if err := w.PutUint16(j.NumberOfControls); err != nil {
		return err
	}
	return w.PutUint16(j.BaseControl)
}

// Decode reads Jack's full fixed body.
func (j *Jack) Decode(r *cursor.Reader) error {
	if err := j.ObjectName.Decode(r); err != nil {
		return err
	}
	var err error
	if j.LocalizedDescription, err = r.Uint16(); err != nil {
		return err
	}
	if err := j.JackFlags.Decode(r); err != nil {
		return err
	}
	if j.JackType, err = r.Uint16(); err != nil {
		return err
	}
	if j.NumberOfControls, err = r.Uint16(); err != nil {
		return err
	}
	j.BaseControl, err = r.Uint16()
	return err
}

// Encode appends AvbInterface's full fixed body.
func (a *AvbInterface) Encode(w *cursor.Writer) error {
	if err := a.ObjectName.Encode(w); err != nil {
		return err
	}
	if err := w.PutUint16(a.LocalizedDescription); err != nil {
		return err
	}
	if err := a.MacAddress.Encode(w); err != nil {
		return err
	}
	if err := a.InterfaceFlags.Encode(w); err != nil {
		return err
	}
	if err := a.ClockIdentity.Encode(w); err != nil {
		return err
	}
	for _, b := range []uint8{a.Priority1, a.ClockClass} {
		if err := w.PutUint8(b); err != nil {
			return err
		}
	}
	if err := w.PutUint16(a.OffsetScaledLogVariance); err != nil {
		return err
	}
	for _, b := range []uint8{a.ClockAccuracy, a.Priority2, a.DomainNumber, a.LogSyncInterval, a.LogAnnounceInterval, a.LogPDelayInterval} {
		if err := w.PutUint8(b); err != nil {
			return err
		}
	}
	return w.PutUint16(a.PortNumber)
}

// Decode reads AvbInterface's full fixed body.
func (a *AvbInterface) Decode(r *cursor.Reader) error {
	if err := a.ObjectName.Decode(r); err != nil {
		return err
	}
	var err error
	if a.LocalizedDescription, err = r.Uint16(); err != nil {
		return err
	}
	if err := a.MacAddress.Decode(r); err != nil {
		return err
	}
	if err := a.InterfaceFlags.Decode(r); err != nil {
		return err
	}
	if err := a.ClockIdentity.Decode(r); err != nil {
		return err
	}
	if a.Priority1, err = r.Uint8(); err != nil {
		return err
	}
	if a.ClockClass, err = r.Uint8(); err != nil {
		return err
	}
	if a.OffsetScaledLogVariance, err = r.Uint16(); err != nil {
		return err
	}
	if a.ClockAccuracy, err = r.Uint8(); err != nil {
		return err
	}
	if a.Priority2, err = r.Uint8(); err != nil {
		return err
	}
	if a.DomainNumber, err = r.Uint8(); err != nil {
		return err
	}
	if a.LogSyncInterval, err = r.Uint8(); err != nil {
		return err
	}
	if a.LogAnnounceInterval, err = r.Uint8(); err != nil {
		return err
	}
	if a.LogPDelayInterval, err = r.Uint8(); err != nil {
		return err
	}
	a.PortNumber, err = r.Uint16()
	return err
}

// Encode appends ClockSource's full fixed body.
func (c *ClockSource) Encode(w *cursor.Writer) error {
	if err := c.ObjectName.Encode(w); err != nil {
		return err
	}
	if err := w.PutUint16(c.LocalizedDescription); err != nil {
		return err
	}
	if err := c.ClockSourceFlags.Encode(w); err != nil {
		return err
	}
	if err := w.PutUint16(c.ClockSourceType); err != nil {
		return err
	}
	if err := c.ClockSourceIdentifier.Encode(w); err != nil {
		return err
	}
	if err := c.ClockSourceLocationType.Encode(w); err != nil {
		return err
	}
	return c.ClockSourceLocationIndex.Encode(w)
}

// Decode reads ClockSource's full fixed body.
func (c *ClockSource) Decode(r *cursor.Reader) error {
	if err := c.ObjectName.Decode(r); err != nil {
		return err
	}
	var err error
	if c.LocalizedDescription, err = r.Uint16(); err != nil {
		return err
	}
	if err := c.ClockSourceFlags.Decode(r); err != nil {
		return err
	}
	if c.ClockSourceType, err = r.Uint16(); err != nil {
		return err
	}
	if err = c.ClockSourceIdentifier.Decode(r); err != nil {
		return err
	}
	if err = c.ClockSourceLocationType.Decode(r); err != nil {
		return err
	}
	return c.ClockSourceLocationIndex.Decode(r)
}

// Encode appends MemoryObject's full fixed body.
func (m *MemoryObject) Encode(w *cursor.Writer) error {
	if err := m.ObjectName.Encode(w); err != nil {
		return err
	}
	if err := w.PutUint16(m.LocalizedDescription); err != nil {
		return err
	}
	if err := w.PutUint16(m.MemoryObjectType); err != nil {
		return err
	}
	if err := m.TargetDescriptorType.Encode(w); err != nil {
		return err
	}
	if err := m.TargetDescriptorIndex.Encode(w); err != nil {
		return err
	}
	if err := w.PutUint64(m.StartAddress); err != nil {
		return err
	}
	if err := w.PutUint64(m.MaximumLength); err != nil {
		return err
	}
	return w.PutUint64(m.Length)
}

// Decode reads MemoryObject's full fixed body.
func (m *MemoryObject) Decode(r *cursor.Reader) error {
	if err := m.ObjectName.Decode(r); err != nil {
		return err
	}
	var err error
	if m.LocalizedDescription, err = r.Uint16(); err != nil {
		return err
	}
	if m.MemoryObjectType, err = r.Uint16(); err != nil {
		return err
	}
	if err = m.TargetDescriptorType.Decode(r); err != nil {
		return err
	}
	if err = m.TargetDescriptorIndex.Decode(r); err != nil {
		return err
	}
	if m.StartAddress, err = r.Uint64(); err != nil {
		return err
	}
	if m.MaximumLength, err = r.Uint64(); err != nil {
		return err
	}
	m.Length, err = r.Uint64()
	return err
}

// Encode appends Locale's full fixed body.
func (l *Locale) Encode(w *cursor.Writer) error {
	if err := l.LocaleID.Encode(w); err != nil {
		return err
	}
	if err := w.PutUint16(l.NumberOfStringDescriptors); err != nil {
		return err
	}
	return w.PutUint16(l.BaseStrings)
}

// Decode reads Locale's full fixed body.
func (l *Locale) Decode(r *cursor.Reader) error {
	if err := l.LocaleID.Decode(r); err != nil {
		return err
	}
	var err error
	if l.NumberOfStringDescriptors, err = r.Uint16(); err != nil {
		return err
	}
	l.BaseStrings, err = r.Uint16()
	return err
}

// Encode appends Strings's full fixed body.
func (s *Strings) Encode(w *cursor.Writer) error {
	for i := range s.Values {
		if err := s.Values[i].Encode(w); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads Strings's full fixed body.
func (s *Strings) Decode(r *cursor.Reader) error {
	for i := range s.Values {
		if err := s.Values[i].Decode(r); err != nil {
			return err
		}
	}
	return nil
}

// Encode appends StreamPort's full fixed body.
func (p *StreamPort) Encode(w *cursor.Writer) error {
	if err := w.PutUint16(p.ClockDomainIndex); err != nil {
		return err
	}
	if err := p.PortFlags.Encode(w); err != nil {
		return err
	}
	for _, f := range []uint16{p.NumberOfControls, p.BaseControl, p.NumberOfClusters, p.BaseCluster, p.NumberOfMaps, p.BaseMap} {
		if err := w.PutUint16(f); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads StreamPort's full fixed body.
func (p *StreamPort) Decode(r *cursor.Reader) error {
	var err error
	if p.ClockDomainIndex, err = r.Uint16(); err != nil {
		return err
	}
	if err = p.PortFlags.Decode(r); err != nil {
		return err
	}
	targets := []*uint16{&p.NumberOfControls, &p.BaseControl, &p.NumberOfClusters, &p.BaseCluster, &p.NumberOfMaps, &p.BaseMap}
	for _, t := range targets {
		v, err := r.Uint16()
		if err != nil {
			return err
		}
		*t = v
	}
	return nil
}

func encodePortLike(w *cursor.Writer, clockDomainIndex uint16, portFlags aem.PortFlags, numberOfControls, baseControl uint16, signalType aem.DescriptorType, signalIndex aem.DescriptorIndex, signalOutput uint16, blockLatency uint32, jackIndex aem.DescriptorIndex) error {
	if err := w.PutUint16(clockDomainIndex); err != nil {
		return err
	}
	if err := portFlags.Encode(w); err != nil {
		return err
	}
	if err := w.PutUint16(numberOfControls); err != nil {
		return err
	}
	if err := w.PutUint16(baseControl); err != nil {
		return err
	}
	if err := signalType.Encode(w); err != nil {
		return err
	}
	if err := signalIndex.Encode(w); err != nil {
		return err
	}
	if err := w.PutUint16(signalOutput); err != nil {
		return err
	}
	if err := w.PutUint32(blockLatency); err != nil {
		return err
	}
	return jackIndex.Encode(w)
}

func decodePortLike(r *cursor.Reader, clockDomainIndex *uint16, portFlags *aem.PortFlags, numberOfControls, baseControl *uint16, signalType *aem.DescriptorType, signalIndex *aem.DescriptorIndex, signalOutput *uint16, blockLatency *uint32, jackIndex *aem.DescriptorIndex) error {
	var err error
	if *clockDomainIndex, err = r.Uint16(); err != nil {
		return err
	}
	if err = portFlags.Decode(r); err != nil {
		return err
	}
	if *numberOfControls, err = r.Uint16(); err != nil {
		return err
	}
	if *baseControl, err = r.Uint16(); err != nil {
		return err
	}
	if err = signalType.Decode(r); err != nil {
		return err
	}
	if err = signalIndex.Decode(r); err != nil {
		return err
	}
	if *signalOutput, err = r.Uint16(); err != nil {
		return err
	}
	if *blockLatency, err = r.Uint32(); err != nil {
		return err
	}
	return jackIndex.Decode(r)
}

// Encode appends ExternalPort's full fixed body.
func (p *ExternalPort) Encode(w *cursor.Writer) error {
	return encodePortLike(w, p.ClockDomainIndex, p.PortFlags, p.NumberOfControls, p.BaseControl, p.SignalType, p.SignalIndex, p.SignalOutput, p.BlockLatency, p.JackIndex)
}

// Decode reads ExternalPort's full fixed body.
func (p *ExternalPort) Decode(r *cursor.Reader) error {
	return decodePortLike(r, &p.ClockDomainIndex, &p.PortFlags, &p.NumberOfControls, &p.BaseControl, &p.SignalType, &p.SignalIndex, &p.SignalOutput, &p.BlockLatency, &p.JackIndex)
}

// Encode appends InternalPort's full fixed body.
func (p *InternalPort) Encode(w *cursor.Writer) error {
	return encodePortLike(w, p.ClockDomainIndex, p.PortFlags, p.NumberOfControls, p.BaseControl, p.SignalType, p.SignalIndex, p.SignalOutput, p.BlockLatency, p.JackIndex)
}

// Decode reads InternalPort's full fixed body.
func (p *InternalPort) Decode(r *cursor.Reader) error {
	return decodePortLike(r, &p.ClockDomainIndex, &p.PortFlags, &p.NumberOfControls, &p.BaseControl, &p.SignalType, &p.SignalIndex, &p.SignalOutput, &p.BlockLatency, &p.JackIndex)
}

// Encode appends AudioCluster's full fixed body.
func (c *AudioCluster) Encode(w *cursor.Writer) error {
	if err := c.ObjectName.Encode(w); err != nil {
		return err
	}
	if err := w.PutUint16(c.LocalizedDescription); err != nil {
		return err
	}
	if err := w.PutUint16(c.ClockDomainIndex); err != nil {
		return err
	}
	if err := c.SignalType.Encode(w); err != nil {
		return err
	}
	if err := c.SignalIndex.Encode(w); err != nil {
		return err
	}
	if err := w.PutUint16(c.SignalOutput); err != nil {
		return err
	}
	if err := w.PutUint32(c.PathLatency); err != nil {
		return err
	}
	if err := w.PutUint32(c.BlockLatency); err != nil {
		return err
	}
	if err := w.PutUint16(c.ChannelCount); err != nil {
		return err
	}
	return w.PutUint8(c.Format)
}

// Decode reads AudioCluster's full fixed body.
func (c *AudioCluster) Decode(r *cursor.Reader) error {
	if err := c.ObjectName.Decode(r); err != nil {
		return err
	}
	var err error
	if c.LocalizedDescription, err = r.Uint16(); err != nil {
		return err
	}
	if c.ClockDomainIndex, err = r.Uint16(); err != nil {
		return err
	}
	if err = c.SignalType.Decode(r); err != nil {
		return err
	}
	if err = c.SignalIndex.Decode(r); err != nil {
		return err
	}
	if c.SignalOutput, err = r.Uint16(); err != nil {
		return err
	}
	if c.PathLatency, err = r.Uint32(); err != nil {
		return err
	}
	if c.BlockLatency, err = r.Uint32(); err != nil {
		return err
	}
	if c.ChannelCount, err = r.Uint16(); err != nil {
		return err
	}
	c.Format, err = r.Uint8()
	return err
}

// Encode appends one AudioMapping element.
func (m AudioMapping) Encode(w *cursor.Writer) error {
	for _, f := range []uint16{m.StreamIndex, m.StreamChannel, m.ClusterOffset, m.ClusterChannel} {
		if err := w.PutUint16(f); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads one AudioMapping element.
func (m *AudioMapping) Decode(r *cursor.Reader) error {
	targets := []*uint16{&m.StreamIndex, &m.StreamChannel, &m.ClusterOffset, &m.ClusterChannel}
	for _, t := range targets {
		v, err := r.Uint16()
		if err != nil {
			return err
		}
		*t = v
	}
	return nil
}

// EncodeFixed appends AudioMap's fixed body (mappingsOffset, count).
func (a *AudioMap) EncodeFixed(w *cursor.Writer) error {
	if err := w.PutUint16(a.MappingsOffset); err != nil {
		return err
	}
	return w.PutUint16(a.NumberOfMappings)
}

// DecodeFixed reads AudioMap's fixed body.
func (a *AudioMap) DecodeFixed(r *cursor.Reader) error {
	var err error
	if a.MappingsOffset, err = r.Uint16(); err != nil {
		return err
	}
	a.NumberOfMappings, err = r.Uint16()
	return err
}

// EncodeFixed appends ClockDomain's fixed body up to (and including) the
// clock-sources count/offset.
func (c *ClockDomain) EncodeFixed(w *cursor.Writer) error {
	if err := c.ObjectName.Encode(w); err != nil {
		return err
	}
	if err := w.PutUint16(c.LocalizedDescription); err != nil {
		return err
	}
	if err := c.ClockSourceIndex.Encode(w); err != nil {
		return err
	}
	if err := w.PutUint16(c.ClockSourcesOffset); err != nil {
		return err
	}
	return w.PutUint16(c.ClockSourcesCount)
}

// DecodeFixed reads ClockDomain's fixed body.
func (c *ClockDomain) DecodeFixed(r *cursor.Reader) error {
	if err := c.ObjectName.Decode(r); err != nil {
		return err
	}
	var err error
	if c.LocalizedDescription, err = r.Uint16(); err != nil {
		return err
	}
	if err := c.ClockSourceIndex.Decode(r); err != nil {
		return err
	}
	if c.ClockSourcesOffset, err = r.Uint16(); err != nil {
		return err
	}
	c.ClockSourcesCount, err = r.Uint16()
	return err
}

// Encode appends StreamInfo's full fixed body.
func (s *StreamInfo) Encode(w *cursor.Writer) error {
	if err := s.StreamInfoFlags.Encode(w); err != nil {
		return err
	}
	if err := s.StreamFormat.Encode(w); err != nil {
		return err
	}
	if err := s.StreamID.Encode(w); err != nil {
		return err
	}
	if err := w.PutUint32(s.MsrpAccumulatedLatency); err != nil {
		return err
	}
	if err := s.StreamDestMac.Encode(w); err != nil {
		return err
	}
	if err := w.PutUint8(s.MsrpFailureCode); err != nil {
		return err
	}
	if err := w.PutZeros(1); err != nil {
		return err
	}
	if err := s.MsrpFailureBridgeID.Encode(w); err != nil {
		return err
	}
	if err := w.PutUint16(s.StreamVlanID); err != nil {
		return err
	}
	return w.PutZeros(2)
}

// Decode reads StreamInfo's full fixed body.
func (s *StreamInfo) Decode(r *cursor.Reader) error {
	if err := s.StreamInfoFlags.Decode(r); err != nil {
		return err
	}
	if err := s.StreamFormat.Decode(r); err != nil {
		return err
	}
	if err := s.StreamID.Decode(r); err != nil {
		return err
	}
	var err error
	if s.MsrpAccumulatedLatency, err = r.Uint32(); err != nil {
		return err
	}
	if err = s.StreamDestMac.Decode(r); err != nil {
		return err
	}
	if s.MsrpFailureCode, err = r.Uint8(); err != nil {
		return err
	}
	if err = r.Skip(1); err != nil {
		return err
	}
	if err = s.MsrpFailureBridgeID.Decode(r); err != nil {
		return err
	}
	if s.StreamVlanID, err = r.Uint16(); err != nil {
		return err
	}
	return r.Skip(2)
}
