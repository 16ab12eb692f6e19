// Package descriptor defines the AEM descriptor entities carried in
// READ_DESCRIPTOR responses (IEEE 1722.1 clauses 7.2.1-7.2.32) and the
// codecs for their fixed portions. Descriptors with a variable tail expose
// only their fixed fields plus the count/offset pair here; the array
// itself is decoded by the message codec, which owns offset re-anchoring
// and the diagnostic trace for trailing bytes.
package descriptor

import "github.com/avdecc-go/aemcodec/pkg/aem"

// Entity is the top-level descriptor for an AVDECC entity (clause 7.2.1).
// It has no variable tail.
type Entity struct {
	EntityID              aem.UniqueIdentifier
	EntityModelID         aem.UniqueIdentifier
	EntityCapabilities    uint32
	TalkerStreamSources   uint16
	TalkerCapabilities    uint16
	ListenerStreamSinks   uint16
	ListenerCapabilities  uint16
	ControllerCapabilities uint32
	AvailableIndex        uint32
	AssociationID         aem.UniqueIdentifier
	EntityName            aem.AvdeccFixedString
	VendorNameString      uint16
	ModelNameString       uint16
	FirmwareVersion       aem.AvdeccFixedString
	GroupName             aem.AvdeccFixedString
	SerialNumber          aem.AvdeccFixedString
	ConfigurationsCount   uint16
	CurrentConfiguration  aem.ConfigurationIndex
}

// EntityFixedSize is the byte size of Entity's body (excludes the 8-byte common
// header).
const EntityFixedSize = 8 + 8 + 4 + 2 + 2 + 2 + 2 + 4 + 4 + 8 + 64 + 2 + 2 + 64 + 64 + 64 + 2 + 2

// Configuration is the descriptor for one entity configuration (clause
// 7.2.2). Its variable tail is the descriptorCounts mapping, which follows
// the fixed body immediately with no offset field, unlike the other
// variable-tail descriptors.
type Configuration struct {
	ObjectName          aem.AvdeccFixedString
	LocalizedDescription uint16
	DescriptorCountsCount uint16
	// DescriptorCounts maps a descriptor type to how many instances of it
	// exist in this configuration. Order is not meaningful.
	DescriptorCounts map[aem.DescriptorType]uint16
}

// ConfigurationFixedSize is the byte size of Configuration's body before
// the descriptorCounts array.
const ConfigurationFixedSize = 64 + 2 + 2

// DescriptorCountElementSize is sizeof(DescriptorType) + sizeof(uint16 count).
const DescriptorCountElementSize = 2 + 2

// AudioUnit is the descriptor for a clocked group of audio ports (clause
// 7.2.3). SamplingRatesOffset/Count describe the base-relative variable
// tail; SupportedSamplingRates is populated by the message codec.
type AudioUnit struct {
	ObjectName                aem.AvdeccFixedString
	LocalizedDescription      uint16
	ClockDomainIndex          uint16
	NumberOfStreamInputPorts  uint16
	BaseStreamInputPort       uint16
	NumberOfStreamOutputPorts uint16
	BaseStreamOutputPort      uint16
	NumberOfExternalInputPorts  uint16
	BaseExternalInputPort       uint16
	NumberOfExternalOutputPorts uint16
	BaseExternalOutputPort      uint16
	NumberOfInternalInputPorts  uint16
	BaseInternalInputPort       uint16
	NumberOfInternalOutputPorts uint16
	BaseInternalOutputPort      uint16
	NumberOfControls            uint16
	BaseControl                 uint16
	NumberOfSignalSelectors     uint16
	BaseSignalSelector          uint16
	NumberOfMixers              uint16
	BaseMixer                   uint16
	NumberOfMatrices            uint16
	BaseMatrix                  uint16
	NumberOfSplitters           uint16
	BaseSplitter                uint16
	NumberOfCombiners           uint16
	BaseCombiner                uint16
	NumberOfDemultiplexers      uint16
	BaseDemultiplexer           uint16
	NumberOfMultiplexers        uint16
	BaseMultiplexer             uint16
	NumberOfTranscoders         uint16
	BaseTranscoder              uint16
	NumberOfControlBlocks       uint16
	BaseControlBlock            uint16
	CurrentSamplingRate         aem.SamplingRate
	SamplingRatesOffset         uint16
	SamplingRatesCount          uint16
	SupportedSamplingRates      []aem.SamplingRate
}

// AudioUnitFixedSize is the byte size of AudioUnit's body before the
// sampling-rates array.
const AudioUnitFixedSize = 64 + 2 + 33*2 + 4 + 2 + 2

// Stream is the descriptor for a talker or listener stream (clause 7.2.4
// / 7.2.5). FormatsOffset/Count describe the base-relative variable tail.
type Stream struct {
	ObjectName             aem.AvdeccFixedString
	LocalizedDescription   uint16
	ClockDomainIndex       uint16
	StreamFlags            aem.StreamFlags
	CurrentFormat          aem.StreamFormat
	FormatsOffset          uint16
	NumberOfFormats        uint16
	BackupTalkerEntityID0  aem.UniqueIdentifier
	BackupTalkerUniqueID0  uint16
	BackupTalkerEntityID1  aem.UniqueIdentifier
	BackupTalkerUniqueID1  uint16
	BackupTalkerEntityID2  aem.UniqueIdentifier
	BackupTalkerUniqueID2  uint16
	BackedupTalkerEntityID aem.UniqueIdentifier
	BackedupTalkerUniqueID uint16
	AvbInterfaceIndex      uint16
	BufferLength           uint32
	SupportedFormats       []aem.StreamFormat
}

// StreamFixedSize is the byte size of Stream's body before the formats
// array.
const StreamFixedSize = 64 + 2 + 2 + 4 + 8 + 2 + 2 + (8+2)*3 + (8 + 2) + 2 + 4

// Jack is the descriptor for an analog/digital jack (clause 7.2.7). Pure
// fixed layout.
type Jack struct {
	ObjectName           aem.AvdeccFixedString
	LocalizedDescription uint16
	JackFlags            aem.JackFlags
	JackType             uint16
	NumberOfControls     uint16
	BaseControl          uint16
}

// JackFixedSize is the byte size of Jack's body.
const JackFixedSize = 64 + 2 + 4 + 2 + 2 + 2

// AvbInterface is the descriptor for a network interface carrying AVB
// traffic (clause 7.2.8). Pure fixed layout.
type AvbInterface struct {
	ObjectName              aem.AvdeccFixedString
	LocalizedDescription    uint16
	MacAddress              aem.MacAddress
	InterfaceFlags          aem.InterfaceFlags
	ClockIdentity           aem.UniqueIdentifier
	Priority1               uint8
	ClockClass              uint8
	OffsetScaledLogVariance uint16
	ClockAccuracy           uint8
	Priority2               uint8
	DomainNumber            uint8
	LogSyncInterval         uint8
	LogAnnounceInterval     uint8
	LogPDelayInterval       uint8
	PortNumber              uint16
}

// AvbInterfaceFixedSize is the byte size of AvbInterface's body.
const AvbInterfaceFixedSize = 64 + 2 + 6 + 4 + 8 + 1 + 1 + 2 + 1 + 1 + 1 + 1 + 1 + 1 + 2

// ClockSource is the descriptor for a candidate clock source (clause
// 7.2.9). Pure fixed layout.
type ClockSource struct {
	ObjectName               aem.AvdeccFixedString
	LocalizedDescription     uint16
	ClockSourceFlags         aem.ClockSourceFlags
	ClockSourceType          uint16
	ClockSourceIdentifier    aem.UniqueIdentifier
	ClockSourceLocationType  aem.DescriptorType
	ClockSourceLocationIndex aem.DescriptorIndex
}

// ClockSourceFixedSize is the byte size of ClockSource's body.
const ClockSourceFixedSize = 64 + 2 + 4 + 2 + 8 + 2 + 2

// MemoryObject is the descriptor for a firmware image or other blob
// (clause 7.2.10). Pure fixed layout.
type MemoryObject struct {
	ObjectName             aem.AvdeccFixedString
	LocalizedDescription   uint16
	MemoryObjectType       uint16
	TargetDescriptorType   aem.DescriptorType
	TargetDescriptorIndex  aem.DescriptorIndex
	StartAddress           uint64
	MaximumLength          uint64
	Length                 uint64
}

// MemoryObjectFixedSize is the byte size of MemoryObject's body.
const MemoryObjectFixedSize = 64 + 2 + 2 + 2 + 2 + 8 + 8 + 8

// Locale is the descriptor for a language/region grouping of strings
// (clause 7.2.11). Pure fixed layout.
type Locale struct {
	LocaleID                 aem.AvdeccFixedString
	NumberOfStringDescriptors uint16
	BaseStrings               uint16
}

// LocaleFixedSize is the byte size of Locale's body.
const LocaleFixedSize = 64 + 2 + 2

// Strings holds up to seven fixed strings for one locale (clause 7.2.12).
// Pure fixed layout.
type Strings struct {
	Values [7]aem.AvdeccFixedString
}

// StringsFixedSize is the byte size of Strings's body.
const StringsFixedSize = 7 * 64

// StreamPort is the descriptor for a stream port on an audio unit (clause
// 7.2.13). Pure fixed layout.
type StreamPort struct {
	ClockDomainIndex  uint16
	PortFlags         aem.PortFlags
	NumberOfControls  uint16
	BaseControl       uint16
	NumberOfClusters  uint16
	BaseCluster       uint16
	NumberOfMaps      uint16
	BaseMap           uint16
}

// StreamPortFixedSize is the byte size of StreamPort's body.
const StreamPortFixedSize = 2 + 4 + 2 + 2 + 2 + 2 + 2 + 2

// ExternalPort is the descriptor for a port reaching outside the entity
// (clause 7.2.14). Pure fixed layout.
type ExternalPort struct {
	ClockDomainIndex uint16
	PortFlags        aem.PortFlags
	NumberOfControls uint16
	BaseControl      uint16
	SignalType       aem.DescriptorType
	SignalIndex      aem.DescriptorIndex
	SignalOutput     uint16
	BlockLatency     uint32
	JackIndex        aem.DescriptorIndex
}

// ExternalPortFixedSize is the byte size of ExternalPort's body.
const ExternalPortFixedSize = 2 + 4 + 2 + 2 + 2 + 2 + 2 + 4 + 2

// InternalPort is the descriptor for a port reaching another unit inside
// the entity (clause 7.2.15). Same layout as ExternalPort.
type InternalPort struct {
	ClockDomainIndex uint16
	PortFlags        aem.PortFlags
	NumberOfControls uint16
	BaseControl      uint16
	SignalType       aem.DescriptorType
	SignalIndex      aem.DescriptorIndex
	SignalOutput     uint16
	BlockLatency     uint32
	JackIndex        aem.DescriptorIndex
}

// InternalPortFixedSize is the byte size of InternalPort's body.
const InternalPortFixedSize = ExternalPortFixedSize

// AudioCluster is the descriptor for a group of related audio channels
// (clause 7.2.16). Pure fixed layout.
type AudioCluster struct {
	ObjectName           aem.AvdeccFixedString
	LocalizedDescription uint16
	ClockDomainIndex     uint16
	SignalType           aem.DescriptorType
	SignalIndex          aem.DescriptorIndex
	SignalOutput         uint16
	PathLatency          uint32
	BlockLatency         uint32
	ChannelCount         uint16
	Format               uint8
}

// AudioClusterFixedSize is the byte size of AudioCluster's body.
const AudioClusterFixedSize = 64 + 2 + 2 + 2 + 2 + 2 + 4 + 4 + 2 + 1

// AudioMapping is one element of an AudioMap's variable tail.
type AudioMapping struct {
	StreamIndex   uint16
	StreamChannel uint16
	ClusterOffset uint16
	ClusterChannel uint16
}

// AudioMappingElementSize is the on-wire size of a single AudioMapping.
const AudioMappingElementSize = 2 + 2 + 2 + 2

// AudioMap is the descriptor for a page of channel mappings (clause
// 7.2.19). MappingsOffset/Count describe the base-relative variable tail.
type AudioMap struct {
	MappingsOffset  uint16
	NumberOfMappings uint16
	Mappings        []AudioMapping
}

// AudioMapFixedSize is the byte size of AudioMap's body before the
// mappings array.
const AudioMapFixedSize = 2 + 2

// ClockDomain is the descriptor for a group of entities sharing a clock
// (clause 7.2.32). ClockSourcesOffset/Count describe the base-relative
// variable tail.
type ClockDomain struct {
	ObjectName           aem.AvdeccFixedString
	LocalizedDescription uint16
	ClockSourceIndex     aem.ClockSourceIndex
	ClockSourcesOffset   uint16
	ClockSourcesCount    uint16
	ClockSources         []aem.ClockSourceIndex
}

// ClockDomainFixedSize is the byte size of ClockDomain's body before the
// clock sources array.
const ClockDomainFixedSize = 64 + 2 + 2 + 2 + 2

// StreamInfo carries the runtime parameters exchanged by SET/GET_STREAM_INFO.
// Fully fixed layout.
type StreamInfo struct {
	StreamInfoFlags        aem.StreamInfoFlags
	StreamFormat           aem.StreamFormat
	StreamID               aem.UniqueIdentifier
	MsrpAccumulatedLatency uint32
	StreamDestMac          aem.MacAddress
	MsrpFailureCode        uint8
	MsrpFailureBridgeID    aem.UniqueIdentifier
	StreamVlanID           uint16
}

// StreamInfoFixedSize is the byte size of the StreamInfo fields excluding
// the leading descriptorType/descriptorIndex pair, matching the layout
// order used by SET/GET_STREAM_INFO.
const StreamInfoFixedSize = 4 + 8 + 8 + 4 + 6 + 1 + 1 + 8 + 2 + 2
