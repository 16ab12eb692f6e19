package aem

import "github.com/avdecc-go/aemcodec/pkg/cursor"

// AcquireFlags gates ACQUIRE_ENTITY semantics.
type AcquireFlags uint32

// Defined AcquireFlags bits.
const (
	AcquireFlagPersistent AcquireFlags = 1 << 0
	AcquireFlagRelease    AcquireFlags = 1 << 31
)

// Has reports whether every bit in mask is set.
func (f AcquireFlags) Has(mask AcquireFlags) bool { return f&mask == mask }

// Encode appends the flags as a big-endian uint32, unknown bits included.
func (f AcquireFlags) Encode(w *cursor.Writer) error { return w.PutUint32(uint32(f)) }

// Decode reads the flags verbatim; unknown bits round-trip unchanged.
func (f *AcquireFlags) Decode(r *cursor.Reader) error {
	v, err := r.Uint32()
	if err != nil {
		return err
	}
	*f = AcquireFlags(v)
	return nil
}

// LockFlags gates LOCK_ENTITY semantics.
type LockFlags uint32

// Defined LockFlags bits.
const (
	LockFlagUnlock LockFlags = 1 << 0
)

// Has reports whether every bit in mask is set.
func (f LockFlags) Has(mask LockFlags) bool { return f&mask == mask }

// Encode appends the flags as a big-endian uint32, unknown bits included.
func (f LockFlags) Encode(w *cursor.Writer) error { return w.PutUint32(uint32(f)) }

// Decode reads the flags verbatim; unknown bits round-trip unchanged.
func (f *LockFlags) Decode(r *cursor.Reader) error {
	v, err := r.Uint32()
	if err != nil {
		return err
	}
	*f = LockFlags(v)
	return nil
}

// StreamInfoFlags describes the runtime state of a stream, carried in
// SET/GET_STREAM_INFO.
type StreamInfoFlags uint32

// Defined StreamInfoFlags bits (subset relevant to codec round-tripping).
const (
	StreamInfoFlagClassB              StreamInfoFlags = 1 << 0
	StreamInfoFlagFastConnect         StreamInfoFlags = 1 << 1
	StreamInfoFlagSavedState          StreamInfoFlags = 1 << 2
	StreamInfoFlagStreamingWait       StreamInfoFlags = 1 << 3
	StreamInfoFlagEncryptedPdu        StreamInfoFlags = 1 << 4
	StreamInfoFlagStreamVlanIDValid   StreamInfoFlags = 1 << 25
	StreamInfoFlagConnected           StreamInfoFlags = 1 << 26
	StreamInfoFlagMsrpFailureValid    StreamInfoFlags = 1 << 27
	StreamInfoFlagStreamDestMacValid  StreamInfoFlags = 1 << 28
	StreamInfoFlagMsrpAccLatValid     StreamInfoFlags = 1 << 29
	StreamInfoFlagStreamIDValid       StreamInfoFlags = 1 << 30
	StreamInfoFlagStreamFormatValid   StreamInfoFlags = 1 << 31
)

// Has reports whether every bit in mask is set.
func (f StreamInfoFlags) Has(mask StreamInfoFlags) bool { return f&mask == mask }

// Encode appends the flags as a big-endian uint32, unknown bits included.
func (f StreamInfoFlags) Encode(w *cursor.Writer) error { return w.PutUint32(uint32(f)) }

// Decode reads the flags verbatim; unknown/vendor-reserved bits round-trip
// unchanged (see the vendor-reserved-bit scenario in the codec tests).
func (f *StreamInfoFlags) Decode(r *cursor.Reader) error {
	v, err := r.Uint32()
	if err != nil {
		return err
	}
	*f = StreamInfoFlags(v)
	return nil
}

// StreamFlags describes static stream descriptor capabilities.
type StreamFlags uint32

// Defined StreamFlags bits (subset).
const (
	StreamFlagClockSyncSource   StreamFlags = 1 << 0
	StreamFlagClassA            StreamFlags = 1 << 1
	StreamFlagClassB            StreamFlags = 1 << 2
	StreamFlagSupportsEncrypted StreamFlags = 1 << 3
	StreamFlagPrimaryBackupSupported StreamFlags = 1 << 4
)

// Has reports whether every bit in mask is set.
func (f StreamFlags) Has(mask StreamFlags) bool { return f&mask == mask }

// Encode appends the flags as a big-endian uint32, unknown bits included.
func (f StreamFlags) Encode(w *cursor.Writer) error { return w.PutUint32(uint32(f)) }

// Decode reads the flags verbatim; unknown bits round-trip unchanged.
func (f *StreamFlags) Decode(r *cursor.Reader) error {
	v, err := r.Uint32()
	if err != nil {
		return err
	}
	*f = StreamFlags(v)
	return nil
}

// PortFlags describes stream port descriptor capabilities.
type PortFlags uint32

// Defined PortFlags bits.
const (
	PortFlagClockSyncSource PortFlags = 1 << 0
	PortFlagAsyncSampleRateConv PortFlags = 1 << 1
	PortFlagSyncSampleRateConv PortFlags = 1 << 2
)

// Has reports whether every bit in mask is set.
func (f PortFlags) Has(mask PortFlags) bool { return f&mask == mask }

// Encode appends the flags as a big-endian uint32, unknown bits included.
func (f PortFlags) Encode(w *cursor.Writer) error { return w.PutUint32(uint32(f)) }

// Decode reads the flags verbatim; unknown bits round-trip unchanged.
func (f *PortFlags) Decode(r *cursor.Reader) error {
	v, err := r.Uint32()
	if err != nil {
		return err
	}
	*f = PortFlags(v)
	return nil
}

// JackFlags describes jack descriptor capabilities.
type JackFlags uint32

// Defined JackFlags bits.
const (
	JackFlagClockSyncSource JackFlags = 1 << 0
	JackFlagCaptive         JackFlags = 1 << 1
)

// Has reports whether every bit in mask is set.
func (f JackFlags) Has(mask JackFlags) bool { return f&mask == mask }

// Encode appends the flags as a big-endian uint32, unknown bits included.
func (f JackFlags) Encode(w *cursor.Writer) error { return w.PutUint32(uint32(f)) }

// Decode reads the flags verbatim; unknown bits round-trip unchanged.
func (f *JackFlags) Decode(r *cursor.Reader) error {
	v, err := r.Uint32()
	if err != nil {
		return err
	}
	*f = JackFlags(v)
	return nil
}

// InterfaceFlags describes AVB interface descriptor capabilities.
type InterfaceFlags uint32

// Defined InterfaceFlags bits.
const (
	InterfaceFlagGptpGrandmasterSupported InterfaceFlags = 1 << 0
	InterfaceFlagGptpSupported             InterfaceFlags = 1 << 1
	InterfaceFlagSrpSupported              InterfaceFlags = 1 << 2
)

// Has reports whether every bit in mask is set.
func (f InterfaceFlags) Has(mask InterfaceFlags) bool { return f&mask == mask }

// Encode appends the flags as a big-endian uint32, unknown bits included.
func (f InterfaceFlags) Encode(w *cursor.Writer) error { return w.PutUint32(uint32(f)) }

// Decode reads the flags verbatim; unknown bits round-trip unchanged.
func (f *InterfaceFlags) Decode(r *cursor.Reader) error {
	v, err := r.Uint32()
	if err != nil {
		return err
	}
	*f = InterfaceFlags(v)
	return nil
}

// ClockSourceFlags describes clock source descriptor capabilities.
type ClockSourceFlags uint32

// Defined ClockSourceFlags bits.
const (
	ClockSourceFlagStreamID  ClockSourceFlags = 1 << 0
	ClockSourceFlagLocalID   ClockSourceFlags = 1 << 1
)

// Has reports whether every bit in mask is set.
func (f ClockSourceFlags) Has(mask ClockSourceFlags) bool { return f&mask == mask }

// Encode appends the flags as a big-endian uint32, unknown bits included.
func (f ClockSourceFlags) Encode(w *cursor.Writer) error { return w.PutUint32(uint32(f)) }

// Decode reads the flags verbatim; unknown bits round-trip unchanged.
func (f *ClockSourceFlags) Decode(r *cursor.Reader) error {
	v, err := r.Uint32()
	if err != nil {
		return err
	}
	*f = ClockSourceFlags(v)
	return nil
}
