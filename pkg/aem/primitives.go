package aem

import (
	"bytes"

	"github.com/avdecc-go/aemcodec/pkg/cursor"
)

// UniqueIdentifier is an opaque 64-bit EUI-64-style device or owner
// identity. UniqueIdentifierUninitialized (all-ones) is the sentinel used
// before a decode succeeds and to mean "no owner"/"no lock holder".
type UniqueIdentifier uint64

// UniqueIdentifierUninitialized is the all-ones sentinel value.
const UniqueIdentifierUninitialized UniqueIdentifier = 0xffffffffffffffff

// Encode appends the identifier as a big-endian uint64.
func (u UniqueIdentifier) Encode(w *cursor.Writer) error {
	return w.PutUint64(uint64(u))
}

// Decode reads a unique identifier.
func (u *UniqueIdentifier) Decode(r *cursor.Reader) error {
	v, err := r.Uint64()
	if err != nil {
		return err
	}
	*u = UniqueIdentifier(v)
	return nil
}

// StreamFormat is an opaque 64-bit value; interpreting it into media
// parameters is the stream-format decoder's job, out of scope here.
type StreamFormat uint64

// StreamFormatNull is the sentinel "no format" value.
const StreamFormatNull StreamFormat = 0

// Encode appends the stream format as a big-endian uint64.
func (s StreamFormat) Encode(w *cursor.Writer) error {
	return w.PutUint64(uint64(s))
}

// Decode reads a stream format.
func (s *StreamFormat) Decode(r *cursor.Reader) error {
	v, err := r.Uint64()
	if err != nil {
		return err
	}
	*s = StreamFormat(v)
	return nil
}

// SamplingRate is an opaque 32-bit value combining a pull multiplier and a
// base rate; SamplingRateNull marks "not set".
type SamplingRate uint32

// SamplingRateNull is the sentinel "no rate" value.
const SamplingRateNull SamplingRate = 0

// Encode appends the sampling rate as a big-endian uint32.
func (s SamplingRate) Encode(w *cursor.Writer) error {
	return w.PutUint32(uint32(s))
}

// Decode reads a sampling rate.
func (s *SamplingRate) Decode(r *cursor.Reader) error {
	v, err := r.Uint32()
	if err != nil {
		return err
	}
	*s = SamplingRate(v)
	return nil
}

// MacAddress is a 6-byte hardware address.
type MacAddress [6]byte

// Encode appends the 6 raw bytes verbatim.
func (m MacAddress) Encode(w *cursor.Writer) error {
	return w.PutBytes(m[:])
}

// Decode reads 6 raw bytes.
func (m *MacAddress) Decode(r *cursor.Reader) error {
	b, err := r.Bytes(6)
	if err != nil {
		return err
	}
	copy(m[:], b)
	return nil
}

// FixedStringSize is the on-wire width of an AvdeccFixedString.
const FixedStringSize = 64

// AvdeccFixedString is a 64-byte NUL-padded UTF-8 name field. The zero
// value is 64 NUL bytes, decoding to the empty string.
type AvdeccFixedString [FixedStringSize]byte

// NewFixedString builds a fixed string from s, truncating at 64 bytes if
// necessary and zero-padding the remainder.
func NewFixedString(s string) AvdeccFixedString {
	var f AvdeccFixedString
	n := copy(f[:], s)
	_ = n
	return f
}

// String trims the value at the first NUL byte.
func (f AvdeccFixedString) String() string {
	if i := bytes.IndexByte(f[:], 0); i >= 0 {
		return string(f[:i])
	}
	return string(f[:])
}

// Encode appends the 64 raw bytes verbatim.
func (f AvdeccFixedString) Encode(w *cursor.Writer) error {
	return w.PutBytes(f[:])
}

// Decode reads 64 raw bytes.
func (f *AvdeccFixedString) Decode(r *cursor.Reader) error {
	b, err := r.Bytes(FixedStringSize)
	if err != nil {
		return err
	}
	copy(f[:], b)
	return nil
}
