package codec

import (
	"errors"
	"fmt"

	"github.com/avdecc-go/aemcodec/pkg/cursor"
)

// Kind identifies which of the four decode/encode failure modes a
// ProtocolError represents.
type Kind uint8

// The codec's complete failure taxonomy.
const (
	// KindTruncatedPayload: len < PAYLOAD_SIZE (fixed) or < MIN_SIZE
	// (variable), or a variable tail shorter than count*elementSize.
	KindTruncatedPayload Kind = iota
	// KindBadOffset: a declared variable-region offset, re-anchored,
	// precedes the bytes already consumed or lies past the buffer end.
	KindBadOffset
	// KindUnknownValue: an enum-typed field used for dispatch decoded a
	// value outside its defined domain.
	KindUnknownValue
	// KindCapacityExceeded: an encoder was asked to pack more data than
	// its fixed or maximum capacity allows.
	KindCapacityExceeded
)

func (k Kind) String() string {
	switch k {
	case KindTruncatedPayload:
		return "TruncatedPayload"
	case KindBadOffset:
		return "BadOffset"
	case KindUnknownValue:
		return "UnknownValue"
	case KindCapacityExceeded:
		return "CapacityExceeded"
	default:
		return "Unknown"
	}
}

// Sentinel errors, one per Kind, so callers can use errors.Is without
// unwrapping a ProtocolError by hand.
var (
	ErrTruncatedPayload = errors.New("aem: truncated payload")
	ErrBadOffset        = errors.New("aem: bad offset")
	ErrUnknownValue     = errors.New("aem: unknown value")
	ErrCapacityExceeded = errors.New("aem: capacity exceeded")
)

func sentinelFor(k Kind) error {
	switch k {
	case KindTruncatedPayload:
		return ErrTruncatedPayload
	case KindBadOffset:
		return ErrBadOffset
	case KindUnknownValue:
		return ErrUnknownValue
	case KindCapacityExceeded:
		return ErrCapacityExceeded
	default:
		return nil
	}
}

// ProtocolError is a precise, localized decode or encode failure. It never
// carries a partially-constructed result; callers that receive one must
// discard whatever they were building.
type ProtocolError struct {
	Kind  Kind
	Op    string // e.g. "ACQUIRE_ENTITY.command"
	Field string // the field being read/written when the failure occurred
	Err   error  // underlying cursor error, if any
}

func (e *ProtocolError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("aem: %s: %s: %s", e.Op, e.Field, e.Kind)
	}
	return fmt.Sprintf("aem: %s: %s", e.Op, e.Kind)
}

// Unwrap exposes the underlying cursor error to errors.As/errors.Is.
func (e *ProtocolError) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for this error's Kind, so
// errors.Is(err, codec.ErrTruncatedPayload) works without a type switch.
func (e *ProtocolError) Is(target error) bool {
	return target == sentinelFor(e.Kind)
}

// wrap classifies a raw cursor error into a ProtocolError localized to op
// and field. Non-cursor errors pass through as KindUnknownValue since they
// only ever originate from an explicit domain check.
func wrap(op, field string, err error) error {
	if err == nil {
		return nil
	}
	pe := &ProtocolError{Op: op, Field: field, Err: err}
	switch {
	case errors.Is(err, cursor.ErrTruncated):
		pe.Kind = KindTruncatedPayload
	case errors.Is(err, cursor.ErrBadOffset):
		pe.Kind = KindBadOffset
	case errors.Is(err, cursor.ErrCapacityExceeded):
		pe.Kind = KindCapacityExceeded
	default:
		pe.Kind = KindUnknownValue
	}
	return pe
}

// unknownValue builds a ProtocolError for a field whose decoded value lies
// outside its defined enum domain.
func unknownValue(op, field string) error {
	return &ProtocolError{Kind: KindUnknownValue, Op: op, Field: field}
}

// truncated builds a ProtocolError for an explicit length precondition
// failure (checked before any cursor read, e.g. "buffer shorter than
// MIN_SIZE").
func truncated(op, field string) error {
	return &ProtocolError{Kind: KindTruncatedPayload, Op: op, Field: field}
}

// badOffset builds a ProtocolError for a re-anchored variable-region
// offset that overlaps the fixed header or runs past the buffer.
func badOffset(op, field string) error {
	return &ProtocolError{Kind: KindBadOffset, Op: op, Field: field}
}
