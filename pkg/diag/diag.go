// Package diag defines the injectable diagnostic sink the codec uses to
// report non-fatal decode observations — currently just trailing bytes
// after a fully decoded READ_DESCRIPTOR response. No decoder call ever
// blocks on a Sink, and a nil Sink is never dereferenced: callers get a
// NoopSink by default.
package diag

import "github.com/avdecc-go/aemcodec/pkg/aem"

// Sink receives protocol-level diagnostic events. Implementations must be
// safe for concurrent use; codec calls may run on arbitrarily many
// goroutines at once.
type Sink interface {
	// Observe records a diagnostic event. It must not block for long;
	// slow sinks should queue internally.
	Observe(event Event)
}

// NoopSink discards every event. It is the default sink and is safe for
// concurrent use as a zero value.
type NoopSink struct{}

// Observe discards the event.
func (NoopSink) Observe(Event) {}

var _ Sink = NoopSink{}

// Kind classifies a diagnostic event.
type Kind uint8

// Defined diagnostic kinds.
const (
	// KindTrailingBytes reports that a descriptor response, fixed-layout or
	// variable-length, left unconsumed bytes in the buffer after a fully
	// successful decode.
	KindTrailingBytes Kind = iota
)

// String names the kind for logging.
func (k Kind) String() string {
	switch k {
	case KindTrailingBytes:
		return "TRAILING_BYTES"
	default:
		return "UNKNOWN"
	}
}

// Event describes one diagnostic observation raised while decoding a
// message or descriptor.
type Event struct {
	// Kind classifies the event.
	Kind Kind
	// DescriptorType names the descriptor being decoded, when applicable.
	DescriptorType aem.DescriptorType
	// BufferLength is the total length of the buffer being decoded.
	BufferLength int
	// ConsumedBytes is how many bytes the decode actually consumed.
	ConsumedBytes int
	// CorrelationID optionally groups events from one logical decode
	// batch (e.g. a full descriptor dump), populated by callers that
	// tag calls with a UUID.
	CorrelationID string
}
