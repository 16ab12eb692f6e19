// Package inspect renders decoded AEM descriptors and messages to CBOR for
// out-of-band debugging and tooling (packet capture annotators, the
// aem-shell REPL). It is never on the wire codec's critical path: nothing
// under pkg/codec imports this package, and its output format is not the
// AECP wire format.
package inspect

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// encMode is a canonical, deterministic CBOR encoder: map keys sorted,
// no indefinite-length items. Determinism matters here because dumps are
// diffed across runs when triaging an interop failure.
var encMode = mustEncMode()

// decMode rejects duplicate map keys, matching the encoder's canonical
// output and catching malformed dumps early.
var decMode = mustDecMode()

func mustEncMode() cbor.EncMode {
	opts := cbor.CanonicalEncOptions()
	mode, err := opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("inspect: invalid CBOR encoder options: %v", err))
	}
	return mode
}

func mustDecMode() cbor.DecMode {
	opts := cbor.DecOptions{DupMapKey: cbor.DupMapKeyEnforcedAPF}
	mode, err := opts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("inspect: invalid CBOR decoder options: %v", err))
	}
	return mode
}

// Dump renders v (typically a pkg/descriptor or pkg/codec value) as
// canonical CBOR for logging or file capture.
func Dump(v any) ([]byte, error) {
	b, err := encMode.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("inspect: dump: %w", err)
	}
	return b, nil
}

// Load reverses Dump, decoding into the type pointed to by out.
func Load(data []byte, out any) error {
	if err := decMode.Unmarshal(data, out); err != nil {
		return fmt.Errorf("inspect: load: %w", err)
	}
	return nil
}
