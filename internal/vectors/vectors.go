// Package vectors loads YAML golden test vectors for the AEM payload
// codec's table-driven tests: a hex-encoded wire payload plus the message
// it belongs to and the field values it should decode to.
package vectors

import (
	"encoding/hex"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Case is one golden vector: a named wire payload for a specific message,
// together with the field values a correct decode must produce.
type Case struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Message     string         `yaml:"message"`
	Status      string         `yaml:"status,omitempty"`
	HexPayload  string         `yaml:"hex_payload"`
	Fields      map[string]any `yaml:"fields"`
}

// Payload decodes the case's hex_payload into raw bytes.
func (c Case) Payload() ([]byte, error) {
	b, err := hex.DecodeString(c.HexPayload)
	if err != nil {
		return nil, fmt.Errorf("vectors: case %q: bad hex_payload: %w", c.Name, err)
	}
	return b, nil
}

// LoadError names the file a case set failed to load from.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string { return fmt.Sprintf("vectors: %s: %v", e.Path, e.Err) }

func (e *LoadError) Unwrap() error { return e.Err }

// ParseCases decodes a YAML document (a top-level list of Case) from data.
func ParseCases(data []byte) ([]Case, error) {
	var cases []Case
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("vectors: parse: %w", err)
	}
	return cases, nil
}

// LoadCases reads and parses a case set from a file on disk.
func LoadCases(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	cases, err := ParseCases(data)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return cases, nil
}
