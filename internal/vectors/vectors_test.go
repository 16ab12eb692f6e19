package vectors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCasesRoundTrip(t *testing.T) {
	data := []byte(`
- name: acquire_entity_basic
  message: ACQUIRE_ENTITY
  hex_payload: "0000000100000000000000010002000300"
  fields:
    ownerID: 1
`)
	cases, err := ParseCases(data)
	require.NoError(t, err)
	require.Len(t, cases, 1)
	require.Equal(t, "ACQUIRE_ENTITY", cases[0].Message)

	payload, err := cases[0].Payload()
	require.NoError(t, err)
	require.Len(t, payload, 17)
}

func TestParseCasesBadHex(t *testing.T) {
	c := Case{Name: "broken", HexPayload: "zz"}
	_, err := c.Payload()
	require.Error(t, err)
}

func TestLoadCasesMissingFile(t *testing.T) {
	_, err := LoadCases("/nonexistent/path/does/not/exist.yaml")
	require.Error(t, err)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
}
