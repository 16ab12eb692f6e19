package inspect

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avdecc-go/aemcodec/pkg/aem"
	"github.com/avdecc-go/aemcodec/pkg/descriptor"
)

func TestDumpLoadRoundTrip(t *testing.T) {
	jack := descriptor.Jack{
		ObjectName:       aem.NewFixedString("Jack 1"),
		JackType:         3,
		NumberOfControls: 0,
		BaseControl:      0,
	}

	b, err := Dump(jack)
	require.NoError(t, err)
	require.NotEmpty(t, b)

	var out descriptor.Jack
	require.NoError(t, Load(b, &out))
	require.Equal(t, jack.JackType, out.JackType)
	require.Equal(t, jack.ObjectName.String(), out.ObjectName.String())
}

func TestDumpIsCanonical(t *testing.T) {
	a, err := Dump(map[string]int{"b": 2, "a": 1})
	require.NoError(t, err)
	b, err := Dump(map[string]int{"a": 1, "b": 2})
	require.NoError(t, err)
	require.Equal(t, a, b)
}
