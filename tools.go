//go:build tools

package tools

import (
	_ "github.com/vektra/mockery/v2"
	_ "golang.org/x/tools/cmd/stringer"
)

// mockery generates internal/mocks/mock_Sink.go from pkg/diag.Sink; see
// .mockery.yaml. stringer is available for generating a String method for
// aem.DescriptorType, which has none at present.
