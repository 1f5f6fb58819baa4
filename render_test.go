package protopoet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.microglot.org/protopoet.go/internal/writer"
)

// renderEmitter renders a single model node for tests that exercise one
// construct in isolation.
func renderEmitter(t *testing.T, e emitter) string {
	t.Helper()
	var out strings.Builder
	w := writer.New(&out)
	require.NoError(t, e.emit(w))
	require.NoError(t, w.Flush())
	require.NoError(t, w.Err())
	return out.String()
}
