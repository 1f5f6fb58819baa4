package writer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmitIndentation(t *testing.T) {
	t.Parallel()
	var out strings.Builder
	w := New(&out)
	require.NoError(t, w.Emit("message A {\n"))
	require.NoError(t, w.Indent().Emit("bool a = 1;\n"))
	require.NoError(t, w.Unindent().Emit("}\n"))
	require.NoError(t, w.Flush())
	require.Equal(t, "message A {\n  bool a = 1;\n}\n", out.String())
}

func TestEmitBlankLinesAreNotIndented(t *testing.T) {
	t.Parallel()
	var out strings.Builder
	w := New(&out)
	w.Indent()
	require.NoError(t, w.Emit("a\n"))
	require.NoError(t, w.Emit("\n"))
	require.NoError(t, w.Emit("b\n"))
	require.NoError(t, w.Flush())
	require.Equal(t, "  a\n\n  b\n", out.String())
}

func TestEmitComment(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		lines    []string
		expected string
	}{
		{
			name:     "single line",
			lines:    []string{"hello"},
			expected: "// hello\n",
		},
		{
			name:     "multi line",
			lines:    []string{"hello", "world"},
			expected: "// hello\n// world\n",
		},
		{
			name:     "blank interior line keeps marker",
			lines:    []string{"hello", "", "world"},
			expected: "// hello\n//\n// world\n",
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			var out strings.Builder
			w := New(&out)
			require.NoError(t, w.EmitComment(testCase.lines))
			require.NoError(t, w.Flush())
			require.Equal(t, testCase.expected, out.String())
		})
	}
}

func TestEmitCommentIndented(t *testing.T) {
	t.Parallel()
	var out strings.Builder
	w := New(&out)
	w.Indent()
	require.NoError(t, w.EmitComment([]string{"hi"}))
	require.NoError(t, w.Flush())
	require.Equal(t, "  // hi\n", out.String())
}

func TestSoftWrapAtSpaces(t *testing.T) {
	t.Parallel()
	var out strings.Builder
	w := NewWithGeometry(&out, " ", 20, 2)
	require.NoError(t, w.Emit("aaaa bbbb cccc dddd eeee\n"))
	require.NoError(t, w.Flush())
	require.Equal(t, "aaaa bbbb cccc dddd\n    eeee\n", out.String())
}

func TestSoftWrapKeepsCommentMarker(t *testing.T) {
	t.Parallel()
	var out strings.Builder
	w := NewWithGeometry(&out, " ", 20, 2)
	require.NoError(t, w.EmitComment([]string{"aaaa bbbb cccc dddd eeee"}))
	require.NoError(t, w.Flush())
	require.Equal(t, "// aaaa bbbb cccc\n// dddd eeee\n", out.String())
}

func TestCallerNewlinesUntouched(t *testing.T) {
	t.Parallel()
	var out strings.Builder
	w := NewWithGeometry(&out, " ", 20, 2)
	require.NoError(t, w.Emit("short\nlines\n\nstay\n"))
	require.NoError(t, w.Flush())
	require.Equal(t, "short\nlines\n\nstay\n", out.String())
}

func TestUnindentBelowZeroPanics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() {
		New(&strings.Builder{}).Unindent()
	})
}

func TestDiscard(t *testing.T) {
	t.Parallel()
	w := Discard()
	require.NoError(t, w.Emit("anything at all\n"))
	require.NoError(t, w.Flush())
}
