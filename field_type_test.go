package protopoet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldTypeKeywords(t *testing.T) {
	t.Parallel()
	require.Equal(t, "double", TypeDouble.String())
	require.Equal(t, "sfixed64", TypeSfixed64.String())
	require.Equal(t, "bytes", TypeBytes.String())
}

func TestFormatValueQuotesStrings(t *testing.T) {
	t.Parallel()
	require.Equal(t, `"hello"`, TypeString.formatValue("hello"))
	require.Equal(t, `"a\"b"`, TypeString.formatValue(`a"b`))
	require.Equal(t, "true", TypeBool.formatValue("true"))
	require.Equal(t, "42", TypeInt32.formatValue("42"))
}

func TestScalarClasses(t *testing.T) {
	t.Parallel()
	require.True(t, TypeSint32.isInt32Class())
	require.True(t, TypeSint64.isInt64Class())
	require.False(t, TypeSint64.isInt32Class())
	require.True(t, TypeEnum.isStringClass())
	require.False(t, TypeBool.isStringClass())
}

func TestInferFieldType(t *testing.T) {
	t.Parallel()
	require.Equal(t, TypeDouble, InferFieldType(1.5))
	require.Equal(t, TypeInt32, InferFieldType(42))
	require.Equal(t, TypeInt64, InferFieldType(int64(42)))
	require.Equal(t, TypeBool, InferFieldType(true))
	require.Equal(t, TypeString, InferFieldType("x"))
	require.Equal(t, TypeBytes, InferFieldType([]byte("x")))
}
