package protopoet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtensionRendering(t *testing.T) {
	t.Parallel()
	spec := NewExtension(OptionTypeField).
		SetComment("custom field options").
		AddFields(
			NewField(TypeString, "my_opt", 50000),
			NewField(TypeBool, "my_flag", 50001),
		).
		Build()
	expected := "// custom field options\n" +
		"extend google.protobuf.FieldOptions {\n" +
		"\n" +
		"  string my_opt = 50000;\n" +
		"\n" +
		"  bool my_flag = 50001;\n" +
		"}\n"
	got, err := spec.RenderString()
	require.NoError(t, err)
	require.Equal(t, expected, got)
}

func TestExtensionImpliesDescriptorImport(t *testing.T) {
	t.Parallel()
	spec := NewExtension(OptionTypeMessage).Build()
	imports := spec.imports()
	require.Len(t, imports, 1)
	require.Equal(t, "google/protobuf/descriptor.proto", imports[0].Path())
}

func TestExtensionFieldConflicts(t *testing.T) {
	t.Parallel()
	spec := NewExtension(OptionTypeField).
		AddFields(
			NewField(TypeString, "my_opt", 50000),
			NewField(TypeBool, "other", 50000),
		).
		Build()
	require.EqualError(t, spec.Validate(),
		"field number 50000 already used by field named 'my_opt'")
}

func TestExtensionEmptyBody(t *testing.T) {
	t.Parallel()
	got, err := NewExtension(OptionTypeMethod).Build().RenderString()
	require.NoError(t, err)
	require.Equal(t, "extend google.protobuf.MethodOptions {}\n", got)
}
