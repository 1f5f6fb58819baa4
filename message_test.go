package protopoet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessageRendering(t *testing.T) {
	t.Parallel()
	spec := NewMessage("A").
		SetComment("comment").
		AddFields(
			NewField(TypeBool, "a", 1),
			NewRepeatedField(TypeString, "b", 2).SetComment("comment"),
			NewMessageTypeField("Foo", "c", 3),
		).
		Build()
	expected := "// comment\n" +
		"message A {\n" +
		"\n" +
		"  bool a = 1;\n" +
		"\n" +
		"  // comment\n" +
		"  repeated string b = 2;\n" +
		"\n" +
		"  Foo c = 3;\n" +
		"}\n"
	got, err := spec.RenderString()
	require.NoError(t, err)
	require.Equal(t, expected, got)
}

func TestMessageEmptyBody(t *testing.T) {
	t.Parallel()
	got, err := NewMessage("A").Build().RenderString()
	require.NoError(t, err)
	require.Equal(t, "message A {}\n", got)
}

func TestMessageOptionsAndReservationsLeadTheBody(t *testing.T) {
	t.Parallel()
	spec := NewMessage("A").
		AddOptions(MessageOption("deprecated").SetBoolValue(true)).
		AddReservations(
			ReserveNumbers(5, 6),
			ReserveNames("old_name"),
		).
		AddFields(NewField(TypeBool, "a", 1)).
		Build()
	expected := "message A {\n" +
		"\n" +
		"  option deprecated = true;\n" +
		"\n" +
		"  reserved 5, 6;\n" +
		"  reserved \"old_name\";\n" +
		"\n" +
		"  bool a = 1;\n" +
		"}\n"
	got, err := spec.RenderString()
	require.NoError(t, err)
	require.Equal(t, expected, got)
}

func TestMessageNestedTypes(t *testing.T) {
	t.Parallel()
	spec := NewMessage("Outer").
		AddFields(NewMessageTypeField("Inner", "inner", 1)).
		AddMessages(NewMessage("Inner").AddFields(NewField(TypeBool, "ok", 1))).
		AddEnums(NewEnum("Kind").AddValues(NewEnumValue("KIND_UNKNOWN", 0))).
		Build()
	expected := "message Outer {\n" +
		"\n" +
		"  Inner inner = 1;\n" +
		"\n" +
		"  message Inner {\n" +
		"\n" +
		"    bool ok = 1;\n" +
		"  }\n" +
		"\n" +
		"  enum Kind {\n" +
		"\n" +
		"    KIND_UNKNOWN = 0;\n" +
		"  }\n" +
		"}\n"
	got, err := spec.RenderString()
	require.NoError(t, err)
	require.Equal(t, expected, got)
}

func TestMessageOneofBody(t *testing.T) {
	t.Parallel()
	spec := NewMessage("A").
		AddFields(
			NewField(TypeBool, "a", 1),
			NewOneof("choice").AddFields(
				NewField(TypeString, "name", 2),
				NewField(TypeInt32, "id", 3),
			),
		).
		Build()
	expected := "message A {\n" +
		"\n" +
		"  bool a = 1;\n" +
		"\n" +
		"  oneof choice {\n" +
		"\n" +
		"    string name = 2;\n" +
		"\n" +
		"    int32 id = 3;\n" +
		"  }\n" +
		"}\n"
	got, err := spec.RenderString()
	require.NoError(t, err)
	require.Equal(t, expected, got)
}

func TestMessageValidateConflicts(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		builder  *MessageBuilder
		expected string
	}{
		{
			name: "duplicate field number",
			builder: NewMessage("A").AddFields(
				NewField(TypeBool, "foo", 1),
				NewField(TypeBool, "bar", 1),
			),
			expected: "field number 1 already used by field named 'foo'",
		},
		{
			name: "reserved number",
			builder: NewMessage("A").
				AddReservations(ReserveNumbers(2)).
				AddFields(NewField(TypeBool, "a", 2)),
			expected: "field number 2 is reserved and cannot be used",
		},
		{
			name: "reserved name",
			builder: NewMessage("A").
				AddReservations(ReserveNames("a")).
				AddFields(NewField(TypeBool, "a", 1)),
			expected: "field name 'a' is reserved and cannot be used",
		},
		{
			name: "oneof member reuses sibling number",
			builder: NewMessage("A").AddFields(
				NewField(TypeBool, "foo", 1),
				NewOneof("choice").AddFields(NewField(TypeString, "bar", 1)),
			),
			expected: "field number 1 already used by field named 'foo'",
		},
		{
			name: "oneof name collides with sibling field",
			builder: NewMessage("A").AddFields(
				NewOneof("choice").AddFields(NewField(TypeString, "bar", 1)),
				NewField(TypeBool, "choice", 2),
			),
			expected: "field name 'choice' is not unique",
		},
		{
			name: "duplicate nested type names",
			builder: NewMessage("A").
				AddMessages(NewMessage("B"), NewMessage("B")),
			expected: "'B' name already used in 'A'",
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			spec := testCase.builder.Build()
			require.EqualError(t, spec.Validate(), testCase.expected)
			_, err := spec.RenderString()
			require.EqualError(t, err, testCase.expected)
		})
	}
}

func TestMessageNestedScopesAreIndependent(t *testing.T) {
	t.Parallel()
	// Same field identities in sibling messages never collide.
	spec := NewMessage("A").
		AddMessages(
			NewMessage("B").AddFields(NewField(TypeBool, "x", 1)),
			NewMessage("C").AddFields(NewField(TypeBool, "x", 1)),
		).
		Build()
	require.NoError(t, spec.Validate())
}

func TestMessageRenderIsRepeatable(t *testing.T) {
	t.Parallel()
	spec := NewMessage("A").AddFields(NewField(TypeBool, "a", 1)).Build()
	first, err := spec.RenderString()
	require.NoError(t, err)
	second, err := spec.RenderString()
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestMessageNestedValidationFailureSurfaces(t *testing.T) {
	t.Parallel()
	spec := NewMessage("A").
		AddMessages(NewMessage("B").AddFields(
			NewField(TypeBool, "x", 1),
			NewField(TypeBool, "x", 2),
		)).
		Build()
	require.EqualError(t, spec.Validate(),
		"field name 'x' (number=2) not unique, used by field number 1")
}
