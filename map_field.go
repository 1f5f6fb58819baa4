package protopoet

import (
	"gopkg.microglot.org/protopoet.go/internal/optional"
	"gopkg.microglot.org/protopoet.go/internal/writer"
)

// MapFieldSpec is a proto3 map field. Map fields never carry a label and the
// key type is restricted to the integral and string scalar types.
type MapFieldSpec struct {
	comment        []string
	keyType        FieldType
	valueType      FieldType
	customTypeName string
	name           string
	number         int32
	options        []*OptionSpec
}

// MapFieldBuilder assembles a MapFieldSpec.
type MapFieldBuilder struct {
	spec           MapFieldSpec
	optionBuilders []*OptionBuilder
}

// NewMapField starts a map field. The key type must be an integral or string
// scalar; message and enum value types need SetCustomTypeName before Build.
func NewMapField(keyType FieldType, valueType FieldType, name string, number int32) *MapFieldBuilder {
	checkArgument(validMapKeyTypes[keyType], "'%s' is an invalid map key type", keyType)
	checkArgument(name != "", "field name may not be empty")
	checkArgument(number > 0, "field number must be positive")
	return &MapFieldBuilder{spec: MapFieldSpec{
		keyType:   keyType,
		valueType: valueType,
		name:      name,
		number:    number,
	}}
}

func (b *MapFieldBuilder) SetComment(lines ...string) *MapFieldBuilder {
	b.spec.comment = append([]string{}, lines...)
	return b
}

func (b *MapFieldBuilder) SetCustomTypeName(typeName string) *MapFieldBuilder {
	checkState(b.spec.valueType == TypeMessage || b.spec.valueType == TypeEnum,
		"custom type name only applies to message and enum typed fields")
	checkArgument(typeName != "", "custom type name may not be empty")
	b.spec.customTypeName = typeName
	return b
}

func (b *MapFieldBuilder) AddOptions(options ...*OptionBuilder) *MapFieldBuilder {
	b.optionBuilders = append(b.optionBuilders, options...)
	return b
}

func (b *MapFieldBuilder) Build() *MapFieldSpec {
	if b.spec.valueType == TypeMessage || b.spec.valueType == TypeEnum {
		checkState(b.spec.customTypeName != "", "field '%s' requires a custom type name", b.spec.name)
	}
	spec := b.spec
	spec.options = buildOptions(OptionTypeField, b.optionBuilders)
	return &spec
}

func (b *MapFieldBuilder) buildMessageField() MessageField {
	return b.Build()
}

func (s *MapFieldSpec) valueReference() string {
	if s.customTypeName != "" {
		return s.customTypeName
	}
	return s.valueType.String()
}

func (s *MapFieldSpec) emit(w *writer.Writer) error {
	if len(s.comment) > 0 {
		if err := w.EmitComment(s.comment); err != nil {
			return err
		}
	}
	if err := w.Emitf("map<%s, %s> %s = %d", s.keyType, s.valueReference(), s.name, s.number); err != nil {
		return err
	}
	if err := emitFieldOptions(s.options, w); err != nil {
		return err
	}
	return w.Emit(";\n")
}

func (s *MapFieldSpec) fieldName() string {
	return s.name
}

func (s *MapFieldSpec) fieldNumber() optional.Optional[int32] {
	return optional.Some(s.number)
}

func (s *MapFieldSpec) messageField() {}
