package protopoet

import (
	"fmt"

	"gopkg.microglot.org/protopoet.go/internal/writer"
)

// OptionSpec models a single option: an owner category, a name and a typed
// value. Options on fields and enum values render inline in a bracketed list;
// every other category renders as a standalone "option name = value;"
// statement.
type OptionSpec struct {
	optionType  OptionType
	name        string
	comment     []string
	valueType   FieldType
	literal     string
	fieldValues []FieldValue
	hasValue    bool
}

// OptionBuilder assembles an OptionSpec. Value setters validate type
// compatibility eagerly and panic on mismatch.
type OptionBuilder struct {
	spec OptionSpec
}

func newOption(optionType OptionType, name string) *OptionBuilder {
	checkArgument(name != "", "option name may not be empty")
	return &OptionBuilder{spec: OptionSpec{optionType: optionType, name: name}}
}

func FileOption(name string) *OptionBuilder {
	return newOption(OptionTypeFile, name)
}

func MessageOption(name string) *OptionBuilder {
	return newOption(OptionTypeMessage, name)
}

func FieldOption(name string) *OptionBuilder {
	return newOption(OptionTypeField, name)
}

func EnumOption(name string) *OptionBuilder {
	return newOption(OptionTypeEnum, name)
}

func EnumValueOption(name string) *OptionBuilder {
	return newOption(OptionTypeEnumValue, name)
}

func ServiceOption(name string) *OptionBuilder {
	return newOption(OptionTypeService, name)
}

func OneofOption(name string) *OptionBuilder {
	return newOption(OptionTypeOneof, name)
}

func MethodOption(name string) *OptionBuilder {
	return newOption(OptionTypeMethod, name)
}

// SetComment declares comment lines above the option. Inline field-context
// options have nowhere to put a comment, so the categories Field and
// EnumValue reject one.
func (b *OptionBuilder) SetComment(lines ...string) *OptionBuilder {
	checkState(!b.spec.fieldContext(), "comments aren't available for field options")
	b.spec.comment = append([]string{}, lines...)
	return b
}

// SetInt32Value sets a 32-bit integral value (int32, uint32, fixed32,
// sfixed32).
func (b *OptionBuilder) SetInt32Value(valueType FieldType, value int32) *OptionBuilder {
	checkArgument(valueType.isInt32Class(), "'%s' invalid type for an int32 value", valueType)
	return b.setScalar(valueType, fmt.Sprintf("%d", value))
}

// SetInt64Value sets a 64-bit integral value (int64, uint64, fixed64,
// sfixed64).
func (b *OptionBuilder) SetInt64Value(valueType FieldType, value int64) *OptionBuilder {
	checkArgument(valueType.isInt64Class(), "'%s' invalid type for an int64 value", valueType)
	return b.setScalar(valueType, fmt.Sprintf("%d", value))
}

func (b *OptionBuilder) SetFloatValue(value float32) *OptionBuilder {
	return b.setScalar(TypeFloat, fmt.Sprintf("%v", value))
}

func (b *OptionBuilder) SetDoubleValue(value float64) *OptionBuilder {
	return b.setScalar(TypeDouble, fmt.Sprintf("%v", value))
}

func (b *OptionBuilder) SetBoolValue(value bool) *OptionBuilder {
	return b.setScalar(TypeBool, fmt.Sprintf("%t", value))
}

// SetStringValue sets a string-like value (string, bytes, enum literal).
func (b *OptionBuilder) SetStringValue(valueType FieldType, value string) *OptionBuilder {
	checkArgument(valueType.isStringClass(), "'%s' invalid type for a string value", valueType)
	return b.setScalar(valueType, value)
}

// SetMessageValue sets a message-typed value from a list of field values.
func (b *OptionBuilder) SetMessageValue(values ...FieldValue) *OptionBuilder {
	b.spec.valueType = TypeMessage
	b.spec.fieldValues = append([]FieldValue{}, values...)
	b.spec.hasValue = true
	return b
}

func (b *OptionBuilder) setScalar(valueType FieldType, literal string) *OptionBuilder {
	b.spec.valueType = valueType
	b.spec.literal = literal
	b.spec.hasValue = true
	return b
}

func (b *OptionBuilder) Build() *OptionSpec {
	checkState(b.spec.hasValue, "option '%s' must have a value", b.spec.name)
	spec := b.spec
	return &spec
}

func (s *OptionSpec) fieldContext() bool {
	return s.optionType == OptionTypeField || s.optionType == OptionTypeEnumValue
}

func (s *OptionSpec) emit(w *writer.Writer) error {
	if !s.fieldContext() && len(s.comment) > 0 {
		if err := w.EmitComment(s.comment); err != nil {
			return err
		}
	}
	name := s.optionType.formatOptionName(s.name)

	if s.valueType != TypeMessage {
		value := s.valueType.formatValue(s.literal)
		if s.fieldContext() {
			return w.Emitf("%s = %s", name, value)
		}
		return w.Emitf("option %s = %s;\n", name, value)
	}

	// Message values format one key-value per line as a standalone
	// statement, single-line when inline in a field-option list.
	if !s.fieldContext() {
		if err := w.Emitf("option %s = {\n", name); err != nil {
			return err
		}
		w.Indent()
		for _, value := range s.fieldValues {
			if err := w.Emitf("%s: %s\n", value.Name(), value.FormattedValue()); err != nil {
				return err
			}
		}
		w.Unindent()
		return w.Emit("};\n")
	}
	if err := w.Emitf("%s = { ", name); err != nil {
		return err
	}
	for _, value := range s.fieldValues {
		if err := w.Emitf("%s: %s ", value.Name(), value.FormattedValue()); err != nil {
			return err
		}
	}
	return w.Emit("}")
}

// emitFieldOptions renders an inline bracketed option list after a field
// declaration, e.g. " [deprecated = true, (my_opt) = 7]".
func emitFieldOptions(options []*OptionSpec, w *writer.Writer) error {
	if len(options) == 0 {
		return nil
	}
	if err := w.Emit(" ["); err != nil {
		return err
	}
	for i, option := range options {
		if err := option.emit(w); err != nil {
			return err
		}
		if i+1 < len(options) {
			if err := w.Emit(", "); err != nil {
				return err
			}
		}
	}
	return w.Emit("]")
}

// buildOptions builds a batch of option builders, enforcing that every one
// carries the category the owning construct accepts.
func buildOptions(target OptionType, builders []*OptionBuilder) []*OptionSpec {
	out := make([]*OptionSpec, 0, len(builders))
	for _, builder := range builders {
		option := builder.Build()
		checkArgument(option.optionType == target, "option must be %s type", target)
		out = append(out, option)
	}
	return out
}
