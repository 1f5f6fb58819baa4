package protopoet

import (
	"gopkg.microglot.org/protopoet.go/internal/optional"
	"gopkg.microglot.org/protopoet.go/internal/writer"
)

// EnumValueSpec is a single enum value declaration. Unlike message field
// numbers, enum value numbers may be zero; proto3 requires the first declared
// value to be zero but that is left to the caller.
type EnumValueSpec struct {
	comment []string
	name    string
	number  int32
	options []*OptionSpec
}

// EnumValueBuilder assembles an EnumValueSpec.
type EnumValueBuilder struct {
	spec           EnumValueSpec
	optionBuilders []*OptionBuilder
}

// NewEnumValue starts an enum value. The number must not be negative.
func NewEnumValue(name string, number int32) *EnumValueBuilder {
	checkArgument(name != "", "enum value name may not be empty")
	checkArgument(number >= 0, "enum value number may not be negative")
	return &EnumValueBuilder{spec: EnumValueSpec{name: name, number: number}}
}

func (b *EnumValueBuilder) SetComment(lines ...string) *EnumValueBuilder {
	b.spec.comment = append([]string{}, lines...)
	return b
}

// AddOptions appends enum value options, rendered in the trailing bracket
// list.
func (b *EnumValueBuilder) AddOptions(options ...*OptionBuilder) *EnumValueBuilder {
	b.optionBuilders = append(b.optionBuilders, options...)
	return b
}

func (b *EnumValueBuilder) Build() *EnumValueSpec {
	spec := b.spec
	spec.options = buildOptions(OptionTypeEnumValue, b.optionBuilders)
	return &spec
}

func (s *EnumValueSpec) emit(w *writer.Writer) error {
	if len(s.comment) > 0 {
		if err := w.EmitComment(s.comment); err != nil {
			return err
		}
	}
	if err := w.Emitf("%s = %d", s.name, s.number); err != nil {
		return err
	}
	if err := emitFieldOptions(s.options, w); err != nil {
		return err
	}
	return w.Emit(";\n")
}

func (s *EnumValueSpec) fieldName() string {
	return s.name
}

func (s *EnumValueSpec) fieldNumber() optional.Optional[int32] {
	return optional.Some(s.number)
}
