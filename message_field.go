// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package protopoet

import (
	"gopkg.microglot.org/protopoet.go/internal/optional"
	"gopkg.microglot.org/protopoet.go/internal/writer"
)

// MessageField is any construct that may appear in a message body as a field
// declaration: a plain field, a map field, or a oneof group. The interface is
// closed; implementations live in this package.
type MessageField interface {
	emitter
	fieldName() string
	messageField()
}

// MessageFieldBuilder produces a MessageField. All field builder variants
// satisfy it so message and extension builders can accept them uniformly.
type MessageFieldBuilder interface {
	buildMessageField() MessageField
}

// FieldSpec is a plain proto3 field declaration, scalar or message/enum
// typed, with an optional repeated or optional label.
type FieldSpec struct {
	comment        []string
	fieldType      FieldType
	customTypeName string
	name           string
	number         int32
	repeated       bool
	hasOptional    bool
	options        []*OptionSpec
}

// FieldBuilder assembles a FieldSpec.
type FieldBuilder struct {
	comment        []string
	fieldType      FieldType
	customTypeName string
	name           string
	number         int32
	repeated       bool
	hasOptional    bool
	options        []*OptionBuilder
}

// NewField starts a field of the given type. The field number must be
// positive; message and enum typed fields additionally need
// SetCustomTypeName (or use NewMessageTypeField).
func NewField(fieldType FieldType, name string, number int32) *FieldBuilder {
	checkArgument(name != "", "field name may not be empty")
	checkArgument(number > 0, "field number must be positive")
	return &FieldBuilder{fieldType: fieldType, name: name, number: number}
}

// NewRepeatedField starts a field carrying the repeated label.
func NewRepeatedField(fieldType FieldType, name string, number int32) *FieldBuilder {
	return NewField(fieldType, name, number).SetRepeated()
}

// NewOptionalField starts a field carrying the proto3 optional label.
func NewOptionalField(fieldType FieldType, name string, number int32) *FieldBuilder {
	return NewField(fieldType, name, number).SetOptional()
}

// NewMessageTypeField starts a message typed field referencing typeName. The
// reference is emitted verbatim; no resolution is attempted.
func NewMessageTypeField(typeName string, name string, number int32) *FieldBuilder {
	return NewField(TypeMessage, name, number).SetCustomTypeName(typeName)
}

func (b *FieldBuilder) SetComment(lines ...string) *FieldBuilder {
	b.comment = append([]string{}, lines...)
	return b
}

// SetRepeated marks the field repeated. Mutually exclusive with the optional
// label.
func (b *FieldBuilder) SetRepeated() *FieldBuilder {
	checkState(!b.hasOptional, "field may not be both optional and repeated")
	b.repeated = true
	return b
}

// SetOptional marks the field with the proto3 optional label. Mutually
// exclusive with repeated.
func (b *FieldBuilder) SetOptional() *FieldBuilder {
	checkState(!b.repeated, "field may not be both optional and repeated")
	b.hasOptional = true
	return b
}

// SetCustomTypeName names the referenced type for message and enum typed
// fields.
func (b *FieldBuilder) SetCustomTypeName(typeName string) *FieldBuilder {
	checkState(b.fieldType == TypeMessage || b.fieldType == TypeEnum,
		"custom type name only applies to message and enum typed fields")
	checkArgument(typeName != "", "custom type name may not be empty")
	b.customTypeName = typeName
	return b
}

// AddOptions appends field options, rendered in source order inside the
// trailing bracket list. Options must be field type.
func (b *FieldBuilder) AddOptions(options ...*OptionBuilder) *FieldBuilder {
	b.options = append(b.options, options...)
	return b
}

func (b *FieldBuilder) Build() *FieldSpec {
	if b.fieldType == TypeMessage || b.fieldType == TypeEnum {
		checkState(b.customTypeName != "", "field '%s' requires a custom type name", b.name)
	}
	return &FieldSpec{
		comment:        b.comment,
		fieldType:      b.fieldType,
		customTypeName: b.customTypeName,
		name:           b.name,
		number:         b.number,
		repeated:       b.repeated,
		hasOptional:    b.hasOptional,
		options:        buildOptions(OptionTypeField, b.options),
	}
}

func (b *FieldBuilder) buildMessageField() MessageField {
	return b.Build()
}

func (s *FieldSpec) typeReference() string {
	if s.customTypeName != "" {
		return s.customTypeName
	}
	return s.fieldType.String()
}

func (s *FieldSpec) emit(w *writer.Writer) error {
	if len(s.comment) > 0 {
		if err := w.EmitComment(s.comment); err != nil {
			return err
		}
	}
	label := ""
	switch {
	case s.repeated:
		label = "repeated "
	case s.hasOptional:
		label = "optional "
	}
	if err := w.Emitf("%s%s %s = %d", label, s.typeReference(), s.name, s.number); err != nil {
		return err
	}
	if err := emitFieldOptions(s.options, w); err != nil {
		return err
	}
	return w.Emit(";\n")
}

func (s *FieldSpec) fieldName() string {
	return s.name
}

func (s *FieldSpec) fieldNumber() optional.Optional[int32] {
	return optional.Some(s.number)
}

func (s *FieldSpec) messageField() {}
