// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package protopoet

import (
	"gopkg.microglot.org/protopoet.go/internal/optional"
	"gopkg.microglot.org/protopoet.go/internal/writer"
)

// OneofSpec is a oneof group. Its member fields live in the enclosing
// message's namespace alongside the group name itself, so the group reports
// both to the parent's collision tracking.
type OneofSpec struct {
	comment []string
	name    string
	options []*OptionSpec
	fields  []*FieldSpec
}

// OneofBuilder assembles a OneofSpec.
type OneofBuilder struct {
	comment        []string
	name           string
	optionBuilders []*OptionBuilder
	fields         []*FieldSpec
}

// NewOneof starts a oneof group with the given name.
func NewOneof(name string) *OneofBuilder {
	checkArgument(name != "", "oneof name may not be empty")
	return &OneofBuilder{name: name}
}

func (b *OneofBuilder) SetComment(lines ...string) *OneofBuilder {
	b.comment = append([]string{}, lines...)
	return b
}

// AddFields appends member fields. Labels are illegal inside a oneof, so
// repeated and optional fields are rejected here.
func (b *OneofBuilder) AddFields(fields ...*FieldBuilder) *OneofBuilder {
	for _, fb := range fields {
		spec := fb.Build()
		checkArgument(!spec.repeated, "field '%s' may not be repeated inside a oneof", spec.name)
		checkArgument(!spec.hasOptional, "field '%s' may not be optional inside a oneof", spec.name)
		b.fields = append(b.fields, spec)
	}
	return b
}

// AddOptions appends oneof options, rendered before the member fields.
func (b *OneofBuilder) AddOptions(options ...*OptionBuilder) *OneofBuilder {
	b.optionBuilders = append(b.optionBuilders, options...)
	return b
}

func (b *OneofBuilder) Build() *OneofSpec {
	return &OneofSpec{
		comment: b.comment,
		name:    b.name,
		options: buildOptions(OptionTypeOneof, b.optionBuilders),
		fields:  append([]*FieldSpec{}, b.fields...),
	}
}

func (b *OneofBuilder) buildMessageField() MessageField {
	return b.Build()
}

func (s *OneofSpec) emit(w *writer.Writer) error {
	if len(s.comment) > 0 {
		if err := w.EmitComment(s.comment); err != nil {
			return err
		}
	}
	elements := make([]emitter, 0, len(s.fields)+1)
	if len(s.options) > 0 {
		elements = append(elements, optionGroup(s.options))
	}
	for _, f := range s.fields {
		elements = append(elements, f)
	}
	return emitBody(w, "oneof "+s.name, elements)
}

func (s *OneofSpec) fieldName() string {
	return s.name
}

func (s *OneofSpec) fieldNumber() optional.Optional[int32] {
	return optional.None[int32]()
}

func (s *OneofSpec) memberFields() []usedField {
	members := make([]usedField, 0, len(s.fields))
	for _, f := range s.fields {
		members = append(members, f)
	}
	return members
}

func (s *OneofSpec) messageField() {}
