// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package protopoet

import (
	"io"
	"strings"

	"gopkg.microglot.org/protopoet.go/internal/writer"
)

// typeDeclaration is a named construct nested in a message or file body: a
// message, enum, service, or extension block.
type typeDeclaration interface {
	emitter
	typeName() string
}

// validator is a construct that can check its own name and number usage
// without rendering.
type validator interface {
	validate() error
}

// MessageSpec is a message declaration: options, reservations, fields and
// nested type declarations. Field name and number collisions, including
// collisions with reservations and across oneof members, are detected when
// the message is validated or rendered.
type MessageSpec struct {
	comment      []string
	name         string
	options      []*OptionSpec
	reservations []*ReservationSpec
	fields       []MessageField
	types        []typeDeclaration
}

// MessageBuilder assembles a MessageSpec.
type MessageBuilder struct {
	comment             []string
	name                string
	optionBuilders      []*OptionBuilder
	reservationBuilders []*ReservationBuilder
	fieldBuilders       []MessageFieldBuilder
	typeBuilders        []typeDeclarationBuilder
}

type typeDeclarationBuilder interface {
	buildTypeDeclaration() typeDeclaration
}

// NewMessage starts a message with the given name.
func NewMessage(name string) *MessageBuilder {
	checkArgument(name != "", "message name may not be empty")
	return &MessageBuilder{name: name}
}

func (b *MessageBuilder) SetComment(lines ...string) *MessageBuilder {
	b.comment = append([]string{}, lines...)
	return b
}

// AddOptions appends message options, rendered as the first body group.
func (b *MessageBuilder) AddOptions(options ...*OptionBuilder) *MessageBuilder {
	b.optionBuilders = append(b.optionBuilders, options...)
	return b
}

// AddReservations appends reserved statements, rendered after the options.
func (b *MessageBuilder) AddReservations(reservations ...*ReservationBuilder) *MessageBuilder {
	b.reservationBuilders = append(b.reservationBuilders, reservations...)
	return b
}

// AddFields appends field declarations of any variant: plain, map, or oneof.
func (b *MessageBuilder) AddFields(fields ...MessageFieldBuilder) *MessageBuilder {
	b.fieldBuilders = append(b.fieldBuilders, fields...)
	return b
}

// AddMessages appends nested message declarations.
func (b *MessageBuilder) AddMessages(messages ...*MessageBuilder) *MessageBuilder {
	for _, m := range messages {
		b.typeBuilders = append(b.typeBuilders, m)
	}
	return b
}

// AddEnums appends nested enum declarations.
func (b *MessageBuilder) AddEnums(enums ...*EnumBuilder) *MessageBuilder {
	for _, e := range enums {
		b.typeBuilders = append(b.typeBuilders, e)
	}
	return b
}

func (b *MessageBuilder) Build() *MessageSpec {
	spec := &MessageSpec{
		comment: b.comment,
		name:    b.name,
		options: buildOptions(OptionTypeMessage, b.optionBuilders),
	}
	for _, rb := range b.reservationBuilders {
		spec.reservations = append(spec.reservations, rb.Build())
	}
	for _, fb := range b.fieldBuilders {
		spec.fields = append(spec.fields, fb.buildMessageField())
	}
	for _, tb := range b.typeBuilders {
		spec.types = append(spec.types, tb.buildTypeDeclaration())
	}
	return spec
}

func (b *MessageBuilder) buildTypeDeclaration() typeDeclaration {
	return b.Build()
}

// Validate checks the message for name and number conflicts without
// producing output.
func (s *MessageSpec) Validate() error {
	return s.validate()
}

func (s *MessageSpec) validate() error {
	var fields fieldMonitor
	fields.reset()
	names := nameMonitor{scope: s.name}
	names.reset()
	for _, r := range s.reservations {
		if err := fields.addReservation(r); err != nil {
			return err
		}
	}
	for _, f := range s.fields {
		var err error
		if group, ok := f.(usedFieldGroup); ok {
			err = fields.addGroup(group)
		} else {
			err = fields.addField(f.(usedField))
		}
		if err != nil {
			return err
		}
	}
	for _, t := range s.types {
		if err := names.add(t.typeName()); err != nil {
			return err
		}
		if v, ok := t.(validator); ok {
			if err := v.validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *MessageSpec) emit(w *writer.Writer) error {
	if err := s.validate(); err != nil {
		return err
	}
	if len(s.comment) > 0 {
		if err := w.EmitComment(s.comment); err != nil {
			return err
		}
	}
	elements := make([]emitter, 0, len(s.fields)+len(s.types)+2)
	if len(s.options) > 0 {
		elements = append(elements, optionGroup(s.options))
	}
	if len(s.reservations) > 0 {
		elements = append(elements, reservationGroup(s.reservations))
	}
	for _, f := range s.fields {
		elements = append(elements, f)
	}
	for _, t := range s.types {
		elements = append(elements, t)
	}
	return emitBody(w, "message "+s.name, elements)
}

func (s *MessageSpec) typeName() string {
	return s.name
}

// Render validates the message and writes its source text to out.
func (s *MessageSpec) Render(out io.Writer) error {
	w := writer.New(out)
	if err := s.emit(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return w.Err()
}

// RenderString renders the message to a string.
func (s *MessageSpec) RenderString() (string, error) {
	var sb strings.Builder
	if err := s.Render(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
