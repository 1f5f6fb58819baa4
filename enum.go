package protopoet

import (
	"io"
	"strings"

	"gopkg.microglot.org/protopoet.go/internal/writer"
)

// EnumSpec is an enum declaration: options, reservations and values. Value
// name and number collisions, including collisions with reservations, are
// detected when the enum is validated or rendered.
type EnumSpec struct {
	comment      []string
	name         string
	options      []*OptionSpec
	reservations []*ReservationSpec
	values       []*EnumValueSpec
}

// EnumBuilder assembles an EnumSpec.
type EnumBuilder struct {
	comment             []string
	name                string
	optionBuilders      []*OptionBuilder
	reservationBuilders []*ReservationBuilder
	valueBuilders       []*EnumValueBuilder
}

// NewEnum starts an enum with the given name.
func NewEnum(name string) *EnumBuilder {
	checkArgument(name != "", "enum name may not be empty")
	return &EnumBuilder{name: name}
}

func (b *EnumBuilder) SetComment(lines ...string) *EnumBuilder {
	b.comment = append([]string{}, lines...)
	return b
}

// AddOptions appends enum options, rendered as the first body group.
func (b *EnumBuilder) AddOptions(options ...*OptionBuilder) *EnumBuilder {
	b.optionBuilders = append(b.optionBuilders, options...)
	return b
}

// AddReservations appends reserved statements, rendered after the options.
func (b *EnumBuilder) AddReservations(reservations ...*ReservationBuilder) *EnumBuilder {
	b.reservationBuilders = append(b.reservationBuilders, reservations...)
	return b
}

// AddValues appends enum value declarations.
func (b *EnumBuilder) AddValues(values ...*EnumValueBuilder) *EnumBuilder {
	b.valueBuilders = append(b.valueBuilders, values...)
	return b
}

func (b *EnumBuilder) Build() *EnumSpec {
	spec := &EnumSpec{
		comment: b.comment,
		name:    b.name,
		options: buildOptions(OptionTypeEnum, b.optionBuilders),
	}
	for _, rb := range b.reservationBuilders {
		spec.reservations = append(spec.reservations, rb.Build())
	}
	for _, vb := range b.valueBuilders {
		spec.values = append(spec.values, vb.Build())
	}
	return spec
}

func (b *EnumBuilder) buildTypeDeclaration() typeDeclaration {
	return b.Build()
}

// Validate checks the enum for value name and number conflicts without
// producing output.
func (s *EnumSpec) Validate() error {
	return s.validate()
}

func (s *EnumSpec) validate() error {
	var values fieldMonitor
	values.reset()
	for _, r := range s.reservations {
		if err := values.addReservation(r); err != nil {
			return err
		}
	}
	for _, v := range s.values {
		if err := values.addField(v); err != nil {
			return err
		}
	}
	return nil
}

func (s *EnumSpec) emit(w *writer.Writer) error {
	if err := s.validate(); err != nil {
		return err
	}
	if len(s.comment) > 0 {
		if err := w.EmitComment(s.comment); err != nil {
			return err
		}
	}
	elements := make([]emitter, 0, len(s.values)+2)
	if len(s.options) > 0 {
		elements = append(elements, optionGroup(s.options))
	}
	if len(s.reservations) > 0 {
		elements = append(elements, reservationGroup(s.reservations))
	}
	for _, v := range s.values {
		elements = append(elements, v)
	}
	return emitBody(w, "enum "+s.name, elements)
}

func (s *EnumSpec) typeName() string {
	return s.name
}

// Render validates the enum and writes its source text to out.
func (s *EnumSpec) Render(out io.Writer) error {
	w := writer.New(out)
	if err := s.emit(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return w.Err()
}

// RenderString renders the enum to a string.
func (s *EnumSpec) RenderString() (string, error) {
	var sb strings.Builder
	if err := s.Render(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
