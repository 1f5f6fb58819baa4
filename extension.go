package protopoet

import (
	"io"
	"strings"

	"gopkg.microglot.org/protopoet.go/internal/writer"
)

// descriptorImportPath is required by every extend block since the extended
// options messages are all declared there.
const descriptorImportPath = "google/protobuf/descriptor.proto"

// ExtensionSpec is an extend block declaring custom options on one of the
// descriptor options messages. Only plain fields may be declared; the block
// implies an import of the descriptor proto which the enclosing file hoists
// automatically.
type ExtensionSpec struct {
	comment    []string
	optionType OptionType
	fields     []*FieldSpec
}

// ExtensionBuilder assembles an ExtensionSpec.
type ExtensionBuilder struct {
	comment       []string
	optionType    OptionType
	fieldBuilders []*FieldBuilder
}

// NewExtension starts an extend block for the options message of the given
// category.
func NewExtension(optionType OptionType) *ExtensionBuilder {
	return &ExtensionBuilder{optionType: optionType}
}

func (b *ExtensionBuilder) SetComment(lines ...string) *ExtensionBuilder {
	b.comment = append([]string{}, lines...)
	return b
}

// AddFields appends extension field declarations.
func (b *ExtensionBuilder) AddFields(fields ...*FieldBuilder) *ExtensionBuilder {
	b.fieldBuilders = append(b.fieldBuilders, fields...)
	return b
}

func (b *ExtensionBuilder) Build() *ExtensionSpec {
	spec := &ExtensionSpec{
		comment:    b.comment,
		optionType: b.optionType,
	}
	for _, fb := range b.fieldBuilders {
		spec.fields = append(spec.fields, fb.Build())
	}
	return spec
}

func (b *ExtensionBuilder) buildTypeDeclaration() typeDeclaration {
	return b.Build()
}

// Validate checks the extension for field name and number conflicts without
// producing output.
func (s *ExtensionSpec) Validate() error {
	return s.validate()
}

func (s *ExtensionSpec) validate() error {
	var fields fieldMonitor
	fields.reset()
	for _, f := range s.fields {
		if err := fields.addField(f); err != nil {
			return err
		}
	}
	return nil
}

func (s *ExtensionSpec) emit(w *writer.Writer) error {
	if err := s.validate(); err != nil {
		return err
	}
	if len(s.comment) > 0 {
		if err := w.EmitComment(s.comment); err != nil {
			return err
		}
	}
	elements := make([]emitter, 0, len(s.fields))
	for _, f := range s.fields {
		elements = append(elements, f)
	}
	return emitBody(w, "extend "+s.optionType.TargetName(), elements)
}

// typeName makes two extend blocks for the same target collide within a
// file, matching protoc's duplicate extension handling.
func (s *ExtensionSpec) typeName() string {
	return s.optionType.TargetName()
}

func (s *ExtensionSpec) imports() []ImportSpec {
	return []ImportSpec{NewImport(descriptorImportPath)}
}

// Render validates the extension and writes its source text to out.
func (s *ExtensionSpec) Render(out io.Writer) error {
	w := writer.New(out)
	if err := s.emit(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return w.Err()
}

// RenderString renders the extension to a string.
func (s *ExtensionSpec) RenderString() (string, error) {
	var sb strings.Builder
	if err := s.Render(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
