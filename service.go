// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package protopoet

import (
	"io"
	"strings"

	"gopkg.microglot.org/protopoet.go/internal/writer"
)

// ServiceSpec is a service declaration: options followed by rpc methods.
// Method name collisions are detected when the service is validated or
// rendered.
type ServiceSpec struct {
	comment []string
	name    string
	options []*OptionSpec
	methods []*RpcSpec
}

// ServiceBuilder assembles a ServiceSpec.
type ServiceBuilder struct {
	comment        []string
	name           string
	optionBuilders []*OptionBuilder
	methodBuilders []*RpcBuilder
}

// NewService starts a service with the given name.
func NewService(name string) *ServiceBuilder {
	checkArgument(name != "", "service name may not be empty")
	return &ServiceBuilder{name: name}
}

func (b *ServiceBuilder) SetComment(lines ...string) *ServiceBuilder {
	b.comment = append([]string{}, lines...)
	return b
}

// AddOptions appends service options, rendered as the first body group.
func (b *ServiceBuilder) AddOptions(options ...*OptionBuilder) *ServiceBuilder {
	b.optionBuilders = append(b.optionBuilders, options...)
	return b
}

// AddRpcs appends rpc method declarations.
func (b *ServiceBuilder) AddRpcs(methods ...*RpcBuilder) *ServiceBuilder {
	b.methodBuilders = append(b.methodBuilders, methods...)
	return b
}

func (b *ServiceBuilder) Build() *ServiceSpec {
	spec := &ServiceSpec{
		comment: b.comment,
		name:    b.name,
		options: buildOptions(OptionTypeService, b.optionBuilders),
	}
	for _, mb := range b.methodBuilders {
		spec.methods = append(spec.methods, mb.Build())
	}
	return spec
}

func (b *ServiceBuilder) buildTypeDeclaration() typeDeclaration {
	return b.Build()
}

// Validate checks the service for method name conflicts without producing
// output.
func (s *ServiceSpec) Validate() error {
	return s.validate()
}

func (s *ServiceSpec) validate() error {
	var methods fieldMonitor
	methods.reset()
	for _, m := range s.methods {
		if err := methods.addField(m); err != nil {
			return err
		}
	}
	return nil
}

func (s *ServiceSpec) emit(w *writer.Writer) error {
	if err := s.validate(); err != nil {
		return err
	}
	if len(s.comment) > 0 {
		if err := w.EmitComment(s.comment); err != nil {
			return err
		}
	}
	elements := make([]emitter, 0, len(s.methods)+1)
	if len(s.options) > 0 {
		elements = append(elements, optionGroup(s.options))
	}
	for _, m := range s.methods {
		elements = append(elements, m)
	}
	return emitBody(w, "service "+s.name, elements)
}

func (s *ServiceSpec) typeName() string {
	return s.name
}

// Render validates the service and writes its source text to out.
func (s *ServiceSpec) Render(out io.Writer) error {
	w := writer.New(out)
	if err := s.emit(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return w.Err()
}

// RenderString renders the service to a string.
func (s *ServiceSpec) RenderString() (string, error) {
	var sb strings.Builder
	if err := s.Render(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
