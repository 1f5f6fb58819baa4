package protopoet

import (
	"gopkg.microglot.org/protopoet.go/internal/optional"
	"gopkg.microglot.org/protopoet.go/internal/writer"
)

// RpcSpec is a single rpc method declaration in a service. Methods have no
// field number; their names still collide within the service scope.
type RpcSpec struct {
	comment           []string
	name              string
	requestType       string
	requestStreaming  bool
	responseType      string
	responseStreaming bool
	options           []*OptionSpec
}

// RpcBuilder assembles an RpcSpec.
type RpcBuilder struct {
	spec           RpcSpec
	optionBuilders []*OptionBuilder
}

// NewRpc starts an rpc method. Both SetRequest and SetResponse must be called
// before Build.
func NewRpc(name string) *RpcBuilder {
	checkArgument(name != "", "rpc name may not be empty")
	return &RpcBuilder{spec: RpcSpec{name: name}}
}

func (b *RpcBuilder) SetComment(lines ...string) *RpcBuilder {
	b.spec.comment = append([]string{}, lines...)
	return b
}

// SetRequest names the request message type, optionally client streaming.
func (b *RpcBuilder) SetRequest(typeName string, streaming bool) *RpcBuilder {
	checkArgument(typeName != "", "request type name may not be empty")
	b.spec.requestType = typeName
	b.spec.requestStreaming = streaming
	return b
}

// SetResponse names the response message type, optionally server streaming.
func (b *RpcBuilder) SetResponse(typeName string, streaming bool) *RpcBuilder {
	checkArgument(typeName != "", "response type name may not be empty")
	b.spec.responseType = typeName
	b.spec.responseStreaming = streaming
	return b
}

// AddOptions appends method options, rendered in a braced body after the
// signature.
func (b *RpcBuilder) AddOptions(options ...*OptionBuilder) *RpcBuilder {
	b.optionBuilders = append(b.optionBuilders, options...)
	return b
}

func (b *RpcBuilder) Build() *RpcSpec {
	checkState(b.spec.requestType != "", "rpc '%s' requires a request type", b.spec.name)
	checkState(b.spec.responseType != "", "rpc '%s' requires a response type", b.spec.name)
	spec := b.spec
	spec.options = buildOptions(OptionTypeMethod, b.optionBuilders)
	return &spec
}

func streamedType(typeName string, streaming bool) string {
	if streaming {
		return "stream " + typeName
	}
	return typeName
}

func (s *RpcSpec) emit(w *writer.Writer) error {
	if len(s.comment) > 0 {
		if err := w.EmitComment(s.comment); err != nil {
			return err
		}
	}
	err := w.Emitf("rpc %s (%s) returns (%s)",
		s.name,
		streamedType(s.requestType, s.requestStreaming),
		streamedType(s.responseType, s.responseStreaming))
	if err != nil {
		return err
	}
	if len(s.options) == 0 {
		return w.Emit(";\n")
	}
	if err := w.Emit(" {\n"); err != nil {
		return err
	}
	w.Indent()
	for _, o := range s.options {
		if err := o.emit(w); err != nil {
			return err
		}
	}
	w.Unindent()
	return w.Emit("}\n")
}

func (s *RpcSpec) fieldName() string {
	return s.name
}

func (s *RpcSpec) fieldNumber() optional.Optional[int32] {
	return optional.None[int32]()
}
