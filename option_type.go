// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package protopoet

import (
	"fmt"
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

// OptionType is the owner category of an option: which construct kind the
// option may be attached to. Each category corresponds to one of the
// google.protobuf.*Options messages, which is also the extension target for
// custom options of that category.
type OptionType int

const (
	OptionTypeFile OptionType = iota
	OptionTypeMessage
	OptionTypeField
	OptionTypeEnum
	OptionTypeEnumValue
	OptionTypeService
	OptionTypeOneof
	OptionTypeMethod
)

var allOptionTypes = []OptionType{
	OptionTypeFile,
	OptionTypeMessage,
	OptionTypeField,
	OptionTypeEnum,
	OptionTypeEnumValue,
	OptionTypeService,
	OptionTypeOneof,
	OptionTypeMethod,
}

func (t OptionType) String() string {
	switch t {
	case OptionTypeFile:
		return "file"
	case OptionTypeMessage:
		return "message"
	case OptionTypeField:
		return "field"
	case OptionTypeEnum:
		return "enum"
	case OptionTypeEnumValue:
		return "enum value"
	case OptionTypeService:
		return "service"
	case OptionTypeOneof:
		return "oneof"
	case OptionTypeMethod:
		return "method"
	}
	return fmt.Sprintf("OptionType(%d)", int(t))
}

func (t OptionType) optionsDescriptor() protoreflect.MessageDescriptor {
	switch t {
	case OptionTypeFile:
		return (&descriptorpb.FileOptions{}).ProtoReflect().Descriptor()
	case OptionTypeMessage:
		return (&descriptorpb.MessageOptions{}).ProtoReflect().Descriptor()
	case OptionTypeField:
		return (&descriptorpb.FieldOptions{}).ProtoReflect().Descriptor()
	case OptionTypeEnum:
		return (&descriptorpb.EnumOptions{}).ProtoReflect().Descriptor()
	case OptionTypeEnumValue:
		return (&descriptorpb.EnumValueOptions{}).ProtoReflect().Descriptor()
	case OptionTypeService:
		return (&descriptorpb.ServiceOptions{}).ProtoReflect().Descriptor()
	case OptionTypeOneof:
		return (&descriptorpb.OneofOptions{}).ProtoReflect().Descriptor()
	case OptionTypeMethod:
		return (&descriptorpb.MethodOptions{}).ProtoReflect().Descriptor()
	}
	panic(fmt.Sprintf("unexpected option type: %d", int(t)))
}

// TargetName is the fully-qualified name of the options message this category
// attaches to, e.g. "google.protobuf.MessageOptions". Extension blocks extend
// this message to declare custom options.
func (t OptionType) TargetName() string {
	return string(t.optionsDescriptor().FullName())
}

// The standard option names per category are exactly the fields of the
// corresponding descriptor.proto options message. They render bare; custom
// option names render parenthesized.
var wellKnownOptionNames = buildWellKnownOptionNames()

func buildWellKnownOptionNames() map[OptionType]map[string]bool {
	out := make(map[OptionType]map[string]bool, len(allOptionTypes))
	for _, t := range allOptionTypes {
		fields := t.optionsDescriptor().Fields()
		names := make(map[string]bool, fields.Len())
		for i := 0; i < fields.Len(); i++ {
			names[string(fields.Get(i).Name())] = true
		}
		out[t] = names
	}
	return out
}

// formatOptionName leaves well-known names and caller-parenthesized names
// alone and wraps everything else in custom-option parentheses.
func (t OptionType) formatOptionName(name string) string {
	if wellKnownOptionNames[t][name] || strings.HasPrefix(name, "(") {
		return name
	}
	return "(" + name + ")"
}
