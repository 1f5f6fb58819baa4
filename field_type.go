package protopoet

import "fmt"

// FieldType enumerates the proto3 field types, including the message and
// enum kinds which require a custom type name wherever they are used.
type FieldType int

const (
	TypeDouble FieldType = iota
	TypeFloat
	TypeInt32
	TypeInt64
	TypeUint32
	TypeUint64
	TypeSint32
	TypeSint64
	TypeFixed32
	TypeFixed64
	TypeSfixed32
	TypeSfixed64
	TypeBool
	TypeString
	TypeBytes
	TypeMessage
	TypeEnum
)

var fieldTypeNames = map[FieldType]string{
	TypeDouble:   "double",
	TypeFloat:    "float",
	TypeInt32:    "int32",
	TypeInt64:    "int64",
	TypeUint32:   "uint32",
	TypeUint64:   "uint64",
	TypeSint32:   "sint32",
	TypeSint64:   "sint64",
	TypeFixed32:  "fixed32",
	TypeFixed64:  "fixed64",
	TypeSfixed32: "sfixed32",
	TypeSfixed64: "sfixed64",
	TypeBool:     "bool",
	TypeString:   "string",
	TypeBytes:    "bytes",
	TypeMessage:  "message",
	TypeEnum:     "enum",
}

// String returns the proto keyword for the type.
func (t FieldType) String() string {
	name, ok := fieldTypeNames[t]
	if !ok {
		return fmt.Sprintf("FieldType(%d)", int(t))
	}
	return name
}

// formatValue renders an already-formatted scalar literal the way a value of
// this type appears in source: string and bytes values are double-quoted,
// everything else is bare.
func (t FieldType) formatValue(literal string) string {
	switch t {
	case TypeString, TypeBytes:
		return fmt.Sprintf("%q", literal)
	default:
		return literal
	}
}

// Map keys are restricted to integral, bool and string types.
var validMapKeyTypes = map[FieldType]bool{
	TypeInt32:    true,
	TypeInt64:    true,
	TypeUint32:   true,
	TypeUint64:   true,
	TypeSint32:   true,
	TypeSint64:   true,
	TypeFixed32:  true,
	TypeFixed64:  true,
	TypeSfixed32: true,
	TypeSfixed64: true,
	TypeBool:     true,
	TypeString:   true,
}

func (t FieldType) isInt32Class() bool {
	switch t {
	case TypeInt32, TypeUint32, TypeSint32, TypeFixed32, TypeSfixed32:
		return true
	}
	return false
}

func (t FieldType) isInt64Class() bool {
	switch t {
	case TypeInt64, TypeUint64, TypeSint64, TypeFixed64, TypeSfixed64:
		return true
	}
	return false
}

func (t FieldType) isStringClass() bool {
	switch t {
	case TypeEnum, TypeString, TypeBytes:
		return true
	}
	return false
}

// InferFieldType guesses a FieldType from a Go value. Integers map to int32
// or int64; callers needing the more specific numeric kinds should not use
// this.
func InferFieldType(value any) FieldType {
	switch value.(type) {
	case float64:
		return TypeDouble
	case float32:
		return TypeFloat
	case int, int32:
		return TypeInt32
	case int64:
		return TypeInt64
	case bool:
		return TypeBool
	case string:
		return TypeString
	case []byte:
		return TypeBytes
	default:
		return TypeMessage
	}
}
