package protopoet

import "fmt"

// FieldValue is a (name, type, value) triple used to populate message-typed
// option values. Constructors panic when the value class does not match the
// declared field type.
type FieldValue struct {
	name      string
	valueType FieldType
	literal   string
}

func Int32FieldValue(name string, valueType FieldType, value int32) FieldValue {
	checkArgument(name != "", "field name may not be empty")
	checkArgument(valueType.isInt32Class(), "'%s' invalid type for an int32 value", valueType)
	return FieldValue{name: name, valueType: valueType, literal: fmt.Sprintf("%d", value)}
}

func Int64FieldValue(name string, valueType FieldType, value int64) FieldValue {
	checkArgument(name != "", "field name may not be empty")
	checkArgument(valueType.isInt64Class(), "'%s' invalid type for an int64 value", valueType)
	return FieldValue{name: name, valueType: valueType, literal: fmt.Sprintf("%d", value)}
}

func FloatFieldValue(name string, value float32) FieldValue {
	checkArgument(name != "", "field name may not be empty")
	return FieldValue{name: name, valueType: TypeFloat, literal: fmt.Sprintf("%v", value)}
}

func DoubleFieldValue(name string, value float64) FieldValue {
	checkArgument(name != "", "field name may not be empty")
	return FieldValue{name: name, valueType: TypeDouble, literal: fmt.Sprintf("%v", value)}
}

func BoolFieldValue(name string, value bool) FieldValue {
	checkArgument(name != "", "field name may not be empty")
	return FieldValue{name: name, valueType: TypeBool, literal: fmt.Sprintf("%t", value)}
}

// StringFieldValue covers the string-like value classes: string, bytes and
// enum literals.
func StringFieldValue(name string, valueType FieldType, value string) FieldValue {
	checkArgument(name != "", "field name may not be empty")
	checkArgument(valueType.isStringClass(), "'%s' invalid type for a string value", valueType)
	return FieldValue{name: name, valueType: valueType, literal: value}
}

func (v FieldValue) Name() string {
	return v.name
}

func (v FieldValue) ValueType() FieldType {
	return v.valueType
}

// FormattedValue renders the value as it appears in source text.
func (v FieldValue) FormattedValue() string {
	return v.valueType.formatValue(v.literal)
}
