package core

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// FieldType represents the type of a field value
type FieldType uint8

const (
	StringType FieldType = iota
	IntType
	Int64Type
	Float64Type
	BoolType
	TimeType
	DurationType
	ErrorType
	AnyType
)

// Field represents a key-value pair for structured logging
type Field struct {
	Key     string
	Type    FieldType
	Int64   int64
	Float64 float64
	Str     string
	Any     interface{}
}

// StringValue returns the string representation of a field's value
func (f Field) StringValue() string {
	switch f.Type {
	case StringType, ErrorType:
		return f.Str
	case IntType, Int64Type:
		return strconv.FormatInt(f.Int64, 10)
	case Float64Type:
		return strconv.FormatFloat(f.Float64, 'f', -1, 64)
	case BoolType:
		return strconv.FormatBool(f.Int64 == 1)
	case TimeType:
		return time.Unix(0, f.Int64).Format(time.RFC3339)
	case DurationType:
		return time.Duration(f.Int64).String()
	case AnyType:
		return fmt.Sprintf("%v", f.Any)
	default:
		return ""
	}
}

// AppendValue writes the field's value into buf without the intermediate
// string allocation that StringValue would cost for numeric types.
func (f Field) AppendValue(buf *bytes.Buffer) {
	switch f.Type {
	case StringType, ErrorType:
		buf.WriteString(f.Str)
	case IntType, Int64Type:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), f.Int64, 10))
	case Float64Type:
		buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), f.Float64, 'f', -1, 64))
	case BoolType:
		buf.Write(strconv.AppendBool(buf.AvailableBuffer(), f.Int64 == 1))
	case TimeType:
		buf.Write(time.Unix(0, f.Int64).AppendFormat(buf.AvailableBuffer(), time.RFC3339))
	case DurationType:
		buf.WriteString(time.Duration(f.Int64).String())
	case AnyType:
		fmt.Fprintf(buf, "%v", f.Any)
	}
}
