package column

import (
	"fmt"
	"strconv"

	"github.com/arloliu/tsblock/errs"
)

// Value is a single column value tagged with its data type.
//
// It is used where a generic caller needs one value without knowing the column's
// type, e.g. when returning the last value of a series or building a literal for
// comparison. The zero Value is a null of unknown type.
type Value struct {
	dataType DataType
	null     bool
	b        bool
	i        int64
	f        float64
	bin      Binary
}

// NullValue returns a null Value of unknown type.
func NullValue() Value {
	return Value{dataType: DataTypeUnknown, null: true}
}

// BoolValue returns a BOOLEAN Value.
func BoolValue(v bool) Value {
	return Value{dataType: DataTypeBoolean, b: v}
}

// Int32Value returns an INT32 Value.
func Int32Value(v int32) Value {
	return Value{dataType: DataTypeInt32, i: int64(v)}
}

// Int64Value returns an INT64 Value.
func Int64Value(v int64) Value {
	return Value{dataType: DataTypeInt64, i: v}
}

// Float32Value returns a FLOAT Value.
func Float32Value(v float32) Value {
	return Value{dataType: DataTypeFloat, f: float64(v)}
}

// Float64Value returns a DOUBLE Value.
func Float64Value(v float64) Value {
	return Value{dataType: DataTypeDouble, f: v}
}

// BinaryValue returns a TEXT Value.
func BinaryValue(v Binary) Value {
	return Value{dataType: DataTypeText, bin: v}
}

// DataType returns the type tag of the value.
func (v Value) DataType() DataType {
	return v.dataType
}

// IsNull returns true for null values.
func (v Value) IsNull() bool {
	return v.null || v.dataType == DataTypeUnknown
}

// Bool returns the value of a BOOLEAN Value.
func (v Value) Bool() bool {
	v.mustBe("Bool", DataTypeBoolean)
	return v.b
}

// Int32 returns the value of an INT32 Value.
func (v Value) Int32() int32 {
	v.mustBe("Int32", DataTypeInt32)
	return int32(v.i)
}

// Int64 returns the value of an INT32 or INT64 Value.
func (v Value) Int64() int64 {
	v.mustBe("Int64", DataTypeInt32, DataTypeInt64)
	return v.i
}

// Float32 returns the value of an INT32 or FLOAT Value.
func (v Value) Float32() float32 {
	v.mustBe("Float32", DataTypeInt32, DataTypeFloat)
	if v.dataType == DataTypeInt32 {
		return float32(v.i)
	}

	return float32(v.f)
}

// Float64 returns the value of any numeric Value.
func (v Value) Float64() float64 {
	v.mustBe("Float64", DataTypeInt32, DataTypeInt64, DataTypeFloat, DataTypeDouble)
	if v.dataType == DataTypeInt32 || v.dataType == DataTypeInt64 {
		return float64(v.i)
	}

	return v.f
}

// Binary returns the value of a TEXT Value.
func (v Value) Binary() Binary {
	v.mustBe("Binary", DataTypeText)
	return v.bin
}

// Equal reports whether both values have the same type, nullness and content.
func (v Value) Equal(other Value) bool {
	if v.IsNull() || other.IsNull() {
		return v.IsNull() == other.IsNull()
	}

	if v.dataType != other.dataType {
		return false
	}

	switch v.dataType {
	case DataTypeBoolean:
		return v.b == other.b
	case DataTypeInt32, DataTypeInt64:
		return v.i == other.i
	case DataTypeFloat, DataTypeDouble:
		return v.f == other.f
	default:
		return v.bin.Equal(other.bin)
	}
}

func (v Value) String() string {
	if v.IsNull() {
		return "null"
	}

	switch v.dataType {
	case DataTypeBoolean:
		return strconv.FormatBool(v.b)
	case DataTypeInt32, DataTypeInt64:
		return strconv.FormatInt(v.i, 10)
	case DataTypeFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 32)
	case DataTypeDouble:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return v.bin.String()
	}
}

func (v Value) mustBe(accessor string, types ...DataType) {
	for _, t := range types {
		if v.dataType == t {
			return
		}
	}

	panic(fmt.Errorf("%w: %s value does not support %s", errs.ErrTypeMismatch, v.dataType, accessor))
}
