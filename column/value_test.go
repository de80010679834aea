package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/tsblock/errs"
)

func TestValue(t *testing.T) {
	t.Run("widening", func(t *testing.T) {
		v := Int32Value(7)
		assert.Equal(t, int32(7), v.Int32())
		assert.Equal(t, int64(7), v.Int64())
		assert.Equal(t, float32(7), v.Float32())
		assert.Equal(t, float64(7), v.Float64())

		assert.Equal(t, 2.5, Float32Value(2.5).Float64())
		assert.Equal(t, float64(1<<40), Int64Value(1<<40).Float64())
	})

	t.Run("mismatch panics", func(t *testing.T) {
		requirePanicsWith(t, errs.ErrTypeMismatch, func() { Int64Value(1).Int32() })
		requirePanicsWith(t, errs.ErrTypeMismatch, func() { Float64Value(1).Float32() })
		requirePanicsWith(t, errs.ErrTypeMismatch, func() { BoolValue(true).Int64() })
		requirePanicsWith(t, errs.ErrTypeMismatch, func() { BinaryValue(BinaryOf("x")).Bool() })
	})

	t.Run("null", func(t *testing.T) {
		assert.True(t, NullValue().IsNull())
		assert.True(t, Value{}.IsNull())
		assert.False(t, Int32Value(0).IsNull())
		assert.Equal(t, "null", NullValue().String())
	})

	t.Run("equal", func(t *testing.T) {
		assert.True(t, BinaryValue(BinaryOf("ab")).Equal(BinaryValue(BinaryOf("ab"))))
		assert.False(t, BinaryValue(BinaryOf("ab")).Equal(BinaryValue(BinaryOf("ac"))))
		assert.False(t, Int32Value(1).Equal(Int64Value(1)))
		assert.True(t, NullValue().Equal(Value{}))
		assert.False(t, NullValue().Equal(BoolValue(false)))
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "true", BoolValue(true).String())
		assert.Equal(t, "-3", Int64Value(-3).String())
		assert.Equal(t, "1.5", Float32Value(1.5).String())
		assert.Equal(t, "0.1", Float64Value(0.1).String())
		assert.Equal(t, "hi", BinaryValue(BinaryOf("hi")).String())
	})
}

func TestTypes(t *testing.T) {
	require.Equal(t, "INT64", DataTypeInt64.String())
	require.Equal(t, "TEXT", DataTypeText.String())
	require.Equal(t, "Unknown", DataType(0x8).String())

	require.Equal(t, "DICTIONARY", EncodingDictionary.String())
	require.Equal(t, "INT32_ARRAY", EncodingInt32Array.String())
}

func TestBinary(t *testing.T) {
	a, b := BinaryOf("abc"), BinaryOf("abd")
	require.Equal(t, 3, a.Len())
	require.True(t, a.Equal(BinaryOf("abc")))
	require.Negative(t, a.Compare(b))
	require.Equal(t, "abc", a.String())
}
