package column

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tsblock/errs"
)

func TestBuilders(t *testing.T) {
	t.Run("int32 without nulls", func(t *testing.T) {
		b := NewInt32Builder(4)
		b.Append(1).Append(2).Append(3)
		require.Equal(t, 3, b.PositionCount())

		c := b.Build()
		require.IsType(t, &Int32Column{}, c)
		require.False(t, c.MayHaveNull())
		require.Equal(t, []int32{1, 2, 3}, int32Values(c))
		require.Equal(t, 0, b.PositionCount())
	})

	t.Run("nulls", func(t *testing.T) {
		b := NewFloat64Builder(0)
		b.Append(1.5)
		b.AppendNull()
		b.Append(3.5)

		c := b.Build()
		require.IsType(t, &Float64Column{}, c)
		require.True(t, c.MayHaveNull())
		require.False(t, c.IsNull(0))
		require.True(t, c.IsNull(1))
		require.Equal(t, 3.5, c.Float64(2))
	})

	t.Run("only nulls build a run of nulls", func(t *testing.T) {
		b := NewBinaryBuilder(3)
		b.AppendNull()
		b.AppendNull()
		b.AppendNull()

		c := b.Build()
		rle, ok := c.(*RunLengthEncodedColumn)
		require.True(t, ok, "expected run-length column, got %T", c)
		require.Equal(t, 3, rle.PositionCount())
		require.Equal(t, DataTypeText, rle.DataType())
		require.True(t, rle.IsNull(2))
		require.IsType(t, &BinaryColumn{}, rle.RunValue())
	})

	t.Run("empty build", func(t *testing.T) {
		c := NewBooleanBuilder(-1).Build()
		require.IsType(t, &BooleanColumn{}, c)
		require.Equal(t, 0, c.PositionCount())
	})

	t.Run("build does not alias later appends", func(t *testing.T) {
		b := NewInt64Builder(2)
		b.Append(1).Append(2)
		first := b.Build()

		b.Append(3)
		second := b.Build()

		require.Equal(t, int64(1), first.Int64(0))
		require.Equal(t, 2, first.PositionCount())
		require.Equal(t, int64(3), second.Int64(0))
		require.Equal(t, 1, second.PositionCount())
	})

	t.Run("append from", func(t *testing.T) {
		src := NewFloat32Builder(3)
		src.Append(1).AppendNull()
		src.Append(3)
		source := src.Build()

		filtered, err := source.Positions([]int32{2, 1, 0}, 0, 3)
		require.NoError(t, err)

		b := NewFloat32Builder(3)
		for i := range filtered.PositionCount() {
			b.AppendFrom(filtered, i)
		}
		c := b.Build()
		require.Equal(t, float32(3), c.Float32(0))
		require.True(t, c.IsNull(1))
		require.Equal(t, float32(1), c.Float32(2))
	})

	t.Run("time", func(t *testing.T) {
		b := NewTimeBuilder(2)
		b.Append(100).Append(200)
		c := b.Build()
		require.Equal(t, int64(100), c.StartTime())
		require.Equal(t, int64(200), c.EndTime())
		require.False(t, c.MayHaveNull())
		require.Equal(t, 0, b.PositionCount())
	})
}

func TestNewBuilder(t *testing.T) {
	tests := []struct {
		dataType DataType
		want     Column
	}{
		{DataTypeBoolean, &BooleanColumn{}},
		{DataTypeInt32, &Int32Column{}},
		{DataTypeInt64, &Int64Column{}},
		{DataTypeFloat, &Float32Column{}},
		{DataTypeDouble, &Float64Column{}},
		{DataTypeText, &BinaryColumn{}},
	}
	for _, tt := range tests {
		t.Run(tt.dataType.String(), func(t *testing.T) {
			b, err := NewBuilder(tt.dataType, 1)
			require.NoError(t, err)
			require.Equal(t, tt.dataType, b.DataType())

			c := b.Build()
			require.IsType(t, tt.want, c)
			require.Equal(t, tt.dataType, c.DataType())
		})
	}

	_, err := NewBuilder(DataTypeUnknown, 1)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func BenchmarkInt64Builder(b *testing.B) {
	for b.Loop() {
		builder := NewInt64Builder(1024)
		for i := range 1024 {
			builder.Append(int64(i))
		}
		_ = builder.Build()
	}
}
