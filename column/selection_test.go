package column

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/tsblock/errs"
)

func TestSelect(t *testing.T) {
	c, err := NewInt32Column(6, nil, []int32{10, 11, 12, 13, 14, 15})
	require.NoError(t, err)

	sel := roaring.BitmapOf(5, 1, 3)

	t.Run("view", func(t *testing.T) {
		selected, err := Select(c, sel)
		require.NoError(t, err)
		require.Equal(t, EncodingDictionary, selected.Encoding())
		require.Equal(t, []int32{11, 13, 15}, int32Values(selected))
	})

	t.Run("copy", func(t *testing.T) {
		selected, err := SelectCopy(c, sel)
		require.NoError(t, err)
		require.Equal(t, EncodingInt32Array, selected.Encoding())
		require.Equal(t, []int32{11, 13, 15}, int32Values(selected))
	})

	t.Run("empty selection", func(t *testing.T) {
		selected, err := Select(c, roaring.New())
		require.NoError(t, err)
		require.Equal(t, 0, selected.PositionCount())
	})

	t.Run("out of bounds", func(t *testing.T) {
		_, err := Select(c, roaring.BitmapOf(2, 6))
		require.ErrorIs(t, err, errs.ErrOutOfBounds)
	})

	t.Run("nil selection", func(t *testing.T) {
		_, err := SelectCopy(c, nil)
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
	})

	t.Run("degenerate encodings", func(t *testing.T) {
		nulls, err := NewNullColumn(6)
		require.NoError(t, err)

		selected, err := Select(nulls, sel)
		require.NoError(t, err)
		require.IsType(t, &NullColumn{}, selected)
		require.Equal(t, 3, selected.PositionCount())
	})
}

func TestNullBitmap(t *testing.T) {
	t.Run("no bitmap", func(t *testing.T) {
		c, err := NewInt64Column(3, nil, []int64{1, 2, 3})
		require.NoError(t, err)
		require.True(t, NullBitmap(c).IsEmpty())
	})

	t.Run("array", func(t *testing.T) {
		b := NewInt64Builder(4)
		b.Append(1)
		b.AppendNull()
		b.Append(3)
		b.AppendNull()

		require.Equal(t, []uint32{1, 3}, NullBitmap(b.Build()).ToArray())
	})

	t.Run("null column", func(t *testing.T) {
		c, err := NewNullColumn(4)
		require.NoError(t, err)
		require.Equal(t, uint64(4), NullBitmap(c).GetCardinality())
	})

	t.Run("run of nulls", func(t *testing.T) {
		b := NewBooleanBuilder(5)
		for range 5 {
			b.AppendNull()
		}
		require.Equal(t, uint64(5), NullBitmap(b.Build()).GetCardinality())
	})

	t.Run("null bitmap round trips through select", func(t *testing.T) {
		b := NewBinaryBuilder(4)
		b.Append(BinaryOf("a"))
		b.AppendNull()
		b.Append(BinaryOf("c"))
		b.AppendNull()
		c := b.Build()

		nonNull := roaring.Flip(NullBitmap(c), 0, uint64(c.PositionCount()))
		selected, err := SelectCopy(c, nonNull)
		require.NoError(t, err)
		require.Equal(t, 2, selected.PositionCount())
		require.Equal(t, "a", selected.Binary(0).String())
		require.Equal(t, "c", selected.Binary(1).String())
	})
}
