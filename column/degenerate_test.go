package column

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tsblock/errs"
)

func TestNullColumn(t *testing.T) {
	c, err := NewNullColumn(10)
	require.NoError(t, err)

	require.Equal(t, DataTypeUnknown, c.DataType())
	require.Equal(t, EncodingNull, c.Encoding())
	require.True(t, c.MayHaveNull())
	require.True(t, c.IsNull(3))
	require.Nil(t, c.Object(3))
	require.True(t, c.Value(3).IsNull())
	require.Equal(t, c.InstanceSize(), c.RetainedSizeInBytes())

	t.Run("region then sub column", func(t *testing.T) {
		region, err := c.Region(7, 2)
		require.NoError(t, err)
		require.Equal(t, 2, region.PositionCount())

		sub, err := region.SubColumn(1)
		require.NoError(t, err)
		require.Equal(t, 1, sub.PositionCount())
		require.True(t, sub.IsNull(0))

		_, err = c.Region(9, 2)
		require.ErrorIs(t, err, errs.ErrOutOfBounds)
	})

	t.Run("positions never build a dictionary", func(t *testing.T) {
		filtered, err := c.Positions([]int32{9, 0, 4}, 1, 2)
		require.NoError(t, err)
		require.IsType(t, &NullColumn{}, filtered)
		require.Equal(t, 2, filtered.PositionCount())

		copied, err := c.CopyPositions([]int32{9, 0, 4}, 0, 3)
		require.NoError(t, err)
		require.IsType(t, &NullColumn{}, copied)
		require.Equal(t, 3, copied.PositionCount())

		_, err = c.Positions([]int32{10}, 0, 1)
		require.ErrorIs(t, err, errs.ErrOutOfBounds)
	})

	t.Run("accessors are unsupported", func(t *testing.T) {
		requirePanicsWith(t, errs.ErrUnsupported, func() { c.Int64(0) })
		requirePanicsWith(t, errs.ErrUnsupported, func() { c.Binary(0) })

		_, err := c.Float64s()
		require.ErrorIs(t, err, errs.ErrUnsupported)
	})

	t.Run("mutation", func(t *testing.T) {
		c, err := NewNullColumn(4)
		require.NoError(t, err)

		c.Reverse()
		require.NoError(t, c.SetNull(0, 4))
		require.ErrorIs(t, c.SetNull(0, 5), errs.ErrOutOfBounds)
		require.NoError(t, c.SetPositionCount(8))
		require.Equal(t, 8, c.PositionCount())
		require.ErrorIs(t, c.SetPositionCount(-1), errs.ErrOutOfBounds)
	})
}

func TestRunLengthEncodedColumn(t *testing.T) {
	row, err := NewFloat64Column(1, nil, []float64{2.5})
	require.NoError(t, err)

	c, err := NewRunLengthEncodedColumn(row, 6)
	require.NoError(t, err)

	require.Equal(t, EncodingRLE, c.Encoding())
	require.Equal(t, DataTypeDouble, c.DataType())
	require.Equal(t, 6, c.PositionCount())
	require.Same(t, row, c.RunValue())
	for i := range 6 {
		require.Equal(t, 2.5, c.Float64(i))
		require.Equal(t, 2.5, c.Object(i))
	}
	require.False(t, c.MayHaveNull())
	require.Greater(t, c.RetainedSizeInBytes(), row.RetainedSizeInBytes())

	t.Run("region keeps the row", func(t *testing.T) {
		region, err := c.Region(2, 3)
		require.NoError(t, err)
		require.Equal(t, 3, region.PositionCount())
		require.Same(t, row, region.(*RunLengthEncodedColumn).RunValue())

		cp, err := c.RegionCopy(2, 3)
		require.NoError(t, err)
		require.NotSame(t, row, cp.(*RunLengthEncodedColumn).RunValue())
		require.Equal(t, 2.5, cp.Float64(2))

		sub, err := c.SubColumn(4)
		require.NoError(t, err)
		require.Equal(t, 2, sub.PositionCount())

		subCopy, err := c.SubColumnCopy(6)
		require.NoError(t, err)
		require.Equal(t, 0, subCopy.PositionCount())

		_, err = c.SubColumn(7)
		require.ErrorIs(t, err, errs.ErrOutOfBounds)
	})

	t.Run("positions never build a dictionary", func(t *testing.T) {
		filtered, err := c.Positions([]int32{5, 1, 1, 0}, 0, 4)
		require.NoError(t, err)
		require.IsType(t, &RunLengthEncodedColumn{}, filtered)
		require.Equal(t, 4, filtered.PositionCount())
		require.Same(t, row, filtered.(*RunLengthEncodedColumn).RunValue())

		copied, err := c.CopyPositions([]int32{5, 1}, 1, 1)
		require.NoError(t, err)
		require.IsType(t, &RunLengthEncodedColumn{}, copied)
		require.NotSame(t, row, copied.(*RunLengthEncodedColumn).RunValue())

		_, err = c.Positions([]int32{6}, 0, 1)
		require.ErrorIs(t, err, errs.ErrOutOfBounds)
	})

	t.Run("unsupported operations", func(t *testing.T) {
		require.ErrorIs(t, c.SetNull(0, 1), errs.ErrUnsupported)

		_, err := c.Float64s()
		require.ErrorIs(t, err, errs.ErrUnsupported)

		requirePanicsWith(t, errs.ErrTypeMismatch, func() { c.Int64(0) })
	})

	t.Run("as dictionary", func(t *testing.T) {
		d, err := c.AsDictionary()
		require.NoError(t, err)
		require.Equal(t, 6, d.PositionCount())
		require.Same(t, row, d.Dictionary())
		require.Equal(t, 2.5, d.Float64(5))
	})

	t.Run("construction", func(t *testing.T) {
		two, err := NewFloat64Column(2, nil, []float64{1, 2})
		require.NoError(t, err)

		_, err = NewRunLengthEncodedColumn(two, 3)
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
		_, err = NewRunLengthEncodedColumn(nil, 3)
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
		_, err = NewRunLengthEncodedColumn(row, -1)
		require.ErrorIs(t, err, errs.ErrInvalidArgument)

		nested, err := NewRunLengthEncodedColumn(c, 3)
		require.ErrorIs(t, err, errs.ErrInvalidArgument, "a six position run is not a single row")
		require.Nil(t, nested)

		single, err := c.Region(0, 1)
		require.NoError(t, err)
		unwrapped, err := NewRunLengthEncodedColumn(single, 3)
		require.NoError(t, err)
		require.Same(t, row, unwrapped.RunValue())

		picked, err := two.Positions([]int32{1}, 0, 1)
		require.NoError(t, err)
		flat, err := NewRunLengthEncodedColumn(picked, 2)
		require.NoError(t, err)
		require.IsType(t, &Float64Column{}, flat.RunValue())
		require.Equal(t, 2.0, flat.Float64(1))
	})

	t.Run("dictionary over a run is unwrapped", func(t *testing.T) {
		run, err := NewRunLengthEncodedColumn(row, 3)
		require.NoError(t, err)
		d, err := NewDictionaryColumn([]int32{2}, 0, 1, run, NextDictionaryID())
		require.NoError(t, err)

		c, err := NewRunLengthEncodedColumn(d, 5)
		require.NoError(t, err)
		require.IsType(t, &Float64Column{}, c.RunValue())
		require.Equal(t, 5, c.PositionCount())
		require.Equal(t, 2.5, c.Float64(4))
	})

	t.Run("retained size fixed at construction", func(t *testing.T) {
		c, err := NewRunLengthEncodedColumn(row, 6)
		require.NoError(t, err)
		size := c.RetainedSizeInBytes()

		require.NoError(t, c.SetPositionCount(2))
		require.Equal(t, size, c.RetainedSizeInBytes())
	})

	t.Run("null row", func(t *testing.T) {
		nullRow, err := NewInt32Column(1, []bool{true}, []int32{0})
		require.NoError(t, err)

		c, err := NewRunLengthEncodedColumn(nullRow, 3)
		require.NoError(t, err)
		require.True(t, c.MayHaveNull())
		require.True(t, c.IsNull(2))
		require.Nil(t, c.Object(1))
	})
}
