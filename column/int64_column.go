package column

// Int64Column holds 64-bit signed integers with an optional null bitmap.
type Int64Column struct {
	array[int64]
	mismatchAccessors

	retainedSizeInBytes int64
}

var int64ColumnInstanceSize = sizeOf[Int64Column]()

// NewInt64Column creates a column over the first positionCount entries of values.
// A nil nulls means no position is null.
func NewInt64Column(positionCount int, nulls []bool, values []int64) (*Int64Column, error) {
	return NewInt64ColumnWithOffset(0, positionCount, nulls, values)
}

// NewInt64ColumnWithOffset creates a column over values[arrayOffset:arrayOffset+positionCount].
func NewInt64ColumnWithOffset(arrayOffset, positionCount int, nulls []bool, values []int64) (*Int64Column, error) {
	a, err := newArray(arrayOffset, positionCount, nulls, values, wrapInt64)
	if err != nil {
		return nil, err
	}

	return newInt64Column(a), nil
}

func newInt64Column(a array[int64]) *Int64Column {
	return &Int64Column{
		array:               a,
		mismatchAccessors:   mismatchAccessors{dataType: DataTypeInt64},
		retainedSizeInBytes: int64ColumnInstanceSize + a.sizeOfWindow(),
	}
}

func wrapInt64(a array[int64]) Column {
	return newInt64Column(a)
}

func (c *Int64Column) DataType() DataType         { return DataTypeInt64 }
func (c *Int64Column) Encoding() Encoding         { return EncodingInt64Array }
func (c *Int64Column) RetainedSizeInBytes() int64 { return c.retainedSizeInBytes }
func (c *Int64Column) InstanceSize() int64        { return int64ColumnInstanceSize }

func (c *Int64Column) Int64(position int) int64     { return c.get(position) }
func (c *Int64Column) Float64(position int) float64 { return float64(c.get(position)) }

// Int64s returns the backing array. Index it with the column's array offset.
func (c *Int64Column) Int64s() ([]int64, error) {
	return c.store.values, nil
}

func (c *Int64Column) Float64s() ([]float64, error) {
	return convert[int64, float64](c.store.values), nil
}

func (c *Int64Column) Object(position int) any {
	if c.IsNull(position) {
		return nil
	}

	return c.get(position)
}

func (c *Int64Column) Value(position int) Value {
	if c.IsNull(position) {
		return NullValue()
	}

	return Int64Value(c.get(position))
}

func (c *Int64Column) Positions(positions []int32, offset, length int) (Column, error) {
	return selectPositions(c, positions, offset, length)
}

func (*Int64Column) sealed() {}
