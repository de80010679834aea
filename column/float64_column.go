package column

// Float64Column holds 64-bit floats with an optional null bitmap.
type Float64Column struct {
	array[float64]
	mismatchAccessors

	retainedSizeInBytes int64
}

var float64ColumnInstanceSize = sizeOf[Float64Column]()

// NewFloat64Column creates a column over the first positionCount entries of values.
// A nil nulls means no position is null.
func NewFloat64Column(positionCount int, nulls []bool, values []float64) (*Float64Column, error) {
	return NewFloat64ColumnWithOffset(0, positionCount, nulls, values)
}

// NewFloat64ColumnWithOffset creates a column over values[arrayOffset:arrayOffset+positionCount].
func NewFloat64ColumnWithOffset(arrayOffset, positionCount int, nulls []bool, values []float64) (*Float64Column, error) {
	a, err := newArray(arrayOffset, positionCount, nulls, values, wrapFloat64)
	if err != nil {
		return nil, err
	}

	return newFloat64Column(a), nil
}

func newFloat64Column(a array[float64]) *Float64Column {
	return &Float64Column{
		array:               a,
		mismatchAccessors:   mismatchAccessors{dataType: DataTypeDouble},
		retainedSizeInBytes: float64ColumnInstanceSize + a.sizeOfWindow(),
	}
}

func wrapFloat64(a array[float64]) Column {
	return newFloat64Column(a)
}

func (c *Float64Column) DataType() DataType         { return DataTypeDouble }
func (c *Float64Column) Encoding() Encoding         { return EncodingInt64Array }
func (c *Float64Column) RetainedSizeInBytes() int64 { return c.retainedSizeInBytes }
func (c *Float64Column) InstanceSize() int64        { return float64ColumnInstanceSize }

func (c *Float64Column) Float64(position int) float64 { return c.get(position) }

// Float64s returns the backing array. Index it with the column's array offset.
func (c *Float64Column) Float64s() ([]float64, error) {
	return c.store.values, nil
}

func (c *Float64Column) Object(position int) any {
	if c.IsNull(position) {
		return nil
	}

	return c.get(position)
}

func (c *Float64Column) Value(position int) Value {
	if c.IsNull(position) {
		return NullValue()
	}

	return Float64Value(c.get(position))
}

func (c *Float64Column) Positions(positions []int32, offset, length int) (Column, error) {
	return selectPositions(c, positions, offset, length)
}

func (*Float64Column) sealed() {}
