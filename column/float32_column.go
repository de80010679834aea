package column

// Float32Column holds 32-bit floats with an optional null bitmap.
type Float32Column struct {
	array[float32]
	mismatchAccessors

	retainedSizeInBytes int64
}

var float32ColumnInstanceSize = sizeOf[Float32Column]()

// NewFloat32Column creates a column over the first positionCount entries of values.
// A nil nulls means no position is null.
func NewFloat32Column(positionCount int, nulls []bool, values []float32) (*Float32Column, error) {
	return NewFloat32ColumnWithOffset(0, positionCount, nulls, values)
}

// NewFloat32ColumnWithOffset creates a column over values[arrayOffset:arrayOffset+positionCount].
func NewFloat32ColumnWithOffset(arrayOffset, positionCount int, nulls []bool, values []float32) (*Float32Column, error) {
	a, err := newArray(arrayOffset, positionCount, nulls, values, wrapFloat32)
	if err != nil {
		return nil, err
	}

	return newFloat32Column(a), nil
}

func newFloat32Column(a array[float32]) *Float32Column {
	return &Float32Column{
		array:               a,
		mismatchAccessors:   mismatchAccessors{dataType: DataTypeFloat},
		retainedSizeInBytes: float32ColumnInstanceSize + a.sizeOfWindow(),
	}
}

func wrapFloat32(a array[float32]) Column {
	return newFloat32Column(a)
}

func (c *Float32Column) DataType() DataType         { return DataTypeFloat }
func (c *Float32Column) Encoding() Encoding         { return EncodingInt32Array }
func (c *Float32Column) RetainedSizeInBytes() int64 { return c.retainedSizeInBytes }
func (c *Float32Column) InstanceSize() int64        { return float32ColumnInstanceSize }

func (c *Float32Column) Float32(position int) float32 { return c.get(position) }
func (c *Float32Column) Float64(position int) float64 { return float64(c.get(position)) }

// Float32s returns the backing array. Index it with the column's array offset.
func (c *Float32Column) Float32s() ([]float32, error) {
	return c.store.values, nil
}

func (c *Float32Column) Float64s() ([]float64, error) {
	return convert[float32, float64](c.store.values), nil
}

func (c *Float32Column) Object(position int) any {
	if c.IsNull(position) {
		return nil
	}

	return c.get(position)
}

func (c *Float32Column) Value(position int) Value {
	if c.IsNull(position) {
		return NullValue()
	}

	return Float32Value(c.get(position))
}

func (c *Float32Column) Positions(positions []int32, offset, length int) (Column, error) {
	return selectPositions(c, positions, offset, length)
}

func (*Float32Column) sealed() {}
