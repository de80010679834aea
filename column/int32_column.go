package column

// Int32Column holds 32-bit signed integers with an optional null bitmap.
type Int32Column struct {
	array[int32]
	mismatchAccessors

	retainedSizeInBytes int64
}

var int32ColumnInstanceSize = sizeOf[Int32Column]()

// NewInt32Column creates a column over the first positionCount entries of values.
// A nil nulls means no position is null.
func NewInt32Column(positionCount int, nulls []bool, values []int32) (*Int32Column, error) {
	return NewInt32ColumnWithOffset(0, positionCount, nulls, values)
}

// NewInt32ColumnWithOffset creates a column over values[arrayOffset:arrayOffset+positionCount].
// The column shares values and nulls with the caller.
//
// Parameters:
//   - arrayOffset: Index of the first visible entry in values
//   - positionCount: Number of visible entries
//   - nulls: Null flags indexed like values, or nil when no entry is null
//   - values: Backing array
//
// Returns:
//   - *Int32Column: The column
//   - error: errs.ErrInvalidArgument when the window does not fit values or nulls
func NewInt32ColumnWithOffset(arrayOffset, positionCount int, nulls []bool, values []int32) (*Int32Column, error) {
	a, err := newArray(arrayOffset, positionCount, nulls, values, wrapInt32)
	if err != nil {
		return nil, err
	}

	return newInt32Column(a), nil
}

func newInt32Column(a array[int32]) *Int32Column {
	return &Int32Column{
		array:               a,
		mismatchAccessors:   mismatchAccessors{dataType: DataTypeInt32},
		retainedSizeInBytes: int32ColumnInstanceSize + a.sizeOfWindow(),
	}
}

func wrapInt32(a array[int32]) Column {
	return newInt32Column(a)
}

func (c *Int32Column) DataType() DataType         { return DataTypeInt32 }
func (c *Int32Column) Encoding() Encoding         { return EncodingInt32Array }
func (c *Int32Column) RetainedSizeInBytes() int64 { return c.retainedSizeInBytes }
func (c *Int32Column) InstanceSize() int64        { return int32ColumnInstanceSize }

func (c *Int32Column) Int32(position int) int32     { return c.get(position) }
func (c *Int32Column) Int64(position int) int64     { return int64(c.get(position)) }
func (c *Int32Column) Float32(position int) float32 { return float32(c.get(position)) }
func (c *Int32Column) Float64(position int) float64 { return float64(c.get(position)) }

// Int32s returns the backing array. Index it with the column's array offset.
func (c *Int32Column) Int32s() ([]int32, error) {
	return c.store.values, nil
}

func (c *Int32Column) Int64s() ([]int64, error) {
	return convert[int32, int64](c.store.values), nil
}

func (c *Int32Column) Float32s() ([]float32, error) {
	return convert[int32, float32](c.store.values), nil
}

func (c *Int32Column) Float64s() ([]float64, error) {
	return convert[int32, float64](c.store.values), nil
}

func (c *Int32Column) Object(position int) any {
	if c.IsNull(position) {
		return nil
	}

	return c.get(position)
}

func (c *Int32Column) Value(position int) Value {
	if c.IsNull(position) {
		return NullValue()
	}

	return Int32Value(c.get(position))
}

func (c *Int32Column) Positions(positions []int32, offset, length int) (Column, error) {
	return selectPositions(c, positions, offset, length)
}

func (*Int32Column) sealed() {}
