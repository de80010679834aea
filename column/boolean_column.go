package column

// BooleanColumn holds booleans with an optional null bitmap.
type BooleanColumn struct {
	array[bool]
	mismatchAccessors

	retainedSizeInBytes int64
}

var booleanColumnInstanceSize = sizeOf[BooleanColumn]()

// NewBooleanColumn creates a column over the first positionCount entries of values.
// A nil nulls means no position is null.
func NewBooleanColumn(positionCount int, nulls []bool, values []bool) (*BooleanColumn, error) {
	return NewBooleanColumnWithOffset(0, positionCount, nulls, values)
}

// NewBooleanColumnWithOffset creates a column over values[arrayOffset:arrayOffset+positionCount].
func NewBooleanColumnWithOffset(arrayOffset, positionCount int, nulls []bool, values []bool) (*BooleanColumn, error) {
	a, err := newArray(arrayOffset, positionCount, nulls, values, wrapBoolean)
	if err != nil {
		return nil, err
	}

	return newBooleanColumn(a), nil
}

func newBooleanColumn(a array[bool]) *BooleanColumn {
	return &BooleanColumn{
		array:               a,
		mismatchAccessors:   mismatchAccessors{dataType: DataTypeBoolean},
		retainedSizeInBytes: booleanColumnInstanceSize + a.sizeOfWindow(),
	}
}

func wrapBoolean(a array[bool]) Column {
	return newBooleanColumn(a)
}

func (c *BooleanColumn) DataType() DataType         { return DataTypeBoolean }
func (c *BooleanColumn) Encoding() Encoding         { return EncodingByteArray }
func (c *BooleanColumn) RetainedSizeInBytes() int64 { return c.retainedSizeInBytes }
func (c *BooleanColumn) InstanceSize() int64        { return booleanColumnInstanceSize }

func (c *BooleanColumn) Bool(position int) bool { return c.get(position) }

// Bools returns the backing array. Index it with the column's array offset.
func (c *BooleanColumn) Bools() ([]bool, error) {
	return c.store.values, nil
}

func (c *BooleanColumn) Object(position int) any {
	if c.IsNull(position) {
		return nil
	}

	return c.get(position)
}

func (c *BooleanColumn) Value(position int) Value {
	if c.IsNull(position) {
		return NullValue()
	}

	return BoolValue(c.get(position))
}

func (c *BooleanColumn) Positions(positions []int32, offset, length int) (Column, error) {
	return selectPositions(c, positions, offset, length)
}

func (*BooleanColumn) sealed() {}
