package column

// BinaryColumn holds variable-length byte sequences with an optional null bitmap.
type BinaryColumn struct {
	array[Binary]
	mismatchAccessors

	retainedSizeInBytes int64
}

var binaryColumnInstanceSize = sizeOf[BinaryColumn]()

// NewBinaryColumn creates a column over the first positionCount entries of values.
// A nil nulls means no position is null.
func NewBinaryColumn(positionCount int, nulls []bool, values []Binary) (*BinaryColumn, error) {
	return NewBinaryColumnWithOffset(0, positionCount, nulls, values)
}

// NewBinaryColumnWithOffset creates a column over values[arrayOffset:arrayOffset+positionCount].
func NewBinaryColumnWithOffset(arrayOffset, positionCount int, nulls []bool, values []Binary) (*BinaryColumn, error) {
	a, err := newArray(arrayOffset, positionCount, nulls, values, wrapBinary)
	if err != nil {
		return nil, err
	}

	return newBinaryColumn(a), nil
}

func newBinaryColumn(a array[Binary]) *BinaryColumn {
	size := binaryColumnInstanceSize + a.sizeOfWindow()
	for _, v := range a.window() {
		size += int64(len(v))
	}

	return &BinaryColumn{
		array:               a,
		mismatchAccessors:   mismatchAccessors{dataType: DataTypeText},
		retainedSizeInBytes: size,
	}
}

func wrapBinary(a array[Binary]) Column {
	return newBinaryColumn(a)
}

func (c *BinaryColumn) DataType() DataType         { return DataTypeText }
func (c *BinaryColumn) Encoding() Encoding         { return EncodingBinaryArray }
func (c *BinaryColumn) RetainedSizeInBytes() int64 { return c.retainedSizeInBytes }
func (c *BinaryColumn) InstanceSize() int64        { return binaryColumnInstanceSize }

func (c *BinaryColumn) Binary(position int) Binary { return c.get(position) }

// Binaries returns the backing array. Index it with the column's array offset.
func (c *BinaryColumn) Binaries() ([]Binary, error) {
	return c.store.values, nil
}

func (c *BinaryColumn) Object(position int) any {
	if c.IsNull(position) {
		return nil
	}

	return c.get(position)
}

func (c *BinaryColumn) Value(position int) Value {
	if c.IsNull(position) {
		return NullValue()
	}

	return BinaryValue(c.get(position))
}

func (c *BinaryColumn) Positions(positions []int32, offset, length int) (Column, error) {
	return selectPositions(c, positions, offset, length)
}

func (*BinaryColumn) sealed() {}
