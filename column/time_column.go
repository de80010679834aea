package column

import "fmt"

// TimeColumn holds the timestamps of a block. Timestamps are never null.
type TimeColumn struct {
	array[int64]
	mismatchAccessors

	retainedSizeInBytes int64
}

var timeColumnInstanceSize = sizeOf[TimeColumn]()

// NewTimeColumn creates a column over the first positionCount timestamps of values.
func NewTimeColumn(positionCount int, values []int64) (*TimeColumn, error) {
	return NewTimeColumnWithOffset(0, positionCount, values)
}

// NewTimeColumnWithOffset creates a column over values[arrayOffset:arrayOffset+positionCount].
func NewTimeColumnWithOffset(arrayOffset, positionCount int, values []int64) (*TimeColumn, error) {
	a, err := newArray(arrayOffset, positionCount, nil, values, wrapTime)
	if err != nil {
		return nil, err
	}

	return newTimeColumn(a), nil
}

func newTimeColumn(a array[int64]) *TimeColumn {
	return &TimeColumn{
		array:               a,
		mismatchAccessors:   mismatchAccessors{dataType: DataTypeInt64},
		retainedSizeInBytes: timeColumnInstanceSize + sizeOfSlice[int64](a.positionCount),
	}
}

func wrapTime(a array[int64]) Column {
	return newTimeColumn(a)
}

func (c *TimeColumn) DataType() DataType         { return DataTypeInt64 }
func (c *TimeColumn) Encoding() Encoding         { return EncodingInt64Array }
func (c *TimeColumn) RetainedSizeInBytes() int64 { return c.retainedSizeInBytes }
func (c *TimeColumn) InstanceSize() int64        { return timeColumnInstanceSize }

func (c *TimeColumn) Int64(position int) int64     { return c.get(position) }
func (c *TimeColumn) Float64(position int) float64 { return float64(c.get(position)) }

// Int64s returns the backing array. Index it with the column's array offset.
func (c *TimeColumn) Int64s() ([]int64, error) {
	return c.store.values, nil
}

func (c *TimeColumn) Float64s() ([]float64, error) {
	return convert[int64, float64](c.store.values), nil
}

// Times returns the visible timestamps. The slice aliases the backing array.
func (c *TimeColumn) Times() []int64 {
	return c.window()
}

// StartTime returns the first timestamp. The column must not be empty.
func (c *TimeColumn) StartTime() int64 {
	return c.get(0)
}

// EndTime returns the last timestamp. The column must not be empty.
func (c *TimeColumn) EndTime() int64 {
	return c.get(c.positionCount - 1)
}

func (c *TimeColumn) Object(position int) any {
	return c.get(position)
}

func (c *TimeColumn) Value(position int) Value {
	return Int64Value(c.get(position))
}

func (c *TimeColumn) Positions(positions []int32, offset, length int) (Column, error) {
	return selectPositions(c, positions, offset, length)
}

// SetNull always fails: timestamps cannot be null.
func (c *TimeColumn) SetNull(start, end int) error {
	return fmt.Errorf("%w: timestamps cannot be null", unsupported(c.Encoding(), "SetNull"))
}

func (*TimeColumn) sealed() {}
