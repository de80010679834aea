package column

import (
	"fmt"

	"github.com/arloliu/tsblock/errs"
)

// NullColumn is a column of PositionCount nulls. It stores no values.
type NullColumn struct {
	positionCount int
}

var nullColumnInstanceSize = sizeOf[NullColumn]()

// NewNullColumn creates a column of positionCount nulls.
func NewNullColumn(positionCount int) (*NullColumn, error) {
	if positionCount < 0 {
		return nil, fmt.Errorf("%w: positionCount is negative", errs.ErrInvalidArgument)
	}

	return &NullColumn{positionCount: positionCount}, nil
}

func (c *NullColumn) DataType() DataType         { return DataTypeUnknown }
func (c *NullColumn) Encoding() Encoding         { return EncodingNull }
func (c *NullColumn) PositionCount() int         { return c.positionCount }
func (c *NullColumn) RetainedSizeInBytes() int64 { return nullColumnInstanceSize }
func (c *NullColumn) InstanceSize() int64        { return nullColumnInstanceSize }
func (c *NullColumn) MayHaveNull() bool          { return true }
func (c *NullColumn) IsNull(int) bool            { return true }

func (c *NullColumn) Bool(int) bool       { panic(unsupported(EncodingNull, "Bool")) }
func (c *NullColumn) Int32(int) int32     { panic(unsupported(EncodingNull, "Int32")) }
func (c *NullColumn) Int64(int) int64     { panic(unsupported(EncodingNull, "Int64")) }
func (c *NullColumn) Float32(int) float32 { panic(unsupported(EncodingNull, "Float32")) }
func (c *NullColumn) Float64(int) float64 { panic(unsupported(EncodingNull, "Float64")) }
func (c *NullColumn) Binary(int) Binary   { panic(unsupported(EncodingNull, "Binary")) }

func (c *NullColumn) Bools() ([]bool, error)       { return nil, unsupported(EncodingNull, "Bools") }
func (c *NullColumn) Int32s() ([]int32, error)     { return nil, unsupported(EncodingNull, "Int32s") }
func (c *NullColumn) Int64s() ([]int64, error)     { return nil, unsupported(EncodingNull, "Int64s") }
func (c *NullColumn) Float32s() ([]float32, error) { return nil, unsupported(EncodingNull, "Float32s") }
func (c *NullColumn) Float64s() ([]float64, error) { return nil, unsupported(EncodingNull, "Float64s") }
func (c *NullColumn) Binaries() ([]Binary, error)  { return nil, unsupported(EncodingNull, "Binaries") }

func (c *NullColumn) Object(int) any  { return nil }
func (c *NullColumn) Value(int) Value { return NullValue() }

func (c *NullColumn) Region(offset, length int) (Column, error) {
	if err := checkValidRegion(c.positionCount, offset, length); err != nil {
		return nil, err
	}

	return &NullColumn{positionCount: length}, nil
}

func (c *NullColumn) RegionCopy(offset, length int) (Column, error) {
	return c.Region(offset, length)
}

func (c *NullColumn) SubColumn(fromIndex int) (Column, error) {
	if err := checkValidFromIndex(c.positionCount, fromIndex); err != nil {
		return nil, err
	}

	return &NullColumn{positionCount: c.positionCount - fromIndex}, nil
}

func (c *NullColumn) SubColumnCopy(fromIndex int) (Column, error) {
	return c.SubColumn(fromIndex)
}

// Positions returns a NullColumn of length positions: every selection of nulls
// is representationally identical.
func (c *NullColumn) Positions(positions []int32, offset, length int) (Column, error) {
	if err := checkValidPositions(positions, offset, length, c.positionCount); err != nil {
		return nil, err
	}

	return &NullColumn{positionCount: length}, nil
}

func (c *NullColumn) CopyPositions(positions []int32, offset, length int) (Column, error) {
	return c.Positions(positions, offset, length)
}

func (c *NullColumn) Reverse() {}

func (c *NullColumn) SetPositionCount(count int) error {
	if count < 0 {
		return fmt.Errorf("%w: position count %d is negative", errs.ErrOutOfBounds, count)
	}
	c.positionCount = count

	return nil
}

// SetNull validates the range; every position is already null.
func (c *NullColumn) SetNull(start, end int) error {
	return checkValidRange(c.positionCount, start, end)
}

func (*NullColumn) sealed() {}
