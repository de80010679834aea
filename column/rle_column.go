package column

import (
	"fmt"

	"github.com/arloliu/tsblock/errs"
)

// RunLengthEncodedColumn represents PositionCount copies of a single row.
//
// Every accessor reads position 0 of the wrapped single-row column, whatever
// position is requested.
type RunLengthEncodedColumn struct {
	value         Column
	positionCount int

	retainedSizeInBytes int64
}

var rleColumnInstanceSize = sizeOf[RunLengthEncodedColumn]()

// NewRunLengthEncodedColumn creates a column repeating the single row of value
// positionCount times.
//
// The value must have exactly one position. A run-length value is unwrapped and a
// dictionary value is materialized, so the stored row is always a concrete encoding.
//
// Parameters:
//   - value: A column with exactly one position
//   - positionCount: Number of times the row is repeated
//
// Returns:
//   - *RunLengthEncodedColumn: The run-length column
//   - error: errs.ErrInvalidArgument for a nil or multi-row value or a negative count
func NewRunLengthEncodedColumn(value Column, positionCount int) (*RunLengthEncodedColumn, error) {
	if value == nil {
		return nil, fmt.Errorf("%w: value is nil", errs.ErrInvalidArgument)
	}

	if value.PositionCount() != 1 {
		return nil, fmt.Errorf("%w: expected value to contain a single position but has %d positions",
			errs.ErrInvalidArgument, value.PositionCount())
	}

	if positionCount < 0 {
		return nil, fmt.Errorf("%w: positionCount is negative", errs.ErrInvalidArgument)
	}

	for {
		switch v := value.(type) {
		case *RunLengthEncodedColumn:
			value = v.value
			continue
		case *DictionaryColumn:
			row, err := v.CopyPositions([]int32{0}, 0, 1)
			if err != nil {
				return nil, err
			}
			value = row
			continue
		}

		break
	}

	return newRunLengthEncodedColumn(value, positionCount), nil
}

// newRunLengthEncodedColumn wraps an already normalized single-row value.
func newRunLengthEncodedColumn(value Column, positionCount int) *RunLengthEncodedColumn {
	return &RunLengthEncodedColumn{
		value:               value,
		positionCount:       positionCount,
		retainedSizeInBytes: rleColumnInstanceSize + value.RetainedSizeInBytes(),
	}
}

// RunValue returns the single-row column being repeated.
func (c *RunLengthEncodedColumn) RunValue() Column {
	return c.value
}

// AsDictionary expands the column into a DictionaryColumn whose ids all point
// to the single row.
func (c *RunLengthEncodedColumn) AsDictionary() (*DictionaryColumn, error) {
	return NewRepeatedDictionaryColumn(c.value, c.positionCount)
}

func (c *RunLengthEncodedColumn) DataType() DataType { return c.value.DataType() }
func (c *RunLengthEncodedColumn) Encoding() Encoding { return EncodingRLE }
func (c *RunLengthEncodedColumn) PositionCount() int { return c.positionCount }
func (c *RunLengthEncodedColumn) InstanceSize() int64 {
	return rleColumnInstanceSize
}

func (c *RunLengthEncodedColumn) RetainedSizeInBytes() int64 {
	return c.retainedSizeInBytes
}

func (c *RunLengthEncodedColumn) MayHaveNull() bool { return c.value.MayHaveNull() }
func (c *RunLengthEncodedColumn) IsNull(int) bool   { return c.value.IsNull(0) }

func (c *RunLengthEncodedColumn) Bool(int) bool       { return c.value.Bool(0) }
func (c *RunLengthEncodedColumn) Int32(int) int32     { return c.value.Int32(0) }
func (c *RunLengthEncodedColumn) Int64(int) int64     { return c.value.Int64(0) }
func (c *RunLengthEncodedColumn) Float32(int) float32 { return c.value.Float32(0) }
func (c *RunLengthEncodedColumn) Float64(int) float64 { return c.value.Float64(0) }
func (c *RunLengthEncodedColumn) Binary(int) Binary   { return c.value.Binary(0) }
func (c *RunLengthEncodedColumn) Object(int) any      { return c.value.Object(0) }
func (c *RunLengthEncodedColumn) Value(int) Value     { return c.value.Value(0) }

func (c *RunLengthEncodedColumn) Bools() ([]bool, error) {
	return nil, unsupported(EncodingRLE, "Bools")
}

func (c *RunLengthEncodedColumn) Int32s() ([]int32, error) {
	return nil, unsupported(EncodingRLE, "Int32s")
}

func (c *RunLengthEncodedColumn) Int64s() ([]int64, error) {
	return nil, unsupported(EncodingRLE, "Int64s")
}

func (c *RunLengthEncodedColumn) Float32s() ([]float32, error) {
	return nil, unsupported(EncodingRLE, "Float32s")
}

func (c *RunLengthEncodedColumn) Float64s() ([]float64, error) {
	return nil, unsupported(EncodingRLE, "Float64s")
}

func (c *RunLengthEncodedColumn) Binaries() ([]Binary, error) {
	return nil, unsupported(EncodingRLE, "Binaries")
}

func (c *RunLengthEncodedColumn) Region(offset, length int) (Column, error) {
	if err := checkValidRegion(c.positionCount, offset, length); err != nil {
		return nil, err
	}

	return newRunLengthEncodedColumn(c.value, length), nil
}

func (c *RunLengthEncodedColumn) RegionCopy(offset, length int) (Column, error) {
	if err := checkValidRegion(c.positionCount, offset, length); err != nil {
		return nil, err
	}

	return c.withCopiedRow(length)
}

func (c *RunLengthEncodedColumn) SubColumn(fromIndex int) (Column, error) {
	if err := checkValidFromIndex(c.positionCount, fromIndex); err != nil {
		return nil, err
	}

	return newRunLengthEncodedColumn(c.value, c.positionCount-fromIndex), nil
}

func (c *RunLengthEncodedColumn) SubColumnCopy(fromIndex int) (Column, error) {
	if err := checkValidFromIndex(c.positionCount, fromIndex); err != nil {
		return nil, err
	}

	return c.withCopiedRow(c.positionCount - fromIndex)
}

// Positions returns a run-length column of length positions over the same row.
func (c *RunLengthEncodedColumn) Positions(positions []int32, offset, length int) (Column, error) {
	if err := checkValidPositions(positions, offset, length, c.positionCount); err != nil {
		return nil, err
	}

	return newRunLengthEncodedColumn(c.value, length), nil
}

// CopyPositions returns a run-length column of length positions over a copy of the row.
func (c *RunLengthEncodedColumn) CopyPositions(positions []int32, offset, length int) (Column, error) {
	if err := checkValidPositions(positions, offset, length, c.positionCount); err != nil {
		return nil, err
	}

	return c.withCopiedRow(length)
}

func (c *RunLengthEncodedColumn) withCopiedRow(positionCount int) (Column, error) {
	row, err := c.value.RegionCopy(0, 1)
	if err != nil {
		return nil, err
	}

	return newRunLengthEncodedColumn(row, positionCount), nil
}

// Reverse is a no-op: all positions hold the same row.
func (c *RunLengthEncodedColumn) Reverse() {}

func (c *RunLengthEncodedColumn) SetPositionCount(count int) error {
	if count < 0 {
		return fmt.Errorf("%w: position count %d is negative", errs.ErrOutOfBounds, count)
	}
	c.positionCount = count

	return nil
}

// SetNull always fails: nulling a range would change the single shared row.
func (c *RunLengthEncodedColumn) SetNull(int, int) error {
	return unsupported(EncodingRLE, "SetNull")
}

func (*RunLengthEncodedColumn) sealed() {}
