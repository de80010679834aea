package column

import (
	"fmt"

	"github.com/arloliu/tsblock/errs"
)

// Builder accumulates values of one data type and produces an immutable column.
//
// Build hands the accumulated storage to the returned column and resets the
// builder, so values appended afterwards never alias a built column.
type Builder interface {
	// DataType returns the data type of the columns produced by Build.
	DataType() DataType

	// PositionCount returns the number of values appended since the last Build.
	PositionCount() int

	// AppendNull appends a null value.
	AppendNull()

	// AppendFrom appends the value (or null) at position of c. The column must
	// support the builder's native accessor.
	AppendFrom(c Column, position int)

	// Build returns the accumulated values as a column. A builder holding only
	// nulls returns a run-length column over a single null row.
	Build() Column
}

// NewBuilder returns the builder for dataType.
//
// Parameters:
//   - dataType: Data type of the columns to build
//   - expectedEntries: Initial capacity; negative values are treated as zero
//
// Returns:
//   - Builder: The builder for dataType
//   - error: errs.ErrInvalidArgument when no builder exists for dataType
func NewBuilder(dataType DataType, expectedEntries int) (Builder, error) {
	switch dataType {
	case DataTypeBoolean:
		return NewBooleanBuilder(expectedEntries), nil
	case DataTypeInt32:
		return NewInt32Builder(expectedEntries), nil
	case DataTypeInt64:
		return NewInt64Builder(expectedEntries), nil
	case DataTypeFloat:
		return NewFloat32Builder(expectedEntries), nil
	case DataTypeDouble:
		return NewFloat64Builder(expectedEntries), nil
	case DataTypeText:
		return NewBinaryBuilder(expectedEntries), nil
	default:
		return nil, fmt.Errorf("%w: no builder for data type %s", errs.ErrInvalidArgument, dataType)
	}
}

// arrayBuilder is the storage shared by all builders.
type arrayBuilder[T any] struct {
	values     []T
	nulls      []bool
	hasNull    bool
	hasNonNull bool
}

func newArrayBuilder[T any](expectedEntries int) arrayBuilder[T] {
	expectedEntries = max(expectedEntries, 0)

	return arrayBuilder[T]{
		values: make([]T, 0, expectedEntries),
		nulls:  make([]bool, 0, expectedEntries),
	}
}

func (b *arrayBuilder[T]) PositionCount() int {
	return len(b.values)
}

func (b *arrayBuilder[T]) append(v T) {
	b.values = append(b.values, v)
	b.nulls = append(b.nulls, false)
	b.hasNonNull = true
}

func (b *arrayBuilder[T]) AppendNull() {
	var zero T
	b.values = append(b.values, zero)
	b.nulls = append(b.nulls, true)
	b.hasNull = true
}

// build returns the accumulated column and resets the builder.
func (b *arrayBuilder[T]) build(wrap func(array[T]) Column) Column {
	positionCount := len(b.values)

	var result Column
	if b.hasNull && !b.hasNonNull {
		row := wrap(array[T]{
			store:         &backing[T]{values: make([]T, 1), nulls: []bool{true}},
			positionCount: 1,
			wrap:          wrap,
		})
		result = newRunLengthEncodedColumn(row, positionCount)
	} else {
		var nulls []bool
		if b.hasNull {
			nulls = b.nulls
		}
		result = wrap(array[T]{
			store:         &backing[T]{values: b.values, nulls: nulls},
			positionCount: positionCount,
			wrap:          wrap,
		})
	}

	*b = arrayBuilder[T]{
		values: make([]T, 0, positionCount),
		nulls:  make([]bool, 0, positionCount),
	}

	return result
}

// BooleanBuilder builds BooleanColumns.
type BooleanBuilder struct {
	arrayBuilder[bool]
}

// NewBooleanBuilder creates a builder sized for expectedEntries values.
func NewBooleanBuilder(expectedEntries int) *BooleanBuilder {
	return &BooleanBuilder{arrayBuilder: newArrayBuilder[bool](expectedEntries)}
}

// Append appends v.
func (b *BooleanBuilder) Append(v bool) *BooleanBuilder {
	b.append(v)
	return b
}

func (b *BooleanBuilder) AppendFrom(c Column, position int) {
	if c.IsNull(position) {
		b.AppendNull()
		return
	}
	b.append(c.Bool(position))
}

func (b *BooleanBuilder) DataType() DataType { return DataTypeBoolean }
func (b *BooleanBuilder) Build() Column      { return b.build(wrapBoolean) }

// Int32Builder builds Int32Columns.
type Int32Builder struct {
	arrayBuilder[int32]
}

// NewInt32Builder creates a builder sized for expectedEntries values.
func NewInt32Builder(expectedEntries int) *Int32Builder {
	return &Int32Builder{arrayBuilder: newArrayBuilder[int32](expectedEntries)}
}

// Append appends v.
func (b *Int32Builder) Append(v int32) *Int32Builder {
	b.append(v)
	return b
}

func (b *Int32Builder) AppendFrom(c Column, position int) {
	if c.IsNull(position) {
		b.AppendNull()
		return
	}
	b.append(c.Int32(position))
}

func (b *Int32Builder) DataType() DataType { return DataTypeInt32 }
func (b *Int32Builder) Build() Column      { return b.build(wrapInt32) }

// Int64Builder builds Int64Columns.
type Int64Builder struct {
	arrayBuilder[int64]
}

// NewInt64Builder creates a builder sized for expectedEntries values.
func NewInt64Builder(expectedEntries int) *Int64Builder {
	return &Int64Builder{arrayBuilder: newArrayBuilder[int64](expectedEntries)}
}

// Append appends v.
func (b *Int64Builder) Append(v int64) *Int64Builder {
	b.append(v)
	return b
}

func (b *Int64Builder) AppendFrom(c Column, position int) {
	if c.IsNull(position) {
		b.AppendNull()
		return
	}
	b.append(c.Int64(position))
}

func (b *Int64Builder) DataType() DataType { return DataTypeInt64 }
func (b *Int64Builder) Build() Column      { return b.build(wrapInt64) }

// Float32Builder builds Float32Columns.
type Float32Builder struct {
	arrayBuilder[float32]
}

// NewFloat32Builder creates a builder sized for expectedEntries values.
func NewFloat32Builder(expectedEntries int) *Float32Builder {
	return &Float32Builder{arrayBuilder: newArrayBuilder[float32](expectedEntries)}
}

// Append appends v.
func (b *Float32Builder) Append(v float32) *Float32Builder {
	b.append(v)
	return b
}

func (b *Float32Builder) AppendFrom(c Column, position int) {
	if c.IsNull(position) {
		b.AppendNull()
		return
	}
	b.append(c.Float32(position))
}

func (b *Float32Builder) DataType() DataType { return DataTypeFloat }
func (b *Float32Builder) Build() Column      { return b.build(wrapFloat32) }

// Float64Builder builds Float64Columns.
type Float64Builder struct {
	arrayBuilder[float64]
}

// NewFloat64Builder creates a builder sized for expectedEntries values.
func NewFloat64Builder(expectedEntries int) *Float64Builder {
	return &Float64Builder{arrayBuilder: newArrayBuilder[float64](expectedEntries)}
}

// Append appends v.
func (b *Float64Builder) Append(v float64) *Float64Builder {
	b.append(v)
	return b
}

func (b *Float64Builder) AppendFrom(c Column, position int) {
	if c.IsNull(position) {
		b.AppendNull()
		return
	}
	b.append(c.Float64(position))
}

func (b *Float64Builder) DataType() DataType { return DataTypeDouble }
func (b *Float64Builder) Build() Column      { return b.build(wrapFloat64) }

// BinaryBuilder builds BinaryColumns.
type BinaryBuilder struct {
	arrayBuilder[Binary]
}

// NewBinaryBuilder creates a builder sized for expectedEntries values.
func NewBinaryBuilder(expectedEntries int) *BinaryBuilder {
	return &BinaryBuilder{arrayBuilder: newArrayBuilder[Binary](expectedEntries)}
}

// Append appends v. The bytes are not copied.
func (b *BinaryBuilder) Append(v Binary) *BinaryBuilder {
	b.append(v)
	return b
}

func (b *BinaryBuilder) AppendFrom(c Column, position int) {
	if c.IsNull(position) {
		b.AppendNull()
		return
	}
	b.append(c.Binary(position))
}

func (b *BinaryBuilder) DataType() DataType { return DataTypeText }
func (b *BinaryBuilder) Build() Column      { return b.build(wrapBinary) }

// TimeBuilder builds TimeColumns. Timestamps cannot be null.
type TimeBuilder struct {
	times []int64
}

// NewTimeBuilder creates a builder sized for expectedEntries timestamps.
func NewTimeBuilder(expectedEntries int) *TimeBuilder {
	return &TimeBuilder{times: make([]int64, 0, max(expectedEntries, 0))}
}

// Append appends timestamp ts.
func (b *TimeBuilder) Append(ts int64) *TimeBuilder {
	b.times = append(b.times, ts)
	return b
}

// PositionCount returns the number of timestamps appended since the last Build.
func (b *TimeBuilder) PositionCount() int {
	return len(b.times)
}

// Build returns the accumulated timestamps as a TimeColumn and resets the builder.
func (b *TimeBuilder) Build() *TimeColumn {
	times := b.times
	b.times = make([]int64, 0, len(times))

	return newTimeColumn(array[int64]{
		store:         &backing[int64]{values: times},
		positionCount: len(times),
		wrap:          wrapTime,
	})
}
