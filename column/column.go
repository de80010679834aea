package column

// Column is a fixed-length, 0-indexed sequence of PositionCount nullable values
// of one data type.
//
// Positions passed to the single-value accessors must satisfy
// 0 <= position < PositionCount(); other positions are undefined behavior.
type Column interface {
	// DataType returns the logical type of the values.
	DataType() DataType

	// Encoding returns the physical encoding tag.
	Encoding() Encoding

	// PositionCount returns the number of logical slots visible through this column.
	PositionCount() int

	// RetainedSizeInBytes returns the approximate size of the memory exclusively
	// owned by this column. It is computed once at construction and not updated
	// by SetPositionCount or SetNull.
	RetainedSizeInBytes() int64

	// InstanceSize returns the fixed size of the column struct itself.
	InstanceSize() int64

	// MayHaveNull returns true if the column carries null information, even if
	// no position is actually null.
	MayHaveNull() bool

	// IsNull returns true if the value at position is null. It is always false
	// when MayHaveNull is false.
	IsNull(position int) bool

	// Single-value accessors. A numeric column answers its native accessor and
	// every wider numeric accessor; any other accessor panics with an error
	// wrapping errs.ErrTypeMismatch.
	Bool(position int) bool
	Int32(position int) int32
	Int64(position int) int64
	Float32(position int) float32
	Float64(position int) float64
	Binary(position int) Binary

	// Bulk accessors. The native accessor of an array encoding returns the whole
	// backing array, shared with every view; wider numeric accessors return a
	// converted copy of it. Encodings without a contiguous native array return
	// errs.ErrUnsupported.
	Bools() ([]bool, error)
	Int32s() ([]int32, error)
	Int64s() ([]int64, error)
	Float32s() ([]float32, error)
	Float64s() ([]float64, error)
	Binaries() ([]Binary, error)

	// Object returns the value at position boxed in its native Go type, or nil
	// when the value is null.
	Object(position int) any

	// Value returns the value at position as a Value tagged union.
	Value(position int) Value

	// Region returns a view of [offset, offset+length) sharing this column's storage.
	Region(offset, length int) (Column, error)

	// RegionCopy returns [offset, offset+length) over freshly allocated storage.
	RegionCopy(offset, length int) (Column, error)

	// SubColumn returns a view of [fromIndex, PositionCount) sharing this
	// column's storage. SubColumn(PositionCount()) yields an empty column.
	SubColumn(fromIndex int) (Column, error)

	// SubColumnCopy returns [fromIndex, PositionCount) over freshly allocated storage.
	SubColumnCopy(fromIndex int) (Column, error)

	// Positions returns a column whose value i is the value at
	// positions[offset+i] of this column, without copying values where the
	// encoding allows it.
	Positions(positions []int32, offset, length int) (Column, error)

	// CopyPositions is like Positions but always returns a column of a concrete,
	// non-dictionary encoding over freshly allocated storage.
	CopyPositions(positions []int32, offset, length int) (Column, error)

	// Reverse reverses the visible window in place. The change is observable
	// through every view sharing the storage.
	Reverse()

	// SetPositionCount changes the logical window length without reallocating.
	SetPositionCount(count int) error

	// SetNull marks positions [start, end) as null, allocating a null bitmap if
	// the column has none.
	SetNull(start, end int) error

	sealed()
}

var (
	_ Column = (*BooleanColumn)(nil)
	_ Column = (*Int32Column)(nil)
	_ Column = (*Int64Column)(nil)
	_ Column = (*Float32Column)(nil)
	_ Column = (*Float64Column)(nil)
	_ Column = (*TimeColumn)(nil)
	_ Column = (*BinaryColumn)(nil)
	_ Column = (*NullColumn)(nil)
	_ Column = (*RunLengthEncodedColumn)(nil)
	_ Column = (*DictionaryColumn)(nil)
)
