// Package column provides typed, nullable, vectorized value containers for the
// time-series query engine.
//
// Every component of the engine (scan, filter, aggregation, encoding) works on
// Column values without knowing the physical encoding underneath. The encoding
// set is closed:
//
//   - Int32Column, Int64Column, Float32Column, Float64Column, BooleanColumn,
//     TimeColumn: fixed-width values with an optional null bitmap
//   - BinaryColumn: variable-length byte sequences
//   - NullColumn: PositionCount nulls, no value storage
//   - RunLengthEncodedColumn: one row repeated PositionCount times
//   - DictionaryColumn: an id array indexing into a shared dictionary column
//
// # Views and Copies
//
// Array encodings expose a window (arrayOffset, positionCount) over a backing
// array. Region and SubColumn return a new column sharing the receiver's backing
// storage; RegionCopy and SubColumnCopy return a column over freshly allocated
// storage:
//
//	view, _ := col.SubColumn(5)      // shares storage with col
//	cp, _ := col.SubColumnCopy(5)    // independent storage
//	view.Reverse()                   // observable through col
//	cp.Reverse()                     // not observable through col
//
// The mutation set (Reverse, SetNull, SetPositionCount) is meant for the pipeline
// that produced a column, before it is handed to other consumers. It is not
// synchronized; once a column is shared it must be treated as immutable.
//
// # Position Selection
//
// Positions selects rows without copying values: array encodings return a
// DictionaryColumn whose dictionary is the receiver itself, and a DictionaryColumn
// composes the ids so indirection is never nested. CopyPositions always
// materializes the selected rows into the receiver's native encoding.
//
//	filtered, _ := col.Positions([]int32{1, 3, 5}, 1, 2)     // *DictionaryColumn
//	owned, _ := col.CopyPositions([]int32{1, 3, 5}, 1, 2)    // *Int64Column
//
// NullColumn and RunLengthEncodedColumn never produce dictionaries: selecting any
// subset of identical rows yields identical rows.
//
// Select and SelectCopy do the same for a roaring bitmap of row ids, and
// NullBitmap returns the null positions of a column as a bitmap.
//
// # Building Columns
//
// Builders accumulate values and produce a column on Build:
//
//	b := column.NewInt64Builder(3)
//	b.Append(1).Append(2)
//	b.AppendNull()
//	col := b.Build() // *Int64Column with a null bitmap
//
// A builder holding only nulls produces a RunLengthEncodedColumn over a single
// null row.
//
// # Dictionary Identity
//
// Each DictionaryColumn carries a DictionaryID. Columns derived from one another by
// selection share the dictionary and its id, so consumers can cache work computed
// over the dictionary values (hash codes, see package hashcache) keyed by id.
//
// # Errors
//
// Constructors and selection/region operations return errors wrapping the
// sentinels of package errs. Single-value accessors never return errors: calling
// an accessor that does not match the column's data type panics with an error
// wrapping errs.ErrTypeMismatch.
//
// # Thread Safety
//
// Columns are safe for concurrent reads. Mutations must not be interleaved with
// reads of any column sharing the same backing storage. DictionaryID generation
// is safe for concurrent use.
package column
