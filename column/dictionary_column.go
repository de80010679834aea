package column

import (
	"fmt"

	"github.com/arloliu/tsblock/errs"
	"github.com/arloliu/tsblock/internal/pool"
)

// DictionaryColumn maps each position to a row of a shared dictionary column.
//
// Value i is the dictionary value at ID(i). Filtering a column only produces a
// new id array; the dictionary and its DictionaryID are shared by every column
// derived from it. The dictionary is never itself a DictionaryColumn.
//
// Null-ness and values belong to the dictionary, so SetNull and the bulk
// array accessors fail with errs.ErrUnsupported. Use CopyPositions to get a flat
// column when one is needed.
type DictionaryColumn struct {
	ids          array[int32]
	dictionary   Column
	dictionaryID DictionaryID

	retainedSizeInBytes int64
}

var dictionaryColumnInstanceSize = sizeOf[DictionaryColumn]()

// NewDictionaryColumn creates a column selecting positions[offset:offset+length]
// from dictionary. The positions are copied.
//
// Every position must be a valid index into dictionary. When dictionary is itself
// a DictionaryColumn the ids are composed against its dictionary and its
// DictionaryID is kept, so indirection is never nested.
//
// Parameters:
//   - positions: Buffer holding the dictionary row of each position
//   - offset: Index of the first position in the buffer
//   - length: Number of positions
//   - dictionary: The column holding the values
//   - id: Identity of the dictionary, usually from NextDictionaryID
//
// Returns:
//   - *DictionaryColumn: The column of length positions
//   - error: errs.ErrInvalidArgument for a nil dictionary, errs.ErrOutOfBounds for
//     an invalid window or a position outside the dictionary
func NewDictionaryColumn(positions []int32, offset, length int, dictionary Column, id DictionaryID) (*DictionaryColumn, error) {
	if dictionary == nil {
		return nil, fmt.Errorf("%w: dictionary is nil", errs.ErrInvalidArgument)
	}

	if err := checkValidPositions(positions, offset, length, dictionary.PositionCount()); err != nil {
		return nil, err
	}

	ids := make([]int32, length)
	copy(ids, positions[offset:offset+length])

	if nested, ok := dictionary.(*DictionaryColumn); ok {
		for i, p := range ids {
			ids[i] = nested.ids.get(int(p))
		}

		return newDictionaryColumn(idArray(ids), nested.dictionary, nested.dictionaryID), nil
	}

	return newDictionaryColumn(idArray(ids), dictionary, id), nil
}

// NewRepeatedDictionaryColumn creates a column of positionCount positions that
// all map to row 0 of dictionary, with a new DictionaryID.
//
// Parameters:
//   - dictionary: The column whose first row is repeated
//   - positionCount: Number of positions
//
// Returns:
//   - *DictionaryColumn: The repeated column
//   - error: errs.ErrInvalidArgument for a nil dictionary or negative count,
//     errs.ErrOutOfBounds when positions are requested from an empty dictionary
func NewRepeatedDictionaryColumn(dictionary Column, positionCount int) (*DictionaryColumn, error) {
	if dictionary == nil {
		return nil, fmt.Errorf("%w: dictionary is nil", errs.ErrInvalidArgument)
	}

	if positionCount < 0 {
		return nil, fmt.Errorf("%w: positionCount is negative", errs.ErrInvalidArgument)
	}

	if positionCount > 0 && dictionary.PositionCount() == 0 {
		return nil, fmt.Errorf("%w: dictionary is empty", errs.ErrOutOfBounds)
	}

	return NewDictionaryColumn(make([]int32, positionCount), 0, positionCount, dictionary, NextDictionaryID())
}

func idArray(ids []int32) array[int32] {
	return array[int32]{
		store:         &backing[int32]{values: ids},
		positionCount: len(ids),
	}
}

func newDictionaryColumn(ids array[int32], dictionary Column, id DictionaryID) *DictionaryColumn {
	return &DictionaryColumn{
		ids:                 ids,
		dictionary:          dictionary,
		dictionaryID:        id,
		retainedSizeInBytes: dictionaryColumnInstanceSize + sizeOfSlice[int32](ids.positionCount) + dictionary.RetainedSizeInBytes(),
	}
}

// Dictionary returns the shared dictionary column.
func (c *DictionaryColumn) Dictionary() Column {
	return c.dictionary
}

// DictionaryID returns the identity of the dictionary.
func (c *DictionaryColumn) DictionaryID() DictionaryID {
	return c.dictionaryID
}

// ID returns the dictionary row of position.
func (c *DictionaryColumn) ID(position int) int32 {
	return c.ids.get(position)
}

// IsSequentialIDs reports whether position i maps to dictionary row i for every
// position, i.e. the column is the dictionary prefix in order.
func (c *DictionaryColumn) IsSequentialIDs() bool {
	for i, id := range c.ids.window() {
		if int(id) != i {
			return false
		}
	}

	return true
}

func (c *DictionaryColumn) row(position int) int {
	return int(c.ids.get(position))
}

func (c *DictionaryColumn) DataType() DataType  { return c.dictionary.DataType() }
func (c *DictionaryColumn) Encoding() Encoding  { return EncodingDictionary }
func (c *DictionaryColumn) PositionCount() int  { return c.ids.positionCount }
func (c *DictionaryColumn) InstanceSize() int64 { return dictionaryColumnInstanceSize }

// RetainedSizeInBytes includes the dictionary, which may be shared with other
// dictionary columns. It is computed at construction.
func (c *DictionaryColumn) RetainedSizeInBytes() int64 {
	return c.retainedSizeInBytes
}

func (c *DictionaryColumn) MayHaveNull() bool { return c.dictionary.MayHaveNull() }
func (c *DictionaryColumn) IsNull(position int) bool {
	return c.dictionary.IsNull(c.row(position))
}

func (c *DictionaryColumn) Bool(position int) bool       { return c.dictionary.Bool(c.row(position)) }
func (c *DictionaryColumn) Int32(position int) int32     { return c.dictionary.Int32(c.row(position)) }
func (c *DictionaryColumn) Int64(position int) int64     { return c.dictionary.Int64(c.row(position)) }
func (c *DictionaryColumn) Float32(position int) float32 { return c.dictionary.Float32(c.row(position)) }
func (c *DictionaryColumn) Float64(position int) float64 { return c.dictionary.Float64(c.row(position)) }
func (c *DictionaryColumn) Binary(position int) Binary   { return c.dictionary.Binary(c.row(position)) }
func (c *DictionaryColumn) Object(position int) any      { return c.dictionary.Object(c.row(position)) }
func (c *DictionaryColumn) Value(position int) Value     { return c.dictionary.Value(c.row(position)) }

func (c *DictionaryColumn) Bools() ([]bool, error) {
	return nil, unsupported(EncodingDictionary, "Bools")
}

func (c *DictionaryColumn) Int32s() ([]int32, error) {
	return nil, unsupported(EncodingDictionary, "Int32s")
}

func (c *DictionaryColumn) Int64s() ([]int64, error) {
	return nil, unsupported(EncodingDictionary, "Int64s")
}

func (c *DictionaryColumn) Float32s() ([]float32, error) {
	return nil, unsupported(EncodingDictionary, "Float32s")
}

func (c *DictionaryColumn) Float64s() ([]float64, error) {
	return nil, unsupported(EncodingDictionary, "Float64s")
}

func (c *DictionaryColumn) Binaries() ([]Binary, error) {
	return nil, unsupported(EncodingDictionary, "Binaries")
}

// Region returns a view sharing the id array and the dictionary.
func (c *DictionaryColumn) Region(offset, length int) (Column, error) {
	if err := checkValidRegion(c.ids.positionCount, offset, length); err != nil {
		return nil, err
	}

	return newDictionaryColumn(c.ids.view(offset, length), c.dictionary, c.dictionaryID), nil
}

// RegionCopy copies the id array; the dictionary stays shared.
func (c *DictionaryColumn) RegionCopy(offset, length int) (Column, error) {
	if err := checkValidRegion(c.ids.positionCount, offset, length); err != nil {
		return nil, err
	}

	return newDictionaryColumn(c.ids.copyRange(c.ids.arrayOffset+offset, length), c.dictionary, c.dictionaryID), nil
}

func (c *DictionaryColumn) SubColumn(fromIndex int) (Column, error) {
	if err := checkValidFromIndex(c.ids.positionCount, fromIndex); err != nil {
		return nil, err
	}

	return c.Region(fromIndex, c.ids.positionCount-fromIndex)
}

func (c *DictionaryColumn) SubColumnCopy(fromIndex int) (Column, error) {
	if err := checkValidFromIndex(c.ids.positionCount, fromIndex); err != nil {
		return nil, err
	}

	return c.RegionCopy(fromIndex, c.ids.positionCount-fromIndex)
}

// Positions composes the ids against the same dictionary and keeps its
// DictionaryID. A degenerate dictionary (null or run-length) yields a
// degenerate result instead of a dictionary.
func (c *DictionaryColumn) Positions(positions []int32, offset, length int) (Column, error) {
	if err := checkValidPositions(positions, offset, length, c.ids.positionCount); err != nil {
		return nil, err
	}

	ids := make([]int32, length)
	c.compose(ids, positions[offset:offset+length])

	switch c.dictionary.(type) {
	case *NullColumn, *RunLengthEncodedColumn:
		return c.dictionary.Positions(ids, 0, length)
	default:
		return newDictionaryColumn(idArray(ids), c.dictionary, c.dictionaryID), nil
	}
}

// CopyPositions materializes the selected rows in the dictionary's encoding.
func (c *DictionaryColumn) CopyPositions(positions []int32, offset, length int) (Column, error) {
	if err := checkValidPositions(positions, offset, length, c.ids.positionCount); err != nil {
		return nil, err
	}

	ids, cleanup := pool.GetInt32Slice(length)
	defer cleanup()
	c.compose(ids, positions[offset:offset+length])

	return c.dictionary.CopyPositions(ids, 0, length)
}

// compose writes the dictionary row of every selected position into dst.
func (c *DictionaryColumn) compose(dst, selected []int32) {
	for i, p := range selected {
		dst[i] = c.ids.get(int(p))
	}
}

// Compact returns a column over a new dictionary holding only the rows that are
// referenced, in dictionary order, with a new DictionaryID. It returns the
// receiver when every dictionary row is referenced.
func (c *DictionaryColumn) Compact() (*DictionaryColumn, error) {
	dictionaryCount := c.dictionary.PositionCount()
	remap := make([]int32, dictionaryCount)
	for i := range remap {
		remap[i] = -1
	}

	for _, id := range c.ids.window() {
		remap[id] = 0
	}

	used, cleanup := pool.GetInt32Slice(dictionaryCount)
	defer cleanup()

	usedCount := 0
	for row, mark := range remap {
		if mark < 0 {
			continue
		}
		remap[row] = int32(usedCount)
		used[usedCount] = int32(row)
		usedCount++
	}

	if usedCount == dictionaryCount {
		return c, nil
	}

	dictionary, err := c.dictionary.CopyPositions(used, 0, usedCount)
	if err != nil {
		return nil, err
	}

	ids := make([]int32, c.ids.positionCount)
	for i, id := range c.ids.window() {
		ids[i] = remap[id]
	}

	return newDictionaryColumn(idArray(ids), dictionary, NextDictionaryID()), nil
}

// Reverse reverses the id window; the dictionary is untouched.
func (c *DictionaryColumn) Reverse() {
	c.ids.Reverse()
}

func (c *DictionaryColumn) SetPositionCount(count int) error {
	return c.ids.SetPositionCount(count)
}

// SetNull always fails: nulls belong to the dictionary, which may be shared.
func (c *DictionaryColumn) SetNull(int, int) error {
	return unsupported(EncodingDictionary, "SetNull")
}

func (*DictionaryColumn) sealed() {}
