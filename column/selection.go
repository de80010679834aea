package column

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/arloliu/tsblock/errs"
	"github.com/arloliu/tsblock/internal/pool"
)

// Select returns c.Positions over the row ids set in sel, in ascending order.
//
// Parameters:
//   - c: The column to select from
//   - sel: Row ids to keep; every id must be below c.PositionCount()
//
// Returns:
//   - Column: The selected rows, sharing values with c
//   - error: errs.ErrInvalidArgument for a nil selection, errs.ErrOutOfBounds for
//     an id outside c
func Select(c Column, sel *roaring.Bitmap) (Column, error) {
	positions, cleanup, err := selectedPositions(c, sel)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return c.Positions(positions, 0, len(positions))
}

// SelectCopy returns c.CopyPositions over the row ids set in sel, in ascending order.
func SelectCopy(c Column, sel *roaring.Bitmap) (Column, error) {
	positions, cleanup, err := selectedPositions(c, sel)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return c.CopyPositions(positions, 0, len(positions))
}

// NullBitmap returns the positions of c that are null.
func NullBitmap(c Column) *roaring.Bitmap {
	bm := roaring.New()
	if !c.MayHaveNull() {
		return bm
	}

	n := c.PositionCount()
	switch c.(type) {
	case *NullColumn:
		bm.AddRange(0, uint64(n))
		return bm
	case *RunLengthEncodedColumn:
		if n > 0 && c.IsNull(0) {
			bm.AddRange(0, uint64(n))
		}
		return bm
	}

	for i := range n {
		if c.IsNull(i) {
			bm.Add(uint32(i))
		}
	}

	return bm
}

// selectedPositions copies the ids of sel into pooled scratch space. The caller
// must invoke cleanup once the positions are no longer referenced.
func selectedPositions(c Column, sel *roaring.Bitmap) ([]int32, func(), error) {
	if sel == nil {
		return nil, nil, fmt.Errorf("%w: selection is nil", errs.ErrInvalidArgument)
	}

	if !sel.IsEmpty() && int64(sel.Maximum()) >= int64(c.PositionCount()) {
		return nil, nil, fmt.Errorf("%w: selected position %d exceeds position count %d",
			errs.ErrOutOfBounds, sel.Maximum(), c.PositionCount())
	}

	positions, cleanup := pool.GetInt32Slice(int(sel.GetCardinality()))
	it := sel.Iterator()
	for i := 0; it.HasNext(); i++ {
		positions[i] = int32(it.Next())
	}

	return positions, cleanup, nil
}
