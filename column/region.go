package column

import (
	"fmt"

	"github.com/arloliu/tsblock/errs"
)

// checkValidRegion validates that [offset, offset+length) lies inside a column
// of positionCount positions.
func checkValidRegion(positionCount, offset, length int) error {
	if offset < 0 || length < 0 || offset > positionCount-length {
		return fmt.Errorf("%w: invalid position %d and length %d in column with %d positions",
			errs.ErrOutOfBounds, offset, length, positionCount)
	}

	return nil
}

// checkValidFromIndex validates the start index of SubColumn and SubColumnCopy.
func checkValidFromIndex(positionCount, fromIndex int) error {
	if fromIndex < 0 || fromIndex > positionCount {
		return fmt.Errorf("%w: fromIndex %d is not valid for column with %d positions",
			errs.ErrOutOfBounds, fromIndex, positionCount)
	}

	return nil
}

// checkValidPositions validates the window positions[offset:offset+length] and
// that every selected position is a valid index into a column of positionCount
// positions.
func checkValidPositions(positions []int32, offset, length, positionCount int) error {
	if offset < 0 || length < 0 || offset > len(positions)-length {
		return fmt.Errorf("%w: invalid offset %d and length %d for %d positions",
			errs.ErrOutOfBounds, offset, length, len(positions))
	}

	for _, p := range positions[offset : offset+length] {
		if p < 0 || int(p) >= positionCount {
			return fmt.Errorf("%w: position %d is not valid for column with %d positions",
				errs.ErrOutOfBounds, p, positionCount)
		}
	}

	return nil
}

// checkValidRange validates the [start, end) range of SetNull.
func checkValidRange(positionCount, start, end int) error {
	if start < 0 || end < start || end > positionCount {
		return fmt.Errorf("%w: invalid range [%d, %d) in column with %d positions",
			errs.ErrOutOfBounds, start, end, positionCount)
	}

	return nil
}

// checkArrayRange validates a window over a backing array at construction time.
func checkArrayRange(arrayOffset, positionCount, valuesLen int, nulls []bool) error {
	if arrayOffset < 0 {
		return fmt.Errorf("%w: arrayOffset is negative", errs.ErrInvalidArgument)
	}

	if positionCount < 0 {
		return fmt.Errorf("%w: positionCount is negative", errs.ErrInvalidArgument)
	}

	if valuesLen-arrayOffset < positionCount {
		return fmt.Errorf("%w: values length %d is less than positionCount %d at offset %d",
			errs.ErrInvalidArgument, valuesLen, positionCount, arrayOffset)
	}

	if nulls != nil && len(nulls)-arrayOffset < positionCount {
		return fmt.Errorf("%w: isNull length %d is less than positionCount %d at offset %d",
			errs.ErrInvalidArgument, len(nulls), positionCount, arrayOffset)
	}

	return nil
}
