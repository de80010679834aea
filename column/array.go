package column

import (
	"fmt"
	"slices"

	"github.com/arloliu/tsblock/errs"
)

// backing is the storage shared by every view over the same array.
//
// Views created by Region and SubColumn point to the same backing, so in-place
// mutations (Reverse, SetNull) through one view are observed by all others,
// including a null bitmap allocated lazily by SetNull. Copies always get a
// new backing.
type backing[T any] struct {
	values []T
	nulls  []bool // nil when no null bitmap was supplied or allocated
}

// array is the (arrayOffset, positionCount) window shared by all fixed-width
// and binary encodings. The wrap function turns a derived window back into the
// concrete column type of the receiver.
type array[T any] struct {
	store         *backing[T]
	arrayOffset   int
	positionCount int
	wrap          func(array[T]) Column
}

func newArray[T any](arrayOffset, positionCount int, nulls []bool, values []T, wrap func(array[T]) Column) (array[T], error) {
	if err := checkArrayRange(arrayOffset, positionCount, len(values), nulls); err != nil {
		return array[T]{}, err
	}

	return array[T]{
		store:         &backing[T]{values: values, nulls: nulls},
		arrayOffset:   arrayOffset,
		positionCount: positionCount,
		wrap:          wrap,
	}, nil
}

// derive returns a window over a new backing holding values and nulls.
func (a *array[T]) derive(values []T, nulls []bool) array[T] {
	return array[T]{
		store:         &backing[T]{values: values, nulls: nulls},
		positionCount: len(values),
		wrap:          a.wrap,
	}
}

// view returns a window over the same backing starting at logical offset.
func (a *array[T]) view(offset, length int) array[T] {
	return array[T]{
		store:         a.store,
		arrayOffset:   a.arrayOffset + offset,
		positionCount: length,
		wrap:          a.wrap,
	}
}

func (a *array[T]) get(position int) T {
	return a.store.values[a.arrayOffset+position]
}

// window returns the visible part of the backing values.
func (a *array[T]) window() []T {
	return a.store.values[a.arrayOffset : a.arrayOffset+a.positionCount]
}

// sizeOfWindow approximates the memory of positionCount values and null flags.
func (a *array[T]) sizeOfWindow() int64 {
	return sizeOfSlice[T](a.positionCount) + sizeOfSlice[bool](a.positionCount)
}

func (a *array[T]) PositionCount() int {
	return a.positionCount
}

func (a *array[T]) MayHaveNull() bool {
	return a.store.nulls != nil
}

func (a *array[T]) IsNull(position int) bool {
	return a.store.nulls != nil && a.store.nulls[a.arrayOffset+position]
}

func (a *array[T]) Region(offset, length int) (Column, error) {
	if err := checkValidRegion(a.positionCount, offset, length); err != nil {
		return nil, err
	}

	return a.wrap(a.view(offset, length)), nil
}

func (a *array[T]) RegionCopy(offset, length int) (Column, error) {
	if err := checkValidRegion(a.positionCount, offset, length); err != nil {
		return nil, err
	}

	return a.wrap(a.copyRange(a.arrayOffset+offset, length)), nil
}

func (a *array[T]) SubColumn(fromIndex int) (Column, error) {
	if err := checkValidFromIndex(a.positionCount, fromIndex); err != nil {
		return nil, err
	}

	return a.Region(fromIndex, a.positionCount-fromIndex)
}

func (a *array[T]) SubColumnCopy(fromIndex int) (Column, error) {
	if err := checkValidFromIndex(a.positionCount, fromIndex); err != nil {
		return nil, err
	}

	return a.RegionCopy(fromIndex, a.positionCount-fromIndex)
}

// copyRange copies length values (and null flags) starting at backing index from.
func (a *array[T]) copyRange(from, length int) array[T] {
	values := make([]T, length)
	copy(values, a.store.values[from:from+length])

	var nulls []bool
	if a.store.nulls != nil {
		nulls = make([]bool, length)
		copy(nulls, a.store.nulls[from:from+length])
	}

	return a.derive(values, nulls)
}

func (a *array[T]) CopyPositions(positions []int32, offset, length int) (Column, error) {
	if err := checkValidPositions(positions, offset, length, a.positionCount); err != nil {
		return nil, err
	}

	selected := positions[offset : offset+length]
	values := make([]T, length)
	for i, p := range selected {
		values[i] = a.store.values[a.arrayOffset+int(p)]
	}

	var nulls []bool
	if a.store.nulls != nil {
		nulls = make([]bool, length)
		for i, p := range selected {
			nulls[i] = a.store.nulls[a.arrayOffset+int(p)]
		}
	}

	return a.wrap(a.derive(values, nulls)), nil
}

func (a *array[T]) Reverse() {
	slices.Reverse(a.window())
	if a.store.nulls != nil {
		slices.Reverse(a.store.nulls[a.arrayOffset : a.arrayOffset+a.positionCount])
	}
}

func (a *array[T]) SetPositionCount(count int) error {
	capacity := len(a.store.values)
	if a.store.nulls != nil {
		capacity = min(capacity, len(a.store.nulls))
	}
	capacity -= a.arrayOffset

	if count < 0 || count > capacity {
		return fmt.Errorf("%w: position count %d exceeds capacity %d", errs.ErrOutOfBounds, count, capacity)
	}
	a.positionCount = count

	return nil
}

func (a *array[T]) SetNull(start, end int) error {
	if err := checkValidRange(a.positionCount, start, end); err != nil {
		return err
	}

	if a.store.nulls == nil {
		a.store.nulls = make([]bool, len(a.store.values))
	}

	for i := a.arrayOffset + start; i < a.arrayOffset+end; i++ {
		a.store.nulls[i] = true
	}

	return nil
}

// convert returns a freshly allocated copy of the whole backing array converted
// to a wider type.
func convert[From, To int32 | int64 | float32 | float64](values []From) []To {
	result := make([]To, len(values))
	for i, v := range values {
		result[i] = To(v)
	}

	return result
}
