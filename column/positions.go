package column

// selectPositions is Positions for array encodings. The receiver becomes the
// dictionary of the result, so no values are copied and the cost is O(length).
func selectPositions(c Column, positions []int32, offset, length int) (Column, error) {
	d, err := NewDictionaryColumn(positions, offset, length, c, NextDictionaryID())
	if err != nil {
		return nil, err
	}

	return d, nil
}

// Materialize returns c in a concrete, non-dictionary encoding. Columns that
// already are concrete are returned unchanged; dictionary columns are copied
// through their dictionary.
func Materialize(c Column) (Column, error) {
	d, ok := c.(*DictionaryColumn)
	if !ok {
		return c, nil
	}

	return d.CopyPositions(sequence(d.PositionCount()), 0, d.PositionCount())
}

func sequence(n int) []int32 {
	positions := make([]int32, n)
	for i := range positions {
		positions[i] = int32(i)
	}

	return positions
}
