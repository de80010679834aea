package column

import (
	"fmt"

	"github.com/arloliu/tsblock/errs"
)

func typeMismatch(dataType DataType, accessor string) error {
	return fmt.Errorf("%w: %s column does not support %s", errs.ErrTypeMismatch, dataType, accessor)
}

func unsupported(encoding Encoding, op string) error {
	return fmt.Errorf("%w: %s is not supported by %s columns", errs.ErrUnsupported, op, encoding)
}

// mismatchAccessors provides every typed accessor failing with
// errs.ErrTypeMismatch. Array columns embed it and override the accessors their
// data type supports.
type mismatchAccessors struct {
	dataType DataType
}

func (m mismatchAccessors) Bool(int) bool       { panic(typeMismatch(m.dataType, "Bool")) }
func (m mismatchAccessors) Int32(int) int32     { panic(typeMismatch(m.dataType, "Int32")) }
func (m mismatchAccessors) Int64(int) int64     { panic(typeMismatch(m.dataType, "Int64")) }
func (m mismatchAccessors) Float32(int) float32 { panic(typeMismatch(m.dataType, "Float32")) }
func (m mismatchAccessors) Float64(int) float64 { panic(typeMismatch(m.dataType, "Float64")) }
func (m mismatchAccessors) Binary(int) Binary   { panic(typeMismatch(m.dataType, "Binary")) }

func (m mismatchAccessors) Bools() ([]bool, error) {
	return nil, typeMismatch(m.dataType, "Bools")
}

func (m mismatchAccessors) Int32s() ([]int32, error) {
	return nil, typeMismatch(m.dataType, "Int32s")
}

func (m mismatchAccessors) Int64s() ([]int64, error) {
	return nil, typeMismatch(m.dataType, "Int64s")
}

func (m mismatchAccessors) Float32s() ([]float32, error) {
	return nil, typeMismatch(m.dataType, "Float32s")
}

func (m mismatchAccessors) Float64s() ([]float64, error) {
	return nil, typeMismatch(m.dataType, "Float64s")
}

func (m mismatchAccessors) Binaries() ([]Binary, error) {
	return nil, typeMismatch(m.dataType, "Binaries")
}
