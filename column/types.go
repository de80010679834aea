package column

type (
	// DataType is the logical type tag of the values held by a column.
	DataType uint8
	// Encoding is the physical representation tag of a column. It is consumed by
	// serializers to pick an on-disk layout.
	Encoding uint8
)

const (
	DataTypeUnknown DataType = 0x0 // DataTypeUnknown is used by columns holding only nulls.
	DataTypeBoolean DataType = 0x1 // DataTypeBoolean represents boolean values.
	DataTypeInt32   DataType = 0x2 // DataTypeInt32 represents 32-bit signed integers.
	DataTypeInt64   DataType = 0x3 // DataTypeInt64 represents 64-bit signed integers.
	DataTypeFloat   DataType = 0x4 // DataTypeFloat represents 32-bit IEEE 754 floats.
	DataTypeDouble  DataType = 0x5 // DataTypeDouble represents 64-bit IEEE 754 floats.
	DataTypeText    DataType = 0x6 // DataTypeText represents variable-length text.
)

const (
	EncodingByteArray   Encoding = 0x0 // EncodingByteArray stores one byte per value (booleans).
	EncodingInt32Array  Encoding = 0x1 // EncodingInt32Array stores 4 bytes per value.
	EncodingInt64Array  Encoding = 0x2 // EncodingInt64Array stores 8 bytes per value.
	EncodingBinaryArray Encoding = 0x3 // EncodingBinaryArray stores length-prefixed byte sequences.
	EncodingRLE         Encoding = 0x4 // EncodingRLE stores a single row repeated PositionCount times.
	EncodingDictionary  Encoding = 0x5 // EncodingDictionary stores ids into a shared dictionary column.
	EncodingNull        Encoding = 0x6 // EncodingNull stores no values; every position is null.
)

func (t DataType) String() string {
	switch t {
	case DataTypeUnknown:
		return "UNKNOWN"
	case DataTypeBoolean:
		return "BOOLEAN"
	case DataTypeInt32:
		return "INT32"
	case DataTypeInt64:
		return "INT64"
	case DataTypeFloat:
		return "FLOAT"
	case DataTypeDouble:
		return "DOUBLE"
	case DataTypeText:
		return "TEXT"
	default:
		return "Unknown"
	}
}

func (e Encoding) String() string {
	switch e {
	case EncodingByteArray:
		return "BYTE_ARRAY"
	case EncodingInt32Array:
		return "INT32_ARRAY"
	case EncodingInt64Array:
		return "INT64_ARRAY"
	case EncodingBinaryArray:
		return "BINARY_ARRAY"
	case EncodingRLE:
		return "RLE"
	case EncodingDictionary:
		return "DICTIONARY"
	case EncodingNull:
		return "NULL"
	default:
		return "Unknown"
	}
}
