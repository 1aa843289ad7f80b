package value

// DataType identifies the type of a tag value.
//
// The numeric values match the Sparkplug 3 metric type indices; gaps in the
// sequence correspond to types that are not implemented (dataset, file,
// template, property sets, arrays).
type DataType uint8

const (
	DataTypeInt8     DataType = 1
	DataTypeInt16    DataType = 2
	DataTypeInt32    DataType = 3
	DataTypeInt64    DataType = 4
	DataTypeUInt8    DataType = 5
	DataTypeUInt16   DataType = 6
	DataTypeUInt32   DataType = 7
	DataTypeUInt64   DataType = 8
	DataTypeFloat    DataType = 9
	DataTypeDouble   DataType = 10
	DataTypeBoolean  DataType = 11
	DataTypeString   DataType = 12
	DataTypeDateTime DataType = 13 // uint64, epoch milliseconds
	DataTypeText     DataType = 14
	DataTypeUUID     DataType = 15 // a string of 36 characters
	DataTypeBytes    DataType = 17
)

// UUIDStringLength is the fixed capacity used for UUID tags.
const UUIDStringLength = 36

// String returns the data type name.
func (d DataType) String() string {
	switch d {
	case DataTypeInt8:
		return "int8"
	case DataTypeInt16:
		return "int16"
	case DataTypeInt32:
		return "int32"
	case DataTypeInt64:
		return "int64"
	case DataTypeUInt8:
		return "uint8"
	case DataTypeUInt16:
		return "uint16"
	case DataTypeUInt32:
		return "uint32"
	case DataTypeUInt64:
		return "uint64"
	case DataTypeFloat:
		return "float"
	case DataTypeDouble:
		return "double"
	case DataTypeBoolean:
		return "boolean"
	case DataTypeString:
		return "string"
	case DataTypeDateTime:
		return "datetime"
	case DataTypeText:
		return "text"
	case DataTypeUUID:
		return "uuid"
	case DataTypeBytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// Valid returns true if d is one of the implemented data types.
func (d DataType) Valid() bool {
	switch d {
	case DataTypeInt8, DataTypeInt16, DataTypeInt32, DataTypeInt64,
		DataTypeUInt8, DataTypeUInt16, DataTypeUInt32, DataTypeUInt64,
		DataTypeFloat, DataTypeDouble, DataTypeBoolean,
		DataTypeString, DataTypeDateTime, DataTypeText, DataTypeUUID,
		DataTypeBytes:
		return true
	default:
		return false
	}
}

// IsStringKind returns true for the three string-like types.
func (d DataType) IsStringKind() bool {
	return d == DataTypeString || d == DataTypeText || d == DataTypeUUID
}

// IsNumeric returns true for the integer and floating point types.
// DateTime counts as numeric since it is carried as uint64.
func (d DataType) IsNumeric() bool {
	switch d {
	case DataTypeInt8, DataTypeInt16, DataTypeInt32, DataTypeInt64,
		DataTypeUInt8, DataTypeUInt16, DataTypeUInt32, DataTypeUInt64,
		DataTypeFloat, DataTypeDouble, DataTypeDateTime:
		return true
	default:
		return false
	}
}
