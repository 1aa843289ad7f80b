package tag

import "github.com/basictag/basictag-go/pkg/value"

// Convenience constructors, one per data type. Fixed-width types have no
// capacity bound; UUID tags are fixed at value.UUIDStringLength.

// CreateInt8Tag creates an int8 tag.
func (r *Registry) CreateInt8Tag(name string, cell *int8, alias int, localWritable, remoteWritable bool) (*Tag, error) {
	return r.CreateTag(name, cell, alias, value.DataTypeInt8, localWritable, remoteWritable, 0)
}

// CreateInt16Tag creates an int16 tag.
func (r *Registry) CreateInt16Tag(name string, cell *int16, alias int, localWritable, remoteWritable bool) (*Tag, error) {
	return r.CreateTag(name, cell, alias, value.DataTypeInt16, localWritable, remoteWritable, 0)
}

// CreateInt32Tag creates an int32 tag.
func (r *Registry) CreateInt32Tag(name string, cell *int32, alias int, localWritable, remoteWritable bool) (*Tag, error) {
	return r.CreateTag(name, cell, alias, value.DataTypeInt32, localWritable, remoteWritable, 0)
}

// CreateInt64Tag creates an int64 tag.
func (r *Registry) CreateInt64Tag(name string, cell *int64, alias int, localWritable, remoteWritable bool) (*Tag, error) {
	return r.CreateTag(name, cell, alias, value.DataTypeInt64, localWritable, remoteWritable, 0)
}

// CreateUInt8Tag creates a uint8 tag.
func (r *Registry) CreateUInt8Tag(name string, cell *uint8, alias int, localWritable, remoteWritable bool) (*Tag, error) {
	return r.CreateTag(name, cell, alias, value.DataTypeUInt8, localWritable, remoteWritable, 0)
}

// CreateUInt16Tag creates a uint16 tag.
func (r *Registry) CreateUInt16Tag(name string, cell *uint16, alias int, localWritable, remoteWritable bool) (*Tag, error) {
	return r.CreateTag(name, cell, alias, value.DataTypeUInt16, localWritable, remoteWritable, 0)
}

// CreateUInt32Tag creates a uint32 tag.
func (r *Registry) CreateUInt32Tag(name string, cell *uint32, alias int, localWritable, remoteWritable bool) (*Tag, error) {
	return r.CreateTag(name, cell, alias, value.DataTypeUInt32, localWritable, remoteWritable, 0)
}

// CreateUInt64Tag creates a uint64 tag.
func (r *Registry) CreateUInt64Tag(name string, cell *uint64, alias int, localWritable, remoteWritable bool) (*Tag, error) {
	return r.CreateTag(name, cell, alias, value.DataTypeUInt64, localWritable, remoteWritable, 0)
}

// CreateDateTimeTag creates a datetime tag (epoch milliseconds as uint64).
func (r *Registry) CreateDateTimeTag(name string, cell *uint64, alias int, localWritable, remoteWritable bool) (*Tag, error) {
	return r.CreateTag(name, cell, alias, value.DataTypeDateTime, localWritable, remoteWritable, 0)
}

// CreateFloatTag creates a float tag.
func (r *Registry) CreateFloatTag(name string, cell *float32, alias int, localWritable, remoteWritable bool) (*Tag, error) {
	return r.CreateTag(name, cell, alias, value.DataTypeFloat, localWritable, remoteWritable, 0)
}

// CreateDoubleTag creates a double tag.
func (r *Registry) CreateDoubleTag(name string, cell *float64, alias int, localWritable, remoteWritable bool) (*Tag, error) {
	return r.CreateTag(name, cell, alias, value.DataTypeDouble, localWritable, remoteWritable, 0)
}

// CreateBoolTag creates a boolean tag.
func (r *Registry) CreateBoolTag(name string, cell *bool, alias int, localWritable, remoteWritable bool) (*Tag, error) {
	return r.CreateTag(name, cell, alias, value.DataTypeBoolean, localWritable, remoteWritable, 0)
}

// CreateStringTag creates a string tag with the given capacity bound.
func (r *Registry) CreateStringTag(name string, cell *string, alias int, localWritable, remoteWritable bool, maxLen int) (*Tag, error) {
	return r.CreateTag(name, cell, alias, value.DataTypeString, localWritable, remoteWritable, maxLen)
}

// CreateTextTag creates a text tag with the given capacity bound.
func (r *Registry) CreateTextTag(name string, cell *string, alias int, localWritable, remoteWritable bool, maxLen int) (*Tag, error) {
	return r.CreateTag(name, cell, alias, value.DataTypeText, localWritable, remoteWritable, maxLen)
}

// CreateUUIDTag creates a UUID tag (36-character string).
func (r *Registry) CreateUUIDTag(name string, cell *string, alias int, localWritable, remoteWritable bool) (*Tag, error) {
	return r.CreateTag(name, cell, alias, value.DataTypeUUID, localWritable, remoteWritable, value.UUIDStringLength)
}

// CreateBytesTag creates a byte-buffer tag with the given capacity bound.
func (r *Registry) CreateBytesTag(name string, cell *value.Buffer, alias int, localWritable, remoteWritable bool, maxLen int) (*Tag, error) {
	return r.CreateTag(name, cell, alias, value.DataTypeBytes, localWritable, remoteWritable, maxLen)
}
