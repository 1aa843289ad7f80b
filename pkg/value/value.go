package value

import (
	"bytes"
	"errors"
)

// Allocation errors.
var (
	ErrNilValue         = errors.New("value is nil")
	ErrAlreadyAllocated = errors.New("payload is already allocated")
	ErrNotAllocated     = errors.New("payload is not allocated")
)

// payload holds the storage for one value. Only the slot matching the
// discriminant on the enclosing BasicValue is meaningful; the typed
// accessors on BasicValue enforce that.
type payload struct {
	i64 int64   // Int8, Int16, Int32, Int64
	u64 uint64  // UInt8..UInt64, DateTime
	f32 float32 // Float
	f64 float64 // Double
	b   bool    // Boolean
	str []byte  // String, Text, UUID; owned, capacity maxLen+1, NUL terminated
	buf *Buffer // Bytes; owned
}

// BasicValue is a timestamped, nullable snapshot of one typed value.
// A Timestamp of 0 means the value has never been read.
// When IsNull is true the payload must not be read; the typed accessors
// return the zero value in that case.
type BasicValue struct {
	Timestamp uint64
	Type      DataType
	IsNull    bool
	v         payload
}

// NewNull returns a null BasicValue of the given type.
func NewNull(timestamp uint64, datatype DataType) BasicValue {
	return BasicValue{Timestamp: timestamp, Type: datatype, IsNull: true}
}

// NewInt8 returns a non-null int8 value.
func NewInt8(timestamp uint64, v int8) BasicValue {
	return BasicValue{Timestamp: timestamp, Type: DataTypeInt8, v: payload{i64: int64(v)}}
}

// NewInt16 returns a non-null int16 value.
func NewInt16(timestamp uint64, v int16) BasicValue {
	return BasicValue{Timestamp: timestamp, Type: DataTypeInt16, v: payload{i64: int64(v)}}
}

// NewInt32 returns a non-null int32 value.
func NewInt32(timestamp uint64, v int32) BasicValue {
	return BasicValue{Timestamp: timestamp, Type: DataTypeInt32, v: payload{i64: int64(v)}}
}

// NewInt64 returns a non-null int64 value.
func NewInt64(timestamp uint64, v int64) BasicValue {
	return BasicValue{Timestamp: timestamp, Type: DataTypeInt64, v: payload{i64: v}}
}

// NewUInt8 returns a non-null uint8 value.
func NewUInt8(timestamp uint64, v uint8) BasicValue {
	return BasicValue{Timestamp: timestamp, Type: DataTypeUInt8, v: payload{u64: uint64(v)}}
}

// NewUInt16 returns a non-null uint16 value.
func NewUInt16(timestamp uint64, v uint16) BasicValue {
	return BasicValue{Timestamp: timestamp, Type: DataTypeUInt16, v: payload{u64: uint64(v)}}
}

// NewUInt32 returns a non-null uint32 value.
func NewUInt32(timestamp uint64, v uint32) BasicValue {
	return BasicValue{Timestamp: timestamp, Type: DataTypeUInt32, v: payload{u64: uint64(v)}}
}

// NewUInt64 returns a non-null uint64 value.
func NewUInt64(timestamp uint64, v uint64) BasicValue {
	return BasicValue{Timestamp: timestamp, Type: DataTypeUInt64, v: payload{u64: v}}
}

// NewDateTime returns a non-null datetime value (epoch milliseconds).
func NewDateTime(timestamp uint64, epochMillis uint64) BasicValue {
	return BasicValue{Timestamp: timestamp, Type: DataTypeDateTime, v: payload{u64: epochMillis}}
}

// NewFloat returns a non-null float value.
func NewFloat(timestamp uint64, v float32) BasicValue {
	return BasicValue{Timestamp: timestamp, Type: DataTypeFloat, v: payload{f32: v}}
}

// NewDouble returns a non-null double value.
func NewDouble(timestamp uint64, v float64) BasicValue {
	return BasicValue{Timestamp: timestamp, Type: DataTypeDouble, v: payload{f64: v}}
}

// NewBool returns a non-null boolean value.
func NewBool(timestamp uint64, v bool) BasicValue {
	return BasicValue{Timestamp: timestamp, Type: DataTypeBoolean, v: payload{b: v}}
}

// NewString returns a non-null string-kind value holding its own copy of s.
// datatype must be one of the three string kinds.
func NewString(timestamp uint64, datatype DataType, s string) BasicValue {
	str := make([]byte, len(s)+1)
	copy(str, s)
	return BasicValue{Timestamp: timestamp, Type: datatype, v: payload{str: str}}
}

// NewBytes returns a non-null bytes value referencing buf. The buffer is
// not copied; copies into owned storage happen when the value is copied
// with CopyInto.
func NewBytes(timestamp uint64, buf *Buffer) BasicValue {
	return BasicValue{Timestamp: timestamp, Type: DataTypeBytes, v: payload{buf: buf}}
}

// Typed accessors. Each returns the zero value unless the discriminant
// matches and the value is not null.

// Int8 returns the int8 payload.
func (b *BasicValue) Int8() int8 {
	if b.Type != DataTypeInt8 || b.IsNull {
		return 0
	}
	return int8(b.v.i64)
}

// Int16 returns the int16 payload.
func (b *BasicValue) Int16() int16 {
	if b.Type != DataTypeInt16 || b.IsNull {
		return 0
	}
	return int16(b.v.i64)
}

// Int32 returns the int32 payload.
func (b *BasicValue) Int32() int32 {
	if b.Type != DataTypeInt32 || b.IsNull {
		return 0
	}
	return int32(b.v.i64)
}

// Int64 returns the int64 payload.
func (b *BasicValue) Int64() int64 {
	if b.Type != DataTypeInt64 || b.IsNull {
		return 0
	}
	return b.v.i64
}

// UInt8 returns the uint8 payload.
func (b *BasicValue) UInt8() uint8 {
	if b.Type != DataTypeUInt8 || b.IsNull {
		return 0
	}
	return uint8(b.v.u64)
}

// UInt16 returns the uint16 payload.
func (b *BasicValue) UInt16() uint16 {
	if b.Type != DataTypeUInt16 || b.IsNull {
		return 0
	}
	return uint16(b.v.u64)
}

// UInt32 returns the uint32 payload.
func (b *BasicValue) UInt32() uint32 {
	if b.Type != DataTypeUInt32 || b.IsNull {
		return 0
	}
	return uint32(b.v.u64)
}

// UInt64 returns the uint64 payload. DateTime values are carried here too.
func (b *BasicValue) UInt64() uint64 {
	if (b.Type != DataTypeUInt64 && b.Type != DataTypeDateTime) || b.IsNull {
		return 0
	}
	return b.v.u64
}

// Float returns the float32 payload.
func (b *BasicValue) Float() float32 {
	if b.Type != DataTypeFloat || b.IsNull {
		return 0
	}
	return b.v.f32
}

// Double returns the float64 payload.
func (b *BasicValue) Double() float64 {
	if b.Type != DataTypeDouble || b.IsNull {
		return 0
	}
	return b.v.f64
}

// Bool returns the boolean payload.
func (b *BasicValue) Bool() bool {
	if b.Type != DataTypeBoolean || b.IsNull {
		return false
	}
	return b.v.b
}

// StringValue returns the string payload up to its terminator.
func (b *BasicValue) StringValue() string {
	if !b.Type.IsStringKind() || b.IsNull {
		return ""
	}
	return string(b.stringContent())
}

// BytesValue returns the owned buffer for a bytes value, or nil.
func (b *BasicValue) BytesValue() *Buffer {
	if b.Type != DataTypeBytes || b.IsNull {
		return nil
	}
	return b.v.buf
}

// stringContent returns the payload bytes before the terminator.
func (b *BasicValue) stringContent() []byte {
	if b.v.str == nil {
		return nil
	}
	if i := bytes.IndexByte(b.v.str, 0); i >= 0 {
		return b.v.str[:i]
	}
	return b.v.str
}

// Interface returns the payload as a plain Go value, or nil when null.
// Bytes values are rendered as a copy of the written bytes.
func (b *BasicValue) Interface() any {
	if b.IsNull {
		return nil
	}
	switch b.Type {
	case DataTypeInt8:
		return b.Int8()
	case DataTypeInt16:
		return b.Int16()
	case DataTypeInt32:
		return b.Int32()
	case DataTypeInt64:
		return b.Int64()
	case DataTypeUInt8:
		return b.UInt8()
	case DataTypeUInt16:
		return b.UInt16()
	case DataTypeUInt32:
		return b.UInt32()
	case DataTypeUInt64, DataTypeDateTime:
		return b.v.u64
	case DataTypeFloat:
		return b.Float()
	case DataTypeDouble:
		return b.Double()
	case DataTypeBoolean:
		return b.Bool()
	case DataTypeString, DataTypeText, DataTypeUUID:
		return b.StringValue()
	case DataTypeBytes:
		if b.v.buf == nil {
			return nil
		}
		return append([]byte(nil), b.v.buf.Bytes()...)
	default:
		return nil
	}
}

// AllocateString reserves capacity+1 zero-filled bytes for a string-kind
// payload. A capacity below 1 is valid and leaves the payload without
// backing storage; such a value reads as empty. Allocating over an existing
// allocation is rejected so re-initialization cannot leak the old buffer.
func (b *BasicValue) AllocateString(capacity int) error {
	if b == nil {
		return ErrNilValue
	}
	if b.v.str != nil {
		return ErrAlreadyAllocated
	}
	if capacity < 1 {
		return nil
	}
	b.v.str = make([]byte, capacity+1)
	return nil
}

// DeallocateString releases the string payload. Fails if there is nothing
// to release.
func (b *BasicValue) DeallocateString() error {
	if b == nil {
		return ErrNilValue
	}
	if b.v.str == nil {
		return ErrNotAllocated
	}
	b.v.str = nil
	return nil
}

// AllocateBuffer reserves an owned Buffer of the given capacity for a bytes
// payload. A capacity below 1 yields a buffer with no backing storage.
// Allocating over an existing allocation is rejected.
func (b *BasicValue) AllocateBuffer(capacity int) error {
	if b == nil {
		return ErrNilValue
	}
	if b.v.buf != nil {
		return ErrAlreadyAllocated
	}
	b.v.buf = NewBuffer(capacity)
	return nil
}

// DeallocateBuffer releases the bytes payload. Fails if there is nothing
// to release.
func (b *BasicValue) DeallocateBuffer() error {
	if b == nil {
		return ErrNilValue
	}
	if b.v.buf == nil {
		return ErrNotAllocated
	}
	b.v.buf = nil
	return nil
}

// SetString performs a bounded copy of s into an allocated string payload
// and clears the null flag. The copy truncates at the payload capacity.
func (b *BasicValue) SetString(s string) error {
	if b == nil {
		return ErrNilValue
	}
	if b.v.str == nil {
		return ErrNotAllocated
	}
	if err := copyString(s, b.v.str, len(b.v.str)-1); err != nil {
		return err
	}
	b.IsNull = false
	return nil
}

// copyString copies at most maxLen bytes of src into dst and re-terminates
// at the true copied length. An empty src copies nothing but still reports
// success. dst must have room for maxLen+1 bytes.
func copyString(src string, dst []byte, maxLen int) error {
	if dst == nil {
		return ErrNotAllocated
	}
	if maxLen < 1 {
		return ErrNoCapacity
	}
	if src == "" {
		return nil
	}
	n := len(src)
	if n > maxLen {
		n = maxLen
	}
	if n >= len(dst) {
		n = len(dst) - 1
	}
	copy(dst, src[:n])
	dst[n] = 0
	return nil
}

// CopyInto deep-copies b into dst, honoring maxLen as the bound for
// string payloads. Timestamp, type and null flag are always copied; a null
// source copies nothing else. Bytes payloads are copied into dst's owned
// buffer, truncating at its allocated capacity.
func (b *BasicValue) CopyInto(dst *BasicValue, maxLen int) error {
	if b == nil || dst == nil {
		return ErrNilValue
	}

	dst.Timestamp = b.Timestamp
	dst.Type = b.Type
	dst.IsNull = b.IsNull

	if b.IsNull {
		return nil
	}

	switch b.Type {
	case DataTypeInt8, DataTypeInt16, DataTypeInt32, DataTypeInt64:
		dst.v.i64 = b.v.i64
	case DataTypeUInt8, DataTypeUInt16, DataTypeUInt32, DataTypeUInt64, DataTypeDateTime:
		dst.v.u64 = b.v.u64
	case DataTypeFloat:
		dst.v.f32 = b.v.f32
	case DataTypeDouble:
		dst.v.f64 = b.v.f64
	case DataTypeBoolean:
		dst.v.b = b.v.b
	case DataTypeString, DataTypeText, DataTypeUUID:
		return copyString(string(b.stringContent()), dst.v.str, maxLen)
	case DataTypeBytes:
		if dst.v.buf == nil {
			return ErrNotAllocated
		}
		return dst.v.buf.CopyFrom(b.v.buf)
	default:
		dst.IsNull = true
	}
	return nil
}

// Equal reports whether two values of the same type carry the same payload.
// Values of different types are never equal. String kinds compare
// lexicographically; bytes compare written length then byte-for-byte.
// Null flags must match for equality; two nulls of the same type are equal.
func (b *BasicValue) Equal(other *BasicValue) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.Type != other.Type || b.IsNull != other.IsNull {
		return false
	}
	if b.IsNull {
		return true
	}
	switch b.Type {
	case DataTypeInt8, DataTypeInt16, DataTypeInt32, DataTypeInt64:
		return b.v.i64 == other.v.i64
	case DataTypeUInt8, DataTypeUInt16, DataTypeUInt32, DataTypeUInt64, DataTypeDateTime:
		return b.v.u64 == other.v.u64
	case DataTypeFloat:
		return b.v.f32 == other.v.f32
	case DataTypeDouble:
		return b.v.f64 == other.v.f64
	case DataTypeBoolean:
		return b.v.b == other.v.b
	case DataTypeString, DataTypeText, DataTypeUUID:
		return bytes.Equal(b.stringContent(), other.stringContent())
	case DataTypeBytes:
		return b.v.buf.Equal(other.v.buf)
	default:
		return false
	}
}
