package tag

import "github.com/basictag/basictag-go/pkg/value"

// DefaultCompare treats any payload difference as a change: numerics by
// value, strings lexicographically, byte buffers by written length then
// byte-for-byte.
func DefaultCompare(current, candidate *value.BasicValue) bool {
	return !current.Equal(candidate)
}

// DeadbandCompare returns a comparison strategy that suppresses changes
// whose absolute delta does not exceed width. Non-numeric tags fall back
// to DefaultCompare.
func DeadbandCompare(width float64) CompareFunc {
	return func(current, candidate *value.BasicValue) bool {
		cur, okCur := numericValue(current)
		cand, okCand := numericValue(candidate)
		if !okCur || !okCand {
			return DefaultCompare(current, candidate)
		}
		delta := cand - cur
		if delta < 0 {
			delta = -delta
		}
		return delta > width
	}
}

// numericValue renders a numeric payload as float64 for deadband math.
func numericValue(v *value.BasicValue) (float64, bool) {
	if v == nil || v.IsNull {
		return 0, false
	}
	switch v.Type {
	case value.DataTypeInt8:
		return float64(v.Int8()), true
	case value.DataTypeInt16:
		return float64(v.Int16()), true
	case value.DataTypeInt32:
		return float64(v.Int32()), true
	case value.DataTypeInt64:
		return float64(v.Int64()), true
	case value.DataTypeUInt8:
		return float64(v.UInt8()), true
	case value.DataTypeUInt16:
		return float64(v.UInt16()), true
	case value.DataTypeUInt32:
		return float64(v.UInt32()), true
	case value.DataTypeUInt64, value.DataTypeDateTime:
		return float64(v.UInt64()), true
	case value.DataTypeFloat:
		return float64(v.Float()), true
	case value.DataTypeDouble:
		return v.Double(), true
	default:
		return 0, false
	}
}
