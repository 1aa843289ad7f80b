package tag

import "github.com/basictag/basictag-go/pkg/value"

// Read marshals a candidate value from the backing cell, decides whether
// it represents a change, and on change shifts current into previous and
// the candidate into current before firing the on-change callback.
//
// The decision sequence:
//   - the first-ever read (current timestamp still 0) always reports a
//     change, whatever the cell holds
//   - a null/non-null transition is always a change; null-to-null never is
//   - otherwise the tag's comparison strategy decides (DefaultCompare
//     unless one was installed)
//
// When no change is detected the snapshots are left untouched and no
// callback fires. The timestamp is recorded as LastRead unconditionally.
func (t *Tag) Read(timestamp uint64) bool {
	if t == nil {
		return false
	}
	t.lastRead = timestamp

	candidate := t.marshalCandidate(timestamp)

	changed := true
	switch {
	case t.current.Timestamp == 0:
		// First observation is always reported.
	case t.current.IsNull || candidate.IsNull:
		changed = t.current.IsNull != candidate.IsNull
	default:
		compare := t.compare
		if compare == nil {
			compare = DefaultCompare
		}
		changed = compare(&t.current, &candidate)
	}
	t.valueChanged = changed
	if !changed {
		return false
	}

	// Bounded deep copies: current shifts into previous, then the
	// candidate becomes current.
	_ = t.current.CopyInto(&t.previous, t.maxLen)
	_ = candidate.CopyInto(&t.current, t.maxLen)

	if t.onChange != nil {
		t.onChange(t)
	}
	if t.reg != nil {
		t.reg.logChange(t, timestamp)
	}
	return true
}

// marshalCandidate reads the backing cell according to the tag's data
// type. An absent or type-mismatched cell yields a null candidate, as does
// an empty or unbounded (maxLen < 1) string cell and an unbounded buffer
// cell. String and buffer cells are referenced in place here; the bounded
// copy into tag-owned storage happens only if the value is kept.
func (t *Tag) marshalCandidate(timestamp uint64) value.BasicValue {
	switch t.datatype {
	case value.DataTypeInt8:
		if p, ok := t.cell.(*int8); ok && p != nil {
			return value.NewInt8(timestamp, *p)
		}
	case value.DataTypeInt16:
		if p, ok := t.cell.(*int16); ok && p != nil {
			return value.NewInt16(timestamp, *p)
		}
	case value.DataTypeInt32:
		if p, ok := t.cell.(*int32); ok && p != nil {
			return value.NewInt32(timestamp, *p)
		}
	case value.DataTypeInt64:
		if p, ok := t.cell.(*int64); ok && p != nil {
			return value.NewInt64(timestamp, *p)
		}
	case value.DataTypeUInt8:
		if p, ok := t.cell.(*uint8); ok && p != nil {
			return value.NewUInt8(timestamp, *p)
		}
	case value.DataTypeUInt16:
		if p, ok := t.cell.(*uint16); ok && p != nil {
			return value.NewUInt16(timestamp, *p)
		}
	case value.DataTypeUInt32:
		if p, ok := t.cell.(*uint32); ok && p != nil {
			return value.NewUInt32(timestamp, *p)
		}
	case value.DataTypeUInt64:
		if p, ok := t.cell.(*uint64); ok && p != nil {
			return value.NewUInt64(timestamp, *p)
		}
	case value.DataTypeDateTime:
		if p, ok := t.cell.(*uint64); ok && p != nil {
			return value.NewDateTime(timestamp, *p)
		}
	case value.DataTypeFloat:
		if p, ok := t.cell.(*float32); ok && p != nil {
			return value.NewFloat(timestamp, *p)
		}
	case value.DataTypeDouble:
		if p, ok := t.cell.(*float64); ok && p != nil {
			return value.NewDouble(timestamp, *p)
		}
	case value.DataTypeBoolean:
		if p, ok := t.cell.(*bool); ok && p != nil {
			return value.NewBool(timestamp, *p)
		}
	case value.DataTypeString, value.DataTypeText, value.DataTypeUUID:
		if p, ok := t.cell.(*string); ok && p != nil && t.maxLen >= 1 && *p != "" {
			return value.NewString(timestamp, t.datatype, *p)
		}
	case value.DataTypeBytes:
		if p, ok := t.cell.(*value.Buffer); ok && p != nil && t.maxLen >= 1 {
			return value.NewBytes(timestamp, p)
		}
	}
	return value.NewNull(timestamp, t.datatype)
}
