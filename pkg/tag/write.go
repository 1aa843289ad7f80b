package tag

import "github.com/basictag/basictag-go/pkg/value"

// Write pushes a candidate value into the tag's backing cell.
//
// Preconditions: the cell must be present, at least one writability flag
// must be set (the engine does not distinguish local from remote - that
// policy is the caller's), and an installed validator must accept the
// candidate. A failed precondition aborts with no memory effect.
//
// String and buffer writes are bounded by the tag's capacity; a null or
// empty candidate clears the cell. Write never touches the tag's value
// snapshots or timestamps - those only move on a subsequent Read.
func (t *Tag) Write(v *value.BasicValue) error {
	if t == nil {
		return ErrNilTag
	}
	err := t.writeCell(v)
	if t.reg != nil {
		if err != nil {
			t.reg.logWrite(t, false, err.Error())
		} else {
			t.reg.logWrite(t, true, "")
		}
	}
	return err
}

func (t *Tag) writeCell(v *value.BasicValue) error {
	if v == nil {
		return ErrNilValue
	}
	if t.cell == nil {
		return ErrNoCell
	}
	if !t.localWritable && !t.remoteWritable {
		return ErrNotWritable
	}
	if !v.IsNull && v.Type != t.datatype {
		return ErrTypeMismatch
	}
	if t.validateWrite != nil && !t.validateWrite(v) {
		return ErrWriteRejected
	}

	switch t.datatype {
	case value.DataTypeInt8:
		p, ok := t.cell.(*int8)
		if !ok || p == nil {
			return ErrCellType
		}
		*p = v.Int8()
	case value.DataTypeInt16:
		p, ok := t.cell.(*int16)
		if !ok || p == nil {
			return ErrCellType
		}
		*p = v.Int16()
	case value.DataTypeInt32:
		p, ok := t.cell.(*int32)
		if !ok || p == nil {
			return ErrCellType
		}
		*p = v.Int32()
	case value.DataTypeInt64:
		p, ok := t.cell.(*int64)
		if !ok || p == nil {
			return ErrCellType
		}
		*p = v.Int64()
	case value.DataTypeUInt8:
		p, ok := t.cell.(*uint8)
		if !ok || p == nil {
			return ErrCellType
		}
		*p = v.UInt8()
	case value.DataTypeUInt16:
		p, ok := t.cell.(*uint16)
		if !ok || p == nil {
			return ErrCellType
		}
		*p = v.UInt16()
	case value.DataTypeUInt32:
		p, ok := t.cell.(*uint32)
		if !ok || p == nil {
			return ErrCellType
		}
		*p = v.UInt32()
	case value.DataTypeUInt64, value.DataTypeDateTime:
		p, ok := t.cell.(*uint64)
		if !ok || p == nil {
			return ErrCellType
		}
		*p = v.UInt64()
	case value.DataTypeFloat:
		p, ok := t.cell.(*float32)
		if !ok || p == nil {
			return ErrCellType
		}
		*p = v.Float()
	case value.DataTypeDouble:
		p, ok := t.cell.(*float64)
		if !ok || p == nil {
			return ErrCellType
		}
		*p = v.Double()
	case value.DataTypeBoolean:
		p, ok := t.cell.(*bool)
		if !ok || p == nil {
			return ErrCellType
		}
		*p = v.Bool()
	case value.DataTypeString, value.DataTypeText, value.DataTypeUUID:
		p, ok := t.cell.(*string)
		if !ok || p == nil {
			return ErrCellType
		}
		s := v.StringValue()
		if v.IsNull || s == "" {
			*p = ""
			return nil
		}
		if t.maxLen < 1 {
			return value.ErrNoCapacity
		}
		if len(s) > t.maxLen {
			s = s[:t.maxLen]
		}
		*p = s
	case value.DataTypeBytes:
		p, ok := t.cell.(*value.Buffer)
		if !ok || p == nil {
			return ErrCellType
		}
		buf := v.BytesValue()
		if v.IsNull || buf == nil || buf.Written() < 1 {
			p.Reset()
			return nil
		}
		return p.CopyFrom(buf)
	default:
		return ErrInvalidDataType
	}
	return nil
}
