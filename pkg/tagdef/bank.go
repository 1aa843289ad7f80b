package tagdef

import (
	"errors"
	"fmt"

	"github.com/basictag/basictag-go/pkg/tag"
	"github.com/basictag/basictag-go/pkg/value"
)

// Instantiation errors.
var (
	ErrBadInitial  = errors.New("initial value does not fit data type")
	ErrNilRegistry = errors.New("registry is nil")
)

// Bank owns the backing cells for tags created from a definition file.
// Cells stay valid for the lifetime of the Bank; deleting the tags does not
// release the cells.
type Bank struct {
	cells map[string]tag.Cell
	tags  map[string]*tag.Tag
}

// Cell returns the backing cell for a named tag, or nil. The result is a
// typed pointer (*int32, *string, *value.Buffer, ...).
func (b *Bank) Cell(name string) tag.Cell {
	return b.cells[name]
}

// Tag returns the created tag for a name, or nil.
func (b *Bank) Tag(name string) *tag.Tag {
	return b.tags[name]
}

// Names returns the names of all tags in the bank.
func (b *Bank) Names() []string {
	names := make([]string, 0, len(b.tags))
	for name := range b.tags {
		names = append(names, name)
	}
	return names
}

// Instantiate creates one tag per definition on the registry, each backed by
// a cell owned by the returned Bank. Initial values are stored into the
// cells before any read, so the first read reports them as the first change.
// On failure every tag created so far is deleted and the error names the
// offending definition.
func (f *File) Instantiate(reg *tag.Registry) (*Bank, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	bank := &Bank{
		cells: make(map[string]tag.Cell, len(f.Tags)),
		tags:  make(map[string]*tag.Tag, len(f.Tags)),
	}
	for i := range f.Tags {
		def := &f.Tags[i]
		if err := bank.add(reg, def); err != nil {
			bank.rollback(reg)
			return nil, fmt.Errorf("tag %q: %w", def.Name, err)
		}
	}
	return bank, nil
}

func (b *Bank) add(reg *tag.Registry, def *Definition) error {
	dt, err := def.DataType()
	if err != nil {
		return err
	}

	cell := newCell(dt, def.MaxLen)
	if def.Initial != nil {
		if err := setInitial(cell, dt, def.Initial); err != nil {
			return err
		}
	}

	created, err := reg.CreateTag(def.Name, cell, def.Alias, dt,
		def.LocalWritable, def.RemoteWritable, def.MaxLen)
	if err != nil {
		return err
	}
	if def.Validate == "uuid" {
		if err := created.SetValidateWrite(tag.ValidateUUID); err != nil {
			_ = reg.DeleteTag(created)
			return err
		}
	}

	b.cells[def.Name] = cell
	b.tags[def.Name] = created
	return nil
}

func (b *Bank) rollback(reg *tag.Registry) {
	for name, created := range b.tags {
		_ = reg.DeleteTag(created)
		delete(b.tags, name)
		delete(b.cells, name)
	}
}

// newCell allocates a zero-valued cell for a data type.
func newCell(dt value.DataType, maxLen int) tag.Cell {
	switch dt {
	case value.DataTypeInt8:
		return new(int8)
	case value.DataTypeInt16:
		return new(int16)
	case value.DataTypeInt32:
		return new(int32)
	case value.DataTypeInt64:
		return new(int64)
	case value.DataTypeUInt8:
		return new(uint8)
	case value.DataTypeUInt16:
		return new(uint16)
	case value.DataTypeUInt32:
		return new(uint32)
	case value.DataTypeUInt64, value.DataTypeDateTime:
		return new(uint64)
	case value.DataTypeFloat:
		return new(float32)
	case value.DataTypeDouble:
		return new(float64)
	case value.DataTypeBoolean:
		return new(bool)
	case value.DataTypeString, value.DataTypeText:
		return new(string)
	case value.DataTypeUUID:
		return new(string)
	case value.DataTypeBytes:
		return value.NewBuffer(maxLen)
	default:
		return nil
	}
}

// setInitial stores a decoded YAML value into a typed cell. YAML decodes
// scalars as int, float64, bool or string; integers are accepted for the
// float types and vice versa when the value is integral.
func setInitial(cell tag.Cell, dt value.DataType, initial any) error {
	switch p := cell.(type) {
	case *int8:
		n, err := toInt64(initial)
		if err != nil {
			return err
		}
		*p = int8(n)
	case *int16:
		n, err := toInt64(initial)
		if err != nil {
			return err
		}
		*p = int16(n)
	case *int32:
		n, err := toInt64(initial)
		if err != nil {
			return err
		}
		*p = int32(n)
	case *int64:
		n, err := toInt64(initial)
		if err != nil {
			return err
		}
		*p = n
	case *uint8:
		n, err := toInt64(initial)
		if err != nil {
			return err
		}
		*p = uint8(n)
	case *uint16:
		n, err := toInt64(initial)
		if err != nil {
			return err
		}
		*p = uint16(n)
	case *uint32:
		n, err := toInt64(initial)
		if err != nil {
			return err
		}
		*p = uint32(n)
	case *uint64:
		n, err := toInt64(initial)
		if err != nil {
			return err
		}
		*p = uint64(n)
	case *float32:
		f, err := toFloat64(initial)
		if err != nil {
			return err
		}
		*p = float32(f)
	case *float64:
		f, err := toFloat64(initial)
		if err != nil {
			return err
		}
		*p = f
	case *bool:
		v, ok := initial.(bool)
		if !ok {
			return fmt.Errorf("%w: %T for %s", ErrBadInitial, initial, dt)
		}
		*p = v
	case *string:
		s, ok := initial.(string)
		if !ok {
			return fmt.Errorf("%w: %T for %s", ErrBadInitial, initial, dt)
		}
		*p = s
	case *value.Buffer:
		s, ok := initial.(string)
		if !ok {
			return fmt.Errorf("%w: %T for %s", ErrBadInitial, initial, dt)
		}
		return p.SetBytes([]byte(s))
	default:
		return fmt.Errorf("%w: %T for %s", ErrBadInitial, initial, dt)
	}
	return nil
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case uint64:
		return int64(n), nil
	case float64:
		if n == float64(int64(n)) {
			return int64(n), nil
		}
	}
	return 0, fmt.Errorf("%w: %T", ErrBadInitial, v)
}

func toFloat64(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	}
	return 0, fmt.Errorf("%w: %T", ErrBadInitial, v)
}
