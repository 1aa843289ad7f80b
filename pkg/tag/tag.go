package tag

import (
	"errors"

	"github.com/basictag/basictag-go/pkg/value"
)

// Cell is a caller-owned typed pointer backing a tag: one of *int8, *int16,
// *int32, *int64, *uint8, *uint16, *uint32, *uint64 (also DateTime),
// *float32, *float64, *bool, *string (the three string kinds) or
// *value.Buffer (Bytes). The caller keeps the cell alive for at least the
// tag's registered lifetime. A nil Cell is allowed; such a tag always
// observes null.
type Cell = any

// TimestampFunc returns a millisecond epoch timestamp. The registry never
// reads a clock itself; a TimestampFunc is injected by the caller.
type TimestampFunc func() uint64

// CompareFunc decides whether a candidate value should be considered
// changed relative to the current value. It is only consulted when both
// values are non-null and the tag has been read before. This is where
// deadband and report-by-exception policies plug in.
type CompareFunc func(current, candidate *value.BasicValue) bool

// OnChangeFunc is invoked by the read engine after a change has been
// applied, with current and previous values already updated.
type OnChangeFunc func(tag *Tag)

// ValidateWriteFunc vets a candidate value before the write engine touches
// the backing cell. Returning false rejects the write.
type ValidateWriteFunc func(candidate *value.BasicValue) bool

// FindFunc is a predicate over tags used by Registry.Find.
type FindFunc func(tag *Tag) bool

// TagFunc is applied to each tag by Registry.Each.
type TagFunc func(tag *Tag)

// Tag errors.
var (
	ErrNilTag          = errors.New("tag is nil")
	ErrNilCallback     = errors.New("callback is nil")
	ErrNilValue        = errors.New("value is nil")
	ErrInvalidDataType = errors.New("invalid data type")
	ErrTagNotFound     = errors.New("tag not found in registry")
	ErrNoTimestampFunc = errors.New("no timestamp function configured")
	ErrNoCell          = errors.New("tag has no backing cell")
	ErrCellType        = errors.New("cell type does not match tag datatype")
	ErrNotWritable     = errors.New("tag is not writable")
	ErrWriteRejected   = errors.New("write rejected by validator")
	ErrTypeMismatch    = errors.New("value type does not match tag datatype")
)

// Tag is a named, aliased binding between a caller-owned cell and a typed,
// timestamped value record. Name, data type and cell are fixed at creation;
// the data type of the owned value snapshots never changes.
type Tag struct {
	name           string
	alias          int
	cell           Cell
	datatype       value.DataType
	localWritable  bool
	remoteWritable bool
	maxLen         int

	current  value.BasicValue
	previous value.BasicValue

	valueChanged bool
	lastRead     uint64

	compare       CompareFunc
	onChange      OnChangeFunc
	validateWrite ValidateWriteFunc

	reg *Registry
}

// Name returns the tag name.
func (t *Tag) Name() string { return t.name }

// Alias returns the tag's alias. It may differ from the alias requested at
// creation if that alias was already in use.
func (t *Tag) Alias() int { return t.alias }

// Cell returns the caller-owned backing cell.
func (t *Tag) Cell() Cell { return t.cell }

// DataType returns the tag's fixed data type.
func (t *Tag) DataType() value.DataType { return t.datatype }

// LocalWritable reports whether local writes are allowed.
func (t *Tag) LocalWritable() bool { return t.localWritable }

// RemoteWritable reports whether remote writes are allowed.
func (t *Tag) RemoteWritable() bool { return t.remoteWritable }

// MaxLen returns the capacity bound for string and buffer payloads.
func (t *Tag) MaxLen() int { return t.maxLen }

// CurrentValue returns the tag's current value snapshot. The returned
// pointer aliases tag-owned storage: it is updated in place by reads and
// must not be mutated or held across DeleteTag.
func (t *Tag) CurrentValue() *value.BasicValue { return &t.current }

// PreviousValue returns the value the tag held before the last detected
// change. Same aliasing rules as CurrentValue.
func (t *Tag) PreviousValue() *value.BasicValue { return &t.previous }

// ValueChanged reports the result of the most recent read.
func (t *Tag) ValueChanged() bool { return t.valueChanged }

// LastRead returns the timestamp passed to the most recent read, or 0 if
// the tag has never been read.
func (t *Tag) LastRead() uint64 { return t.lastRead }

// SetCompare installs the comparison strategy consulted by the read engine.
func (t *Tag) SetCompare(fn CompareFunc) error {
	if fn == nil {
		return ErrNilCallback
	}
	t.compare = fn
	return nil
}

// SetOnChange installs the change-notification callback. It fires after a
// read has updated both value snapshots.
func (t *Tag) SetOnChange(fn OnChangeFunc) error {
	if fn == nil {
		return ErrNilCallback
	}
	t.onChange = fn
	return nil
}

// SetValidateWrite installs the write-validation callback.
func (t *Tag) SetValidateWrite(fn ValidateWriteFunc) error {
	if fn == nil {
		return ErrNilCallback
	}
	t.validateWrite = fn
	return nil
}
