package tag

import (
	"github.com/google/uuid"

	"github.com/basictag/basictag-go/pkg/taglog"
	"github.com/basictag/basictag-go/pkg/value"
)

// node is one link in the registry's ownership list.
type node struct {
	tag  *Tag
	next *node
}

// Registry owns a set of tags. Tags are kept in a singly linked list in
// most-recently-created-first order, mirrored by a flat index slice that is
// rebuilt on every insertion and removal so positional lookup stays O(1)
// between mutations.
//
// A Registry is not synchronized; see the package documentation for the
// concurrency contract.
type Registry struct {
	id     string
	head   *node
	count  int
	index  []*Tag
	now    TimestampFunc
	logger taglog.Logger
}

// NewRegistry creates an empty registry with event capture disabled.
func NewRegistry() *Registry {
	return &Registry{
		id:     uuid.NewString(),
		logger: taglog.NoopLogger{},
	}
}

// ID returns the registry's unique identifier, stamped on capture events.
func (r *Registry) ID() string { return r.id }

// SetLogger attaches an event capture sink. Passing nil disables capture.
func (r *Registry) SetLogger(l taglog.Logger) {
	if l == nil {
		l = taglog.NoopLogger{}
	}
	r.logger = l
}

// SetTimestampFunc injects the millisecond timestamp source used by ReadAll.
func (r *Registry) SetTimestampFunc(fn TimestampFunc) error {
	if fn == nil {
		return ErrNilCallback
	}
	r.now = fn
	return nil
}

// CreateTag creates a tag and registers it. The requested alias is silently
// reassigned to NextAlias if it is already in use. For UUID tags maxLen is
// forced to value.UUIDStringLength. Both value snapshots start null with
// the "never read" timestamp sentinel; string and buffer payloads are
// allocated up front with capacity maxLen. A failure leaves nothing
// registered.
func (r *Registry) CreateTag(name string, cell Cell, alias int, datatype value.DataType, localWritable, remoteWritable bool, maxLen int) (*Tag, error) {
	if !datatype.Valid() {
		return nil, ErrInvalidDataType
	}
	if datatype == value.DataTypeUUID {
		maxLen = value.UUIDStringLength
	}
	if maxLen < 0 {
		maxLen = 0
	}

	requested := alias
	if !r.AliasValid(alias) {
		alias = r.NextAlias()
	}

	t := &Tag{
		name:           name,
		alias:          alias,
		cell:           cell,
		datatype:       datatype,
		localWritable:  localWritable,
		remoteWritable: remoteWritable,
		maxLen:         maxLen,
		current:        value.NewNull(0, datatype),
		previous:       value.NewNull(0, datatype),
		reg:            r,
	}

	switch {
	case datatype.IsStringKind():
		if err := t.current.AllocateString(maxLen); err != nil {
			return nil, err
		}
		if err := t.previous.AllocateString(maxLen); err != nil {
			return nil, err
		}
	case datatype == value.DataTypeBytes:
		if err := t.current.AllocateBuffer(maxLen); err != nil {
			return nil, err
		}
		if err := t.previous.AllocateBuffer(maxLen); err != nil {
			return nil, err
		}
	}

	r.head = &node{tag: t, next: r.head}
	r.count++
	r.rebuildIndex()
	r.logLifecycle(t, taglog.LifecycleCreated, requested)
	return t, nil
}

// DeleteTag releases the tag's owned payloads and unlinks it from the
// registry. A tag that is not registered is reported with ErrTagNotFound;
// its payloads have been released regardless, so any delete failure makes
// the handle unusable.
func (r *Registry) DeleteTag(t *Tag) error {
	if t == nil {
		return ErrNilTag
	}

	// Release owned payloads first. Zero-capacity tags have no backing
	// allocation, so a not-allocated result is expected here.
	switch {
	case t.datatype.IsStringKind():
		_ = t.current.DeallocateString()
		_ = t.previous.DeallocateString()
	case t.datatype == value.DataTypeBytes:
		_ = t.current.DeallocateBuffer()
		_ = t.previous.DeallocateBuffer()
	}

	var prev *node
	for n := r.head; n != nil; n = n.next {
		if n.tag == t {
			if prev == nil {
				r.head = n.next
			} else {
				prev.next = n.next
			}
			r.count--
			r.rebuildIndex()
			t.reg = nil
			r.logLifecycle(t, taglog.LifecycleDeleted, t.alias)
			return nil
		}
		prev = n
	}
	return ErrTagNotFound
}

// Count returns the number of registered tags.
func (r *Registry) Count() int { return r.count }

// Find returns the first tag matching the predicate, scanning in
// most-recently-created-first order, or nil if no tag matches.
func (r *Registry) Find(fn FindFunc) *Tag {
	if fn == nil {
		return nil
	}
	for n := r.head; n != nil; n = n.next {
		if fn(n.tag) {
			return n.tag
		}
	}
	return nil
}

// TagByName returns the first tag with the given name, or nil.
func (r *Registry) TagByName(name string) *Tag {
	return r.Find(func(t *Tag) bool { return t.name == name })
}

// TagByAlias returns the tag holding the given alias, or nil.
func (r *Registry) TagByAlias(alias int) *Tag {
	return r.Find(func(t *Tag) bool { return t.alias == alias })
}

// TagByIndex returns the tag at the given position in list order, or nil
// if the position is out of range. Positions are invalidated by CreateTag
// and DeleteTag.
func (r *Registry) TagByIndex(idx int) *Tag {
	if idx < 0 || idx >= len(r.index) {
		return nil
	}
	return r.index[idx]
}

// Each applies fn to every tag in list order.
func (r *Registry) Each(fn TagFunc) {
	if fn == nil {
		return
	}
	for n := r.head; n != nil; n = n.next {
		fn(n.tag)
	}
}

// AliasValid returns true iff no registered tag currently holds the alias.
func (r *Registry) AliasValid(alias int) bool {
	return r.TagByAlias(alias) == nil
}

// NextAlias returns one more than the highest alias in use, or 1 when the
// registry is empty.
func (r *Registry) NextAlias() int {
	max := 0
	for n := r.head; n != nil; n = n.next {
		if n.tag.alias > max {
			max = n.tag.alias
		}
	}
	return max + 1
}

// ReadAll reads every tag with one timestamp from the injected timestamp
// source and reports whether any tag changed.
func (r *Registry) ReadAll() (bool, error) {
	if r.now == nil {
		return false, ErrNoTimestampFunc
	}
	ts := r.now()
	changed := false
	for n := r.head; n != nil; n = n.next {
		if n.tag.Read(ts) {
			changed = true
		}
	}
	return changed, nil
}

// rebuildIndex regenerates the flat index from the list. Called after
// every insertion and removal.
func (r *Registry) rebuildIndex() {
	r.index = make([]*Tag, 0, r.count)
	for n := r.head; n != nil; n = n.next {
		r.index = append(r.index, n.tag)
	}
}
