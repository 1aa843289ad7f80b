package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basictag/basictag-go/pkg/taglog"
	"github.com/basictag/basictag-go/pkg/value"
)

// recLogger records capture events for assertions.
type recLogger struct {
	events []taglog.Event
}

func (l *recLogger) Log(e taglog.Event) { l.events = append(l.events, e) }

func (l *recLogger) byCategory(c taglog.Category) []taglog.Event {
	var out []taglog.Event
	for _, e := range l.events {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

func TestCreateTag(t *testing.T) {
	reg := NewRegistry()
	var cell int32 = 10

	tg, err := reg.CreateInt32Tag("motor.speed", &cell, 1, true, false)
	require.NoError(t, err)
	require.NotNil(t, tg)

	assert.Equal(t, "motor.speed", tg.Name())
	assert.Equal(t, 1, tg.Alias())
	assert.Equal(t, value.DataTypeInt32, tg.DataType())
	assert.True(t, tg.LocalWritable())
	assert.False(t, tg.RemoteWritable())
	assert.Equal(t, 1, reg.Count())

	// Both snapshots start null with the never-read sentinel.
	assert.True(t, tg.CurrentValue().IsNull)
	assert.True(t, tg.PreviousValue().IsNull)
	assert.Equal(t, uint64(0), tg.CurrentValue().Timestamp)
	assert.Equal(t, value.DataTypeInt32, tg.CurrentValue().Type)
	assert.Equal(t, value.DataTypeInt32, tg.PreviousValue().Type)
}

func TestCreateTagInvalidType(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.CreateTag("bad", nil, 1, value.DataType(16), false, false, 0)
	assert.ErrorIs(t, err, ErrInvalidDataType)
	assert.Equal(t, 0, reg.Count())
}

func TestUUIDTagCapacityForced(t *testing.T) {
	reg := NewRegistry()
	var cell string
	tg, err := reg.CreateUUIDTag("device.id", &cell, 1, true, false)
	require.NoError(t, err)
	assert.Equal(t, value.UUIDStringLength, tg.MaxLen())

	// Even the generic constructor cannot override it.
	tg2, err := reg.CreateTag("device.id2", &cell, 2, value.DataTypeUUID, true, false, 5)
	require.NoError(t, err)
	assert.Equal(t, value.UUIDStringLength, tg2.MaxLen())
}

func TestAliasReassignment(t *testing.T) {
	reg := NewRegistry()
	var a, b, c int32

	first, err := reg.CreateInt32Tag("a", &a, 5, false, false)
	require.NoError(t, err)
	assert.Equal(t, 5, first.Alias())

	// A colliding alias is silently remapped to max+1, not rejected.
	second, err := reg.CreateInt32Tag("b", &b, 5, false, false)
	require.NoError(t, err)
	assert.Equal(t, 6, second.Alias())

	third, err := reg.CreateInt32Tag("c", &c, 2, false, false)
	require.NoError(t, err)
	assert.Equal(t, 2, third.Alias())
}

func TestAliasHelpers(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, 1, reg.NextAlias())
	assert.True(t, reg.AliasValid(1))

	var cell int32
	_, err := reg.CreateInt32Tag("a", &cell, 3, false, false)
	require.NoError(t, err)

	assert.False(t, reg.AliasValid(3))
	assert.True(t, reg.AliasValid(1))
	assert.Equal(t, 4, reg.NextAlias())
}

func TestLookups(t *testing.T) {
	reg := NewRegistry()
	var a, b, c int32
	tagA, _ := reg.CreateInt32Tag("a", &a, 1, false, false)
	tagB, _ := reg.CreateInt32Tag("b", &b, 2, false, false)
	tagC, _ := reg.CreateInt32Tag("c", &c, 3, false, false)

	t.Run("ByName", func(t *testing.T) {
		assert.Same(t, tagB, reg.TagByName("b"))
		assert.Nil(t, reg.TagByName("missing"))
	})

	t.Run("ByAlias", func(t *testing.T) {
		assert.Same(t, tagC, reg.TagByAlias(3))
		assert.Nil(t, reg.TagByAlias(99))
	})

	t.Run("ByIndex", func(t *testing.T) {
		// List order is most-recently-created-first.
		assert.Same(t, tagC, reg.TagByIndex(0))
		assert.Same(t, tagB, reg.TagByIndex(1))
		assert.Same(t, tagA, reg.TagByIndex(2))
		assert.Nil(t, reg.TagByIndex(3))
		assert.Nil(t, reg.TagByIndex(-1))
	})

	t.Run("Find", func(t *testing.T) {
		found := reg.Find(func(tg *Tag) bool { return tg.Alias() > 1 })
		assert.Same(t, tagC, found) // first match in list order
		assert.Nil(t, reg.Find(func(tg *Tag) bool { return false }))
		assert.Nil(t, reg.Find(nil))
	})

	t.Run("Each", func(t *testing.T) {
		var names []string
		reg.Each(func(tg *Tag) { names = append(names, tg.Name()) })
		assert.Equal(t, []string{"c", "b", "a"}, names)
	})
}

func TestDeleteTag(t *testing.T) {
	reg := NewRegistry()
	var a, b, c int32
	tagA, _ := reg.CreateInt32Tag("a", &a, 1, false, false)
	tagB, _ := reg.CreateInt32Tag("b", &b, 2, false, false)
	tagC, _ := reg.CreateInt32Tag("c", &c, 3, false, false)

	require.NoError(t, reg.DeleteTag(tagB))

	assert.Equal(t, 2, reg.Count())
	assert.Nil(t, reg.TagByName("b"))
	assert.Nil(t, reg.TagByAlias(2))

	// Remaining tags keep their relative order in the index.
	assert.Same(t, tagC, reg.TagByIndex(0))
	assert.Same(t, tagA, reg.TagByIndex(1))
	assert.Nil(t, reg.TagByIndex(2))

	t.Run("DoubleDelete", func(t *testing.T) {
		assert.ErrorIs(t, reg.DeleteTag(tagB), ErrTagNotFound)
	})

	t.Run("NilTag", func(t *testing.T) {
		assert.ErrorIs(t, reg.DeleteTag(nil), ErrNilTag)
	})

	t.Run("DeleteHead", func(t *testing.T) {
		require.NoError(t, reg.DeleteTag(tagC))
		assert.Same(t, tagA, reg.TagByIndex(0))
		assert.Equal(t, 1, reg.Count())
	})
}

func TestDeleteStringTagReleasesPayloads(t *testing.T) {
	reg := NewRegistry()
	var cell string
	tg, err := reg.CreateStringTag("s", &cell, 1, true, false, 8)
	require.NoError(t, err)

	require.NoError(t, reg.DeleteTag(tg))

	// The owned payloads are gone; re-release reports not-allocated.
	assert.ErrorIs(t, tg.CurrentValue().DeallocateString(), value.ErrNotAllocated)
	assert.ErrorIs(t, tg.PreviousValue().DeallocateString(), value.ErrNotAllocated)
}

func TestReadAll(t *testing.T) {
	reg := NewRegistry()
	var a int32 = 1
	var b int32 = 2
	_, err := reg.CreateInt32Tag("a", &a, 1, false, false)
	require.NoError(t, err)
	_, err = reg.CreateInt32Tag("b", &b, 2, false, false)
	require.NoError(t, err)

	t.Run("NoTimestampFunc", func(t *testing.T) {
		_, err := reg.ReadAll()
		assert.ErrorIs(t, err, ErrNoTimestampFunc)
	})

	var now uint64 = 100
	require.NoError(t, reg.SetTimestampFunc(func() uint64 { return now }))
	assert.ErrorIs(t, reg.SetTimestampFunc(nil), ErrNilCallback)

	t.Run("FirstReadChanges", func(t *testing.T) {
		changed, err := reg.ReadAll()
		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("SteadyStateUnchanged", func(t *testing.T) {
		now = 200
		changed, err := reg.ReadAll()
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("OneTagChanged", func(t *testing.T) {
		b = 5
		now = 300
		changed, err := reg.ReadAll()
		require.NoError(t, err)
		assert.True(t, changed)
		assert.False(t, reg.TagByName("a").ValueChanged())
		assert.True(t, reg.TagByName("b").ValueChanged())
	})
}

func TestRegistryEvents(t *testing.T) {
	rec := &recLogger{}
	reg := NewRegistry()
	reg.SetLogger(rec)
	require.NotEmpty(t, reg.ID())

	var cell int32 = 10
	tg, err := reg.CreateInt32Tag("motor.speed", &cell, 5, true, false)
	require.NoError(t, err)

	// Colliding alias gets remapped; the event keeps the requested one.
	var other int32
	_, err = reg.CreateInt32Tag("motor.temp", &other, 5, false, false)
	require.NoError(t, err)

	tg.Read(100)
	require.NoError(t, tg.Write(ptrValue(value.NewInt32(0, 20))))
	require.NoError(t, reg.DeleteTag(tg))

	lifecycle := rec.byCategory(taglog.CategoryLifecycle)
	require.Len(t, lifecycle, 3)
	assert.Equal(t, taglog.LifecycleCreated, lifecycle[0].Lifecycle.Op)
	assert.Equal(t, 5, lifecycle[1].Lifecycle.RequestedAlias)
	assert.Equal(t, 6, lifecycle[1].Alias)
	assert.Equal(t, taglog.LifecycleDeleted, lifecycle[2].Lifecycle.Op)

	changes := rec.byCategory(taglog.CategoryChange)
	require.Len(t, changes, 1)
	assert.Equal(t, "motor.speed", changes[0].TagName)
	assert.Equal(t, uint64(100), changes[0].Change.ReadAt)

	writes := rec.byCategory(taglog.CategoryWrite)
	require.Len(t, writes, 1)
	assert.True(t, writes[0].Write.Accepted)

	// All events carry the registry identity.
	for _, e := range rec.events {
		assert.Equal(t, reg.ID(), e.RegistryID)
	}
}

// ptrValue returns a pointer to v for write calls.
func ptrValue(v value.BasicValue) *value.BasicValue { return &v }
