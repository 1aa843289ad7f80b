package taglog

import (
	"bytes"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basictag/basictag-go/pkg/value"
)

func changeEvent(registry, tag string, alias int, readAt uint64, v, prev any) Event {
	return Event{
		Timestamp:  time.Now(),
		RegistryID: registry,
		Category:   CategoryChange,
		TagName:    tag,
		Alias:      alias,
		DataType:   value.DataTypeInt32,
		Change:     &ChangeEvent{ReadAt: readAt, Value: v, Previous: prev},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	event := changeEvent("reg-1", "motor.speed", 3, 1000, int32(20), int32(10))

	data, err := EncodeEvent(event)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded, err := DecodeEvent(data)
	require.NoError(t, err)
	assert.Equal(t, event.RegistryID, decoded.RegistryID)
	assert.Equal(t, event.Category, decoded.Category)
	assert.Equal(t, event.TagName, decoded.TagName)
	assert.Equal(t, event.Alias, decoded.Alias)
	assert.Equal(t, event.DataType, decoded.DataType)
	require.NotNil(t, decoded.Change)
	assert.Equal(t, uint64(1000), decoded.Change.ReadAt)
}

func TestFileLoggerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.tlog")

	logger, err := NewFileLogger(path)
	require.NoError(t, err)

	logger.Log(Event{
		Timestamp:  time.Now(),
		RegistryID: "reg-1",
		Category:   CategoryLifecycle,
		TagName:    "motor.speed",
		Alias:      1,
		DataType:   value.DataTypeInt32,
		Lifecycle:  &LifecycleEvent{Op: LifecycleCreated},
	})
	logger.Log(changeEvent("reg-1", "motor.speed", 1, 100, int32(20), nil))
	logger.Log(changeEvent("reg-1", "motor.temp", 2, 100, int32(75), nil))
	require.NoError(t, logger.Close())

	// Closing twice is fine; logging after close is ignored.
	require.NoError(t, logger.Close())
	logger.Log(changeEvent("reg-1", "motor.speed", 1, 200, int32(30), int32(20)))

	reader, err := NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	var events []Event
	for {
		ev, err := reader.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		events = append(events, ev)
	}
	require.Len(t, events, 3)
	assert.Equal(t, CategoryLifecycle, events[0].Category)
	assert.Equal(t, "motor.temp", events[2].TagName)
}

func TestFilteredReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.tlog")

	logger, err := NewFileLogger(path)
	require.NoError(t, err)
	logger.Log(changeEvent("reg-1", "a", 1, 100, int32(1), nil))
	logger.Log(changeEvent("reg-1", "b", 2, 100, int32(2), nil))
	logger.Log(Event{
		Timestamp:  time.Now(),
		RegistryID: "reg-1",
		Category:   CategoryWrite,
		TagName:    "a",
		Alias:      1,
		Write:      &WriteEvent{Accepted: false, Reason: "tag is not writable"},
	})
	require.NoError(t, logger.Close())

	t.Run("ByTagName", func(t *testing.T) {
		reader, err := NewFilteredReader(path, Filter{TagName: "a"})
		require.NoError(t, err)
		defer reader.Close()

		var count int
		for {
			if _, err := reader.Next(); err == io.EOF {
				break
			} else {
				require.NoError(t, err)
			}
			count++
		}
		assert.Equal(t, 2, count)
	})

	t.Run("ByCategory", func(t *testing.T) {
		cat := CategoryWrite
		reader, err := NewFilteredReader(path, Filter{Category: &cat})
		require.NoError(t, err)
		defer reader.Close()

		ev, err := reader.Next()
		require.NoError(t, err)
		require.NotNil(t, ev.Write)
		assert.False(t, ev.Write.Accepted)

		_, err = reader.Next()
		assert.Equal(t, io.EOF, err)
	})

	t.Run("ByAlias", func(t *testing.T) {
		alias := 2
		reader, err := NewFilteredReader(path, Filter{Alias: &alias})
		require.NoError(t, err)
		defer reader.Close()

		ev, err := reader.Next()
		require.NoError(t, err)
		assert.Equal(t, "b", ev.TagName)
	})
}

func TestMultiLogger(t *testing.T) {
	var first, second []Event
	a := loggerFunc(func(e Event) { first = append(first, e) })
	b := loggerFunc(func(e Event) { second = append(second, e) })

	multi := NewMultiLogger(a, b)
	multi.Log(changeEvent("reg-1", "a", 1, 100, int32(1), nil))

	assert.Len(t, first, 1)
	assert.Len(t, second, 1)
}

// loggerFunc adapts a function to the Logger interface for tests.
type loggerFunc func(Event)

func (f loggerFunc) Log(e Event) { f(e) }

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	sl := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	adapter := NewSlogAdapter(sl)
	adapter.Log(changeEvent("reg-1", "motor.speed", 1, 100, int32(20), int32(10)))

	out := buf.String()
	assert.Contains(t, out, "registry")
	assert.Contains(t, out, "motor.speed")
	assert.Contains(t, out, "CHANGE")
}
