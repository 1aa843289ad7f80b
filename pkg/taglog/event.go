package taglog

import (
	"time"

	"github.com/basictag/basictag-go/pkg/value"
)

// Event represents one registry event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event was captured (wall clock, not the
	// caller-supplied read timestamp).
	Timestamp time.Time `cbor:"1,keyasint"`

	// RegistryID uniquely identifies the registry instance (UUID).
	RegistryID string `cbor:"2,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"3,keyasint"`

	// TagName is the name of the tag the event concerns.
	TagName string `cbor:"4,keyasint,omitempty"`

	// Alias is the tag's alias.
	Alias int `cbor:"5,keyasint,omitempty"`

	// DataType is the tag's data type.
	DataType value.DataType `cbor:"6,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Lifecycle *LifecycleEvent `cbor:"7,keyasint,omitempty"`  // Create/delete
	Change    *ChangeEvent    `cbor:"8,keyasint,omitempty"`  // Detected value change
	Write     *WriteEvent     `cbor:"9,keyasint,omitempty"`  // Write outcome
	Error     *ErrorEventData `cbor:"10,keyasint,omitempty"` // Failures
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryLifecycle indicates a tag was created or deleted.
	CategoryLifecycle Category = 0
	// CategoryChange indicates a read detected a value change.
	CategoryChange Category = 1
	// CategoryWrite indicates a write was applied or rejected.
	CategoryWrite Category = 2
	// CategoryError indicates a failed operation.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryLifecycle:
		return "LIFECYCLE"
	case CategoryChange:
		return "CHANGE"
	case CategoryWrite:
		return "WRITE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LifecycleOp distinguishes lifecycle events.
type LifecycleOp uint8

const (
	// LifecycleCreated indicates the tag was registered.
	LifecycleCreated LifecycleOp = 0
	// LifecycleDeleted indicates the tag was deleted.
	LifecycleDeleted LifecycleOp = 1
)

// String returns the lifecycle operation name.
func (o LifecycleOp) String() string {
	switch o {
	case LifecycleCreated:
		return "CREATED"
	case LifecycleDeleted:
		return "DELETED"
	default:
		return "UNKNOWN"
	}
}

// LifecycleEvent captures tag creation and deletion.
type LifecycleEvent struct {
	// Op is the lifecycle operation.
	Op LifecycleOp `cbor:"1,keyasint"`

	// RequestedAlias is the alias the caller asked for. It differs from
	// Event.Alias when a collision was silently remapped.
	RequestedAlias int `cbor:"2,keyasint,omitempty"`
}

// ChangeEvent captures a value change detected by the read engine.
type ChangeEvent struct {
	// ReadAt is the caller-supplied millisecond timestamp of the read.
	ReadAt uint64 `cbor:"1,keyasint"`

	// Value is the new current value (CBOR-friendly rendering, nil = null).
	Value any `cbor:"2,keyasint,omitempty"`

	// Previous is the prior current value.
	Previous any `cbor:"3,keyasint,omitempty"`
}

// WriteEvent captures the outcome of a write through the engine.
type WriteEvent struct {
	// Accepted indicates whether the write reached the backing cell.
	Accepted bool `cbor:"1,keyasint"`

	// Reason describes a rejection (empty when accepted).
	Reason string `cbor:"2,keyasint,omitempty"`
}

// ErrorEventData captures failed registry operations.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"2,keyasint,omitempty"`
}
