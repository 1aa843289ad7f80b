package value

import (
	"bytes"
	"errors"
)

// Buffer errors.
var (
	ErrNilBuffer  = errors.New("buffer is nil")
	ErrNoCapacity = errors.New("buffer has no capacity")
)

// Buffer is an owned byte buffer with separately tracked allocated capacity
// and written length. The written length never exceeds the allocated
// capacity; a capacity of zero means no backing allocation.
type Buffer struct {
	data    []byte
	written int
}

// NewBuffer creates a Buffer with the given capacity. A capacity below 1
// yields a Buffer with no backing allocation.
func NewBuffer(capacity int) *Buffer {
	if capacity < 1 {
		return &Buffer{}
	}
	return &Buffer{data: make([]byte, capacity)}
}

// Allocated returns the allocated capacity in bytes.
func (b *Buffer) Allocated() int {
	return len(b.data)
}

// Written returns the number of bytes currently written.
func (b *Buffer) Written() int {
	return b.written
}

// Bytes returns the written portion of the buffer. The returned slice
// aliases the buffer's storage and is invalidated by the next copy.
func (b *Buffer) Bytes() []byte {
	return b.data[:b.written]
}

// Reset zero-fills the storage and clears the written length.
func (b *Buffer) Reset() {
	for i := range b.data {
		b.data[i] = 0
	}
	b.written = 0
}

// SetBytes copies p into the buffer, truncating at the allocated capacity,
// and sets the written length to the copied amount. An empty p zero-fills
// the storage and clears the written length. Fails if the buffer has no
// capacity.
func (b *Buffer) SetBytes(p []byte) error {
	if b == nil {
		return ErrNilBuffer
	}
	if b.Allocated() < 1 {
		return ErrNoCapacity
	}
	if len(p) == 0 {
		b.Reset()
		return nil
	}
	n := copy(b.data, p)
	b.written = n
	return nil
}

// CopyFrom performs a bounded copy of src's written bytes into b.
// At most b.Allocated() bytes are copied and the written length is set to
// the copied amount. A src with nothing written clears b. Fails when b has
// no capacity or either buffer is nil.
func (b *Buffer) CopyFrom(src *Buffer) error {
	if b == nil || src == nil {
		return ErrNilBuffer
	}
	return b.SetBytes(src.Bytes())
}

// Equal compares written lengths first, then the written bytes.
func (b *Buffer) Equal(other *Buffer) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.written != other.written {
		return false
	}
	return bytes.Equal(b.Bytes(), other.Bytes())
}
