package ffibuf

import "errors"

var (
	ErrInvalidView       = errors.New("null view pointer with nonzero length")
	ErrAllocationFailed  = errors.New("allocation failed")
	ErrDoubleRelease     = errors.New("buffer released twice")
	ErrUseAfterRelease   = errors.New("use of released buffer")
	ErrAllocatorMismatch = errors.New("buffer does not belong to this allocator")
)

// Allocator produces and reclaims owned buffers. Every Buffer must be
// released through the allocator that produced it; releasing through
// any other allocator is an AllocatorMismatch.
type Allocator interface {
	// Alloc returns a Buffer of n bytes. n == 0 yields the empty
	// buffer without touching the underlying allocator.
	Alloc(n uintptr) (Buffer, error)

	// Release reclaims a Buffer previously returned by Alloc.
	// Zero-length buffers release as a no-op regardless of pointer.
	Release(b Buffer) error

	// ID identifies the allocator instance for pairing diagnostics.
	ID() string
}
