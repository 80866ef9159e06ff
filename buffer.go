package ffibuf

import (
	"unsafe"

	"github.com/rawbytedev/ffibuf/internal/common"
)

// Buffer is an owned allocation. The side currently holding it must
// release it exactly once through the Allocator that produced it, or
// hand it across the boundary, after which the receiver holds that
// obligation and the previous owner must not touch it again.
//
// Same two-word layout as View; semantically distinct. One borrows,
// one owns.
type Buffer struct {
	ptr unsafe.Pointer
	len uintptr
}

// Empty returns the zero-length buffer. Releasing it is a no-op on
// any allocator.
func Empty() Buffer { return Buffer{} }

// BufferFromRaw adopts a handle that arrived from the far side. This
// is the one unchecked conversion per direction; a nil pointer with
// nonzero length is the boundary encoding of a failed allocation.
func BufferFromRaw(ptr unsafe.Pointer, n uintptr) (Buffer, error) {
	if ptr == nil && n > 0 {
		return Buffer{}, ErrAllocationFailed
	}
	return Buffer{ptr: ptr, len: n}, nil
}

// Ptr returns the raw address for handing across the boundary.
func (b Buffer) Ptr() unsafe.Pointer { return b.ptr }

// Len returns the allocation length in bytes.
func (b Buffer) Len() uintptr { return b.len }

// Bytes aliases the allocation without copying. Valid until the
// buffer is released or handed away.
func (b Buffer) Bytes() []byte {
	return common.AliasBytes(b.ptr, b.len)
}

// View borrows the buffer's contents. The view follows the borrow
// rules and must not outlive the buffer's ownership here.
func (b Buffer) View() View {
	return View{ptr: b.ptr, len: b.len}
}
