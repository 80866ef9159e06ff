package ffibuf

import (
	"unsafe"

	"github.com/rawbytedev/ffibuf/internal/common"
)

// View is a borrowed byte window. The constructing side owns the
// memory; the receiving side may read it only until the call that
// carried it returns, and must not write through it or retain it.
//
// Layout is pointer then length, two machine words, matching the
// boundary struct on the far side. Do not add fields.
type View struct {
	ptr unsafe.Pointer
	len uintptr
}

// NewView builds a View over n bytes at ptr. A nil pointer is only
// valid for n == 0.
func NewView(ptr unsafe.Pointer, n uintptr) (View, error) {
	if ptr == nil && n > 0 {
		return View{}, ErrInvalidView
	}
	return View{ptr: ptr, len: n}, nil
}

// ViewOf borrows b. The caller keeps ownership of b and must keep it
// alive and unmodified while the View is in use; prefer WithBytes
// when the use is a single call.
func ViewOf(b []byte) View {
	return View{ptr: common.BasePtr(b), len: uintptr(len(b))}
}

// Ptr returns the raw address for handing across the boundary.
func (v View) Ptr() unsafe.Pointer { return v.ptr }

// Len returns the window length in bytes.
func (v View) Len() uintptr { return v.len }

// Bytes aliases the window as a read-only []byte without copying.
// Mutating the result violates the borrow contract. A zero-length
// view yields nil and the pointer is not dereferenced.
func (v View) Bytes() []byte {
	return common.AliasBytes(v.ptr, v.len)
}

// UnsafeString aliases the window as a string without copying or
// checking UTF-8. Valid only while the view is; caller must ensure
// the underlying bytes do not change.
func (v View) UnsafeString() string {
	return common.AliasString(v.ptr, v.len)
}
