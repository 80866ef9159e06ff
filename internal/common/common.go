package common

import "unsafe"

// AliasBytes aliases n bytes at ptr as a []byte without copying.
// A nil pointer or zero length yields nil; the pointer is never
// dereferenced in that case.
func AliasBytes(ptr unsafe.Pointer, n uintptr) []byte {
	if ptr == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(ptr), n)
}

// AliasString aliases n bytes at ptr as a string without copying.
// The bytes must not be mutated while the string is live.
func AliasString(ptr unsafe.Pointer, n uintptr) string {
	if ptr == nil || n == 0 {
		return ""
	}
	return unsafe.String((*byte)(ptr), n)
}

// BasePtr returns the address of the first byte of b, or nil for an
// empty slice.
func BasePtr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(b))
}

// Aligned reports whether ptr is aligned to align bytes. align must
// be a power of two; zero means no requirement.
func Aligned(ptr unsafe.Pointer, align uintptr) bool {
	return align == 0 || uintptr(ptr)%align == 0
}
