package ffibuf

import "sync"

// boxes pins values handed across the boundary as opaque word-sized
// handles, keeping them visible to the GC until freed. Handle 0 is
// reserved for nil.
var boxes = struct {
	sync.Mutex
	m    map[uintptr]any
	next uintptr
}{m: make(map[uintptr]any), next: 1}

// Box converts an optional value into a nullable handle: nil maps to
// 0, anything else is pinned and mapped to a nonzero handle that must
// eventually be passed to FreeBox.
func Box[T any](v *T) uintptr {
	if v == nil {
		return 0
	}
	boxes.Lock()
	h := boxes.next
	boxes.next++
	boxes.m[h] = v
	boxes.Unlock()
	return h
}

// Unbox resolves a handle produced by Box. Handle 0 yields nil.
// An unknown or already-freed handle is a protocol violation and
// panics, matching the unrecoverable class of boundary errors.
func Unbox[T any](h uintptr) *T {
	if h == 0 {
		return nil
	}
	boxes.Lock()
	v, ok := boxes.m[h]
	boxes.Unlock()
	if !ok {
		panic("ffibuf: unbox of unknown handle")
	}
	return v.(*T)
}

// FreeBox unpins a handle. Freeing 0 is a no-op; freeing a nonzero
// handle twice reports ErrDoubleRelease.
func FreeBox(h uintptr) error {
	if h == 0 {
		return nil
	}
	boxes.Lock()
	defer boxes.Unlock()
	if _, ok := boxes.m[h]; !ok {
		return ErrDoubleRelease
	}
	delete(boxes.m, h)
	return nil
}
