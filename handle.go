package ffibuf

// Owned states. The zero value is live so NewOwned can return a
// usable handle without extra setup.
const (
	ownedLive uint8 = iota
	ownedMoved
	ownedReleased
)

// Owned is a single-ownership wrapper around a Buffer and the
// Allocator that must reclaim it. It exists so double release and
// use after release are detected errors on this side of the
// boundary instead of undefined behavior: Move zeroes the handle
// when the buffer crosses, Release tombstones it.
//
// Owned is not safe for concurrent use; ownership transfer between
// goroutines must be serialized externally, e.g. by moving the
// handle through a channel with a single consumer.
type Owned struct {
	buf   Buffer
	alloc Allocator
	state uint8
}

// NewOwned takes ownership of buf on behalf of the caller. buf must
// have been produced by alloc, and alloc must be non-nil: the handle
// routes its release through it. A nil allocator panics here rather
// than at the eventual Release.
func NewOwned(buf Buffer, alloc Allocator) *Owned {
	if alloc == nil {
		panic("ffibuf: nil allocator")
	}
	return &Owned{buf: buf, alloc: alloc}
}

// Bytes aliases the owned allocation. Fails once the handle has been
// released or moved.
func (o *Owned) Bytes() ([]byte, error) {
	if o.state != ownedLive {
		return nil, ErrUseAfterRelease
	}
	return o.buf.Bytes(), nil
}

// Len reports the allocation length, or an error on a dead handle.
func (o *Owned) Len() (uintptr, error) {
	if o.state != ownedLive {
		return 0, ErrUseAfterRelease
	}
	return o.buf.Len(), nil
}

// Move hands the raw Buffer out for crossing the boundary. The
// handle is zeroed: this side is the previous owner now, and the
// release obligation travels with the returned Buffer.
func (o *Owned) Move() (Buffer, error) {
	if o.state != ownedLive {
		return Buffer{}, ErrUseAfterRelease
	}
	buf := o.buf
	o.buf = Buffer{}
	o.state = ownedMoved
	return buf, nil
}

// Release reclaims the buffer through its allocator, exactly once.
// A second call reports ErrDoubleRelease; releasing after Move
// reports ErrUseAfterRelease since the obligation left with the
// buffer.
func (o *Owned) Release() error {
	switch o.state {
	case ownedReleased:
		return ErrDoubleRelease
	case ownedMoved:
		return ErrUseAfterRelease
	}
	buf := o.buf
	o.buf = Buffer{}
	o.state = ownedReleased
	return o.alloc.Release(buf)
}
