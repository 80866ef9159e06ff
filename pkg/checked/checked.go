// Package checked wraps any ffibuf.Allocator with debug
// instrumentation. The production contract leaves double release and
// allocator mismatch as caller responsibility; this wrapper tracks
// live and released pointers so tests, fuzzers and debug builds see
// those violations as classified errors instead of corruption.
package checked

import (
	"sync"
	"unsafe"

	"go.uber.org/zap"

	"github.com/rawbytedev/ffibuf"
	"github.com/rawbytedev/ffibuf/internal/common"
)

// Options controls the instrumentation.
type Options struct {
	// Poison overwrites a buffer's contents with 0xDD right before
	// release so use-after-release reads are visible in tests.
	Poison bool

	// CheckAlignment rejects release pointers that are not aligned
	// to the machine word. An interior or corrupted handle cannot be
	// an allocation base; only enable when the inner allocator
	// guarantees word-aligned bases.
	CheckAlignment bool

	// Logger receives a record per violation. Nil means no logging.
	Logger *zap.Logger
}

// Allocator is a checked wrapper around an inner allocator. It keeps
// the inner identity; checking is transparent to the pairing rules.
type Allocator struct {
	inner ffibuf.Allocator
	opts  Options
	log   *zap.Logger

	mu       sync.Mutex
	live     map[uintptr]uintptr // base address -> length
	released map[uintptr]struct{}
}

// Wrap instruments inner.
func Wrap(inner ffibuf.Allocator, opts Options) *Allocator {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Allocator{
		inner:    inner,
		opts:     opts,
		log:      log,
		live:     make(map[uintptr]uintptr),
		released: make(map[uintptr]struct{}),
	}
}

// ID returns the inner allocator's identity tag.
func (a *Allocator) ID() string { return a.inner.ID() }

// Alloc forwards to the inner allocator and records the result.
func (a *Allocator) Alloc(n uintptr) (ffibuf.Buffer, error) {
	buf, err := a.inner.Alloc(n)
	if err != nil || buf.Len() == 0 {
		return buf, err
	}
	addr := uintptr(buf.Ptr())
	a.mu.Lock()
	a.live[addr] = buf.Len()
	// the inner allocator may legitimately reuse an address
	delete(a.released, addr)
	a.mu.Unlock()
	return buf, nil
}

// Release classifies the pointer before forwarding: a tombstoned
// address is a double release, an address never seen here is a
// mismatch. Both are logged and returned without touching the inner
// allocator.
func (a *Allocator) Release(buf ffibuf.Buffer) error {
	if buf.Len() == 0 {
		return nil
	}
	addr := uintptr(buf.Ptr())
	if a.opts.CheckAlignment && !common.Aligned(buf.Ptr(), unsafe.Alignof(addr)) {
		a.log.Error("misaligned buffer pointer",
			zap.Uintptr("addr", addr),
			zap.String("allocator", a.inner.ID()))
		return ffibuf.ErrAllocatorMismatch
	}
	a.mu.Lock()
	if _, ok := a.live[addr]; !ok {
		_, dead := a.released[addr]
		a.mu.Unlock()
		if dead {
			a.log.Error("double release",
				zap.Uintptr("addr", addr),
				zap.String("allocator", a.inner.ID()))
			return ffibuf.ErrDoubleRelease
		}
		a.log.Error("release through wrong allocator",
			zap.Uintptr("addr", addr),
			zap.Uintptr("len", buf.Len()),
			zap.String("allocator", a.inner.ID()))
		return ffibuf.ErrAllocatorMismatch
	}
	delete(a.live, addr)
	a.released[addr] = struct{}{}
	a.mu.Unlock()
	if a.opts.Poison {
		b := buf.Bytes()
		for i := range b {
			b[i] = 0xDD
		}
	}
	return a.inner.Release(buf)
}

// Live reports the number of buffers allocated here and not yet
// released, for leak assertions in tests.
func (a *Allocator) Live() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.live)
}
