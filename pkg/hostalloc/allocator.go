// Package hostalloc is the Go side's allocator for boundary buffers.
// Allocations are ordinary Go slices pinned in a registry keyed by
// base address, so the raw pointer handed across stays reachable (and
// therefore valid) until the matching Release. The registry doubles
// as the allocator-identity check: a pointer this instance never
// produced cannot be released here.
package hostalloc

import (
	"sync"

	"github.com/google/uuid"

	"github.com/rawbytedev/ffibuf"
	"github.com/rawbytedev/ffibuf/internal/common"
)

// Stats is a point-in-time snapshot of allocator counters.
type Stats struct {
	Allocs      uint64
	Releases    uint64
	Mismatches  uint64
	Live        uint64
	BytesPinned uint64
}

// Pinned implements ffibuf.Allocator over the Go heap.
type Pinned struct {
	id string

	mu    sync.Mutex
	pins  map[uintptr][]byte
	stats Stats
}

// New returns a fresh allocator with its own identity tag.
func New() *Pinned {
	return &Pinned{
		id:   uuid.NewString(),
		pins: make(map[uintptr][]byte),
	}
}

// ID returns the allocator's identity tag.
func (p *Pinned) ID() string { return p.id }

// Alloc pins a fresh n-byte allocation and returns its handle.
// n == 0 returns the empty buffer without touching the registry.
func (p *Pinned) Alloc(n uintptr) (ffibuf.Buffer, error) {
	if n == 0 {
		return ffibuf.Empty(), nil
	}
	b := make([]byte, n)
	ptr := common.BasePtr(b)
	p.mu.Lock()
	p.pins[uintptr(ptr)] = b
	p.stats.Allocs++
	p.stats.Live++
	p.stats.BytesPinned += uint64(n)
	p.mu.Unlock()
	return ffibuf.BufferFromRaw(ptr, n)
}

// Release unpins a buffer previously returned by Alloc. Zero-length
// buffers release as a no-op. A pointer this instance did not produce
// is an allocator mismatch.
func (p *Pinned) Release(buf ffibuf.Buffer) error {
	if buf.Len() == 0 {
		return nil
	}
	addr := uintptr(buf.Ptr())
	p.mu.Lock()
	defer p.mu.Unlock()
	b, ok := p.pins[addr]
	if !ok {
		p.stats.Mismatches++
		return ffibuf.ErrAllocatorMismatch
	}
	delete(p.pins, addr)
	p.stats.Releases++
	p.stats.Live--
	p.stats.BytesPinned -= uint64(len(b))
	return nil
}

// FromBytes allocates a buffer and copies src into it. The caller
// owns the result; src is untouched.
func (p *Pinned) FromBytes(src []byte) (ffibuf.Buffer, error) {
	buf, err := p.Alloc(uintptr(len(src)))
	if err != nil {
		return ffibuf.Buffer{}, err
	}
	copy(buf.Bytes(), src)
	return buf, nil
}

// FromString allocates a buffer holding the raw bytes of s, no
// terminator.
func (p *Pinned) FromString(s string) (ffibuf.Buffer, error) {
	return p.FromBytes([]byte(s))
}

// Stats snapshots the counters.
func (p *Pinned) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}
