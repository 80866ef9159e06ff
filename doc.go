// Package ffibuf defines the byte-buffer handles used to cross a
// foreign-function boundary between two components that share no
// allocator and no garbage collector.
//
// Two handle types cover every exchange:
//
//   - View: a borrowed, caller-owned window into bytes. The receiver
//     may read it for the duration of the call and nothing more.
//   - Buffer: an owned allocation. Exactly one side owns it at any
//     instant; ownership moves to the receiver the moment the handle
//     crosses as a return value or out-parameter, and the current
//     owner must release it exactly once through the Allocator that
//     produced it.
//
// Both types are two machine words, pointer then length, so they map
// onto `{ const uint8_t *ptr; size_t len; }` on the far side. They are
// layout-compatible but never interchangeable: one borrows, one owns.
//
// Zero-length handles are always safe. The pointer may be nil or
// dangling when the length is zero; no path in this package
// dereferences it.
//
// The handles carry no lifetime enforcement of their own. Use
// WithBytes to scope a View to a single call, and Owned to make
// double-release and use-after-release detectable instead of
// undefined. The raw Buffer path stays unchecked; pkg/checked wraps
// any Allocator with debug instrumentation for tests and fuzzing.
package ffibuf
