package ffibuf

import "runtime"

// WithBytes borrows b as a View whose valid window is exactly the
// callback. b stays alive for the duration; the View must not be
// retained after fn returns. Use-after-scope is not detected,
// the contract here is the bounded window itself.
func WithBytes(b []byte, fn func(View) error) error {
	err := fn(ViewOf(b))
	runtime.KeepAlive(b)
	return err
}
