package ffibuf

import (
	"testing"
	"testing/quick"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewViewNullRejected(t *testing.T) {
	condition := func(n uint32) bool {
		// mask keeps the length nonzero on 32-bit platforms too
		_, err := NewView(nil, uintptr(n&0xFFFF)+1)
		return assert.ErrorIs(t, err, ErrInvalidView)
	}
	err := quick.Check(condition, &quick.Config{})
	if err != nil {
		t.Errorf("Error: %v", err)
	}
}

func TestNewViewZeroLength(t *testing.T) {
	// null pointer, zero length
	v, err := NewView(nil, 0)
	require.NoError(t, err)
	require.Nil(t, v.Bytes())

	// non-null pointer, zero length: pointer value must be ignored
	// and never dereferenced
	x := byte(7)
	v, err = NewView(unsafe.Pointer(&x), 0)
	require.NoError(t, err)
	require.Nil(t, v.Bytes())
	require.Equal(t, uintptr(0), v.Len())
}

func TestViewOfEmpty(t *testing.T) {
	v := ViewOf(nil)
	require.Nil(t, v.Ptr())
	v = ViewOf([]byte{})
	require.Nil(t, v.Bytes())
}

func sumView(v View) int {
	total := 0
	for _, b := range v.Bytes() {
		total += int(b)
	}
	return total
}

func TestViewReadOnlyWindow(t *testing.T) {
	data := [4]byte{1, 2, 3, 4}
	v, err := NewView(unsafe.Pointer(&data[0]), 4)
	require.NoError(t, err)
	require.Equal(t, 10, sumView(v))
	// borrow left the original untouched
	require.Equal(t, [4]byte{1, 2, 3, 4}, data)
}

func TestWithBytesScope(t *testing.T) {
	data := []byte("scoped")
	err := WithBytes(data, func(v View) error {
		require.Equal(t, data, v.Bytes())
		require.Equal(t, uintptr(len(data)), v.Len())
		return nil
	})
	require.NoError(t, err)
}

func TestUnsafeString(t *testing.T) {
	data := []byte("hello")
	v := ViewOf(data)
	require.Equal(t, "hello", v.UnsafeString())
	require.Equal(t, "", ViewOf(nil).UnsafeString())
}

func FuzzViewAlias(f *testing.F) {
	f.Add([]byte("seed"))
	f.Add([]byte{})
	f.Fuzz(func(t *testing.T, data []byte) {
		v := ViewOf(data)
		if len(data) == 0 {
			require.Nil(t, v.Bytes())
			return
		}
		require.Equal(t, data, v.Bytes())
	})
}
