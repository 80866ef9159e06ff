package common

import (
	"bytes"
	"testing"
	"unsafe"
)

func TestAliasBytesGuards(t *testing.T) {
	if got := AliasBytes(nil, 0); got != nil {
		t.Fatalf("AliasBytes(nil, 0) = %v, want nil", got)
	}
	if got := AliasBytes(nil, 8); got != nil {
		t.Fatalf("AliasBytes(nil, 8) = %v, want nil", got)
	}
	x := byte(1)
	if got := AliasBytes(unsafe.Pointer(&x), 0); got != nil {
		t.Fatalf("zero-length alias = %v, want nil", got)
	}
}

func TestAliasBytesRoundTrip(t *testing.T) {
	src := []byte{10, 20, 30}
	got := AliasBytes(BasePtr(src), uintptr(len(src)))
	if !bytes.Equal(got, src) {
		t.Fatalf("alias mismatch: %v vs %v", got, src)
	}
	// aliased, not copied
	src[0] = 99
	if got[0] != 99 {
		t.Fatalf("expected alias to observe mutation")
	}
}

func TestAliasString(t *testing.T) {
	src := []byte("abc")
	if s := AliasString(BasePtr(src), 3); s != "abc" {
		t.Fatalf("AliasString = %q", s)
	}
	if s := AliasString(nil, 0); s != "" {
		t.Fatalf("AliasString(nil, 0) = %q", s)
	}
}

func TestAligned(t *testing.T) {
	words := [2]uintptr{}
	word := unsafe.Alignof(words[0])
	base := unsafe.Pointer(&words[0])
	if !Aligned(base, word) {
		t.Fatal("word array base not word-aligned")
	}
	if Aligned(unsafe.Add(base, 1), word) {
		t.Fatal("interior pointer reported aligned")
	}
	// zero align means no requirement
	if !Aligned(unsafe.Add(base, 1), 0) {
		t.Fatal("align 0 must accept any pointer")
	}
	if !Aligned(nil, word) {
		t.Fatal("nil must be trivially aligned")
	}
}

func TestBasePtrEmpty(t *testing.T) {
	if BasePtr(nil) != nil {
		t.Fatal("BasePtr(nil) != nil")
	}
	if BasePtr([]byte{}) != nil {
		t.Fatal("BasePtr(empty) != nil")
	}
}
