//go:build (darwin || freebsd || linux) && (amd64 || arm64)

// Package cmem allocates memory on the C heap and hands it out through
// reference-counted rc.Shared handles whose release action is libc free.
//
// The C runtime is loaded with purego, so no cgo toolchain is needed. Memory
// from this package is invisible to the Go garbage collector: it must never
// hold Go pointers, and it is freed exactly when the last strong handle is
// released.
package cmem

import (
	"errors"
	"sync"
	"unsafe"

	"github.com/obinnaokechukwu/rc"
	"github.com/obinnaokechukwu/rc/internal/bindings"
)

// Common errors
var (
	// ErrNotLoaded indicates the C runtime could not be loaded.
	ErrNotLoaded = bindings.ErrNotLoaded

	// ErrLibraryNotFound indicates no C runtime library was found.
	ErrLibraryNotFound = bindings.ErrLibraryNotFound

	// ErrInvalidSize indicates a non-positive allocation size.
	ErrInvalidSize = errors.New("rc: invalid allocation size")
)

var logLoadOnce sync.Once

// Init loads the C runtime. It is called by every allocating function and can
// be called explicitly to check for errors. It is safe to call multiple times.
func Init() error {
	if err := bindings.Load(); err != nil {
		return err
	}
	logLoadOnce.Do(func() {
		rc.Logger().WithName("cmem").V(rc.LogLifecycle).Info("C runtime loaded", "path", bindings.Path())
	})
	return nil
}

// Malloc allocates size bytes of uninitialized C memory. The caller owns the
// result and must pass it to Free.
func Malloc(size int) (unsafe.Pointer, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if err := Init(); err != nil {
		return nil, err
	}
	p := bindings.Malloc(uintptr(size))
	if p == nil {
		return nil, rc.ErrOutOfMemory
	}
	return p, nil
}

// Calloc allocates zeroed C memory for count elements of size bytes.
func Calloc(count, size int) (unsafe.Pointer, error) {
	if count <= 0 || size <= 0 {
		return nil, ErrInvalidSize
	}
	if err := Init(); err != nil {
		return nil, err
	}
	p := bindings.Calloc(uintptr(count), uintptr(size))
	if p == nil {
		return nil, rc.ErrOutOfMemory
	}
	return p, nil
}

// Free releases memory obtained from Malloc or Calloc. Free(nil) does nothing.
func Free(p unsafe.Pointer) {
	bindings.Free(p)
}
