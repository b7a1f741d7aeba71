//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package cmem

import (
	"unsafe"

	"github.com/obinnaokechukwu/rc"
)

// Buffer is a block of C memory. It is only reachable through the shared
// handle returned by NewBuffer, which frees it when the last strong handle
// is released.
type Buffer struct {
	ptr  unsafe.Pointer
	size int
}

// Pointer returns the start of the C memory, or nil once it has been freed.
func (b *Buffer) Pointer() unsafe.Pointer {
	if b == nil {
		return nil
	}
	return b.ptr
}

// Len returns the size of the buffer in bytes, 0 once it has been freed.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return b.size
}

// Bytes returns the buffer as a byte slice backed by C memory. The slice must
// not be used after the last strong handle is released.
func (b *Buffer) Bytes() []byte {
	if b == nil || b.ptr == nil {
		return nil
	}
	return unsafe.Slice((*byte)(b.ptr), b.size)
}

func freeBuffer(b *Buffer) {
	Free(b.ptr)
	b.ptr = nil
	b.size = 0
}

// NewBuffer allocates size zeroed bytes of C memory owned by a shared handle.
//
// If the C allocation fails, or the rc block budget refuses the control
// block, ErrOutOfMemory is returned; in the latter case the memory has
// already been freed.
func NewBuffer(size int) (rc.Shared[Buffer], error) {
	p, err := Calloc(1, size)
	if err != nil {
		return rc.Shared[Buffer]{}, err
	}
	return rc.New(&Buffer{ptr: p, size: size}, freeBuffer)
}

// New allocates zeroed C storage for one T and returns a shared handle to it.
// T must not contain Go pointers (no pointers, slices, maps, strings,
// interfaces, channels or funcs): the garbage collector does not scan C
// memory.
func New[T any]() (rc.Shared[T], error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		size = 1
	}
	p, err := Calloc(1, size)
	if err != nil {
		return rc.Shared[T]{}, err
	}
	return rc.New((*T)(p), func(v *T) { Free(unsafe.Pointer(v)) })
}
