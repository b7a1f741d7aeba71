package rc

// Make returns a strong handle to a copy of v stored inside its control
// block, so the block and the value share one allocation. When the last
// strong handle is released the value is closed if *T implements io.Closer
// and then zeroed.
//
// Make fails with ErrOutOfMemory when the block budget is exhausted.
func Make[T any](v T) (Shared[T], error) {
	return MakeWith(func(p *T) { *p = v })
}

// MakeWith is Make for values that must be built in place: ctor runs once on
// the storage inside the new block before any handle to it exists. A nil
// ctor leaves the zero value.
//
// On ErrOutOfMemory ctor is not called.
func MakeWith[T any](ctor func(*T)) (Shared[T], error) {
	if err := reserveBlock(); err != nil {
		return Shared[T]{}, err
	}
	b := newInplaceBlock(ctor)
	b.incStrong()
	return Shared[T]{block: &b.controlBlock, ptr: b.get()}, nil
}
