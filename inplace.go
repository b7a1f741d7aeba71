package rc

// inplaceBlock stores the managed value inside the block itself, so a handle
// built by Make costs a single allocation.
type inplaceBlock[T any] struct {
	controlBlock
	value T
}

// newInplaceBlock constructs the value in the block's storage with ctor.
// The caller must already hold a reservation from reserveBlock; if ctor
// panics the reservation is given back before the panic continues.
func newInplaceBlock[T any](ctor func(*T)) *inplaceBlock[T] {
	b := &inplaceBlock[T]{}
	if ctor != nil {
		done := false
		defer func() {
			if !done {
				unreserveBlock()
			}
		}()
		ctor(&b.value)
		done = true
	}
	b.controlBlock.bind(b)
	return b
}

func (b *inplaceBlock[T]) get() *T {
	return &b.value
}

func (b *inplaceBlock[T]) destroyObject() {
	dispose(&b.value)
	var zero T
	b.value = zero
}

func (b *inplaceBlock[T]) kind() string {
	return typeName[T]() + "/inplace"
}
