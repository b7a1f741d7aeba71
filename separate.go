package rc

// separateBlock manages an object allocated independently of the block.
type separateBlock[T any] struct {
	controlBlock
	ptr     *T
	deleter func(*T)
}

func newSeparateBlock[T any](p *T, deleter func(*T)) *separateBlock[T] {
	if deleter == nil {
		deleter = dispose[T]
	}
	b := &separateBlock[T]{ptr: p, deleter: deleter}
	b.controlBlock.bind(b)
	return b
}

func (b *separateBlock[T]) destroyObject() {
	p, d := b.ptr, b.deleter
	b.ptr, b.deleter = nil, nil
	d(p)
}

func (b *separateBlock[T]) kind() string {
	return typeName[T]() + "/separate"
}
