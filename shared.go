package rc

// Shared is a strong handle: it shares ownership of a managed object with
// every other Shared handle built from the same control block. The object is
// destroyed when the last of them is released.
//
// The zero value is an empty handle. A Shared must not be copied by
// assignment; use Clone to share ownership or Move to transfer it. Every
// non-empty handle must eventually be released with Release (or handed off
// with Move), otherwise the object is never destroyed.
//
// A Shared and the handles cloned from it must stay on one goroutine, or be
// handed between goroutines with external synchronization. The counters are
// not atomic.
type Shared[T any] struct {
	_     noCopy
	block *controlBlock
	ptr   *T
}

// New takes ownership of p. When the last strong handle is released,
// deleter(p) runs exactly once. A nil deleter closes p if *T implements
// io.Closer and otherwise leaves p to the garbage collector.
//
// If no control block can be allocated, the deleter runs on p before
// ErrOutOfMemory is returned, so p is never leaked.
//
// New(nil, d) returns an empty handle; d is not called.
func New[T any](p *T, deleter func(*T)) (Shared[T], error) {
	if p == nil {
		return Shared[T]{}, nil
	}
	if err := reserveBlock(); err != nil {
		if deleter != nil {
			deleter(p)
		} else {
			dispose(p)
		}
		return Shared[T]{}, err
	}
	b := newSeparateBlock(p, deleter)
	b.incStrong()
	return Shared[T]{block: &b.controlBlock, ptr: p}, nil
}

// Get returns the address the handle exposes, or nil if it is empty.
func (s *Shared[T]) Get() *T {
	if s == nil {
		return nil
	}
	return s.ptr
}

// IsNil reports whether Get returns nil. A handle built by Convert or Alias
// can expose nil and still own a strong reference, so IsNil does not mean
// Release may be skipped.
func (s *Shared[T]) IsNil() bool {
	return s.Get() == nil
}

// UseCount returns the number of strong handles sharing the object,
// or 0 for an empty handle.
func (s *Shared[T]) UseCount() uint {
	if s == nil || s.block == nil {
		return 0
	}
	return s.block.useCount()
}

// Clone returns a new strong handle sharing s's object.
// Cloning a nil *Shared returns an empty handle.
func (s *Shared[T]) Clone() Shared[T] {
	if s == nil {
		return Shared[T]{}
	}
	if s.block != nil {
		s.block.incStrong()
	}
	return Shared[T]{block: s.block, ptr: s.ptr}
}

// Move transfers s's ownership to the returned handle and leaves s empty.
func (s *Shared[T]) Move() Shared[T] {
	if s == nil {
		return Shared[T]{}
	}
	b, p := s.block, s.ptr
	s.block, s.ptr = nil, nil
	return Shared[T]{block: b, ptr: p}
}

// Assign makes s share other's object. The object s previously held is
// released only after the new one has been adopted, so s.Assign(s) and
// assignment between handles of the same object are safe.
func (s *Shared[T]) Assign(other *Shared[T]) {
	if s == other {
		return
	}
	tmp := other.Clone()
	s.swap(&tmp)
	tmp.Release()
}

// MoveAssign transfers other's ownership into s and leaves other empty.
// s.MoveAssign(s) does nothing.
func (s *Shared[T]) MoveAssign(other *Shared[T]) {
	if s == other {
		return
	}
	tmp := other.Move()
	s.swap(&tmp)
	tmp.Release()
}

// Release drops s's strong reference and leaves s empty. If s was the last
// strong handle, the object is destroyed. Releasing an empty handle does
// nothing, as does releasing a nil *Shared.
func (s *Shared[T]) Release() {
	if s == nil {
		return
	}
	b := s.block
	s.block, s.ptr = nil, nil
	if b != nil {
		b.decStrong()
	}
}

// Reset replaces s's ownership with ownership of p, as New would build it.
// The previous object is released afterwards. On ErrOutOfMemory s is left
// unchanged and deleter has already run on p.
func (s *Shared[T]) Reset(p *T, deleter func(*T)) error {
	tmp, err := New(p, deleter)
	if err != nil {
		return err
	}
	s.swap(&tmp)
	tmp.Release()
	return nil
}

// Equal reports whether both handles expose the same address. Handles from
// different control blocks can be equal, e.g. an alias and the handle that
// owns the sub-object it points at.
func (s *Shared[T]) Equal(other *Shared[T]) bool {
	return s.Get() == other.Get()
}

// Weak returns a weak handle observing s's object.
func (s *Shared[T]) Weak() Weak[T] {
	return NewWeak(s)
}

func (s *Shared[T]) swap(o *Shared[T]) {
	s.block, o.block = o.block, s.block
	s.ptr, o.ptr = o.ptr, s.ptr
}

// Alias returns a strong handle that shares owner's control block but exposes
// ptr, typically a field of owner's object. The object stays alive while the
// alias does. If owner is empty the result exposes ptr without owning
// anything.
func Alias[T, Q any](owner *Shared[Q], ptr *T) Shared[T] {
	if owner.block != nil {
		owner.block.incStrong()
	}
	return Shared[T]{block: owner.block, ptr: ptr}
}

// Convert returns a strong handle sharing s's object, exposed through conv.
// conv maps the object to the view the new handle should expose, such as
// an embedded struct or an interface implementation.
func Convert[T, Q any](s *Shared[Q], conv func(*Q) *T) Shared[T] {
	return Alias(s, convert(s.ptr, conv))
}

// ConvertMove is Convert without the extra reference: s's ownership moves to
// the result and s is left empty.
func ConvertMove[T, Q any](s *Shared[Q], conv func(*Q) *T) Shared[T] {
	b, p := s.block, s.ptr
	s.block, s.ptr = nil, nil
	return Shared[T]{block: b, ptr: convert(p, conv)}
}

func convert[T, Q any](p *Q, conv func(*Q) *T) *T {
	if p == nil {
		return nil
	}
	return conv(p)
}
