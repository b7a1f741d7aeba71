package rc

// Weak observes an object managed by Shared handles without keeping it alive.
// Lock upgrades it to a strong handle while the object still exists.
//
// The zero value is an empty handle. As with Shared, copy with Clone,
// transfer with Move and finish with Release; the control block is retired
// only after every weak handle has been released.
type Weak[T any] struct {
	_     noCopy
	block *controlBlock
	ptr   *T
}

// NewWeak returns a weak handle observing s's object. The strong count is
// not affected.
func NewWeak[T any](s *Shared[T]) Weak[T] {
	if s.block != nil {
		s.block.incWeak()
	}
	return Weak[T]{block: s.block, ptr: s.ptr}
}

// IsNil reports whether w observes nothing.
func (w *Weak[T]) IsNil() bool {
	return w == nil || w.block == nil
}

// UseCount returns the number of strong handles to the observed object,
// or 0 if w is empty.
func (w *Weak[T]) UseCount() uint {
	if w.IsNil() {
		return 0
	}
	return w.block.useCount()
}

// Expired reports whether the observed object has been destroyed
// (or w is empty).
func (w *Weak[T]) Expired() bool {
	return w.UseCount() == 0
}

// Lock returns a strong handle to the observed object, or an empty handle if
// w is empty or the object has already been destroyed.
//
// The liveness check and the increment are two plain steps; Lock is only
// correct under the single-goroutine rule that applies to all handles of a
// control block.
func (w *Weak[T]) Lock() Shared[T] {
	if w.IsNil() || w.block.useCount() == 0 {
		return Shared[T]{}
	}
	w.block.incStrong()
	return Shared[T]{block: w.block, ptr: w.ptr}
}

// Clone returns another weak handle observing the same object.
func (w *Weak[T]) Clone() Weak[T] {
	if w == nil {
		return Weak[T]{}
	}
	if w.block != nil {
		w.block.incWeak()
	}
	return Weak[T]{block: w.block, ptr: w.ptr}
}

// Move transfers w's observation to the returned handle and leaves w empty.
func (w *Weak[T]) Move() Weak[T] {
	if w == nil {
		return Weak[T]{}
	}
	b, p := w.block, w.ptr
	w.block, w.ptr = nil, nil
	return Weak[T]{block: b, ptr: p}
}

// Assign makes w observe other's object. The previous observation is
// released after the new one is adopted.
func (w *Weak[T]) Assign(other *Weak[T]) {
	if w == other {
		return
	}
	tmp := other.Clone()
	w.swap(&tmp)
	tmp.Release()
}

// AssignShared makes w observe s's object.
func (w *Weak[T]) AssignShared(s *Shared[T]) {
	tmp := NewWeak(s)
	w.swap(&tmp)
	tmp.Release()
}

// MoveAssign transfers other's observation into w and leaves other empty.
// w.MoveAssign(w) does nothing.
func (w *Weak[T]) MoveAssign(other *Weak[T]) {
	if w == other {
		return
	}
	tmp := other.Move()
	w.swap(&tmp)
	tmp.Release()
}

// Release drops w's weak reference and leaves w empty.
func (w *Weak[T]) Release() {
	if w == nil {
		return
	}
	b := w.block
	w.block, w.ptr = nil, nil
	if b != nil {
		b.decWeak()
	}
}

func (w *Weak[T]) swap(o *Weak[T]) {
	w.block, o.block = o.block, w.block
	w.ptr, o.ptr = o.ptr, w.ptr
}

// ConvertWeak returns a weak handle observing w's object through conv.
// conv may be called after the object has been destroyed, so it must only
// compute an address (take a field, convert a pointer) and never read
// through it.
func ConvertWeak[T, Q any](w *Weak[Q], conv func(*Q) *T) Weak[T] {
	if w.block != nil {
		w.block.incWeak()
	}
	return Weak[T]{block: w.block, ptr: convert(w.ptr, conv)}
}

// ConvertWeakMove is ConvertWeak that moves w's observation to the result
// and leaves w empty.
func ConvertWeakMove[T, Q any](w *Weak[Q], conv func(*Q) *T) Weak[T] {
	b, p := w.block, w.ptr
	w.block, w.ptr = nil, nil
	return Weak[T]{block: b, ptr: convert(p, conv)}
}
