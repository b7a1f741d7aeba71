package rc

import (
	"github.com/obinnaokechukwu/rc/internal/handles"
)

// payload is the variant-specific part of a control block: it knows how to
// destroy the managed object.
type payload interface {
	destroyObject()
	kind() string
}

// controlBlock holds the strong and weak counters shared by every handle to
// one managed object.
//
// Every strong unit also holds one weak unit, so weak reaches zero only after
// strong has. The object is destroyed when strong drops to zero and the block
// retires itself when weak drops to zero.
//
// The counters are plain integers. A block must only be used from one
// goroutine at a time.
type controlBlock struct {
	strong  uint
	weak    uint
	payload payload
	trackID uintptr
}

// bind attaches the variant and performs the accounting for a fresh block.
// reserveBlock must have succeeded before bind is called.
func (b *controlBlock) bind(p payload) {
	b.payload = p
	if tracking.Load() {
		b.trackID = handles.Register(p.kind())
	}
	if traceEnabled() {
		Logger().V(LogLifecycle).Info("control block allocated", "kind", p.kind())
	}
}

func (b *controlBlock) incStrong() {
	b.strong++
	b.incWeak()
}

func (b *controlBlock) decStrong() {
	if b.strong == 0 {
		panic(errStrongUnderflow)
	}
	b.strong--
	if b.strong == 0 {
		b.destroy()
	}
	b.decWeak()
}

func (b *controlBlock) incWeak() {
	b.weak++
}

func (b *controlBlock) decWeak() {
	if b.weak == 0 {
		panic(errWeakUnderflow)
	}
	b.weak--
	if b.weak == 0 {
		b.retire()
	}
}

func (b *controlBlock) useCount() uint {
	return b.strong
}

func (b *controlBlock) destroy() {
	if traceEnabled() {
		Logger().V(LogLifecycle).Info("managed object destroyed", "kind", b.payload.kind())
	}
	b.payload.destroyObject()
	liveObjects.Dec()
}

// retire is the last thing that happens to a block. The payload is dropped so
// the collector can reclaim the variant and anything it still references.
func (b *controlBlock) retire() {
	if traceEnabled() {
		Logger().V(LogLifecycle).Info("control block retired", "kind", b.payload.kind())
	}
	if b.trackID != 0 {
		handles.Unregister(b.trackID)
		b.trackID = 0
	}
	b.payload = nil
	liveBlocks.Dec()
}
