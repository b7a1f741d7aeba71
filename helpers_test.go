package rc

import (
	"errors"
	"testing"
)

// resource counts Close calls.
type resource struct {
	id     int
	closed int
	err    error
}

func (r *resource) Close() error {
	r.closed++
	return r.err
}

var errCloseFailed = errors.New("close failed")

// withBlockLimit sets the block budget for the duration of the test.
func withBlockLimit(t *testing.T, n int64) {
	t.Helper()
	prev := BlockUsage().Limit
	SetBlockLimit(n)
	t.Cleanup(func() { SetBlockLimit(prev) })
}

// exhaustBudget allocates one block and caps the budget at the current live
// count, so the next allocation is refused until the test ends.
func exhaustBudget(t *testing.T) {
	t.Helper()
	held, err := Make(0)
	if err != nil {
		t.Fatalf("Make failed: %v", err)
	}
	withBlockLimit(t, BlockUsage().LiveBlocks)
	t.Cleanup(held.Release)
}

// counting returns a deleter that counts its calls in *n.
func counting[T any](n *int) func(*T) {
	return func(*T) { *n++ }
}

func mustNew[T any](t *testing.T, p *T, deleter func(*T)) Shared[T] {
	t.Helper()
	s, err := New(p, deleter)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s.Move()
}

func mustMake[T any](t *testing.T, v T) Shared[T] {
	t.Helper()
	s, err := Make(v)
	if err != nil {
		t.Fatalf("Make failed: %v", err)
	}
	return s.Move()
}
