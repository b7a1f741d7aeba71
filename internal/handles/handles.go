// Package handles keeps a registry of live control blocks.
//
// Registration is opt-in (see rc.SetTracking) and is used to find handles
// that were never released. The registry is shared by every goroutine, so
// unlike a control block's counters it is guarded by a mutex.
package handles

import (
	"sort"
	"sync"
)

// Record describes one registered control block.
type Record struct {
	// ID is the handle returned by Register. IDs grow monotonically, so they
	// also order records by allocation time.
	ID uintptr
	// Kind names the managed type and the block variant.
	Kind string
}

var (
	mu      sync.RWMutex
	records = make(map[uintptr]Record)
	nextID  uintptr = 1
)

// Register records a live block of the given kind and returns its ID.
// The ID is never zero, so zero can mean "not tracked".
//
// Thread-safe.
func Register(kind string) uintptr {
	mu.Lock()
	defer mu.Unlock()
	id := nextID
	nextID++
	records[id] = Record{ID: id, Kind: kind}
	return id
}

// Unregister forgets id. Unknown IDs are ignored.
//
// Thread-safe.
func Unregister(id uintptr) {
	mu.Lock()
	defer mu.Unlock()
	delete(records, id)
}

// Count returns the number of registered blocks.
//
// Thread-safe.
func Count() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(records)
}

// Snapshot returns all registered records ordered by ID.
//
// Thread-safe.
func Snapshot() []Record {
	mu.RLock()
	out := make([]Record, 0, len(records))
	for _, r := range records {
		out = append(out, r)
	}
	mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
