package rc

import (
	"go.uber.org/atomic"

	"github.com/obinnaokechukwu/rc/internal/handles"
)

// BlockInfo describes a live control block registered while tracking was on.
type BlockInfo struct {
	// Seq orders blocks by allocation.
	Seq uint64
	// Kind is the managed type followed by the block variant,
	// e.g. "main.Conn/separate".
	Kind string
}

var tracking atomic.Bool

// SetTracking turns registration of newly allocated control blocks on or off.
// Blocks allocated while tracking is off are never reported by LiveBlocks.
func SetTracking(on bool) {
	tracking.Store(on)
}

// LiveBlocks returns the tracked control blocks that have not been retired,
// oldest first.
func LiveBlocks() []BlockInfo {
	recs := handles.Snapshot()
	out := make([]BlockInfo, len(recs))
	for i, r := range recs {
		out[i] = BlockInfo{Seq: uint64(r.ID), Kind: r.Kind}
	}
	return out
}

// TrackedBlockCount returns the number of tracked control blocks that have
// not been retired. It is len(LiveBlocks()) without building the list.
func TrackedBlockCount() int {
	return handles.Count()
}
