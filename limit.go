package rc

import "go.uber.org/atomic"

// Usage reports process-wide control block accounting.
type Usage struct {
	// LiveBlocks is the number of control blocks not yet retired.
	LiveBlocks int64
	// LiveObjects is the number of managed objects not yet destroyed.
	LiveObjects int64
	// Allocated is the total number of control blocks ever allocated.
	Allocated int64
	// Refused is the number of allocations refused with ErrOutOfMemory.
	Refused int64
	// Limit is the configured block budget; <= 0 means unlimited.
	Limit int64
}

var (
	blockLimit  atomic.Int64
	liveBlocks  atomic.Int64
	liveObjects atomic.Int64
	allocated   atomic.Int64
	refused     atomic.Int64
)

// SetBlockLimit sets the maximum number of live control blocks.
// Once reached, constructing a handle fails with ErrOutOfMemory until a block
// is retired. A limit <= 0 disables enforcement.
//
// Lowering the limit below the current live count does not affect existing
// blocks.
func SetBlockLimit(n int64) {
	blockLimit.Store(n)
}

// BlockUsage returns a snapshot of the control block accounting.
func BlockUsage() Usage {
	return Usage{
		LiveBlocks:  liveBlocks.Load(),
		LiveObjects: liveObjects.Load(),
		Allocated:   allocated.Load(),
		Refused:     refused.Load(),
		Limit:       blockLimit.Load(),
	}
}

// reserveBlock claims budget for one control block.
func reserveBlock() error {
	n := liveBlocks.Inc()
	if lim := blockLimit.Load(); lim > 0 && n > lim {
		liveBlocks.Dec()
		refused.Inc()
		Logger().Error(ErrOutOfMemory, "control block allocation refused", "limit", lim, "live", n-1)
		return ErrOutOfMemory
	}
	allocated.Inc()
	liveObjects.Inc()
	return nil
}

// unreserveBlock gives back a reservation whose block was never built.
func unreserveBlock() {
	liveBlocks.Dec()
	liveObjects.Dec()
	allocated.Dec()
}
