// Package rc provides reference-counted shared ownership with weak observers.
//
// A Shared handle owns a value together with every other Shared handle built
// from it; the value's release action runs exactly once, when the last of
// them is released. A Weak handle observes the value without keeping it alive
// and can be upgraded with Lock while the value still exists.
//
// The garbage collector still reclaims memory. What rc adds is deterministic
// release of what the collector does not manage: C heap memory (see package
// cmem), file descriptors, pooled buffers, connections.
//
// Handles are created with New (take ownership of an existing value and its
// release action) or Make / MakeWith (store the value inside the control
// block, one allocation):
//
//	conn, err := rc.New(c, func(c *Conn) { c.Close() })
//	if err != nil {
//		return err
//	}
//	defer conn.Release()
//
//	other := conn.Clone() // UseCount() == 2
//	w := conn.Weak()
//	defer w.Release()
//
// Handles are not safe for concurrent use. All handles to one value share
// plain, non-atomic counters and must be used from one goroutine at a time.
// Copying a handle by assignment bypasses the counters; go vet reports it.
package rc
