// Package heap implements a user-space heap memory manager over a single
// fixed-capacity arena.
//
// # Overview
//
// A Heap hands out variable-sized blocks from an arena it owns, without
// touching the Go runtime allocator for payload memory. It is intended for
// embedded or constrained programs that manage their own pool. The design is
// a classic free-list allocator:
//
//   - Blocks are a 16-byte header followed by the payload.
//   - Free blocks form a singly linked, unordered list with head insertion.
//   - Allocation is a first-fit scan of the free list.
//   - On a miss, the arena break is advanced in chunks of at least 16 KiB.
//   - Oversized blocks are split; freeing runs a list-order merge pass.
//
// # Usage Example
//
//	h, err := heap.New(heap.WithCapacity(1 << 20))
//	if err != nil {
//	    return err
//	}
//	defer h.Close()
//
//	ref, buf, err := h.Alloc(256)
//	if err != nil {
//	    return err
//	}
//
//	// Write into buf...
//	copy(buf, payload)
//
//	// Later, hand the block back
//	err = h.Free(ref)
//
// # Block References
//
// Refs are uint32 offsets of a block's payload from the arena start. NilRef
// is the null handle; Free(NilRef) is a no-op. A Ref must only be passed to
// the Heap that produced it, and only once per allocation — the default path
// performs no validation. The WithLiveTracking option adds a registry of
// outstanding refs that turns double frees and foreign refs into errors,
// for use in tests.
//
// # Allocation Behavior
//
// Requested sizes are rounded up to the native word (8 bytes). A request may
// receive more than it asked for when the chosen free block is too small to
// split profitably. Growth carves chunks of max(request+header, 16 KiB) so
// small requests do not advance the break one block at a time.
//
// Merging walks the free list in list order, not address order, and absorbs
// each free neighbor pair it finds. Two blocks adjacent in memory are only
// combined when they are also adjacent in the list.
//
// # Thread Safety
//
// A Heap is not safe for concurrent use. Callers must serialize access
// externally.
package heap
