package heap

import "github.com/heapkit/heapkit/internal/format"

// mergeFree makes a single forward pass over the free list and absorbs each
// free successor into its free predecessor, in list order. After absorbing,
// the current block is revisited so runs of free neighbors collapse in one
// pass. List order is not address order: blocks adjacent in memory are only
// combined when they also sit next to each other in the list.
func (h *Heap) mergeFree() {
	data := h.a.Bytes()

	cur := h.freeHead
	for steps := h.listBound(); cur != format.InvalidRef && steps > 0; steps-- {
		next := format.NextRef(data, int(cur))
		if next == format.InvalidRef {
			break
		}
		if next == cur {
			// Self-link: only reachable from a corrupted list. Truncate so
			// later traversals terminate.
			format.PutNextRef(data, int(cur), format.InvalidRef)
			break
		}
		if format.IsFree(data, int(cur)) && format.IsFree(data, int(next)) {
			merged := format.BlockSize(data, int(cur)) +
				format.BlockSize(data, int(next)) +
				format.HeaderSize
			format.PutBlockSize(data, int(cur), merged)
			format.PutNextRef(data, int(cur), format.NextRef(data, int(next)))
			h.stats.merges++
		} else {
			cur = next
		}
	}
}
