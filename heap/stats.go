package heap

import "github.com/heapkit/heapkit/internal/format"

// counters accumulates operation counts as the heap runs.
type counters struct {
	allocs uint64
	frees  uint64
	grows  uint64
	splits uint64
	merges uint64
}

// Stats is a point-in-time snapshot of heap state, for instrumentation,
// the stress driver's report, and tests.
type Stats struct {
	Allocs uint64 // successful Alloc calls
	Frees  uint64 // Free calls that released a block
	Grows  uint64 // chunks carved from the arena
	Splits uint64 // blocks divided by the splitter
	Merges uint64 // free-list neighbor pairs absorbed

	BreakOffset int // current arena break
	Capacity    int // fixed arena capacity

	FreeBlocks  int // blocks currently on the free list
	FreeBytes   int // payload bytes across free blocks
	LargestFree int // payload bytes of the largest free block
}

// Stats walks the free list and returns a snapshot.
func (h *Heap) Stats() Stats {
	s := Stats{
		Allocs:      h.stats.allocs,
		Frees:       h.stats.frees,
		Grows:       h.stats.grows,
		Splits:      h.stats.splits,
		Merges:      h.stats.merges,
		BreakOffset: h.a.Brk(),
		Capacity:    h.a.Cap(),
	}
	data := h.a.Bytes()
	cur := h.freeHead
	for steps := h.listBound(); cur != format.InvalidRef && steps > 0; steps-- {
		size := int(format.BlockSize(data, int(cur)))
		s.FreeBlocks++
		s.FreeBytes += size
		if size > s.LargestFree {
			s.LargestFree = size
		}
		cur = format.NextRef(data, int(cur))
	}
	return s
}

// FreeBlocks returns the free list in list order, head first.
func (h *Heap) FreeBlocks() []BlockInfo {
	var blocks []BlockInfo
	data := h.a.Bytes()
	cur := h.freeHead
	for steps := h.listBound(); cur != format.InvalidRef && steps > 0; steps-- {
		blocks = append(blocks, BlockInfo{
			Ref:  Ref(int(cur) + format.HeaderSize),
			Size: int(format.BlockSize(data, int(cur))),
		})
		cur = format.NextRef(data, int(cur))
	}
	return blocks
}
