package heap

import "github.com/heapkit/heapkit/internal/format"

// findFreeBlock locates a block with at least need payload bytes and returns
// its header offset, marked allocated-by-caller convention (the caller flips
// the flag). First-fit: the free list is scanned from the head and the first
// qualifying block is unlinked and split. On a miss the arena grows.
//
// need must already be word-aligned.
func (h *Heap) findFreeBlock(need int) (int, error) {
	data := h.a.Bytes()

	prev := format.InvalidRef
	cur := h.freeHead
	for steps := h.listBound(); cur != format.InvalidRef && steps > 0; steps-- {
		off := int(cur)
		// A list-order merge can produce a block whose claimed span runs past
		// the arena end; such a block can never be handed out safely, so the
		// scan skips it. See the package docs on merging.
		if format.IsFree(data, off) &&
			int(format.BlockSize(data, off)) >= need &&
			off+format.HeaderSize+need <= h.a.Cap() {
			next := format.NextRef(data, off)
			if prev != format.InvalidRef {
				format.PutNextRef(data, int(prev), next)
			} else {
				h.freeHead = next
			}
			h.split(off, need)
			return off, nil
		}
		prev = cur
		cur = format.NextRef(data, off)
	}

	return h.grow(need)
}

// grow carves a fresh chunk from the arena. Chunks are at least minChunk
// bytes so repeated small requests advance the break in large steps. The new
// block starts out allocated and off-list; when the chunk leaves more than a
// minimal block of slack, the surplus is split off immediately.
func (h *Heap) grow(need int) (int, error) {
	chunk := need + format.HeaderSize
	if chunk < minChunk {
		chunk = minChunk
	}

	off, err := h.a.Carve(chunk)
	if err != nil {
		return 0, ErrNoSpace
	}

	data := h.a.Bytes()
	blockSize := chunk - format.HeaderSize
	format.PutBlockSize(data, off, uint32(blockSize))
	format.PutNextRef(data, off, format.InvalidRef)
	format.PutFree(data, off, false)
	h.stats.grows++

	if blockSize > need+minBlockSize {
		h.split(off, need)
	}
	return off, nil
}
