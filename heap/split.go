package heap

import "github.com/heapkit/heapkit/internal/format"

// split trims the block at header offset off down to need payload bytes,
// carving the surplus into a new free block that goes straight onto the
// free-list head. Splitting only happens when the remainder can hold a
// header plus at least one word of payload; otherwise the block is left
// whole and the caller receives the extra bytes.
//
// need must be word-aligned, so the remainder header lands word-aligned too.
func (h *Heap) split(off, need int) {
	data := h.a.Bytes()
	size := int(format.BlockSize(data, off))
	if size < need+format.HeaderSize+format.WordSize {
		return
	}

	remOff := off + format.HeaderSize + need
	remSize := size - need - format.HeaderSize
	if remOff+format.HeaderSize+format.WordSize > len(data) {
		// A quirk-merged block can claim space past the arena end; never
		// write a remainder header outside it.
		return
	}
	format.PutBlockSize(data, remOff, uint32(remSize))
	format.PutFree(data, remOff, true)
	h.pushFree(remOff)

	format.PutBlockSize(data, off, uint32(need))
	h.stats.splits++
}
