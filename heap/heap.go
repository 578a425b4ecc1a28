package heap

import (
	"fmt"

	"github.com/heapkit/heapkit/arena"
	"github.com/heapkit/heapkit/internal/format"
)

// Heap is a single-arena allocator instance. Independent heaps do not share
// any state, so tests and subsystems can each own one.
//
// Not safe for concurrent use.
type Heap struct {
	a        *arena.Arena
	freeHead uint32 // header offset of the first free block, InvalidRef if none

	// live tracks outstanding payload refs when WithLiveTracking is set.
	// A true value means allocated, false means freed. Nil when disabled.
	live map[Ref]bool

	stats counters
}

// New creates a heap with its own arena.
func New(opts ...Option) (*Heap, error) {
	cfg := config{capacity: DefaultCapacity}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.capacity < minBlockSize || int64(cfg.capacity) > maxCapacity {
		return nil, fmt.Errorf("%w: %d bytes", ErrCapacity, cfg.capacity)
	}
	a, err := arena.New(cfg.capacity)
	if err != nil {
		return nil, err
	}
	h := &Heap{a: a, freeHead: format.InvalidRef}
	if cfg.track {
		h.live = make(map[Ref]bool)
	}
	return h, nil
}

// Alloc hands out a block of at least size bytes and returns its ref together
// with the payload slice. The payload may be longer than requested when the
// chosen block was not worth splitting. Fails with ErrZeroSize for size <= 0
// and ErrNoSpace when the arena is exhausted.
func (h *Heap) Alloc(size int) (Ref, []byte, error) {
	if size <= 0 {
		return NilRef, nil, ErrZeroSize
	}
	need := format.AlignWord(size)

	off, err := h.findFreeBlock(need)
	if err != nil {
		return NilRef, nil, err
	}

	data := h.a.Bytes()
	format.PutFree(data, off, false)
	h.stats.allocs++

	ref := Ref(off + format.HeaderSize)
	if h.live != nil {
		h.live[ref] = true
	}
	// A list-order merge can inflate a block's size past the arena end; the
	// search guarantees `need` bytes exist, so clamp the view to the arena.
	end := off + format.HeaderSize + int(format.BlockSize(data, off))
	if end > len(data) {
		end = len(data)
	}
	return ref, data[off+format.HeaderSize : end], nil
}

// Free hands a block back to the heap: the block is marked free, pushed onto
// the free-list head, and a merge pass runs. Free(NilRef) is a no-op.
//
// Without live tracking, passing a ref not produced by Alloc, or freeing the
// same ref twice, is out of contract and silently corrupts the free list.
func (h *Heap) Free(ref Ref) error {
	if ref == NilRef {
		return nil
	}
	if h.live != nil {
		alive, ok := h.live[ref]
		if !ok {
			return ErrBadRef
		}
		if !alive {
			return ErrDoubleFree
		}
		h.live[ref] = false
	}

	off := int(ref) - format.HeaderSize
	data := h.a.Bytes()
	format.PutFree(data, off, true)
	h.pushFree(off)
	h.stats.frees++

	h.mergeFree()
	return nil
}

// pushFree inserts the block at header offset off at the free-list head.
func (h *Heap) pushFree(off int) {
	format.PutNextRef(h.a.Bytes(), off, h.freeHead)
	h.freeHead = uint32(off)
}

// listBound caps free-list traversals. A sane list cannot hold more entries
// than minimal blocks fit in the arena; a longer chain means out-of-contract
// frees corrupted the list, and walking it forever helps nobody.
func (h *Heap) listBound() int {
	return h.a.Cap()/minBlockSize + 1
}

// Close releases the arena. Outstanding refs become invalid.
func (h *Heap) Close() error {
	return h.a.Close()
}
