package heap

import "github.com/heapkit/heapkit/internal/format"

// Ref is a block handle: the uint32 offset of the block's payload from the
// arena start. The block header occupies the 16 bytes preceding the payload.
type Ref = uint32

// NilRef is the null block handle. Alloc returns it on failure and
// Free(NilRef) is a no-op.
const NilRef Ref = format.InvalidRef

// DefaultCapacity is the arena size used when WithCapacity is not given.
const DefaultCapacity = 1 << 20 // 1 MiB

// minChunk is the minimum amount the break advances per growth, amortizing
// repeated small requests.
const minChunk = 16 << 10 // 16 KiB

// minBlockSize is one header plus one aligned word: the smallest worthwhile
// block, used by the growth path to decide whether to split a fresh chunk.
const minBlockSize = format.HeaderSize + format.WordSize

// maxCapacity bounds the arena so every header and payload offset fits in a
// Ref, with InvalidRef reserved as the sentinel.
const maxCapacity = int64(1)<<32 - 1

// BlockInfo describes one free block for diagnostics and tests.
type BlockInfo struct {
	Ref  Ref // payload offset
	Size int // payload bytes
}

type config struct {
	capacity int
	track    bool
}

// Option configures a Heap at construction.
type Option func(*config)

// WithCapacity sets the arena capacity in bytes. The capacity is fixed for
// the lifetime of the heap; it must hold at least one minimal block and fit
// in 32-bit offsets.
func WithCapacity(n int) Option {
	return func(c *config) { c.capacity = n }
}

// WithLiveTracking keeps a registry of outstanding refs so that Free reports
// ErrBadRef for foreign refs and ErrDoubleFree for repeated frees. Intended
// for tests; the default path performs no validation.
func WithLiveTracking() Option {
	return func(c *config) { c.track = true }
}
