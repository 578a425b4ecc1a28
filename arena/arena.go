// Package arena provides the fixed-capacity byte region that a heap carves
// blocks from. The region is allocated once, up front, and space is handed
// out by advancing a monotonic break offset, analogous to a program break.
package arena

import (
	"errors"
	"fmt"

	"github.com/heapkit/heapkit/internal/membuf"
)

// ErrExhausted indicates that advancing the break would exceed capacity.
var ErrExhausted = errors.New("arena: capacity exhausted")

// Arena is a contiguous byte region plus the break offset separating used
// space from untouched space. The break only ever moves forward; freed blocks
// are recycled by the allocator, never returned here.
//
// An Arena is not safe for concurrent use.
type Arena struct {
	data    []byte
	brk     int
	release func() error
}

// New allocates an arena of exactly capacity bytes of anonymous memory.
func New(capacity int) (*Arena, error) {
	data, release, err := membuf.Alloc(capacity)
	if err != nil {
		return nil, err
	}
	return &Arena{data: data, release: release}, nil
}

// Bytes returns the full backing region. The slice stays valid until Close.
func (a *Arena) Bytes() []byte { return a.data }

// Cap returns the fixed capacity in bytes.
func (a *Arena) Cap() int { return len(a.data) }

// Brk returns the current break offset.
func (a *Arena) Brk() int { return a.brk }

// Carve advances the break by n bytes and returns the offset of the carved
// region. Fails with ErrExhausted when n bytes do not fit; the break is left
// unchanged in that case.
func (a *Arena) Carve(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("arena: invalid carve size %d", n)
	}
	if a.brk+n > len(a.data) {
		return 0, ErrExhausted
	}
	off := a.brk
	a.brk += n
	return off, nil
}

// Close releases the backing memory. The arena must not be used afterwards.
func (a *Arena) Close() error {
	if a.release == nil {
		return nil
	}
	release := a.release
	a.release = nil
	a.data = nil
	return release()
}
