package heap

import "errors"

var (
	// ErrZeroSize indicates an allocation request of zero or negative size.
	ErrZeroSize = errors.New("heap: zero-size allocation")

	// ErrNoSpace indicates the arena is exhausted: no free block fits and the
	// break cannot advance far enough for a new chunk.
	ErrNoSpace = errors.New("heap: arena exhausted")

	// ErrBadRef indicates a ref that was never produced by this heap.
	// Only reported when live tracking is enabled.
	ErrBadRef = errors.New("heap: bad block reference")

	// ErrDoubleFree indicates a ref that was already freed.
	// Only reported when live tracking is enabled.
	ErrDoubleFree = errors.New("heap: block already free")

	// ErrCapacity indicates an invalid capacity passed to New.
	ErrCapacity = errors.New("heap: invalid arena capacity")
)
