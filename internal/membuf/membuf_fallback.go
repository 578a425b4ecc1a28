//go:build !unix && !windows

// Package membuf provides platform-specific anonymous memory for arenas.
package membuf

import "fmt"

// Alloc falls back to a garbage-collected slice when no platform allocator
// is available.
func Alloc(size int) ([]byte, func() error, error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("membuf: invalid size %d", size)
	}
	return make([]byte, size), func() error { return nil }, nil
}
