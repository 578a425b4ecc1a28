//go:build unix

package membuf

import "testing"

func TestAllocReadWrite(t *testing.T) {
	size := 1 << 16
	data, cleanup, err := Alloc(size)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	defer func() {
		if cleanupErr := cleanup(); cleanupErr != nil {
			t.Fatalf("cleanup: %v", cleanupErr)
		}
	}()
	if len(data) != size {
		t.Fatalf("len mismatch: got %d want %d", len(data), size)
	}
	// Anonymous pages must come back zeroed.
	for _, i := range []int{0, size / 2, size - 1} {
		if data[i] != 0 {
			t.Fatalf("byte %d not zero: 0x%x", i, data[i])
		}
	}
	data[0] = 0xde
	data[size-1] = 0xef
	if data[0] != 0xde || data[size-1] != 0xef {
		t.Fatalf("write did not stick")
	}
}

func TestAllocInvalidSize(t *testing.T) {
	if _, _, err := Alloc(0); err == nil {
		t.Fatalf("expected error for zero size")
	}
	if _, _, err := Alloc(-1); err == nil {
		t.Fatalf("expected error for negative size")
	}
}

func TestCleanupTwice(t *testing.T) {
	data, cleanup, err := Alloc(4096)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	_ = data
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if err := cleanup(); err != nil {
		t.Fatalf("second cleanup should be a no-op: %v", err)
	}
}
