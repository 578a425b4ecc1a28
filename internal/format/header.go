// Package format defines the binary layout of heap block headers and the
// alignment rules shared by the arena and the allocator.
package format

import "encoding/binary"

// Block header layout (little-endian):
//
//	Offset  Size  Description
//	0x00    4     Payload size in bytes. Excludes the header itself.
//	0x04    4     Free-list link: header offset of the next free block,
//	              or InvalidRef when this is the last list entry.
//	0x08    4     Flags. Bit 0 set => block is free.
//	0x0C    4     Reserved/pad (keeps the header word-aligned).
//
// A header is always immediately followed by exactly `size` payload bytes.
const (
	// HeaderSize is the fixed size of a block header in bytes.
	HeaderSize = 16

	// WordSize is the native word size; payload sizes align to it.
	WordSize = 8

	// WordMask is WordSize - 1, for alignment arithmetic.
	WordMask = WordSize - 1

	// InvalidRef is the nil value for block references and free-list links.
	InvalidRef = ^uint32(0)

	// FlagFree marks a block as free in the header flags word.
	FlagFree = uint32(1)

	sizeOffset  = 0x00
	nextOffset  = 0x04
	flagsOffset = 0x08
)

// BlockSize reads the payload size of the header at off.
func BlockSize(b []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(b[off+sizeOffset:])
}

// PutBlockSize writes the payload size of the header at off.
func PutBlockSize(b []byte, off int, size uint32) {
	binary.LittleEndian.PutUint32(b[off+sizeOffset:], size)
}

// NextRef reads the free-list link of the header at off.
func NextRef(b []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(b[off+nextOffset:])
}

// PutNextRef writes the free-list link of the header at off.
func PutNextRef(b []byte, off int, next uint32) {
	binary.LittleEndian.PutUint32(b[off+nextOffset:], next)
}

// IsFree reports whether the header at off is marked free.
func IsFree(b []byte, off int) bool {
	return binary.LittleEndian.Uint32(b[off+flagsOffset:])&FlagFree != 0
}

// PutFree sets or clears the free flag of the header at off.
// The reserved word is zeroed so freshly carved headers are fully initialized.
func PutFree(b []byte, off int, free bool) {
	var flags uint32
	if free {
		flags = FlagFree
	}
	binary.LittleEndian.PutUint32(b[off+flagsOffset:], flags)
	binary.LittleEndian.PutUint32(b[off+flagsOffset+4:], 0)
}
