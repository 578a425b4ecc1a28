package format

// Alignment utilities for the heap block layout.
// Payload sizes are always rounded up to the native word size so that every
// header following a payload starts on a word boundary.

// AlignWord returns n aligned up to the next word (8-byte) boundary.
// Used for payload sizes and the minimum split remainder.
//
// Example:
//
//	AlignWord(1)  = 8
//	AlignWord(8)  = 8
//	AlignWord(9)  = 16
//	AlignWord(16) = 16
func AlignWord(n int) int {
	return (n + WordMask) & ^WordMask
}
