// Copyright (c) 2025 Visvasity LLC

package pod

import "bytes"

var zeros [4096]byte

// isZero returns true if input slice is all zeros.
func isZero(bs []byte) bool {
	size := len(bs)
	for i, sz := 0, 0; i < size; i += sz {
		sz = min(size-i, len(zeros))
		if !bytes.Equal(bs[i:i+sz], zeros[:sz]) {
			return false
		}
	}
	return true
}

// IsZero reports whether every byte of *v is zero.
func (p Pod[T]) IsZero(v *T) bool {
	return isZero(bytesOf(v))
}

// SetZero overwrites *v with zero bytes. The all-zero pattern is a valid
// value of every granted type.
func (p Pod[T]) SetZero(v *T) {
	clear(bytesOf(v))
}

// SliceIsZero reports whether every byte backing the elements of s is zero.
func (p Pod[T]) SliceIsZero(s []T) bool {
	return isZero(bytesOfElems(s))
}

func (p Pod[T]) SliceSetZero(s []T) {
	clear(bytesOfElems(s))
}
