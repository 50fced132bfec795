// Copyright (c) 2025 Visvasity LLC

package pod

import "unsafe"

// All reinterpretation in this package goes through the functions in this
// file. Callers must guarantee:
//
//   - T has been granted the capability (Of or Attest).
//   - For valueAt and elemsAt, b holds exactly the bytes being reinterpreted.
//   - No mutable view overlaps any other live view of the same memory.

func sizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// bytesOf returns the sizeof(T) bytes starting at v.
func bytesOf[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), sizeOf[T]())
}

// valueAt returns a *T aliasing the start of b.
func valueAt[T any](b []byte) *T {
	if sizeOf[T]() == 0 {
		// An empty b may have a nil data pointer.
		return new(T)
	}
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// bytesOfElems returns the bytes backing s. Length and capacity scale by the
// element size, so a []byte comes back unchanged, empty and nil slices
// included.
func bytesOfElems[T any](s []T) []byte {
	if s == nil {
		return nil
	}
	size := sizeOf[T]()
	data := (*byte)(unsafe.Pointer(unsafe.SliceData(s)))
	return unsafe.Slice(data, cap(s)*size)[:len(s)*size]
}

// elemsAt returns n elements of T aliasing b.
func elemsAt[T any](b []byte, n int) []T {
	if n == 0 {
		return []T{}
	}
	if sizeOf[T]() == 0 {
		return make([]T, n)
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}
