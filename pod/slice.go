// Copyright (c) 2025 Visvasity LLC

package pod

import "math"

// SliceAsBytes returns the bytes backing s, len(s)*Size() of them, in element
// order. A fixed array a is viewed with SliceAsBytes(a[:]).
func (p Pod[T]) SliceAsBytes(s []T) []byte {
	return bytesOfElems(s)
}

// SliceAsBytesMut is the mutable form of SliceAsBytes.
func (p Pod[T]) SliceAsBytesMut(s []T) []byte {
	return bytesOfElems(s)
}

// SliceFromBytes returns b reinterpreted as exactly n elements of T. It fails
// with a *SizeError unless len(b) is n*Size().
func (p Pod[T]) SliceFromBytes(b []byte, n int) ([]T, error) {
	if err := checkElems(len(b), n, p.Size()); err != nil {
		return nil, err
	}
	return elemsAt[T](b, n), nil
}

// SliceFromBytesMut is the mutable form of SliceFromBytes.
func (p Pod[T]) SliceFromBytesMut(b []byte, n int) ([]T, error) {
	if err := checkElems(len(b), n, p.Size()); err != nil {
		return nil, err
	}
	return elemsAt[T](b, n), nil
}

// SliceFromBytesUnchecked is SliceFromBytes without the length check. len(b)
// must be at least n*Size().
func (p Pod[T]) SliceFromBytesUnchecked(b []byte, n int) []T {
	return elemsAt[T](b, n)
}

func checkElems(got, n, size int) error {
	if n < 0 || (size > 0 && n > math.MaxInt/size) {
		return &SizeError{Want: -1, Got: got}
	}
	if n*size != got {
		return &SizeError{Want: n * size, Got: got}
	}
	return nil
}
