// Copyright (c) 2025 Visvasity LLC

// Package pod reinterprets plain-old-data values as raw bytes and raw bytes
// as plain-old-data values without copying.
//
// A type is plain-old-data when every bit pattern of its storage is a valid
// value and the storage holds no padding, pointers or niches. The compiler
// cannot verify that, so the capability is granted explicitly:
//
//   - Primitive integers and floats are granted through the Scalar constraint
//     (see Of and the package level functions).
//   - Fixed arrays of granted types are handled by the slice functions over
//     a[:].
//   - Structs, named arrays and types from other libraries are granted with
//     Attest. The bytesagent generator verifies the layout of such types with
//     go/types and emits the Attest calls, so hand written Attest calls should
//     be rare.
//
// Views returned by AsBytes and values returned by FromBytes alias the
// original memory. The usual borrow rules apply and are not enforced: a
// read-only view must not be written, and a mutable view must not coexist
// with any other view of the same memory.
package pod

import "golang.org/x/exp/constraints"

// Scalar is the closed set of primitive kinds that carry the capability.
// bool is excluded because only 0 and 1 are valid bit patterns.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Type is implemented by pointers to generated plain-old-data types.
type Type interface {
	AsBytes() []byte
	AsBytesMut() []byte
}

// Pod is the conformance witness for T. Holding a Pod[T] means T has been
// granted the plain-old-data capability. The zero value is not usable
// outside this package; use Of or Attest.
type Pod[T any] struct {
	_ [0]func() // not comparable
}

// Of grants the capability to a primitive type.
func Of[T Scalar]() Pod[T] {
	return Pod[T]{}
}

// Attest grants the capability to T on the caller's word. T must have no
// padding bytes, no pointers and no invalid bit patterns. Nothing is checked;
// granting it to any other type makes every operation on the witness
// undefined behavior.
func Attest[T any]() Pod[T] {
	return Pod[T]{}
}

// Size returns the size of T in bytes.
func (Pod[T]) Size() int {
	return sizeOf[T]()
}

// AsBytes returns the bytes of *v. The view must not be written to and must
// not be used while *v is mutated through other means.
func (p Pod[T]) AsBytes(v *T) []byte {
	return bytesOf(v)
}

// AsBytesMut returns the bytes of *v for writing. Writes are immediately
// visible through v. No other view of *v may be live at the same time.
func (p Pod[T]) AsBytesMut(v *T) []byte {
	return bytesOf(v)
}

// FromBytes returns b reinterpreted as a T. It fails with a *SizeError unless
// len(b) is exactly the size of T. The result aliases b and must not be
// written to.
func (p Pod[T]) FromBytes(b []byte) (*T, error) {
	if err := checkSize(len(b), p.Size()); err != nil {
		return nil, err
	}
	return valueAt[T](b), nil
}

// FromBytesMut is like FromBytes but the caller may write through the
// result. Writes are visible in b.
func (p Pod[T]) FromBytesMut(b []byte) (*T, error) {
	if err := checkSize(len(b), p.Size()); err != nil {
		return nil, err
	}
	return valueAt[T](b), nil
}

// FromBytesUnchecked is FromBytes without the length check. len(b) must be
// the size of T.
func (p Pod[T]) FromBytesUnchecked(b []byte) *T {
	return valueAt[T](b)
}

// FromBytesMutUnchecked is FromBytesMut without the length check. len(b) must
// be the size of T.
func (p Pod[T]) FromBytesMutUnchecked(b []byte) *T {
	return valueAt[T](b)
}
