// Copyright (c) 2025 Visvasity LLC

package pod

// The functions below are shorthands for the Of[T]() witness.

func AsBytes[T Scalar](v *T) []byte {
	return Of[T]().AsBytes(v)
}

func AsBytesMut[T Scalar](v *T) []byte {
	return Of[T]().AsBytesMut(v)
}

func FromBytes[T Scalar](b []byte) (*T, error) {
	return Of[T]().FromBytes(b)
}

func FromBytesMut[T Scalar](b []byte) (*T, error) {
	return Of[T]().FromBytesMut(b)
}

func FromBytesUnchecked[T Scalar](b []byte) *T {
	return Of[T]().FromBytesUnchecked(b)
}

func FromBytesMutUnchecked[T Scalar](b []byte) *T {
	return Of[T]().FromBytesMutUnchecked(b)
}

func SliceAsBytes[T Scalar](s []T) []byte {
	return Of[T]().SliceAsBytes(s)
}

func SliceAsBytesMut[T Scalar](s []T) []byte {
	return Of[T]().SliceAsBytesMut(s)
}

func SliceFromBytes[T Scalar](b []byte, n int) ([]T, error) {
	return Of[T]().SliceFromBytes(b, n)
}

func SliceFromBytesMut[T Scalar](b []byte, n int) ([]T, error) {
	return Of[T]().SliceFromBytesMut(b, n)
}
