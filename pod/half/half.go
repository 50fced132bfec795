// Copyright (c) 2025 Visvasity LLC

// Package half grants the plain-old-data capability to IEEE 754
// half-precision floats from github.com/x448/float16.
//
// Every 16-bit pattern is a valid Float16, NaN payloads included, so the
// type is granted through the checked pod.Of path.
//
// Only IEEE binary16 is provided. bfloat16 is not granted because
// github.com/x448/float16 has no bfloat16 type; store bfloat16 values as
// uint16 and use the pod functions directly.
package half

import (
	"github.com/x448/float16"

	"github.com/morr0ne/bytesagent/pod"
)

var Float16 = pod.Of[float16.Float16]()

// Float16sAsBytes returns the storage of s as bytes, two per element, in
// native byte order.
func Float16sAsBytes(s []float16.Float16) []byte {
	return Float16.SliceAsBytes(s)
}

func Float16sAsBytesMut(s []float16.Float16) []byte {
	return Float16.SliceAsBytesMut(s)
}

// Float16sFromBytes reinterprets all of b as half-precision floats. It fails
// with a *pod.SizeError when len(b) is odd.
func Float16sFromBytes(b []byte) ([]float16.Float16, error) {
	return Float16.SliceFromBytes(b, len(b)/Float16.Size())
}

func Float16sFromBytesMut(b []byte) ([]float16.Float16, error) {
	return Float16.SliceFromBytesMut(b, len(b)/Float16.Size())
}
