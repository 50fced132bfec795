// Copyright (c) 2025 Visvasity LLC

// Package glmath grants the plain-old-data capability to the vector, matrix
// and quaternion types of github.com/go-gl/mathgl.
//
// Single precision types from mgl32 are granted under their own names and
// double precision types from mgl64 with a D prefix:
//
//	v := mgl32.Vec3{1, 2, 3}
//	buf := glmath.Vec3.AsBytes(&v)        // 12 bytes
//	ms, err := glmath.DMat4.SliceFromBytes(b, n)
//
// The witnesses are generated from podgen.yaml. The generated size assertions
// stop the build if a mathgl release changes the layout of a granted type.
package glmath

//go:generate go run github.com/morr0ne/bytesagent -config podgen.yaml
