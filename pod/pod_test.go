// Copyright (c) 2025 Visvasity LLC

package pod

import (
	"bytes"
	"encoding/binary"
	"testing"
	"testing/quick"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vertex struct {
	X, Y, Z float32
	Color   uint32
}

type empty struct{}

func checkRoundTrip[T Scalar](t *testing.T) {
	t.Helper()
	var zero T
	size := int(unsafe.Sizeof(zero))
	condition := func(v T) bool {
		view := AsBytes(&v)
		if len(view) != size {
			return false
		}
		r, err := FromBytes[T](view)
		if err != nil {
			return false
		}
		return r == &v && bytes.Equal(AsBytes(r), view)
	}
	require.NoError(t, quick.Check(condition, nil))
}

func TestRoundTrip(t *testing.T) {
	t.Run("int8", checkRoundTrip[int8])
	t.Run("int16", checkRoundTrip[int16])
	t.Run("int32", checkRoundTrip[int32])
	t.Run("int64", checkRoundTrip[int64])
	t.Run("int", checkRoundTrip[int])
	t.Run("uint8", checkRoundTrip[uint8])
	t.Run("uint16", checkRoundTrip[uint16])
	t.Run("uint32", checkRoundTrip[uint32])
	t.Run("uint64", checkRoundTrip[uint64])
	t.Run("uint", checkRoundTrip[uint])
	t.Run("uintptr", checkRoundTrip[uintptr])
	t.Run("float32", checkRoundTrip[float32])
	t.Run("float64", checkRoundTrip[float64])
}

func checkFallible[T Scalar](t *testing.T) {
	t.Helper()
	size := Of[T]().Size()
	buf := make([]byte, size+1)

	for _, n := range []int{size - 1, size + 1} {
		r, err := FromBytes[T](buf[:n])
		require.ErrorIs(t, err, ErrSize)
		require.Nil(t, r)

		var serr *SizeError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, size, serr.Want)
		assert.Equal(t, n, serr.Got)

		_, err = FromBytesMut[T](buf[:n])
		require.ErrorIs(t, err, ErrSize)
	}

	r, err := FromBytes[T](buf[:size])
	require.NoError(t, err)
	require.NotNil(t, r)
	_, err = FromBytesMut[T](buf[:size])
	require.NoError(t, err)
}

func TestFromBytesSizeMismatch(t *testing.T) {
	t.Run("int8", checkFallible[int8])
	t.Run("int16", checkFallible[int16])
	t.Run("int32", checkFallible[int32])
	t.Run("int64", checkFallible[int64])
	t.Run("int", checkFallible[int])
	t.Run("uint8", checkFallible[uint8])
	t.Run("uint16", checkFallible[uint16])
	t.Run("uint32", checkFallible[uint32])
	t.Run("uint64", checkFallible[uint64])
	t.Run("uint", checkFallible[uint])
	t.Run("uintptr", checkFallible[uintptr])
	t.Run("float32", checkFallible[float32])
	t.Run("float64", checkFallible[float64])
}

func TestNativeOrder(t *testing.T) {
	v := uint32(0x11223344)
	view := AsBytes(&v)
	require.Len(t, view, 4)

	want := make([]byte, 4)
	binary.NativeEndian.PutUint32(want, 0x11223344)
	require.Equal(t, want, view)

	// Reconstruct from an independent copy of the bytes.
	buf := bytes.Clone(view)
	r, err := FromBytes[uint32](buf)
	require.NoError(t, err)
	require.Equal(t, v, *r)
}

func TestMutationVisibility(t *testing.T) {
	v := uint64(0x0102030405060708)
	before := bytes.Clone(AsBytes(&v))

	for i := range before {
		AsBytesMut(&v)[i] ^= 0xFF
		after := AsBytes(&v)
		for j := range after {
			if j == i {
				assert.Equal(t, before[j]^0xFF, after[j], "byte %d", j)
			} else {
				assert.Equal(t, before[j], after[j], "byte %d", j)
			}
		}
		AsBytesMut(&v)[i] ^= 0xFF
	}
	require.Equal(t, uint64(0x0102030405060708), v)
}

func TestFromBytesMutAliasesBuffer(t *testing.T) {
	buf := make([]byte, 4)
	r, err := FromBytesMut[int32](buf)
	require.NoError(t, err)

	*r = -1
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, buf)

	buf[0] = 0
	require.Equal(t, bytes.Clone(buf), AsBytes(r))
}

func TestUnchecked(t *testing.T) {
	f := float64(3.25)
	buf := bytes.Clone(AsBytes(&f))

	r := FromBytesUnchecked[float64](buf)
	require.Equal(t, 3.25, *r)

	w := FromBytesMutUnchecked[float64](buf)
	*w = -1.5
	require.Equal(t, -1.5, *r)
	require.Equal(t, AsBytes(w), buf)
}

func TestAttestStruct(t *testing.T) {
	p := Attest[vertex]()
	require.Equal(t, 16, p.Size())

	v := vertex{X: 1, Y: 2, Z: 3, Color: 0xAABBCCDD}
	view := p.AsBytes(&v)
	require.Len(t, view, 16)

	buf := bytes.Clone(view)
	r, err := p.FromBytes(buf)
	require.NoError(t, err)
	require.Equal(t, v, *r)

	w, err := p.FromBytesMut(buf)
	require.NoError(t, err)
	w.Color = 7
	require.Equal(t, uint32(7), r.Color)

	_, err = p.FromBytes(buf[:15])
	require.ErrorIs(t, err, ErrSize)

	require.Same(t, r, p.FromBytesUnchecked(buf))
	require.Same(t, r, p.FromBytesMutUnchecked(buf))
}

func TestZeroSize(t *testing.T) {
	p := Attest[empty]()
	require.Equal(t, 0, p.Size())

	var e empty
	require.Empty(t, p.AsBytes(&e))

	r, err := p.FromBytes(nil)
	require.NoError(t, err)
	require.NotNil(t, r)

	_, err = p.FromBytes([]byte{0})
	require.ErrorIs(t, err, ErrSize)
}

func TestNoAllocations(t *testing.T) {
	v := uint64(42)
	buf := make([]byte, 8)
	elems := make([]uint16, 4)
	elemBuf := make([]byte, 8)

	allocs := testing.AllocsPerRun(100, func() {
		_ = AsBytes(&v)
		_ = AsBytesMut(&v)
		_, _ = FromBytes[uint64](buf)
		_, _ = FromBytesMut[uint64](buf)
		_ = SliceAsBytes(elems)
		_, _ = SliceFromBytes[uint16](elemBuf, 4)
	})
	require.Zero(t, allocs)
}

func FuzzFromBytes(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{1, 2, 3, 4, 5, 6, 7})
	f.Add([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	f.Add([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9})
	f.Fuzz(func(t *testing.T, data []byte) {
		r, err := FromBytes[uint64](data)
		if len(data) != 8 {
			require.ErrorIs(t, err, ErrSize)
			return
		}
		require.NoError(t, err)
		require.Equal(t, data, AsBytes(r))
		require.Same(t, unsafe.SliceData(data), unsafe.SliceData(AsBytes(r)))
	})
}
