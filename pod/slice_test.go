// Copyright (c) 2025 Visvasity LLC

package pod

import (
	"bytes"
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteSliceIdentity(t *testing.T) {
	s := make([]byte, 5, 9)
	copy(s, "hello")

	view := SliceAsBytes(s)
	require.Same(t, unsafe.SliceData(s), unsafe.SliceData(view))
	require.Equal(t, len(s), len(view))
	require.Equal(t, cap(s), cap(view))

	blank := []byte{}
	view = SliceAsBytes(blank)
	require.NotNil(t, view)
	require.Empty(t, view)
	require.Same(t, unsafe.SliceData(blank), unsafe.SliceData(view))

	var one uint8 = 0x7F
	require.Same(t, &one, unsafe.SliceData(AsBytes(&one)))
	require.Equal(t, []byte{0x7F}, AsBytes(&one))
}

func TestArrayComposition(t *testing.T) {
	a := [3]uint16{0x0102, 0x0304, 0x0506}
	view := SliceAsBytes(a[:])
	require.Len(t, view, 3*2)

	var concat []byte
	for i := range a {
		concat = append(concat, AsBytes(&a[i])...)
	}
	require.Equal(t, concat, view)
	require.Same(t, &a[0], (*uint16)(unsafe.Pointer(unsafe.SliceData(view))))
}

func TestArrayOfStructs(t *testing.T) {
	p := Attest[vertex]()
	vs := []vertex{{X: 1, Color: 1}, {Y: 2, Color: 2}, {Z: 3, Color: 3}}

	view := p.SliceAsBytes(vs)
	require.Len(t, view, len(vs)*p.Size())
	for i := range vs {
		assert.Equal(t, p.AsBytes(&vs[i]), view[i*p.Size():(i+1)*p.Size()])
	}

	back, err := p.SliceFromBytes(bytes.Clone(view), len(vs))
	require.NoError(t, err)
	require.Equal(t, vs, back)
}

func TestSliceCapacityScaling(t *testing.T) {
	s := make([]uint32, 2, 6)
	view := SliceAsBytes(s)
	require.Len(t, view, 8)
	require.Equal(t, 24, cap(view))
}

func TestSliceFromBytes(t *testing.T) {
	buf := make([]byte, 12)

	s, err := SliceFromBytes[uint32](buf, 3)
	require.NoError(t, err)
	require.Len(t, s, 3)
	require.Equal(t, 3, cap(s))

	for _, n := range []int{-1, 0, 2, 4} {
		_, err := SliceFromBytes[uint32](buf, n)
		require.ErrorIs(t, err, ErrSize, "n=%d", n)
	}
	_, err = SliceFromBytes[uint32](buf[:11], 3)
	require.ErrorIs(t, err, ErrSize)

	none, err := SliceFromBytes[uint32](nil, 0)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestSliceFromBytesMut(t *testing.T) {
	buf := make([]byte, 8)
	s, err := SliceFromBytesMut[int16](buf, 4)
	require.NoError(t, err)

	s[1] = -1
	require.Equal(t, []byte{0, 0, 0xFF, 0xFF, 0, 0, 0, 0}, buf)

	view := SliceAsBytesMut(s)
	view[0] = 1
	require.Equal(t, byte(1), buf[0])

	u := Of[int16]().SliceFromBytesUnchecked(buf, 4)
	require.Equal(t, s, u)
}

func TestEmptySliceView(t *testing.T) {
	require.Nil(t, SliceAsBytes[uint64](nil))

	view := SliceAsBytes([]uint64{})
	require.NotNil(t, view)
	require.Empty(t, view)

	view = Attest[empty]().SliceAsBytes(make([]empty, 4))
	require.NotNil(t, view)
	require.Empty(t, view)
}

func TestSliceFromBytesCountOutOfRange(t *testing.T) {
	buf := make([]byte, 8)
	for _, n := range []int{-1, 1 << 62, math.MaxInt} {
		s, err := SliceFromBytes[uint64](buf, n)
		require.Nil(t, s)
		require.EqualError(t, err, "pod: buffer has 8 bytes, element count is out of range", "n=%d", n)

		var serr *SizeError
		require.ErrorAs(t, err, &serr)
		require.Equal(t, -1, serr.Want)
	}

	_, err := SliceFromBytes[uint64](buf, 2)
	require.EqualError(t, err, "pod: buffer has 8 bytes, want exactly 16")
}
