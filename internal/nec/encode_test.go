// internal/nec/encode_test.go
package nec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_FrameShape(t *testing.T) {
	f := Encode(0)
	require.Len(t, f, FrameLen)

	assert.Equal(t, Pair{Mark: LeaderMark, Space: LeaderSpace}, f[0])
	for i := 1; i <= Bits; i++ {
		assert.Equal(t, Pair{Mark: BitMark, Space: ZeroSpace}, f[i], "bit %d", i-1)
	}
	assert.Equal(t, Pair{Mark: BitMark}, f[FrameLen-1])
}

func TestEncode_LSBFirst(t *testing.T) {
	f := Encode(0x00000001)
	assert.Equal(t, OneSpace, f[1].Space)
	assert.Equal(t, ZeroSpace, f[2].Space)

	f = Encode(0x80000000)
	assert.Equal(t, ZeroSpace, f[1].Space)
	assert.Equal(t, OneSpace, f[Bits].Space)
}

func TestEncode_Duration(t *testing.T) {
	// 0x00FF00FF has 16 ones; total is fixed by the one count.
	var total time.Duration
	for _, p := range Encode(0x00FF00FF) {
		total += p.Mark + p.Space
	}
	want := LeaderMark + LeaderSpace +
		Bits*BitMark + 16*OneSpace + 16*ZeroSpace +
		BitMark
	assert.Equal(t, want, total)
}

func TestDecodeFrame_RoundTrip(t *testing.T) {
	for _, code := range []uint32{0, 1, 0xA55A1234, 0xFFFFFFFF, 0x20DF10EF} {
		got, ok := decodeFrame(Encode(code))
		require.True(t, ok)
		assert.Equal(t, code, got)
	}
}

func TestDecodeFrame_ToleratesJitter(t *testing.T) {
	f := Encode(0xA55A1234)
	for i := range f {
		f[i].Mark = f[i].Mark * 11 / 10
		f[i].Space = f[i].Space * 9 / 10
	}
	got, ok := decodeFrame(f)
	require.True(t, ok)
	assert.Equal(t, uint32(0xA55A1234), got)
}

func TestDecodeFrame_Rejects(t *testing.T) {
	_, ok := decodeFrame(nil)
	assert.False(t, ok)

	f := Encode(1)
	f[0].Mark = 2 * LeaderMark
	_, ok = decodeFrame(f)
	assert.False(t, ok)

	f = Encode(1)
	f[5].Space = 3 * OneSpace
	_, ok = decodeFrame(f)
	assert.False(t, ok)
}

// decodeFrame inverts Encode, allowing 25% timing error.
func decodeFrame(frame []Pair) (uint32, bool) {
	if len(frame) != FrameLen {
		return 0, false
	}
	if !near(frame[0].Mark, LeaderMark) || !near(frame[0].Space, LeaderSpace) {
		return 0, false
	}

	var code uint32
	for i := 0; i < Bits; i++ {
		p := frame[1+i]
		if !near(p.Mark, BitMark) {
			return 0, false
		}
		switch {
		case near(p.Space, OneSpace):
			code |= 1 << i
		case near(p.Space, ZeroSpace):
		default:
			return 0, false
		}
	}

	if !near(frame[FrameLen-1].Mark, BitMark) {
		return 0, false
	}
	return code, true
}

func near(got, want time.Duration) bool {
	tol := want / 4
	return got >= want-tol && got <= want+tol
}
