// internal/keys/keys_test.go
package keys

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/ir-learner/internal/layout"
)

func TestParse_Controls(t *testing.T) {
	k, ok := Parse('*')
	require.True(t, ok)
	c, isCtl := k.Control()
	require.True(t, isCtl)
	assert.Equal(t, Programming, c)
	_, isBtn := k.Button()
	assert.False(t, isBtn)

	k, ok = Parse('#')
	require.True(t, ok)
	c, _ = k.Control()
	assert.Equal(t, ChangeRemote, c)
}

func TestParse_ZeroKeyAliasesSlotZero(t *testing.T) {
	k, ok := Parse('0')
	require.True(t, ok)

	b, isBtn := k.Button()
	require.True(t, isBtn)
	assert.True(t, b.IsZeroKey())
	assert.Equal(t, ButtonKey(layout.MustButton(0)), k)
}

func TestParse_Buttons(t *testing.T) {
	cases := []struct {
		in   byte
		slot int
	}{
		{'1', 1},
		{'9', 9},
		{'A', 10},
		{'a', 10},
		{'D', 13},
		{'L', 21},
		{'l', 21},
	}

	for _, tc := range cases {
		b, ok := ParseButton(tc.in)
		require.True(t, ok, "char %q", tc.in)
		assert.Equal(t, tc.slot, b.Index(), "char %q", tc.in)
	}
}

func TestParse_Unknown(t *testing.T) {
	for _, c := range []byte{'M', 'z', ' ', '+', 0} {
		_, ok := Parse(c)
		assert.False(t, ok, "char %q", c)
	}

	_, ok := ParseButton('*')
	assert.False(t, ok)
}

func TestKeyCode_CharRoundTrip(t *testing.T) {
	for i := 0; i < layout.ButtonsPerRemote; i++ {
		k := ButtonKey(layout.MustButton(i))
		back, ok := Parse(k.Char())
		require.True(t, ok)
		assert.Equal(t, k, back)
	}

	assert.Equal(t, byte('*'), ControlKey(Programming).Char())
	assert.Equal(t, byte('#'), ControlKey(ChangeRemote).Char())
	assert.Equal(t, "button(5)", ButtonKey(layout.MustButton(5)).String())
	assert.Equal(t, "programming", ControlKey(Programming).String())
}

func TestDebouncer(t *testing.T) {
	d := Debouncer{Window: 200 * time.Millisecond}
	t0 := time.Unix(0, 0)
	one, _ := Parse('1')
	two, _ := Parse('2')

	assert.True(t, d.Accept(one, t0))
	assert.False(t, d.Accept(one, t0.Add(50*time.Millisecond)))
	assert.True(t, d.Accept(two, t0.Add(60*time.Millisecond)))
	assert.True(t, d.Accept(one, t0.Add(70*time.Millisecond)))
	assert.True(t, d.Accept(one, t0.Add(400*time.Millisecond)))

	d.Reset()
	assert.True(t, d.Accept(one, t0.Add(410*time.Millisecond)))
}
