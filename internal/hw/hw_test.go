// internal/hw/hw_test.go
package hw

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/ir-learner/internal/controller"
	"github.com/tamzrod/ir-learner/internal/keys"
	"github.com/tamzrod/ir-learner/internal/nec"
)

var (
	_ controller.KeyInput    = (*Keypad)(nil)
	_ controller.SignalCodec = (*IR)(nil)
	_ controller.Indicator   = (*LEDs)(nil)
	_ controller.Reporter    = LineReporter{}
)

// ---- keypad ----

type fakeScanner struct{ key uint8 }

func (s *fakeScanner) GetKey() uint8 { return s.key }

func TestKeypad_ReportsOnPressOnly(t *testing.T) {
	s := &fakeScanner{key: noKey}
	k := newKeypad(s, "", 0)

	_, ok := k.Poll()
	assert.False(t, ok)

	s.key = 12 // '*'
	code, ok := k.Poll()
	require.True(t, ok)
	c, _ := code.Control()
	assert.Equal(t, keys.Programming, c)

	// held
	_, ok = k.Poll()
	assert.False(t, ok)

	s.key = noKey
	_, ok = k.Poll()
	assert.False(t, ok)

	s.key = 13 // '0'
	code, ok = k.Poll()
	require.True(t, ok)
	b, _ := code.Button()
	assert.True(t, b.IsZeroKey())
}

func TestKeypad_Debounce(t *testing.T) {
	s := &fakeScanner{key: noKey}
	k := newKeypad(s, "", time.Second)
	now := time.Unix(0, 0)
	k.now = func() time.Time { return now }

	s.key = 0
	_, ok := k.Poll()
	require.True(t, ok)

	// contact bounce: release and press inside the window
	s.key = noKey
	k.Poll()
	s.key = 0
	now = now.Add(10 * time.Millisecond)
	_, ok = k.Poll()
	assert.False(t, ok)

	s.key = noKey
	k.Poll()
	s.key = 0
	now = now.Add(2 * time.Second)
	_, ok = k.Poll()
	assert.True(t, ok)
}

func TestKeypad_FlushIgnoresHeldKey(t *testing.T) {
	s := &fakeScanner{key: 1}
	k := newKeypad(s, "", 0)

	k.Flush()
	_, ok := k.Poll()
	assert.False(t, ok)

	s.key = noKey
	k.Poll()
	s.key = 1
	_, ok = k.Poll()
	assert.True(t, ok)
}

func TestKeypad_UnmappedIndex(t *testing.T) {
	s := &fakeScanner{key: 3}
	k := newKeypad(s, "12", 0)
	_, ok := k.Poll()
	assert.False(t, ok)
}

// driverIndex mirrors keypad4x4: rows are its first four arguments,
// columns the last four, and a key reads as row*4 + column.
func driverIndex(args [8]string, row, col string) int {
	r, c := -1, -1
	for i := 0; i < 4; i++ {
		if args[i] == row {
			r = i
		}
		if args[4+i] == col {
			c = i
		}
	}
	return r*4 + c
}

func TestMatrixArgs_TopLeftIsFirstKey(t *testing.T) {
	rows := [4]string{"R0", "R1", "R2", "R3"}
	cols := [4]string{"C0", "C1", "C2", "C3"}
	args := matrixArgs(rows, cols)

	key := func(r, c int) byte {
		return DefaultKeymap[driverIndex(args, rows[r], cols[c])]
	}

	assert.Equal(t, byte('1'), key(0, 0))
	assert.Equal(t, byte('A'), key(0, 3))
	assert.Equal(t, byte('*'), key(3, 0))
	assert.Equal(t, byte('0'), key(3, 1))
	assert.Equal(t, byte('#'), key(3, 2))
	assert.Equal(t, byte('D'), key(3, 3))
}

// ---- ir ----

type fakeCarrier struct {
	on   []bool
	ch   uint8
	duty uint32
}

func (c *fakeCarrier) Set(ch uint8, v uint32) {
	c.ch = ch
	c.on = append(c.on, v != 0)
	if v != 0 {
		c.duty = v
	}
}

func TestIR_CaptureLatchesLastFrame(t *testing.T) {
	ir := newIR(&fakeCarrier{}, 0, 1)

	_, ok := ir.Capture()
	assert.False(t, ok)

	ir.received(0x11111111, false)
	ir.received(0xA55A1234, false)

	c, ok := ir.Capture()
	require.True(t, ok)
	assert.Equal(t, controller.Capture{Code: 0xA55A1234, Valid: true}, c)

	_, ok = ir.Capture()
	assert.False(t, ok)
}

func TestIR_RepeatIsInvalid(t *testing.T) {
	ir := newIR(&fakeCarrier{}, 0, 1)
	ir.received(0, true)

	c, ok := ir.Capture()
	require.True(t, ok)
	assert.False(t, c.Valid)
}

func TestIR_FrameKeepsCodeAndValidityTogether(t *testing.T) {
	ir := newIR(&fakeCarrier{}, 0, 1)

	ir.received(0xFFFFFFFF, false)
	ir.received(0xA55A1234, true)
	c, ok := ir.Capture()
	require.True(t, ok)
	assert.Equal(t, controller.Capture{Code: 0xA55A1234, Valid: false}, c)

	ir.received(0, false)
	c, ok = ir.Capture()
	require.True(t, ok)
	assert.Equal(t, controller.Capture{Code: 0, Valid: true}, c)

	ir.received(0xFFFFFFFF, true)
	c, ok = ir.Capture()
	require.True(t, ok)
	assert.Equal(t, controller.Capture{Code: 0xFFFFFFFF, Valid: false}, c)
}

func TestIR_Flush(t *testing.T) {
	ir := newIR(&fakeCarrier{}, 0, 1)
	ir.received(1, false)
	ir.Flush()
	_, ok := ir.Capture()
	assert.False(t, ok)
}

func TestIR_TransmitGatesCarrierPerPair(t *testing.T) {
	out := &fakeCarrier{}
	ir := newIR(out, 2, 500)

	var slept time.Duration
	ir.sleep = func(d time.Duration) { slept += d }

	require.NoError(t, ir.Transmit(0xA55A1234))

	assert.Len(t, out.on, 2*nec.FrameLen)
	for i, on := range out.on {
		assert.Equal(t, i%2 == 0, on, "set %d", i)
	}
	assert.Equal(t, uint8(2), out.ch)
	assert.Equal(t, uint32(500), out.duty)

	var want time.Duration
	for _, p := range nec.Encode(0xA55A1234) {
		want += p.Mark + p.Space
	}
	assert.Equal(t, want, slept)
}

// ---- leds ----

type fakePin struct{ on bool }

func (p *fakePin) Set(v bool) { p.on = v }

func TestLEDs(t *testing.T) {
	learn, ok := &fakePin{}, &fakePin{}
	r0, r1 := &fakePin{}, &fakePin{}
	l := &LEDs{Learning: learn, Success: ok, Remote: []pin{r0, r1}}

	l.Set(controller.Indication{Mode: controller.IndicatorRemoteSelected, Remote: 2})
	assert.False(t, learn.on)
	assert.False(t, r0.on)
	assert.True(t, r1.on)

	l.Set(controller.Indication{Mode: controller.IndicatorLearning})
	assert.True(t, learn.on)
	assert.False(t, ok.on)
	assert.True(t, r1.on, "remote pins keep their value")

	l.Set(controller.Indication{Mode: controller.IndicatorSuccess})
	assert.False(t, learn.on)
	assert.True(t, ok.on)

	l.Set(controller.Indication{Mode: controller.IndicatorOff})
	assert.False(t, learn.on)
	assert.False(t, ok.on)
}

// ---- reporter ----

func TestLineReporter(t *testing.T) {
	var buf bytes.Buffer
	r := LineReporter{W: &buf}

	r.Report(controller.Event{Kind: controller.EventSaved, Remote: 1, Button: 3, Code: 0xBEEF})
	r.Report(controller.Event{Kind: controller.EventSaveFailed, Remote: 1, Button: 3, Err: errors.New("nack")})

	assert.Equal(t,
		"saved remote=1 button=3 code=0x0000BEEF\r\n"+
			"save-failed remote=1 button=3: nack\r\n",
		buf.String())
}
