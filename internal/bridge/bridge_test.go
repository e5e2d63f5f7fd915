// internal/bridge/bridge_test.go
package bridge

import (
	"bufio"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/ir-learner/internal/controller"
	"github.com/tamzrod/ir-learner/internal/keys"
	"github.com/tamzrod/ir-learner/internal/layout"
)

// compile-time checks
var (
	_ controller.KeyInput    = (*Bridge)(nil)
	_ controller.SignalCodec = (*Bridge)(nil)
)

func newPair(t *testing.T, debounce time.Duration) (*Bridge, net.Conn) {
	t.Helper()
	host, board := net.Pipe()
	b := New(host, debounce)
	t.Cleanup(func() {
		_ = b.Close()
		_ = board.Close()
	})
	return b, board
}

func send(t *testing.T, board net.Conn, line string) {
	t.Helper()
	_, err := io.WriteString(board, line+"\n")
	require.NoError(t, err)
}

func pollKey(t *testing.T, b *Bridge) keys.KeyCode {
	t.Helper()
	var got keys.KeyCode
	require.Eventually(t, func() bool {
		k, ok := b.Poll()
		got = k
		return ok
	}, time.Second, 5*time.Millisecond)
	return got
}

func pollCapture(t *testing.T, b *Bridge) controller.Capture {
	t.Helper()
	var got controller.Capture
	require.Eventually(t, func() bool {
		c, ok := b.Capture()
		got = c
		return ok
	}, time.Second, 5*time.Millisecond)
	return got
}

// ---- protocol ----

func TestParseLine_Keys(t *testing.T) {
	msg, err := parseLine("K *")
	require.NoError(t, err)
	require.NotNil(t, msg.key)
	c, ok := msg.key.Control()
	require.True(t, ok)
	assert.Equal(t, keys.Programming, c)

	msg, err = parseLine("K 0")
	require.NoError(t, err)
	b, ok := msg.key.Button()
	require.True(t, ok)
	assert.True(t, b.IsZeroKey())

	msg, err = parseLine("K L")
	require.NoError(t, err)
	b, ok = msg.key.Button()
	require.True(t, ok)
	assert.Equal(t, layout.LastSlot, b.Index())
}

func TestParseLine_Captures(t *testing.T) {
	msg, err := parseLine("I A55A1234 1")
	require.NoError(t, err)
	require.NotNil(t, msg.capture)
	assert.Equal(t, controller.Capture{Code: 0xA55A1234, Valid: true}, *msg.capture)

	msg, err = parseLine("I ffffffff 0")
	require.NoError(t, err)
	assert.Equal(t, controller.Capture{Code: 0xFFFFFFFF, Valid: false}, *msg.capture)
}

func TestParseLine_Rejects(t *testing.T) {
	for _, line := range []string{
		"",
		"X 1",
		"K",
		"K **",
		"K ?",
		"I 1234",
		"I zz 1",
		"I 100000000 1",
		"I 1234 2",
	} {
		_, err := parseLine(line)
		assert.Error(t, err, "line %q", line)
	}
}

func TestFormatTransmit(t *testing.T) {
	assert.Equal(t, "T A55A1234\n", formatTransmit(0xA55A1234))
	assert.Equal(t, "T 00000001\n", formatTransmit(1))
}

// ---- bridge ----

func TestBridge_QueuesKeysAndCaptures(t *testing.T) {
	b, board := newPair(t, 0)

	send(t, board, "K *")
	send(t, board, "I 0000BEEF 1")

	k := pollKey(t, b)
	c, ok := k.Control()
	require.True(t, ok)
	assert.Equal(t, keys.Programming, c)

	assert.Equal(t, controller.Capture{Code: 0xBEEF, Valid: true}, pollCapture(t, b))

	_, ok = b.Poll()
	assert.False(t, ok)
	_, ok = b.Capture()
	assert.False(t, ok)
}

func TestBridge_DropsGarbage(t *testing.T) {
	b, board := newPair(t, 0)

	send(t, board, "hello")
	send(t, board, "K ?")
	send(t, board, "K 5")

	k := pollKey(t, b)
	btn, ok := k.Button()
	require.True(t, ok)
	assert.Equal(t, 5, btn.Index())
}

func TestBridge_DebouncesRepeats(t *testing.T) {
	b, board := newPair(t, time.Hour)

	send(t, board, "K 3")
	send(t, board, "K 3")
	send(t, board, "K 4")

	first := pollKey(t, b)
	second := pollKey(t, b)
	assert.Equal(t, byte('3'), first.Char())
	assert.Equal(t, byte('4'), second.Char())

	_, ok := b.Poll()
	assert.False(t, ok)
}

func TestBridge_Transmit(t *testing.T) {
	b, board := newPair(t, 0)

	lines := make(chan string, 1)
	go func() {
		r := bufio.NewReader(board)
		line, _ := r.ReadString('\n')
		lines <- line
	}()

	require.NoError(t, b.Transmit(0xA55A1234))

	select {
	case line := <-lines:
		assert.Equal(t, "T A55A1234\n", line)
	case <-time.After(time.Second):
		t.Fatal("board never received transmit")
	}
}

func TestBridge_Flush(t *testing.T) {
	b, board := newPair(t, 0)

	send(t, board, "K 1")
	send(t, board, "I 00000001 1")
	send(t, board, "K 2")

	// net.Pipe is synchronous; the last write returns once the reader
	// has taken it, so wait for the queue instead.
	require.Eventually(t, func() bool {
		return len(b.keys) == 2 && len(b.captures) == 1
	}, time.Second, 5*time.Millisecond)

	b.Flush()

	_, ok := b.Poll()
	assert.False(t, ok)
	_, ok = b.Capture()
	assert.False(t, ok)
}

func TestBridge_ReaderStopsOnClose(t *testing.T) {
	b, board := newPair(t, 0)

	require.NoError(t, board.Close())

	select {
	case <-b.Done():
	case <-time.After(time.Second):
		t.Fatal("reader did not stop")
	}
	assert.Error(t, b.Err())
}

func TestOpen_RequiresPort(t *testing.T) {
	_, err := Open("", 115200, 0)
	assert.Error(t, err)
}
