// internal/bridge/bridge.go
package bridge

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"go.bug.st/serial"

	"github.com/tamzrod/ir-learner/internal/controller"
	"github.com/tamzrod/ir-learner/internal/keys"
	"github.com/tamzrod/ir-learner/internal/layout"
)

const queueDepth = 8

// Bridge talks to a board that owns the keypad and the IR hardware.
// It is both the controller's KeyInput and its SignalCodec.
// A background reader decodes lines into queues; Poll and Capture never block.
type Bridge struct {
	port io.ReadWriteCloser

	wmu sync.Mutex // serializes writes

	keys     chan keys.KeyCode
	captures chan controller.Capture
	deb      keys.Debouncer

	done chan struct{}
	err  error // set once before done is closed
}

// Open opens a serial port and starts the bridge on it.
func Open(portName string, baudRate int, debounce time.Duration) (*Bridge, error) {
	if portName == "" {
		return nil, errors.New("bridge: port required")
	}

	p, err := serial.Open(portName, &serial.Mode{BaudRate: baudRate})
	if err != nil {
		return nil, fmt.Errorf("bridge: open %s: %w", portName, err)
	}

	return New(p, debounce), nil
}

// New starts a bridge on an already open port.
func New(port io.ReadWriteCloser, debounce time.Duration) *Bridge {
	b := &Bridge{
		port:     port,
		keys:     make(chan keys.KeyCode, queueDepth),
		captures: make(chan controller.Capture, queueDepth),
		deb:      keys.Debouncer{Window: debounce},
		done:     make(chan struct{}),
	}
	go b.readLoop()
	return b
}

func (b *Bridge) readLoop() {
	defer close(b.done)

	sc := bufio.NewScanner(b.port)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}

		msg, err := parseLine(line)
		if err != nil {
			log.Printf("bridge: dropped line (line=%q): %v", line, err)
			continue
		}

		switch {
		case msg.key != nil:
			if !b.deb.Accept(*msg.key, time.Now()) {
				continue
			}
			select {
			case b.keys <- *msg.key:
			default:
				log.Printf("bridge: key queue full, dropped %s", msg.key)
			}

		case msg.capture != nil:
			select {
			case b.captures <- *msg.capture:
			default:
				log.Printf("bridge: capture queue full, dropped %s", msg.capture.Code)
			}
		}
	}

	b.err = sc.Err()
	if b.err == nil {
		b.err = io.EOF
	}
}

// Poll returns the next queued key, if any.
func (b *Bridge) Poll() (keys.KeyCode, bool) {
	select {
	case k := <-b.keys:
		return k, true
	default:
		return keys.KeyCode{}, false
	}
}

// Capture returns the next queued capture, if any.
func (b *Bridge) Capture() (controller.Capture, bool) {
	select {
	case c := <-b.captures:
		return c, true
	default:
		return controller.Capture{}, false
	}
}

// Transmit asks the board to send code.
func (b *Bridge) Transmit(code layout.RawCode) error {
	b.wmu.Lock()
	defer b.wmu.Unlock()

	if _, err := io.WriteString(b.port, formatTransmit(code)); err != nil {
		return fmt.Errorf("bridge: transmit %s: %w", code, err)
	}
	return nil
}

// Flush drops every queued key and capture.
func (b *Bridge) Flush() {
	for {
		select {
		case <-b.keys:
		case <-b.captures:
		default:
			return
		}
	}
}

// Done is closed when the reader stops.
func (b *Bridge) Done() <-chan struct{} { return b.done }

// Err returns why the reader stopped. Valid after Done is closed.
func (b *Bridge) Err() error {
	select {
	case <-b.done:
		return b.err
	default:
		return nil
	}
}

// Close closes the port, which also stops the reader.
func (b *Bridge) Close() error {
	return b.port.Close()
}
