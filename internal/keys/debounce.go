// internal/keys/debounce.go
package keys

import "time"

// Debouncer drops a repeat of the same key that arrives within Window of
// the previous accepted press. A different key is always accepted.
type Debouncer struct {
	Window time.Duration

	last   KeyCode
	lastAt time.Time
	seen   bool
}

// Accept reports whether k, pressed at now, is a new press.
func (d *Debouncer) Accept(k KeyCode, now time.Time) bool {
	if d.seen && k == d.last && now.Sub(d.lastAt) < d.Window {
		return false
	}
	d.last = k
	d.lastAt = now
	d.seen = true
	return true
}

// Reset forgets the last press.
func (d *Debouncer) Reset() {
	d.seen = false
}
