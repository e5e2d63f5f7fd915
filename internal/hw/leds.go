// internal/hw/leds.go
package hw

import "github.com/tamzrod/ir-learner/internal/controller"

type pin interface {
	Set(bool)
}

// LEDs shows the indicator on two status pins plus a binary remote
// number on the Remote pins (least significant first).
type LEDs struct {
	Learning pin
	Success  pin
	Remote   []pin
}

// Set applies one indication.
func (l *LEDs) Set(i controller.Indication) {
	l.Learning.Set(i.Mode == controller.IndicatorLearning)
	l.Success.Set(i.Mode == controller.IndicatorSuccess)

	if i.Mode != controller.IndicatorRemoteSelected {
		return
	}
	for bit, p := range l.Remote {
		p.Set(i.Remote&(1<<bit) != 0)
	}
}
