//go:build tinygo

// cmd/firmware/main.go
package main

import (
	"context"
	"machine"
	"time"

	"github.com/tamzrod/ir-learner/internal/controller"
	"github.com/tamzrod/ir-learner/internal/hw"
	"github.com/tamzrod/ir-learner/internal/layout"
	"github.com/tamzrod/ir-learner/internal/medium"
	"github.com/tamzrod/ir-learner/internal/store"
)

// Raspberry Pi Pico wiring.
var (
	eepromSDA = machine.GP4
	eepromSCL = machine.GP5

	keypadPins = hw.KeypadPins{
		Rows: [4]machine.Pin{machine.GP6, machine.GP7, machine.GP8, machine.GP9},
		Cols: [4]machine.Pin{machine.GP10, machine.GP11, machine.GP12, machine.GP13},
	}

	irTX  = machine.GP15 // PWM slice 7, channel B
	irRX  = machine.GP16
	irPWM = machine.PWM7

	ledLearning = machine.GP17
	ledSuccess  = machine.GP18
	ledRemote0  = machine.GP19
	ledRemote1  = machine.GP20
)

var timing = controller.Timing{
	PollInterval:    10 * time.Millisecond,
	CaptureInterval: 20 * time.Millisecond,
	Debounce:        200 * time.Millisecond,
	TransmitGap:     100 * time.Millisecond,
}

func main() {
	// ---- store ----

	bus := machine.I2C0
	if err := bus.Configure(machine.I2CConfig{
		SDA:       eepromSDA,
		SCL:       eepromSCL,
		Frequency: 400 * machine.KHz,
	}); err != nil {
		panic(err)
	}

	eeprom, err := medium.NewEEPROM(bus, medium.EEPROMConfig{
		WriteCycle: medium.DefaultEEPROMWriteCycle,
	})
	if err != nil {
		panic(err)
	}

	geo, err := layout.NewGeometry(layout.DefaultRemotes)
	if err != nil {
		panic(err)
	}

	st, err := store.New(geo, eeprom)
	if err != nil {
		panic(err)
	}
	if err := st.Check(); err != nil {
		panic(err)
	}

	// ---- peripherals ----

	keypad := hw.NewKeypad(keypadPins, hw.DefaultKeymap, timing.Debounce)

	ir, err := hw.NewIR(irRX, irPWM, irTX)
	if err != nil {
		panic(err)
	}

	leds := hw.NewLEDs(ledLearning, ledSuccess, ledRemote0, ledRemote1)

	// ---- controller ----

	ctl, err := controller.New(timing, controller.Deps{
		Store:     st,
		Keys:      keypad,
		Codec:     ir,
		Indicator: leds,
		Reporter:  hw.LineReporter{W: machine.Serial},
	})
	if err != nil {
		panic(err)
	}

	println("learner ready, remotes:", geo.Remotes())

	// never returns: the context is never cancelled
	_ = ctl.Run(context.Background())
}
