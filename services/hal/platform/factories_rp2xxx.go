//go:build rp2040 || rp2350

package platform

import (
	"machine"
	"strconv"

	"tinygo.org/x/drivers/hcsr04"
	"tinygo.org/x/drivers/tone"

	"pedestriansense-go/errcode"
	"pedestriansense-go/services/hal/core"
)

const Name = "rp2"

// RP2 user GPIOs (GP0..GP28).
const GPIOMin, GPIOMax = 0, 28

// Default maps logical numbers directly to machine.Pin(n), matching
// Pico/Pico 2 GP numbering.
func Default() (core.Factories, error) {
	return core.Factories{
		Pins: rp2PinFactory{},
		Echo: rp2EchoFactory{},
		Tone: rp2ToneFactory{},
	}, nil
}

// ---- GPIO ----

type rp2PinFactory struct{}

func (rp2PinFactory) ByNumber(n int) (core.GPIOPin, bool) {
	if n < GPIOMin || n > GPIOMax {
		return nil, false
	}
	return &rp2Pin{p: machine.Pin(n), n: n}, true
}

type rp2Pin struct {
	p machine.Pin
	n int
}

func (r *rp2Pin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r *rp2Pin) Set(level bool) { r.p.Set(level) }
func (r *rp2Pin) Get() bool      { return r.p.Get() }
func (r *rp2Pin) Number() int    { return r.n }

// ---- HC-SR04 ----

type rp2EchoFactory struct{}

func (rp2EchoFactory) ByPins(trigger, echo int) (core.EchoSensor, bool) {
	if trigger < GPIOMin || trigger > GPIOMax || echo < GPIOMin || echo > GPIOMax {
		return nil, false
	}
	d := hcsr04.New(machine.Pin(trigger), machine.Pin(echo))
	d.Configure()
	return &rp2Echo{d: d}, true
}

// rp2Echo returns the driver's pulse; the driver gives 0 on timeout.
type rp2Echo struct{ d hcsr04.Device }

func (e *rp2Echo) ReadPulse() int32 { return e.d.ReadPulse() }

// ---- PWM tone ----

// Slice n of the PWM block serves GP(2n) and GP(2n+1), wrapping at 16.
var pwmSlices = [...]tone.PWM{
	machine.PWM0, machine.PWM1, machine.PWM2, machine.PWM3,
	machine.PWM4, machine.PWM5, machine.PWM6, machine.PWM7,
}

type rp2ToneFactory struct{}

func (rp2ToneFactory) ByPin(n int) (core.ToneOutput, error) {
	if n < GPIOMin || n > GPIOMax {
		return nil, errcode.Wrap(errcode.UnknownPin, "tone", "gpio"+strconv.Itoa(n), nil)
	}
	pwm := pwmSlices[(n>>1)&7]
	spk, err := tone.New(pwm, machine.Pin(n))
	if err != nil {
		return nil, errcode.Wrap(errcode.NoPWM, "tone", "gpio"+strconv.Itoa(n), err)
	}
	return &spk, nil
}
