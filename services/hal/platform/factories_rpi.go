//go:build linux && rpi && !(rp2040 || rp2350)

package platform

import (
	"strconv"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
	"periph.io/x/host/v3/rpi"

	"pedestriansense-go/errcode"
	"pedestriansense-go/services/hal/core"
	"pedestriansense-go/x/mathx"
)

const Name = "rpi"

// BCM GPIO numbers on the 40-pin header.
const GPIOMin, GPIOMax = 2, 27

// Echo timing limits, matching the HC-SR04 driver used on the Pico.
const (
	echoTimeout = 25 * time.Millisecond
	maxPulseUs  = 23324
)

// Default loads the periph host drivers.
func Default() (core.Factories, error) {
	if _, err := host.Init(); err != nil {
		return core.Factories{}, errcode.Wrap(errcode.Unsupported, "platform", "periph host init", err)
	}
	if !rpi.Present() {
		return core.Factories{}, errcode.Wrap(errcode.Unsupported, "platform", "not a Raspberry Pi", nil)
	}
	return core.Factories{
		Pins: rpiPinFactory{},
		Echo: rpiEchoFactory{},
		Tone: rpiToneFactory{},
	}, nil
}

func byNumber(n int) (gpio.PinIO, bool) {
	if n < GPIOMin || n > GPIOMax {
		return nil, false
	}
	p := gpioreg.ByName("GPIO" + strconv.Itoa(n))
	return p, p != nil
}

// ---- GPIO ----

type rpiPinFactory struct{}

func (rpiPinFactory) ByNumber(n int) (core.GPIOPin, bool) {
	p, ok := byNumber(n)
	if !ok {
		return nil, false
	}
	return &rpiPin{p: p, n: n}, true
}

type rpiPin struct {
	p gpio.PinIO
	n int
}

func (r *rpiPin) ConfigureOutput(initial bool) error { return r.p.Out(gpio.Level(initial)) }

// Set ignores write errors; a failed write simply has no effect.
func (r *rpiPin) Set(level bool) { _ = r.p.Out(gpio.Level(level)) }
func (r *rpiPin) Get() bool      { return bool(r.p.Read()) }
func (r *rpiPin) Number() int    { return r.n }

// ---- HC-SR04 over edge detection ----

type rpiEchoFactory struct{}

func (rpiEchoFactory) ByPins(trigger, echo int) (core.EchoSensor, bool) {
	t, ok := byNumber(trigger)
	if !ok {
		return nil, false
	}
	e, ok := byNumber(echo)
	if !ok {
		return nil, false
	}
	if t.Out(gpio.Low) != nil || e.In(gpio.PullDown, gpio.BothEdges) != nil {
		return nil, false
	}
	return &rpiEcho{trig: t, echo: e}, true
}

type rpiEcho struct {
	trig gpio.PinIO
	echo gpio.PinIO
}

// ReadPulse returns the echo high time in microseconds, or 0 on timeout.
func (s *rpiEcho) ReadPulse() int32 {
	_ = s.trig.Out(gpio.High)
	time.Sleep(10 * time.Microsecond)
	_ = s.trig.Out(gpio.Low)

	if !s.waitFor(gpio.High) {
		return 0
	}
	start := time.Now()
	if !s.waitFor(gpio.Low) {
		return 0
	}
	us := time.Since(start).Microseconds()
	return int32(mathx.Min(us, maxPulseUs))
}

func (s *rpiEcho) waitFor(l gpio.Level) bool {
	deadline := time.Now().Add(echoTimeout)
	for s.echo.Read() != l {
		left := time.Until(deadline)
		if left <= 0 || !s.echo.WaitForEdge(left) {
			return s.echo.Read() == l
		}
	}
	return true
}

// ---- PWM tone ----

type rpiToneFactory struct{}

func (rpiToneFactory) ByPin(n int) (core.ToneOutput, error) {
	p, ok := byNumber(n)
	if !ok {
		return nil, errcode.Wrap(errcode.UnknownPin, "tone", "gpio"+strconv.Itoa(n), nil)
	}
	// Only GPIO12/13/18/19 reach a hardware PWM channel on the header.
	switch n {
	case 12, 13, 18, 19:
	default:
		return nil, errcode.NoPWM
	}
	return &rpiTone{p: p}, nil
}

type rpiTone struct{ p gpio.PinIO }

func (t *rpiTone) SetPeriod(period uint64) {
	if period == 0 {
		t.Stop()
		return
	}
	f := physic.Frequency(1_000_000_000/period) * physic.Hertz
	_ = t.p.PWM(gpio.DutyHalf, f)
}

func (t *rpiTone) Stop() {
	_ = t.p.Halt()
	_ = t.p.Out(gpio.Low)
}
