package buzzer

import (
	"pedestriansense-go/errcode"
	"pedestriansense-go/services/hal/core"
	"pedestriansense-go/x/mathx"
)

// Audible range accepted for the alarm tone.
const (
	minHz = 20
	maxHz = 20_000
)

type Params struct {
	Pin       int
	FreqHz    uint32
	ActiveLow bool // only used when the pin falls back to plain GPIO
}

func (p Params) Pins() []int { return []int{p.Pin} }

// Build claims the pin and prefers a PWM tone. Pins without PWM are driven
// as a plain on/off output for an active (self-oscillating) buzzer.
func Build(id string, p Params, res core.Resources) (*Device, error) {
	if p.Pin < 0 {
		return nil, errcode.InvalidParams
	}
	if err := res.Reg.Claim(id, p.Pin); err != nil {
		return nil, err
	}
	d := &Device{
		id:        id,
		pin:       p.Pin,
		freq:      mathx.Clamp(p.FreqHz, minHz, maxHz),
		activeLow: p.ActiveLow,
		reg:       res.Reg,
		log:       res.Log.Named(id),
	}

	if res.Tone != nil {
		t, err := res.Tone.ByPin(p.Pin)
		if err == nil {
			d.tone = t
			return d, nil
		}
		if errcode.Of(err) != errcode.NoPWM {
			res.Reg.Release(id, p.Pin)
			return nil, err
		}
		d.log.Warnf("gpio%d has no PWM, driving it as an active buzzer", p.Pin)
	}

	gpio, ok := res.Pins.ByNumber(p.Pin)
	if !ok {
		res.Reg.Release(id, p.Pin)
		return nil, errcode.Wrap(errcode.UnknownPin, "buzzer", id, nil)
	}
	d.gpio = gpio
	return d, nil
}
