package buzzer

import (
	"pedestriansense-go/services/hal/core"
	"pedestriansense-go/x/logx"
	"pedestriansense-go/x/timex"
)

type Device struct {
	id        string
	pin       int
	freq      uint32
	activeLow bool

	tone core.ToneOutput // nil when driven as plain GPIO
	gpio core.GPIOPin

	reg *core.Registry
	log *logx.Logger

	on bool
}

func (d *Device) ID() string { return d.id }

// Init silences the output.
func (d *Device) Init() error {
	d.on = false
	if d.tone != nil {
		d.tone.Stop()
		return nil
	}
	return d.gpio.ConfigureOutput(d.phys(false))
}

// SetAlarm starts or stops the tone. Repeated calls with the same state
// do not touch the hardware, so a PWM tone is never restarted mid-note.
func (d *Device) SetAlarm(on bool) {
	if on == d.on {
		return
	}
	d.on = on
	if d.tone != nil {
		if on {
			d.tone.SetPeriod(timex.PeriodFromHz(d.freq))
		} else {
			d.tone.Stop()
		}
		return
	}
	d.gpio.Set(d.phys(on))
}

func (d *Device) On() bool { return d.on }

// PWM reports whether the alarm is a PWM tone rather than a plain output.
func (d *Device) PWM() bool { return d.tone != nil }

func (d *Device) Close() error {
	d.SetAlarm(false)
	if d.reg != nil {
		d.reg.Release(d.id, d.pin)
	}
	return nil
}

func (d *Device) phys(on bool) bool {
	if d.activeLow {
		return !on
	}
	return on
}
