// Package hal wires a board's pin plan to device drivers and exposes the
// result as the crossing's sensor and output panel.
package hal

import (
	"pedestriansense-go/services/crossing"
	"pedestriansense-go/services/hal/core"
	"pedestriansense-go/services/hal/devices/buzzer"
	"pedestriansense-go/services/hal/devices/signal_panel"
	"pedestriansense-go/services/hal/devices/ultrasonic"
	"pedestriansense-go/services/hal/platform"
	"pedestriansense-go/services/hal/setups"
	"pedestriansense-go/x/logx"
)

// Hardware is the wired board. It implements crossing.OutputPanel and
// crossing.RangeSensor.
type Hardware struct {
	Plan    setups.Plan
	Lights  *signal_panel.Device
	Alarm   *buzzer.Device
	Sensors *ultrasonic.Device

	reg *core.Registry
}

var (
	_ crossing.OutputPanel = (*Hardware)(nil)
	_ crossing.RangeSensor = (*Hardware)(nil)
)

// Open builds the selected plan on the default factories of the build target.
func Open(log *logx.Logger) (*Hardware, error) {
	f, err := platform.Default()
	if err != nil {
		return nil, err
	}
	return Build(setups.Selected, f, log)
}

// Build validates plan, claims its pins and initialises every device with
// lamps dark and the alarm silent. On error nothing stays claimed.
func Build(plan setups.Plan, f core.Factories, log *logx.Logger) (*Hardware, error) {
	log = log.Named("hal")
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	res := core.Resources{
		Factories: f,
		Reg:       core.NewRegistry(plan.GPIOMin, plan.GPIOMax),
		Log:       log,
	}
	h := &Hardware{Plan: plan, reg: res.Reg}

	var err error
	if h.Lights, err = signal_panel.Build(setups.IDLights, plan.Lights, res); err != nil {
		return nil, err
	}
	if h.Alarm, err = buzzer.Build(setups.IDAlarm, plan.Alarm, res); err != nil {
		h.Close()
		return nil, err
	}
	if h.Sensors, err = ultrasonic.Build(setups.IDSensors, plan.Sensors, res); err != nil {
		h.Close()
		return nil, err
	}
	if err = h.Lights.Init(); err == nil {
		err = h.Alarm.Init()
	}
	if err != nil {
		h.Close()
		return nil, err
	}

	kind := "pwm"
	if !h.Alarm.PWM() {
		kind = "gpio"
	}
	log.Infof("plan %s on %s ready (alarm %s)", plan.Name, platform.Name, kind)
	return h, nil
}

func (h *Hardware) SetVehicle(red, yellow, green bool) { h.Lights.SetVehicle(red, yellow, green) }
func (h *Hardware) SetPedestrian(red, green bool)      { h.Lights.SetPedestrian(red, green) }
func (h *Hardware) SetAlarm(on bool)                   { h.Alarm.SetAlarm(on) }

func (h *Hardware) MeasureDistance(ch crossing.Channel) crossing.Distance {
	return h.Sensors.MeasureDistance(ch)
}

// Close darkens and silences everything and releases all pins.
func (h *Hardware) Close() error {
	if h.Sensors != nil {
		_ = h.Sensors.Close()
	}
	if h.Alarm != nil {
		_ = h.Alarm.Close()
	}
	if h.Lights != nil {
		_ = h.Lights.Close()
	}
	return nil
}
