package setups

import (
	"pedestriansense-go/errcode"
	"pedestriansense-go/services/hal/core"
	"pedestriansense-go/services/hal/devices/buzzer"
	"pedestriansense-go/services/hal/devices/signal_panel"
	"pedestriansense-go/services/hal/devices/ultrasonic"
)

// Device IDs used when claiming pins.
const (
	IDLights  = "lights"
	IDAlarm   = "alarm"
	IDSensors = "sensors"
)

// Plan is the complete wiring of one board.
type Plan struct {
	Name string

	// GPIO numbers accepted by the board.
	GPIOMin, GPIOMax int

	Lights  signal_panel.Params
	Alarm   buzzer.Params
	Sensors ultrasonic.Params
}

// Validate checks that every pin is on the board and used once, by
// claiming the whole plan against a scratch registry.
func (p Plan) Validate() error {
	if p.GPIOMax < p.GPIOMin {
		return errcode.Wrap(errcode.InvalidParams, "plan "+p.Name, "empty gpio range", nil)
	}
	if p.Alarm.FreqHz == 0 {
		return errcode.Wrap(errcode.InvalidParams, "plan "+p.Name, "alarm frequency unset", nil)
	}
	reg := core.NewRegistry(p.GPIOMin, p.GPIOMax)
	for _, c := range p.claims() {
		if err := reg.Claim(c.id, c.pins...); err != nil {
			return errcode.Wrap(errcode.InvalidParams, "plan "+p.Name, "", err)
		}
	}
	return nil
}

type claim struct {
	id   string
	pins []int
}

func (p Plan) claims() []claim {
	return []claim{
		{IDLights, p.Lights.Pins()},
		{IDAlarm, p.Alarm.Pins()},
		{IDSensors, p.Sensors.Pins()},
	}
}
