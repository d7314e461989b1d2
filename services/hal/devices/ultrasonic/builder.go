package ultrasonic

import (
	"strconv"

	"pedestriansense-go/errcode"
	"pedestriansense-go/services/hal/core"
)

// DefaultMaxPulseUs is the longest echo accepted, about 4 m for an HC-SR04.
const DefaultMaxPulseUs int32 = 23324

// Params wires two trigger/echo pairs. MaxPulseUs <= 0 selects the default.
type Params struct {
	TriggerA, EchoA int
	TriggerB, EchoB int
	MaxPulseUs      int32
}

func (p Params) Pins() []int { return []int{p.TriggerA, p.EchoA, p.TriggerB, p.EchoB} }

// Build claims both sensor pairs.
func Build(id string, p Params, res core.Resources) (*Device, error) {
	if res.Echo == nil {
		return nil, errcode.Wrap(errcode.Unsupported, "ultrasonic", "no echo factory", nil)
	}
	pins := p.Pins()
	if err := res.Reg.Claim(id, pins...); err != nil {
		return nil, err
	}
	a, ok := res.Echo.ByPins(p.TriggerA, p.EchoA)
	if !ok {
		res.Reg.Release(id, pins...)
		return nil, errcode.Wrap(errcode.NoEcho, "ultrasonic", "channel A trig gpio"+strconv.Itoa(p.TriggerA), nil)
	}
	b, ok := res.Echo.ByPins(p.TriggerB, p.EchoB)
	if !ok {
		res.Reg.Release(id, pins...)
		return nil, errcode.Wrap(errcode.NoEcho, "ultrasonic", "channel B trig gpio"+strconv.Itoa(p.TriggerB), nil)
	}
	max := p.MaxPulseUs
	if max <= 0 {
		max = DefaultMaxPulseUs
	}
	return &Device{
		id:      id,
		pins:    pins,
		sensors: [2]core.EchoSensor{a, b},
		maxUs:   max,
		reg:     res.Reg,
		log:     res.Log.Named(id),
	}, nil
}
