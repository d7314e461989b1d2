package signal_panel

import (
	"pedestriansense-go/services/crossing"
	"pedestriansense-go/services/hal/core"
	"pedestriansense-go/x/logx"
)

const (
	vehicleRed = iota
	vehicleYellow
	vehicleGreen
	pedestrianRed
	pedestrianGreen
	numLamps
)

var lampNames = [numLamps]string{"vehicle red", "vehicle yellow", "vehicle green", "pedestrian red", "pedestrian green"}

// Device drives the vehicle and pedestrian signal heads. Levels are
// logical (true = lit); ActiveLow inverts them at the pin.
type Device struct {
	id        string
	pins      []int
	lamps     [numLamps]core.GPIOPin
	activeLow bool

	reg *core.Registry
	log *logx.Logger

	lit [numLamps]bool
}

func (d *Device) ID() string { return d.id }

// Init configures every lamp as an output with all lamps dark.
func (d *Device) Init() error {
	for i, g := range d.lamps {
		d.lit[i] = false
		if err := g.ConfigureOutput(d.phys(false)); err != nil {
			return err
		}
	}
	d.log.Debugf("lamps on gpio%v dark", d.pins)
	return nil
}

func (d *Device) SetVehicle(red, yellow, green bool) {
	d.set(vehicleRed, red)
	d.set(vehicleYellow, yellow)
	d.set(vehicleGreen, green)
}

func (d *Device) SetPedestrian(red, green bool) {
	d.set(pedestrianRed, red)
	d.set(pedestrianGreen, green)
}

// Outputs reads back the lamp levels as last driven.
func (d *Device) Outputs() crossing.LightOutputs {
	return crossing.LightOutputs{
		VehicleRed:      d.lit[vehicleRed],
		VehicleYellow:   d.lit[vehicleYellow],
		VehicleGreen:    d.lit[vehicleGreen],
		PedestrianRed:   d.lit[pedestrianRed],
		PedestrianGreen: d.lit[pedestrianGreen],
	}
}

// Lamp sets a single lamp by index in Params.Pins order. Used by bring-up tools.
func (d *Device) Lamp(i int, on bool) {
	if i < 0 || i >= numLamps {
		return
	}
	d.set(i, on)
}

// LampName names the lamp at index i in Params.Pins order.
func LampName(i int) string {
	if i < 0 || i >= numLamps {
		return ""
	}
	return lampNames[i]
}

// NumLamps is the number of lamps on a panel.
const NumLamps = numLamps

// Close darkens every lamp and releases the pins.
func (d *Device) Close() error {
	d.SetVehicle(false, false, false)
	d.SetPedestrian(false, false)
	if d.reg != nil {
		d.reg.Release(d.id, d.pins...)
	}
	return nil
}

func (d *Device) set(i int, on bool) {
	d.lit[i] = on
	d.lamps[i].Set(d.phys(on))
}

func (d *Device) phys(on bool) bool {
	if d.activeLow {
		return !on
	}
	return on
}
