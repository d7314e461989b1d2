package signal_panel

import (
	"strconv"

	"pedestriansense-go/errcode"
	"pedestriansense-go/services/hal/core"
)

// Params wires the five lamps of a crossing. All lamps share one polarity.
type Params struct {
	VehicleRed      int
	VehicleYellow   int
	VehicleGreen    int
	PedestrianRed   int
	PedestrianGreen int
	ActiveLow       bool
}

// Pins lists the lamps in fixed order: vehicle R/Y/G, pedestrian R/G.
func (p Params) Pins() []int {
	return []int{p.VehicleRed, p.VehicleYellow, p.VehicleGreen, p.PedestrianRed, p.PedestrianGreen}
}

// Build claims all five pins. Nothing is driven until Init.
func Build(id string, p Params, res core.Resources) (*Device, error) {
	pins := p.Pins()
	if err := res.Reg.Claim(id, pins...); err != nil {
		return nil, err
	}
	var lamps [numLamps]core.GPIOPin
	for i, n := range pins {
		g, ok := res.Pins.ByNumber(n)
		if !ok {
			res.Reg.Release(id, pins...)
			return nil, errcode.Wrap(errcode.UnknownPin, "signal_panel", lampNames[i]+" gpio"+strconv.Itoa(n), nil)
		}
		lamps[i] = g
	}
	return &Device{
		id:        id,
		pins:      pins,
		lamps:     lamps,
		activeLow: p.ActiveLow,
		reg:       res.Reg,
		log:       res.Log.Named(id),
	}, nil
}
