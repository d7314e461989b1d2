package crossing

import (
	"time"

	"pedestriansense-go/x/timex"
)

// OutputPanel drives the physical signal heads and the alarm.
// Writes have no acknowledgement; a fault simply has no physical effect.
type OutputPanel interface {
	SetVehicle(red, yellow, green bool)
	SetPedestrian(red, green bool)
	SetAlarm(on bool)
}

// LightOutputs is the settled light configuration for one mode.
type LightOutputs struct {
	VehicleRed      bool
	VehicleYellow   bool
	VehicleGreen    bool
	PedestrianRed   bool
	PedestrianGreen bool
}

// OutputsFor returns the settled outputs of m. Pedestrians walk only while
// vehicles are held at red.
func OutputsFor(m Mode) LightOutputs {
	switch m {
	case Red:
		return LightOutputs{VehicleRed: true, PedestrianGreen: true}
	case Yellow:
		return LightOutputs{VehicleYellow: true, PedestrianRed: true}
	default:
		return LightOutputs{VehicleGreen: true, PedestrianRed: true}
	}
}

// enter writes the outputs of m in its entry order. Red stops vehicles
// before pedestrians walk; Green stops pedestrians before vehicles go.
// Yellow needs no settle.
func enter(p OutputPanel, m Mode, settle time.Duration, s timex.Sleeper) {
	o := OutputsFor(m)
	vehicle := func() { p.SetVehicle(o.VehicleRed, o.VehicleYellow, o.VehicleGreen) }
	pedestrian := func() { p.SetPedestrian(o.PedestrianRed, o.PedestrianGreen) }

	switch m {
	case Red:
		vehicle()
		s.Sleep(settle)
		pedestrian()
	case Yellow:
		vehicle()
		pedestrian()
	default:
		pedestrian()
		s.Sleep(settle)
		vehicle()
	}
}
