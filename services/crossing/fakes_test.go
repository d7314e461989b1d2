package crossing

import (
	"strings"
	"time"
)

// recorder is an OutputPanel, Sleeper and RangeSensor that logs every call
// in order, so tests can assert the exact write sequence of a tick.
type recorder struct {
	events []string

	vehicleRed, vehicleYellow, vehicleGreen bool
	pedRed, pedGreen                        bool
	alarm                                   bool

	// distances returned per channel; the last value repeats.
	a, b   []Distance
	ai, bi int
}

func (r *recorder) SetVehicle(red, yellow, green bool) {
	r.vehicleRed, r.vehicleYellow, r.vehicleGreen = red, yellow, green
	r.events = append(r.events, "vehicle "+lamps(map[string]bool{"R": red, "Y": yellow, "G": green}))
}

func (r *recorder) SetPedestrian(red, green bool) {
	r.pedRed, r.pedGreen = red, green
	r.events = append(r.events, "ped "+lamps(map[string]bool{"R": red, "G": green}))
}

func (r *recorder) SetAlarm(on bool) {
	r.alarm = on
	if on {
		r.events = append(r.events, "alarm on")
	} else {
		r.events = append(r.events, "alarm off")
	}
}

func (r *recorder) Sleep(d time.Duration) {
	r.events = append(r.events, "sleep "+d.String())
}

func (r *recorder) MeasureDistance(ch Channel) Distance {
	r.events = append(r.events, "read "+ch.String())
	if ch == ChannelA {
		return next(r.a, &r.ai)
	}
	return next(r.b, &r.bi)
}

func (r *recorder) reset() { r.events = nil }

func (r *recorder) outputs() LightOutputs {
	return LightOutputs{
		VehicleRed:      r.vehicleRed,
		VehicleYellow:   r.vehicleYellow,
		VehicleGreen:    r.vehicleGreen,
		PedestrianRed:   r.pedRed,
		PedestrianGreen: r.pedGreen,
	}
}

func next(v []Distance, i *int) Distance {
	if len(v) == 0 {
		return OutOfRange
	}
	d := v[min(*i, len(v)-1)]
	*i++
	return d
}

func lamps(on map[string]bool) string {
	var lit []string
	for _, k := range []string{"R", "Y", "G"} {
		if on[k] {
			lit = append(lit, k)
		}
	}
	if len(lit) == 0 {
		return "-"
	}
	return strings.Join(lit, "")
}

var (
	none      = Sample{}
	blip      = Sample{Present: true}
	sustained = Sample{Present: true, Sustained: true}
)

// started returns a machine past its initial Green entry with a clean log.
func started() (*Machine, *recorder) {
	r := &recorder{}
	m := NewMachine(DefaultConfig(), r, r)
	m.Start()
	r.reset()
	return m, r
}
