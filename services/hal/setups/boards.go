package setups

import (
	"pedestriansense-go/services/hal/devices/buzzer"
	"pedestriansense-go/services/hal/devices/signal_panel"
	"pedestriansense-go/services/hal/devices/ultrasonic"
)

// AlarmHz is C5, the crossing's alarm tone.
const AlarmHz = 523

// Pico keeps the lamps and buzzer on GP2..GP7. The sensors sit on
// GP10..GP13 so that UART1 (GP8/GP9) stays free for the console.
var Pico = Plan{
	Name:    "pico",
	GPIOMin: 0, GPIOMax: 28,
	Lights: signal_panel.Params{
		VehicleGreen: 2, VehicleYellow: 3, VehicleRed: 4,
		PedestrianGreen: 6, PedestrianRed: 7,
	},
	Alarm: buzzer.Params{Pin: 5, FreqHz: AlarmHz},
	Sensors: ultrasonic.Params{
		TriggerA: 10, EchoA: 12,
		TriggerB: 11, EchoB: 13,
		MaxPulseUs: ultrasonic.DefaultMaxPulseUs,
	},
}

// RaspberryPi uses BCM numbering. The buzzer is on GPIO18 for hardware PWM.
var RaspberryPi = Plan{
	Name:    "raspberrypi",
	GPIOMin: 2, GPIOMax: 27,
	Lights: signal_panel.Params{
		VehicleGreen: 17, VehicleYellow: 27, VehicleRed: 22,
		PedestrianGreen: 5, PedestrianRed: 6,
	},
	Alarm: buzzer.Params{Pin: 18, FreqHz: AlarmHz},
	Sensors: ultrasonic.Params{
		TriggerA: 23, EchoA: 24,
		TriggerB: 25, EchoB: 16,
		MaxPulseUs: ultrasonic.DefaultMaxPulseUs,
	},
}

// Host mirrors the Pico so simulations read like the firmware logs.
var Host = func() Plan {
	p := Pico
	p.Name = "host"
	return p
}()
