// cmd/lamptest/main.go
package main

import (
	"fmt"
	"io"
	"time"

	"pedestriansense-go/services/crossing"
	"pedestriansense-go/services/hal"
	"pedestriansense-go/services/hal/devices/signal_panel"
	"pedestriansense-go/x/console"
	"pedestriansense-go/x/logx"
)

// ---------- Configuration ----------

const (
	// Sequencing timing
	dwellOn  = 1 * time.Second
	dwellOff = 300 * time.Millisecond
	beep     = 500 * time.Millisecond

	// Cycles: 0 = loop forever
	cyclesToRun = 0
)

// ---------- Main ----------

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)

	out := console.Open()
	log := logx.New(out, logx.LevelInfo)

	hw, err := hal.Open(log)
	if err != nil {
		log.Errorf("lamptest: %v", err)
		for {
			time.Sleep(time.Minute)
		}
	}
	defer hw.Close()

	p := hw.Plan.Lights.Pins()
	for cycle := 1; cyclesToRun == 0 || cycle <= cyclesToRun; cycle++ {
		printf(out, "[lamptest] cycle %d on plan %s\r\n", cycle, hw.Plan.Name)

		for i := 0; i < signal_panel.NumLamps; i++ {
			printf(out, "[lamptest]  %-16s gpio%d\r\n", signal_panel.LampName(i), p[i])
			hw.Lights.Lamp(i, true)
			time.Sleep(dwellOn)
			hw.Lights.Lamp(i, false)
			time.Sleep(dwellOff)
		}

		printf(out, "[lamptest]  %-16s gpio%d\r\n", "alarm", hw.Plan.Alarm.Pin)
		hw.SetAlarm(true)
		time.Sleep(beep)
		hw.SetAlarm(false)

		// Show each mode's settled configuration once.
		for _, m := range []crossing.Mode{crossing.Green, crossing.Yellow, crossing.Red} {
			o := crossing.OutputsFor(m)
			printf(out, "[lamptest]  mode %s\r\n", m)
			hw.SetVehicle(o.VehicleRed, o.VehicleYellow, o.VehicleGreen)
			hw.SetPedestrian(o.PedestrianRed, o.PedestrianGreen)
			time.Sleep(dwellOn)
		}
		hw.SetVehicle(false, false, false)
		hw.SetPedestrian(false, false)

		for _, ch := range []crossing.Channel{crossing.ChannelA, crossing.ChannelB} {
			d := hw.MeasureDistance(ch)
			if d == crossing.OutOfRange {
				printf(out, "[lamptest]  sensor %s: no echo\r\n", ch)
				continue
			}
			printf(out, "[lamptest]  sensor %s: %d cm\r\n", ch, d)
		}
		time.Sleep(dwellOff)
	}
}

func printf(w io.Writer, format string, a ...any) { _, _ = fmt.Fprintf(w, format, a...) }
