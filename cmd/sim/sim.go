//go:build !(rp2040 || rp2350)

package main

import (
	"io"
	"strconv"

	"pedestriansense-go/errcode"
	"pedestriansense-go/services/crossing"
	"pedestriansense-go/services/hal"
	"pedestriansense-go/services/hal/platform"
	"pedestriansense-go/services/hal/setups"
	"pedestriansense-go/x/logx"
	"pedestriansense-go/x/mathx"
	"pedestriansense-go/x/timex"
)

// Readings farther than this are beyond any sensor and come back as no echo.
const farCm = 1000

// Sim runs the real controller and hardware drivers on host fakes with a
// virtual clock.
type Sim struct {
	host  *platform.Host
	hw    *hal.Hardware
	clock *timex.Virtual
	sched *crossing.Scheduler
	out   io.Writer
	log   *logx.Logger
}

func NewSim(out io.Writer, level logx.Level) (*Sim, error) {
	log := logx.New(out, level)
	host := platform.NewHost()
	hw, err := hal.Build(setups.Host, host.Factories(), log)
	if err != nil {
		return nil, err
	}
	clock := &timex.Virtual{}
	s := &Sim{
		host:  host,
		hw:    hw,
		clock: clock,
		sched: crossing.NewScheduler(crossing.DefaultConfig(), hw, hw, clock, log),
		out:   out,
		log:   log.Named("sim"),
	}
	s.setDistance(crossing.ChannelA, crossing.OutOfRange)
	s.setDistance(crossing.ChannelB, crossing.OutOfRange)
	s.sched.Start()
	return s, nil
}

// Run executes cmds in order and stops at the first failed expectation.
func (s *Sim) Run(cmds []Command) error {
	for _, c := range cmds {
		if c.A != nil {
			s.setDistance(crossing.ChannelA, *c.A)
		}
		if c.B != nil {
			s.setDistance(crossing.ChannelB, *c.B)
		}
		switch c.Op {
		case OpTick:
			for i := 0; i < c.Count; i++ {
				s.sched.Step()
			}
		case OpExpect:
			if err := s.check(c); err != nil {
				return err
			}
		case OpSay:
			s.log.Infof("t=%s %s", s.clock.Elapsed, c.Text)
		}
	}
	m := s.sched.Machine()
	s.log.Infof("t=%s after %d ticks: %s, elapsed %d, alarm %t",
		s.clock.Elapsed, s.sched.Ticks(), m.Mode(), m.Elapsed(), m.Alarm())
	return s.hw.Close()
}

func (s *Sim) check(c Command) error {
	m := s.sched.Machine()
	if c.Mode != nil && m.Mode() != *c.Mode {
		return s.fail(c, "mode is "+m.Mode().String()+", want "+c.Mode.String())
	}
	if c.Alarm != nil && s.hw.Alarm.On() != *c.Alarm {
		return s.fail(c, "alarm is "+strconv.FormatBool(s.hw.Alarm.On()))
	}
	if got, want := s.hw.Lights.Outputs(), crossing.OutputsFor(m.Mode()); got != want {
		return s.fail(c, "lights do not match "+m.Mode().String())
	}
	return nil
}

func (s *Sim) fail(c Command, msg string) error {
	return errcode.Wrap(errcode.Error, "line "+strconv.Itoa(c.Line)+" expect", msg, nil)
}

func (s *Sim) setDistance(ch crossing.Channel, d crossing.Distance) {
	trig := setups.Host.Sensors.TriggerA
	if ch == crossing.ChannelB {
		trig = setups.Host.Sensors.TriggerB
	}
	s.host.Echo.Get(trig).SetDistance(uint32(mathx.Min(d, farCm)))
}
