package crossing

import (
	"context"

	"pedestriansense-go/x/logx"
	"pedestriansense-go/x/timex"
)

// Scheduler drives the controller at a fixed tick. The tick is a plain
// sleep after each step; time spent on sensor and output I/O is not
// compensated.
type Scheduler struct {
	cfg     Config
	filter  *PresenceFilter
	machine *Machine
	sleep   timex.Sleeper
	log     *logx.Logger

	ticks uint64
}

func NewScheduler(cfg Config, sensor RangeSensor, panel OutputPanel, sleep timex.Sleeper, log *logx.Logger) *Scheduler {
	if sleep == nil {
		sleep = timex.Wall
	}
	return &Scheduler{
		cfg:     cfg,
		filter:  NewPresenceFilter(sensor, cfg.Threshold),
		machine: NewMachine(cfg, panel, sleep),
		sleep:   sleep,
		log:     log.Named("crossing"),
	}
}

func (s *Scheduler) Machine() *Machine { return s.machine }

// Ticks returns the number of completed steps.
func (s *Scheduler) Ticks() uint64 { return s.ticks }

// Start applies the initial Green outputs.
func (s *Scheduler) Start() {
	s.machine.Start()
	s.log.Infof("started in %s", s.machine.Mode())
}

// Step samples presence, advances the machine and then sleeps one tick.
func (s *Scheduler) Step() Step {
	sample := s.filter.Sample()
	prevAlarm := s.machine.Alarm()
	st := s.machine.Advance(sample)
	s.ticks++

	if st.Alarm != prevAlarm {
		if st.Alarm {
			s.log.Infof("tick %d: pedestrian presence sustained, alarm on", s.ticks)
		} else {
			s.log.Infof("tick %d: alarm off", s.ticks)
		}
	}
	if st.Changed() {
		s.log.Infof("tick %d: %s -> %s", s.ticks, st.From, st.Mode)
	}
	s.log.Debugf("tick %d: mode=%s elapsed=%d present=%t", s.ticks, st.Mode, st.Elapsed, sample.Present)

	s.sleep.Sleep(s.cfg.Tick)
	return st
}

// Run starts the controller and steps forever. The firmware passes a
// context that is never cancelled; host tools cancel it to stop between
// ticks. Sleeps in flight are not interrupted.
func (s *Scheduler) Run(ctx context.Context) {
	s.Start()
	for ctx.Err() == nil {
		s.Step()
	}
	s.log.Infof("stopped after %d ticks", s.ticks)
}
