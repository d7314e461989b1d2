package crossing

import "pedestriansense-go/x/timex"

// Step describes what one Advance did.
type Step struct {
	Sample  Sample
	Alarm   bool
	From    Mode
	Mode    Mode
	Elapsed Seconds // after tick accounting
}

// Changed reports whether the tick entered a new mode.
func (s Step) Changed() bool { return s.From != s.Mode }

// Machine is the vehicle signal state machine. It is not safe for
// concurrent use; a single tick loop owns it.
type Machine struct {
	cfg   Config
	panel OutputPanel
	sleep timex.Sleeper

	mode    Mode
	elapsed Seconds
	alarm   bool
	started bool
}

func NewMachine(cfg Config, panel OutputPanel, sleep timex.Sleeper) *Machine {
	if sleep == nil {
		sleep = timex.Wall
	}
	return &Machine{cfg: cfg, panel: panel, sleep: sleep, mode: Green}
}

// Start enters Green with a zero clock and writes its outputs, including
// the settle delay. Calling Start again has no effect.
func (m *Machine) Start() {
	if m.started {
		return
	}
	m.started = true
	m.mode = Green
	m.elapsed = 0
	enter(m.panel, m.mode, m.cfg.Settle, m.sleep)
}

func (m *Machine) Mode() Mode       { return m.mode }
func (m *Machine) Elapsed() Seconds { return m.elapsed }
func (m *Machine) Alarm() bool      { return m.alarm }

// Advance runs one tick. The alarm follows s.Sustained. Sustained presence
// restarts Red, leaves Yellow alone, and ends Green on this same tick.
// A mode whose clock equals its duration moves to the next mode, and the
// clock then counts this tick.
func (m *Machine) Advance(s Sample) Step {
	m.Start()
	from := m.mode

	m.alarm = s.Sustained
	m.panel.SetAlarm(m.alarm)

	if s.Sustained {
		switch m.mode {
		case Red:
			m.elapsed = 0
		case Yellow:
			// yellow is never shortened or extended
		case Green:
			m.elapsed = m.cfg.Duration(Green)
		}
	}

	if m.elapsed == m.cfg.Duration(m.mode) {
		m.mode = m.mode.Next()
		enter(m.panel, m.mode, m.cfg.Settle, m.sleep)
		m.elapsed = 0
	}

	m.elapsed++

	return Step{
		Sample:  s,
		Alarm:   m.alarm,
		From:    from,
		Mode:    m.mode,
		Elapsed: m.elapsed,
	}
}
